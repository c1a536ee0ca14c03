// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"go_5_sheet_keep/internal/model"
)

// HandleError はエラーを解釈し、適切なJSONエラーレスポンスを返します。
// これがアプリケーションのエラーハンドリングの中心となります。
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	if logger == nil {
		logger = slog.Default()
	}

	// エラーの根本原因に基づいてHTTPステータスコードを決定
	statusCode := MapErrorToStatusCode(err)

	var errResp model.APIErrorResponse
	var appErr *model.AppError

	// エラーがカスタムエラー型 AppError かどうかを判定
	if errors.As(err, &appErr) {
		// AppError の場合、その詳細情報をレスポンスとして使用
		errResp = model.APIErrorResponse{Error: appErr.Detail}
	} else {
		// AppError ではない、予期せぬエラーの場合
		// ログには詳細なエラーを出力し、クライアントには汎用メッセージを返す
		logger.Error("Unhandled error", slog.Any("error", err))
		errResp = model.APIErrorResponse{
			Error: model.ErrorDetail{
				Code:    "INTERNAL_SERVER_ERROR",
				Message: "サーバー内部でエラーが発生しました。",
			},
		}
	}

	RespondWithJSON(w, statusCode, errResp, logger)
}

// MapErrorToStatusCode はアプリケーションエラーをHTTPステータスコードにマッピングします
func MapErrorToStatusCode(err error) int {
	var appErr *model.AppError
	// AppErrorの場合は、ラップされたエラーで判定する
	if errors.As(err, &appErr) {
		err = appErr.Unwrap()
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden
	default:
		// ハンドリングされていないエラーは内部サーバーエラーとして扱う
		return http.StatusInternalServerError
	}
}

// RespondWithJSON はJSONレスポンスを返します
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}

	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error marshaling JSON response", slog.Any("error", err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"code":"INTERNAL_SERVER_ERROR","message":"レスポンス生成中にエラーが発生しました。"}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// RespondWithError はシンプルなエラーレスポンスをJSON形式で返します
func RespondWithError(w http.ResponseWriter, code int, message string) {
	errResp := model.APIErrorResponse{
		Error: model.ErrorDetail{
			Message: message,
		},
	}
	RespondWithJSON(w, code, errResp, nil)
}
