// internal/model/error.go
package model

import "errors"

// アプリケーション固有のエラー
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternalServer = errors.New("internal server error")
	ErrForbidden      = errors.New("forbidden")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrConflict       = errors.New("resource conflict") // 重複エラー用
)

// ErrorDetail はクライアントに返すエラーの詳細情報です。
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse はAPIエラーレスポンスのエンベロープです。
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// AppError はエラーコード・メッセージ・対象フィールドを持つアプリケーションエラーです。
// Err には model.ErrNotFound などのセンチネルエラーをラップし、
// webutil 側で HTTP ステータスコードへのマッピングに使います。
type AppError struct {
	Detail ErrorDetail
	Err    error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{
			Code:    code,
			Message: message,
			Field:   field,
		},
		Err: err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Detail.Message + ": " + e.Err.Error()
	}
	return e.Detail.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}
