// internal/handlers/sheet_handler.go
package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"go_5_sheet_keep/internal/middleware"
	"go_5_sheet_keep/internal/model"
	"go_5_sheet_keep/internal/service"
	"go_5_sheet_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type SheetHandler struct {
	service       service.SheetService
	importService service.ImportService
	maxUploadSize int64 // バイト単位
	logger        *slog.Logger
}

func NewSheetHandler(s service.SheetService, importService service.ImportService, maxUploadSizeMB int64, logger *slog.Logger) *SheetHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SheetHandler{
		service:       s,
		importService: importService,
		maxUploadSize: maxUploadSizeMB << 20,
		logger:        logger,
	}
}

// GetSheets はログイン中ユーザーのシート一覧を取得するためのハンドラ
func (h *SheetHandler) GetSheets(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetSheets"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrUnauthorized)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	sheets, err := h.service.ListSheets(r.Context(), userID)
	if err != nil {
		logger.Error("Error listing sheets in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if sheets == nil {
		sheets = []*model.Sheet{}
	}
	logger.Info("Sheets listed successfully", slog.Int("count", len(sheets)))
	webutil.RespondWithJSON(w, http.StatusOK, sheets, logger)
}

// PostSheet は新しいシートを作成するためのハンドラ
func (h *SheetHandler) PostSheet(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostSheet"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrUnauthorized)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.PostSheetRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.Any("errors", validationErrors.Error()), slog.Any("request", req))
			webutil.HandleError(w, logger, webutil.NewValidationError(validationErrors))
		} else {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return
	}

	sheet, err := h.service.CreateSheet(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error creating sheet in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Sheet created successfully", slog.String("sheet_id", sheet.SheetID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, sheet, logger)
}

// GetSheet は特定のシートを取得するためのハンドラ
func (h *SheetHandler) GetSheet(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetSheet"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrUnauthorized)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	sheetIDStr := chi.URLParam(r, "sheet_id")
	sheetID, err := uuid.Parse(sheetIDStr)
	if err != nil {
		logger.Warn("Invalid sheet ID format in URL", slog.String("sheet_id_str", sheetIDStr), slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "sheet_idの形式が正しくありません。", "sheet_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("sheet_id", sheetID.String()))

	sheet, err := h.service.GetSheet(r.Context(), userID, sheetID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Sheet not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error getting sheet from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Sheet retrieved successfully")
	webutil.RespondWithJSON(w, http.StatusOK, sheet, logger)
}

// DeleteSheet はシートとその問題を削除するためのハンドラ
func (h *SheetHandler) DeleteSheet(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteSheet"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrUnauthorized)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	sheetIDStr := chi.URLParam(r, "sheet_id")
	sheetID, err := uuid.Parse(sheetIDStr)
	if err != nil {
		logger.Warn("Invalid sheet ID format in URL", slog.String("sheet_id_str", sheetIDStr), slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "sheet_idの形式が正しくありません。", "sheet_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("sheet_id", sheetID.String()))

	if err := h.service.DeleteSheet(r.Context(), userID, sheetID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Sheet not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error deleting sheet in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Sheet deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}

// BulkUpload はスプレッドシートからの一括インポートのハンドラ。
// multipart/form-data の "file" フィールドを受け取ります。
func (h *SheetHandler) BulkUpload(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "BulkUpload"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrUnauthorized)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		logger.Warn("Failed to parse multipart form", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_UPLOAD", "アップロードの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		logger.Warn("Upload file missing", slog.String("error", err.Error()))
		appErr := model.NewAppError("FILE_REQUIRED", "ファイルがアップロードされていません。", "file", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxUploadSize))
	if err != nil {
		logger.Error("Failed to read uploaded file", slog.Any("error", err))
		appErr := model.NewAppError("INTERNAL_SERVER_ERROR", "ファイルの読み込みに失敗しました。", "", err)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("filename", fileHeader.Filename))

	resp, err := h.importService.ImportSheet(r.Context(), userID, fileHeader.Filename, data)
	if err != nil {
		logger.Warn("Import failed", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Bulk upload succeeded", slog.Int("total_problems", resp.TotalProblems))
	webutil.RespondWithJSON(w, http.StatusCreated, resp, logger)
}
