// internal/handlers/problem_handler.go
package handlers

import (
	"errors"
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

type ProblemHandler struct {
	service service.ProblemService
	logger  *slog.Logger
}

func NewProblemHandler(s service.ProblemService, logger *slog.Logger) *ProblemHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProblemHandler{
		service: s,
		logger:  logger,
	}
}

// GetProblems はシート内の問題一覧を取得するためのハンドラ
func (h *ProblemHandler) GetProblems(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetProblems"))

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

	problems, err := h.service.ListProblems(r.Context(), userID, sheetID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Sheet not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error listing problems in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	if problems == nil {
		problems = []*model.Problem{}
	}
	logger.Info("Problems listed successfully", slog.Int("count", len(problems)))
	webutil.RespondWithJSON(w, http.StatusOK, problems, logger)
}

// PostProblem はシートに問題を追加するためのハンドラ
func (h *ProblemHandler) PostProblem(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostProblem"))

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

	var req model.PostProblemRequest
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

	problem, err := h.service.CreateProblem(r.Context(), userID, sheetID, &req)
	if err != nil {
		logger.Error("Error creating problem in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Problem created successfully", slog.String("problem_id", problem.ProblemID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, problem, logger)
}

// PutProblem は問題を部分更新するためのハンドラ (ステータス遷移を含む)
func (h *ProblemHandler) PutProblem(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutProblem"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrUnauthorized)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	problemIDStr := chi.URLParam(r, "problem_id")
	problemID, err := uuid.Parse(problemIDStr)
	if err != nil {
		logger.Warn("Invalid problem ID format in URL", slog.String("problem_id_str", problemIDStr), slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "problem_idの形式が正しくありません。", "problem_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("problem_id", problemID.String()))

	var req model.PutProblemRequest
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

	problem, err := h.service.UpdateProblem(r.Context(), userID, problemID, &req)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Problem not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error updating problem in service", slog.Any("error", err), slog.Any("request", req))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Problem updated successfully")
	webutil.RespondWithJSON(w, http.StatusOK, problem, logger)
}

// DeleteProblem は問題を削除するためのハンドラ
func (h *ProblemHandler) DeleteProblem(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteProblem"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrUnauthorized)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	problemIDStr := chi.URLParam(r, "problem_id")
	problemID, err := uuid.Parse(problemIDStr)
	if err != nil {
		logger.Warn("Invalid problem ID format in URL", slog.String("problem_id_str", problemIDStr), slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "problem_idの形式が正しくありません。", "problem_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("problem_id", problemID.String()))

	if err := h.service.DeleteProblem(r.Context(), userID, problemID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Problem not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error deleting problem in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Problem deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}
