// internal/handlers/auth_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_5_sheet_keep/internal/middleware"
	"go_5_sheet_keep/internal/model"
	"go_5_sheet_keep/internal/service"
	"go_5_sheet_keep/internal/webutil"

	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	service service.AuthService
	logger  *slog.Logger
}

func NewAuthHandler(s service.AuthService, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		service: s,
		logger:  logger,
	}
}

// Register は新規ユーザー登録のハンドラ
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Register"))

	var req model.RegisterRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.Any("errors", validationErrors.Error()))
			webutil.HandleError(w, logger, webutil.NewValidationError(validationErrors))
		} else {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return
	}

	user, err := h.service.Register(r.Context(), &req)
	if err != nil {
		logger.Error("Error registering user in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	resp := model.UserResponse{
		UserID:    user.UserID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}
	logger.Info("User registered successfully", slog.String("user_id", user.UserID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, resp, logger)
}

// Login はログインのハンドラ
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Login"))

	var req model.LoginRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.Any("errors", validationErrors.Error()))
			webutil.HandleError(w, logger, webutil.NewValidationError(validationErrors))
		} else {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		logger.Warn("Login failed", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("User logged in successfully")
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// GetCurrentUser はログイン中のユーザー情報を返すハンドラ
func (h *AuthHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetCurrentUser"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrUnauthorized)
		webutil.HandleError(w, logger, appErr)
		return
	}

	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("User not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error getting user from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	resp := model.UserResponse{
		UserID:    user.UserID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
