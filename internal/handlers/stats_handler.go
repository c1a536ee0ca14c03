// internal/handlers/stats_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_sheet_keep/internal/middleware"
	"go_5_sheet_keep/internal/model"
	"go_5_sheet_keep/internal/service"
	"go_5_sheet_keep/internal/webutil"
)

type StatsHandler struct {
	service service.StatsService
	logger  *slog.Logger
}

func NewStatsHandler(s service.StatsService, logger *slog.Logger) *StatsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatsHandler{
		service: s,
		logger:  logger,
	}
}

// GetDashboardStats はダッシュボード統計を取得するためのハンドラ
func (h *StatsHandler) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetDashboardStats"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrUnauthorized)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	stats, err := h.service.GetDashboardStats(r.Context(), userID)
	if err != nil {
		logger.Error("Error computing dashboard stats in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, stats, logger)
}
