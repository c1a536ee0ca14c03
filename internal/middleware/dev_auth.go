package middleware

import (
	"context"
	"log"
	"net/http"

	"go_5_sheet_keep/internal/model"
	"go_5_sheet_keep/internal/webutil"

	"github.com/google/uuid"
)

// DevUserContextMiddleware は開発時用ミドルウェアです。
// X-User-ID ヘッダーからUUIDを抽出し、コンテキストに設定します。
// DBでのユーザー存在チェックは行いません。
func DevUserContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get("X-User-ID")
		if userIDStr == "" {
			// 開発時でも User ID は必須とする (API利用のために)
			log.Println("[DEV AUTH] Failed: X-User-ID header missing")
			webutil.RespondWithError(w, http.StatusUnauthorized, "[DEV] Unauthorized: Missing X-User-ID header")
			return
		}

		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			log.Printf("[DEV AUTH] Failed: Invalid X-User-ID format: %s", userIDStr)
			webutil.RespondWithError(w, http.StatusUnauthorized, "[DEV] Unauthorized: Invalid X-User-ID format")
			return
		}

		// DB検証はスキップ
		ctx := context.WithValue(r.Context(), model.UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
