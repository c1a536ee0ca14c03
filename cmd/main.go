// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"go_5_sheet_keep/internal/config"
	"go_5_sheet_keep/internal/handlers"
	"go_5_sheet_keep/internal/middleware"
	"go_5_sheet_keep/internal/model"
	"go_5_sheet_keep/internal/repository"
	"go_5_sheet_keep/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	//　設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	// Configを読み込み
	if err := config.LoadConfig("../configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}
	// ローカル開発時は tint、それ以外はJSONで出力
	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	log.Println("Log Config Loaded...")

	slog.SetDefault(logger)

	slog.Info("Application starting...")

	// 2. Initialize Database Connection (GORM)
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// スキーマのマイグレーション (config.yamlで有効化した場合のみ)
	if config.Cfg.Database.AutoMigrate {
		slog.Info("Running auto migration...")
		if err := db.AutoMigrate(&model.User{}, &model.Sheet{}, &model.Problem{}); err != nil {
			slog.Error("Error running auto migration", slog.Any("error", err))
			os.Exit(1)
		}
		slog.Info("Auto migration completed.")
	}

	// 3. Dependency Injection
	userRepo := repository.NewGormUserRepository()
	sheetRepo := repository.NewGormSheetRepository()
	problemRepo := repository.NewGormProblemRepository()

	authService := service.NewAuthService(db, userRepo, &config.Cfg)
	sheetService := service.NewSheetService(db, sheetRepo, problemRepo)
	problemService := service.NewProblemService(db, sheetRepo, problemRepo)
	importService := service.NewImportService(db, sheetRepo, problemRepo)
	statsService := service.NewStatsService(db, problemRepo)

	authHandler := handlers.NewAuthHandler(authService, logger)
	sheetHandler := handlers.NewSheetHandler(sheetService, importService, config.Cfg.App.MaxUploadSizeMB, logger)
	problemHandler := handlers.NewProblemHandler(problemService, logger)
	statsHandler := handlers.NewStatsHandler(statsService, logger)

	// 4. Setup Router
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger)) // slogを使うカスタムロガーミドルウェア

	// CORS 設定と適用 (設定ファイルから読み込んだ値を使用)
	corsOptions := cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
		Debug:            false,
	}
	corsHandler := cors.New(corsOptions)
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// API Routes
	r.Route("/api", func(r chi.Router) {
		// --- Public routes ---
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// --- Protected routes (require JWT) ---
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuthMiddleware(&config.Cfg))

			r.Get("/user", authHandler.GetCurrentUser)

			// Sheet routes
			r.Route("/sheets", func(r chi.Router) {
				r.Get("/", sheetHandler.GetSheets)
				r.Post("/", sheetHandler.PostSheet)
				r.Post("/bulk-upload", sheetHandler.BulkUpload)
				r.Get("/{sheet_id}", sheetHandler.GetSheet)
				r.Delete("/{sheet_id}", sheetHandler.DeleteSheet)

				// 特定シート配下の問題
				r.Get("/{sheet_id}/problems", problemHandler.GetProblems)
				r.Post("/{sheet_id}/problems", problemHandler.PostProblem)
			})

			// Problem routes
			r.Route("/problems", func(r chi.Router) {
				r.Put("/{problem_id}", problemHandler.PutProblem)
				r.Delete("/{problem_id}", problemHandler.DeleteProblem)
			})

			// Stats routes
			r.Get("/stats/dashboard", statsHandler.GetDashboardStats)
		})
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		// DB接続チェック
		ctx := r.Context()
		sqlDB, err := db.DB()
		if err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not get DB object", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		err = sqlDB.PingContext(r.Context())
		if err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// 5. Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
