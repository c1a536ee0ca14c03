//go:generate mockery --name AuthService --structname MockAuthService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"time"

	"go_5_sheet_keep/internal/config"
	"go_5_sheet_keep/internal/middleware"
	"go_5_sheet_keep/internal/model"
	"go_5_sheet_keep/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error)
}

type authService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(db *gorm.DB, userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		db:       db,
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// Register は新しいユーザーを登録します
func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	var newUser *model.User

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// ユーザー名での重複チェック
		_, err := s.userRepo.FindByUsername(ctx, tx, req.Username)
		if err == nil {
			logger.Warn("Username already exists", "username", req.Username)
			return model.NewAppError("DUPLICATE_USERNAME", "そのユーザー名は既に使用されています。", "username", model.ErrConflict)
		}
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to check username existence", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}

		// パスワードのハッシュ化
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("Failed to hash password", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "パスワードの処理中にエラーが発生しました。", "", err)
		}

		user := &model.User{
			UserID:       uuid.New(),
			Username:     req.Username,
			PasswordHash: string(hashedPassword),
		}

		if err := s.userRepo.Create(ctx, tx, user); err != nil {
			// Create内で重複エラーが検知された場合 (レースコンディション対策)
			if errors.Is(err, model.ErrConflict) {
				return model.NewAppError("DUPLICATE_USERNAME", "そのユーザー名は既に使用されています。", "username", model.ErrConflict)
			}
			logger.Error("Failed to create user in DB", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "ユーザーの作成に失敗しました。", "", err)
		}
		newUser = user
		return nil
	})

	if err != nil {
		return nil, err
	}

	logger.Info("User registered", "user_id", newUser.UserID.String())
	return newUser, nil
}

// Login はユーザー名とパスワードを検証し、アクセストークンを発行します
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	logger := middleware.GetLogger(ctx)

	user, err := s.userRepo.FindByUsername(ctx, s.db, req.Username)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// ユーザーの存在有無は区別せず同じメッセージを返す
			return nil, model.NewAppError("INVALID_CREDENTIALS", "ユーザー名またはパスワードが正しくありません。", "", model.ErrForbidden)
		}
		logger.Error("Failed to find user for login", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("Password mismatch", "username", req.Username)
		return nil, model.NewAppError("INVALID_CREDENTIALS", "ユーザー名またはパスワードが正しくありません。", "", model.ErrForbidden)
	}

	token, err := s.generateAccessToken(user.UserID)
	if err != nil {
		logger.Error("Failed to sign access token", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの発行に失敗しました。", "", err)
	}

	logger.Info("User logged in", "user_id", user.UserID.String())
	return &model.LoginResponse{AccessToken: token}, nil
}

func (s *authService) GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		// エラーはリポジトリで変換済みのはず
		return nil, err
	}
	return user, nil
}

func (s *authService) generateAccessToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.cfg.JWT.ExpiryMinutes) * time.Minute)),
		Issuer:    config.AppName,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWT.SecretKey))
}
