//go:generate mockery --name UserRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_sheet_keep/internal/middleware"
	"go_5_sheet_keep/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// UserRepository インターフェース
type UserRepository interface {
	Create(ctx context.Context, tx *gorm.DB, user *model.User) error
	FindByID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.User, error)
	FindByUsername(ctx context.Context, db *gorm.DB, username string) (*model.User, error)
}

type gormUserRepository struct{}

func NewGormUserRepository() UserRepository {
	return &gormUserRepository{}
}

func (r *gormUserRepository) Create(ctx context.Context, tx *gorm.DB, user *model.User) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(user)
	if result.Error != nil {
		// ユーザー名の一意制約違反 (事前チェックとの競合時の最後の砦)
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			logger.Warn("Duplicate key error on create user",
				"error", result.Error,
				"username", user.Username,
			)
			return model.ErrConflict
		}
		logger.Error("Error creating user in DB",
			"error", result.Error,
			"username", user.Username,
		)
		return fmt.Errorf("gormUserRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormUserRepository) FindByID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	var user model.User
	result := db.WithContext(ctx).Where("user_id = ?", userID).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding user by ID in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormUserRepository.FindByID: %w", result.Error)
	}
	return &user, nil
}

func (r *gormUserRepository) FindByUsername(ctx context.Context, db *gorm.DB, username string) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	var user model.User
	result := db.WithContext(ctx).Where("username = ?", username).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding user by username in DB",
			"error", result.Error,
			"username", username,
		)
		return nil, fmt.Errorf("gormUserRepository.FindByUsername: %w", result.Error)
	}
	return &user, nil
}
