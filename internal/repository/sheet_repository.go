//go:generate mockery --name SheetRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_sheet_keep/internal/middleware"
	"go_5_sheet_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SheetRepository インターフェース
type SheetRepository interface {
	Create(ctx context.Context, tx *gorm.DB, sheet *model.Sheet) error
	FindByID(ctx context.Context, db *gorm.DB, sheetID uuid.UUID) (*model.Sheet, error)
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Sheet, error)
	Delete(ctx context.Context, tx *gorm.DB, sheetID uuid.UUID) error
}

type gormSheetRepository struct{}

func NewGormSheetRepository() SheetRepository {
	return &gormSheetRepository{}
}

func (r *gormSheetRepository) Create(ctx context.Context, tx *gorm.DB, sheet *model.Sheet) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(sheet)
	if result.Error != nil {
		logger.Error("Error creating sheet in DB",
			"error", result.Error,
			"user_id", sheet.UserID.String(),
			"title", sheet.Title,
		)
		return fmt.Errorf("gormSheetRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormSheetRepository) FindByID(ctx context.Context, db *gorm.DB, sheetID uuid.UUID) (*model.Sheet, error) {
	logger := middleware.GetLogger(ctx)
	var sheet model.Sheet
	result := db.WithContext(ctx).Where("sheet_id = ?", sheetID).First(&sheet)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding sheet by ID in DB",
			"error", result.Error,
			"sheet_id", sheetID.String(),
		)
		return nil, fmt.Errorf("gormSheetRepository.FindByID: %w", result.Error)
	}
	return &sheet, nil
}

func (r *gormSheetRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Sheet, error) {
	logger := middleware.GetLogger(ctx)
	var sheets []*model.Sheet
	result := db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&sheets)
	if result.Error != nil {
		logger.Error("Error finding sheets by user in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormSheetRepository.FindByUser: %w", result.Error)
	}
	return sheets, nil
}

func (r *gormSheetRepository) Delete(ctx context.Context, tx *gorm.DB, sheetID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("sheet_id = ?", sheetID).Delete(&model.Sheet{})
	if result.Error != nil {
		logger.Error("Error deleting sheet in DB",
			"error", result.Error,
			"sheet_id", sheetID.String(),
		)
		return fmt.Errorf("gormSheetRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
