//go:generate mockery --name ProblemRepository --output ./mocks --outpkg mocks --case=underscore
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

// ProblemRepository インターフェース
type ProblemRepository interface {
	Create(ctx context.Context, tx *gorm.DB, problem *model.Problem) error
	CreateBatch(ctx context.Context, tx *gorm.DB, problems []*model.Problem) error
	FindByID(ctx context.Context, db *gorm.DB, problemID uuid.UUID) (*model.Problem, error)
	FindBySheet(ctx context.Context, db *gorm.DB, sheetID uuid.UUID) ([]*model.Problem, error)
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Problem, error)
	Update(ctx context.Context, tx *gorm.DB, problemID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, problemID uuid.UUID) error
	DeleteBySheet(ctx context.Context, tx *gorm.DB, sheetID uuid.UUID) error
}

type gormProblemRepository struct{}

func NewGormProblemRepository() ProblemRepository {
	return &gormProblemRepository{}
}

func (r *gormProblemRepository) Create(ctx context.Context, tx *gorm.DB, problem *model.Problem) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(problem)
	if result.Error != nil {
		logger.Error("Error creating problem in DB",
			"error", result.Error,
			"sheet_id", problem.SheetID.String(),
			"title", problem.Title,
		)
		return fmt.Errorf("gormProblemRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormProblemRepository) CreateBatch(ctx context.Context, tx *gorm.DB, problems []*model.Problem) error {
	logger := middleware.GetLogger(ctx)
	if len(problems) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Create(problems)
	if result.Error != nil {
		logger.Error("Error batch-creating problems in DB",
			"error", result.Error,
			"count", len(problems),
		)
		return fmt.Errorf("gormProblemRepository.CreateBatch: %w", result.Error)
	}
	return nil
}

func (r *gormProblemRepository) FindByID(ctx context.Context, db *gorm.DB, problemID uuid.UUID) (*model.Problem, error) {
	logger := middleware.GetLogger(ctx)
	var problem model.Problem
	result := db.WithContext(ctx).Where("problem_id = ?", problemID).First(&problem)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding problem by ID in DB",
			"error", result.Error,
			"problem_id", problemID.String(),
		)
		return nil, fmt.Errorf("gormProblemRepository.FindByID: %w", result.Error)
	}
	return &problem, nil
}

func (r *gormProblemRepository) FindBySheet(ctx context.Context, db *gorm.DB, sheetID uuid.UUID) ([]*model.Problem, error) {
	logger := middleware.GetLogger(ctx)
	var problems []*model.Problem
	// シート内の並びは作成順
	result := db.WithContext(ctx).Where("sheet_id = ?", sheetID).Order("created_at ASC").Find(&problems)
	if result.Error != nil {
		logger.Error("Error finding problems by sheet in DB",
			"error", result.Error,
			"sheet_id", sheetID.String(),
		)
		return nil, fmt.Errorf("gormProblemRepository.FindBySheet: %w", result.Error)
	}
	return problems, nil
}

func (r *gormProblemRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Problem, error) {
	logger := middleware.GetLogger(ctx)
	var problems []*model.Problem
	// 論理削除されたシートの問題は統計に含めない
	result := db.WithContext(ctx).
		Joins("JOIN sheets ON sheets.sheet_id = problems.sheet_id AND sheets.deleted_at IS NULL").
		Where("sheets.user_id = ?", userID).
		Find(&problems)
	if result.Error != nil {
		logger.Error("Error finding problems by user in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormProblemRepository.FindByUser: %w", result.Error)
	}
	return problems, nil
}

func (r *gormProblemRepository) Update(ctx context.Context, tx *gorm.DB, problemID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Problem{}).Where("problem_id = ?", problemID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating problem in DB",
			"error", result.Error,
			"problem_id", problemID.String(),
		)
		return fmt.Errorf("gormProblemRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormProblemRepository) Delete(ctx context.Context, tx *gorm.DB, problemID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("problem_id = ?", problemID).Delete(&model.Problem{})
	if result.Error != nil {
		logger.Error("Error deleting problem in DB",
			"error", result.Error,
			"problem_id", problemID.String(),
		)
		return fmt.Errorf("gormProblemRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormProblemRepository) DeleteBySheet(ctx context.Context, tx *gorm.DB, sheetID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	// シート削除のカスケード用。0件でもエラーにしない
	result := tx.WithContext(ctx).Where("sheet_id = ?", sheetID).Delete(&model.Problem{})
	if result.Error != nil {
		logger.Error("Error deleting problems by sheet in DB",
			"error", result.Error,
			"sheet_id", sheetID.String(),
		)
		return fmt.Errorf("gormProblemRepository.DeleteBySheet: %w", result.Error)
	}
	return nil
}
