//go:generate mockery --name SheetService --structname MockSheetService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"

	"go_5_sheet_keep/internal/middleware"
	"go_5_sheet_keep/internal/model"
	"go_5_sheet_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SheetService interface {
	CreateSheet(ctx context.Context, userID uuid.UUID, req *model.PostSheetRequest) (*model.Sheet, error)
	GetSheet(ctx context.Context, userID, sheetID uuid.UUID) (*model.Sheet, error)
	ListSheets(ctx context.Context, userID uuid.UUID) ([]*model.Sheet, error)
	DeleteSheet(ctx context.Context, userID, sheetID uuid.UUID) error
}

type sheetService struct {
	db          *gorm.DB // トランザクション用にDB接続を持つ
	sheetRepo   repository.SheetRepository
	problemRepo repository.ProblemRepository
}

func NewSheetService(db *gorm.DB, sheetRepo repository.SheetRepository, problemRepo repository.ProblemRepository) SheetService {
	return &sheetService{
		db:          db,
		sheetRepo:   sheetRepo,
		problemRepo: problemRepo,
	}
}

func (s *sheetService) CreateSheet(ctx context.Context, userID uuid.UUID, req *model.PostSheetRequest) (*model.Sheet, error) {
	logger := middleware.GetLogger(ctx)

	sheet := &model.Sheet{
		SheetID:     uuid.New(),
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
	}

	if err := s.sheetRepo.Create(ctx, s.db, sheet); err != nil {
		logger.Error("Error creating sheet", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "シートの作成に失敗しました。", "", err)
	}

	return sheet, nil
}

// GetSheet は所有者チェック付きでシートを取得します。
// 他ユーザーのシートは存在しないものとして扱います (404)。
func (s *sheetService) GetSheet(ctx context.Context, userID, sheetID uuid.UUID) (*model.Sheet, error) {
	sheet, err := s.sheetRepo.FindByID(ctx, s.db, sheetID)
	if err != nil {
		// エラーはリポジトリで変換済みのはず
		return nil, err
	}
	if sheet.UserID != userID {
		return nil, model.ErrNotFound
	}
	return sheet, nil
}

func (s *sheetService) ListSheets(ctx context.Context, userID uuid.UUID) ([]*model.Sheet, error) {
	logger := middleware.GetLogger(ctx)
	sheets, err := s.sheetRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Error listing sheets", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "シート一覧の取得に失敗しました。", "", err)
	}
	return sheets, nil
}

// DeleteSheet はシートとそのシートに属する問題を1トランザクションで削除します。
func (s *sheetService) DeleteSheet(ctx context.Context, userID, sheetID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 存在確認と所有者チェック
		sheet, err := s.sheetRepo.FindByID(ctx, tx, sheetID)
		if err != nil {
			return err // model.ErrNotFound or wrapped error
		}
		if sheet.UserID != userID {
			return model.ErrNotFound
		}

		// 2. 問題を先に削除 (カスケード)
		if err := s.problemRepo.DeleteBySheet(ctx, tx, sheetID); err != nil {
			logger.Error("Error cascading problem deletion", "error", err, "sheet_id", sheetID.String())
			return model.NewAppError("INTERNAL_SERVER_ERROR", "シート内の問題の削除に失敗しました。", "", err)
		}

		// 3. シート本体を削除
		if err := s.sheetRepo.Delete(ctx, tx, sheetID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.ErrNotFound
			}
			logger.Error("Error deleting sheet", "error", err, "sheet_id", sheetID.String())
			return model.NewAppError("INTERNAL_SERVER_ERROR", "シートの削除に失敗しました。", "", err)
		}
		return nil // コミット
	})

	return err
}
