//go:generate mockery --name ProblemService --structname MockProblemService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"time"

	"go_5_sheet_keep/internal/middleware"
	"go_5_sheet_keep/internal/model"
	"go_5_sheet_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProblemService interface {
	CreateProblem(ctx context.Context, userID, sheetID uuid.UUID, req *model.PostProblemRequest) (*model.Problem, error)
	ListProblems(ctx context.Context, userID, sheetID uuid.UUID) ([]*model.Problem, error)
	UpdateProblem(ctx context.Context, userID, problemID uuid.UUID, req *model.PutProblemRequest) (*model.Problem, error)
	DeleteProblem(ctx context.Context, userID, problemID uuid.UUID) error
}

type problemService struct {
	db          *gorm.DB
	sheetRepo   repository.SheetRepository
	problemRepo repository.ProblemRepository
}

func NewProblemService(db *gorm.DB, sheetRepo repository.SheetRepository, problemRepo repository.ProblemRepository) ProblemService {
	return &problemService{
		db:          db,
		sheetRepo:   sheetRepo,
		problemRepo: problemRepo,
	}
}

func (s *problemService) CreateProblem(ctx context.Context, userID, sheetID uuid.UUID, req *model.PostProblemRequest) (*model.Problem, error) {
	logger := middleware.GetLogger(ctx)

	status := model.StatusNotStarted
	if req.Status != "" {
		status = model.ProblemStatus(req.Status)
		if !status.IsValid() {
			return nil, model.NewAppError("VALIDATION_ERROR", "ステータスの値が正しくありません。", "status", model.ErrInvalidInput)
		}
	}

	var createdProblem *model.Problem

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. シートの存在確認と所有者チェック
		sheet, err := s.sheetRepo.FindByID(ctx, tx, sheetID)
		if err != nil {
			return err
		}
		if sheet.UserID != userID {
			return model.ErrNotFound
		}

		// 2. 問題を作成。Solved で作成された場合は解答日時も同時に立てる
		problem := &model.Problem{
			ProblemID:  uuid.New(),
			SheetID:    sheetID,
			Title:      req.Title,
			Link:       req.Link,
			Platform:   req.Platform,
			Status:     status,
			Difficulty: req.Difficulty,
			Topic:      req.Topic,
			Notes:      req.Notes,
		}
		if status == model.StatusSolved {
			now := time.Now()
			problem.SolvedAt = &now
		}

		if err := s.problemRepo.Create(ctx, tx, problem); err != nil {
			logger.Error("Error creating problem in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "問題の作成に失敗しました。", "", err)
		}

		createdProblem = problem
		return nil // コミット
	})

	if err != nil {
		return nil, err
	}

	return createdProblem, nil
}

func (s *problemService) ListProblems(ctx context.Context, userID, sheetID uuid.UUID) ([]*model.Problem, error) {
	logger := middleware.GetLogger(ctx)

	// シートの存在確認と所有者チェック
	sheet, err := s.sheetRepo.FindByID(ctx, s.db, sheetID)
	if err != nil {
		return nil, err
	}
	if sheet.UserID != userID {
		return nil, model.ErrNotFound
	}

	problems, err := s.problemRepo.FindBySheet(ctx, s.db, sheetID)
	if err != nil {
		logger.Error("Error listing problems", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "問題一覧の取得に失敗しました。", "", err)
	}
	return problems, nil
}

// UpdateProblem は問題を部分更新します。ステータス遷移と解答日時の整合は
// 同一トランザクション内で必ず一緒に適用します:
//   - Solved への遷移   → solved_at に現在時刻を設定
//   - Solved 以外への遷移 → solved_at をクリア
//   - ステータス未指定   → solved_at には触れない
func (s *problemService) UpdateProblem(ctx context.Context, userID, problemID uuid.UUID, req *model.PutProblemRequest) (*model.Problem, error) {
	logger := middleware.GetLogger(ctx)
	var updatedProblem *model.Problem

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 問題の存在確認と所有者チェック (シート経由)
		problem, err := s.problemRepo.FindByID(ctx, tx, problemID)
		if err != nil {
			return err
		}
		sheet, err := s.sheetRepo.FindByID(ctx, tx, problem.SheetID)
		if err != nil {
			return err
		}
		if sheet.UserID != userID {
			return model.ErrNotFound
		}

		// 2. 更新内容の準備
		updates := make(map[string]interface{})
		if req.Title != nil {
			updates["title"] = *req.Title
		}
		if req.Link != nil {
			updates["link"] = *req.Link
		}
		if req.Platform != nil {
			updates["platform"] = *req.Platform
		}
		if req.Difficulty != nil {
			updates["difficulty"] = *req.Difficulty
		}
		if req.Topic != nil {
			updates["topic"] = *req.Topic
		}
		if req.Notes != nil {
			updates["notes"] = *req.Notes
		}

		if req.Status != nil {
			status := model.ProblemStatus(*req.Status)
			if !status.IsValid() {
				return model.NewAppError("VALIDATION_ERROR", "ステータスの値が正しくありません。", "status", model.ErrInvalidInput)
			}
			updates["status"] = status
			if status == model.StatusSolved {
				updates["solved_at"] = time.Now()
			} else {
				updates["solved_at"] = nil
			}
		}

		// 3. 更新実行 (更新内容がある場合のみ)
		if len(updates) > 0 {
			if err := s.problemRepo.Update(ctx, tx, problemID, updates); err != nil {
				if errors.Is(err, model.ErrNotFound) {
					return model.ErrNotFound
				}
				logger.Error("Error updating problem in transaction", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "問題の更新に失敗しました。", "", err)
			}
		}

		// 更新後のデータを取得 (トランザクション内で取得するのが確実)
		updatedProblem, err = s.problemRepo.FindByID(ctx, tx, problemID)
		if err != nil {
			logger.Error("Error fetching updated problem in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "更新後の問題の取得に失敗しました。", "", err)
		}

		return nil // コミット
	})

	if err != nil {
		return nil, err
	}

	return updatedProblem, nil
}

func (s *problemService) DeleteProblem(ctx context.Context, userID, problemID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 存在確認と所有者チェック
		problem, err := s.problemRepo.FindByID(ctx, tx, problemID)
		if err != nil {
			return err
		}
		sheet, err := s.sheetRepo.FindByID(ctx, tx, problem.SheetID)
		if err != nil {
			return err
		}
		if sheet.UserID != userID {
			return model.ErrNotFound
		}

		// 2. 削除実行
		if err := s.problemRepo.Delete(ctx, tx, problemID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.ErrNotFound
			}
			logger.Error("Error deleting problem", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "問題の削除に失敗しました。", "", err)
		}
		return nil // コミット
	})
}
