//go:generate mockery --name ImportService --structname MockImportService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"time"

	"go_5_sheet_keep/internal/importer"
	"go_5_sheet_keep/internal/middleware"
	"go_5_sheet_keep/internal/model"
	"go_5_sheet_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ImportService interface {
	ImportSheet(ctx context.Context, userID uuid.UUID, filename string, data []byte) (*model.BulkImportResponse, error)
}

type importService struct {
	db          *gorm.DB
	sheetRepo   repository.SheetRepository
	problemRepo repository.ProblemRepository
}

func NewImportService(db *gorm.DB, sheetRepo repository.SheetRepository, problemRepo repository.ProblemRepository) ImportService {
	return &importService{
		db:          db,
		sheetRepo:   sheetRepo,
		problemRepo: problemRepo,
	}
}

// ImportSheet はアップロードされたファイルを解析し、シート1件と
// その問題群を1トランザクションで作成します。部分的な永続化は行いません。
func (s *importService) ImportSheet(ctx context.Context, userID uuid.UUID, filename string, data []byte) (*model.BulkImportResponse, error) {
	logger := middleware.GetLogger(ctx)

	result, err := importer.Parse(data, filename, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, importer.ErrNoValidProblems):
			// 解析失敗とは区別して返す
			logger.Info("Import rejected: no valid problems", "filename", filename)
			return nil, model.NewAppError("NO_VALID_PROBLEMS", "ファイル内に有効な問題が見つかりませんでした。", "", model.ErrInvalidInput)
		case errors.Is(err, importer.ErrParse):
			logger.Warn("Import rejected: parse failure", "filename", filename, "error", err)
			return nil, model.NewAppError("PARSE_ERROR", "ファイルの解析に失敗しました。", "", model.ErrInvalidInput)
		default:
			logger.Error("Unexpected importer error", "error", err)
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "ファイルの処理中にエラーが発生しました。", "", err)
		}
	}

	sheet := &model.Sheet{
		SheetID:     uuid.New(),
		UserID:      userID,
		Title:       result.Sheet.Title,
		Description: result.Sheet.Description,
	}

	problems := make([]*model.Problem, 0, len(result.Problems))
	for _, p := range result.Problems {
		problems = append(problems, &model.Problem{
			ProblemID:  uuid.New(),
			SheetID:    sheet.SheetID,
			Title:      p.Title,
			Link:       p.Link,
			Platform:   p.Platform,
			Status:     p.Status,
			Difficulty: p.Difficulty,
			Topic:      p.Topic,
			Notes:      p.Notes,
		})
	}

	// シートと問題群の作成は原子的に行う
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.sheetRepo.Create(ctx, tx, sheet); err != nil {
			logger.Error("Error creating imported sheet in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "シートの作成に失敗しました。", "", err)
		}
		if err := s.problemRepo.CreateBatch(ctx, tx, problems); err != nil {
			logger.Error("Error creating imported problems in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "問題の作成に失敗しました。", "", err)
		}
		return nil // コミット
	})
	if err != nil {
		return nil, err
	}

	responseProblems := make([]model.Problem, 0, len(problems))
	for _, p := range problems {
		responseProblems = append(responseProblems, *p)
	}

	logger.Info("Sheet imported",
		"sheet_id", sheet.SheetID.String(),
		"filename", filename,
		"problem_count", len(problems),
	)

	return &model.BulkImportResponse{
		SheetName:     sheet.Title,
		TotalProblems: len(problems),
		Problems:      responseProblems,
	}, nil
}
