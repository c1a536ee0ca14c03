//go:generate mockery --name StatsService --structname MockStatsService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"sort"
	"time"

	"go_5_sheet_keep/internal/middleware"
	"go_5_sheet_keep/internal/model"
	"go_5_sheet_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StatsService interface {
	GetDashboardStats(ctx context.Context, userID uuid.UUID) (*model.DashboardStats, error)
}

type statsService struct {
	db          *gorm.DB
	problemRepo repository.ProblemRepository
}

func NewStatsService(db *gorm.DB, problemRepo repository.ProblemRepository) StatsService {
	return &statsService{
		db:          db,
		problemRepo: problemRepo,
	}
}

func (s *statsService) GetDashboardStats(ctx context.Context, userID uuid.UUID) (*model.DashboardStats, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	problems, err := s.problemRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to find problems for stats", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "統計情報の取得に失敗しました。", "", err)
	}

	stats := BuildDashboardStats(problems, time.Now())
	logger.Info("Dashboard stats computed",
		"total_problems", stats.TotalProblems,
		"total_solved", stats.TotalSolved,
	)
	return stats, nil
}

// BuildDashboardStats はユーザーの全問題スナップショットからダッシュボード統計を計算します。
// 入力には副作用を与えない純粋な計算です。
//   - solvedToday は now のローカル日付 (0時) を境界に数えます
//   - progress は解答日時のUTC日付 (YYYY-MM-DD) ごとに集計し、日付昇順で返します。
//     解答日時を持たない Solved はヒストグラムから除外します
func BuildDashboardStats(problems []*model.Problem, now time.Time) *model.DashboardStats {
	totalProblems := len(problems)

	solvedProblems := make([]*model.Problem, 0, len(problems))
	for _, p := range problems {
		if p.Status == model.StatusSolved {
			solvedProblems = append(solvedProblems, p)
		}
	}
	totalSolved := len(solvedProblems)

	// 当日0時 (ローカル) 以降に解いた問題を数える
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	solvedToday := 0
	for _, p := range solvedProblems {
		if p.SolvedAt != nil && !p.SolvedAt.Before(today) {
			solvedToday++
		}
	}

	// 日付ごとの解答数を集計
	countsByDate := make(map[string]int)
	for _, p := range solvedProblems {
		if p.SolvedAt == nil {
			continue
		}
		dateStr := p.SolvedAt.UTC().Format("2006-01-02")
		countsByDate[dateStr]++
	}

	progress := make([]model.DailyProgress, 0, len(countsByDate))
	for date, count := range countsByDate {
		progress = append(progress, model.DailyProgress{Date: date, Count: count})
	}
	// ISO日付の辞書順ソートは時系列順と等価
	sort.Slice(progress, func(i, j int) bool {
		return progress[i].Date < progress[j].Date
	})

	return &model.DashboardStats{
		TotalProblems: totalProblems,
		TotalSolved:   totalSolved,
		SolvedToday:   solvedToday,
		Progress:      progress,
	}
}
