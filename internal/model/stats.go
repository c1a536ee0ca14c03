// internal/model/stats.go
package model

// DailyProgress は1日分の解答数です。Date は "YYYY-MM-DD" 形式。
type DailyProgress struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// DashboardStats はダッシュボード統計のスナップショットです。
type DashboardStats struct {
	TotalProblems int             `json:"totalProblems"`
	TotalSolved   int             `json:"totalSolved"`
	SolvedToday   int             `json:"solvedToday"`
	Progress      []DailyProgress `json:"progress"`
}

// BulkImportResponse は一括インポート成功時のレスポンスです。
type BulkImportResponse struct {
	SheetName     string    `json:"sheet_name"`
	TotalProblems int       `json:"total_problems"`
	Problems      []Problem `json:"problems"`
}
