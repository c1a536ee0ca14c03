// internal/model/problem.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProblemStatus は問題の取り組み状況を表します。
// UIが意味を持つのは3値のみで、それ以外の値はバリデーションエラーとして扱います。
type ProblemStatus string

const (
	StatusNotStarted ProblemStatus = "Not Started"
	StatusAttempted  ProblemStatus = "Attempted"
	StatusSolved     ProblemStatus = "Solved"
)

// IsValid は既知のステータス値かどうかを返します。
func (s ProblemStatus) IsValid() bool {
	switch s {
	case StatusNotStarted, StatusAttempted, StatusSolved:
		return true
	}
	return false
}

// Problem はシート内の1問題を表します
type Problem struct {
	ProblemID  uuid.UUID      `gorm:"type:uuid;primaryKey" json:"problem_id"`
	SheetID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"sheet_id"`
	Title      string         `gorm:"not null" json:"title"`
	Link       string         `gorm:"not null" json:"link"`
	Platform   string         `gorm:"not null" json:"platform"` // 例: "Codeforces"
	Status     ProblemStatus  `gorm:"not null;default:'Not Started'" json:"status"`
	Difficulty string         `json:"difficulty,omitempty"`
	Topic      string         `json:"topic,omitempty"`
	Notes      string         `json:"notes,omitempty"`
	SolvedAt   *time.Time     `json:"solved_at,omitempty"` // Status==Solved のとき非NULL
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// 関連 (Preload用)
	Sheet *Sheet `gorm:"foreignKey:SheetID;references:SheetID" json:"-"`
}

func (Problem) TableName() string {
	return "problems"
}

// 問題作成リクエストDTO
type PostProblemRequest struct {
	Title      string `json:"title" validate:"required,min=1,max=300"`
	Link       string `json:"link" validate:"required,url"`
	Platform   string `json:"platform" validate:"required,min=1,max=100"`
	Status     string `json:"status,omitempty" validate:"omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
	Topic      string `json:"topic,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// 問題更新（部分）リクエストDTO
// PUT だが原典の挙動に合わせ、指定されたフィールドのみ更新する
type PutProblemRequest struct {
	Title      *string `json:"title,omitempty" validate:"omitempty,min=1,max=300"`
	Link       *string `json:"link,omitempty" validate:"omitempty,url"`
	Platform   *string `json:"platform,omitempty" validate:"omitempty,min=1,max=100"`
	Status     *string `json:"status,omitempty"`
	Difficulty *string `json:"difficulty,omitempty"`
	Topic      *string `json:"topic,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}
