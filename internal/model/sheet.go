// internal/model/sheet.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sheet は問題をまとめる「シート」を表します
type Sheet struct {
	SheetID     uuid.UUID      `gorm:"type:uuid;primaryKey" json:"sheet_id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `json:"description,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"` // 論理削除用

	// 関連 (Preload用)
	Problems []Problem `gorm:"foreignKey:SheetID;references:SheetID" json:"-"`
}

func (Sheet) TableName() string {
	return "sheets"
}

// シート作成リクエストDTO
type PostSheetRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description,omitempty" validate:"omitempty,max=1000"`
}
