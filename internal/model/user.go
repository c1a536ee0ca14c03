package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ユーザーの基本情報
type User struct {
	UserID       uuid.UUID      `gorm:"type:uuid;primaryKey" json:"user_id"`
	Username     string         `gorm:"unique;not null" json:"username"`
	PasswordHash string         `gorm:"not null" json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// GORM用のリレーション (JSONには含めない)
	Sheets []Sheet `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}

type ContextKey string

const (
	UserIDKey ContextKey = "userID"
)

// RegisterRequest は新規登録APIのリクエストボディの構造体 (DTO)
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest はログインAPIのリクエストボディ
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse はログイン成功時のレスポンス
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// UserResponse はクライアントに返すユーザー情報の構造体
type UserResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
