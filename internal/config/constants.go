// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "SheetKeep"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort       = ":8080"
	DefaultLogLevel         = "info"
	DefaultMaxUploadSizeMB  = 10
	DefaultJWTExpiryMinutes = 60 * 24
)
