// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		URL         string `mapstructure:"url"`
		AutoMigrate bool   `mapstructure:"auto_migrate"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	JWT struct {
		SecretKey     string `mapstructure:"secret_key"`
		ExpiryMinutes int    `mapstructure:"expiry_minutes"`
	} `mapstructure:"jwt"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
	App struct {
		// 一括インポートで受け付けるファイルサイズ上限 (MiB)
		MaxUploadSizeMB int64 `mapstructure:"max_upload_size_mb"`
	} `mapstructure:"app"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	// 環境変数での上書き (例: APP_DATABASE_URL, APP_JWT_SECRET_KEY)
	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- デフォルト値の設定 ---
	if Cfg.Server.Port == "" {
		log.Printf("Server port not set, using default '%s'", DefaultServerPort)
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.Log.Level == "" {
		Cfg.Log.Level = DefaultLogLevel
	}
	if Cfg.App.MaxUploadSizeMB <= 0 {
		Cfg.App.MaxUploadSizeMB = DefaultMaxUploadSizeMB
	}
	if Cfg.JWT.ExpiryMinutes <= 0 {
		Cfg.JWT.ExpiryMinutes = DefaultJWTExpiryMinutes
	}
	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	if Cfg.JWT.SecretKey == "" {
		log.Println("Warning: JWT secret key is not set in config.")
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Log Level: %s", Cfg.Log.Level)
	log.Printf("Auto Migrate: %t", Cfg.Database.AutoMigrate)

	return nil
}
