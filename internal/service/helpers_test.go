// internal/service/helpers_test.go
package service

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// トランザクションの配管確認用インメモリDB。
// リポジトリはモックするのでマイグレーションは不要。
func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}
