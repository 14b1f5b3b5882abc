// Package db はGORMによるデータベース接続とマイグレーションを提供します。
package db

import (
	"fmt"
	"log"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"pagegen_backend/internal/feature/auth/domain/entity"
	"pagegen_backend/internal/platform/config"
)

// connectDeadline はDB接続リトライの上限時間です。
const connectDeadline = 60 * time.Second

// BuildDSN builds a PostgreSQL DSN from the database settings.
func BuildDSN(cfg config.Config) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)
}

// OpenDB opens the credential store and runs migrations.
//
// DB_HOSTが設定されている場合はPostgreSQLに接続し、未設定の場合は
// ローカル開発用にSQLiteファイルへフォールバックします。
// TranslateErrorを有効にしているため、一意制約違反はドライバに依らず
// gorm.ErrDuplicatedKeyとして検出できます（メール重複の検出ポイント）。
func OpenDB(cfg config.Config) *gorm.DB {
	gormCfg := &gorm.Config{TranslateError: true}

	var (
		db  *gorm.DB
		err error
	)

	if cfg.DBHost != "" {
		dsn := BuildDSN(cfg)
		deadline := time.Now().Add(connectDeadline)
		for {
			db, err = gorm.Open(gpostgres.Open(dsn), gormCfg)
			if err == nil {
				break
			}
			if time.Now().After(deadline) {
				log.Fatalf("DB connect failed after %s: %v", connectDeadline, err)
			}
			log.Printf("DB connect failed, retrying...: %v", err)
			time.Sleep(3 * time.Second)
		}
	} else {
		db, err = gorm.Open(sqlite.Open(cfg.SQLitePath), gormCfg)
		if err != nil {
			log.Fatalf("failed to open sqlite database %s: %v", cfg.SQLitePath, err)
		}
		log.Printf("USING_SQLITE: %s", cfg.SQLitePath)
	}

	// マイグレーション（永続状態はユーザーテーブルのみ）
	if err := db.AutoMigrate(&entity.User{}); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
