// repository_integration_test.go
package repository_test

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"testing"
	"time"

	"go_5_sheet_keep/internal/model"
	"go_5_sheet_keep/internal/repository"

	"github.com/google/uuid"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testDB *gorm.DB
var testLogger *slog.Logger

const dbContainerName = "test_postgres_sheet_keep_repo"

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		// -short ではコンテナを起動しない。各テストは testDB == nil でスキップする
		os.Exit(m.Run())
	}

	testLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(testLogger)

	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct pool: %s", err)
	}
	pool.MaxWait = 120 * time.Second

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Name:       dbContainerName,
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=user",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=sheet_keep_test",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("Could not start PostgreSQL resource: %s", err)
	}

	hostAndPort := resource.GetHostPort("5432/tcp")
	gormDSN := fmt.Sprintf("postgres://user:secret@%s/sheet_keep_test?sslmode=disable", hostAndPort)
	testLogger.Info("PostgreSQL container started",
		slog.String("container_name", dbContainerName),
		slog.String("host_port", hostAndPort),
	)

	if err = pool.Retry(func() error {
		var errRetry error
		testDB, errRetry = gorm.Open(postgres.Open(gormDSN), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if errRetry != nil {
			return errRetry
		}
		sqlDB, errRetry := testDB.DB()
		if errRetry != nil {
			testDB = nil
			return errRetry
		}
		return sqlDB.Ping()
	}); err != nil {
		if pErr := pool.Purge(resource); pErr != nil {
			log.Printf("Warning: Could not purge resource after connection retry failed: %s", pErr)
		}
		log.Fatalf("Could not connect to PostgreSQL container after retries: %s", err)
	}

	if err = testDB.AutoMigrate(&model.User{}, &model.Sheet{}, &model.Problem{}); err != nil {
		log.Fatalf("Could not migrate database: %s", err)
	}

	code := m.Run()

	if err := pool.Purge(resource); err != nil {
		log.Fatalf("Could not purge PostgreSQL resource: %s", err)
	}
	os.Exit(code)
}

func requireDB(t *testing.T) *gorm.DB {
	t.Helper()
	if testDB == nil {
		t.Skip("database container not available (short mode)")
	}
	return testDB
}

// clearTables は各テストの独立性を保つため全レコードを物理削除します
func clearTables(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Exec("DELETE FROM problems").Error)
	require.NoError(t, db.Exec("DELETE FROM sheets").Error)
	require.NoError(t, db.Exec("DELETE FROM users").Error)
}

func createTestUser(t *testing.T, db *gorm.DB) *model.User {
	t.Helper()
	user := &model.User{
		UserID:       uuid.New(),
		Username:     fmt.Sprintf("user_%s", uuid.NewString()[:8]),
		PasswordHash: "$2a$10$dummy.hash.value.for.integration.tests",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestSheet(t *testing.T, db *gorm.DB, userID uuid.UUID, title string) *model.Sheet {
	t.Helper()
	sheet := &model.Sheet{
		SheetID: uuid.New(),
		UserID:  userID,
		Title:   title,
	}
	require.NoError(t, db.Create(sheet).Error)
	return sheet
}

func TestGormSheetRepository_Integration(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	repo := repository.NewGormSheetRepository()

	t.Run("正常系: 作成したシートをIDで取得できる", func(t *testing.T) {
		clearTables(t, db)
		user := createTestUser(t, db)

		sheet := &model.Sheet{
			SheetID:     uuid.New(),
			UserID:      user.UserID,
			Title:       "Codeforces Div.2 練習",
			Description: "ABC問題中心",
		}
		require.NoError(t, repo.Create(ctx, db, sheet))

		found, err := repo.FindByID(ctx, db, sheet.SheetID)
		require.NoError(t, err)
		assert.Equal(t, sheet.SheetID, found.SheetID)
		assert.Equal(t, "Codeforces Div.2 練習", found.Title)
		assert.False(t, found.CreatedAt.IsZero())
	})

	t.Run("正常系: FindByUserは作成日時の降順で返す", func(t *testing.T) {
		clearTables(t, db)
		user := createTestUser(t, db)

		older := createTestSheet(t, db, user.UserID, "older")
		// created_at の差を確実につける
		require.NoError(t, db.Model(older).Update("created_at", time.Now().Add(-time.Hour)).Error)
		newer := createTestSheet(t, db, user.UserID, "newer")

		sheets, err := repo.FindByUser(ctx, db, user.UserID)
		require.NoError(t, err)
		require.Len(t, sheets, 2)
		assert.Equal(t, newer.SheetID, sheets[0].SheetID)
		assert.Equal(t, older.SheetID, sheets[1].SheetID)
	})

	t.Run("正常系: 他ユーザーのシートはFindByUserに含まれない", func(t *testing.T) {
		clearTables(t, db)
		owner := createTestUser(t, db)
		other := createTestUser(t, db)
		createTestSheet(t, db, owner.UserID, "owner's sheet")

		sheets, err := repo.FindByUser(ctx, db, other.UserID)
		require.NoError(t, err)
		assert.Empty(t, sheets)
	})

	t.Run("正常系: Deleteは論理削除でFindByIDから見えなくなる", func(t *testing.T) {
		clearTables(t, db)
		user := createTestUser(t, db)
		sheet := createTestSheet(t, db, user.UserID, "to be deleted")

		require.NoError(t, repo.Delete(ctx, db, sheet.SheetID))

		_, err := repo.FindByID(ctx, db, sheet.SheetID)
		assert.ErrorIs(t, err, model.ErrNotFound)

		// レコード自体は deleted_at 付きで残っている
		var count int64
		require.NoError(t, db.Unscoped().Model(&model.Sheet{}).Where("sheet_id = ?", sheet.SheetID).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("異常系: 存在しないシートのDeleteはErrNotFound", func(t *testing.T) {
		clearTables(t, db)
		err := repo.Delete(ctx, db, uuid.New())
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestGormProblemRepository_Integration(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	repo := repository.NewGormProblemRepository()

	newProblem := func(sheetID uuid.UUID, title string) *model.Problem {
		return &model.Problem{
			ProblemID: uuid.New(),
			SheetID:   sheetID,
			Title:     title,
			Link:      "https://codeforces.com/problemset/problem/1/A",
			Platform:  "Codeforces",
			Status:    model.StatusNotStarted,
		}
	}

	t.Run("正常系: FindBySheetは作成日時の昇順で返す", func(t *testing.T) {
		clearTables(t, db)
		user := createTestUser(t, db)
		sheet := createTestSheet(t, db, user.UserID, "ordering")

		first := newProblem(sheet.SheetID, "first")
		require.NoError(t, repo.Create(ctx, db, first))
		require.NoError(t, db.Model(first).Update("created_at", time.Now().Add(-time.Hour)).Error)
		second := newProblem(sheet.SheetID, "second")
		require.NoError(t, repo.Create(ctx, db, second))

		problems, err := repo.FindBySheet(ctx, db, sheet.SheetID)
		require.NoError(t, err)
		require.Len(t, problems, 2)
		assert.Equal(t, "first", problems[0].Title)
		assert.Equal(t, "second", problems[1].Title)
	})

	t.Run("正常系: CreateBatchで複数件を一括登録できる", func(t *testing.T) {
		clearTables(t, db)
		user := createTestUser(t, db)
		sheet := createTestSheet(t, db, user.UserID, "batch")

		batch := []*model.Problem{
			newProblem(sheet.SheetID, "A"),
			newProblem(sheet.SheetID, "B"),
			newProblem(sheet.SheetID, "C"),
		}
		require.NoError(t, repo.CreateBatch(ctx, db, batch))

		problems, err := repo.FindBySheet(ctx, db, sheet.SheetID)
		require.NoError(t, err)
		assert.Len(t, problems, 3)
	})

	t.Run("正常系: Updateでステータスとsolved_atを同時に更新できる", func(t *testing.T) {
		clearTables(t, db)
		user := createTestUser(t, db)
		sheet := createTestSheet(t, db, user.UserID, "update")
		problem := newProblem(sheet.SheetID, "target")
		require.NoError(t, repo.Create(ctx, db, problem))

		now := time.Now()
		err := repo.Update(ctx, db, problem.ProblemID, map[string]interface{}{
			"status":    model.StatusSolved,
			"solved_at": now,
		})
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, db, problem.ProblemID)
		require.NoError(t, err)
		assert.Equal(t, model.StatusSolved, found.Status)
		require.NotNil(t, found.SolvedAt)
		assert.WithinDuration(t, now, *found.SolvedAt, time.Second)

		// 解き直しでステータスを戻すと solved_at は NULL に戻る
		err = repo.Update(ctx, db, problem.ProblemID, map[string]interface{}{
			"status":    model.StatusAttempted,
			"solved_at": nil,
		})
		require.NoError(t, err)

		found, err = repo.FindByID(ctx, db, problem.ProblemID)
		require.NoError(t, err)
		assert.Equal(t, model.StatusAttempted, found.Status)
		assert.Nil(t, found.SolvedAt)
	})

	t.Run("異常系: 存在しない問題のUpdateはErrNotFound", func(t *testing.T) {
		clearTables(t, db)
		err := repo.Update(ctx, db, uuid.New(), map[string]interface{}{"title": "x"})
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("正常系: DeleteBySheetはシート内全問題を削除し0件でもエラーにしない", func(t *testing.T) {
		clearTables(t, db)
		user := createTestUser(t, db)
		sheet := createTestSheet(t, db, user.UserID, "cascade")
		require.NoError(t, repo.CreateBatch(ctx, db, []*model.Problem{
			newProblem(sheet.SheetID, "A"),
			newProblem(sheet.SheetID, "B"),
		}))

		require.NoError(t, repo.DeleteBySheet(ctx, db, sheet.SheetID))
		problems, err := repo.FindBySheet(ctx, db, sheet.SheetID)
		require.NoError(t, err)
		assert.Empty(t, problems)

		// 2回目（0件）でもエラーにならない
		assert.NoError(t, repo.DeleteBySheet(ctx, db, sheet.SheetID))
	})

	t.Run("正常系: FindByUserは論理削除済みシートの問題を除外する", func(t *testing.T) {
		clearTables(t, db)
		user := createTestUser(t, db)
		liveSheet := createTestSheet(t, db, user.UserID, "live")
		deadSheet := createTestSheet(t, db, user.UserID, "dead")

		require.NoError(t, repo.Create(ctx, db, newProblem(liveSheet.SheetID, "visible")))
		require.NoError(t, repo.Create(ctx, db, newProblem(deadSheet.SheetID, "hidden")))

		require.NoError(t, db.Where("sheet_id = ?", deadSheet.SheetID).Delete(&model.Sheet{}).Error)

		problems, err := repo.FindByUser(ctx, db, user.UserID)
		require.NoError(t, err)
		require.Len(t, problems, 1)
		assert.Equal(t, "visible", problems[0].Title)
	})
}

func TestGormUserRepository_Integration(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	repo := repository.NewGormUserRepository()

	t.Run("正常系: ユーザー名で検索できる", func(t *testing.T) {
		clearTables(t, db)
		user := &model.User{
			UserID:       uuid.New(),
			Username:     "tourist",
			PasswordHash: "$2a$10$dummy.hash",
		}
		require.NoError(t, repo.Create(ctx, db, user))

		found, err := repo.FindByUsername(ctx, db, "tourist")
		require.NoError(t, err)
		assert.Equal(t, user.UserID, found.UserID)
	})

	t.Run("異常系: 未登録のユーザー名はErrNotFound", func(t *testing.T) {
		clearTables(t, db)
		_, err := repo.FindByUsername(ctx, db, "nobody")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("異常系: ユーザー名の重複はErrConflict", func(t *testing.T) {
		clearTables(t, db)
		first := &model.User{UserID: uuid.New(), Username: "dup", PasswordHash: "h"}
		require.NoError(t, repo.Create(ctx, db, first))

		second := &model.User{UserID: uuid.New(), Username: "dup", PasswordHash: "h"}
		err := repo.Create(ctx, db, second)
		assert.ErrorIs(t, err, model.ErrConflict)
	})
}
