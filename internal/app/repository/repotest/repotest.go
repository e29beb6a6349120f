// Package repotest поднимает репозиторий поверх SQLite в памяти для тестов.
package repotest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ordermanager/internal/app/ds"
	"ordermanager/internal/app/repository"
)

// TestPassword задает пароль всех пользователей, созданных через фикстуры
const TestPassword = "password"

// New открывает отдельную базу в памяти и мигрирует схему.
// Соединение одно: база в памяти живёт, пока живёт соединение.
func New(t testing.TB) (*repository.Repository, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=1"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	repo := repository.NewWithDB(db)
	require.NoError(t, repo.Migrate())
	return repo, db
}

// Customer создаёт пользователя без прав сотрудника
func Customer(t testing.TB, repo *repository.Repository, username string) *ds.User {
	t.Helper()
	user, err := repo.CreateUser(context.Background(), username, TestPassword, "", false, false)
	require.NoError(t, err)
	return user
}

// Staff создаёт сотрудника
func Staff(t testing.TB, repo *repository.Repository, username string) *ds.User {
	t.Helper()
	user, err := repo.CreateUser(context.Background(), username, TestPassword, "", true, false)
	require.NoError(t, err)
	return user
}

// Superuser создаёт суперпользователя
func Superuser(t testing.TB, repo *repository.Repository, username string) *ds.User {
	t.Helper()
	user, err := repo.CreateUser(context.Background(), username, TestPassword, "", false, true)
	require.NoError(t, err)
	return user
}

// Field описывает параметр услуги для фикстуры
type Field struct {
	Title string
	Type  ds.ParameterType
}

// Service создаёт услугу и задаёт ей параметры
func Service(t testing.TB, repo *repository.Repository, title string, fields ...Field) *ds.Service {
	t.Helper()
	ctx := context.Background()

	service, err := repo.CreateService(ctx, title)
	require.NoError(t, err)
	for _, f := range fields {
		parameter, err := repo.EnsureParameter(ctx, f.Title)
		require.NoError(t, err)
		_, err = repo.AssignParameter(ctx, service.ID, parameter.ID, f.Type)
		require.NoError(t, err)
	}

	service, err = repo.GetService(ctx, service.ID)
	require.NoError(t, err)
	return service
}

// Haircut создает услугу с длиной (текст) и датой
func Haircut(t testing.TB, repo *repository.Repository) *ds.Service {
	return Service(t, repo, "Haircut",
		Field{Title: "Length", Type: ds.TypeText},
		Field{Title: "Date", Type: ds.TypeDate},
	)
}

// Count возвращает число строк модели
func Count(t testing.TB, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}
