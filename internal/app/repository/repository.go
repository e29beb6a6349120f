package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ordermanager/internal/app/apperr"
	"ordermanager/internal/app/ds"
)

type Repository struct {
	db *gorm.DB
}

// New подключается к Postgres и мигрирует схему
func New(dsn string) (*Repository, error) {
	repo, err := Open(dsn)
	if err != nil {
		return nil, err
	}
	if err := repo.Migrate(); err != nil {
		return nil, err
	}
	return repo, nil
}

// Open подключается к Postgres без миграции
func Open(dsn string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return NewWithDB(db), nil
}

// NewWithDB оборачивает уже открытое соединение.
// Соединение должно быть открыто с TranslateError, иначе нарушения
// уникальности не превратятся в ErrConflict.
func NewWithDB(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate создаёт или обновляет таблицы всех моделей
func (r *Repository) Migrate() error {
	err := r.db.AutoMigrate(
		&ds.User{},
		&ds.Parameter{},
		&ds.Service{},
		&ds.ParameterInService{},
		&ds.Order{},
		&ds.ParameterInOrder{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// translateError приводит ошибки gorm к классам apperr
func translateError(err error, format string, args ...any) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.NotFound(format, args...)
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperr.Conflict(err)
	}
	return err
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	verr := apperr.NewValidationError()
	switch {
	case title == "":
		verr.AddField("title", "наименование не может быть пустым")
	case len([]rune(title)) > ds.TitleMaxLength:
		verr.AddField("title", "наименование длиннее 200 символов")
	}
	return title, verr.OrNil()
}
