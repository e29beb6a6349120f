package repository

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"ordermanager/internal/app/apperr"
	"ordermanager/internal/app/ds"
)

// Методы для пользователей (ORM)

func (r *Repository) GetUserByID(ctx context.Context, id uint) (*ds.User, error) {
	var user ds.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		return nil, translateError(err, "пользователь %d", id)
	}
	return &user, nil
}

func (r *Repository) GetUserByUsername(ctx context.Context, username string) (*ds.User, error) {
	var user ds.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, translateError(err, "пользователь %q", username)
	}
	return &user, nil
}

func (r *Repository) ListUsers(ctx context.Context) ([]ds.User, error) {
	var users []ds.User
	err := r.db.WithContext(ctx).Order("username").Find(&users).Error
	return users, err
}

// CreateUser сохраняет пользователя с bcrypt-хешем пароля
func (r *Repository) CreateUser(ctx context.Context, username, password, fullName string, isStaff, isSuperuser bool) (*ds.User, error) {
	username = strings.TrimSpace(username)
	verr := apperr.NewValidationError()
	if username == "" {
		verr.AddField("username", "логин не может быть пустым")
	}
	if len(password) < 6 {
		verr.AddField("password", "пароль короче 6 символов")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := ds.User{
		Username:    username,
		Password:    string(hash),
		FullName:    fullName,
		IsStaff:     isStaff,
		IsSuperuser: isSuperuser,
	}

	err = r.db.WithContext(ctx).Create(&user).Error
	if err != nil {
		return nil, translateError(err, "пользователь %q", username)
	}

	return &user, nil
}

// Authenticate проверяет логин и пароль
func (r *Repository) Authenticate(ctx context.Context, username, password string) (*ds.User, error) {
	user, err := r.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrAuthenticationRequired
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperr.ErrAuthenticationRequired
	}
	return user, nil
}
