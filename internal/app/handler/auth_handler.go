package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"

	"ordermanager/internal/app/apperr"
	"ordermanager/internal/app/config"
	"ordermanager/internal/app/ds"
	"ordermanager/internal/app/dto"
	"ordermanager/internal/app/middleware"
	"ordermanager/internal/app/repository"
	"ordermanager/internal/app/role"
)

const tokenIssuer = "ordermanager"

var errBadCredentials = errors.New("неверный логин или пароль")

type AuthHandler struct {
	Repository *repository.Repository
	Auth       *middleware.AuthMiddleware
	Config     *config.Config
}

func NewAuthHandler(r *repository.Repository, am *middleware.AuthMiddleware, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		Repository: r,
		Auth:       am,
		Config:     cfg,
	}
}

// RegisterRoutes регистрирует страницы входа и выхода
func (h *AuthHandler) RegisterRoutes(router *gin.Engine) {
	router.GET(middleware.LoginPath, h.LoginPage)
	router.POST(middleware.LoginPath, h.LoginSubmit)
	router.POST("/logout", h.LogoutSubmit)
}

// IssueToken подписывает JWT с ролью пользователя
func (h *AuthHandler) IssueToken(user *ds.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(h.Config.JWT.SigningMethod, ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(h.Config.JWT.ExpiresIn).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    tokenIssuer,
		},
		UserID: user.ID,
		Role:   role.FromFlags(user.IsStaff, user.IsSuperuser),
	})

	return token.SignedString([]byte(h.Config.JWT.Token))
}

// revoke заносит токен в blacklist на оставшийся срок жизни
func (h *AuthHandler) revoke(ctx *gin.Context, tokenString string) error {
	if h.Auth.Blacklist == nil {
		middleware.Logger(ctx).Warn("token blacklist is not configured, logout only clears the cookie")
		return nil
	}

	claims, err := h.Auth.ParseToken(tokenString)
	if err != nil {
		return err
	}

	ttl := time.Until(time.Unix(claims.ExpiresAt, 0))
	if ttl <= 0 {
		return nil
	}
	return h.Auth.Blacklist.WriteJWTToBlacklist(ctx.Request.Context(), tokenString, ttl)
}

// LoginUser аутентификация пользователя
// @Summary Вход в систему
// @Description Аутентификация пользователя с возвратом JWT токена
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Данные для входа"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) LoginUser(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		errorResponse(ctx, bindingError(err))
		return
	}

	user, err := h.Repository.Authenticate(ctx.Request.Context(), request.Username, request.Password)
	if err != nil {
		errorResponse(ctx, err)
		return
	}

	accessToken, err := h.IssueToken(user)
	if err != nil {
		errorResponse(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Token:     accessToken,
		TokenType: "Bearer",
		ExpiresIn: int(h.Config.JWT.ExpiresIn.Seconds()),
		User:      userResponse(user),
	})
}

// LogoutUser выход пользователя из системы
// @Summary Выход из системы
// @Description Завершение сеанса пользователя с добавлением токена в blacklist
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) LogoutUser(ctx *gin.Context) {
	if err := h.revoke(ctx, middleware.TokenFromRequest(ctx)); err != nil {
		errorResponse(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Status:  "success",
		Message: "пользователь успешно вышел из системы",
	})
}

// GetUserProfile возвращает профиль текущего пользователя
// @Summary Профиль пользователя
// @Description Возвращает информацию о текущем пользователе
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/auth/profile [get]
func (h *AuthHandler) GetUserProfile(ctx *gin.Context) {
	userID, _, _ := middleware.CurrentUser(ctx)

	user, err := h.Repository.GetUserByID(ctx.Request.Context(), userID)
	if err != nil {
		errorResponse(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, userResponse(user))
}

// LoginPage показывает форму входа
func (h *AuthHandler) LoginPage(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "login.html", gin.H{
		"Next": safeNext(ctx.Query("next")),
	})
}

// LoginSubmit проверяет пароль и кладет токен в cookie
func (h *AuthHandler) LoginSubmit(ctx *gin.Context) {
	next := safeNext(ctx.PostForm("next"))
	username := strings.TrimSpace(ctx.PostForm("username"))

	user, err := h.Repository.Authenticate(ctx.Request.Context(), username, ctx.PostForm("password"))
	if err != nil {
		status := apperr.HTTPStatus(err)
		message := errBadCredentials.Error()
		if status >= http.StatusInternalServerError {
			middleware.Logger(ctx).WithError(err).Error("login failed")
			message = "Внутренняя ошибка сервера"
		}
		ctx.HTML(status, "login.html", gin.H{
			"Next":     next,
			"Username": username,
			"Error":    message,
		})
		return
	}

	accessToken, err := h.IssueToken(user)
	if err != nil {
		middleware.Logger(ctx).WithError(err).Error("token signing failed")
		ctx.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"Status":  http.StatusInternalServerError,
			"Message": "Внутренняя ошибка сервера",
		})
		return
	}

	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(middleware.AuthCookie, accessToken, int(h.Config.JWT.ExpiresIn.Seconds()), "/", "", false, true)
	ctx.Redirect(http.StatusFound, next)
}

// LogoutSubmit отзывает токен из cookie и возвращает на страницу входа
func (h *AuthHandler) LogoutSubmit(ctx *gin.Context) {
	if tokenString := middleware.TokenFromRequest(ctx); tokenString != "" {
		if err := h.revoke(ctx, tokenString); err != nil {
			middleware.Logger(ctx).WithError(err).Warn("token was not revoked")
		}
	}

	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(middleware.AuthCookie, "", -1, "/", "", false, true)
	ctx.Redirect(http.StatusFound, middleware.LoginPath)
}

// safeNext пропускает только относительные пути этого сайта
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}

func userResponse(user *ds.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          user.ID,
		Username:    user.Username,
		FullName:    user.FullName,
		IsStaff:     user.IsStaff,
		IsSuperuser: user.IsSuperuser,
	}
}
