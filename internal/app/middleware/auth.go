package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	log "github.com/sirupsen/logrus"

	"ordermanager/internal/app/apperr"
	"ordermanager/internal/app/config"
	"ordermanager/internal/app/ds"
	"ordermanager/internal/app/dto"
	"ordermanager/internal/app/role"
)

// AuthCookie хранит JWT для HTML-страниц
const AuthCookie = "auth_token"

// LoginPath: сюда перенаправляются анонимные запросы страниц
const LoginPath = "/login"

// TokenBlacklist хранит отозванные токены
type TokenBlacklist interface {
	IsJWTBlacklisted(ctx context.Context, jwtStr string) (bool, error)
	WriteJWTToBlacklist(ctx context.Context, jwtStr string, jwtTTL time.Duration) error
}

type AuthMiddleware struct {
	Blacklist TokenBlacklist // nil, если Redis не настроен
	Config    *config.Config
}

func NewAuthMiddleware(blacklist TokenBlacklist, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		Blacklist: blacklist,
		Config:    cfg,
	}
}

// WithAuthCheck проверяет токен и роль для REST API: 401/403 в JSON.
// Без ролей пропускает любого авторизованного пользователя.
func (am *AuthMiddleware) WithAuthCheck(assignedRoles ...role.Role) gin.HandlerFunc {
	return func(gCtx *gin.Context) {
		claims, err := am.authenticate(gCtx)
		if err == nil && !hasRequiredRole(claims.Role, assignedRoles) {
			err = apperr.ErrPermissionDenied
		}
		if err != nil {
			status := apperr.HTTPStatus(err)
			gCtx.AbortWithStatusJSON(status, dto.ErrorResponse{
				Status:  "fail",
				Message: err.Error(),
			})
			return
		}

		setUser(gCtx, claims)
		gCtx.Next()
	}
}

// WithPageAuth проверяет токен и роль для HTML-страниц:
// анонимный запрос уходит на страницу входа, чужая роль получает 403
func (am *AuthMiddleware) WithPageAuth(assignedRoles ...role.Role) gin.HandlerFunc {
	return func(gCtx *gin.Context) {
		claims, err := am.authenticate(gCtx)
		if err != nil {
			gCtx.Redirect(http.StatusFound, LoginPath+"?next="+url.QueryEscape(gCtx.Request.URL.RequestURI()))
			gCtx.Abort()
			return
		}
		if !hasRequiredRole(claims.Role, assignedRoles) {
			gCtx.HTML(http.StatusForbidden, "error.html", gin.H{
				"Status":  http.StatusForbidden,
				"Message": apperr.ErrPermissionDenied.Error(),
			})
			gCtx.Abort()
			return
		}

		setUser(gCtx, claims)
		gCtx.Next()
	}
}

func hasRequiredRole(userRole role.Role, assignedRoles []role.Role) bool {
	if len(assignedRoles) == 0 {
		return true
	}
	for _, required := range assignedRoles {
		if userRole.Satisfies(required) {
			return true
		}
	}
	return false
}

// authenticate достает токен из заголовка Authorization или cookie и проверяет его
func (am *AuthMiddleware) authenticate(gCtx *gin.Context) (*ds.JWTClaims, error) {
	jwtStr := TokenFromRequest(gCtx)
	if jwtStr == "" {
		return nil, apperr.ErrAuthenticationRequired
	}

	if am.Blacklist != nil {
		revoked, err := am.Blacklist.IsJWTBlacklisted(gCtx.Request.Context(), jwtStr)
		if err != nil {
			// при сбое Redis токен не принимается
			log.WithError(err).WithField("path", gCtx.Request.URL.Path).Error("token blacklist unavailable")
			return nil, fmt.Errorf("%w: blacklist lookup: %v", apperr.ErrAuthenticationRequired, err)
		}
		if revoked {
			log.WithField("path", gCtx.Request.URL.Path).Debug("revoked token rejected")
			return nil, apperr.ErrAuthenticationRequired
		}
	}

	return am.ParseToken(jwtStr)
}

// ParseToken парсит и валидирует JWT токен
func (am *AuthMiddleware) ParseToken(jwtStr string) (*ds.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(jwtStr, &ds.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != am.Config.JWT.SigningMethod.Alg() {
			return nil, fmt.Errorf("unexpected signing method %s", token.Method.Alg())
		}
		if am.Config.JWT.Token == "" {
			return nil, errors.New("jwt secret is not configured")
		}
		return []byte(am.Config.JWT.Token), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrAuthenticationRequired, err)
	}

	claims, ok := token.Claims.(*ds.JWTClaims)
	if !ok || !token.Valid {
		return nil, apperr.ErrAuthenticationRequired
	}
	return claims, nil
}

// TokenFromRequest возвращает JWT из заголовка Authorization или cookie
func TokenFromRequest(gCtx *gin.Context) string {
	if header := gCtx.GetHeader("Authorization"); header != "" {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := gCtx.Cookie(AuthCookie); err == nil {
		return cookie
	}
	return ""
}
