package middleware

import (
	"github.com/gin-gonic/gin"

	"ordermanager/internal/app/ds"
	"ordermanager/internal/app/role"
)

const (
	userIDKey   = "userID"
	userRoleKey = "userRole"
)

func setUser(gCtx *gin.Context, claims *ds.JWTClaims) {
	gCtx.Set(userIDKey, claims.UserID)
	gCtx.Set(userRoleKey, claims.Role)
}

// CurrentUser возвращает пользователя, проверенного WithAuthCheck или WithPageAuth
func CurrentUser(gCtx *gin.Context) (uint, role.Role, bool) {
	id, ok := gCtx.Get(userIDKey)
	if !ok {
		return 0, role.Customer, false
	}
	userRole, _ := gCtx.Get(userRoleKey)
	r, _ := userRole.(role.Role)
	userID, ok := id.(uint)
	return userID, r, ok
}
