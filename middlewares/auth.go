package middlewares

import (
	"strings"

	"github.com/parodie/restaurantBack/entity"
	"github.com/parodie/restaurantBack/pkg/resp"
	"github.com/parodie/restaurantBack/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthMiddleware validates a staff token and (if any are given) enforces the
// exact roles the endpoint declares. Admin gets no implicit pass on chef or
// waiter endpoints. The user row is reloaded so deactivated staff lose
// access immediately, token or not.
func AuthMiddleware(db *gorm.DB, secret string, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c, "missing or invalid token")
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims, err := utils.ParseStaffToken(tokenStr, secret)
		if err != nil {
			resp.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		var user entity.User
		if err := db.First(&user, claims.UserID).Error; err != nil || !user.Active {
			resp.Unauthorized(c, "account not active")
			c.Abort()
			return
		}
		// The row is authoritative; a stale token can't smuggle an old role.
		role := user.Role

		c.Set("userId", user.ID)
		c.Set("role", role)

		if len(requiredRoles) > 0 {
			allowed := false
			for _, r := range requiredRoles {
				if role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				resp.Forbidden(c, role+" is not allowed here")
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
