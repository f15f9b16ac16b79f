package middlewares

import (
	"strings"

	"github.com/parodie/restaurantBack/entity"
	"github.com/parodie/restaurantBack/pkg/resp"
	"github.com/parodie/restaurantBack/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DeviceAuthMiddleware resolves a table from a signed device token. The
// token alone is not enough: table number AND device id must still match the
// Table row, and the table must be active. Resetting a table therefore
// revokes every token issued for its old device id.
func DeviceAuthMiddleware(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c, "missing or invalid device token")
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims, err := utils.ParseDeviceToken(tokenStr, secret)
		if err != nil {
			resp.Unauthorized(c, "invalid device token")
			c.Abort()
			return
		}

		var table entity.Table
		err = db.Where("table_num = ? AND device_id = ?", claims.TableNum, claims.DeviceID).
			First(&table).Error
		if err != nil || !table.Active {
			resp.Unauthorized(c, "table not found or device mismatch")
			c.Abort()
			return
		}

		c.Set("table", &table)
		c.Next()
	}
}
