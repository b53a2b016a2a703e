package middleware

import (
	"net/http"
	"time"

	"retroboard/internal/errs"
	"retroboard/internal/models"
	"retroboard/internal/store"
	"retroboard/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	CheckUserKey  = "user"
	SessionUserID = "user_id"
)

// UserCache keeps recently loaded users so every request does not hit the users table.
type UserCache = utils.Cache[string, *models.User]

func NewUserCache() *UserCache {
	return utils.NewCache[string, *models.User](1024, time.Minute)
}

// AuthRequired rejects requests LoadUser could not attach a user to.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errs.NewUnauthorizedError("login required"))
			return
		}
		c.Next()
	}
}

// LoadUser retrieves user from cookie session and sets it on the context.
// A stale id (user deleted) is dropped from the cookie.
func LoadUser(st store.Store, cache *UserCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID, _ := session.Get(SessionUserID).(string)
		if userID == "" {
			c.Next()
			return
		}

		if user, ok := cache.Get(userID); ok {
			c.Set(CheckUserKey, user)
			c.Next()
			return
		}

		user, err := st.GetUser(c.Request.Context(), userID)
		switch {
		case err != nil:
			zerolog.Ctx(c.Request.Context()).Error().Err(err).Str("user_id", userID).Msg("failed to load user")
		case user == nil:
			session.Delete(SessionUserID)
			_ = session.Save()
		default:
			cache.Set(userID, user)
			c.Set(CheckUserKey, user)
		}
		c.Next()
	}
}

// CurrentUser returns the user LoadUser attached, or nil.
func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(CheckUserKey); ok {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}
