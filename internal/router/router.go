package router

import (
	"context"

	"retroboard/internal/handlers"
	"retroboard/internal/middleware"
	"retroboard/internal/store"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const cookieName = "retro_session"

type Deps struct {
	Store        store.Store
	Ping         func(ctx context.Context) error
	Log          zerolog.Logger
	CookieSecret []byte
	SecureCookie bool
}

// New builds the engine with the shared middleware chain and every route.
func New(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(deps.Log))

	cookieStore := cookie.NewStore(deps.CookieSecret)
	cookieStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   60 * 60 * 24 * 365,
		HttpOnly: true,
		Secure:   deps.SecureCookie,
	})
	r.Use(sessions.Sessions(cookieName, cookieStore))
	r.Use(middleware.LoadUser(deps.Store, middleware.NewUserCache()))

	RegisterRoutes(r, deps)
	return r
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	// Handlers
	authHandler := handlers.NewAuthHandler(deps.Store)
	sessionHandler := handlers.NewSessionHandler(deps.Store)
	postHandler := handlers.NewPostHandler(deps.Store)
	voteHandler := handlers.NewVoteHandler(deps.Store)
	i18nHandler := handlers.NewI18nHandler()
	healthHandler := handlers.NewHealthHandler(deps.Ping)

	r.GET("/healthz", healthHandler.Check)

	api := r.Group("/api")

	// 公共路由 (Public Routes)
	api.POST("/login", authHandler.Login)                    // 匿名登录
	api.POST("/logout", authHandler.Logout)                  // 退出登录
	api.GET("/i18n", i18nHandler.Translations)               // 翻译表
	api.GET("/sessions/:id", sessionHandler.Get)             // 看板详情，旁观者也可查看
	api.GET("/sessions/:id/summary", sessionHandler.Summary) // 导出摘要

	// 受保护路由 (Protected Routes)
	authorized := api.Group("")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/me", authHandler.Me)
		authorized.POST("/sessions", sessionHandler.Create)
		authorized.GET("/sessions/previous", sessionHandler.Previous)
		authorized.PUT("/sessions/:id", sessionHandler.Save)

		authorized.POST("/sessions/:id/posts", postHandler.Save)
		authorized.DELETE("/sessions/:id/posts/:pid", postHandler.Delete)
		authorized.POST("/sessions/:id/posts/:pid/votes", voteHandler.Vote)
	}
}
