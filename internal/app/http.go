package app

import (
	"net/http"

	"gemini-nlp/internal/auth"
	"gemini-nlp/internal/auth/credentials"
	authhandler "gemini-nlp/internal/auth/handler"
	"gemini-nlp/internal/auth/resolver"
	"gemini-nlp/internal/config"
	"gemini-nlp/internal/metrics"
	"gemini-nlp/internal/middleware"
	"gemini-nlp/internal/nlp"
	nlphandler "gemini-nlp/internal/nlp/handler"
	"gemini-nlp/internal/session"
	"gemini-nlp/internal/web"

	"github.com/gin-gonic/gin"
)

func setupHTTP(cfg config.Config, infra *Infra, m *metrics.Metrics) (*gin.Engine, error) {

	// ----------------------------
	// Dependencies
	// ----------------------------

	creds := credentials.NewService(infra.Accounts, infra.Matcher)
	controller := auth.NewController(
		creds,
		infra.Sessions,
		resolver.NewAccountResolver(creds),
		m,
		cfg.Session.TTL,
	)
	dispatcher := nlp.NewDispatcher(infra.Generator, m)

	cookies := session.Cookies{Secure: cfg.Session.CookieSecure}
	authMiddleware := middleware.NewAuthMiddleware(controller).WithRefresh(controller, cookies)

	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger())
	router.SetHTMLTemplate(tmpl)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(m.Handler()))

	// ----------------------------
	// Session-aware routes
	// ----------------------------

	app := router.Group("/")
	app.Use(middleware.GinLoadSession(authMiddleware))

	web.NewHandler(controller, dispatcher, cookies).RegisterRoutes(app)

	api := app.Group("/api")
	authhandler.NewHandler(controller, authMiddleware, cookies).RegisterRoutes(api)

	// ----------------------------
	// Protected API Routes
	// ----------------------------

	protected := api.Group("")
	protected.Use(middleware.GinRequireAuth(authMiddleware))
	nlphandler.NewHandler(dispatcher).RegisterRoutes(protected)

	return router, nil
}
