package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/madiaz/bizledger/app/controllers"
	"github.com/madiaz/bizledger/internal/pkg/middleware"
	"github.com/madiaz/bizledger/internal/pkg/oauth"
	"github.com/madiaz/bizledger/internal/pkg/session"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// init oauth providers
	oauth.Setup()

	// Apply UserContext middleware globally as first middleware
	app.Use(middleware.UserContextMiddleware)

	h.registerPublicRoutes(app)
}

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	// Account lifecycle
	app.Post("/register", controllers.HandleRegister)
	app.Post("/login", controllers.HandleLogin)
	app.Post("/logout", controllers.HandleLogout)

	// OAuth via identity provider
	app.Get("/auth/:provider", controllers.HandleOAuthBegin)
	app.Get("/auth/:provider/callback", controllers.HandleOAuthCallback)
	app.Get("/auth/logout", controllers.HandleOAuthLogout)

	// Public knowledge base
	app.Get("/kb", controllers.HandleListArticles)
	app.Get("/kb/:slug", controllers.HandleGetArticleBySlug)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
