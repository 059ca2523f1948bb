package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Root(c *ginext.Context)

	Signup(c *ginext.Context)
	Login(c *ginext.Context)
	Logout(c *ginext.Context)

	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	DeleteEvent(c *ginext.Context)

	PurchaseTickets(c *ginext.Context)
	GetPurchase(c *ginext.Context)
	ConfirmPurchase(c *ginext.Context)

	Dashboard(c *ginext.Context)

	BeginLink(c *ginext.Context)
	LinkCallback(c *ginext.Context)
	StreamingResource(c *ginext.Context)
}

// Guards - middleware, которые вешаются на отдельные группы маршрутов.
type Guards struct {
	AuthRateLimit ginext.HandlerFunc
	RequireAuth   ginext.HandlerFunc
}

func InitRouter(mode string, h Handler, guards Guards, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	router.GET("/", h.Root)
	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	auth := router.Group("/auth")
	if guards.AuthRateLimit != nil {
		auth.Use(guards.AuthRateLimit)
	}
	{
		auth.POST("", h.Signup)
		auth.POST("/login", h.Login)
		auth.GET("/logout", h.Logout)
	}

	// Events
	events := router.Group("/events")
	{
		events.GET("", h.ListEvents)
		events.POST("", h.CreateEvent)
		events.GET("/:id", h.GetEvent)
		events.DELETE("/:id", h.DeleteEvent)
	}

	private := router.Group("")
	if guards.RequireAuth != nil {
		private.Use(guards.RequireAuth)
	}
	{
		private.POST("/events/:id/purchase", h.PurchaseTickets)
		private.GET("/purchases/:id", h.GetPurchase)
		private.POST("/purchases/:id/confirm", h.ConfirmPurchase)

		private.GET("/dashboard", h.Dashboard)

		private.POST("/oauth/:provider", h.BeginLink)
		private.GET("/oauth/:provider/callback", h.LinkCallback)
		private.GET("/streaming/:provider/:resource", h.StreamingResource)
	}

	return router
}
