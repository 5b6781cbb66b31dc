package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/aliskhannn/event-notifier/internal/api/handlers/event"
	"github.com/aliskhannn/event-notifier/internal/api/handlers/notification"
	"github.com/aliskhannn/event-notifier/internal/api/respond"
	"github.com/aliskhannn/event-notifier/internal/ws"
)

func New(
	eventHandler *event.Handler,
	notifHandler *notification.Handler,
	wsHandler *ws.Handler,
) *ginext.Engine {
	e := ginext.New()
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())
	e.Use(cors())

	e.GET("/health", func(c *ginext.Context) {
		respond.OK(c.Writer, map[string]string{"status": "ok"})
	})

	e.POST("/event", eventHandler.Submit)
	e.GET("/notifications/:userId", notifHandler.List)
	e.PATCH("/notifications/:notificationId/read", notifHandler.MarkRead)

	e.GET("/ws", wsHandler.Handle)

	return e
}

func cors() func(c *ginext.Context) {
	return func(c *ginext.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
