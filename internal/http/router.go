// README: HTTP router: page routes, WebSocket endpoint, health check.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mishwar/internal/http/middleware"
	"mishwar/internal/ws"
)

// pages maps each route to its view template. The pages are thin shells;
// everything live flows over the WebSocket.
var pages = map[string]string{
	"/":          "index.html",
	"/driver":    "driver.html",
	"/passenger": "passenger.html",
	"/admin":     "admin.html",
}

func NewRouter(hub *ws.Hub, templateGlob string) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())
	r.LoadHTMLGlob(templateGlob)

	for route, tmpl := range pages {
		r.GET(route, func(c *gin.Context) {
			c.HTML(http.StatusOK, tmpl, nil)
		})
	}

	r.GET("/ws", func(c *gin.Context) {
		hub.ServeWS(c.Writer, c.Request)
	})

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
