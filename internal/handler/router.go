package handler

import (
	"net/http"

	"musicshop/internal/service"
	ws "musicshop/internal/websocket"

	"github.com/gin-gonic/gin"
)

// RegisterAll mounts every API route plus /health and /ws on r
func RegisterAll(r *gin.Engine, svc *service.Services, hub *ws.Hub) {
	root := r.Group("")

	NewInventoryHandler(svc.Inventory).RegisterRoutes(root)
	NewOrderHandler(svc.Orders).RegisterRoutes(root)
	NewSettingsHandler(svc.Settings).RegisterRoutes(root)
	NewStatisticsHandler(svc.Statistics, svc.Revenue).RegisterRoutes(root)
	NewSnapshotHandler(svc.Snapshots).RegisterRoutes(root)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if hub != nil {
		r.GET("/ws", func(c *gin.Context) {
			ws.ServeWs(hub, c)
		})
	}
}
