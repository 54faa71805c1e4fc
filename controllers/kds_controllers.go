package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/yeremiapane/cafe-app/kds"
	"github.com/yeremiapane/cafe-app/middlewares"
)

type KDSController struct {
	Hub      *kds.KDSHub
	upgrader websocket.Upgrader
}

// NewKDSController only upgrades requests whose Origin passes checkOrigin; nil allows same-origin only.
func NewKDSController(hub *kds.KDSHub, checkOrigin func(r *http.Request) bool) *KDSController {
	return &KDSController{
		Hub:      hub,
		upgrader: websocket.Upgrader{CheckOrigin: checkOrigin},
	}
}

// KDSHandler -> endpoint WebSocket untuk dashboard staff
func (kc *KDSController) KDSHandler(c *gin.Context) {
	role := c.GetString(middlewares.ContextRole)
	if role == "" {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	ws, err := kc.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	kc.Hub.RegisterClient(ws, role)

	// read until the client goes away
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	kc.Hub.UnregisterClient(ws)
}
