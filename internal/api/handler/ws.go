package handler

import (
	"net/http"

	"tafseel/backend/internal/models"
	"tafseel/backend/internal/previewhub"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allows connections from any origin. Tighten in production!
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeSpecUpdates upgrades the connection to a WebSocket subscribed to live
// updates for one slug. Viewing is public, so no token is required; each
// connection gets an anonymous viewer ID.
func (h *Handler) ServeSpecUpdates(c *gin.Context) {
	slug := c.Param("slug")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade connection"})
		return
	}

	client := &previewhub.WebSocketClient{
		ViewerID: uuid.New().String(),
		Slug:     slug,
		Conn:     conn,
		Hub:      h.Hub,
		Send:     make(chan models.SpecUpdate, 16),
	}

	h.Hub.RegisterCh <- client
	client.Run()
}
