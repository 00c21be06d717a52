package submissions

import (
	"log"
	"net/http"

	"api/realtime"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// SubmissionFeed upgrades the connection and streams submission updates
// for one project until the client disconnects
// @Summary Live submission updates for a project
// @Description WebSocket feed of new submissions and status changes for the given project
// @Tags ProjectJoined
// @Param projectId path string true "Project ID"
// @Router /projectjoined/ws/{projectId} [get]
func SubmissionFeed(c *gin.Context) {
	projectID := c.Param("projectId")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	realtime.RegisterClient(projectID, conn)
	defer func() {
		realtime.UnregisterClient(projectID, conn)
		conn.Close()
	}()

	// Drain client messages; the feed is one-way
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
