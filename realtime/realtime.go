package realtime

import (
	"api/models"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

var (
	projectClients = make(map[string]map[*websocket.Conn]bool) // Map of project ID to connected clients
	broadcast      = make(chan SubmissionUpdate)               // Broadcast channel for updates
	mutex          sync.Mutex                                  // Mutex to protect projectClients map
)

// SubmissionUpdate represents a new submission or a status change
type SubmissionUpdate struct {
	ProjectID  string            `json:"project_id"`
	Submission models.Submission `json:"submission"`
	UpdateType string            `json:"update_type"` // "new" or "status"
}

// RegisterClient adds a WebSocket client to a specific project feed
func RegisterClient(projectID string, conn *websocket.Conn) {
	mutex.Lock()
	if projectClients[projectID] == nil {
		projectClients[projectID] = make(map[*websocket.Conn]bool)
	}
	projectClients[projectID][conn] = true
	mutex.Unlock()
}

// UnregisterClient removes a WebSocket client from a specific project feed
func UnregisterClient(projectID string, conn *websocket.Conn) {
	mutex.Lock()
	if clients, exists := projectClients[projectID]; exists {
		delete(clients, conn)
		if len(clients) == 0 {
			delete(projectClients, projectID)
		}
	}
	mutex.Unlock()
}

// BroadcastSubmissionUpdate sends an update to all clients watching the
// submission's project
func BroadcastSubmissionUpdate(update SubmissionUpdate) {
	broadcast <- update
}

func handleBroadcast() {
	for {
		update := <-broadcast
		mutex.Lock()
		if clients, exists := projectClients[update.ProjectID]; exists {
			for client := range clients {
				if err := client.WriteJSON(update); err != nil {
					log.Printf("WebSocket write error: %v", err)
					client.Close()
					delete(clients, client)
				}
			}
		}
		mutex.Unlock()
	}
}

func init() {
	go handleBroadcast()
}
