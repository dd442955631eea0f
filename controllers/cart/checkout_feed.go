// checkout_feed.go
package cartControllers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/torianyap/e-commerce-server-1/helpers"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	wsMu      sync.Mutex
	wsClients = make(map[*websocket.Conn]bool)
)

// CheckoutEvent is broadcast to connected admin clients after every
// completed checkout.
type CheckoutEvent struct {
	UserID    uint                  `json:"user_id"`
	Reference string                `json:"reference"`
	Items     []helpers.ReceiptItem `json:"items"`
	Total     int                   `json:"total"`
	At        time.Time             `json:"at"`
}

// GET /admin/checkouts/ws
func CheckoutFeedHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	wsMu.Lock()
	wsClients[conn] = true
	wsMu.Unlock()

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			wsMu.Lock()
			delete(wsClients, conn)
			wsMu.Unlock()
			break
		}
	}
}

func broadcastCheckout(event CheckoutEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	wsMu.Lock()
	defer wsMu.Unlock()
	for client := range wsClients {
		client.WriteMessage(websocket.TextMessage, data)
	}
}
