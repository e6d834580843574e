package websockets

import (
	"net/http"

	"github.com/gorilla/websocket"
)

// Upgrader is the WebSocket upgrader configuration
var Upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// dashboards are served from other origins on the local network
	CheckOrigin: func(r *http.Request) bool { return true },
	Error: func(w http.ResponseWriter, r *http.Request, status int, reason error) {
		http.Error(w, reason.Error(), status)
	},
}

// Handler upgrades requests on /ws?client_type=admin|kitchen|display
func Handler(hub *Hub) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientType := ClientType(r.URL.Query().Get("client_type"))
		if clientType == "" {
			clientType = ClientTypeAdmin
		}
		if !clientType.Valid() {
			http.Error(w, "invalid client_type", http.StatusBadRequest)
			return
		}

		conn, err := Upgrader.Upgrade(w, r, nil)
		if err != nil {
			// the upgrader has already replied
			return
		}

		ServeWs(hub, conn, clientType)
	})
}
