package websockets

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait = 10 * time.Second

	pongWait = 60 * time.Second

	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 64 * 1024
)

type MessageType string

const (
	TypeError MessageType = "error"
	TypePing  MessageType = "ping"
	TypePong  MessageType = "pong"
)

type ClientType string

const (
	ClientTypeAdmin   ClientType = "admin"
	ClientTypeKitchen ClientType = "kitchen"
	ClientTypeDisplay ClientType = "display"
)

// Valid reports whether t is a known client type
func (t ClientType) Valid() bool {
	switch t {
	case ClientTypeAdmin, ClientTypeKitchen, ClientTypeDisplay:
		return true
	}
	return false
}

// Message is a control frame exchanged with a client
type Message struct {
	Type MessageType     `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
	// replies carries answers to the client's own frames; only the hub closes send
	replies chan []byte

	clientType ClientType
}

func NewClient(hub *Hub, conn *websocket.Conn, clientType ClientType) *Client {
	return &Client{
		hub:        hub,
		conn:       conn,
		send:       make(chan []byte, 256),
		replies:    make(chan []byte, 16),
		clientType: clientType,
	}
}

// readPump answers pings; clients have nothing else to say to the hub
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Warn("websocket read failed", "client_type", c.clientType, "error", err)
			}
			break
		}

		var wsMessage Message
		if err := json.Unmarshal(message, &wsMessage); err != nil {
			c.reply(Message{Type: TypeError, Data: json.RawMessage(`"malformed message"`)})
			continue
		}

		if wsMessage.Type == TypePing {
			c.reply(Message{Type: TypePong})
		}
	}
}

func (c *Client) reply(m Message) {
	payload, _ := json.Marshal(m)
	select {
	case c.replies <- payload:
	default:
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case reply := <-c.replies:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, reply); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ServeWs registers the connection with the hub and starts its pumps
func ServeWs(hub *Hub, conn *websocket.Conn, clientType ClientType) {
	client := NewClient(hub, conn, clientType)

	select {
	case hub.register <- client:
	case <-hub.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}
