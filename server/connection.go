package server

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	sendBuffer = 256
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
	maxMessage = 64 << 10
)

// Connection wraps the WebSocket connection with its outgoing queue.
type Connection struct {
	ws        *websocket.Conn
	send      chan []byte
	closeOnce sync.Once
}

// NewConnection creates a new connection wrapper.
func NewConnection(ws *websocket.Conn) *Connection {
	return &Connection{
		ws:   ws,
		send: make(chan []byte, sendBuffer),
	}
}

// MessageHandler handles one incoming message.
type MessageHandler interface {
	HandleMessage(conn *Connection, message []byte)
}

// ReadPump reads messages until the peer goes away, then stops the write
// pump.
func (c *Connection) ReadPump(h MessageHandler) {
	defer func() {
		c.closeSend()
		c.ws.Close()
	}()
	c.ws.SetReadLimit(maxMessage)
	c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("Error reading message: %v", err)
			}
			return
		}
		h.HandleMessage(c, message)
	}
}

// WritePump drains the send queue and keeps the peer alive with pings.
func (c *Connection) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.ws.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.ws.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.ws.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// SendMessage queues msg for the write pump. A full queue means the client
// is not reading; the connection is closed. Call it only from the handler
// running on the read pump, which owns the queue's lifetime.
func (c *Connection) SendMessage(msg interface{}) error {
	messageBytes, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	select {
	case c.send <- messageBytes:
	default:
		log.Printf("Send queue full for %s, closing", c.ws.RemoteAddr())
		c.ws.Close()
	}
	return nil
}

func (c *Connection) closeSend() {
	c.closeOnce.Do(func() { close(c.send) })
}
