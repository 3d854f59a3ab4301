package server

import (
	"context"
	"encoding/json"
	"log"

	"ripple/internal/middleware"
	"ripple/internal/notifications"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// WebsocketHandler handles websocket connections for real-time feed
// events. The upgrade itself is open; each event carries its own token.
func (s *Server) WebsocketHandler() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		middleware.ActiveWebSockets.Inc()
		defer middleware.ActiveWebSockets.Dec()

		ctx := context.Background()

		client, err := s.hub.Register(conn)
		if err != nil {
			log.Printf("WebSocket: failed to register client: %v", err)
			_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"`+err.Error()+`"}`))
			_ = conn.Close()
			return
		}

		client.IncomingHandler = func(c *notifications.Client, message []byte) {
			var in inboundEvent
			if err := json.Unmarshal(message, &in); err != nil {
				log.Printf("WebSocket: invalid message format")
				return
			}

			payload, ok := s.buildOutgoingEvent(ctx, in)
			if !ok {
				return
			}
			s.broadcastEvent(ctx, payload)
		}

		// Start write pump in a goroutine; read pump blocks in the
		// handler goroutine.
		go client.WritePump()
		client.ReadPump()
	})
}
