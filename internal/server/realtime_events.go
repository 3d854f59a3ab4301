package server

import (
	"context"
	"encoding/json"
	"time"

	"ripple/internal/middleware"
	"ripple/internal/models"
)

// Inbound/outbound event names for the feed broadcast channel.
const (
	eventSendMessage    = "send_message"
	eventSendReply      = "send_reply"
	eventReceiveMessage = "receive_message"
	eventReceiveReply   = "receive_reply"
)

// inboundEvent is what a client sends over the websocket. The token
// rides inside the event because the channel itself is unauthenticated.
type inboundEvent struct {
	Type     string `json:"type"`
	Content  string `json:"content"`
	Image    string `json:"image"`
	Token    string `json:"token"`
	ThreadID uint   `json:"thread_id"`
}

// outboundEvent is broadcast to every connected client. The sender's
// token is echoed so each receiver can suppress its own events; there
// is no server-side targeting.
type outboundEvent struct {
	Type     string          `json:"type"`
	Content  string          `json:"content"`
	Image    string          `json:"image,omitempty"`
	Token    string          `json:"token"`
	ThreadID uint            `json:"thread_id,omitempty"`
	User     *models.Profile `json:"user,omitempty"`
	SentAt   time.Time       `json:"sent_at"`
}

// buildOutgoingEvent turns an inbound feed event into the broadcast
// payload. Token resolution is best-effort: a bad token leaves the
// author fields empty but the event still goes out, because the
// broadcast channel has no error path back to the sender.
func (s *Server) buildOutgoingEvent(ctx context.Context, in inboundEvent) (string, bool) {
	var outType string
	switch in.Type {
	case eventSendMessage:
		outType = eventReceiveMessage
	case eventSendReply:
		outType = eventReceiveReply
	default:
		return "", false
	}

	out := outboundEvent{
		Type:    outType,
		Content: in.Content,
		Image:   in.Image,
		Token:   in.Token,
		SentAt:  time.Now(),
	}
	if outType == eventReceiveReply {
		out.ThreadID = in.ThreadID
	}

	if identity, err := s.resolveToken(in.Token); err == nil {
		if user, uerr := s.userRepo.GetByID(ctx, identity.UserID); uerr == nil {
			profile := user.AsProfile()
			out.User = &profile
		}
	}

	payload, err := json.Marshal(out)
	if err != nil {
		return "", false
	}
	return string(payload), true
}

// broadcastEvent delivers the payload to every client on every
// instance. With Redis the local hub receives the event through its own
// subscription, so publishing and local broadcast never both fire.
func (s *Server) broadcastEvent(ctx context.Context, payload string) {
	if s.notifier != nil {
		if err := s.notifier.PublishBroadcast(ctx, payload); err == nil {
			return
		}
		middleware.Logger.WarnContext(ctx, "broadcast publish failed, falling back to local fan-out")
	}
	s.hub.BroadcastAll(payload)
}
