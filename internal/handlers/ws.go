// internal/handlers/ws.go
package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/coder/websocket"
	"github.com/sirupsen/logrus"

	"github.com/bunker-game/bunker-service/internal/notify"
)

// NotificationWSHandler upgrades the connection and registers it as
// the user's notification channel. The channel is push-only: inbound
// frames are read and discarded to detect disconnects.
func (s *Server) NotificationWSHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := queryUserID(w, r)
	if !ok {
		return
	}

	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"}, // Adjust in production
	})
	if err != nil {
		s.Log.Warnf("websocket accept error: %v", err)
		return
	}
	defer c.Close(websocket.StatusInternalError, "handler finished")

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	out := make(chan notify.Message, 16)
	s.Hub.Add(userID, out, cancel)
	defer s.Hub.Remove(userID, out)

	s.Log.WithFields(logrus.Fields{
		"user_id": userID,
		"remote":  r.RemoteAddr,
	}).Info("notification channel connected")

	go writePump(ctx, c, out, s.Log)

	for {
		if _, _, err := c.Read(ctx); err != nil {
			break
		}
	}

	s.Log.WithField("user_id", userID).Info("notification channel disconnected")
	c.Close(websocket.StatusNormalClosure, "bye")
}

// writePump drains the user's out-channel onto the websocket until the
// context is cancelled.
func writePump(ctx context.Context, c *websocket.Conn, out <-chan notify.Message, logger *logrus.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, okc := <-out:
			if !okc {
				return
			}
			data, err := json.Marshal(msg)
			if err != nil {
				logger.Warnf("failed to marshal notification: %v", err)
				continue
			}
			if err := c.Write(ctx, websocket.MessageText, data); err != nil {
				logger.Warnf("websocket write failed: %v", err)
				return
			}
		}
	}
}
