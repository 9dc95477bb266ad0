package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/katalvlaran/mazeflood/render"
	channerics "github.com/niceyeti/channerics/channels"
	"golang.org/x/sync/errgroup"
)

var upgrader = websocket.Upgrader{}

// handleWebsocket upgrades the request and keeps the peer in sync with the
// directions view until either side goes away.
func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Printf("[ws] upgrade: %v", err)
		return
	}
	defer conn.Close()

	updates, unsubscribe := s.hub.subscribe()
	defer unsubscribe()
	s.logger.Printf("[ws] %s connected, %d subscribers", conn.RemoteAddr(), s.hub.size())

	err = s.sync(r.Context(), conn, updates)
	if isUnexpected(err) {
		s.logger.Printf("[ws] %s: %v", conn.RemoteAddr(), err)
	}

	_ = conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait))
	s.logger.Printf("[ws] %s disconnected", conn.RemoteAddr())
}

// sync runs the read, ping and publish loops of one peer. It returns when
// any of them fails or the peer closes the connection.
func (s *Server) sync(ctx context.Context, conn *websocket.Conn, updates <-chan uint64) error {
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return readMessages(conn)
	})
	group.Go(func() error {
		return pingPong(groupCtx, conn)
	})
	group.Go(func() error {
		return s.publish(groupCtx, conn, updates)
	})

	// the read loop only ends on a connection error; unblock it when the
	// others stop first
	go func() {
		<-groupCtx.Done()
		_ = conn.SetReadDeadline(time.Now())
	}()
	return group.Wait()
}

// readMessages discards peer messages; it exists to process control frames.
func readMessages(conn *websocket.Conn) error {
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return err
		}
	}
}

// pingPong pings the peer periodically. WriteControl may run alongside the
// publisher's writes.
func pingPong(ctx context.Context, conn *websocket.Conn) error {
	for range channerics.NewTicker(ctx.Done(), pingPeriod) {
		if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
			return fmt.Errorf("ping: %w", err)
		}
	}
	return nil
}

// publish sends the current frame, then one frame per change notification.
func (s *Server) publish(ctx context.Context, conn *websocket.Conn, updates <-chan uint64) error {
	if err := s.sendFrame(conn, s.hub.current()); err != nil {
		return err
	}
	for seq := range channerics.OrDone(ctx.Done(), updates) {
		if err := s.sendFrame(conn, seq); err != nil {
			return err
		}
	}
	return nil
}

func (s *Server) sendFrame(conn *websocket.Conn, seq uint64) error {
	text, err := s.renderView(render.ViewDirections)
	if err != nil {
		return err
	}
	if err = conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteJSON(Frame{Seq: seq, View: render.ViewDirections.String(), Text: text})
}

// isUnexpected reports errors other than an orderly close.
func isUnexpected(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	return !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway)
}
