package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

type Server struct {
	addr     string
	hub      *Hub
	upgrader websocket.Upgrader
}

// NewServer serves the given hub's frames on addr. The hub must already be
// running (or be started separately via Run).
func NewServer(addr string, hub *Hub) *Server {
	return &Server{
		addr: addr,
		hub:  hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// serveWs handles websocket requests from the peer: every connected client
// receives the frame stream, and may send control messages back.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Error("upgrade failed")
		return
	}
	log.WithField("remote", conn.RemoteAddr().String()).Info("client connected")
	s.hub.register(conn)
	defer s.hub.unregister(conn)

	for {
		var msg Msg
		if err := conn.ReadJSON(&msg); err != nil {
			log.WithError(err).Info("client read ended")
			return
		}
		select {
		case s.hub.msg <- msg:
		default:
			log.Warn("control message dropped, hub busy")
		}
	}
}

// Serve blocks, listening for websocket connections on /ws.
func (s *Server) Serve() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWs)
	log.WithField("addr", s.addr).Info("telemetry server listening")
	return http.ListenAndServe(s.addr, mux)
}
