package server

import (
	"net/http"
	"time"

	"github.com/glint-dev/glint/pkg/liveroute"
	"github.com/gorilla/websocket"
)

// joinMessage is the client's request to attach a live view to a route.
type joinMessage struct {
	Path string `json:"path"`
}

// joinReply tells the client which view the path resolved to, with the
// route's session additions already merged.
type joinReply struct {
	OK      bool              `json:"ok"`
	View    string            `json:"view,omitempty"`
	Action  string            `json:"action,omitempty"`
	Params  map[string]string `json:"params,omitempty"`
	Session map[string]any    `json:"session,omitempty"`
	Error   string            `json:"error,omitempty"`
}

// handleSocket upgrades the live socket and answers join requests by
// resolving paths against the route table.
func (s *Server) handleSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.config.logger.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	for {
		conn.SetReadDeadline(time.Now().Add(s.config.readTimeout))

		var join joinMessage
		if err := conn.ReadJSON(&join); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.config.logger.Error("socket read error", "error", err)
			}
			return
		}

		s.config.recorder.ObserveSocketJoin()

		reply := s.resolveJoin(join.Path)
		if err := conn.WriteJSON(reply); err != nil {
			s.config.logger.Error("socket write error", "error", err)
			return
		}
	}
}

func (s *Server) resolveJoin(path string) joinReply {
	match, ok := s.table.Match(path)
	if !ok {
		return joinReply{Error: "no route matches " + path}
	}

	cfg, ok := match.Route.Private().(liveroute.RouteConfig)
	if !ok {
		return joinReply{Error: "route carries no live configuration"}
	}

	return joinReply{
		OK:      true,
		View:    string(cfg.View),
		Action:  string(cfg.Action),
		Params:  match.Params,
		Session: newSession(s.config.baseSession, cfg.Session),
	}
}
