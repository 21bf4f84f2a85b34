// Package server exposes a combat session to remote clients over a
// websocket: JSON commands in, authoritative state plus the engine's event
// feed out. It is a thin collaborator — all rules live in the game package.
package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/Garsondee/Shield-Bash/internal/game"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Command is one client request. Type selects the action; the remaining
// fields are read per type.
type Command struct {
	Type   string `json:"type"` // select, move, attack, pass, state
	X      int    `json:"x"`
	Y      int    `json:"y"`
	UnitID int    `json:"unit_id"`
	Mode   string `json:"mode"` // direct (default) or bash
}

// StateMessage is the authoritative snapshot pushed after every command and
// on connect.
type StateMessage struct {
	Type      string      `json:"type"` // "state"
	Level     string      `json:"level"`
	Turn      int         `json:"turn"`
	Phase     string      `json:"phase"`
	Outcome   string      `json:"outcome"`
	Units     []game.Unit `json:"units"`
	Reachable []game.Cell `json:"reachable,omitempty"`
	Targets   []game.Cell `json:"targets,omitempty"`
	Valid     bool        `json:"valid"`
}

type eventMessage struct {
	Type  string     `json:"type"` // "event"
	Event game.Event `json:"event"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Server owns one session and its connected spectators. Session handlers are
// synchronous, so a single mutex serializes every command.
type Server struct {
	mu      sync.Mutex
	session *game.Session
	clients map[*client]bool
}

// New wraps a session. The server registers itself as an event sink and
// fans events out to every connection.
func New(s *game.Session) *Server {
	srv := &Server{
		session: s,
		clients: make(map[*client]bool),
	}
	s.AddSink(game.EventSinkFunc(srv.broadcastEvent))
	return srv
}

// Handler returns the websocket endpoint.
func (srv *Server) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade:", err)
			return
		}
		c := &client{conn: conn, send: make(chan []byte, 64)}
		srv.mu.Lock()
		srv.clients[c] = true
		state := srv.stateLocked(false, nil, nil)
		srv.mu.Unlock()

		go writePump(c)
		c.enqueue(mustJSON(state))
		srv.readPump(c)
	}
}

func (srv *Server) readPump(c *client) {
	defer func() {
		srv.mu.Lock()
		delete(srv.clients, c)
		srv.mu.Unlock()
		close(c.send)
		c.conn.Close()
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		var cmd Command
		if err := json.Unmarshal(message, &cmd); err != nil {
			continue
		}
		srv.mu.Lock()
		state := srv.Apply(cmd)
		payload := mustJSON(state)
		for peer := range srv.clients {
			peer.enqueue(payload)
		}
		srv.mu.Unlock()
	}
}

// Apply runs one command against the session and returns the resulting
// state message. Callers must hold the server mutex; exported for the
// command-surface tests.
func (srv *Server) Apply(cmd Command) StateMessage {
	switch cmd.Type {
	case "select":
		res := srv.session.SelectUnit(game.Cell{X: cmd.X, Y: cmd.Y})
		return srv.stateLocked(res.Valid, reachableCellList(res.Reachable), res.Targets)
	case "move":
		res := srv.session.MoveUnit(cmd.UnitID, game.Cell{X: cmd.X, Y: cmd.Y})
		return srv.stateLocked(res.Valid, nil, res.Attackable)
	case "attack":
		mode := game.AttackDirect
		if cmd.Mode == "bash" {
			mode = game.AttackBash
		}
		res := srv.session.Attack(cmd.UnitID, game.Cell{X: cmd.X, Y: cmd.Y}, mode)
		return srv.stateLocked(res.Valid, nil, nil)
	case "pass":
		srv.session.AdvanceIfIdle()
		return srv.stateLocked(true, nil, nil)
	default:
		return srv.stateLocked(false, nil, nil)
	}
}

func reachableCellList(m map[game.Cell]int) []game.Cell {
	var out []game.Cell
	for c := range m {
		out = append(out, c)
	}
	return out
}

func (srv *Server) stateLocked(valid bool, reachable, targets []game.Cell) StateMessage {
	snap := srv.session.Snapshot()
	return StateMessage{
		Type:      "state",
		Level:     snap.Level,
		Turn:      snap.Turn,
		Phase:     snap.Phase.String(),
		Outcome:   snap.Outcome.String(),
		Units:     snap.Units,
		Reachable: reachable,
		Targets:   targets,
		Valid:     valid,
	}
}

func (srv *Server) broadcastEvent(e game.Event) {
	payload := mustJSON(eventMessage{Type: "event", Event: e})
	for c := range srv.clients {
		c.enqueue(payload)
	}
}

func (c *client) enqueue(payload []byte) {
	select {
	case c.send <- payload:
	default:
		// Slow consumer: drop the frame rather than stall the handler.
	}
}

func writePump(c *client) {
	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

func mustJSON(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		// All message types are plain data; a marshal failure is a
		// programming error.
		panic(err)
	}
	return data
}
