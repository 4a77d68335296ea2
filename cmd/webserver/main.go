package main

import (
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/KRussellSmith/malthusian-wetdream/pkg/config"
	"github.com/KRussellSmith/malthusian-wetdream/pkg/game"
	"github.com/KRussellSmith/malthusian-wetdream/pkg/renderer"
	"github.com/KRussellSmith/malthusian-wetdream/pkg/scheduler"
)

var (
	addr      = flag.String("addr", ":8080", "HTTP listen address")
	staticDir = flag.String("static", "web/static", "directory served at /")
	dbPath    = flag.String("db", config.DatabasePath, "SQLite file holding the high score; empty keeps it in memory")
	recordDir = flag.String("records", "", "directory for per-session JSONL recordings; empty disables recording")
	gridSize  = flag.Int("size", config.GridSize, "cells per side")
	tick      = flag.Duration("tick", config.TickInterval, "logic tick interval")
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// ClientMessage is anything the browser sends
type ClientMessage struct {
	Type   string  `json:"type"` // "resize", "frame", "swipe", "tap" or "turn"
	T      float64 `json:"t,omitempty"`
	DX     float64 `json:"dx,omitempty"`
	DY     float64 `json:"dy,omitempty"`
	Dir    string  `json:"dir,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

// ServerMessage is anything the server sends
type ServerMessage struct {
	Type     string             `json:"type"` // "config", "frame" or "restart"
	Config   *game.GameConfig   `json:"config,omitempty"`
	Commands []renderer.Command `json:"commands,omitempty"`
	Rearm    bool               `json:"rearm"`
	State    *game.GameState    `json:"state,omitempty"`
}

// GameServer is one browser tab. Messages are handled one at a time on the
// connection's read loop, so the session is never touched concurrently.
type GameServer struct {
	id         string
	controller *game.Controller
	scheduler  *scheduler.Scheduler
	surface    *renderer.CommandList
	layout     renderer.Layout
}

func NewGameServer(settings config.Settings, store game.ScoreStore, opts ...game.Option) *GameServer {
	gs := &GameServer{
		id:         uuid.NewString(),
		controller: game.NewController(settings, store, rand.New(rand.NewSource(time.Now().UnixNano())), opts...),
		surface:    renderer.NewCommandList(0, 0),
	}
	gs.layout = renderer.NewLayout(0, 0, settings.Size)
	gs.scheduler = scheduler.New(settings.Tick, gs.controller, gs.draw)
	return gs
}

func (gs *GameServer) draw() {
	renderer.Draw(gs.surface, gs.layout, gs.controller.Game().GetGameStateSnapshot())
}

func (gs *GameServer) resize(w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	gs.surface.Resize(w, h)
	gs.layout = renderer.NewLayout(w, h, gs.controller.Game().Size())
}

// handleMessage applies one client message and returns the reply, if any
func (gs *GameServer) handleMessage(msg ClientMessage) *ServerMessage {
	switch msg.Type {
	case "resize":
		gs.resize(msg.Width, msg.Height)
		return nil
	case "frame":
		rearm := gs.scheduler.OnFrame(time.Duration(msg.T * float64(time.Millisecond)))
		state := gs.controller.Game().GetGameStateSnapshot()
		return &ServerMessage{
			Type:     "frame",
			Commands: gs.surface.Take(),
			Rearm:    rearm,
			State:    &state,
		}
	case "swipe":
		gs.controller.Swipe(msg.DX, msg.DY)
	case "turn":
		if d, ok := game.ParseDirection(msg.Dir); ok {
			gs.controller.Turn(d)
		}
	case "tap":
		if gs.controller.Tap() {
			gs.scheduler.Restart()
			return &ServerMessage{Type: "restart", Rearm: true}
		}
	default:
		glog.V(1).Infof("client %s: unknown message type %q", gs.id, msg.Type)
	}
	return nil
}

// Global map to track active connections
var activeConns sync.Map

// connectionCount returns the number of open websocket connections
func connectionCount() int {
	n := 0
	activeConns.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

func serveWS(store game.ScoreStore, settings config.Settings) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			glog.Errorf("Upgrade error: %v", err)
			return
		}
		defer conn.Close()

		var opts []game.Option
		if *recordDir != "" {
			opts = append(opts, game.WithRecorder(func(sessionID string) (game.Recorder, error) {
				return game.NewRecorder(*recordDir, sessionID)
			}))
		}

		gs := NewGameServer(settings, store, opts...)
		defer gs.controller.Close()

		activeConns.Store(gs.id, r.RemoteAddr)
		defer func() {
			activeConns.Delete(gs.id)
			glog.Infof("client %s disconnected (%d connected)", gs.id, connectionCount())
		}()
		glog.Infof("client %s connected from %s (%d connected)", gs.id, r.RemoteAddr, connectionCount())

		gameConfig := gs.controller.Game().GetGameConfig()
		if err := conn.WriteJSON(ServerMessage{Type: "config", Config: &gameConfig}); err != nil {
			glog.Errorf("client %s: write error: %v", gs.id, err)
			return
		}

		for {
			var msg ClientMessage
			if err := conn.ReadJSON(&msg); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					glog.Warningf("client %s: read error: %v", gs.id, err)
				}
				return
			}
			reply := gs.handleMessage(msg)
			if reply == nil {
				continue
			}
			if err := conn.WriteJSON(reply); err != nil {
				glog.Errorf("client %s: write error: %v", gs.id, err)
				return
			}
		}
	}
}

func openStore(path string) (game.ScoreStore, func(), error) {
	if path == "" {
		return game.NewMemoryStore(), func() {}, nil
	}
	db, err := game.OpenSQLite(path)
	if err != nil {
		return nil, nil, err
	}
	return db, func() { db.Close() }, nil
}

func main() {
	flag.Parse()
	defer glog.Flush()

	settings := config.DefaultSettings()
	settings.Size = *gridSize
	settings.Tick = *tick
	if err := settings.Validate(); err != nil {
		glog.Exitf("bad flags: %v", err)
	}

	store, closeStore, err := openStore(*dbPath)
	if err != nil {
		glog.Exitf("score store: %v", err)
	}
	defer closeStore()

	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(*staticDir)))
	mux.HandleFunc("/ws", serveWS(store, settings))

	fmt.Printf("🚀 Snake Game Web Server starting on http://localhost%s\n", *addr)
	if err := http.ListenAndServe(*addr, mux); err != nil {
		glog.Errorf("server stopped: %v", err)
	}
}
