// Package observer streams read-only world views to an external viewer.
// Observers never write: this is a one-way feed over an immutable snapshot
// per frame, not multiplayer synchronization.
package observer

import (
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/klauspost/compress/zstd"

	"github.com/OCharnyshevich/voxel-engine/internal/engine/material"
	"github.com/OCharnyshevich/voxel-engine/internal/engine/render"
	"github.com/OCharnyshevich/voxel-engine/internal/engine/voxel"
	"github.com/OCharnyshevich/voxel-engine/internal/engine/world"
)

// Server serves the bootstrap document and the websocket frame stream.
type Server struct {
	world *world.World
	reg   *material.Registry
	log   *slog.Logger

	upgrader websocket.Upgrader
	poll     time.Duration
}

// NewServer builds an observer server over the given world and registry.
func NewServer(w *world.World, reg *material.Registry, log *slog.Logger) *Server {
	return &Server{
		world: w,
		reg:   reg,
		log:   log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  64 * 1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // loopback only
		},
		poll: 250 * time.Millisecond,
	}
}

// Routes returns the observer endpoints: /bootstrap and /ws.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/bootstrap", s.BootstrapHandler())
	mux.HandleFunc("/ws", s.WSHandler())
	return mux
}

// BootstrapHandler serves world parameters and the material palette.
func (s *Server) BootstrapHandler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			rw.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if !isLoopbackRemote(r.RemoteAddr) {
			http.Error(rw, "forbidden", http.StatusForbidden)
			return
		}

		resp := Bootstrap{
			ProtocolVersion: Version,
			WorldID:         s.world.ID(),
			Seed:            s.world.Seed(),
			ChunkSize:       voxel.ChunkSize,
			WorldHeight:     voxel.WorldHeight,
			Version:         s.world.Version(),
			Palette:         s.reg.All(),
		}
		rw.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(rw).Encode(resp)
	}
}

// WSHandler upgrades to a websocket and pushes a compressed frame whenever
// the store version moves, starting with one immediate frame.
func (s *Server) WSHandler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		if !isLoopbackRemote(r.RemoteAddr) {
			http.Error(rw, "forbidden", http.StatusForbidden)
			return
		}

		conn, err := s.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			s.log.Error("zstd encoder", "error", err)
			return
		}
		defer enc.Close()

		// Drain client messages so pings and close frames are processed.
		// The read fails once the peer is gone; closing done releases the
		// write loop, which otherwise never writes while the world is idle.
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		ticker := time.NewTicker(s.poll)
		defer ticker.Stop()

		var lastSent uint64
		first := true
		for {
			if first || s.world.Version() != lastSent {
				snap := s.world.Snapshot()
				payload, err := encodeFrame(enc, snap, s.reg)
				if err != nil {
					s.log.Error("encode frame", "error", err)
					return
				}
				if err := conn.WriteMessage(websocket.BinaryMessage, payload); err != nil {
					return
				}
				lastSent = snap.Version()
				first = false
			}

			select {
			case <-done:
				return
			case <-r.Context().Done():
				return
			case <-ticker.C:
			}
		}
	}
}

func encodeFrame(enc *zstd.Encoder, snap world.Snapshot, reg *material.Registry) ([]byte, error) {
	frame := Frame{Version: snap.Version()}
	for _, cc := range snap.Coords() {
		frame.Chunks = append(frame.Chunks, ChunkFrame{
			CX:     cc.X,
			CZ:     cc.Z,
			Blocks: render.ChunkDescriptors(snap, reg, cc.X, cc.Z),
		})
	}

	raw, err := json.Marshal(frame)
	if err != nil {
		return nil, err
	}
	return enc.EncodeAll(raw, nil), nil
}

func isLoopbackRemote(remoteAddr string) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		host = remoteAddr
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
