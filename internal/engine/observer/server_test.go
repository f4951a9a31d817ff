package observer

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/klauspost/compress/zstd"

	"github.com/OCharnyshevich/voxel-engine/internal/engine/material"
	"github.com/OCharnyshevich/voxel-engine/internal/engine/world"
)

func testServer(t *testing.T) (*world.World, *httptest.Server) {
	t.Helper()
	w := world.New(42)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(NewServer(w, material.Default(), log).Routes())
	t.Cleanup(srv.Close)
	return w, srv
}

func TestBootstrap(t *testing.T) {
	w, srv := testServer(t)

	resp, err := http.Get(srv.URL + "/bootstrap")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}

	var b Bootstrap
	if err := json.NewDecoder(resp.Body).Decode(&b); err != nil {
		t.Fatal(err)
	}
	if b.WorldID != w.ID() || b.Seed != 42 || b.ChunkSize != 16 {
		t.Errorf("bootstrap = %+v", b)
	}
	if len(b.Palette) == 0 {
		t.Error("bootstrap palette is empty")
	}
}

func TestBootstrapRejectsPost(t *testing.T) {
	_, srv := testServer(t)
	resp, err := http.Post(srv.URL+"/bootstrap", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status %d, want 405", resp.StatusCode)
	}
}

func TestFrameStream(t *testing.T) {
	w, srv := testServer(t)
	w.SetBlock(1, 10, 1, 1)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatal(err)
	}
	if resp != nil {
		resp.Body.Close()
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	kind, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatal(err)
	}
	if kind != websocket.BinaryMessage {
		t.Fatalf("message type %d, want binary", kind)
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		t.Fatal(err)
	}
	defer dec.Close()
	raw, err := dec.DecodeAll(payload, nil)
	if err != nil {
		t.Fatalf("decompress frame: %v", err)
	}

	var frame Frame
	if err := json.Unmarshal(raw, &frame); err != nil {
		t.Fatal(err)
	}
	if frame.Version != w.Version() {
		t.Errorf("frame version %d, want %d", frame.Version, w.Version())
	}
	if len(frame.Chunks) != 1 || len(frame.Chunks[0].Blocks) != 1 {
		t.Fatalf("frame = %+v, want one chunk with one visible block", frame)
	}
	if frame.Chunks[0].Blocks[0].ID != 1 {
		t.Errorf("visible block id = %d, want 1", frame.Chunks[0].Blocks[0].ID)
	}
}

func TestHandlerExitsOnClientDisconnect(t *testing.T) {
	w, srv := testServer(t)
	w.SetBlock(0, 10, 0, 1)
	// No writes from here on: an idle world means the handler only
	// notices a dead peer through its read side.

	baseline := runtime.NumGoroutine()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatal(err)
	}
	if resp != nil {
		resp.Body.Close()
	}

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if _, _, err := conn.ReadMessage(); err != nil {
		t.Fatal(err)
	}
	conn.Close()

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if runtime.NumGoroutine() <= baseline {
			return
		}
		time.Sleep(25 * time.Millisecond)
	}
	t.Errorf("handler goroutines still running: %d > %d after client disconnect",
		runtime.NumGoroutine(), baseline)
}

func TestIsLoopbackRemote(t *testing.T) {
	cases := map[string]bool{
		"127.0.0.1:5000": true,
		"[::1]:5000":     true,
		"10.0.0.8:5000":  false,
		"example.com:80": false,
	}
	for addr, want := range cases {
		if got := isLoopbackRemote(addr); got != want {
			t.Errorf("isLoopbackRemote(%q) = %v, want %v", addr, got, want)
		}
	}
}
