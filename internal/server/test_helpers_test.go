package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"songquiz/internal/config"
)

func newTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	listener, err := net.Listen("tcp4", "127.0.0.1:0")
	if err != nil {
		t.Skipf("skipping test; listen unavailable: %v", err)
	}
	ts := &httptest.Server{
		Listener: listener,
		Config:   &http.Server{Handler: handler},
	}
	ts.Start()
	return ts
}

func newGameServer() *Server {
	return New(nil, config.Default())
}

// fakeConn builds a connection-less client. Sends to it are dropped, which
// lets room operations run directly without a websocket.
func fakeConn(id string) *client {
	return &client{id: id}
}

// setupGame wires a host plus the named players into a fresh room and
// returns the room id.
func setupGame(t *testing.T, srv *Server, host *client, players ...*client) string {
	t.Helper()
	srv.handleCreateRoom(host)
	room, ok := srv.store.GetRoom(host.roomID)
	if !ok {
		t.Fatalf("expected room %q to exist", host.roomID)
	}
	for i, pc := range players {
		srv.handleJoinRoom(pc, joinRoomPayload{
			GameID:     room.GameCode,
			PlayerName: fmt.Sprintf("player-%d", i+1),
		})
		if pc.roomID != room.ID {
			t.Fatalf("expected player %s to join %s, got %q", pc.id, room.ID, pc.roomID)
		}
	}
	return room.ID
}

// startGame selects the first stock quiz and starts it.
func startGame(t *testing.T, srv *Server, host *client) {
	t.Helper()
	srv.handleSelectQuiz(host, selectQuizPayload{QuizID: 1})
	srv.handleStartQuiz(host)
	room := mustRoom(t, srv, host.roomID)
	if room.State != statePlaying {
		t.Fatalf("expected state %q, got %q", statePlaying, room.State)
	}
	if len(room.Quiz) == 0 {
		t.Fatal("expected a selected quiz with songs")
	}
}

func mustRoom(t *testing.T, srv *Server, roomID string) *Room {
	t.Helper()
	room, ok := srv.store.GetRoom(roomID)
	if !ok {
		t.Fatalf("expected room %q to exist", roomID)
	}
	return room
}

var testClock = time.Date(2026, time.March, 14, 15, 0, 0, 0, time.UTC)

func doRequest(t *testing.T, ts *httptest.Server, method, path string, payload any) *http.Response {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	t.Cleanup(func() {
		_ = resp.Body.Close()
	})
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func decodeBodyList(t *testing.T, resp *http.Response) []map[string]any {
	t.Helper()
	var body []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body list: %v", err)
	}
	return body
}

func testSongs(count int) []Song {
	songs := make([]Song, 0, count)
	for i := 0; i < count; i++ {
		songs = append(songs, Song{
			Title:      fmt.Sprintf("Song %d", i+1),
			Artist:     fmt.Sprintf("Artist %d", i+1),
			ButtonText: fmt.Sprintf("Button %d", i+1),
			SongURI:    fmt.Sprintf("spotify:track:test%d", i+1),
		})
	}
	return songs
}
