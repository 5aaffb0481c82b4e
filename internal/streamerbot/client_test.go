package streamerbot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSalt      = "c2FsdA=="
	testChallenge = "Y2hhbGxlbmdl"
)

// fakeStreamerBot speaks enough of the Streamer.bot protocol for the client
type fakeStreamerBot struct {
	password string
	silent   bool // no hello, like an instance without auth

	mu       sync.Mutex
	requests []Request
	received chan Request
}

func newFakeStreamerBot(password string) *fakeStreamerBot {
	return &fakeStreamerBot{password: password, received: make(chan Request, 16)}
}

func (f *fakeStreamerBot) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	if !f.silent {
		h := map[string]interface{}{"request": "Hello", "info": map[string]interface{}{}}
		if f.password != "" {
			h["info"] = map[string]interface{}{
				"authentication": map[string]string{"salt": testSalt, "challenge": testChallenge},
			}
		}
		if conn.WriteJSON(h) != nil {
			return
		}
	}

	for {
		var req Request
		if err := conn.ReadJSON(&req); err != nil {
			return
		}

		if req.Request == RequestAuthenticate {
			resp := Response{ID: req.ID, Status: StatusOK}
			if req.Authentication != AuthHash(f.password, testSalt, testChallenge) {
				resp = Response{ID: req.ID, Status: StatusError, Error: "Authentication failed"}
			}
			if conn.WriteJSON(resp) != nil || resp.Status != StatusOK {
				return
			}
			continue
		}

		f.mu.Lock()
		f.requests = append(f.requests, req)
		f.mu.Unlock()
		f.received <- req
		_ = conn.WriteJSON(Response{ID: req.ID, Status: StatusOK})
	}
}

func startFake(t *testing.T, fake *fakeStreamerBot) string {
	t.Helper()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func newTestClient(url, password string) *Client {
	c := NewClient(url, password)
	c.reconnectDelay = 10 * time.Millisecond
	c.helloTimeout = 200 * time.Millisecond
	return c
}

func TestAuthHash(t *testing.T) {
	t.Parallel()

	a := AuthHash("hunter2", testSalt, testChallenge)
	assert.Equal(t, a, AuthHash("hunter2", testSalt, testChallenge))
	assert.NotEqual(t, a, AuthHash("hunter3", testSalt, testChallenge))
	assert.NotEqual(t, a, AuthHash("hunter2", testSalt, "other"))
	assert.Len(t, a, 44, "base64 of a sha256 sum")
}

func TestClient_AuthenticatesAndSendsAction(t *testing.T) {
	fake := newFakeStreamerBot("hunter2")
	client := newTestClient(startFake(t, fake), "hunter2")

	client.Start(context.Background())
	defer client.Stop()

	require.Eventually(t, client.IsConnected, 2*time.Second, 10*time.Millisecond)

	err := client.DoAction(context.Background(), ActionWinnersCommitted, map[string]string{"winner_1": "Alice"})
	require.NoError(t, err)

	select {
	case req := <-fake.received:
		assert.Equal(t, RequestDoAction, req.Request)
		require.NotNil(t, req.Action)
		assert.Equal(t, ActionWinnersCommitted, req.Action.Name)
		assert.Equal(t, "Alice", req.Args["winner_1"])
		assert.NotEmpty(t, req.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("action never reached Streamer.bot")
	}
}

func TestClient_NoAuthInstance(t *testing.T) {
	fake := newFakeStreamerBot("")
	fake.silent = true
	client := newTestClient(startFake(t, fake), "")

	client.Start(context.Background())
	defer client.Stop()

	require.Eventually(t, client.IsConnected, 2*time.Second, 10*time.Millisecond)
	require.NoError(t, client.DoAction(context.Background(), ActionDrawReset, nil))

	select {
	case req := <-fake.received:
		assert.Equal(t, ActionDrawReset, req.Action.Name)
	case <-time.After(2 * time.Second):
		t.Fatal("action never reached Streamer.bot")
	}
}

func TestClient_WrongPasswordNeverConnects(t *testing.T) {
	fake := newFakeStreamerBot("hunter2")
	client := newTestClient(startFake(t, fake), "letmein")

	client.Start(context.Background())
	defer client.Stop()

	assert.Never(t, client.IsConnected, 300*time.Millisecond, 20*time.Millisecond)
	err := client.DoAction(context.Background(), ActionDrawCompleted, nil)
	assert.Error(t, err)
}

func TestClient_DoActionWhenNotConnected(t *testing.T) {
	t.Parallel()

	client := NewClient("ws://127.0.0.1:1/", "")
	err := client.DoAction(context.Background(), ActionRollStarted, map[string]string{"tier_level": "1"})
	require.Error(t, err)
	assert.Equal(t, ErrMsgNotConnected, err.Error())
}

func TestClient_DormantWakesOnce(t *testing.T) {
	t.Parallel()

	client := NewClient("ws://127.0.0.1:1/", "")
	client.mu.Lock()
	client.dormant = true
	client.mu.Unlock()

	err := client.DoAction(context.Background(), "first", nil)
	require.Error(t, err)
	assert.Equal(t, ErrMsgDormant, err.Error())

	// Second call must not block on the buffered wakeup channel
	require.Error(t, client.DoAction(context.Background(), "second", nil))

	select {
	case <-client.wakeup:
	case <-time.After(100 * time.Millisecond):
		t.Fatal("expected a wakeup signal")
	}
	select {
	case <-client.wakeup:
		t.Error("wakeup should be signalled only once")
	default:
	}
}

func TestClient_StopIsIdempotent(t *testing.T) {
	fake := newFakeStreamerBot("")
	client := newTestClient(startFake(t, fake), "")
	client.Start(context.Background())
	require.Eventually(t, client.IsConnected, 2*time.Second, 10*time.Millisecond)

	done := make(chan struct{})
	go func() {
		client.Stop()
		client.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}
	assert.False(t, client.IsConnected())
}
