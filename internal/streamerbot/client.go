// Package streamerbot drives stage overlays through a Streamer.bot WebSocket
// server. Draw events become DoAction requests; an absent or unreachable
// Streamer.bot never affects the draw itself.
package streamerbot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/osse101/PrizeDraw_Go/internal/logger"
)

// Client manages the WebSocket connection to Streamer.bot
type Client struct {
	url      string
	password string

	mu        sync.RWMutex
	conn      *websocket.Conn
	connected bool
	dormant   bool

	// gorilla connections allow one concurrent writer
	writeMu sync.Mutex

	shutdown chan struct{}
	stopOnce sync.Once
	wakeup   chan struct{}
	wg       sync.WaitGroup

	reconnectDelay time.Duration
	helloTimeout   time.Duration
}

// Request is a Streamer.bot WebSocket request
type Request struct {
	Request        string            `json:"request"`
	ID             string            `json:"id"`
	Action         *Action           `json:"action,omitempty"`
	Args           map[string]string `json:"args,omitempty"`
	Authentication string            `json:"authentication,omitempty"`
}

// Action identifies a Streamer.bot action by name
type Action struct {
	Name string `json:"name"`
}

// Response is a Streamer.bot reply to a request
type Response struct {
	Status string `json:"status"`
	ID     string `json:"id"`
	Error  string `json:"error,omitempty"`
}

// hello is the first message Streamer.bot sends, carrying the auth challenge if any
type hello struct {
	Info struct {
		Authentication struct {
			Challenge string `json:"challenge"`
			Salt      string `json:"salt"`
		} `json:"authentication"`
	} `json:"info"`
}

// NewClient creates a client for url. password may be empty when
// Streamer.bot runs without authentication.
func NewClient(url, password string) *Client {
	return &Client{
		url:            url,
		password:       password,
		shutdown:       make(chan struct{}),
		wakeup:         make(chan struct{}, 1),
		reconnectDelay: DefaultReconnectDelay,
		helloTimeout:   HelloTimeout,
	}
}

// Start connects in the background and keeps reconnecting until Stop
func (c *Client) Start(ctx context.Context) {
	c.wg.Add(1)
	go c.connectLoop(ctx)
}

// Stop closes the connection and waits for the background loop. Safe to call more than once.
func (c *Client) Stop() {
	c.stopOnce.Do(func() { close(c.shutdown) })

	c.mu.Lock()
	if c.conn != nil {
		// Unblocks the read loop
		_ = c.conn.Close()
	}
	c.mu.Unlock()

	c.wg.Wait()
}

// IsConnected returns whether the client is currently connected
func (c *Client) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

// DoAction asks Streamer.bot to run the named action. It does not wait for
// the action to finish; rejections are logged by the read loop.
func (c *Client) DoAction(ctx context.Context, actionName string, args map[string]string) error {
	c.mu.RLock()
	isDormant := c.dormant
	c.mu.RUnlock()

	log := logger.FromContext(ctx)

	if isDormant {
		log.Debug(LogMsgDormantRetry)
		select {
		case c.wakeup <- struct{}{}:
		default:
		}
		return errors.New(ErrMsgDormant)
	}

	if !c.IsConnected() {
		return errors.New(ErrMsgNotConnected)
	}

	req := Request{
		Request: RequestDoAction,
		ID:      uuid.NewString(),
		Action:  &Action{Name: actionName},
		Args:    args,
	}

	log.Debug(LogMsgSendingAction, "action", actionName, "args", args)
	if err := c.send(req); err != nil {
		log.Warn(LogMsgActionFailed, "action", actionName, "error", err)
		return err
	}

	log.Info(LogMsgActionSent, "action", actionName, "request_id", req.ID)
	return nil
}

func (c *Client) connectLoop(ctx context.Context) {
	defer c.wg.Done()

	backoff := c.reconnectDelay
	failures := 0

	for {
		if c.stopping(ctx) {
			logger.Info(LogMsgClientStopped)
			return
		}

		err := c.connect(ctx)
		c.setConnected(nil)

		if err == nil {
			if failures > 0 {
				logger.Info(LogMsgConnRestored, "after_failures", failures)
			}
			backoff = c.reconnectDelay
			failures = 0
			continue
		}

		failures++
		if failures >= MaxConsecutiveFailures {
			if !c.sleepUntilWoken(ctx, failures) {
				return
			}
			backoff = c.reconnectDelay
			failures = 0
			continue
		}

		// First few failures, then only occasionally
		if failures <= 3 {
			logger.Warn(LogMsgReconnecting, "error", err, "backoff", backoff, "consecutive_failures", failures)
		}

		select {
		case <-time.After(backoff):
			backoff = time.Duration(float64(backoff) * ReconnectMultiplier)
			if backoff > MaxReconnectDelay {
				backoff = MaxReconnectDelay
			}
		case <-c.shutdown:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (c *Client) stopping(ctx context.Context) bool {
	select {
	case <-c.shutdown:
		return true
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

// sleepUntilWoken parks the loop after too many failures. The next DoAction
// wakes it. Returns false on shutdown.
func (c *Client) sleepUntilWoken(ctx context.Context, failures int) bool {
	c.mu.Lock()
	c.dormant = true
	c.mu.Unlock()

	logger.Warn(LogMsgGivingUp, "consecutive_failures", failures, "max_allowed", MaxConsecutiveFailures)

	select {
	case <-c.wakeup:
		logger.Info(LogMsgWaking)
		c.mu.Lock()
		c.dormant = false
		c.mu.Unlock()
		return true
	case <-c.shutdown:
		return false
	case <-ctx.Done():
		return false
	}
}

// connect dials, authenticates when challenged and then blocks reading
// until the connection drops
func (c *Client) connect(ctx context.Context) error {
	logger.Info(LogMsgConnecting, "url", c.url)

	dialer := websocket.Dialer{
		ReadBufferSize:   ReadBufferSize,
		WriteBufferSize:  WriteBufferSize,
		HandshakeTimeout: WriteTimeout,
	}

	conn, resp, err := dialer.DialContext(ctx, c.url, nil)
	if err != nil {
		if resp != nil {
			return fmt.Errorf("%s: %w (status %d)", ErrMsgConnectFailed, err, resp.StatusCode)
		}
		return fmt.Errorf("%s: %w", ErrMsgConnectFailed, err)
	}

	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()
	if c.stopping(ctx) {
		return nil
	}

	// Streamer.bot without auth may send nothing at all
	_ = conn.SetReadDeadline(time.Now().Add(c.helloTimeout))
	_, msg, err := conn.ReadMessage()
	_ = conn.SetReadDeadline(time.Time{})

	if err != nil {
		logger.Debug(LogMsgNoHello, "error", err)
		// A timed out read leaves a gorilla connection unusable, so dial again without waiting
		if !isTimeout(err) {
			return err
		}
		_ = conn.Close()
		return c.connectNoHello(ctx)
	}

	var h hello
	if json.Unmarshal(msg, &h) == nil && h.Info.Authentication.Challenge != "" {
		logger.Info(LogMsgAuthRequired)
		if err := c.authenticate(conn, h); err != nil {
			_ = conn.Close()
			return fmt.Errorf("%s: %w", ErrMsgAuthFailed, err)
		}
		logger.Info(LogMsgAuthSuccess)
	}

	return c.serve(ctx, conn)
}

// connectNoHello redials a server that sent no greeting and goes straight to serving
func (c *Client) connectNoHello(ctx context.Context) error {
	dialer := websocket.Dialer{
		ReadBufferSize:   ReadBufferSize,
		WriteBufferSize:  WriteBufferSize,
		HandshakeTimeout: WriteTimeout,
	}
	conn, _, err := dialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgConnectFailed, err)
	}
	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()
	return c.serve(ctx, conn)
}

func (c *Client) serve(ctx context.Context, conn *websocket.Conn) error {
	c.setConnected(conn)
	logger.Info(LogMsgConnected, "url", c.url)
	return c.readLoop(ctx, conn)
}

func (c *Client) authenticate(conn *websocket.Conn, h hello) error {
	if c.password == "" {
		return errors.New(ErrMsgPasswordRequired)
	}

	req := Request{
		Request:        RequestAuthenticate,
		ID:             uuid.NewString(),
		Authentication: AuthHash(c.password, h.Info.Authentication.Salt, h.Info.Authentication.Challenge),
	}
	if err := c.send(req); err != nil {
		return err
	}

	_ = conn.SetReadDeadline(time.Now().Add(WriteTimeout))
	defer func() { _ = conn.SetReadDeadline(time.Time{}) }()

	var resp Response
	if err := conn.ReadJSON(&resp); err != nil {
		return err
	}
	if resp.Status != StatusOK {
		return fmt.Errorf("%s: %s", ErrMsgAuthRejected, resp.Error)
	}
	return nil
}

func (c *Client) readLoop(ctx context.Context, conn *websocket.Conn) error {
	for {
		if c.stopping(ctx) {
			return nil
		}

		_, msg, err := conn.ReadMessage()
		if err != nil {
			if c.stopping(ctx) || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			logger.Warn(LogMsgReadError, "error", err)
			return err
		}

		var resp Response
		if json.Unmarshal(msg, &resp) != nil {
			continue
		}
		if resp.Status == StatusError {
			logger.Warn(LogMsgActionRejected, "request_id", resp.ID, "error", resp.Error)
		}
	}
}

func (c *Client) send(req Request) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return errors.New(ErrMsgNotConnected)
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	_ = conn.SetWriteDeadline(time.Now().Add(WriteTimeout))
	return conn.WriteJSON(req)
}

// setConnected records the live connection, or its loss when conn is nil
func (c *Client) setConnected(conn *websocket.Conn) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if conn == nil {
		if c.conn != nil {
			_ = c.conn.Close()
		}
		c.conn = nil
		c.connected = false
		return
	}
	c.conn = conn
	c.connected = true
}

func isTimeout(err error) bool {
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
