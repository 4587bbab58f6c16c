// Package wsconn provides the single-attempt WebSocket client the aggregator
// task uses to talk to a venue feed: no reconnection is attempted beyond the
// initial Connect call.
package wsconn

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/coder/websocket"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/fd1az/orderbook-aggregator/internal/metrics"
)

// State represents the connection state.
type State string

const (
	StateDisconnected State = "disconnected"
	StateConnecting   State = "connecting"
	StateConnected    State = "connected"
	StateClosed       State = "closed"
)

// Config holds WebSocket client configuration.
type Config struct {
	URL            string
	Name           string // venue identifier, used as a metrics label
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	BufferSize     int
	MaxMessageSize int64 // 0 = no limit
}

// DefaultConfig returns sensible defaults for a venue feed connection.
func DefaultConfig(url, name string) Config {
	return Config{
		URL:            url,
		Name:           name,
		ReadTimeout:    60 * time.Second,
		WriteTimeout:   10 * time.Second,
		BufferSize:     256,
		MaxMessageSize: 10 * 1024 * 1024,
	}
}

// StateChangeHandler is called when connection state changes.
type StateChangeHandler func(state State, err error)

// Client is a single-attempt WebSocket client: Connect dials exactly once
// and never retries. Any subsequent read failure is surfaced by the
// Messages channel closing (a write failure is returned from Send and
// leaves the channel open); callers that need fatal-on-disconnect
// semantics must treat a closed channel with no prior error as equivalent
// to Err() returning non-nil.
type Client struct {
	config Config
	conn   *websocket.Conn
	connMu sync.RWMutex

	state   State
	stateMu sync.RWMutex

	messages chan []byte
	done     chan struct{}
	closeMu  sync.Mutex
	closed   atomic.Bool

	err   error
	errMu sync.Mutex

	connGauge prometheus.Gauge
	recvCount prometheus.Counter
	dropCount prometheus.Counter

	handlersMu    sync.RWMutex
	onStateChange StateChangeHandler
}

// New creates a client that records connection-state and message metrics
// against the given pre-labeled instruments (typically one vector element
// per venue from metrics.Registry). Any of the three may be nil, in which
// case that metric is simply not recorded — tests construct clients this
// way.
func New(config Config, connGauge prometheus.Gauge, recvCount, dropCount prometheus.Counter) *Client {
	return &Client{
		config:    config,
		state:     StateDisconnected,
		messages:  make(chan []byte, config.BufferSize),
		done:      make(chan struct{}),
		connGauge: connGauge,
		recvCount: recvCount,
		dropCount: dropCount,
	}
}

// OnStateChange sets the state change handler.
func (c *Client) OnStateChange(handler StateChangeHandler) {
	c.handlersMu.Lock()
	defer c.handlersMu.Unlock()
	c.onStateChange = handler
}

// Connect dials the venue once. There is no retry: a failed dial returns
// the error directly and leaves the client in StateDisconnected.
func (c *Client) Connect(ctx context.Context) error {
	c.setState(StateConnecting)

	conn, _, err := websocket.Dial(ctx, c.config.URL, &websocket.DialOptions{
		CompressionMode: websocket.CompressionContextTakeover,
	})
	if err != nil {
		c.setState(StateDisconnected)
		return fmt.Errorf("websocket dial %s: %w", c.config.Name, err)
	}

	if c.config.MaxMessageSize > 0 {
		conn.SetReadLimit(c.config.MaxMessageSize)
	}

	c.connMu.Lock()
	c.conn = conn
	c.connMu.Unlock()

	c.setState(StateConnected)

	go c.readLoop(context.Background())

	return nil
}

// readLoop reads frames until the connection fails or Close is called. On
// any read error it records the error, closes the messages channel, and
// returns — it does not attempt to reconnect.
func (c *Client) readLoop(ctx context.Context) {
	defer close(c.messages)

	loopCtx, cancelLoop := context.WithCancel(ctx)
	defer cancelLoop()
	go func() {
		select {
		case <-c.done:
			cancelLoop()
		case <-loopCtx.Done():
		}
	}()

	for {
		c.connMu.RLock()
		conn := c.conn
		c.connMu.RUnlock()
		if conn == nil {
			return
		}

		readCtx := loopCtx
		var cancel context.CancelFunc
		if c.config.ReadTimeout > 0 {
			readCtx, cancel = context.WithTimeout(loopCtx, c.config.ReadTimeout)
		}

		msgType, data, err := conn.Read(readCtx)
		if cancel != nil {
			cancel()
		}

		if err != nil {
			if c.closed.Load() {
				return
			}
			c.setErr(fmt.Errorf("websocket read %s: %w", c.config.Name, err))
			c.setState(StateDisconnected)
			return
		}

		if msgType != websocket.MessageText && msgType != websocket.MessageBinary {
			continue
		}

		if c.recvCount != nil {
			c.recvCount.Inc()
		}

		select {
		case c.messages <- data:
		default:
			if c.dropCount != nil {
				c.dropCount.Inc()
			}
		}
	}
}

// Send writes msg as a single text frame.
func (c *Client) Send(ctx context.Context, msg []byte) error {
	c.connMu.RLock()
	conn := c.conn
	c.connMu.RUnlock()

	if conn == nil {
		return errors.New("wsconn: not connected")
	}

	writeCtx := ctx
	if c.config.WriteTimeout > 0 {
		var cancel context.CancelFunc
		writeCtx, cancel = context.WithTimeout(ctx, c.config.WriteTimeout)
		defer cancel()
	}

	if err := conn.Write(writeCtx, websocket.MessageText, msg); err != nil {
		return fmt.Errorf("websocket write %s: %w", c.config.Name, err)
	}
	return nil
}

// SendJSON marshals v and sends it as a single text frame.
func (c *Client) SendJSON(ctx context.Context, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	return c.Send(ctx, data)
}

// Messages returns the channel carrying raw received frame payloads. It is closed when
// the read loop exits, whether due to a read error or Close.
func (c *Client) Messages() <-chan []byte {
	return c.messages
}

// Err returns the error that caused the read loop to exit, if any. A nil
// Err after the channel closes means Close was called deliberately.
func (c *Client) Err() error {
	c.errMu.Lock()
	defer c.errMu.Unlock()
	return c.err
}

func (c *Client) setErr(err error) {
	c.errMu.Lock()
	c.err = err
	c.errMu.Unlock()
}

// State returns the current connection state.
func (c *Client) State() State {
	c.stateMu.RLock()
	defer c.stateMu.RUnlock()
	return c.state
}

// IsConnected returns true if the client is connected.
func (c *Client) IsConnected() bool {
	return c.State() == StateConnected
}

// Close closes the underlying connection. Safe to call more than once.
func (c *Client) Close() error {
	c.closeMu.Lock()
	defer c.closeMu.Unlock()

	if c.closed.Load() {
		return nil
	}
	c.closed.Store(true)
	close(c.done)

	c.connMu.Lock()
	conn := c.conn
	c.conn = nil
	c.connMu.Unlock()

	c.setState(StateClosed)

	if conn != nil {
		if err := conn.Close(websocket.StatusNormalClosure, "client closing"); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) setState(state State) {
	c.stateMu.Lock()
	oldState := c.state
	c.state = state
	c.stateMu.Unlock()

	if oldState == state {
		return
	}

	if c.connGauge != nil {
		value := metrics.ConnDisconnected
		switch state {
		case StateConnecting:
			value = metrics.ConnConnecting
		case StateConnected:
			value = metrics.ConnConnected
		case StateClosed:
			value = metrics.ConnClosed
		}
		c.connGauge.Set(float64(value))
	}

	c.handlersMu.RLock()
	stateHandler := c.onStateChange
	c.handlersMu.RUnlock()
	if stateHandler != nil {
		stateHandler(state, nil)
	}
}
