// Copyright (c) 2024-2026 Neomantra Corp
//
// client.go: the async client runtime. One reader goroutine decodes frames
// onto an unbounded queue that feeds the event channel (spec.md §7's "unlike the teacher's
// bounded/drop channel, this client never drops an event"); callers drive
// the writer half directly through exported request methods, which a mutex
// serializes against concurrent callers.

package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/riverrun-quant/ibtws-go"
	"github.com/riverrun-quant/ibtws-go/codec"
)

// Environment variable names consulted by Config.SetFromEnv.
const (
	HostEnvKey     = "IBTWS_HOST"
	PortEnvKey     = "IBTWS_PORT"
	ClientIDEnvKey = "IBTWS_CLIENT_ID"
)

// Client is a live connection to a TWS/Gateway instance.
type Client struct {
	transport *Transport
	log       *slog.Logger

	writeMu sync.Mutex
	nextReqID int32

	queue  *eventQueue
	events chan ibtws.Event

	closeOnce sync.Once
}

// eventQueue is an unbounded, growable FIFO of events: push never blocks on
// a slow consumer (spec.md §5: "the reader never blocks waiting for the
// application to consume; ... memory grows"), unlike a fixed-capacity
// buffered channel. pop blocks until an item is available or the queue is
// closed.
type eventQueue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  []ibtws.Event
	closed bool
}

func newEventQueue() *eventQueue {
	q := &eventQueue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

func (q *eventQueue) push(ev ibtws.Event) {
	q.mu.Lock()
	q.items = append(q.items, ev)
	q.mu.Unlock()
	q.cond.Signal()
}

// closeQueue marks the queue closed; any items already pushed are still
// delivered by pop before it reports the queue empty.
func (q *eventQueue) closeQueue() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.cond.Broadcast()
}

func (q *eventQueue) pop() (ibtws.Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.items) == 0 && !q.closed {
		q.cond.Wait()
	}
	if len(q.items) == 0 {
		return nil, false
	}
	ev := q.items[0]
	q.items[0] = nil
	q.items = q.items[1:]
	return ev, true
}

// Config parameterizes Connect. Host/Port/ClientID may be left zero and
// filled in by SetFromEnv; Addr, if already set, takes precedence over
// Host/Port in Connect.
type Config struct {
	Addr                 string
	Host                 string
	Port                 int
	ClientID             int32
	ConnectOptions       string
	OptionalCapabilities string
	Logger               *slog.Logger
	Verbose              bool
}

// SetFromEnv fills in empty fields from IBTWS_HOST, IBTWS_PORT and
// IBTWS_CLIENT_ID, following the teacher's LiveConfig.SetFromEnv convention
// of only overwriting fields the caller left unset.
func (c *Config) SetFromEnv() error {
	if c.Host == "" {
		c.Host = os.Getenv(HostEnvKey)
	}
	if c.Port == 0 {
		if v := os.Getenv(PortEnvKey); v != "" {
			p, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s: %w", PortEnvKey, err)
			}
			c.Port = p
		}
	}
	if c.ClientID == 0 {
		if v := os.Getenv(ClientIDEnvKey); v != "" {
			id, err := strconv.ParseInt(v, 10, 32)
			if err != nil {
				return fmt.Errorf("%s: %w", ClientIDEnvKey, err)
			}
			c.ClientID = int32(id)
		}
	}
	return nil
}

// validate checks that Config carries enough information to dial, filling
// Addr from Host/Port when the caller didn't set Addr directly.
func (c *Config) validate() error {
	if c.Addr == "" {
		if c.Host == "" {
			return errors.New("field Host (or Addr) is unset")
		}
		if c.Port <= 0 || c.Port > 65535 {
			return fmt.Errorf("field Port must be in [1, 65535], got %d", c.Port)
		}
		c.Addr = fmt.Sprintf("%s:%d", c.Host, c.Port)
	}
	return nil
}

// Connect dials addr, performs the V100+ handshake, sends startApi, and
// spawns the reader goroutine. The returned Client is ready for requests
// once the caller has received the NextValidID event (spec.md §7).
func Connect(ctx context.Context, cfg Config) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ibtws.ErrInvalidConfig, err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "ibtws.session")
	if cfg.Verbose {
		logger = logger.With("verbose", true)
	}

	t, err := Dial(ctx, cfg.Addr, cfg.ConnectOptions)
	if err != nil {
		return nil, err
	}

	c := &Client{
		transport: t,
		log:       logger,
		queue:     newEventQueue(),
		events:    make(chan ibtws.Event),
	}

	if err := c.sendStartAPI(cfg.ClientID, cfg.OptionalCapabilities); err != nil {
		t.Close()
		return nil, err
	}

	go c.readLoop()
	go c.feedLoop()
	return c, nil
}

func (c *Client) sendStartAPI(clientID int32, optionalCapabilities string) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutStartAPI, c.transport.ServerVersion, false)
	b.Int(2) // version
	b.Int(clientID)
	b.String(optionalCapabilities)
	frame, err := codec.Frame(b.Bytes())
	if err != nil {
		return err
	}
	return c.transport.WriteFrame(frame)
}

// Events returns the channel events are delivered on. Delivery is backed by
// an unbounded internal queue (spec.md §5): the reader goroutine never
// blocks waiting for the application to drain this channel, so a slow
// consumer grows the session's memory rather than stalling decoding or
// dropping a message. The channel is closed after a terminal
// ConnectionClosed event has been delivered.
func (c *Client) Events() <-chan ibtws.Event { return c.events }

// ServerVersion returns the version negotiated during the handshake.
func (c *Client) ServerVersion() int32 { return c.transport.ServerVersion }

// readLoop decodes frames and pushes them onto the unbounded queue; it never
// blocks on a slow consumer.
func (c *Client) readLoop() {
	defer c.queue.closeQueue()
	for {
		body, err := c.transport.ReadFrame()
		if err != nil {
			c.queue.push(&ibtws.ConnectionClosed{Err: err})
			return
		}
		ev := codec.Dispatch(body, c.transport.ServerVersion)
		if unk, ok := ev.(*ibtws.Unknown); ok {
			c.log.Warn("undecodable frame, continuing session", "msg_id", unk.MsgID, "cause", unk.Cause)
		}
		c.queue.push(ev)
	}
}

// feedLoop drains the unbounded queue onto the public, unbuffered Events
// channel; it is the only goroutine that may block on a slow consumer, and
// the queue (not this channel) is where backlog actually accumulates.
func (c *Client) feedLoop() {
	defer close(c.events)
	for {
		ev, ok := c.queue.pop()
		if !ok {
			return
		}
		c.events <- ev
	}
}

// NextRequestID atomically allocates the next outgoing request ID.
func (c *Client) NextRequestID() int32 {
	return atomic.AddInt32(&c.nextReqID, 1)
}

// SetNextRequestID reseeds the counter, typically from a NextValidID event.
func (c *Client) SetNextRequestID(v int32) {
	atomic.StoreInt32(&c.nextReqID, v-1)
}

// Disconnect closes the transport. Calling it more than once is a no-op
// returning success (spec.md §8 Testable Property #3, §4.5).
func (c *Client) Disconnect() error {
	var err error
	c.closeOnce.Do(func() {
		err = c.transport.Close()
	})
	return err
}

// send serializes one already-built frame against concurrent writers.
func (c *Client) send(b *codec.Builder) error {
	frame, err := codec.Frame(b.Bytes())
	if err != nil {
		return err
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.transport.WriteFrame(frame)
}
