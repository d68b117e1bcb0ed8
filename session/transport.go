// Copyright (c) 2024-2026 Neomantra Corp
//
// transport.go: TCP connection, V100+ handshake, and framed I/O. Grounded on
// the teacher's live/live.go connect-then-split-read/write-halves shape,
// generalized from DBN's binary record framing to the TWS wire's
// 4-byte-length-prefixed frames.

package session

import (
	"bufio"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/riverrun-quant/ibtws-go"
	"github.com/riverrun-quant/ibtws-go/codec"
)

// minServerVersion/maxServerVersion bound what this client negotiates.
const (
	minServerVersion int32 = 100
	maxServerVersion int32 = 203
)

// Transport owns the raw TCP connection and its framed read/write halves.
// Reads and writes may proceed concurrently on different goroutines; callers
// must still serialize their own writes (Client does this with a mutex).
type Transport struct {
	conn   net.Conn
	reader *bufio.Reader

	ServerVersion   int32
	ConnectionTime  string
	ConnectedAt     time.Time
}

// Dial opens a TCP connection to addr and performs the V100+ handshake,
// requesting a server version in [minServerVersion, maxServerVersion].
// On redirect, it returns *ibtws.RedirectError without following the
// redirect: retry policy belongs to the caller (spec.md §9 Open Questions).
func Dial(ctx context.Context, addr string, connectOptions string) (*Transport, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, ibtws.NewConnectionError(err, "dial %s", addr)
	}
	t := &Transport{conn: conn, reader: bufio.NewReaderSize(conn, 64*1024)}

	const req = "API\x00"
	versionBody := fmt.Sprintf("v%d..%d", minServerVersion, maxServerVersion)
	if connectOptions != "" {
		versionBody += " " + connectOptions
	}
	frame := make([]byte, 4+len(versionBody))
	binary.BigEndian.PutUint32(frame[:4], uint32(len(versionBody)))
	copy(frame[4:], versionBody)

	if _, err := conn.Write([]byte(req)); err != nil {
		conn.Close()
		return nil, ibtws.NewConnectionError(err, "write handshake preamble")
	}
	if _, err := conn.Write(frame); err != nil {
		conn.Close()
		return nil, ibtws.NewConnectionError(err, "write handshake version range")
	}

	body, err := t.readFrame()
	if err != nil {
		conn.Close()
		return nil, err
	}
	text := string(body)
	if strings.HasPrefix(text, "/api/redirect") || looksLikeHostPort(text) {
		conn.Close()
		return nil, &ibtws.RedirectError{Target: text}
	}

	parts := strings.SplitN(text, "\x00", 2)
	sv, err := strconv.ParseInt(parts[0], 10, 32)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: unparseable server version %q", ibtws.ErrHandshakeVersion, parts[0])
	}
	t.ServerVersion = int32(sv)
	if t.ServerVersion < minServerVersion || t.ServerVersion > maxServerVersion {
		conn.Close()
		return nil, ibtws.ErrHandshakeVersion
	}
	if len(parts) > 1 {
		t.ConnectionTime = strings.TrimRight(parts[1], "\x00")
		if parsed, err := ibtws.ParseServerTime(t.ConnectionTime); err == nil {
			t.ConnectedAt = parsed
		}
	}
	return t, nil
}

func looksLikeHostPort(s string) bool {
	return strings.Contains(s, ":") && !strings.Contains(s, "\x00") && len(s) < 64
}

// readFrame reads one 4-byte-length-prefixed frame body.
func (t *Transport) readFrame() ([]byte, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(t.reader, lenBuf[:]); err != nil {
		return nil, ibtws.NewConnectionError(err, "read frame length")
	}
	n := binary.BigEndian.Uint32(lenBuf[:])
	if n == 0 {
		return nil, ibtws.ErrZeroLengthFrame
	}
	if n > uint32(codec.MaxFrameLen) {
		return nil, ibtws.ErrFrameTooLarge
	}
	body := make([]byte, n)
	if _, err := io.ReadFull(t.reader, body); err != nil {
		return nil, ibtws.NewConnectionError(err, "read frame body")
	}
	return body, nil
}

// ReadFrame exposes readFrame to the reader goroutine in client.go.
func (t *Transport) ReadFrame() ([]byte, error) { return t.readFrame() }

// WriteFrame writes one already-length-prefixed frame (as built by
// codec.Frame).
func (t *Transport) WriteFrame(frame []byte) error {
	_, err := t.conn.Write(frame)
	if err != nil {
		return ibtws.NewConnectionError(err, "write frame")
	}
	return nil
}

// Close closes the underlying connection.
func (t *Transport) Close() error { return t.conn.Close() }
