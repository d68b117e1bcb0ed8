// Copyright (c) 2024-2026 Neomantra Corp
//
// Adapted from the teacher's errors.go sentinel style, generalized to the
// five error kinds of the IB TWS/Gateway wire protocol.

package ibtws

import (
	"errors"
	"fmt"

	"github.com/valyala/fastjson"
)

// Kind classifies an Error by what a caller can do about it.
type Kind int

const (
	// KindConnection is a TCP-level failure (refused, reset, unreachable).
	// Terminal for the session; the caller may reconnect.
	KindConnection Kind = iota
	// KindEncoding means the client tried to use a feature the negotiated
	// server version does not support, or built an over-long message.
	// Local to the request; the session continues.
	KindEncoding
	// KindDecoding means an incoming frame could not be parsed. Non-fatal:
	// surfaced as an Unknown event, logged, session continues.
	KindDecoding
	// KindProtocol is a handshake-level violation (bad version, redirect,
	// invalid frame length). Terminal for the session.
	KindProtocol
	// KindServer is a domain error reported by the server's own Error event.
	// Data, not an exception; the session continues.
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindEncoding:
		return "encoding"
	case KindDecoding:
		return "decoding"
	case KindProtocol:
		return "protocol"
	case KindServer:
		return "server"
	default:
		return "unknown"
	}
}

// Error is the library's single error type. Request methods only ever
// return Errors of KindConnection or KindEncoding; everything else surfaces
// through the event stream (spec.md §7).
type Error struct {
	Kind    Kind
	Message string
	Cause   error

	// Server-kind fields (spec.md §7's "pair of numeric code + message").
	ServerID   int32
	ServerCode int32

	// AdvancedOrderRejectJSON holds the optional structured reject payload
	// attached to some order-related Server errors, already unmarshaled by
	// the codec (see ParseAdvancedOrderReject).
	AdvancedOrderRejectJSON map[string]any
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindServer:
		return fmt.Sprintf("tws server error (id=%d, code=%d): %s", e.ServerID, e.ServerCode, e.Message)
	default:
		if e.Cause != nil {
			return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
		}
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

// NewConnectionError builds a KindConnection Error wrapping cause.
func NewConnectionError(cause error, format string, args ...any) *Error {
	return &Error{Kind: KindConnection, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// NewEncodingError builds a KindEncoding Error, typically reporting a
// version-gated feature the negotiated server version does not support.
func NewEncodingError(feature string, requiredGate int) *Error {
	return &Error{
		Kind:    KindEncoding,
		Message: fmt.Sprintf("%s requires server version >= %d", feature, requiredGate),
	}
}

// ParseAdvancedOrderReject parses the optional JSON payload TWS attaches to
// some order-rejection errors into a plain map, using fastjson rather than
// encoding/json so a malformed or unexpectedly-shaped payload never panics
// the caller mid-parse of an otherwise-fine error event.
func ParseAdvancedOrderReject(raw string) (map[string]any, error) {
	if raw == "" {
		return nil, nil
	}
	var p fastjson.Parser
	v, err := p.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("ibtws: parse advancedOrderRejectJson: %w", err)
	}
	obj, err := v.Object()
	if err != nil {
		return nil, fmt.Errorf("ibtws: advancedOrderRejectJson is not an object: %w", err)
	}
	out := make(map[string]any, obj.Len())
	obj.Visit(func(key []byte, val *fastjson.Value) {
		out[string(key)] = fastjsonValue(val)
	})
	return out, nil
}

func fastjsonValue(v *fastjson.Value) any {
	switch v.Type() {
	case fastjson.TypeString:
		s, _ := v.StringBytes()
		return string(s)
	case fastjson.TypeNumber:
		return v.GetFloat64()
	case fastjson.TypeTrue:
		return true
	case fastjson.TypeFalse:
		return false
	case fastjson.TypeArray:
		arr, _ := v.Array()
		out := make([]any, len(arr))
		for i, e := range arr {
			out[i] = fastjsonValue(e)
		}
		return out
	case fastjson.TypeObject:
		obj, _ := v.Object()
		out := make(map[string]any, obj.Len())
		obj.Visit(func(key []byte, val *fastjson.Value) {
			out[string(key)] = fastjsonValue(val)
		})
		return out
	default:
		return nil
	}
}

// RedirectError is returned by the Transport when the server's handshake
// response asks the caller to connect elsewhere. The core does not follow
// redirects automatically (spec.md §9 Open Questions); retry policy and the
// redirect-count cap belong to the caller.
type RedirectError struct {
	Target string
}

func (e *RedirectError) Error() string {
	return fmt.Sprintf("tws server redirected to %q", e.Target)
}

// Sentinel errors for the small, fixed set of protocol-level failure modes,
// mirroring the teacher's flat var-block of fmt.Errorf sentinels.
var (
	ErrFrameTooLarge      = errors.New("ibtws: frame exceeds 16MiB-1 length ceiling")
	ErrZeroLengthFrame    = errors.New("ibtws: zero-length frame")
	ErrNotConnected       = errors.New("ibtws: not connected")
	ErrHandshakeVersion   = errors.New("ibtws: server version outside supported client range")
	ErrTruncatedFrame     = errors.New("ibtws: frame body shorter than per-message decoder requires")
	ErrUnknownGate        = errors.New("ibtws: unknown server-version gate")
	ErrInvalidConfig      = errors.New("ibtws: invalid configuration")
)
