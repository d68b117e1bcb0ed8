// Copyright (c) 2024-2026 Neomantra Corp
//
// Layer A+B of the wire codec: generic field primitives (Layer A) and
// message framing (Layer B). Field order within a message body is entirely
// the caller's responsibility (Layer C, per-message) — this file only knows
// how to lay down one field at a time and how to wrap a body in the
// 4-byte-length-prefixed frame the V100+ handshake negotiates.
//
// Grounded on the teacher's dbn_scanner.go Fill_Raw cursor style, inverted
// for writing: a Builder accumulates null-terminated ASCII fields into a
// growable buffer exactly the way EClientSocket's Builder does in the
// public Java/C++/Python clients.

package codec

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/riverrun-quant/ibtws-go"
)

// MaxFrameLen is the largest body a frame may carry (16MiB - 1), matching
// the length the TWS server will accept in its 4-byte big-endian prefix.
const MaxFrameLen = 16*1024*1024 - 1

// Builder accumulates one outgoing message body.
type Builder struct {
	buf []byte
}

// NewBuilder returns an empty Builder ready to accept fields.
func NewBuilder() *Builder { return &Builder{buf: make([]byte, 0, 256)} }

func (b *Builder) writeRaw(s string) {
	b.buf = append(b.buf, s...)
	b.buf = append(b.buf, 0)
}

// String writes a field verbatim.
func (b *Builder) String(s string) { b.writeRaw(s) }

// Int writes an integer field; use IntMax for fields whose absence sentinel
// is UnsetInt (spec.md §3.2 - encoders never write the "_max" sentinel, they
// write an empty field instead).
func (b *Builder) Int(v int32) { b.writeRaw(strconv.FormatInt(int64(v), 10)) }

// IntMax writes v, or an empty field when v equals ibtws.UnsetInt.
func (b *Builder) IntMax(v int32) {
	if ibtws.IsUnsetInt(v) {
		b.writeRaw("")
		return
	}
	b.Int(v)
}

// Int64 writes a 64-bit integer field.
func (b *Builder) Int64(v int64) { b.writeRaw(strconv.FormatInt(v, 10)) }

// Float writes a float field; NaN becomes an empty field, +/-Inf become the
// literal "Infinity"/"-Infinity" strings the wire uses (spec.md §3.2).
func (b *Builder) Float(v float64) {
	switch {
	case math.IsNaN(v):
		b.writeRaw("")
	case math.IsInf(v, 1):
		b.writeRaw("Infinity")
	case math.IsInf(v, -1):
		b.writeRaw("-Infinity")
	default:
		b.writeRaw(strconv.FormatFloat(v, 'g', -1, 64))
	}
}

// FloatMax writes v, or an empty field when v equals ibtws.UnsetFloat.
func (b *Builder) FloatMax(v float64) {
	if ibtws.IsUnsetFloat(v) {
		b.writeRaw("")
		return
	}
	b.Float(v)
}

// Bool writes "1" or "0".
func (b *Builder) Bool(v bool) {
	if v {
		b.writeRaw("1")
	} else {
		b.writeRaw("0")
	}
}

// Decimal writes a shopspring/decimal value verbatim in its canonical form.
func (b *Builder) Decimal(d decimal.Decimal) { b.writeRaw(d.String()) }

// TagValueList writes a "tag=value;tag=value;" single field, the format
// used by Order.AlgoParams and SmartComboRoutingParams.
func (b *Builder) TagValueList(tvs []ibtws.TagValue) {
	s := ""
	for _, tv := range tvs {
		s += tv.Tag + "=" + tv.Value + ";"
	}
	b.writeRaw(s)
}

// Append appends raw, already-encoded bytes (a protobuf sub-message body)
// verbatim, with no field framing of its own.
func (b *Builder) Append(raw []byte) { b.buf = append(b.buf, raw...) }

// Bytes returns the accumulated body. The Builder must not be reused after
// this call returns a slice that will be framed and sent.
func (b *Builder) Bytes() []byte { return b.buf }

// Len reports the current body length.
func (b *Builder) Len() int { return len(b.buf) }

// Frame wraps body in the 4-byte big-endian length prefix the V100+
// handshake negotiates (spec.md §3.1).
func Frame(body []byte) ([]byte, error) {
	if len(body) == 0 {
		return nil, ibtws.ErrZeroLengthFrame
	}
	if len(body) > MaxFrameLen {
		return nil, ibtws.ErrFrameTooLarge
	}
	out := make([]byte, 4+len(body))
	binary.BigEndian.PutUint32(out[:4], uint32(len(body)))
	copy(out[4:], body)
	return out, nil
}

// EncodeMsgID writes the message-ID field. Below ibtws.GateProtobuf the ID
// is always null-terminated ASCII decimal; at or above it, every outgoing
// message's ID field switches to a bare 4-byte big-endian integer (spec.md
// §4.3 Layer B), and useProtobuf additionally shifts that integer by
// ibtws.ProtobufMsgID to mark the body itself as protobuf-encoded. This is
// the exact symmetric counterpart of DecodeMsgID.
func EncodeMsgID(b *Builder, id ibtws.OutgoingID, serverVersion int32, useProtobuf bool) {
	if serverVersion < int32(ibtws.GateProtobuf) {
		b.Int(int32(id))
		return
	}
	raw := int32(id)
	if useProtobuf {
		raw += ibtws.ProtobufMsgID
	}
	rawBytes := make([]byte, 4)
	binary.BigEndian.PutUint32(rawBytes, uint32(raw))
	b.buf = append(b.buf, rawBytes...)
}

// ShouldUseProtobuf decides whether id must be protobuf-encoded at
// serverVersion, combining the message's protobuf eligibility with the
// gate that enables protobuf for that specific message (spec.md §4.3).
func ShouldUseProtobuf(id ibtws.OutgoingID, serverVersion int32, gate ibtws.Gate) bool {
	if !ibtws.ProtobufOutgoingIDs[id] {
		return false
	}
	return serverVersion >= int32(gate)
}

// fieldCountError is returned by decoders that hit fewer fields than required;
// kept here (rather than in ibtws) since only the codec constructs it.
func fieldCountError(want, got int) error {
	return fmt.Errorf("%w: wanted at least %d fields, got %d", ibtws.ErrTruncatedFrame, want, got)
}
