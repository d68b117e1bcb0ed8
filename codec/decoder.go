// Copyright (c) 2024-2026 Neomantra Corp
//
// Decoder half of Layer A+B. Reader walks a message body field-by-field the
// way the teacher's dbn_scanner.go walks a fixed-width binary record with a
// cursor, except fields here are variable-length and null-terminated.

package codec

import (
	"bytes"
	"encoding/binary"
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/riverrun-quant/ibtws-go"
)

// Reader walks one message body's ASCII fields in order.
type Reader struct {
	buf []byte
	pos int
	err error
}

// NewReader wraps body for sequential field decoding.
func NewReader(body []byte) *Reader { return &Reader{buf: body} }

// Err returns the first decode error encountered, if any. Once set, every
// subsequent read returns a zero value without scanning further, so callers
// can decode an entire message and check Err once at the end.
func (r *Reader) Err() error { return r.err }

func (r *Reader) next() (string, bool) {
	if r.err != nil {
		return "", false
	}
	if r.pos >= len(r.buf) {
		r.err = ibtws.ErrTruncatedFrame
		return "", false
	}
	idx := bytes.IndexByte(r.buf[r.pos:], 0)
	if idx < 0 {
		r.err = ibtws.ErrTruncatedFrame
		return "", false
	}
	s := string(r.buf[r.pos : r.pos+idx])
	r.pos += idx + 1
	return s, true
}

// HasMore reports whether any bytes remain unread, for trailing fields that
// only newer server versions send.
func (r *Reader) HasMore() bool { return r.err == nil && r.pos < len(r.buf) }

// String reads the next field verbatim.
func (r *Reader) String() string {
	s, _ := r.next()
	return s
}

// Int reads the next field as an integer; empty decodes to 0 (spec.md §3.2:
// only "_max" decoders treat empty as absence).
func (r *Reader) Int() int32 {
	s, ok := r.next()
	if !ok || s == "" {
		return 0
	}
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		r.err = err
		return 0
	}
	return int32(v)
}

// IntMax reads the next field, mapping an empty field to ibtws.UnsetInt.
func (r *Reader) IntMax() int32 {
	s, ok := r.next()
	if !ok {
		return ibtws.UnsetInt
	}
	if s == "" {
		return ibtws.UnsetInt
	}
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		r.err = err
		return ibtws.UnsetInt
	}
	return int32(v)
}

// Int64 reads the next field as a 64-bit integer.
func (r *Reader) Int64() int64 {
	s, ok := r.next()
	if !ok || s == "" {
		return 0
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		r.err = err
		return 0
	}
	return v
}

// Float reads the next field as a float; empty decodes to 0, the literal
// "Infinity"/"-Infinity" decode to +/-Inf (spec.md §3.2).
func (r *Reader) Float() float64 {
	s, ok := r.next()
	if !ok || s == "" {
		return 0
	}
	switch s {
	case "Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		r.err = err
		return 0
	}
	return v
}

// FloatMax reads the next field, mapping an empty field to NaN.
func (r *Reader) FloatMax() float64 {
	s, ok := r.next()
	if !ok || s == "" {
		return math.NaN()
	}
	switch s {
	case "Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		r.err = err
		return math.NaN()
	}
	return v
}

// Bool reads the next field as a boolean: any positive integer is true.
func (r *Reader) Bool() bool {
	return r.Int() > 0
}

// Decimal reads the next field as a shopspring/decimal value.
func (r *Reader) Decimal() decimal.Decimal {
	s, ok := r.next()
	if !ok || s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		r.err = err
		return decimal.Zero
	}
	return d
}

// TagValueList reads a "tag=value;tag=value;" single field.
func (r *Reader) TagValueList() []ibtws.TagValue {
	s := r.String()
	if s == "" {
		return nil
	}
	var out []ibtws.TagValue
	for _, part := range splitSemicolons(s) {
		if part == "" {
			continue
		}
		eq := bytes.IndexByte([]byte(part), '=')
		if eq < 0 {
			continue
		}
		out = append(out, ibtws.TagValue{Tag: part[:eq], Value: part[eq+1:]})
	}
	return out
}

func splitSemicolons(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == ';' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}

// DecodeMsgID reads the leading message-ID field. The field's own encoding
// (null-terminated ASCII decimal vs. a bare 4-byte big-endian integer) is
// gated by the negotiated server version exactly the way EncodeMsgID's
// encoding choice is (spec.md §4.3 Layer B: "decode_msg_id is the symmetric
// dual" of encode_msg_id) — it is NOT detected by inspecting the raw bytes,
// since an ASCII-decimal ID's bytes routinely reinterpret as a huge 32-bit
// integer and would otherwise be misread as a protobuf tag on every frame.
// Once the ID value is known, a value greater than ibtws.ProtobufMsgID
// means the message is protobuf-tagged; the real ID is that value minus
// ibtws.ProtobufMsgID.
func DecodeMsgID(body []byte, serverVersion int32) (id ibtws.IncomingID, isProtobuf bool, rest []byte) {
	if serverVersion >= int32(ibtws.GateProtobuf) {
		if len(body) < 4 {
			return 0, false, nil
		}
		raw := int32(binary.BigEndian.Uint32(body[:4]))
		if raw > ibtws.ProtobufMsgID {
			return ibtws.IncomingID(raw - ibtws.ProtobufMsgID), true, body[4:]
		}
		return ibtws.IncomingID(raw), false, body[4:]
	}
	r := NewReader(body)
	asciiID := r.Int()
	return ibtws.IncomingID(asciiID), false, body[r.pos:]
}
