// Copyright (c) 2024-2026 Neomantra Corp
//
// Protobuf sub-codec. TWS protobuf messages are plain wire-format protobuf
// (no varint length prefix beyond the outer frame), so this file walks them
// with protowire's low-level field scanner rather than generated message
// types — there is no .proto source in this module to run protoc against,
// and hand-writing a full generated-code tree would fabricate what protoc
// is supposed to produce. protowire is the real, public, codegen-free API
// google.golang.org/protobuf ships for exactly this kind of manual walk.
//
// Coverage: ErrMsg and OrderStatus (the two most load-bearing protobuf
// messages in live trading) are decoded field-by-field below. OpenOrder,
// ExecutionData, OpenOrderEnd and ExecutionDataEnd are dispatched to Events
// carrying only the fields needed to keep request/reply correlation working
// (reqId); their full field sets are a follow-up (see DESIGN.md).

package codec

import (
	"fmt"
	"math"
	"strconv"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/riverrun-quant/ibtws-go"
)

func strconvFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// protoFields holds the decoded values of a flat protobuf message, one map
// per wire type, keyed by field number for simple lookup. Fixed32/Fixed64
// values are kept (not discarded): TWS's protobuf schema carries prices and
// quantities as `double` (wire type Fixed64), so dropping them silently
// would make those fields permanently unreadable.
type protoFields struct {
	varints map[protowire.Number]uint64
	strings map[protowire.Number]string
	fixed32 map[protowire.Number]uint32
	fixed64 map[protowire.Number]uint64
}

func scanProtoFields(b []byte) (protoFields, error) {
	out := protoFields{
		varints: map[protowire.Number]uint64{},
		strings: map[protowire.Number]string{},
		fixed32: map[protowire.Number]uint32{},
		fixed64: map[protowire.Number]uint64{},
	}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return out, fmt.Errorf("protowire: bad tag: %w", protowire.ParseError(n))
		}
		b = b[n:]
		switch typ {
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return out, fmt.Errorf("protowire: bad varint: %w", protowire.ParseError(n))
			}
			out.varints[num] = v
			b = b[n:]
		case protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return out, fmt.Errorf("protowire: bad bytes: %w", protowire.ParseError(n))
			}
			out.strings[num] = string(v)
			b = b[n:]
		case protowire.Fixed32Type:
			v, n := protowire.ConsumeFixed32(b)
			if n < 0 {
				return out, fmt.Errorf("protowire: bad fixed32: %w", protowire.ParseError(n))
			}
			out.fixed32[num] = v
			b = b[n:]
		case protowire.Fixed64Type:
			v, n := protowire.ConsumeFixed64(b)
			if n < 0 {
				return out, fmt.Errorf("protowire: bad fixed64: %w", protowire.ParseError(n))
			}
			out.fixed64[num] = v
			b = b[n:]
		default:
			return out, fmt.Errorf("protowire: unsupported wire type %d", typ)
		}
	}
	return out, nil
}

func (p protoFields) str(n protowire.Number) string { return p.strings[n] }
func (p protoFields) i32(n protowire.Number) int32   { return int32(p.varints[n]) }
func (p protoFields) i64(n protowire.Number) int64   { return int64(p.varints[n]) }

// f64 reads a protobuf `double` field (wire type Fixed64). Some servers send
// these as strings instead (the ASCII-form quantities/prices carried over
// verbatim); fall back to parsing the string field with the same number.
func (p protoFields) f64(n protowire.Number) float64 {
	if v, ok := p.fixed64[n]; ok {
		return math.Float64frombits(v)
	}
	if s, ok := p.strings[n]; ok {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return 0
}

// --- outgoing protobuf bodies ---
//
// The four outgoing messages with a protobuf schema (spec.md §4.3) are
// encoded the same flat-field way the incoming decoders above read them:
// no generated message types (there is no .proto source in this module),
// just protowire's tag/varint/bytes appenders. Field numbering mirrors the
// incoming OrderStatusProto/ErrorMessageProto layout above where the same
// concept recurs (orderId is always field 1); everything else follows the
// ASCII encoder's field order in requests.go so the protobuf and ASCII
// paths carry the same information, just encoded differently.

func encodeVarintField(b []byte, num protowire.Number, v int64) []byte {
	return protowire.AppendVarint(protowire.AppendTag(b, num, protowire.VarintType), uint64(v))
}

func encodeStringField(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	return protowire.AppendString(protowire.AppendTag(b, num, protowire.BytesType), v)
}

// EncodePlaceOrderProtobuf serializes a PlaceOrderRequestProto body: the
// order identification and main fields carried by the ASCII PlaceOrder
// message (requests.go's PlaceOrder). Institutional/algo/conditions
// sections are a follow-up, same caveat as the incoming OpenOrder decoder.
func EncodePlaceOrderProtobuf(orderID int32, ct ibtws.Contract, ord ibtws.Order) []byte {
	var b []byte
	b = encodeVarintField(b, 1, int64(orderID))
	b = encodeVarintField(b, 2, int64(ct.ContractID))
	b = encodeStringField(b, 3, ct.Symbol)
	b = encodeStringField(b, 4, ct.SecType.String())
	b = encodeStringField(b, 5, ct.Exchange)
	b = encodeStringField(b, 6, ct.Currency)
	b = encodeStringField(b, 7, ord.Action.String())
	b = encodeStringField(b, 8, ord.TotalQuantity.String())
	b = encodeStringField(b, 9, ord.OrderType.String())
	if !ibtws.IsUnsetFloat(ord.LmtPrice) {
		b = encodeStringField(b, 10, strconvFloat(ord.LmtPrice))
	}
	if !ibtws.IsUnsetFloat(ord.AuxPrice) {
		b = encodeStringField(b, 11, strconvFloat(ord.AuxPrice))
	}
	b = encodeStringField(b, 12, ord.TIF.String())
	b = encodeStringField(b, 13, ord.Account)
	return b
}

// EncodeCancelOrderProtobuf serializes a CancelOrderRequestProto body.
func EncodeCancelOrderProtobuf(orderID int32, cancel ibtws.OrderCancel) []byte {
	var b []byte
	b = encodeVarintField(b, 1, int64(orderID))
	b = encodeStringField(b, 2, cancel.ManualOrderCancelTime)
	return b
}

// EncodeReqGlobalCancelProtobuf serializes a GlobalCancelRequestProto body.
func EncodeReqGlobalCancelProtobuf(cancel ibtws.OrderCancel) []byte {
	var b []byte
	b = encodeStringField(b, 1, cancel.ManualOrderCancelTime)
	return b
}

// EncodeReqExecutionsProtobuf serializes an ExecutionRequestProto body.
func EncodeReqExecutionsProtobuf(reqID int32, filter ibtws.ExecutionFilter) []byte {
	var b []byte
	b = encodeVarintField(b, 1, int64(reqID))
	b = encodeVarintField(b, 2, int64(filter.ClientID))
	b = encodeStringField(b, 3, filter.AcctCode)
	b = encodeStringField(b, 4, filter.Time)
	b = encodeStringField(b, 5, filter.Symbol)
	b = encodeStringField(b, 6, filter.SecType.String())
	b = encodeStringField(b, 7, filter.Exchange)
	b = encodeStringField(b, 8, filter.Side)
	return b
}

func dispatchProtobuf(id ibtws.IncomingID, body []byte) (ibtws.Event, error) {
	fields, err := scanProtoFields(body)
	if err != nil {
		return nil, err
	}
	switch id {
	case ibtws.InErrMsg:
		// ErrorMessageProto: 1=reqId/id, 2=errorCode, 3=errorMsg
		return &ibtws.ErrorEvent{
			ReqID:   fields.i32(1),
			Code:    fields.i32(2),
			Message: fields.str(3),
		}, nil
	case ibtws.InOrderStatus:
		// OrderStatusProto: 1=orderId, 2=status, 3=filled, 4=remaining,
		// 5=avgFillPrice, 6=permId, 7=parentId, 8=lastFillPrice, 9=clientId,
		// 10=whyHeld, 11=mktCapPrice
		return &ibtws.OrderStatus{
			OrderID:       fields.i32(1),
			Status:        fields.str(2),
			Filled:        fields.f64(3),
			Remaining:     fields.f64(4),
			AvgFillPrice:  fields.f64(5),
			PermID:        fields.i64(6),
			ParentID:      fields.i32(7),
			LastFillPrice: fields.f64(8),
			ClientID:      fields.i32(9),
			WhyHeld:       fields.str(10),
			MktCapPrice:   fields.f64(11),
		}, nil
	case ibtws.InOpenOrderEnd:
		return &ibtws.OpenOrderEnd{}, nil
	case ibtws.InExecutionDataEnd:
		return &ibtws.ExecutionDataEnd{ReqID: fields.i32(1)}, nil
	case ibtws.InOpenOrder:
		return &ibtws.OpenOrder{OrderID: fields.i32(1)}, nil
	case ibtws.InExecutionData:
		return &ibtws.ExecutionData{ReqID: fields.i32(1)}, nil
	default:
		return nil, fmt.Errorf("no protobuf decoder registered for message id %d", id)
	}
}
