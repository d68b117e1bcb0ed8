// Copyright (c) 2024-2026 Neomantra Corp

package codec_test

import (
	"math"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/riverrun-quant/ibtws-go"
	"github.com/riverrun-quant/ibtws-go/codec"
)

func TestCodec(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "codec")
}

var _ = Describe("field round-trips", func() {
	It("round-trips strings through the frame boundary", func() {
		b := codec.NewBuilder()
		b.String("USD")
		b.Int(1234)
		frame, err := codec.Frame(b.Bytes())
		Expect(err).NotTo(HaveOccurred())

		r := codec.NewReader(frame[4:])
		Expect(r.String()).To(Equal("USD"))
		Expect(r.Int()).To(Equal(int32(1234)))
		Expect(r.Err()).NotTo(HaveOccurred())
	})

	It("maps an empty field to zero for plain decoders, not absence", func() {
		b := codec.NewBuilder()
		b.String("")
		r := codec.NewReader(b.Bytes())
		Expect(r.Int()).To(Equal(int32(0)))
	})

	It("maps an empty field to the unset sentinel only for _max decoders", func() {
		b := codec.NewBuilder()
		b.String("")
		r := codec.NewReader(b.Bytes())
		Expect(r.IntMax()).To(Equal(ibtws.UnsetInt))
	})

	It("round-trips +Infinity and -Infinity", func() {
		b := codec.NewBuilder()
		b.Float(math.Inf(1))
		b.Float(math.Inf(-1))
		r := codec.NewReader(b.Bytes())
		Expect(r.Float()).To(Equal(math.Inf(1)))
		Expect(r.Float()).To(Equal(math.Inf(-1)))
	})

	It("treats any positive integer as boolean true", func() {
		b := codec.NewBuilder()
		b.Int(7)
		r := codec.NewReader(b.Bytes())
		Expect(r.Bool()).To(BeTrue())
	})

	It("rejects a frame body over the length ceiling", func() {
		huge := make([]byte, codec.MaxFrameLen+1)
		_, err := codec.Frame(huge)
		Expect(err).To(MatchError(ibtws.ErrFrameTooLarge))
	})

	It("rejects a zero-length frame body", func() {
		_, err := codec.Frame(nil)
		Expect(err).To(MatchError(ibtws.ErrZeroLengthFrame))
	})
})

var _ = Describe("message ID dual dispatch", func() {
	It("decodes an ascii-decimal ID below the protobuf threshold", func() {
		b := codec.NewBuilder()
		b.Int(int32(ibtws.InCurrentTime))
		b.String("1")
		b.Int64(1700000000)
		id, isProto, _ := codec.DecodeMsgID(b.Bytes(), 176)
		Expect(isProto).To(BeFalse())
		Expect(id).To(Equal(ibtws.InCurrentTime))
	})

	It("decodes a raw big-endian ID below the protobuf threshold once server version crosses the ID-mode gate", func() {
		b := codec.NewBuilder()
		codec.EncodeMsgID(b, ibtws.OutgoingID(ibtws.InCurrentTime), 203, false)
		b.String("1")
		b.Int64(1700000000)
		id, isProto, _ := codec.DecodeMsgID(b.Bytes(), 203)
		Expect(isProto).To(BeFalse())
		Expect(id).To(Equal(ibtws.InCurrentTime))
	})

	It("decodes a raw big-endian ID above the protobuf threshold", func() {
		ev := codec.Dispatch(mustFrame(protobufErrMsg(7, 321, "bad thing")), 203)
		errEvt, ok := ev.(*ibtws.ErrorEvent)
		Expect(ok).To(BeTrue())
		Expect(errEvt.ReqID).To(Equal(int32(7)))
		Expect(errEvt.Code).To(Equal(int32(321)))
		Expect(errEvt.Message).To(Equal("bad thing"))
	})

	It("falls back to Unknown rather than tearing down the session on a bad frame", func() {
		ev := codec.Dispatch([]byte{0x00, 0x00, 0x00, 0xFF}, 176)
		_, ok := ev.(*ibtws.Unknown)
		Expect(ok).To(BeTrue())
	})
})

func mustFrame(body []byte) []byte { return body }

func protobufErrMsg(reqID, code int32, msg string) []byte {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutgoingID(ibtws.InErrMsg), 203, true)
	// minimal hand-rolled protobuf body: field 1 varint, field 2 varint, field 3 bytes
	body := b.Bytes()
	payload := protoVarint(1, uint64(reqID))
	payload = append(payload, protoVarint(2, uint64(code))...)
	payload = append(payload, protoBytes(3, msg)...)
	return append(body, payload...)
}

func protoVarint(field int, v uint64) []byte {
	tag := uint64(field)<<3 | 0
	out := appendVarint(nil, tag)
	return appendVarint(out, v)
}

func protoBytes(field int, s string) []byte {
	tag := uint64(field)<<3 | 2
	out := appendVarint(nil, tag)
	out = appendVarint(out, uint64(len(s)))
	return append(out, s...)
}

func appendVarint(b []byte, v uint64) []byte {
	for v >= 0x80 {
		b = append(b, byte(v)|0x80)
		v >>= 7
	}
	return append(b, byte(v))
}
