// Copyright (c) 2024-2026 Neomantra Corp

package codec_test

import (
	"github.com/shopspring/decimal"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/riverrun-quant/ibtws-go"
	"github.com/riverrun-quant/ibtws-go/codec"
)

func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

var _ = Describe("reference-data and account decoders", func() {
	It("decodes TickReqParams", func() {
		b := codec.NewBuilder()
		codec.EncodeMsgID(b, ibtws.OutgoingID(ibtws.InTickReqParams), 176, false)
		b.Int(9)
		b.Float(0.01)
		b.String("NYSE")
		b.Int(3)
		ev := codec.Dispatch(b.Bytes(), 176)

		tp, ok := ev.(*ibtws.TickReqParams)
		Expect(ok).To(BeTrue())
		Expect(tp.ReqID).To(Equal(int32(9)))
		Expect(tp.MinTick).To(Equal(0.01))
		Expect(tp.BboExchange).To(Equal("NYSE"))
		Expect(tp.SnapshotPermissions).To(Equal(int32(3)))
	})

	It("decodes MarketDataType", func() {
		b := codec.NewBuilder()
		codec.EncodeMsgID(b, ibtws.OutgoingID(ibtws.InMarketDataType), 176, false)
		b.Int(5)
		b.Int(2)
		ev := codec.Dispatch(b.Bytes(), 176)

		md, ok := ev.(*ibtws.MarketDataType_)
		Expect(ok).To(BeTrue())
		Expect(md.ReqID).To(Equal(int32(5)))
		Expect(md.Type).To(Equal(ibtws.MarketDataTypeFromInt32(2)))
	})

	It("decodes OrderBound", func() {
		b := codec.NewBuilder()
		codec.EncodeMsgID(b, ibtws.OutgoingID(ibtws.InOrderBound), 176, false)
		b.Int64(123456789)
		b.Int(11)
		b.Int(22)
		ev := codec.Dispatch(b.Bytes(), 176)

		ob, ok := ev.(*ibtws.OrderBound)
		Expect(ok).To(BeTrue())
		Expect(ob.OrderID).To(Equal(int64(123456789)))
		Expect(ob.APIClientID).To(Equal(int32(11)))
		Expect(ob.APIOrderID).To(Equal(int32(22)))
	})

	It("decodes HeadTimestamp", func() {
		b := codec.NewBuilder()
		codec.EncodeMsgID(b, ibtws.OutgoingID(ibtws.InHeadTimestamp), 176, false)
		b.Int(4)
		b.String("20240101-00:00:00")
		ev := codec.Dispatch(b.Bytes(), 176)

		ht, ok := ev.(*ibtws.HeadTimestamp)
		Expect(ok).To(BeTrue())
		Expect(ht.ReqID).To(Equal(int32(4)))
		Expect(ht.HeadTimestamp).To(Equal("20240101-00:00:00"))
	})

	It("decodes HistogramData's repeated entries", func() {
		b := codec.NewBuilder()
		codec.EncodeMsgID(b, ibtws.OutgoingID(ibtws.InHistogramData), 176, false)
		b.Int(6)
		b.Int(2)
		b.Float(100.5)
		b.Decimal(mustDecimal("10"))
		b.Float(101.0)
		b.Decimal(mustDecimal("5"))
		ev := codec.Dispatch(b.Bytes(), 176)

		hd, ok := ev.(*ibtws.HistogramData)
		Expect(ok).To(BeTrue())
		Expect(hd.ReqID).To(Equal(int32(6)))
		Expect(hd.Entries).To(HaveLen(2))
		Expect(hd.Entries[0].Price).To(Equal(100.5))
	})

	It("decodes PnL", func() {
		b := codec.NewBuilder()
		codec.EncodeMsgID(b, ibtws.OutgoingID(ibtws.InPnl), 176, false)
		b.Int(1)
		b.Float(12.34)
		b.FloatMax(56.78)
		b.FloatMax(90.12)
		ev := codec.Dispatch(b.Bytes(), 176)

		pnl, ok := ev.(*ibtws.PnL)
		Expect(ok).To(BeTrue())
		Expect(pnl.ReqID).To(Equal(int32(1)))
		Expect(pnl.DailyPnL).To(Equal(12.34))
	})
})
