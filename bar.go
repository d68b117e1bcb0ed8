// Copyright (c) 2024-2026 Neomantra Corp

package ibtws

import "github.com/shopspring/decimal"

// Bar is one OHLCV bar, historical or real-time.
type Bar struct {
	Time     string
	Open     float64
	High     float64
	Low      float64
	Close    float64
	Volume   decimal.Decimal
	WAP      decimal.Decimal
	BarCount int32
}

// HistoricalTickLast is one tick-by-tick trade (reqHistoricalTicks "TRADES").
type HistoricalTickLast struct {
	Time          int64
	Price         float64
	Size          decimal.Decimal
	Exchange      string
	SpecialConditions string
	PastLimit     bool
	Unreported    bool
}

// HistoricalTickBidAsk is one tick-by-tick quote (reqHistoricalTicks "BID_ASK").
type HistoricalTickBidAsk struct {
	Time     int64
	PriceBid float64
	PriceAsk float64
	SizeBid  decimal.Decimal
	SizeAsk  decimal.Decimal
	BidPastLow  bool
	AskPastHigh bool
}

// HistoricalTickMidpoint is one tick-by-tick midpoint sample (reqHistoricalTicks "MIDPOINT").
type HistoricalTickMidpoint struct {
	Time  int64
	Price float64
}

// HistoricalSession is one trading session row of a historical schedule.
type HistoricalSession struct {
	StartDateTime string
	EndDateTime   string
	RefDate       string
}

// HistogramEntry is one (price, size) bucket of a volume histogram.
type HistogramEntry struct {
	Price float64
	Size  decimal.Decimal
}
