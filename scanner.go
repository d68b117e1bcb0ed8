// Copyright (c) 2024-2026 Neomantra Corp

package ibtws

// ScannerSubscription parameterizes a market scanner query.
type ScannerSubscription struct {
	NumberOfRows          int32
	Instrument            string
	LocationCode          string
	ScanCode              string
	AbovePrice            float64
	BelowPrice            float64
	AboveVolume           int32
	MarketCapAbove        float64
	MarketCapBelow        float64
	MoodyRatingAbove      string
	MoodyRatingBelow      string
	SpRatingAbove         string
	SpRatingBelow         string
	MaturityDateAbove     string
	MaturityDateBelow     string
	CouponRateAbove       float64
	CouponRateBelow       float64
	ExcludeConvertible    bool
	AverageOptionVolumeAbove int32
	ScannerSettingPairs   string
	StockTypeFilter       string
}

// ScannerDataItem is one row of a scanner result.
type ScannerDataItem struct {
	Rank             int32
	ContractDetails  ContractDetails
	Distance         string
	Benchmark        string
	Projection       string
	LegsStr          string
}
