// Copyright (c) 2024-2026 Neomantra Corp
//
// TickType: a closed, wire-represented-as-small-integer enum with total
// try_from(i32)/into(i32) mappings (spec.md §4.1). Ported from the public
// TickType.java / TickType.py constant tables.

package ibtws

import "fmt"

// TickType identifies the kind of value carried by a tick event.
type TickType int32

const (
	TickBidSize                   TickType = 0
	TickBid                       TickType = 1
	TickAsk                       TickType = 2
	TickAskSize                   TickType = 3
	TickLast                      TickType = 4
	TickLastSize                  TickType = 5
	TickHigh                      TickType = 6
	TickLow                       TickType = 7
	TickVolume                    TickType = 8
	TickClose                     TickType = 9
	TickBidOptionComputation      TickType = 10
	TickAskOptionComputation      TickType = 11
	TickLastOptionComputation     TickType = 12
	TickModelOption               TickType = 13
	TickOpen                      TickType = 14
	TickLow13Week                 TickType = 15
	TickHigh13Week                TickType = 16
	TickLow26Week                 TickType = 17
	TickHigh26Week                TickType = 18
	TickLow52Week                 TickType = 19
	TickHigh52Week                TickType = 20
	TickAvgVolume                 TickType = 21
	TickOpenInterest              TickType = 22
	TickOptionHistoricalVol       TickType = 23
	TickOptionImpliedVol          TickType = 24
	TickOptionBidExch             TickType = 25
	TickOptionAskExch             TickType = 26
	TickOptionCallOpenInterest    TickType = 27
	TickOptionPutOpenInterest     TickType = 28
	TickOptionCallVolume          TickType = 29
	TickOptionPutVolume           TickType = 30
	TickIndexFuturePremium        TickType = 31
	TickBidExch                   TickType = 32
	TickAskExch                   TickType = 33
	TickAuctionVolume             TickType = 34
	TickAuctionPrice              TickType = 35
	TickAuctionImbalance          TickType = 36
	TickMarkPrice                 TickType = 37
	TickBidEfpComputation         TickType = 38
	TickAskEfpComputation         TickType = 39
	TickLastEfpComputation        TickType = 40
	TickOpenEfpComputation        TickType = 41
	TickHighEfpComputation        TickType = 42
	TickLowEfpComputation         TickType = 43
	TickCloseEfpComputation       TickType = 44
	TickLastTimestamp             TickType = 45
	TickShortable                 TickType = 46
	TickFundamentalRatios         TickType = 47
	TickRtVolume                  TickType = 48
	TickHalted                    TickType = 49
	TickBidYield                  TickType = 50
	TickAskYield                  TickType = 51
	TickLastYield                 TickType = 52
	TickCustOptionComputation     TickType = 53
	TickTradeCount                TickType = 54
	TickTradeRate                 TickType = 55
	TickVolumeRate                TickType = 56
	TickLastRthTrade              TickType = 57
	TickRtHistoricalVol           TickType = 58
	TickIBDividends               TickType = 59
	TickBondFactorMultiplier      TickType = 60
	TickRegulatoryImbalance       TickType = 61
	TickNews                      TickType = 62
	TickShortTermVolume3Min       TickType = 63
	TickShortTermVolume5Min       TickType = 64
	TickShortTermVolume10Min      TickType = 65
	TickDelayedBid                TickType = 66
	TickDelayedAsk                TickType = 67
	TickDelayedLast               TickType = 68
	TickDelayedBidSize            TickType = 69
	TickDelayedAskSize            TickType = 70
	TickDelayedLastSize           TickType = 71
	TickDelayedHigh               TickType = 72
	TickDelayedLow                TickType = 73
	TickDelayedVolume             TickType = 74
	TickDelayedClose              TickType = 75
	TickDelayedOpen               TickType = 76
	TickRtTrdVolume               TickType = 77
	TickCreditmanMarkPrice        TickType = 78
	TickCreditmanSlowMarkPrice    TickType = 79
	TickDelayedBidOptionComp      TickType = 80
	TickDelayedAskOptionComp      TickType = 81
	TickDelayedLastOptionComp     TickType = 82
	TickDelayedModelOption        TickType = 83
	TickLastExch                  TickType = 84
	TickLastRegTime               TickType = 85
	TickFuturesOpenInterest       TickType = 86
	TickAvgOptVolume              TickType = 87
	TickDelayedLastTimestamp      TickType = 88
	TickShortableShares           TickType = 89
	TickDelayedHalted             TickType = 90
	TickReutersAverageEPS         TickType = 91
	TickReutersConsensusEstimate  TickType = 92
	TickEstimatedIBRate           TickType = 93
	TickFundsTradingFlags         TickType = 94
	TickFundamentalRatiosDelayed  TickType = 95
	TickETFNavClose               TickType = 96
	TickETFNavPriorClose          TickType = 97
	TickETFNavBid                 TickType = 98
	TickETFNavAsk                 TickType = 99
	TickETFNavLast                TickType = 100
	TickETFNavFrozenLast          TickType = 101
	TickETFNavHigh                TickType = 102
	TickETFNavLow                 TickType = 103
	TickSocialMarketAnalytics     TickType = 104
	TickEstimatedIBRateReference  TickType = 105
	TickNotSet                    TickType = -1
)

var tickTypeNames = map[TickType]string{
	TickBidSize: "BID_SIZE", TickBid: "BID", TickAsk: "ASK", TickAskSize: "ASK_SIZE",
	TickLast: "LAST", TickLastSize: "LAST_SIZE", TickHigh: "HIGH", TickLow: "LOW",
	TickVolume: "VOLUME", TickClose: "CLOSE",
	TickBidOptionComputation: "BID_OPTION_COMPUTATION", TickAskOptionComputation: "ASK_OPTION_COMPUTATION",
	TickLastOptionComputation: "LAST_OPTION_COMPUTATION", TickModelOption: "MODEL_OPTION", TickOpen: "OPEN",
	TickLow13Week: "LOW_13_WEEK", TickHigh13Week: "HIGH_13_WEEK", TickLow26Week: "LOW_26_WEEK",
	TickHigh26Week: "HIGH_26_WEEK", TickLow52Week: "LOW_52_WEEK", TickHigh52Week: "HIGH_52_WEEK",
	TickAvgVolume: "AVG_VOLUME", TickOpenInterest: "OPEN_INTEREST",
	TickOptionHistoricalVol: "OPTION_HISTORICAL_VOL", TickOptionImpliedVol: "OPTION_IMPLIED_VOL",
	TickOptionBidExch: "OPTION_BID_EXCH", TickOptionAskExch: "OPTION_ASK_EXCH",
	TickOptionCallOpenInterest: "OPTION_CALL_OPEN_INTEREST", TickOptionPutOpenInterest: "OPTION_PUT_OPEN_INTEREST",
	TickOptionCallVolume: "OPTION_CALL_VOLUME", TickOptionPutVolume: "OPTION_PUT_VOLUME",
	TickIndexFuturePremium: "INDEX_FUTURE_PREMIUM", TickBidExch: "BID_EXCH", TickAskExch: "ASK_EXCH",
	TickAuctionVolume: "AUCTION_VOLUME", TickAuctionPrice: "AUCTION_PRICE", TickAuctionImbalance: "AUCTION_IMBALANCE",
	TickMarkPrice: "MARK_PRICE", TickBidEfpComputation: "BID_EFP_COMPUTATION", TickAskEfpComputation: "ASK_EFP_COMPUTATION",
	TickLastEfpComputation: "LAST_EFP_COMPUTATION", TickOpenEfpComputation: "OPEN_EFP_COMPUTATION",
	TickHighEfpComputation: "HIGH_EFP_COMPUTATION", TickLowEfpComputation: "LOW_EFP_COMPUTATION",
	TickCloseEfpComputation: "CLOSE_EFP_COMPUTATION", TickLastTimestamp: "LAST_TIMESTAMP",
	TickShortable: "SHORTABLE", TickFundamentalRatios: "FUNDAMENTAL_RATIOS", TickRtVolume: "RT_VOLUME",
	TickHalted: "HALTED", TickBidYield: "BID_YIELD", TickAskYield: "ASK_YIELD", TickLastYield: "LAST_YIELD",
	TickCustOptionComputation: "CUST_OPTION_COMPUTATION", TickTradeCount: "TRADE_COUNT", TickTradeRate: "TRADE_RATE",
	TickVolumeRate: "VOLUME_RATE", TickLastRthTrade: "LAST_RTH_TRADE", TickRtHistoricalVol: "RT_HISTORICAL_VOL",
	TickIBDividends: "IB_DIVIDENDS", TickBondFactorMultiplier: "BOND_FACTOR_MULTIPLIER",
	TickRegulatoryImbalance: "REGULATORY_IMBALANCE", TickNews: "NEWS_TICK",
	TickShortTermVolume3Min: "SHORT_TERM_VOLUME_3_MIN", TickShortTermVolume5Min: "SHORT_TERM_VOLUME_5_MIN",
	TickShortTermVolume10Min: "SHORT_TERM_VOLUME_10_MIN", TickDelayedBid: "DELAYED_BID", TickDelayedAsk: "DELAYED_ASK",
	TickDelayedLast: "DELAYED_LAST", TickDelayedBidSize: "DELAYED_BID_SIZE", TickDelayedAskSize: "DELAYED_ASK_SIZE",
	TickDelayedLastSize: "DELAYED_LAST_SIZE", TickDelayedHigh: "DELAYED_HIGH", TickDelayedLow: "DELAYED_LOW",
	TickDelayedVolume: "DELAYED_VOLUME", TickDelayedClose: "DELAYED_CLOSE", TickDelayedOpen: "DELAYED_OPEN",
	TickRtTrdVolume: "RT_TRD_VOLUME", TickCreditmanMarkPrice: "CREDITMAN_MARK_PRICE",
	TickCreditmanSlowMarkPrice: "CREDITMAN_SLOW_MARK_PRICE", TickDelayedBidOptionComp: "DELAYED_BID_OPTION_COMPUTATION",
	TickDelayedAskOptionComp: "DELAYED_ASK_OPTION_COMPUTATION", TickDelayedLastOptionComp: "DELAYED_LAST_OPTION_COMPUTATION",
	TickDelayedModelOption: "DELAYED_MODEL_OPTION", TickLastExch: "LAST_EXCH", TickLastRegTime: "LAST_REG_TIME",
	TickFuturesOpenInterest: "FUTURES_OPEN_INTEREST", TickAvgOptVolume: "AVG_OPT_VOLUME",
	TickDelayedLastTimestamp: "DELAYED_LAST_TIMESTAMP", TickShortableShares: "SHORTABLE_SHARES",
	TickDelayedHalted: "DELAYED_HALTED", TickReutersAverageEPS: "REUTERS_AVERAGE_EPS",
	TickReutersConsensusEstimate: "REUTERS_CONSENSUS_ESTIMATE", TickEstimatedIBRate: "ESTIMATED_IB_RATE",
	TickFundsTradingFlags: "FUNDS_TRADING_FLAGS", TickFundamentalRatiosDelayed: "FUNDAMENTAL_RATIOS_DELAYED",
	TickETFNavClose: "ETF_NAV_CLOSE", TickETFNavPriorClose: "ETF_NAV_PRIOR_CLOSE", TickETFNavBid: "ETF_NAV_BID",
	TickETFNavAsk: "ETF_NAV_ASK", TickETFNavLast: "ETF_NAV_LAST", TickETFNavFrozenLast: "ETF_NAV_FROZEN_LAST",
	TickETFNavHigh: "ETF_NAV_HIGH", TickETFNavLow: "ETF_NAV_LOW", TickSocialMarketAnalytics: "SOCIAL_MARKET_ANALYTICS",
	TickEstimatedIBRateReference: "ESTIMATED_IB_RATE_REFERENCE", TickNotSet: "NOT_SET",
}

// String implements fmt.Stringer.
func (t TickType) String() string {
	if name, ok := tickTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TickType(%d)", int32(t))
}

// TickTypeFromInt32 is the total try_from(i32) mapping: unknown values
// decode to TickNotSet rather than erroring, since the wire is allowed to
// introduce new tick types the client does not yet know (spec.md §4.2).
func TickTypeFromInt32(v int32) TickType {
	if _, ok := tickTypeNames[TickType(v)]; ok {
		return TickType(v)
	}
	return TickNotSet
}

// Int32 implements the into(i32) half of the mapping.
func (t TickType) Int32() int32 { return int32(t) }
