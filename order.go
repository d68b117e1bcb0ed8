// Copyright (c) 2024-2026 Neomantra Corp
//
// Order-family domain types. Order carries the full historical field set of
// the wire protocol, organized into the same sections the public EOrder.java
// struct uses; fields are grouped with a section comment rather than split
// into many small structs, which matches how the wire actually lays them out
// (one flat record per message).

package ibtws

import (
	"math"

	"github.com/shopspring/decimal"
)

// Order is a complete order record: both what the client submits and what
// the server echoes back in OpenOrder events.
type Order struct {
	// Identity
	OrderID            int32
	ClientID            int32
	PermID              int64
	ParentID            int32
	Action              OrderAction
	TotalQuantity       decimal.Decimal
	OrderType           OrderType
	LmtPrice            float64 // NaN when absent
	AuxPrice            float64 // NaN when absent
	TIF                 TimeInForce

	// Allocation / account routing
	OCAGroup   string
	OCAType    int32
	Account    string
	OpenClose  string
	Origin     Origin
	OrderRef   string
	ClearingAccount string
	ClearingIntent  string

	// Display / routing behavior
	Transmit          bool
	DesignatedLocation string
	ExemptCode        int32
	OutsideRTH        bool
	Hidden            bool
	DiscretionaryAmt  float64
	GoodAfterTime     string
	GoodTillDate      string
	Rule80A           string
	AllOrNone         bool
	MinQty            int32 // absent => -1
	PercentOffset     float64
	OverridePercentageConstraints bool

	// Short sale
	ShortSaleSlot      int32
	DesignatedLocationShort string
	ExemptCodeShort         int32

	// Box / auction
	AuctionStrategy AuctionStrategy
	StartingPrice   float64
	StockRefPrice   float64
	Delta           float64

	// Volatility
	VolatilityOrderType string
	Volatility           float64
	DeltaNeutralOrderType string
	DeltaNeutralAuxPrice  float64
	DeltaNeutralConId     int32
	DeltaNeutralSettlingFirm string
	DeltaNeutralClearingAccount string
	DeltaNeutralClearingIntent  string
	DeltaNeutralOpenClose       string
	DeltaNeutralShortSale       bool
	DeltaNeutralShortSaleSlot   int32
	DeltaNeutralDesignatedLocation string
	ContinuousUpdate bool
	ReferencePriceType int32

	// Combo
	BasisPoints     float64
	BasisPointsType int32
	ComboLegs       []OrderComboLeg
	SmartComboRoutingParams []TagValue

	// Scale
	ScaleInitLevelSize   int32
	ScaleSubsLevelSize   int32
	ScalePriceIncrement  float64
	ScalePriceAdjustValue float64
	ScalePriceAdjustInterval int32
	ScaleProfitOffset        float64
	ScaleAutoReset           bool
	ScaleInitPosition        int32
	ScaleInitFillQty         int32
	ScaleRandomPercent       bool
	ScaleTable               string

	// Hedge
	HedgeType  string
	HedgeParam string

	// Clearing / FA allocation
	OptOutSmartRouting bool
	AccountAllocations []OrderAllocation

	// Algo
	AlgoStrategy string
	AlgoParams   []TagValue
	AlgoID       string

	// What-if / trading class
	WhatIf       bool
	NotHeld      bool
	ModelCode    string
	TradingClass string
	ConditionsIgnoreRth bool
	ConditionsCancelOrder bool
	Conditions   []OrderCondition

	// Misc order control
	SolicitedOrder bool
	RandomizeSize  bool
	RandomizePrice bool
	ReferenceContractID int32
	IsPeggedChangeAmountDecrease bool
	PeggedChangeAmount           float64
	ReferenceChangeAmount        float64
	ReferenceExchangeID          string
	AdjustedOrderType            OrderType
	TriggerPrice                 float64 // NaN when absent
	AdjustedStopPrice            float64
	AdjustedStopLimitPrice       float64
	AdjustedTrailingAmount       float64
	AdjustableTrailingUnit       int32
	LmtPriceOffset               float64

	CashQty                 float64
	DontUseAutoPriceForHedge bool
	IsOmsContainer           bool
	DiscretionaryUpToLimitPrice bool
	AutoCancelDate              string
	FilledQuantity              decimal.Decimal
	RefFuturesConId              int32
	AutoCancelParent             bool
	Shareholder                  string
	ImbalanceOnly                bool
	RouteMarketableToBbo         bool
	ParentPermID                 int64
	UsePriceMgmtAlgo             UsePriceMgmtAlgo
	Duration                     int32
	PostToAts                    int32
	MinTradeQty                  int32
	MinCompeteSize               int32
	CompeteAgainstBestOffset     float64 // NaN => use up-to-mid sentinel
	MidOffsetAtWhole             float64
	MidOffsetAtHalf              float64
	CustomerAccount              string
	ProfessionalCustomer         bool
	BondAccruedInterest          string
	IncludeOvernight             bool
	ManualOrderTime              string
	ManualOrderIndicator         int32
	Submitter                    string
}

// OrderComboLeg carries a per-leg price override on a combo order.
type OrderComboLeg struct {
	Price float64 // NaN when unset
}

// OrderAllocation is one FA-profile account's share of an order.
type OrderAllocation struct {
	Account string
	Amount  decimal.Decimal
}

// OrderCondition is the 6-variant sum type gating a conditional order's
// activation (spec.md §4.4). Exactly one of the typed payload fields is
// meaningful, selected by Type.
type OrderCondition struct {
	Type        OrderConditionType
	IsConjunction bool // AND vs OR when chained with the next condition

	// CondPrice
	Price      float64
	PriceConId int32
	Exchange   string
	IsMore     bool
	TriggerMethod TriggerMethod

	// CondTime
	Time string

	// CondMargin
	MarginPercent int32

	// CondExecution
	SecType  SecType
	ExecExchange string
	Symbol       string

	// CondVolume
	Volume int32

	// CondPercentChange
	ChangePercent float64
}

// OrderState reports a server-computed order status and margin/commission
// impact estimate, attached to OpenOrder events.
type OrderState struct {
	Status string

	InitMarginBefore string
	MaintMarginBefore string
	EquityWithLoanBefore string
	InitMarginChange string
	MaintMarginChange string
	EquityWithLoanChange string
	InitMarginAfter string
	MaintMarginAfter string
	EquityWithLoanAfter string

	CommissionAndFees    float64 // NaN when absent
	MinCommissionAndFees float64
	MaxCommissionAndFees float64
	CommissionAndFeesCurrency string

	MarginCurrency              string
	InitMarginBeforeOutsideRTH  float64
	MaintMarginBeforeOutsideRTH float64
	EquityWithLoanBeforeOutsideRTH float64
	InitMarginChangeOutsideRTH  float64
	MaintMarginChangeOutsideRTH float64
	EquityWithLoanChangeOutsideRTH float64
	InitMarginAfterOutsideRTH   float64
	MaintMarginAfterOutsideRTH  float64
	EquityWithLoanAfterOutsideRTH float64

	SuggestedSize   decimal.Decimal
	RejectReason    string
	OrderAllocations []OrderAllocation

	WarningText  string
	CompletedTime string
	CompletedStatus string
}

// NewOrder returns an Order populated with the defaults a client builds an
// outgoing order from: Transmit true, Origin Customer, ExemptCode -1,
// ExemptCodeShort -1, AuctionStrategy unset, UsePriceMgmtAlgo default, MinQty
// -1, and NaN (absent) for LmtPrice, AuxPrice, PercentOffset,
// DiscretionaryAmt, StartingPrice, StockRefPrice, Delta, Volatility and
// DeltaNeutralAuxPrice. Every other field keeps its Go zero value.
func NewOrder() Order {
	return Order{
		Transmit:                true,
		Origin:                  OriginCustomer,
		ExemptCode:              -1,
		ExemptCodeShort:         -1,
		AuctionStrategy:         AuctionStrategyUnset,
		UsePriceMgmtAlgo:        PriceMgmtAlgoDefault,
		LmtPrice:                math.NaN(),
		AuxPrice:                math.NaN(),
		PercentOffset:           math.NaN(),
		DiscretionaryAmt:        math.NaN(),
		StartingPrice:           math.NaN(),
		StockRefPrice:           math.NaN(),
		Delta:                   math.NaN(),
		Volatility:              math.NaN(),
		DeltaNeutralAuxPrice:    math.NaN(),
		MinQty:                  -1,
	}
}

// OrderCancel carries the optional manual-cancel-time extension to
// cancelOrder (supplemented from original_source; see SPEC_FULL.md §6).
type OrderCancel struct {
	ManualOrderCancelTime string
	ExtOperator           string
	ManualOrderIndicator  int32
}
