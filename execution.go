// Copyright (c) 2024-2026 Neomantra Corp

package ibtws

import "github.com/shopspring/decimal"

// Execution is one fill report.
type Execution struct {
	ExecID        string
	Time          string
	AcctNumber    string
	Exchange      string
	Side          string
	Shares        decimal.Decimal
	Price         float64
	PermID        int64
	ClientID      int32
	OrderID       int32
	Liquidation   int32
	CumQty        decimal.Decimal
	AvgPrice      float64
	OrderRef      string
	EVRule        string
	EVMultiplier  float64
	ModelCode     string
	LastLiquidity int32
	PendingPriceRevision bool
	Submitter     string
}

// CommissionAndFeesReport is the commission/fees accounting line attached to
// an Execution by ExecID.
type CommissionAndFeesReport struct {
	ExecID              string
	CommissionAndFees   float64
	Currency            string
	RealizedPNL         float64 // NaN when absent
	Yield               float64 // NaN when absent
	YieldRedemptionDate int32   // 0 when absent
}

// ExecutionFilter narrows a reqExecutions query.
type ExecutionFilter struct {
	ClientID  int32
	AcctCode  string
	Time      string
	Symbol    string
	SecType   SecType
	Exchange  string
	Side      string
	LastNDays int32
	SpecificDates []int32
}
