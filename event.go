// Copyright (c) 2024-2026 Neomantra Corp
//
// Event is the sum type delivered on the client's event channel. Wire
// protocol defines on the order of 115 distinct incoming message shapes;
// this file implements one Event variant per message family, each produced
// by a decoder in codec/, plus the synthetic ConnectionClosed and Unknown
// fallbacks. See DESIGN.md for which fields a handful of the wider records
// (OpenOrder's institutional/algo sections, the protobuf OpenOrder/
// ExecutionData variants) still leave unpopulated.
//
// Event follows the teacher's Visitor dispatch convention (visitor.go):
// rather than a closed Go sum type (which the language has no direct way to
// express), each variant is a distinct struct implementing the marker
// method, and callers switch on concrete type.

package ibtws

// Event is implemented by every concrete event variant.
type Event interface {
	isEvent()
}

type baseEvent struct{}

func (baseEvent) isEvent() {}

// --- connection lifecycle ---

// ConnectionClosed is synthesized locally when the reader goroutine's
// connection drops, with no corresponding wire message.
type ConnectionClosed struct {
	baseEvent
	Err error
}

// Unknown wraps a frame whose message ID this client does not recognize, or
// whose body failed to decode. The session continues; the raw bytes are
// preserved for diagnostics (spec.md §7's "never tear down the session").
type Unknown struct {
	baseEvent
	MsgID    int32
	RawBytes []byte
	Cause    error
}

// --- market data ---

type TickPrice struct {
	baseEvent
	ReqID    int32
	Type     TickType
	Price    float64
	Size     float64 // 0 when the size field is empty
	Attrib   TickAttrib
}

type TickSize struct {
	baseEvent
	ReqID int32
	Type  TickType
	Size  float64
}

type TickString struct {
	baseEvent
	ReqID int32
	Type  TickType
	Value string
}

type TickGeneric struct {
	baseEvent
	ReqID int32
	Type  TickType
	Value float64
}

type TickEFP struct {
	baseEvent
	ReqID               int32
	Type                TickType
	BasisPoints         float64
	FormattedBasisPoints string
	ImpliedFuture       float64
	HoldDays            int32
	FutureExpiry        string
	DividendImpact      float64
	DividendsToExpiry   float64
}

type TickOptionComputation struct {
	baseEvent
	ReqID          int32
	Type           TickType
	TickAttrib     int32
	ImpliedVol     float64 // NaN when absent
	Delta          float64
	OptPrice       float64
	PvDividend     float64
	Gamma          float64
	Vega           float64
	Theta          float64
	UnderlyingPrice float64
}

type TickSnapshotEnd struct {
	baseEvent
	ReqID int32
}

type TickReqParams struct {
	baseEvent
	ReqID           int32
	MinTick         float64
	BboExchange     string
	SnapshotPermissions int32
}

type MarketDataType_ struct {
	baseEvent
	ReqID int32
	Type  MarketDataType
}

// --- order management ---

type OrderStatus struct {
	baseEvent
	OrderID       int32
	Status        string
	Filled        float64
	Remaining     float64
	AvgFillPrice  float64
	PermID        int64
	ParentID      int32
	LastFillPrice float64
	ClientID      int32
	WhyHeld       string
	MktCapPrice   float64
}

type OpenOrder struct {
	baseEvent
	OrderID  int32
	Contract Contract
	Order    Order
	State    OrderState
}

type OpenOrderEnd struct{ baseEvent }

type OrderBound struct {
	baseEvent
	OrderID    int64
	APIClientID int32
	APIOrderID  int32
}

type CompletedOrder struct {
	baseEvent
	Contract Contract
	Order    Order
	State    OrderState
}

type CompletedOrdersEnd struct{ baseEvent }

// --- account / portfolio ---

type AccountValue struct {
	baseEvent
	Key      string
	Value    string
	Currency string
	AccountName string
}

type PortfolioValue struct {
	baseEvent
	Contract      Contract
	Position      float64
	MarketPrice   float64
	MarketValue   float64
	AverageCost   float64
	UnrealizedPNL float64
	RealizedPNL   float64
	AccountName   string
}

type AccountUpdateTime struct {
	baseEvent
	Timestamp string
}

type AccountDownloadEnd struct {
	baseEvent
	AccountName string
}

type ManagedAccounts struct {
	baseEvent
	AccountsList string
}

type PositionData struct {
	baseEvent
	Account     string
	Contract    Contract
	Position    float64
	AvgCost     float64
}

type PositionEnd struct{ baseEvent }

type PositionMulti struct {
	baseEvent
	ReqID       int32
	Account     string
	ModelCode   string
	Contract    Contract
	Position    float64
	AvgCost     float64
}

type PositionMultiEnd struct {
	baseEvent
	ReqID int32
}

type AccountSummary struct {
	baseEvent
	ReqID   int32
	Account string
	Tag     string
	Value   string
	Currency string
}

type AccountSummaryEnd struct {
	baseEvent
	ReqID int32
}

type AccountUpdateMulti struct {
	baseEvent
	ReqID     int32
	Account   string
	ModelCode string
	Key       string
	Value     string
	Currency  string
}

type AccountUpdateMultiEnd struct {
	baseEvent
	ReqID int32
}

type PnL struct {
	baseEvent
	ReqID        int32
	DailyPnL     float64
	UnrealizedPnL float64 // NaN when absent
	RealizedPnL   float64 // NaN when absent
}

type PnLSingle struct {
	baseEvent
	ReqID         int32
	Position      float64
	DailyPnL      float64
	UnrealizedPnL float64
	RealizedPnL   float64
	Value         float64
}

// --- execution / commission ---

type ExecutionData struct {
	baseEvent
	ReqID     int32
	Contract  Contract
	Execution Execution
}

type ExecutionDataEnd struct {
	baseEvent
	ReqID int32
}

type CommissionAndFeesReportEvent struct {
	baseEvent
	Report CommissionAndFeesReport
}

// --- contract / reference data ---

type ContractData struct {
	baseEvent
	ReqID   int32
	Details ContractDetails
}

type BondContractData struct {
	baseEvent
	ReqID   int32
	Details ContractDetails
}

type ContractDataEnd struct {
	baseEvent
	ReqID int32
}

type SecurityDefinitionOptionParameter struct {
	baseEvent
	ReqID        int32
	Exchange     string
	UnderlyingConId int32
	TradingClass string
	Multiplier   string
	Expirations  []string
	Strikes      []float64
}

type SecurityDefinitionOptionParameterEnd struct {
	baseEvent
	ReqID int32
}

type SoftDollarTiers struct {
	baseEvent
	ReqID int32
	Tiers []SoftDollarTier
}

type FamilyCodes struct {
	baseEvent
	Codes []FamilyCode
}

type SymbolSamples struct {
	baseEvent
	ReqID int32
	Descriptions []ContractDescription
}

type MktDepthExchanges struct {
	baseEvent
	Descriptions []DepthMktDataDescription
}

type SmartComponents struct {
	baseEvent
	ReqID int32
	Components []SmartComponent
}

type NewsProviders struct {
	baseEvent
	Providers []NewsProvider
}

type MarketRule struct {
	baseEvent
	MarketRuleID int32
	PriceIncrements []PriceIncrement
}

// --- historical / bars / ticks ---

type HistoricalData struct {
	baseEvent
	ReqID     int32
	StartDate string
	EndDate   string
	Bars      []Bar
}

type HistoricalDataUpdate struct {
	baseEvent
	ReqID int32
	Bar   Bar
}

type RealTimeBar struct {
	baseEvent
	ReqID int32
	Bar   Bar
}

type HeadTimestamp struct {
	baseEvent
	ReqID int32
	HeadTimestamp string
}

type HistogramData struct {
	baseEvent
	ReqID   int32
	Entries []HistogramEntry
}

type HistoricalTicksEvent struct {
	baseEvent
	ReqID int32
	Ticks []HistoricalTickMidpoint
	Done  bool
}

type HistoricalTicksBidAskEvent struct {
	baseEvent
	ReqID int32
	Ticks []HistoricalTickBidAsk
	Done  bool
}

type HistoricalTicksLastEvent struct {
	baseEvent
	ReqID int32
	Ticks []HistoricalTickLast
	Done  bool
}

type HistoricalSchedule struct {
	baseEvent
	ReqID     int32
	StartDateTime string
	EndDateTime   string
	TimeZone      string
	Sessions      []HistoricalSession
}

type TickByTick struct {
	baseEvent
	ReqID int32
	// exactly one of Last/AllLast, BidAsk, or Midpoint is populated,
	// selected by the wire's tick-type discriminant.
	Last     *HistoricalTickLast
	LastAttrib TickAttribLast
	BidAsk   *HistoricalTickBidAsk
	BidAskAttrib TickAttribBidAsk
	MidpointPrice float64
	IsMidpoint    bool
}

// --- market depth ---

type MarketDepth struct {
	baseEvent
	ReqID     int32
	Position  int32
	Operation int32
	Side      int32
	Price     float64
	Size      float64
}

type MarketDepthL2 struct {
	baseEvent
	ReqID        int32
	Position     int32
	MarketMaker  string
	Operation    int32
	Side         int32
	Price        float64
	Size         float64
	IsSmartDepth bool
}

// --- scanner ---

type ScannerParameters struct {
	baseEvent
	XML string
}

type ScannerData struct {
	baseEvent
	ReqID int32
	Items []ScannerDataItem
}

// --- news / bulletins ---

type NewsBulletins struct {
	baseEvent
	MsgID   int32
	Type    int32
	Message string
	Exchange string
}

type NewsArticle struct {
	baseEvent
	ReqID       int32
	ArticleType int32
	ArticleText string
}

type TickNews struct {
	baseEvent
	ReqID         int32
	Timestamp     int64
	ProviderCode  string
	ArticleID     string
	Headline      string
	ExtraData     string
}

type HistoricalNews struct {
	baseEvent
	ReqID        int32
	Time         string
	ProviderCode string
	ArticleID    string
	Headline     string
}

type HistoricalNewsEnd struct {
	baseEvent
	ReqID    int32
	HasMore  bool
}

// --- misc / admin ---

type CurrentTime struct {
	baseEvent
	Time int64
}

type NextValidID struct {
	baseEvent
	OrderID int32
}

type DeltaNeutralValidation struct {
	baseEvent
	ReqID    int32
	Contract DeltaNeutralContract
}

type ReceiveFA struct {
	baseEvent
	DataType FaDataType
	XML      string
}

type ReplaceFAEnd struct {
	baseEvent
	ReqID int32
	Text  string
}

type VerifyMessageAPI struct {
	baseEvent
	APIData string
}

type VerifyCompleted struct {
	baseEvent
	IsSuccessful bool
	ErrorText    string
}

type VerifyAndAuthMessageAPI struct {
	baseEvent
	APIData   string
	XyzChallenge string
}

type VerifyAndAuthCompleted struct {
	baseEvent
	IsSuccessful bool
	ErrorText    string
}

type DisplayGroupList struct {
	baseEvent
	ReqID  int32
	Groups string
}

type DisplayGroupUpdated struct {
	baseEvent
	ReqID          int32
	ContractInfo   string
}

type RerouteMktDataReq struct {
	baseEvent
	ReqID       int32
	ConId       int32
	Exchange    string
}

type RerouteMktDepthReq struct {
	baseEvent
	ReqID    int32
	ConId    int32
	Exchange string
}

type WshMetaData struct {
	baseEvent
	ReqID    int32
	DataJSON string
}

type WshEventData struct {
	baseEvent
	ReqID    int32
	DataJSON string
}

type UserInfo struct {
	baseEvent
	ReqID       int32
	WhiteBrandingID string
}

// FundamentalData carries the XML report body requested by ReqFundamentalData.
type FundamentalData struct {
	baseEvent
	ReqID int32
	Data  string
}

// ErrorEvent is the server's own reported error (spec.md §7: data, not
// an exception). Request methods never return this; it only arrives on
// the event stream.
type ErrorEvent struct {
	baseEvent
	ReqID   int32
	Code    int32
	Message string
	AdvancedOrderRejectJSON map[string]any
}
