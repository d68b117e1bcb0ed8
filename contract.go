// Copyright (c) 2024-2026 Neomantra Corp
//
// Contract-family domain types. Field layout follows the public
// Contract/ContractDetails record shapes; grounded on the teacher's
// structs.go convention of plain exported-field structs with a short doc
// comment per type and per nontrivial field.

package ibtws

import "github.com/shopspring/decimal"

// Contract identifies a tradable instrument.
type Contract struct {
	ContractID      int32
	Symbol          string
	SecType         SecType
	LastTradeDate   string // YYYYMMDD or YYYYMM; mutually exclusive with LastTradeDateOrContractMonth on the wire
	Strike          float64
	Right           Right
	Multiplier      string
	Exchange        string
	PrimaryExchange string
	Currency        string
	LocalSymbol     string
	TradingClass    string
	IncludeExpired  bool
	SecIdType       SecIdType
	SecId           string
	Description     string
	IssuerId        string

	ComboLegsDescrip string
	ComboLegs        []ComboLeg
	DeltaNeutralContract *DeltaNeutralContract
}

// ComboLeg is one leg of a BAG (combo) contract.
type ComboLeg struct {
	ContractID int32
	Ratio      int32
	Action     OrderAction
	Exchange   string
	OpenClose  LegOpenClose
	ShortSaleSlot      int32
	DesignatedLocation string
	ExemptCode         int32
}

// DeltaNeutralContract hedges an option combo's delta.
type DeltaNeutralContract struct {
	ContractID int32
	Delta      float64
	Price      float64
}

// ContractDetails is the full metadata record returned by contract lookup.
type ContractDetails struct {
	Contract Contract

	MarketName         string
	MinTick            float64
	OrderTypes         string
	ValidExchanges     string
	PriceMagnifier     int32
	UnderConId         int32
	LongName           string
	ContractMonth      string
	Industry           string
	Category           string
	Subcategory        string
	TimeZoneId         string
	TradingHours       string
	LiquidHours        string
	EVRule             string
	EVMultiplier       int32
	MdSizeMultiplier   int32 // deprecated field retained for older server versions
	AggGroup           int32
	UnderSymbol        string
	UnderSecType       SecType
	MarketRuleIds      string
	SecIdList          []TagValue
	RealExpirationDate string
	LastTradeTime      string
	StockType          string
	MinSize            decimal.Decimal
	SizeIncrement      decimal.Decimal
	SuggestedSizeIncrement decimal.Decimal

	// Bond-specific fields, populated only for SecTypeBond.
	CUSIP             string
	Ratings           string
	DescAppend        string
	BondType          string
	CouponType        string
	Callable          bool
	Putable           bool
	Coupon            float64
	Convertible       bool
	Maturity          string
	IssueDate         string
	NextOptionDate    string
	NextOptionType    string
	NextOptionPartial bool
	Notes             string

	// Fund-specific fields, populated only for SecTypeFund.
	FundName                       string
	FundFamily                     string
	FundType                       string
	FundFrontLoad                  string
	FundBackLoad                   string
	FundBackLoadTimeInterval       string
	FundManagementFee              string
	FundClosed                     bool
	FundClosedForNewInvestors      bool
	FundClosedForNewMoney          bool
	FundNotifyAmount               string
	FundMinimumInitialPurchase     string
	FundSubsequentMinimumPurchase  string
	FundBlueSkyStates              string
	FundBlueSkyTerritories         string
	FundDistributionPolicyIndicator FundDistributionPolicyIndicator
	FundAssetType                  FundAssetType
}

// ContractDescription pairs a Contract with the exchange-derivative tags
// returned by a symbol-matching search.
type ContractDescription struct {
	Contract          Contract
	DerivativeSecTypes []string
}

// DepthMktDataDescription describes one exchange/sectype's market-depth
// capability, as returned by reqMktDepthExchanges.
type DepthMktDataDescription struct {
	Exchange        string
	SecType         SecType
	ListingExchange string
	ServiceDataType string
	AggGroup        int32 // UnsetInt when absent
}

// NewsProvider is one configured news source.
type NewsProvider struct {
	Code string
	Name string
}

// FamilyCode pairs an account ID with its family-code grouping tag.
type FamilyCode struct {
	AccountID  string
	FamilyCode string
}

// SoftDollarTier is one soft-dollar allocation tier available to an order.
type SoftDollarTier struct {
	Name        string
	Value       string
	DisplayName string
}

// PriceIncrement is one row of a market-rule's price-increment schedule.
type PriceIncrement struct {
	LowEdge   float64
	Increment float64
}

// TagValue is a generic string key/value pair, used for SecIdList and for
// Order.AlgoParams / Order.SmartComboRoutingParams.
type TagValue struct {
	Tag   string
	Value string
}
