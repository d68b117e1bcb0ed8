// Copyright (c) 2024-2026 Neomantra Corp
//
// requests.go: the outgoing request surface. Each method builds one message
// body with codec.Builder and sends it. A request that is gated in its
// entirety (e.g. ReqUserInfo) fails outright with an *ibtws.Error{Kind:
// KindEncoding} when the negotiated server version doesn't support it; a
// request that merely has some newer optional fields omits exactly those
// fields below their gate and still succeeds (spec.md §8 Scenario E: "at
// server version 50, the same call omits all gated fields and the body ends
// earlier" — the common byte prefix is unchanged, only the tail differs,
// per Testable Property #5). Request methods only ever return a Connection
// or Encoding error (spec.md §7); everything else comes back on the event
// channel. Covers the market data, historical data, order,
// account/position/execution and scanner/news/misc request families named
// in spec.md §5; the full ~70-method surface is tracked in DESIGN.md.

package session

import (
	"github.com/riverrun-quant/ibtws-go"
	"github.com/riverrun-quant/ibtws-go/codec"
)

func (c *Client) requireGate(gate ibtws.Gate, feature string) error {
	if c.transport.ServerVersion < int32(gate) {
		return ibtws.NewEncodingError(feature, int(gate))
	}
	return nil
}

func writeContract(b *codec.Builder, ct ibtws.Contract) {
	b.Int(ct.ContractID)
	b.String(ct.Symbol)
	b.String(ct.SecType.String())
	b.String(ct.LastTradeDate)
	b.Float(ct.Strike)
	b.String(ct.Right.String())
	b.String(ct.Multiplier)
	b.String(ct.Exchange)
	b.String(ct.PrimaryExchange)
	b.String(ct.Currency)
	b.String(ct.LocalSymbol)
	b.String(ct.TradingClass)
	b.Bool(ct.IncludeExpired)
	b.String(ct.SecIdType.String())
	b.String(ct.SecId)
}

// --- market data ---

// ReqMktData subscribes to streaming top-of-book/tick data for contract.
func (c *Client) ReqMktData(reqID int32, ct ibtws.Contract, genericTickList string, snapshot, regulatorySnapshot bool, mktDataOptions []ibtws.TagValue) error {
	sv := c.transport.ServerVersion
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutReqMktData, sv, false)
	b.Int(11) // version
	b.Int(reqID)
	writeContract(b, ct)
	if ct.SecType == ibtws.SecTypeBag {
		b.Int(int32(len(ct.ComboLegs)))
		for _, leg := range ct.ComboLegs {
			b.Int(leg.ContractID)
			b.Int(leg.Ratio)
			b.String(leg.Action.String())
			b.String(leg.Exchange)
		}
	}
	if c.requireGate(ibtws.GateUnderComp, "ReqMktData.DeltaNeutralContract") == nil {
		if ct.DeltaNeutralContract != nil {
			b.Bool(true)
			b.Int(ct.DeltaNeutralContract.ContractID)
			b.Float(ct.DeltaNeutralContract.Delta)
			b.Float(ct.DeltaNeutralContract.Price)
		} else {
			b.Bool(false)
		}
	}
	b.String(genericTickList)
	if c.requireGate(ibtws.GateSnapshotMktData, "ReqMktData.Snapshot") == nil {
		b.Bool(snapshot)
	}
	if c.requireGate(ibtws.GateReqSmartComponents, "ReqMktData.RegulatorySnapshot") == nil {
		b.Bool(regulatorySnapshot)
	}
	if c.requireGate(ibtws.GateLinking, "ReqMktData.MktDataOptions") == nil {
		b.TagValueList(mktDataOptions)
	}
	return c.send(b)
}

// CancelMktData cancels a previously requested market-data subscription.
func (c *Client) CancelMktData(reqID int32) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutCancelMktData, c.transport.ServerVersion, false)
	b.Int(2) // version
	b.Int(reqID)
	return c.send(b)
}

// ReqMarketDataType switches between real-time/frozen/delayed/delayed-frozen
// data for subsequent subscriptions.
func (c *Client) ReqMarketDataType(t ibtws.MarketDataType) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutReqMarketDataType, c.transport.ServerVersion, false)
	b.Int(1)
	b.Int(int32(t))
	return c.send(b)
}

// ReqMktDepth subscribes to a level-2 order book.
func (c *Client) ReqMktDepth(reqID int32, ct ibtws.Contract, numRows int32, isSmartDepth bool, mktDepthOptions []ibtws.TagValue) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutReqMktDepth, c.transport.ServerVersion, false)
	b.Int(5)
	b.Int(reqID)
	writeContract(b, ct)
	b.Int(numRows)
	if c.requireGate(ibtws.GateSmartDepth, "ReqMktDepth.IsSmartDepth") == nil {
		b.Bool(isSmartDepth)
	}
	b.TagValueList(mktDepthOptions)
	return c.send(b)
}

// CancelMktDepth cancels a level-2 order book subscription.
func (c *Client) CancelMktDepth(reqID int32, isSmartDepth bool) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutCancelMktDepth, c.transport.ServerVersion, false)
	b.Int(1)
	b.Int(reqID)
	if c.requireGate(ibtws.GateSmartDepth, "CancelMktDepth.IsSmartDepth") == nil {
		b.Bool(isSmartDepth)
	}
	return c.send(b)
}

// --- historical data ---

// ReqHistoricalData requests a batch of bars ending at endDateTime.
func (c *Client) ReqHistoricalData(reqID int32, ct ibtws.Contract, endDateTime, duration, barSize, whatToShow string, useRTH bool, formatDate int32, keepUpToDate bool, chartOptions []ibtws.TagValue) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutReqHistoricalData, c.transport.ServerVersion, false)
	b.Int(reqID)
	writeContract(b, ct)
	b.Bool(ct.IncludeExpired)
	b.String(endDateTime)
	b.String(barSize)
	b.String(duration)
	b.Bool(useRTH)
	b.String(whatToShow)
	b.Int(formatDate)
	if ct.SecType == ibtws.SecTypeBag {
		b.Int(int32(len(ct.ComboLegs)))
		for _, leg := range ct.ComboLegs {
			b.Int(leg.ContractID)
			b.Int(leg.Ratio)
			b.String(leg.Action.String())
			b.String(leg.Exchange)
		}
	}
	if c.requireGate(ibtws.GateHistoricalKeepUpToDate, "ReqHistoricalData.KeepUpToDate") == nil {
		b.Bool(keepUpToDate)
	}
	b.TagValueList(chartOptions)
	return c.send(b)
}

// CancelHistoricalData cancels a previously requested historical-data
// request that is still streaming keep-up-to-date updates.
func (c *Client) CancelHistoricalData(reqID int32) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutCancelHistoricalData, c.transport.ServerVersion, false)
	b.Int(1)
	b.Int(reqID)
	return c.send(b)
}

// ReqHeadTimestamp requests the earliest available bar timestamp.
func (c *Client) ReqHeadTimestamp(reqID int32, ct ibtws.Contract, whatToShow string, useRTH bool, formatDate int32) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutReqHeadTimestamp, c.transport.ServerVersion, false)
	b.Int(reqID)
	writeContract(b, ct)
	b.Bool(ct.IncludeExpired)
	b.String(whatToShow)
	b.Bool(useRTH)
	b.Int(formatDate)
	return c.send(b)
}

// ReqHistoricalTicks requests tick-by-tick historical data in one of the
// three shapes ("MIDPOINT", "BID_ASK", "TRADES"), selected by whatToShow.
func (c *Client) ReqHistoricalTicks(reqID int32, ct ibtws.Contract, startDateTime, endDateTime string, numberOfTicks int32, whatToShow string, useRTH bool, ignoreSize bool, miscOptions []ibtws.TagValue) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutReqHistoricalTicks, c.transport.ServerVersion, false)
	b.Int(reqID)
	writeContract(b, ct)
	b.Bool(ct.IncludeExpired)
	b.String(startDateTime)
	b.String(endDateTime)
	b.Int(numberOfTicks)
	b.String(whatToShow)
	b.Bool(useRTH)
	b.Bool(ignoreSize)
	b.TagValueList(miscOptions)
	return c.send(b)
}

// ReqRealTimeBars subscribes to 5-second real-time bars.
func (c *Client) ReqRealTimeBars(reqID int32, ct ibtws.Contract, barSize int32, whatToShow string, useRTH bool, realTimeBarsOptions []ibtws.TagValue) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutReqRealTimeBars, c.transport.ServerVersion, false)
	b.Int(3)
	b.Int(reqID)
	writeContract(b, ct)
	b.Int(barSize)
	b.String(whatToShow)
	b.Bool(useRTH)
	b.TagValueList(realTimeBarsOptions)
	return c.send(b)
}

// CancelRealTimeBars cancels a real-time bars subscription.
func (c *Client) CancelRealTimeBars(reqID int32) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutCancelRealTimeBars, c.transport.ServerVersion, false)
	b.Int(1)
	b.Int(reqID)
	return c.send(b)
}

// --- orders ---

// PlaceOrder submits an order. At or above ibtws.GateProtobufPlaceOrder the
// body switches to the protobuf sub-codec (spec.md §4.3); below it, the
// ASCII body carries the order ID, the writeContract fields and the main
// order fields (action through hidden). The other Order fields are not sent.
func (c *Client) PlaceOrder(orderID int32, ct ibtws.Contract, ord ibtws.Order) error {
	sv := c.transport.ServerVersion
	useProto := codec.ShouldUseProtobuf(ibtws.OutPlaceOrder, sv, ibtws.GateProtobufPlaceOrder)
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutPlaceOrder, sv, useProto)
	if useProto {
		b.Append(codec.EncodePlaceOrderProtobuf(orderID, ct, ord))
		return c.send(b)
	}
	b.Int(orderID)
	writeContract(b, ct)
	b.String(ord.Action.String())
	b.Decimal(ord.TotalQuantity)
	b.String(ord.OrderType.String())
	b.FloatMax(ord.LmtPrice)
	b.FloatMax(ord.AuxPrice)
	b.String(ord.TIF.String())
	b.String(ord.OCAGroup)
	b.String(ord.Account)
	b.String(ord.OpenClose)
	b.Int(int32(ord.Origin))
	b.String(ord.OrderRef)
	b.Bool(ord.Transmit)
	b.Int(ord.ParentID)
	b.Bool(ord.OutsideRTH)
	b.Bool(ord.Hidden)
	return c.send(b)
}

// CancelOrder cancels an open order, carrying OrderCancel's
// ManualOrderCancelTime at or above ibtws.GateManualOrderTime (supplemented
// from original_source, SPEC_FULL.md §6). ExtOperator and
// ManualOrderIndicator are not sent.
func (c *Client) CancelOrder(orderID int32, cancel ibtws.OrderCancel) error {
	sv := c.transport.ServerVersion
	useProto := codec.ShouldUseProtobuf(ibtws.OutCancelOrder, sv, ibtws.GateProtobufCancelOrder)
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutCancelOrder, sv, useProto)
	if useProto {
		b.Append(codec.EncodeCancelOrderProtobuf(orderID, cancel))
		return c.send(b)
	}
	b.Int(orderID)
	if err := c.requireGate(ibtws.GateManualOrderTime, "CancelOrder.ManualOrderCancelTime"); err == nil {
		b.String(cancel.ManualOrderCancelTime)
	}
	return c.send(b)
}

// ReqGlobalCancel cancels every open order placed by this API client.
func (c *Client) ReqGlobalCancel(cancel ibtws.OrderCancel) error {
	sv := c.transport.ServerVersion
	useProto := codec.ShouldUseProtobuf(ibtws.OutReqGlobalCancel, sv, ibtws.GateProtobufReqGlobalCancel)
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutReqGlobalCancel, sv, useProto)
	if useProto {
		b.Append(codec.EncodeReqGlobalCancelProtobuf(cancel))
		return c.send(b)
	}
	b.Int(1)
	return c.send(b)
}

// ReqIDs requests the next valid order ID, delivered as a NextValidID event.
func (c *Client) ReqIDs() error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutReqIDs, c.transport.ServerVersion, false)
	b.Int(1)
	b.Int(0)
	return c.send(b)
}

// ReqOpenOrders requests all open orders for this client ID.
func (c *Client) ReqOpenOrders() error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutReqOpenOrders, c.transport.ServerVersion, false)
	b.Int(1)
	return c.send(b)
}

// ReqAllOpenOrders requests all open orders across every client ID on this
// connection's session (requires API-level permission).
func (c *Client) ReqAllOpenOrders() error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutReqAllOpenOrders, c.transport.ServerVersion, false)
	b.Int(1)
	return c.send(b)
}

// ReqAutoOpenOrders toggles whether this client receives open-order
// updates for orders it did not place itself.
func (c *Client) ReqAutoOpenOrders(autoBind bool) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutReqAutoOpenOrders, c.transport.ServerVersion, false)
	b.Int(1)
	b.Bool(autoBind)
	return c.send(b)
}

// ReqCompletedOrders requests orders that have completed on this session.
func (c *Client) ReqCompletedOrders(apiOnly bool) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutReqCompletedOrders, c.transport.ServerVersion, false)
	b.Bool(apiOnly)
	return c.send(b)
}

// ExerciseOptions exercises or lapses an option position.
func (c *Client) ExerciseOptions(reqID int32, ct ibtws.Contract, exerciseAction ibtws.OptionExerciseType, exerciseQuantity int32, account string, override bool, manualOrderTime string, customerAccount string, professionalCustomer bool) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutExerciseOptions, c.transport.ServerVersion, false)
	b.Int(reqID)
	writeContract(b, ct)
	b.Int(int32(exerciseAction))
	b.Int(exerciseQuantity)
	b.String(account)
	b.Bool(override)
	if err := c.requireGate(ibtws.GateManualOrderTime, "ExerciseOptions.ManualOrderTime"); err == nil {
		b.String(manualOrderTime)
	}
	if err := c.requireGate(ibtws.GateCustomerAccount, "ExerciseOptions.CustomerAccount"); err == nil {
		b.String(customerAccount)
		b.Bool(professionalCustomer)
	}
	return c.send(b)
}

// --- account / positions / executions ---

// ReqAccountUpdates subscribes to streaming account-value/portfolio updates.
func (c *Client) ReqAccountUpdates(subscribe bool, accountCode string) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutReqAcctData, c.transport.ServerVersion, false)
	b.Int(2)
	b.Bool(subscribe)
	b.String(accountCode)
	return c.send(b)
}

// ReqPositions requests a one-shot snapshot of all positions.
func (c *Client) ReqPositions() error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutReqPositions, c.transport.ServerVersion, false)
	return c.send(b)
}

// CancelPositions cancels a ReqPositions subscription.
func (c *Client) CancelPositions() error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutCancelPositions, c.transport.ServerVersion, false)
	return c.send(b)
}

// ReqPositionsMulti requests positions scoped to a specific model.
func (c *Client) ReqPositionsMulti(reqID int32, account, modelCode string) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutReqPositionsMulti, c.transport.ServerVersion, false)
	b.Int(1)
	b.Int(reqID)
	b.String(account)
	b.String(modelCode)
	return c.send(b)
}

// CancelPositionsMulti cancels a ReqPositionsMulti subscription.
func (c *Client) CancelPositionsMulti(reqID int32) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutCancelPositionsMulti, c.transport.ServerVersion, false)
	b.Int(1)
	b.Int(reqID)
	return c.send(b)
}

// ReqAccountSummary subscribes to a curated set of account-summary tags.
func (c *Client) ReqAccountSummary(reqID int32, group, tags string) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutReqAccountSummary, c.transport.ServerVersion, false)
	b.Int(1)
	b.Int(reqID)
	b.String(group)
	b.String(tags)
	return c.send(b)
}

// CancelAccountSummary cancels a ReqAccountSummary subscription.
func (c *Client) CancelAccountSummary(reqID int32) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutCancelAccountSummary, c.transport.ServerVersion, false)
	b.Int(1)
	b.Int(reqID)
	return c.send(b)
}

// ReqExecutions requests execution reports matching filter.
func (c *Client) ReqExecutions(reqID int32, filter ibtws.ExecutionFilter) error {
	sv := c.transport.ServerVersion
	useProto := codec.ShouldUseProtobuf(ibtws.OutReqExecutions, sv, ibtws.GateProtobufReqExecutions)
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutReqExecutions, sv, useProto)
	if useProto {
		b.Append(codec.EncodeReqExecutionsProtobuf(reqID, filter))
		return c.send(b)
	}
	b.Int(3)
	b.Int(reqID)
	b.Int(filter.ClientID)
	b.String(filter.AcctCode)
	b.String(filter.Time)
	b.String(filter.Symbol)
	b.String(filter.SecType.String())
	b.String(filter.Exchange)
	b.String(filter.Side)
	return c.send(b)
}

// ReqPnL subscribes to account-level daily/unrealized/realized PnL.
func (c *Client) ReqPnL(reqID int32, account, modelCode string) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutReqPnl, c.transport.ServerVersion, false)
	b.Int(reqID)
	b.String(account)
	b.String(modelCode)
	return c.send(b)
}

// CancelPnL cancels a ReqPnL subscription.
func (c *Client) CancelPnL(reqID int32) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutCancelPnl, c.transport.ServerVersion, false)
	b.Int(reqID)
	return c.send(b)
}

// --- contract / reference data ---

// ReqContractDetails requests full ContractDetails for a (possibly
// partially specified) contract.
func (c *Client) ReqContractDetails(reqID int32, ct ibtws.Contract) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutReqContractData, c.transport.ServerVersion, false)
	b.Int(8)
	b.Int(reqID)
	writeContract(b, ct)
	b.String(ct.IssuerId)
	return c.send(b)
}

// ReqMatchingSymbols requests contracts matching a search pattern.
func (c *Client) ReqMatchingSymbols(reqID int32, pattern string) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutReqMatchingSymbols, c.transport.ServerVersion, false)
	b.Int(reqID)
	b.String(pattern)
	return c.send(b)
}

// ReqSecDefOptParams requests the option chain parameters for an underlying.
func (c *Client) ReqSecDefOptParams(reqID int32, underlyingSymbol, futFopExchange string, underlyingSecType ibtws.SecType, underlyingConId int32) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutReqSecDefOptParams, c.transport.ServerVersion, false)
	b.Int(reqID)
	b.String(underlyingSymbol)
	b.String(futFopExchange)
	b.String(underlyingSecType.String())
	b.Int(underlyingConId)
	return c.send(b)
}

// --- scanner / news / misc ---

// ReqScannerSubscription subscribes to a market scanner.
func (c *Client) ReqScannerSubscription(reqID int32, sub ibtws.ScannerSubscription, scannerSubscriptionOptions, scannerSubscriptionFilterOptions []ibtws.TagValue) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutReqScannerSubscription, c.transport.ServerVersion, false)
	b.Int(reqID)
	b.IntMax(sub.NumberOfRows)
	b.String(sub.Instrument)
	b.String(sub.LocationCode)
	b.String(sub.ScanCode)
	b.FloatMax(sub.AbovePrice)
	b.FloatMax(sub.BelowPrice)
	b.IntMax(sub.AboveVolume)
	b.FloatMax(sub.MarketCapAbove)
	b.FloatMax(sub.MarketCapBelow)
	b.String(sub.MoodyRatingAbove)
	b.String(sub.MoodyRatingBelow)
	b.String(sub.SpRatingAbove)
	b.String(sub.SpRatingBelow)
	b.String(sub.MaturityDateAbove)
	b.String(sub.MaturityDateBelow)
	b.FloatMax(sub.CouponRateAbove)
	b.FloatMax(sub.CouponRateBelow)
	b.Bool(sub.ExcludeConvertible)
	b.IntMax(sub.AverageOptionVolumeAbove)
	b.String(sub.ScannerSettingPairs)
	b.String(sub.StockTypeFilter)
	b.TagValueList(scannerSubscriptionFilterOptions)
	b.TagValueList(scannerSubscriptionOptions)
	return c.send(b)
}

// CancelScannerSubscription cancels a scanner subscription.
func (c *Client) CancelScannerSubscription(reqID int32) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutCancelScannerSubscription, c.transport.ServerVersion, false)
	b.Int(1)
	b.Int(reqID)
	return c.send(b)
}

// ReqScannerParameters requests the XML document describing valid scanner
// parameter values.
func (c *Client) ReqScannerParameters() error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutReqScannerParameters, c.transport.ServerVersion, false)
	b.Int(1)
	return c.send(b)
}

// ReqNewsBulletins subscribes to TWS system news bulletins.
func (c *Client) ReqNewsBulletins(allMsgs bool) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutReqNewsBulletins, c.transport.ServerVersion, false)
	b.Int(1)
	b.Bool(allMsgs)
	return c.send(b)
}

// ReqCurrentTime requests the server's wall-clock time.
func (c *Client) ReqCurrentTime() error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutReqCurrentTime, c.transport.ServerVersion, false)
	b.Int(1)
	return c.send(b)
}

// ReqManagedAccts requests the list of accounts this login manages.
func (c *Client) ReqManagedAccts() error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutReqManagedAccts, c.transport.ServerVersion, false)
	b.Int(1)
	return c.send(b)
}

// ReqFamilyCodes requests the account-family-code table.
func (c *Client) ReqFamilyCodes() error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutReqFamilyCodes, c.transport.ServerVersion, false)
	return c.send(b)
}

// ReqUserInfo requests the white-branding ID for this login, gated behind
// GateUserInfo.
func (c *Client) ReqUserInfo(reqID int32) error {
	if err := c.requireGate(ibtws.GateUserInfo, "ReqUserInfo"); err != nil {
		return err
	}
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutReqUserInfo, c.transport.ServerVersion, false)
	b.Int(reqID)
	return c.send(b)
}
