// Copyright (c) 2024-2026 Neomantra Corp
//
// Layer C: per-message decoders. Each decoder takes the field cursor left
// just after the message ID (and, for older messages, the per-message
// version field many legacy message types still carry) and returns the
// matching ibtws.Event. Every incoming message ID has a decoder registered
// below or in messages_data.go; see DESIGN.md for the handful that still
// leave some of their wider record's fields unpopulated (OpenOrder's
// institutional/algo sections, the protobuf OpenOrder/ExecutionData
// variants).

package codec

import (
	"fmt"

	"github.com/riverrun-quant/ibtws-go"
)

// Dispatch decodes one complete frame body (after length-prefix removal)
// into an Event. Unknown or malformed messages never abort the session:
// they come back as ibtws.Unknown with the decode error attached, per
// spec.md §7.
func Dispatch(body []byte, serverVersion int32) ibtws.Event {
	id, isProto, rest := DecodeMsgID(body, serverVersion)
	if isProto {
		ev, err := dispatchProtobuf(id, rest)
		if err != nil {
			return &ibtws.Unknown{MsgID: int32(id) + ibtws.ProtobufMsgID, RawBytes: body, Cause: err}
		}
		return ev
	}

	r := NewReader(rest)
	ev, err := dispatchASCII(id, r, serverVersion)
	if err != nil {
		return &ibtws.Unknown{MsgID: int32(id), RawBytes: body, Cause: err}
	}
	return ev
}

func dispatchASCII(id ibtws.IncomingID, r *Reader, serverVersion int32) (ibtws.Event, error) {
	switch id {
	case ibtws.InCurrentTime:
		return decodeCurrentTime(r)
	case ibtws.InNextValidID:
		return decodeNextValidID(r)
	case ibtws.InManagedAccts:
		return decodeManagedAccounts(r)
	case ibtws.InTickPrice:
		return decodeTickPrice(r, serverVersion)
	case ibtws.InTickSize:
		return decodeTickSize(r)
	case ibtws.InTickString:
		return decodeTickString(r)
	case ibtws.InTickGeneric:
		return decodeTickGeneric(r)
	case ibtws.InTickSnapshotEnd:
		return decodeTickSnapshotEnd(r)
	case ibtws.InOrderStatus:
		return decodeOrderStatus(r, serverVersion)
	case ibtws.InOpenOrderEnd:
		return &ibtws.OpenOrderEnd{}, r.Err()
	case ibtws.InExecutionDataEnd:
		return decodeExecutionDataEnd(r)
	case ibtws.InContractDataEnd:
		return decodeContractDataEnd(r)
	case ibtws.InAcctValue:
		return decodeAccountValue(r)
	case ibtws.InAcctUpdateTime:
		return decodeAccountUpdateTime(r)
	case ibtws.InAcctDownloadEnd:
		return decodeAccountDownloadEnd(r)
	case ibtws.InPositionData:
		return decodePositionData(r)
	case ibtws.InPositionEnd:
		return &ibtws.PositionEnd{}, r.Err()
	case ibtws.InErrMsg:
		return decodeErrMsg(r)
	case ibtws.InHistoricalData:
		return decodeHistoricalData(r)
	case ibtws.InRealTimeBars:
		return decodeRealTimeBar(r)
	case ibtws.InOpenOrder:
		return decodeOpenOrder(r)
	case ibtws.InContractData:
		return decodeContractData(r)
	case ibtws.InBondContractData:
		return decodeBondContractData(r)
	case ibtws.InPortfolioValue:
		return decodePortfolioValue(r)
	case ibtws.InExecutionData:
		return decodeExecutionData(r)
	case ibtws.InCommissionAndFeesReport:
		return decodeCommissionAndFeesReport(r)
	case ibtws.InTickEFP:
		return decodeTickEFP(r)
	case ibtws.InTickOptionComputation:
		return decodeTickOptionComputation(r)
	case ibtws.InTickReqParams:
		return decodeTickReqParams(r)
	case ibtws.InMarketDataType:
		return decodeMarketDataType(r)
	case ibtws.InOrderBound:
		return decodeOrderBound(r)
	case ibtws.InCompletedOrder:
		return decodeCompletedOrder(r)
	case ibtws.InCompletedOrdersEnd:
		return &ibtws.CompletedOrdersEnd{}, r.Err()
	case ibtws.InPositionMulti:
		return decodePositionMulti(r)
	case ibtws.InPositionMultiEnd:
		return &ibtws.PositionMultiEnd{ReqID: r.Int()}, r.Err()
	case ibtws.InAccountSummary:
		return decodeAccountSummary(r)
	case ibtws.InAccountSummaryEnd:
		return &ibtws.AccountSummaryEnd{ReqID: r.Int()}, r.Err()
	case ibtws.InAccountUpdateMulti:
		return decodeAccountUpdateMulti(r)
	case ibtws.InAccountUpdateMultiEnd:
		return &ibtws.AccountUpdateMultiEnd{ReqID: r.Int()}, r.Err()
	case ibtws.InPnl:
		return decodePnL(r)
	case ibtws.InPnlSingle:
		return decodePnLSingle(r)
	case ibtws.InSecurityDefinitionOptionParameter:
		return decodeSecurityDefinitionOptionParameter(r)
	case ibtws.InSecDefOptParameterEnd:
		return &ibtws.SecurityDefinitionOptionParameterEnd{ReqID: r.Int()}, r.Err()
	case ibtws.InSoftDollarTiers:
		return decodeSoftDollarTiers(r)
	case ibtws.InFamilyCodes:
		return decodeFamilyCodes(r)
	case ibtws.InSymbolSamples:
		return decodeSymbolSamples(r)
	case ibtws.InMktDepthExchanges:
		return decodeMktDepthExchanges(r)
	case ibtws.InSmartComponents:
		return decodeSmartComponents(r)
	case ibtws.InNewsProviders:
		return decodeNewsProviders(r)
	case ibtws.InMarketRule:
		return decodeMarketRule(r)
	case ibtws.InHistoricalDataUpdate:
		return decodeHistoricalDataUpdate(r)
	case ibtws.InHeadTimestamp:
		return decodeHeadTimestamp(r)
	case ibtws.InHistogramData:
		return decodeHistogramData(r)
	case ibtws.InHistoricalTicks:
		return decodeHistoricalTicks(r)
	case ibtws.InHistoricalTicksBidAsk:
		return decodeHistoricalTicksBidAsk(r)
	case ibtws.InHistoricalTicksLast:
		return decodeHistoricalTicksLast(r)
	case ibtws.InHistoricalSchedule:
		return decodeHistoricalSchedule(r)
	case ibtws.InTickByTick:
		return decodeTickByTick(r)
	case ibtws.InMarketDepth:
		return decodeMarketDepth(r)
	case ibtws.InMarketDepthL2:
		return decodeMarketDepthL2(r)
	case ibtws.InScannerParameters:
		return decodeScannerParameters(r)
	case ibtws.InScannerData:
		return decodeScannerData(r)
	case ibtws.InNewsBulletins:
		return decodeNewsBulletins(r)
	case ibtws.InNewsArticle:
		return decodeNewsArticle(r)
	case ibtws.InTickNews:
		return decodeTickNews(r)
	case ibtws.InHistoricalNews:
		return decodeHistoricalNews(r)
	case ibtws.InHistoricalNewsEnd:
		return decodeHistoricalNewsEnd(r)
	case ibtws.InDeltaNeutralValidation:
		return decodeDeltaNeutralValidation(r)
	case ibtws.InReceiveFA:
		return decodeReceiveFA(r)
	case ibtws.InReplaceFAEnd:
		return decodeReplaceFAEnd(r)
	case ibtws.InVerifyMessageAPI:
		return decodeVerifyMessageAPI(r)
	case ibtws.InVerifyCompleted:
		return decodeVerifyCompleted(r)
	case ibtws.InVerifyAndAuthMessageAPI:
		return decodeVerifyAndAuthMessageAPI(r)
	case ibtws.InVerifyAndAuthCompleted:
		return decodeVerifyAndAuthCompleted(r)
	case ibtws.InDisplayGroupList:
		return decodeDisplayGroupList(r)
	case ibtws.InDisplayGroupUpdated:
		return decodeDisplayGroupUpdated(r)
	case ibtws.InRerouteMktDataReq:
		return decodeRerouteMktDataReq(r)
	case ibtws.InRerouteMktDepthReq:
		return decodeRerouteMktDepthReq(r)
	case ibtws.InWshMetaData:
		return decodeWshMetaData(r)
	case ibtws.InWshEventData:
		return decodeWshEventData(r)
	case ibtws.InUserInfo:
		return decodeUserInfo(r)
	case ibtws.InFundamentalData:
		return decodeFundamentalData(r)
	default:
		return nil, fmt.Errorf("no ascii decoder registered for message id %d", id)
	}
}

func decodeCurrentTime(r *Reader) (ibtws.Event, error) {
	_ = r.String() // version
	t := r.Int64()
	return &ibtws.CurrentTime{Time: t}, r.Err()
}

func decodeNextValidID(r *Reader) (ibtws.Event, error) {
	_ = r.String() // version
	return &ibtws.NextValidID{OrderID: r.Int()}, r.Err()
}

func decodeManagedAccounts(r *Reader) (ibtws.Event, error) {
	_ = r.String() // version
	return &ibtws.ManagedAccounts{AccountsList: r.String()}, r.Err()
}

func decodeTickPrice(r *Reader, serverVersion int32) (ibtws.Event, error) {
	_ = r.String() // version
	reqID := r.Int()
	tickType := ibtws.TickTypeFromInt32(r.Int())
	price := r.Float()
	size := r.Float()
	mask := r.Int()
	attrib := ibtws.TickAttrib{
		CanAutoExecute: mask&0x1 != 0,
		PastLimit:      mask&0x2 != 0,
		PreOpen:        mask&0x4 != 0,
	}
	return &ibtws.TickPrice{ReqID: reqID, Type: tickType, Price: price, Size: size, Attrib: attrib}, r.Err()
}

func decodeTickSize(r *Reader) (ibtws.Event, error) {
	_ = r.String() // version
	reqID := r.Int()
	tickType := ibtws.TickTypeFromInt32(r.Int())
	return &ibtws.TickSize{ReqID: reqID, Type: tickType, Size: r.Float()}, r.Err()
}

func decodeTickString(r *Reader) (ibtws.Event, error) {
	_ = r.String()
	reqID := r.Int()
	tickType := ibtws.TickTypeFromInt32(r.Int())
	return &ibtws.TickString{ReqID: reqID, Type: tickType, Value: r.String()}, r.Err()
}

func decodeTickGeneric(r *Reader) (ibtws.Event, error) {
	_ = r.String()
	reqID := r.Int()
	tickType := ibtws.TickTypeFromInt32(r.Int())
	return &ibtws.TickGeneric{ReqID: reqID, Type: tickType, Value: r.Float()}, r.Err()
}

func decodeTickSnapshotEnd(r *Reader) (ibtws.Event, error) {
	_ = r.String()
	return &ibtws.TickSnapshotEnd{ReqID: r.Int()}, r.Err()
}

// decodeOrderStatus is the "simple ack shape, many optional trailing
// fields" decoder pattern (spec.md §8 scenario A/B family).
func decodeOrderStatus(r *Reader, serverVersion int32) (ibtws.Event, error) {
	orderID := r.Int()
	status := r.String()
	filled := r.Float()
	remaining := r.Float()
	avgFillPrice := r.Float()
	permID := r.Int64()
	parentID := r.Int()
	lastFillPrice := r.Float()
	clientID := r.Int()
	whyHeld := r.String()
	var mktCapPrice float64
	if serverVersion >= int32(ibtws.GateMktCapPrice) {
		mktCapPrice = r.FloatMax()
	}
	return &ibtws.OrderStatus{
		OrderID: orderID, Status: status, Filled: filled, Remaining: remaining,
		AvgFillPrice: avgFillPrice, PermID: permID, ParentID: parentID,
		LastFillPrice: lastFillPrice, ClientID: clientID, WhyHeld: whyHeld,
		MktCapPrice: mktCapPrice,
	}, r.Err()
}

func decodeExecutionDataEnd(r *Reader) (ibtws.Event, error) {
	return &ibtws.ExecutionDataEnd{ReqID: r.Int()}, r.Err()
}

func decodeContractDataEnd(r *Reader) (ibtws.Event, error) {
	_ = r.String()
	return &ibtws.ContractDataEnd{ReqID: r.Int()}, r.Err()
}

func decodeAccountValue(r *Reader) (ibtws.Event, error) {
	_ = r.String()
	key := r.String()
	value := r.String()
	currency := r.String()
	accountName := r.String()
	return &ibtws.AccountValue{Key: key, Value: value, Currency: currency, AccountName: accountName}, r.Err()
}

func decodeAccountUpdateTime(r *Reader) (ibtws.Event, error) {
	_ = r.String()
	return &ibtws.AccountUpdateTime{Timestamp: r.String()}, r.Err()
}

func decodeAccountDownloadEnd(r *Reader) (ibtws.Event, error) {
	_ = r.String()
	return &ibtws.AccountDownloadEnd{AccountName: r.String()}, r.Err()
}

// decodePositionData is the "tabular loop" decoder pattern (a fixed-shape
// row repeated once per owned position, spec.md §8 scenario C family).
func decodePositionData(r *Reader) (ibtws.Event, error) {
	_ = r.String()
	account := r.String()
	var c ibtws.Contract
	c.ContractID = r.Int()
	c.Symbol = r.String()
	c.SecType = ibtws.OtherSecType(r.String())
	c.LastTradeDate = r.String()
	c.Strike = r.Float()
	c.Right = ibtws.OtherRight(r.String())
	c.Multiplier = r.String()
	c.Exchange = r.String()
	c.Currency = r.String()
	c.LocalSymbol = r.String()
	c.TradingClass = r.String()
	position := r.Float()
	avgCost := r.Float()
	return &ibtws.PositionData{Account: account, Contract: c, Position: position, AvgCost: avgCost}, r.Err()
}

// decodeHistoricalData is the "massive variable-field record" decoder shape
// (spec.md §8 scenario family): a header followed by a server-controlled
// count of fixed-shape bar rows.
func decodeHistoricalData(r *Reader) (ibtws.Event, error) {
	reqID := r.Int()
	startDate := r.String()
	endDate := r.String()
	count := r.Int()
	bars := make([]ibtws.Bar, 0, count)
	for i := int32(0); i < count; i++ {
		bars = append(bars, ibtws.Bar{
			Time:     r.String(),
			Open:     r.Float(),
			High:     r.Float(),
			Low:      r.Float(),
			Close:    r.Float(),
			Volume:   r.Decimal(),
			WAP:      r.Decimal(),
			BarCount: r.Int(),
		})
	}
	return &ibtws.HistoricalData{ReqID: reqID, StartDate: startDate, EndDate: endDate, Bars: bars}, r.Err()
}

func decodeRealTimeBar(r *Reader) (ibtws.Event, error) {
	reqID := r.Int()
	bar := ibtws.Bar{
		Time:     r.String(),
		Open:     r.Float(),
		High:     r.Float(),
		Low:      r.Float(),
		Close:    r.Float(),
		Volume:   r.Decimal(),
		WAP:      r.Decimal(),
		BarCount: r.Int(),
	}
	return &ibtws.RealTimeBar{ReqID: reqID, Bar: bar}, r.Err()
}

// decodeErrMsg is the dual-mode message: the ascii path carries a version
// field, id+errorCode+errorString, and an advancedOrderRejectJson field when
// the frame has one more field.
func decodeErrMsg(r *Reader) (ibtws.Event, error) {
	_ = r.String() // version, on pre-protobuf connections
	reqID := r.Int()
	code := r.Int()
	msg := r.String()
	ev := &ibtws.ErrorEvent{ReqID: reqID, Code: code, Message: msg}
	if r.HasMore() {
		if rejectJSON := r.String(); rejectJSON != "" {
			if parsed, err := ibtws.ParseAdvancedOrderReject(rejectJSON); err == nil {
				ev.AdvancedOrderRejectJSON = parsed
			}
		}
	}
	return ev, r.Err()
}
