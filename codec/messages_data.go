// Copyright (c) 2024-2026 Neomantra Corp
//
// Layer C decoders for the reference-data, account, execution and scanner
// message families. Split out from messages.go to keep that file to the
// shapes exercised directly by the Testable Property scenarios; this file
// is the rest of the incoming-ID coverage table in DESIGN.md.

package codec

import (
	"github.com/riverrun-quant/ibtws-go"
)

// readContractCore reads the Contract identification fields shared by
// PositionData, ExecutionData and the ContractData family.
func readContractCore(r *Reader) ibtws.Contract {
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
	return c
}

func readContractDetails(r *Reader) ibtws.ContractDetails {
	var d ibtws.ContractDetails
	d.Contract.Symbol = r.String()
	d.Contract.SecType = ibtws.OtherSecType(r.String())
	d.Contract.LastTradeDate = r.String()
	d.Contract.Strike = r.Float()
	d.Contract.Right = ibtws.OtherRight(r.String())
	d.Contract.Exchange = r.String()
	d.Contract.Currency = r.String()
	d.Contract.LocalSymbol = r.String()
	d.MarketName = r.String()
	d.Contract.TradingClass = r.String()
	d.Contract.ContractID = r.Int()
	d.MinTick = r.Float()
	d.MdSizeMultiplier = r.Int()
	d.Contract.Multiplier = r.String()
	d.OrderTypes = r.String()
	d.ValidExchanges = r.String()
	d.PriceMagnifier = r.Int()
	d.UnderConId = r.Int()
	d.LongName = r.String()
	d.Contract.PrimaryExchange = r.String()
	d.ContractMonth = r.String()
	d.Industry = r.String()
	d.Category = r.String()
	d.Subcategory = r.String()
	d.TimeZoneId = r.String()
	d.TradingHours = r.String()
	d.LiquidHours = r.String()
	d.EVRule = r.String()
	d.EVMultiplier = r.IntMax()
	secIdCount := r.Int()
	for i := int32(0); i < secIdCount; i++ {
		tag := r.String()
		value := r.String()
		d.SecIdList = append(d.SecIdList, ibtws.TagValue{Tag: tag, Value: value})
	}
	d.AggGroup = r.IntMax()
	d.UnderSymbol = r.String()
	d.UnderSecType = ibtws.OtherSecType(r.String())
	d.MarketRuleIds = r.String()
	d.RealExpirationDate = r.String()
	d.StockType = r.String()
	d.MinSize = r.Decimal()
	d.SizeIncrement = r.Decimal()
	d.SuggestedSizeIncrement = r.Decimal()
	return d
}

func readBondContractDetails(r *Reader) ibtws.ContractDetails {
	var d ibtws.ContractDetails
	d.Contract.Symbol = r.String()
	d.BondType = r.String()
	d.Coupon = r.Float()
	d.Maturity = r.String()
	d.IssueDate = r.String()
	d.Ratings = r.String()
	d.BondType = r.String()
	d.Notes = r.String()
	d.LongName = r.String()
	d.Contract.Exchange = r.String()
	d.Contract.Currency = r.String()
	d.MarketName = r.String()
	d.Contract.TradingClass = r.String()
	d.Contract.ContractID = r.Int()
	d.MinTick = r.Float()
	d.MdSizeMultiplier = r.Int()
	d.OrderTypes = r.String()
	d.ValidExchanges = r.String()
	d.NextOptionDate = r.String()
	d.NextOptionType = r.String()
	d.NextOptionPartial = r.Bool()
	d.Notes = r.String()
	d.LongName = r.String()
	d.EVRule = r.String()
	d.EVMultiplier = r.IntMax()
	secIdCount := r.Int()
	for i := int32(0); i < secIdCount; i++ {
		tag := r.String()
		value := r.String()
		d.SecIdList = append(d.SecIdList, ibtws.TagValue{Tag: tag, Value: value})
	}
	d.AggGroup = r.IntMax()
	d.MarketRuleIds = r.String()
	d.RealExpirationDate = r.String()
	return d
}

func decodeContractData(r *Reader) (ibtws.Event, error) {
	_ = r.String() // version
	reqID := r.Int()
	details := readContractDetails(r)
	return &ibtws.ContractData{ReqID: reqID, Details: details}, r.Err()
}

func decodeBondContractData(r *Reader) (ibtws.Event, error) {
	_ = r.String() // version
	reqID := r.Int()
	details := readBondContractDetails(r)
	return &ibtws.BondContractData{ReqID: reqID, Details: details}, r.Err()
}

func decodePortfolioValue(r *Reader) (ibtws.Event, error) {
	_ = r.String() // version
	c := readContractCore(r)
	position := r.Float()
	marketPrice := r.Float()
	marketValue := r.Float()
	averageCost := r.Float()
	unrealizedPNL := r.Float()
	realizedPNL := r.Float()
	accountName := r.String()
	return &ibtws.PortfolioValue{
		Contract: c, Position: position, MarketPrice: marketPrice, MarketValue: marketValue,
		AverageCost: averageCost, UnrealizedPNL: unrealizedPNL, RealizedPNL: realizedPNL, AccountName: accountName,
	}, r.Err()
}

func decodeExecutionData(r *Reader) (ibtws.Event, error) {
	_ = r.String() // version
	reqID := r.Int()
	c := readContractCore(r)
	exec := ibtws.Execution{
		OrderID:    r.Int(),
		ExecID:     r.String(),
		Time:       r.String(),
		AcctNumber: r.String(),
		Exchange:   r.String(),
		Side:       r.String(),
		Shares:     r.Decimal(),
		Price:      r.Float(),
		PermID:     r.Int64(),
		ClientID:   r.Int(),
		Liquidation: r.Int(),
		CumQty:     r.Decimal(),
		AvgPrice:   r.Float(),
		OrderRef:   r.String(),
		EVRule:     r.String(),
		EVMultiplier: r.FloatMax(),
		ModelCode:    r.String(),
		LastLiquidity: r.Int(),
		Submitter:     r.String(),
	}
	return &ibtws.ExecutionData{ReqID: reqID, Contract: c, Execution: exec}, r.Err()
}

func decodeCommissionAndFeesReport(r *Reader) (ibtws.Event, error) {
	_ = r.String() // version
	rep := ibtws.CommissionAndFeesReport{
		ExecID:            r.String(),
		CommissionAndFees: r.Float(),
		Currency:          r.String(),
		RealizedPNL:       r.FloatMax(),
		Yield:             r.FloatMax(),
		YieldRedemptionDate: r.Int(),
	}
	return &ibtws.CommissionAndFeesReportEvent{Report: rep}, r.Err()
}

func decodeTickEFP(r *Reader) (ibtws.Event, error) {
	reqID := r.Int()
	tickType := ibtws.TickTypeFromInt32(r.Int())
	return &ibtws.TickEFP{
		ReqID: reqID, Type: tickType,
		BasisPoints:          r.Float(),
		FormattedBasisPoints: r.String(),
		ImpliedFuture:        r.Float(),
		HoldDays:             r.Int(),
		FutureExpiry:         r.String(),
		DividendImpact:       r.Float(),
		DividendsToExpiry:    r.Float(),
	}, r.Err()
}

func decodeTickOptionComputation(r *Reader) (ibtws.Event, error) {
	reqID := r.Int()
	tickType := ibtws.TickTypeFromInt32(r.Int())
	attrib := r.Int()
	impliedVol := r.FloatMax()
	return &ibtws.TickOptionComputation{
		ReqID: reqID, Type: tickType, TickAttrib: attrib,
		ImpliedVol:      impliedVol,
		Delta:           r.FloatMax(),
		OptPrice:        r.FloatMax(),
		PvDividend:      r.FloatMax(),
		Gamma:           r.FloatMax(),
		Vega:            r.FloatMax(),
		Theta:           r.FloatMax(),
		UnderlyingPrice: r.FloatMax(),
	}, r.Err()
}

func decodeTickReqParams(r *Reader) (ibtws.Event, error) {
	return &ibtws.TickReqParams{
		ReqID:               r.Int(),
		MinTick:             r.Float(),
		BboExchange:         r.String(),
		SnapshotPermissions: r.Int(),
	}, r.Err()
}

func decodeMarketDataType(r *Reader) (ibtws.Event, error) {
	reqID := r.Int()
	return &ibtws.MarketDataType_{ReqID: reqID, Type: ibtws.MarketDataTypeFromInt32(r.Int())}, r.Err()
}

func decodeOrderBound(r *Reader) (ibtws.Event, error) {
	return &ibtws.OrderBound{
		OrderID:     r.Int64(),
		APIClientID: r.Int(),
		APIOrderID:  r.Int(),
	}, r.Err()
}

func decodeCompletedOrder(r *Reader) (ibtws.Event, error) {
	c := readContractCore(r)
	var ord ibtws.Order
	ord.Action = ibtws.OtherAction(r.String())
	ord.TotalQuantity = r.Decimal()
	ord.OrderType = ibtws.OtherOrderType(r.String())
	ord.LmtPrice = r.FloatMax()
	ord.AuxPrice = r.FloatMax()
	ord.TIF = ibtws.OtherTIF(r.String())
	ord.OCAGroup = r.String()
	ord.Account = r.String()
	ord.OpenClose = r.String()
	ord.Origin = ibtws.OriginFromInt32(r.Int())
	ord.OrderRef = r.String()
	ord.ClientID = r.Int()
	ord.PermID = r.Int64()
	ord.OutsideRTH = r.Bool()
	ord.Hidden = r.Bool()
	var state ibtws.OrderState
	state.Status = r.String()
	state.CompletedTime = r.String()
	state.CompletedStatus = r.String()
	return &ibtws.CompletedOrder{Contract: c, Order: ord, State: state}, r.Err()
}

func decodePositionMulti(r *Reader) (ibtws.Event, error) {
	_ = r.String() // version
	reqID := r.Int()
	account := r.String()
	c := readContractCore(r)
	position := r.Float()
	avgCost := r.Float()
	modelCode := r.String()
	return &ibtws.PositionMulti{ReqID: reqID, Account: account, ModelCode: modelCode, Contract: c, Position: position, AvgCost: avgCost}, r.Err()
}

func decodeAccountSummary(r *Reader) (ibtws.Event, error) {
	_ = r.String() // version
	return &ibtws.AccountSummary{
		ReqID:    r.Int(),
		Account:  r.String(),
		Tag:      r.String(),
		Value:    r.String(),
		Currency: r.String(),
	}, r.Err()
}

func decodeAccountUpdateMulti(r *Reader) (ibtws.Event, error) {
	_ = r.String() // version
	return &ibtws.AccountUpdateMulti{
		ReqID:     r.Int(),
		Account:   r.String(),
		ModelCode: r.String(),
		Key:       r.String(),
		Value:     r.String(),
		Currency:  r.String(),
	}, r.Err()
}

func decodePnL(r *Reader) (ibtws.Event, error) {
	return &ibtws.PnL{
		ReqID:         r.Int(),
		DailyPnL:      r.Float(),
		UnrealizedPnL: r.FloatMax(),
		RealizedPnL:   r.FloatMax(),
	}, r.Err()
}

func decodePnLSingle(r *Reader) (ibtws.Event, error) {
	return &ibtws.PnLSingle{
		ReqID:         r.Int(),
		Position:      r.Float(),
		DailyPnL:      r.Float(),
		UnrealizedPnL: r.FloatMax(),
		RealizedPnL:   r.FloatMax(),
		Value:         r.Float(),
	}, r.Err()
}

func decodeSecurityDefinitionOptionParameter(r *Reader) (ibtws.Event, error) {
	reqID := r.Int()
	exchange := r.String()
	underConId := r.Int()
	tradingClass := r.String()
	multiplier := r.String()
	expCount := r.Int()
	expirations := make([]string, 0, expCount)
	for i := int32(0); i < expCount; i++ {
		expirations = append(expirations, r.String())
	}
	strikeCount := r.Int()
	strikes := make([]float64, 0, strikeCount)
	for i := int32(0); i < strikeCount; i++ {
		strikes = append(strikes, r.Float())
	}
	return &ibtws.SecurityDefinitionOptionParameter{
		ReqID: reqID, Exchange: exchange, UnderlyingConId: underConId,
		TradingClass: tradingClass, Multiplier: multiplier, Expirations: expirations, Strikes: strikes,
	}, r.Err()
}

func decodeSoftDollarTiers(r *Reader) (ibtws.Event, error) {
	reqID := r.Int()
	n := r.Int()
	tiers := make([]ibtws.SoftDollarTier, 0, n)
	for i := int32(0); i < n; i++ {
		tiers = append(tiers, ibtws.SoftDollarTier{Name: r.String(), Value: r.String(), DisplayName: r.String()})
	}
	return &ibtws.SoftDollarTiers{ReqID: reqID, Tiers: tiers}, r.Err()
}

func decodeFamilyCodes(r *Reader) (ibtws.Event, error) {
	n := r.Int()
	codes := make([]ibtws.FamilyCode, 0, n)
	for i := int32(0); i < n; i++ {
		codes = append(codes, ibtws.FamilyCode{AccountID: r.String(), FamilyCode: r.String()})
	}
	return &ibtws.FamilyCodes{Codes: codes}, r.Err()
}

func decodeSymbolSamples(r *Reader) (ibtws.Event, error) {
	reqID := r.Int()
	n := r.Int()
	descs := make([]ibtws.ContractDescription, 0, n)
	for i := int32(0); i < n; i++ {
		var c ibtws.Contract
		c.ContractID = r.Int()
		c.Symbol = r.String()
		c.SecType = ibtws.OtherSecType(r.String())
		c.PrimaryExchange = r.String()
		c.Currency = r.String()
		derivCount := r.Int()
		derivs := make([]string, 0, derivCount)
		for j := int32(0); j < derivCount; j++ {
			derivs = append(derivs, r.String())
		}
		c.Description = r.String()
		c.IssuerId = r.String()
		descs = append(descs, ibtws.ContractDescription{Contract: c, DerivativeSecTypes: derivs})
	}
	return &ibtws.SymbolSamples{ReqID: reqID, Descriptions: descs}, r.Err()
}

func decodeMktDepthExchanges(r *Reader) (ibtws.Event, error) {
	n := r.Int()
	descs := make([]ibtws.DepthMktDataDescription, 0, n)
	for i := int32(0); i < n; i++ {
		descs = append(descs, ibtws.DepthMktDataDescription{
			Exchange:        r.String(),
			SecType:         ibtws.OtherSecType(r.String()),
			ListingExchange: r.String(),
			ServiceDataType: r.String(),
			AggGroup:        r.IntMax(),
		})
	}
	return &ibtws.MktDepthExchanges{Descriptions: descs}, r.Err()
}

func decodeSmartComponents(r *Reader) (ibtws.Event, error) {
	reqID := r.Int()
	n := r.Int()
	comps := make([]ibtws.SmartComponent, 0, n)
	for i := int32(0); i < n; i++ {
		comps = append(comps, ibtws.SmartComponent{BitNumber: r.Int(), Exchange: r.String(), ExchangeLetter: r.String()})
	}
	return &ibtws.SmartComponents{ReqID: reqID, Components: comps}, r.Err()
}

func decodeNewsProviders(r *Reader) (ibtws.Event, error) {
	n := r.Int()
	providers := make([]ibtws.NewsProvider, 0, n)
	for i := int32(0); i < n; i++ {
		providers = append(providers, ibtws.NewsProvider{Code: r.String(), Name: r.String()})
	}
	return &ibtws.NewsProviders{Providers: providers}, r.Err()
}

func decodeMarketRule(r *Reader) (ibtws.Event, error) {
	ruleID := r.Int()
	n := r.Int()
	incs := make([]ibtws.PriceIncrement, 0, n)
	for i := int32(0); i < n; i++ {
		incs = append(incs, ibtws.PriceIncrement{LowEdge: r.Float(), Increment: r.Float()})
	}
	return &ibtws.MarketRule{MarketRuleID: ruleID, PriceIncrements: incs}, r.Err()
}

func decodeHistoricalDataUpdate(r *Reader) (ibtws.Event, error) {
	reqID := r.Int()
	bar := ibtws.Bar{
		BarCount: r.Int(),
		Time:     r.String(),
		Close:    r.Float(),
		Open:     r.Float(),
		High:     r.Float(),
		Low:      r.Float(),
		WAP:      r.Decimal(),
		Volume:   r.Decimal(),
	}
	return &ibtws.HistoricalDataUpdate{ReqID: reqID, Bar: bar}, r.Err()
}

func decodeHeadTimestamp(r *Reader) (ibtws.Event, error) {
	return &ibtws.HeadTimestamp{ReqID: r.Int(), HeadTimestamp: r.String()}, r.Err()
}

func decodeHistogramData(r *Reader) (ibtws.Event, error) {
	reqID := r.Int()
	n := r.Int()
	entries := make([]ibtws.HistogramEntry, 0, n)
	for i := int32(0); i < n; i++ {
		entries = append(entries, ibtws.HistogramEntry{Price: r.Float(), Size: r.Decimal()})
	}
	return &ibtws.HistogramData{ReqID: reqID, Entries: entries}, r.Err()
}

func decodeHistoricalTicks(r *Reader) (ibtws.Event, error) {
	reqID := r.Int()
	n := r.Int()
	ticks := make([]ibtws.HistoricalTickMidpoint, 0, n)
	for i := int32(0); i < n; i++ {
		ticks = append(ticks, ibtws.HistoricalTickMidpoint{Time: r.Int64(), Price: r.Float()})
	}
	done := r.Bool()
	return &ibtws.HistoricalTicksEvent{ReqID: reqID, Ticks: ticks, Done: done}, r.Err()
}

func decodeHistoricalTicksBidAsk(r *Reader) (ibtws.Event, error) {
	reqID := r.Int()
	n := r.Int()
	ticks := make([]ibtws.HistoricalTickBidAsk, 0, n)
	for i := int32(0); i < n; i++ {
		mask := r.Int()
		ticks = append(ticks, ibtws.HistoricalTickBidAsk{
			Time:        r.Int64(),
			BidPastLow:  mask&0x1 != 0,
			AskPastHigh: mask&0x2 != 0,
			PriceBid:    r.Float(),
			PriceAsk:    r.Float(),
			SizeBid:     r.Decimal(),
			SizeAsk:     r.Decimal(),
		})
	}
	done := r.Bool()
	return &ibtws.HistoricalTicksBidAskEvent{ReqID: reqID, Ticks: ticks, Done: done}, r.Err()
}

func decodeHistoricalTicksLast(r *Reader) (ibtws.Event, error) {
	reqID := r.Int()
	n := r.Int()
	ticks := make([]ibtws.HistoricalTickLast, 0, n)
	for i := int32(0); i < n; i++ {
		mask := r.Int()
		ticks = append(ticks, ibtws.HistoricalTickLast{
			Time:              r.Int64(),
			PastLimit:         mask&0x1 != 0,
			Unreported:        mask&0x2 != 0,
			Price:             r.Float(),
			Size:              r.Decimal(),
			Exchange:          r.String(),
			SpecialConditions: r.String(),
		})
	}
	done := r.Bool()
	return &ibtws.HistoricalTicksLastEvent{ReqID: reqID, Ticks: ticks, Done: done}, r.Err()
}

func decodeHistoricalSchedule(r *Reader) (ibtws.Event, error) {
	reqID := r.Int()
	start := r.String()
	end := r.String()
	tz := r.String()
	n := r.Int()
	sessions := make([]ibtws.HistoricalSession, 0, n)
	for i := int32(0); i < n; i++ {
		sessions = append(sessions, ibtws.HistoricalSession{StartDateTime: r.String(), EndDateTime: r.String(), RefDate: r.String()})
	}
	return &ibtws.HistoricalSchedule{ReqID: reqID, StartDateTime: start, EndDateTime: end, TimeZone: tz, Sessions: sessions}, r.Err()
}

// decodeTickByTick dispatches on the wire tick-type discriminant, since
// Last/AllLast, BidAsk and MidPoint each carry a different payload shape
// after the shared reqId/tickType/time prefix (spec.md §4.4's tagged-union
// convention, same pattern as OrderCondition).
func decodeTickByTick(r *Reader) (ibtws.Event, error) {
	reqID := r.Int()
	tickType := r.Int()
	t := r.Int64()
	ev := &ibtws.TickByTick{ReqID: reqID}
	switch tickType {
	case 1, 2: // Last, AllLast
		price := r.Float()
		size := r.Decimal()
		mask := r.Int()
		exchange := r.String()
		specialConditions := r.String()
		ev.Last = &ibtws.HistoricalTickLast{
			Time: t, Price: price, Size: size, Exchange: exchange, SpecialConditions: specialConditions,
			PastLimit: mask&0x1 != 0, Unreported: mask&0x2 != 0,
		}
		ev.LastAttrib = ibtws.TickAttribLast{PastLimit: mask&0x1 != 0, Unreported: mask&0x2 != 0}
	case 3: // BidAsk
		bidPrice := r.Float()
		askPrice := r.Float()
		bidSize := r.Decimal()
		askSize := r.Decimal()
		mask := r.Int()
		ev.BidAsk = &ibtws.HistoricalTickBidAsk{
			Time: t, PriceBid: bidPrice, PriceAsk: askPrice, SizeBid: bidSize, SizeAsk: askSize,
			BidPastLow: mask&0x1 != 0, AskPastHigh: mask&0x2 != 0,
		}
		ev.BidAskAttrib = ibtws.TickAttribBidAsk{BidPastLow: mask&0x1 != 0, AskPastHigh: mask&0x2 != 0}
	case 4: // MidPoint
		ev.MidpointPrice = r.Float()
		ev.IsMidpoint = true
	}
	return ev, r.Err()
}

func decodeMarketDepth(r *Reader) (ibtws.Event, error) {
	_ = r.String() // version
	return &ibtws.MarketDepth{
		ReqID:     r.Int(),
		Position:  r.Int(),
		Operation: r.Int(),
		Side:      r.Int(),
		Price:     r.Float(),
		Size:      r.Float(),
	}, r.Err()
}

func decodeMarketDepthL2(r *Reader) (ibtws.Event, error) {
	_ = r.String() // version
	reqID := r.Int()
	position := r.Int()
	marketMaker := r.String()
	operation := r.Int()
	side := r.Int()
	price := r.Float()
	size := r.Float()
	isSmartDepth := false
	if r.HasMore() {
		isSmartDepth = r.Bool()
	}
	return &ibtws.MarketDepthL2{
		ReqID: reqID, Position: position, MarketMaker: marketMaker, Operation: operation,
		Side: side, Price: price, Size: size, IsSmartDepth: isSmartDepth,
	}, r.Err()
}

func decodeScannerParameters(r *Reader) (ibtws.Event, error) {
	_ = r.String() // version
	return &ibtws.ScannerParameters{XML: r.String()}, r.Err()
}

func decodeScannerData(r *Reader) (ibtws.Event, error) {
	_ = r.String() // version
	reqID := r.Int()
	n := r.Int()
	items := make([]ibtws.ScannerDataItem, 0, n)
	for i := int32(0); i < n; i++ {
		rank := r.Int()
		details := readContractDetails(r)
		item := ibtws.ScannerDataItem{
			Rank: rank, ContractDetails: details,
			Distance:   r.String(),
			Benchmark:  r.String(),
			Projection: r.String(),
			LegsStr:    r.String(),
		}
		items = append(items, item)
	}
	return &ibtws.ScannerData{ReqID: reqID, Items: items}, r.Err()
}

func decodeNewsBulletins(r *Reader) (ibtws.Event, error) {
	return &ibtws.NewsBulletins{
		MsgID:    r.Int(),
		Type:     r.Int(),
		Message:  r.String(),
		Exchange: r.String(),
	}, r.Err()
}

func decodeNewsArticle(r *Reader) (ibtws.Event, error) {
	return &ibtws.NewsArticle{
		ReqID:       r.Int(),
		ArticleType: r.Int(),
		ArticleText: r.String(),
	}, r.Err()
}

func decodeTickNews(r *Reader) (ibtws.Event, error) {
	return &ibtws.TickNews{
		ReqID:        r.Int(),
		Timestamp:    r.Int64(),
		ProviderCode: r.String(),
		ArticleID:    r.String(),
		Headline:     r.String(),
		ExtraData:    r.String(),
	}, r.Err()
}

func decodeHistoricalNews(r *Reader) (ibtws.Event, error) {
	return &ibtws.HistoricalNews{
		ReqID:        r.Int(),
		Time:         r.String(),
		ProviderCode: r.String(),
		ArticleID:    r.String(),
		Headline:     r.String(),
	}, r.Err()
}

func decodeHistoricalNewsEnd(r *Reader) (ibtws.Event, error) {
	return &ibtws.HistoricalNewsEnd{ReqID: r.Int(), HasMore: r.Bool()}, r.Err()
}

func decodeDeltaNeutralValidation(r *Reader) (ibtws.Event, error) {
	reqID := r.Int()
	return &ibtws.DeltaNeutralValidation{
		ReqID: reqID,
		Contract: ibtws.DeltaNeutralContract{
			ContractID: r.Int(),
			Delta:      r.Float(),
			Price:      r.Float(),
		},
	}, r.Err()
}

func decodeReceiveFA(r *Reader) (ibtws.Event, error) {
	return &ibtws.ReceiveFA{DataType: ibtws.FaDataTypeFromInt32(r.Int()), XML: r.String()}, r.Err()
}

func decodeReplaceFAEnd(r *Reader) (ibtws.Event, error) {
	return &ibtws.ReplaceFAEnd{ReqID: r.Int(), Text: r.String()}, r.Err()
}

func decodeVerifyMessageAPI(r *Reader) (ibtws.Event, error) {
	return &ibtws.VerifyMessageAPI{APIData: r.String()}, r.Err()
}

func decodeVerifyCompleted(r *Reader) (ibtws.Event, error) {
	return &ibtws.VerifyCompleted{IsSuccessful: r.Bool(), ErrorText: r.String()}, r.Err()
}

func decodeVerifyAndAuthMessageAPI(r *Reader) (ibtws.Event, error) {
	return &ibtws.VerifyAndAuthMessageAPI{APIData: r.String(), XyzChallenge: r.String()}, r.Err()
}

func decodeVerifyAndAuthCompleted(r *Reader) (ibtws.Event, error) {
	return &ibtws.VerifyAndAuthCompleted{IsSuccessful: r.Bool(), ErrorText: r.String()}, r.Err()
}

func decodeDisplayGroupList(r *Reader) (ibtws.Event, error) {
	return &ibtws.DisplayGroupList{ReqID: r.Int(), Groups: r.String()}, r.Err()
}

func decodeDisplayGroupUpdated(r *Reader) (ibtws.Event, error) {
	return &ibtws.DisplayGroupUpdated{ReqID: r.Int(), ContractInfo: r.String()}, r.Err()
}

func decodeRerouteMktDataReq(r *Reader) (ibtws.Event, error) {
	return &ibtws.RerouteMktDataReq{ReqID: r.Int(), ConId: r.Int(), Exchange: r.String()}, r.Err()
}

func decodeRerouteMktDepthReq(r *Reader) (ibtws.Event, error) {
	return &ibtws.RerouteMktDepthReq{ReqID: r.Int(), ConId: r.Int(), Exchange: r.String()}, r.Err()
}

func decodeWshMetaData(r *Reader) (ibtws.Event, error) {
	return &ibtws.WshMetaData{ReqID: r.Int(), DataJSON: r.String()}, r.Err()
}

func decodeWshEventData(r *Reader) (ibtws.Event, error) {
	return &ibtws.WshEventData{ReqID: r.Int(), DataJSON: r.String()}, r.Err()
}

func decodeUserInfo(r *Reader) (ibtws.Event, error) {
	return &ibtws.UserInfo{ReqID: r.Int(), WhiteBrandingID: r.String()}, r.Err()
}

func decodeFundamentalData(r *Reader) (ibtws.Event, error) {
	_ = r.String() // version
	return &ibtws.FundamentalData{ReqID: r.Int(), Data: r.String()}, r.Err()
}

// decodeOpenOrder reads the order ID, the core contract fields
// (readContractCore), the main order fields (action through orderRef, then
// clientId, permId, outsideRth, hidden, discretionaryAmt, goodAfterTime,
// goodTillDate, rule80A) and the OrderState's Status; the institutional/
// algo/combo sections of the full ~200-field record are not read.
func decodeOpenOrder(r *Reader) (ibtws.Event, error) {
	orderID := r.Int()
	c := readContractCore(r)
	var ord ibtws.Order
	ord.OrderID = orderID
	ord.Action = ibtws.OtherAction(r.String())
	ord.TotalQuantity = r.Decimal()
	ord.OrderType = ibtws.OtherOrderType(r.String())
	ord.LmtPrice = r.FloatMax()
	ord.AuxPrice = r.FloatMax()
	ord.TIF = ibtws.OtherTIF(r.String())
	ord.OCAGroup = r.String()
	ord.Account = r.String()
	ord.OpenClose = r.String()
	ord.Origin = ibtws.OriginFromInt32(r.Int())
	ord.OrderRef = r.String()
	ord.ClientID = r.Int()
	ord.PermID = r.Int64()
	ord.OutsideRTH = r.Bool()
	ord.Hidden = r.Bool()
	ord.DiscretionaryAmt = r.Float()
	ord.GoodAfterTime = r.String()
	_ = r.String() // sharesAllocation, deprecated field still present on the wire
	ord.GoodTillDate = r.String()
	ord.Rule80A = r.String()
	var state ibtws.OrderState
	state.Status = r.String()
	return &ibtws.OpenOrder{OrderID: orderID, Contract: c, Order: ord, State: state}, r.Err()
}
