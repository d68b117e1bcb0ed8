// Copyright (c) 2024-2026 Neomantra Corp
//
// requests_ext.go: the remainder of the outgoing request surface not carried
// in requests.go — fundamental data, option pricing calculators, reference
// data, news, FA configuration, verification/auth handshakes, display-group
// linking, tick-by-tick, WSH calendar, and multi-account streaming. Same
// Builder/version-gate conventions as requests.go.

package session

import (
	"github.com/riverrun-quant/ibtws-go"
	"github.com/riverrun-quant/ibtws-go/codec"
)

// --- fundamental data ---

// ReqFundamentalData requests an XML fundamentals report for a contract.
func (c *Client) ReqFundamentalData(reqID int32, ct ibtws.Contract, reportType string, fundamentalDataOptions []ibtws.TagValue) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutReqFundamentalData, c.transport.ServerVersion, false)
	b.Int(2)
	b.Int(reqID)
	b.Int(ct.ContractID)
	b.String(ct.Symbol)
	b.String(ct.SecType.String())
	b.String(ct.Exchange)
	b.String(ct.PrimaryExchange)
	b.String(ct.Currency)
	b.String(ct.LocalSymbol)
	b.String(reportType)
	b.TagValueList(fundamentalDataOptions)
	return c.send(b)
}

// CancelFundamentalData cancels a ReqFundamentalData request.
func (c *Client) CancelFundamentalData(reqID int32) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutCancelFundamentalData, c.transport.ServerVersion, false)
	b.Int(1)
	b.Int(reqID)
	return c.send(b)
}

// --- option pricing calculators ---

// ReqCalcImpliedVolat asks the server to back out implied volatility from an
// option price.
func (c *Client) ReqCalcImpliedVolat(reqID int32, ct ibtws.Contract, optionPrice, underPrice float64, implVolOptions []ibtws.TagValue) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutReqCalcImpliedVolat, c.transport.ServerVersion, false)
	b.Int(3)
	b.Int(reqID)
	writeContract(b, ct)
	b.Float(optionPrice)
	b.Float(underPrice)
	b.TagValueList(implVolOptions)
	return c.send(b)
}

// CancelCalcImpliedVolat cancels a ReqCalcImpliedVolat request.
func (c *Client) CancelCalcImpliedVolat(reqID int32) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutCancelCalcImpliedVolat, c.transport.ServerVersion, false)
	b.Int(1)
	b.Int(reqID)
	return c.send(b)
}

// ReqCalcOptionPrice asks the server to price an option from a volatility
// and underlying price.
func (c *Client) ReqCalcOptionPrice(reqID int32, ct ibtws.Contract, volatility, underPrice float64, optPrcOptions []ibtws.TagValue) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutReqCalcOptionPrice, c.transport.ServerVersion, false)
	b.Int(3)
	b.Int(reqID)
	writeContract(b, ct)
	b.Float(volatility)
	b.Float(underPrice)
	b.TagValueList(optPrcOptions)
	return c.send(b)
}

// CancelCalcOptionPrice cancels a ReqCalcOptionPrice request.
func (c *Client) CancelCalcOptionPrice(reqID int32) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutCancelCalcOptionPrice, c.transport.ServerVersion, false)
	b.Int(1)
	b.Int(reqID)
	return c.send(b)
}

// --- reference data ---

// ReqMktDepthExchanges requests the list of exchanges supporting depth-of-book.
func (c *Client) ReqMktDepthExchanges() error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutReqMktDepthExchanges, c.transport.ServerVersion, false)
	return c.send(b)
}

// ReqSmartComponents requests the exchange components behind a SMART
// bbo-exchange code returned by TickReqParams.
func (c *Client) ReqSmartComponents(reqID int32, bboExchange string) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutReqSmartComponents, c.transport.ServerVersion, false)
	b.Int(reqID)
	b.String(bboExchange)
	return c.send(b)
}

// ReqNewsProviders requests the list of configured news sources.
func (c *Client) ReqNewsProviders() error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutReqNewsProviders, c.transport.ServerVersion, false)
	return c.send(b)
}

// ReqNewsArticle requests the full body of one news article.
func (c *Client) ReqNewsArticle(reqID int32, providerCode, articleID string, newsArticleOptions []ibtws.TagValue) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutReqNewsArticle, c.transport.ServerVersion, false)
	b.Int(reqID)
	b.String(providerCode)
	b.String(articleID)
	b.TagValueList(newsArticleOptions)
	return c.send(b)
}

// ReqHistoricalNews requests historical news headlines for a contract.
func (c *Client) ReqHistoricalNews(reqID int32, conId int32, providerCodes, startDateTime, endDateTime string, totalResults int32, historicalNewsOptions []ibtws.TagValue) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutReqHistoricalNews, c.transport.ServerVersion, false)
	b.Int(reqID)
	b.Int(conId)
	b.String(providerCodes)
	b.String(startDateTime)
	b.String(endDateTime)
	b.Int(totalResults)
	b.TagValueList(historicalNewsOptions)
	return c.send(b)
}

// CancelHeadTimestamp cancels a ReqHeadTimestamp request.
func (c *Client) CancelHeadTimestamp(reqID int32) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutCancelHeadTimestamp, c.transport.ServerVersion, false)
	b.Int(reqID)
	return c.send(b)
}

// ReqHistogramData requests a volume histogram for a contract.
func (c *Client) ReqHistogramData(reqID int32, ct ibtws.Contract, useRTH bool, period string) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutReqHistogramData, c.transport.ServerVersion, false)
	b.Int(reqID)
	writeContract(b, ct)
	b.Bool(useRTH)
	b.String(period)
	return c.send(b)
}

// CancelHistogramData cancels a ReqHistogramData request.
func (c *Client) CancelHistogramData(reqID int32) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutCancelHistogramData, c.transport.ServerVersion, false)
	b.Int(reqID)
	return c.send(b)
}

// ReqMarketRule requests the price-increment schedule for one market rule ID,
// typically discovered via ContractDetails.MarketRuleIds.
func (c *Client) ReqMarketRule(marketRuleID int32) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutReqMarketRule, c.transport.ServerVersion, false)
	b.Int(marketRuleID)
	return c.send(b)
}

// ReqSoftDollarTiers requests the soft-dollar tiers available to reqID.
func (c *Client) ReqSoftDollarTiers(reqID int32) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutReqSoftDollarTiers, c.transport.ServerVersion, false)
	b.Int(reqID)
	return c.send(b)
}

// --- pnl single ---

// ReqPnLSingle subscribes to position-level daily/unrealized/realized PnL.
func (c *Client) ReqPnLSingle(reqID int32, account, modelCode string, conId int32) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutReqPnlSingle, c.transport.ServerVersion, false)
	b.Int(reqID)
	b.String(account)
	b.String(modelCode)
	b.Int(conId)
	return c.send(b)
}

// CancelPnLSingle cancels a ReqPnLSingle subscription.
func (c *Client) CancelPnLSingle(reqID int32) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutCancelPnlSingle, c.transport.ServerVersion, false)
	b.Int(reqID)
	return c.send(b)
}

// --- tick-by-tick ---

// ReqTickByTickData subscribes to raw tick-by-tick data ("Last", "AllLast",
// "BidAsk" or "MidPoint").
func (c *Client) ReqTickByTickData(reqID int32, ct ibtws.Contract, tickType string, numberOfTicks int32, ignoreSize bool) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutReqTickByTickData, c.transport.ServerVersion, false)
	b.Int(reqID)
	writeContract(b, ct)
	b.String(tickType)
	b.Int(numberOfTicks)
	b.Bool(ignoreSize)
	return c.send(b)
}

// CancelTickByTickData cancels a ReqTickByTickData subscription.
func (c *Client) CancelTickByTickData(reqID int32) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutCancelTickByTickData, c.transport.ServerVersion, false)
	b.Int(reqID)
	return c.send(b)
}

// --- WSH calendar ---

// ReqWshMetaData requests the WSH event-calendar metadata document.
func (c *Client) ReqWshMetaData(reqID int32) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutReqWshMetaData, c.transport.ServerVersion, false)
	b.Int(reqID)
	return c.send(b)
}

// CancelWshMetaData cancels a ReqWshMetaData request.
func (c *Client) CancelWshMetaData(reqID int32) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutCancelWshMetaData, c.transport.ServerVersion, false)
	b.Int(reqID)
	return c.send(b)
}

// ReqWshEventData requests WSH calendar events for a contract or watchlist.
func (c *Client) ReqWshEventData(reqID int32, conId int32, fillWatchlist, fillPortfolio, fillCompetitors bool, startDate, endDate string, totalLimit int32) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutReqWshEventData, c.transport.ServerVersion, false)
	b.Int(reqID)
	b.IntMax(conId)
	b.Bool(fillWatchlist)
	b.Bool(fillPortfolio)
	b.Bool(fillCompetitors)
	b.String(startDate)
	b.String(endDate)
	b.IntMax(totalLimit)
	return c.send(b)
}

// CancelWshEventData cancels a ReqWshEventData request.
func (c *Client) CancelWshEventData(reqID int32) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutCancelWshEventData, c.transport.ServerVersion, false)
	b.Int(reqID)
	return c.send(b)
}

// --- financial advisor configuration ---

// ReqFA requests one of the FA configuration documents (groups, profiles,
// or account aliases).
func (c *Client) ReqFA(faDataType ibtws.FaDataType) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutReqFA, c.transport.ServerVersion, false)
	b.Int(1)
	b.Int(int32(faDataType))
	return c.send(b)
}

// ReplaceFA uploads a replacement FA configuration document.
func (c *Client) ReplaceFA(reqID int32, faDataType ibtws.FaDataType, xml string) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutReplaceFA, c.transport.ServerVersion, false)
	b.Int(1)
	b.Int(int32(faDataType))
	b.String(xml)
	if err := c.requireGate(ibtws.GateReplaceFAEnd, "ReplaceFA.ReqID"); err == nil {
		b.Int(reqID)
	}
	return c.send(b)
}

// --- verification / auth handshakes ---

// VerifyRequest begins the CFD/third-party API-key verification handshake.
func (c *Client) VerifyRequest(apiName, apiVersion string) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutVerifyRequest, c.transport.ServerVersion, false)
	b.Int(1)
	b.String(apiName)
	b.String(apiVersion)
	return c.send(b)
}

// VerifyMessage replies to a VerifyMessageAPI challenge.
func (c *Client) VerifyMessage(apiData string) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutVerifyMessage, c.transport.ServerVersion, false)
	b.Int(1)
	b.String(apiData)
	return c.send(b)
}

// VerifyAndAuthRequest begins the combined verify+authenticate handshake.
func (c *Client) VerifyAndAuthRequest(apiName, apiVersion, opaqueIsvKey string) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutVerifyAndAuthRequest, c.transport.ServerVersion, false)
	b.Int(1)
	b.String(apiName)
	b.String(apiVersion)
	b.String(opaqueIsvKey)
	return c.send(b)
}

// VerifyAndAuthMessage replies to a VerifyAndAuthMessageAPI challenge.
func (c *Client) VerifyAndAuthMessage(apiData, xyzResponse string) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutVerifyAndAuthMessage, c.transport.ServerVersion, false)
	b.Int(1)
	b.String(apiData)
	b.String(xyzResponse)
	return c.send(b)
}

// --- display group linking ---

// QueryDisplayGroups requests the list of TWS display groups available to
// link to.
func (c *Client) QueryDisplayGroups(reqID int32) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutQueryDisplayGroups, c.transport.ServerVersion, false)
	b.Int(1)
	b.Int(reqID)
	return c.send(b)
}

// SubscribeToGroupEvents subscribes to contract-selection events for a
// display group.
func (c *Client) SubscribeToGroupEvents(reqID, groupID int32) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutSubscribeToGroupEvents, c.transport.ServerVersion, false)
	b.Int(1)
	b.Int(reqID)
	b.Int(groupID)
	return c.send(b)
}

// UpdateDisplayGroup changes the contract a linked display group shows.
func (c *Client) UpdateDisplayGroup(reqID int32, contractInfo string) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutUpdateDisplayGroup, c.transport.ServerVersion, false)
	b.Int(1)
	b.Int(reqID)
	b.String(contractInfo)
	return c.send(b)
}

// UnsubscribeFromGroupEvents cancels a SubscribeToGroupEvents subscription.
func (c *Client) UnsubscribeFromGroupEvents(reqID int32) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutUnsubscribeFromGroupEvents, c.transport.ServerVersion, false)
	b.Int(1)
	b.Int(reqID)
	return c.send(b)
}

// --- multi-account streaming ---

// ReqAccountUpdatesMulti subscribes to streaming account/portfolio updates
// scoped to a specific model.
func (c *Client) ReqAccountUpdatesMulti(reqID int32, account, modelCode string, ledgerAndNLV bool) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutReqAccountUpdatesMulti, c.transport.ServerVersion, false)
	b.Int(1)
	b.Int(reqID)
	b.String(account)
	b.String(modelCode)
	b.Bool(ledgerAndNLV)
	return c.send(b)
}

// CancelAccountUpdatesMulti cancels a ReqAccountUpdatesMulti subscription.
func (c *Client) CancelAccountUpdatesMulti(reqID int32) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutCancelAccountUpdatesMulti, c.transport.ServerVersion, false)
	b.Int(1)
	b.Int(reqID)
	return c.send(b)
}

// --- misc admin ---

// CancelNewsBulletins cancels a ReqNewsBulletins subscription.
func (c *Client) CancelNewsBulletins() error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutCancelNewsBulletins, c.transport.ServerVersion, false)
	b.Int(1)
	return c.send(b)
}

// SetServerLoglevel sets the server-side API logging verbosity (1-5).
func (c *Client) SetServerLoglevel(level int32) error {
	b := codec.NewBuilder()
	codec.EncodeMsgID(b, ibtws.OutSetServerLoglevel, c.transport.ServerVersion, false)
	b.Int(1)
	b.Int(level)
	return c.send(b)
}
