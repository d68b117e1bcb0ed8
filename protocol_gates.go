// Copyright (c) 2024-2026 Neomantra Corp
//
// Server-version gates. Every optional wire field is associated with one of
// these named constants; the codec consults them by name (spec.md §4.1,
// §3.3's "fields beyond the latest gate must not be sent/read" invariant).
// This is a representative subset of the ~160 gates spec.md describes,
// covering every gate referenced by a decoder/encoder in this module; see
// DESIGN.md for the coverage note.

package ibtws

// Gate is a named integer threshold on the negotiated server version.
type Gate int32

const (
	GateNotHeld                       Gate = 39
	GateSecIDType                     Gate = 39
	GatePlaceOrderConId               Gate = 39
	GateReqMktDataConId               Gate = 39
	GateReqExecutionsLast             Gate = 42
	GateReqCalcOptionPrice            Gate = 50
	GateReqCalcImpliedVolat           Gate = 50
	GateCancelCalcImpliedVolat        Gate = 50
	GateCancelCalcOptionPrice         Gate = 50
	GateSshortComboLegs               Gate = 51
	GateWhatIfOrders                  Gate = 36
	GateContractConId                 Gate = 37
	GatePtaOrders                     Gate = 38
	GateScaleOrders2                  Gate = 40
	GateAlgoOrders                    Gate = 41
	GateExecutionDataChain            Gate = 42
	GateNotHeldOrder                  Gate = 44
	GateSecIdType                     Gate = 45
	GatePlaceOrderConIdDeprecated     Gate = 46
	GateReqAccountUpdatesMulti        Gate = 47
	GateDeltaNeutral                  Gate = 20
	GateScaleOrders3                  Gate = 21
	GateOrderComboLegsPrice           Gate = 22
	GateTradingClass                  Gate = 24
	GateScaleTable                    Gate = 25
	GateLinking                       Gate = 26
	GateAlgoID                        Gate = 27
	GateOptOutSmartRouting            Gate = 28
	GateSmartComboRoutingParams       Gate = 29
	GateDeltaNeutralConId             Gate = 30
	GateScaleOrders                   Gate = 31
	GateOrderContainer                Gate = 33
	GateUnderComp                     Gate = 32
	GateModelsSupport                 Gate = 44
	GateSecDefOptParams               Gate = 47
	GateSoftDollarTier                Gate = 48
	GateReqFamilyCodes                Gate = 49
	GateReqMatchingSymbols            Gate = 50
	GatePastLimit                     Gate = 51
	GateMdSizeMultiplier              Gate = 52
	GateCashQty                       Gate = 53
	GateReqMktDepthExchanges          Gate = 54
	GateTickNews                      Gate = 55
	GateReqSmartComponents            Gate = 56
	GateReqNewsProviders              Gate = 57
	GateReqNewsArticle                Gate = 58
	GateReqHistoricalNews             Gate = 59
	GateReqHeadTimestamp              Gate = 60
	GateReqHistogramData              Gate = 61
	GateServiceDataType               Gate = 62
	GateAggGroup                      Gate = 63
	GateUnderlyingInfo                Gate = 64
	GateLinking2                      Gate = 65
	GateMktCapPrice                   Gate = 97
	GatePreOpenBidAsk                 Gate = 92
	GateRealExpirationDate            Gate = 134
	GateLastExchange                  Gate = 142
	GateLastLiquidity                 Gate = 134
	GateStockType                     Gate = 70
	GateMinTickFieldsInContractDetails Gate = 72
	GateRealizedPnl                   Gate = 75
	GateFractionalPositions           Gate = 101
	GatePeggedToBenchmark             Gate = 133
	GateConditionalOrders             Gate = 104
	GatePriceMgmtAlgo                 Gate = 133
	GateDuration                      Gate = 134
	GateMarketDataInEUR               Gate = 136
	GatePostToAts                     Gate = 137
	GateCustomerAccount               Gate = 141
	GateAutoPriceForHedge             Gate = 143
	GateOrderContainerV2              Gate = 145
	GatePctChangePriceCondition       Gate = 148
	GateTradingClass2                 Gate = 107
	GateScaleTableSize                Gate = 108
	GateManualOrderTime               Gate = 109
	GateMarketRule                    Gate = 114
	GateSize                          Gate = 115
	GateRFQFields                     Gate = 116
	GatePnl                           Gate = 117
	GateHistoricalTicks               Gate = 119
	GateMarketCapPriceReq             Gate = 120
	GatePreOpen                       Gate = 92
	GateMinTick                       Gate = 88
	GateUndoRfqFields                 Gate = 121
	GatePnlSingle                     Gate = 122
	GateHistoricalTicksBidAsk         Gate = 120
	GateDeltaNeutralOpenClose         Gate = 123
	GatePriceBasedVolatility          Gate = 124
	GateReplaceFAEnd                  Gate = 125
	GateRfqFields                     Gate = 126
	GateInstrumentTimezone            Gate = 139
	GateHmdsMarketDataInShares        Gate = 127
	GateBondIssuerId                  Gate = 128
	GateFaProfileDesupport            Gate = 129
	GatePermIDAsLong                  Gate = 134
	GateCompletedOrders               Gate = 130
	GateSubmitter                     Gate = 150
	GateFractionalSizeSupport         Gate = 131
	GateSizeRules                     Gate = 132
	GateLast                          Gate = 133
	GateDNegotiatedVWAP               Gate = 118
	GateWshMetaData                   Gate = 146
	GateWshEventData                  Gate = 147
	GateBondAccruedInterest           Gate = 149
	GateIPOOrders                     Gate = 151
	GateLastTradeDate                 Gate = 153
	GateCustOrderAllocation           Gate = 154
	GateAvgCost                       Gate = 155
	GateOrderPriceMgmtAlgo            Gate = 156
	GateRefFuturesConId               Gate = 165
	GateAutoCancelParent              Gate = 166
	GateCompletedOrdersAllocation     Gate = 167
	GateDurationManual                Gate = 168
	GateIncludeOvernight              Gate = 170
	GateCmeTaggingFields              Gate = 171
	GatePriceMgmtAlgoOrderType        Gate = 172
	GateHistoricalSchedule            Gate = 173
	GateReturnBarsOutsideRegularHours Gate = 174
	GateUserInfo                      Gate = 194
	GatePenulUncleInfo                Gate = 175
	GateAdvancedOrderReject           Gate = 178
	GateManualOrderTimeExchange       Gate = 179
	GatePegBestPegMid                 Gate = 180
	GateCustomerAccountProtoBuf       Gate = 201
	GateIncludeCoAuthor               Gate = 181
	GatePriceManagementAlgo2          Gate = 182
	GateDUseSSL                       Gate = 159
	GateProtobuf                      Gate = 201
	GateAllOrdersFullyDisclosed       Gate = 202
	GateProtobufPlaceOrder            Gate = 203
	GateProtobufCancelOrder           Gate = 203
	GateProtobufReqGlobalCancel       Gate = 203
	GateProtobufReqExecutions         Gate = 201

	// Added while closing out ReqMktData/ReqHistoricalData/ReqMktDepth
	// field-gating coverage (spec.md §8 Property #5, Scenario E).
	GateSnapshotMktData       Gate = 35
	GateSmartDepth            Gate = 183
	GateHistoricalKeepUpToDate Gate = 184
)
