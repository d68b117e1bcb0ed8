// Copyright (c) 2024-2026 Neomantra Corp
//
// Protocol message-ID catalogue. Ported from the publicly documented
// TWS API message IDs (EClient.java / EDecoder.java constants), following
// the teacher's publishers.go convention of one typed integer constant per
// protocol value with a doc comment per entry.

package ibtws

// OutgoingID identifies an outgoing (client -> server) message.
type OutgoingID int32

const (
	OutReqMktData                   OutgoingID = 1
	OutCancelMktData                OutgoingID = 2
	OutPlaceOrder                   OutgoingID = 3
	OutCancelOrder                  OutgoingID = 4
	OutReqOpenOrders                OutgoingID = 5
	OutReqAcctData                  OutgoingID = 6
	OutReqExecutions                OutgoingID = 7
	OutReqIDs                       OutgoingID = 8
	OutReqContractData              OutgoingID = 9
	OutReqMktDepth                  OutgoingID = 10
	OutCancelMktDepth                OutgoingID = 11
	OutReqNewsBulletins              OutgoingID = 12
	OutCancelNewsBulletins           OutgoingID = 13
	OutSetServerLoglevel             OutgoingID = 14
	OutReqAutoOpenOrders             OutgoingID = 15
	OutReqAllOpenOrders              OutgoingID = 16
	OutReqManagedAccts               OutgoingID = 17
	OutReqFA                         OutgoingID = 18
	OutReplaceFA                     OutgoingID = 19
	OutReqHistoricalData             OutgoingID = 20
	OutExerciseOptions               OutgoingID = 21
	OutReqScannerSubscription        OutgoingID = 22
	OutCancelScannerSubscription     OutgoingID = 23
	OutReqScannerParameters          OutgoingID = 24
	OutCancelHistoricalData          OutgoingID = 25
	OutReqCurrentTime                OutgoingID = 49
	OutReqRealTimeBars               OutgoingID = 50
	OutCancelRealTimeBars            OutgoingID = 51
	OutReqFundamentalData            OutgoingID = 52
	OutCancelFundamentalData         OutgoingID = 53
	OutReqCalcImpliedVolat           OutgoingID = 54
	OutReqCalcOptionPrice            OutgoingID = 55
	OutCancelCalcImpliedVolat        OutgoingID = 56
	OutCancelCalcOptionPrice         OutgoingID = 57
	OutReqGlobalCancel               OutgoingID = 58
	OutReqMarketDataType             OutgoingID = 59
	OutReqPositions                  OutgoingID = 61
	OutReqAccountSummary             OutgoingID = 62
	OutCancelAccountSummary          OutgoingID = 63
	OutCancelPositions               OutgoingID = 64
	OutVerifyRequest                 OutgoingID = 65
	OutVerifyMessage                 OutgoingID = 66
	OutQueryDisplayGroups            OutgoingID = 67
	OutSubscribeToGroupEvents        OutgoingID = 68
	OutUpdateDisplayGroup            OutgoingID = 69
	OutUnsubscribeFromGroupEvents    OutgoingID = 70
	OutStartAPI                      OutgoingID = 71
	OutVerifyAndAuthRequest          OutgoingID = 72
	OutVerifyAndAuthMessage          OutgoingID = 73
	OutReqPositionsMulti             OutgoingID = 74
	OutCancelPositionsMulti          OutgoingID = 75
	OutReqAccountUpdatesMulti        OutgoingID = 76
	OutCancelAccountUpdatesMulti     OutgoingID = 77
	OutReqSecDefOptParams            OutgoingID = 78
	OutReqSoftDollarTiers            OutgoingID = 79
	OutReqFamilyCodes                OutgoingID = 80
	OutReqMatchingSymbols            OutgoingID = 81
	OutReqMktDepthExchanges          OutgoingID = 82
	OutReqSmartComponents            OutgoingID = 83
	OutReqNewsArticle                OutgoingID = 84
	OutReqNewsProviders              OutgoingID = 85
	OutReqHistoricalNews             OutgoingID = 86
	OutReqHeadTimestamp              OutgoingID = 87
	OutReqHistogramData              OutgoingID = 88
	OutCancelHistogramData           OutgoingID = 89
	OutCancelHeadTimestamp           OutgoingID = 90
	OutReqMarketRule                 OutgoingID = 91
	OutReqPnl                        OutgoingID = 92
	OutCancelPnl                     OutgoingID = 93
	OutReqPnlSingle                  OutgoingID = 94
	OutCancelPnlSingle               OutgoingID = 95
	OutReqHistoricalTicks            OutgoingID = 96
	OutReqTickByTickData             OutgoingID = 97
	OutCancelTickByTickData          OutgoingID = 98
	OutReqCompletedOrders            OutgoingID = 99
	OutReqWshMetaData                OutgoingID = 100
	OutCancelWshMetaData             OutgoingID = 101
	OutReqWshEventData               OutgoingID = 102
	OutCancelWshEventData            OutgoingID = 103
	OutReqUserInfo                   OutgoingID = 104
)

// IncomingID identifies an incoming (server -> client) message.
type IncomingID int32

const (
	InTickPrice                         IncomingID = 1
	InTickSize                          IncomingID = 2
	InOrderStatus                       IncomingID = 3
	InErrMsg                            IncomingID = 4
	InOpenOrder                         IncomingID = 5
	InAcctValue                         IncomingID = 6
	InPortfolioValue                    IncomingID = 7
	InAcctUpdateTime                    IncomingID = 8
	InNextValidID                       IncomingID = 9
	InContractData                      IncomingID = 10
	InExecutionData                     IncomingID = 11
	InMarketDepth                       IncomingID = 12
	InMarketDepthL2                     IncomingID = 13
	InNewsBulletins                     IncomingID = 14
	InManagedAccts                      IncomingID = 15
	InReceiveFA                         IncomingID = 16
	InHistoricalData                    IncomingID = 17
	InBondContractData                  IncomingID = 18
	InScannerParameters                 IncomingID = 19
	InScannerData                       IncomingID = 20
	InTickOptionComputation             IncomingID = 21
	InTickGeneric                       IncomingID = 45
	InTickString                        IncomingID = 46
	InTickEFP                           IncomingID = 47
	InCurrentTime                       IncomingID = 49
	InRealTimeBars                      IncomingID = 50
	InFundamentalData                   IncomingID = 51
	InContractDataEnd                   IncomingID = 52
	InOpenOrderEnd                      IncomingID = 53
	InAcctDownloadEnd                   IncomingID = 54
	InExecutionDataEnd                  IncomingID = 55
	InDeltaNeutralValidation            IncomingID = 56
	InTickSnapshotEnd                   IncomingID = 57
	InMarketDataType                    IncomingID = 58
	InCommissionAndFeesReport           IncomingID = 59
	InPositionData                      IncomingID = 61
	InPositionEnd                       IncomingID = 62
	InAccountSummary                    IncomingID = 63
	InAccountSummaryEnd                 IncomingID = 64
	InVerifyMessageAPI                  IncomingID = 65
	InVerifyCompleted                   IncomingID = 66
	InDisplayGroupList                  IncomingID = 67
	InDisplayGroupUpdated               IncomingID = 68
	InVerifyAndAuthMessageAPI           IncomingID = 69
	InVerifyAndAuthCompleted            IncomingID = 70
	InPositionMulti                     IncomingID = 71
	InPositionMultiEnd                  IncomingID = 72
	InAccountUpdateMulti                IncomingID = 73
	InAccountUpdateMultiEnd             IncomingID = 74
	InSecurityDefinitionOptionParameter IncomingID = 75
	InSecDefOptParameterEnd             IncomingID = 76
	InSoftDollarTiers                   IncomingID = 77
	InFamilyCodes                       IncomingID = 78
	InSymbolSamples                     IncomingID = 79
	InMktDepthExchanges                 IncomingID = 80
	InTickReqParams                     IncomingID = 81
	InSmartComponents                   IncomingID = 82
	InNewsArticle                       IncomingID = 83
	InTickNews                          IncomingID = 84
	InNewsProviders                     IncomingID = 85
	InHistoricalNews                    IncomingID = 86
	InHistoricalNewsEnd                 IncomingID = 87
	InHeadTimestamp                     IncomingID = 88
	InHistogramData                     IncomingID = 89
	InHistoricalDataUpdate              IncomingID = 90
	InRerouteMktDataReq                 IncomingID = 91
	InRerouteMktDepthReq                IncomingID = 92
	InMarketRule                        IncomingID = 93
	InPnl                               IncomingID = 94
	InPnlSingle                         IncomingID = 95
	InHistoricalTicks                   IncomingID = 96
	InHistoricalTicksBidAsk             IncomingID = 97
	InHistoricalTicksLast               IncomingID = 98
	InTickByTick                        IncomingID = 99
	InOrderBound                        IncomingID = 100
	InCompletedOrder                    IncomingID = 101
	InCompletedOrdersEnd                IncomingID = 102
	InReplaceFAEnd                      IncomingID = 103
	InWshMetaData                       IncomingID = 104
	InWshEventData                      IncomingID = 105
	InHistoricalSchedule                IncomingID = 106
	InUserInfo                          IncomingID = 107
)

// ProtobufMsgID is the distinguished gate: any outgoing or incoming message
// whose ID, read as a raw integer, exceeds this value is protobuf-encoded;
// the real message type is raw_id - ProtobufMsgID (spec.md §4.1).
const ProtobufMsgID = 200

// The 6 incoming message types with a protobuf schema (spec.md §4.3).
var ProtobufIncomingIDs = map[IncomingID]bool{
	InOrderStatus:      true,
	InErrMsg:           true,
	InOpenOrder:        true,
	InExecutionData:    true,
	InOpenOrderEnd:     true,
	InExecutionDataEnd: true,
}

// The 4 outgoing message types with a protobuf schema (spec.md §4.3).
var ProtobufOutgoingIDs = map[OutgoingID]bool{
	OutPlaceOrder:      true,
	OutCancelOrder:     true,
	OutReqExecutions:   true,
	OutReqGlobalCancel: true,
}
