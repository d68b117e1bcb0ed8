// Copyright (c) 2024-2026 Neomantra Corp

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/neomantra/ymdflag"
	"github.com/spf13/cobra"

	"github.com/riverrun-quant/ibtws-go"
	"github.com/riverrun-quant/ibtws-go/session"
)

func newHistCmd() *cobra.Command {
	var addr, symbol, barSize, whatToShow string
	var clientID int32
	var duration time.Duration

	cmd := &cobra.Command{
		Use:   "hist",
		Short: "Request a batch of historical bars and print them",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), duration)
			defer cancel()

			cl, err := session.Connect(ctx, session.Config{Addr: addr, ClientID: clientID})
			if err != nil {
				return err
			}
			defer cl.Disconnect()

			reqID := cl.NextRequestID()
			endYMD := ymdflag.TimeToYMD(time.Now().UTC())
			ct := ibtws.Contract{Symbol: symbol, SecType: ibtws.SecTypeStock, Currency: "USD", Exchange: "SMART"}
			if err := cl.ReqHistoricalData(reqID, ct, fmt.Sprintf("%d 00:00:00 UTC", endYMD), "1 D", barSize, whatToShow, true, 1, false, nil); err != nil {
				return err
			}

			for ev := range cl.Events() {
				switch e := ev.(type) {
				case *ibtws.HistoricalData:
					for _, bar := range e.Bars {
						fmt.Printf("%s  O=%.2f H=%.2f L=%.2f C=%.2f V=%s\n", bar.Time, bar.Open, bar.High, bar.Low, bar.Close, bar.Volume.String())
					}
					return nil
				case *ibtws.ErrorEvent:
					if e.ReqID == reqID {
						return fmt.Errorf("tws error %d: %s", e.Code, e.Message)
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:7497", "TWS/Gateway host:port")
	cmd.Flags().Int32Var(&clientID, "client-id", 0, "API client id")
	cmd.Flags().StringVar(&symbol, "symbol", "AAPL", "underlying symbol")
	cmd.Flags().StringVar(&barSize, "bar-size", "1 day", "bar size setting")
	cmd.Flags().StringVar(&whatToShow, "what-to-show", "TRADES", "whatToShow setting")
	cmd.Flags().DurationVar(&duration, "timeout", 15*time.Second, "overall request timeout")
	return cmd
}
