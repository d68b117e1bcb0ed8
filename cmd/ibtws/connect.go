// Copyright (c) 2024-2026 Neomantra Corp

package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/riverrun-quant/ibtws-go"
	"github.com/riverrun-quant/ibtws-go/session"
)

func newConnectCmd() *cobra.Command {
	var addr string
	var clientID int32

	cmd := &cobra.Command{
		Use:   "connect",
		Short: "Connect to TWS/Gateway and print the negotiated server version",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			cl, err := session.Connect(ctx, session.Config{
				Addr:     addr,
				ClientID: clientID,
				Logger:   slog.Default(),
			})
			if err != nil {
				return err
			}
			defer cl.Disconnect()

			fmt.Printf("connected: server version %d\n", cl.ServerVersion())

			for ev := range cl.Events() {
				if nv, ok := ev.(*ibtws.NextValidID); ok {
					fmt.Printf("next valid order id: %d\n", nv.OrderID)
					cl.SetNextRequestID(nv.OrderID)
					return nil
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:7497", "TWS/Gateway host:port")
	cmd.Flags().Int32Var(&clientID, "client-id", 0, "API client id")
	return cmd
}
