// Copyright (c) 2024-2026 Neomantra Corp

package main

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/riverrun-quant/ibtws-go/internal/tui"
	"github.com/riverrun-quant/ibtws-go/session"
)

func newTUICmd() *cobra.Command {
	var addr string
	var clientID int32

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Watch a live event stream in a terminal UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			cl, err := session.Connect(ctx, session.Config{Addr: addr, ClientID: clientID})
			if err != nil {
				return err
			}
			defer cl.Disconnect()

			p := tea.NewProgram(tui.New(cl.Events()))
			_, err = p.Run()
			return err
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:7497", "TWS/Gateway host:port")
	cmd.Flags().Int32Var(&clientID, "client-id", 0, "API client id")
	return cmd
}
