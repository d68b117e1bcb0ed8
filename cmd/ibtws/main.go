// Copyright (c) 2024-2026 Neomantra Corp
//
// ibtws is a small command-line client for exercising a TWS/Gateway
// connection, in the teacher's cmd/dbn-go-live convention: a cobra root
// command with subcommands for connecting, capturing raw frames, and
// watching the live event stream in a terminal UI.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "ibtws",
		Short: "Command-line client for Interactive Brokers TWS/Gateway",
	}
	root.AddCommand(newConnectCmd())
	root.AddCommand(newCaptureCmd())
	root.AddCommand(newTUICmd())
	root.AddCommand(newHistCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
