// Copyright (c) 2024-2026 Neomantra Corp
//
// capture writes the frames of a live session that decoded to ibtws.Unknown
// to a zstd-compressed file, each as an 8-byte big-endian header (message ID,
// body length) followed by the raw body bytes; events that decoded to a
// known type are not written.

package main

import (
	"context"
	"encoding/binary"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/klauspost/compress/zstd"
	"github.com/segmentio/encoding/json"
	"github.com/spf13/cobra"

	"github.com/riverrun-quant/ibtws-go"
	"github.com/riverrun-quant/ibtws-go/session"
)

// captureRecord is the JSON-lines sidecar shape written alongside the
// zstd-compressed raw capture, for tooling that wants to grep/jq the
// capture rather than replay the raw frames.
type captureRecord struct {
	MsgID int32  `json:"msg_id"`
	Len   int    `json:"len"`
	Cause string `json:"cause,omitempty"`
}

func newCaptureCmd() *cobra.Command {
	var addr, outPath, jsonPath string
	var clientID int32
	var duration time.Duration

	cmd := &cobra.Command{
		Use:   "capture",
		Short: "Capture a live event stream to a zstd-compressed file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			cl, err := session.Connect(ctx, session.Config{Addr: addr, ClientID: clientID})
			if err != nil {
				return err
			}
			defer cl.Disconnect()

			f, err := os.Create(outPath)
			if err != nil {
				return err
			}
			defer f.Close()

			zw, err := zstd.NewWriter(f)
			if err != nil {
				return err
			}
			defer zw.Close()

			var jsonEnc *json.Encoder
			if jsonPath != "" {
				jf, err := os.Create(jsonPath)
				if err != nil {
					return err
				}
				defer jf.Close()
				jsonEnc = json.NewEncoder(jf)
			}

			var recordCount, totalBytes uint64
			deadline := time.After(duration)
			for {
				select {
				case ev, ok := <-cl.Events():
					if !ok {
						printCaptureSummary(recordCount, totalBytes)
						return nil
					}
					if unk, ok := ev.(*ibtws.Unknown); ok {
						n := writeCaptureRecord(zw, unk.MsgID, unk.RawBytes)
						recordCount++
						totalBytes += n
						if jsonEnc != nil {
							rec := captureRecord{MsgID: unk.MsgID, Len: len(unk.RawBytes)}
							if unk.Cause != nil {
								rec.Cause = unk.Cause.Error()
							}
							jsonEnc.Encode(rec)
						}
					}
				case <-deadline:
					printCaptureSummary(recordCount, totalBytes)
					return nil
				}
			}
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:7497", "TWS/Gateway host:port")
	cmd.Flags().Int32Var(&clientID, "client-id", 0, "API client id")
	cmd.Flags().StringVar(&outPath, "out", "capture.zst", "output file path")
	cmd.Flags().StringVar(&jsonPath, "json", "", "optional JSON-lines sidecar path")
	cmd.Flags().DurationVar(&duration, "duration", 30*time.Second, "how long to capture")
	return cmd
}

func writeCaptureRecord(w *zstd.Encoder, msgID int32, raw []byte) uint64 {
	var header [8]byte
	binary.BigEndian.PutUint32(header[:4], uint32(msgID))
	binary.BigEndian.PutUint32(header[4:], uint32(len(raw)))
	w.Write(header[:])
	w.Write(raw)
	return uint64(len(header) + len(raw))
}

func printCaptureSummary(recordCount, totalBytes uint64) {
	fmt.Fprintf(os.Stderr, "captured %s records, %s raw\n",
		humanize.Comma(int64(recordCount)), humanize.Bytes(totalBytes))
}
