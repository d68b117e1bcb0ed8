// Copyright (c) 2024-2026 Neomantra Corp

package session_test

import (
	"context"
	"encoding/binary"
	"net"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/riverrun-quant/ibtws-go/session"
)

func TestSession(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "session")
}

// fakeServer accepts one connection, performs the handshake, then echoes
// whatever the test scenario asks of it.
func fakeServer(t GinkgoTInterface, serverVersion string) (addr string, accept func() net.Conn, stop func()) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	Expect(err).NotTo(HaveOccurred())

	connCh := make(chan net.Conn, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		// consume "API\x00" preamble + version-range frame
		preamble := make([]byte, 4)
		conn.Read(preamble)
		var lenBuf [4]byte
		conn.Read(lenBuf[:])
		n := binary.BigEndian.Uint32(lenBuf[:])
		body := make([]byte, n)
		conn.Read(body)

		// reply with negotiated server version
		resp := []byte(serverVersion + "\x00" + "20260731 12:00:00 UTC")
		out := make([]byte, 4+len(resp))
		binary.BigEndian.PutUint32(out[:4], uint32(len(resp)))
		copy(out[4:], resp)
		conn.Write(out)

		connCh <- conn
	}()

	return ln.Addr().String(), func() net.Conn { return <-connCh }, func() { ln.Close() }
}

var _ = Describe("Connect", func() {
	It("negotiates a server version and becomes ready for requests", func() {
		addr, accept, stop := fakeServer(GinkgoT(), "176")
		defer stop()

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		clientDone := make(chan *session.Client, 1)
		clientErr := make(chan error, 1)
		go func() {
			cl, err := session.Connect(ctx, session.Config{Addr: addr, ClientID: 7})
			if err != nil {
				clientErr <- err
				return
			}
			clientDone <- cl
		}()

		srvConn := accept()
		defer srvConn.Close()

		// drain the startApi message the client sends
		var lenBuf [4]byte
		srvConn.SetReadDeadline(time.Now().Add(time.Second))
		srvConn.Read(lenBuf[:])
		n := binary.BigEndian.Uint32(lenBuf[:])
		body := make([]byte, n)
		srvConn.Read(body)

		select {
		case cl := <-clientDone:
			Expect(cl.ServerVersion()).To(Equal(int32(176)))
			cl.Disconnect()
		case err := <-clientErr:
			Fail(err.Error())
		case <-time.After(2 * time.Second):
			Fail("timed out waiting for Connect")
		}
	})
})

var _ = Describe("Disconnect", func() {
	It("is idempotent: a second call returns success instead of panicking", func() {
		addr, accept, stop := fakeServer(GinkgoT(), "176")
		defer stop()

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		go func() { accept() }()

		cl, err := session.Connect(ctx, session.Config{Addr: addr, ClientID: 1})
		Expect(err).NotTo(HaveOccurred())

		Expect(cl.Disconnect()).To(Succeed())
		Expect(cl.Disconnect()).To(Succeed())
	})
})

var _ = Describe("request ID allocation", func() {
	It("hands out strictly increasing IDs and accepts reseeding", func() {
		addr, accept, stop := fakeServer(GinkgoT(), "176")
		defer stop()
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		go func() { accept() }()

		cl, err := session.Connect(ctx, session.Config{Addr: addr, ClientID: 1})
		Expect(err).NotTo(HaveOccurred())
		defer cl.Disconnect()

		a := cl.NextRequestID()
		b := cl.NextRequestID()
		Expect(b).To(Equal(a + 1))

		cl.SetNextRequestID(100)
		Expect(cl.NextRequestID()).To(Equal(int32(100)))
	})
})
