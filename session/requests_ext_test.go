// Copyright (c) 2024-2026 Neomantra Corp

package session_test

import (
	"context"
	"encoding/binary"
	"strconv"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/riverrun-quant/ibtws-go"
	"github.com/riverrun-quant/ibtws-go/session"
)

// readFrame pulls one length-prefixed frame's body off a fake server
// connection and splits it on the wire's null terminator.
func readFrame(conn interface {
	Read([]byte) (int, error)
	SetReadDeadline(time.Time) error
}) []string {
	var lenBuf [4]byte
	conn.SetReadDeadline(time.Now().Add(time.Second))
	conn.Read(lenBuf[:])
	n := binary.BigEndian.Uint32(lenBuf[:])
	body := make([]byte, n)
	conn.Read(body)
	fields := strings.Split(string(body), "\x00")
	if len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	return fields
}

var _ = Describe("requests_ext methods", func() {
	It("writes ReqMktDepthExchanges with only its message ID", func() {
		addr, accept, stop := fakeServer(GinkgoT(), "176")
		defer stop()
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		go func() { accept() }()

		cl, err := session.Connect(ctx, session.Config{Addr: addr, ClientID: 1})
		Expect(err).NotTo(HaveOccurred())
		defer cl.Disconnect()

		srvConn := accept()
		defer srvConn.Close()
		readFrame(srvConn) // drain the startApi message Connect sends

		Expect(cl.ReqMktDepthExchanges()).To(Succeed())
		fields := readFrame(srvConn)
		Expect(fields).To(HaveLen(1))
		Expect(fields[0]).To(Equal(strconv.Itoa(int(ibtws.OutReqMktDepthExchanges))))
	})

	It("writes ReqSmartComponents with reqID and exchange code", func() {
		addr, accept, stop := fakeServer(GinkgoT(), "176")
		defer stop()
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		go func() { accept() }()

		cl, err := session.Connect(ctx, session.Config{Addr: addr, ClientID: 1})
		Expect(err).NotTo(HaveOccurred())
		defer cl.Disconnect()

		srvConn := accept()
		defer srvConn.Close()
		readFrame(srvConn) // drain the startApi message Connect sends

		Expect(cl.ReqSmartComponents(42, "SMART")).To(Succeed())
		fields := readFrame(srvConn)
		Expect(fields[1]).To(Equal("42"))
		Expect(fields[2]).To(Equal("SMART"))
	})

	It("writes CancelHeadTimestamp with its reqID", func() {
		addr, accept, stop := fakeServer(GinkgoT(), "176")
		defer stop()
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		go func() { accept() }()

		cl, err := session.Connect(ctx, session.Config{Addr: addr, ClientID: 1})
		Expect(err).NotTo(HaveOccurred())
		defer cl.Disconnect()

		srvConn := accept()
		defer srvConn.Close()
		readFrame(srvConn) // drain the startApi message Connect sends

		Expect(cl.CancelHeadTimestamp(7)).To(Succeed())
		fields := readFrame(srvConn)
		Expect(fields[1]).To(Equal("7"))
	})

	It("omits IsSmartDepth below GateSmartDepth, keeping the same common prefix", func() {
		lowAddr, lowAccept, lowStop := fakeServer(GinkgoT(), "176")
		defer lowStop()
		lowCtx, lowCancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer lowCancel()
		go func() { lowAccept() }()

		lowCl, err := session.Connect(lowCtx, session.Config{Addr: lowAddr, ClientID: 1})
		Expect(err).NotTo(HaveOccurred())
		defer lowCl.Disconnect()
		lowSrv := lowAccept()
		defer lowSrv.Close()
		readFrame(lowSrv) // drain the startApi message Connect sends

		Expect(lowCl.ReqMktDepth(7, ibtws.Contract{}, 5, true, nil)).To(Succeed())
		lowFields := readFrame(lowSrv)

		highAddr, highAccept, highStop := fakeServer(GinkgoT(), "194")
		defer highStop()
		highCtx, highCancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer highCancel()
		go func() { highAccept() }()

		highCl, err := session.Connect(highCtx, session.Config{Addr: highAddr, ClientID: 1})
		Expect(err).NotTo(HaveOccurred())
		defer highCl.Disconnect()
		highSrv := highAccept()
		defer highSrv.Close()
		readFrame(highSrv) // drain the startApi message Connect sends

		Expect(highCl.ReqMktDepth(7, ibtws.Contract{}, 5, true, nil)).To(Succeed())
		highFields := readFrame(highSrv)

		Expect(len(highFields)).To(Equal(len(lowFields) + 1))
		prefixLen := len(lowFields) - 1
		Expect(highFields[:prefixLen]).To(Equal(lowFields[:prefixLen]))
		Expect(lowFields[prefixLen]).To(Equal(""))
		Expect(highFields[prefixLen]).To(Equal("1"))
		Expect(highFields[prefixLen+1]).To(Equal(""))
	})
})
