// Copyright (c) 2024-2026 Neomantra Corp
//
// A small bubbletea model that renders the live event stream as a scrolling
// list, in the teacher's cmd/dbn-go-tui convention (bubbles/viewport +
// lipgloss styling over a channel-fed tea.Msg stream).

package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/riverrun-quant/ibtws-go"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))

// EventMsg wraps one ibtws.Event for delivery into the bubbletea update loop.
type EventMsg struct{ Event ibtws.Event }

// Model is the root bubbletea model for the event viewer.
type Model struct {
	viewport viewport.Model
	lines    []string
	events   <-chan ibtws.Event
}

// New builds a Model that reads from events until the channel closes.
func New(events <-chan ibtws.Event) Model {
	vp := viewport.New(100, 30)
	return Model{viewport: vp, events: events}
}

func (m Model) Init() tea.Cmd {
	return m.waitForEvent()
}

func (m Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return nil
		}
		return EventMsg{Event: ev}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case EventMsg:
		m.lines = append(m.lines, formatEvent(msg.Event))
		m.viewport.SetContent(joinLines(m.lines))
		m.viewport.GotoBottom()
		return m, m.waitForEvent()
	}
	return m, nil
}

func (m Model) View() string {
	return headerStyle.Render("ibtws live event stream (q to quit)") + "\n" + m.viewport.View()
}

func formatEvent(ev ibtws.Event) string {
	switch e := ev.(type) {
	case *ibtws.TickPrice:
		return fmt.Sprintf("TickPrice  req=%d type=%s price=%.4f", e.ReqID, e.Type, e.Price)
	case *ibtws.OrderStatus:
		return fmt.Sprintf("OrderStatus order=%d status=%s filled=%.2f", e.OrderID, e.Status, e.Filled)
	case *ibtws.ErrorEvent:
		return fmt.Sprintf("Error req=%d code=%d msg=%s", e.ReqID, e.Code, e.Message)
	case *ibtws.Unknown:
		return fmt.Sprintf("Unknown msg_id=%d len=%d", e.MsgID, len(e.RawBytes))
	case *ibtws.ConnectionClosed:
		return fmt.Sprintf("ConnectionClosed err=%v", e.Err)
	default:
		return fmt.Sprintf("%T", ev)
	}
}

func joinLines(lines []string) string {
	out := ""
	for _, l := range lines {
		out += l + "\n"
	}
	return out
}
