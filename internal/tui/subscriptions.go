// Copyright Inventory Capture Inc., 2026. All rights reserved.

package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type subsModel struct {
	deps Deps

	parts   []string
	cursor  int
	loaded  bool
	loadErr error
	status  string
}

type subsLoadedMsg struct{ err error }

type subRemovedMsg struct {
	partNumber string
	err        error
}

func newSubsModel(deps Deps) *subsModel {
	return &subsModel{deps: deps}
}

func (m *subsModel) init() tea.Cmd {
	if !m.deps.Authenticated {
		m.loaded = true
		return nil
	}
	set := m.deps.Subs
	return func() tea.Msg {
		return subsLoadedMsg{err: set.Refresh(context.Background())}
	}
}

func (m *subsModel) update(msg tea.Msg) (tea.Cmd, *screen) {
	switch msg := msg.(type) {
	case subsLoadedMsg:
		m.loaded = true
		m.loadErr = msg.err
		m.parts = m.deps.Subs.Parts()
		return nil, nil

	case subRemovedMsg:
		if msg.err != nil {
			m.status = errorStyle.Render(fmt.Sprintf("could not unsubscribe: %v", msg.err))
		} else {
			m.status = fmt.Sprintf("unsubscribed from %s", msg.partNumber)
		}
		m.parts = m.deps.Subs.Parts()
		if m.cursor >= len(m.parts) && m.cursor > 0 {
			m.cursor--
		}
		return nil, nil

	case tea.KeyMsg:
		switch {
		case isUp(msg):
			if m.cursor > 0 {
				m.cursor--
			}
		case isDown(msg):
			if m.cursor < len(m.parts)-1 {
				m.cursor++
			}
		case msg.String() == "d" || isEnter(msg):
			if len(m.parts) == 0 {
				return nil, nil
			}
			set, pn := m.deps.Subs, m.parts[m.cursor]
			return func() tea.Msg {
				return subRemovedMsg{partNumber: pn, err: set.Unsubscribe(context.Background(), pn)}
			}, nil
		}
	}
	return nil, nil
}

func (m *subsModel) view(width, height int) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("SUBSCRIPTIONS"))
	b.WriteString("\n\n")

	switch {
	case !m.deps.Authenticated:
		b.WriteString(dimStyle.Render("Sign in to manage part subscriptions."))
		b.WriteString("\n")
	case !m.loaded:
		b.WriteString(dimStyle.Render("Loading..."))
		b.WriteString("\n")
	case m.loadErr != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("could not load subscriptions: %v", m.loadErr)))
		b.WriteString("\n")
	case len(m.parts) == 0:
		b.WriteString(dimStyle.Render("No subscribed parts."))
		b.WriteString("\n")
	default:
		for i, pn := range m.parts {
			marker := "  "
			style := normalLabelStyle
			if i == m.cursor {
				marker = selectedStyle.Render("> ")
				style = selectedLabelStyle
			}
			b.WriteString(marker)
			b.WriteString(subscribedStyle.Render("● "))
			b.WriteString(style.Render(pn))
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("↑↓ select   d unsubscribe   esc back"))
	return b.String()
}
