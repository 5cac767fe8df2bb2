// Copyright Inventory Capture Inc., 2026. All rights reserved.

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/inventorycapture/partscout/internal/suggest"
	"github.com/inventorycapture/partscout/pkg/types"
)

type searchModel struct {
	deps  Deps
	input textinput.Model

	field types.SearchField
	match types.MatchType

	suggestions []types.Suggestion
	cursor      int
	err         error
}

func newSearchModel(deps Deps) *searchModel {
	ti := textinput.New()
	ti.Placeholder = "Part number or manufacturer..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 50

	return &searchModel{
		deps:  deps,
		input: ti,
		field: types.FieldMPN,
		match: types.MatchBeginsWith,
	}
}

func (m *searchModel) init() tea.Cmd {
	m.deps.Engine.Focus()
	return textinput.Blink
}

func (m *searchModel) applySuggestions(r suggest.Result) {
	if r.Err != nil {
		m.err = r.Err
		m.suggestions = nil
		m.cursor = 0
		return
	}
	m.err = nil
	m.suggestions = r.Suggestions
	if m.cursor >= len(m.suggestions) {
		m.cursor = 0
	}
}

func (m *searchModel) setError(err error) {
	m.err = err
}

func (m *searchModel) update(root *Model, msg tea.Msg) (tea.Cmd, *screen) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch {
		case isUp(key):
			if m.cursor > 0 {
				m.cursor--
			}
			return nil, nil
		case isDown(key):
			if m.cursor < len(m.suggestions)-1 {
				m.cursor++
			}
			return nil, nil
		case isTab(key):
			m.toggleSelectors()
			return nil, nil
		case isEnter(key):
			var q types.Query
			if len(m.suggestions) > 0 {
				q = m.deps.Engine.Commit(m.suggestions[m.cursor].PartNumber)
			} else {
				var ok bool
				q, ok = m.deps.Engine.Submit(m.input.Value())
				if !ok {
					m.err = fmt.Errorf("need at least %d characters", types.MinQueryLength)
					return nil, nil
				}
			}
			m.suggestions = nil
			m.cursor = 0
			return root.runSearch(q), nil
		}
	}

	prev := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != prev {
		m.err = nil
		m.deps.Engine.Keystroke(m.input.Value())
	}
	return cmd, nil
}

// toggleSelectors cycles field/match combinations: mpn prefix, mpn exact,
// manufacturer prefix, manufacturer exact.
func (m *searchModel) toggleSelectors() {
	switch {
	case m.field == types.FieldMPN && m.match == types.MatchBeginsWith:
		m.match = types.MatchExact
	case m.field == types.FieldMPN:
		m.field, m.match = types.FieldManufacturer, types.MatchBeginsWith
	case m.match == types.MatchBeginsWith:
		m.match = types.MatchExact
	default:
		m.field, m.match = types.FieldMPN, types.MatchBeginsWith
	}
	m.deps.Engine.SetSelectors(m.field, m.match)
	m.deps.Engine.Keystroke(m.input.Value())
}

func (m *searchModel) view(width, height int) string {
	if width == 0 {
		width = 80
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("PARTSCOUT"))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%s / %s", m.field, m.match)))
	if !m.deps.Authenticated {
		b.WriteString("  ")
		b.WriteString(dimStyle.Render("(anonymous: supplier details hidden)"))
	}
	b.WriteString("\n\n")

	b.WriteString(boxStyle.Render(m.input.View()))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	case len(m.suggestions) > 0:
		for i, s := range m.suggestions {
			marker := "  "
			style := normalLabelStyle
			if i == m.cursor {
				marker = selectedStyle.Render("> ")
				style = selectedLabelStyle
			}
			b.WriteString(marker)
			b.WriteString(style.Render(s.PartNumber))
			if s.NumResults > 0 {
				b.WriteString("  ")
				b.WriteString(countStyle.Render(fmt.Sprintf("%d", s.NumResults)))
			}
			b.WriteString("\n")
		}
	case strings.TrimSpace(m.input.Value()) == "":
		b.WriteString(dimStyle.Render("Start typing to search listings"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("tab field/match   ↑↓ select   enter search   ctrl+s subscriptions   ctrl+c quit"))
	return b.String()
}
