// Copyright Inventory Capture Inc., 2026. All rights reserved.

package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/inventorycapture/partscout/pkg/types"
)

type supplierModel struct {
	deps Deps
	id   string

	info    types.SupplierInfo
	loaded  bool
	loadErr error
}

type supplierLoadedMsg struct {
	info types.SupplierInfo
	err  error
}

func newSupplierModel(deps Deps, id string) *supplierModel {
	return &supplierModel{deps: deps, id: id}
}

func (m *supplierModel) init() tea.Cmd {
	deps, id := m.deps, m.id
	return func() tea.Msg {
		info, err := deps.API.SupplierDetails(context.Background(), id)
		return supplierLoadedMsg{info: info, err: err}
	}
}

func (m *supplierModel) update(msg tea.Msg) (tea.Cmd, *screen) {
	if loaded, ok := msg.(supplierLoadedMsg); ok {
		m.info = loaded.info
		m.loadErr = loaded.err
		m.loaded = true
	}
	return nil, nil
}

func (m *supplierModel) view(width, height int) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("SUPPLIER DETAILS"))
	b.WriteString("\n\n")

	switch {
	case !m.loaded:
		b.WriteString(dimStyle.Render("Loading..."))
	case m.loadErr != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("could not load supplier: %v", m.loadErr)))
	default:
		fields := []struct{ label, value string }{
			{"Company", m.info.CompanyName},
			{"Country", m.info.Country},
			{"Address", m.info.Address},
			{"Phone", m.info.PhoneNumber},
			{"Email", m.info.ContactEmail},
			{"Website", m.info.Website},
			{"About", m.info.Description},
		}
		var card strings.Builder
		for _, f := range fields {
			if f.value == "" {
				continue
			}
			card.WriteString(dimStyle.Render(fmt.Sprintf("%-8s", f.label)))
			card.WriteString("  ")
			card.WriteString(normalLabelStyle.Render(f.value))
			card.WriteString("\n")
		}
		b.WriteString(boxStyle.Render(strings.TrimRight(card.String(), "\n")))
	}

	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("esc back"))
	return b.String()
}
