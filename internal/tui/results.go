// Copyright Inventory Capture Inc., 2026. All rights reserved.

package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/inventorycapture/partscout/internal/results"
	"github.com/inventorycapture/partscout/pkg/types"
)

type rowKind int

const (
	rowSection rowKind = iota
	rowGroup
	rowSubgroup
	rowRecord
)

// row is one navigable line of the rendered result view. Section and group
// rows carry an expansion key; record rows carry the underlying record.
type row struct {
	kind   rowKind
	key    string
	label  string
	indent int
	record *results.Record
}

type resultsModel struct {
	deps Deps

	query types.Query
	set   results.ResultSet

	mode      results.GroupMode
	sort      results.SortState
	expansion *results.Expansion
	redactor  results.Redactor

	rows   []row
	cursor int
	status string
}

func newResultsModel(deps Deps) *resultsModel {
	return &resultsModel{
		deps:      deps,
		expansion: results.NewExpansion(),
		redactor:  results.Redactor{Authenticated: deps.Authenticated},
	}
}

func (m *resultsModel) setResults(q types.Query, set results.ResultSet) {
	m.query = q
	m.set = set
	m.cursor = 0
	m.status = ""
	m.expansion.Reset()
	m.rebuild()
}

type subsChangedMsg struct {
	partNumber string
	subscribed bool
	err        error
}

// toggleSubscription flips the subscription for one part. The set applies
// the change optimistically and rolls back on API failure.
func (m *resultsModel) toggleSubscription(partNumber string) tea.Cmd {
	set := m.deps.Subs
	subscribed := !set.Contains(partNumber)
	return func() tea.Msg {
		var err error
		if subscribed {
			err = set.Subscribe(context.Background(), partNumber)
		} else {
			err = set.Unsubscribe(context.Background(), partNumber)
		}
		return subsChangedMsg{partNumber: partNumber, subscribed: subscribed, err: err}
	}
}

func (m *resultsModel) update(root *Model, msg tea.Msg) (tea.Cmd, *screen) {
	switch msg := msg.(type) {
	case subsChangedMsg:
		if msg.err != nil {
			m.status = errorStyle.Render(fmt.Sprintf("subscription change failed: %v", msg.err))
		} else if msg.subscribed {
			m.status = fmt.Sprintf("subscribed to %s", msg.partNumber)
		} else {
			m.status = fmt.Sprintf("unsubscribed from %s", msg.partNumber)
		}
		return nil, nil

	case tea.KeyMsg:
		switch {
		case isUp(msg):
			if m.cursor > 0 {
				m.cursor--
			}
		case isDown(msg):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case isEnter(msg):
			r := m.current()
			if r != nil && r.kind != rowRecord {
				m.expansion.Toggle(r.key, r.kind == rowSection)
				m.rebuild()
			}
		case msg.String() == "g":
			m.mode = m.mode.Next()
			m.expansion.Reset()
			m.cursor = 0
			m.rebuild()
		case msg.String() == "b":
			if pn := m.currentPart(); pn != "" {
				if !m.deps.Authenticated {
					m.status = errorStyle.Render("sign in to manage subscriptions")
					return nil, nil
				}
				return m.toggleSubscription(pn), nil
			}
		case msg.String() == "v":
			r := m.current()
			if r != nil && r.record != nil {
				if !m.deps.Authenticated {
					m.status = errorStyle.Render("sign in to view supplier details")
					return nil, nil
				}
				if r.record.SupplierID == "" {
					m.status = dimStyle.Render("no supplier reference on this listing")
					return nil, nil
				}
				s := screen{kind: screenSupplier, supplierID: r.record.SupplierID}
				return nil, &s
			}
		default:
			if key, ok := sortKeyFor(msg.String()); ok {
				m.sort = m.sort.Toggle(key)
				m.rebuild()
			}
		}
	}
	return nil, nil
}

// sortKeyFor maps number keys to sortable columns in display order.
func sortKeyFor(s string) (results.SortKey, bool) {
	switch s {
	case "1":
		return results.SortPartNumber, true
	case "2":
		return results.SortMfr, true
	case "3":
		return results.SortDateCode, true
	case "4":
		return results.SortQty, true
	case "5":
		return results.SortCountry, true
	case "6":
		return results.SortSupplier, true
	}
	return results.SortNone, false
}

func (m *resultsModel) current() *row {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return &m.rows[m.cursor]
}

// currentPart resolves the part number under the cursor: a record's own, or
// the group key when the cursor sits on a by-part group header.
func (m *resultsModel) currentPart() string {
	r := m.current()
	if r == nil {
		return ""
	}
	if r.record != nil {
		return r.record.PartNumber
	}
	if r.kind == rowGroup && m.mode == results.GroupByPart {
		return r.label
	}
	return ""
}

// rebuild regenerates the navigable rows from the current grouping, sort,
// and expansion state.
func (m *resultsModel) rebuild() {
	m.rows = m.rows[:0]

	inStock, brokered := m.set.ByCategory()
	m.appendSection("instock", "In Stock", inStock)
	m.appendSection("brokered", "Brokered", brokered)

	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *resultsModel) appendSection(key, title string, records []results.Record) {
	if len(records) == 0 {
		return
	}
	m.rows = append(m.rows, row{
		kind:  rowSection,
		key:   key,
		label: fmt.Sprintf("%s (%d)", title, len(records)),
	})
	if !m.expansion.IsOpen(key, true) {
		return
	}

	switch m.mode {
	case results.GroupByPart:
		for _, g := range results.ByPart(records) {
			gkey := key + "/" + g.Key
			m.rows = append(m.rows, row{
				kind:   rowGroup,
				key:    gkey,
				label:  g.Key,
				indent: 1,
			})
			if !m.expansion.IsOpen(gkey, false) {
				continue
			}
			for _, sub := range g.Sub {
				skey := gkey + "/" + sub.Key
				m.rows = append(m.rows, row{
					kind:   rowSubgroup,
					key:    skey,
					label:  m.redactor.SupplierName(sub.Key),
					indent: 2,
				})
				if !m.expansion.IsOpen(skey, true) {
					continue
				}
				m.appendRecords(sub.Records, 3)
			}
		}
	case results.GroupBySupplier:
		for _, g := range results.BySupplier(records) {
			gkey := key + "/" + g.Key
			m.rows = append(m.rows, row{
				kind:   rowGroup,
				key:    gkey,
				label:  m.redactor.SupplierName(g.Key),
				indent: 1,
			})
			if !m.expansion.IsOpen(gkey, false) {
				continue
			}
			m.appendRecords(g.Records, 2)
		}
	default:
		m.appendRecords(records, 1)
	}
}

func (m *resultsModel) appendRecords(records []results.Record, indent int) {
	sorted := make([]results.Record, len(records))
	copy(sorted, records)
	m.sort.Apply(sorted)
	for i := range sorted {
		m.rows = append(m.rows, row{
			kind:   rowRecord,
			indent: indent,
			record: &sorted[i],
		})
	}
}

func (m *resultsModel) view(width, height int) string {
	if height == 0 {
		height = 24
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Results for %q", m.query.Value)))
	b.WriteString("  ")
	b.WriteString(countStyle.Render(fmt.Sprintf("%d results", m.set.Total())))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("grouping: " + m.mode.String()))
	if m.sort.Key != results.SortNone {
		dir := "asc"
		if m.sort.Direction == results.Desc {
			dir = "desc"
		}
		b.WriteString(dimStyle.Render(fmt.Sprintf("   sort: %s %s", m.sort.Key, dir)))
	}
	b.WriteString("\n\n")

	if m.set.Total() == 0 {
		b.WriteString(dimStyle.Render("No results found."))
		b.WriteString("\n")
	}

	visible := height - 7
	if visible < 5 {
		visible = 5
	}
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}

	for i := start; i < len(m.rows) && i < start+visible; i++ {
		b.WriteString(m.renderRow(m.rows[i], i == m.cursor))
		b.WriteString("\n")
	}

	if m.set.Dropped > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("(%d record(s) skipped: unparseable)", m.set.Dropped)))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("g grouping   1-6 sort   enter expand   b subscribe   v supplier   esc back"))
	return b.String()
}

func (m *resultsModel) renderRow(r row, selected bool) string {
	pad := strings.Repeat("  ", r.indent)
	marker := "  "
	if selected {
		marker = selectedStyle.Render("> ")
	}

	switch r.kind {
	case rowSection:
		open := "▾"
		if !m.expansion.IsOpen(r.key, true) {
			open = "▸"
		}
		return marker + headerStyle.Render(open+" "+r.label)
	case rowGroup:
		open := "▾"
		if !m.expansion.IsOpen(r.key, false) {
			open = "▸"
		}
		label := r.label
		if selected {
			label = selectedLabelStyle.Render(label)
		} else {
			label = partNumberStyle.Render(label)
		}
		return marker + pad + open + " " + label
	case rowSubgroup:
		return marker + pad + normalLabelStyle.Render(r.label)
	default:
		return marker + pad + m.renderRecord(*r.record, selected)
	}
}

func (m *resultsModel) renderRecord(rec results.Record, selected bool) string {
	sub := " "
	if m.deps.Subs != nil && m.deps.Subs.Contains(rec.PartNumber) {
		sub = subscribedStyle.Render("●")
	}
	line := fmt.Sprintf("%s %-20s %-12s %-6s %8s  %-3s %-10s %-16s %s",
		sub,
		results.Truncate(rec.PartNumber, 20),
		results.Truncate(results.OrDash(rec.Manufacturer), 12),
		results.Truncate(results.OrDash(rec.DateCode), 6),
		results.FormatQty(rec.Qty),
		m.redactor.Country(rec.Country),
		m.redactor.ProcessedAt(rec.ProcessedAt),
		results.Truncate(m.redactor.SupplierName(rec.SupplierName), 16),
		results.FormatBreaks(rec.Breaks))
	if selected {
		return selectedLabelStyle.Render(line)
	}
	return normalLabelStyle.Render(line)
}
