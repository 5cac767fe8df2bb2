// Copyright Inventory Capture Inc., 2026. All rights reserved.

// Package tui is the interactive browse mode: a search bar with a debounced
// suggestion dropdown, grouped and sortable result views, supplier detail
// lookups, and subscription management.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/inventorycapture/partscout/internal/api"
	"github.com/inventorycapture/partscout/internal/history"
	"github.com/inventorycapture/partscout/internal/results"
	"github.com/inventorycapture/partscout/internal/subs"
	"github.com/inventorycapture/partscout/internal/suggest"
	"github.com/inventorycapture/partscout/pkg/types"
)

type screenType int

const (
	screenSearch screenType = iota
	screenResults
	screenSupplier
	screenSubscriptions
)

type screen struct {
	kind       screenType
	query      types.Query
	supplierID string
}

// Deps wires the browse session to the rest of the client. Authenticated
// controls the redaction applied to supplier identity fields.
type Deps struct {
	API           *api.Client
	Engine        *suggest.Engine
	Subs          *subs.Set
	History       *history.Store
	Logger        *zap.Logger
	Authenticated bool
	SearchSource  string
}

type Model struct {
	deps    Deps
	screen  screen
	history []screen

	search        *searchModel
	results       *resultsModel
	supplier      *supplierModel
	subscriptions *subsModel

	width  int
	height int
}

func New(deps Deps) *Model {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	m := &Model{
		deps:   deps,
		screen: screen{kind: screenSearch},
	}
	m.search = newSearchModel(deps)
	return m
}

// suggestionsMsg carries one delivery from the suggestion engine.
type suggestionsMsg suggest.Result

// listenSuggestions re-arms after every delivery so the dropdown always
// reflects the engine's latest generation.
func (m *Model) listenSuggestions() tea.Cmd {
	ch := m.deps.Engine.Results()
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return nil
		}
		return suggestionsMsg(r)
	}
}

type searchDoneMsg struct {
	query types.Query
	set   results.ResultSet
	err   error
}

// runSearch executes the committed query and records it in local history.
func (m *Model) runSearch(q types.Query) tea.Cmd {
	deps := m.deps
	return func() tea.Msg {
		resp, err := deps.API.Search(context.Background(), q, deps.SearchSource)
		if err != nil {
			return searchDoneMsg{query: q, err: err}
		}
		set := results.Decode(resp, deps.Logger)
		if deps.History != nil {
			if err := deps.History.Record(context.Background(), q, set.Total()); err != nil {
				deps.Logger.Warn("recording search history", zap.Error(err))
			}
		}
		return searchDoneMsg{query: q, set: set}
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.listenSuggestions(), m.search.init())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if isQuit(msg) {
			m.deps.Engine.Close()
			return m, tea.Quit
		}
		if isBack(msg) && m.screen.kind != screenSearch {
			return m.goBack()
		}
		if msg.String() == "ctrl+s" && m.screen.kind != screenSubscriptions {
			return m.navigate(screen{kind: screenSubscriptions})
		}

	case suggestionsMsg:
		if m.screen.kind == screenSearch {
			m.search.applySuggestions(suggest.Result(msg))
		}
		return m, m.listenSuggestions()

	case searchDoneMsg:
		if msg.err != nil {
			m.search.setError(msg.err)
			return m, nil
		}
		next, cmd := m.navigate(screen{kind: screenResults, query: msg.query})
		next.results.setResults(msg.query, msg.set)
		return next, cmd
	}

	var cmd tea.Cmd
	var nav *screen

	switch m.screen.kind {
	case screenSearch:
		cmd, nav = m.search.update(m, msg)
	case screenResults:
		cmd, nav = m.results.update(m, msg)
	case screenSupplier:
		cmd, nav = m.supplier.update(msg)
	case screenSubscriptions:
		cmd, nav = m.subscriptions.update(msg)
	}

	if nav != nil {
		next, navCmd := m.navigate(*nav)
		return next, tea.Batch(cmd, navCmd)
	}
	return m, cmd
}

func (m *Model) View() string {
	switch m.screen.kind {
	case screenSearch:
		return m.search.view(m.width, m.height)
	case screenResults:
		return m.results.view(m.width, m.height)
	case screenSupplier:
		return m.supplier.view(m.width, m.height)
	case screenSubscriptions:
		return m.subscriptions.view(m.width, m.height)
	}
	return ""
}

func (m *Model) navigate(to screen) (*Model, tea.Cmd) {
	m.history = append(m.history, m.screen)
	m.screen = to

	var cmd tea.Cmd
	switch to.kind {
	case screenSearch:
		m.search = newSearchModel(m.deps)
		cmd = m.search.init()
	case screenResults:
		if m.results == nil {
			m.results = newResultsModel(m.deps)
		}
	case screenSupplier:
		m.supplier = newSupplierModel(m.deps, to.supplierID)
		cmd = m.supplier.init()
	case screenSubscriptions:
		m.subscriptions = newSubsModel(m.deps)
		cmd = m.subscriptions.init()
	}
	return m, tea.Batch(cmd, tea.ClearScreen)
}

func (m *Model) goBack() (*Model, tea.Cmd) {
	if len(m.history) == 0 {
		m.deps.Engine.Close()
		return m, tea.Quit
	}
	m.screen = m.history[len(m.history)-1]
	m.history = m.history[:len(m.history)-1]

	var cmd tea.Cmd
	switch m.screen.kind {
	case screenSearch:
		// The input and its dropdown state survive the round trip.
		m.deps.Engine.Focus()
	case screenSubscriptions:
		m.subscriptions = newSubsModel(m.deps)
		cmd = m.subscriptions.init()
	}
	return m, tea.Batch(cmd, tea.ClearScreen)
}
