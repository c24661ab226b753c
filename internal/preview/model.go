// Package preview is the interactive terminal gallery: it lists catalog
// components and lets the user cycle axis values, interaction states and the
// colour scheme while rendering the result with the terminal renderer.
package preview

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/woosign/internal/components"
	"github.com/alexisbeaulieu97/woosign/internal/logger"
	"github.com/alexisbeaulieu97/woosign/internal/render"
	"github.com/alexisbeaulieu97/woosign/internal/theme"
	"github.com/alexisbeaulieu97/woosign/pkg/variants"
)

// CatalogFunc builds the catalog for a theme. It is called again whenever
// the colour scheme changes.
type CatalogFunc func(theme.Theme) (*components.Catalog, error)

// Model is the gallery state.
type Model struct {
	build    CatalogFunc
	provider *theme.Provider
	renderer render.Renderer
	log      *logger.Logger

	catalog *components.Catalog
	names   []string

	cursor     int
	axisCursor int
	selections map[string]variants.Selection
	state      components.State

	keys     keyMap
	help     help.Model
	showHelp bool
	errMsg   string

	width  int
	height int
}

// Option configures a Model.
type Option func(*Model)

// WithRenderer sets the renderer used for the preview pane.
func WithRenderer(r render.Renderer) Option {
	return func(m *Model) {
		m.renderer = r
	}
}

// WithLogger sets the logger.
func WithLogger(log *logger.Logger) Option {
	return func(m *Model) {
		m.log = log
	}
}

// New returns a gallery model. The catalog is built immediately so
// construction errors surface before the program starts.
func New(provider *theme.Provider, build CatalogFunc, renderer render.Renderer, opts ...Option) (Model, error) {
	m := Model{
		build:      build,
		provider:   provider,
		renderer:   renderer,
		selections: make(map[string]variants.Selection),
		keys:       defaultKeyMap(),
		help:       help.New(),
	}
	for _, opt := range opts {
		opt(&m)
	}

	if err := m.rebuild(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// Run starts the gallery on the terminal.
func Run(m Model, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) rebuild() error {
	catalog, err := m.build(m.provider.Theme())
	if err != nil {
		return err
	}
	m.catalog = catalog
	m.names = catalog.Names()
	if m.cursor >= len(m.names) {
		m.cursor = 0
	}
	return nil
}

// Current returns the selected entry.
func (m Model) Current() *components.Entry {
	if len(m.names) == 0 {
		return nil
	}
	e, err := m.catalog.Get(m.names[m.cursor])
	if err != nil {
		return nil
	}
	return e
}

// Selection returns the axis values chosen for the selected component.
func (m Model) Selection() variants.Selection {
	e := m.Current()
	if e == nil {
		return variants.Selection{}
	}
	out := make(variants.Selection, len(m.selections[e.Name]))
	for k, v := range m.selections[e.Name] {
		out[k] = v
	}
	return out
}

// State returns the interaction flags currently toggled.
func (m Model) State() components.State {
	return m.state
}

// Node builds the node for the current component, selection and state.
func (m Model) Node() (render.Node, bool) {
	e := m.Current()
	if e == nil {
		return render.Node{}, false
	}
	return e.Build(components.Request{Selection: m.Selection(), State: m.state}), true
}
