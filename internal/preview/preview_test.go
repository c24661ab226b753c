package preview

import (
	"errors"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/woosign/internal/components"
	"github.com/alexisbeaulieu97/woosign/internal/render/term"
	"github.com/alexisbeaulieu97/woosign/internal/theme"
	"github.com/alexisbeaulieu97/woosign/pkg/variants"
)

func newTestModel(t *testing.T) Model {
	t.Helper()

	build := func(th theme.Theme) (*components.Catalog, error) {
		return components.NewCatalog(components.ForTheme(th)), nil
	}
	renderer := term.New(term.WithLipgloss(lipgloss.NewRenderer(io.Discard)))

	m, err := New(theme.NewProvider(theme.SchemeLight), build, renderer)
	require.NoError(t, err)
	return m
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		updated, _ := m.Update(k)
		next, ok := updated.(Model)
		require.True(t, ok)
		m = next
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNavigation(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	require.Equal(t, "badge", m.Current().Name)

	m = press(t, m, runes("j"))
	assert.Equal(t, "box", m.Current().Name)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "text", m.Current().Name)
}

func TestCycleAxisValues(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	m = press(t, m, runes("l"))
	assert.Equal(t, variants.Selection{"variant": "default"}, m.Selection())

	m = press(t, m, runes("l"))
	assert.Equal(t, variants.Selection{"variant": "destructive"}, m.Selection())

	m = press(t, m, runes("h"), runes("h"))
	assert.Equal(t, variants.Selection{}, m.Selection())

	m = press(t, m, runes("h"))
	assert.Equal(t, variants.Selection{"variant": "secondary"}, m.Selection())
}

func TestAxisFocus(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = press(t, m, runes("j"), runes("j"))
	require.Equal(t, "button", m.Current().Name)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, runes("l"))
	assert.Equal(t, variants.Selection{"size": "default"}, m.Selection())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab}, runes("l"), runes("l"))
	assert.Equal(t, variants.Selection{"size": "default", "variant": "destructive"}, m.Selection())

	node, ok := m.Node()
	require.True(t, ok)
	assert.Equal(t, theme.Colors.Destructive, node.Style["backgroundColor"])
}

func TestStateToggles(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = press(t, m, runes("o"), runes("f"), runes("p"), runes("d"), runes("g"), runes("x"))
	assert.Equal(t, components.State{
		Hovered:  true,
		Focused:  true,
		Pressed:  true,
		Disabled: true,
		Loading:  true,
		Checked:  true,
	}, m.State())

	m = press(t, m, runes("o"))
	assert.False(t, m.State().Hovered)

	m = press(t, m, runes("l"), runes("r"))
	assert.Equal(t, components.State{}, m.State())
	assert.Empty(t, m.Selection())
}

func TestToggleSchemeRebuildsCatalog(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = press(t, m, runes("j"), runes("j"))

	m = press(t, m, runes("t"))
	node, ok := m.Node()
	require.True(t, ok)
	assert.Equal(t, theme.DarkColors.Primary, node.Style["backgroundColor"])
	assert.Equal(t, "button", m.Current().Name)
	assert.Contains(t, m.View(), "dark")

	m = press(t, m, runes("t"))
	node, _ = m.Node()
	assert.Equal(t, theme.Colors.Primary, node.Style["backgroundColor"])
}

func TestToggleSchemeBuildFailure(t *testing.T) {
	t.Parallel()

	calls := 0
	build := func(th theme.Theme) (*components.Catalog, error) {
		calls++
		if calls > 1 {
			return nil, errors.New("definitions vanished")
		}
		return components.NewCatalog(components.ForTheme(th)), nil
	}

	m, err := New(theme.NewProvider(theme.SchemeLight), build, term.New(term.WithLipgloss(lipgloss.NewRenderer(io.Discard))))
	require.NoError(t, err)

	m = press(t, m, runes("t"))
	assert.Contains(t, m.View(), "definitions vanished")
	assert.Equal(t, "badge", m.Current().Name)
}

func TestNewPropagatesBuildError(t *testing.T) {
	t.Parallel()

	build := func(theme.Theme) (*components.Catalog, error) {
		return nil, errors.New("bad definitions")
	}
	_, err := New(theme.NewProvider(theme.SchemeLight), build, term.New())
	require.EqualError(t, err, "bad definitions")
}

func TestQuitAndWindowSize(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	assert.Nil(t, m.Init())

	updated, cmd := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	require.Nil(t, cmd)
	sized := updated.(Model)
	assert.Equal(t, 120, sized.width)
	assert.Equal(t, 40, sized.height)

	_, cmd = sized.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestView(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	out := m.View()
	assert.Contains(t, out, "woosign gallery")
	assert.Contains(t, out, "badge")
	assert.Contains(t, out, "variant:")
	assert.Contains(t, out, "(default: default)")
	assert.Contains(t, out, "Badge")

	m = press(t, m, runes("?"))
	assert.Contains(t, m.View(), "toggle scheme")
}

func TestEarlierModelsKeepTheirSelections(t *testing.T) {
	t.Parallel()

	first := press(t, newTestModel(t), runes("l"))
	require.Equal(t, variants.Selection{"variant": "default"}, first.Selection())

	second := press(t, first, runes("l"))
	assert.Equal(t, variants.Selection{"variant": "destructive"}, second.Selection())
	assert.Equal(t, variants.Selection{"variant": "default"}, first.Selection())

	reset := press(t, second, runes("r"))
	assert.Equal(t, variants.Selection{}, reset.Selection())
	assert.Equal(t, variants.Selection{"variant": "destructive"}, second.Selection())
}
