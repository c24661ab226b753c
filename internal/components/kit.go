package components

import "github.com/alexisbeaulieu97/woosign/internal/theme"

// Kit is the full set of components compiled for one palette.
type Kit struct {
	Palette theme.Palette

	Badge  *Badge
	Box    *Box
	Button *Button
	Card   *Card
	Input  *Input
	Switch *Switch
	Text   *Text
}

// NewKit compiles every component against p.
func NewKit(p theme.Palette) *Kit {
	return &Kit{
		Palette: p,
		Badge:   NewBadge(p),
		Box:     NewBox(),
		Button:  NewButton(p),
		Card:    NewCard(p),
		Input:   NewInput(p),
		Switch:  NewSwitch(p),
		Text:    NewText(p),
	}
}

// ForTheme compiles the kit for the palette of t.
func ForTheme(t theme.Theme) *Kit {
	return NewKit(t.Colors)
}
