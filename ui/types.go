// Package ui draws the heads-up display over the metaball field.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	PanelBg        rl.Color
	PanelBorder    rl.Color
	SectionHeader  rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	ActiveColor    rl.Color
	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	ButtonHeight   int32
	FontSize       int32
	HeaderFontSize int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 20, G: 25, B: 30, A: 220},
		PanelBorder:    rl.Color{R: 60, G: 70, B: 80, A: 255},
		SectionHeader:  rl.Yellow,
		LabelColor:     rl.LightGray,
		ValueColor:     rl.White,
		ActiveColor:    rl.Color{R: 100, G: 200, B: 100, A: 255},
		Padding:        8,
		LineHeight:     16,
		LabelWidth:     72,
		ButtonHeight:   22,
		FontSize:       12,
		HeaderFontSize: 14,
	}
}
