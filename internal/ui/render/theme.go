package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	HeaderBg    tcell.Color
	HeaderFg    tcell.Color
	DirectoryFg tcell.Color
	ScriptFg    tcell.Color
	SyntheticFg tcell.Color
	MatchFg     tcell.Color
	ErrorFg     tcell.Color
	SuccessFg   tcell.Color
	FooterBg    tcell.Color
	FooterFg    tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		HeaderBg:    tcell.ColorDefault,
		HeaderFg:    tcell.ColorDefault,
		DirectoryFg: tcell.Color33,
		ScriptFg:    tcell.ColorDefault,
		SyntheticFg: tcell.ColorLightSlateGray,
		MatchFg:     tcell.Color214,
		ErrorFg:     tcell.ColorRed,
		SuccessFg:   tcell.ColorGreen,
		FooterBg:    tcell.ColorDefault,
		FooterFg:    tcell.ColorDefault,
	}
}
