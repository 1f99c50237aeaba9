package tui

import "github.com/rgehrsitz/finproj/internal/tui/tuistyles"

// Re-export styles from tuistyles to avoid import cycles
var (
	TitleStyle     = tuistyles.TitleStyle
	SubtitleStyle  = tuistyles.SubtitleStyle
	StatusBarStyle = tuistyles.StatusBarStyle
	BorderStyle    = tuistyles.BorderStyle
	ErrorStyle     = tuistyles.ErrorStyle
	InfoStyle      = tuistyles.InfoStyle
)

// SetTheme applies a preferences theme before the program starts.
func SetTheme(name string) {
	tuistyles.ApplyTheme(name)
	SubtitleStyle = tuistyles.SubtitleStyle
	StatusBarStyle = tuistyles.StatusBarStyle
	BorderStyle = tuistyles.BorderStyle
}
