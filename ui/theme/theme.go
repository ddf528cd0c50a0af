package theme

// Light and dark styling for the preview window. InitStyles activates the
// base theme and configures the semantic widget styles used by the views.

import (
	tk "modernc.org/tk9.0"
)

// Palette holds the resolved colors for one mode.
type Palette struct {
	AppBg     string
	Surface   string
	Danger    string
	Accent    string
	OnAccent  string
	Text      string
	TextMuted string
}

var (
	light = Palette{
		AppBg:     "#f7f9fb",
		Surface:   "#ffffff",
		Danger:    "#dc2626",
		Accent:    "#10b981",
		OnAccent:  "white",
		Text:      "#1e293b",
		TextMuted: "#64748b",
	}
	dark = Palette{
		AppBg:     "#0f172a",
		Surface:   "#1e293b",
		Danger:    "#ef4444",
		Accent:    "#10b981",
		OnAccent:  "#f0fdf4",
		Text:      "#f1f5f9",
		TextMuted: "#94a3b8",
	}
)

// Style names used with Style(...).
const (
	StyleDangerButton = "danger.TButton"
	StyleStateLabel   = "state.TLabel"
)

var darkMode bool

// CurrentPalette returns colors for the current mode.
func CurrentPalette() Palette {
	if darkMode {
		return dark
	}
	return light
}

// InitStyles (re)applies styles for the current mode.
func InitStyles() { applyStyles(CurrentPalette()) }

// SetDark switches mode and reapplies styles. Returns the new mode.
func SetDark(on bool) bool {
	darkMode = on
	InitStyles()
	return darkMode
}

// IsDark reports current mode.
func IsDark() bool { return darkMode }

func applyStyles(p Palette) {
	_ = tk.ActivateTheme("azure light") // baseline metrics
	tk.App.Configure(tk.Background(p.AppBg))

	tk.StyleConfigure(StyleDangerButton,
		tk.Background(p.Danger),
		tk.Foreground("white"),
		tk.Padding("4p 3p"),
		tk.Borderwidth(1),
		tk.Relief("ridge"),
	)
	tk.StyleConfigure(StyleStateLabel,
		tk.Foreground(p.OnAccent),
		tk.Background(p.Accent),
		tk.Padding("4p 2p"),
		tk.Borderwidth(1),
		tk.Relief("groove"),
	)
}
