package core

// Color is the foreground palette of a screen cell. The TUI maps each value to
// an ANSI 256-color code; other renderers may ignore it.
type Color uint8

const (
	ColorDefault      Color = iota
	ColorRed                // basic enemies
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta            // tanks
	ColorCyan
	ColorWhite              // HUD
	ColorBrightRed
	ColorBrightGreen        // spread shot
	ColorBrightYellow       // bullets, overlay titles, rapid fire
	ColorBrightBlue         // player ship
	ColorBrightCyan         // double laser, best score
	ColorOrange             // fast enemies
	ColorGray
)
