package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette of the retro green theme.
const (
	ColorDefault     Color = iota
	ColorGreen             // HUD text, paddle
	ColorBrightGreen       // Protected arc, glow accents
	ColorDarkGreen         // Arena boundary
	ColorOlive             // Divider between the two semicircles
	ColorWhite             // Ball, instructions
	ColorRed               // Warnings (life lost)
	ColorGray              // Dimmed elements while paused or frozen
)
