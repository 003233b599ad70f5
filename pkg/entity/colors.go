package entity

// Named colors as ANSI-256 codes. Entities and log messages carry these
// as plain strings; the console maps them to lipgloss styles.
const (
	ColorWhite        = "255"
	ColorRed          = "196"
	ColorDarkRed      = "88"
	ColorGreen        = "70"
	ColorDesatGreen   = "108"
	ColorDarkerGreen  = "22"
	ColorViolet       = "135"
	ColorLightViolet  = "183"
	ColorLightYellow  = "229"
	ColorYellow       = "226"
	ColorSky          = "117"
	ColorLightBlue    = "111"
	ColorLightCyan    = "159"
	ColorLightGreen   = "120"
	ColorOrange       = "214"
	ColorDarkerOrange = "130"
)
