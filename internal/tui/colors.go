package tui

// Color constants for the fitqii TUI theme
const (
	// Base Colors
	ColorAppBackground  = ""        // Use terminal default background
	ColorCardBackground = "#10221B" // Dark green
	ColorBorder         = "#3A554C" // Grey-green

	// Text Colors
	ColorPrimaryText   = "#E8F2EC" // Primary text (titles, session names)
	ColorSecondaryText = "#AFC7BA" // Secondary text - muted green-grey
	ColorDisabledText  = "#6D8378" // Disabled/muted text
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (Green theme)
	ColorAccentMain   = "#10B981" // Headers, accent elements, active tab
	ColorAccentBright = "#6EE7B7" // Highlights, selected row

	// State Colors
	ColorError   = "#EF4444" // Load failures
	ColorSuccess = "#22C55E" // Completed sessions
	ColorWarning = "#F59E0B" // Cancelled sessions
)
