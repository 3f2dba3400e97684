package tui

// Color constants for gymlog TUI theme
const (
	// Base Colors
	ColorAppBackground  = ""        // Use terminal default background
	ColorCardBackground = "#101B17" // Dark green-black
	ColorBorder         = "#3A554B" // Grey-green

	// Text Colors
	ColorPrimaryText   = "#E8F2ED" // Primary text (field labels, user input, titles)
	ColorSecondaryText = "#A9C3B6" // Secondary text - muted sage
	ColorDisabledText  = "#6D8378" // Disabled/muted text
	ColorPlaceholder   = "#A9C3B6" // Same as secondary
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (Green theme)
	ColorAccentMain   = "#10B981" // Logo, accent elements, active borders
	ColorAccentBright = "#6EE7B7" // Hover, highlights, current step

	// State Colors
	ColorError   = "#EF4444" // Validation errors
	ColorSuccess = "#22C55E" // Success, confirmations
	ColorWarning = "#F59E0B" // Warnings
)
