package ui

import "github.com/charmbracelet/lipgloss"

// Color palette — dark terminal friendly
var (
	colorBg     = lipgloss.Color("#0d1117")
	colorBorder = lipgloss.Color("#30363d")
	colorAccent = lipgloss.Color("#58a6ff")
	colorGold   = lipgloss.Color("#d29922")
	colorGreen  = lipgloss.Color("#3fb950")
	colorRed    = lipgloss.Color("#f85149")
	colorYellow = lipgloss.Color("#e3b341")
	colorMuted  = lipgloss.Color("#8b949e")
	colorWhite  = lipgloss.Color("#e6edf3")

	// Backgrounds for severity badges
	bgWarning  = lipgloss.Color("#b91c1c")
	bgWatch    = lipgloss.Color("#92400e")
	bgAdvisory = lipgloss.Color("#1e3a5f")
	bgInfo     = lipgloss.Color("#1c2128")
	bgGood     = lipgloss.Color("#1a3622")
)

var (
	// Layout
	StyleHeader = lipgloss.NewStyle().
			Background(colorBg).
			Foreground(colorWhite).
			Padding(0, 1)

	StyleTitle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	StyleSubtitle = lipgloss.NewStyle().
			Foreground(colorMuted)

	StyleTabBar = lipgloss.NewStyle().
			Background(colorBg).
			Padding(0, 1)

	StyleActiveTab = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(colorAccent)

	StyleInactiveTab = lipgloss.NewStyle().
				Foreground(colorMuted)

	StylePane = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	StyleFooter = lipgloss.NewStyle().
			Foreground(colorMuted).
			Background(colorBg).
			Padding(0, 1)

	StyleFooterStatus = lipgloss.NewStyle().
				Foreground(colorGreen).
				Background(colorBg).
				Padding(0, 1)

	StyleFooterInput = lipgloss.NewStyle().
				Foreground(colorWhite).
				Background(colorBg).
				Padding(0, 1)

	// Content styles
	StyleSectionHeader = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true).
				Background(lipgloss.Color("#161b22")).
				Padding(0, 2)

	StyleTableHeader = lipgloss.NewStyle().
				Foreground(colorMuted).
				Bold(true)

	StyleDivider = lipgloss.NewStyle().
			Foreground(colorBorder)

	StyleTemp = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	StyleCondition = lipgloss.NewStyle().
			Foreground(colorAccent)

	StyleBarFilled = lipgloss.NewStyle().
			Foreground(colorAccent)

	StylePositive = lipgloss.NewStyle().
			Foreground(colorGreen)

	StyleNegative = lipgloss.NewStyle().
			Foreground(colorRed)

	StyleError = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	StyleWarning = lipgloss.NewStyle().
			Foreground(colorYellow)

	StyleSpinner = lipgloss.NewStyle().
			Foreground(colorAccent)

	StyleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	StyleAge = lipgloss.NewStyle().
			Foreground(colorMuted)

	StyleRecommendation = lipgloss.NewStyle().
				Foreground(colorGold).
				Bold(true)

	// Severity badges
	StyleSevWarning = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(bgWarning).
			Bold(true)

	StyleSevWatch = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(bgWatch).
			Bold(true)

	StyleSevAdvisory = lipgloss.NewStyle().
				Foreground(colorWhite).
				Background(bgAdvisory)

	StyleSevInfo = lipgloss.NewStyle().
			Foreground(colorMuted).
			Background(bgInfo)

	StyleFavorable = lipgloss.NewStyle().
			Foreground(colorGreen).
			Background(bgGood).
			Bold(true).
			Padding(0, 1)

	StyleUnfavorable = lipgloss.NewStyle().
				Foreground(colorWhite).
				Background(bgWarning).
				Bold(true).
				Padding(0, 1)

	// Form styles
	StyleFieldLabel = lipgloss.NewStyle().
			Foreground(colorMuted)

	StyleFieldFocused = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)

	// Setup wizard
	StyleSetupPane = lipgloss.NewStyle().
			Padding(1, 2)

	StyleSetupTitle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	StyleStepIndicator = lipgloss.NewStyle().
				Foreground(colorGold)

	StylePrompt = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	StyleAccent = lipgloss.NewStyle().
			Foreground(colorAccent)

	StyleHint = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	StyleSuccess = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)
)
