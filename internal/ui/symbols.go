package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess = "✓" // Check passed
	SymbolFail    = "✗" // Check or tool failed
	SymbolWarn    = "⚠" // Known limitation
	SymbolPrompt  = "›" // Awaiting input
	SymbolBullet  = "•"
)
