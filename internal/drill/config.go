package drill

// Config controls daily drill composition and time budgeting.
type Config struct {
	// DailyMinutes is the day's total practice budget.
	DailyMinutes int

	// WarmupMinutes is the fixed duration of a warmup section.
	WarmupMinutes int

	// StretchMinutes is the fixed duration of a stretch section.
	StretchMinutes int

	// MinMainMinutes floors the main section even when the remaining
	// budget is smaller; going over budget is reported as a warning.
	MinMainMinutes int

	// EnableStretch gates stretch sections globally.
	EnableStretch bool

	// MaxRetryAttempts caps retry adaptation per skill per day.
	MaxRetryAttempts int
}

// DefaultConfig returns the standard drill configuration.
func DefaultConfig() Config {
	return Config{
		DailyMinutes:     30,
		WarmupMinutes:    5,
		StretchMinutes:   5,
		MinMainMinutes:   10,
		EnableStretch:    true,
		MaxRetryAttempts: 3,
	}
}
