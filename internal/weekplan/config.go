package weekplan

// Config controls week plan generation.
type Config struct {
	// DaysPerWeek is the number of practice days scheduled per week.
	DaysPerWeek int

	// MaxReviewSkillsPerWeek caps cross-quest review selection.
	MaxReviewSkillsPerWeek int

	// ReviewSampleProbability is the inclusion chance for spaced-repetition
	// sampling of mastered previous-quest skills that are not direct
	// prerequisites of this week's work.
	ReviewSampleProbability float64

	// ShuffleReviews randomizes review order before the cap is applied.
	// Discovery order is kept when false.
	ShuffleReviews bool
}

// DefaultConfig returns the standard scheduling configuration.
func DefaultConfig() Config {
	return Config{
		DaysPerWeek:             5,
		MaxReviewSkillsPerWeek:  3,
		ReviewSampleProbability: 0.4,
		ShuffleReviews:          false,
	}
}
