package drill

import "fmt"

// ErrMaxRetriesExceeded indicates a retry adaptation was requested past the
// configured cap. The caller decides whether to offer skipping the skill.
type ErrMaxRetriesExceeded struct {
	SkillID    string
	RetryCount int
	Max        int
}

func (e *ErrMaxRetriesExceeded) Error() string {
	return fmt.Sprintf("max retries exceeded for skill %q: %d attempts, cap %d", e.SkillID, e.RetryCount, e.Max)
}
