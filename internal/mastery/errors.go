package mastery

import "fmt"

// ErrSkillNotFound indicates an outcome was recorded against a skill ID with
// no backing record. This is always surfaced, never silently ignored.
type ErrSkillNotFound struct {
	SkillID string
}

func (e *ErrSkillNotFound) Error() string {
	return fmt.Sprintf("skill not found: %q", e.SkillID)
}
