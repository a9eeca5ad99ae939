package store

// Event repo infrastructure.
//
// Each event type lives in its own ent-managed table using the EventMixin,
// so per-table auto-increment IDs can't establish cross-type ordering. The
// shared sequence counter assigns a single increasing number to every event
// regardless of type, keeping outcome and drill events globally ordered.

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/abhisek/questline/ent"
	entdrillevent "github.com/abhisek/questline/ent/drillevent"
)

// sequenceCounter manages the global monotonic sequence number shared across
// all event types. Uses raw SQL outside ent because ent doesn't support
// database-level atomic counters. The mutex serializes within the process;
// the RETURNING clause makes the increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendOutcome(ctx context.Context, data OutcomeEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.OutcomeEvent.Create().
		SetSequence(seqNum).
		SetSkillID(data.SkillID).
		SetOutcome(data.Outcome).
		SetFromMastery(data.FromMastery).
		SetToMastery(data.ToMastery).
		SetJustMastered(data.JustMastered).
		SetUnlockedSkills(data.UnlockedSkillIDs)

	if data.QuestID != "" {
		builder = builder.SetQuestID(data.QuestID)
	}
	if data.DrillID != "" {
		builder = builder.SetDrillID(data.DrillID)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save outcome event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendDrill(ctx context.Context, data DrillEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.DrillEvent.Create().
		SetSequence(seqNum).
		SetDrillID(data.DrillID).
		SetSkillID(data.SkillID).
		SetDayNumber(data.DayNumber).
		SetAttemptNumber(data.AttemptNumber).
		SetRetryCount(data.RetryCount).
		SetTotalMinutes(data.TotalMinutes).
		SetPayload(data.Payload)

	if data.WeekPlanID != "" {
		builder = builder.SetWeekPlanID(data.WeekPlanID)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save drill event: %w", err)
	}
	return nil
}

func (r *eventRepo) RetryCountForSkill(ctx context.Context, skillID string, dayNumber int) (int, error) {
	n, err := r.client.DrillEvent.Query().
		Where(
			entdrillevent.SkillID(skillID),
			entdrillevent.DayNumber(dayNumber),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count drill events: %w", err)
	}
	if n == 0 {
		return 0, nil
	}
	return n - 1, nil
}
