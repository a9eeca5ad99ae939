package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/questline/internal/skillgraph"
	"github.com/abhisek/questline/internal/weekplan"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	require.NotNil(t, s.Client())
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases, so
		// journal_mode is only meaningful against file-backed stores.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		require.NoError(t, err, "PRAGMA %s", tt.pragma)
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestSkillRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.SkillRepo()
	ctx := context.Background()

	err := repo.Create(ctx, []skillgraph.Skill{
		{ID: "s-count", QuestID: "q1", GoalID: "g1", UserID: "u1",
			Title: "Count a steady beat", Topics: []string{"rhythm"},
			SkillType: skillgraph.TypeFoundation, Order: 1,
			Status: skillgraph.StatusAvailable, EstimatedMinutes: 15},
		{ID: "s-tap", QuestID: "q1", GoalID: "g1", UserID: "u1",
			Title: "Tap eighth-note rhythms", SkillType: skillgraph.TypeBuilding, Order: 2,
			PrerequisiteSkillIDs: []string{"s-count"}, Status: skillgraph.StatusLocked},
	})
	require.NoError(t, err)

	got, err := repo.Get(ctx, "s-count")
	require.NoError(t, err)
	assert.Equal(t, "Count a steady beat", got.Title)
	assert.Equal(t, skillgraph.TypeFoundation, got.SkillType)
	assert.Equal(t, skillgraph.MasteryNotStarted, got.Mastery)
	assert.Nil(t, got.MasteredAt)

	byQuest, err := repo.ByQuest(ctx, "q1")
	require.NoError(t, err)
	require.Len(t, byQuest, 2)
	assert.Equal(t, "s-count", byQuest[0].ID, "ordered by position")

	_, err = repo.Get(ctx, "ghost")
	var nf *ErrNotFound
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "ghost", nf.ID)
}

func TestSkillMasteryAndScheduleUpdates(t *testing.T) {
	s := openTestStore(t)
	repo := s.SkillRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, []skillgraph.Skill{
		{ID: "s-count", QuestID: "q1", GoalID: "g1", UserID: "u1",
			Title: "Count a steady beat", SkillType: skillgraph.TypeFoundation,
			Status: skillgraph.StatusInProgress},
	}))

	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	err := repo.UpdateMastery(ctx, skillgraph.Skill{
		ID: "s-count", Mastery: skillgraph.MasteryMastered,
		Status: skillgraph.StatusMastered, PassCount: 3, ConsecutivePasses: 2,
		MasteredAt: &now,
	})
	require.NoError(t, err)

	require.NoError(t, repo.UpdateSchedule(ctx, "s-count", 2, 3, 8))

	got, err := repo.Get(ctx, "s-count")
	require.NoError(t, err)
	assert.Equal(t, skillgraph.MasteryMastered, got.Mastery)
	assert.Equal(t, 3, got.PassCount)
	require.NotNil(t, got.MasteredAt)
	assert.True(t, got.MasteredAt.Equal(now))
	assert.Equal(t, [3]int{2, 3, 8}, [3]int{got.WeekNumber, got.DayInWeek, got.DayInQuest})

	err = repo.UpdateMastery(ctx, skillgraph.Skill{ID: "ghost"})
	var nf *ErrNotFound
	require.ErrorAs(t, err, &nf)
}

func TestWeekPlanUpsertAndStatus(t *testing.T) {
	s := openTestStore(t)
	repo := s.WeekPlanRepo()
	ctx := context.Background()

	plan := &weekplan.WeekPlan{
		ID: "p1", GoalID: "g1", UserID: "u1", QuestID: "q1",
		WeekNumber: 1, WeekInQuest: 1, IsFirstWeekOfQuest: true,
		Days: []weekplan.DayPlan{
			{DayNumber: 1, DayInQuest: 1, SkillID: "s-count",
				ScheduledDate: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)},
			{DayNumber: 2, DayInQuest: 2},
		},
		ScheduledSkillIDs: []string{"s-count"},
		Theme:             "rhythm",
		Status:            weekplan.StatusPending,
		StartDate:         time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		CreatedAt:         time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Save(ctx, plan))

	got, err := repo.Get(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, got.Days, 2)
	assert.Equal(t, "s-count", got.Days[0].SkillID)
	assert.True(t, got.Days[1].IsCatchUp())
	assert.Equal(t, "rhythm", got.Theme)

	// Saving again with advanced aggregates replaces, not duplicates.
	plan.RecordDrillResult(true, false, false)
	require.NoError(t, repo.Save(ctx, plan))

	plans, err := repo.ByGoal(ctx, "g1")
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, 1, plans[0].DrillsPassed)
	assert.Equal(t, 1.0, plans[0].PassRate)

	require.NoError(t, repo.SetStatus(ctx, "p1", weekplan.StatusActive))
	active, err := repo.Active(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, "p1", active.ID)

	_, err = repo.Active(ctx, "g-none")
	var nf *ErrNotFound
	require.ErrorAs(t, err, &nf)
}

func TestEventSequenceAndRetryCount(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	first, err := s.seq.Next(ctx)
	require.NoError(t, err)
	second, err := s.seq.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, first+1, second, "sequence is monotonic")

	require.NoError(t, repo.AppendOutcome(ctx, OutcomeEventData{
		SkillID: "s-count", QuestID: "q1", Outcome: "pass",
		FromMastery: "practicing", ToMastery: "mastered",
		JustMastered: true, UnlockedSkillIDs: []string{"s-tap"}, DrillID: "d1",
	}))

	require.NoError(t, repo.AppendDrill(ctx, DrillEventData{
		DrillID: "d1", SkillID: "s-count", DayNumber: 1, AttemptNumber: 1,
		TotalMinutes: 30, Payload: map[string]any{"ID": "d1"},
	}))
	require.NoError(t, repo.AppendDrill(ctx, DrillEventData{
		DrillID: "d2", SkillID: "s-count", DayNumber: 1, AttemptNumber: 2,
		RetryCount: 1, TotalMinutes: 19, Payload: map[string]any{"ID": "d2"},
	}))

	retries, err := repo.RetryCountForSkill(ctx, "s-count", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, retries)

	none, err := repo.RetryCountForSkill(ctx, "s-count", 9)
	require.NoError(t, err)
	assert.Equal(t, 0, none)
}
