package mastery

import (
	"errors"
	"testing"
	"time"

	"github.com/abhisek/questline/internal/skillgraph"
	"github.com/abhisek/questline/internal/unlock"
)

func fixedNow() time.Time {
	return time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
}

func newTestService(skills []skillgraph.Skill) *Service {
	unlockSvc := unlock.NewService(nil)
	unlockSvc.Now = fixedNow
	svc := NewService(skills, unlockSvc, DefaultThresholds())
	svc.Now = fixedNow
	return svc
}

func TestRecordOutcome_UnknownSkill(t *testing.T) {
	svc := newTestService(nil)
	_, err := svc.RecordOutcome("ghost", OutcomePass)
	var notFound *ErrSkillNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("RecordOutcome error = %v, want ErrSkillNotFound", err)
	}
	if notFound.SkillID != "ghost" {
		t.Errorf("SkillID = %q, want ghost", notFound.SkillID)
	}
}

func TestRecordOutcome_FirstPassBeginsPracticing(t *testing.T) {
	svc := newTestService([]skillgraph.Skill{
		{ID: "s", QuestID: "q", Status: skillgraph.StatusAvailable},
	})

	result, err := svc.RecordOutcome("s", OutcomePass)
	if err != nil {
		t.Fatalf("RecordOutcome error = %v", err)
	}
	if result.PrevMastery != skillgraph.MasteryNotStarted || result.NewMastery != skillgraph.MasteryPracticing {
		t.Errorf("mastery %s -> %s, want not_started -> practicing", result.PrevMastery, result.NewMastery)
	}
	if result.NewStatus != skillgraph.StatusInProgress {
		t.Errorf("status = %s, want in_progress", result.NewStatus)
	}
	if result.JustMastered {
		t.Error("JustMastered = true on first pass, want false")
	}
}

func TestRecordOutcome_FailResetsStreakOnly(t *testing.T) {
	svc := newTestService([]skillgraph.Skill{
		{ID: "s", QuestID: "q", Status: skillgraph.StatusInProgress,
			Mastery: skillgraph.MasteryPracticing, PassCount: 2, ConsecutivePasses: 2},
	})

	result, err := svc.RecordOutcome("s", OutcomeFail)
	if err != nil {
		t.Fatalf("RecordOutcome error = %v", err)
	}
	if result.ConsecutivePasses != 0 {
		t.Errorf("ConsecutivePasses = %d, want 0", result.ConsecutivePasses)
	}
	if result.FailCount != 1 || result.PassCount != 2 {
		t.Errorf("counts = %d pass / %d fail, want 2/1", result.PassCount, result.FailCount)
	}
	if result.NewMastery != skillgraph.MasteryPracticing {
		t.Errorf("mastery = %s after fail, want unchanged practicing", result.NewMastery)
	}
}

func TestRecordOutcome_PromotionBoundary(t *testing.T) {
	// passCount=2, consecutive=1: one more pass meets both thresholds (3, 2).
	svc := newTestService([]skillgraph.Skill{
		{ID: "s", QuestID: "q", Status: skillgraph.StatusInProgress,
			Mastery: skillgraph.MasteryPracticing, PassCount: 2, ConsecutivePasses: 1},
	})

	result, err := svc.RecordOutcome("s", OutcomePass)
	if err != nil {
		t.Fatalf("RecordOutcome error = %v", err)
	}
	if !result.JustMastered {
		t.Fatal("JustMastered = false, want true")
	}
	if result.NewMastery != skillgraph.MasteryMastered || result.NewStatus != skillgraph.StatusMastered {
		t.Errorf("state = %s/%s, want mastered/mastered", result.NewMastery, result.NewStatus)
	}

	sk, _ := svc.Get("s")
	if sk.MasteredAt == nil || !sk.MasteredAt.Equal(fixedNow()) {
		t.Errorf("MasteredAt = %v, want %v", sk.MasteredAt, fixedNow())
	}
}

func TestRecordOutcome_HighTotalWithResetStreakStaysPracticing(t *testing.T) {
	// passCount=3 already, but an intervening fail reset the streak: one more
	// pass gives consecutive=1 < 2, so no promotion yet.
	svc := newTestService([]skillgraph.Skill{
		{ID: "s", QuestID: "q", Status: skillgraph.StatusInProgress,
			Mastery: skillgraph.MasteryPracticing, PassCount: 3, FailCount: 1, ConsecutivePasses: 0},
	})

	result, err := svc.RecordOutcome("s", OutcomePass)
	if err != nil {
		t.Fatalf("RecordOutcome error = %v", err)
	}
	if result.JustMastered {
		t.Error("JustMastered = true with streak 1, want false")
	}
	if result.NewMastery != skillgraph.MasteryPracticing {
		t.Errorf("mastery = %s, want practicing", result.NewMastery)
	}

	// The next pass brings the streak to 2 and promotes.
	result, err = svc.RecordOutcome("s", OutcomePass)
	if err != nil {
		t.Fatalf("RecordOutcome error = %v", err)
	}
	if !result.JustMastered {
		t.Error("JustMastered = false once streak reached 2, want true")
	}
}

func TestRecordOutcome_MasteryTriggersUnlockCascade(t *testing.T) {
	svc := newTestService([]skillgraph.Skill{
		{ID: "s", QuestID: "q", Status: skillgraph.StatusInProgress,
			Mastery: skillgraph.MasteryPracticing, PassCount: 2, ConsecutivePasses: 1},
		{ID: "dep1", QuestID: "q", Status: skillgraph.StatusLocked, PrerequisiteSkillIDs: []string{"s"}},
		{ID: "dep2", QuestID: "q", Status: skillgraph.StatusLocked, PrerequisiteSkillIDs: []string{"s"}},
		{ID: "far", QuestID: "q", Status: skillgraph.StatusLocked, PrerequisiteSkillIDs: []string{"dep1"}},
	})

	result, err := svc.RecordOutcome("s", OutcomePass)
	if err != nil {
		t.Fatalf("RecordOutcome error = %v", err)
	}
	if len(result.UnlockedSkillIDs) != 2 {
		t.Fatalf("UnlockedSkillIDs = %v, want [dep1 dep2]", result.UnlockedSkillIDs)
	}

	dep1, _ := svc.Get("dep1")
	if dep1.Status != skillgraph.StatusAvailable {
		t.Errorf("dep1 status = %s, want available", dep1.Status)
	}
	far, _ := svc.Get("far")
	if far.Status != skillgraph.StatusLocked {
		t.Errorf("far status = %s, want locked until dep1 is mastered", far.Status)
	}
}

func TestRecordOutcome_MilestoneHint(t *testing.T) {
	svc := newTestService([]skillgraph.Skill{
		{ID: "a", QuestID: "q", Mastery: skillgraph.MasteryMastered, Status: skillgraph.StatusMastered},
		{ID: "b", QuestID: "q", Status: skillgraph.StatusInProgress,
			Mastery: skillgraph.MasteryPracticing, PassCount: 2, ConsecutivePasses: 1},
		{ID: "cap", QuestID: "q", SkillType: skillgraph.TypeSynthesis, Status: skillgraph.StatusLocked},
	})

	result, err := svc.RecordOutcome("b", OutcomePass)
	if err != nil {
		t.Fatalf("RecordOutcome error = %v", err)
	}
	// 2 of 2 countable skills mastered >= 0.8.
	if !result.MilestoneAvailable {
		t.Error("MilestoneAvailable = false at 100% quest mastery, want true")
	}
}

func TestSummarize(t *testing.T) {
	sum := Summarize([]skillgraph.Skill{
		{Mastery: skillgraph.MasteryMastered},
		{Mastery: skillgraph.MasteryMastered},
		{Mastery: skillgraph.MasteryPracticing},
		{Mastery: skillgraph.MasteryNotStarted},
	})
	if sum.Mastered != 2 || sum.Practicing != 1 || sum.NotStarted != 1 {
		t.Errorf("Summarize = %+v, want 2/1/1", sum)
	}
	if sum.MasteredPercent != 0.5 {
		t.Errorf("MasteredPercent = %f, want 0.5", sum.MasteredPercent)
	}
}

func TestQuestMasteryPercent_ExcludesSynthesis(t *testing.T) {
	skills := []skillgraph.Skill{
		{ID: "a", QuestID: "q", Mastery: skillgraph.MasteryMastered},
		{ID: "b", QuestID: "q", Mastery: skillgraph.MasteryMastered},
		{ID: "cap", QuestID: "q", SkillType: skillgraph.TypeSynthesis},
		{ID: "c", QuestID: "q", Mastery: skillgraph.MasteryPracticing},
	}
	got := QuestMasteryPercent("q", skills)
	want := 2.0 / 3.0
	if got < want-1e-9 || got > want+1e-9 {
		t.Errorf("QuestMasteryPercent = %f, want %f", got, want)
	}
}

func TestQuestMasteryPercent_EmptyQuest(t *testing.T) {
	if got := QuestMasteryPercent("empty", nil); got != 0 {
		t.Errorf("QuestMasteryPercent(empty) = %f, want 0", got)
	}
}
