package progress

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/questline/internal/drill"
	"github.com/abhisek/questline/internal/mastery"
	"github.com/abhisek/questline/internal/skillgraph"
	"github.com/abhisek/questline/internal/store"
	"github.com/abhisek/questline/internal/weekplan"
)

func fixedNow() time.Time {
	return time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
}

// fakeSkillRepo keeps skills in memory, in insertion order, and records
// schedule writes.
type fakeSkillRepo struct {
	skills    map[string]skillgraph.Skill
	order     []string
	scheduled map[string][3]int
}

func newFakeSkillRepo(skills ...skillgraph.Skill) *fakeSkillRepo {
	r := &fakeSkillRepo{
		skills:    make(map[string]skillgraph.Skill),
		scheduled: make(map[string][3]int),
	}
	r.Create(context.Background(), skills)
	return r
}

func (r *fakeSkillRepo) Create(ctx context.Context, skills []skillgraph.Skill) error {
	for _, s := range skills {
		if _, ok := r.skills[s.ID]; !ok {
			r.order = append(r.order, s.ID)
		}
		r.skills[s.ID] = s
	}
	return nil
}

func (r *fakeSkillRepo) Get(ctx context.Context, skillID string) (skillgraph.Skill, error) {
	s, ok := r.skills[skillID]
	if !ok {
		return skillgraph.Skill{}, &store.ErrNotFound{Kind: "skill", ID: skillID}
	}
	return s, nil
}

func (r *fakeSkillRepo) ByQuest(ctx context.Context, questID string) ([]skillgraph.Skill, error) {
	return r.filter(func(s skillgraph.Skill) bool { return s.QuestID == questID }), nil
}

func (r *fakeSkillRepo) ByGoal(ctx context.Context, goalID string) ([]skillgraph.Skill, error) {
	return r.filter(func(s skillgraph.Skill) bool { return s.GoalID == goalID }), nil
}

func (r *fakeSkillRepo) ByStatus(ctx context.Context, status skillgraph.Status) ([]skillgraph.Skill, error) {
	return r.filter(func(s skillgraph.Skill) bool { return s.Status == status }), nil
}

func (r *fakeSkillRepo) ByType(ctx context.Context, skillType skillgraph.SkillType) ([]skillgraph.Skill, error) {
	return r.filter(func(s skillgraph.Skill) bool { return s.SkillType == skillType }), nil
}

func (r *fakeSkillRepo) filter(keep func(skillgraph.Skill) bool) []skillgraph.Skill {
	var out []skillgraph.Skill
	for _, id := range r.order {
		if s := r.skills[id]; keep(s) {
			out = append(out, s)
		}
	}
	return out
}

func (r *fakeSkillRepo) UpdateMastery(ctx context.Context, s skillgraph.Skill) error {
	cur, ok := r.skills[s.ID]
	if !ok {
		return &store.ErrNotFound{Kind: "skill", ID: s.ID}
	}
	cur.Mastery = s.Mastery
	cur.PassCount = s.PassCount
	cur.FailCount = s.FailCount
	cur.ConsecutivePasses = s.ConsecutivePasses
	cur.MasteredAt = s.MasteredAt
	r.skills[s.ID] = cur
	return nil
}

func (r *fakeSkillRepo) UpdateStatus(ctx context.Context, s skillgraph.Skill) error {
	cur, ok := r.skills[s.ID]
	if !ok {
		return &store.ErrNotFound{Kind: "skill", ID: s.ID}
	}
	cur.Status = s.Status
	cur.UnlockedAt = s.UnlockedAt
	r.skills[s.ID] = cur
	return nil
}

func (r *fakeSkillRepo) UpdateSchedule(ctx context.Context, skillID string, weekNumber, dayInWeek, dayInQuest int) error {
	if _, ok := r.skills[skillID]; !ok {
		return &store.ErrNotFound{Kind: "skill", ID: skillID}
	}
	r.scheduled[skillID] = [3]int{weekNumber, dayInWeek, dayInQuest}
	return nil
}

// fakePlanRepo keeps plans in memory.
type fakePlanRepo struct {
	plans map[string]*weekplan.WeekPlan
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: make(map[string]*weekplan.WeekPlan)}
}

func (r *fakePlanRepo) Save(ctx context.Context, plan *weekplan.WeekPlan) error {
	cp := *plan
	r.plans[plan.ID] = &cp
	return nil
}

func (r *fakePlanRepo) Get(ctx context.Context, planID string) (*weekplan.WeekPlan, error) {
	p, ok := r.plans[planID]
	if !ok {
		return nil, &store.ErrNotFound{Kind: "week plan", ID: planID}
	}
	cp := *p
	return &cp, nil
}

func (r *fakePlanRepo) ByGoal(ctx context.Context, goalID string) ([]*weekplan.WeekPlan, error) {
	var out []*weekplan.WeekPlan
	for _, p := range r.plans {
		if p.GoalID == goalID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakePlanRepo) Active(ctx context.Context, goalID string) (*weekplan.WeekPlan, error) {
	for _, p := range r.plans {
		if p.GoalID == goalID && p.Status == weekplan.StatusActive {
			cp := *p
			return &cp, nil
		}
	}
	return nil, &store.ErrNotFound{Kind: "active week plan", ID: goalID}
}

func (r *fakePlanRepo) SetStatus(ctx context.Context, planID string, status weekplan.PlanStatus) error {
	p, ok := r.plans[planID]
	if !ok {
		return &store.ErrNotFound{Kind: "week plan", ID: planID}
	}
	p.Status = status
	return nil
}

// fakeEventRepo records appended events.
type fakeEventRepo struct {
	outcomes []store.OutcomeEventData
	drills   []store.DrillEventData
}

func (r *fakeEventRepo) AppendOutcome(ctx context.Context, data store.OutcomeEventData) error {
	r.outcomes = append(r.outcomes, data)
	return nil
}

func (r *fakeEventRepo) AppendDrill(ctx context.Context, data store.DrillEventData) error {
	r.drills = append(r.drills, data)
	return nil
}

func (r *fakeEventRepo) RetryCountForSkill(ctx context.Context, skillID string, dayNumber int) (int, error) {
	n := 0
	for _, d := range r.drills {
		if d.SkillID == skillID && d.DayNumber == dayNumber {
			n++
		}
	}
	if n == 0 {
		return 0, nil
	}
	return n - 1, nil
}

func goalSkills() []skillgraph.Skill {
	return []skillgraph.Skill{
		{ID: "s-count", GoalID: "g1", QuestID: "q1", Title: "Count a steady beat",
			SkillType: skillgraph.TypeFoundation, Status: skillgraph.StatusInProgress,
			Mastery: skillgraph.MasteryPracticing, PassCount: 2, ConsecutivePasses: 1,
			EstimatedMinutes: 15, Action: "Count quarter notes along a metronome at 60 bpm."},
		{ID: "s-tap", GoalID: "g1", QuestID: "q1", Title: "Tap eighth-note rhythms",
			SkillType: skillgraph.TypeBuilding, Status: skillgraph.StatusLocked,
			PrerequisiteSkillIDs: []string{"s-count"}, EstimatedMinutes: 15},
		{ID: "s-bar", GoalID: "g1", QuestID: "q1", Title: "Clap full bars",
			SkillType: skillgraph.TypeBuilding, Status: skillgraph.StatusLocked,
			PrerequisiteSkillIDs: []string{"s-count", "s-tap"}, EstimatedMinutes: 15},
	}
}

func newTestTracker(skills *fakeSkillRepo) (*Tracker, *fakePlanRepo, *fakeEventRepo) {
	plans := newFakePlanRepo()
	events := &fakeEventRepo{}
	tr := NewTracker(skills, plans, events, mastery.DefaultThresholds())
	tr.Now = fixedNow
	return tr, plans, events
}

func TestRecordOutcome_PersistsMasteryAndUnlocks(t *testing.T) {
	repo := newFakeSkillRepo(goalSkills()...)
	tr, _, events := newTestTracker(repo)

	// s-count is at 2 passes with a streak of 1; this pass masters it.
	result, err := tr.RecordOutcome(context.Background(), "s-count", mastery.OutcomePass, "d1")
	if err != nil {
		t.Fatalf("RecordOutcome error = %v", err)
	}
	if !result.JustMastered {
		t.Fatal("JustMastered = false, want true")
	}

	stored, _ := repo.Get(context.Background(), "s-count")
	if stored.Mastery != skillgraph.MasteryMastered || stored.Status != skillgraph.StatusMastered {
		t.Errorf("stored skill = %s/%s, want mastered/mastered", stored.Mastery, stored.Status)
	}
	if stored.MasteredAt == nil || !stored.MasteredAt.Equal(fixedNow()) {
		t.Errorf("MasteredAt = %v, want %v", stored.MasteredAt, fixedNow())
	}

	// s-tap's only prerequisite is now mastered; the cascade must have
	// persisted its unlock. s-bar still waits on s-tap.
	tap, _ := repo.Get(context.Background(), "s-tap")
	if tap.Status != skillgraph.StatusAvailable {
		t.Errorf("s-tap status = %s, want available", tap.Status)
	}
	bar, _ := repo.Get(context.Background(), "s-bar")
	if bar.Status != skillgraph.StatusLocked {
		t.Errorf("s-bar status = %s, want locked", bar.Status)
	}

	if len(events.outcomes) != 1 {
		t.Fatalf("outcome events = %d, want 1", len(events.outcomes))
	}
	ev := events.outcomes[0]
	if ev.SkillID != "s-count" || ev.DrillID != "d1" || !ev.JustMastered {
		t.Errorf("event = %+v, want s-count/d1/just mastered", ev)
	}
	if len(ev.UnlockedSkillIDs) != 1 || ev.UnlockedSkillIDs[0] != "s-tap" {
		t.Errorf("event unlocked = %v, want [s-tap]", ev.UnlockedSkillIDs)
	}
}

func TestRecordOutcome_UnknownSkill(t *testing.T) {
	tr, _, _ := newTestTracker(newFakeSkillRepo())
	_, err := tr.RecordOutcome(context.Background(), "ghost", mastery.OutcomePass, "")
	var nf *store.ErrNotFound
	if !errors.As(err, &nf) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestApplySchedule_StampsSkillPositions(t *testing.T) {
	repo := newFakeSkillRepo(goalSkills()...)
	tr, plans, _ := newTestTracker(repo)

	plan := &weekplan.WeekPlan{
		ID: "p1", GoalID: "g1", QuestID: "q1", WeekNumber: 2,
		Days: []weekplan.DayPlan{
			{DayNumber: 1, DayInQuest: 6, SkillID: "s-count"},
			{DayNumber: 2, DayInQuest: 7, SkillID: "s-tap"},
			{DayNumber: 3, DayInQuest: 8}, // catch-up
		},
	}
	if err := tr.ApplySchedule(context.Background(), []*weekplan.WeekPlan{plan}); err != nil {
		t.Fatalf("ApplySchedule error = %v", err)
	}

	if _, err := plans.Get(context.Background(), "p1"); err != nil {
		t.Errorf("saved plan missing: %v", err)
	}
	if got := repo.scheduled["s-tap"]; got != [3]int{2, 2, 7} {
		t.Errorf("s-tap schedule = %v, want [2 2 7]", got)
	}
	if _, ok := repo.scheduled[""]; ok {
		t.Error("catch-up day produced a schedule write")
	}
}

func TestActivatePlan_CompletesPreviousActive(t *testing.T) {
	tr, plans, _ := newTestTracker(newFakeSkillRepo())
	plans.Save(context.Background(), &weekplan.WeekPlan{ID: "p1", GoalID: "g1", Status: weekplan.StatusActive})
	plans.Save(context.Background(), &weekplan.WeekPlan{ID: "p2", GoalID: "g1", Status: weekplan.StatusPending})

	if err := tr.ActivatePlan(context.Background(), "g1", "p2"); err != nil {
		t.Fatalf("ActivatePlan error = %v", err)
	}
	p1, _ := plans.Get(context.Background(), "p1")
	p2, _ := plans.Get(context.Background(), "p2")
	if p1.Status != weekplan.StatusCompleted {
		t.Errorf("p1 status = %s, want completed", p1.Status)
	}
	if p2.Status != weekplan.StatusActive {
		t.Errorf("p2 status = %s, want active", p2.Status)
	}
}

func TestGenerateDrill_ResolvesDayAndLogsEvent(t *testing.T) {
	repo := newFakeSkillRepo(goalSkills()...)
	tr, plans, events := newTestTracker(repo)

	plans.Save(context.Background(), &weekplan.WeekPlan{
		ID: "p1", GoalID: "g1", UserID: "u1", QuestID: "q1", WeekNumber: 1,
		Days: []weekplan.DayPlan{
			{DayNumber: 1, DayInQuest: 1, SkillID: "s-count", ReviewSkillID: "s-tap"},
		},
	})

	engine := drill.NewEngine(drill.DefaultConfig())
	engine.Now = fixedNow

	d, err := tr.GenerateDrill(context.Background(), engine, "p1", 1)
	if err != nil {
		t.Fatalf("GenerateDrill error = %v", err)
	}
	if d.SkillID != "s-count" || d.WeekPlanID != "p1" {
		t.Errorf("drill = %s/%s, want s-count/p1", d.SkillID, d.WeekPlanID)
	}
	if d.Warmup == nil || d.Warmup.SourceSkillID != "s-tap" {
		t.Errorf("warmup = %+v, want sourced from s-tap", d.Warmup)
	}

	if len(events.drills) != 1 {
		t.Fatalf("drill events = %d, want 1", len(events.drills))
	}
	if events.drills[0].DrillID != d.ID || events.drills[0].Payload == nil {
		t.Errorf("drill event = %+v, want logged with payload", events.drills[0])
	}
}

func TestGenerateDrill_CatchUpDay(t *testing.T) {
	tr, plans, _ := newTestTracker(newFakeSkillRepo(goalSkills()...))
	plans.Save(context.Background(), &weekplan.WeekPlan{
		ID: "p1", GoalID: "g1", QuestID: "q1",
		Days: []weekplan.DayPlan{{DayNumber: 1, DayInQuest: 1}},
	})

	engine := drill.NewEngine(drill.DefaultConfig())
	if _, err := tr.GenerateDrill(context.Background(), engine, "p1", 1); err == nil {
		t.Fatal("GenerateDrill on a catch-up day succeeded, want error")
	}
}

func TestCompleteDrill_UpdatesPlanAggregates(t *testing.T) {
	repo := newFakeSkillRepo(goalSkills()...)
	tr, plans, _ := newTestTracker(repo)
	plans.Save(context.Background(), &weekplan.WeekPlan{ID: "p1", GoalID: "g1", QuestID: "q1"})

	d := &drill.DailyDrill{ID: "d1", SkillID: "s-count", WeekPlanID: "p1", DayNumber: 1}
	result, err := tr.CompleteDrill(context.Background(), d, mastery.OutcomePass, false)
	if err != nil {
		t.Fatalf("CompleteDrill error = %v", err)
	}
	if result == nil || !result.JustMastered {
		t.Fatalf("result = %+v, want mastery promotion", result)
	}

	plan, _ := plans.Get(context.Background(), "p1")
	if plan.DrillsCompleted != 1 || plan.DrillsPassed != 1 || plan.SkillsMastered != 1 {
		t.Errorf("aggregates = %d completed / %d passed / %d mastered, want 1/1/1",
			plan.DrillsCompleted, plan.DrillsPassed, plan.SkillsMastered)
	}
	if plan.PassRate != 1.0 {
		t.Errorf("PassRate = %v, want 1.0", plan.PassRate)
	}
}

func TestCompleteDrill_SkipRecordsNoOutcome(t *testing.T) {
	repo := newFakeSkillRepo(goalSkills()...)
	tr, plans, events := newTestTracker(repo)
	plans.Save(context.Background(), &weekplan.WeekPlan{ID: "p1", GoalID: "g1", QuestID: "q1"})

	d := &drill.DailyDrill{ID: "d1", SkillID: "s-count", WeekPlanID: "p1"}
	result, err := tr.CompleteDrill(context.Background(), d, "", true)
	if err != nil {
		t.Fatalf("CompleteDrill error = %v", err)
	}
	if result != nil {
		t.Errorf("result = %+v on skip, want nil", result)
	}
	if len(events.outcomes) != 0 {
		t.Errorf("outcome events = %d on skip, want 0", len(events.outcomes))
	}

	plan, _ := plans.Get(context.Background(), "p1")
	if plan.DrillsSkipped != 1 || plan.DrillsPassed != 0 {
		t.Errorf("aggregates = %d skipped / %d passed, want 1/0", plan.DrillsSkipped, plan.DrillsPassed)
	}
	if plan.PassRate != 0 {
		t.Errorf("PassRate = %v after skip only, want 0", plan.PassRate)
	}
}

func TestQuestReport(t *testing.T) {
	skills := goalSkills()
	now := fixedNow()
	skills[0].Mastery = skillgraph.MasteryMastered
	skills[0].Status = skillgraph.StatusMastered
	skills[0].MasteredAt = &now
	repo := newFakeSkillRepo(skills...)
	tr, _, _ := newTestTracker(repo)

	report, err := tr.QuestReport(context.Background(), "q1")
	if err != nil {
		t.Fatalf("QuestReport error = %v", err)
	}
	want := 1.0 / 3.0
	if diff := report.MasteryPercent - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("MasteryPercent = %v, want %v", report.MasteryPercent, want)
	}
	if report.MilestoneAvailable {
		t.Error("MilestoneAvailable = true at 1/3 mastery, want false")
	}
}
