// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/questline/ent/weekplan"
)

// WeekPlan is the model entity for the WeekPlan schema.
type WeekPlan struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// PlanID holds the value of the "plan_id" field.
	PlanID string `json:"plan_id,omitempty"`
	// GoalID holds the value of the "goal_id" field.
	GoalID string `json:"goal_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// QuestID holds the value of the "quest_id" field.
	QuestID string `json:"quest_id,omitempty"`
	// WeekNumber holds the value of the "week_number" field.
	WeekNumber int `json:"week_number,omitempty"`
	// WeekInQuest holds the value of the "week_in_quest" field.
	WeekInQuest int `json:"week_in_quest,omitempty"`
	// IsFirstWeekOfQuest holds the value of the "is_first_week_of_quest" field.
	IsFirstWeekOfQuest bool `json:"is_first_week_of_quest,omitempty"`
	// IsLastWeekOfQuest holds the value of the "is_last_week_of_quest" field.
	IsLastWeekOfQuest bool `json:"is_last_week_of_quest,omitempty"`
	// Days holds the value of the "days" field.
	Days []map[string]interface{} `json:"days,omitempty"`
	// ScheduledSkillIds holds the value of the "scheduled_skill_ids" field.
	ScheduledSkillIds []string `json:"scheduled_skill_ids,omitempty"`
	// CarryForwardSkillIds holds the value of the "carry_forward_skill_ids" field.
	CarryForwardSkillIds []string `json:"carry_forward_skill_ids,omitempty"`
	// ReviewsFromQuestIds holds the value of the "reviews_from_quest_ids" field.
	ReviewsFromQuestIds []string `json:"reviews_from_quest_ids,omitempty"`
	// BuildsOnSkillIds holds the value of the "builds_on_skill_ids" field.
	BuildsOnSkillIds []string `json:"builds_on_skill_ids,omitempty"`
	// Theme holds the value of the "theme" field.
	Theme string `json:"theme,omitempty"`
	// WeeklyCompetence holds the value of the "weekly_competence" field.
	WeeklyCompetence string `json:"weekly_competence,omitempty"`
	// DrillsCompleted holds the value of the "drills_completed" field.
	DrillsCompleted int `json:"drills_completed,omitempty"`
	// DrillsPassed holds the value of the "drills_passed" field.
	DrillsPassed int `json:"drills_passed,omitempty"`
	// DrillsFailed holds the value of the "drills_failed" field.
	DrillsFailed int `json:"drills_failed,omitempty"`
	// DrillsSkipped holds the value of the "drills_skipped" field.
	DrillsSkipped int `json:"drills_skipped,omitempty"`
	// SkillsMastered holds the value of the "skills_mastered" field.
	SkillsMastered int `json:"skills_mastered,omitempty"`
	// PassRate holds the value of the "pass_rate" field.
	PassRate float64 `json:"pass_rate,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// StartDate holds the value of the "start_date" field.
	StartDate time.Time `json:"start_date,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WeekPlan) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case weekplan.FieldDays, weekplan.FieldScheduledSkillIds, weekplan.FieldCarryForwardSkillIds, weekplan.FieldReviewsFromQuestIds, weekplan.FieldBuildsOnSkillIds:
			values[i] = new([]byte)
		case weekplan.FieldIsFirstWeekOfQuest, weekplan.FieldIsLastWeekOfQuest:
			values[i] = new(sql.NullBool)
		case weekplan.FieldPassRate:
			values[i] = new(sql.NullFloat64)
		case weekplan.FieldID, weekplan.FieldWeekNumber, weekplan.FieldWeekInQuest, weekplan.FieldDrillsCompleted, weekplan.FieldDrillsPassed, weekplan.FieldDrillsFailed, weekplan.FieldDrillsSkipped, weekplan.FieldSkillsMastered:
			values[i] = new(sql.NullInt64)
		case weekplan.FieldPlanID, weekplan.FieldGoalID, weekplan.FieldUserID, weekplan.FieldQuestID, weekplan.FieldTheme, weekplan.FieldWeeklyCompetence, weekplan.FieldStatus:
			values[i] = new(sql.NullString)
		case weekplan.FieldStartDate, weekplan.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WeekPlan fields.
func (_m *WeekPlan) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case weekplan.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case weekplan.FieldPlanID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_id", values[i])
			} else if value.Valid {
				_m.PlanID = value.String
			}
		case weekplan.FieldGoalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field goal_id", values[i])
			} else if value.Valid {
				_m.GoalID = value.String
			}
		case weekplan.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case weekplan.FieldQuestID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quest_id", values[i])
			} else if value.Valid {
				_m.QuestID = value.String
			}
		case weekplan.FieldWeekNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field week_number", values[i])
			} else if value.Valid {
				_m.WeekNumber = int(value.Int64)
			}
		case weekplan.FieldWeekInQuest:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field week_in_quest", values[i])
			} else if value.Valid {
				_m.WeekInQuest = int(value.Int64)
			}
		case weekplan.FieldIsFirstWeekOfQuest:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_first_week_of_quest", values[i])
			} else if value.Valid {
				_m.IsFirstWeekOfQuest = value.Bool
			}
		case weekplan.FieldIsLastWeekOfQuest:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_last_week_of_quest", values[i])
			} else if value.Valid {
				_m.IsLastWeekOfQuest = value.Bool
			}
		case weekplan.FieldDays:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field days", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Days); err != nil {
					return fmt.Errorf("unmarshal field days: %w", err)
				}
			}
		case weekplan.FieldScheduledSkillIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field scheduled_skill_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ScheduledSkillIds); err != nil {
					return fmt.Errorf("unmarshal field scheduled_skill_ids: %w", err)
				}
			}
		case weekplan.FieldCarryForwardSkillIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field carry_forward_skill_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CarryForwardSkillIds); err != nil {
					return fmt.Errorf("unmarshal field carry_forward_skill_ids: %w", err)
				}
			}
		case weekplan.FieldReviewsFromQuestIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field reviews_from_quest_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ReviewsFromQuestIds); err != nil {
					return fmt.Errorf("unmarshal field reviews_from_quest_ids: %w", err)
				}
			}
		case weekplan.FieldBuildsOnSkillIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field builds_on_skill_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.BuildsOnSkillIds); err != nil {
					return fmt.Errorf("unmarshal field builds_on_skill_ids: %w", err)
				}
			}
		case weekplan.FieldTheme:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field theme", values[i])
			} else if value.Valid {
				_m.Theme = value.String
			}
		case weekplan.FieldWeeklyCompetence:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field weekly_competence", values[i])
			} else if value.Valid {
				_m.WeeklyCompetence = value.String
			}
		case weekplan.FieldDrillsCompleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field drills_completed", values[i])
			} else if value.Valid {
				_m.DrillsCompleted = int(value.Int64)
			}
		case weekplan.FieldDrillsPassed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field drills_passed", values[i])
			} else if value.Valid {
				_m.DrillsPassed = int(value.Int64)
			}
		case weekplan.FieldDrillsFailed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field drills_failed", values[i])
			} else if value.Valid {
				_m.DrillsFailed = int(value.Int64)
			}
		case weekplan.FieldDrillsSkipped:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field drills_skipped", values[i])
			} else if value.Valid {
				_m.DrillsSkipped = int(value.Int64)
			}
		case weekplan.FieldSkillsMastered:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field skills_mastered", values[i])
			} else if value.Valid {
				_m.SkillsMastered = int(value.Int64)
			}
		case weekplan.FieldPassRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field pass_rate", values[i])
			} else if value.Valid {
				_m.PassRate = value.Float64
			}
		case weekplan.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case weekplan.FieldStartDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_date", values[i])
			} else if value.Valid {
				_m.StartDate = value.Time
			}
		case weekplan.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WeekPlan.
// This includes values selected through modifiers, order, etc.
func (_m *WeekPlan) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this WeekPlan.
// Note that you need to call WeekPlan.Unwrap() before calling this method if this WeekPlan
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WeekPlan) Update() *WeekPlanUpdateOne {
	return NewWeekPlanClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WeekPlan entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WeekPlan) Unwrap() *WeekPlan {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WeekPlan is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WeekPlan) String() string {
	var builder strings.Builder
	builder.WriteString("WeekPlan(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("plan_id=")
	builder.WriteString(_m.PlanID)
	builder.WriteString(", ")
	builder.WriteString("goal_id=")
	builder.WriteString(_m.GoalID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("quest_id=")
	builder.WriteString(_m.QuestID)
	builder.WriteString(", ")
	builder.WriteString("week_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.WeekNumber))
	builder.WriteString(", ")
	builder.WriteString("week_in_quest=")
	builder.WriteString(fmt.Sprintf("%v", _m.WeekInQuest))
	builder.WriteString(", ")
	builder.WriteString("is_first_week_of_quest=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsFirstWeekOfQuest))
	builder.WriteString(", ")
	builder.WriteString("is_last_week_of_quest=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsLastWeekOfQuest))
	builder.WriteString(", ")
	builder.WriteString("days=")
	builder.WriteString(fmt.Sprintf("%v", _m.Days))
	builder.WriteString(", ")
	builder.WriteString("scheduled_skill_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScheduledSkillIds))
	builder.WriteString(", ")
	builder.WriteString("carry_forward_skill_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.CarryForwardSkillIds))
	builder.WriteString(", ")
	builder.WriteString("reviews_from_quest_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReviewsFromQuestIds))
	builder.WriteString(", ")
	builder.WriteString("builds_on_skill_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.BuildsOnSkillIds))
	builder.WriteString(", ")
	builder.WriteString("theme=")
	builder.WriteString(_m.Theme)
	builder.WriteString(", ")
	builder.WriteString("weekly_competence=")
	builder.WriteString(_m.WeeklyCompetence)
	builder.WriteString(", ")
	builder.WriteString("drills_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.DrillsCompleted))
	builder.WriteString(", ")
	builder.WriteString("drills_passed=")
	builder.WriteString(fmt.Sprintf("%v", _m.DrillsPassed))
	builder.WriteString(", ")
	builder.WriteString("drills_failed=")
	builder.WriteString(fmt.Sprintf("%v", _m.DrillsFailed))
	builder.WriteString(", ")
	builder.WriteString("drills_skipped=")
	builder.WriteString(fmt.Sprintf("%v", _m.DrillsSkipped))
	builder.WriteString(", ")
	builder.WriteString("skills_mastered=")
	builder.WriteString(fmt.Sprintf("%v", _m.SkillsMastered))
	builder.WriteString(", ")
	builder.WriteString("pass_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.PassRate))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("start_date=")
	builder.WriteString(_m.StartDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// WeekPlans is a parsable slice of WeekPlan.
type WeekPlans []*WeekPlan
