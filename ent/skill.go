// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/questline/ent/skill"
)

// Skill is the model entity for the Skill schema.
type Skill struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SkillID holds the value of the "skill_id" field.
	SkillID string `json:"skill_id,omitempty"`
	// QuestID holds the value of the "quest_id" field.
	QuestID string `json:"quest_id,omitempty"`
	// GoalID holds the value of the "goal_id" field.
	GoalID string `json:"goal_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Topics holds the value of the "topics" field.
	Topics []string `json:"topics,omitempty"`
	// Action holds the value of the "action" field.
	Action string `json:"action,omitempty"`
	// SuccessSignal holds the value of the "success_signal" field.
	SuccessSignal string `json:"success_signal,omitempty"`
	// Constraints holds the value of the "constraints" field.
	Constraints string `json:"constraints,omitempty"`
	// TransferScenario holds the value of the "transfer_scenario" field.
	TransferScenario string `json:"transfer_scenario,omitempty"`
	// EstimatedMinutes holds the value of the "estimated_minutes" field.
	EstimatedMinutes int `json:"estimated_minutes,omitempty"`
	// SkillType holds the value of the "skill_type" field.
	SkillType string `json:"skill_type,omitempty"`
	// Depth holds the value of the "depth" field.
	Depth int `json:"depth,omitempty"`
	// Order holds the value of the "order" field.
	Order int `json:"order,omitempty"`
	// PrerequisiteSkillIds holds the value of the "prerequisite_skill_ids" field.
	PrerequisiteSkillIds []string `json:"prerequisite_skill_ids,omitempty"`
	// PrerequisiteQuestIds holds the value of the "prerequisite_quest_ids" field.
	PrerequisiteQuestIds []string `json:"prerequisite_quest_ids,omitempty"`
	// IsCompound holds the value of the "is_compound" field.
	IsCompound bool `json:"is_compound,omitempty"`
	// ComponentSkillIds holds the value of the "component_skill_ids" field.
	ComponentSkillIds []string `json:"component_skill_ids,omitempty"`
	// WeekNumber holds the value of the "week_number" field.
	WeekNumber int `json:"week_number,omitempty"`
	// DayInWeek holds the value of the "day_in_week" field.
	DayInWeek int `json:"day_in_week,omitempty"`
	// DayInQuest holds the value of the "day_in_quest" field.
	DayInQuest int `json:"day_in_quest,omitempty"`
	// Mastery holds the value of the "mastery" field.
	Mastery string `json:"mastery,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// PassCount holds the value of the "pass_count" field.
	PassCount int `json:"pass_count,omitempty"`
	// FailCount holds the value of the "fail_count" field.
	FailCount int `json:"fail_count,omitempty"`
	// ConsecutivePasses holds the value of the "consecutive_passes" field.
	ConsecutivePasses int `json:"consecutive_passes,omitempty"`
	// MasteredAt holds the value of the "mastered_at" field.
	MasteredAt *time.Time `json:"mastered_at,omitempty"`
	// UnlockedAt holds the value of the "unlocked_at" field.
	UnlockedAt   *time.Time `json:"unlocked_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Skill) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case skill.FieldTopics, skill.FieldPrerequisiteSkillIds, skill.FieldPrerequisiteQuestIds, skill.FieldComponentSkillIds:
			values[i] = new([]byte)
		case skill.FieldIsCompound:
			values[i] = new(sql.NullBool)
		case skill.FieldID, skill.FieldEstimatedMinutes, skill.FieldDepth, skill.FieldOrder, skill.FieldWeekNumber, skill.FieldDayInWeek, skill.FieldDayInQuest, skill.FieldPassCount, skill.FieldFailCount, skill.FieldConsecutivePasses:
			values[i] = new(sql.NullInt64)
		case skill.FieldSkillID, skill.FieldQuestID, skill.FieldGoalID, skill.FieldUserID, skill.FieldTitle, skill.FieldAction, skill.FieldSuccessSignal, skill.FieldConstraints, skill.FieldTransferScenario, skill.FieldSkillType, skill.FieldMastery, skill.FieldStatus:
			values[i] = new(sql.NullString)
		case skill.FieldMasteredAt, skill.FieldUnlockedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Skill fields.
func (_m *Skill) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case skill.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case skill.FieldSkillID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_id", values[i])
			} else if value.Valid {
				_m.SkillID = value.String
			}
		case skill.FieldQuestID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quest_id", values[i])
			} else if value.Valid {
				_m.QuestID = value.String
			}
		case skill.FieldGoalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field goal_id", values[i])
			} else if value.Valid {
				_m.GoalID = value.String
			}
		case skill.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case skill.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case skill.FieldTopics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field topics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Topics); err != nil {
					return fmt.Errorf("unmarshal field topics: %w", err)
				}
			}
		case skill.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case skill.FieldSuccessSignal:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field success_signal", values[i])
			} else if value.Valid {
				_m.SuccessSignal = value.String
			}
		case skill.FieldConstraints:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field constraints", values[i])
			} else if value.Valid {
				_m.Constraints = value.String
			}
		case skill.FieldTransferScenario:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field transfer_scenario", values[i])
			} else if value.Valid {
				_m.TransferScenario = value.String
			}
		case skill.FieldEstimatedMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_minutes", values[i])
			} else if value.Valid {
				_m.EstimatedMinutes = int(value.Int64)
			}
		case skill.FieldSkillType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_type", values[i])
			} else if value.Valid {
				_m.SkillType = value.String
			}
		case skill.FieldDepth:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field depth", values[i])
			} else if value.Valid {
				_m.Depth = int(value.Int64)
			}
		case skill.FieldOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field order", values[i])
			} else if value.Valid {
				_m.Order = int(value.Int64)
			}
		case skill.FieldPrerequisiteSkillIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field prerequisite_skill_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PrerequisiteSkillIds); err != nil {
					return fmt.Errorf("unmarshal field prerequisite_skill_ids: %w", err)
				}
			}
		case skill.FieldPrerequisiteQuestIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field prerequisite_quest_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PrerequisiteQuestIds); err != nil {
					return fmt.Errorf("unmarshal field prerequisite_quest_ids: %w", err)
				}
			}
		case skill.FieldIsCompound:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_compound", values[i])
			} else if value.Valid {
				_m.IsCompound = value.Bool
			}
		case skill.FieldComponentSkillIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field component_skill_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ComponentSkillIds); err != nil {
					return fmt.Errorf("unmarshal field component_skill_ids: %w", err)
				}
			}
		case skill.FieldWeekNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field week_number", values[i])
			} else if value.Valid {
				_m.WeekNumber = int(value.Int64)
			}
		case skill.FieldDayInWeek:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field day_in_week", values[i])
			} else if value.Valid {
				_m.DayInWeek = int(value.Int64)
			}
		case skill.FieldDayInQuest:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field day_in_quest", values[i])
			} else if value.Valid {
				_m.DayInQuest = int(value.Int64)
			}
		case skill.FieldMastery:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mastery", values[i])
			} else if value.Valid {
				_m.Mastery = value.String
			}
		case skill.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case skill.FieldPassCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pass_count", values[i])
			} else if value.Valid {
				_m.PassCount = int(value.Int64)
			}
		case skill.FieldFailCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field fail_count", values[i])
			} else if value.Valid {
				_m.FailCount = int(value.Int64)
			}
		case skill.FieldConsecutivePasses:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field consecutive_passes", values[i])
			} else if value.Valid {
				_m.ConsecutivePasses = int(value.Int64)
			}
		case skill.FieldMasteredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field mastered_at", values[i])
			} else if value.Valid {
				_m.MasteredAt = new(time.Time)
				*_m.MasteredAt = value.Time
			}
		case skill.FieldUnlockedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field unlocked_at", values[i])
			} else if value.Valid {
				_m.UnlockedAt = new(time.Time)
				*_m.UnlockedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Skill.
// This includes values selected through modifiers, order, etc.
func (_m *Skill) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Skill.
// Note that you need to call Skill.Unwrap() before calling this method if this Skill
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Skill) Update() *SkillUpdateOne {
	return NewSkillClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Skill entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Skill) Unwrap() *Skill {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Skill is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Skill) String() string {
	var builder strings.Builder
	builder.WriteString("Skill(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("skill_id=")
	builder.WriteString(_m.SkillID)
	builder.WriteString(", ")
	builder.WriteString("quest_id=")
	builder.WriteString(_m.QuestID)
	builder.WriteString(", ")
	builder.WriteString("goal_id=")
	builder.WriteString(_m.GoalID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("topics=")
	builder.WriteString(fmt.Sprintf("%v", _m.Topics))
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("success_signal=")
	builder.WriteString(_m.SuccessSignal)
	builder.WriteString(", ")
	builder.WriteString("constraints=")
	builder.WriteString(_m.Constraints)
	builder.WriteString(", ")
	builder.WriteString("transfer_scenario=")
	builder.WriteString(_m.TransferScenario)
	builder.WriteString(", ")
	builder.WriteString("estimated_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.EstimatedMinutes))
	builder.WriteString(", ")
	builder.WriteString("skill_type=")
	builder.WriteString(_m.SkillType)
	builder.WriteString(", ")
	builder.WriteString("depth=")
	builder.WriteString(fmt.Sprintf("%v", _m.Depth))
	builder.WriteString(", ")
	builder.WriteString("order=")
	builder.WriteString(fmt.Sprintf("%v", _m.Order))
	builder.WriteString(", ")
	builder.WriteString("prerequisite_skill_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.PrerequisiteSkillIds))
	builder.WriteString(", ")
	builder.WriteString("prerequisite_quest_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.PrerequisiteQuestIds))
	builder.WriteString(", ")
	builder.WriteString("is_compound=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsCompound))
	builder.WriteString(", ")
	builder.WriteString("component_skill_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.ComponentSkillIds))
	builder.WriteString(", ")
	builder.WriteString("week_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.WeekNumber))
	builder.WriteString(", ")
	builder.WriteString("day_in_week=")
	builder.WriteString(fmt.Sprintf("%v", _m.DayInWeek))
	builder.WriteString(", ")
	builder.WriteString("day_in_quest=")
	builder.WriteString(fmt.Sprintf("%v", _m.DayInQuest))
	builder.WriteString(", ")
	builder.WriteString("mastery=")
	builder.WriteString(_m.Mastery)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("pass_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.PassCount))
	builder.WriteString(", ")
	builder.WriteString("fail_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailCount))
	builder.WriteString(", ")
	builder.WriteString("consecutive_passes=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConsecutivePasses))
	builder.WriteString(", ")
	if v := _m.MasteredAt; v != nil {
		builder.WriteString("mastered_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.UnlockedAt; v != nil {
		builder.WriteString("unlocked_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Skills is a parsable slice of Skill.
type Skills []*Skill
