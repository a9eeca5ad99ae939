// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/questline/ent/outcomeevent"
)

// OutcomeEvent is the model entity for the OutcomeEvent schema.
type OutcomeEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Global position across all event tables
	Sequence int64 `json:"sequence,omitempty"`
	// UTC time the event was recorded
	Timestamp time.Time `json:"timestamp,omitempty"`
	// SkillID holds the value of the "skill_id" field.
	SkillID string `json:"skill_id,omitempty"`
	// QuestID holds the value of the "quest_id" field.
	QuestID string `json:"quest_id,omitempty"`
	// Outcome holds the value of the "outcome" field.
	Outcome string `json:"outcome,omitempty"`
	// FromMastery holds the value of the "from_mastery" field.
	FromMastery string `json:"from_mastery,omitempty"`
	// ToMastery holds the value of the "to_mastery" field.
	ToMastery string `json:"to_mastery,omitempty"`
	// JustMastered holds the value of the "just_mastered" field.
	JustMastered bool `json:"just_mastered,omitempty"`
	// UnlockedSkills holds the value of the "unlocked_skills" field.
	UnlockedSkills []string `json:"unlocked_skills,omitempty"`
	// DrillID holds the value of the "drill_id" field.
	DrillID      string `json:"drill_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*OutcomeEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case outcomeevent.FieldUnlockedSkills:
			values[i] = new([]byte)
		case outcomeevent.FieldJustMastered:
			values[i] = new(sql.NullBool)
		case outcomeevent.FieldID, outcomeevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case outcomeevent.FieldSkillID, outcomeevent.FieldQuestID, outcomeevent.FieldOutcome, outcomeevent.FieldFromMastery, outcomeevent.FieldToMastery, outcomeevent.FieldDrillID:
			values[i] = new(sql.NullString)
		case outcomeevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the OutcomeEvent fields.
func (_m *OutcomeEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case outcomeevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case outcomeevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case outcomeevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case outcomeevent.FieldSkillID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_id", values[i])
			} else if value.Valid {
				_m.SkillID = value.String
			}
		case outcomeevent.FieldQuestID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quest_id", values[i])
			} else if value.Valid {
				_m.QuestID = value.String
			}
		case outcomeevent.FieldOutcome:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outcome", values[i])
			} else if value.Valid {
				_m.Outcome = value.String
			}
		case outcomeevent.FieldFromMastery:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_mastery", values[i])
			} else if value.Valid {
				_m.FromMastery = value.String
			}
		case outcomeevent.FieldToMastery:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field to_mastery", values[i])
			} else if value.Valid {
				_m.ToMastery = value.String
			}
		case outcomeevent.FieldJustMastered:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field just_mastered", values[i])
			} else if value.Valid {
				_m.JustMastered = value.Bool
			}
		case outcomeevent.FieldUnlockedSkills:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field unlocked_skills", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.UnlockedSkills); err != nil {
					return fmt.Errorf("unmarshal field unlocked_skills: %w", err)
				}
			}
		case outcomeevent.FieldDrillID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field drill_id", values[i])
			} else if value.Valid {
				_m.DrillID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the OutcomeEvent.
// This includes values selected through modifiers, order, etc.
func (_m *OutcomeEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this OutcomeEvent.
// Note that you need to call OutcomeEvent.Unwrap() before calling this method if this OutcomeEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *OutcomeEvent) Update() *OutcomeEventUpdateOne {
	return NewOutcomeEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the OutcomeEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *OutcomeEvent) Unwrap() *OutcomeEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: OutcomeEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *OutcomeEvent) String() string {
	var builder strings.Builder
	builder.WriteString("OutcomeEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("skill_id=")
	builder.WriteString(_m.SkillID)
	builder.WriteString(", ")
	builder.WriteString("quest_id=")
	builder.WriteString(_m.QuestID)
	builder.WriteString(", ")
	builder.WriteString("outcome=")
	builder.WriteString(_m.Outcome)
	builder.WriteString(", ")
	builder.WriteString("from_mastery=")
	builder.WriteString(_m.FromMastery)
	builder.WriteString(", ")
	builder.WriteString("to_mastery=")
	builder.WriteString(_m.ToMastery)
	builder.WriteString(", ")
	builder.WriteString("just_mastered=")
	builder.WriteString(fmt.Sprintf("%v", _m.JustMastered))
	builder.WriteString(", ")
	builder.WriteString("unlocked_skills=")
	builder.WriteString(fmt.Sprintf("%v", _m.UnlockedSkills))
	builder.WriteString(", ")
	builder.WriteString("drill_id=")
	builder.WriteString(_m.DrillID)
	builder.WriteByte(')')
	return builder.String()
}

// OutcomeEvents is a parsable slice of OutcomeEvent.
type OutcomeEvents []*OutcomeEvent
