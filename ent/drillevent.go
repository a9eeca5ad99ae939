// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/questline/ent/drillevent"
)

// DrillEvent is the model entity for the DrillEvent schema.
type DrillEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Global position across all event tables
	Sequence int64 `json:"sequence,omitempty"`
	// UTC time the event was recorded
	Timestamp time.Time `json:"timestamp,omitempty"`
	// DrillID holds the value of the "drill_id" field.
	DrillID string `json:"drill_id,omitempty"`
	// SkillID holds the value of the "skill_id" field.
	SkillID string `json:"skill_id,omitempty"`
	// WeekPlanID holds the value of the "week_plan_id" field.
	WeekPlanID string `json:"week_plan_id,omitempty"`
	// DayNumber holds the value of the "day_number" field.
	DayNumber int `json:"day_number,omitempty"`
	// AttemptNumber holds the value of the "attempt_number" field.
	AttemptNumber int `json:"attempt_number,omitempty"`
	// RetryCount holds the value of the "retry_count" field.
	RetryCount int `json:"retry_count,omitempty"`
	// TotalMinutes holds the value of the "total_minutes" field.
	TotalMinutes int `json:"total_minutes,omitempty"`
	// Full drill content as JSON
	Payload      map[string]interface{} `json:"payload,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DrillEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case drillevent.FieldPayload:
			values[i] = new([]byte)
		case drillevent.FieldID, drillevent.FieldSequence, drillevent.FieldDayNumber, drillevent.FieldAttemptNumber, drillevent.FieldRetryCount, drillevent.FieldTotalMinutes:
			values[i] = new(sql.NullInt64)
		case drillevent.FieldDrillID, drillevent.FieldSkillID, drillevent.FieldWeekPlanID:
			values[i] = new(sql.NullString)
		case drillevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DrillEvent fields.
func (_m *DrillEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case drillevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case drillevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case drillevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case drillevent.FieldDrillID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field drill_id", values[i])
			} else if value.Valid {
				_m.DrillID = value.String
			}
		case drillevent.FieldSkillID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_id", values[i])
			} else if value.Valid {
				_m.SkillID = value.String
			}
		case drillevent.FieldWeekPlanID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field week_plan_id", values[i])
			} else if value.Valid {
				_m.WeekPlanID = value.String
			}
		case drillevent.FieldDayNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field day_number", values[i])
			} else if value.Valid {
				_m.DayNumber = int(value.Int64)
			}
		case drillevent.FieldAttemptNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_number", values[i])
			} else if value.Valid {
				_m.AttemptNumber = int(value.Int64)
			}
		case drillevent.FieldRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_count", values[i])
			} else if value.Valid {
				_m.RetryCount = int(value.Int64)
			}
		case drillevent.FieldTotalMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_minutes", values[i])
			} else if value.Valid {
				_m.TotalMinutes = int(value.Int64)
			}
		case drillevent.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DrillEvent.
// This includes values selected through modifiers, order, etc.
func (_m *DrillEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DrillEvent.
// Note that you need to call DrillEvent.Unwrap() before calling this method if this DrillEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DrillEvent) Update() *DrillEventUpdateOne {
	return NewDrillEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DrillEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DrillEvent) Unwrap() *DrillEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DrillEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DrillEvent) String() string {
	var builder strings.Builder
	builder.WriteString("DrillEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("drill_id=")
	builder.WriteString(_m.DrillID)
	builder.WriteString(", ")
	builder.WriteString("skill_id=")
	builder.WriteString(_m.SkillID)
	builder.WriteString(", ")
	builder.WriteString("week_plan_id=")
	builder.WriteString(_m.WeekPlanID)
	builder.WriteString(", ")
	builder.WriteString("day_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.DayNumber))
	builder.WriteString(", ")
	builder.WriteString("attempt_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptNumber))
	builder.WriteString(", ")
	builder.WriteString("retry_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryCount))
	builder.WriteString(", ")
	builder.WriteString("total_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalMinutes))
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteByte(')')
	return builder.String()
}

// DrillEvents is a parsable slice of DrillEvent.
type DrillEvents []*DrillEvent
