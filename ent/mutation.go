// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/questline/ent/drillevent"
	"github.com/abhisek/questline/ent/outcomeevent"
	"github.com/abhisek/questline/ent/predicate"
	"github.com/abhisek/questline/ent/skill"
	"github.com/abhisek/questline/ent/weekplan"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDrillEvent   = "DrillEvent"
	TypeOutcomeEvent = "OutcomeEvent"
	TypeSkill        = "Skill"
	TypeWeekPlan     = "WeekPlan"
)

// DrillEventMutation represents an operation that mutates the DrillEvent nodes in the graph.
type DrillEventMutation struct {
	config
	op                Op
	typ               string
	id                *int
	sequence          *int64
	addsequence       *int64
	timestamp         *time.Time
	drill_id          *string
	skill_id          *string
	week_plan_id      *string
	day_number        *int
	addday_number     *int
	attempt_number    *int
	addattempt_number *int
	retry_count       *int
	addretry_count    *int
	total_minutes     *int
	addtotal_minutes  *int
	payload           *map[string]interface{}
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*DrillEvent, error)
	predicates        []predicate.DrillEvent
}

var _ ent.Mutation = (*DrillEventMutation)(nil)

// drilleventOption allows management of the mutation configuration using functional options.
type drilleventOption func(*DrillEventMutation)

// newDrillEventMutation creates new mutation for the DrillEvent entity.
func newDrillEventMutation(c config, op Op, opts ...drilleventOption) *DrillEventMutation {
	m := &DrillEventMutation{
		config:        c,
		op:            op,
		typ:           TypeDrillEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDrillEventID sets the ID field of the mutation.
func withDrillEventID(id int) drilleventOption {
	return func(m *DrillEventMutation) {
		var (
			err   error
			once  sync.Once
			value *DrillEvent
		)
		m.oldValue = func(ctx context.Context) (*DrillEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DrillEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDrillEvent sets the old DrillEvent of the mutation.
func withDrillEvent(node *DrillEvent) drilleventOption {
	return func(m *DrillEventMutation) {
		m.oldValue = func(context.Context) (*DrillEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DrillEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DrillEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DrillEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DrillEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DrillEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *DrillEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *DrillEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the DrillEvent entity.
// If the DrillEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrillEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *DrillEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *DrillEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *DrillEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *DrillEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *DrillEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the DrillEvent entity.
// If the DrillEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrillEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *DrillEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetDrillID sets the "drill_id" field.
func (m *DrillEventMutation) SetDrillID(s string) {
	m.drill_id = &s
}

// DrillID returns the value of the "drill_id" field in the mutation.
func (m *DrillEventMutation) DrillID() (r string, exists bool) {
	v := m.drill_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDrillID returns the old "drill_id" field's value of the DrillEvent entity.
// If the DrillEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrillEventMutation) OldDrillID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDrillID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDrillID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDrillID: %w", err)
	}
	return oldValue.DrillID, nil
}

// ResetDrillID resets all changes to the "drill_id" field.
func (m *DrillEventMutation) ResetDrillID() {
	m.drill_id = nil
}

// SetSkillID sets the "skill_id" field.
func (m *DrillEventMutation) SetSkillID(s string) {
	m.skill_id = &s
}

// SkillID returns the value of the "skill_id" field in the mutation.
func (m *DrillEventMutation) SkillID() (r string, exists bool) {
	v := m.skill_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillID returns the old "skill_id" field's value of the DrillEvent entity.
// If the DrillEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrillEventMutation) OldSkillID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillID: %w", err)
	}
	return oldValue.SkillID, nil
}

// ResetSkillID resets all changes to the "skill_id" field.
func (m *DrillEventMutation) ResetSkillID() {
	m.skill_id = nil
}

// SetWeekPlanID sets the "week_plan_id" field.
func (m *DrillEventMutation) SetWeekPlanID(s string) {
	m.week_plan_id = &s
}

// WeekPlanID returns the value of the "week_plan_id" field in the mutation.
func (m *DrillEventMutation) WeekPlanID() (r string, exists bool) {
	v := m.week_plan_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWeekPlanID returns the old "week_plan_id" field's value of the DrillEvent entity.
// If the DrillEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrillEventMutation) OldWeekPlanID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeekPlanID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeekPlanID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeekPlanID: %w", err)
	}
	return oldValue.WeekPlanID, nil
}

// ClearWeekPlanID clears the value of the "week_plan_id" field.
func (m *DrillEventMutation) ClearWeekPlanID() {
	m.week_plan_id = nil
	m.clearedFields[drillevent.FieldWeekPlanID] = struct{}{}
}

// WeekPlanIDCleared returns if the "week_plan_id" field was cleared in this mutation.
func (m *DrillEventMutation) WeekPlanIDCleared() bool {
	_, ok := m.clearedFields[drillevent.FieldWeekPlanID]
	return ok
}

// ResetWeekPlanID resets all changes to the "week_plan_id" field.
func (m *DrillEventMutation) ResetWeekPlanID() {
	m.week_plan_id = nil
	delete(m.clearedFields, drillevent.FieldWeekPlanID)
}

// SetDayNumber sets the "day_number" field.
func (m *DrillEventMutation) SetDayNumber(i int) {
	m.day_number = &i
	m.addday_number = nil
}

// DayNumber returns the value of the "day_number" field in the mutation.
func (m *DrillEventMutation) DayNumber() (r int, exists bool) {
	v := m.day_number
	if v == nil {
		return
	}
	return *v, true
}

// OldDayNumber returns the old "day_number" field's value of the DrillEvent entity.
// If the DrillEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrillEventMutation) OldDayNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDayNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDayNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDayNumber: %w", err)
	}
	return oldValue.DayNumber, nil
}

// AddDayNumber adds i to the "day_number" field.
func (m *DrillEventMutation) AddDayNumber(i int) {
	if m.addday_number != nil {
		*m.addday_number += i
	} else {
		m.addday_number = &i
	}
}

// AddedDayNumber returns the value that was added to the "day_number" field in this mutation.
func (m *DrillEventMutation) AddedDayNumber() (r int, exists bool) {
	v := m.addday_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetDayNumber resets all changes to the "day_number" field.
func (m *DrillEventMutation) ResetDayNumber() {
	m.day_number = nil
	m.addday_number = nil
}

// SetAttemptNumber sets the "attempt_number" field.
func (m *DrillEventMutation) SetAttemptNumber(i int) {
	m.attempt_number = &i
	m.addattempt_number = nil
}

// AttemptNumber returns the value of the "attempt_number" field in the mutation.
func (m *DrillEventMutation) AttemptNumber() (r int, exists bool) {
	v := m.attempt_number
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptNumber returns the old "attempt_number" field's value of the DrillEvent entity.
// If the DrillEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrillEventMutation) OldAttemptNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptNumber: %w", err)
	}
	return oldValue.AttemptNumber, nil
}

// AddAttemptNumber adds i to the "attempt_number" field.
func (m *DrillEventMutation) AddAttemptNumber(i int) {
	if m.addattempt_number != nil {
		*m.addattempt_number += i
	} else {
		m.addattempt_number = &i
	}
}

// AddedAttemptNumber returns the value that was added to the "attempt_number" field in this mutation.
func (m *DrillEventMutation) AddedAttemptNumber() (r int, exists bool) {
	v := m.addattempt_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptNumber resets all changes to the "attempt_number" field.
func (m *DrillEventMutation) ResetAttemptNumber() {
	m.attempt_number = nil
	m.addattempt_number = nil
}

// SetRetryCount sets the "retry_count" field.
func (m *DrillEventMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *DrillEventMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the DrillEvent entity.
// If the DrillEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrillEventMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *DrillEventMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *DrillEventMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *DrillEventMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetTotalMinutes sets the "total_minutes" field.
func (m *DrillEventMutation) SetTotalMinutes(i int) {
	m.total_minutes = &i
	m.addtotal_minutes = nil
}

// TotalMinutes returns the value of the "total_minutes" field in the mutation.
func (m *DrillEventMutation) TotalMinutes() (r int, exists bool) {
	v := m.total_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalMinutes returns the old "total_minutes" field's value of the DrillEvent entity.
// If the DrillEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrillEventMutation) OldTotalMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalMinutes: %w", err)
	}
	return oldValue.TotalMinutes, nil
}

// AddTotalMinutes adds i to the "total_minutes" field.
func (m *DrillEventMutation) AddTotalMinutes(i int) {
	if m.addtotal_minutes != nil {
		*m.addtotal_minutes += i
	} else {
		m.addtotal_minutes = &i
	}
}

// AddedTotalMinutes returns the value that was added to the "total_minutes" field in this mutation.
func (m *DrillEventMutation) AddedTotalMinutes() (r int, exists bool) {
	v := m.addtotal_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalMinutes resets all changes to the "total_minutes" field.
func (m *DrillEventMutation) ResetTotalMinutes() {
	m.total_minutes = nil
	m.addtotal_minutes = nil
}

// SetPayload sets the "payload" field.
func (m *DrillEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *DrillEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the DrillEvent entity.
// If the DrillEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrillEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *DrillEventMutation) ResetPayload() {
	m.payload = nil
}

// Where appends a list predicates to the DrillEventMutation builder.
func (m *DrillEventMutation) Where(ps ...predicate.DrillEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DrillEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DrillEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DrillEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DrillEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DrillEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DrillEvent).
func (m *DrillEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DrillEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.sequence != nil {
		fields = append(fields, drillevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, drillevent.FieldTimestamp)
	}
	if m.drill_id != nil {
		fields = append(fields, drillevent.FieldDrillID)
	}
	if m.skill_id != nil {
		fields = append(fields, drillevent.FieldSkillID)
	}
	if m.week_plan_id != nil {
		fields = append(fields, drillevent.FieldWeekPlanID)
	}
	if m.day_number != nil {
		fields = append(fields, drillevent.FieldDayNumber)
	}
	if m.attempt_number != nil {
		fields = append(fields, drillevent.FieldAttemptNumber)
	}
	if m.retry_count != nil {
		fields = append(fields, drillevent.FieldRetryCount)
	}
	if m.total_minutes != nil {
		fields = append(fields, drillevent.FieldTotalMinutes)
	}
	if m.payload != nil {
		fields = append(fields, drillevent.FieldPayload)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DrillEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case drillevent.FieldSequence:
		return m.Sequence()
	case drillevent.FieldTimestamp:
		return m.Timestamp()
	case drillevent.FieldDrillID:
		return m.DrillID()
	case drillevent.FieldSkillID:
		return m.SkillID()
	case drillevent.FieldWeekPlanID:
		return m.WeekPlanID()
	case drillevent.FieldDayNumber:
		return m.DayNumber()
	case drillevent.FieldAttemptNumber:
		return m.AttemptNumber()
	case drillevent.FieldRetryCount:
		return m.RetryCount()
	case drillevent.FieldTotalMinutes:
		return m.TotalMinutes()
	case drillevent.FieldPayload:
		return m.Payload()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DrillEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case drillevent.FieldSequence:
		return m.OldSequence(ctx)
	case drillevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case drillevent.FieldDrillID:
		return m.OldDrillID(ctx)
	case drillevent.FieldSkillID:
		return m.OldSkillID(ctx)
	case drillevent.FieldWeekPlanID:
		return m.OldWeekPlanID(ctx)
	case drillevent.FieldDayNumber:
		return m.OldDayNumber(ctx)
	case drillevent.FieldAttemptNumber:
		return m.OldAttemptNumber(ctx)
	case drillevent.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case drillevent.FieldTotalMinutes:
		return m.OldTotalMinutes(ctx)
	case drillevent.FieldPayload:
		return m.OldPayload(ctx)
	}
	return nil, fmt.Errorf("unknown DrillEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DrillEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case drillevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case drillevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case drillevent.FieldDrillID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDrillID(v)
		return nil
	case drillevent.FieldSkillID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillID(v)
		return nil
	case drillevent.FieldWeekPlanID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeekPlanID(v)
		return nil
	case drillevent.FieldDayNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDayNumber(v)
		return nil
	case drillevent.FieldAttemptNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptNumber(v)
		return nil
	case drillevent.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case drillevent.FieldTotalMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalMinutes(v)
		return nil
	case drillevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	}
	return fmt.Errorf("unknown DrillEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DrillEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, drillevent.FieldSequence)
	}
	if m.addday_number != nil {
		fields = append(fields, drillevent.FieldDayNumber)
	}
	if m.addattempt_number != nil {
		fields = append(fields, drillevent.FieldAttemptNumber)
	}
	if m.addretry_count != nil {
		fields = append(fields, drillevent.FieldRetryCount)
	}
	if m.addtotal_minutes != nil {
		fields = append(fields, drillevent.FieldTotalMinutes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DrillEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case drillevent.FieldSequence:
		return m.AddedSequence()
	case drillevent.FieldDayNumber:
		return m.AddedDayNumber()
	case drillevent.FieldAttemptNumber:
		return m.AddedAttemptNumber()
	case drillevent.FieldRetryCount:
		return m.AddedRetryCount()
	case drillevent.FieldTotalMinutes:
		return m.AddedTotalMinutes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DrillEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case drillevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case drillevent.FieldDayNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDayNumber(v)
		return nil
	case drillevent.FieldAttemptNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptNumber(v)
		return nil
	case drillevent.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	case drillevent.FieldTotalMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalMinutes(v)
		return nil
	}
	return fmt.Errorf("unknown DrillEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DrillEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(drillevent.FieldWeekPlanID) {
		fields = append(fields, drillevent.FieldWeekPlanID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DrillEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DrillEventMutation) ClearField(name string) error {
	switch name {
	case drillevent.FieldWeekPlanID:
		m.ClearWeekPlanID()
		return nil
	}
	return fmt.Errorf("unknown DrillEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DrillEventMutation) ResetField(name string) error {
	switch name {
	case drillevent.FieldSequence:
		m.ResetSequence()
		return nil
	case drillevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case drillevent.FieldDrillID:
		m.ResetDrillID()
		return nil
	case drillevent.FieldSkillID:
		m.ResetSkillID()
		return nil
	case drillevent.FieldWeekPlanID:
		m.ResetWeekPlanID()
		return nil
	case drillevent.FieldDayNumber:
		m.ResetDayNumber()
		return nil
	case drillevent.FieldAttemptNumber:
		m.ResetAttemptNumber()
		return nil
	case drillevent.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case drillevent.FieldTotalMinutes:
		m.ResetTotalMinutes()
		return nil
	case drillevent.FieldPayload:
		m.ResetPayload()
		return nil
	}
	return fmt.Errorf("unknown DrillEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DrillEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DrillEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DrillEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DrillEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DrillEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DrillEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DrillEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DrillEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DrillEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DrillEvent edge %s", name)
}

// OutcomeEventMutation represents an operation that mutates the OutcomeEvent nodes in the graph.
type OutcomeEventMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	sequence              *int64
	addsequence           *int64
	timestamp             *time.Time
	skill_id              *string
	quest_id              *string
	outcome               *string
	from_mastery          *string
	to_mastery            *string
	just_mastered         *bool
	unlocked_skills       *[]string
	appendunlocked_skills []string
	drill_id              *string
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*OutcomeEvent, error)
	predicates            []predicate.OutcomeEvent
}

var _ ent.Mutation = (*OutcomeEventMutation)(nil)

// outcomeeventOption allows management of the mutation configuration using functional options.
type outcomeeventOption func(*OutcomeEventMutation)

// newOutcomeEventMutation creates new mutation for the OutcomeEvent entity.
func newOutcomeEventMutation(c config, op Op, opts ...outcomeeventOption) *OutcomeEventMutation {
	m := &OutcomeEventMutation{
		config:        c,
		op:            op,
		typ:           TypeOutcomeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOutcomeEventID sets the ID field of the mutation.
func withOutcomeEventID(id int) outcomeeventOption {
	return func(m *OutcomeEventMutation) {
		var (
			err   error
			once  sync.Once
			value *OutcomeEvent
		)
		m.oldValue = func(ctx context.Context) (*OutcomeEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OutcomeEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOutcomeEvent sets the old OutcomeEvent of the mutation.
func withOutcomeEvent(node *OutcomeEvent) outcomeeventOption {
	return func(m *OutcomeEventMutation) {
		m.oldValue = func(context.Context) (*OutcomeEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OutcomeEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OutcomeEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OutcomeEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OutcomeEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OutcomeEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *OutcomeEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *OutcomeEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the OutcomeEvent entity.
// If the OutcomeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutcomeEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *OutcomeEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *OutcomeEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *OutcomeEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *OutcomeEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *OutcomeEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the OutcomeEvent entity.
// If the OutcomeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutcomeEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *OutcomeEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSkillID sets the "skill_id" field.
func (m *OutcomeEventMutation) SetSkillID(s string) {
	m.skill_id = &s
}

// SkillID returns the value of the "skill_id" field in the mutation.
func (m *OutcomeEventMutation) SkillID() (r string, exists bool) {
	v := m.skill_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillID returns the old "skill_id" field's value of the OutcomeEvent entity.
// If the OutcomeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutcomeEventMutation) OldSkillID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillID: %w", err)
	}
	return oldValue.SkillID, nil
}

// ResetSkillID resets all changes to the "skill_id" field.
func (m *OutcomeEventMutation) ResetSkillID() {
	m.skill_id = nil
}

// SetQuestID sets the "quest_id" field.
func (m *OutcomeEventMutation) SetQuestID(s string) {
	m.quest_id = &s
}

// QuestID returns the value of the "quest_id" field in the mutation.
func (m *OutcomeEventMutation) QuestID() (r string, exists bool) {
	v := m.quest_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestID returns the old "quest_id" field's value of the OutcomeEvent entity.
// If the OutcomeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutcomeEventMutation) OldQuestID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestID: %w", err)
	}
	return oldValue.QuestID, nil
}

// ClearQuestID clears the value of the "quest_id" field.
func (m *OutcomeEventMutation) ClearQuestID() {
	m.quest_id = nil
	m.clearedFields[outcomeevent.FieldQuestID] = struct{}{}
}

// QuestIDCleared returns if the "quest_id" field was cleared in this mutation.
func (m *OutcomeEventMutation) QuestIDCleared() bool {
	_, ok := m.clearedFields[outcomeevent.FieldQuestID]
	return ok
}

// ResetQuestID resets all changes to the "quest_id" field.
func (m *OutcomeEventMutation) ResetQuestID() {
	m.quest_id = nil
	delete(m.clearedFields, outcomeevent.FieldQuestID)
}

// SetOutcome sets the "outcome" field.
func (m *OutcomeEventMutation) SetOutcome(s string) {
	m.outcome = &s
}

// Outcome returns the value of the "outcome" field in the mutation.
func (m *OutcomeEventMutation) Outcome() (r string, exists bool) {
	v := m.outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcome returns the old "outcome" field's value of the OutcomeEvent entity.
// If the OutcomeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutcomeEventMutation) OldOutcome(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcome: %w", err)
	}
	return oldValue.Outcome, nil
}

// ResetOutcome resets all changes to the "outcome" field.
func (m *OutcomeEventMutation) ResetOutcome() {
	m.outcome = nil
}

// SetFromMastery sets the "from_mastery" field.
func (m *OutcomeEventMutation) SetFromMastery(s string) {
	m.from_mastery = &s
}

// FromMastery returns the value of the "from_mastery" field in the mutation.
func (m *OutcomeEventMutation) FromMastery() (r string, exists bool) {
	v := m.from_mastery
	if v == nil {
		return
	}
	return *v, true
}

// OldFromMastery returns the old "from_mastery" field's value of the OutcomeEvent entity.
// If the OutcomeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutcomeEventMutation) OldFromMastery(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromMastery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromMastery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromMastery: %w", err)
	}
	return oldValue.FromMastery, nil
}

// ResetFromMastery resets all changes to the "from_mastery" field.
func (m *OutcomeEventMutation) ResetFromMastery() {
	m.from_mastery = nil
}

// SetToMastery sets the "to_mastery" field.
func (m *OutcomeEventMutation) SetToMastery(s string) {
	m.to_mastery = &s
}

// ToMastery returns the value of the "to_mastery" field in the mutation.
func (m *OutcomeEventMutation) ToMastery() (r string, exists bool) {
	v := m.to_mastery
	if v == nil {
		return
	}
	return *v, true
}

// OldToMastery returns the old "to_mastery" field's value of the OutcomeEvent entity.
// If the OutcomeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutcomeEventMutation) OldToMastery(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToMastery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToMastery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToMastery: %w", err)
	}
	return oldValue.ToMastery, nil
}

// ResetToMastery resets all changes to the "to_mastery" field.
func (m *OutcomeEventMutation) ResetToMastery() {
	m.to_mastery = nil
}

// SetJustMastered sets the "just_mastered" field.
func (m *OutcomeEventMutation) SetJustMastered(b bool) {
	m.just_mastered = &b
}

// JustMastered returns the value of the "just_mastered" field in the mutation.
func (m *OutcomeEventMutation) JustMastered() (r bool, exists bool) {
	v := m.just_mastered
	if v == nil {
		return
	}
	return *v, true
}

// OldJustMastered returns the old "just_mastered" field's value of the OutcomeEvent entity.
// If the OutcomeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutcomeEventMutation) OldJustMastered(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJustMastered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJustMastered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJustMastered: %w", err)
	}
	return oldValue.JustMastered, nil
}

// ResetJustMastered resets all changes to the "just_mastered" field.
func (m *OutcomeEventMutation) ResetJustMastered() {
	m.just_mastered = nil
}

// SetUnlockedSkills sets the "unlocked_skills" field.
func (m *OutcomeEventMutation) SetUnlockedSkills(s []string) {
	m.unlocked_skills = &s
	m.appendunlocked_skills = nil
}

// UnlockedSkills returns the value of the "unlocked_skills" field in the mutation.
func (m *OutcomeEventMutation) UnlockedSkills() (r []string, exists bool) {
	v := m.unlocked_skills
	if v == nil {
		return
	}
	return *v, true
}

// OldUnlockedSkills returns the old "unlocked_skills" field's value of the OutcomeEvent entity.
// If the OutcomeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutcomeEventMutation) OldUnlockedSkills(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnlockedSkills is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnlockedSkills requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnlockedSkills: %w", err)
	}
	return oldValue.UnlockedSkills, nil
}

// AppendUnlockedSkills adds s to the "unlocked_skills" field.
func (m *OutcomeEventMutation) AppendUnlockedSkills(s []string) {
	m.appendunlocked_skills = append(m.appendunlocked_skills, s...)
}

// AppendedUnlockedSkills returns the list of values that were appended to the "unlocked_skills" field in this mutation.
func (m *OutcomeEventMutation) AppendedUnlockedSkills() ([]string, bool) {
	if len(m.appendunlocked_skills) == 0 {
		return nil, false
	}
	return m.appendunlocked_skills, true
}

// ClearUnlockedSkills clears the value of the "unlocked_skills" field.
func (m *OutcomeEventMutation) ClearUnlockedSkills() {
	m.unlocked_skills = nil
	m.appendunlocked_skills = nil
	m.clearedFields[outcomeevent.FieldUnlockedSkills] = struct{}{}
}

// UnlockedSkillsCleared returns if the "unlocked_skills" field was cleared in this mutation.
func (m *OutcomeEventMutation) UnlockedSkillsCleared() bool {
	_, ok := m.clearedFields[outcomeevent.FieldUnlockedSkills]
	return ok
}

// ResetUnlockedSkills resets all changes to the "unlocked_skills" field.
func (m *OutcomeEventMutation) ResetUnlockedSkills() {
	m.unlocked_skills = nil
	m.appendunlocked_skills = nil
	delete(m.clearedFields, outcomeevent.FieldUnlockedSkills)
}

// SetDrillID sets the "drill_id" field.
func (m *OutcomeEventMutation) SetDrillID(s string) {
	m.drill_id = &s
}

// DrillID returns the value of the "drill_id" field in the mutation.
func (m *OutcomeEventMutation) DrillID() (r string, exists bool) {
	v := m.drill_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDrillID returns the old "drill_id" field's value of the OutcomeEvent entity.
// If the OutcomeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutcomeEventMutation) OldDrillID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDrillID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDrillID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDrillID: %w", err)
	}
	return oldValue.DrillID, nil
}

// ClearDrillID clears the value of the "drill_id" field.
func (m *OutcomeEventMutation) ClearDrillID() {
	m.drill_id = nil
	m.clearedFields[outcomeevent.FieldDrillID] = struct{}{}
}

// DrillIDCleared returns if the "drill_id" field was cleared in this mutation.
func (m *OutcomeEventMutation) DrillIDCleared() bool {
	_, ok := m.clearedFields[outcomeevent.FieldDrillID]
	return ok
}

// ResetDrillID resets all changes to the "drill_id" field.
func (m *OutcomeEventMutation) ResetDrillID() {
	m.drill_id = nil
	delete(m.clearedFields, outcomeevent.FieldDrillID)
}

// Where appends a list predicates to the OutcomeEventMutation builder.
func (m *OutcomeEventMutation) Where(ps ...predicate.OutcomeEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OutcomeEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OutcomeEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OutcomeEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OutcomeEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OutcomeEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OutcomeEvent).
func (m *OutcomeEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OutcomeEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.sequence != nil {
		fields = append(fields, outcomeevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, outcomeevent.FieldTimestamp)
	}
	if m.skill_id != nil {
		fields = append(fields, outcomeevent.FieldSkillID)
	}
	if m.quest_id != nil {
		fields = append(fields, outcomeevent.FieldQuestID)
	}
	if m.outcome != nil {
		fields = append(fields, outcomeevent.FieldOutcome)
	}
	if m.from_mastery != nil {
		fields = append(fields, outcomeevent.FieldFromMastery)
	}
	if m.to_mastery != nil {
		fields = append(fields, outcomeevent.FieldToMastery)
	}
	if m.just_mastered != nil {
		fields = append(fields, outcomeevent.FieldJustMastered)
	}
	if m.unlocked_skills != nil {
		fields = append(fields, outcomeevent.FieldUnlockedSkills)
	}
	if m.drill_id != nil {
		fields = append(fields, outcomeevent.FieldDrillID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OutcomeEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case outcomeevent.FieldSequence:
		return m.Sequence()
	case outcomeevent.FieldTimestamp:
		return m.Timestamp()
	case outcomeevent.FieldSkillID:
		return m.SkillID()
	case outcomeevent.FieldQuestID:
		return m.QuestID()
	case outcomeevent.FieldOutcome:
		return m.Outcome()
	case outcomeevent.FieldFromMastery:
		return m.FromMastery()
	case outcomeevent.FieldToMastery:
		return m.ToMastery()
	case outcomeevent.FieldJustMastered:
		return m.JustMastered()
	case outcomeevent.FieldUnlockedSkills:
		return m.UnlockedSkills()
	case outcomeevent.FieldDrillID:
		return m.DrillID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OutcomeEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case outcomeevent.FieldSequence:
		return m.OldSequence(ctx)
	case outcomeevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case outcomeevent.FieldSkillID:
		return m.OldSkillID(ctx)
	case outcomeevent.FieldQuestID:
		return m.OldQuestID(ctx)
	case outcomeevent.FieldOutcome:
		return m.OldOutcome(ctx)
	case outcomeevent.FieldFromMastery:
		return m.OldFromMastery(ctx)
	case outcomeevent.FieldToMastery:
		return m.OldToMastery(ctx)
	case outcomeevent.FieldJustMastered:
		return m.OldJustMastered(ctx)
	case outcomeevent.FieldUnlockedSkills:
		return m.OldUnlockedSkills(ctx)
	case outcomeevent.FieldDrillID:
		return m.OldDrillID(ctx)
	}
	return nil, fmt.Errorf("unknown OutcomeEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OutcomeEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case outcomeevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case outcomeevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case outcomeevent.FieldSkillID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillID(v)
		return nil
	case outcomeevent.FieldQuestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestID(v)
		return nil
	case outcomeevent.FieldOutcome:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcome(v)
		return nil
	case outcomeevent.FieldFromMastery:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromMastery(v)
		return nil
	case outcomeevent.FieldToMastery:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToMastery(v)
		return nil
	case outcomeevent.FieldJustMastered:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJustMastered(v)
		return nil
	case outcomeevent.FieldUnlockedSkills:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnlockedSkills(v)
		return nil
	case outcomeevent.FieldDrillID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDrillID(v)
		return nil
	}
	return fmt.Errorf("unknown OutcomeEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OutcomeEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, outcomeevent.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OutcomeEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case outcomeevent.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OutcomeEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case outcomeevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown OutcomeEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OutcomeEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(outcomeevent.FieldQuestID) {
		fields = append(fields, outcomeevent.FieldQuestID)
	}
	if m.FieldCleared(outcomeevent.FieldUnlockedSkills) {
		fields = append(fields, outcomeevent.FieldUnlockedSkills)
	}
	if m.FieldCleared(outcomeevent.FieldDrillID) {
		fields = append(fields, outcomeevent.FieldDrillID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OutcomeEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OutcomeEventMutation) ClearField(name string) error {
	switch name {
	case outcomeevent.FieldQuestID:
		m.ClearQuestID()
		return nil
	case outcomeevent.FieldUnlockedSkills:
		m.ClearUnlockedSkills()
		return nil
	case outcomeevent.FieldDrillID:
		m.ClearDrillID()
		return nil
	}
	return fmt.Errorf("unknown OutcomeEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OutcomeEventMutation) ResetField(name string) error {
	switch name {
	case outcomeevent.FieldSequence:
		m.ResetSequence()
		return nil
	case outcomeevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case outcomeevent.FieldSkillID:
		m.ResetSkillID()
		return nil
	case outcomeevent.FieldQuestID:
		m.ResetQuestID()
		return nil
	case outcomeevent.FieldOutcome:
		m.ResetOutcome()
		return nil
	case outcomeevent.FieldFromMastery:
		m.ResetFromMastery()
		return nil
	case outcomeevent.FieldToMastery:
		m.ResetToMastery()
		return nil
	case outcomeevent.FieldJustMastered:
		m.ResetJustMastered()
		return nil
	case outcomeevent.FieldUnlockedSkills:
		m.ResetUnlockedSkills()
		return nil
	case outcomeevent.FieldDrillID:
		m.ResetDrillID()
		return nil
	}
	return fmt.Errorf("unknown OutcomeEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OutcomeEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OutcomeEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OutcomeEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OutcomeEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OutcomeEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OutcomeEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OutcomeEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown OutcomeEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OutcomeEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown OutcomeEvent edge %s", name)
}

// SkillMutation represents an operation that mutates the Skill nodes in the graph.
type SkillMutation struct {
	config
	op                           Op
	typ                          string
	id                           *int
	skill_id                     *string
	quest_id                     *string
	goal_id                      *string
	user_id                      *string
	title                        *string
	topics                       *[]string
	appendtopics                 []string
	action                       *string
	success_signal               *string
	constraints                  *string
	transfer_scenario            *string
	estimated_minutes            *int
	addestimated_minutes         *int
	skill_type                   *string
	depth                        *int
	adddepth                     *int
	_order                       *int
	add_order                    *int
	prerequisite_skill_ids       *[]string
	appendprerequisite_skill_ids []string
	prerequisite_quest_ids       *[]string
	appendprerequisite_quest_ids []string
	is_compound                  *bool
	component_skill_ids          *[]string
	appendcomponent_skill_ids    []string
	week_number                  *int
	addweek_number               *int
	day_in_week                  *int
	addday_in_week               *int
	day_in_quest                 *int
	addday_in_quest              *int
	mastery                      *string
	status                       *string
	pass_count                   *int
	addpass_count                *int
	fail_count                   *int
	addfail_count                *int
	consecutive_passes           *int
	addconsecutive_passes        *int
	mastered_at                  *time.Time
	unlocked_at                  *time.Time
	clearedFields                map[string]struct{}
	done                         bool
	oldValue                     func(context.Context) (*Skill, error)
	predicates                   []predicate.Skill
}

var _ ent.Mutation = (*SkillMutation)(nil)

// skillOption allows management of the mutation configuration using functional options.
type skillOption func(*SkillMutation)

// newSkillMutation creates new mutation for the Skill entity.
func newSkillMutation(c config, op Op, opts ...skillOption) *SkillMutation {
	m := &SkillMutation{
		config:        c,
		op:            op,
		typ:           TypeSkill,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSkillID sets the ID field of the mutation.
func withSkillID(id int) skillOption {
	return func(m *SkillMutation) {
		var (
			err   error
			once  sync.Once
			value *Skill
		)
		m.oldValue = func(ctx context.Context) (*Skill, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Skill.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSkill sets the old Skill of the mutation.
func withSkill(node *Skill) skillOption {
	return func(m *SkillMutation) {
		m.oldValue = func(context.Context) (*Skill, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SkillMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SkillMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SkillMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SkillMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Skill.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSkillID sets the "skill_id" field.
func (m *SkillMutation) SetSkillID(s string) {
	m.skill_id = &s
}

// SkillID returns the value of the "skill_id" field in the mutation.
func (m *SkillMutation) SkillID() (r string, exists bool) {
	v := m.skill_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillID returns the old "skill_id" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldSkillID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillID: %w", err)
	}
	return oldValue.SkillID, nil
}

// ResetSkillID resets all changes to the "skill_id" field.
func (m *SkillMutation) ResetSkillID() {
	m.skill_id = nil
}

// SetQuestID sets the "quest_id" field.
func (m *SkillMutation) SetQuestID(s string) {
	m.quest_id = &s
}

// QuestID returns the value of the "quest_id" field in the mutation.
func (m *SkillMutation) QuestID() (r string, exists bool) {
	v := m.quest_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestID returns the old "quest_id" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldQuestID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestID: %w", err)
	}
	return oldValue.QuestID, nil
}

// ResetQuestID resets all changes to the "quest_id" field.
func (m *SkillMutation) ResetQuestID() {
	m.quest_id = nil
}

// SetGoalID sets the "goal_id" field.
func (m *SkillMutation) SetGoalID(s string) {
	m.goal_id = &s
}

// GoalID returns the value of the "goal_id" field in the mutation.
func (m *SkillMutation) GoalID() (r string, exists bool) {
	v := m.goal_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGoalID returns the old "goal_id" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldGoalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoalID: %w", err)
	}
	return oldValue.GoalID, nil
}

// ResetGoalID resets all changes to the "goal_id" field.
func (m *SkillMutation) ResetGoalID() {
	m.goal_id = nil
}

// SetUserID sets the "user_id" field.
func (m *SkillMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SkillMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SkillMutation) ResetUserID() {
	m.user_id = nil
}

// SetTitle sets the "title" field.
func (m *SkillMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *SkillMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *SkillMutation) ResetTitle() {
	m.title = nil
}

// SetTopics sets the "topics" field.
func (m *SkillMutation) SetTopics(s []string) {
	m.topics = &s
	m.appendtopics = nil
}

// Topics returns the value of the "topics" field in the mutation.
func (m *SkillMutation) Topics() (r []string, exists bool) {
	v := m.topics
	if v == nil {
		return
	}
	return *v, true
}

// OldTopics returns the old "topics" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldTopics(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopics: %w", err)
	}
	return oldValue.Topics, nil
}

// AppendTopics adds s to the "topics" field.
func (m *SkillMutation) AppendTopics(s []string) {
	m.appendtopics = append(m.appendtopics, s...)
}

// AppendedTopics returns the list of values that were appended to the "topics" field in this mutation.
func (m *SkillMutation) AppendedTopics() ([]string, bool) {
	if len(m.appendtopics) == 0 {
		return nil, false
	}
	return m.appendtopics, true
}

// ClearTopics clears the value of the "topics" field.
func (m *SkillMutation) ClearTopics() {
	m.topics = nil
	m.appendtopics = nil
	m.clearedFields[skill.FieldTopics] = struct{}{}
}

// TopicsCleared returns if the "topics" field was cleared in this mutation.
func (m *SkillMutation) TopicsCleared() bool {
	_, ok := m.clearedFields[skill.FieldTopics]
	return ok
}

// ResetTopics resets all changes to the "topics" field.
func (m *SkillMutation) ResetTopics() {
	m.topics = nil
	m.appendtopics = nil
	delete(m.clearedFields, skill.FieldTopics)
}

// SetAction sets the "action" field.
func (m *SkillMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *SkillMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ClearAction clears the value of the "action" field.
func (m *SkillMutation) ClearAction() {
	m.action = nil
	m.clearedFields[skill.FieldAction] = struct{}{}
}

// ActionCleared returns if the "action" field was cleared in this mutation.
func (m *SkillMutation) ActionCleared() bool {
	_, ok := m.clearedFields[skill.FieldAction]
	return ok
}

// ResetAction resets all changes to the "action" field.
func (m *SkillMutation) ResetAction() {
	m.action = nil
	delete(m.clearedFields, skill.FieldAction)
}

// SetSuccessSignal sets the "success_signal" field.
func (m *SkillMutation) SetSuccessSignal(s string) {
	m.success_signal = &s
}

// SuccessSignal returns the value of the "success_signal" field in the mutation.
func (m *SkillMutation) SuccessSignal() (r string, exists bool) {
	v := m.success_signal
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccessSignal returns the old "success_signal" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldSuccessSignal(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccessSignal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccessSignal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccessSignal: %w", err)
	}
	return oldValue.SuccessSignal, nil
}

// ClearSuccessSignal clears the value of the "success_signal" field.
func (m *SkillMutation) ClearSuccessSignal() {
	m.success_signal = nil
	m.clearedFields[skill.FieldSuccessSignal] = struct{}{}
}

// SuccessSignalCleared returns if the "success_signal" field was cleared in this mutation.
func (m *SkillMutation) SuccessSignalCleared() bool {
	_, ok := m.clearedFields[skill.FieldSuccessSignal]
	return ok
}

// ResetSuccessSignal resets all changes to the "success_signal" field.
func (m *SkillMutation) ResetSuccessSignal() {
	m.success_signal = nil
	delete(m.clearedFields, skill.FieldSuccessSignal)
}

// SetConstraints sets the "constraints" field.
func (m *SkillMutation) SetConstraints(s string) {
	m.constraints = &s
}

// Constraints returns the value of the "constraints" field in the mutation.
func (m *SkillMutation) Constraints() (r string, exists bool) {
	v := m.constraints
	if v == nil {
		return
	}
	return *v, true
}

// OldConstraints returns the old "constraints" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldConstraints(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConstraints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConstraints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConstraints: %w", err)
	}
	return oldValue.Constraints, nil
}

// ClearConstraints clears the value of the "constraints" field.
func (m *SkillMutation) ClearConstraints() {
	m.constraints = nil
	m.clearedFields[skill.FieldConstraints] = struct{}{}
}

// ConstraintsCleared returns if the "constraints" field was cleared in this mutation.
func (m *SkillMutation) ConstraintsCleared() bool {
	_, ok := m.clearedFields[skill.FieldConstraints]
	return ok
}

// ResetConstraints resets all changes to the "constraints" field.
func (m *SkillMutation) ResetConstraints() {
	m.constraints = nil
	delete(m.clearedFields, skill.FieldConstraints)
}

// SetTransferScenario sets the "transfer_scenario" field.
func (m *SkillMutation) SetTransferScenario(s string) {
	m.transfer_scenario = &s
}

// TransferScenario returns the value of the "transfer_scenario" field in the mutation.
func (m *SkillMutation) TransferScenario() (r string, exists bool) {
	v := m.transfer_scenario
	if v == nil {
		return
	}
	return *v, true
}

// OldTransferScenario returns the old "transfer_scenario" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldTransferScenario(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransferScenario is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransferScenario requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransferScenario: %w", err)
	}
	return oldValue.TransferScenario, nil
}

// ClearTransferScenario clears the value of the "transfer_scenario" field.
func (m *SkillMutation) ClearTransferScenario() {
	m.transfer_scenario = nil
	m.clearedFields[skill.FieldTransferScenario] = struct{}{}
}

// TransferScenarioCleared returns if the "transfer_scenario" field was cleared in this mutation.
func (m *SkillMutation) TransferScenarioCleared() bool {
	_, ok := m.clearedFields[skill.FieldTransferScenario]
	return ok
}

// ResetTransferScenario resets all changes to the "transfer_scenario" field.
func (m *SkillMutation) ResetTransferScenario() {
	m.transfer_scenario = nil
	delete(m.clearedFields, skill.FieldTransferScenario)
}

// SetEstimatedMinutes sets the "estimated_minutes" field.
func (m *SkillMutation) SetEstimatedMinutes(i int) {
	m.estimated_minutes = &i
	m.addestimated_minutes = nil
}

// EstimatedMinutes returns the value of the "estimated_minutes" field in the mutation.
func (m *SkillMutation) EstimatedMinutes() (r int, exists bool) {
	v := m.estimated_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedMinutes returns the old "estimated_minutes" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldEstimatedMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedMinutes: %w", err)
	}
	return oldValue.EstimatedMinutes, nil
}

// AddEstimatedMinutes adds i to the "estimated_minutes" field.
func (m *SkillMutation) AddEstimatedMinutes(i int) {
	if m.addestimated_minutes != nil {
		*m.addestimated_minutes += i
	} else {
		m.addestimated_minutes = &i
	}
}

// AddedEstimatedMinutes returns the value that was added to the "estimated_minutes" field in this mutation.
func (m *SkillMutation) AddedEstimatedMinutes() (r int, exists bool) {
	v := m.addestimated_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetEstimatedMinutes resets all changes to the "estimated_minutes" field.
func (m *SkillMutation) ResetEstimatedMinutes() {
	m.estimated_minutes = nil
	m.addestimated_minutes = nil
}

// SetSkillType sets the "skill_type" field.
func (m *SkillMutation) SetSkillType(s string) {
	m.skill_type = &s
}

// SkillType returns the value of the "skill_type" field in the mutation.
func (m *SkillMutation) SkillType() (r string, exists bool) {
	v := m.skill_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillType returns the old "skill_type" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldSkillType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillType: %w", err)
	}
	return oldValue.SkillType, nil
}

// ResetSkillType resets all changes to the "skill_type" field.
func (m *SkillMutation) ResetSkillType() {
	m.skill_type = nil
}

// SetDepth sets the "depth" field.
func (m *SkillMutation) SetDepth(i int) {
	m.depth = &i
	m.adddepth = nil
}

// Depth returns the value of the "depth" field in the mutation.
func (m *SkillMutation) Depth() (r int, exists bool) {
	v := m.depth
	if v == nil {
		return
	}
	return *v, true
}

// OldDepth returns the old "depth" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldDepth(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepth: %w", err)
	}
	return oldValue.Depth, nil
}

// AddDepth adds i to the "depth" field.
func (m *SkillMutation) AddDepth(i int) {
	if m.adddepth != nil {
		*m.adddepth += i
	} else {
		m.adddepth = &i
	}
}

// AddedDepth returns the value that was added to the "depth" field in this mutation.
func (m *SkillMutation) AddedDepth() (r int, exists bool) {
	v := m.adddepth
	if v == nil {
		return
	}
	return *v, true
}

// ResetDepth resets all changes to the "depth" field.
func (m *SkillMutation) ResetDepth() {
	m.depth = nil
	m.adddepth = nil
}

// SetOrder sets the "order" field.
func (m *SkillMutation) SetOrder(i int) {
	m._order = &i
	m.add_order = nil
}

// Order returns the value of the "order" field in the mutation.
func (m *SkillMutation) Order() (r int, exists bool) {
	v := m._order
	if v == nil {
		return
	}
	return *v, true
}

// OldOrder returns the old "order" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrder: %w", err)
	}
	return oldValue.Order, nil
}

// AddOrder adds i to the "order" field.
func (m *SkillMutation) AddOrder(i int) {
	if m.add_order != nil {
		*m.add_order += i
	} else {
		m.add_order = &i
	}
}

// AddedOrder returns the value that was added to the "order" field in this mutation.
func (m *SkillMutation) AddedOrder() (r int, exists bool) {
	v := m.add_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetOrder resets all changes to the "order" field.
func (m *SkillMutation) ResetOrder() {
	m._order = nil
	m.add_order = nil
}

// SetPrerequisiteSkillIds sets the "prerequisite_skill_ids" field.
func (m *SkillMutation) SetPrerequisiteSkillIds(s []string) {
	m.prerequisite_skill_ids = &s
	m.appendprerequisite_skill_ids = nil
}

// PrerequisiteSkillIds returns the value of the "prerequisite_skill_ids" field in the mutation.
func (m *SkillMutation) PrerequisiteSkillIds() (r []string, exists bool) {
	v := m.prerequisite_skill_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldPrerequisiteSkillIds returns the old "prerequisite_skill_ids" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldPrerequisiteSkillIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrerequisiteSkillIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrerequisiteSkillIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrerequisiteSkillIds: %w", err)
	}
	return oldValue.PrerequisiteSkillIds, nil
}

// AppendPrerequisiteSkillIds adds s to the "prerequisite_skill_ids" field.
func (m *SkillMutation) AppendPrerequisiteSkillIds(s []string) {
	m.appendprerequisite_skill_ids = append(m.appendprerequisite_skill_ids, s...)
}

// AppendedPrerequisiteSkillIds returns the list of values that were appended to the "prerequisite_skill_ids" field in this mutation.
func (m *SkillMutation) AppendedPrerequisiteSkillIds() ([]string, bool) {
	if len(m.appendprerequisite_skill_ids) == 0 {
		return nil, false
	}
	return m.appendprerequisite_skill_ids, true
}

// ClearPrerequisiteSkillIds clears the value of the "prerequisite_skill_ids" field.
func (m *SkillMutation) ClearPrerequisiteSkillIds() {
	m.prerequisite_skill_ids = nil
	m.appendprerequisite_skill_ids = nil
	m.clearedFields[skill.FieldPrerequisiteSkillIds] = struct{}{}
}

// PrerequisiteSkillIdsCleared returns if the "prerequisite_skill_ids" field was cleared in this mutation.
func (m *SkillMutation) PrerequisiteSkillIdsCleared() bool {
	_, ok := m.clearedFields[skill.FieldPrerequisiteSkillIds]
	return ok
}

// ResetPrerequisiteSkillIds resets all changes to the "prerequisite_skill_ids" field.
func (m *SkillMutation) ResetPrerequisiteSkillIds() {
	m.prerequisite_skill_ids = nil
	m.appendprerequisite_skill_ids = nil
	delete(m.clearedFields, skill.FieldPrerequisiteSkillIds)
}

// SetPrerequisiteQuestIds sets the "prerequisite_quest_ids" field.
func (m *SkillMutation) SetPrerequisiteQuestIds(s []string) {
	m.prerequisite_quest_ids = &s
	m.appendprerequisite_quest_ids = nil
}

// PrerequisiteQuestIds returns the value of the "prerequisite_quest_ids" field in the mutation.
func (m *SkillMutation) PrerequisiteQuestIds() (r []string, exists bool) {
	v := m.prerequisite_quest_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldPrerequisiteQuestIds returns the old "prerequisite_quest_ids" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldPrerequisiteQuestIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrerequisiteQuestIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrerequisiteQuestIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrerequisiteQuestIds: %w", err)
	}
	return oldValue.PrerequisiteQuestIds, nil
}

// AppendPrerequisiteQuestIds adds s to the "prerequisite_quest_ids" field.
func (m *SkillMutation) AppendPrerequisiteQuestIds(s []string) {
	m.appendprerequisite_quest_ids = append(m.appendprerequisite_quest_ids, s...)
}

// AppendedPrerequisiteQuestIds returns the list of values that were appended to the "prerequisite_quest_ids" field in this mutation.
func (m *SkillMutation) AppendedPrerequisiteQuestIds() ([]string, bool) {
	if len(m.appendprerequisite_quest_ids) == 0 {
		return nil, false
	}
	return m.appendprerequisite_quest_ids, true
}

// ClearPrerequisiteQuestIds clears the value of the "prerequisite_quest_ids" field.
func (m *SkillMutation) ClearPrerequisiteQuestIds() {
	m.prerequisite_quest_ids = nil
	m.appendprerequisite_quest_ids = nil
	m.clearedFields[skill.FieldPrerequisiteQuestIds] = struct{}{}
}

// PrerequisiteQuestIdsCleared returns if the "prerequisite_quest_ids" field was cleared in this mutation.
func (m *SkillMutation) PrerequisiteQuestIdsCleared() bool {
	_, ok := m.clearedFields[skill.FieldPrerequisiteQuestIds]
	return ok
}

// ResetPrerequisiteQuestIds resets all changes to the "prerequisite_quest_ids" field.
func (m *SkillMutation) ResetPrerequisiteQuestIds() {
	m.prerequisite_quest_ids = nil
	m.appendprerequisite_quest_ids = nil
	delete(m.clearedFields, skill.FieldPrerequisiteQuestIds)
}

// SetIsCompound sets the "is_compound" field.
func (m *SkillMutation) SetIsCompound(b bool) {
	m.is_compound = &b
}

// IsCompound returns the value of the "is_compound" field in the mutation.
func (m *SkillMutation) IsCompound() (r bool, exists bool) {
	v := m.is_compound
	if v == nil {
		return
	}
	return *v, true
}

// OldIsCompound returns the old "is_compound" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldIsCompound(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsCompound is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsCompound requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsCompound: %w", err)
	}
	return oldValue.IsCompound, nil
}

// ResetIsCompound resets all changes to the "is_compound" field.
func (m *SkillMutation) ResetIsCompound() {
	m.is_compound = nil
}

// SetComponentSkillIds sets the "component_skill_ids" field.
func (m *SkillMutation) SetComponentSkillIds(s []string) {
	m.component_skill_ids = &s
	m.appendcomponent_skill_ids = nil
}

// ComponentSkillIds returns the value of the "component_skill_ids" field in the mutation.
func (m *SkillMutation) ComponentSkillIds() (r []string, exists bool) {
	v := m.component_skill_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldComponentSkillIds returns the old "component_skill_ids" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldComponentSkillIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComponentSkillIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComponentSkillIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComponentSkillIds: %w", err)
	}
	return oldValue.ComponentSkillIds, nil
}

// AppendComponentSkillIds adds s to the "component_skill_ids" field.
func (m *SkillMutation) AppendComponentSkillIds(s []string) {
	m.appendcomponent_skill_ids = append(m.appendcomponent_skill_ids, s...)
}

// AppendedComponentSkillIds returns the list of values that were appended to the "component_skill_ids" field in this mutation.
func (m *SkillMutation) AppendedComponentSkillIds() ([]string, bool) {
	if len(m.appendcomponent_skill_ids) == 0 {
		return nil, false
	}
	return m.appendcomponent_skill_ids, true
}

// ClearComponentSkillIds clears the value of the "component_skill_ids" field.
func (m *SkillMutation) ClearComponentSkillIds() {
	m.component_skill_ids = nil
	m.appendcomponent_skill_ids = nil
	m.clearedFields[skill.FieldComponentSkillIds] = struct{}{}
}

// ComponentSkillIdsCleared returns if the "component_skill_ids" field was cleared in this mutation.
func (m *SkillMutation) ComponentSkillIdsCleared() bool {
	_, ok := m.clearedFields[skill.FieldComponentSkillIds]
	return ok
}

// ResetComponentSkillIds resets all changes to the "component_skill_ids" field.
func (m *SkillMutation) ResetComponentSkillIds() {
	m.component_skill_ids = nil
	m.appendcomponent_skill_ids = nil
	delete(m.clearedFields, skill.FieldComponentSkillIds)
}

// SetWeekNumber sets the "week_number" field.
func (m *SkillMutation) SetWeekNumber(i int) {
	m.week_number = &i
	m.addweek_number = nil
}

// WeekNumber returns the value of the "week_number" field in the mutation.
func (m *SkillMutation) WeekNumber() (r int, exists bool) {
	v := m.week_number
	if v == nil {
		return
	}
	return *v, true
}

// OldWeekNumber returns the old "week_number" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldWeekNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeekNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeekNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeekNumber: %w", err)
	}
	return oldValue.WeekNumber, nil
}

// AddWeekNumber adds i to the "week_number" field.
func (m *SkillMutation) AddWeekNumber(i int) {
	if m.addweek_number != nil {
		*m.addweek_number += i
	} else {
		m.addweek_number = &i
	}
}

// AddedWeekNumber returns the value that was added to the "week_number" field in this mutation.
func (m *SkillMutation) AddedWeekNumber() (r int, exists bool) {
	v := m.addweek_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeekNumber resets all changes to the "week_number" field.
func (m *SkillMutation) ResetWeekNumber() {
	m.week_number = nil
	m.addweek_number = nil
}

// SetDayInWeek sets the "day_in_week" field.
func (m *SkillMutation) SetDayInWeek(i int) {
	m.day_in_week = &i
	m.addday_in_week = nil
}

// DayInWeek returns the value of the "day_in_week" field in the mutation.
func (m *SkillMutation) DayInWeek() (r int, exists bool) {
	v := m.day_in_week
	if v == nil {
		return
	}
	return *v, true
}

// OldDayInWeek returns the old "day_in_week" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldDayInWeek(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDayInWeek is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDayInWeek requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDayInWeek: %w", err)
	}
	return oldValue.DayInWeek, nil
}

// AddDayInWeek adds i to the "day_in_week" field.
func (m *SkillMutation) AddDayInWeek(i int) {
	if m.addday_in_week != nil {
		*m.addday_in_week += i
	} else {
		m.addday_in_week = &i
	}
}

// AddedDayInWeek returns the value that was added to the "day_in_week" field in this mutation.
func (m *SkillMutation) AddedDayInWeek() (r int, exists bool) {
	v := m.addday_in_week
	if v == nil {
		return
	}
	return *v, true
}

// ResetDayInWeek resets all changes to the "day_in_week" field.
func (m *SkillMutation) ResetDayInWeek() {
	m.day_in_week = nil
	m.addday_in_week = nil
}

// SetDayInQuest sets the "day_in_quest" field.
func (m *SkillMutation) SetDayInQuest(i int) {
	m.day_in_quest = &i
	m.addday_in_quest = nil
}

// DayInQuest returns the value of the "day_in_quest" field in the mutation.
func (m *SkillMutation) DayInQuest() (r int, exists bool) {
	v := m.day_in_quest
	if v == nil {
		return
	}
	return *v, true
}

// OldDayInQuest returns the old "day_in_quest" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldDayInQuest(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDayInQuest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDayInQuest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDayInQuest: %w", err)
	}
	return oldValue.DayInQuest, nil
}

// AddDayInQuest adds i to the "day_in_quest" field.
func (m *SkillMutation) AddDayInQuest(i int) {
	if m.addday_in_quest != nil {
		*m.addday_in_quest += i
	} else {
		m.addday_in_quest = &i
	}
}

// AddedDayInQuest returns the value that was added to the "day_in_quest" field in this mutation.
func (m *SkillMutation) AddedDayInQuest() (r int, exists bool) {
	v := m.addday_in_quest
	if v == nil {
		return
	}
	return *v, true
}

// ResetDayInQuest resets all changes to the "day_in_quest" field.
func (m *SkillMutation) ResetDayInQuest() {
	m.day_in_quest = nil
	m.addday_in_quest = nil
}

// SetMastery sets the "mastery" field.
func (m *SkillMutation) SetMastery(s string) {
	m.mastery = &s
}

// Mastery returns the value of the "mastery" field in the mutation.
func (m *SkillMutation) Mastery() (r string, exists bool) {
	v := m.mastery
	if v == nil {
		return
	}
	return *v, true
}

// OldMastery returns the old "mastery" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldMastery(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMastery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMastery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMastery: %w", err)
	}
	return oldValue.Mastery, nil
}

// ResetMastery resets all changes to the "mastery" field.
func (m *SkillMutation) ResetMastery() {
	m.mastery = nil
}

// SetStatus sets the "status" field.
func (m *SkillMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SkillMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SkillMutation) ResetStatus() {
	m.status = nil
}

// SetPassCount sets the "pass_count" field.
func (m *SkillMutation) SetPassCount(i int) {
	m.pass_count = &i
	m.addpass_count = nil
}

// PassCount returns the value of the "pass_count" field in the mutation.
func (m *SkillMutation) PassCount() (r int, exists bool) {
	v := m.pass_count
	if v == nil {
		return
	}
	return *v, true
}

// OldPassCount returns the old "pass_count" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldPassCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassCount: %w", err)
	}
	return oldValue.PassCount, nil
}

// AddPassCount adds i to the "pass_count" field.
func (m *SkillMutation) AddPassCount(i int) {
	if m.addpass_count != nil {
		*m.addpass_count += i
	} else {
		m.addpass_count = &i
	}
}

// AddedPassCount returns the value that was added to the "pass_count" field in this mutation.
func (m *SkillMutation) AddedPassCount() (r int, exists bool) {
	v := m.addpass_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetPassCount resets all changes to the "pass_count" field.
func (m *SkillMutation) ResetPassCount() {
	m.pass_count = nil
	m.addpass_count = nil
}

// SetFailCount sets the "fail_count" field.
func (m *SkillMutation) SetFailCount(i int) {
	m.fail_count = &i
	m.addfail_count = nil
}

// FailCount returns the value of the "fail_count" field in the mutation.
func (m *SkillMutation) FailCount() (r int, exists bool) {
	v := m.fail_count
	if v == nil {
		return
	}
	return *v, true
}

// OldFailCount returns the old "fail_count" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldFailCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailCount: %w", err)
	}
	return oldValue.FailCount, nil
}

// AddFailCount adds i to the "fail_count" field.
func (m *SkillMutation) AddFailCount(i int) {
	if m.addfail_count != nil {
		*m.addfail_count += i
	} else {
		m.addfail_count = &i
	}
}

// AddedFailCount returns the value that was added to the "fail_count" field in this mutation.
func (m *SkillMutation) AddedFailCount() (r int, exists bool) {
	v := m.addfail_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailCount resets all changes to the "fail_count" field.
func (m *SkillMutation) ResetFailCount() {
	m.fail_count = nil
	m.addfail_count = nil
}

// SetConsecutivePasses sets the "consecutive_passes" field.
func (m *SkillMutation) SetConsecutivePasses(i int) {
	m.consecutive_passes = &i
	m.addconsecutive_passes = nil
}

// ConsecutivePasses returns the value of the "consecutive_passes" field in the mutation.
func (m *SkillMutation) ConsecutivePasses() (r int, exists bool) {
	v := m.consecutive_passes
	if v == nil {
		return
	}
	return *v, true
}

// OldConsecutivePasses returns the old "consecutive_passes" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldConsecutivePasses(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsecutivePasses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsecutivePasses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsecutivePasses: %w", err)
	}
	return oldValue.ConsecutivePasses, nil
}

// AddConsecutivePasses adds i to the "consecutive_passes" field.
func (m *SkillMutation) AddConsecutivePasses(i int) {
	if m.addconsecutive_passes != nil {
		*m.addconsecutive_passes += i
	} else {
		m.addconsecutive_passes = &i
	}
}

// AddedConsecutivePasses returns the value that was added to the "consecutive_passes" field in this mutation.
func (m *SkillMutation) AddedConsecutivePasses() (r int, exists bool) {
	v := m.addconsecutive_passes
	if v == nil {
		return
	}
	return *v, true
}

// ResetConsecutivePasses resets all changes to the "consecutive_passes" field.
func (m *SkillMutation) ResetConsecutivePasses() {
	m.consecutive_passes = nil
	m.addconsecutive_passes = nil
}

// SetMasteredAt sets the "mastered_at" field.
func (m *SkillMutation) SetMasteredAt(t time.Time) {
	m.mastered_at = &t
}

// MasteredAt returns the value of the "mastered_at" field in the mutation.
func (m *SkillMutation) MasteredAt() (r time.Time, exists bool) {
	v := m.mastered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldMasteredAt returns the old "mastered_at" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldMasteredAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMasteredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMasteredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMasteredAt: %w", err)
	}
	return oldValue.MasteredAt, nil
}

// ClearMasteredAt clears the value of the "mastered_at" field.
func (m *SkillMutation) ClearMasteredAt() {
	m.mastered_at = nil
	m.clearedFields[skill.FieldMasteredAt] = struct{}{}
}

// MasteredAtCleared returns if the "mastered_at" field was cleared in this mutation.
func (m *SkillMutation) MasteredAtCleared() bool {
	_, ok := m.clearedFields[skill.FieldMasteredAt]
	return ok
}

// ResetMasteredAt resets all changes to the "mastered_at" field.
func (m *SkillMutation) ResetMasteredAt() {
	m.mastered_at = nil
	delete(m.clearedFields, skill.FieldMasteredAt)
}

// SetUnlockedAt sets the "unlocked_at" field.
func (m *SkillMutation) SetUnlockedAt(t time.Time) {
	m.unlocked_at = &t
}

// UnlockedAt returns the value of the "unlocked_at" field in the mutation.
func (m *SkillMutation) UnlockedAt() (r time.Time, exists bool) {
	v := m.unlocked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUnlockedAt returns the old "unlocked_at" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldUnlockedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnlockedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnlockedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnlockedAt: %w", err)
	}
	return oldValue.UnlockedAt, nil
}

// ClearUnlockedAt clears the value of the "unlocked_at" field.
func (m *SkillMutation) ClearUnlockedAt() {
	m.unlocked_at = nil
	m.clearedFields[skill.FieldUnlockedAt] = struct{}{}
}

// UnlockedAtCleared returns if the "unlocked_at" field was cleared in this mutation.
func (m *SkillMutation) UnlockedAtCleared() bool {
	_, ok := m.clearedFields[skill.FieldUnlockedAt]
	return ok
}

// ResetUnlockedAt resets all changes to the "unlocked_at" field.
func (m *SkillMutation) ResetUnlockedAt() {
	m.unlocked_at = nil
	delete(m.clearedFields, skill.FieldUnlockedAt)
}

// Where appends a list predicates to the SkillMutation builder.
func (m *SkillMutation) Where(ps ...predicate.Skill) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SkillMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SkillMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Skill, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SkillMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SkillMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Skill).
func (m *SkillMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SkillMutation) Fields() []string {
	fields := make([]string, 0, 28)
	if m.skill_id != nil {
		fields = append(fields, skill.FieldSkillID)
	}
	if m.quest_id != nil {
		fields = append(fields, skill.FieldQuestID)
	}
	if m.goal_id != nil {
		fields = append(fields, skill.FieldGoalID)
	}
	if m.user_id != nil {
		fields = append(fields, skill.FieldUserID)
	}
	if m.title != nil {
		fields = append(fields, skill.FieldTitle)
	}
	if m.topics != nil {
		fields = append(fields, skill.FieldTopics)
	}
	if m.action != nil {
		fields = append(fields, skill.FieldAction)
	}
	if m.success_signal != nil {
		fields = append(fields, skill.FieldSuccessSignal)
	}
	if m.constraints != nil {
		fields = append(fields, skill.FieldConstraints)
	}
	if m.transfer_scenario != nil {
		fields = append(fields, skill.FieldTransferScenario)
	}
	if m.estimated_minutes != nil {
		fields = append(fields, skill.FieldEstimatedMinutes)
	}
	if m.skill_type != nil {
		fields = append(fields, skill.FieldSkillType)
	}
	if m.depth != nil {
		fields = append(fields, skill.FieldDepth)
	}
	if m._order != nil {
		fields = append(fields, skill.FieldOrder)
	}
	if m.prerequisite_skill_ids != nil {
		fields = append(fields, skill.FieldPrerequisiteSkillIds)
	}
	if m.prerequisite_quest_ids != nil {
		fields = append(fields, skill.FieldPrerequisiteQuestIds)
	}
	if m.is_compound != nil {
		fields = append(fields, skill.FieldIsCompound)
	}
	if m.component_skill_ids != nil {
		fields = append(fields, skill.FieldComponentSkillIds)
	}
	if m.week_number != nil {
		fields = append(fields, skill.FieldWeekNumber)
	}
	if m.day_in_week != nil {
		fields = append(fields, skill.FieldDayInWeek)
	}
	if m.day_in_quest != nil {
		fields = append(fields, skill.FieldDayInQuest)
	}
	if m.mastery != nil {
		fields = append(fields, skill.FieldMastery)
	}
	if m.status != nil {
		fields = append(fields, skill.FieldStatus)
	}
	if m.pass_count != nil {
		fields = append(fields, skill.FieldPassCount)
	}
	if m.fail_count != nil {
		fields = append(fields, skill.FieldFailCount)
	}
	if m.consecutive_passes != nil {
		fields = append(fields, skill.FieldConsecutivePasses)
	}
	if m.mastered_at != nil {
		fields = append(fields, skill.FieldMasteredAt)
	}
	if m.unlocked_at != nil {
		fields = append(fields, skill.FieldUnlockedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SkillMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case skill.FieldSkillID:
		return m.SkillID()
	case skill.FieldQuestID:
		return m.QuestID()
	case skill.FieldGoalID:
		return m.GoalID()
	case skill.FieldUserID:
		return m.UserID()
	case skill.FieldTitle:
		return m.Title()
	case skill.FieldTopics:
		return m.Topics()
	case skill.FieldAction:
		return m.Action()
	case skill.FieldSuccessSignal:
		return m.SuccessSignal()
	case skill.FieldConstraints:
		return m.Constraints()
	case skill.FieldTransferScenario:
		return m.TransferScenario()
	case skill.FieldEstimatedMinutes:
		return m.EstimatedMinutes()
	case skill.FieldSkillType:
		return m.SkillType()
	case skill.FieldDepth:
		return m.Depth()
	case skill.FieldOrder:
		return m.Order()
	case skill.FieldPrerequisiteSkillIds:
		return m.PrerequisiteSkillIds()
	case skill.FieldPrerequisiteQuestIds:
		return m.PrerequisiteQuestIds()
	case skill.FieldIsCompound:
		return m.IsCompound()
	case skill.FieldComponentSkillIds:
		return m.ComponentSkillIds()
	case skill.FieldWeekNumber:
		return m.WeekNumber()
	case skill.FieldDayInWeek:
		return m.DayInWeek()
	case skill.FieldDayInQuest:
		return m.DayInQuest()
	case skill.FieldMastery:
		return m.Mastery()
	case skill.FieldStatus:
		return m.Status()
	case skill.FieldPassCount:
		return m.PassCount()
	case skill.FieldFailCount:
		return m.FailCount()
	case skill.FieldConsecutivePasses:
		return m.ConsecutivePasses()
	case skill.FieldMasteredAt:
		return m.MasteredAt()
	case skill.FieldUnlockedAt:
		return m.UnlockedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SkillMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case skill.FieldSkillID:
		return m.OldSkillID(ctx)
	case skill.FieldQuestID:
		return m.OldQuestID(ctx)
	case skill.FieldGoalID:
		return m.OldGoalID(ctx)
	case skill.FieldUserID:
		return m.OldUserID(ctx)
	case skill.FieldTitle:
		return m.OldTitle(ctx)
	case skill.FieldTopics:
		return m.OldTopics(ctx)
	case skill.FieldAction:
		return m.OldAction(ctx)
	case skill.FieldSuccessSignal:
		return m.OldSuccessSignal(ctx)
	case skill.FieldConstraints:
		return m.OldConstraints(ctx)
	case skill.FieldTransferScenario:
		return m.OldTransferScenario(ctx)
	case skill.FieldEstimatedMinutes:
		return m.OldEstimatedMinutes(ctx)
	case skill.FieldSkillType:
		return m.OldSkillType(ctx)
	case skill.FieldDepth:
		return m.OldDepth(ctx)
	case skill.FieldOrder:
		return m.OldOrder(ctx)
	case skill.FieldPrerequisiteSkillIds:
		return m.OldPrerequisiteSkillIds(ctx)
	case skill.FieldPrerequisiteQuestIds:
		return m.OldPrerequisiteQuestIds(ctx)
	case skill.FieldIsCompound:
		return m.OldIsCompound(ctx)
	case skill.FieldComponentSkillIds:
		return m.OldComponentSkillIds(ctx)
	case skill.FieldWeekNumber:
		return m.OldWeekNumber(ctx)
	case skill.FieldDayInWeek:
		return m.OldDayInWeek(ctx)
	case skill.FieldDayInQuest:
		return m.OldDayInQuest(ctx)
	case skill.FieldMastery:
		return m.OldMastery(ctx)
	case skill.FieldStatus:
		return m.OldStatus(ctx)
	case skill.FieldPassCount:
		return m.OldPassCount(ctx)
	case skill.FieldFailCount:
		return m.OldFailCount(ctx)
	case skill.FieldConsecutivePasses:
		return m.OldConsecutivePasses(ctx)
	case skill.FieldMasteredAt:
		return m.OldMasteredAt(ctx)
	case skill.FieldUnlockedAt:
		return m.OldUnlockedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Skill field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SkillMutation) SetField(name string, value ent.Value) error {
	switch name {
	case skill.FieldSkillID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillID(v)
		return nil
	case skill.FieldQuestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestID(v)
		return nil
	case skill.FieldGoalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoalID(v)
		return nil
	case skill.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case skill.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case skill.FieldTopics:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopics(v)
		return nil
	case skill.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case skill.FieldSuccessSignal:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccessSignal(v)
		return nil
	case skill.FieldConstraints:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConstraints(v)
		return nil
	case skill.FieldTransferScenario:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransferScenario(v)
		return nil
	case skill.FieldEstimatedMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedMinutes(v)
		return nil
	case skill.FieldSkillType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillType(v)
		return nil
	case skill.FieldDepth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepth(v)
		return nil
	case skill.FieldOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrder(v)
		return nil
	case skill.FieldPrerequisiteSkillIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrerequisiteSkillIds(v)
		return nil
	case skill.FieldPrerequisiteQuestIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrerequisiteQuestIds(v)
		return nil
	case skill.FieldIsCompound:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsCompound(v)
		return nil
	case skill.FieldComponentSkillIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComponentSkillIds(v)
		return nil
	case skill.FieldWeekNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeekNumber(v)
		return nil
	case skill.FieldDayInWeek:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDayInWeek(v)
		return nil
	case skill.FieldDayInQuest:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDayInQuest(v)
		return nil
	case skill.FieldMastery:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMastery(v)
		return nil
	case skill.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case skill.FieldPassCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassCount(v)
		return nil
	case skill.FieldFailCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailCount(v)
		return nil
	case skill.FieldConsecutivePasses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsecutivePasses(v)
		return nil
	case skill.FieldMasteredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMasteredAt(v)
		return nil
	case skill.FieldUnlockedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnlockedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Skill field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SkillMutation) AddedFields() []string {
	var fields []string
	if m.addestimated_minutes != nil {
		fields = append(fields, skill.FieldEstimatedMinutes)
	}
	if m.adddepth != nil {
		fields = append(fields, skill.FieldDepth)
	}
	if m.add_order != nil {
		fields = append(fields, skill.FieldOrder)
	}
	if m.addweek_number != nil {
		fields = append(fields, skill.FieldWeekNumber)
	}
	if m.addday_in_week != nil {
		fields = append(fields, skill.FieldDayInWeek)
	}
	if m.addday_in_quest != nil {
		fields = append(fields, skill.FieldDayInQuest)
	}
	if m.addpass_count != nil {
		fields = append(fields, skill.FieldPassCount)
	}
	if m.addfail_count != nil {
		fields = append(fields, skill.FieldFailCount)
	}
	if m.addconsecutive_passes != nil {
		fields = append(fields, skill.FieldConsecutivePasses)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SkillMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case skill.FieldEstimatedMinutes:
		return m.AddedEstimatedMinutes()
	case skill.FieldDepth:
		return m.AddedDepth()
	case skill.FieldOrder:
		return m.AddedOrder()
	case skill.FieldWeekNumber:
		return m.AddedWeekNumber()
	case skill.FieldDayInWeek:
		return m.AddedDayInWeek()
	case skill.FieldDayInQuest:
		return m.AddedDayInQuest()
	case skill.FieldPassCount:
		return m.AddedPassCount()
	case skill.FieldFailCount:
		return m.AddedFailCount()
	case skill.FieldConsecutivePasses:
		return m.AddedConsecutivePasses()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SkillMutation) AddField(name string, value ent.Value) error {
	switch name {
	case skill.FieldEstimatedMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstimatedMinutes(v)
		return nil
	case skill.FieldDepth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDepth(v)
		return nil
	case skill.FieldOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrder(v)
		return nil
	case skill.FieldWeekNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeekNumber(v)
		return nil
	case skill.FieldDayInWeek:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDayInWeek(v)
		return nil
	case skill.FieldDayInQuest:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDayInQuest(v)
		return nil
	case skill.FieldPassCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPassCount(v)
		return nil
	case skill.FieldFailCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailCount(v)
		return nil
	case skill.FieldConsecutivePasses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConsecutivePasses(v)
		return nil
	}
	return fmt.Errorf("unknown Skill numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SkillMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(skill.FieldTopics) {
		fields = append(fields, skill.FieldTopics)
	}
	if m.FieldCleared(skill.FieldAction) {
		fields = append(fields, skill.FieldAction)
	}
	if m.FieldCleared(skill.FieldSuccessSignal) {
		fields = append(fields, skill.FieldSuccessSignal)
	}
	if m.FieldCleared(skill.FieldConstraints) {
		fields = append(fields, skill.FieldConstraints)
	}
	if m.FieldCleared(skill.FieldTransferScenario) {
		fields = append(fields, skill.FieldTransferScenario)
	}
	if m.FieldCleared(skill.FieldPrerequisiteSkillIds) {
		fields = append(fields, skill.FieldPrerequisiteSkillIds)
	}
	if m.FieldCleared(skill.FieldPrerequisiteQuestIds) {
		fields = append(fields, skill.FieldPrerequisiteQuestIds)
	}
	if m.FieldCleared(skill.FieldComponentSkillIds) {
		fields = append(fields, skill.FieldComponentSkillIds)
	}
	if m.FieldCleared(skill.FieldMasteredAt) {
		fields = append(fields, skill.FieldMasteredAt)
	}
	if m.FieldCleared(skill.FieldUnlockedAt) {
		fields = append(fields, skill.FieldUnlockedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SkillMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SkillMutation) ClearField(name string) error {
	switch name {
	case skill.FieldTopics:
		m.ClearTopics()
		return nil
	case skill.FieldAction:
		m.ClearAction()
		return nil
	case skill.FieldSuccessSignal:
		m.ClearSuccessSignal()
		return nil
	case skill.FieldConstraints:
		m.ClearConstraints()
		return nil
	case skill.FieldTransferScenario:
		m.ClearTransferScenario()
		return nil
	case skill.FieldPrerequisiteSkillIds:
		m.ClearPrerequisiteSkillIds()
		return nil
	case skill.FieldPrerequisiteQuestIds:
		m.ClearPrerequisiteQuestIds()
		return nil
	case skill.FieldComponentSkillIds:
		m.ClearComponentSkillIds()
		return nil
	case skill.FieldMasteredAt:
		m.ClearMasteredAt()
		return nil
	case skill.FieldUnlockedAt:
		m.ClearUnlockedAt()
		return nil
	}
	return fmt.Errorf("unknown Skill nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SkillMutation) ResetField(name string) error {
	switch name {
	case skill.FieldSkillID:
		m.ResetSkillID()
		return nil
	case skill.FieldQuestID:
		m.ResetQuestID()
		return nil
	case skill.FieldGoalID:
		m.ResetGoalID()
		return nil
	case skill.FieldUserID:
		m.ResetUserID()
		return nil
	case skill.FieldTitle:
		m.ResetTitle()
		return nil
	case skill.FieldTopics:
		m.ResetTopics()
		return nil
	case skill.FieldAction:
		m.ResetAction()
		return nil
	case skill.FieldSuccessSignal:
		m.ResetSuccessSignal()
		return nil
	case skill.FieldConstraints:
		m.ResetConstraints()
		return nil
	case skill.FieldTransferScenario:
		m.ResetTransferScenario()
		return nil
	case skill.FieldEstimatedMinutes:
		m.ResetEstimatedMinutes()
		return nil
	case skill.FieldSkillType:
		m.ResetSkillType()
		return nil
	case skill.FieldDepth:
		m.ResetDepth()
		return nil
	case skill.FieldOrder:
		m.ResetOrder()
		return nil
	case skill.FieldPrerequisiteSkillIds:
		m.ResetPrerequisiteSkillIds()
		return nil
	case skill.FieldPrerequisiteQuestIds:
		m.ResetPrerequisiteQuestIds()
		return nil
	case skill.FieldIsCompound:
		m.ResetIsCompound()
		return nil
	case skill.FieldComponentSkillIds:
		m.ResetComponentSkillIds()
		return nil
	case skill.FieldWeekNumber:
		m.ResetWeekNumber()
		return nil
	case skill.FieldDayInWeek:
		m.ResetDayInWeek()
		return nil
	case skill.FieldDayInQuest:
		m.ResetDayInQuest()
		return nil
	case skill.FieldMastery:
		m.ResetMastery()
		return nil
	case skill.FieldStatus:
		m.ResetStatus()
		return nil
	case skill.FieldPassCount:
		m.ResetPassCount()
		return nil
	case skill.FieldFailCount:
		m.ResetFailCount()
		return nil
	case skill.FieldConsecutivePasses:
		m.ResetConsecutivePasses()
		return nil
	case skill.FieldMasteredAt:
		m.ResetMasteredAt()
		return nil
	case skill.FieldUnlockedAt:
		m.ResetUnlockedAt()
		return nil
	}
	return fmt.Errorf("unknown Skill field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SkillMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SkillMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SkillMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SkillMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SkillMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SkillMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SkillMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Skill unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SkillMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Skill edge %s", name)
}

// WeekPlanMutation represents an operation that mutates the WeekPlan nodes in the graph.
type WeekPlanMutation struct {
	config
	op                            Op
	typ                           string
	id                            *int
	plan_id                       *string
	goal_id                       *string
	user_id                       *string
	quest_id                      *string
	week_number                   *int
	addweek_number                *int
	week_in_quest                 *int
	addweek_in_quest              *int
	is_first_week_of_quest        *bool
	is_last_week_of_quest         *bool
	days                          *[]map[string]interface{}
	appenddays                    []map[string]interface{}
	scheduled_skill_ids           *[]string
	appendscheduled_skill_ids     []string
	carry_forward_skill_ids       *[]string
	appendcarry_forward_skill_ids []string
	reviews_from_quest_ids        *[]string
	appendreviews_from_quest_ids  []string
	builds_on_skill_ids           *[]string
	appendbuilds_on_skill_ids     []string
	theme                         *string
	weekly_competence             *string
	drills_completed              *int
	adddrills_completed           *int
	drills_passed                 *int
	adddrills_passed              *int
	drills_failed                 *int
	adddrills_failed              *int
	drills_skipped                *int
	adddrills_skipped             *int
	skills_mastered               *int
	addskills_mastered            *int
	pass_rate                     *float64
	addpass_rate                  *float64
	status                        *string
	start_date                    *time.Time
	created_at                    *time.Time
	clearedFields                 map[string]struct{}
	done                          bool
	oldValue                      func(context.Context) (*WeekPlan, error)
	predicates                    []predicate.WeekPlan
}

var _ ent.Mutation = (*WeekPlanMutation)(nil)

// weekplanOption allows management of the mutation configuration using functional options.
type weekplanOption func(*WeekPlanMutation)

// newWeekPlanMutation creates new mutation for the WeekPlan entity.
func newWeekPlanMutation(c config, op Op, opts ...weekplanOption) *WeekPlanMutation {
	m := &WeekPlanMutation{
		config:        c,
		op:            op,
		typ:           TypeWeekPlan,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWeekPlanID sets the ID field of the mutation.
func withWeekPlanID(id int) weekplanOption {
	return func(m *WeekPlanMutation) {
		var (
			err   error
			once  sync.Once
			value *WeekPlan
		)
		m.oldValue = func(ctx context.Context) (*WeekPlan, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WeekPlan.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWeekPlan sets the old WeekPlan of the mutation.
func withWeekPlan(node *WeekPlan) weekplanOption {
	return func(m *WeekPlanMutation) {
		m.oldValue = func(context.Context) (*WeekPlan, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WeekPlanMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WeekPlanMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WeekPlanMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WeekPlanMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WeekPlan.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPlanID sets the "plan_id" field.
func (m *WeekPlanMutation) SetPlanID(s string) {
	m.plan_id = &s
}

// PlanID returns the value of the "plan_id" field in the mutation.
func (m *WeekPlanMutation) PlanID() (r string, exists bool) {
	v := m.plan_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanID returns the old "plan_id" field's value of the WeekPlan entity.
// If the WeekPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeekPlanMutation) OldPlanID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanID: %w", err)
	}
	return oldValue.PlanID, nil
}

// ResetPlanID resets all changes to the "plan_id" field.
func (m *WeekPlanMutation) ResetPlanID() {
	m.plan_id = nil
}

// SetGoalID sets the "goal_id" field.
func (m *WeekPlanMutation) SetGoalID(s string) {
	m.goal_id = &s
}

// GoalID returns the value of the "goal_id" field in the mutation.
func (m *WeekPlanMutation) GoalID() (r string, exists bool) {
	v := m.goal_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGoalID returns the old "goal_id" field's value of the WeekPlan entity.
// If the WeekPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeekPlanMutation) OldGoalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoalID: %w", err)
	}
	return oldValue.GoalID, nil
}

// ResetGoalID resets all changes to the "goal_id" field.
func (m *WeekPlanMutation) ResetGoalID() {
	m.goal_id = nil
}

// SetUserID sets the "user_id" field.
func (m *WeekPlanMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *WeekPlanMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the WeekPlan entity.
// If the WeekPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeekPlanMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *WeekPlanMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[weekplan.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *WeekPlanMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[weekplan.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *WeekPlanMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, weekplan.FieldUserID)
}

// SetQuestID sets the "quest_id" field.
func (m *WeekPlanMutation) SetQuestID(s string) {
	m.quest_id = &s
}

// QuestID returns the value of the "quest_id" field in the mutation.
func (m *WeekPlanMutation) QuestID() (r string, exists bool) {
	v := m.quest_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestID returns the old "quest_id" field's value of the WeekPlan entity.
// If the WeekPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeekPlanMutation) OldQuestID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestID: %w", err)
	}
	return oldValue.QuestID, nil
}

// ResetQuestID resets all changes to the "quest_id" field.
func (m *WeekPlanMutation) ResetQuestID() {
	m.quest_id = nil
}

// SetWeekNumber sets the "week_number" field.
func (m *WeekPlanMutation) SetWeekNumber(i int) {
	m.week_number = &i
	m.addweek_number = nil
}

// WeekNumber returns the value of the "week_number" field in the mutation.
func (m *WeekPlanMutation) WeekNumber() (r int, exists bool) {
	v := m.week_number
	if v == nil {
		return
	}
	return *v, true
}

// OldWeekNumber returns the old "week_number" field's value of the WeekPlan entity.
// If the WeekPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeekPlanMutation) OldWeekNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeekNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeekNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeekNumber: %w", err)
	}
	return oldValue.WeekNumber, nil
}

// AddWeekNumber adds i to the "week_number" field.
func (m *WeekPlanMutation) AddWeekNumber(i int) {
	if m.addweek_number != nil {
		*m.addweek_number += i
	} else {
		m.addweek_number = &i
	}
}

// AddedWeekNumber returns the value that was added to the "week_number" field in this mutation.
func (m *WeekPlanMutation) AddedWeekNumber() (r int, exists bool) {
	v := m.addweek_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeekNumber resets all changes to the "week_number" field.
func (m *WeekPlanMutation) ResetWeekNumber() {
	m.week_number = nil
	m.addweek_number = nil
}

// SetWeekInQuest sets the "week_in_quest" field.
func (m *WeekPlanMutation) SetWeekInQuest(i int) {
	m.week_in_quest = &i
	m.addweek_in_quest = nil
}

// WeekInQuest returns the value of the "week_in_quest" field in the mutation.
func (m *WeekPlanMutation) WeekInQuest() (r int, exists bool) {
	v := m.week_in_quest
	if v == nil {
		return
	}
	return *v, true
}

// OldWeekInQuest returns the old "week_in_quest" field's value of the WeekPlan entity.
// If the WeekPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeekPlanMutation) OldWeekInQuest(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeekInQuest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeekInQuest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeekInQuest: %w", err)
	}
	return oldValue.WeekInQuest, nil
}

// AddWeekInQuest adds i to the "week_in_quest" field.
func (m *WeekPlanMutation) AddWeekInQuest(i int) {
	if m.addweek_in_quest != nil {
		*m.addweek_in_quest += i
	} else {
		m.addweek_in_quest = &i
	}
}

// AddedWeekInQuest returns the value that was added to the "week_in_quest" field in this mutation.
func (m *WeekPlanMutation) AddedWeekInQuest() (r int, exists bool) {
	v := m.addweek_in_quest
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeekInQuest resets all changes to the "week_in_quest" field.
func (m *WeekPlanMutation) ResetWeekInQuest() {
	m.week_in_quest = nil
	m.addweek_in_quest = nil
}

// SetIsFirstWeekOfQuest sets the "is_first_week_of_quest" field.
func (m *WeekPlanMutation) SetIsFirstWeekOfQuest(b bool) {
	m.is_first_week_of_quest = &b
}

// IsFirstWeekOfQuest returns the value of the "is_first_week_of_quest" field in the mutation.
func (m *WeekPlanMutation) IsFirstWeekOfQuest() (r bool, exists bool) {
	v := m.is_first_week_of_quest
	if v == nil {
		return
	}
	return *v, true
}

// OldIsFirstWeekOfQuest returns the old "is_first_week_of_quest" field's value of the WeekPlan entity.
// If the WeekPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeekPlanMutation) OldIsFirstWeekOfQuest(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsFirstWeekOfQuest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsFirstWeekOfQuest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsFirstWeekOfQuest: %w", err)
	}
	return oldValue.IsFirstWeekOfQuest, nil
}

// ResetIsFirstWeekOfQuest resets all changes to the "is_first_week_of_quest" field.
func (m *WeekPlanMutation) ResetIsFirstWeekOfQuest() {
	m.is_first_week_of_quest = nil
}

// SetIsLastWeekOfQuest sets the "is_last_week_of_quest" field.
func (m *WeekPlanMutation) SetIsLastWeekOfQuest(b bool) {
	m.is_last_week_of_quest = &b
}

// IsLastWeekOfQuest returns the value of the "is_last_week_of_quest" field in the mutation.
func (m *WeekPlanMutation) IsLastWeekOfQuest() (r bool, exists bool) {
	v := m.is_last_week_of_quest
	if v == nil {
		return
	}
	return *v, true
}

// OldIsLastWeekOfQuest returns the old "is_last_week_of_quest" field's value of the WeekPlan entity.
// If the WeekPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeekPlanMutation) OldIsLastWeekOfQuest(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsLastWeekOfQuest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsLastWeekOfQuest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsLastWeekOfQuest: %w", err)
	}
	return oldValue.IsLastWeekOfQuest, nil
}

// ResetIsLastWeekOfQuest resets all changes to the "is_last_week_of_quest" field.
func (m *WeekPlanMutation) ResetIsLastWeekOfQuest() {
	m.is_last_week_of_quest = nil
}

// SetDays sets the "days" field.
func (m *WeekPlanMutation) SetDays(value []map[string]interface{}) {
	m.days = &value
	m.appenddays = nil
}

// Days returns the value of the "days" field in the mutation.
func (m *WeekPlanMutation) Days() (r []map[string]interface{}, exists bool) {
	v := m.days
	if v == nil {
		return
	}
	return *v, true
}

// OldDays returns the old "days" field's value of the WeekPlan entity.
// If the WeekPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeekPlanMutation) OldDays(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDays: %w", err)
	}
	return oldValue.Days, nil
}

// AppendDays adds value to the "days" field.
func (m *WeekPlanMutation) AppendDays(value []map[string]interface{}) {
	m.appenddays = append(m.appenddays, value...)
}

// AppendedDays returns the list of values that were appended to the "days" field in this mutation.
func (m *WeekPlanMutation) AppendedDays() ([]map[string]interface{}, bool) {
	if len(m.appenddays) == 0 {
		return nil, false
	}
	return m.appenddays, true
}

// ClearDays clears the value of the "days" field.
func (m *WeekPlanMutation) ClearDays() {
	m.days = nil
	m.appenddays = nil
	m.clearedFields[weekplan.FieldDays] = struct{}{}
}

// DaysCleared returns if the "days" field was cleared in this mutation.
func (m *WeekPlanMutation) DaysCleared() bool {
	_, ok := m.clearedFields[weekplan.FieldDays]
	return ok
}

// ResetDays resets all changes to the "days" field.
func (m *WeekPlanMutation) ResetDays() {
	m.days = nil
	m.appenddays = nil
	delete(m.clearedFields, weekplan.FieldDays)
}

// SetScheduledSkillIds sets the "scheduled_skill_ids" field.
func (m *WeekPlanMutation) SetScheduledSkillIds(s []string) {
	m.scheduled_skill_ids = &s
	m.appendscheduled_skill_ids = nil
}

// ScheduledSkillIds returns the value of the "scheduled_skill_ids" field in the mutation.
func (m *WeekPlanMutation) ScheduledSkillIds() (r []string, exists bool) {
	v := m.scheduled_skill_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledSkillIds returns the old "scheduled_skill_ids" field's value of the WeekPlan entity.
// If the WeekPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeekPlanMutation) OldScheduledSkillIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledSkillIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledSkillIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledSkillIds: %w", err)
	}
	return oldValue.ScheduledSkillIds, nil
}

// AppendScheduledSkillIds adds s to the "scheduled_skill_ids" field.
func (m *WeekPlanMutation) AppendScheduledSkillIds(s []string) {
	m.appendscheduled_skill_ids = append(m.appendscheduled_skill_ids, s...)
}

// AppendedScheduledSkillIds returns the list of values that were appended to the "scheduled_skill_ids" field in this mutation.
func (m *WeekPlanMutation) AppendedScheduledSkillIds() ([]string, bool) {
	if len(m.appendscheduled_skill_ids) == 0 {
		return nil, false
	}
	return m.appendscheduled_skill_ids, true
}

// ClearScheduledSkillIds clears the value of the "scheduled_skill_ids" field.
func (m *WeekPlanMutation) ClearScheduledSkillIds() {
	m.scheduled_skill_ids = nil
	m.appendscheduled_skill_ids = nil
	m.clearedFields[weekplan.FieldScheduledSkillIds] = struct{}{}
}

// ScheduledSkillIdsCleared returns if the "scheduled_skill_ids" field was cleared in this mutation.
func (m *WeekPlanMutation) ScheduledSkillIdsCleared() bool {
	_, ok := m.clearedFields[weekplan.FieldScheduledSkillIds]
	return ok
}

// ResetScheduledSkillIds resets all changes to the "scheduled_skill_ids" field.
func (m *WeekPlanMutation) ResetScheduledSkillIds() {
	m.scheduled_skill_ids = nil
	m.appendscheduled_skill_ids = nil
	delete(m.clearedFields, weekplan.FieldScheduledSkillIds)
}

// SetCarryForwardSkillIds sets the "carry_forward_skill_ids" field.
func (m *WeekPlanMutation) SetCarryForwardSkillIds(s []string) {
	m.carry_forward_skill_ids = &s
	m.appendcarry_forward_skill_ids = nil
}

// CarryForwardSkillIds returns the value of the "carry_forward_skill_ids" field in the mutation.
func (m *WeekPlanMutation) CarryForwardSkillIds() (r []string, exists bool) {
	v := m.carry_forward_skill_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldCarryForwardSkillIds returns the old "carry_forward_skill_ids" field's value of the WeekPlan entity.
// If the WeekPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeekPlanMutation) OldCarryForwardSkillIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCarryForwardSkillIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCarryForwardSkillIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCarryForwardSkillIds: %w", err)
	}
	return oldValue.CarryForwardSkillIds, nil
}

// AppendCarryForwardSkillIds adds s to the "carry_forward_skill_ids" field.
func (m *WeekPlanMutation) AppendCarryForwardSkillIds(s []string) {
	m.appendcarry_forward_skill_ids = append(m.appendcarry_forward_skill_ids, s...)
}

// AppendedCarryForwardSkillIds returns the list of values that were appended to the "carry_forward_skill_ids" field in this mutation.
func (m *WeekPlanMutation) AppendedCarryForwardSkillIds() ([]string, bool) {
	if len(m.appendcarry_forward_skill_ids) == 0 {
		return nil, false
	}
	return m.appendcarry_forward_skill_ids, true
}

// ClearCarryForwardSkillIds clears the value of the "carry_forward_skill_ids" field.
func (m *WeekPlanMutation) ClearCarryForwardSkillIds() {
	m.carry_forward_skill_ids = nil
	m.appendcarry_forward_skill_ids = nil
	m.clearedFields[weekplan.FieldCarryForwardSkillIds] = struct{}{}
}

// CarryForwardSkillIdsCleared returns if the "carry_forward_skill_ids" field was cleared in this mutation.
func (m *WeekPlanMutation) CarryForwardSkillIdsCleared() bool {
	_, ok := m.clearedFields[weekplan.FieldCarryForwardSkillIds]
	return ok
}

// ResetCarryForwardSkillIds resets all changes to the "carry_forward_skill_ids" field.
func (m *WeekPlanMutation) ResetCarryForwardSkillIds() {
	m.carry_forward_skill_ids = nil
	m.appendcarry_forward_skill_ids = nil
	delete(m.clearedFields, weekplan.FieldCarryForwardSkillIds)
}

// SetReviewsFromQuestIds sets the "reviews_from_quest_ids" field.
func (m *WeekPlanMutation) SetReviewsFromQuestIds(s []string) {
	m.reviews_from_quest_ids = &s
	m.appendreviews_from_quest_ids = nil
}

// ReviewsFromQuestIds returns the value of the "reviews_from_quest_ids" field in the mutation.
func (m *WeekPlanMutation) ReviewsFromQuestIds() (r []string, exists bool) {
	v := m.reviews_from_quest_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewsFromQuestIds returns the old "reviews_from_quest_ids" field's value of the WeekPlan entity.
// If the WeekPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeekPlanMutation) OldReviewsFromQuestIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewsFromQuestIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewsFromQuestIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewsFromQuestIds: %w", err)
	}
	return oldValue.ReviewsFromQuestIds, nil
}

// AppendReviewsFromQuestIds adds s to the "reviews_from_quest_ids" field.
func (m *WeekPlanMutation) AppendReviewsFromQuestIds(s []string) {
	m.appendreviews_from_quest_ids = append(m.appendreviews_from_quest_ids, s...)
}

// AppendedReviewsFromQuestIds returns the list of values that were appended to the "reviews_from_quest_ids" field in this mutation.
func (m *WeekPlanMutation) AppendedReviewsFromQuestIds() ([]string, bool) {
	if len(m.appendreviews_from_quest_ids) == 0 {
		return nil, false
	}
	return m.appendreviews_from_quest_ids, true
}

// ClearReviewsFromQuestIds clears the value of the "reviews_from_quest_ids" field.
func (m *WeekPlanMutation) ClearReviewsFromQuestIds() {
	m.reviews_from_quest_ids = nil
	m.appendreviews_from_quest_ids = nil
	m.clearedFields[weekplan.FieldReviewsFromQuestIds] = struct{}{}
}

// ReviewsFromQuestIdsCleared returns if the "reviews_from_quest_ids" field was cleared in this mutation.
func (m *WeekPlanMutation) ReviewsFromQuestIdsCleared() bool {
	_, ok := m.clearedFields[weekplan.FieldReviewsFromQuestIds]
	return ok
}

// ResetReviewsFromQuestIds resets all changes to the "reviews_from_quest_ids" field.
func (m *WeekPlanMutation) ResetReviewsFromQuestIds() {
	m.reviews_from_quest_ids = nil
	m.appendreviews_from_quest_ids = nil
	delete(m.clearedFields, weekplan.FieldReviewsFromQuestIds)
}

// SetBuildsOnSkillIds sets the "builds_on_skill_ids" field.
func (m *WeekPlanMutation) SetBuildsOnSkillIds(s []string) {
	m.builds_on_skill_ids = &s
	m.appendbuilds_on_skill_ids = nil
}

// BuildsOnSkillIds returns the value of the "builds_on_skill_ids" field in the mutation.
func (m *WeekPlanMutation) BuildsOnSkillIds() (r []string, exists bool) {
	v := m.builds_on_skill_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldBuildsOnSkillIds returns the old "builds_on_skill_ids" field's value of the WeekPlan entity.
// If the WeekPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeekPlanMutation) OldBuildsOnSkillIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuildsOnSkillIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuildsOnSkillIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuildsOnSkillIds: %w", err)
	}
	return oldValue.BuildsOnSkillIds, nil
}

// AppendBuildsOnSkillIds adds s to the "builds_on_skill_ids" field.
func (m *WeekPlanMutation) AppendBuildsOnSkillIds(s []string) {
	m.appendbuilds_on_skill_ids = append(m.appendbuilds_on_skill_ids, s...)
}

// AppendedBuildsOnSkillIds returns the list of values that were appended to the "builds_on_skill_ids" field in this mutation.
func (m *WeekPlanMutation) AppendedBuildsOnSkillIds() ([]string, bool) {
	if len(m.appendbuilds_on_skill_ids) == 0 {
		return nil, false
	}
	return m.appendbuilds_on_skill_ids, true
}

// ClearBuildsOnSkillIds clears the value of the "builds_on_skill_ids" field.
func (m *WeekPlanMutation) ClearBuildsOnSkillIds() {
	m.builds_on_skill_ids = nil
	m.appendbuilds_on_skill_ids = nil
	m.clearedFields[weekplan.FieldBuildsOnSkillIds] = struct{}{}
}

// BuildsOnSkillIdsCleared returns if the "builds_on_skill_ids" field was cleared in this mutation.
func (m *WeekPlanMutation) BuildsOnSkillIdsCleared() bool {
	_, ok := m.clearedFields[weekplan.FieldBuildsOnSkillIds]
	return ok
}

// ResetBuildsOnSkillIds resets all changes to the "builds_on_skill_ids" field.
func (m *WeekPlanMutation) ResetBuildsOnSkillIds() {
	m.builds_on_skill_ids = nil
	m.appendbuilds_on_skill_ids = nil
	delete(m.clearedFields, weekplan.FieldBuildsOnSkillIds)
}

// SetTheme sets the "theme" field.
func (m *WeekPlanMutation) SetTheme(s string) {
	m.theme = &s
}

// Theme returns the value of the "theme" field in the mutation.
func (m *WeekPlanMutation) Theme() (r string, exists bool) {
	v := m.theme
	if v == nil {
		return
	}
	return *v, true
}

// OldTheme returns the old "theme" field's value of the WeekPlan entity.
// If the WeekPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeekPlanMutation) OldTheme(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTheme is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTheme requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTheme: %w", err)
	}
	return oldValue.Theme, nil
}

// ClearTheme clears the value of the "theme" field.
func (m *WeekPlanMutation) ClearTheme() {
	m.theme = nil
	m.clearedFields[weekplan.FieldTheme] = struct{}{}
}

// ThemeCleared returns if the "theme" field was cleared in this mutation.
func (m *WeekPlanMutation) ThemeCleared() bool {
	_, ok := m.clearedFields[weekplan.FieldTheme]
	return ok
}

// ResetTheme resets all changes to the "theme" field.
func (m *WeekPlanMutation) ResetTheme() {
	m.theme = nil
	delete(m.clearedFields, weekplan.FieldTheme)
}

// SetWeeklyCompetence sets the "weekly_competence" field.
func (m *WeekPlanMutation) SetWeeklyCompetence(s string) {
	m.weekly_competence = &s
}

// WeeklyCompetence returns the value of the "weekly_competence" field in the mutation.
func (m *WeekPlanMutation) WeeklyCompetence() (r string, exists bool) {
	v := m.weekly_competence
	if v == nil {
		return
	}
	return *v, true
}

// OldWeeklyCompetence returns the old "weekly_competence" field's value of the WeekPlan entity.
// If the WeekPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeekPlanMutation) OldWeeklyCompetence(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeeklyCompetence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeeklyCompetence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeeklyCompetence: %w", err)
	}
	return oldValue.WeeklyCompetence, nil
}

// ClearWeeklyCompetence clears the value of the "weekly_competence" field.
func (m *WeekPlanMutation) ClearWeeklyCompetence() {
	m.weekly_competence = nil
	m.clearedFields[weekplan.FieldWeeklyCompetence] = struct{}{}
}

// WeeklyCompetenceCleared returns if the "weekly_competence" field was cleared in this mutation.
func (m *WeekPlanMutation) WeeklyCompetenceCleared() bool {
	_, ok := m.clearedFields[weekplan.FieldWeeklyCompetence]
	return ok
}

// ResetWeeklyCompetence resets all changes to the "weekly_competence" field.
func (m *WeekPlanMutation) ResetWeeklyCompetence() {
	m.weekly_competence = nil
	delete(m.clearedFields, weekplan.FieldWeeklyCompetence)
}

// SetDrillsCompleted sets the "drills_completed" field.
func (m *WeekPlanMutation) SetDrillsCompleted(i int) {
	m.drills_completed = &i
	m.adddrills_completed = nil
}

// DrillsCompleted returns the value of the "drills_completed" field in the mutation.
func (m *WeekPlanMutation) DrillsCompleted() (r int, exists bool) {
	v := m.drills_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldDrillsCompleted returns the old "drills_completed" field's value of the WeekPlan entity.
// If the WeekPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeekPlanMutation) OldDrillsCompleted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDrillsCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDrillsCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDrillsCompleted: %w", err)
	}
	return oldValue.DrillsCompleted, nil
}

// AddDrillsCompleted adds i to the "drills_completed" field.
func (m *WeekPlanMutation) AddDrillsCompleted(i int) {
	if m.adddrills_completed != nil {
		*m.adddrills_completed += i
	} else {
		m.adddrills_completed = &i
	}
}

// AddedDrillsCompleted returns the value that was added to the "drills_completed" field in this mutation.
func (m *WeekPlanMutation) AddedDrillsCompleted() (r int, exists bool) {
	v := m.adddrills_completed
	if v == nil {
		return
	}
	return *v, true
}

// ResetDrillsCompleted resets all changes to the "drills_completed" field.
func (m *WeekPlanMutation) ResetDrillsCompleted() {
	m.drills_completed = nil
	m.adddrills_completed = nil
}

// SetDrillsPassed sets the "drills_passed" field.
func (m *WeekPlanMutation) SetDrillsPassed(i int) {
	m.drills_passed = &i
	m.adddrills_passed = nil
}

// DrillsPassed returns the value of the "drills_passed" field in the mutation.
func (m *WeekPlanMutation) DrillsPassed() (r int, exists bool) {
	v := m.drills_passed
	if v == nil {
		return
	}
	return *v, true
}

// OldDrillsPassed returns the old "drills_passed" field's value of the WeekPlan entity.
// If the WeekPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeekPlanMutation) OldDrillsPassed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDrillsPassed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDrillsPassed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDrillsPassed: %w", err)
	}
	return oldValue.DrillsPassed, nil
}

// AddDrillsPassed adds i to the "drills_passed" field.
func (m *WeekPlanMutation) AddDrillsPassed(i int) {
	if m.adddrills_passed != nil {
		*m.adddrills_passed += i
	} else {
		m.adddrills_passed = &i
	}
}

// AddedDrillsPassed returns the value that was added to the "drills_passed" field in this mutation.
func (m *WeekPlanMutation) AddedDrillsPassed() (r int, exists bool) {
	v := m.adddrills_passed
	if v == nil {
		return
	}
	return *v, true
}

// ResetDrillsPassed resets all changes to the "drills_passed" field.
func (m *WeekPlanMutation) ResetDrillsPassed() {
	m.drills_passed = nil
	m.adddrills_passed = nil
}

// SetDrillsFailed sets the "drills_failed" field.
func (m *WeekPlanMutation) SetDrillsFailed(i int) {
	m.drills_failed = &i
	m.adddrills_failed = nil
}

// DrillsFailed returns the value of the "drills_failed" field in the mutation.
func (m *WeekPlanMutation) DrillsFailed() (r int, exists bool) {
	v := m.drills_failed
	if v == nil {
		return
	}
	return *v, true
}

// OldDrillsFailed returns the old "drills_failed" field's value of the WeekPlan entity.
// If the WeekPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeekPlanMutation) OldDrillsFailed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDrillsFailed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDrillsFailed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDrillsFailed: %w", err)
	}
	return oldValue.DrillsFailed, nil
}

// AddDrillsFailed adds i to the "drills_failed" field.
func (m *WeekPlanMutation) AddDrillsFailed(i int) {
	if m.adddrills_failed != nil {
		*m.adddrills_failed += i
	} else {
		m.adddrills_failed = &i
	}
}

// AddedDrillsFailed returns the value that was added to the "drills_failed" field in this mutation.
func (m *WeekPlanMutation) AddedDrillsFailed() (r int, exists bool) {
	v := m.adddrills_failed
	if v == nil {
		return
	}
	return *v, true
}

// ResetDrillsFailed resets all changes to the "drills_failed" field.
func (m *WeekPlanMutation) ResetDrillsFailed() {
	m.drills_failed = nil
	m.adddrills_failed = nil
}

// SetDrillsSkipped sets the "drills_skipped" field.
func (m *WeekPlanMutation) SetDrillsSkipped(i int) {
	m.drills_skipped = &i
	m.adddrills_skipped = nil
}

// DrillsSkipped returns the value of the "drills_skipped" field in the mutation.
func (m *WeekPlanMutation) DrillsSkipped() (r int, exists bool) {
	v := m.drills_skipped
	if v == nil {
		return
	}
	return *v, true
}

// OldDrillsSkipped returns the old "drills_skipped" field's value of the WeekPlan entity.
// If the WeekPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeekPlanMutation) OldDrillsSkipped(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDrillsSkipped is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDrillsSkipped requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDrillsSkipped: %w", err)
	}
	return oldValue.DrillsSkipped, nil
}

// AddDrillsSkipped adds i to the "drills_skipped" field.
func (m *WeekPlanMutation) AddDrillsSkipped(i int) {
	if m.adddrills_skipped != nil {
		*m.adddrills_skipped += i
	} else {
		m.adddrills_skipped = &i
	}
}

// AddedDrillsSkipped returns the value that was added to the "drills_skipped" field in this mutation.
func (m *WeekPlanMutation) AddedDrillsSkipped() (r int, exists bool) {
	v := m.adddrills_skipped
	if v == nil {
		return
	}
	return *v, true
}

// ResetDrillsSkipped resets all changes to the "drills_skipped" field.
func (m *WeekPlanMutation) ResetDrillsSkipped() {
	m.drills_skipped = nil
	m.adddrills_skipped = nil
}

// SetSkillsMastered sets the "skills_mastered" field.
func (m *WeekPlanMutation) SetSkillsMastered(i int) {
	m.skills_mastered = &i
	m.addskills_mastered = nil
}

// SkillsMastered returns the value of the "skills_mastered" field in the mutation.
func (m *WeekPlanMutation) SkillsMastered() (r int, exists bool) {
	v := m.skills_mastered
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillsMastered returns the old "skills_mastered" field's value of the WeekPlan entity.
// If the WeekPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeekPlanMutation) OldSkillsMastered(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillsMastered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillsMastered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillsMastered: %w", err)
	}
	return oldValue.SkillsMastered, nil
}

// AddSkillsMastered adds i to the "skills_mastered" field.
func (m *WeekPlanMutation) AddSkillsMastered(i int) {
	if m.addskills_mastered != nil {
		*m.addskills_mastered += i
	} else {
		m.addskills_mastered = &i
	}
}

// AddedSkillsMastered returns the value that was added to the "skills_mastered" field in this mutation.
func (m *WeekPlanMutation) AddedSkillsMastered() (r int, exists bool) {
	v := m.addskills_mastered
	if v == nil {
		return
	}
	return *v, true
}

// ResetSkillsMastered resets all changes to the "skills_mastered" field.
func (m *WeekPlanMutation) ResetSkillsMastered() {
	m.skills_mastered = nil
	m.addskills_mastered = nil
}

// SetPassRate sets the "pass_rate" field.
func (m *WeekPlanMutation) SetPassRate(f float64) {
	m.pass_rate = &f
	m.addpass_rate = nil
}

// PassRate returns the value of the "pass_rate" field in the mutation.
func (m *WeekPlanMutation) PassRate() (r float64, exists bool) {
	v := m.pass_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldPassRate returns the old "pass_rate" field's value of the WeekPlan entity.
// If the WeekPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeekPlanMutation) OldPassRate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassRate: %w", err)
	}
	return oldValue.PassRate, nil
}

// AddPassRate adds f to the "pass_rate" field.
func (m *WeekPlanMutation) AddPassRate(f float64) {
	if m.addpass_rate != nil {
		*m.addpass_rate += f
	} else {
		m.addpass_rate = &f
	}
}

// AddedPassRate returns the value that was added to the "pass_rate" field in this mutation.
func (m *WeekPlanMutation) AddedPassRate() (r float64, exists bool) {
	v := m.addpass_rate
	if v == nil {
		return
	}
	return *v, true
}

// ResetPassRate resets all changes to the "pass_rate" field.
func (m *WeekPlanMutation) ResetPassRate() {
	m.pass_rate = nil
	m.addpass_rate = nil
}

// SetStatus sets the "status" field.
func (m *WeekPlanMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *WeekPlanMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the WeekPlan entity.
// If the WeekPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeekPlanMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WeekPlanMutation) ResetStatus() {
	m.status = nil
}

// SetStartDate sets the "start_date" field.
func (m *WeekPlanMutation) SetStartDate(t time.Time) {
	m.start_date = &t
}

// StartDate returns the value of the "start_date" field in the mutation.
func (m *WeekPlanMutation) StartDate() (r time.Time, exists bool) {
	v := m.start_date
	if v == nil {
		return
	}
	return *v, true
}

// OldStartDate returns the old "start_date" field's value of the WeekPlan entity.
// If the WeekPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeekPlanMutation) OldStartDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartDate: %w", err)
	}
	return oldValue.StartDate, nil
}

// ResetStartDate resets all changes to the "start_date" field.
func (m *WeekPlanMutation) ResetStartDate() {
	m.start_date = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *WeekPlanMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WeekPlanMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WeekPlan entity.
// If the WeekPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeekPlanMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WeekPlanMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the WeekPlanMutation builder.
func (m *WeekPlanMutation) Where(ps ...predicate.WeekPlan) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WeekPlanMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WeekPlanMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WeekPlan, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WeekPlanMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WeekPlanMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WeekPlan).
func (m *WeekPlanMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WeekPlanMutation) Fields() []string {
	fields := make([]string, 0, 24)
	if m.plan_id != nil {
		fields = append(fields, weekplan.FieldPlanID)
	}
	if m.goal_id != nil {
		fields = append(fields, weekplan.FieldGoalID)
	}
	if m.user_id != nil {
		fields = append(fields, weekplan.FieldUserID)
	}
	if m.quest_id != nil {
		fields = append(fields, weekplan.FieldQuestID)
	}
	if m.week_number != nil {
		fields = append(fields, weekplan.FieldWeekNumber)
	}
	if m.week_in_quest != nil {
		fields = append(fields, weekplan.FieldWeekInQuest)
	}
	if m.is_first_week_of_quest != nil {
		fields = append(fields, weekplan.FieldIsFirstWeekOfQuest)
	}
	if m.is_last_week_of_quest != nil {
		fields = append(fields, weekplan.FieldIsLastWeekOfQuest)
	}
	if m.days != nil {
		fields = append(fields, weekplan.FieldDays)
	}
	if m.scheduled_skill_ids != nil {
		fields = append(fields, weekplan.FieldScheduledSkillIds)
	}
	if m.carry_forward_skill_ids != nil {
		fields = append(fields, weekplan.FieldCarryForwardSkillIds)
	}
	if m.reviews_from_quest_ids != nil {
		fields = append(fields, weekplan.FieldReviewsFromQuestIds)
	}
	if m.builds_on_skill_ids != nil {
		fields = append(fields, weekplan.FieldBuildsOnSkillIds)
	}
	if m.theme != nil {
		fields = append(fields, weekplan.FieldTheme)
	}
	if m.weekly_competence != nil {
		fields = append(fields, weekplan.FieldWeeklyCompetence)
	}
	if m.drills_completed != nil {
		fields = append(fields, weekplan.FieldDrillsCompleted)
	}
	if m.drills_passed != nil {
		fields = append(fields, weekplan.FieldDrillsPassed)
	}
	if m.drills_failed != nil {
		fields = append(fields, weekplan.FieldDrillsFailed)
	}
	if m.drills_skipped != nil {
		fields = append(fields, weekplan.FieldDrillsSkipped)
	}
	if m.skills_mastered != nil {
		fields = append(fields, weekplan.FieldSkillsMastered)
	}
	if m.pass_rate != nil {
		fields = append(fields, weekplan.FieldPassRate)
	}
	if m.status != nil {
		fields = append(fields, weekplan.FieldStatus)
	}
	if m.start_date != nil {
		fields = append(fields, weekplan.FieldStartDate)
	}
	if m.created_at != nil {
		fields = append(fields, weekplan.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WeekPlanMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case weekplan.FieldPlanID:
		return m.PlanID()
	case weekplan.FieldGoalID:
		return m.GoalID()
	case weekplan.FieldUserID:
		return m.UserID()
	case weekplan.FieldQuestID:
		return m.QuestID()
	case weekplan.FieldWeekNumber:
		return m.WeekNumber()
	case weekplan.FieldWeekInQuest:
		return m.WeekInQuest()
	case weekplan.FieldIsFirstWeekOfQuest:
		return m.IsFirstWeekOfQuest()
	case weekplan.FieldIsLastWeekOfQuest:
		return m.IsLastWeekOfQuest()
	case weekplan.FieldDays:
		return m.Days()
	case weekplan.FieldScheduledSkillIds:
		return m.ScheduledSkillIds()
	case weekplan.FieldCarryForwardSkillIds:
		return m.CarryForwardSkillIds()
	case weekplan.FieldReviewsFromQuestIds:
		return m.ReviewsFromQuestIds()
	case weekplan.FieldBuildsOnSkillIds:
		return m.BuildsOnSkillIds()
	case weekplan.FieldTheme:
		return m.Theme()
	case weekplan.FieldWeeklyCompetence:
		return m.WeeklyCompetence()
	case weekplan.FieldDrillsCompleted:
		return m.DrillsCompleted()
	case weekplan.FieldDrillsPassed:
		return m.DrillsPassed()
	case weekplan.FieldDrillsFailed:
		return m.DrillsFailed()
	case weekplan.FieldDrillsSkipped:
		return m.DrillsSkipped()
	case weekplan.FieldSkillsMastered:
		return m.SkillsMastered()
	case weekplan.FieldPassRate:
		return m.PassRate()
	case weekplan.FieldStatus:
		return m.Status()
	case weekplan.FieldStartDate:
		return m.StartDate()
	case weekplan.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WeekPlanMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case weekplan.FieldPlanID:
		return m.OldPlanID(ctx)
	case weekplan.FieldGoalID:
		return m.OldGoalID(ctx)
	case weekplan.FieldUserID:
		return m.OldUserID(ctx)
	case weekplan.FieldQuestID:
		return m.OldQuestID(ctx)
	case weekplan.FieldWeekNumber:
		return m.OldWeekNumber(ctx)
	case weekplan.FieldWeekInQuest:
		return m.OldWeekInQuest(ctx)
	case weekplan.FieldIsFirstWeekOfQuest:
		return m.OldIsFirstWeekOfQuest(ctx)
	case weekplan.FieldIsLastWeekOfQuest:
		return m.OldIsLastWeekOfQuest(ctx)
	case weekplan.FieldDays:
		return m.OldDays(ctx)
	case weekplan.FieldScheduledSkillIds:
		return m.OldScheduledSkillIds(ctx)
	case weekplan.FieldCarryForwardSkillIds:
		return m.OldCarryForwardSkillIds(ctx)
	case weekplan.FieldReviewsFromQuestIds:
		return m.OldReviewsFromQuestIds(ctx)
	case weekplan.FieldBuildsOnSkillIds:
		return m.OldBuildsOnSkillIds(ctx)
	case weekplan.FieldTheme:
		return m.OldTheme(ctx)
	case weekplan.FieldWeeklyCompetence:
		return m.OldWeeklyCompetence(ctx)
	case weekplan.FieldDrillsCompleted:
		return m.OldDrillsCompleted(ctx)
	case weekplan.FieldDrillsPassed:
		return m.OldDrillsPassed(ctx)
	case weekplan.FieldDrillsFailed:
		return m.OldDrillsFailed(ctx)
	case weekplan.FieldDrillsSkipped:
		return m.OldDrillsSkipped(ctx)
	case weekplan.FieldSkillsMastered:
		return m.OldSkillsMastered(ctx)
	case weekplan.FieldPassRate:
		return m.OldPassRate(ctx)
	case weekplan.FieldStatus:
		return m.OldStatus(ctx)
	case weekplan.FieldStartDate:
		return m.OldStartDate(ctx)
	case weekplan.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WeekPlan field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WeekPlanMutation) SetField(name string, value ent.Value) error {
	switch name {
	case weekplan.FieldPlanID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanID(v)
		return nil
	case weekplan.FieldGoalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoalID(v)
		return nil
	case weekplan.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case weekplan.FieldQuestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestID(v)
		return nil
	case weekplan.FieldWeekNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeekNumber(v)
		return nil
	case weekplan.FieldWeekInQuest:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeekInQuest(v)
		return nil
	case weekplan.FieldIsFirstWeekOfQuest:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsFirstWeekOfQuest(v)
		return nil
	case weekplan.FieldIsLastWeekOfQuest:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsLastWeekOfQuest(v)
		return nil
	case weekplan.FieldDays:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDays(v)
		return nil
	case weekplan.FieldScheduledSkillIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledSkillIds(v)
		return nil
	case weekplan.FieldCarryForwardSkillIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCarryForwardSkillIds(v)
		return nil
	case weekplan.FieldReviewsFromQuestIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewsFromQuestIds(v)
		return nil
	case weekplan.FieldBuildsOnSkillIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuildsOnSkillIds(v)
		return nil
	case weekplan.FieldTheme:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTheme(v)
		return nil
	case weekplan.FieldWeeklyCompetence:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeeklyCompetence(v)
		return nil
	case weekplan.FieldDrillsCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDrillsCompleted(v)
		return nil
	case weekplan.FieldDrillsPassed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDrillsPassed(v)
		return nil
	case weekplan.FieldDrillsFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDrillsFailed(v)
		return nil
	case weekplan.FieldDrillsSkipped:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDrillsSkipped(v)
		return nil
	case weekplan.FieldSkillsMastered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillsMastered(v)
		return nil
	case weekplan.FieldPassRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassRate(v)
		return nil
	case weekplan.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case weekplan.FieldStartDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartDate(v)
		return nil
	case weekplan.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WeekPlan field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WeekPlanMutation) AddedFields() []string {
	var fields []string
	if m.addweek_number != nil {
		fields = append(fields, weekplan.FieldWeekNumber)
	}
	if m.addweek_in_quest != nil {
		fields = append(fields, weekplan.FieldWeekInQuest)
	}
	if m.adddrills_completed != nil {
		fields = append(fields, weekplan.FieldDrillsCompleted)
	}
	if m.adddrills_passed != nil {
		fields = append(fields, weekplan.FieldDrillsPassed)
	}
	if m.adddrills_failed != nil {
		fields = append(fields, weekplan.FieldDrillsFailed)
	}
	if m.adddrills_skipped != nil {
		fields = append(fields, weekplan.FieldDrillsSkipped)
	}
	if m.addskills_mastered != nil {
		fields = append(fields, weekplan.FieldSkillsMastered)
	}
	if m.addpass_rate != nil {
		fields = append(fields, weekplan.FieldPassRate)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WeekPlanMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case weekplan.FieldWeekNumber:
		return m.AddedWeekNumber()
	case weekplan.FieldWeekInQuest:
		return m.AddedWeekInQuest()
	case weekplan.FieldDrillsCompleted:
		return m.AddedDrillsCompleted()
	case weekplan.FieldDrillsPassed:
		return m.AddedDrillsPassed()
	case weekplan.FieldDrillsFailed:
		return m.AddedDrillsFailed()
	case weekplan.FieldDrillsSkipped:
		return m.AddedDrillsSkipped()
	case weekplan.FieldSkillsMastered:
		return m.AddedSkillsMastered()
	case weekplan.FieldPassRate:
		return m.AddedPassRate()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WeekPlanMutation) AddField(name string, value ent.Value) error {
	switch name {
	case weekplan.FieldWeekNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeekNumber(v)
		return nil
	case weekplan.FieldWeekInQuest:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeekInQuest(v)
		return nil
	case weekplan.FieldDrillsCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDrillsCompleted(v)
		return nil
	case weekplan.FieldDrillsPassed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDrillsPassed(v)
		return nil
	case weekplan.FieldDrillsFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDrillsFailed(v)
		return nil
	case weekplan.FieldDrillsSkipped:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDrillsSkipped(v)
		return nil
	case weekplan.FieldSkillsMastered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSkillsMastered(v)
		return nil
	case weekplan.FieldPassRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPassRate(v)
		return nil
	}
	return fmt.Errorf("unknown WeekPlan numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WeekPlanMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(weekplan.FieldUserID) {
		fields = append(fields, weekplan.FieldUserID)
	}
	if m.FieldCleared(weekplan.FieldDays) {
		fields = append(fields, weekplan.FieldDays)
	}
	if m.FieldCleared(weekplan.FieldScheduledSkillIds) {
		fields = append(fields, weekplan.FieldScheduledSkillIds)
	}
	if m.FieldCleared(weekplan.FieldCarryForwardSkillIds) {
		fields = append(fields, weekplan.FieldCarryForwardSkillIds)
	}
	if m.FieldCleared(weekplan.FieldReviewsFromQuestIds) {
		fields = append(fields, weekplan.FieldReviewsFromQuestIds)
	}
	if m.FieldCleared(weekplan.FieldBuildsOnSkillIds) {
		fields = append(fields, weekplan.FieldBuildsOnSkillIds)
	}
	if m.FieldCleared(weekplan.FieldTheme) {
		fields = append(fields, weekplan.FieldTheme)
	}
	if m.FieldCleared(weekplan.FieldWeeklyCompetence) {
		fields = append(fields, weekplan.FieldWeeklyCompetence)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WeekPlanMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WeekPlanMutation) ClearField(name string) error {
	switch name {
	case weekplan.FieldUserID:
		m.ClearUserID()
		return nil
	case weekplan.FieldDays:
		m.ClearDays()
		return nil
	case weekplan.FieldScheduledSkillIds:
		m.ClearScheduledSkillIds()
		return nil
	case weekplan.FieldCarryForwardSkillIds:
		m.ClearCarryForwardSkillIds()
		return nil
	case weekplan.FieldReviewsFromQuestIds:
		m.ClearReviewsFromQuestIds()
		return nil
	case weekplan.FieldBuildsOnSkillIds:
		m.ClearBuildsOnSkillIds()
		return nil
	case weekplan.FieldTheme:
		m.ClearTheme()
		return nil
	case weekplan.FieldWeeklyCompetence:
		m.ClearWeeklyCompetence()
		return nil
	}
	return fmt.Errorf("unknown WeekPlan nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WeekPlanMutation) ResetField(name string) error {
	switch name {
	case weekplan.FieldPlanID:
		m.ResetPlanID()
		return nil
	case weekplan.FieldGoalID:
		m.ResetGoalID()
		return nil
	case weekplan.FieldUserID:
		m.ResetUserID()
		return nil
	case weekplan.FieldQuestID:
		m.ResetQuestID()
		return nil
	case weekplan.FieldWeekNumber:
		m.ResetWeekNumber()
		return nil
	case weekplan.FieldWeekInQuest:
		m.ResetWeekInQuest()
		return nil
	case weekplan.FieldIsFirstWeekOfQuest:
		m.ResetIsFirstWeekOfQuest()
		return nil
	case weekplan.FieldIsLastWeekOfQuest:
		m.ResetIsLastWeekOfQuest()
		return nil
	case weekplan.FieldDays:
		m.ResetDays()
		return nil
	case weekplan.FieldScheduledSkillIds:
		m.ResetScheduledSkillIds()
		return nil
	case weekplan.FieldCarryForwardSkillIds:
		m.ResetCarryForwardSkillIds()
		return nil
	case weekplan.FieldReviewsFromQuestIds:
		m.ResetReviewsFromQuestIds()
		return nil
	case weekplan.FieldBuildsOnSkillIds:
		m.ResetBuildsOnSkillIds()
		return nil
	case weekplan.FieldTheme:
		m.ResetTheme()
		return nil
	case weekplan.FieldWeeklyCompetence:
		m.ResetWeeklyCompetence()
		return nil
	case weekplan.FieldDrillsCompleted:
		m.ResetDrillsCompleted()
		return nil
	case weekplan.FieldDrillsPassed:
		m.ResetDrillsPassed()
		return nil
	case weekplan.FieldDrillsFailed:
		m.ResetDrillsFailed()
		return nil
	case weekplan.FieldDrillsSkipped:
		m.ResetDrillsSkipped()
		return nil
	case weekplan.FieldSkillsMastered:
		m.ResetSkillsMastered()
		return nil
	case weekplan.FieldPassRate:
		m.ResetPassRate()
		return nil
	case weekplan.FieldStatus:
		m.ResetStatus()
		return nil
	case weekplan.FieldStartDate:
		m.ResetStartDate()
		return nil
	case weekplan.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown WeekPlan field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WeekPlanMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WeekPlanMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WeekPlanMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WeekPlanMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WeekPlanMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WeekPlanMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WeekPlanMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WeekPlan unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WeekPlanMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WeekPlan edge %s", name)
}
