// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/questline/ent/outcomeevent"
	"github.com/abhisek/questline/ent/predicate"
)

// OutcomeEventUpdate is the builder for updating OutcomeEvent entities.
type OutcomeEventUpdate struct {
	config
	hooks    []Hook
	mutation *OutcomeEventMutation
}

// Where appends a list predicates to the OutcomeEventUpdate builder.
func (_u *OutcomeEventUpdate) Where(ps ...predicate.OutcomeEvent) *OutcomeEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *OutcomeEventUpdate) SetSkillID(v string) *OutcomeEventUpdate {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *OutcomeEventUpdate) SetNillableSkillID(v *string) *OutcomeEventUpdate {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetQuestID sets the "quest_id" field.
func (_u *OutcomeEventUpdate) SetQuestID(v string) *OutcomeEventUpdate {
	_u.mutation.SetQuestID(v)
	return _u
}

// SetNillableQuestID sets the "quest_id" field if the given value is not nil.
func (_u *OutcomeEventUpdate) SetNillableQuestID(v *string) *OutcomeEventUpdate {
	if v != nil {
		_u.SetQuestID(*v)
	}
	return _u
}

// ClearQuestID clears the value of the "quest_id" field.
func (_u *OutcomeEventUpdate) ClearQuestID() *OutcomeEventUpdate {
	_u.mutation.ClearQuestID()
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *OutcomeEventUpdate) SetOutcome(v string) *OutcomeEventUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *OutcomeEventUpdate) SetNillableOutcome(v *string) *OutcomeEventUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetFromMastery sets the "from_mastery" field.
func (_u *OutcomeEventUpdate) SetFromMastery(v string) *OutcomeEventUpdate {
	_u.mutation.SetFromMastery(v)
	return _u
}

// SetNillableFromMastery sets the "from_mastery" field if the given value is not nil.
func (_u *OutcomeEventUpdate) SetNillableFromMastery(v *string) *OutcomeEventUpdate {
	if v != nil {
		_u.SetFromMastery(*v)
	}
	return _u
}

// SetToMastery sets the "to_mastery" field.
func (_u *OutcomeEventUpdate) SetToMastery(v string) *OutcomeEventUpdate {
	_u.mutation.SetToMastery(v)
	return _u
}

// SetNillableToMastery sets the "to_mastery" field if the given value is not nil.
func (_u *OutcomeEventUpdate) SetNillableToMastery(v *string) *OutcomeEventUpdate {
	if v != nil {
		_u.SetToMastery(*v)
	}
	return _u
}

// SetJustMastered sets the "just_mastered" field.
func (_u *OutcomeEventUpdate) SetJustMastered(v bool) *OutcomeEventUpdate {
	_u.mutation.SetJustMastered(v)
	return _u
}

// SetNillableJustMastered sets the "just_mastered" field if the given value is not nil.
func (_u *OutcomeEventUpdate) SetNillableJustMastered(v *bool) *OutcomeEventUpdate {
	if v != nil {
		_u.SetJustMastered(*v)
	}
	return _u
}

// SetUnlockedSkills sets the "unlocked_skills" field.
func (_u *OutcomeEventUpdate) SetUnlockedSkills(v []string) *OutcomeEventUpdate {
	_u.mutation.SetUnlockedSkills(v)
	return _u
}

// AppendUnlockedSkills appends value to the "unlocked_skills" field.
func (_u *OutcomeEventUpdate) AppendUnlockedSkills(v []string) *OutcomeEventUpdate {
	_u.mutation.AppendUnlockedSkills(v)
	return _u
}

// ClearUnlockedSkills clears the value of the "unlocked_skills" field.
func (_u *OutcomeEventUpdate) ClearUnlockedSkills() *OutcomeEventUpdate {
	_u.mutation.ClearUnlockedSkills()
	return _u
}

// SetDrillID sets the "drill_id" field.
func (_u *OutcomeEventUpdate) SetDrillID(v string) *OutcomeEventUpdate {
	_u.mutation.SetDrillID(v)
	return _u
}

// SetNillableDrillID sets the "drill_id" field if the given value is not nil.
func (_u *OutcomeEventUpdate) SetNillableDrillID(v *string) *OutcomeEventUpdate {
	if v != nil {
		_u.SetDrillID(*v)
	}
	return _u
}

// ClearDrillID clears the value of the "drill_id" field.
func (_u *OutcomeEventUpdate) ClearDrillID() *OutcomeEventUpdate {
	_u.mutation.ClearDrillID()
	return _u
}

// Mutation returns the OutcomeEventMutation object of the builder.
func (_u *OutcomeEventUpdate) Mutation() *OutcomeEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OutcomeEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OutcomeEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OutcomeEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OutcomeEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OutcomeEventUpdate) check() error {
	if v, ok := _u.mutation.SkillID(); ok {
		if err := outcomeevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.skill_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := outcomeevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.outcome": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FromMastery(); ok {
		if err := outcomeevent.FromMasteryValidator(v); err != nil {
			return &ValidationError{Name: "from_mastery", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.from_mastery": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ToMastery(); ok {
		if err := outcomeevent.ToMasteryValidator(v); err != nil {
			return &ValidationError{Name: "to_mastery", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.to_mastery": %w`, err)}
		}
	}
	return nil
}

func (_u *OutcomeEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(outcomeevent.Table, outcomeevent.Columns, sqlgraph.NewFieldSpec(outcomeevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(outcomeevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestID(); ok {
		_spec.SetField(outcomeevent.FieldQuestID, field.TypeString, value)
	}
	if _u.mutation.QuestIDCleared() {
		_spec.ClearField(outcomeevent.FieldQuestID, field.TypeString)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(outcomeevent.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromMastery(); ok {
		_spec.SetField(outcomeevent.FieldFromMastery, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToMastery(); ok {
		_spec.SetField(outcomeevent.FieldToMastery, field.TypeString, value)
	}
	if value, ok := _u.mutation.JustMastered(); ok {
		_spec.SetField(outcomeevent.FieldJustMastered, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UnlockedSkills(); ok {
		_spec.SetField(outcomeevent.FieldUnlockedSkills, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedUnlockedSkills(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, outcomeevent.FieldUnlockedSkills, value)
		})
	}
	if _u.mutation.UnlockedSkillsCleared() {
		_spec.ClearField(outcomeevent.FieldUnlockedSkills, field.TypeJSON)
	}
	if value, ok := _u.mutation.DrillID(); ok {
		_spec.SetField(outcomeevent.FieldDrillID, field.TypeString, value)
	}
	if _u.mutation.DrillIDCleared() {
		_spec.ClearField(outcomeevent.FieldDrillID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{outcomeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OutcomeEventUpdateOne is the builder for updating a single OutcomeEvent entity.
type OutcomeEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OutcomeEventMutation
}

// SetSkillID sets the "skill_id" field.
func (_u *OutcomeEventUpdateOne) SetSkillID(v string) *OutcomeEventUpdateOne {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *OutcomeEventUpdateOne) SetNillableSkillID(v *string) *OutcomeEventUpdateOne {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetQuestID sets the "quest_id" field.
func (_u *OutcomeEventUpdateOne) SetQuestID(v string) *OutcomeEventUpdateOne {
	_u.mutation.SetQuestID(v)
	return _u
}

// SetNillableQuestID sets the "quest_id" field if the given value is not nil.
func (_u *OutcomeEventUpdateOne) SetNillableQuestID(v *string) *OutcomeEventUpdateOne {
	if v != nil {
		_u.SetQuestID(*v)
	}
	return _u
}

// ClearQuestID clears the value of the "quest_id" field.
func (_u *OutcomeEventUpdateOne) ClearQuestID() *OutcomeEventUpdateOne {
	_u.mutation.ClearQuestID()
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *OutcomeEventUpdateOne) SetOutcome(v string) *OutcomeEventUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *OutcomeEventUpdateOne) SetNillableOutcome(v *string) *OutcomeEventUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetFromMastery sets the "from_mastery" field.
func (_u *OutcomeEventUpdateOne) SetFromMastery(v string) *OutcomeEventUpdateOne {
	_u.mutation.SetFromMastery(v)
	return _u
}

// SetNillableFromMastery sets the "from_mastery" field if the given value is not nil.
func (_u *OutcomeEventUpdateOne) SetNillableFromMastery(v *string) *OutcomeEventUpdateOne {
	if v != nil {
		_u.SetFromMastery(*v)
	}
	return _u
}

// SetToMastery sets the "to_mastery" field.
func (_u *OutcomeEventUpdateOne) SetToMastery(v string) *OutcomeEventUpdateOne {
	_u.mutation.SetToMastery(v)
	return _u
}

// SetNillableToMastery sets the "to_mastery" field if the given value is not nil.
func (_u *OutcomeEventUpdateOne) SetNillableToMastery(v *string) *OutcomeEventUpdateOne {
	if v != nil {
		_u.SetToMastery(*v)
	}
	return _u
}

// SetJustMastered sets the "just_mastered" field.
func (_u *OutcomeEventUpdateOne) SetJustMastered(v bool) *OutcomeEventUpdateOne {
	_u.mutation.SetJustMastered(v)
	return _u
}

// SetNillableJustMastered sets the "just_mastered" field if the given value is not nil.
func (_u *OutcomeEventUpdateOne) SetNillableJustMastered(v *bool) *OutcomeEventUpdateOne {
	if v != nil {
		_u.SetJustMastered(*v)
	}
	return _u
}

// SetUnlockedSkills sets the "unlocked_skills" field.
func (_u *OutcomeEventUpdateOne) SetUnlockedSkills(v []string) *OutcomeEventUpdateOne {
	_u.mutation.SetUnlockedSkills(v)
	return _u
}

// AppendUnlockedSkills appends value to the "unlocked_skills" field.
func (_u *OutcomeEventUpdateOne) AppendUnlockedSkills(v []string) *OutcomeEventUpdateOne {
	_u.mutation.AppendUnlockedSkills(v)
	return _u
}

// ClearUnlockedSkills clears the value of the "unlocked_skills" field.
func (_u *OutcomeEventUpdateOne) ClearUnlockedSkills() *OutcomeEventUpdateOne {
	_u.mutation.ClearUnlockedSkills()
	return _u
}

// SetDrillID sets the "drill_id" field.
func (_u *OutcomeEventUpdateOne) SetDrillID(v string) *OutcomeEventUpdateOne {
	_u.mutation.SetDrillID(v)
	return _u
}

// SetNillableDrillID sets the "drill_id" field if the given value is not nil.
func (_u *OutcomeEventUpdateOne) SetNillableDrillID(v *string) *OutcomeEventUpdateOne {
	if v != nil {
		_u.SetDrillID(*v)
	}
	return _u
}

// ClearDrillID clears the value of the "drill_id" field.
func (_u *OutcomeEventUpdateOne) ClearDrillID() *OutcomeEventUpdateOne {
	_u.mutation.ClearDrillID()
	return _u
}

// Mutation returns the OutcomeEventMutation object of the builder.
func (_u *OutcomeEventUpdateOne) Mutation() *OutcomeEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the OutcomeEventUpdate builder.
func (_u *OutcomeEventUpdateOne) Where(ps ...predicate.OutcomeEvent) *OutcomeEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OutcomeEventUpdateOne) Select(field string, fields ...string) *OutcomeEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OutcomeEvent entity.
func (_u *OutcomeEventUpdateOne) Save(ctx context.Context) (*OutcomeEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OutcomeEventUpdateOne) SaveX(ctx context.Context) *OutcomeEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OutcomeEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OutcomeEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OutcomeEventUpdateOne) check() error {
	if v, ok := _u.mutation.SkillID(); ok {
		if err := outcomeevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.skill_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := outcomeevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.outcome": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FromMastery(); ok {
		if err := outcomeevent.FromMasteryValidator(v); err != nil {
			return &ValidationError{Name: "from_mastery", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.from_mastery": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ToMastery(); ok {
		if err := outcomeevent.ToMasteryValidator(v); err != nil {
			return &ValidationError{Name: "to_mastery", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.to_mastery": %w`, err)}
		}
	}
	return nil
}

func (_u *OutcomeEventUpdateOne) sqlSave(ctx context.Context) (_node *OutcomeEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(outcomeevent.Table, outcomeevent.Columns, sqlgraph.NewFieldSpec(outcomeevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OutcomeEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, outcomeevent.FieldID)
		for _, f := range fields {
			if !outcomeevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != outcomeevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(outcomeevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestID(); ok {
		_spec.SetField(outcomeevent.FieldQuestID, field.TypeString, value)
	}
	if _u.mutation.QuestIDCleared() {
		_spec.ClearField(outcomeevent.FieldQuestID, field.TypeString)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(outcomeevent.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromMastery(); ok {
		_spec.SetField(outcomeevent.FieldFromMastery, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToMastery(); ok {
		_spec.SetField(outcomeevent.FieldToMastery, field.TypeString, value)
	}
	if value, ok := _u.mutation.JustMastered(); ok {
		_spec.SetField(outcomeevent.FieldJustMastered, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UnlockedSkills(); ok {
		_spec.SetField(outcomeevent.FieldUnlockedSkills, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedUnlockedSkills(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, outcomeevent.FieldUnlockedSkills, value)
		})
	}
	if _u.mutation.UnlockedSkillsCleared() {
		_spec.ClearField(outcomeevent.FieldUnlockedSkills, field.TypeJSON)
	}
	if value, ok := _u.mutation.DrillID(); ok {
		_spec.SetField(outcomeevent.FieldDrillID, field.TypeString, value)
	}
	if _u.mutation.DrillIDCleared() {
		_spec.ClearField(outcomeevent.FieldDrillID, field.TypeString)
	}
	_node = &OutcomeEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{outcomeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
