// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/prepforge/prepforge/ent/awardevent"
	"github.com/prepforge/prepforge/ent/predicate"
)

// AwardEventUpdate is the builder for updating AwardEvent entities.
type AwardEventUpdate struct {
	config
	hooks    []Hook
	mutation *AwardEventMutation
}

// Where appends a list predicates to the AwardEventUpdate builder.
func (_u *AwardEventUpdate) Where(ps ...predicate.AwardEvent) *AwardEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AwardEventUpdate) SetUserID(v string) *AwardEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AwardEventUpdate) SetNillableUserID(v *string) *AwardEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *AwardEventUpdate) SetSource(v string) *AwardEventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *AwardEventUpdate) SetNillableSource(v *string) *AwardEventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetBaseXp sets the "base_xp" field.
func (_u *AwardEventUpdate) SetBaseXp(v int) *AwardEventUpdate {
	_u.mutation.ResetBaseXp()
	_u.mutation.SetBaseXp(v)
	return _u
}

// SetNillableBaseXp sets the "base_xp" field if the given value is not nil.
func (_u *AwardEventUpdate) SetNillableBaseXp(v *int) *AwardEventUpdate {
	if v != nil {
		_u.SetBaseXp(*v)
	}
	return _u
}

// AddBaseXp adds value to the "base_xp" field.
func (_u *AwardEventUpdate) AddBaseXp(v int) *AwardEventUpdate {
	_u.mutation.AddBaseXp(v)
	return _u
}

// SetTotalMultiplier sets the "total_multiplier" field.
func (_u *AwardEventUpdate) SetTotalMultiplier(v float64) *AwardEventUpdate {
	_u.mutation.ResetTotalMultiplier()
	_u.mutation.SetTotalMultiplier(v)
	return _u
}

// SetNillableTotalMultiplier sets the "total_multiplier" field if the given value is not nil.
func (_u *AwardEventUpdate) SetNillableTotalMultiplier(v *float64) *AwardEventUpdate {
	if v != nil {
		_u.SetTotalMultiplier(*v)
	}
	return _u
}

// AddTotalMultiplier adds value to the "total_multiplier" field.
func (_u *AwardEventUpdate) AddTotalMultiplier(v float64) *AwardEventUpdate {
	_u.mutation.AddTotalMultiplier(v)
	return _u
}

// SetFinalXp sets the "final_xp" field.
func (_u *AwardEventUpdate) SetFinalXp(v int) *AwardEventUpdate {
	_u.mutation.ResetFinalXp()
	_u.mutation.SetFinalXp(v)
	return _u
}

// SetNillableFinalXp sets the "final_xp" field if the given value is not nil.
func (_u *AwardEventUpdate) SetNillableFinalXp(v *int) *AwardEventUpdate {
	if v != nil {
		_u.SetFinalXp(*v)
	}
	return _u
}

// AddFinalXp adds value to the "final_xp" field.
func (_u *AwardEventUpdate) AddFinalXp(v int) *AwardEventUpdate {
	_u.mutation.AddFinalXp(v)
	return _u
}

// SetBreakdown sets the "breakdown" field.
func (_u *AwardEventUpdate) SetBreakdown(v string) *AwardEventUpdate {
	_u.mutation.SetBreakdown(v)
	return _u
}

// SetNillableBreakdown sets the "breakdown" field if the given value is not nil.
func (_u *AwardEventUpdate) SetNillableBreakdown(v *string) *AwardEventUpdate {
	if v != nil {
		_u.SetBreakdown(*v)
	}
	return _u
}

// SetActivitySequence sets the "activity_sequence" field.
func (_u *AwardEventUpdate) SetActivitySequence(v int64) *AwardEventUpdate {
	_u.mutation.ResetActivitySequence()
	_u.mutation.SetActivitySequence(v)
	return _u
}

// SetNillableActivitySequence sets the "activity_sequence" field if the given value is not nil.
func (_u *AwardEventUpdate) SetNillableActivitySequence(v *int64) *AwardEventUpdate {
	if v != nil {
		_u.SetActivitySequence(*v)
	}
	return _u
}

// AddActivitySequence adds value to the "activity_sequence" field.
func (_u *AwardEventUpdate) AddActivitySequence(v int64) *AwardEventUpdate {
	_u.mutation.AddActivitySequence(v)
	return _u
}

// ClearActivitySequence clears the value of the "activity_sequence" field.
func (_u *AwardEventUpdate) ClearActivitySequence() *AwardEventUpdate {
	_u.mutation.ClearActivitySequence()
	return _u
}

// SetAchievementID sets the "achievement_id" field.
func (_u *AwardEventUpdate) SetAchievementID(v string) *AwardEventUpdate {
	_u.mutation.SetAchievementID(v)
	return _u
}

// SetNillableAchievementID sets the "achievement_id" field if the given value is not nil.
func (_u *AwardEventUpdate) SetNillableAchievementID(v *string) *AwardEventUpdate {
	if v != nil {
		_u.SetAchievementID(*v)
	}
	return _u
}

// ClearAchievementID clears the value of the "achievement_id" field.
func (_u *AwardEventUpdate) ClearAchievementID() *AwardEventUpdate {
	_u.mutation.ClearAchievementID()
	return _u
}

// SetOccurredAt sets the "occurred_at" field.
func (_u *AwardEventUpdate) SetOccurredAt(v time.Time) *AwardEventUpdate {
	_u.mutation.SetOccurredAt(v)
	return _u
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (_u *AwardEventUpdate) SetNillableOccurredAt(v *time.Time) *AwardEventUpdate {
	if v != nil {
		_u.SetOccurredAt(*v)
	}
	return _u
}

// Mutation returns the AwardEventMutation object of the builder.
func (_u *AwardEventUpdate) Mutation() *AwardEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AwardEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AwardEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AwardEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AwardEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AwardEventUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := awardevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AwardEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := awardevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "AwardEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_u *AwardEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(awardevent.Table, awardevent.Columns, sqlgraph.NewFieldSpec(awardevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(awardevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(awardevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.BaseXp(); ok {
		_spec.SetField(awardevent.FieldBaseXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBaseXp(); ok {
		_spec.AddField(awardevent.FieldBaseXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalMultiplier(); ok {
		_spec.SetField(awardevent.FieldTotalMultiplier, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalMultiplier(); ok {
		_spec.AddField(awardevent.FieldTotalMultiplier, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FinalXp(); ok {
		_spec.SetField(awardevent.FieldFinalXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFinalXp(); ok {
		_spec.AddField(awardevent.FieldFinalXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Breakdown(); ok {
		_spec.SetField(awardevent.FieldBreakdown, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActivitySequence(); ok {
		_spec.SetField(awardevent.FieldActivitySequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedActivitySequence(); ok {
		_spec.AddField(awardevent.FieldActivitySequence, field.TypeInt64, value)
	}
	if _u.mutation.ActivitySequenceCleared() {
		_spec.ClearField(awardevent.FieldActivitySequence, field.TypeInt64)
	}
	if value, ok := _u.mutation.AchievementID(); ok {
		_spec.SetField(awardevent.FieldAchievementID, field.TypeString, value)
	}
	if _u.mutation.AchievementIDCleared() {
		_spec.ClearField(awardevent.FieldAchievementID, field.TypeString)
	}
	if value, ok := _u.mutation.OccurredAt(); ok {
		_spec.SetField(awardevent.FieldOccurredAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{awardevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AwardEventUpdateOne is the builder for updating a single AwardEvent entity.
type AwardEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AwardEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *AwardEventUpdateOne) SetUserID(v string) *AwardEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AwardEventUpdateOne) SetNillableUserID(v *string) *AwardEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *AwardEventUpdateOne) SetSource(v string) *AwardEventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *AwardEventUpdateOne) SetNillableSource(v *string) *AwardEventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetBaseXp sets the "base_xp" field.
func (_u *AwardEventUpdateOne) SetBaseXp(v int) *AwardEventUpdateOne {
	_u.mutation.ResetBaseXp()
	_u.mutation.SetBaseXp(v)
	return _u
}

// SetNillableBaseXp sets the "base_xp" field if the given value is not nil.
func (_u *AwardEventUpdateOne) SetNillableBaseXp(v *int) *AwardEventUpdateOne {
	if v != nil {
		_u.SetBaseXp(*v)
	}
	return _u
}

// AddBaseXp adds value to the "base_xp" field.
func (_u *AwardEventUpdateOne) AddBaseXp(v int) *AwardEventUpdateOne {
	_u.mutation.AddBaseXp(v)
	return _u
}

// SetTotalMultiplier sets the "total_multiplier" field.
func (_u *AwardEventUpdateOne) SetTotalMultiplier(v float64) *AwardEventUpdateOne {
	_u.mutation.ResetTotalMultiplier()
	_u.mutation.SetTotalMultiplier(v)
	return _u
}

// SetNillableTotalMultiplier sets the "total_multiplier" field if the given value is not nil.
func (_u *AwardEventUpdateOne) SetNillableTotalMultiplier(v *float64) *AwardEventUpdateOne {
	if v != nil {
		_u.SetTotalMultiplier(*v)
	}
	return _u
}

// AddTotalMultiplier adds value to the "total_multiplier" field.
func (_u *AwardEventUpdateOne) AddTotalMultiplier(v float64) *AwardEventUpdateOne {
	_u.mutation.AddTotalMultiplier(v)
	return _u
}

// SetFinalXp sets the "final_xp" field.
func (_u *AwardEventUpdateOne) SetFinalXp(v int) *AwardEventUpdateOne {
	_u.mutation.ResetFinalXp()
	_u.mutation.SetFinalXp(v)
	return _u
}

// SetNillableFinalXp sets the "final_xp" field if the given value is not nil.
func (_u *AwardEventUpdateOne) SetNillableFinalXp(v *int) *AwardEventUpdateOne {
	if v != nil {
		_u.SetFinalXp(*v)
	}
	return _u
}

// AddFinalXp adds value to the "final_xp" field.
func (_u *AwardEventUpdateOne) AddFinalXp(v int) *AwardEventUpdateOne {
	_u.mutation.AddFinalXp(v)
	return _u
}

// SetBreakdown sets the "breakdown" field.
func (_u *AwardEventUpdateOne) SetBreakdown(v string) *AwardEventUpdateOne {
	_u.mutation.SetBreakdown(v)
	return _u
}

// SetNillableBreakdown sets the "breakdown" field if the given value is not nil.
func (_u *AwardEventUpdateOne) SetNillableBreakdown(v *string) *AwardEventUpdateOne {
	if v != nil {
		_u.SetBreakdown(*v)
	}
	return _u
}

// SetActivitySequence sets the "activity_sequence" field.
func (_u *AwardEventUpdateOne) SetActivitySequence(v int64) *AwardEventUpdateOne {
	_u.mutation.ResetActivitySequence()
	_u.mutation.SetActivitySequence(v)
	return _u
}

// SetNillableActivitySequence sets the "activity_sequence" field if the given value is not nil.
func (_u *AwardEventUpdateOne) SetNillableActivitySequence(v *int64) *AwardEventUpdateOne {
	if v != nil {
		_u.SetActivitySequence(*v)
	}
	return _u
}

// AddActivitySequence adds value to the "activity_sequence" field.
func (_u *AwardEventUpdateOne) AddActivitySequence(v int64) *AwardEventUpdateOne {
	_u.mutation.AddActivitySequence(v)
	return _u
}

// ClearActivitySequence clears the value of the "activity_sequence" field.
func (_u *AwardEventUpdateOne) ClearActivitySequence() *AwardEventUpdateOne {
	_u.mutation.ClearActivitySequence()
	return _u
}

// SetAchievementID sets the "achievement_id" field.
func (_u *AwardEventUpdateOne) SetAchievementID(v string) *AwardEventUpdateOne {
	_u.mutation.SetAchievementID(v)
	return _u
}

// SetNillableAchievementID sets the "achievement_id" field if the given value is not nil.
func (_u *AwardEventUpdateOne) SetNillableAchievementID(v *string) *AwardEventUpdateOne {
	if v != nil {
		_u.SetAchievementID(*v)
	}
	return _u
}

// ClearAchievementID clears the value of the "achievement_id" field.
func (_u *AwardEventUpdateOne) ClearAchievementID() *AwardEventUpdateOne {
	_u.mutation.ClearAchievementID()
	return _u
}

// SetOccurredAt sets the "occurred_at" field.
func (_u *AwardEventUpdateOne) SetOccurredAt(v time.Time) *AwardEventUpdateOne {
	_u.mutation.SetOccurredAt(v)
	return _u
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (_u *AwardEventUpdateOne) SetNillableOccurredAt(v *time.Time) *AwardEventUpdateOne {
	if v != nil {
		_u.SetOccurredAt(*v)
	}
	return _u
}

// Mutation returns the AwardEventMutation object of the builder.
func (_u *AwardEventUpdateOne) Mutation() *AwardEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AwardEventUpdate builder.
func (_u *AwardEventUpdateOne) Where(ps ...predicate.AwardEvent) *AwardEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AwardEventUpdateOne) Select(field string, fields ...string) *AwardEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AwardEvent entity.
func (_u *AwardEventUpdateOne) Save(ctx context.Context) (*AwardEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AwardEventUpdateOne) SaveX(ctx context.Context) *AwardEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AwardEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AwardEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AwardEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := awardevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AwardEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := awardevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "AwardEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_u *AwardEventUpdateOne) sqlSave(ctx context.Context) (_node *AwardEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(awardevent.Table, awardevent.Columns, sqlgraph.NewFieldSpec(awardevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AwardEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, awardevent.FieldID)
		for _, f := range fields {
			if !awardevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != awardevent.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(awardevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(awardevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.BaseXp(); ok {
		_spec.SetField(awardevent.FieldBaseXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBaseXp(); ok {
		_spec.AddField(awardevent.FieldBaseXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalMultiplier(); ok {
		_spec.SetField(awardevent.FieldTotalMultiplier, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalMultiplier(); ok {
		_spec.AddField(awardevent.FieldTotalMultiplier, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FinalXp(); ok {
		_spec.SetField(awardevent.FieldFinalXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFinalXp(); ok {
		_spec.AddField(awardevent.FieldFinalXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Breakdown(); ok {
		_spec.SetField(awardevent.FieldBreakdown, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActivitySequence(); ok {
		_spec.SetField(awardevent.FieldActivitySequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedActivitySequence(); ok {
		_spec.AddField(awardevent.FieldActivitySequence, field.TypeInt64, value)
	}
	if _u.mutation.ActivitySequenceCleared() {
		_spec.ClearField(awardevent.FieldActivitySequence, field.TypeInt64)
	}
	if value, ok := _u.mutation.AchievementID(); ok {
		_spec.SetField(awardevent.FieldAchievementID, field.TypeString, value)
	}
	if _u.mutation.AchievementIDCleared() {
		_spec.ClearField(awardevent.FieldAchievementID, field.TypeString)
	}
	if value, ok := _u.mutation.OccurredAt(); ok {
		_spec.SetField(awardevent.FieldOccurredAt, field.TypeTime, value)
	}
	_node = &AwardEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{awardevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
