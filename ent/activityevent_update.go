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
	"github.com/prepforge/prepforge/ent/activityevent"
	"github.com/prepforge/prepforge/ent/predicate"
)

// ActivityEventUpdate is the builder for updating ActivityEvent entities.
type ActivityEventUpdate struct {
	config
	hooks    []Hook
	mutation *ActivityEventMutation
}

// Where appends a list predicates to the ActivityEventUpdate builder.
func (_u *ActivityEventUpdate) Where(ps ...predicate.ActivityEvent) *ActivityEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ActivityEventUpdate) SetUserID(v string) *ActivityEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableUserID(v *string) *ActivityEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ActivityEventUpdate) SetKind(v string) *ActivityEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableKind(v *string) *ActivityEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetBaseActivityKey sets the "base_activity_key" field.
func (_u *ActivityEventUpdate) SetBaseActivityKey(v string) *ActivityEventUpdate {
	_u.mutation.SetBaseActivityKey(v)
	return _u
}

// SetNillableBaseActivityKey sets the "base_activity_key" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableBaseActivityKey(v *string) *ActivityEventUpdate {
	if v != nil {
		_u.SetBaseActivityKey(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ActivityEventUpdate) SetDifficulty(v string) *ActivityEventUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableDifficulty(v *string) *ActivityEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// ClearDifficulty clears the value of the "difficulty" field.
func (_u *ActivityEventUpdate) ClearDifficulty() *ActivityEventUpdate {
	_u.mutation.ClearDifficulty()
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *ActivityEventUpdate) SetDurationMinutes(v int) *ActivityEventUpdate {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableDurationMinutes(v *int) *ActivityEventUpdate {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *ActivityEventUpdate) AddDurationMinutes(v int) *ActivityEventUpdate {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetPerformancePercent sets the "performance_percent" field.
func (_u *ActivityEventUpdate) SetPerformancePercent(v int) *ActivityEventUpdate {
	_u.mutation.ResetPerformancePercent()
	_u.mutation.SetPerformancePercent(v)
	return _u
}

// SetNillablePerformancePercent sets the "performance_percent" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillablePerformancePercent(v *int) *ActivityEventUpdate {
	if v != nil {
		_u.SetPerformancePercent(*v)
	}
	return _u
}

// AddPerformancePercent adds value to the "performance_percent" field.
func (_u *ActivityEventUpdate) AddPerformancePercent(v int) *ActivityEventUpdate {
	_u.mutation.AddPerformancePercent(v)
	return _u
}

// SetStreakDays sets the "streak_days" field.
func (_u *ActivityEventUpdate) SetStreakDays(v int) *ActivityEventUpdate {
	_u.mutation.ResetStreakDays()
	_u.mutation.SetStreakDays(v)
	return _u
}

// SetNillableStreakDays sets the "streak_days" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableStreakDays(v *int) *ActivityEventUpdate {
	if v != nil {
		_u.SetStreakDays(*v)
	}
	return _u
}

// AddStreakDays adds value to the "streak_days" field.
func (_u *ActivityEventUpdate) AddStreakDays(v int) *ActivityEventUpdate {
	_u.mutation.AddStreakDays(v)
	return _u
}

// SetIsGroupActivity sets the "is_group_activity" field.
func (_u *ActivityEventUpdate) SetIsGroupActivity(v bool) *ActivityEventUpdate {
	_u.mutation.SetIsGroupActivity(v)
	return _u
}

// SetNillableIsGroupActivity sets the "is_group_activity" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableIsGroupActivity(v *bool) *ActivityEventUpdate {
	if v != nil {
		_u.SetIsGroupActivity(*v)
	}
	return _u
}

// SetTimeOfDay sets the "time_of_day" field.
func (_u *ActivityEventUpdate) SetTimeOfDay(v string) *ActivityEventUpdate {
	_u.mutation.SetTimeOfDay(v)
	return _u
}

// SetNillableTimeOfDay sets the "time_of_day" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableTimeOfDay(v *string) *ActivityEventUpdate {
	if v != nil {
		_u.SetTimeOfDay(*v)
	}
	return _u
}

// SetIsWeekend sets the "is_weekend" field.
func (_u *ActivityEventUpdate) SetIsWeekend(v bool) *ActivityEventUpdate {
	_u.mutation.SetIsWeekend(v)
	return _u
}

// SetNillableIsWeekend sets the "is_weekend" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableIsWeekend(v *bool) *ActivityEventUpdate {
	if v != nil {
		_u.SetIsWeekend(*v)
	}
	return _u
}

// SetOccurredAt sets the "occurred_at" field.
func (_u *ActivityEventUpdate) SetOccurredAt(v time.Time) *ActivityEventUpdate {
	_u.mutation.SetOccurredAt(v)
	return _u
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableOccurredAt(v *time.Time) *ActivityEventUpdate {
	if v != nil {
		_u.SetOccurredAt(*v)
	}
	return _u
}

// Mutation returns the ActivityEventMutation object of the builder.
func (_u *ActivityEventUpdate) Mutation() *ActivityEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActivityEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActivityEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivityEventUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := activityevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := activityevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BaseActivityKey(); ok {
		if err := activityevent.BaseActivityKeyValidator(v); err != nil {
			return &ValidationError{Name: "base_activity_key", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.base_activity_key": %w`, err)}
		}
	}
	return nil
}

func (_u *ActivityEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activityevent.Table, activityevent.Columns, sqlgraph.NewFieldSpec(activityevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(activityevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(activityevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.BaseActivityKey(); ok {
		_spec.SetField(activityevent.FieldBaseActivityKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(activityevent.FieldDifficulty, field.TypeString, value)
	}
	if _u.mutation.DifficultyCleared() {
		_spec.ClearField(activityevent.FieldDifficulty, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(activityevent.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(activityevent.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PerformancePercent(); ok {
		_spec.SetField(activityevent.FieldPerformancePercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPerformancePercent(); ok {
		_spec.AddField(activityevent.FieldPerformancePercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StreakDays(); ok {
		_spec.SetField(activityevent.FieldStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakDays(); ok {
		_spec.AddField(activityevent.FieldStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsGroupActivity(); ok {
		_spec.SetField(activityevent.FieldIsGroupActivity, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeOfDay(); ok {
		_spec.SetField(activityevent.FieldTimeOfDay, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsWeekend(); ok {
		_spec.SetField(activityevent.FieldIsWeekend, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OccurredAt(); ok {
		_spec.SetField(activityevent.FieldOccurredAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activityevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActivityEventUpdateOne is the builder for updating a single ActivityEvent entity.
type ActivityEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActivityEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *ActivityEventUpdateOne) SetUserID(v string) *ActivityEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableUserID(v *string) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ActivityEventUpdateOne) SetKind(v string) *ActivityEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableKind(v *string) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetBaseActivityKey sets the "base_activity_key" field.
func (_u *ActivityEventUpdateOne) SetBaseActivityKey(v string) *ActivityEventUpdateOne {
	_u.mutation.SetBaseActivityKey(v)
	return _u
}

// SetNillableBaseActivityKey sets the "base_activity_key" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableBaseActivityKey(v *string) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetBaseActivityKey(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ActivityEventUpdateOne) SetDifficulty(v string) *ActivityEventUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableDifficulty(v *string) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// ClearDifficulty clears the value of the "difficulty" field.
func (_u *ActivityEventUpdateOne) ClearDifficulty() *ActivityEventUpdateOne {
	_u.mutation.ClearDifficulty()
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *ActivityEventUpdateOne) SetDurationMinutes(v int) *ActivityEventUpdateOne {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableDurationMinutes(v *int) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *ActivityEventUpdateOne) AddDurationMinutes(v int) *ActivityEventUpdateOne {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetPerformancePercent sets the "performance_percent" field.
func (_u *ActivityEventUpdateOne) SetPerformancePercent(v int) *ActivityEventUpdateOne {
	_u.mutation.ResetPerformancePercent()
	_u.mutation.SetPerformancePercent(v)
	return _u
}

// SetNillablePerformancePercent sets the "performance_percent" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillablePerformancePercent(v *int) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetPerformancePercent(*v)
	}
	return _u
}

// AddPerformancePercent adds value to the "performance_percent" field.
func (_u *ActivityEventUpdateOne) AddPerformancePercent(v int) *ActivityEventUpdateOne {
	_u.mutation.AddPerformancePercent(v)
	return _u
}

// SetStreakDays sets the "streak_days" field.
func (_u *ActivityEventUpdateOne) SetStreakDays(v int) *ActivityEventUpdateOne {
	_u.mutation.ResetStreakDays()
	_u.mutation.SetStreakDays(v)
	return _u
}

// SetNillableStreakDays sets the "streak_days" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableStreakDays(v *int) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetStreakDays(*v)
	}
	return _u
}

// AddStreakDays adds value to the "streak_days" field.
func (_u *ActivityEventUpdateOne) AddStreakDays(v int) *ActivityEventUpdateOne {
	_u.mutation.AddStreakDays(v)
	return _u
}

// SetIsGroupActivity sets the "is_group_activity" field.
func (_u *ActivityEventUpdateOne) SetIsGroupActivity(v bool) *ActivityEventUpdateOne {
	_u.mutation.SetIsGroupActivity(v)
	return _u
}

// SetNillableIsGroupActivity sets the "is_group_activity" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableIsGroupActivity(v *bool) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetIsGroupActivity(*v)
	}
	return _u
}

// SetTimeOfDay sets the "time_of_day" field.
func (_u *ActivityEventUpdateOne) SetTimeOfDay(v string) *ActivityEventUpdateOne {
	_u.mutation.SetTimeOfDay(v)
	return _u
}

// SetNillableTimeOfDay sets the "time_of_day" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableTimeOfDay(v *string) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetTimeOfDay(*v)
	}
	return _u
}

// SetIsWeekend sets the "is_weekend" field.
func (_u *ActivityEventUpdateOne) SetIsWeekend(v bool) *ActivityEventUpdateOne {
	_u.mutation.SetIsWeekend(v)
	return _u
}

// SetNillableIsWeekend sets the "is_weekend" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableIsWeekend(v *bool) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetIsWeekend(*v)
	}
	return _u
}

// SetOccurredAt sets the "occurred_at" field.
func (_u *ActivityEventUpdateOne) SetOccurredAt(v time.Time) *ActivityEventUpdateOne {
	_u.mutation.SetOccurredAt(v)
	return _u
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableOccurredAt(v *time.Time) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetOccurredAt(*v)
	}
	return _u
}

// Mutation returns the ActivityEventMutation object of the builder.
func (_u *ActivityEventUpdateOne) Mutation() *ActivityEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ActivityEventUpdate builder.
func (_u *ActivityEventUpdateOne) Where(ps ...predicate.ActivityEvent) *ActivityEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActivityEventUpdateOne) Select(field string, fields ...string) *ActivityEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ActivityEvent entity.
func (_u *ActivityEventUpdateOne) Save(ctx context.Context) (*ActivityEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityEventUpdateOne) SaveX(ctx context.Context) *ActivityEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActivityEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivityEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := activityevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := activityevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BaseActivityKey(); ok {
		if err := activityevent.BaseActivityKeyValidator(v); err != nil {
			return &ValidationError{Name: "base_activity_key", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.base_activity_key": %w`, err)}
		}
	}
	return nil
}

func (_u *ActivityEventUpdateOne) sqlSave(ctx context.Context) (_node *ActivityEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activityevent.Table, activityevent.Columns, sqlgraph.NewFieldSpec(activityevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ActivityEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, activityevent.FieldID)
		for _, f := range fields {
			if !activityevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != activityevent.FieldID {
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
		_spec.SetField(activityevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(activityevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.BaseActivityKey(); ok {
		_spec.SetField(activityevent.FieldBaseActivityKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(activityevent.FieldDifficulty, field.TypeString, value)
	}
	if _u.mutation.DifficultyCleared() {
		_spec.ClearField(activityevent.FieldDifficulty, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(activityevent.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(activityevent.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PerformancePercent(); ok {
		_spec.SetField(activityevent.FieldPerformancePercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPerformancePercent(); ok {
		_spec.AddField(activityevent.FieldPerformancePercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StreakDays(); ok {
		_spec.SetField(activityevent.FieldStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakDays(); ok {
		_spec.AddField(activityevent.FieldStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsGroupActivity(); ok {
		_spec.SetField(activityevent.FieldIsGroupActivity, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeOfDay(); ok {
		_spec.SetField(activityevent.FieldTimeOfDay, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsWeekend(); ok {
		_spec.SetField(activityevent.FieldIsWeekend, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OccurredAt(); ok {
		_spec.SetField(activityevent.FieldOccurredAt, field.TypeTime, value)
	}
	_node = &ActivityEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activityevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
