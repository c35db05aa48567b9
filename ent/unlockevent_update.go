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
	"github.com/prepforge/prepforge/ent/predicate"
	"github.com/prepforge/prepforge/ent/unlockevent"
)

// UnlockEventUpdate is the builder for updating UnlockEvent entities.
type UnlockEventUpdate struct {
	config
	hooks    []Hook
	mutation *UnlockEventMutation
}

// Where appends a list predicates to the UnlockEventUpdate builder.
func (_u *UnlockEventUpdate) Where(ps ...predicate.UnlockEvent) *UnlockEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *UnlockEventUpdate) SetUserID(v string) *UnlockEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UnlockEventUpdate) SetNillableUserID(v *string) *UnlockEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAchievementID sets the "achievement_id" field.
func (_u *UnlockEventUpdate) SetAchievementID(v string) *UnlockEventUpdate {
	_u.mutation.SetAchievementID(v)
	return _u
}

// SetNillableAchievementID sets the "achievement_id" field if the given value is not nil.
func (_u *UnlockEventUpdate) SetNillableAchievementID(v *string) *UnlockEventUpdate {
	if v != nil {
		_u.SetAchievementID(*v)
	}
	return _u
}

// SetXpReward sets the "xp_reward" field.
func (_u *UnlockEventUpdate) SetXpReward(v int) *UnlockEventUpdate {
	_u.mutation.ResetXpReward()
	_u.mutation.SetXpReward(v)
	return _u
}

// SetNillableXpReward sets the "xp_reward" field if the given value is not nil.
func (_u *UnlockEventUpdate) SetNillableXpReward(v *int) *UnlockEventUpdate {
	if v != nil {
		_u.SetXpReward(*v)
	}
	return _u
}

// AddXpReward adds value to the "xp_reward" field.
func (_u *UnlockEventUpdate) AddXpReward(v int) *UnlockEventUpdate {
	_u.mutation.AddXpReward(v)
	return _u
}

// SetUnlockedAt sets the "unlocked_at" field.
func (_u *UnlockEventUpdate) SetUnlockedAt(v time.Time) *UnlockEventUpdate {
	_u.mutation.SetUnlockedAt(v)
	return _u
}

// SetNillableUnlockedAt sets the "unlocked_at" field if the given value is not nil.
func (_u *UnlockEventUpdate) SetNillableUnlockedAt(v *time.Time) *UnlockEventUpdate {
	if v != nil {
		_u.SetUnlockedAt(*v)
	}
	return _u
}

// Mutation returns the UnlockEventMutation object of the builder.
func (_u *UnlockEventUpdate) Mutation() *UnlockEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UnlockEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UnlockEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UnlockEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UnlockEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UnlockEventUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := unlockevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UnlockEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AchievementID(); ok {
		if err := unlockevent.AchievementIDValidator(v); err != nil {
			return &ValidationError{Name: "achievement_id", err: fmt.Errorf(`ent: validator failed for field "UnlockEvent.achievement_id": %w`, err)}
		}
	}
	return nil
}

func (_u *UnlockEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(unlockevent.Table, unlockevent.Columns, sqlgraph.NewFieldSpec(unlockevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(unlockevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AchievementID(); ok {
		_spec.SetField(unlockevent.FieldAchievementID, field.TypeString, value)
	}
	if value, ok := _u.mutation.XpReward(); ok {
		_spec.SetField(unlockevent.FieldXpReward, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpReward(); ok {
		_spec.AddField(unlockevent.FieldXpReward, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnlockedAt(); ok {
		_spec.SetField(unlockevent.FieldUnlockedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{unlockevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UnlockEventUpdateOne is the builder for updating a single UnlockEvent entity.
type UnlockEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UnlockEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *UnlockEventUpdateOne) SetUserID(v string) *UnlockEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UnlockEventUpdateOne) SetNillableUserID(v *string) *UnlockEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAchievementID sets the "achievement_id" field.
func (_u *UnlockEventUpdateOne) SetAchievementID(v string) *UnlockEventUpdateOne {
	_u.mutation.SetAchievementID(v)
	return _u
}

// SetNillableAchievementID sets the "achievement_id" field if the given value is not nil.
func (_u *UnlockEventUpdateOne) SetNillableAchievementID(v *string) *UnlockEventUpdateOne {
	if v != nil {
		_u.SetAchievementID(*v)
	}
	return _u
}

// SetXpReward sets the "xp_reward" field.
func (_u *UnlockEventUpdateOne) SetXpReward(v int) *UnlockEventUpdateOne {
	_u.mutation.ResetXpReward()
	_u.mutation.SetXpReward(v)
	return _u
}

// SetNillableXpReward sets the "xp_reward" field if the given value is not nil.
func (_u *UnlockEventUpdateOne) SetNillableXpReward(v *int) *UnlockEventUpdateOne {
	if v != nil {
		_u.SetXpReward(*v)
	}
	return _u
}

// AddXpReward adds value to the "xp_reward" field.
func (_u *UnlockEventUpdateOne) AddXpReward(v int) *UnlockEventUpdateOne {
	_u.mutation.AddXpReward(v)
	return _u
}

// SetUnlockedAt sets the "unlocked_at" field.
func (_u *UnlockEventUpdateOne) SetUnlockedAt(v time.Time) *UnlockEventUpdateOne {
	_u.mutation.SetUnlockedAt(v)
	return _u
}

// SetNillableUnlockedAt sets the "unlocked_at" field if the given value is not nil.
func (_u *UnlockEventUpdateOne) SetNillableUnlockedAt(v *time.Time) *UnlockEventUpdateOne {
	if v != nil {
		_u.SetUnlockedAt(*v)
	}
	return _u
}

// Mutation returns the UnlockEventMutation object of the builder.
func (_u *UnlockEventUpdateOne) Mutation() *UnlockEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the UnlockEventUpdate builder.
func (_u *UnlockEventUpdateOne) Where(ps ...predicate.UnlockEvent) *UnlockEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UnlockEventUpdateOne) Select(field string, fields ...string) *UnlockEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UnlockEvent entity.
func (_u *UnlockEventUpdateOne) Save(ctx context.Context) (*UnlockEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UnlockEventUpdateOne) SaveX(ctx context.Context) *UnlockEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UnlockEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UnlockEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UnlockEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := unlockevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UnlockEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AchievementID(); ok {
		if err := unlockevent.AchievementIDValidator(v); err != nil {
			return &ValidationError{Name: "achievement_id", err: fmt.Errorf(`ent: validator failed for field "UnlockEvent.achievement_id": %w`, err)}
		}
	}
	return nil
}

func (_u *UnlockEventUpdateOne) sqlSave(ctx context.Context) (_node *UnlockEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(unlockevent.Table, unlockevent.Columns, sqlgraph.NewFieldSpec(unlockevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UnlockEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, unlockevent.FieldID)
		for _, f := range fields {
			if !unlockevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != unlockevent.FieldID {
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
		_spec.SetField(unlockevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AchievementID(); ok {
		_spec.SetField(unlockevent.FieldAchievementID, field.TypeString, value)
	}
	if value, ok := _u.mutation.XpReward(); ok {
		_spec.SetField(unlockevent.FieldXpReward, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpReward(); ok {
		_spec.AddField(unlockevent.FieldXpReward, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnlockedAt(); ok {
		_spec.SetField(unlockevent.FieldUnlockedAt, field.TypeTime, value)
	}
	_node = &UnlockEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{unlockevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
