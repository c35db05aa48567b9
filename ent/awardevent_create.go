// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/prepforge/prepforge/ent/awardevent"
)

// AwardEventCreate is the builder for creating a AwardEvent entity.
type AwardEventCreate struct {
	config
	mutation *AwardEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AwardEventCreate) SetSequence(v int64) *AwardEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AwardEventCreate) SetTimestamp(v time.Time) *AwardEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AwardEventCreate) SetNillableTimestamp(v *time.Time) *AwardEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *AwardEventCreate) SetUserID(v string) *AwardEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *AwardEventCreate) SetSource(v string) *AwardEventCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetBaseXp sets the "base_xp" field.
func (_c *AwardEventCreate) SetBaseXp(v int) *AwardEventCreate {
	_c.mutation.SetBaseXp(v)
	return _c
}

// SetTotalMultiplier sets the "total_multiplier" field.
func (_c *AwardEventCreate) SetTotalMultiplier(v float64) *AwardEventCreate {
	_c.mutation.SetTotalMultiplier(v)
	return _c
}

// SetNillableTotalMultiplier sets the "total_multiplier" field if the given value is not nil.
func (_c *AwardEventCreate) SetNillableTotalMultiplier(v *float64) *AwardEventCreate {
	if v != nil {
		_c.SetTotalMultiplier(*v)
	}
	return _c
}

// SetFinalXp sets the "final_xp" field.
func (_c *AwardEventCreate) SetFinalXp(v int) *AwardEventCreate {
	_c.mutation.SetFinalXp(v)
	return _c
}

// SetBreakdown sets the "breakdown" field.
func (_c *AwardEventCreate) SetBreakdown(v string) *AwardEventCreate {
	_c.mutation.SetBreakdown(v)
	return _c
}

// SetActivitySequence sets the "activity_sequence" field.
func (_c *AwardEventCreate) SetActivitySequence(v int64) *AwardEventCreate {
	_c.mutation.SetActivitySequence(v)
	return _c
}

// SetNillableActivitySequence sets the "activity_sequence" field if the given value is not nil.
func (_c *AwardEventCreate) SetNillableActivitySequence(v *int64) *AwardEventCreate {
	if v != nil {
		_c.SetActivitySequence(*v)
	}
	return _c
}

// SetAchievementID sets the "achievement_id" field.
func (_c *AwardEventCreate) SetAchievementID(v string) *AwardEventCreate {
	_c.mutation.SetAchievementID(v)
	return _c
}

// SetNillableAchievementID sets the "achievement_id" field if the given value is not nil.
func (_c *AwardEventCreate) SetNillableAchievementID(v *string) *AwardEventCreate {
	if v != nil {
		_c.SetAchievementID(*v)
	}
	return _c
}

// SetOccurredAt sets the "occurred_at" field.
func (_c *AwardEventCreate) SetOccurredAt(v time.Time) *AwardEventCreate {
	_c.mutation.SetOccurredAt(v)
	return _c
}

// Mutation returns the AwardEventMutation object of the builder.
func (_c *AwardEventCreate) Mutation() *AwardEventMutation {
	return _c.mutation
}

// Save creates the AwardEvent in the database.
func (_c *AwardEventCreate) Save(ctx context.Context) (*AwardEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AwardEventCreate) SaveX(ctx context.Context) *AwardEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AwardEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AwardEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AwardEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := awardevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.TotalMultiplier(); !ok {
		v := awardevent.DefaultTotalMultiplier
		_c.mutation.SetTotalMultiplier(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AwardEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AwardEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AwardEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "AwardEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := awardevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AwardEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "AwardEvent.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := awardevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "AwardEvent.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BaseXp(); !ok {
		return &ValidationError{Name: "base_xp", err: errors.New(`ent: missing required field "AwardEvent.base_xp"`)}
	}
	if _, ok := _c.mutation.TotalMultiplier(); !ok {
		return &ValidationError{Name: "total_multiplier", err: errors.New(`ent: missing required field "AwardEvent.total_multiplier"`)}
	}
	if _, ok := _c.mutation.FinalXp(); !ok {
		return &ValidationError{Name: "final_xp", err: errors.New(`ent: missing required field "AwardEvent.final_xp"`)}
	}
	if _, ok := _c.mutation.Breakdown(); !ok {
		return &ValidationError{Name: "breakdown", err: errors.New(`ent: missing required field "AwardEvent.breakdown"`)}
	}
	if _, ok := _c.mutation.OccurredAt(); !ok {
		return &ValidationError{Name: "occurred_at", err: errors.New(`ent: missing required field "AwardEvent.occurred_at"`)}
	}
	return nil
}

func (_c *AwardEventCreate) sqlSave(ctx context.Context) (*AwardEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AwardEventCreate) createSpec() (*AwardEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AwardEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(awardevent.Table, sqlgraph.NewFieldSpec(awardevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(awardevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(awardevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(awardevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(awardevent.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.BaseXp(); ok {
		_spec.SetField(awardevent.FieldBaseXp, field.TypeInt, value)
		_node.BaseXp = value
	}
	if value, ok := _c.mutation.TotalMultiplier(); ok {
		_spec.SetField(awardevent.FieldTotalMultiplier, field.TypeFloat64, value)
		_node.TotalMultiplier = value
	}
	if value, ok := _c.mutation.FinalXp(); ok {
		_spec.SetField(awardevent.FieldFinalXp, field.TypeInt, value)
		_node.FinalXp = value
	}
	if value, ok := _c.mutation.Breakdown(); ok {
		_spec.SetField(awardevent.FieldBreakdown, field.TypeString, value)
		_node.Breakdown = value
	}
	if value, ok := _c.mutation.ActivitySequence(); ok {
		_spec.SetField(awardevent.FieldActivitySequence, field.TypeInt64, value)
		_node.ActivitySequence = value
	}
	if value, ok := _c.mutation.AchievementID(); ok {
		_spec.SetField(awardevent.FieldAchievementID, field.TypeString, value)
		_node.AchievementID = value
	}
	if value, ok := _c.mutation.OccurredAt(); ok {
		_spec.SetField(awardevent.FieldOccurredAt, field.TypeTime, value)
		_node.OccurredAt = value
	}
	return _node, _spec
}

// AwardEventCreateBulk is the builder for creating many AwardEvent entities in bulk.
type AwardEventCreateBulk struct {
	config
	err      error
	builders []*AwardEventCreate
}

// Save creates the AwardEvent entities in the database.
func (_c *AwardEventCreateBulk) Save(ctx context.Context) ([]*AwardEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AwardEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AwardEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AwardEventCreateBulk) SaveX(ctx context.Context) []*AwardEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AwardEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AwardEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
