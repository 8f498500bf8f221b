// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/nismprep/ent/resultevent"
)

// ResultEventCreate is the builder for creating a ResultEvent entity.
type ResultEventCreate struct {
	config
	mutation *ResultEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ResultEventCreate) SetSequence(v int64) *ResultEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ResultEventCreate) SetTimestamp(v time.Time) *ResultEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ResultEventCreate) SetNillableTimestamp(v *time.Time) *ResultEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetResultID sets the "result_id" field.
func (_c *ResultEventCreate) SetResultID(v string) *ResultEventCreate {
	_c.mutation.SetResultID(v)
	return _c
}

// SetModuleID sets the "module_id" field.
func (_c *ResultEventCreate) SetModuleID(v string) *ResultEventCreate {
	_c.mutation.SetModuleID(v)
	return _c
}

// SetTestID sets the "test_id" field.
func (_c *ResultEventCreate) SetTestID(v string) *ResultEventCreate {
	_c.mutation.SetTestID(v)
	return _c
}

// SetTestType sets the "test_type" field.
func (_c *ResultEventCreate) SetTestType(v string) *ResultEventCreate {
	_c.mutation.SetTestType(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *ResultEventCreate) SetScore(v int) *ResultEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_c *ResultEventCreate) SetTimeSpentSecs(v int) *ResultEventCreate {
	_c.mutation.SetTimeSpentSecs(v)
	return _c
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_c *ResultEventCreate) SetNillableTimeSpentSecs(v *int) *ResultEventCreate {
	if v != nil {
		_c.SetTimeSpentSecs(*v)
	}
	return _c
}

// SetAutoSubmitted sets the "auto_submitted" field.
func (_c *ResultEventCreate) SetAutoSubmitted(v bool) *ResultEventCreate {
	_c.mutation.SetAutoSubmitted(v)
	return _c
}

// SetNillableAutoSubmitted sets the "auto_submitted" field if the given value is not nil.
func (_c *ResultEventCreate) SetNillableAutoSubmitted(v *bool) *ResultEventCreate {
	if v != nil {
		_c.SetAutoSubmitted(*v)
	}
	return _c
}

// SetSubmittedAtMs sets the "submitted_at_ms" field.
func (_c *ResultEventCreate) SetSubmittedAtMs(v int64) *ResultEventCreate {
	_c.mutation.SetSubmittedAtMs(v)
	return _c
}

// Mutation returns the ResultEventMutation object of the builder.
func (_c *ResultEventCreate) Mutation() *ResultEventMutation {
	return _c.mutation
}

// Save creates the ResultEvent in the database.
func (_c *ResultEventCreate) Save(ctx context.Context) (*ResultEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResultEventCreate) SaveX(ctx context.Context) *ResultEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResultEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResultEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResultEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := resultevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.TimeSpentSecs(); !ok {
		v := resultevent.DefaultTimeSpentSecs
		_c.mutation.SetTimeSpentSecs(v)
	}
	if _, ok := _c.mutation.AutoSubmitted(); !ok {
		v := resultevent.DefaultAutoSubmitted
		_c.mutation.SetAutoSubmitted(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResultEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ResultEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ResultEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.ResultID(); !ok {
		return &ValidationError{Name: "result_id", err: errors.New(`ent: missing required field "ResultEvent.result_id"`)}
	}
	if v, ok := _c.mutation.ResultID(); ok {
		if err := resultevent.ResultIDValidator(v); err != nil {
			return &ValidationError{Name: "result_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.result_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ModuleID(); !ok {
		return &ValidationError{Name: "module_id", err: errors.New(`ent: missing required field "ResultEvent.module_id"`)}
	}
	if v, ok := _c.mutation.ModuleID(); ok {
		if err := resultevent.ModuleIDValidator(v); err != nil {
			return &ValidationError{Name: "module_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.module_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TestID(); !ok {
		return &ValidationError{Name: "test_id", err: errors.New(`ent: missing required field "ResultEvent.test_id"`)}
	}
	if v, ok := _c.mutation.TestID(); ok {
		if err := resultevent.TestIDValidator(v); err != nil {
			return &ValidationError{Name: "test_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.test_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TestType(); !ok {
		return &ValidationError{Name: "test_type", err: errors.New(`ent: missing required field "ResultEvent.test_type"`)}
	}
	if v, ok := _c.mutation.TestType(); ok {
		if err := resultevent.TestTypeValidator(v); err != nil {
			return &ValidationError{Name: "test_type", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.test_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "ResultEvent.score"`)}
	}
	if _, ok := _c.mutation.TimeSpentSecs(); !ok {
		return &ValidationError{Name: "time_spent_secs", err: errors.New(`ent: missing required field "ResultEvent.time_spent_secs"`)}
	}
	if _, ok := _c.mutation.AutoSubmitted(); !ok {
		return &ValidationError{Name: "auto_submitted", err: errors.New(`ent: missing required field "ResultEvent.auto_submitted"`)}
	}
	if _, ok := _c.mutation.SubmittedAtMs(); !ok {
		return &ValidationError{Name: "submitted_at_ms", err: errors.New(`ent: missing required field "ResultEvent.submitted_at_ms"`)}
	}
	return nil
}

func (_c *ResultEventCreate) sqlSave(ctx context.Context) (*ResultEvent, error) {
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

func (_c *ResultEventCreate) createSpec() (*ResultEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ResultEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(resultevent.Table, sqlgraph.NewFieldSpec(resultevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(resultevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(resultevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.ResultID(); ok {
		_spec.SetField(resultevent.FieldResultID, field.TypeString, value)
		_node.ResultID = value
	}
	if value, ok := _c.mutation.ModuleID(); ok {
		_spec.SetField(resultevent.FieldModuleID, field.TypeString, value)
		_node.ModuleID = value
	}
	if value, ok := _c.mutation.TestID(); ok {
		_spec.SetField(resultevent.FieldTestID, field.TypeString, value)
		_node.TestID = value
	}
	if value, ok := _c.mutation.TestType(); ok {
		_spec.SetField(resultevent.FieldTestType, field.TypeString, value)
		_node.TestType = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(resultevent.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.TimeSpentSecs(); ok {
		_spec.SetField(resultevent.FieldTimeSpentSecs, field.TypeInt, value)
		_node.TimeSpentSecs = value
	}
	if value, ok := _c.mutation.AutoSubmitted(); ok {
		_spec.SetField(resultevent.FieldAutoSubmitted, field.TypeBool, value)
		_node.AutoSubmitted = value
	}
	if value, ok := _c.mutation.SubmittedAtMs(); ok {
		_spec.SetField(resultevent.FieldSubmittedAtMs, field.TypeInt64, value)
		_node.SubmittedAtMs = value
	}
	return _node, _spec
}

// ResultEventCreateBulk is the builder for creating many ResultEvent entities in bulk.
type ResultEventCreateBulk struct {
	config
	err      error
	builders []*ResultEventCreate
}

// Save creates the ResultEvent entities in the database.
func (_c *ResultEventCreateBulk) Save(ctx context.Context) ([]*ResultEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ResultEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResultEventMutation)
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
func (_c *ResultEventCreateBulk) SaveX(ctx context.Context) []*ResultEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResultEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResultEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
