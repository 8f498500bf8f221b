// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/nismprep/ent/predicate"
	"github.com/abhisek/nismprep/ent/resultevent"
)

// ResultEventUpdate is the builder for updating ResultEvent entities.
type ResultEventUpdate struct {
	config
	hooks    []Hook
	mutation *ResultEventMutation
}

// Where appends a list predicates to the ResultEventUpdate builder.
func (_u *ResultEventUpdate) Where(ps ...predicate.ResultEvent) *ResultEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetResultID sets the "result_id" field.
func (_u *ResultEventUpdate) SetResultID(v string) *ResultEventUpdate {
	_u.mutation.SetResultID(v)
	return _u
}

// SetNillableResultID sets the "result_id" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableResultID(v *string) *ResultEventUpdate {
	if v != nil {
		_u.SetResultID(*v)
	}
	return _u
}

// SetModuleID sets the "module_id" field.
func (_u *ResultEventUpdate) SetModuleID(v string) *ResultEventUpdate {
	_u.mutation.SetModuleID(v)
	return _u
}

// SetNillableModuleID sets the "module_id" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableModuleID(v *string) *ResultEventUpdate {
	if v != nil {
		_u.SetModuleID(*v)
	}
	return _u
}

// SetTestID sets the "test_id" field.
func (_u *ResultEventUpdate) SetTestID(v string) *ResultEventUpdate {
	_u.mutation.SetTestID(v)
	return _u
}

// SetNillableTestID sets the "test_id" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableTestID(v *string) *ResultEventUpdate {
	if v != nil {
		_u.SetTestID(*v)
	}
	return _u
}

// SetTestType sets the "test_type" field.
func (_u *ResultEventUpdate) SetTestType(v string) *ResultEventUpdate {
	_u.mutation.SetTestType(v)
	return _u
}

// SetNillableTestType sets the "test_type" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableTestType(v *string) *ResultEventUpdate {
	if v != nil {
		_u.SetTestType(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *ResultEventUpdate) SetScore(v int) *ResultEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableScore(v *int) *ResultEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ResultEventUpdate) AddScore(v int) *ResultEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_u *ResultEventUpdate) SetTimeSpentSecs(v int) *ResultEventUpdate {
	_u.mutation.ResetTimeSpentSecs()
	_u.mutation.SetTimeSpentSecs(v)
	return _u
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableTimeSpentSecs(v *int) *ResultEventUpdate {
	if v != nil {
		_u.SetTimeSpentSecs(*v)
	}
	return _u
}

// AddTimeSpentSecs adds value to the "time_spent_secs" field.
func (_u *ResultEventUpdate) AddTimeSpentSecs(v int) *ResultEventUpdate {
	_u.mutation.AddTimeSpentSecs(v)
	return _u
}

// SetAutoSubmitted sets the "auto_submitted" field.
func (_u *ResultEventUpdate) SetAutoSubmitted(v bool) *ResultEventUpdate {
	_u.mutation.SetAutoSubmitted(v)
	return _u
}

// SetNillableAutoSubmitted sets the "auto_submitted" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableAutoSubmitted(v *bool) *ResultEventUpdate {
	if v != nil {
		_u.SetAutoSubmitted(*v)
	}
	return _u
}

// SetSubmittedAtMs sets the "submitted_at_ms" field.
func (_u *ResultEventUpdate) SetSubmittedAtMs(v int64) *ResultEventUpdate {
	_u.mutation.ResetSubmittedAtMs()
	_u.mutation.SetSubmittedAtMs(v)
	return _u
}

// SetNillableSubmittedAtMs sets the "submitted_at_ms" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableSubmittedAtMs(v *int64) *ResultEventUpdate {
	if v != nil {
		_u.SetSubmittedAtMs(*v)
	}
	return _u
}

// AddSubmittedAtMs adds value to the "submitted_at_ms" field.
func (_u *ResultEventUpdate) AddSubmittedAtMs(v int64) *ResultEventUpdate {
	_u.mutation.AddSubmittedAtMs(v)
	return _u
}

// Mutation returns the ResultEventMutation object of the builder.
func (_u *ResultEventUpdate) Mutation() *ResultEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResultEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResultEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResultEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResultEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResultEventUpdate) check() error {
	if v, ok := _u.mutation.ResultID(); ok {
		if err := resultevent.ResultIDValidator(v); err != nil {
			return &ValidationError{Name: "result_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.result_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModuleID(); ok {
		if err := resultevent.ModuleIDValidator(v); err != nil {
			return &ValidationError{Name: "module_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.module_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TestID(); ok {
		if err := resultevent.TestIDValidator(v); err != nil {
			return &ValidationError{Name: "test_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.test_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TestType(); ok {
		if err := resultevent.TestTypeValidator(v); err != nil {
			return &ValidationError{Name: "test_type", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.test_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ResultEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resultevent.Table, resultevent.Columns, sqlgraph.NewFieldSpec(resultevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ResultID(); ok {
		_spec.SetField(resultevent.FieldResultID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModuleID(); ok {
		_spec.SetField(resultevent.FieldModuleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TestID(); ok {
		_spec.SetField(resultevent.FieldTestID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TestType(); ok {
		_spec.SetField(resultevent.FieldTestType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(resultevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(resultevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeSpentSecs(); ok {
		_spec.SetField(resultevent.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSecs(); ok {
		_spec.AddField(resultevent.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AutoSubmitted(); ok {
		_spec.SetField(resultevent.FieldAutoSubmitted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SubmittedAtMs(); ok {
		_spec.SetField(resultevent.FieldSubmittedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSubmittedAtMs(); ok {
		_spec.AddField(resultevent.FieldSubmittedAtMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resultevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResultEventUpdateOne is the builder for updating a single ResultEvent entity.
type ResultEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResultEventMutation
}

// SetResultID sets the "result_id" field.
func (_u *ResultEventUpdateOne) SetResultID(v string) *ResultEventUpdateOne {
	_u.mutation.SetResultID(v)
	return _u
}

// SetNillableResultID sets the "result_id" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableResultID(v *string) *ResultEventUpdateOne {
	if v != nil {
		_u.SetResultID(*v)
	}
	return _u
}

// SetModuleID sets the "module_id" field.
func (_u *ResultEventUpdateOne) SetModuleID(v string) *ResultEventUpdateOne {
	_u.mutation.SetModuleID(v)
	return _u
}

// SetNillableModuleID sets the "module_id" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableModuleID(v *string) *ResultEventUpdateOne {
	if v != nil {
		_u.SetModuleID(*v)
	}
	return _u
}

// SetTestID sets the "test_id" field.
func (_u *ResultEventUpdateOne) SetTestID(v string) *ResultEventUpdateOne {
	_u.mutation.SetTestID(v)
	return _u
}

// SetNillableTestID sets the "test_id" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableTestID(v *string) *ResultEventUpdateOne {
	if v != nil {
		_u.SetTestID(*v)
	}
	return _u
}

// SetTestType sets the "test_type" field.
func (_u *ResultEventUpdateOne) SetTestType(v string) *ResultEventUpdateOne {
	_u.mutation.SetTestType(v)
	return _u
}

// SetNillableTestType sets the "test_type" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableTestType(v *string) *ResultEventUpdateOne {
	if v != nil {
		_u.SetTestType(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *ResultEventUpdateOne) SetScore(v int) *ResultEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableScore(v *int) *ResultEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ResultEventUpdateOne) AddScore(v int) *ResultEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_u *ResultEventUpdateOne) SetTimeSpentSecs(v int) *ResultEventUpdateOne {
	_u.mutation.ResetTimeSpentSecs()
	_u.mutation.SetTimeSpentSecs(v)
	return _u
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableTimeSpentSecs(v *int) *ResultEventUpdateOne {
	if v != nil {
		_u.SetTimeSpentSecs(*v)
	}
	return _u
}

// AddTimeSpentSecs adds value to the "time_spent_secs" field.
func (_u *ResultEventUpdateOne) AddTimeSpentSecs(v int) *ResultEventUpdateOne {
	_u.mutation.AddTimeSpentSecs(v)
	return _u
}

// SetAutoSubmitted sets the "auto_submitted" field.
func (_u *ResultEventUpdateOne) SetAutoSubmitted(v bool) *ResultEventUpdateOne {
	_u.mutation.SetAutoSubmitted(v)
	return _u
}

// SetNillableAutoSubmitted sets the "auto_submitted" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableAutoSubmitted(v *bool) *ResultEventUpdateOne {
	if v != nil {
		_u.SetAutoSubmitted(*v)
	}
	return _u
}

// SetSubmittedAtMs sets the "submitted_at_ms" field.
func (_u *ResultEventUpdateOne) SetSubmittedAtMs(v int64) *ResultEventUpdateOne {
	_u.mutation.ResetSubmittedAtMs()
	_u.mutation.SetSubmittedAtMs(v)
	return _u
}

// SetNillableSubmittedAtMs sets the "submitted_at_ms" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableSubmittedAtMs(v *int64) *ResultEventUpdateOne {
	if v != nil {
		_u.SetSubmittedAtMs(*v)
	}
	return _u
}

// AddSubmittedAtMs adds value to the "submitted_at_ms" field.
func (_u *ResultEventUpdateOne) AddSubmittedAtMs(v int64) *ResultEventUpdateOne {
	_u.mutation.AddSubmittedAtMs(v)
	return _u
}

// Mutation returns the ResultEventMutation object of the builder.
func (_u *ResultEventUpdateOne) Mutation() *ResultEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResultEventUpdate builder.
func (_u *ResultEventUpdateOne) Where(ps ...predicate.ResultEvent) *ResultEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResultEventUpdateOne) Select(field string, fields ...string) *ResultEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResultEvent entity.
func (_u *ResultEventUpdateOne) Save(ctx context.Context) (*ResultEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResultEventUpdateOne) SaveX(ctx context.Context) *ResultEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResultEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResultEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResultEventUpdateOne) check() error {
	if v, ok := _u.mutation.ResultID(); ok {
		if err := resultevent.ResultIDValidator(v); err != nil {
			return &ValidationError{Name: "result_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.result_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModuleID(); ok {
		if err := resultevent.ModuleIDValidator(v); err != nil {
			return &ValidationError{Name: "module_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.module_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TestID(); ok {
		if err := resultevent.TestIDValidator(v); err != nil {
			return &ValidationError{Name: "test_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.test_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TestType(); ok {
		if err := resultevent.TestTypeValidator(v); err != nil {
			return &ValidationError{Name: "test_type", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.test_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ResultEventUpdateOne) sqlSave(ctx context.Context) (_node *ResultEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resultevent.Table, resultevent.Columns, sqlgraph.NewFieldSpec(resultevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResultEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, resultevent.FieldID)
		for _, f := range fields {
			if !resultevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != resultevent.FieldID {
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
	if value, ok := _u.mutation.ResultID(); ok {
		_spec.SetField(resultevent.FieldResultID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModuleID(); ok {
		_spec.SetField(resultevent.FieldModuleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TestID(); ok {
		_spec.SetField(resultevent.FieldTestID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TestType(); ok {
		_spec.SetField(resultevent.FieldTestType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(resultevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(resultevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeSpentSecs(); ok {
		_spec.SetField(resultevent.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSecs(); ok {
		_spec.AddField(resultevent.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AutoSubmitted(); ok {
		_spec.SetField(resultevent.FieldAutoSubmitted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SubmittedAtMs(); ok {
		_spec.SetField(resultevent.FieldSubmittedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSubmittedAtMs(); ok {
		_spec.AddField(resultevent.FieldSubmittedAtMs, field.TypeInt64, value)
	}
	_node = &ResultEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resultevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
