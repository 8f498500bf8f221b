// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/nismprep/ent/resultevent"
)

// ResultEvent is the model entity for the ResultEvent schema.
type ResultEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID identifying this attempt
	ResultID string `json:"result_id,omitempty"`
	// Study module the test belongs to
	ModuleID string `json:"module_id,omitempty"`
	// Per-module test slot, e.g. "practice-1"
	TestID string `json:"test_id,omitempty"`
	// practice or final
	TestType string `json:"test_type,omitempty"`
	// Rounded percentage 0-100
	Score int `json:"score,omitempty"`
	// Whole seconds from session start to submission
	TimeSpentSecs int `json:"time_spent_secs,omitempty"`
	// True when the countdown forced submission
	AutoSubmitted bool `json:"auto_submitted,omitempty"`
	// Submission instant as epoch milliseconds
	SubmittedAtMs int64 `json:"submitted_at_ms,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ResultEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case resultevent.FieldAutoSubmitted:
			values[i] = new(sql.NullBool)
		case resultevent.FieldID, resultevent.FieldSequence, resultevent.FieldScore, resultevent.FieldTimeSpentSecs, resultevent.FieldSubmittedAtMs:
			values[i] = new(sql.NullInt64)
		case resultevent.FieldResultID, resultevent.FieldModuleID, resultevent.FieldTestID, resultevent.FieldTestType:
			values[i] = new(sql.NullString)
		case resultevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ResultEvent fields.
func (_m *ResultEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case resultevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case resultevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case resultevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case resultevent.FieldResultID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result_id", values[i])
			} else if value.Valid {
				_m.ResultID = value.String
			}
		case resultevent.FieldModuleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field module_id", values[i])
			} else if value.Valid {
				_m.ModuleID = value.String
			}
		case resultevent.FieldTestID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field test_id", values[i])
			} else if value.Valid {
				_m.TestID = value.String
			}
		case resultevent.FieldTestType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field test_type", values[i])
			} else if value.Valid {
				_m.TestType = value.String
			}
		case resultevent.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case resultevent.FieldTimeSpentSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_spent_secs", values[i])
			} else if value.Valid {
				_m.TimeSpentSecs = int(value.Int64)
			}
		case resultevent.FieldAutoSubmitted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field auto_submitted", values[i])
			} else if value.Valid {
				_m.AutoSubmitted = value.Bool
			}
		case resultevent.FieldSubmittedAtMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field submitted_at_ms", values[i])
			} else if value.Valid {
				_m.SubmittedAtMs = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ResultEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ResultEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ResultEvent.
// Note that you need to call ResultEvent.Unwrap() before calling this method if this ResultEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ResultEvent) Update() *ResultEventUpdateOne {
	return NewResultEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ResultEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ResultEvent) Unwrap() *ResultEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ResultEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ResultEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ResultEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("result_id=")
	builder.WriteString(_m.ResultID)
	builder.WriteString(", ")
	builder.WriteString("module_id=")
	builder.WriteString(_m.ModuleID)
	builder.WriteString(", ")
	builder.WriteString("test_id=")
	builder.WriteString(_m.TestID)
	builder.WriteString(", ")
	builder.WriteString("test_type=")
	builder.WriteString(_m.TestType)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("time_spent_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeSpentSecs))
	builder.WriteString(", ")
	builder.WriteString("auto_submitted=")
	builder.WriteString(fmt.Sprintf("%v", _m.AutoSubmitted))
	builder.WriteString(", ")
	builder.WriteString("submitted_at_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubmittedAtMs))
	builder.WriteByte(')')
	return builder.String()
}

// ResultEvents is a parsable slice of ResultEvent.
type ResultEvents []*ResultEvent
