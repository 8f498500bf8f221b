// Code generated by ent, DO NOT EDIT.

package resultevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the resultevent type in the database.
	Label = "result_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldResultID holds the string denoting the result_id field in the database.
	FieldResultID = "result_id"
	// FieldModuleID holds the string denoting the module_id field in the database.
	FieldModuleID = "module_id"
	// FieldTestID holds the string denoting the test_id field in the database.
	FieldTestID = "test_id"
	// FieldTestType holds the string denoting the test_type field in the database.
	FieldTestType = "test_type"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldTimeSpentSecs holds the string denoting the time_spent_secs field in the database.
	FieldTimeSpentSecs = "time_spent_secs"
	// FieldAutoSubmitted holds the string denoting the auto_submitted field in the database.
	FieldAutoSubmitted = "auto_submitted"
	// FieldSubmittedAtMs holds the string denoting the submitted_at_ms field in the database.
	FieldSubmittedAtMs = "submitted_at_ms"
	// Table holds the table name of the resultevent in the database.
	Table = "result_events"
)

// Columns holds all SQL columns for resultevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldResultID,
	FieldModuleID,
	FieldTestID,
	FieldTestType,
	FieldScore,
	FieldTimeSpentSecs,
	FieldAutoSubmitted,
	FieldSubmittedAtMs,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// ResultIDValidator is a validator for the "result_id" field. It is called by the builders before save.
	ResultIDValidator func(string) error
	// ModuleIDValidator is a validator for the "module_id" field. It is called by the builders before save.
	ModuleIDValidator func(string) error
	// TestIDValidator is a validator for the "test_id" field. It is called by the builders before save.
	TestIDValidator func(string) error
	// TestTypeValidator is a validator for the "test_type" field. It is called by the builders before save.
	TestTypeValidator func(string) error
	// DefaultTimeSpentSecs holds the default value on creation for the "time_spent_secs" field.
	DefaultTimeSpentSecs int
	// DefaultAutoSubmitted holds the default value on creation for the "auto_submitted" field.
	DefaultAutoSubmitted bool
)

// OrderOption defines the ordering options for the ResultEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByResultID orders the results by the result_id field.
func ByResultID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResultID, opts...).ToFunc()
}

// ByModuleID orders the results by the module_id field.
func ByModuleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModuleID, opts...).ToFunc()
}

// ByTestID orders the results by the test_id field.
func ByTestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTestID, opts...).ToFunc()
}

// ByTestType orders the results by the test_type field.
func ByTestType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTestType, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByTimeSpentSecs orders the results by the time_spent_secs field.
func ByTimeSpentSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeSpentSecs, opts...).ToFunc()
}

// ByAutoSubmitted orders the results by the auto_submitted field.
func ByAutoSubmitted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAutoSubmitted, opts...).ToFunc()
}

// BySubmittedAtMs orders the results by the submitted_at_ms field.
func BySubmittedAtMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmittedAtMs, opts...).ToFunc()
}
