// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/nismprep/ent/llmrequestevent"
	"github.com/abhisek/nismprep/ent/profile"
	"github.com/abhisek/nismprep/ent/resultevent"
	"github.com/abhisek/nismprep/ent/schema"
	"github.com/abhisek/nismprep/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescFirstName is the schema descriptor for first_name field.
	profileDescFirstName := profileFields[0].Descriptor()
	// profile.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	profile.FirstNameValidator = profileDescFirstName.Validators[0].(func(string) error)
	// profileDescLastName is the schema descriptor for last_name field.
	profileDescLastName := profileFields[1].Descriptor()
	// profile.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	profile.LastNameValidator = profileDescLastName.Validators[0].(func(string) error)
	// profileDescEmail is the schema descriptor for email field.
	profileDescEmail := profileFields[2].Descriptor()
	// profile.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	profile.EmailValidator = profileDescEmail.Validators[0].(func(string) error)
	// profileDescPlan is the schema descriptor for plan field.
	profileDescPlan := profileFields[3].Descriptor()
	// profile.DefaultPlan holds the default value on creation for the plan field.
	profile.DefaultPlan = profileDescPlan.Default.(string)
	// profileDescRegisteredAt is the schema descriptor for registered_at field.
	profileDescRegisteredAt := profileFields[4].Descriptor()
	// profile.DefaultRegisteredAt holds the default value on creation for the registered_at field.
	profile.DefaultRegisteredAt = profileDescRegisteredAt.Default.(func() time.Time)
	resulteventMixin := schema.ResultEvent{}.Mixin()
	resulteventMixinFields0 := resulteventMixin[0].Fields()
	_ = resulteventMixinFields0
	resulteventFields := schema.ResultEvent{}.Fields()
	_ = resulteventFields
	// resulteventDescTimestamp is the schema descriptor for timestamp field.
	resulteventDescTimestamp := resulteventMixinFields0[1].Descriptor()
	// resultevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	resultevent.DefaultTimestamp = resulteventDescTimestamp.Default.(func() time.Time)
	// resulteventDescResultID is the schema descriptor for result_id field.
	resulteventDescResultID := resulteventFields[0].Descriptor()
	// resultevent.ResultIDValidator is a validator for the "result_id" field. It is called by the builders before save.
	resultevent.ResultIDValidator = resulteventDescResultID.Validators[0].(func(string) error)
	// resulteventDescModuleID is the schema descriptor for module_id field.
	resulteventDescModuleID := resulteventFields[1].Descriptor()
	// resultevent.ModuleIDValidator is a validator for the "module_id" field. It is called by the builders before save.
	resultevent.ModuleIDValidator = resulteventDescModuleID.Validators[0].(func(string) error)
	// resulteventDescTestID is the schema descriptor for test_id field.
	resulteventDescTestID := resulteventFields[2].Descriptor()
	// resultevent.TestIDValidator is a validator for the "test_id" field. It is called by the builders before save.
	resultevent.TestIDValidator = resulteventDescTestID.Validators[0].(func(string) error)
	// resulteventDescTestType is the schema descriptor for test_type field.
	resulteventDescTestType := resulteventFields[3].Descriptor()
	// resultevent.TestTypeValidator is a validator for the "test_type" field. It is called by the builders before save.
	resultevent.TestTypeValidator = resulteventDescTestType.Validators[0].(func(string) error)
	// resulteventDescTimeSpentSecs is the schema descriptor for time_spent_secs field.
	resulteventDescTimeSpentSecs := resulteventFields[5].Descriptor()
	// resultevent.DefaultTimeSpentSecs holds the default value on creation for the time_spent_secs field.
	resultevent.DefaultTimeSpentSecs = resulteventDescTimeSpentSecs.Default.(int)
	// resulteventDescAutoSubmitted is the schema descriptor for auto_submitted field.
	resulteventDescAutoSubmitted := resulteventFields[6].Descriptor()
	// resultevent.DefaultAutoSubmitted holds the default value on creation for the auto_submitted field.
	resultevent.DefaultAutoSubmitted = resulteventDescAutoSubmitted.Default.(bool)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
