package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResultEvent records one completed test attempt. Rows are append-only;
// the aggregate ledger is derived state kept in the Snapshot table.
type ResultEvent struct {
	ent.Schema
}

func (ResultEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ResultEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("result_id").
			NotEmpty().
			Unique().
			Comment("UUID identifying this attempt"),
		field.String("module_id").
			NotEmpty().
			Comment("Study module the test belongs to"),
		field.String("test_id").
			NotEmpty().
			Comment("Per-module test slot, e.g. \"practice-1\""),
		field.String("test_type").
			NotEmpty().
			Comment("practice or final"),
		field.Int("score").
			Comment("Rounded percentage 0-100"),
		field.Int("time_spent_secs").
			Default(0).
			Comment("Whole seconds from session start to submission"),
		field.Bool("auto_submitted").
			Default(false).
			Comment("True when the countdown forced submission"),
		field.Int64("submitted_at_ms").
			Comment("Submission instant as epoch milliseconds"),
	}
}

func (ResultEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("module_id"),
		index.Fields("test_type"),
		index.Fields("submitted_at_ms"),
	}
}
