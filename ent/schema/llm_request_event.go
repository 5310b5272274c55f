package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMRequestEvent is one row per model call, successful or not. It
// backs `chemcat llm`: the list and view subcommands read the bodies,
// the stats subcommand aggregates tokens per model for cost estimates.
type LLMRequestEvent struct {
	ent.Schema
}

func (LLMRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LLMRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			Comment("gemini, openai, or anthropic"),
		field.String("model").
			Comment("Resolved model ID, not the friendly alias"),
		field.String("purpose").
			Comment("question-gen, chat, unit-review, or unknown"),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int64("latency_ms").
			Default(0).
			Comment("Wall-clock duration; spans all chunks for streams"),
		field.Bool("success"),
		field.String("error_message").
			Default("").
			Comment("Empty on success"),
		field.Text("request_body").
			Default("").
			Comment("Prompt as sent, rendered readable"),
		field.Text("response_body").
			Default("").
			Comment("Raw output; streamed chunks concatenated"),
	}
}

func (LLMRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider"),
		index.Fields("purpose"),
	}
}
