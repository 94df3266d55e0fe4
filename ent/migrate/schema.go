// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "variation_type", Type: field.TypeString},
		{Name: "retrieval", Type: field.TypeBool},
		{Name: "correct", Type: field.TypeBool},
		{Name: "time_ms", Type: field.TypeInt64},
		{Name: "confidence", Type: field.TypeInt},
		{Name: "hints_used", Type: field.TypeInt},
		{Name: "retrieval_strength", Type: field.TypeFloat64},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
			{
				Name:    "answerevent_skill_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[4]},
			},
			{
				Name:    "answerevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[8]},
			},
		},
	}
	// BreakEventsColumns holds the columns for the "break_events" table.
	BreakEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "break_type", Type: field.TypeString},
		{Name: "urgency", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString},
		{Name: "fatigue_level", Type: field.TypeFloat64},
		{Name: "duration_ms", Type: field.TypeInt64},
		{Name: "completed", Type: field.TypeBool},
		{Name: "recovery_score", Type: field.TypeFloat64},
		{Name: "improvement", Type: field.TypeFloat64},
	}
	// BreakEventsTable holds the schema information for the "break_events" table.
	BreakEventsTable = &schema.Table{
		Name:       "break_events",
		Columns:    BreakEventsColumns,
		PrimaryKey: []*schema.Column{BreakEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "breakevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{BreakEventsColumns[1]},
			},
			{
				Name:    "breakevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{BreakEventsColumns[2]},
			},
			{
				Name:    "breakevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{BreakEventsColumns[3]},
			},
			{
				Name:    "breakevent_completed",
				Unique:  false,
				Columns: []*schema.Column{BreakEventsColumns[9]},
			},
		},
	}
	// ContentRequestEventsColumns holds the columns for the "content_request_events" table.
	ContentRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt},
		{Name: "output_tokens", Type: field.TypeInt},
		{Name: "latency_ms", Type: field.TypeInt64},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString},
	}
	// ContentRequestEventsTable holds the schema information for the "content_request_events" table.
	ContentRequestEventsTable = &schema.Table{
		Name:       "content_request_events",
		Columns:    ContentRequestEventsColumns,
		PrimaryKey: []*schema.Column{ContentRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contentrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ContentRequestEventsColumns[1]},
			},
			{
				Name:    "contentrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ContentRequestEventsColumns[2]},
			},
			{
				Name:    "contentrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{ContentRequestEventsColumns[3]},
			},
			{
				Name:    "contentrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{ContentRequestEventsColumns[9]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "questions_served", Type: field.TypeInt},
		{Name: "correct_answers", Type: field.TypeInt},
		{Name: "duration_secs", Type: field.TypeInt},
		{Name: "skill_mix", Type: field.TypeJSON, Nullable: true},
		{Name: "retention_boost", Type: field.TypeFloat64},
		{Name: "forced_repeats", Type: field.TypeInt},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		BreakEventsTable,
		ContentRequestEventsTable,
		SessionEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
