// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActivityEventsColumns holds the columns for the "activity_events" table.
	ActivityEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "base_activity_key", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString, Nullable: true},
		{Name: "duration_minutes", Type: field.TypeInt, Default: 0},
		{Name: "performance_percent", Type: field.TypeInt, Default: 0},
		{Name: "streak_days", Type: field.TypeInt, Default: 0},
		{Name: "is_group_activity", Type: field.TypeBool, Default: false},
		{Name: "time_of_day", Type: field.TypeString, Default: "normal"},
		{Name: "is_weekend", Type: field.TypeBool, Default: false},
		{Name: "occurred_at", Type: field.TypeTime},
	}
	// ActivityEventsTable holds the schema information for the "activity_events" table.
	ActivityEventsTable = &schema.Table{
		Name:       "activity_events",
		Columns:    ActivityEventsColumns,
		PrimaryKey: []*schema.Column{ActivityEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "activityevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ActivityEventsColumns[1]},
			},
			{
				Name:    "activityevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ActivityEventsColumns[2]},
			},
			{
				Name:    "activityevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{ActivityEventsColumns[3]},
			},
			{
				Name:    "activityevent_kind",
				Unique:  false,
				Columns: []*schema.Column{ActivityEventsColumns[4]},
			},
			{
				Name:    "activityevent_user_id_occurred_at",
				Unique:  false,
				Columns: []*schema.Column{ActivityEventsColumns[3], ActivityEventsColumns[13]},
			},
		},
	}
	// AwardEventsColumns holds the columns for the "award_events" table.
	AwardEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "source", Type: field.TypeString},
		{Name: "base_xp", Type: field.TypeInt},
		{Name: "total_multiplier", Type: field.TypeFloat64, Default: 1},
		{Name: "final_xp", Type: field.TypeInt},
		{Name: "breakdown", Type: field.TypeString},
		{Name: "activity_sequence", Type: field.TypeInt64, Nullable: true},
		{Name: "achievement_id", Type: field.TypeString, Nullable: true},
		{Name: "occurred_at", Type: field.TypeTime},
	}
	// AwardEventsTable holds the schema information for the "award_events" table.
	AwardEventsTable = &schema.Table{
		Name:       "award_events",
		Columns:    AwardEventsColumns,
		PrimaryKey: []*schema.Column{AwardEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "awardevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AwardEventsColumns[1]},
			},
			{
				Name:    "awardevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AwardEventsColumns[2]},
			},
			{
				Name:    "awardevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{AwardEventsColumns[3]},
			},
			{
				Name:    "awardevent_source",
				Unique:  false,
				Columns: []*schema.Column{AwardEventsColumns[4]},
			},
			{
				Name:    "awardevent_user_id_occurred_at",
				Unique:  false,
				Columns: []*schema.Column{AwardEventsColumns[3], AwardEventsColumns[11]},
			},
		},
	}
	// MasteryEventsColumns holds the columns for the "mastery_events" table.
	MasteryEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "skill", Type: field.TypeString},
		{Name: "probability", Type: field.TypeFloat64},
		{Name: "correct", Type: field.TypeBool},
		{Name: "question_id", Type: field.TypeString, Nullable: true},
	}
	// MasteryEventsTable holds the schema information for the "mastery_events" table.
	MasteryEventsTable = &schema.Table{
		Name:       "mastery_events",
		Columns:    MasteryEventsColumns,
		PrimaryKey: []*schema.Column{MasteryEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masteryevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[1]},
			},
			{
				Name:    "masteryevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[2]},
			},
			{
				Name:    "masteryevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[3]},
			},
			{
				Name:    "masteryevent_user_id_subject_skill",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[3], MasteryEventsColumns[4], MasteryEventsColumns[5]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
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
				Name:    "snapshot_user_id",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
		},
	}
	// UnlockEventsColumns holds the columns for the "unlock_events" table.
	UnlockEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "achievement_id", Type: field.TypeString},
		{Name: "xp_reward", Type: field.TypeInt, Default: 0},
		{Name: "unlocked_at", Type: field.TypeTime},
	}
	// UnlockEventsTable holds the schema information for the "unlock_events" table.
	UnlockEventsTable = &schema.Table{
		Name:       "unlock_events",
		Columns:    UnlockEventsColumns,
		PrimaryKey: []*schema.Column{UnlockEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "unlockevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{UnlockEventsColumns[1]},
			},
			{
				Name:    "unlockevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{UnlockEventsColumns[2]},
			},
			{
				Name:    "unlockevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{UnlockEventsColumns[3]},
			},
			{
				Name:    "unlockevent_user_id_achievement_id",
				Unique:  true,
				Columns: []*schema.Column{UnlockEventsColumns[3], UnlockEventsColumns[4]},
			},
		},
	}
	// UsageEventsColumns holds the columns for the "usage_events" table.
	UsageEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "question_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
	}
	// UsageEventsTable holds the schema information for the "usage_events" table.
	UsageEventsTable = &schema.Table{
		Name:       "usage_events",
		Columns:    UsageEventsColumns,
		PrimaryKey: []*schema.Column{UsageEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "usageevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{UsageEventsColumns[1]},
			},
			{
				Name:    "usageevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{UsageEventsColumns[2]},
			},
			{
				Name:    "usageevent_question_id",
				Unique:  false,
				Columns: []*schema.Column{UsageEventsColumns[3]},
			},
			{
				Name:    "usageevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{UsageEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActivityEventsTable,
		AwardEventsTable,
		MasteryEventsTable,
		SnapshotsTable,
		UnlockEventsTable,
		UsageEventsTable,
	}
)

func init() {
}
