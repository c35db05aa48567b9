// Code generated by ent, DO NOT EDIT.

package awardevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the awardevent type in the database.
	Label = "award_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldBaseXp holds the string denoting the base_xp field in the database.
	FieldBaseXp = "base_xp"
	// FieldTotalMultiplier holds the string denoting the total_multiplier field in the database.
	FieldTotalMultiplier = "total_multiplier"
	// FieldFinalXp holds the string denoting the final_xp field in the database.
	FieldFinalXp = "final_xp"
	// FieldBreakdown holds the string denoting the breakdown field in the database.
	FieldBreakdown = "breakdown"
	// FieldActivitySequence holds the string denoting the activity_sequence field in the database.
	FieldActivitySequence = "activity_sequence"
	// FieldAchievementID holds the string denoting the achievement_id field in the database.
	FieldAchievementID = "achievement_id"
	// FieldOccurredAt holds the string denoting the occurred_at field in the database.
	FieldOccurredAt = "occurred_at"
	// Table holds the table name of the awardevent in the database.
	Table = "award_events"
)

// Columns holds all SQL columns for awardevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldUserID,
	FieldSource,
	FieldBaseXp,
	FieldTotalMultiplier,
	FieldFinalXp,
	FieldBreakdown,
	FieldActivitySequence,
	FieldAchievementID,
	FieldOccurredAt,
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
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// SourceValidator is a validator for the "source" field. It is called by the builders before save.
	SourceValidator func(string) error
	// DefaultTotalMultiplier holds the default value on creation for the "total_multiplier" field.
	DefaultTotalMultiplier float64
)

// OrderOption defines the ordering options for the AwardEvent queries.
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

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByBaseXp orders the results by the base_xp field.
func ByBaseXp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBaseXp, opts...).ToFunc()
}

// ByTotalMultiplier orders the results by the total_multiplier field.
func ByTotalMultiplier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalMultiplier, opts...).ToFunc()
}

// ByFinalXp orders the results by the final_xp field.
func ByFinalXp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalXp, opts...).ToFunc()
}

// ByBreakdown orders the results by the breakdown field.
func ByBreakdown(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBreakdown, opts...).ToFunc()
}

// ByActivitySequence orders the results by the activity_sequence field.
func ByActivitySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActivitySequence, opts...).ToFunc()
}

// ByAchievementID orders the results by the achievement_id field.
func ByAchievementID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAchievementID, opts...).ToFunc()
}

// ByOccurredAt orders the results by the occurred_at field.
func ByOccurredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOccurredAt, opts...).ToFunc()
}
