// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/prepforge/prepforge/ent/awardevent"
)

// AwardEvent is the model entity for the AwardEvent schema.
type AwardEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// activity or achievement
	Source string `json:"source,omitempty"`
	// BaseXp holds the value of the "base_xp" field.
	BaseXp int `json:"base_xp,omitempty"`
	// TotalMultiplier holds the value of the "total_multiplier" field.
	TotalMultiplier float64 `json:"total_multiplier,omitempty"`
	// FinalXp holds the value of the "final_xp" field.
	FinalXp int `json:"final_xp,omitempty"`
	// Human-readable audit line
	Breakdown string `json:"breakdown,omitempty"`
	// Sequence of the ActivityEvent this award scored, if any
	ActivitySequence int64 `json:"activity_sequence,omitempty"`
	// Achievement credited, for achievement-sourced awards
	AchievementID string `json:"achievement_id,omitempty"`
	// OccurredAt holds the value of the "occurred_at" field.
	OccurredAt   time.Time `json:"occurred_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AwardEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case awardevent.FieldTotalMultiplier:
			values[i] = new(sql.NullFloat64)
		case awardevent.FieldID, awardevent.FieldSequence, awardevent.FieldBaseXp, awardevent.FieldFinalXp, awardevent.FieldActivitySequence:
			values[i] = new(sql.NullInt64)
		case awardevent.FieldUserID, awardevent.FieldSource, awardevent.FieldBreakdown, awardevent.FieldAchievementID:
			values[i] = new(sql.NullString)
		case awardevent.FieldTimestamp, awardevent.FieldOccurredAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AwardEvent fields.
func (_m *AwardEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case awardevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case awardevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case awardevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case awardevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case awardevent.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case awardevent.FieldBaseXp:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field base_xp", values[i])
			} else if value.Valid {
				_m.BaseXp = int(value.Int64)
			}
		case awardevent.FieldTotalMultiplier:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_multiplier", values[i])
			} else if value.Valid {
				_m.TotalMultiplier = value.Float64
			}
		case awardevent.FieldFinalXp:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field final_xp", values[i])
			} else if value.Valid {
				_m.FinalXp = int(value.Int64)
			}
		case awardevent.FieldBreakdown:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field breakdown", values[i])
			} else if value.Valid {
				_m.Breakdown = value.String
			}
		case awardevent.FieldActivitySequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field activity_sequence", values[i])
			} else if value.Valid {
				_m.ActivitySequence = value.Int64
			}
		case awardevent.FieldAchievementID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field achievement_id", values[i])
			} else if value.Valid {
				_m.AchievementID = value.String
			}
		case awardevent.FieldOccurredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field occurred_at", values[i])
			} else if value.Valid {
				_m.OccurredAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AwardEvent.
// This includes values selected through modifiers, order, etc.
func (_m *AwardEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AwardEvent.
// Note that you need to call AwardEvent.Unwrap() before calling this method if this AwardEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AwardEvent) Update() *AwardEventUpdateOne {
	return NewAwardEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AwardEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AwardEvent) Unwrap() *AwardEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AwardEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AwardEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AwardEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("base_xp=")
	builder.WriteString(fmt.Sprintf("%v", _m.BaseXp))
	builder.WriteString(", ")
	builder.WriteString("total_multiplier=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalMultiplier))
	builder.WriteString(", ")
	builder.WriteString("final_xp=")
	builder.WriteString(fmt.Sprintf("%v", _m.FinalXp))
	builder.WriteString(", ")
	builder.WriteString("breakdown=")
	builder.WriteString(_m.Breakdown)
	builder.WriteString(", ")
	builder.WriteString("activity_sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActivitySequence))
	builder.WriteString(", ")
	builder.WriteString("achievement_id=")
	builder.WriteString(_m.AchievementID)
	builder.WriteString(", ")
	builder.WriteString("occurred_at=")
	builder.WriteString(_m.OccurredAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AwardEvents is a parsable slice of AwardEvent.
type AwardEvents []*AwardEvent
