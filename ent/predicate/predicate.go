// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ActivityEvent is the predicate function for activityevent builders.
type ActivityEvent func(*sql.Selector)

// AwardEvent is the predicate function for awardevent builders.
type AwardEvent func(*sql.Selector)

// MasteryEvent is the predicate function for masteryevent builders.
type MasteryEvent func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)

// UnlockEvent is the predicate function for unlockevent builders.
type UnlockEvent func(*sql.Selector)

// UsageEvent is the predicate function for usageevent builders.
type UsageEvent func(*sql.Selector)
