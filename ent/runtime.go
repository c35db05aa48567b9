// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/prepforge/prepforge/ent/activityevent"
	"github.com/prepforge/prepforge/ent/awardevent"
	"github.com/prepforge/prepforge/ent/masteryevent"
	"github.com/prepforge/prepforge/ent/schema"
	"github.com/prepforge/prepforge/ent/snapshot"
	"github.com/prepforge/prepforge/ent/unlockevent"
	"github.com/prepforge/prepforge/ent/usageevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	activityeventMixin := schema.ActivityEvent{}.Mixin()
	activityeventMixinFields0 := activityeventMixin[0].Fields()
	_ = activityeventMixinFields0
	activityeventFields := schema.ActivityEvent{}.Fields()
	_ = activityeventFields
	// activityeventDescTimestamp is the schema descriptor for timestamp field.
	activityeventDescTimestamp := activityeventMixinFields0[1].Descriptor()
	// activityevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	activityevent.DefaultTimestamp = activityeventDescTimestamp.Default.(func() time.Time)
	// activityeventDescUserID is the schema descriptor for user_id field.
	activityeventDescUserID := activityeventFields[0].Descriptor()
	// activityevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	activityevent.UserIDValidator = activityeventDescUserID.Validators[0].(func(string) error)
	// activityeventDescKind is the schema descriptor for kind field.
	activityeventDescKind := activityeventFields[1].Descriptor()
	// activityevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	activityevent.KindValidator = activityeventDescKind.Validators[0].(func(string) error)
	// activityeventDescBaseActivityKey is the schema descriptor for base_activity_key field.
	activityeventDescBaseActivityKey := activityeventFields[2].Descriptor()
	// activityevent.BaseActivityKeyValidator is a validator for the "base_activity_key" field. It is called by the builders before save.
	activityevent.BaseActivityKeyValidator = activityeventDescBaseActivityKey.Validators[0].(func(string) error)
	// activityeventDescDurationMinutes is the schema descriptor for duration_minutes field.
	activityeventDescDurationMinutes := activityeventFields[4].Descriptor()
	// activityevent.DefaultDurationMinutes holds the default value on creation for the duration_minutes field.
	activityevent.DefaultDurationMinutes = activityeventDescDurationMinutes.Default.(int)
	// activityeventDescPerformancePercent is the schema descriptor for performance_percent field.
	activityeventDescPerformancePercent := activityeventFields[5].Descriptor()
	// activityevent.DefaultPerformancePercent holds the default value on creation for the performance_percent field.
	activityevent.DefaultPerformancePercent = activityeventDescPerformancePercent.Default.(int)
	// activityeventDescStreakDays is the schema descriptor for streak_days field.
	activityeventDescStreakDays := activityeventFields[6].Descriptor()
	// activityevent.DefaultStreakDays holds the default value on creation for the streak_days field.
	activityevent.DefaultStreakDays = activityeventDescStreakDays.Default.(int)
	// activityeventDescIsGroupActivity is the schema descriptor for is_group_activity field.
	activityeventDescIsGroupActivity := activityeventFields[7].Descriptor()
	// activityevent.DefaultIsGroupActivity holds the default value on creation for the is_group_activity field.
	activityevent.DefaultIsGroupActivity = activityeventDescIsGroupActivity.Default.(bool)
	// activityeventDescTimeOfDay is the schema descriptor for time_of_day field.
	activityeventDescTimeOfDay := activityeventFields[8].Descriptor()
	// activityevent.DefaultTimeOfDay holds the default value on creation for the time_of_day field.
	activityevent.DefaultTimeOfDay = activityeventDescTimeOfDay.Default.(string)
	// activityeventDescIsWeekend is the schema descriptor for is_weekend field.
	activityeventDescIsWeekend := activityeventFields[9].Descriptor()
	// activityevent.DefaultIsWeekend holds the default value on creation for the is_weekend field.
	activityevent.DefaultIsWeekend = activityeventDescIsWeekend.Default.(bool)
	awardeventMixin := schema.AwardEvent{}.Mixin()
	awardeventMixinFields0 := awardeventMixin[0].Fields()
	_ = awardeventMixinFields0
	awardeventFields := schema.AwardEvent{}.Fields()
	_ = awardeventFields
	// awardeventDescTimestamp is the schema descriptor for timestamp field.
	awardeventDescTimestamp := awardeventMixinFields0[1].Descriptor()
	// awardevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	awardevent.DefaultTimestamp = awardeventDescTimestamp.Default.(func() time.Time)
	// awardeventDescUserID is the schema descriptor for user_id field.
	awardeventDescUserID := awardeventFields[0].Descriptor()
	// awardevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	awardevent.UserIDValidator = awardeventDescUserID.Validators[0].(func(string) error)
	// awardeventDescSource is the schema descriptor for source field.
	awardeventDescSource := awardeventFields[1].Descriptor()
	// awardevent.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	awardevent.SourceValidator = awardeventDescSource.Validators[0].(func(string) error)
	// awardeventDescTotalMultiplier is the schema descriptor for total_multiplier field.
	awardeventDescTotalMultiplier := awardeventFields[3].Descriptor()
	// awardevent.DefaultTotalMultiplier holds the default value on creation for the total_multiplier field.
	awardevent.DefaultTotalMultiplier = awardeventDescTotalMultiplier.Default.(float64)
	masteryeventMixin := schema.MasteryEvent{}.Mixin()
	masteryeventMixinFields0 := masteryeventMixin[0].Fields()
	_ = masteryeventMixinFields0
	masteryeventFields := schema.MasteryEvent{}.Fields()
	_ = masteryeventFields
	// masteryeventDescTimestamp is the schema descriptor for timestamp field.
	masteryeventDescTimestamp := masteryeventMixinFields0[1].Descriptor()
	// masteryevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	masteryevent.DefaultTimestamp = masteryeventDescTimestamp.Default.(func() time.Time)
	// masteryeventDescUserID is the schema descriptor for user_id field.
	masteryeventDescUserID := masteryeventFields[0].Descriptor()
	// masteryevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	masteryevent.UserIDValidator = masteryeventDescUserID.Validators[0].(func(string) error)
	// masteryeventDescSubject is the schema descriptor for subject field.
	masteryeventDescSubject := masteryeventFields[1].Descriptor()
	// masteryevent.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	masteryevent.SubjectValidator = masteryeventDescSubject.Validators[0].(func(string) error)
	// masteryeventDescSkill is the schema descriptor for skill field.
	masteryeventDescSkill := masteryeventFields[2].Descriptor()
	// masteryevent.SkillValidator is a validator for the "skill" field. It is called by the builders before save.
	masteryevent.SkillValidator = masteryeventDescSkill.Validators[0].(func(string) error)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescUserID is the schema descriptor for user_id field.
	snapshotDescUserID := snapshotFields[0].Descriptor()
	// snapshot.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	snapshot.UserIDValidator = snapshotDescUserID.Validators[0].(func(string) error)
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[2].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	unlockeventMixin := schema.UnlockEvent{}.Mixin()
	unlockeventMixinFields0 := unlockeventMixin[0].Fields()
	_ = unlockeventMixinFields0
	unlockeventFields := schema.UnlockEvent{}.Fields()
	_ = unlockeventFields
	// unlockeventDescTimestamp is the schema descriptor for timestamp field.
	unlockeventDescTimestamp := unlockeventMixinFields0[1].Descriptor()
	// unlockevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	unlockevent.DefaultTimestamp = unlockeventDescTimestamp.Default.(func() time.Time)
	// unlockeventDescUserID is the schema descriptor for user_id field.
	unlockeventDescUserID := unlockeventFields[0].Descriptor()
	// unlockevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	unlockevent.UserIDValidator = unlockeventDescUserID.Validators[0].(func(string) error)
	// unlockeventDescAchievementID is the schema descriptor for achievement_id field.
	unlockeventDescAchievementID := unlockeventFields[1].Descriptor()
	// unlockevent.AchievementIDValidator is a validator for the "achievement_id" field. It is called by the builders before save.
	unlockevent.AchievementIDValidator = unlockeventDescAchievementID.Validators[0].(func(string) error)
	// unlockeventDescXpReward is the schema descriptor for xp_reward field.
	unlockeventDescXpReward := unlockeventFields[2].Descriptor()
	// unlockevent.DefaultXpReward holds the default value on creation for the xp_reward field.
	unlockevent.DefaultXpReward = unlockeventDescXpReward.Default.(int)
	usageeventMixin := schema.UsageEvent{}.Mixin()
	usageeventMixinFields0 := usageeventMixin[0].Fields()
	_ = usageeventMixinFields0
	usageeventFields := schema.UsageEvent{}.Fields()
	_ = usageeventFields
	// usageeventDescTimestamp is the schema descriptor for timestamp field.
	usageeventDescTimestamp := usageeventMixinFields0[1].Descriptor()
	// usageevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	usageevent.DefaultTimestamp = usageeventDescTimestamp.Default.(func() time.Time)
	// usageeventDescQuestionID is the schema descriptor for question_id field.
	usageeventDescQuestionID := usageeventFields[0].Descriptor()
	// usageevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	usageevent.QuestionIDValidator = usageeventDescQuestionID.Validators[0].(func(string) error)
	// usageeventDescUserID is the schema descriptor for user_id field.
	usageeventDescUserID := usageeventFields[1].Descriptor()
	// usageevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	usageevent.UserIDValidator = usageeventDescUserID.Validators[0].(func(string) error)
}
