// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/chemcat/chemcat/ent/follow"
	"github.com/chemcat/chemcat/ent/lessonevent"
	"github.com/chemcat/chemcat/ent/llmrequestevent"
	"github.com/chemcat/chemcat/ent/profile"
	"github.com/chemcat/chemcat/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	followFields := schema.Follow{}.Fields()
	_ = followFields
	// followDescFollowerID is the schema descriptor for follower_id field.
	followDescFollowerID := followFields[0].Descriptor()
	// follow.FollowerIDValidator is a validator for the "follower_id" field. It is called by the builders before save.
	follow.FollowerIDValidator = followDescFollowerID.Validators[0].(func(string) error)
	// followDescFollowedID is the schema descriptor for followed_id field.
	followDescFollowedID := followFields[1].Descriptor()
	// follow.FollowedIDValidator is a validator for the "followed_id" field. It is called by the builders before save.
	follow.FollowedIDValidator = followDescFollowedID.Validators[0].(func(string) error)
	// followDescCreatedAt is the schema descriptor for created_at field.
	followDescCreatedAt := followFields[2].Descriptor()
	// follow.DefaultCreatedAt holds the default value on creation for the created_at field.
	follow.DefaultCreatedAt = followDescCreatedAt.Default.(func() time.Time)
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
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	lessoneventMixin := schema.LessonEvent{}.Mixin()
	lessoneventMixinFields0 := lessoneventMixin[0].Fields()
	_ = lessoneventMixinFields0
	lessoneventFields := schema.LessonEvent{}.Fields()
	_ = lessoneventFields
	// lessoneventDescTimestamp is the schema descriptor for timestamp field.
	lessoneventDescTimestamp := lessoneventMixinFields0[1].Descriptor()
	// lessonevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	lessonevent.DefaultTimestamp = lessoneventDescTimestamp.Default.(func() time.Time)
	// lessoneventDescSessionID is the schema descriptor for session_id field.
	lessoneventDescSessionID := lessoneventFields[0].Descriptor()
	// lessonevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	lessonevent.SessionIDValidator = lessoneventDescSessionID.Validators[0].(func(string) error)
	// lessoneventDescLessonID is the schema descriptor for lesson_id field.
	lessoneventDescLessonID := lessoneventFields[1].Descriptor()
	// lessonevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	lessonevent.LessonIDValidator = lessoneventDescLessonID.Validators[0].(func(string) error)
	// lessoneventDescLessonTitle is the schema descriptor for lesson_title field.
	lessoneventDescLessonTitle := lessoneventFields[2].Descriptor()
	// lessonevent.LessonTitleValidator is a validator for the "lesson_title" field. It is called by the builders before save.
	lessonevent.LessonTitleValidator = lessoneventDescLessonTitle.Validators[0].(func(string) error)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescName is the schema descriptor for name field.
	profileDescName := profileFields[1].Descriptor()
	// profile.NameValidator is a validator for the "name" field. It is called by the builders before save.
	profile.NameValidator = profileDescName.Validators[0].(func(string) error)
	// profileDescAvatar is the schema descriptor for avatar field.
	profileDescAvatar := profileFields[2].Descriptor()
	// profile.DefaultAvatar holds the default value on creation for the avatar field.
	profile.DefaultAvatar = profileDescAvatar.Default.(string)
	// profileDescThemeColor is the schema descriptor for theme_color field.
	profileDescThemeColor := profileFields[3].Descriptor()
	// profile.DefaultThemeColor holds the default value on creation for the theme_color field.
	profile.DefaultThemeColor = profileDescThemeColor.Default.(string)
	// profileDescDailyGoal is the schema descriptor for daily_goal field.
	profileDescDailyGoal := profileFields[4].Descriptor()
	// profile.DefaultDailyGoal holds the default value on creation for the daily_goal field.
	profile.DefaultDailyGoal = profileDescDailyGoal.Default.(int)
	// profileDescLessonsCompleted is the schema descriptor for lessons_completed field.
	profileDescLessonsCompleted := profileFields[6].Descriptor()
	// profile.DefaultLessonsCompleted holds the default value on creation for the lessons_completed field.
	profile.DefaultLessonsCompleted = profileDescLessonsCompleted.Default.(int)
	// profileDescStreak is the schema descriptor for streak field.
	profileDescStreak := profileFields[7].Descriptor()
	// profile.DefaultStreak holds the default value on creation for the streak field.
	profile.DefaultStreak = profileDescStreak.Default.(int)
	// profileDescLastCompletedDate is the schema descriptor for last_completed_date field.
	profileDescLastCompletedDate := profileFields[8].Descriptor()
	// profile.DefaultLastCompletedDate holds the default value on creation for the last_completed_date field.
	profile.DefaultLastCompletedDate = profileDescLastCompletedDate.Default.(string)
	// profileDescStreakFreezes is the schema descriptor for streak_freezes field.
	profileDescStreakFreezes := profileFields[9].Descriptor()
	// profile.DefaultStreakFreezes holds the default value on creation for the streak_freezes field.
	profile.DefaultStreakFreezes = profileDescStreakFreezes.Default.(int)
	// profileDescEnergy is the schema descriptor for energy field.
	profileDescEnergy := profileFields[11].Descriptor()
	// profile.DefaultEnergy holds the default value on creation for the energy field.
	profile.DefaultEnergy = profileDescEnergy.Default.(int)
	// profileDescDailyXp is the schema descriptor for daily_xp field.
	profileDescDailyXp := profileFields[13].Descriptor()
	// profile.DefaultDailyXp holds the default value on creation for the daily_xp field.
	profile.DefaultDailyXp = profileDescDailyXp.Default.(int)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileFields[14].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// profileDescID is the schema descriptor for id field.
	profileDescID := profileFields[0].Descriptor()
	// profile.IDValidator is a validator for the "id" field. It is called by the builders before save.
	profile.IDValidator = profileDescID.Validators[0].(func(string) error)
}
