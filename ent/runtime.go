// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/gbianchi/impara/ent/achievementevent"
	"github.com/gbianchi/impara/ent/llmrequestevent"
	"github.com/gbianchi/impara/ent/preference"
	"github.com/gbianchi/impara/ent/schema"
	"github.com/gbianchi/impara/ent/sessionrecord"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	achievementeventMixin := schema.AchievementEvent{}.Mixin()
	achievementeventMixinFields0 := achievementeventMixin[0].Fields()
	_ = achievementeventMixinFields0
	achievementeventFields := schema.AchievementEvent{}.Fields()
	_ = achievementeventFields
	// achievementeventDescTimestamp is the schema descriptor for timestamp field.
	achievementeventDescTimestamp := achievementeventMixinFields0[1].Descriptor()
	// achievementevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	achievementevent.DefaultTimestamp = achievementeventDescTimestamp.Default.(func() time.Time)
	// achievementeventDescName is the schema descriptor for name field.
	achievementeventDescName := achievementeventFields[0].Descriptor()
	// achievementevent.NameValidator is a validator for the "name" field. It is called by the builders before save.
	achievementevent.NameValidator = achievementeventDescName.Validators[0].(func(string) error)
	// achievementeventDescReason is the schema descriptor for reason field.
	achievementeventDescReason := achievementeventFields[1].Descriptor()
	// achievementevent.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	achievementevent.ReasonValidator = achievementeventDescReason.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescProvider is the schema descriptor for provider field.
	llmrequesteventDescProvider := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmrequestevent.ProviderValidator = llmrequesteventDescProvider.Validators[0].(func(string) error)
	// llmrequesteventDescModel is the schema descriptor for model field.
	llmrequesteventDescModel := llmrequesteventFields[1].Descriptor()
	// llmrequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	llmrequestevent.ModelValidator = llmrequesteventDescModel.Validators[0].(func(string) error)
	// llmrequesteventDescPurpose is the schema descriptor for purpose field.
	llmrequesteventDescPurpose := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.DefaultPurpose holds the default value on creation for the purpose field.
	llmrequestevent.DefaultPurpose = llmrequesteventDescPurpose.Default.(string)
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
	// llmrequesteventDescSuccess is the schema descriptor for success field.
	llmrequesteventDescSuccess := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultSuccess holds the default value on creation for the success field.
	llmrequestevent.DefaultSuccess = llmrequesteventDescSuccess.Default.(bool)
	preferenceFields := schema.Preference{}.Fields()
	_ = preferenceFields
	// preferenceDescSpeechEnabled is the schema descriptor for speech_enabled field.
	preferenceDescSpeechEnabled := preferenceFields[2].Descriptor()
	// preference.DefaultSpeechEnabled holds the default value on creation for the speech_enabled field.
	preference.DefaultSpeechEnabled = preferenceDescSpeechEnabled.Default.(bool)
	// preferenceDescHighContrast is the schema descriptor for high_contrast field.
	preferenceDescHighContrast := preferenceFields[3].Descriptor()
	// preference.DefaultHighContrast holds the default value on creation for the high_contrast field.
	preference.DefaultHighContrast = preferenceDescHighContrast.Default.(bool)
	// preferenceDescLargeText is the schema descriptor for large_text field.
	preferenceDescLargeText := preferenceFields[4].Descriptor()
	// preference.DefaultLargeText holds the default value on creation for the large_text field.
	preference.DefaultLargeText = preferenceDescLargeText.Default.(bool)
	// preferenceDescReducedMotion is the schema descriptor for reduced_motion field.
	preferenceDescReducedMotion := preferenceFields[5].Descriptor()
	// preference.DefaultReducedMotion holds the default value on creation for the reduced_motion field.
	preference.DefaultReducedMotion = preferenceDescReducedMotion.Default.(bool)
	// preferenceDescUpdatedAt is the schema descriptor for updated_at field.
	preferenceDescUpdatedAt := preferenceFields[6].Descriptor()
	// preference.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	preference.DefaultUpdatedAt = preferenceDescUpdatedAt.Default.(func() time.Time)
	// preference.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	preference.UpdateDefaultUpdatedAt = preferenceDescUpdatedAt.UpdateDefault.(func() time.Time)
	sessionrecordFields := schema.SessionRecord{}.Fields()
	_ = sessionrecordFields
	// sessionrecordDescSubject is the schema descriptor for subject field.
	sessionrecordDescSubject := sessionrecordFields[0].Descriptor()
	// sessionrecord.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	sessionrecord.SubjectValidator = sessionrecordDescSubject.Validators[0].(func(string) error)
	// sessionrecordDescTopic is the schema descriptor for topic field.
	sessionrecordDescTopic := sessionrecordFields[1].Descriptor()
	// sessionrecord.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	sessionrecord.TopicValidator = sessionrecordDescTopic.Validators[0].(func(string) error)
	// sessionrecordDescLevel is the schema descriptor for level field.
	sessionrecordDescLevel := sessionrecordFields[2].Descriptor()
	// sessionrecord.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	sessionrecord.LevelValidator = sessionrecordDescLevel.Validators[0].(func(string) error)
	// sessionrecordDescExerciseID is the schema descriptor for exercise_id field.
	sessionrecordDescExerciseID := sessionrecordFields[3].Descriptor()
	// sessionrecord.ExerciseIDValidator is a validator for the "exercise_id" field. It is called by the builders before save.
	sessionrecord.ExerciseIDValidator = sessionrecordDescExerciseID.Validators[0].(func(string) error)
	// sessionrecordDescScore is the schema descriptor for score field.
	sessionrecordDescScore := sessionrecordFields[4].Descriptor()
	// sessionrecord.DefaultScore holds the default value on creation for the score field.
	sessionrecord.DefaultScore = sessionrecordDescScore.Default.(int)
	// sessionrecordDescTotalQuestions is the schema descriptor for total_questions field.
	sessionrecordDescTotalQuestions := sessionrecordFields[5].Descriptor()
	// sessionrecord.DefaultTotalQuestions holds the default value on creation for the total_questions field.
	sessionrecord.DefaultTotalQuestions = sessionrecordDescTotalQuestions.Default.(int)
	// sessionrecordDescTimeSpentSecs is the schema descriptor for time_spent_secs field.
	sessionrecordDescTimeSpentSecs := sessionrecordFields[6].Descriptor()
	// sessionrecord.DefaultTimeSpentSecs holds the default value on creation for the time_spent_secs field.
	sessionrecord.DefaultTimeSpentSecs = sessionrecordDescTimeSpentSecs.Default.(int)
	// sessionrecordDescAttempts is the schema descriptor for attempts field.
	sessionrecordDescAttempts := sessionrecordFields[7].Descriptor()
	// sessionrecord.DefaultAttempts holds the default value on creation for the attempts field.
	sessionrecord.DefaultAttempts = sessionrecordDescAttempts.Default.(int)
	// sessionrecordDescCompleted is the schema descriptor for completed field.
	sessionrecordDescCompleted := sessionrecordFields[8].Descriptor()
	// sessionrecord.DefaultCompleted holds the default value on creation for the completed field.
	sessionrecord.DefaultCompleted = sessionrecordDescCompleted.Default.(bool)
	// sessionrecordDescUpdatedAt is the schema descriptor for updated_at field.
	sessionrecordDescUpdatedAt := sessionrecordFields[9].Descriptor()
	// sessionrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sessionrecord.DefaultUpdatedAt = sessionrecordDescUpdatedAt.Default.(func() time.Time)
	// sessionrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sessionrecord.UpdateDefaultUpdatedAt = sessionrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
}
