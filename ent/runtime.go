// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/pacelab/pacer/ent/answerevent"
	"github.com/pacelab/pacer/ent/breakevent"
	"github.com/pacelab/pacer/ent/contentrequestevent"
	"github.com/pacelab/pacer/ent/schema"
	"github.com/pacelab/pacer/ent/sessionevent"
	"github.com/pacelab/pacer/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescSkillID is the schema descriptor for skill_id field.
	answereventDescSkillID := answereventFields[1].Descriptor()
	// answerevent.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	answerevent.SkillIDValidator = answereventDescSkillID.Validators[0].(func(string) error)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[2].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescConfidence is the schema descriptor for confidence field.
	answereventDescConfidence := answereventFields[7].Descriptor()
	// answerevent.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	answerevent.ConfidenceValidator = func() func(int) error {
		validators := answereventDescConfidence.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(confidence int) error {
			for _, fn := range fns {
				if err := fn(confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	breakeventMixin := schema.BreakEvent{}.Mixin()
	breakeventMixinFields0 := breakeventMixin[0].Fields()
	_ = breakeventMixinFields0
	breakeventFields := schema.BreakEvent{}.Fields()
	_ = breakeventFields
	// breakeventDescTimestamp is the schema descriptor for timestamp field.
	breakeventDescTimestamp := breakeventMixinFields0[1].Descriptor()
	// breakevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	breakevent.DefaultTimestamp = breakeventDescTimestamp.Default.(func() time.Time)
	// breakeventDescSessionID is the schema descriptor for session_id field.
	breakeventDescSessionID := breakeventFields[0].Descriptor()
	// breakevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	breakevent.SessionIDValidator = breakeventDescSessionID.Validators[0].(func(string) error)
	// breakeventDescBreakType is the schema descriptor for break_type field.
	breakeventDescBreakType := breakeventFields[1].Descriptor()
	// breakevent.BreakTypeValidator is a validator for the "break_type" field. It is called by the builders before save.
	breakevent.BreakTypeValidator = breakeventDescBreakType.Validators[0].(func(string) error)
	// breakeventDescUrgency is the schema descriptor for urgency field.
	breakeventDescUrgency := breakeventFields[2].Descriptor()
	// breakevent.UrgencyValidator is a validator for the "urgency" field. It is called by the builders before save.
	breakevent.UrgencyValidator = breakeventDescUrgency.Validators[0].(func(string) error)
	contentrequesteventMixin := schema.ContentRequestEvent{}.Mixin()
	contentrequesteventMixinFields0 := contentrequesteventMixin[0].Fields()
	_ = contentrequesteventMixinFields0
	contentrequesteventFields := schema.ContentRequestEvent{}.Fields()
	_ = contentrequesteventFields
	// contentrequesteventDescTimestamp is the schema descriptor for timestamp field.
	contentrequesteventDescTimestamp := contentrequesteventMixinFields0[1].Descriptor()
	// contentrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	contentrequestevent.DefaultTimestamp = contentrequesteventDescTimestamp.Default.(func() time.Time)
	// contentrequesteventDescProvider is the schema descriptor for provider field.
	contentrequesteventDescProvider := contentrequesteventFields[0].Descriptor()
	// contentrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	contentrequestevent.ProviderValidator = contentrequesteventDescProvider.Validators[0].(func(string) error)
	// contentrequesteventDescModel is the schema descriptor for model field.
	contentrequesteventDescModel := contentrequesteventFields[1].Descriptor()
	// contentrequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	contentrequestevent.ModelValidator = contentrequesteventDescModel.Validators[0].(func(string) error)
	// contentrequesteventDescPurpose is the schema descriptor for purpose field.
	contentrequesteventDescPurpose := contentrequesteventFields[2].Descriptor()
	// contentrequestevent.PurposeValidator is a validator for the "purpose" field. It is called by the builders before save.
	contentrequestevent.PurposeValidator = contentrequesteventDescPurpose.Validators[0].(func(string) error)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
