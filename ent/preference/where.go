// Code generated by ent, DO NOT EDIT.

package preference

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/gbianchi/impara/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Preference {
	return predicate.Preference(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Preference {
	return predicate.Preference(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Preference {
	return predicate.Preference(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Preference {
	return predicate.Preference(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Preference {
	return predicate.Preference(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Preference {
	return predicate.Preference(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Preference {
	return predicate.Preference(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Preference {
	return predicate.Preference(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Preference {
	return predicate.Preference(sql.FieldLTE(FieldID, id))
}

// SingletonID applies equality check predicate on the "singleton_id" field. It's identical to SingletonIDEQ.
func SingletonID(v int) predicate.Preference {
	return predicate.Preference(sql.FieldEQ(FieldSingletonID, v))
}

// PlayerName applies equality check predicate on the "player_name" field. It's identical to PlayerNameEQ.
func PlayerName(v string) predicate.Preference {
	return predicate.Preference(sql.FieldEQ(FieldPlayerName, v))
}

// SpeechEnabled applies equality check predicate on the "speech_enabled" field. It's identical to SpeechEnabledEQ.
func SpeechEnabled(v bool) predicate.Preference {
	return predicate.Preference(sql.FieldEQ(FieldSpeechEnabled, v))
}

// HighContrast applies equality check predicate on the "high_contrast" field. It's identical to HighContrastEQ.
func HighContrast(v bool) predicate.Preference {
	return predicate.Preference(sql.FieldEQ(FieldHighContrast, v))
}

// LargeText applies equality check predicate on the "large_text" field. It's identical to LargeTextEQ.
func LargeText(v bool) predicate.Preference {
	return predicate.Preference(sql.FieldEQ(FieldLargeText, v))
}

// ReducedMotion applies equality check predicate on the "reduced_motion" field. It's identical to ReducedMotionEQ.
func ReducedMotion(v bool) predicate.Preference {
	return predicate.Preference(sql.FieldEQ(FieldReducedMotion, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Preference {
	return predicate.Preference(sql.FieldEQ(FieldUpdatedAt, v))
}

// SingletonIDEQ applies the EQ predicate on the "singleton_id" field.
func SingletonIDEQ(v int) predicate.Preference {
	return predicate.Preference(sql.FieldEQ(FieldSingletonID, v))
}

// SingletonIDNEQ applies the NEQ predicate on the "singleton_id" field.
func SingletonIDNEQ(v int) predicate.Preference {
	return predicate.Preference(sql.FieldNEQ(FieldSingletonID, v))
}

// SingletonIDIn applies the In predicate on the "singleton_id" field.
func SingletonIDIn(vs ...int) predicate.Preference {
	return predicate.Preference(sql.FieldIn(FieldSingletonID, vs...))
}

// SingletonIDNotIn applies the NotIn predicate on the "singleton_id" field.
func SingletonIDNotIn(vs ...int) predicate.Preference {
	return predicate.Preference(sql.FieldNotIn(FieldSingletonID, vs...))
}

// SingletonIDGT applies the GT predicate on the "singleton_id" field.
func SingletonIDGT(v int) predicate.Preference {
	return predicate.Preference(sql.FieldGT(FieldSingletonID, v))
}

// SingletonIDGTE applies the GTE predicate on the "singleton_id" field.
func SingletonIDGTE(v int) predicate.Preference {
	return predicate.Preference(sql.FieldGTE(FieldSingletonID, v))
}

// SingletonIDLT applies the LT predicate on the "singleton_id" field.
func SingletonIDLT(v int) predicate.Preference {
	return predicate.Preference(sql.FieldLT(FieldSingletonID, v))
}

// SingletonIDLTE applies the LTE predicate on the "singleton_id" field.
func SingletonIDLTE(v int) predicate.Preference {
	return predicate.Preference(sql.FieldLTE(FieldSingletonID, v))
}

// PlayerNameEQ applies the EQ predicate on the "player_name" field.
func PlayerNameEQ(v string) predicate.Preference {
	return predicate.Preference(sql.FieldEQ(FieldPlayerName, v))
}

// PlayerNameNEQ applies the NEQ predicate on the "player_name" field.
func PlayerNameNEQ(v string) predicate.Preference {
	return predicate.Preference(sql.FieldNEQ(FieldPlayerName, v))
}

// PlayerNameIn applies the In predicate on the "player_name" field.
func PlayerNameIn(vs ...string) predicate.Preference {
	return predicate.Preference(sql.FieldIn(FieldPlayerName, vs...))
}

// PlayerNameNotIn applies the NotIn predicate on the "player_name" field.
func PlayerNameNotIn(vs ...string) predicate.Preference {
	return predicate.Preference(sql.FieldNotIn(FieldPlayerName, vs...))
}

// PlayerNameGT applies the GT predicate on the "player_name" field.
func PlayerNameGT(v string) predicate.Preference {
	return predicate.Preference(sql.FieldGT(FieldPlayerName, v))
}

// PlayerNameGTE applies the GTE predicate on the "player_name" field.
func PlayerNameGTE(v string) predicate.Preference {
	return predicate.Preference(sql.FieldGTE(FieldPlayerName, v))
}

// PlayerNameLT applies the LT predicate on the "player_name" field.
func PlayerNameLT(v string) predicate.Preference {
	return predicate.Preference(sql.FieldLT(FieldPlayerName, v))
}

// PlayerNameLTE applies the LTE predicate on the "player_name" field.
func PlayerNameLTE(v string) predicate.Preference {
	return predicate.Preference(sql.FieldLTE(FieldPlayerName, v))
}

// PlayerNameContains applies the Contains predicate on the "player_name" field.
func PlayerNameContains(v string) predicate.Preference {
	return predicate.Preference(sql.FieldContains(FieldPlayerName, v))
}

// PlayerNameHasPrefix applies the HasPrefix predicate on the "player_name" field.
func PlayerNameHasPrefix(v string) predicate.Preference {
	return predicate.Preference(sql.FieldHasPrefix(FieldPlayerName, v))
}

// PlayerNameHasSuffix applies the HasSuffix predicate on the "player_name" field.
func PlayerNameHasSuffix(v string) predicate.Preference {
	return predicate.Preference(sql.FieldHasSuffix(FieldPlayerName, v))
}

// PlayerNameIsNil applies the IsNil predicate on the "player_name" field.
func PlayerNameIsNil() predicate.Preference {
	return predicate.Preference(sql.FieldIsNull(FieldPlayerName))
}

// PlayerNameNotNil applies the NotNil predicate on the "player_name" field.
func PlayerNameNotNil() predicate.Preference {
	return predicate.Preference(sql.FieldNotNull(FieldPlayerName))
}

// PlayerNameEqualFold applies the EqualFold predicate on the "player_name" field.
func PlayerNameEqualFold(v string) predicate.Preference {
	return predicate.Preference(sql.FieldEqualFold(FieldPlayerName, v))
}

// PlayerNameContainsFold applies the ContainsFold predicate on the "player_name" field.
func PlayerNameContainsFold(v string) predicate.Preference {
	return predicate.Preference(sql.FieldContainsFold(FieldPlayerName, v))
}

// SpeechEnabledEQ applies the EQ predicate on the "speech_enabled" field.
func SpeechEnabledEQ(v bool) predicate.Preference {
	return predicate.Preference(sql.FieldEQ(FieldSpeechEnabled, v))
}

// SpeechEnabledNEQ applies the NEQ predicate on the "speech_enabled" field.
func SpeechEnabledNEQ(v bool) predicate.Preference {
	return predicate.Preference(sql.FieldNEQ(FieldSpeechEnabled, v))
}

// HighContrastEQ applies the EQ predicate on the "high_contrast" field.
func HighContrastEQ(v bool) predicate.Preference {
	return predicate.Preference(sql.FieldEQ(FieldHighContrast, v))
}

// HighContrastNEQ applies the NEQ predicate on the "high_contrast" field.
func HighContrastNEQ(v bool) predicate.Preference {
	return predicate.Preference(sql.FieldNEQ(FieldHighContrast, v))
}

// LargeTextEQ applies the EQ predicate on the "large_text" field.
func LargeTextEQ(v bool) predicate.Preference {
	return predicate.Preference(sql.FieldEQ(FieldLargeText, v))
}

// LargeTextNEQ applies the NEQ predicate on the "large_text" field.
func LargeTextNEQ(v bool) predicate.Preference {
	return predicate.Preference(sql.FieldNEQ(FieldLargeText, v))
}

// ReducedMotionEQ applies the EQ predicate on the "reduced_motion" field.
func ReducedMotionEQ(v bool) predicate.Preference {
	return predicate.Preference(sql.FieldEQ(FieldReducedMotion, v))
}

// ReducedMotionNEQ applies the NEQ predicate on the "reduced_motion" field.
func ReducedMotionNEQ(v bool) predicate.Preference {
	return predicate.Preference(sql.FieldNEQ(FieldReducedMotion, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Preference {
	return predicate.Preference(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Preference {
	return predicate.Preference(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Preference {
	return predicate.Preference(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Preference {
	return predicate.Preference(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Preference {
	return predicate.Preference(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Preference {
	return predicate.Preference(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Preference {
	return predicate.Preference(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Preference {
	return predicate.Preference(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Preference) predicate.Preference {
	return predicate.Preference(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Preference) predicate.Preference {
	return predicate.Preference(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Preference) predicate.Preference {
	return predicate.Preference(sql.NotPredicates(p))
}
