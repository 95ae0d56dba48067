// Code generated by ent, DO NOT EDIT.

package preference

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the preference type in the database.
	Label = "preference"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSingletonID holds the string denoting the singleton_id field in the database.
	FieldSingletonID = "singleton_id"
	// FieldPlayerName holds the string denoting the player_name field in the database.
	FieldPlayerName = "player_name"
	// FieldSpeechEnabled holds the string denoting the speech_enabled field in the database.
	FieldSpeechEnabled = "speech_enabled"
	// FieldHighContrast holds the string denoting the high_contrast field in the database.
	FieldHighContrast = "high_contrast"
	// FieldLargeText holds the string denoting the large_text field in the database.
	FieldLargeText = "large_text"
	// FieldReducedMotion holds the string denoting the reduced_motion field in the database.
	FieldReducedMotion = "reduced_motion"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the preference in the database.
	Table = "preferences"
)

// Columns holds all SQL columns for preference fields.
var Columns = []string{
	FieldID,
	FieldSingletonID,
	FieldPlayerName,
	FieldSpeechEnabled,
	FieldHighContrast,
	FieldLargeText,
	FieldReducedMotion,
	FieldUpdatedAt,
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
	// DefaultSpeechEnabled holds the default value on creation for the "speech_enabled" field.
	DefaultSpeechEnabled bool
	// DefaultHighContrast holds the default value on creation for the "high_contrast" field.
	DefaultHighContrast bool
	// DefaultLargeText holds the default value on creation for the "large_text" field.
	DefaultLargeText bool
	// DefaultReducedMotion holds the default value on creation for the "reduced_motion" field.
	DefaultReducedMotion bool
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Preference queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySingletonID orders the results by the singleton_id field.
func BySingletonID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSingletonID, opts...).ToFunc()
}

// ByPlayerName orders the results by the player_name field.
func ByPlayerName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlayerName, opts...).ToFunc()
}

// BySpeechEnabled orders the results by the speech_enabled field.
func BySpeechEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpeechEnabled, opts...).ToFunc()
}

// ByHighContrast orders the results by the high_contrast field.
func ByHighContrast(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHighContrast, opts...).ToFunc()
}

// ByLargeText orders the results by the large_text field.
func ByLargeText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLargeText, opts...).ToFunc()
}

// ByReducedMotion orders the results by the reduced_motion field.
func ByReducedMotion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReducedMotion, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
