// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/gbianchi/impara/ent/preference"
)

// Preference is the model entity for the Preference schema.
type Preference struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Always 1; enforces a single row
	SingletonID int `json:"singleton_id,omitempty"`
	// PlayerName holds the value of the "player_name" field.
	PlayerName string `json:"player_name,omitempty"`
	// SpeechEnabled holds the value of the "speech_enabled" field.
	SpeechEnabled bool `json:"speech_enabled,omitempty"`
	// HighContrast holds the value of the "high_contrast" field.
	HighContrast bool `json:"high_contrast,omitempty"`
	// LargeText holds the value of the "large_text" field.
	LargeText bool `json:"large_text,omitempty"`
	// ReducedMotion holds the value of the "reduced_motion" field.
	ReducedMotion bool `json:"reduced_motion,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Preference) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case preference.FieldSpeechEnabled, preference.FieldHighContrast, preference.FieldLargeText, preference.FieldReducedMotion:
			values[i] = new(sql.NullBool)
		case preference.FieldID, preference.FieldSingletonID:
			values[i] = new(sql.NullInt64)
		case preference.FieldPlayerName:
			values[i] = new(sql.NullString)
		case preference.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Preference fields.
func (_m *Preference) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case preference.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case preference.FieldSingletonID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field singleton_id", values[i])
			} else if value.Valid {
				_m.SingletonID = int(value.Int64)
			}
		case preference.FieldPlayerName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field player_name", values[i])
			} else if value.Valid {
				_m.PlayerName = value.String
			}
		case preference.FieldSpeechEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field speech_enabled", values[i])
			} else if value.Valid {
				_m.SpeechEnabled = value.Bool
			}
		case preference.FieldHighContrast:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field high_contrast", values[i])
			} else if value.Valid {
				_m.HighContrast = value.Bool
			}
		case preference.FieldLargeText:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field large_text", values[i])
			} else if value.Valid {
				_m.LargeText = value.Bool
			}
		case preference.FieldReducedMotion:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field reduced_motion", values[i])
			} else if value.Valid {
				_m.ReducedMotion = value.Bool
			}
		case preference.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Preference.
// This includes values selected through modifiers, order, etc.
func (_m *Preference) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Preference.
// Note that you need to call Preference.Unwrap() before calling this method if this Preference
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Preference) Update() *PreferenceUpdateOne {
	return NewPreferenceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Preference entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Preference) Unwrap() *Preference {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Preference is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Preference) String() string {
	var builder strings.Builder
	builder.WriteString("Preference(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("singleton_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SingletonID))
	builder.WriteString(", ")
	builder.WriteString("player_name=")
	builder.WriteString(_m.PlayerName)
	builder.WriteString(", ")
	builder.WriteString("speech_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.SpeechEnabled))
	builder.WriteString(", ")
	builder.WriteString("high_contrast=")
	builder.WriteString(fmt.Sprintf("%v", _m.HighContrast))
	builder.WriteString(", ")
	builder.WriteString("large_text=")
	builder.WriteString(fmt.Sprintf("%v", _m.LargeText))
	builder.WriteString(", ")
	builder.WriteString("reduced_motion=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReducedMotion))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Preferences is a parsable slice of Preference.
type Preferences []*Preference
