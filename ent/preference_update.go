// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gbianchi/impara/ent/predicate"
	"github.com/gbianchi/impara/ent/preference"
)

// PreferenceUpdate is the builder for updating Preference entities.
type PreferenceUpdate struct {
	config
	hooks    []Hook
	mutation *PreferenceMutation
}

// Where appends a list predicates to the PreferenceUpdate builder.
func (_u *PreferenceUpdate) Where(ps ...predicate.Preference) *PreferenceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPlayerName sets the "player_name" field.
func (_u *PreferenceUpdate) SetPlayerName(v string) *PreferenceUpdate {
	_u.mutation.SetPlayerName(v)
	return _u
}

// SetNillablePlayerName sets the "player_name" field if the given value is not nil.
func (_u *PreferenceUpdate) SetNillablePlayerName(v *string) *PreferenceUpdate {
	if v != nil {
		_u.SetPlayerName(*v)
	}
	return _u
}

// ClearPlayerName clears the value of the "player_name" field.
func (_u *PreferenceUpdate) ClearPlayerName() *PreferenceUpdate {
	_u.mutation.ClearPlayerName()
	return _u
}

// SetSpeechEnabled sets the "speech_enabled" field.
func (_u *PreferenceUpdate) SetSpeechEnabled(v bool) *PreferenceUpdate {
	_u.mutation.SetSpeechEnabled(v)
	return _u
}

// SetNillableSpeechEnabled sets the "speech_enabled" field if the given value is not nil.
func (_u *PreferenceUpdate) SetNillableSpeechEnabled(v *bool) *PreferenceUpdate {
	if v != nil {
		_u.SetSpeechEnabled(*v)
	}
	return _u
}

// SetHighContrast sets the "high_contrast" field.
func (_u *PreferenceUpdate) SetHighContrast(v bool) *PreferenceUpdate {
	_u.mutation.SetHighContrast(v)
	return _u
}

// SetNillableHighContrast sets the "high_contrast" field if the given value is not nil.
func (_u *PreferenceUpdate) SetNillableHighContrast(v *bool) *PreferenceUpdate {
	if v != nil {
		_u.SetHighContrast(*v)
	}
	return _u
}

// SetLargeText sets the "large_text" field.
func (_u *PreferenceUpdate) SetLargeText(v bool) *PreferenceUpdate {
	_u.mutation.SetLargeText(v)
	return _u
}

// SetNillableLargeText sets the "large_text" field if the given value is not nil.
func (_u *PreferenceUpdate) SetNillableLargeText(v *bool) *PreferenceUpdate {
	if v != nil {
		_u.SetLargeText(*v)
	}
	return _u
}

// SetReducedMotion sets the "reduced_motion" field.
func (_u *PreferenceUpdate) SetReducedMotion(v bool) *PreferenceUpdate {
	_u.mutation.SetReducedMotion(v)
	return _u
}

// SetNillableReducedMotion sets the "reduced_motion" field if the given value is not nil.
func (_u *PreferenceUpdate) SetNillableReducedMotion(v *bool) *PreferenceUpdate {
	if v != nil {
		_u.SetReducedMotion(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PreferenceUpdate) SetUpdatedAt(v time.Time) *PreferenceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PreferenceMutation object of the builder.
func (_u *PreferenceUpdate) Mutation() *PreferenceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PreferenceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PreferenceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PreferenceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PreferenceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PreferenceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := preference.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *PreferenceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(preference.Table, preference.Columns, sqlgraph.NewFieldSpec(preference.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PlayerName(); ok {
		_spec.SetField(preference.FieldPlayerName, field.TypeString, value)
	}
	if _u.mutation.PlayerNameCleared() {
		_spec.ClearField(preference.FieldPlayerName, field.TypeString)
	}
	if value, ok := _u.mutation.SpeechEnabled(); ok {
		_spec.SetField(preference.FieldSpeechEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HighContrast(); ok {
		_spec.SetField(preference.FieldHighContrast, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LargeText(); ok {
		_spec.SetField(preference.FieldLargeText, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReducedMotion(); ok {
		_spec.SetField(preference.FieldReducedMotion, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(preference.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{preference.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PreferenceUpdateOne is the builder for updating a single Preference entity.
type PreferenceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PreferenceMutation
}

// SetPlayerName sets the "player_name" field.
func (_u *PreferenceUpdateOne) SetPlayerName(v string) *PreferenceUpdateOne {
	_u.mutation.SetPlayerName(v)
	return _u
}

// SetNillablePlayerName sets the "player_name" field if the given value is not nil.
func (_u *PreferenceUpdateOne) SetNillablePlayerName(v *string) *PreferenceUpdateOne {
	if v != nil {
		_u.SetPlayerName(*v)
	}
	return _u
}

// ClearPlayerName clears the value of the "player_name" field.
func (_u *PreferenceUpdateOne) ClearPlayerName() *PreferenceUpdateOne {
	_u.mutation.ClearPlayerName()
	return _u
}

// SetSpeechEnabled sets the "speech_enabled" field.
func (_u *PreferenceUpdateOne) SetSpeechEnabled(v bool) *PreferenceUpdateOne {
	_u.mutation.SetSpeechEnabled(v)
	return _u
}

// SetNillableSpeechEnabled sets the "speech_enabled" field if the given value is not nil.
func (_u *PreferenceUpdateOne) SetNillableSpeechEnabled(v *bool) *PreferenceUpdateOne {
	if v != nil {
		_u.SetSpeechEnabled(*v)
	}
	return _u
}

// SetHighContrast sets the "high_contrast" field.
func (_u *PreferenceUpdateOne) SetHighContrast(v bool) *PreferenceUpdateOne {
	_u.mutation.SetHighContrast(v)
	return _u
}

// SetNillableHighContrast sets the "high_contrast" field if the given value is not nil.
func (_u *PreferenceUpdateOne) SetNillableHighContrast(v *bool) *PreferenceUpdateOne {
	if v != nil {
		_u.SetHighContrast(*v)
	}
	return _u
}

// SetLargeText sets the "large_text" field.
func (_u *PreferenceUpdateOne) SetLargeText(v bool) *PreferenceUpdateOne {
	_u.mutation.SetLargeText(v)
	return _u
}

// SetNillableLargeText sets the "large_text" field if the given value is not nil.
func (_u *PreferenceUpdateOne) SetNillableLargeText(v *bool) *PreferenceUpdateOne {
	if v != nil {
		_u.SetLargeText(*v)
	}
	return _u
}

// SetReducedMotion sets the "reduced_motion" field.
func (_u *PreferenceUpdateOne) SetReducedMotion(v bool) *PreferenceUpdateOne {
	_u.mutation.SetReducedMotion(v)
	return _u
}

// SetNillableReducedMotion sets the "reduced_motion" field if the given value is not nil.
func (_u *PreferenceUpdateOne) SetNillableReducedMotion(v *bool) *PreferenceUpdateOne {
	if v != nil {
		_u.SetReducedMotion(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PreferenceUpdateOne) SetUpdatedAt(v time.Time) *PreferenceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PreferenceMutation object of the builder.
func (_u *PreferenceUpdateOne) Mutation() *PreferenceMutation {
	return _u.mutation
}

// Where appends a list predicates to the PreferenceUpdate builder.
func (_u *PreferenceUpdateOne) Where(ps ...predicate.Preference) *PreferenceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PreferenceUpdateOne) Select(field string, fields ...string) *PreferenceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Preference entity.
func (_u *PreferenceUpdateOne) Save(ctx context.Context) (*Preference, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PreferenceUpdateOne) SaveX(ctx context.Context) *Preference {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PreferenceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PreferenceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PreferenceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := preference.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *PreferenceUpdateOne) sqlSave(ctx context.Context) (_node *Preference, err error) {
	_spec := sqlgraph.NewUpdateSpec(preference.Table, preference.Columns, sqlgraph.NewFieldSpec(preference.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Preference.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, preference.FieldID)
		for _, f := range fields {
			if !preference.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != preference.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PlayerName(); ok {
		_spec.SetField(preference.FieldPlayerName, field.TypeString, value)
	}
	if _u.mutation.PlayerNameCleared() {
		_spec.ClearField(preference.FieldPlayerName, field.TypeString)
	}
	if value, ok := _u.mutation.SpeechEnabled(); ok {
		_spec.SetField(preference.FieldSpeechEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HighContrast(); ok {
		_spec.SetField(preference.FieldHighContrast, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LargeText(); ok {
		_spec.SetField(preference.FieldLargeText, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReducedMotion(); ok {
		_spec.SetField(preference.FieldReducedMotion, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(preference.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Preference{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{preference.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
