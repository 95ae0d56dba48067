// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gbianchi/impara/ent/preference"
)

// PreferenceCreate is the builder for creating a Preference entity.
type PreferenceCreate struct {
	config
	mutation *PreferenceMutation
	hooks    []Hook
}

// SetSingletonID sets the "singleton_id" field.
func (_c *PreferenceCreate) SetSingletonID(v int) *PreferenceCreate {
	_c.mutation.SetSingletonID(v)
	return _c
}

// SetPlayerName sets the "player_name" field.
func (_c *PreferenceCreate) SetPlayerName(v string) *PreferenceCreate {
	_c.mutation.SetPlayerName(v)
	return _c
}

// SetNillablePlayerName sets the "player_name" field if the given value is not nil.
func (_c *PreferenceCreate) SetNillablePlayerName(v *string) *PreferenceCreate {
	if v != nil {
		_c.SetPlayerName(*v)
	}
	return _c
}

// SetSpeechEnabled sets the "speech_enabled" field.
func (_c *PreferenceCreate) SetSpeechEnabled(v bool) *PreferenceCreate {
	_c.mutation.SetSpeechEnabled(v)
	return _c
}

// SetNillableSpeechEnabled sets the "speech_enabled" field if the given value is not nil.
func (_c *PreferenceCreate) SetNillableSpeechEnabled(v *bool) *PreferenceCreate {
	if v != nil {
		_c.SetSpeechEnabled(*v)
	}
	return _c
}

// SetHighContrast sets the "high_contrast" field.
func (_c *PreferenceCreate) SetHighContrast(v bool) *PreferenceCreate {
	_c.mutation.SetHighContrast(v)
	return _c
}

// SetNillableHighContrast sets the "high_contrast" field if the given value is not nil.
func (_c *PreferenceCreate) SetNillableHighContrast(v *bool) *PreferenceCreate {
	if v != nil {
		_c.SetHighContrast(*v)
	}
	return _c
}

// SetLargeText sets the "large_text" field.
func (_c *PreferenceCreate) SetLargeText(v bool) *PreferenceCreate {
	_c.mutation.SetLargeText(v)
	return _c
}

// SetNillableLargeText sets the "large_text" field if the given value is not nil.
func (_c *PreferenceCreate) SetNillableLargeText(v *bool) *PreferenceCreate {
	if v != nil {
		_c.SetLargeText(*v)
	}
	return _c
}

// SetReducedMotion sets the "reduced_motion" field.
func (_c *PreferenceCreate) SetReducedMotion(v bool) *PreferenceCreate {
	_c.mutation.SetReducedMotion(v)
	return _c
}

// SetNillableReducedMotion sets the "reduced_motion" field if the given value is not nil.
func (_c *PreferenceCreate) SetNillableReducedMotion(v *bool) *PreferenceCreate {
	if v != nil {
		_c.SetReducedMotion(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PreferenceCreate) SetUpdatedAt(v time.Time) *PreferenceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PreferenceCreate) SetNillableUpdatedAt(v *time.Time) *PreferenceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the PreferenceMutation object of the builder.
func (_c *PreferenceCreate) Mutation() *PreferenceMutation {
	return _c.mutation
}

// Save creates the Preference in the database.
func (_c *PreferenceCreate) Save(ctx context.Context) (*Preference, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PreferenceCreate) SaveX(ctx context.Context) *Preference {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PreferenceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PreferenceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PreferenceCreate) defaults() {
	if _, ok := _c.mutation.SpeechEnabled(); !ok {
		v := preference.DefaultSpeechEnabled
		_c.mutation.SetSpeechEnabled(v)
	}
	if _, ok := _c.mutation.HighContrast(); !ok {
		v := preference.DefaultHighContrast
		_c.mutation.SetHighContrast(v)
	}
	if _, ok := _c.mutation.LargeText(); !ok {
		v := preference.DefaultLargeText
		_c.mutation.SetLargeText(v)
	}
	if _, ok := _c.mutation.ReducedMotion(); !ok {
		v := preference.DefaultReducedMotion
		_c.mutation.SetReducedMotion(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := preference.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PreferenceCreate) check() error {
	if _, ok := _c.mutation.SingletonID(); !ok {
		return &ValidationError{Name: "singleton_id", err: errors.New(`ent: missing required field "Preference.singleton_id"`)}
	}
	if _, ok := _c.mutation.SpeechEnabled(); !ok {
		return &ValidationError{Name: "speech_enabled", err: errors.New(`ent: missing required field "Preference.speech_enabled"`)}
	}
	if _, ok := _c.mutation.HighContrast(); !ok {
		return &ValidationError{Name: "high_contrast", err: errors.New(`ent: missing required field "Preference.high_contrast"`)}
	}
	if _, ok := _c.mutation.LargeText(); !ok {
		return &ValidationError{Name: "large_text", err: errors.New(`ent: missing required field "Preference.large_text"`)}
	}
	if _, ok := _c.mutation.ReducedMotion(); !ok {
		return &ValidationError{Name: "reduced_motion", err: errors.New(`ent: missing required field "Preference.reduced_motion"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Preference.updated_at"`)}
	}
	return nil
}

func (_c *PreferenceCreate) sqlSave(ctx context.Context) (*Preference, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PreferenceCreate) createSpec() (*Preference, *sqlgraph.CreateSpec) {
	var (
		_node = &Preference{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(preference.Table, sqlgraph.NewFieldSpec(preference.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SingletonID(); ok {
		_spec.SetField(preference.FieldSingletonID, field.TypeInt, value)
		_node.SingletonID = value
	}
	if value, ok := _c.mutation.PlayerName(); ok {
		_spec.SetField(preference.FieldPlayerName, field.TypeString, value)
		_node.PlayerName = value
	}
	if value, ok := _c.mutation.SpeechEnabled(); ok {
		_spec.SetField(preference.FieldSpeechEnabled, field.TypeBool, value)
		_node.SpeechEnabled = value
	}
	if value, ok := _c.mutation.HighContrast(); ok {
		_spec.SetField(preference.FieldHighContrast, field.TypeBool, value)
		_node.HighContrast = value
	}
	if value, ok := _c.mutation.LargeText(); ok {
		_spec.SetField(preference.FieldLargeText, field.TypeBool, value)
		_node.LargeText = value
	}
	if value, ok := _c.mutation.ReducedMotion(); ok {
		_spec.SetField(preference.FieldReducedMotion, field.TypeBool, value)
		_node.ReducedMotion = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(preference.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// PreferenceCreateBulk is the builder for creating many Preference entities in bulk.
type PreferenceCreateBulk struct {
	config
	err      error
	builders []*PreferenceCreate
}

// Save creates the Preference entities in the database.
func (_c *PreferenceCreateBulk) Save(ctx context.Context) ([]*Preference, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Preference, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PreferenceMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PreferenceCreateBulk) SaveX(ctx context.Context) []*Preference {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PreferenceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PreferenceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
