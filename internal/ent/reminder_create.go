// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/nogueira-gui/conecta-apiserver/internal/ent/reminder"
	"github.com/nogueira-gui/conecta-apiserver/internal/ent/user"
)

// ReminderCreate is the builder for creating a Reminder entity.
type ReminderCreate struct {
	config
	mutation *ReminderMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (rc *ReminderCreate) SetUserID(u uuid.UUID) *ReminderCreate {
	rc.mutation.SetUserID(u)
	return rc
}

// SetTitle sets the "title" field.
func (rc *ReminderCreate) SetTitle(s string) *ReminderCreate {
	rc.mutation.SetTitle(s)
	return rc
}

// SetDescription sets the "description" field.
func (rc *ReminderCreate) SetDescription(s string) *ReminderCreate {
	rc.mutation.SetDescription(s)
	return rc
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (rc *ReminderCreate) SetNillableDescription(s *string) *ReminderCreate {
	if s != nil {
		rc.SetDescription(*s)
	}
	return rc
}

// SetType sets the "type" field.
func (rc *ReminderCreate) SetType(r reminder.Type) *ReminderCreate {
	rc.mutation.SetType(r)
	return rc
}

// SetScheduledDate sets the "scheduled_date" field.
func (rc *ReminderCreate) SetScheduledDate(t time.Time) *ReminderCreate {
	rc.mutation.SetScheduledDate(t)
	return rc
}

// SetTime sets the "time" field.
func (rc *ReminderCreate) SetTime(s string) *ReminderCreate {
	rc.mutation.SetTime(s)
	return rc
}

// SetActive sets the "active" field.
func (rc *ReminderCreate) SetActive(b bool) *ReminderCreate {
	rc.mutation.SetActive(b)
	return rc
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (rc *ReminderCreate) SetNillableActive(b *bool) *ReminderCreate {
	if b != nil {
		rc.SetActive(*b)
	}
	return rc
}

// SetRecurring sets the "recurring" field.
func (rc *ReminderCreate) SetRecurring(b bool) *ReminderCreate {
	rc.mutation.SetRecurring(b)
	return rc
}

// SetNillableRecurring sets the "recurring" field if the given value is not nil.
func (rc *ReminderCreate) SetNillableRecurring(b *bool) *ReminderCreate {
	if b != nil {
		rc.SetRecurring(*b)
	}
	return rc
}

// SetRecurringType sets the "recurring_type" field.
func (rc *ReminderCreate) SetRecurringType(rt reminder.RecurringType) *ReminderCreate {
	rc.mutation.SetRecurringType(rt)
	return rc
}

// SetNillableRecurringType sets the "recurring_type" field if the given value is not nil.
func (rc *ReminderCreate) SetNillableRecurringType(rt *reminder.RecurringType) *ReminderCreate {
	if rt != nil {
		rc.SetRecurringType(*rt)
	}
	return rc
}

// SetCreatedAt sets the "created_at" field.
func (rc *ReminderCreate) SetCreatedAt(t time.Time) *ReminderCreate {
	rc.mutation.SetCreatedAt(t)
	return rc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (rc *ReminderCreate) SetNillableCreatedAt(t *time.Time) *ReminderCreate {
	if t != nil {
		rc.SetCreatedAt(*t)
	}
	return rc
}

// SetUpdatedAt sets the "updated_at" field.
func (rc *ReminderCreate) SetUpdatedAt(t time.Time) *ReminderCreate {
	rc.mutation.SetUpdatedAt(t)
	return rc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (rc *ReminderCreate) SetNillableUpdatedAt(t *time.Time) *ReminderCreate {
	if t != nil {
		rc.SetUpdatedAt(*t)
	}
	return rc
}

// SetID sets the "id" field.
func (rc *ReminderCreate) SetID(u uuid.UUID) *ReminderCreate {
	rc.mutation.SetID(u)
	return rc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (rc *ReminderCreate) SetNillableID(u *uuid.UUID) *ReminderCreate {
	if u != nil {
		rc.SetID(*u)
	}
	return rc
}

// SetUser sets the "user" edge to the User entity.
func (rc *ReminderCreate) SetUser(u *User) *ReminderCreate {
	return rc.SetUserID(u.ID)
}

// Mutation returns the ReminderMutation object of the builder.
func (rc *ReminderCreate) Mutation() *ReminderMutation {
	return rc.mutation
}

// Save creates the Reminder in the database.
func (rc *ReminderCreate) Save(ctx context.Context) (*Reminder, error) {
	rc.defaults()
	return withHooks(ctx, rc.sqlSave, rc.mutation, rc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (rc *ReminderCreate) SaveX(ctx context.Context) *Reminder {
	v, err := rc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (rc *ReminderCreate) Exec(ctx context.Context) error {
	_, err := rc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rc *ReminderCreate) ExecX(ctx context.Context) {
	if err := rc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (rc *ReminderCreate) defaults() {
	if _, ok := rc.mutation.Active(); !ok {
		v := reminder.DefaultActive
		rc.mutation.SetActive(v)
	}
	if _, ok := rc.mutation.Recurring(); !ok {
		v := reminder.DefaultRecurring
		rc.mutation.SetRecurring(v)
	}
	if _, ok := rc.mutation.CreatedAt(); !ok {
		v := reminder.DefaultCreatedAt()
		rc.mutation.SetCreatedAt(v)
	}
	if _, ok := rc.mutation.UpdatedAt(); !ok {
		v := reminder.DefaultUpdatedAt()
		rc.mutation.SetUpdatedAt(v)
	}
	if _, ok := rc.mutation.ID(); !ok {
		v := reminder.DefaultID()
		rc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (rc *ReminderCreate) check() error {
	if _, ok := rc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Reminder.user_id"`)}
	}
	if _, ok := rc.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Reminder.title"`)}
	}
	if v, ok := rc.mutation.Title(); ok {
		if err := reminder.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Reminder.title": %w`, err)}
		}
	}
	if v, ok := rc.mutation.Description(); ok {
		if err := reminder.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Reminder.description": %w`, err)}
		}
	}
	if _, ok := rc.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Reminder.type"`)}
	}
	if v, ok := rc.mutation.GetType(); ok {
		if err := reminder.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Reminder.type": %w`, err)}
		}
	}
	if _, ok := rc.mutation.ScheduledDate(); !ok {
		return &ValidationError{Name: "scheduled_date", err: errors.New(`ent: missing required field "Reminder.scheduled_date"`)}
	}
	if _, ok := rc.mutation.Time(); !ok {
		return &ValidationError{Name: "time", err: errors.New(`ent: missing required field "Reminder.time"`)}
	}
	if v, ok := rc.mutation.Time(); ok {
		if err := reminder.TimeValidator(v); err != nil {
			return &ValidationError{Name: "time", err: fmt.Errorf(`ent: validator failed for field "Reminder.time": %w`, err)}
		}
	}
	if _, ok := rc.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "Reminder.active"`)}
	}
	if _, ok := rc.mutation.Recurring(); !ok {
		return &ValidationError{Name: "recurring", err: errors.New(`ent: missing required field "Reminder.recurring"`)}
	}
	if v, ok := rc.mutation.RecurringType(); ok {
		if err := reminder.RecurringTypeValidator(v); err != nil {
			return &ValidationError{Name: "recurring_type", err: fmt.Errorf(`ent: validator failed for field "Reminder.recurring_type": %w`, err)}
		}
	}
	if _, ok := rc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Reminder.created_at"`)}
	}
	if _, ok := rc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Reminder.updated_at"`)}
	}
	if len(rc.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "Reminder.user"`)}
	}
	return nil
}

func (rc *ReminderCreate) sqlSave(ctx context.Context) (*Reminder, error) {
	if err := rc.check(); err != nil {
		return nil, err
	}
	_node, _spec := rc.createSpec()
	if err := sqlgraph.CreateNode(ctx, rc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	rc.mutation.id = &_node.ID
	rc.mutation.done = true
	return _node, nil
}

func (rc *ReminderCreate) createSpec() (*Reminder, *sqlgraph.CreateSpec) {
	var (
		_node = &Reminder{config: rc.config}
		_spec = sqlgraph.NewCreateSpec(reminder.Table, sqlgraph.NewFieldSpec(reminder.FieldID, field.TypeUUID))
	)
	if id, ok := rc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := rc.mutation.Title(); ok {
		_spec.SetField(reminder.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := rc.mutation.Description(); ok {
		_spec.SetField(reminder.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := rc.mutation.GetType(); ok {
		_spec.SetField(reminder.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := rc.mutation.ScheduledDate(); ok {
		_spec.SetField(reminder.FieldScheduledDate, field.TypeTime, value)
		_node.ScheduledDate = value
	}
	if value, ok := rc.mutation.Time(); ok {
		_spec.SetField(reminder.FieldTime, field.TypeString, value)
		_node.Time = value
	}
	if value, ok := rc.mutation.Active(); ok {
		_spec.SetField(reminder.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := rc.mutation.Recurring(); ok {
		_spec.SetField(reminder.FieldRecurring, field.TypeBool, value)
		_node.Recurring = value
	}
	if value, ok := rc.mutation.RecurringType(); ok {
		_spec.SetField(reminder.FieldRecurringType, field.TypeEnum, value)
		_node.RecurringType = value
	}
	if value, ok := rc.mutation.CreatedAt(); ok {
		_spec.SetField(reminder.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := rc.mutation.UpdatedAt(); ok {
		_spec.SetField(reminder.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := rc.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reminder.UserTable,
			Columns: []string{reminder.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ReminderCreateBulk is the builder for creating many Reminder entities in bulk.
type ReminderCreateBulk struct {
	config
	err      error
	builders []*ReminderCreate
}

// Save creates the Reminder entities in the database.
func (rcb *ReminderCreateBulk) Save(ctx context.Context) ([]*Reminder, error) {
	if rcb.err != nil {
		return nil, rcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(rcb.builders))
	nodes := make([]*Reminder, len(rcb.builders))
	mutators := make([]Mutator, len(rcb.builders))
	for i := range rcb.builders {
		func(i int, root context.Context) {
			builder := rcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReminderMutation)
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
					_, err = mutators[i+1].Mutate(root, rcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, rcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
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
		if _, err := mutators[0].Mutate(ctx, rcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (rcb *ReminderCreateBulk) SaveX(ctx context.Context) []*Reminder {
	v, err := rcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (rcb *ReminderCreateBulk) Exec(ctx context.Context) error {
	_, err := rcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rcb *ReminderCreateBulk) ExecX(ctx context.Context) {
	if err := rcb.Exec(ctx); err != nil {
		panic(err)
	}
}
