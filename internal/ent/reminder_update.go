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
	"github.com/google/uuid"
	"github.com/nogueira-gui/conecta-apiserver/internal/ent/predicate"
	"github.com/nogueira-gui/conecta-apiserver/internal/ent/reminder"
	"github.com/nogueira-gui/conecta-apiserver/internal/ent/user"
)

// ReminderUpdate is the builder for updating Reminder entities.
type ReminderUpdate struct {
	config
	hooks    []Hook
	mutation *ReminderMutation
}

// Where appends a list predicates to the ReminderUpdate builder.
func (ru *ReminderUpdate) Where(ps ...predicate.Reminder) *ReminderUpdate {
	ru.mutation.Where(ps...)
	return ru
}

// SetUserID sets the "user_id" field.
func (ru *ReminderUpdate) SetUserID(u uuid.UUID) *ReminderUpdate {
	ru.mutation.SetUserID(u)
	return ru
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (ru *ReminderUpdate) SetNillableUserID(u *uuid.UUID) *ReminderUpdate {
	if u != nil {
		ru.SetUserID(*u)
	}
	return ru
}

// SetTitle sets the "title" field.
func (ru *ReminderUpdate) SetTitle(s string) *ReminderUpdate {
	ru.mutation.SetTitle(s)
	return ru
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (ru *ReminderUpdate) SetNillableTitle(s *string) *ReminderUpdate {
	if s != nil {
		ru.SetTitle(*s)
	}
	return ru
}

// SetDescription sets the "description" field.
func (ru *ReminderUpdate) SetDescription(s string) *ReminderUpdate {
	ru.mutation.SetDescription(s)
	return ru
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (ru *ReminderUpdate) SetNillableDescription(s *string) *ReminderUpdate {
	if s != nil {
		ru.SetDescription(*s)
	}
	return ru
}

// ClearDescription clears the value of the "description" field.
func (ru *ReminderUpdate) ClearDescription() *ReminderUpdate {
	ru.mutation.ClearDescription()
	return ru
}

// SetType sets the "type" field.
func (ru *ReminderUpdate) SetType(r reminder.Type) *ReminderUpdate {
	ru.mutation.SetType(r)
	return ru
}

// SetNillableType sets the "type" field if the given value is not nil.
func (ru *ReminderUpdate) SetNillableType(r *reminder.Type) *ReminderUpdate {
	if r != nil {
		ru.SetType(*r)
	}
	return ru
}

// SetScheduledDate sets the "scheduled_date" field.
func (ru *ReminderUpdate) SetScheduledDate(t time.Time) *ReminderUpdate {
	ru.mutation.SetScheduledDate(t)
	return ru
}

// SetNillableScheduledDate sets the "scheduled_date" field if the given value is not nil.
func (ru *ReminderUpdate) SetNillableScheduledDate(t *time.Time) *ReminderUpdate {
	if t != nil {
		ru.SetScheduledDate(*t)
	}
	return ru
}

// SetTime sets the "time" field.
func (ru *ReminderUpdate) SetTime(s string) *ReminderUpdate {
	ru.mutation.SetTime(s)
	return ru
}

// SetNillableTime sets the "time" field if the given value is not nil.
func (ru *ReminderUpdate) SetNillableTime(s *string) *ReminderUpdate {
	if s != nil {
		ru.SetTime(*s)
	}
	return ru
}

// SetActive sets the "active" field.
func (ru *ReminderUpdate) SetActive(b bool) *ReminderUpdate {
	ru.mutation.SetActive(b)
	return ru
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (ru *ReminderUpdate) SetNillableActive(b *bool) *ReminderUpdate {
	if b != nil {
		ru.SetActive(*b)
	}
	return ru
}

// SetRecurring sets the "recurring" field.
func (ru *ReminderUpdate) SetRecurring(b bool) *ReminderUpdate {
	ru.mutation.SetRecurring(b)
	return ru
}

// SetNillableRecurring sets the "recurring" field if the given value is not nil.
func (ru *ReminderUpdate) SetNillableRecurring(b *bool) *ReminderUpdate {
	if b != nil {
		ru.SetRecurring(*b)
	}
	return ru
}

// SetRecurringType sets the "recurring_type" field.
func (ru *ReminderUpdate) SetRecurringType(rt reminder.RecurringType) *ReminderUpdate {
	ru.mutation.SetRecurringType(rt)
	return ru
}

// SetNillableRecurringType sets the "recurring_type" field if the given value is not nil.
func (ru *ReminderUpdate) SetNillableRecurringType(rt *reminder.RecurringType) *ReminderUpdate {
	if rt != nil {
		ru.SetRecurringType(*rt)
	}
	return ru
}

// ClearRecurringType clears the value of the "recurring_type" field.
func (ru *ReminderUpdate) ClearRecurringType() *ReminderUpdate {
	ru.mutation.ClearRecurringType()
	return ru
}

// SetUpdatedAt sets the "updated_at" field.
func (ru *ReminderUpdate) SetUpdatedAt(t time.Time) *ReminderUpdate {
	ru.mutation.SetUpdatedAt(t)
	return ru
}

// SetUser sets the "user" edge to the User entity.
func (ru *ReminderUpdate) SetUser(u *User) *ReminderUpdate {
	return ru.SetUserID(u.ID)
}

// Mutation returns the ReminderMutation object of the builder.
func (ru *ReminderUpdate) Mutation() *ReminderMutation {
	return ru.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (ru *ReminderUpdate) ClearUser() *ReminderUpdate {
	ru.mutation.ClearUser()
	return ru
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ru *ReminderUpdate) Save(ctx context.Context) (int, error) {
	ru.defaults()
	return withHooks(ctx, ru.sqlSave, ru.mutation, ru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ru *ReminderUpdate) SaveX(ctx context.Context) int {
	affected, err := ru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ru *ReminderUpdate) Exec(ctx context.Context) error {
	_, err := ru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ru *ReminderUpdate) ExecX(ctx context.Context) {
	if err := ru.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ru *ReminderUpdate) defaults() {
	if _, ok := ru.mutation.UpdatedAt(); !ok {
		v := reminder.UpdateDefaultUpdatedAt()
		ru.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ru *ReminderUpdate) check() error {
	if v, ok := ru.mutation.Title(); ok {
		if err := reminder.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Reminder.title": %w`, err)}
		}
	}
	if v, ok := ru.mutation.Description(); ok {
		if err := reminder.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Reminder.description": %w`, err)}
		}
	}
	if v, ok := ru.mutation.GetType(); ok {
		if err := reminder.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Reminder.type": %w`, err)}
		}
	}
	if v, ok := ru.mutation.Time(); ok {
		if err := reminder.TimeValidator(v); err != nil {
			return &ValidationError{Name: "time", err: fmt.Errorf(`ent: validator failed for field "Reminder.time": %w`, err)}
		}
	}
	if v, ok := ru.mutation.RecurringType(); ok {
		if err := reminder.RecurringTypeValidator(v); err != nil {
			return &ValidationError{Name: "recurring_type", err: fmt.Errorf(`ent: validator failed for field "Reminder.recurring_type": %w`, err)}
		}
	}
	if ru.mutation.UserCleared() && len(ru.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Reminder.user"`)
	}
	return nil
}

func (ru *ReminderUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := ru.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(reminder.Table, reminder.Columns, sqlgraph.NewFieldSpec(reminder.FieldID, field.TypeUUID))
	if ps := ru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ru.mutation.Title(); ok {
		_spec.SetField(reminder.FieldTitle, field.TypeString, value)
	}
	if value, ok := ru.mutation.Description(); ok {
		_spec.SetField(reminder.FieldDescription, field.TypeString, value)
	}
	if ru.mutation.DescriptionCleared() {
		_spec.ClearField(reminder.FieldDescription, field.TypeString)
	}
	if value, ok := ru.mutation.GetType(); ok {
		_spec.SetField(reminder.FieldType, field.TypeEnum, value)
	}
	if value, ok := ru.mutation.ScheduledDate(); ok {
		_spec.SetField(reminder.FieldScheduledDate, field.TypeTime, value)
	}
	if value, ok := ru.mutation.Time(); ok {
		_spec.SetField(reminder.FieldTime, field.TypeString, value)
	}
	if value, ok := ru.mutation.Active(); ok {
		_spec.SetField(reminder.FieldActive, field.TypeBool, value)
	}
	if value, ok := ru.mutation.Recurring(); ok {
		_spec.SetField(reminder.FieldRecurring, field.TypeBool, value)
	}
	if value, ok := ru.mutation.RecurringType(); ok {
		_spec.SetField(reminder.FieldRecurringType, field.TypeEnum, value)
	}
	if ru.mutation.RecurringTypeCleared() {
		_spec.ClearField(reminder.FieldRecurringType, field.TypeEnum)
	}
	if value, ok := ru.mutation.UpdatedAt(); ok {
		_spec.SetField(reminder.FieldUpdatedAt, field.TypeTime, value)
	}
	if ru.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ru.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ru.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reminder.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ru.mutation.done = true
	return n, nil
}

// ReminderUpdateOne is the builder for updating a single Reminder entity.
type ReminderUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReminderMutation
}

// SetUserID sets the "user_id" field.
func (ruo *ReminderUpdateOne) SetUserID(u uuid.UUID) *ReminderUpdateOne {
	ruo.mutation.SetUserID(u)
	return ruo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (ruo *ReminderUpdateOne) SetNillableUserID(u *uuid.UUID) *ReminderUpdateOne {
	if u != nil {
		ruo.SetUserID(*u)
	}
	return ruo
}

// SetTitle sets the "title" field.
func (ruo *ReminderUpdateOne) SetTitle(s string) *ReminderUpdateOne {
	ruo.mutation.SetTitle(s)
	return ruo
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (ruo *ReminderUpdateOne) SetNillableTitle(s *string) *ReminderUpdateOne {
	if s != nil {
		ruo.SetTitle(*s)
	}
	return ruo
}

// SetDescription sets the "description" field.
func (ruo *ReminderUpdateOne) SetDescription(s string) *ReminderUpdateOne {
	ruo.mutation.SetDescription(s)
	return ruo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (ruo *ReminderUpdateOne) SetNillableDescription(s *string) *ReminderUpdateOne {
	if s != nil {
		ruo.SetDescription(*s)
	}
	return ruo
}

// ClearDescription clears the value of the "description" field.
func (ruo *ReminderUpdateOne) ClearDescription() *ReminderUpdateOne {
	ruo.mutation.ClearDescription()
	return ruo
}

// SetType sets the "type" field.
func (ruo *ReminderUpdateOne) SetType(r reminder.Type) *ReminderUpdateOne {
	ruo.mutation.SetType(r)
	return ruo
}

// SetNillableType sets the "type" field if the given value is not nil.
func (ruo *ReminderUpdateOne) SetNillableType(r *reminder.Type) *ReminderUpdateOne {
	if r != nil {
		ruo.SetType(*r)
	}
	return ruo
}

// SetScheduledDate sets the "scheduled_date" field.
func (ruo *ReminderUpdateOne) SetScheduledDate(t time.Time) *ReminderUpdateOne {
	ruo.mutation.SetScheduledDate(t)
	return ruo
}

// SetNillableScheduledDate sets the "scheduled_date" field if the given value is not nil.
func (ruo *ReminderUpdateOne) SetNillableScheduledDate(t *time.Time) *ReminderUpdateOne {
	if t != nil {
		ruo.SetScheduledDate(*t)
	}
	return ruo
}

// SetTime sets the "time" field.
func (ruo *ReminderUpdateOne) SetTime(s string) *ReminderUpdateOne {
	ruo.mutation.SetTime(s)
	return ruo
}

// SetNillableTime sets the "time" field if the given value is not nil.
func (ruo *ReminderUpdateOne) SetNillableTime(s *string) *ReminderUpdateOne {
	if s != nil {
		ruo.SetTime(*s)
	}
	return ruo
}

// SetActive sets the "active" field.
func (ruo *ReminderUpdateOne) SetActive(b bool) *ReminderUpdateOne {
	ruo.mutation.SetActive(b)
	return ruo
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (ruo *ReminderUpdateOne) SetNillableActive(b *bool) *ReminderUpdateOne {
	if b != nil {
		ruo.SetActive(*b)
	}
	return ruo
}

// SetRecurring sets the "recurring" field.
func (ruo *ReminderUpdateOne) SetRecurring(b bool) *ReminderUpdateOne {
	ruo.mutation.SetRecurring(b)
	return ruo
}

// SetNillableRecurring sets the "recurring" field if the given value is not nil.
func (ruo *ReminderUpdateOne) SetNillableRecurring(b *bool) *ReminderUpdateOne {
	if b != nil {
		ruo.SetRecurring(*b)
	}
	return ruo
}

// SetRecurringType sets the "recurring_type" field.
func (ruo *ReminderUpdateOne) SetRecurringType(rt reminder.RecurringType) *ReminderUpdateOne {
	ruo.mutation.SetRecurringType(rt)
	return ruo
}

// SetNillableRecurringType sets the "recurring_type" field if the given value is not nil.
func (ruo *ReminderUpdateOne) SetNillableRecurringType(rt *reminder.RecurringType) *ReminderUpdateOne {
	if rt != nil {
		ruo.SetRecurringType(*rt)
	}
	return ruo
}

// ClearRecurringType clears the value of the "recurring_type" field.
func (ruo *ReminderUpdateOne) ClearRecurringType() *ReminderUpdateOne {
	ruo.mutation.ClearRecurringType()
	return ruo
}

// SetUpdatedAt sets the "updated_at" field.
func (ruo *ReminderUpdateOne) SetUpdatedAt(t time.Time) *ReminderUpdateOne {
	ruo.mutation.SetUpdatedAt(t)
	return ruo
}

// SetUser sets the "user" edge to the User entity.
func (ruo *ReminderUpdateOne) SetUser(u *User) *ReminderUpdateOne {
	return ruo.SetUserID(u.ID)
}

// Mutation returns the ReminderMutation object of the builder.
func (ruo *ReminderUpdateOne) Mutation() *ReminderMutation {
	return ruo.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (ruo *ReminderUpdateOne) ClearUser() *ReminderUpdateOne {
	ruo.mutation.ClearUser()
	return ruo
}

// Where appends a list predicates to the ReminderUpdate builder.
func (ruo *ReminderUpdateOne) Where(ps ...predicate.Reminder) *ReminderUpdateOne {
	ruo.mutation.Where(ps...)
	return ruo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ruo *ReminderUpdateOne) Select(field string, fields ...string) *ReminderUpdateOne {
	ruo.fields = append([]string{field}, fields...)
	return ruo
}

// Save executes the query and returns the updated Reminder entity.
func (ruo *ReminderUpdateOne) Save(ctx context.Context) (*Reminder, error) {
	ruo.defaults()
	return withHooks(ctx, ruo.sqlSave, ruo.mutation, ruo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ruo *ReminderUpdateOne) SaveX(ctx context.Context) *Reminder {
	node, err := ruo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ruo *ReminderUpdateOne) Exec(ctx context.Context) error {
	_, err := ruo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ruo *ReminderUpdateOne) ExecX(ctx context.Context) {
	if err := ruo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ruo *ReminderUpdateOne) defaults() {
	if _, ok := ruo.mutation.UpdatedAt(); !ok {
		v := reminder.UpdateDefaultUpdatedAt()
		ruo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ruo *ReminderUpdateOne) check() error {
	if v, ok := ruo.mutation.Title(); ok {
		if err := reminder.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Reminder.title": %w`, err)}
		}
	}
	if v, ok := ruo.mutation.Description(); ok {
		if err := reminder.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Reminder.description": %w`, err)}
		}
	}
	if v, ok := ruo.mutation.GetType(); ok {
		if err := reminder.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Reminder.type": %w`, err)}
		}
	}
	if v, ok := ruo.mutation.Time(); ok {
		if err := reminder.TimeValidator(v); err != nil {
			return &ValidationError{Name: "time", err: fmt.Errorf(`ent: validator failed for field "Reminder.time": %w`, err)}
		}
	}
	if v, ok := ruo.mutation.RecurringType(); ok {
		if err := reminder.RecurringTypeValidator(v); err != nil {
			return &ValidationError{Name: "recurring_type", err: fmt.Errorf(`ent: validator failed for field "Reminder.recurring_type": %w`, err)}
		}
	}
	if ruo.mutation.UserCleared() && len(ruo.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Reminder.user"`)
	}
	return nil
}

func (ruo *ReminderUpdateOne) sqlSave(ctx context.Context) (_node *Reminder, err error) {
	if err := ruo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reminder.Table, reminder.Columns, sqlgraph.NewFieldSpec(reminder.FieldID, field.TypeUUID))
	id, ok := ruo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Reminder.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ruo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reminder.FieldID)
		for _, f := range fields {
			if !reminder.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reminder.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := ruo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ruo.mutation.Title(); ok {
		_spec.SetField(reminder.FieldTitle, field.TypeString, value)
	}
	if value, ok := ruo.mutation.Description(); ok {
		_spec.SetField(reminder.FieldDescription, field.TypeString, value)
	}
	if ruo.mutation.DescriptionCleared() {
		_spec.ClearField(reminder.FieldDescription, field.TypeString)
	}
	if value, ok := ruo.mutation.GetType(); ok {
		_spec.SetField(reminder.FieldType, field.TypeEnum, value)
	}
	if value, ok := ruo.mutation.ScheduledDate(); ok {
		_spec.SetField(reminder.FieldScheduledDate, field.TypeTime, value)
	}
	if value, ok := ruo.mutation.Time(); ok {
		_spec.SetField(reminder.FieldTime, field.TypeString, value)
	}
	if value, ok := ruo.mutation.Active(); ok {
		_spec.SetField(reminder.FieldActive, field.TypeBool, value)
	}
	if value, ok := ruo.mutation.Recurring(); ok {
		_spec.SetField(reminder.FieldRecurring, field.TypeBool, value)
	}
	if value, ok := ruo.mutation.RecurringType(); ok {
		_spec.SetField(reminder.FieldRecurringType, field.TypeEnum, value)
	}
	if ruo.mutation.RecurringTypeCleared() {
		_spec.ClearField(reminder.FieldRecurringType, field.TypeEnum)
	}
	if value, ok := ruo.mutation.UpdatedAt(); ok {
		_spec.SetField(reminder.FieldUpdatedAt, field.TypeTime, value)
	}
	if ruo.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ruo.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Reminder{config: ruo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ruo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reminder.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ruo.mutation.done = true
	return _node, nil
}
