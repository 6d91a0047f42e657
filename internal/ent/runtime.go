// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/nogueira-gui/conecta-apiserver/internal/ent/contact"
	"github.com/nogueira-gui/conecta-apiserver/internal/ent/reminder"
	"github.com/nogueira-gui/conecta-apiserver/internal/ent/schema"
	"github.com/nogueira-gui/conecta-apiserver/internal/ent/ticket"
	"github.com/nogueira-gui/conecta-apiserver/internal/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	contactFields := schema.Contact{}.Fields()
	_ = contactFields
	// contactDescName is the schema descriptor for name field.
	contactDescName := contactFields[2].Descriptor()
	// contact.NameValidator is a validator for the "name" field. It is called by the builders before save.
	contact.NameValidator = func() func(string) error {
		validators := contactDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// contactDescPhone is the schema descriptor for phone field.
	contactDescPhone := contactFields[3].Descriptor()
	// contact.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	contact.PhoneValidator = func() func(string) error {
		validators := contactDescPhone.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(phone string) error {
			for _, fn := range fns {
				if err := fn(phone); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// contactDescRelationship is the schema descriptor for relationship field.
	contactDescRelationship := contactFields[4].Descriptor()
	// contact.RelationshipValidator is a validator for the "relationship" field. It is called by the builders before save.
	contact.RelationshipValidator = contactDescRelationship.Validators[0].(func(string) error)
	// contactDescFavorite is the schema descriptor for favorite field.
	contactDescFavorite := contactFields[5].Descriptor()
	// contact.DefaultFavorite holds the default value on creation for the favorite field.
	contact.DefaultFavorite = contactDescFavorite.Default.(bool)
	// contactDescEmergency is the schema descriptor for emergency field.
	contactDescEmergency := contactFields[6].Descriptor()
	// contact.DefaultEmergency holds the default value on creation for the emergency field.
	contact.DefaultEmergency = contactDescEmergency.Default.(bool)
	// contactDescCreatedAt is the schema descriptor for created_at field.
	contactDescCreatedAt := contactFields[7].Descriptor()
	// contact.DefaultCreatedAt holds the default value on creation for the created_at field.
	contact.DefaultCreatedAt = contactDescCreatedAt.Default.(func() time.Time)
	// contactDescUpdatedAt is the schema descriptor for updated_at field.
	contactDescUpdatedAt := contactFields[8].Descriptor()
	// contact.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	contact.DefaultUpdatedAt = contactDescUpdatedAt.Default.(func() time.Time)
	// contact.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	contact.UpdateDefaultUpdatedAt = contactDescUpdatedAt.UpdateDefault.(func() time.Time)
	// contactDescID is the schema descriptor for id field.
	contactDescID := contactFields[0].Descriptor()
	// contact.DefaultID holds the default value on creation for the id field.
	contact.DefaultID = contactDescID.Default.(func() uuid.UUID)
	reminderFields := schema.Reminder{}.Fields()
	_ = reminderFields
	// reminderDescTitle is the schema descriptor for title field.
	reminderDescTitle := reminderFields[2].Descriptor()
	// reminder.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	reminder.TitleValidator = func() func(string) error {
		validators := reminderDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// reminderDescDescription is the schema descriptor for description field.
	reminderDescDescription := reminderFields[3].Descriptor()
	// reminder.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	reminder.DescriptionValidator = reminderDescDescription.Validators[0].(func(string) error)
	// reminderDescTime is the schema descriptor for time field.
	reminderDescTime := reminderFields[6].Descriptor()
	// reminder.TimeValidator is a validator for the "time" field. It is called by the builders before save.
	reminder.TimeValidator = reminderDescTime.Validators[0].(func(string) error)
	// reminderDescActive is the schema descriptor for active field.
	reminderDescActive := reminderFields[7].Descriptor()
	// reminder.DefaultActive holds the default value on creation for the active field.
	reminder.DefaultActive = reminderDescActive.Default.(bool)
	// reminderDescRecurring is the schema descriptor for recurring field.
	reminderDescRecurring := reminderFields[8].Descriptor()
	// reminder.DefaultRecurring holds the default value on creation for the recurring field.
	reminder.DefaultRecurring = reminderDescRecurring.Default.(bool)
	// reminderDescCreatedAt is the schema descriptor for created_at field.
	reminderDescCreatedAt := reminderFields[10].Descriptor()
	// reminder.DefaultCreatedAt holds the default value on creation for the created_at field.
	reminder.DefaultCreatedAt = reminderDescCreatedAt.Default.(func() time.Time)
	// reminderDescUpdatedAt is the schema descriptor for updated_at field.
	reminderDescUpdatedAt := reminderFields[11].Descriptor()
	// reminder.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	reminder.DefaultUpdatedAt = reminderDescUpdatedAt.Default.(func() time.Time)
	// reminder.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	reminder.UpdateDefaultUpdatedAt = reminderDescUpdatedAt.UpdateDefault.(func() time.Time)
	// reminderDescID is the schema descriptor for id field.
	reminderDescID := reminderFields[0].Descriptor()
	// reminder.DefaultID holds the default value on creation for the id field.
	reminder.DefaultID = reminderDescID.Default.(func() uuid.UUID)
	ticketFields := schema.Ticket{}.Fields()
	_ = ticketFields
	// ticketDescSubject is the schema descriptor for subject field.
	ticketDescSubject := ticketFields[2].Descriptor()
	// ticket.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	ticket.SubjectValidator = func() func(string) error {
		validators := ticketDescSubject.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(subject string) error {
			for _, fn := range fns {
				if err := fn(subject); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// ticketDescDescription is the schema descriptor for description field.
	ticketDescDescription := ticketFields[3].Descriptor()
	// ticket.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	ticket.DescriptionValidator = ticketDescDescription.Validators[0].(func(string) error)
	// ticketDescCategory is the schema descriptor for category field.
	ticketDescCategory := ticketFields[4].Descriptor()
	// ticket.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	ticket.CategoryValidator = ticketDescCategory.Validators[0].(func(string) error)
	// ticketDescCreatedAt is the schema descriptor for created_at field.
	ticketDescCreatedAt := ticketFields[7].Descriptor()
	// ticket.DefaultCreatedAt holds the default value on creation for the created_at field.
	ticket.DefaultCreatedAt = ticketDescCreatedAt.Default.(func() time.Time)
	// ticketDescUpdatedAt is the schema descriptor for updated_at field.
	ticketDescUpdatedAt := ticketFields[8].Descriptor()
	// ticket.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	ticket.DefaultUpdatedAt = ticketDescUpdatedAt.Default.(func() time.Time)
	// ticket.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	ticket.UpdateDefaultUpdatedAt = ticketDescUpdatedAt.UpdateDefault.(func() time.Time)
	// ticketDescID is the schema descriptor for id field.
	ticketDescID := ticketFields[0].Descriptor()
	// ticket.DefaultID holds the default value on creation for the id field.
	ticket.DefaultID = ticketDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[1].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = func() func(string) error {
		validators := userDescUsername.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(username string) error {
			for _, fn := range fns {
				if err := fn(username); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[2].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescFullName is the schema descriptor for full_name field.
	userDescFullName := userFields[3].Descriptor()
	// user.FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	user.FullNameValidator = func() func(string) error {
		validators := userDescFullName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(full_name string) error {
			for _, fn := range fns {
				if err := fn(full_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[6].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[7].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
