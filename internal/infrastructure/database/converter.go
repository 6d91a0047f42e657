package database

import (
	"github.com/nogueira-gui/conecta-apiserver/internal/domain/entity"
	"github.com/nogueira-gui/conecta-apiserver/internal/ent"
)

// Boundary converters from ent records to domain entities. The domain layer
// never sees ent types.

func toUserEntity(u *ent.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		ID:           u.ID.String(),
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		FullName:     u.FullName,
		LastLoginAt:  u.LastLoginAt,
		DeletedAt:    u.DeletedAt,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func toReminderEntity(r *ent.Reminder) *entity.Reminder {
	if r == nil {
		return nil
	}
	return &entity.Reminder{
		ID:            r.ID.String(),
		UserID:        r.UserID.String(),
		Title:         r.Title,
		Description:   r.Description,
		Type:          entity.ReminderType(r.Type),
		ScheduledDate: r.ScheduledDate,
		Time:          r.Time,
		Active:        r.Active,
		Recurring:     r.Recurring,
		RecurringType: entity.RecurrenceType(r.RecurringType),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func toContactEntity(c *ent.Contact) *entity.Contact {
	if c == nil {
		return nil
	}
	return &entity.Contact{
		ID:           c.ID.String(),
		UserID:       c.UserID.String(),
		Name:         c.Name,
		Phone:        c.Phone,
		Relationship: c.Relationship,
		Favorite:     c.Favorite,
		Emergency:    c.Emergency,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func toTicketEntity(t *ent.Ticket) *entity.SupportTicket {
	if t == nil {
		return nil
	}
	return &entity.SupportTicket{
		ID:          t.ID.String(),
		UserID:      t.UserID.String(),
		Subject:     t.Subject,
		Description: t.Description,
		Category:    t.Category,
		Priority:    entity.TicketPriority(t.Priority),
		Status:      entity.TicketStatus(t.Status),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
