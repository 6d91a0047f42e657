package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/fatih/color"

	"github.com/nogueira-gui/conecta-apiserver/internal/cli/types"
)

var (
	// Tree node styles
	reminderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)  // Cyan
	keyStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))            // Gray
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true) // Pink

	// Summary box style
	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			MarginTop(1)
)

// RenderReminderTree renders the caller's reminders as a tree, one node per reminder
func RenderReminderTree(reminders []types.Reminder) string {
	if len(reminders) == 0 {
		return keyStyle.Render("No reminders found")
	}

	var output string
	for i, r := range reminders {
		node := buildReminderNode(r)
		output += node.String()
		if i < len(reminders)-1 {
			output += "\n"
		}
	}

	return output
}

// buildReminderNode creates a tree node for a single reminder
func buildReminderNode(r types.Reminder) *tree.Tree {
	label := fmt.Sprintf("%s %s",
		reminderStyle.Render(r.Title),
		keyStyle.Render(fmt.Sprintf("(%s)", r.ID)),
	)

	node := tree.New().Root(label)

	node.Child(formatKeyValue("Type:", renderReminderType(r.Type)))
	node.Child(formatKeyValue("When:", fmt.Sprintf("%s %s", r.ScheduledDate, r.Time)))

	if r.Recurring {
		recurrence := r.RecurringType
		if recurrence == "" {
			recurrence = "daily"
		}
		node.Child(formatKeyValue("Repeats:", recurrence))
	}

	status := color.GreenString("active")
	if !r.Active {
		status = keyStyle.Render("inactive")
	}
	node.Child(formatKeyValue("Status:", status))

	if r.Description != "" {
		node.Child(formatKeyValue("Notes:", r.Description))
	}

	return node
}

// renderReminderType colors the reminder type by category
func renderReminderType(reminderType string) string {
	switch reminderType {
	case "medication":
		return color.MagentaString(reminderType)
	case "appointment":
		return color.BlueString(reminderType)
	case "exam":
		return color.YellowString(reminderType)
	default:
		return reminderType
	}
}

// RenderContactList renders contacts as an aligned list
func RenderContactList(contacts []types.Contact) string {
	if len(contacts) == 0 {
		return keyStyle.Render("No contacts found")
	}

	// First pass: calculate column widths
	maxNameLen := 0
	maxPhoneLen := 0
	maxRelLen := 0
	for _, c := range contacts {
		if len(c.Name) > maxNameLen {
			maxNameLen = len(c.Name)
		}
		if len(c.Phone) > maxPhoneLen {
			maxPhoneLen = len(c.Phone)
		}
		if len(c.Relationship) > maxRelLen {
			maxRelLen = len(c.Relationship)
		}
	}

	// Second pass: render with dynamic widths
	var output string
	for _, c := range contacts {
		var marks string
		if c.Emergency {
			marks += " " + color.RedString("[emergency]")
		}
		if c.Favorite {
			marks += " " + color.YellowString("★")
		}

		output += fmt.Sprintf("  • %-*s  |  %-*s  |  %-*s%s\n",
			maxNameLen, c.Name,
			maxPhoneLen, c.Phone,
			maxRelLen, c.Relationship,
			marks)
	}

	return output
}

// formatKeyValue formats a key-value pair
func formatKeyValue(key, value string) string {
	return fmt.Sprintf("%s %s",
		keyStyle.Render(key),
		value,
	)
}

// RenderReminderSummary renders a summary line for the reminders list
func RenderReminderSummary(count int) string {
	label := "reminders"
	if count == 1 {
		label = "reminder"
	}

	summary := fmt.Sprintf("Total: %s %s",
		highlightStyle.Render(fmt.Sprintf("%d", count)),
		keyStyle.Render(label),
	)

	return summaryStyle.Render(summary)
}

// RenderContactSummary renders a summary line for the contacts list
func RenderContactSummary(count, emergencyCount int) string {
	label := "contacts"
	if count == 1 {
		label = "contact"
	}

	summary := fmt.Sprintf("Total: %s %s, %s emergency",
		highlightStyle.Render(fmt.Sprintf("%d", count)),
		keyStyle.Render(label),
		highlightStyle.Render(fmt.Sprintf("%d", emergencyCount)),
	)

	return summaryStyle.Render(summary)
}
