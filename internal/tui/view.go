package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tugasku/internal/domain"
)

// View renders the active screen.
func (m *Model) View() string {
	switch m.screen {
	case ScreenSplash:
		return m.viewSplash()
	case ScreenOnboarding:
		return m.viewOnboarding()
	case ScreenForm:
		return m.viewForm()
	case ScreenSettings:
		return m.viewSettings()
	default:
		return m.viewMain()
	}
}

func (m *Model) viewSplash() string {
	logo := m.styles.Splash.Render("tugasku\nyour tasks, on time")
	if m.width == 0 {
		return logo
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, logo)
}

func (m *Model) viewOnboarding() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Welcome to tugasku"))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render("What should we call you?"))
	b.WriteString("\n")
	b.WriteString(m.styles.Input.Render(m.nameInput.View()))
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(m.styles.Error.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render("enter: continue"))
	return b.String()
}

func (m *Model) viewMain() string {
	var b strings.Builder

	greeting := "Halo!"
	if m.profile.Name != "" {
		greeting = fmt.Sprintf("Halo, %s!", m.profile.Name)
	}
	b.WriteString(m.styles.Greeting.Render(greeting))
	b.WriteString("  ")
	b.WriteString(m.styles.Badge.Render(fmt.Sprintf("due today %d · overdue %d", m.summary.DueToday, m.summary.Overdue)))
	b.WriteString("\n\n")

	tabLabel := "Active"
	if m.tab == domain.TabHistory {
		tabLabel = "History"
	}
	b.WriteString(m.styles.Label.Render(fmt.Sprintf("[%s] category: %s", tabLabel, filterOptions[m.filterIndex].Display())))
	b.WriteString("\n")

	if m.searching || m.searchInput.Value() != "" {
		b.WriteString(m.styles.Input.Render(m.searchInput.View()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString(m.styles.Subtitle.Render("Loading..."))
	case len(m.items) == 0:
		b.WriteString(m.styles.Subtitle.Render("No tasks here. Press n to add one."))
	default:
		for i, item := range m.items {
			b.WriteString(m.renderTaskRow(i, item.Task, item.Urgency))
			b.WriteString("\n")
		}
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(m.err.Error()))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("n: new  e: edit  space: toggle  x: delete  /: search  tab: history  c: category  s: settings  q: quit"))
	return b.String()
}

func (m *Model) renderTaskRow(i int, t *domain.Task, u domain.Urgency) string {
	line := fmt.Sprintf("#%d %s", t.ID, t.Title)
	meta := fmt.Sprintf("  %s · %s", t.Due.Format("Mon 02 Jan 15:04"), t.Priority.Display())
	if t.Category != "" {
		meta += " · " + t.Category.Display()
	}

	title := m.styles.TaskTitle.Render(line)
	if u == domain.UrgencyCompleted {
		title = m.styles.Completed.Render(line)
	}
	row := title + m.styles.TaskMeta.Render(meta) + " " + m.styles.UrgencyStyle(u).Render(u.Display())

	if i == m.cursor {
		return m.styles.Selected.Render(row)
	}
	return m.styles.Normal.Render(row)
}

func (m *Model) viewForm() string {
	var b strings.Builder

	title := "New Task"
	if m.editID > 0 {
		title = fmt.Sprintf("Edit Task #%d", m.editID)
	}
	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n")

	labels := [4]string{"Title", "Description", "Due date", "Due time"}
	for i := range m.formInputs {
		b.WriteString(m.styles.Label.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(m.formInputs[i].View())
		b.WriteString("\n")
	}

	b.WriteString(m.renderOptionRow(fieldCategory, "Category", categoryLabel(categoryOptions[m.formCategory])))
	b.WriteString(m.renderOptionRow(fieldPriority, "Priority", domain.AllPriorities()[m.formPriority].Display()))
	b.WriteString(m.renderOptionRow(fieldLead, "Reminder", m.leadLabel()))

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(m.err.Error()))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("tab/↑↓: move  ←/→: change option  enter: save  esc: cancel"))
	return b.String()
}

func (m *Model) renderOptionRow(field int, label, value string) string {
	row := fmt.Sprintf("%s: < %s >", label, value)
	if m.formFocus == field {
		return m.styles.Selected.Render(row) + "\n"
	}
	return m.styles.Normal.Render(row) + "\n"
}

func (m *Model) leadLabel() string {
	if m.formLead == 0 {
		return fmt.Sprintf("default (%d min)", m.settings.DefaultReminderLead)
	}
	return fmt.Sprintf("%d min before", domain.ReminderLeadOptions()[m.formLead-1])
}

func categoryLabel(c domain.Category) string {
	if c == "" {
		return "none"
	}
	return c.Display()
}

func (m *Model) viewSettings() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Settings"))
	b.WriteString("\n")

	notif := "off"
	if m.settings.NotificationsEnabled {
		notif = "on"
	}
	rows := []string{
		fmt.Sprintf("Theme: < %s >", m.settings.Theme),
		fmt.Sprintf("Default reminder lead: < %d min >", m.settings.DefaultReminderLead),
		fmt.Sprintf("Notifications: < %s >", notif),
	}
	for i, row := range rows {
		if i == m.formFocus {
			b.WriteString(m.styles.Selected.Render(row))
		} else {
			b.WriteString(m.styles.Normal.Render(row))
		}
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(m.err.Error()))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("↑↓: move  ←/→: change  enter: save  esc: back"))
	return b.String()
}
