// Package tui implements the interactive terminal interface: splash,
// first-run onboarding, the main task list and the add/edit and
// settings forms.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tugasku/internal/app"
	"tugasku/internal/domain"
	"tugasku/internal/usecase"
)

// Screen identifies the active screen.
type Screen int

const (
	ScreenSplash Screen = iota
	ScreenOnboarding
	ScreenMain
	ScreenForm
	ScreenSettings
)

// splashDelay is how long the splash screen shows before handing off.
const splashDelay = 800 * time.Millisecond

// Form field indices. Text fields come first, then the cycled options.
const (
	fieldTitle = iota
	fieldDescription
	fieldDate
	fieldTime
	fieldCategory
	fieldPriority
	fieldLead
	fieldCount
)

// categoryOptions are the selectable form categories, "" = none.
var categoryOptions = []domain.Category{"", domain.CategoryPersonal, domain.CategoryWork, domain.CategorySchool}

// filterOptions are the main-screen category filters.
var filterOptions = []domain.Category{domain.CategoryAll, domain.CategoryPersonal, domain.CategoryWork, domain.CategorySchool}

// Model is the root TUI model.
// Fields are ordered to minimize memory padding.
type Model struct {
	// Dependencies
	container *app.Container

	// Loaded state
	items    []usecase.TaskItem
	summary  domain.Summary
	profile  domain.Profile
	settings domain.Settings
	err      error

	// Components
	keys        KeyMap
	styles      Styles
	searchInput textinput.Model
	nameInput   textinput.Model
	formInputs  [4]textinput.Model

	// Numeric state
	screen       Screen
	cursor       int
	width        int
	height       int
	filterIndex  int
	formFocus    int
	formCategory int
	formPriority int
	formLead     int
	editID       int // 0 = the form creates a new task

	// Boolean state
	tab           domain.Tab
	searching     bool
	loading       bool
	splashDone    bool
	profileLoaded bool
}

// NewModel creates the root model.
func NewModel(c *app.Container) *Model {
	si := textinput.New()
	si.Placeholder = "Search tasks..."
	si.CharLimit = 100

	ni := textinput.New()
	ni.Placeholder = "Your name"
	ni.CharLimit = 50

	m := &Model{
		container:   c,
		screen:      ScreenSplash,
		tab:         domain.TabActive,
		keys:        DefaultKeyMap(),
		styles:      StylesFor(domain.ThemeLight),
		searchInput: si,
		nameInput:   ni,
		settings:    domain.DefaultSettings(),
		loading:     true,
	}

	placeholders := [4]string{"Title", "Description (optional)", "Due date (YYYY-MM-DD)", "Due time (HH:MM, optional)"}
	for i := range m.formInputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 200
		m.formInputs[i] = in
	}

	return m
}

// Init starts the splash timer and the initial loads.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		tea.Tick(splashDelay, func(time.Time) tea.Msg { return MsgSplashDone{} }),
		m.loadProfile(),
		m.loadSettings(),
		m.loadTasks(),
	)
}

// query assembles the current view query from the UI state.
func (m *Model) query() domain.Query {
	return domain.Query{
		Search:   m.searchInput.Value(),
		Category: filterOptions[m.filterIndex],
		Tab:      m.tab,
	}
}

func (m *Model) loadProfile() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.GetProfileUseCase().Execute(context.Background())
		if err != nil {
			return MsgProfileLoaded{Err: err}
		}
		return MsgProfileLoaded{Profile: out.Profile}
	}
}

func (m *Model) loadSettings() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.GetSettingsUseCase().Execute(context.Background())
		if err != nil {
			return MsgSettingsLoaded{Err: err}
		}
		return MsgSettingsLoaded{Settings: out.Settings}
	}
}

func (m *Model) loadTasks() tea.Cmd {
	q := m.query()
	return func() tea.Msg {
		out, err := m.container.ListTasksUseCase().Execute(context.Background(), usecase.ListTasksInput{Query: q})
		if err != nil {
			return MsgTasksLoaded{Err: err}
		}
		return MsgTasksLoaded{Items: out.Items, Summary: out.Summary}
	}
}

func (m *Model) completeOnboarding(name string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.CompleteOnboardingUseCase().Execute(context.Background(), usecase.CompleteOnboardingInput{Name: name})
		if err != nil {
			return MsgOnboarded{Err: err}
		}
		return MsgOnboarded{Profile: out.Profile}
	}
}

func (m *Model) submitForm() tea.Cmd {
	in := usecase.AddTaskInput{
		Title:       m.formInputs[fieldTitle].Value(),
		Description: m.formInputs[fieldDescription].Value(),
		DueDate:     m.formInputs[fieldDate].Value(),
		DueTime:     m.formInputs[fieldTime].Value(),
		Category:    string(categoryOptions[m.formCategory]),
		Priority:    string(domain.AllPriorities()[m.formPriority]),
	}
	if m.formLead > 0 {
		in.ReminderLead = domain.ReminderLeadOptions()[m.formLead-1]
	}
	editID := m.editID

	return func() tea.Msg {
		var err error
		if editID > 0 {
			_, err = m.container.EditTaskUseCase().Execute(context.Background(), usecase.EditTaskInput{
				ID:           editID,
				Title:        in.Title,
				Description:  in.Description,
				DueDate:      in.DueDate,
				DueTime:      in.DueTime,
				Category:     in.Category,
				Priority:     in.Priority,
				ReminderLead: in.ReminderLead,
			})
		} else {
			_, err = m.container.AddTaskUseCase().Execute(context.Background(), in)
		}
		return MsgTaskMutated{Err: err}
	}
}

func (m *Model) toggleSelected() tea.Cmd {
	if m.cursor >= len(m.items) {
		return nil
	}
	id := m.items[m.cursor].Task.ID
	return func() tea.Msg {
		_, err := m.container.ToggleTaskUseCase().Execute(context.Background(), usecase.ToggleTaskInput{TaskID: id})
		return MsgTaskMutated{Err: err}
	}
}

func (m *Model) deleteSelected() tea.Cmd {
	if m.cursor >= len(m.items) {
		return nil
	}
	id := m.items[m.cursor].Task.ID
	return func() tea.Msg {
		_, err := m.container.DeleteTaskUseCase().Execute(context.Background(), usecase.DeleteTaskInput{TaskID: id})
		return MsgTaskMutated{Err: err}
	}
}

func (m *Model) saveSettings() tea.Cmd {
	settings := m.settings
	return func() tea.Msg {
		out, err := m.container.UpdateSettingsUseCase().Execute(context.Background(), usecase.UpdateSettingsInput{Settings: settings})
		if err != nil {
			return MsgSettingsSaved{Err: err}
		}
		return MsgSettingsSaved{Settings: out.Settings}
	}
}

// openForm resets the form, prefilled from task when editing.
func (m *Model) openForm(task *domain.Task) {
	for i := range m.formInputs {
		m.formInputs[i].SetValue("")
		m.formInputs[i].Blur()
	}
	m.formFocus = fieldTitle
	m.formCategory = 0
	m.formPriority = 1 // medium
	m.formLead = 0     // settings default
	m.editID = 0

	if task != nil {
		m.editID = task.ID
		m.formInputs[fieldTitle].SetValue(task.Title)
		m.formInputs[fieldDescription].SetValue(task.Description)
		m.formInputs[fieldDate].SetValue(task.Due.Format("2006-01-02"))
		m.formInputs[fieldTime].SetValue(task.Due.Format("15:04"))
		for i, c := range categoryOptions {
			if task.Category == c {
				m.formCategory = i
			}
		}
		for i, p := range domain.AllPriorities() {
			if task.Priority == p {
				m.formPriority = i
			}
		}
		for i, lead := range domain.ReminderLeadOptions() {
			if task.ReminderLead == lead {
				m.formLead = i + 1
			}
		}
	}

	m.formInputs[fieldTitle].Focus()
	m.screen = ScreenForm
}
