package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tugasku/internal/domain"
)

// Update handles messages for all screens.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case MsgSplashDone:
		m.splashDone = true
		m.routeFromSplash()
		return m, nil

	case MsgProfileLoaded:
		if msg.Err != nil {
			m.err = msg.Err
		} else {
			m.profile = msg.Profile
		}
		m.profileLoaded = true
		m.routeFromSplash()
		return m, nil

	case MsgSettingsLoaded:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.settings = msg.Settings
		m.styles = StylesFor(msg.Settings.Theme)
		return m, nil

	case MsgTasksLoaded:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.items = msg.Items
		m.summary = msg.Summary
		if m.cursor >= len(m.items) && m.cursor > 0 {
			m.cursor = len(m.items) - 1
		}
		return m, nil

	case MsgTaskMutated:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.screen = ScreenMain
		return m, m.loadTasks()

	case MsgOnboarded:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.profile = msg.Profile
		m.screen = ScreenMain
		return m, nil

	case MsgSettingsSaved:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.settings = msg.Settings
		m.styles = StylesFor(msg.Settings.Theme)
		m.screen = ScreenMain
		return m, m.loadTasks()

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

// routeFromSplash leaves the splash once both the timer has elapsed
// (or a key skipped it) and the profile load has settled.
func (m *Model) routeFromSplash() {
	if m.screen != ScreenSplash || !m.splashDone || !m.profileLoaded {
		return
	}
	if m.profile.Onboarded {
		m.screen = ScreenMain
	} else {
		m.screen = ScreenOnboarding
		m.nameInput.Focus()
	}
}

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case ScreenSplash:
		// Any key skips the splash timer. The screen still waits for
		// the profile: routing on a zero profile would send an
		// onboarded user back through setup.
		m.splashDone = true
		m.routeFromSplash()
		return m, nil
	case ScreenOnboarding:
		return m.updateOnboarding(msg)
	case ScreenForm:
		return m.updateForm(msg)
	case ScreenSettings:
		return m.updateSettings(msg)
	default:
		return m.updateMain(msg)
	}
}

func (m *Model) updateOnboarding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit) && msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Submit):
		return m, m.completeOnboarding(m.nameInput.Value())
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m *Model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Search entry grabs all keys except escape and enter.
	if m.searching {
		switch {
		case key.Matches(msg, m.keys.Back):
			m.searching = false
			m.searchInput.Blur()
			m.searchInput.SetValue("")
			return m, m.loadTasks()
		case key.Matches(msg, m.keys.Submit):
			m.searching = false
			m.searchInput.Blur()
			return m, m.loadTasks()
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, tea.Batch(cmd, m.loadTasks())
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		if m.tab == domain.TabActive {
			m.tab = domain.TabHistory
		} else {
			m.tab = domain.TabActive
		}
		m.cursor = 0
		return m, m.loadTasks()

	case key.Matches(msg, m.keys.Category):
		m.filterIndex = (m.filterIndex + 1) % len(filterOptions)
		m.cursor = 0
		return m, m.loadTasks()

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.searchInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Add):
		m.openForm(nil)
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		if m.cursor < len(m.items) {
			m.openForm(m.items[m.cursor].Task)
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		return m, m.toggleSelected()

	case key.Matches(msg, m.keys.Delete):
		return m, m.deleteSelected()

	case key.Matches(msg, m.keys.Settings):
		m.formFocus = 0
		m.screen = ScreenSettings
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadTasks()
	}

	return m, nil
}

func (m *Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.screen = ScreenMain
		return m, nil

	case msg.String() == "ctrl+c":
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		return m, m.submitForm()

	case msg.String() == "tab", msg.String() == "down":
		m.setFormFocus((m.formFocus + 1) % fieldCount)
		return m, nil

	case msg.String() == "shift+tab", msg.String() == "up":
		m.setFormFocus((m.formFocus + fieldCount - 1) % fieldCount)
		return m, nil
	}

	// Cycled option rows react to left/right.
	if m.formFocus >= fieldCategory {
		switch {
		case key.Matches(msg, m.keys.Left):
			m.cycleFormOption(-1)
			return m, nil
		case key.Matches(msg, m.keys.Right):
			m.cycleFormOption(1)
			return m, nil
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(msg)
	return m, cmd
}

func (m *Model) setFormFocus(focus int) {
	if m.formFocus < fieldCategory {
		m.formInputs[m.formFocus].Blur()
	}
	m.formFocus = focus
	if m.formFocus < fieldCategory {
		m.formInputs[m.formFocus].Focus()
	}
}

func (m *Model) cycleFormOption(dir int) {
	switch m.formFocus {
	case fieldCategory:
		n := len(categoryOptions)
		m.formCategory = (m.formCategory + dir + n) % n
	case fieldPriority:
		n := len(domain.AllPriorities())
		m.formPriority = (m.formPriority + dir + n) % n
	case fieldLead:
		n := len(domain.ReminderLeadOptions()) + 1 // 0 = settings default
		m.formLead = (m.formLead + dir + n) % n
	}
}

func (m *Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	const settingsRows = 3

	switch {
	case key.Matches(msg, m.keys.Back):
		m.screen = ScreenMain
		return m, m.loadSettings()

	case msg.String() == "ctrl+c":
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		return m, m.saveSettings()

	case key.Matches(msg, m.keys.Up):
		m.formFocus = (m.formFocus + settingsRows - 1) % settingsRows
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.formFocus = (m.formFocus + 1) % settingsRows
		return m, nil

	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Right):
		m.cycleSetting()
		return m, nil
	}

	return m, nil
}

// cycleSetting flips the focused settings row. Every option set here
// is small, so left and right both advance.
func (m *Model) cycleSetting() {
	switch m.formFocus {
	case 0:
		if m.settings.Theme == domain.ThemeLight {
			m.settings.Theme = domain.ThemeDark
		} else {
			m.settings.Theme = domain.ThemeLight
		}
	case 1:
		opts := domain.ReminderLeadOptions()
		next := 0
		for i, lead := range opts {
			if m.settings.DefaultReminderLead == lead {
				next = (i + 1) % len(opts)
			}
		}
		m.settings.DefaultReminderLead = opts[next]
	case 2:
		m.settings.NotificationsEnabled = !m.settings.NotificationsEnabled
	}
}
