package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tugasku/internal/app"
	"tugasku/internal/domain"
	"tugasku/internal/testutil"
)

func newTestModel(repo *testutil.MockTaskRepository, profile domain.Profile) *Model {
	container := app.NewWithDeps(
		domain.NewDefaultConfig(),
		repo,
		testutil.NewMockSettingsStore(),
		&testutil.MockProfileStore{Profile: profile},
		testutil.NewMockNotifier(),
		&testutil.MockClock{NowTime: time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)},
		testutil.NopLogger{},
	)
	return NewModel(container)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestModel_SplashRoutesToOnboardingOnFirstRun(t *testing.T) {
	m := newTestModel(testutil.NewMockTaskRepository(), domain.Profile{})

	next, _ := m.Update(MsgProfileLoaded{Profile: domain.Profile{}})
	next, _ = next.(*Model).Update(MsgSplashDone{})

	model := next.(*Model)
	assert.Equal(t, ScreenOnboarding, model.screen)
}

func TestModel_SplashWaitsForProfileBeforeRouting(t *testing.T) {
	profile := domain.Profile{Name: "Sari", Onboarded: true}
	m := newTestModel(testutil.NewMockTaskRepository(), profile)

	// Timer fires before the profile load settles. Routing now would
	// send an onboarded user to onboarding on a zero profile.
	next, _ := m.Update(MsgSplashDone{})
	model := next.(*Model)
	assert.Equal(t, ScreenSplash, model.screen)

	next, _ = model.Update(MsgProfileLoaded{Profile: profile})
	assert.Equal(t, ScreenMain, next.(*Model).screen)
}

func TestModel_SplashKeySkipStillWaitsForProfile(t *testing.T) {
	profile := domain.Profile{Name: "Sari", Onboarded: true}
	m := newTestModel(testutil.NewMockTaskRepository(), profile)

	next, _ := m.Update(keyMsg("x"))
	model := next.(*Model)
	assert.Equal(t, ScreenSplash, model.screen, "key skip must not route on an unloaded profile")

	next, _ = model.Update(MsgProfileLoaded{Profile: profile})
	assert.Equal(t, ScreenMain, next.(*Model).screen)
}

func TestModel_SplashRoutesOnProfileLoadError(t *testing.T) {
	m := newTestModel(testutil.NewMockTaskRepository(), domain.Profile{})

	next, _ := m.Update(MsgSplashDone{})
	next, _ = next.(*Model).Update(MsgProfileLoaded{Err: assert.AnError})

	// A failed load still leaves the splash rather than hanging.
	model := next.(*Model)
	assert.Equal(t, ScreenOnboarding, model.screen)
	assert.Error(t, model.err)
}

func TestModel_SplashRoutesToMainWhenOnboarded(t *testing.T) {
	m := newTestModel(testutil.NewMockTaskRepository(), domain.Profile{Name: "Sari", Onboarded: true})

	// Profile load completes before the splash timer.
	next, _ := m.Update(MsgProfileLoaded{Profile: domain.Profile{Name: "Sari", Onboarded: true}})
	next, _ = next.(*Model).Update(MsgSplashDone{})

	model := next.(*Model)
	assert.Equal(t, ScreenMain, model.screen)
}

func TestModel_OnboardingSubmitCompletesSetup(t *testing.T) {
	m := newTestModel(testutil.NewMockTaskRepository(), domain.Profile{})
	m.screen = ScreenOnboarding
	m.nameInput.Focus()
	m.nameInput.SetValue("Sari")

	_, cmd := m.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	msg := cmd()

	onboarded, ok := msg.(MsgOnboarded)
	require.True(t, ok)
	require.NoError(t, onboarded.Err)
	assert.Equal(t, "Sari", onboarded.Profile.Name)

	next, _ := m.Update(onboarded)
	assert.Equal(t, ScreenMain, next.(*Model).screen)
}

func TestModel_OnboardingRejectsEmptyName(t *testing.T) {
	m := newTestModel(testutil.NewMockTaskRepository(), domain.Profile{})
	m.screen = ScreenOnboarding

	_, cmd := m.Update(keyMsg("enter"))
	require.NotNil(t, cmd)

	msg := cmd().(MsgOnboarded)
	assert.ErrorIs(t, msg.Err, domain.ErrEmptyName)

	next, _ := m.Update(msg)
	assert.Equal(t, ScreenOnboarding, next.(*Model).screen, "stays on onboarding")
}

func TestModel_TabSwitchReloadsTasks(t *testing.T) {
	m := newTestModel(testutil.NewMockTaskRepository(), domain.Profile{Onboarded: true})
	m.screen = ScreenMain

	next, cmd := m.Update(keyMsg("tab"))

	model := next.(*Model)
	assert.Equal(t, domain.TabHistory, model.tab)
	require.NotNil(t, cmd)

	loaded, ok := cmd().(MsgTasksLoaded)
	require.True(t, ok)
	assert.NoError(t, loaded.Err)
}

func TestModel_ToggleSelectedTask(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	repo.Tasks[1] = &domain.Task{
		ID: 1, Title: "Toggle me", Priority: domain.PriorityMedium,
		Due: now.Add(time.Hour), ReminderLead: 30, Created: now,
	}
	m := newTestModel(repo, domain.Profile{Onboarded: true})
	m.screen = ScreenMain

	// Load the view first so the cursor points at a task.
	loaded := m.loadTasks()()
	next, _ := m.Update(loaded)
	m = next.(*Model)
	require.Len(t, m.items, 1)

	_, cmd := m.Update(keyMsg(" "))
	require.NotNil(t, cmd)
	mutated := cmd().(MsgTaskMutated)
	require.NoError(t, mutated.Err)
	assert.True(t, repo.Tasks[1].Completed)
}

func TestModel_FormSubmitCreatesTask(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	m := newTestModel(repo, domain.Profile{Onboarded: true})
	m.screen = ScreenMain

	next, _ := m.Update(keyMsg("n"))
	m = next.(*Model)
	require.Equal(t, ScreenForm, m.screen)

	m.formInputs[fieldTitle].SetValue("From the form")
	m.formInputs[fieldDate].SetValue("2026-03-12")

	_, cmd := m.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	mutated := cmd().(MsgTaskMutated)
	require.NoError(t, mutated.Err)

	task := repo.Tasks[1]
	require.NotNil(t, task)
	assert.Equal(t, "From the form", task.Title)
	assert.Equal(t, domain.PriorityMedium, task.Priority)
}

func TestModel_FormValidationErrorStaysOnForm(t *testing.T) {
	m := newTestModel(testutil.NewMockTaskRepository(), domain.Profile{Onboarded: true})
	m.openForm(nil)

	// No title, no due date.
	_, cmd := m.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	mutated := cmd().(MsgTaskMutated)
	require.Error(t, mutated.Err)

	next, _ := m.Update(mutated)
	model := next.(*Model)
	assert.Equal(t, ScreenForm, model.screen)
	assert.Error(t, model.err)
}

func TestModel_EditPrefillsForm(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	task := &domain.Task{
		ID: 3, Title: "Prefilled", Category: domain.CategoryWork,
		Priority: domain.PriorityHigh, Due: time.Date(2026, 3, 12, 9, 0, 0, 0, time.Local),
		ReminderLead: 60, Created: now,
	}
	m := newTestModel(testutil.NewMockTaskRepository(), domain.Profile{Onboarded: true})

	m.openForm(task)

	assert.Equal(t, 3, m.editID)
	assert.Equal(t, "Prefilled", m.formInputs[fieldTitle].Value())
	assert.Equal(t, "2026-03-12", m.formInputs[fieldDate].Value())
	assert.Equal(t, "09:00", m.formInputs[fieldTime].Value())
	assert.Equal(t, domain.CategoryWork, categoryOptions[m.formCategory])
	assert.Equal(t, domain.PriorityHigh, domain.AllPriorities()[m.formPriority])
	assert.Equal(t, 60, domain.ReminderLeadOptions()[m.formLead-1])
}

func TestModel_SettingsCycleAndSave(t *testing.T) {
	m := newTestModel(testutil.NewMockTaskRepository(), domain.Profile{Onboarded: true})
	m.screen = ScreenMain

	next, _ := m.Update(keyMsg("s"))
	m = next.(*Model)
	require.Equal(t, ScreenSettings, m.screen)

	// First row is the theme.
	m.cycleSetting()
	assert.Equal(t, domain.ThemeDark, m.settings.Theme)

	_, cmd := m.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	saved := cmd().(MsgSettingsSaved)
	require.NoError(t, saved.Err)
	assert.Equal(t, domain.ThemeDark, saved.Settings.Theme)
}

func TestModel_ViewRendersGreetingAndSummary(t *testing.T) {
	m := newTestModel(testutil.NewMockTaskRepository(), domain.Profile{Onboarded: true})
	m.screen = ScreenMain
	m.profile = domain.Profile{Name: "Sari", Onboarded: true}
	m.summary = domain.Summary{DueToday: 2, Overdue: 1}
	m.loading = false

	out := m.View()

	assert.Contains(t, out, "Halo, Sari!")
	assert.Contains(t, out, "due today 2")
	assert.Contains(t, out, "overdue 1")
}
