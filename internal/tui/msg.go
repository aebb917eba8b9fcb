package tui

import (
	"tugasku/internal/domain"
	"tugasku/internal/usecase"
)

// Msg is the interface for all TUI messages.
// All message types implement this sealed interface.
//
//sumtype:decl
type Msg interface {
	sealed()
}

// MsgSplashDone is sent when the splash screen delay elapses.
type MsgSplashDone struct{}

func (MsgSplashDone) sealed() {}

// MsgProfileLoaded is sent when the onboarding profile is loaded.
type MsgProfileLoaded struct {
	Err     error
	Profile domain.Profile
}

func (MsgProfileLoaded) sealed() {}

// MsgSettingsLoaded is sent when the settings record is loaded.
type MsgSettingsLoaded struct {
	Err      error
	Settings domain.Settings
}

func (MsgSettingsLoaded) sealed() {}

// MsgTasksLoaded is sent when the task view is derived.
//
//nolint:govet // Logical field order preferred
type MsgTasksLoaded struct {
	Items   []usecase.TaskItem
	Summary domain.Summary
	Err     error
}

func (MsgTasksLoaded) sealed() {}

// MsgTaskMutated is sent after any task mutation so the view reloads.
type MsgTaskMutated struct {
	Err error
}

func (MsgTaskMutated) sealed() {}

// MsgOnboarded is sent when first-run setup completes.
type MsgOnboarded struct {
	Err     error
	Profile domain.Profile
}

func (MsgOnboarded) sealed() {}

// MsgSettingsSaved is sent when the settings form is persisted.
type MsgSettingsSaved struct {
	Err      error
	Settings domain.Settings
}

func (MsgSettingsSaved) sealed() {}
