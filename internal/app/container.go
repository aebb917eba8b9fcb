// Package app provides the dependency injection container for the
// application.
package app

import (
	"path/filepath"

	"tugasku/internal/domain"
	"tugasku/internal/infra/config"
	"tugasku/internal/infra/executor"
	"tugasku/internal/infra/jsonstore"
	"tugasku/internal/infra/logging"
	"tugasku/internal/infra/notify"
	"tugasku/internal/infra/sqlitestore"
	"tugasku/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for
// use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks            domain.TaskRepository
	StoreInitializer domain.StoreInitializer
	Settings         domain.SettingsStore
	Profile          domain.ProfileStore
	Notifier         domain.Notifier
	Clock            domain.Clock
	Logger           domain.Logger

	// Concrete infra shared with the CLI layer
	Sender notify.Sender
	Config *domain.Config
}

// New creates a new Container from the user's configuration.
func New() (*Container, error) {
	return NewWithLoader(config.NewLoader())
}

// NewWithLoader creates a Container using the given config loader.
func NewWithLoader(loader domain.ConfigLoader) (*Container, error) {
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	// Create task repository based on config
	var taskRepo domain.TaskRepository
	var storeInit domain.StoreInitializer
	if cfg.Tasks.Store == domain.StoreSQLite {
		sqlStore, err := sqlitestore.Open(filepath.Join(cfg.DataDir, "tasks.db"))
		if err != nil {
			return nil, err
		}
		taskRepo = sqlStore
		storeInit = sqlStore
	} else {
		jsonStore := jsonstore.New(filepath.Join(cfg.DataDir, "tasks.json"))
		taskRepo = jsonStore
		storeInit = jsonStore
	}

	logger := logging.New(cfg.DataDir, logging.ParseLevel(cfg.Log.Level))
	clock := domain.RealClock{}

	sender := notify.NewDesktopSender(executor.NewClient(), cfg.Notify.Command)
	notifier := notify.NewScheduler(sender, clock, logger)

	return &Container{
		Tasks:            taskRepo,
		StoreInitializer: storeInit,
		Settings:         jsonstore.NewSettingsStore(filepath.Join(cfg.DataDir, "settings.json")),
		Profile:          jsonstore.NewProfileStore(filepath.Join(cfg.DataDir, "profile.json")),
		Notifier:         notifier,
		Clock:            clock,
		Logger:           logger,
		Sender:           sender,
		Config:           cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for
// testing.
func NewWithDeps(
	cfg *domain.Config,
	tasks domain.TaskRepository,
	settings domain.SettingsStore,
	profile domain.ProfileStore,
	notifier domain.Notifier,
	clock domain.Clock,
	logger domain.Logger,
) *Container {
	return &Container{
		Tasks:    tasks,
		Settings: settings,
		Profile:  profile,
		Notifier: notifier,
		Clock:    clock,
		Logger:   logger,
		Config:   cfg,
	}
}

// Initialize creates the data store when it does not exist yet.
func (c *Container) Initialize() error {
	if c.StoreInitializer == nil {
		return nil
	}
	return c.StoreInitializer.Initialize()
}

// UseCase factory methods

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Tasks, c.Settings, c.Notifier, c.Clock, c.Logger)
}

// EditTaskUseCase returns a new EditTask use case.
func (c *Container) EditTaskUseCase() *usecase.EditTask {
	return usecase.NewEditTask(c.Tasks, c.Settings, c.Notifier, c.Clock, c.Logger)
}

// ToggleTaskUseCase returns a new ToggleTask use case.
func (c *Container) ToggleTaskUseCase() *usecase.ToggleTask {
	return usecase.NewToggleTask(c.Tasks, c.Settings, c.Notifier, c.Clock, c.Logger, c.Config.Notify.RescheduleOnReopen)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Tasks, c.Notifier, c.Logger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks, c.Clock)
}

// GetTaskUseCase returns a new GetTask use case.
func (c *Container) GetTaskUseCase() *usecase.GetTask {
	return usecase.NewGetTask(c.Tasks, c.Clock)
}

// GetSettingsUseCase returns a new GetSettings use case.
func (c *Container) GetSettingsUseCase() *usecase.GetSettings {
	return usecase.NewGetSettings(c.Settings)
}

// UpdateSettingsUseCase returns a new UpdateSettings use case.
func (c *Container) UpdateSettingsUseCase() *usecase.UpdateSettings {
	return usecase.NewUpdateSettings(c.Settings, c.Tasks, c.Notifier, c.Clock, c.Logger)
}

// GetProfileUseCase returns a new GetProfile use case.
func (c *Container) GetProfileUseCase() *usecase.GetProfile {
	return usecase.NewGetProfile(c.Profile)
}

// CompleteOnboardingUseCase returns a new CompleteOnboarding use case.
func (c *Container) CompleteOnboardingUseCase() *usecase.CompleteOnboarding {
	return usecase.NewCompleteOnboarding(c.Profile, c.Logger)
}

// ExportTasksUseCase returns a new ExportTasks use case.
func (c *Container) ExportTasksUseCase() *usecase.ExportTasks {
	return usecase.NewExportTasks(c.Tasks)
}

// ImportTasksUseCase returns a new ImportTasks use case.
func (c *Container) ImportTasksUseCase() *usecase.ImportTasks {
	return usecase.NewImportTasks(c.Tasks, c.Settings, c.Notifier, c.Clock, c.Logger)
}

// ScanRemindersUseCase returns a new ScanReminders use case.
func (c *Container) ScanRemindersUseCase() *usecase.ScanReminders {
	return usecase.NewScanReminders(c.Tasks, c.Settings)
}
