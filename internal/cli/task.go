package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"tugasku/internal/app"
	"tugasku/internal/domain"
	"tugasku/internal/usecase"
)

// newAddCommand creates the add command for creating tasks.
func newAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Description string
		Due         string
		At          string
		Category    string
		Priority    string
		Lead        int
	}

	cmd := &cobra.Command{
		Use:     "add <title>",
		Short:   "Create a new task",
		GroupID: groupTask,
		Long: `Create a new task with a deadline.

Examples:
  # Due at the end of the day
  tugasku add "File taxes" --due 2026-04-01

  # Due at a specific time, reminded an hour ahead
  tugasku add "Team sync" --due 2026-04-01 --at 14:00 --lead 60

  # Categorized and prioritized
  tugasku add "Study for exam" --due 2026-04-03 --category school --priority high`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.Initialize(); err != nil {
				return err
			}

			out, err := c.AddTaskUseCase().Execute(cmd.Context(), usecase.AddTaskInput{
				Title:        args[0],
				Description:  opts.Description,
				DueDate:      opts.Due,
				DueTime:      opts.At,
				Category:     opts.Category,
				Priority:     opts.Priority,
				ReminderLead: opts.Lead,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task #%d (due %s)\n",
				out.Task.ID, out.Task.Due.Format("2006-01-02 15:04"))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Description, "body", "", "Task description")
	cmd.Flags().StringVar(&opts.Due, "due", "", "Due date, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&opts.At, "at", "", "Due time, HH:MM (default: end of day)")
	cmd.Flags().StringVar(&opts.Category, "category", "", "Category: personal, work or school")
	cmd.Flags().StringVar(&opts.Priority, "priority", "", "Priority: low, medium or high (default: medium)")
	cmd.Flags().IntVar(&opts.Lead, "lead", 0, "Reminder lead in minutes: 5, 15, 30, 60 or 1440")
	_ = cmd.MarkFlagRequired("due")

	return cmd
}

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Search   string
		Category string
		History  bool
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		GroupID: groupTask,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.Initialize(); err != nil {
				return err
			}

			tab := domain.TabActive
			if opts.History {
				tab = domain.TabHistory
			}
			out, err := c.ListTasksUseCase().Execute(cmd.Context(), usecase.ListTasksInput{
				Query: domain.Query{
					Search:   opts.Search,
					Category: domain.Category(opts.Category),
					Tab:      tab,
				},
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Due today: %d  Overdue: %d\n\n", out.Summary.DueToday, out.Summary.Overdue)
			if len(out.Items) == 0 {
				_, _ = fmt.Fprintln(w, "No tasks.")
				return nil
			}

			tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "ID\tTITLE\tDUE\tPRIORITY\tCATEGORY\tSTATUS")
			for _, item := range out.Items {
				t := item.Task
				_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
					t.ID,
					t.Title,
					t.Due.Format("2006-01-02 15:04"),
					t.Priority.Display(),
					t.Category.Display(),
					item.Urgency.Display(),
				)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&opts.Search, "search", "", "Filter by title or description substring")
	cmd.Flags().StringVar(&opts.Category, "category", "", "Filter by category (all, personal, work, school)")
	cmd.Flags().BoolVar(&opts.History, "history", false, "Show completed tasks instead of open ones")

	return cmd
}

// newShowCommand creates the show command.
func newShowCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "show <id>",
		Short:   "Show task details",
		GroupID: groupTask,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.Initialize(); err != nil {
				return err
			}
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			out, err := c.GetTaskUseCase().Execute(cmd.Context(), usecase.GetTaskInput{TaskID: id})
			if err != nil {
				return err
			}

			t := out.Task
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Task #%d: %s\n", t.ID, t.Title)
			if t.Description != "" {
				_, _ = fmt.Fprintf(w, "  %s\n", t.Description)
			}
			_, _ = fmt.Fprintf(w, "  Due:      %s (%s)\n", t.Due.Format("2006-01-02 15:04"), out.Urgency.Display())
			_, _ = fmt.Fprintf(w, "  Priority: %s\n", t.Priority.Display())
			if t.Category != "" {
				_, _ = fmt.Fprintf(w, "  Category: %s\n", t.Category.Display())
			}
			_, _ = fmt.Fprintf(w, "  Reminder: %s before due\n", (time.Duration(t.ReminderLead) * time.Minute).String())
			_, _ = fmt.Fprintf(w, "  Created:  %s\n", t.Created.Format("2006-01-02 15:04"))
			return nil
		},
	}
	return cmd
}

// newEditCommand creates the edit command.
func newEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Due         string
		At          string
		Category    string
		Priority    string
		Lead        int
	}

	cmd := &cobra.Command{
		Use:     "edit <id>",
		Short:   "Edit a task",
		GroupID: groupTask,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.Initialize(); err != nil {
				return err
			}
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			// Load the current record so unset flags keep their values.
			current, err := c.GetTaskUseCase().Execute(cmd.Context(), usecase.GetTaskInput{TaskID: id})
			if err != nil {
				return err
			}
			t := current.Task

			in := usecase.EditTaskInput{
				ID:           id,
				Title:        t.Title,
				Description:  t.Description,
				DueDate:      t.Due.Format("2006-01-02"),
				DueTime:      t.Due.Format("15:04"),
				Category:     string(t.Category),
				Priority:     string(t.Priority),
				ReminderLead: t.ReminderLead,
			}
			if cmd.Flags().Changed("title") {
				in.Title = opts.Title
			}
			if cmd.Flags().Changed("body") {
				in.Description = opts.Description
			}
			if cmd.Flags().Changed("due") {
				in.DueDate = opts.Due
			}
			if cmd.Flags().Changed("at") {
				in.DueTime = opts.At
			}
			if cmd.Flags().Changed("category") {
				in.Category = opts.Category
			}
			if cmd.Flags().Changed("priority") {
				in.Priority = opts.Priority
			}
			if cmd.Flags().Changed("lead") {
				in.ReminderLead = opts.Lead
			}

			out, err := c.EditTaskUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated task #%d\n", out.Task.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "New title")
	cmd.Flags().StringVar(&opts.Description, "body", "", "New description")
	cmd.Flags().StringVar(&opts.Due, "due", "", "New due date, YYYY-MM-DD")
	cmd.Flags().StringVar(&opts.At, "at", "", "New due time, HH:MM")
	cmd.Flags().StringVar(&opts.Category, "category", "", "New category")
	cmd.Flags().StringVar(&opts.Priority, "priority", "", "New priority")
	cmd.Flags().IntVar(&opts.Lead, "lead", 0, "New reminder lead in minutes")

	return cmd
}

// newDoneCommand creates the done command for toggling completion.
func newDoneCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "done <id>",
		Short:   "Toggle task completion",
		GroupID: groupTask,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.Initialize(); err != nil {
				return err
			}
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			out, err := c.ToggleTaskUseCase().Execute(cmd.Context(), usecase.ToggleTaskInput{TaskID: id})
			if err != nil {
				return err
			}
			if out.Task == nil {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No task #%d\n", id)
				return nil
			}
			if out.Task.Completed {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Completed task #%d\n", id)
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Reopened task #%d\n", id)
			}
			return nil
		},
	}
	return cmd
}

// newRemoveCommand creates the rm command.
func newRemoveCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Delete a task",
		GroupID: groupTask,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.Initialize(); err != nil {
				return err
			}
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			out, err := c.DeleteTaskUseCase().Execute(cmd.Context(), usecase.DeleteTaskInput{TaskID: id})
			if err != nil {
				return err
			}
			if out.Task == nil {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No task #%d\n", id)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task #%d\n", id)
			return nil
		},
	}
	return cmd
}

func parseTaskID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task id %q", s)
	}
	return id, nil
}
