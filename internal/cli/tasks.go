package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bft-labs/tasker/internal/app"
)

func newListCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print all tasks",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := e.openStore(cmd.Context(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return store.List()
		},
	}
}

func newAddCommand(e *env) *cobra.Command {
	var (
		index int
		done  bool
	)
	cmd := &cobra.Command{
		Use:   "add <description>",
		Short: "Append a task, or insert it before --index",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := e.openStore(cmd.Context(), cmd.OutOrStdout())
			if err != nil {
				return err
			}

			opts := []app.AddOption{app.Done(done)}
			at := store.Len()
			if cmd.Flags().Changed("index") {
				opts = append(opts, app.AtIndex(index))
				at = index
			}
			if _, err := store.Add(cmd.Context(), args[0], opts...); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added task %d: %s\n", at, args[0])
			return nil
		},
	}
	cmd.Flags().IntVar(&index, "index", 0, "insert before the task at this index")
	cmd.Flags().BoolVar(&done, "done", false, "mark the new task as done")
	return cmd
}

func newEditCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <index> <description>",
		Short: "Replace a task's description",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			store, err := e.openStore(cmd.Context(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if _, err := store.Edit(cmd.Context(), index, args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated task %d: %s\n", index, args[1])
			return nil
		},
	}
}

func newStatusCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "status <index>",
		Short: "Toggle a task between DONE and IN PROGRESS",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			store, err := e.openStore(cmd.Context(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			tasks, err := store.ToggleStatus(cmd.Context(), index)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task %d is now %s\n", index, tasks[index].Status())
			return nil
		},
	}
}

func newDeleteCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <index>",
		Short: "Remove a task; later tasks move up one position",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			store, err := e.openStore(cmd.Context(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			before := store.Tasks()
			if _, err := store.Delete(cmd.Context(), index); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %d: %s\n", index, before[index].Description)
			return nil
		},
	}
}
