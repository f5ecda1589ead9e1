package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bft-labs/tasker/internal/report"
)

func newExportCommand(e *env) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the task list as a PDF report",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := e.openStore(cmd.Context(), cmd.OutOrStdout())
			if err != nil {
				return err
			}

			tasks := store.Tasks()
			pdf, err := report.BuildTaskReport(e.cfg.ReportTitle, tasks, time.Now())
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, pdf, 0o644); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d tasks to %s\n", len(tasks), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "tasks.pdf", "output file")
	cmd.Flags().StringVar(&e.cfg.ReportTitle, "title", e.cfg.ReportTitle, "report title")
	return cmd
}
