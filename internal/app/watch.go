package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/triage/internal/report"
	"github.com/blackwell-systems/triage/internal/session"
	"github.com/blackwell-systems/triage/internal/triage"
	"github.com/blackwell-systems/triage/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Print changes inside a directory and report them on exit",
	Long: `Watch a directory for created, written, removed and renamed entries.

Only entries directly inside the directory are watched. Each change is
printed and recorded in a session log. When the watch is stopped with
Ctrl+C, the log is written to a report in the reports directory, as menu
option 6 would.`,
	Example: `  # Watch a drop folder until Ctrl+C
  triage watch ./incoming`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	w, err := watcher.New(args[0], e.logger)
	if err != nil {
		if errors.Is(err, triage.ErrInvalidPath) {
			return fmt.Errorf("invalid directory: %s", args[0])
		}
		return err
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Watching %s (press Ctrl+C to stop)...\n\n", w.Dir())

	return watchDirectory(ctx, out, w, session.New(), e.reports)
}

// watchDirectory records events from w until ctx is done, then writes a
// report if anything was seen.
func watchDirectory(ctx context.Context, out io.Writer, w *watcher.Watcher, log *session.Log, reports *report.Manager) error {
	err := w.Run(ctx, func(ev watcher.Event) {
		fmt.Fprintln(out, ev)
		log.Append(session.Entry("Watch event: " + ev.String()))
	})
	if err != nil {
		return fmt.Errorf("watch failed: %w", err)
	}

	fmt.Fprintln(out)
	if log.Len() == 0 {
		fmt.Fprintln(out, "No events observed.")
		return nil
	}

	rep, err := reports.Generate(log.ID(), log.Entries())
	if err != nil {
		return fmt.Errorf("failed to write watch report: %w", err)
	}
	fmt.Fprintf(out, "%d event(s) recorded. Report saved at: %s\n", log.Len(), rep.Path)
	return nil
}
