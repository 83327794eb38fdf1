package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/triage/internal/menu"
	"github.com/blackwell-systems/triage/internal/session"
	"github.com/blackwell-systems/triage/internal/triage"
)

var (
	cfgFile string
	verbose bool

	// RootCmd is the root command for triage
	RootCmd = &cobra.Command{
		Use:   "triage",
		Short: "Interactive file triage: listing, metadata, hashing, recovery and search",
		Long: `triage is an interactive file triage tool.

Running triage with no subcommand opens a numbered menu:

  1. Scan Directory (list files)
  2. View File Metadata
  3. Generate File Hash (MD5 / SHA-256)
  4. Recover Files (copy from a folder)
  5. Search Keyword Inside Files
  6. Generate Forensic Report from Log
  7. Clear Current Session Log
  8. Exit

Every completed action is recorded in the session log. Option 6 writes the
log to a numbered report under the reports directory (forensic_reports by
default). Recovery copies go to recovered_files unless another destination
is given.

"Recovery" here is a plain file copy. No sector-level carving or evidence
preservation is performed.`,
		Example: `  # Start the interactive menu
  triage

  # Use a config file
  triage --config triage.yaml

  # List catalogued reports
  triage reports

  # Watch a directory and report what changed
  triage watch ./incoming`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runMenu,
	}
)

func init() {
	// Global flags
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (YAML)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging on stderr")

	RootCmd.SuggestionsMinimumDistance = 2

	RootCmd.AddCommand(reportsCmd)
	RootCmd.AddCommand(watchCmd)
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}

func runMenu(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	log := session.New()
	e.logger.Debug().Str("session", log.ID()).Str("reports", e.reports.Dir()).Msg("session started")

	svc := triage.NewService(log, e.cfg.RecoveredDir, e.logger)
	c := menu.New(cmd.InOrStdin(), cmd.OutOrStdout(), svc, e.reports, log)
	if err := c.Run(); err != nil {
		return fmt.Errorf("menu failed: %w", err)
	}
	return nil
}
