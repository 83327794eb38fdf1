package app

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/triage/internal/output"
	"github.com/blackwell-systems/triage/internal/report"
	"github.com/blackwell-systems/triage/internal/store"
)

var (
	reportsJSON  bool
	reportsPrune bool

	reportsCmd = &cobra.Command{
		Use:   "reports",
		Short: "List generated reports",
		Long: `List the reports recorded in the report catalog, newest first.

Each report generated from the menu is written as a text file and indexed in
the catalog database (triage_catalog.db unless catalog_path says otherwise).
Use --prune to drop catalog records whose report files have been deleted.`,
		Example: `  # Show a table of reports
  triage reports

  # Machine-readable output
  triage reports --json

  # Forget reports whose files were removed
  triage reports --prune`,
		Args: cobra.NoArgs,
		RunE: runReports,
	}
)

func init() {
	reportsCmd.Flags().BoolVar(&reportsJSON, "json", false, "output as JSON")
	reportsCmd.Flags().BoolVar(&reportsPrune, "prune", false, "remove catalog entries for missing report files")
}

func runReports(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	out := cmd.OutOrStdout()
	if reportsPrune {
		if err := pruneReports(out, e.reports); err != nil {
			return catalogError(err)
		}
	}

	reports, err := e.reports.List()
	if err != nil {
		return catalogError(err)
	}

	if reportsJSON {
		return writeReportsJSON(out, reports)
	}
	fmt.Fprint(out, output.RenderReportTable(reports))
	return nil
}

func pruneReports(out io.Writer, m *report.Manager) error {
	removed, err := m.Prune()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Pruned %d missing report(s)\n", removed)
	return nil
}

func writeReportsJSON(out io.Writer, reports []*store.Report) error {
	if reports == nil {
		reports = []*store.Report{}
	}
	data, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode reports: %w", err)
	}
	fmt.Fprintln(out, string(data))
	return nil
}
