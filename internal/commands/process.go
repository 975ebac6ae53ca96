package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bankcat-dev/bankcat/internal/batch"
	"github.com/bankcat-dev/bankcat/internal/categorize"
	"github.com/bankcat-dev/bankcat/internal/config"
	"github.com/bankcat-dev/bankcat/internal/logging"
	"github.com/bankcat-dev/bankcat/internal/runlog"
	"github.com/bankcat-dev/bankcat/internal/statement"
)

func newProcessCommand() *cobra.Command {
	var (
		output     string
		workers    int
		csvExport  bool
		configPath string
		rulesPath  string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "process <statement>...",
		Short: "Parse and categorize bank statements",
		Long: `Parse PDF or CSV bank statements, categorize each transaction, and
write one Excel workbook per statement with source, incoming and outgoing
sheets.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(cmd, args, output, workers, csvExport, configPath, rulesPath, verbose)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output directory (default: next to each statement)")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent statements (default: from config)")
	cmd.Flags().BoolVar(&csvExport, "csv", false, "also write a flat CSV next to each workbook")
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default: ./"+config.FileName+" if present)")
	cmd.Flags().StringVar(&rulesPath, "rules", "", "extra categorization rules, tried before the built-ins")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func runProcess(cmd *cobra.Command, files []string, output string, workers int, csvExport bool, configPath, rulesPath string, verbose bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if workers > 0 {
		cfg.Workers = workers
	}
	if csvExport {
		cfg.Report.CSVExport = true
	}

	resolver := categorize.DefaultResolver()
	if rulesPath != "" {
		user, err := categorize.LoadRules(rulesPath)
		if err != nil {
			return fmt.Errorf("loading rules: %w", err)
		}
		// User rules are tried first so they can shadow built-ins.
		resolver = categorize.NewResolver(append(user, categorize.DefaultRules()...))
	}

	engine := categorize.NewEngine(
		resolver,
		categorize.NewInvoiceExtractor(cfg.Extraction.InvoiceMinDigits),
		categorize.NewCounterpartyExtractor(cfg.Extraction.CounterpartyMaxWords),
	)

	log := logging.New(verbose)
	runner := batch.NewRunner(statement.DefaultRegistry(), engine, batch.Options{
		Workers:   cfg.Workers,
		OutputDir: output,
		CSVExport: cfg.Report.CSVExport,
		Log:       log,
	})

	jobs := runner.Run(cmd.Context(), files)

	logDir := output
	if logDir == "" {
		logDir = "."
	}
	if err := runlog.Append(logDir, logEntries(jobs)); err != nil {
		log.Warn().Err(err).Msg("could not update processing log")
	}

	completed := 0
	for _, job := range jobs {
		if job.Status == batch.StatusCompleted {
			completed++
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d transactions (%d incoming, %d outgoing) -> %s\n",
				job.Source, job.Transactions, job.Incoming, job.Outgoing, job.Output)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: FAILED: %s\n", job.Source, job.Err)
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d of %d statements processed\n", completed, len(jobs))

	if completed == 0 {
		return fmt.Errorf("no statements processed")
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if _, err := os.Stat(config.FileName); err == nil {
		return config.Load(config.FileName)
	}
	return config.Default(), nil
}

func logEntries(jobs []batch.Job) []runlog.Entry {
	entries := make([]runlog.Entry, len(jobs))
	for i, job := range jobs {
		status := runlog.StatusCompleted
		if job.Status != batch.StatusCompleted {
			status = runlog.StatusFailed
		}
		entries[i] = runlog.Entry{
			Timestamp:    time.Now().UTC(),
			Source:       job.Source,
			Format:       job.Format,
			Transactions: job.Transactions,
			Incoming:     job.Incoming,
			Outgoing:     job.Outgoing,
			Output:       job.Output,
			Status:       status,
		}
	}
	return entries
}
