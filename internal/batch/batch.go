// Package batch runs statement files through parse, categorize and report
// with a bounded worker pool.
package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bankcat-dev/bankcat/internal/categorize"
	"github.com/bankcat-dev/bankcat/internal/report"
	"github.com/bankcat-dev/bankcat/internal/statement"
)

// Job statuses.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Job tracks one statement file through a run.
type Job struct {
	ID           string
	Source       string
	Format       string
	Output       string
	Status       string
	Err          string
	Transactions int
	Incoming     int
	Outgoing     int
}

// Options configures a Runner.
type Options struct {
	Workers   int    // concurrent files; defaults to 1
	OutputDir string // defaults to each source file's directory
	CSVExport bool   // also write a flat CSV next to each workbook
	Log       zerolog.Logger
}

// Runner processes statement files concurrently.
type Runner struct {
	registry *statement.Registry
	engine   *categorize.Engine
	opts     Options
}

// NewRunner creates a Runner over the given parsers and engine.
func NewRunner(registry *statement.Registry, engine *categorize.Engine, opts Options) *Runner {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &Runner{registry: registry, engine: engine, opts: opts}
}

// Run processes all files and returns one Job per input, in input order.
// A failed file marks its job failed and does not abort the rest.
func (r *Runner) Run(ctx context.Context, files []string) []Job {
	jobs := make([]Job, len(files))
	for i, file := range files {
		jobs[i] = Job{
			ID:     uuid.New().String(),
			Source: file,
			Status: StatusPending,
		}
	}

	workers := r.opts.Workers
	if workers > len(files) {
		workers = len(files)
	}

	indexes := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				r.process(&jobs[i])
			}
		}()
	}

	for i := range jobs {
		select {
		case <-ctx.Done():
			close(indexes)
			wg.Wait()
			for j := i; j < len(jobs); j++ {
				if jobs[j].Status == StatusPending {
					jobs[j].Status = StatusFailed
					jobs[j].Err = ctx.Err().Error()
				}
			}
			return jobs
		case indexes <- i:
		}
	}
	close(indexes)
	wg.Wait()
	return jobs
}

func (r *Runner) process(job *Job) {
	job.Status = StatusProcessing
	log := r.opts.Log.With().Str("job", job.ID).Str("source", job.Source).Logger()

	if err := r.processFile(job); err != nil {
		job.Status = StatusFailed
		job.Err = err.Error()
		log.Error().Err(err).Msg("processing failed")
		return
	}

	job.Status = StatusCompleted
	log.Info().
		Int("transactions", job.Transactions).
		Int("incoming", job.Incoming).
		Int("outgoing", job.Outgoing).
		Str("output", job.Output).
		Msg("statement processed")
}

func (r *Runner) processFile(job *Job) error {
	format, err := statement.Detect(job.Source)
	if err != nil {
		return err
	}
	job.Format = format

	parser := r.registry.Get(format)
	if parser == nil {
		return fmt.Errorf("no parser registered for format %q", format)
	}

	f, err := os.Open(job.Source)
	if err != nil {
		return fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	raw, err := parser.Parse(f)
	if err != nil {
		return fmt.Errorf("parsing statement: %w", err)
	}
	if len(raw) == 0 {
		return fmt.Errorf("no transactions found in %s", job.Source)
	}

	txns := r.engine.CategorizeAll(raw)
	incoming, outgoing := report.Split(txns)
	job.Transactions = len(txns)
	job.Incoming = len(incoming)
	job.Outgoing = len(outgoing)

	job.Output = OutputPath(job.Source, r.opts.OutputDir)
	if err := report.WriteExcel(job.Output, txns); err != nil {
		return err
	}

	if r.opts.CSVExport {
		csvPath := strings.TrimSuffix(job.Output, ".xlsx") + ".csv"
		out, err := os.Create(csvPath)
		if err != nil {
			return fmt.Errorf("creating CSV export: %w", err)
		}
		defer out.Close()
		if err := report.WriteCSV(out, txns); err != nil {
			return err
		}
	}

	return nil
}

// OutputPath returns the workbook path for a statement file: the source's
// stem prefixed with "categorized_", in outDir or next to the source.
func OutputPath(input, outDir string) string {
	dir := outDir
	if dir == "" {
		dir = filepath.Dir(input)
	}
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, "categorized_"+stem+".xlsx")
}
