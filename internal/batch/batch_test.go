package batch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/bankcat-dev/bankcat/internal/categorize"
	"github.com/bankcat-dev/bankcat/internal/report"
	"github.com/bankcat-dev/bankcat/internal/statement"
)

const testCSV = `Date,Detail,Amount
30/09/2025,Sent money to John Baker transaction: 12345,-100.00
28/09/2025,SALARY SEPTEMBER,"1,500.00"
`

func writeStatement(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(testCSV), 0o644))
	return path
}

func newTestRunner(opts Options) *Runner {
	opts.Log = zerolog.Nop()
	return NewRunner(statement.DefaultRegistry(), categorize.DefaultEngine(), opts)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		writeStatement(t, dir, "sept.csv"),
		writeStatement(t, dir, "oct.csv"),
	}

	r := newTestRunner(Options{Workers: 2})
	jobs := r.Run(context.Background(), files)
	require.Len(t, jobs, 2)

	for i, job := range jobs {
		assert.Equal(t, files[i], job.Source, "jobs keep input order")
		require.Equal(t, StatusCompleted, job.Status, "job %d: %s", i, job.Err)
		assert.Equal(t, "csv", job.Format)
		assert.Equal(t, 2, job.Transactions)
		assert.Equal(t, 1, job.Incoming)
		assert.Equal(t, 1, job.Outgoing)
		assert.NotEmpty(t, job.ID)

		f, err := excelize.OpenFile(job.Output)
		require.NoError(t, err)
		rows, err := f.GetRows(report.SheetSource)
		require.NoError(t, err)
		assert.Len(t, rows, 3)
		require.NoError(t, f.Close())
	}
}

func TestRun_CSVExport(t *testing.T) {
	dir := t.TempDir()
	file := writeStatement(t, dir, "sept.csv")

	r := newTestRunner(Options{CSVExport: true})
	jobs := r.Run(context.Background(), []string{file})
	require.Equal(t, StatusCompleted, jobs[0].Status, jobs[0].Err)

	csvPath := filepath.Join(dir, "categorized_sept.csv")
	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), report.Header)
	assert.Contains(t, string(data), "SALARY SEPTEMBER")
}

func TestRun_FailureDoesNotAbortBatch(t *testing.T) {
	dir := t.TempDir()
	good := writeStatement(t, dir, "good.csv")
	missing := filepath.Join(dir, "missing.csv")

	r := newTestRunner(Options{Workers: 2})
	jobs := r.Run(context.Background(), []string{missing, good})
	require.Len(t, jobs, 2)

	assert.Equal(t, StatusFailed, jobs[0].Status)
	assert.NotEmpty(t, jobs[0].Err)
	assert.Equal(t, StatusCompleted, jobs[1].Status, jobs[1].Err)
}

func TestRun_UnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "statement.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not a statement"), 0o644))

	r := newTestRunner(Options{})
	jobs := r.Run(context.Background(), []string{path})
	require.Len(t, jobs, 1)
	assert.Equal(t, StatusFailed, jobs[0].Status)
}

func TestRun_OutputDir(t *testing.T) {
	srcDir := t.TempDir()
	outDir := t.TempDir()
	file := writeStatement(t, srcDir, "sept.csv")

	r := newTestRunner(Options{OutputDir: outDir})
	jobs := r.Run(context.Background(), []string{file})
	require.Equal(t, StatusCompleted, jobs[0].Status, jobs[0].Err)
	assert.Equal(t, filepath.Join(outDir, "categorized_sept.xlsx"), jobs[0].Output)

	_, err := os.Stat(jobs[0].Output)
	require.NoError(t, err)
}

func TestRun_Cancelled(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		writeStatement(t, dir, "a.csv"),
		writeStatement(t, dir, "b.csv"),
		writeStatement(t, dir, "c.csv"),
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := newTestRunner(Options{})
	jobs := r.Run(ctx, files)
	require.Len(t, jobs, 3)
	for _, job := range jobs {
		assert.Contains(t, []string{StatusCompleted, StatusFailed}, job.Status)
	}
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t,
		filepath.Join("statements", "categorized_sept.xlsx"),
		OutputPath(filepath.Join("statements", "sept.pdf"), ""))
	assert.Equal(t,
		filepath.Join("out", "categorized_sept.xlsx"),
		OutputPath(filepath.Join("statements", "sept.csv"), "out"))
}
