package cli

import (
	"path/filepath"
	"time"
)

type ExportReport struct {
	output    *Output
	startTime time.Time
	outputDir string
	files     []string
	missing   []string
}

func NewExportReport(output *Output, outputDir string) *ExportReport {
	return &ExportReport{
		output:    output,
		startTime: time.Now(),
		outputDir: outputDir,
	}
}

func (r *ExportReport) AddFiles(files ...string) {
	r.files = append(r.files, files...)
}

// AddMissing records assets the page references but the export could not copy.
func (r *ExportReport) AddMissing(paths ...string) {
	r.missing = append(r.missing, paths...)
}

func (r *ExportReport) HasWarnings() bool {
	return len(r.missing) > 0
}

func (r *ExportReport) Print() {
	o := r.output

	o.PrintSuccess("Wrote %d files to %s", len(r.files), r.outputDir)
	for _, f := range r.files {
		o.PrintFile(filepath.ToSlash(filepath.Join(r.outputDir, f)))
	}

	for _, m := range r.missing {
		o.PrintWarning("Missing asset %s", m)
	}

	o.PrintStep("Finished in %s", time.Since(r.startTime).Round(time.Millisecond))
}
