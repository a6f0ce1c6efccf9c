package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Paths contains all the application paths.
// This is the single source of truth for file layout in the application.
type Paths struct {
	ExecutableDir string
	DataDir       string
	ExportsDir    string
	StatementsDir string
	ReportsDir    string
	LogsDir       string

	// Input registry workbook (root of the data directory)
	RegistryFile string

	// Well-known report files
	DashboardJSON   string
	PLSummaryJSON   string
	QuarterlyPLCSV  string
	LoadsCSV        string
	UnmatchedOTRCSV string
}

// GetPaths returns the application paths relative to the executable location.
// All paths are relative to the executable directory, never the current
// working directory, so binaries behave the same regardless of where they
// are launched from.
func GetPaths() (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %v", err)
	}

	// Resolve symlinks to get the actual executable location
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable symlinks: %v", err)
	}

	return PathsFrom(filepath.Dir(exe)), nil
}

// PathsFrom builds the path layout rooted at the given base directory.
// The processor binary uses this when the data directory is passed as a
// flag, and tests use it with t.TempDir().
//
// Directory structure:
//
//	base/
//	  ├── data/
//	  │   ├── exports/      (load detail CSV/XLSX exports)
//	  │   ├── statements/   (quarterly Profit and Loss statements)
//	  │   ├── reports/      (generated summaries)
//	  │   └── OTR_FLATBED.xlsx
//	  └── logs/
func PathsFrom(baseDir string) *Paths {
	dataDir := filepath.Join(baseDir, "data")
	reportsDir := filepath.Join(dataDir, "reports")

	return &Paths{
		ExecutableDir: baseDir,
		DataDir:       dataDir,
		ExportsDir:    filepath.Join(dataDir, "exports"),
		StatementsDir: filepath.Join(dataDir, "statements"),
		ReportsDir:    reportsDir,
		LogsDir:       filepath.Join(baseDir, "logs"),

		RegistryFile: filepath.Join(dataDir, "OTR_FLATBED.xlsx"),

		DashboardJSON:   filepath.Join(reportsDir, "dashboard.json"),
		PLSummaryJSON:   filepath.Join(reportsDir, "pl_summary.json"),
		QuarterlyPLCSV:  filepath.Join(reportsDir, "quarterly_pl.csv"),
		LoadsCSV:        filepath.Join(reportsDir, "loads.csv"),
		UnmatchedOTRCSV: filepath.Join(reportsDir, "unmatched_otr.csv"),
	}
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	directories := []string{
		p.DataDir,
		p.ExportsDir,
		p.StatementsDir,
		p.ReportsDir,
		p.LogsDir,
	}

	logger := slog.Default()

	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %v", dir, err)
		}

		if logger != nil {
			logger.Debug("Ensured directory exists",
				slog.String("directory", dir))
		}
	}

	return nil
}

// GetReportPath returns the path for a report file
func (p *Paths) GetReportPath(filename string) string {
	return filepath.Join(p.ReportsDir, filename)
}

// GetLogPath returns the path for a log file
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// LogPathResolution logs detailed path resolution information for debugging
func (p *Paths) LogPathResolution() {
	logger := slog.Default()
	if logger == nil {
		return
	}

	logger.Info("Path resolution summary",
		slog.Group("directories",
			slog.String("executable", p.ExecutableDir),
			slog.String("data", p.DataDir),
			slog.String("exports", p.ExportsDir),
			slog.String("statements", p.StatementsDir),
			slog.String("reports", p.ReportsDir),
			slog.String("logs", p.LogsDir),
		),
		slog.Group("input_files",
			slog.String("registry", p.RegistryFile),
		))
}
