package commands

import (
	"bytes"
	"fmt"
	"lapchart-scraper/internal/export"
	"lapchart-scraper/lib/serviceutil"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var (
	exportYear *int
	exportFile *string
)

func init() {
	exportYear = exportCmd.Flags().Int("year", 0, "The season to export.")
	exportFile = exportCmd.Flags().String("file", "", "The workbook to write, defaults to <out>/<year>_lap_charts.xlsx.")
	exportCmd.MarkFlagRequired("year")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export --year <year> [--file <path/to/output.xlsx>]",
	Short: "Bundles the csv files of a season into a single workbook.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			serviceutil.Fatal("failed to read config", err)
		}

		path := *exportFile
		if path == "" {
			path = filepath.Join(cfg.OutputDir, fmt.Sprintf("%d_lap_charts.xlsx", *exportYear))
		}
		summary, size, err := writeWorkbook(cfg.OutputDir, *exportYear, path)
		if err != nil {
			serviceutil.Fatal("failed to export season", err)
		}
		for _, race := range summary.Missing {
			slog.Warn("no csv for race", "race", race)
		}

		slog.Info("wrote workbook", "path", path, "races", len(summary.Exported), "size", humanize.Bytes(uint64(size)))
	},
}

// writeWorkbook builds the workbook in memory so that a failed export
// leaves no file at `path`.
func writeWorkbook(dir string, year int, path string) (export.Summary, int, error) {
	var buf bytes.Buffer
	summary, err := export.Season(dir, year, &buf)
	if err != nil {
		return summary, 0, err
	}
	err = os.WriteFile(path, buf.Bytes(), 0644)
	if err != nil {
		return summary, 0, err
	}
	return summary, buf.Len(), nil
}
