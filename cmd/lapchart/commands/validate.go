package commands

import (
	"fmt"
	"lapchart-scraper/internal/extract"
	"lapchart-scraper/lib/serviceutil"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

func validateFile(path string) ([]extract.Issue, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return extract.ValidateCSV(f)
}

var validateCmd = &cobra.Command{
	Use:   "validate <file.csv>...",
	Short: "Checks that extracted csv files have the shape of a lap chart.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		t := newTable(table.Row{"File", "Line", "Issue"})
		total := 0
		for _, path := range args {
			issues, err := validateFile(path)
			if err != nil {
				t.AppendRow(table.Row{path, "", err.Error()})
				total++
				continue
			}
			for _, issue := range issues {
				t.AppendRow(table.Row{path, issue.Line, issue.Message})
			}
			total += len(issues)
		}

		if total == 0 {
			fmt.Printf("%d file(s) look like lap charts\n", len(args))
			return
		}
		t.Render()
		serviceutil.Fatal("validation failed", fmt.Errorf("%d issue(s)", total))
	},
}
