package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/wassupdoc/alfred-natural-calendar/pkg/ics"
	"github.com/wassupdoc/alfred-natural-calendar/pkg/logging"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(previewCmd)
}

// scriptFilterItem is one row of an Alfred script-filter listing.
type scriptFilterItem struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Arg      string `json:"arg"`
	Valid    bool   `json:"valid"`
}

type scriptFilterOutput struct {
	Items []scriptFilterItem `json:"items"`
}

var previewCmd = &cobra.Command{
	Use:   "preview <event description>",
	Short: "show what an event description would parse to, without creating it",
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		rec, err := parseArgs(cmd, args)
		if err != nil {
			return printItems(scriptFilterItem{
				Title:    "Could not parse event",
				Subtitle: err.Error(),
				Valid:    false,
			})
		}
		start, err := rec.StartAt()
		if err != nil {
			return err
		}
		subtitle := fmt.Sprintf("%s • %s • %s–%s", rec.Calendar,
			start.Format("Mon Jan 2"), rec.StartTime[:5], rec.EndTime[:5])
		if rec.Location != "" {
			subtitle += " • " + rec.Location
		}
		items := []scriptFilterItem{{
			Title:    rec.Title,
			Subtitle: subtitle,
			Arg:      query,
			Valid:    true,
		}}
		if rec.Recurrence != "" {
			if next, err := ics.NextOccurrences(rec, 3); err == nil {
				var dates []string
				for _, t := range next {
					dates = append(dates, t.Format("Jan 2"))
				}
				items = append(items, scriptFilterItem{
					Title:    "Repeats: " + rec.Recurrence,
					Subtitle: "Next: " + strings.Join(dates, ", "),
					Arg:      query,
					Valid:    true,
				})
			} else {
				logging.Logger.Debugf("occurrence preview failed: %v", err)
			}
		}
		return printItems(items...)
	},
}

func printItems(items ...scriptFilterItem) error {
	data, err := json.Marshal(scriptFilterOutput{Items: items})
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
