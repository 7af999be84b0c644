package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/wassupdoc/alfred-natural-calendar/config"
	"github.com/wassupdoc/alfred-natural-calendar/pkg/logging"
	"github.com/wassupdoc/alfred-natural-calendar/pkg/macos"
	"github.com/wassupdoc/alfred-natural-calendar/pkg/nlp"
	"github.com/wassupdoc/alfred-natural-calendar/pkg/terrors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(addCmd)
}

// alfredOutput is the JSON envelope the workflow's notification step reads.
type alfredOutput struct {
	Alfredworkflow struct {
		Arg       string            `json:"arg"`
		Variables map[string]string `json:"variables"`
	} `json:"alfredworkflow"`
}

func printAlfred(arg, title string) {
	var out alfredOutput
	out.Alfredworkflow.Arg = arg
	out.Alfredworkflow.Variables = map[string]string{"notificationTitle": title}
	data, _ := json.Marshal(out)
	fmt.Println(string(data))
}

// buildParser assembles the parse context: the writable calendars from
// Calendar.app, the configured default and the location verifier. A failed
// enumeration degrades to the fallback calendar alone.
func buildParser(cmd *cobra.Command) *nlp.Parser {
	calendars, err := macos.ListCalendars(cmd.Context())
	if err != nil {
		logging.Logger.Warnf("calendar enumeration failed: %v", err)
		calendars = []string{config.FallbackCalendar()}
	}
	var verifier nlp.Verifier = nlp.NoopVerifier{}
	if viper.GetBool("location.verify") {
		verifier = macos.Verifier{
			Timeout: time.Duration(viper.GetInt("location.timeout-seconds")) * time.Second,
		}
	}
	return nlp.New(nlp.Config{
		Calendars:        calendars,
		DefaultCalendar:  config.DefaultCalendar(),
		FallbackCalendar: config.FallbackCalendar(),
		Verifier:         verifier,
	})
}

func parseArgs(cmd *cobra.Command, args []string) (*nlp.Record, error) {
	if len(args) == 0 {
		return nil, terrors.ErrNoArgsProvided
	}
	text := strings.Join(args, " ")
	rec, err := buildParser(cmd).ParseEvent(text)
	if err != nil {
		return nil, terrors.ErrorArgParse(text, err)
	}
	return rec, nil
}

// humanDate renders the start instant the way the notification shows it.
func humanDate(start, now time.Time) string {
	timeStr := start.Format("3:04 PM")
	today := now.Format("2006-01-02")
	tomorrow := now.AddDate(0, 0, 1).Format("2006-01-02")
	switch start.Format("2006-01-02") {
	case today:
		return "Today at " + timeStr
	case tomorrow:
		return "Tomorrow at " + timeStr
	}
	return start.Format("Monday, January 2 at 3:04 PM")
}

var addCmd = &cobra.Command{
	Use:   "add <event description>",
	Short: "parse an event description and create it in Calendar.app",
	Long: `add <event description>
  parses a natural-language event description ("lunch @ Cafe 101 tomorrow
  at 1pm with 30min alert") and creates the event in the resolved calendar`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := parseArgs(cmd, args)
		if err != nil {
			printAlfred(fmt.Sprintf("Error parsing input: %v", err), "Error")
			return err
		}
		if err := macos.CreateEvent(cmd.Context(), rec); err != nil {
			printAlfred(fmt.Sprintf("Error: %v", err), "Error")
			return err
		}
		start, err := rec.StartAt()
		if err != nil {
			return err
		}
		details := fmt.Sprintf("📅 %s • %s", rec.Calendar, humanDate(start, time.Now()))
		if rec.Location != "" {
			details += "\n📍 " + rec.Location
		}
		printAlfred(details, rec.Title)
		return nil
	},
}
