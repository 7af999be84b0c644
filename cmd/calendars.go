package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/wassupdoc/alfred-natural-calendar/config"
	"github.com/wassupdoc/alfred-natural-calendar/pkg/macos"
	"github.com/wassupdoc/alfred-natural-calendar/pkg/terrors"

	"github.com/spf13/cobra"
)

func init() {
	calendarsCmd.AddCommand(calendarsSetCmd)
	rootCmd.AddCommand(calendarsCmd)
}

// sortCalendars puts the default calendar first and the rest in
// case-insensitive alphabetical order.
func sortCalendars(calendars []string, defaultCal string) {
	sort.SliceStable(calendars, func(i, j int) bool {
		if strings.EqualFold(calendars[i], defaultCal) != strings.EqualFold(calendars[j], defaultCal) {
			return strings.EqualFold(calendars[i], defaultCal)
		}
		return strings.ToLower(calendars[i]) < strings.ToLower(calendars[j])
	})
}

var calendarsCmd = &cobra.Command{
	Use:   "calendars",
	Short: "list the writable calendars",
	RunE: func(cmd *cobra.Command, args []string) error {
		calendars, err := macos.ListCalendars(cmd.Context())
		if err != nil {
			return err
		}
		defaultCal := config.DefaultCalendar()
		sortCalendars(calendars, defaultCal)
		for _, name := range calendars {
			if strings.EqualFold(name, defaultCal) {
				fmt.Printf("%s (default)\n", name)
			} else {
				fmt.Println(name)
			}
		}
		return nil
	},
}

var calendarsSetCmd = &cobra.Command{
	Use:   "set <name>",
	Short: "persist the default calendar",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return terrors.ErrorArgNotProvided("name")
		}
		calendars, err := macos.ListCalendars(cmd.Context())
		if err != nil {
			return err
		}
		for _, name := range calendars {
			if strings.EqualFold(name, args[0]) {
				if err := config.SetDefaultCalendar(name); err != nil {
					return err
				}
				fmt.Printf("default calendar set to %s\n", name)
				return nil
			}
		}
		return fmt.Errorf("%w: calendar '%s'", terrors.ErrNotFound, args[0])
	},
}
