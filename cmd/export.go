package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/wassupdoc/alfred-natural-calendar/pkg/ics"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	exportCmd.Flags().StringP("out", "o", "", "output .ics filepath")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <event description> [--out=<file.ics>]",
	Short: "parse an event description and write it as an .ics file",
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := parseArgs(cmd, args)
		if err != nil {
			return err
		}
		out, err := cmd.Flags().GetString("out")
		if err != nil {
			return err
		}
		if out == "" {
			name := strings.ReplaceAll(strings.ToLower(rec.Title), " ", "-")
			if name == "" {
				name = "event"
			}
			out = filepath.Join(viper.GetString("ics.output-dir"), name+".ics")
		}
		if err := ics.WriteFile(out, rec); err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}
