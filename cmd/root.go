package cmd

import (
	"fmt"

	"github.com/wassupdoc/alfred-natural-calendar/config"
	"github.com/wassupdoc/alfred-natural-calendar/pkg/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:          "nlcal",
	Short:        fmt.Sprintf("nlcal %s: create calendar events from natural language", version),
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(func() {
		arg, err := rootCmd.PersistentFlags().GetString("config")
		cobra.CheckErr(err)
		cobra.CheckErr(config.InitViper(arg))
		logging.ConsoleLevel = viper.GetInt("logging.console-level")
		cobra.CheckErr(logging.Initialize())
	})
	rootCmd.PersistentFlags().StringP("config", "c", "", "yaml config filepath")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debugging mode")
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

func Execute() error {
	defer logging.Close()
	return rootCmd.Execute()
}
