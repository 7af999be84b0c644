package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wassupdoc/alfred-natural-calendar/pkg/terrors"
	"github.com/wassupdoc/alfred-natural-calendar/pkg/utils"

	"github.com/spf13/viper"
)

const (
	EnvPrefix = "NLCAL"
	EnvCFG    = "NLCAL_CONFIG"
)

var DefaultPath = "~/.nlcal"

var configPath string

func ConfigPath() string {
	return configPath
}

func setConfigPath(path string) error {
	path, err := utils.NormalizePath(path)
	if err != nil {
		return err
	}
	configPath = path
	return nil
}

func SelectConfigFile(arg string) error {
	var path string
	env := os.Getenv(EnvCFG)
	if arg != "" {
		path = arg
	} else if env != "" {
		path = env
	} else {
		path = DefaultPath
	}
	return setConfigPath(path)
}

func InitViper(arg string) error {
	err := SelectConfigFile(arg)
	if err != nil {
		return err
	}
	path := ConfigPath()
	viper.SetConfigType("yaml")
	viper.SetConfigName("nlcal")
	viper.AddConfigPath(path)
	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	err = viper.ReadConfig(bytes.NewReader([]byte(DefaultConfig)))
	if err != nil {
		return fmt.Errorf("%w: failed parsing default configurations: %w", terrors.ErrParse, err)
	}
	err = viper.MergeInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}
	err = os.MkdirAll(path, 0755)
	if err != nil {
		return err
	}
	cfgFile := filepath.Join(path, "nlcal.yaml")
	if utils.FileExists(cfgFile) {
		return nil
	}
	return viper.SafeWriteConfigAs(cfgFile)
}

// DefaultCalendar returns the configured default calendar, which may be empty.
func DefaultCalendar() string {
	return viper.GetString("calendar.default")
}

// FallbackCalendar returns the literal used when neither a tag nor the
// configured default resolves to a known calendar.
func FallbackCalendar() string {
	name := viper.GetString("calendar.fallback")
	if name == "" {
		return "Calendar"
	}
	return name
}

// SetDefaultCalendar persists the default calendar name to the config file.
func SetDefaultCalendar(name string) error {
	viper.Set("calendar.default", name)
	return viper.WriteConfigAs(filepath.Join(ConfigPath(), "nlcal.yaml"))
}
