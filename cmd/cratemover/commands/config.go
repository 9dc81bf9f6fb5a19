package commands

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"cratemover/internal/app"
)

const envPrefix = "CRATEMOVER"

// loadConfig layers flags over CRATEMOVER_* env vars over the config file.
func loadConfig(cmd *cobra.Command) (*app.Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	configureConfigFile(v, configPath)
	if err := readConfigFile(v, configPath != ""); err != nil {
		return nil, err
	}

	return app.NewConfig(app.Config{
		Input:    v.GetString("input"),
		LogLevel: v.GetString("log-level"),
		Output:   lookup(v, cmd.Flags(), "output"),
	})
}

// lookup returns key from v, or "" when the flag is not defined for cmd so
// that only commands with an output flag honour CRATEMOVER_OUTPUT.
func lookup(v *viper.Viper, fs *pflag.FlagSet, key string) string {
	if fs.Lookup(key) == nil {
		return ""
	}
	return v.GetString(key)
}

func configureConfigFile(v *viper.Viper, explicitPath string) {
	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
		return
	}
	v.SetConfigName("cratemover")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "cratemover"))
	}
}

func readConfigFile(v *viper.Viper, strict bool) error {
	if err := v.ReadInConfig(); err != nil {
		var cfgErr viper.ConfigFileNotFoundError
		if errors.As(err, &cfgErr) && !strict {
			return nil
		}
		return err
	}
	return nil
}
