package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bivsbon/wyag"
	"github.com/bivsbon/wyag/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Settings read from flags, WYAG_* environment variables and the config file.
const (
	keyLogLevel      = "log_level"
	keyDefaultBranch = "default_branch"
	keyJobs          = "jobs"
)

var defaults = map[string]any{
	keyLogLevel:      logger.LevelNone,
	keyDefaultBranch: wyag.DefaultBranch,
	keyJobs:          4,
}

var rootCmd = &cobra.Command{
	Use:               "wyag",
	Short:             "Content-addressable object database",
	Long:              "CLI for initializing repositories and reading and writing objects in their object database.",
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: $XDG_CONFIG_HOME/wyag/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error or none (default: none)")

	viper.BindPFlag(keyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
}

// loadConfig reads the config file named by --config, or the default one if
// it exists. A config file that exists but cannot be parsed is an error.
func loadConfig(cmd *cobra.Command, _ []string) error {
	for key, value := range defaults {
		viper.SetDefault(key, value)
	}
	viper.SetEnvPrefix("WYAG")
	viper.AutomaticEnv()

	path, _ := cmd.Flags().GetString("config")
	explicit := path != ""
	if !explicit {
		path = filepath.Join(configDir(), "config.yaml")
	}
	viper.SetConfigFile(path)

	err := viper.ReadInConfig()
	if err == nil {
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if !explicit && (errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound)) {
		return nil
	}
	return fmt.Errorf("read config %s: %w", path, err)
}

func configDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".wyag"
	}
	return filepath.Join(dir, "wyag")
}

func getLogger() (*zap.Logger, error) {
	return logger.New(viper.GetString(keyLogLevel))
}

// repoOptions returns the options shared by every command.
func repoOptions() ([]wyag.Option, error) {
	log, err := getLogger()
	if err != nil {
		return nil, err
	}
	return []wyag.Option{wyag.WithLogger(log)}, nil
}
