package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmcdole/faccess/pkg/access"
	"github.com/mmcdole/faccess/pkg/identity"
	"github.com/mmcdole/faccess/pkg/logging"
	"github.com/mmcdole/faccess/pkg/metadata"
)

var (
	version     = "dev" // Will be set during build
	cfgFile     string
	showVersion bool
	config      *Config
)

// exitStatus ends the process with a status and no further message
type exitStatus int

func (e exitStatus) Error() string {
	return fmt.Sprintf("exit status %d", int(e))
}

func main() {
	err := rootCmd.Execute()
	_ = logging.Close()

	var status exitStatus
	if errors.As(err, &status) {
		os.Exit(int(status))
	}
	cobra.CheckErr(err)
}

var rootCmd = &cobra.Command{
	Use:           "faccess",
	Short:         "POSIX access checks from file metadata",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `faccess decides access(2)-style permission checks from file metadata and the
caller's real uid, gid and supplementary groups, without asking the kernel.

Every directory leading to a path must grant search permission before the
path's own read, write or execute bits are tested.

Configuration may come from a JSON or YAML file, FACCESS_* environment
variables, or flags:
{
    "log_level": "warn",
    "log_file": "/var/log/faccess.log",
    "decision_log": "/var/log/faccess-decisions.log",
    "root": "/srv/chroot",
    "identity": "1000:1000:4,27",
    "history_file": "/home/u/.faccess_history"
}`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cfgFile != "" && !filepath.IsAbs(cfgFile) {
			abs, err := filepath.Abs(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to get absolute path: %v", err)
			}
			cfgFile = abs
		}

		var err error
		config, err = LoadConfig(cfgFile, bindFlags(cmd))
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		level, err := logging.ParseLevel(config.LogLevel)
		if err != nil {
			return err
		}
		if err := logging.Initialize(&logging.Config{
			Level:           level,
			AppLogPath:      config.LogFile,
			DecisionLogPath: config.DecisionLog,
		}); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Fprintf(cmd.OutOrStdout(), "faccess %s\n", version)
			return nil
		}
		return cmd.Help()
	},
}

// flagKeys maps persistent flags onto config keys
var flagKeys = map[string]string{
	"log-level": "log_level",
	"log-file":  "log_file",
	"root":      "root",
	"as":        "identity",
}

func bindFlags(cmd *cobra.Command) func(v *viper.Viper) error {
	return func(v *viper.Viper) error {
		for flag, key := range flagKeys {
			if f := cmd.Flags().Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// newChecker builds a checker from the loaded configuration
func newChecker(config *Config) (*access.Checker, error) {
	var accessor metadata.Accessor = metadata.NewOsAccessor()
	if config.Root != "" {
		rooted, err := metadata.NewRootedAccessor(config.Root)
		if err != nil {
			return nil, err
		}
		accessor = rooted
	}

	var resolver identity.Resolver = identity.NewProcessResolver()
	if config.Identity != "" {
		id, err := identity.Parse(config.Identity)
		if err != nil {
			return nil, err
		}
		resolver = identity.NewStaticResolver(id)
	}

	checker, err := access.NewChecker(accessor, resolver)
	if err != nil {
		return nil, err
	}
	checker.SetLogger(logging.App.With("component", "access"))
	return checker, nil
}

func init() {
	rootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "show version information")

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "path to config file (JSON or YAML)")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("log-file", "", "write application logs to this file")
	flags.String("root", "", "resolve paths beneath this directory")
	flags.String("as", "", "check as uid:gid[:g1,g2,...] instead of the calling process")

	rootCmd.AddCommand(newCheckCmd(), newTypeCmd(), newShellCmd())
}
