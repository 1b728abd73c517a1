package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"xclaunch/internal/adapters/filesystem"
	"xclaunch/internal/adapters/gitremote"
	"xclaunch/internal/adapters/prompt"
	"xclaunch/internal/adapters/shell"
	"xclaunch/internal/adapters/sqlite"
	"xclaunch/internal/adapters/tui"
	"xclaunch/internal/application"
	"xclaunch/internal/config"
	"xclaunch/internal/logging"
)

var (
	configPath string
	dbPath     string
	verbose    bool

	cfg *config.Config
	env *application.Env
	db  *gorm.DB
)

var rootCmd = &cobra.Command{
	Use:   "xclaunch",
	Short: "Find and launch Xcode projects by name or shortcut",
	Long: `xclaunch registers local Xcode projects and Swift packages in a
Category > Group > Project hierarchy that mirrors their folders on disk,
so they can be opened by name or shortcut.

A group's shortcut is shared with its main project: "xclaunch open w"
opens the main project of the group with shortcut w.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		return setup()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return teardown()
	},
}

// Execute runs the root command
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	if teardownErr := teardown(); teardownErr != nil && err == nil {
		fmt.Fprintln(os.Stderr, "Error:", teardownErr)
		err = teardownErr
	}
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default "+config.DefaultConfigPath()+")")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "registry database (overrides database.path)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")
}

func setup() error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}
	if dbPath != "" {
		cfg.Database.Path = config.ExpandHome(dbPath)
	}
	if verbose {
		cfg.Log.Level = "debug"
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	db, err = sqlite.Open(cfg.Database.Path, log)
	if err != nil {
		return err
	}

	prompter := prompt.NewHuh()
	env = &application.Env{
		Store:     sqlite.NewStore(db, log),
		Settings:  sqlite.NewSettings(db),
		FS:        filesystem.NewOSFileSystem(),
		Prompt:    prompter,
		Tree:      tui.NewNavigator(),
		Shell:     shell.NewShell(),
		Git:       gitremote.NewRemotes(log),
		Clipboard: shell.Clipboard{},
		Log:       log,
		IDE:       cfg.IDE.App,
	}
	log.Debug("registry opened", zap.String("path", cfg.Database.Path))
	return nil
}

func teardown() error {
	if env != nil {
		_ = env.Logger().Sync()
	}
	if db == nil {
		return nil
	}
	err := sqlite.Close(db)
	db = nil
	return err
}

// GetEnv returns the initialized environment
func GetEnv() *application.Env {
	return env
}
