package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ben-spoonradio/examdrill/internal/exam"
	"github.com/ben-spoonradio/examdrill/internal/store"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "examdrill",
	Short: "Timed drill sessions in your terminal",
	Long:  "Examdrill — terminal app that runs short, timed drill sessions against a checklist of questions.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to config file (default examdrill.yaml in . or ~/.config/examdrill)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides EXAMDRILL_DB env var)")
	rootCmd.Flags().String("source", "", "Question file to load (.json, .yaml, or .xlsx)")
	rootCmd.Flags().Int("questions", exam.DefaultQuestionCount, "Number of questions drawn per session")
	rootCmd.Flags().Duration("duration", exam.DefaultDuration, "Session length")

	_ = viper.BindPFlag("source", rootCmd.Flags().Lookup("source"))
	_ = viper.BindPFlag("questions", rootCmd.Flags().Lookup("questions"))
	_ = viper.BindPFlag("duration", rootCmd.Flags().Lookup("duration"))

	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(versionCmd)
}

// initConfig loads examdrill.yaml and EXAMDRILL_* env vars when present.
// Flags still win over both.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("examdrill")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "examdrill"))
		}
	}

	viper.SetEnvPrefix("EXAMDRILL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the config file / EXAMDRILL_DB env var via viper, then
// the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if p := viper.GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the database path and opens the results store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
