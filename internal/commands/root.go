// Package commands implements the gradgoals CLI.
package commands

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gradgoals/gradgoals/internal/client"
	"github.com/gradgoals/gradgoals/internal/config"
	"github.com/gradgoals/gradgoals/internal/quiz"
)

var _ quiz.API = (*client.Client)(nil)

type app struct {
	configPath string
	apiURL     string
	userID     string
	verbose    bool

	cfg config.ClientConfig
	log *logrus.Logger
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{log: logrus.New()}
	a.log.SetOutput(os.Stderr)
	a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	root := &cobra.Command{
		Use:          "gradgoals",
		Short:        "Money skills practice for new grads",
		Long:         "Run the GradGoals calculators and money challenges against a GradGoals server.",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.load()
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", config.ClientConfigPath(), "Config file")
	root.PersistentFlags().StringVar(&a.apiURL, "api", "", "Server URL (overrides config)")
	root.PersistentFlags().StringVarP(&a.userID, "user", "u", "", "User ID (overrides config)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Debug logging")

	root.AddCommand(
		newPayoffCmd(a),
		newLoanCmd(a),
		newRateCmd(a),
		newChallengeCmd(a),
		newProgressCmd(a),
		newResetCmd(a),
		newLoginCmd(a),
		newConfigCmd(a),
	)
	return root
}

func (a *app) load() error {
	a.log.SetLevel(logrus.WarnLevel)
	if a.verbose {
		a.log.SetLevel(logrus.DebugLevel)
	}

	cfg, err := config.LoadClient(a.configPath)
	if err != nil {
		return err
	}
	if a.apiURL != "" {
		cfg.API.BaseURL = a.apiURL
	}
	if a.userID != "" {
		cfg.API.UserID = a.userID
		// An explicit user switches to query-parameter identity.
		cfg.API.Token = ""
	}
	a.cfg = cfg
	a.log.Debugf("Using server %s", cfg.API.BaseURL)
	return nil
}

func (a *app) client() *client.Client {
	return client.New(a.cfg.API.BaseURL, a.cfg.API.UserID, a.cfg.API.Token)
}

func (a *app) runner() *quiz.Runner {
	return quiz.NewRunner(a.client(), a.log, a.cfg.Quiz.MaxRetries)
}

func (a *app) requireUser() error {
	if a.cfg.API.UserID == "" && a.cfg.API.Token == "" {
		return fmt.Errorf("no user configured: pass --user or run `gradgoals login`")
	}
	return nil
}
