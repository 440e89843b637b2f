package commands

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/gradgoals/gradgoals/internal/config"
)

func newLoginCmd(a *app) *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the token in the config file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var password string
			fields := []huh.Field{}
			if email == "" {
				fields = append(fields, huh.NewInput().Title("Email").Value(&email))
			}
			fields = append(fields, huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&password))
			if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
				return err
			}

			token, err := a.client().Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			cfg, err := config.LoadClient(a.configPath)
			if err != nil {
				return err
			}
			cfg.API.BaseURL = a.cfg.API.BaseURL
			cfg.API.Token = token
			if err := config.SaveClient(a.configPath, cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s. Token saved to %s\n", email, a.configPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	return cmd
}

func newConfigCmd(a *app) *cobra.Command {
	var save bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the current configuration",
		Long:  "Show the current configuration. With --save, --api and --user are written to the config file.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if save {
				if err := config.SaveClient(a.configPath, a.cfg); err != nil {
					return err
				}
				fmt.Fprintf(out, "Saved %s\n", a.configPath)
			}
			fmt.Fprintf(out, "Config file: %s\n", a.configPath)
			fmt.Fprintf(out, "Server:      %s\n", a.cfg.API.BaseURL)
			switch {
			case a.cfg.API.Token != "":
				fmt.Fprintln(out, "Identity:    signed in (token)")
			case a.cfg.API.UserID != "":
				fmt.Fprintf(out, "Identity:    %s\n", a.cfg.API.UserID)
			default:
				fmt.Fprintln(out, "Identity:    not configured")
			}
			fmt.Fprintf(out, "Max retries: %d\n", a.cfg.Quiz.MaxRetries)
			return nil
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "Persist flag overrides")
	return cmd
}
