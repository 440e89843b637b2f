package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/gradgoals/gradgoals/internal/quiz"
	"github.com/gradgoals/gradgoals/internal/render"
)

const masteredMessage = "You've mastered every question in this topic!"

func newChallengeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "challenge [category]",
		Short: "Answer money questions until you master a topic",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireUser(); err != nil {
				return err
			}
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			r := a.runner()
			if err := r.Init(ctx); err != nil {
				return err
			}

			category := ""
			if len(args) == 1 {
				category = args[0]
			} else {
				picked, err := pickCategory(r)
				if err != nil {
					return err
				}
				category = picked
			}
			if _, ok := r.Session().Category(category); !ok {
				return fmt.Errorf("unknown category %q", category)
			}
			r.Select(category)
			return playLoop(cmd, r, out)
		},
	}
}

func pickCategory(r *quiz.Runner) (string, error) {
	s := r.Session()
	var opts []huh.Option[string]
	for _, c := range s.Categories() {
		label := c.Name
		if s.Loaded() {
			label = fmt.Sprintf("%s  (%s)", c.Name, s.Summary(c.ID))
		}
		opts = append(opts, huh.NewOption(label, c.ID))
	}
	if len(opts) == 0 {
		return "", errors.New("the server returned no categories")
	}

	var id string
	err := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Pick a topic").
			Options(opts...).
			Value(&id),
	)).Run()
	return id, err
}

func playLoop(cmd *cobra.Command, r *quiz.Runner, out io.Writer) error {
	ctx := cmd.Context()
	for {
		sel, err := r.Next(ctx)
		if err != nil {
			return err
		}
		if sel.Done {
			fmt.Fprintln(out, render.Warn(masteredMessage))
			return nil
		}

		var answer string
		err = huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title(sel.Question.Prompt).
				Placeholder("Type a number, blank to quit").
				Value(&answer),
		)).Run()
		if errors.Is(err, huh.ErrUserAborted) || strings.TrimSpace(answer) == "" {
			return nil
		}
		if err != nil {
			return err
		}

		res, err := r.Submit(ctx, answer)
		if err != nil {
			return err
		}
		fmt.Fprint(out, render.Answer(res))
		fmt.Fprintln(out, r.Session().Summary(r.Category()))

		again := true
		err = huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("Another question?").
				Value(&again),
		)).Run()
		if err != nil || !again {
			return nil
		}
	}
}

func newProgressCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Show topic progress and badges",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireUser(); err != nil {
				return err
			}
			r := a.runner()
			if err := r.Init(cmd.Context()); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, render.Overview(r.Session().Overview()))
			fmt.Fprintln(out)
			fmt.Fprint(out, render.Categories(r.Session()))
			return nil
		},
	}
}

func newResetCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all challenge progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireUser(); err != nil {
				return err
			}
			if !yes {
				confirmed := false
				err := huh.NewForm(huh.NewGroup(
					huh.NewConfirm().
						Title("Reset all challenge progress?").
						Affirmative("Reset").
						Negative("Cancel").
						Value(&confirmed),
				)).Run()
				if err != nil || !confirmed {
					return err
				}
			}
			r := a.runner()
			if err := r.Init(cmd.Context()); err != nil {
				return err
			}
			if err := r.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Progress reset.")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")
	return cmd
}
