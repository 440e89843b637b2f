package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gradgoals/gradgoals/internal/client"
	"github.com/gradgoals/gradgoals/internal/models"
	"github.com/gradgoals/gradgoals/internal/render"
)

func newPayoffCmd(a *app) *cobra.Command {
	var req models.PayoffRequest
	cmd := &cobra.Command{
		Use:   "payoff",
		Short: "How long a fixed payment takes to clear a credit card",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.client().CreditCard(cmd.Context(), req)
			if err != nil {
				return calculatorError(err)
			}
			fmt.Fprint(cmd.OutOrStdout(), render.Payoff(res))
			return nil
		},
	}
	cmd.Flags().Float64Var(&req.Balance, "balance", 0, "Current balance in dollars")
	cmd.Flags().Float64Var(&req.APR, "apr", 0, "Annual percentage rate, e.g. 22.9")
	cmd.Flags().Float64Var(&req.Payment, "payment", 0, "Fixed monthly payment")
	_ = cmd.MarkFlagRequired("balance")
	_ = cmd.MarkFlagRequired("apr")
	_ = cmd.MarkFlagRequired("payment")
	return cmd
}

func newLoanCmd(a *app) *cobra.Command {
	var (
		req          models.LoanRequest
		rows         int
		useReference bool
	)
	cmd := &cobra.Command{
		Use:   "loan",
		Short: "Monthly payment for a student loan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := a.client()
			if useReference {
				rate, err := c.ReferenceRate(cmd.Context())
				if err != nil {
					return fmt.Errorf("reference rate: %w", err)
				}
				req.APR = rate.SuggestedAPR
				fmt.Fprintf(cmd.OutOrStdout(), "Using suggested APR %.2f%% (as of %s)\n\n", rate.SuggestedAPR, rate.AsOf)
			} else if !cmd.Flags().Changed("apr") {
				return errors.New("pass --apr or --reference-rate")
			}
			res, err := c.StudentLoan(cmd.Context(), req)
			if err != nil {
				return calculatorError(err)
			}
			fmt.Fprint(cmd.OutOrStdout(), render.Loan(res, rows))
			return nil
		},
	}
	cmd.Flags().Float64Var(&req.Principal, "principal", 0, "Amount borrowed")
	cmd.Flags().Float64Var(&req.APR, "apr", 0, "Annual percentage rate")
	cmd.Flags().IntVar(&req.Years, "years", 10, "Repayment term in years")
	cmd.Flags().BoolVar(&req.Schedule, "schedule", false, "Print the repayment schedule")
	cmd.Flags().IntVar(&rows, "rows", 12, "Schedule rows to print (0 for all)")
	cmd.Flags().BoolVar(&useReference, "reference-rate", false, "Use the suggested APR from the Treasury benchmark")
	_ = cmd.MarkFlagRequired("principal")
	return cmd
}

func newRateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rate",
		Short: "Suggested student loan APR from the 10-year Treasury yield",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rate, err := a.client().ReferenceRate(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), render.Rate(rate))
			return nil
		},
	}
}

// calculatorError replaces a 400 from the calculators with the user-facing message.
func calculatorError(err error) error {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Status == 400 {
		return errors.New(models.MsgInvalidNumbers)
	}
	return err
}
