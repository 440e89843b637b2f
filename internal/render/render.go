// Package render formats calculator results and challenge progress for the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/gradgoals/gradgoals/internal/amortization"
	"github.com/gradgoals/gradgoals/internal/models"
	"github.com/gradgoals/gradgoals/internal/money"
	prog "github.com/gradgoals/gradgoals/internal/progress"
)

var (
	ColorText   = lipgloss.Color("#FFFCF0")
	ColorMuted  = lipgloss.Color("#6F6E69")
	ColorAccent = lipgloss.Color("#3AA99F")
	ColorGreen  = lipgloss.Color("#879A39")
	ColorOrange = lipgloss.Color("#DA702C")
	ColorRed    = lipgloss.Color("#D14D41")
	ColorYellow = lipgloss.Color("#D0A215")
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	labelStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	valueStyle  = lipgloss.NewStyle().Foreground(ColorText)
	goodStyle   = lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)
	badStyle    = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)
	warnStyle   = lipgloss.NewStyle().Foreground(ColorOrange)
)

const (
	labelWidth = 16
	barWidth   = 24
)

func row(label, value string) string {
	return "  " + labelStyle.Render(fmt.Sprintf("%-*s", labelWidth, label)) + valueStyle.Render(value) + "\n"
}

// Payoff renders a credit card payoff result.
func Payoff(res models.PayoffResponse) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Credit card payoff") + "\n")
	if !res.PayoffPossible {
		b.WriteString("  " + badStyle.Render(models.MsgPaymentTooSmall) + "\n")
		if res.FinalBalance != nil {
			b.WriteString(row(fmt.Sprintf("After %d mo", amortization.MaxPayoffMonths), money.Format(*res.FinalBalance)))
		}
		return b.String()
	}
	if res.Months != nil {
		b.WriteString(row("Months", fmt.Sprintf("%d", *res.Months)))
	}
	if res.TotalInterest != nil {
		b.WriteString(row("Total interest", money.Format(*res.TotalInterest)))
	}
	return b.String()
}

// Loan renders a student loan result and, when present, up to maxRows schedule rows.
// A non-positive maxRows prints the whole schedule.
func Loan(res models.LoanResponse, maxRows int) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Student loan") + "\n")
	b.WriteString(row("Monthly payment", money.Format(res.MonthlyPayment)))
	b.WriteString(row("Total paid", money.Format(res.TotalPaid)))
	b.WriteString(row("Total interest", money.Format(res.TotalInterest)))
	if len(res.Schedule) > 0 {
		b.WriteString("\n" + Schedule(res.Schedule, maxRows))
	}
	return b.String()
}

// Schedule renders installment rows as a fixed-width table.
func Schedule(rows []amortization.Installment, maxRows int) string {
	var b strings.Builder
	b.WriteString(labelStyle.Render(fmt.Sprintf("  %4s  %-10s  %12s  %12s  %12s  %12s",
		"#", "Due", "Payment", "Principal", "Interest", "Balance")) + "\n")
	shown := rows
	if maxRows > 0 && len(rows) > maxRows {
		shown = rows[:maxRows]
	}
	for _, r := range shown {
		b.WriteString(fmt.Sprintf("  %4d  %-10s  %12s  %12s  %12s  %12s\n",
			r.Number, r.DueDate.Format("2006-01-02"),
			money.Format(r.Payment), money.Format(r.Principal),
			money.Format(r.Interest), money.Format(r.Balance)))
	}
	if len(shown) < len(rows) {
		b.WriteString(labelStyle.Render(fmt.Sprintf("  ... %d more payments", len(rows)-len(shown))) + "\n")
	}
	return b.String()
}

// Rate renders the suggested loan APR.
func Rate(rate models.ReferenceRate) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Reference rate") + "\n")
	b.WriteString(row("10-yr Treasury", fmt.Sprintf("%.2f%%", rate.Benchmark)))
	b.WriteString(row("Add-on", fmt.Sprintf("%.2f%%", rate.AddOn)))
	b.WriteString(row("Suggested APR", fmt.Sprintf("%.2f%%", rate.SuggestedAPR)))
	b.WriteString(row("As of", rate.AsOf))
	return b.String()
}

// Answer renders a graded answer.
func Answer(res models.AnswerResult) string {
	var b strings.Builder
	if res.Correct {
		b.WriteString(goodStyle.Render(res.Message))
	} else {
		b.WriteString(badStyle.Render(res.Message))
	}
	b.WriteString("\n")
	if res.Explanation != "" {
		b.WriteString(labelStyle.Render(res.Explanation) + "\n")
	}
	return b.String()
}

// Categories lists every topic with its progress summary. Until progress has loaded the
// summaries are left blank.
func Categories(s *prog.Session) string {
	var b strings.Builder
	loaded := s.Loaded()
	for _, c := range s.Categories() {
		summary := ""
		if loaded {
			summary = s.Summary(c.ID)
		}
		b.WriteString(fmt.Sprintf("  %-16s %-40s %s\n", c.ID, valueStyle.Render(c.Name), labelStyle.Render(summary)))
	}
	return b.String()
}

func barColor(pct int) string {
	switch {
	case pct >= 75:
		return string(ColorGreen)
	case pct >= 50:
		return string(ColorAccent)
	case pct >= 25:
		return string(ColorYellow)
	default:
		return string(ColorOrange)
	}
}

// Bar renders a labelled percentage bar.
func Bar(label string, pct int) string {
	bar := progress.New(
		progress.WithSolidFill(barColor(pct)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(ColorMuted)
	return "  " + labelStyle.Render(fmt.Sprintf("%-*s", 38, label)) + " " +
		bar.ViewAs(float64(pct)/100) + " " + valueStyle.Render(fmt.Sprintf("%3d%%", pct))
}

// Overview renders overall progress, one bar per topic and the badge list.
func Overview(ov prog.Overview) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Your progress") + "\n")
	b.WriteString(Bar(fmt.Sprintf("Overall (%d/%d)", ov.Correct, ov.Total), ov.Percent) + "\n\n")
	for _, t := range ov.Topics {
		b.WriteString(Bar(t.Name, t.Percent) + "\n")
	}
	b.WriteString("\n" + headerStyle.Render("Badges") + "\n")
	for _, badge := range ov.Badges {
		if badge.Earned {
			b.WriteString("  " + goodStyle.Render("* "+badge.Name) + "\n")
		} else {
			b.WriteString("  " + labelStyle.Render(fmt.Sprintf("- %s (%d%%)", badge.Name, badge.Threshold)) + "\n")
		}
	}
	return b.String()
}

// Warn renders a warning line.
func Warn(msg string) string {
	return warnStyle.Render(msg)
}
