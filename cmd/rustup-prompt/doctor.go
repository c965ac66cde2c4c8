// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rustup-prompt/rustup-prompt/internal/database"
	"github.com/rustup-prompt/rustup-prompt/internal/issue"
	"github.com/rustup-prompt/rustup-prompt/internal/overrides"
	"github.com/rustup-prompt/rustup-prompt/internal/resolve"

	"github.com/spf13/cobra"
)

func newDoctorCommand(app *App, opts *globalOptions) *cobra.Command {
	var style string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Explain which override database is used and why",
		Long: `Probe every override database location, show which one is selected,
check that it parses, and show how the working directory resolves.

When something is wrong, guidance is rendered as Markdown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.runDoctor(cmd.Context(), opts, style)
		},
	}

	cmd.Flags().StringVar(&style, "style", "auto", "glamour style for guidance (auto, dark, light, notty)")
	cmd.Flags().StringVarP(&opts.dir, "dir", "C", "", "resolve for this directory instead of the working directory")
	return cmd
}

// runDoctor builds the whole report first and writes it once, so a failed
// write or render is the command's error.
func (a *App) runDoctor(ctx context.Context, opts *globalOptions, style string) error {
	var b strings.Builder
	err := a.doctorReport(ctx, &b, opts, style)
	if _, werr := io.WriteString(a.stdout, b.String()); werr != nil {
		return werr
	}
	return err
}

func (a *App) doctorReport(ctx context.Context, b *strings.Builder, opts *globalOptions, style string) error {
	b.WriteString(TitleStyle.Render("rustup-prompt doctor") + "\n")

	s, cfgErr := a.newSession(ctx, opts)
	if cfgErr != nil {
		b.WriteString(failure(cfgErr, s.cfg.Verbose))
		if err := renderIssue(b, issue.ConfigLoadFailedId, style); err != nil {
			return err
		}
	}

	home, err := s.homeDir(opts)
	if err != nil {
		b.WriteString(failure(err, s.cfg.Verbose))
		return renderIssue(b, issue.HomeNotFoundId, style)
	}
	fmt.Fprintf(b, "home: %s\n\n", home)

	probes, err := a.locator(s).Probe(ctx, home)
	if err != nil {
		return err
	}
	for _, p := range probes {
		b.WriteString(formatProbe(p) + "\n")
	}
	b.WriteString("\n")

	store, c, err := a.locator(s).Open(ctx, home)
	switch {
	case errors.Is(err, database.ErrMissingDatabase):
		b.WriteString("database: " + SubtitleStyle.Render("none") + "\n")
		return renderIssue(b, issue.DatabaseMissingId, style)
	case errors.Is(err, overrides.ErrMalformedDatabase):
		b.WriteString(failure(err, s.cfg.Verbose))
		return renderIssue(b, issue.DatabaseMalformedId, style)
	case err != nil:
		b.WriteString(failure(err, s.cfg.Verbose))
		return renderIssue(b, issue.DatabaseUnreadableId, style)
	}
	fmt.Fprintf(b, "database: %s (%s, %d overrides)\n", c.Path, c.Format, store.Len())

	dir, err := a.startDir(opts)
	if err != nil {
		b.WriteString(ErrorStyle.Render("✗ ") + err.Error() + "\n")
		return renderIssue(b, issue.WorkdirUnavailableId, style)
	}
	result := resolve.Resolve(store, dir.String())
	if result.Found {
		fmt.Fprintf(b, "%s: %s (override for %s)\n", dir, SuccessStyle.Render(result.Name), result.Path)
	} else {
		fmt.Fprintf(b, "%s: %s\n", dir, SubtitleStyle.Render(resolve.Fallback))
	}
	return nil
}

func failure(err error, verbose bool) string {
	return ErrorStyle.Render("✗ ") + formatErrorForDisplay(err, verbose) + "\n"
}

func formatProbe(p database.Probe) string {
	label := fmt.Sprintf("%-10s", p.Status)
	line := fmt.Sprintf("%s (%s)", p.Candidate.Path, p.Candidate.Format)
	switch p.Status {
	case database.StatusPresent:
		return "  " + SuccessStyle.Render("✓ "+label) + " " + line
	case database.StatusUnreadable:
		return "  " + ErrorStyle.Render("✗ "+label) + " " + line + ": " + p.Err.Error()
	default:
		return "  " + SubtitleStyle.Render("· "+label) + " " + line
	}
}

func renderIssue(b *strings.Builder, id issue.Id, style string) error {
	out, err := issue.Get(id).Render(style)
	if err != nil {
		return err
	}
	b.WriteString(out)
	return nil
}
