// Package cli provides the command-line interface for brandkit.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gogpu/brandkit"
)

// flags holds the parsed command-line options of one invocation.
type flags struct {
	logo            string
	assetsDir       string
	storeDir        string
	iconsOnly       bool
	bannersOnly     bool
	screenshotsOnly bool
	verbose         bool
}

// NewRootCmd returns the brandkit command.
func NewRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "brandkit",
		Short: "Generate extension icons, store banners and screenshots",
		Long: `Generate extension icons, store banners and screenshots

Renders every packaging artifact of the extension from one master logo:
PNG icons at each size, an SVG icon, one banner per store, the popup
header banner and two UI screenshots.

A missing or unreadable logo is replaced by a generated placeholder.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.logo, "logo", brandkit.DefaultLogoPath, "path to the master logo")
	fl.StringVar(&f.assetsDir, "assets-dir", brandkit.DefaultAssetsDir, "output root for icons and the header banner")
	fl.StringVar(&f.storeDir, "store-dir", brandkit.DefaultStoreDir, "output root for store banners and screenshots")
	fl.BoolVar(&f.iconsOnly, "icons-only", false, "generate only the icons")
	fl.BoolVar(&f.bannersOnly, "banners-only", false, "generate only the banners")
	fl.BoolVar(&f.screenshotsOnly, "screenshots-only", false, "generate only the screenshots")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "log progress to stderr")
	cmd.MarkFlagsMutuallyExclusive("icons-only", "banners-only", "screenshots-only")

	return cmd
}

// Execute runs the CLI with fang enhancements.
func Execute(ctx context.Context) error {
	return fang.Execute(ctx, NewRootCmd(), fang.WithVersion(brandkit.Version))
}

func run(cmd *cobra.Command, f flags) error {
	if f.verbose {
		brandkit.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		defer brandkit.SetLogger(nil)
	}

	g, err := brandkit.New(
		brandkit.WithLogoPath(f.logo),
		brandkit.WithAssetsDir(f.assetsDir),
		brandkit.WithStoreDir(f.storeDir),
	)
	if err != nil {
		return err
	}

	report := generate(g, f)
	printSummary(cmd.OutOrStdout(), report)

	if err := report.Err(); err != nil {
		return fmt.Errorf("%d of %d artifacts failed: %w",
			len(report.Failed()), len(report.Artifacts), err)
	}
	return nil
}

// generate runs the step group selected by the flags.
func generate(g *brandkit.Generator, f flags) *brandkit.Report {
	switch {
	case f.iconsOnly:
		r := &brandkit.Report{Logo: g.LoadLogo()}
		r.Add(g.GenerateIcons(r.Logo)...)
		r.Add(g.GenerateVectorIcon(r.Logo))
		return r
	case f.bannersOnly:
		r := &brandkit.Report{Logo: g.LoadLogo()}
		r.Add(g.GenerateBanners(r.Logo)...)
		r.Add(g.GenerateHeaderBanner(r.Logo))
		return r
	case f.screenshotsOnly:
		r := &brandkit.Report{}
		r.Add(g.GenerateScreenshots()...)
		return r
	default:
		return g.GenerateAll()
	}
}

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true)
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	kindStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("141"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func printSummary(w io.Writer, r *brandkit.Report) {
	if r.Logo.Placeholder {
		_, _ = fmt.Fprintf(w, "%s logo unavailable, using placeholder (%v)\n\n",
			warnStyle.Render("WARN"), r.Logo.Reason)
	}

	for _, a := range r.Artifacts {
		kind := kindStyle.Render(fmt.Sprintf("%-13s", a.Kind))
		if a.OK() {
			_, _ = fmt.Fprintf(w, "  %s %s %s\n", okStyle.Render("OK  "), kind, a.Path)
			continue
		}
		_, _ = fmt.Fprintf(w, "  %s %s %s %s\n", failStyle.Render("FAIL"), kind, a.Path, dimStyle.Render(a.Err.Error()))
	}

	_, _ = fmt.Fprintf(w, "\n%d artifact(s) written", len(r.Succeeded()))
	if n := len(r.Failed()); n > 0 {
		_, _ = fmt.Fprintf(w, ", %s", failStyle.Render(fmt.Sprintf("%d failed", n)))
	}
	_, _ = fmt.Fprintln(w)
}
