package app

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Crashthatch/openroutermodeltable/internal/aggregate"
	"github.com/Crashthatch/openroutermodeltable/internal/render"
	"github.com/Crashthatch/openroutermodeltable/pkg/constants"
	"github.com/Crashthatch/openroutermodeltable/pkg/errors"
	"github.com/Crashthatch/openroutermodeltable/pkg/openrouter"
)

// CreateGenerateCommand creates the generate command, the end-to-end
// pipeline: fetch models, analytics, and performance stats, snapshot
// everything, and render the HTML page.
func (a *App) CreateGenerateCommand() *cobra.Command {
	var (
		limit         int
		out           string
		markdownOut   string
		skipStats     bool
		skipAnalytics bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Fetch all data and render the models table",
		Long: `Generate runs the full pipeline: fetches the model list and token
analytics from OpenRouter, aggregates per-model performance statistics
in rate-limited batches, saves JSON snapshots of everything fetched,
and renders the static HTML table.

A model whose statistics cannot be fetched still appears in the table
with N/A statistic cells. A failure to fetch the model list or the
analytics data aborts the run.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			client := a.Client()
			store := a.Store()
			logger := a.Logger()

			models, err := client.ListModels(ctx)
			if err != nil {
				return err
			}
			logger.Info().Int("count", len(models)).Msg("fetched models")
			if err := store.SaveModels(models); err != nil {
				return err
			}

			counts := map[string]openrouter.TokenCounts{}
			if !skipAnalytics {
				counts, err = client.Analytics(ctx)
				if err != nil {
					return err
				}
				logger.Info().Int("count", len(counts)).Msg("fetched analytics")
				if err := store.SaveAnalytics(counts); err != nil {
					return err
				}
			}

			stats := map[string]*aggregate.ModelStats{}
			if !skipStats {
				stats, err = a.Batcher().Aggregate(ctx, models, limit)
				if err != nil {
					return err
				}
				if err := store.SaveStats(stats); err != nil {
					return err
				}
			}

			page := render.BuildPage(models, stats, counts)

			htmlPath := out
			if htmlPath == "" {
				htmlPath = filepath.Join(a.config.DataDir, a.config.PageFile)
			}
			renderer, err := render.NewHTML()
			if err != nil {
				return err
			}
			if err := renderer.RenderToFile(htmlPath, page); err != nil {
				return err
			}
			logger.Info().Str("path", htmlPath).Int("rows", len(page.Rows)).Msg("wrote table")

			if markdownOut != "" {
				if err := writeMarkdown(markdownOut, page); err != nil {
					return err
				}
				logger.Info().Str("path", markdownOut).Msg("wrote markdown table")
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "fetch stats for at most this many models (0 = all)")
	cmd.Flags().StringVar(&out, "out", "", "output HTML file (default <data-dir>/index.html)")
	cmd.Flags().StringVar(&markdownOut, "markdown", "", "also write a markdown table to this file")
	cmd.Flags().BoolVar(&skipStats, "skip-stats", false, "skip the per-model performance stats fetch")
	cmd.Flags().BoolVar(&skipAnalytics, "skip-analytics", false, "skip the token analytics fetch")
	cmd.Flags().StringVar(&a.config.DataDir, "data-dir", a.config.DataDir, "directory for snapshots and default output")

	return cmd
}

// writeMarkdown renders the page as a markdown table to path.
func writeMarkdown(path string, page render.Page) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	defer func() { _ = f.Close() }()
	return render.NewMarkdown().Render(f, page)
}
