package app

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Crashthatch/openroutermodeltable/internal/render"
)

// CreateRenderCommand creates the render command, which rebuilds the HTML
// page from previously saved snapshots without touching the network.
func (a *App) CreateRenderCommand() *cobra.Command {
	var (
		out         string
		markdownOut string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the table from saved snapshots",
		Long: `Render rebuilds the HTML table from the JSON snapshots written by a
previous generate or fetch run. The models snapshot is required; stats
and analytics snapshots are optional and missing ones render as N/A.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			store := a.Store()
			logger := a.Logger()

			models, err := store.LoadModels()
			if err != nil {
				return err
			}
			stats, err := store.LoadStats()
			if err != nil {
				return err
			}
			counts, err := store.LoadAnalytics()
			if err != nil {
				return err
			}

			page := render.BuildPage(models.Data, stats.Data, counts.Data)

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

	cmd.Flags().StringVar(&out, "out", "", "output HTML file (default <data-dir>/index.html)")
	cmd.Flags().StringVar(&markdownOut, "markdown", "", "also write a markdown table to this file")
	cmd.Flags().StringVar(&a.config.DataDir, "data-dir", a.config.DataDir, "directory holding the snapshots")

	return cmd
}
