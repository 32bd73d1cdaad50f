package app

import (
	"github.com/spf13/cobra"
)

// CreateFetchCommand creates the fetch command and its per-resource
// subcommands. Each subcommand fetches one resource and saves its
// snapshot without rendering anything.
func (a *App) CreateFetchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch [resource]",
		Short: "Fetch a single resource and save its snapshot",
		Long: `Fetch retrieves one resource from OpenRouter and writes its JSON
snapshot into the data directory. Useful for refreshing one piece of
data without rerunning the whole pipeline.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&a.config.DataDir, "data-dir", a.config.DataDir, "directory for snapshots")

	cmd.AddCommand(a.newFetchModelsCommand())
	cmd.AddCommand(a.newFetchAnalyticsCommand())
	cmd.AddCommand(a.newFetchStatsCommand())

	return cmd
}

func (a *App) newFetchModelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "Fetch the model list",
		RunE: func(cmd *cobra.Command, _ []string) error {
			models, err := a.Client().ListModels(cmd.Context())
			if err != nil {
				return err
			}
			if err := a.Store().SaveModels(models); err != nil {
				return err
			}
			a.Logger().Info().Int("count", len(models)).Str("dir", a.Store().Dir()).Msg("saved models snapshot")
			return nil
		},
	}
}

func (a *App) newFetchAnalyticsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "analytics",
		Short: "Fetch token usage analytics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			counts, err := a.Client().Analytics(cmd.Context())
			if err != nil {
				return err
			}
			if err := a.Store().SaveAnalytics(counts); err != nil {
				return err
			}
			a.Logger().Info().Int("count", len(counts)).Str("dir", a.Store().Dir()).Msg("saved analytics snapshot")
			return nil
		},
	}
}

func (a *App) newFetchStatsCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Fetch per-model performance statistics",
		Long: `Fetch stats aggregates performance statistics for the models in the
saved models snapshot. Run fetch models first if the snapshot is
missing.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store := a.Store()
			models, err := store.LoadModels()
			if err != nil {
				return err
			}

			stats, err := a.Batcher().Aggregate(cmd.Context(), models.Data, limit)
			if err != nil {
				return err
			}
			if err := store.SaveStats(stats); err != nil {
				return err
			}
			a.Logger().Info().Int("count", len(stats)).Str("dir", store.Dir()).Msg("saved stats snapshot")
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "fetch stats for at most this many models (0 = all)")

	return cmd
}
