package app

import (
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Crashthatch/openroutermodeltable/internal/output"
	"github.com/Crashthatch/openroutermodeltable/pkg/openrouter"
)

// CreateListCommand creates the list command and its subcommands.
func (a *App) CreateListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [resource]",
		Short: "List fetched resources",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&a.config.DataDir, "data-dir", a.config.DataDir, "directory for snapshots")

	cmd.AddCommand(a.newListModelsCommand())
	cmd.AddCommand(a.newListStatsCommand())

	return cmd
}

func (a *App) newListModelsCommand() *cobra.Command {
	var fromSnapshot bool

	cmd := &cobra.Command{
		Use:   "models",
		Short: "List OpenRouter models",
		Long: `List models prints the model list as a table, JSON, or YAML. By
default the list is fetched live; --snapshot reads the saved models
snapshot instead.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var models []openrouter.Model
			if fromSnapshot {
				snap, err := a.Store().LoadModels()
				if err != nil {
					return err
				}
				models = snap.Data
			} else {
				var err error
				models, err = a.Client().ListModels(cmd.Context())
				if err != nil {
					return err
				}
			}

			format := output.DetectFormat(a.config.Format)
			formatter := output.NewFormatter(format)

			switch format {
			case output.FormatTable, output.FormatWide:
				return formatter.Format(os.Stdout, output.ModelsToTableData(models, format == output.FormatWide))
			default:
				return formatter.Format(os.Stdout, models)
			}
		},
	}

	cmd.Flags().BoolVar(&fromSnapshot, "snapshot", false, "read the saved snapshot instead of fetching")

	return cmd
}

func (a *App) newListStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "List aggregated model statistics from the saved snapshot",
		RunE: func(_ *cobra.Command, _ []string) error {
			stats, err := a.Store().LoadStats()
			if err != nil {
				return err
			}

			slugs := make([]string, 0, len(stats.Data))
			for slug := range stats.Data {
				slugs = append(slugs, slug)
			}
			sort.Strings(slugs)

			format := output.DetectFormat(a.config.Format)
			formatter := output.NewFormatter(format)

			switch format {
			case output.FormatTable, output.FormatWide:
				return formatter.Format(os.Stdout, output.StatsToTableData(slugs, stats.Data))
			default:
				return formatter.Format(os.Stdout, stats.Data)
			}
		},
	}
}
