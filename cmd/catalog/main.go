package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/winnipegconnect/backend/internal/adapters/memory"
	"github.com/winnipegconnect/backend/internal/application/services"
	"github.com/winnipegconnect/backend/internal/domain/entities"
	"github.com/winnipegconnect/backend/internal/domain/repositories"
	"github.com/winnipegconnect/backend/internal/fixtures"
	queryservices "github.com/winnipegconnect/backend/internal/query/services"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Query the Winnipeg Connect provider catalog",
		Long: `Inspect the provider and job catalog without running the API.

Reads the embedded sample catalog, or a YAML file given with --fixtures,
and applies the same filter and sort rules as GET /api/providers.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("fixtures", "", "Path to a catalog YAML file (default: embedded sample catalog)")
	rootCmd.PersistentFlags().Bool("json", false, "Print JSON instead of a table")

	rootCmd.AddCommand(newProvidersCmd())
	rootCmd.AddCommand(newJobsCmd())
	rootCmd.AddCommand(newCategoriesCmd())
	return rootCmd
}

// --- providers command ---

func newProvidersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "providers",
		Short: "List providers matching a query",
		Long: `Filter and sort the provider catalog.

Sort keys are rating, reviews, price and name. Any other key keeps
catalog order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog(cmd)
			if err != nil {
				return err
			}

			query := entities.DefaultProviderQuery()
			query.SearchTerm, _ = cmd.Flags().GetString("search")
			query.Category, _ = cmd.Flags().GetString("category")
			query.MinRating, _ = cmd.Flags().GetFloat64("min-rating")
			sortKey, _ := cmd.Flags().GetString("sort")
			query.SortKey = entities.SortKey(sortKey)

			result := queryservices.FilterAndSort(catalog.Providers, query)

			if asJSON(cmd) {
				return writeJSON(cmd.OutOrStdout(), entities.ProviderQueryResult{Providers: result, Count: len(result)})
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tTYPE\tRATING\tREVIEWS\tPRICE")
			for _, p := range result {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%.1f\t%d\t%s\n", p.ID, p.Name, p.BusinessType, p.Rating, p.ReviewCount, p.PriceRange)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d results\n", len(result))
			return nil
		},
	}

	cmd.Flags().StringP("search", "s", "", "Match name, business type or services")
	cmd.Flags().StringP("category", "c", "", "Category filter (\"All Categories\" disables it)")
	cmd.Flags().Float64P("min-rating", "r", 0, "Minimum rating, inclusive")
	cmd.Flags().String("sort", string(entities.SortByRating), "Sort key: rating, reviews, price, name")
	return cmd
}

// --- jobs command ---

func newJobsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "List posted jobs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog(cmd)
			if err != nil {
				return err
			}

			status, _ := cmd.Flags().GetString("status")
			category, _ := cmd.Flags().GetString("category")

			service := services.NewJobService(memory.NewJobAdapter(catalog.Jobs))
			jobs, err := service.List(context.Background(), repositories.JobFilter{
				Status:   entities.JobStatus(status),
				Category: category,
			})
			if err != nil {
				return err
			}

			if asJSON(cmd) {
				return writeJSON(cmd.OutOrStdout(), jobs)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tBUDGET\tSTATUS\tAPPLICANTS")
			for _, j := range jobs {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d\n", j.ID, j.Title, j.Category, j.Budget, j.Status, j.Applicants)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().String("status", "", "Job status: open, in-progress, completed")
	cmd.Flags().String("category", "", "Job category")
	return cmd
}

// --- categories command ---

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the category filter options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog(cmd)
			if err != nil {
				return err
			}

			service := services.NewProviderService(memory.NewProviderAdapter(catalog.Providers), nil, nil, nil)
			categories, err := service.Categories(context.Background())
			if err != nil {
				return err
			}

			if asJSON(cmd) {
				return writeJSON(cmd.OutOrStdout(), categories)
			}
			for _, c := range categories {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}

func loadCatalog(cmd *cobra.Command) (*fixtures.Catalog, error) {
	path, _ := cmd.Flags().GetString("fixtures")
	return fixtures.Load(path)
}

func asJSON(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
