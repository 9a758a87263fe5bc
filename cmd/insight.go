package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/proprep/internal/insight"
)

var insightCmd = &cobra.Command{
	Use:   "insight <skill>...",
	Short: "Print AI insights for one or more skills",
	Long: "Fetch skill insights concurrently. Repeated skills share one request, " +
		"and failures print the fallback text.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		details, _ := cmd.Flags().GetBool("details")
		ctx := cmd.Context()

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		fetcher, _ := newFetcher(ctx, st)
		cache := insight.NewCache()
		entries := make([]insight.Entry, len(args))

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(cfg.Insight.Concurrency)
		for i, skill := range args {
			g.Go(func() error {
				e, err := cache.Resolve(gctx, strings.TrimSpace(skill), fetcher)
				if err != nil {
					return fmt.Errorf("%q: %w", skill, err)
				}
				entries[i] = e
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for i, skill := range args {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "%s\n%s\n", skill, strings.Repeat("─", 60))
			if details {
				fmt.Fprintln(out, entries[i].Details)
			} else {
				fmt.Fprintln(out, entries[i].Summary)
			}
		}
		return nil
	},
}

func init() {
	insightCmd.Flags().BoolP("details", "d", false, "Print the detailed view instead of the summary")
}
