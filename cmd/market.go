package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/proprep/internal/logger"
	"github.com/abhisek/proprep/internal/market"
	"github.com/abhisek/proprep/internal/store"
)

var marketCmd = &cobra.Command{
	Use:   "market",
	Short: "Manage industry market insights",
}

var marketImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import an industry insight from a YAML or JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := market.LoadFile(args[0])
		if err != nil {
			return err
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := saveInsight(cmd, st, in); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %s insight (updated %s)\n",
			in.Industry, market.FormatDate(in.LastUpdated))
		return nil
	},
}

var marketShowCmd = &cobra.Command{
	Use:   "show [industry]",
	Short: "Print the latest stored insight",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		industry := cfg.Market.Industry
		if len(args) == 1 {
			industry = args[0]
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		var rec *store.MarketRecord
		if industry != "" {
			rec, err = st.MarketRepo().LatestFor(cmd.Context(), industry)
		} else {
			rec, err = st.MarketRepo().Latest(cmd.Context())
		}
		if err != nil {
			return fmt.Errorf("load insight: %w", err)
		}
		if rec == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "No market insight stored yet.")
			return nil
		}

		in, err := market.FromRecord(rec)
		if err != nil {
			return err
		}
		printInsight(cmd.OutOrStdout(), in, time.Now())
		return nil
	},
}

var marketGenerateCmd = &cobra.Command{
	Use:   "generate <industry>",
	Short: "Generate a fresh insight with the configured LLM and store it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		provider, err := newProvider(ctx, st)
		if err != nil {
			return err
		}

		logger.G(ctx).WithField("industry", args[0]).Info("generating market insight")
		in, err := market.NewGenerator(provider).Generate(ctx, args[0])
		if err != nil {
			return err
		}
		if err := saveInsight(cmd, st, in); err != nil {
			return err
		}
		printInsight(cmd.OutOrStdout(), in, time.Now())
		return nil
	},
}

// saveInsight stores in and trims the industry's history.
func saveInsight(cmd *cobra.Command, st *store.Store, in *market.IndustryInsight) error {
	rec, err := in.ToRecord()
	if err != nil {
		return err
	}
	repo := st.MarketRepo()
	if err := repo.Save(cmd.Context(), rec); err != nil {
		return fmt.Errorf("save insight: %w", err)
	}
	if err := repo.Prune(cmd.Context(), in.Industry, cfg.Market.KeepHistory); err != nil {
		return fmt.Errorf("prune history: %w", err)
	}
	return nil
}

func printInsight(w io.Writer, in *market.IndustryInsight, now time.Time) {
	sep := strings.Repeat("─", 60)
	outlook := in.MarketOutlook.Descriptor()

	fmt.Fprintf(w, "%s\n%s\n", in.Industry, sep)
	fmt.Fprintf(w, "Last updated:  %s\n", market.FormatDate(in.LastUpdated))
	fmt.Fprintf(w, "Next update:   %s\n", market.FormatRelative(in.NextUpdate, now))
	fmt.Fprintf(w, "Outlook:       %s %s\n", outlook.Icon, outlook.Label)
	fmt.Fprintf(w, "Growth:        %s\n", market.FormatGrowth(in.GrowthRate))
	fmt.Fprintf(w, "Demand:        %s\n", in.DemandLevel.Descriptor().Label)
	fmt.Fprintf(w, "Top skills:    %s\n", strings.Join(in.TopSkills, ", "))
	fmt.Fprintf(w, "Recommended:   %s\n", strings.Join(in.RecommendedSkills, ", "))

	if len(in.SalaryRanges) > 0 {
		fmt.Fprintf(w, "\nSalary ranges (thousands USD)\n%s\n", sep)
		fmt.Fprintf(w, "%-28s  %8s  %8s  %8s\n", "Role", "Min", "Median", "Max")
		for _, r := range in.SalaryRanges {
			fmt.Fprintf(w, "%-28s  %8s  %8s  %8s\n", truncate(r.Role, 28),
				market.FormatThousands(r.Min), market.FormatThousands(r.Median), market.FormatThousands(r.Max))
		}
	}

	if len(in.KeyTrends) > 0 {
		fmt.Fprintf(w, "\nKey trends\n%s\n", sep)
		for _, t := range in.KeyTrends {
			fmt.Fprintf(w, "• %s\n", t)
		}
	}
}

func init() {
	marketCmd.AddCommand(marketImportCmd)
	marketCmd.AddCommand(marketShowCmd)
	marketCmd.AddCommand(marketGenerateCmd)
}
