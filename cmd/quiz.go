package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/proprep/internal/quiz"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Manage interview quiz assessments",
}

var quizImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import assessments from a YAML or JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		all, err := quiz.LoadFile(args[0])
		if err != nil {
			return err
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		repo := st.AssessmentRepo()
		for i := range all {
			rec, err := all[i].ToRecord()
			if err != nil {
				return err
			}
			if err := repo.Save(cmd.Context(), rec); err != nil {
				return fmt.Errorf("save assessment %s: %w", rec.ID, err)
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d assessment(s)\n", len(all))
		return nil
	},
}

var quizListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored assessments, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		showAll, _ := cmd.Flags().GetBool("all")

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		recs, err := st.AssessmentRepo().List(cmd.Context(), 0)
		if err != nil {
			return fmt.Errorf("list assessments: %w", err)
		}
		all, err := quiz.FromRecords(recs)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(all) == 0 {
			fmt.Fprintln(out, "No quiz assessments found.")
			return nil
		}

		fmt.Fprintf(out, "%-8s  %-18s  %-14s  %7s  %s\n", "Quiz", "Date", "Category", "Score", "Correct")
		fmt.Fprintln(out, strings.Repeat("─", 64))
		for i, a := range quiz.Visible(all, showAll) {
			fmt.Fprintf(out, "%-8s  %-18s  %-14s  %7s  %d/%d\n",
				fmt.Sprintf("Quiz %d", i+1), a.FormatDate(), truncate(a.Category, 14),
				a.FormatScore(), a.Correct(), len(a.Questions))
		}
		if !showAll && quiz.HasMore(all) {
			fmt.Fprintf(out, "\n%d more, use --all to show them\n", len(all)-quiz.PageSize)
		}
		return nil
	},
}

func init() {
	quizListCmd.Flags().BoolP("all", "a", false, "Show every assessment")

	quizCmd.AddCommand(quizImportCmd)
	quizCmd.AddCommand(quizListCmd)
}
