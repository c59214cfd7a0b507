package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abhisek/studiq/internal/focus"
	"github.com/abhisek/studiq/internal/kugen"
	"github.com/abhisek/studiq/internal/learning"
	"github.com/abhisek/studiq/internal/llm"
	"github.com/abhisek/studiq/internal/usecase"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Create and manage learning plans",
}

var planCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a learning plan from one or more documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		files, _ := cmd.Flags().GetStringSlice("file")
		if len(files) == 0 {
			return fmt.Errorf("at least one --file is required")
		}

		var docs []learning.Document
		for _, f := range files {
			text, err := os.ReadFile(f)
			if err != nil {
				return fmt.Errorf("read document %s: %w", f, err)
			}
			docs = append(docs, learning.Document{
				ID:   learning.DocumentID(filepath.Base(f)),
				Text: string(text),
			})
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		events, err := s.EventRepo()
		if err != nil {
			return fmt.Errorf("open event repo: %w", err)
		}
		provider, err := llm.NewProviderFromEnv(ctx, events)
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		uc := usecase.NewCreateLearningPlan(
			kugen.New(provider, kugen.DefaultConfig()),
			focus.Naive{},
			s.PlanRepo(),
		)
		plan, err := uc.Execute(ctx, docs)
		if err != nil {
			return err
		}

		fmt.Printf("Created plan %s with %d knowledge units:\n", plan.ID, len(plan.KnowledgeUnits))
		for _, ku := range plan.KnowledgeUnits {
			fmt.Printf("  [%s] %s  %s\n", ku.Kind, ku.ID, ku.Description)
		}
		return nil
	},
}

var planListCmd = &cobra.Command{
	Use:   "list",
	Short: "List active learning plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		plans, err := usecase.NewQueries(s.PlanRepo()).ListLearningPlans(cmd.Context())
		if err != nil {
			return err
		}
		if len(plans) == 0 {
			fmt.Println("No active learning plans.")
			return nil
		}

		fmt.Printf("%-36s  %-19s  %-6s  %s\n", "ID", "Created", "Units", "Sessions")
		fmt.Println(strings.Repeat("─", 76))
		for _, p := range plans {
			fmt.Printf("%-36s  %-19s  %-6d  %d\n",
				p.ID,
				p.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				len(p.KnowledgeUnits),
				len(p.Sessions),
			)
		}
		return nil
	},
}

var planShowCmd = &cobra.Command{
	Use:   "show <plan-id>",
	Short: "Show a plan's knowledge units and sessions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		plan, err := usecase.NewQueries(s.PlanRepo()).
			GetLearningPlan(cmd.Context(), learning.LearningPlanID(args[0]))
		if err != nil {
			return err
		}

		fmt.Printf("Plan:     %s\n", plan.ID)
		fmt.Printf("Created:  %s\n", plan.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		if plan.IsCompleted() {
			fmt.Printf("Completed: %s\n", plan.CompletedAt.Local().Format("2006-01-02 15:04:05"))
		}

		fmt.Printf("\nKnowledge units (%d)\n", len(plan.KnowledgeUnits))
		fmt.Println(strings.Repeat("─", 76))
		for _, ku := range plan.KnowledgeUnits {
			fmt.Printf("  [%-5s] %-36s  mastery %.2f\n    %s\n",
				ku.Kind, ku.ID, ku.MasteryLevel, ku.Description)
		}

		fmt.Printf("\nSessions (%d)\n", len(plan.Sessions))
		fmt.Println(strings.Repeat("─", 76))
		for _, sess := range plan.Sessions {
			state := "open"
			if sess.IsCompleted() {
				state = "completed"
			}
			fmt.Printf("  %-36s  %-19s  %d/%d questions  %s\n",
				sess.ID,
				sess.StartedAt.Local().Format("2006-01-02 15:04:05"),
				len(sess.Questions), sess.MaxQuestions,
				state,
			)
		}
		return nil
	},
}

var planCompleteCmd = &cobra.Command{
	Use:   "complete <plan-id>",
	Short: "Mark a plan as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		plan, err := usecase.NewPlanLifecycle(s.PlanRepo()).
			Complete(cmd.Context(), learning.LearningPlanID(args[0]))
		if err != nil {
			return err
		}
		fmt.Printf("Plan %s completed at %s.\n",
			plan.ID, plan.CompletedAt.Local().Format("2006-01-02 15:04:05"))
		return nil
	},
}

var planDeleteCmd = &cobra.Command{
	Use:   "delete <plan-id>",
	Short: "Delete a plan and all its sessions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := usecase.NewPlanLifecycle(s.PlanRepo()).
			Delete(cmd.Context(), learning.LearningPlanID(args[0])); err != nil {
			return err
		}
		fmt.Printf("Plan %s deleted.\n", args[0])
		return nil
	},
}

func init() {
	planCreateCmd.Flags().StringSliceP("file", "f", nil, "Document file to learn from (repeatable)")

	planCmd.AddCommand(planCreateCmd)
	planCmd.AddCommand(planListCmd)
	planCmd.AddCommand(planShowCmd)
	planCmd.AddCommand(planCompleteCmd)
	planCmd.AddCommand(planDeleteCmd)
}
