package cmd

import (
	"fmt"

	"github.com/abhisek/studiq/internal/learning"
	"github.com/abhisek/studiq/internal/mastery"
	"github.com/abhisek/studiq/internal/usecase"
	"github.com/spf13/cobra"
)

var masteryCmd = &cobra.Command{
	Use:   "mastery",
	Short: "Recompute mastery levels from session outcomes",
}

var masteryUpdateCmd = &cobra.Command{
	Use:   "update <plan-id> <ku-id>",
	Short: "Recompute a knowledge unit's mastery from graded answers",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		uc := usecase.NewUpdateKnowledgeUnitMastery(s.PlanRepo(), mastery.NewQuestionBased())
		ku, err := uc.Execute(cmd.Context(),
			learning.LearningPlanID(args[0]),
			learning.KnowledgeUnitID(args[1]),
		)
		if err != nil {
			return err
		}

		fmt.Printf("[%s] %s\n", ku.Kind, ku.Description)
		fmt.Printf("Mastery: %.2f\n", ku.MasteryLevel)
		return nil
	},
}

func init() {
	masteryCmd.AddCommand(masteryUpdateCmd)
}
