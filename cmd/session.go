package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/studiq/internal/evaluation"
	"github.com/abhisek/studiq/internal/focus"
	"github.com/abhisek/studiq/internal/learning"
	"github.com/abhisek/studiq/internal/llm"
	"github.com/abhisek/studiq/internal/questiongen"
	"github.com/abhisek/studiq/internal/store"
	"github.com/abhisek/studiq/internal/usecase"
	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Run study sessions: start, answer, assess",
}

var sessionStartCmd = &cobra.Command{
	Use:   "start <plan-id>",
	Short: "Start a new study session on a plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		maxQuestions, _ := cmd.Flags().GetInt("questions")
		maxUnits, _ := cmd.Flags().GetInt("units")

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

		uc := usecase.NewStartStudySession(
			s.PlanRepo(),
			focus.Weighted{},
			questiongen.New(provider, questiongen.DefaultConfig()),
			s.QuestionRepo(),
		).WithLimits(maxQuestions, maxUnits)

		session, err := uc.Execute(ctx, learning.LearningPlanID(args[0]))
		if err != nil {
			return err
		}

		fmt.Printf("Started session %s with %d questions.\n", session.ID, len(session.Questions))
		return printSessionQuestions(ctx, s.QuestionRepo(), session)
	},
}

var sessionAnswerCmd = &cobra.Command{
	Use:   "answer <plan-id> <session-id> <question-id> <answer>",
	Short: "Record an answer to a session question",
	Args:  cobra.MinimumNArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		answer := learning.Answer(strings.Join(args[3:], " "))
		err = usecase.NewSubmitAnswer(s.PlanRepo()).Execute(
			cmd.Context(),
			learning.LearningPlanID(args[0]),
			learning.StudySessionID(args[1]),
			learning.QuestionID(args[2]),
			answer,
		)
		if err != nil {
			return err
		}
		fmt.Println("Answer recorded. Run 'studiq session assess' to grade it.")
		return nil
	},
}

var sessionAssessCmd = &cobra.Command{
	Use:   "assess <plan-id> <session-id> <question-id>",
	Short: "Grade the latest ungraded answer for a question",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
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

		uc := usecase.NewAssessQuestionOutcome(
			s.PlanRepo(),
			s.QuestionRepo(),
			evaluation.New(provider, evaluation.DefaultConfig()),
		)
		assessment, err := uc.Execute(ctx,
			learning.LearningPlanID(args[0]),
			learning.StudySessionID(args[1]),
			learning.QuestionID(args[2]),
		)
		if err != nil {
			return err
		}

		if assessment.IsCorrect {
			fmt.Println("Correct!")
		} else {
			fmt.Printf("Incorrect. The answer is: %s\n", assessment.CorrectAnswer)
		}
		if assessment.Explanation != "" {
			fmt.Println(assessment.Explanation)
		}
		return nil
	},
}

var sessionShowCmd = &cobra.Command{
	Use:   "show <plan-id> <session-id>",
	Short: "Show a session's questions and their outcomes",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		session, err := usecase.NewQueries(s.PlanRepo()).GetStudySession(
			cmd.Context(),
			learning.LearningPlanID(args[0]),
			learning.StudySessionID(args[1]),
		)
		if err != nil {
			return err
		}

		state := "open"
		if session.IsCompleted() {
			state = "completed"
		}
		fmt.Printf("Session:  %s (%s)\n", session.ID, state)
		fmt.Printf("Started:  %s\n", session.StartedAt.Local().Format("2006-01-02 15:04:05"))
		if session.EndedAt != nil {
			fmt.Printf("Ended:    %s\n", session.EndedAt.Local().Format("2006-01-02 15:04:05"))
		}
		fmt.Println()
		return printSessionQuestions(cmd.Context(), s.QuestionRepo(), session)
	},
}

// printSessionQuestions lists every session question with its canonical text
// and status, in registration order.
func printSessionQuestions(ctx context.Context, questions store.QuestionRepo, session *learning.StudySession) error {
	fmt.Println(strings.Repeat("─", 76))
	for _, sq := range session.OrderedQuestions() {
		text := "(question record missing)"
		if q, err := questions.GetByID(ctx, sq.QuestionID); err == nil && q != nil {
			text = q.Text
		}
		fmt.Printf("  %-36s  [%s]  %d attempts\n    %s\n",
			sq.QuestionID, sq.Status(), len(sq.Attempts), text)
	}
	return nil
}

func init() {
	sessionStartCmd.Flags().IntP("questions", "q", 0, "Questions per session (default 6)")
	sessionStartCmd.Flags().IntP("units", "u", 0, "Knowledge units per session (default 3)")

	sessionCmd.AddCommand(sessionStartCmd)
	sessionCmd.AddCommand(sessionAnswerCmd)
	sessionCmd.AddCommand(sessionAssessCmd)
	sessionCmd.AddCommand(sessionShowCmd)
}
