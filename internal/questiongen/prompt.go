package questiongen

import (
	"fmt"
	"strings"

	"github.com/abhisek/studiq/internal/learning"
)

const systemPrompt = `You are a study coach creating questions that test a learner's grasp of specific knowledge.

Rules:
- Every question must be answerable from the given claims alone. Do not require outside knowledge.
- The question text must be clear, self-contained plain text.
- The answer must be concise and directly verifiable against the claims.
- For fact knowledge, test recall or comprehension of the target claim.
- For skill knowledge, test application: the learner should have to use the claims, not just restate them.
- When asked for a batch, the questions must be genuinely diverse: different angles, no rephrasings of the same question.`

// buildUserMessage constructs the generation request for one knowledge unit.
// The content dispatches on the unit's kind: facts present their target
// claim, skills present all source claims.
func buildUserMessage(ku *learning.KnowledgeUnit, count int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Knowledge kind: %s\n", ku.Kind)
	fmt.Fprintf(&b, "Description: %s\n", ku.Description)

	switch ku.Kind {
	case learning.KindFact:
		if ku.TargetClaim != nil {
			fmt.Fprintf(&b, "\nTarget claim:\n- %s\n", ku.TargetClaim.Text)
		}
	case learning.KindSkill:
		b.WriteString("\nSource claims:\n")
		for _, c := range ku.SourceClaims {
			fmt.Fprintf(&b, "- %s\n", c.Text)
		}
	}

	if count > 1 {
		fmt.Fprintf(&b, "\nGenerate %d diverse questions for this knowledge unit.\n", count)
	} else {
		b.WriteString("\nGenerate one question for this knowledge unit.\n")
	}

	return b.String()
}
