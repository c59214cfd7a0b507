package kugen

import (
	"fmt"
	"strings"
)

const extractionSystemPrompt = `You are a study-material analyst. Given a document, extract what a learner should study from it.

Work in two phases:
1. Claims: list the atomic, verifiable statements the document makes. Each claim gets an integer id and is restated as one self-contained sentence.
2. Knowledge units:
   - Facts: knowledge anchored in exactly one claim, worth memorizing on its own. Reference the claim by target_claim_id.
   - Skills: abilities that require combining two or more claims, such as applying a rule or reasoning across statements. Reference the claims by source_claim_ids.

Rules:
- Only use claim ids that appear in your claims list.
- Every claim should back at least one fact or skill.
- Descriptions state what the learner should know or be able to do, not the answer itself.
- Do not invent information absent from the document.`

func buildExtractionMessage(text string) string {
	var b strings.Builder
	b.WriteString("Extract the claims, facts and skills from this document.\n")
	fmt.Fprintf(&b, "\nDocument:\n%s\n", text)
	return b.String()
}
