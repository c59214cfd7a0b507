// Package kugen extracts knowledge units from study documents using an LLM.
//
// Extraction happens in two phases: the model first lists the atomic claims
// it found in the document, then defines facts and skills that reference
// those claims by local id. Resolving the references here keeps claims
// shared between units pointing at the same text.
package kugen

import (
	"context"

	"github.com/abhisek/studiq/internal/learning"
)

// Service extracts knowledge units from a document.
type Service interface {
	GenerateKnowledgeUnits(ctx context.Context, doc learning.Document) ([]*learning.KnowledgeUnit, error)
}
