package learning

// KnowledgeUnitID uniquely identifies a knowledge unit.
type KnowledgeUnitID string

// KnowledgeKind tags the knowledge unit variant.
type KnowledgeKind string

const (
	// KindFact is knowledge about a single document claim.
	KindFact KnowledgeKind = "fact"

	// KindSkill is knowledge about a skill derived from one or more claims.
	KindSkill KnowledgeKind = "skill"
)

// KnowledgeUnit is a fact or skill extracted from source material,
// independently trackable for mastery.
//
// The variant is a tagged union: Kind selects which payload field is set.
// FactKnowledge carries one TargetClaim; SkillKnowledge carries one or
// more SourceClaims. Shared fields are common to both.
type KnowledgeUnit struct {
	ID          KnowledgeUnitID
	Kind        KnowledgeKind
	Description string

	// Importance weighs how central this unit is to the source material.
	// Range 0.0 to 1.0.
	Importance float64

	// MasteryLevel is the learner's demonstrated competence on this unit.
	// Range 0.0 to 1.0. Written only by the mastery service.
	MasteryLevel float64

	// DocumentReferences lists the documents this unit was extracted from.
	DocumentReferences []DocumentID

	// TargetClaim is set when Kind is KindFact.
	TargetClaim *Claim

	// SourceClaims is set when Kind is KindSkill. Always non-empty for
	// skill units.
	SourceClaims []Claim
}

// NewFactKnowledge creates a fact knowledge unit grounded on a single claim.
func NewFactKnowledge(id KnowledgeUnitID, description string, target Claim) *KnowledgeUnit {
	return &KnowledgeUnit{
		ID:                 id,
		Kind:               KindFact,
		Description:        description,
		DocumentReferences: []DocumentID{target.DocID},
		TargetClaim:        &target,
	}
}

// NewSkillKnowledge creates a skill knowledge unit derived from source claims.
func NewSkillKnowledge(id KnowledgeUnitID, description string, sources []Claim) *KnowledgeUnit {
	refs := make([]DocumentID, 0, len(sources))
	seen := make(map[DocumentID]bool)
	for _, c := range sources {
		if !seen[c.DocID] {
			seen[c.DocID] = true
			refs = append(refs, c.DocID)
		}
	}
	return &KnowledgeUnit{
		ID:                 id,
		Kind:               KindSkill,
		Description:        description,
		DocumentReferences: refs,
		SourceClaims:       sources,
	}
}
