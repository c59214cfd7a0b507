package focus

import (
	"sort"

	"github.com/abhisek/studiq/internal/learning"
)

// Policy selects which knowledge units to focus on during a study session.
type Policy interface {
	// SelectKnowledgeUnits returns a subset of at most maxUnits units.
	SelectKnowledgeUnits(units []*learning.KnowledgeUnit, maxUnits int) []*learning.KnowledgeUnit
}

// Naive ranks units by importance alone.
type Naive struct{}

func (Naive) SelectKnowledgeUnits(units []*learning.KnowledgeUnit, maxUnits int) []*learning.KnowledgeUnit {
	ranked := rankBy(units, func(ku *learning.KnowledgeUnit) float64 {
		return ku.Importance
	})
	return truncate(ranked, maxUnits)
}

// Weighted ranks units by importance * (1 - mastery): important material
// the learner has not yet mastered comes first.
type Weighted struct{}

func (Weighted) SelectKnowledgeUnits(units []*learning.KnowledgeUnit, maxUnits int) []*learning.KnowledgeUnit {
	ranked := rankBy(units, func(ku *learning.KnowledgeUnit) float64 {
		return ku.Importance * (1.0 - ku.MasteryLevel)
	})
	return truncate(ranked, maxUnits)
}

// Identity keeps units in their given order, truncated to maxUnits.
type Identity struct{}

func (Identity) SelectKnowledgeUnits(units []*learning.KnowledgeUnit, maxUnits int) []*learning.KnowledgeUnit {
	return truncate(units, maxUnits)
}

func rankBy(units []*learning.KnowledgeUnit, score func(*learning.KnowledgeUnit) float64) []*learning.KnowledgeUnit {
	ranked := make([]*learning.KnowledgeUnit, len(units))
	copy(ranked, units)
	sort.SliceStable(ranked, func(i, j int) bool {
		return score(ranked[i]) > score(ranked[j])
	})
	return ranked
}

func truncate(units []*learning.KnowledgeUnit, maxUnits int) []*learning.KnowledgeUnit {
	if maxUnits < 0 {
		maxUnits = 0
	}
	if len(units) <= maxUnits {
		return units
	}
	return units[:maxUnits]
}
