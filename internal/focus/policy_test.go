package focus

import (
	"testing"

	"github.com/abhisek/studiq/internal/learning"
)

func unit(id string, importance, mastery float64) *learning.KnowledgeUnit {
	return &learning.KnowledgeUnit{
		ID:           learning.KnowledgeUnitID(id),
		Kind:         learning.KindFact,
		Importance:   importance,
		MasteryLevel: mastery,
	}
}

func ids(units []*learning.KnowledgeUnit) []string {
	out := make([]string, len(units))
	for i, ku := range units {
		out[i] = string(ku.ID)
	}
	return out
}

func TestNaive_RanksByImportance(t *testing.T) {
	units := []*learning.KnowledgeUnit{
		unit("low", 0.2, 0),
		unit("high", 0.9, 0),
		unit("mid", 0.5, 0),
	}

	got := ids(Naive{}.SelectKnowledgeUnits(units, 2))
	want := []string{"high", "mid"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("selection[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestWeighted_PrefersUnmastered(t *testing.T) {
	units := []*learning.KnowledgeUnit{
		unit("mastered", 0.9, 0.95), // 0.9 * 0.05 = 0.045
		unit("fresh", 0.6, 0.0),     // 0.6 * 1.0  = 0.6
	}

	got := Weighted{}.SelectKnowledgeUnits(units, 1)
	if len(got) != 1 || got[0].ID != "fresh" {
		t.Errorf("selection = %v, want [fresh]", ids(got))
	}
}

func TestIdentity_PreservesOrder(t *testing.T) {
	units := []*learning.KnowledgeUnit{
		unit("a", 0.1, 0),
		unit("b", 0.9, 0),
		unit("c", 0.5, 0),
	}

	got := ids(Identity{}.SelectKnowledgeUnits(units, 2))
	if got[0] != "a" || got[1] != "b" {
		t.Errorf("selection = %v, want [a b]", got)
	}
}

func TestSelect_DoesNotMutateInput(t *testing.T) {
	units := []*learning.KnowledgeUnit{
		unit("a", 0.1, 0),
		unit("b", 0.9, 0),
	}

	Naive{}.SelectKnowledgeUnits(units, 2)
	if units[0].ID != "a" {
		t.Error("input slice was reordered")
	}
}

func TestSelect_MaxUnitsLargerThanInput(t *testing.T) {
	units := []*learning.KnowledgeUnit{unit("a", 0.5, 0)}
	got := Weighted{}.SelectKnowledgeUnits(units, 10)
	if len(got) != 1 {
		t.Errorf("len = %d, want 1", len(got))
	}
}
