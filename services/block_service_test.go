package services

import (
	"testing"

	"github.com/blocktrace/models"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func TestWouldCreateCycleSelf(t *testing.T) {
	parents := map[string]*string{"a": nil}

	assert.True(t, wouldCreateCycle("a", "a", parents))
}

func TestWouldCreateCycleDescendant(t *testing.T) {
	// a -> b -> c; re-parenting a under c closes a loop
	parents := map[string]*string{
		"a": nil,
		"b": strPtr("a"),
		"c": strPtr("b"),
	}

	assert.True(t, wouldCreateCycle("a", "c", parents))
	assert.True(t, wouldCreateCycle("a", "b", parents))
}

func TestWouldCreateCycleUnrelated(t *testing.T) {
	parents := map[string]*string{
		"a": nil,
		"b": strPtr("a"),
		"x": nil,
		"y": strPtr("x"),
	}

	assert.False(t, wouldCreateCycle("b", "y", parents))
	assert.False(t, wouldCreateCycle("b", "x", parents))
}

func TestWouldCreateCycleReparentUpwards(t *testing.T) {
	// Moving a leaf under its grandparent is fine
	parents := map[string]*string{
		"root":  nil,
		"mid":   strPtr("root"),
		"leaf":  strPtr("mid"),
		"other": strPtr("root"),
	}

	assert.False(t, wouldCreateCycle("leaf", "root", parents))
	assert.False(t, wouldCreateCycle("leaf", "other", parents))
}

func TestWouldCreateCycleMissingParentRow(t *testing.T) {
	// Chain points at a block that is not in the index; the walk stops
	parents := map[string]*string{
		"b": strPtr("ghost"),
	}

	assert.False(t, wouldCreateCycle("a", "b", parents))
}

func TestWouldCreateCyclePreexistingLoop(t *testing.T) {
	// A corrupted loop not involving the moved block terminates via the
	// visited set instead of spinning forever
	parents := map[string]*string{
		"x": strPtr("y"),
		"y": strPtr("x"),
	}

	assert.False(t, wouldCreateCycle("a", "x", parents))
}

func TestPromotionTargetsDirectChildrenOnly(t *testing.T) {
	// mid has two children and one grandchild; deleting mid promotes exactly
	// the two children, the grandchild keeps pointing into the promoted subtree
	blocks := []models.Block{
		{ID: "root"},
		{ID: "mid", ParentID: strPtr("root")},
		{ID: "child1", ParentID: strPtr("mid")},
		{ID: "child2", ParentID: strPtr("mid")},
		{ID: "grandchild", ParentID: strPtr("child1")},
		{ID: "unrelated", ParentID: strPtr("root")},
	}

	assert.Equal(t, []string{"child1", "child2"}, promotionTargets("mid", blocks))
}

func TestPromotionTargetsLeaf(t *testing.T) {
	blocks := []models.Block{
		{ID: "root"},
		{ID: "leaf", ParentID: strPtr("root")},
	}

	assert.Empty(t, promotionTargets("leaf", blocks))
}

func TestPromotionTargetsIgnoresRoots(t *testing.T) {
	// Root blocks have nil parents and are never promotion candidates
	blocks := []models.Block{
		{ID: "a"},
		{ID: "b"},
		{ID: "c", ParentID: strPtr("a")},
	}

	assert.Equal(t, []string{"c"}, promotionTargets("a", blocks))
	assert.Empty(t, promotionTargets("b", blocks))
}

func TestParentIndex(t *testing.T) {
	blocks := []models.Block{
		{ID: "a"},
		{ID: "b", ParentID: strPtr("a")},
	}

	index := parentIndex(blocks)

	assert.Len(t, index, 2)
	assert.Nil(t, index["a"])
	assert.Equal(t, "a", *index["b"])
}
