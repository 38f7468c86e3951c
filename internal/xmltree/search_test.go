package xmltree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nested builds a chain of maps k -> k -> ... -> leaf, with the target key
// at the given depth below the returned root.
func nested(depth int, targetKey, value string) *Node {
	leaf := NewMap()
	leaf.Set(targetKey, NewScalar(value))
	node := leaf
	for i := 0; i < depth; i++ {
		wrapper := NewMap()
		wrapper.Set("Level", node)
		node = wrapper
	}
	return node
}

func TestDeepSearchFindsAtBound(t *testing.T) {
	root := nested(DefaultSearchDepth, "Target", "found")
	result := DeepSearch(root, "Target", DefaultSearchDepth)
	require.NotNil(t, result)
	assert.Equal(t, "found", result.Text())
}

func TestDeepSearchMissesBeyondBound(t *testing.T) {
	root := nested(DefaultSearchDepth+1, "Target", "found")
	assert.Nil(t, DeepSearch(root, "Target", DefaultSearchDepth))
}

func TestDeepSearchImmediateKeyWins(t *testing.T) {
	root := NewMap()
	root.Set("Target", NewScalar("top"))
	child := NewMap()
	child.Set("Target", NewScalar("deep"))
	root.Set("Child", child)

	assert.Equal(t, "top", DeepSearch(root, "Target", DefaultSearchDepth).Text())
}

func TestDeepSearchDescendsIntoLists(t *testing.T) {
	item := NewMap()
	item.Set("Target", NewScalar("in-list"))
	root := NewMap()
	root.Set("Items", NewList(NewScalar("noise"), item))

	result := DeepSearch(root, "Target", DefaultSearchDepth)
	require.NotNil(t, result)
	assert.Equal(t, "in-list", result.Text())
}

func TestDeepSearchNil(t *testing.T) {
	assert.Nil(t, DeepSearch(nil, "Target", DefaultSearchDepth))
}

func TestTryKeysPriorityOrder(t *testing.T) {
	root := NewMap()
	root.Set("Second", NewScalar("b"))
	root.Set("First", NewScalar("a"))

	result := TryKeys(root, []string{"First", "Second"})
	require.NotNil(t, result)
	assert.Equal(t, "a", result.Text())
}

func TestTryKeysSkipsEmptyValues(t *testing.T) {
	root := NewMap()
	root.Set("First", NewScalar(""))
	root.Set("Second", NewScalar("b"))

	result := TryKeys(root, []string{"First", "Second"})
	require.NotNil(t, result)
	assert.Equal(t, "b", result.Text())
}

func TestTryKeysNoMatch(t *testing.T) {
	root := NewMap()
	root.Set("Other", NewScalar("x"))
	assert.Nil(t, TryKeys(root, []string{"First", "Second"}))
}

func TestTryKeysUsesShallowerBound(t *testing.T) {
	// Visible to a depth-5 search but not to the depth-3 TryKeys bound.
	root := nested(TryKeysDepth+1, "Target", "deep")
	assert.Nil(t, TryKeys(root, []string{"Target"}))
	assert.NotNil(t, DeepSearch(root, "Target", DefaultSearchDepth))
}
