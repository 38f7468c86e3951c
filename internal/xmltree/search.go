package xmltree

// Search depth bounds. The tree may come from an arbitrarily nested or
// adversarial document, so every recursive walk carries an explicit depth
// counter against these limits.
const (
	// DefaultSearchDepth bounds a single-key deep search.
	DefaultSearchDepth = 5
	// TryKeysDepth bounds each per-candidate search inside TryKeys.
	TryKeysDepth = 3
)

// DeepSearch looks for a key anywhere in the tree up to maxDepth levels
// below n. The immediate fields are checked before recursing, children are
// visited in insertion order, and the first match wins. A key nested
// deeper than maxDepth is invisible.
func DeepSearch(n *Node, key string, maxDepth int) *Node {
	return deepSearch(n, key, maxDepth, 0)
}

func deepSearch(n *Node, key string, maxDepth, depth int) *Node {
	if n == nil || depth > maxDepth {
		return nil
	}
	switch n.Kind() {
	case Map:
		if child := n.Get(key); child != nil {
			return child
		}
		for _, k := range n.Keys() {
			if found := deepSearch(n.Get(k), key, maxDepth, depth+1); found != nil {
				return found
			}
		}
	case List:
		for _, item := range n.Items() {
			if found := deepSearch(item, key, maxDepth, depth+1); found != nil {
				return found
			}
		}
	}
	return nil
}

// TryKeys tries candidate keys in their declared priority order, running a
// bounded deep search for each. A match whose value is an empty scalar is
// treated as not found, so later candidates still get a chance.
func TryKeys(n *Node, keys []string) *Node {
	for _, key := range keys {
		if found := DeepSearch(n, key, TryKeysDepth); found != nil && !found.IsEmptyScalar() {
			return found
		}
	}
	return nil
}
