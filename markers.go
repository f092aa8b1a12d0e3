package cmpengine

import "github.com/pthm/cmpengine/lib/blocks"

// BlockMarkers is a Filter that wraps every element built from a
// Description in block markers carrying its component type and id.
// Elements created inside renderers are left alone, so each description
// node is marked exactly once.
func BlockMarkers(serialized string, el *Element) string {
	ref, ok := el.Block()
	if !ok {
		return serialized
	}
	return blocks.Wrap(ref.ComponentType, ref.ID, serialized)
}
