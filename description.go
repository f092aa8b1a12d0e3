package cmpengine

import (
	"fmt"
	"maps"
)

// Prop keys the Builder derives for every node. They always win over
// same-named props supplied by a Description.
const (
	PropClassName     = "className"
	PropComponentType = "componentType"
	PropComponentID   = "componentId"
	propChildren      = "children"
)

// Description is the plain-data form of a component tree.
//
// ID is optional: an empty ID is replaced by a generated one at build time.
// Children are rendered in order.
//
//	cmpengine.Description{
//	    ComponentType: "ColumnComponent",
//	    Children: []cmpengine.Description{
//	        {ID: "intro", ComponentType: "TextWidget", Props: cmpengine.Props{"text": "hi"}},
//	    },
//	}
type Description struct {
	ID            string        `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty" msgpack:"id,omitempty"`
	ComponentType string        `json:"componentType" yaml:"componentType" toml:"componentType" msgpack:"componentType"`
	Props         Props         `json:"props,omitempty" yaml:"props,omitempty" toml:"props,omitempty" msgpack:"props,omitempty"`
	Children      []Description `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty" msgpack:"children,omitempty"`
}

// Props is the property bag carried by descriptions and elements.
type Props map[string]any

// String returns the value at key formatted as a string, or "" when absent.
func (p Props) String(key string) string {
	v, ok := p[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// ClassName returns the derived "TYPE ID" class token.
func (p Props) ClassName() string {
	return p.String(PropClassName)
}

// ComponentType returns the derived component type.
func (p Props) ComponentType() string {
	return p.String(PropComponentType)
}

// ComponentID returns the derived component id.
func (p Props) ComponentID() string {
	return p.String(PropComponentID)
}

// Clone returns a shallow copy. Cloning nil yields an empty, writable map.
func (p Props) Clone() Props {
	out := make(Props, len(p)+3)
	maps.Copy(out, p)
	return out
}

// Without returns a shallow copy with the given keys removed.
func (p Props) Without(keys ...string) Props {
	out := p.Clone()
	for _, k := range keys {
		delete(out, k)
	}
	return out
}
