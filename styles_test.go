package cmpengine

import (
	"strings"
	"testing"
)

func TestCollectStyles(t *testing.T) {
	reg := newTestRegistry(t)

	tests := []struct {
		name      string
		desc      Description
		namespace string
		want      string
	}{
		{
			name:      "scoped in discovery order",
			desc:      colTree,
			namespace: ".ns",
			want:      ".ns .Col{display:flex}.ns .Txt{color:red}",
		},
		{
			name:      "no styled types",
			desc:      Description{ComponentType: "Tag", Children: []Description{{ComponentType: "Leaf"}}},
			namespace: ".ns",
			want:      "",
		},
		{
			name:      "unknown type contributes nothing",
			desc:      Description{ComponentType: "Nope"},
			namespace: ".ns",
			want:      "",
		},
		{
			name:      "empty namespace leaves selectors alone",
			desc:      Description{ComponentType: "Txt"},
			namespace: "",
			want:      ".Txt{color:red}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reg.CollectStyles(tt.desc, tt.namespace); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCollectStylesDedupes(t *testing.T) {
	reg := newTestRegistry(t)
	desc := Description{
		ComponentType: "Col",
		Children: []Description{
			{ComponentType: "Txt"},
			{ComponentType: "Col", Children: []Description{{ComponentType: "Txt"}, {ComponentType: "Txt"}}},
		},
	}

	got := reg.CollectStyles(desc, DefaultNamespace)
	if n := strings.Count(got, ".Txt{"); n != 1 {
		t.Errorf("Txt styles appear %d times in %q", n, got)
	}
	if n := strings.Count(got, ".Col{"); n != 1 {
		t.Errorf("Col styles appear %d times in %q", n, got)
	}
	if again := reg.CollectStyles(desc, DefaultNamespace); again != got {
		t.Errorf("second call differs: %q vs %q", again, got)
	}
}

func TestCollectStylesKeepsUnparseableStyles(t *testing.T) {
	reg := NewRegistry()
	reg.Register("Broken", textComponent("p"), Metadata{Styles: ".Broken{color:red"})

	got := reg.CollectStyles(Description{ComponentType: "Broken"}, ".ns")
	if !strings.Contains(got, ".Broken") {
		t.Errorf("styles should not be dropped, got %q", got)
	}
}

func TestCollectStylesCyclicDescription(t *testing.T) {
	loop := make([]Description, 1)
	loop[0] = Description{ComponentType: "Col"}
	loop[0].Children = loop

	got := newTestRegistry(t).CollectStyles(loop[0], ".ns")
	if got != ".ns .Col{display:flex}" {
		t.Errorf("got %q", got)
	}
}

func TestCollectStylesWideCycleTerminates(t *testing.T) {
	loop := make([]Description, 2)
	loop[0] = Description{ComponentType: "Col"}
	loop[1] = Description{ComponentType: "Txt"}
	loop[0].Children, loop[1].Children = loop, loop

	got := newTestRegistry(t).CollectStyles(loop[0], ".ns")
	if got != ".ns .Col{display:flex}.ns .Txt{color:red}" {
		t.Errorf("got %q", got)
	}
}

func TestBuilderCollectStylesHonoursLimits(t *testing.T) {
	reg := newTestRegistry(t)

	tests := []struct {
		name string
		opts []BuilderOption
		want string
	}{
		{"defaults", nil, ".ns .Col{display:flex}.ns .Txt{color:red}"},
		{"depth limit drops the child", []BuilderOption{WithMaxDepth(1)}, ".ns .Col{display:flex}"},
		{"node limit drops the child", []BuilderOption{WithMaxNodes(1)}, ".ns .Col{display:flex}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewBuilder(reg, tt.opts...).CollectStyles(colTree, ".ns"); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
