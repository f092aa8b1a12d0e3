package cmpengine

import (
	"strings"
	"testing"
)

func TestWithStringOutput(t *testing.T) {
	live := RendererFunc(func(p Props, _ []Node) Node {
		return Tag("button", Props{PropClassName: p.ClassName()}, Text("live "+p.String("label")))
	})
	static := RendererFunc(func(p Props, _ []Node) Node {
		return Tag("a", Props{PropClassName: p.ClassName()}, Text("static "+p.String("label")))
	})

	reg := newTestRegistry(t)
	reg.Register("Btn", WithStringOutput(static)(live))
	b := NewBuilder(reg)

	desc := Description{
		ComponentType: "Col",
		ID:            "c",
		Children: []Description{
			{ComponentType: "Col", ID: "inner", Children: []Description{
				{ComponentType: "Btn", ID: "b", Props: Props{"label": "go"}},
			}},
		},
	}

	tests := []struct {
		name string
		mode Mode
		want string
	}{
		{"string mode uses static", StringMode, `<a class="Btn b">static go</a>`},
		{"live mode uses normal", LiveMode, `<button class="Btn b">live go</button>`},
		{"zero mode is live", Mode{}, `<button class="Btn b">live go</button>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderToString(b.Build(desc, tt.mode), nil)
			if !strings.Contains(got, tt.want) {
				t.Errorf("got %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestStringOverrideDirectRender(t *testing.T) {
	o := WithStringOutput(textComponent("b"))(textComponent("i")).(*StringOverride)
	props := Props{"text": "x"}

	if got := RenderToString(o.Render(props, nil), nil); got != "<i>x</i>" {
		t.Errorf("Render should use the normal variant, got %q", got)
	}
	if got := RenderToString(o.For(StringMode).Render(props, nil), nil); got != "<b>x</b>" {
		t.Errorf("For(StringMode) rendered %q", got)
	}
	if got := RenderToString(o.For(LiveMode).Render(props, nil), nil); got != "<i>x</i>" {
		t.Errorf("For(LiveMode) rendered %q", got)
	}

	noString := &StringOverride{Normal: textComponent("i")}
	if got := RenderToString(noString.For(StringMode).Render(props, nil), nil); got != "<i>x</i>" {
		t.Errorf("missing string variant should fall back to normal, got %q", got)
	}
}

func TestNestedOverrides(t *testing.T) {
	inner := WithStringOutput(textComponent("b"))(textComponent("i"))
	outer := WithStringOutput(inner)(textComponent("u"))

	if got := RenderToString(selectVariant(outer, StringMode).Render(Props{"text": "x"}, nil), nil); got != "<b>x</b>" {
		t.Errorf("string variant = %q", got)
	}
	if got := RenderToString(selectVariant(outer, LiveMode).Render(Props{"text": "x"}, nil), nil); got != "<u>x</u>" {
		t.Errorf("live variant = %q", got)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"string", StringMode},
		{"live", LiveMode},
		{"", LiveMode},
		{"bogus", LiveMode},
	}
	for _, tt := range tests {
		if got := ParseMode(tt.in); got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if StringMode.String() != "string" || LiveMode.String() != "live" {
		t.Error("Mode.String mismatch")
	}
}
