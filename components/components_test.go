package components

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm/cmpengine"
)

func newEngine(t *testing.T) *cmpengine.Engine {
	t.Helper()
	eng := cmpengine.NewEngine(
		cmpengine.WithIDGenerator(cmpengine.SequentialIDs("id")),
		cmpengine.WithMarkers(false),
	)
	Register(eng.Registry())
	return eng
}

func TestTextWidget(t *testing.T) {
	eng := newEngine(t)

	tests := []struct {
		name string
		desc cmpengine.Description
		want string
	}{
		{
			name: "text and class",
			desc: cmpengine.Description{ID: "helloWorld", ComponentType: "TextWidget", Props: cmpengine.Props{"text": "hello world"}},
			want: `<div class="TextWidget helloWorld"><p>hello world</p></div>`,
		},
		{
			name: "default text",
			desc: cmpengine.Description{ID: "w", ComponentType: "TextWidget"},
			want: `<div class="TextWidget w"><p>This is a text widget with no data!</p></div>`,
		},
		{
			name: "color",
			desc: cmpengine.Description{ID: "w", ComponentType: "TextWidget", Props: cmpengine.Props{"text": "x", "color": "red"}},
			want: `<div class="TextWidget w" style="color: red"><p>x</p></div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, eng.RenderString(tt.desc))
		})
	}
}

func TestHeaderAndFooter(t *testing.T) {
	eng := newEngine(t)

	got := eng.RenderString(cmpengine.Description{ID: "h", ComponentType: "HeaderText", Props: cmpengine.Props{"text": "Site", "tagline": "hello"}})
	assert.Equal(t, `<header class="HeaderText h"><h1>Site</h1><p class="tagline">hello</p></header>`, got)

	got = eng.RenderString(cmpengine.Description{ID: "f", ComponentType: "FooterText", Props: cmpengine.Props{"text": "bye"}})
	assert.Equal(t, `<footer class="FooterText f">bye</footer>`, got)
}

func TestColumnPassesPropsToChildren(t *testing.T) {
	eng := newEngine(t)
	desc := cmpengine.Description{
		ComponentType: "ColumnComponent",
		Props:         cmpengine.Props{"text": "hi there"},
		Children: []cmpengine.Description{
			{ID: "helloWorld", ComponentType: "TextWidget"},
			{ID: "own", ComponentType: "TextWidget", Props: cmpengine.Props{"text": "mine"}},
		},
	}

	got := eng.RenderString(desc)
	assert.Equal(t,
		`<div class="ColumnComponent id1">`+
			`<div class="TextWidget helloWorld"><p>hi there</p></div>`+
			`<div class="TextWidget own"><p>mine</p></div>`+
			`</div>`,
		got)
}

func TestRowAndPage(t *testing.T) {
	eng := newEngine(t)
	desc := cmpengine.Description{
		ID:            "p",
		ComponentType: "PageLayout",
		Props:         cmpengine.Props{"lang": "en"},
		Children: []cmpengine.Description{
			{ID: "r", ComponentType: "RowComponent", Children: []cmpengine.Description{
				{ID: "f", ComponentType: "FooterText", Props: cmpengine.Props{"text": "x"}},
			}},
		},
	}
	assert.Equal(t,
		`<main class="PageLayout p" lang="en"><div class="RowComponent r"><footer class="FooterText f">x</footer></div></main>`,
		eng.RenderString(desc))
}

func TestMenuWidget(t *testing.T) {
	eng := newEngine(t)

	got := eng.RenderString(cmpengine.Description{ID: "m", ComponentType: "MenuWidget", Props: cmpengine.Props{
		"items": []any{"Home", map[string]any{"label": "Docs", "href": "/docs"}},
	}})
	assert.Equal(t,
		`<nav class="MenuWidget m"><ul><li><a href="#">Home</a></li><li><a href="/docs">Docs</a></li></ul></nav>`,
		got)

	empty := eng.RenderString(cmpengine.Description{ID: "m", ComponentType: "MenuWidget"})
	assert.Equal(t, `<nav class="MenuWidget m" />`, empty)
}

func TestSearchWidgetModes(t *testing.T) {
	eng := newEngine(t)
	desc := cmpengine.Description{ID: "s", ComponentType: "SearchWidget", Props: cmpengine.Props{"action": "/find"}}

	static := eng.RenderString(desc)
	assert.Contains(t, static, `action="/find"`)
	assert.Contains(t, static, `method="get"`)
	assert.NotContains(t, static, "hx-get")

	var buf bytes.Buffer
	require.NoError(t, eng.Render(desc).Render(context.Background(), &buf))
	live := buf.String()
	assert.Contains(t, live, `hx-get="/find"`)
	assert.Contains(t, live, `hx-target="#s-results"`)
	assert.True(t, strings.HasPrefix(live, "<form"), live)
}

func TestRegisteredStyles(t *testing.T) {
	eng := newEngine(t)
	desc := cmpengine.Description{
		ComponentType: "ColumnComponent",
		Children: []cmpengine.Description{
			{ComponentType: "TextWidget"},
			{ComponentType: "TextWidget"},
			{ComponentType: "SearchWidget"},
		},
	}

	css := eng.RenderStyles(desc)
	assert.Equal(t,
		".ComponentEngine .ColumnComponent{display:flex;flex-direction:column}.ComponentEngine .TextWidget{padding:0.5em 0}",
		css)
}

func TestRegisterPalette(t *testing.T) {
	reg := cmpengine.NewRegistry()
	Register(reg)

	assert.Equal(t, []string{
		"ColumnComponent", "FooterText", "HeaderText", "MenuWidget",
		"PageLayout", "RowComponent", "SearchWidget", "TextWidget",
	}, reg.ListTypes())
	assert.True(t, reg.HasChildren("ColumnComponent"))
	assert.Equal(t, "en", reg.EditableProps("PageLayout")["lang"].Default)
}
