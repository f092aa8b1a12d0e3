package cmpengine

// Mode is threaded through every Build call. It decides which variant of a
// StringOverride component is used.
type Mode struct {
	StringRendering bool
}

var (
	// LiveMode builds trees for the templ host path (Templ, Engine.Render).
	LiveMode = Mode{}
	// StringMode builds trees for RenderToString.
	StringMode = Mode{StringRendering: true}
)

func (m Mode) String() string {
	if m.StringRendering {
		return "string"
	}
	return "live"
}

// ParseMode maps "live" and "string" to a Mode. Anything else is live.
func ParseMode(s string) Mode {
	if s == "string" {
		return StringMode
	}
	return LiveMode
}
