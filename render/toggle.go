package render

// Toggle gives a renderer switchable visibility. Embed it and the
// pipeline will skip the renderer while hidden. The zero value is
// hidden; callers show what they need.
type Toggle struct {
	visible bool
}

func (t *Toggle) SetVisible(v bool) { t.visible = v }

func (t *Toggle) IsVisible() bool { return t.visible }
