package atoms

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/louisbranch/tablekit/internal/platform/icons"
	"github.com/louisbranch/tablekit/internal/ui/markup"
)

// IconProps references a sprite icon. Label makes the icon accessible;
// without it the icon is decorative.
type IconProps struct {
	ID    icons.ID
	Class string
	Label string
}

// Icon renders a reference into the Lucide sprite.
func Icon(p IconProps) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		class := p.Class
		if class == "" {
			class = "size-4"
		}
		m := markup.New(w)
		attrs := []markup.Attr{markup.A("class", class)}
		if p.Label != "" {
			attrs = append(attrs, markup.A("role", "img"), markup.A("aria-label", p.Label))
		} else {
			attrs = append(attrs, markup.A("aria-hidden", "true"))
		}
		m.Open("svg", attrs...)
		m.Open("use", markup.A("href", "#"+icons.SymbolID(p.ID)))
		m.Close("use")
		m.Close("svg")
		return m.Err()
	})
}

// Sprite renders the hidden icon sprite once per document.
func Sprite() templ.Component {
	return templ.Raw(icons.LucideSprite())
}
