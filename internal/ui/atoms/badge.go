package atoms

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/louisbranch/tablekit/internal/platform/icons"
	"github.com/louisbranch/tablekit/internal/ui/markup"
)

// BadgeProps describes a short status label.
type BadgeProps struct {
	Label   string
	Variant Variant
	Icon    icons.ID
	TestID  string
}

// Badge renders a status pill.
func Badge(p BadgeProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(w)
		m.Open("span", markup.Class("badge", "gap-1", variantClass("badge", p.Variant)), markup.TestID(p.TestID))
		if p.Icon != "" {
			m.Component(ctx, Icon(IconProps{ID: p.Icon, Class: "size-3"}))
		}
		m.Text(p.Label)
		m.Close("span")
		return m.Err()
	})
}
