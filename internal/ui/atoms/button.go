package atoms

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/louisbranch/tablekit/internal/platform/icons"
	"github.com/louisbranch/tablekit/internal/ui/markup"
)

// Variant selects the visual emphasis of buttons and badges.
type Variant string

const (
	VariantNeutral Variant = "neutral"
	VariantPrimary Variant = "primary"
	VariantSuccess Variant = "success"
	VariantGhost   Variant = "ghost"
)

// Size selects a button size.
type Size string

const (
	SizeSmall  Size = "sm"
	SizeMedium Size = "md"
)

// ButtonProps describes a button or link button. Href renders an anchor;
// HXPost renders an HTMX post button.
type ButtonProps struct {
	Label    string
	Variant  Variant
	Size     Size
	Icon     icons.ID
	Href     string
	Download bool
	HXPost   string
	HXTarget string
	HXSwap   string
	Disabled bool
	TestID   string
}

// Button renders an action. Disabled buttons carry no navigation or HTMX hooks.
func Button(p ButtonProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(w)
		class := markup.Class("btn", variantClass("btn", p.Variant), sizeClass(p.Size), templ.KV("btn-disabled", p.Disabled))
		if p.Href != "" && !p.Disabled {
			m.Open("a", class, markup.URL("href", p.Href), markup.Bool("download", p.Download), markup.TestID(p.TestID))
		} else {
			attrs := []markup.Attr{
				markup.A("type", "button"),
				class,
				markup.Bool("disabled", p.Disabled),
				markup.Opt("aria-disabled", ariaDisabled(p.Disabled)),
			}
			if !p.Disabled {
				attrs = append(attrs,
					markup.URL("hx-post", p.HXPost),
					markup.Opt("hx-target", p.HXTarget),
					markup.Opt("hx-swap", p.HXSwap),
				)
			}
			attrs = append(attrs, markup.TestID(p.TestID))
			m.Open("button", attrs...)
		}
		if p.Icon != "" {
			m.Component(ctx, Icon(IconProps{ID: p.Icon}))
		}
		m.Element("span", p.Label)
		if p.Href != "" && !p.Disabled {
			m.Close("a")
		} else {
			m.Close("button")
		}
		return m.Err()
	})
}

func variantClass(prefix string, v Variant) string {
	switch v {
	case VariantPrimary, VariantSuccess, VariantGhost, VariantNeutral:
		return prefix + "-" + string(v)
	default:
		return prefix + "-" + string(VariantNeutral)
	}
}

func sizeClass(s Size) string {
	if s == SizeSmall {
		return "btn-sm"
	}
	return ""
}

func ariaDisabled(disabled bool) string {
	if disabled {
		return "true"
	}
	return ""
}
