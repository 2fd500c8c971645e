package atoms

import (
	"context"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/a-h/templ"

	"github.com/louisbranch/tablekit/internal/ui/markup"
)

// AvatarProps describes a participant avatar.
type AvatarProps struct {
	Name     string
	ImageURL string
	TestID   string
}

// Avatar renders the image when present, otherwise the name's initials.
func Avatar(p AvatarProps) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := markup.New(w)
		if p.ImageURL != "" {
			m.Open("div", markup.A("class", "avatar"), markup.TestID(p.TestID))
			m.Open("div", markup.A("class", "w-8 rounded-full"))
			m.Void("img", markup.URL("src", p.ImageURL), markup.A("alt", p.Name), markup.A("loading", "lazy"))
			m.Close("div")
			m.Close("div")
			return m.Err()
		}
		m.Open("div", markup.A("class", "avatar avatar-placeholder"), markup.TestID(p.TestID))
		m.Open("div", markup.A("class", "bg-neutral text-neutral-content w-8 rounded-full"))
		m.Element("span", Initials(p.Name), markup.A("class", "text-xs"))
		m.Close("div")
		m.Close("div")
		return m.Err()
	})
}

// Initials returns up to two uppercase initials from name, or "?".
func Initials(name string) string {
	var out []rune
	for _, field := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(field)
		if r == utf8.RuneError {
			continue
		}
		out = append(out, unicode.ToUpper(r))
		if len(out) == 2 {
			break
		}
	}
	if len(out) == 0 {
		return "?"
	}
	return string(out)
}
