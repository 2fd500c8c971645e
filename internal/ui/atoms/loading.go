package atoms

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/louisbranch/tablekit/internal/ui/markup"
)

// Loading renders the shared spinner ring. A non-empty label is announced to
// screen readers only.
func Loading(label string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := markup.New(w)
		m.Open("span", markup.A("class", "loading loading-ring loading-md"), markup.TestID("loading"))
		m.Close("span")
		if label != "" {
			m.Element("span", label, markup.A("class", "sr-only"))
		}
		return m.Err()
	})
}
