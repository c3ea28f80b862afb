package dom

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

const defaultTag = "div"

// Render returns a templ component that renders el as a single HTML element.
func Render(el Element) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		tag := el.Tag
		if tag == "" {
			tag = defaultTag
		}

		var b strings.Builder
		fmt.Fprintf(&b, `<%s id="%s"`, tag, templ.EscapeString(el.ID))
		if len(el.Classes) > 0 {
			fmt.Fprintf(&b, ` class="%s"`, templ.EscapeString(strings.Join(el.Classes, " ")))
		}
		fmt.Fprintf(&b, `>%s</%s>`, templ.EscapeString(el.Text), tag)

		_, err := io.WriteString(w, b.String())
		return err
	})
}
