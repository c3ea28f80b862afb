package dom

import (
	"context"
	"errors"

	"github.com/starfederation/datastar-go/datastar"
)

// Stream is the subset of *datastar.ServerSentEventGenerator the SSE adapter uses.
type Stream interface {
	PatchElementTempl(c datastar.TemplComponent, opts ...datastar.PatchElementOption) error
	PatchElements(elements string, opts ...datastar.PatchElementOption) error
}

// SSE applies mutations to a Document and streams the resulting element to
// the browser. Lookups never touch the stream.
type SSE struct {
	doc    *Document
	stream Stream
}

// NewSSE mirrors doc onto stream.
func NewSSE(doc *Document, stream Stream) *SSE {
	return &SSE{doc: doc, stream: stream}
}

// Document returns the server-side model backing the adapter.
func (s *SSE) Document() *Document {
	return s.doc
}

func (s *SSE) Exists(id string) bool {
	return s.doc.Exists(id)
}

func (s *SSE) SetText(ctx context.Context, id, text string) error {
	return s.apply(ctx, id, setText(text))
}

func (s *SSE) Show(ctx context.Context, id string) error {
	return s.apply(ctx, id, show)
}

func (s *SSE) Hide(ctx context.Context, id string) error {
	return s.apply(ctx, id, addClass(HiddenClass))
}

func (s *SSE) AddClass(ctx context.Context, id string, classes ...string) error {
	return s.apply(ctx, id, addClass(classes...))
}

func (s *SSE) Remove(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.doc.Remove(ctx, id); err != nil {
		return err
	}
	if err := s.stream.PatchElements("",
		datastar.WithSelector(selector(id)),
		datastar.WithMode(datastar.ElementPatchModeRemove),
	); err != nil {
		return errors.Join(ErrPatchFailed, err)
	}
	return nil
}

func (s *SSE) apply(ctx context.Context, id string, fn func(*Element)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	el, err := s.doc.update(id, fn)
	if err != nil {
		return err
	}
	if err := s.stream.PatchElementTempl(Render(el),
		datastar.WithSelector(selector(id)),
		datastar.WithMode(datastar.ElementPatchModeOuter),
	); err != nil {
		return errors.Join(ErrPatchFailed, err)
	}
	return nil
}

func selector(id string) string {
	return "#" + id
}
