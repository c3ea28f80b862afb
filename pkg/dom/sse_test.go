package dom_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/starfederation/datastar-go/datastar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/dom"
)

var _ dom.Stream = (*datastar.ServerSentEventGenerator)(nil)

type recordedPatch struct {
	html   string
	remove bool
}

type fakeStream struct {
	patches []recordedPatch
	err     error
}

func (f *fakeStream) PatchElementTempl(c datastar.TemplComponent, _ ...datastar.PatchElementOption) error {
	if f.err != nil {
		return f.err
	}
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		return err
	}
	f.patches = append(f.patches, recordedPatch{html: buf.String()})
	return nil
}

func (f *fakeStream) PatchElements(elements string, _ ...datastar.PatchElementOption) error {
	if f.err != nil {
		return f.err
	}
	f.patches = append(f.patches, recordedPatch{html: elements, remove: true})
	return nil
}

func TestSSE(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("each mutation streams the updated element", func(t *testing.T) {
		t.Parallel()
		stream := &fakeStream{}
		adapter := dom.NewSSE(dom.NewDocument(dom.Element{ID: "error_name", Classes: []string{dom.HiddenClass}}), stream)

		require.NoError(t, adapter.SetText(ctx, "error_name", "This field cannot be empty"))
		require.NoError(t, adapter.Show(ctx, "error_name"))

		require.Len(t, stream.patches, 2)
		assert.Equal(t, `<div id="error_name" class="hidden">This field cannot be empty</div>`, stream.patches[0].html)
		assert.Equal(t, `<div id="error_name">This field cannot be empty</div>`, stream.patches[1].html)

		el, _ := adapter.Document().Get("error_name")
		assert.False(t, el.Hidden())
	})

	t.Run("remove streams a removal", func(t *testing.T) {
		t.Parallel()
		stream := &fakeStream{}
		adapter := dom.NewSSE(dom.NewDocument(dom.Element{ID: "flash-container"}), stream)

		require.NoError(t, adapter.Remove(ctx, "flash-container"))
		require.Len(t, stream.patches, 1)
		assert.True(t, stream.patches[0].remove)
		assert.False(t, adapter.Exists("flash-container"))
	})

	t.Run("missing element does not stream", func(t *testing.T) {
		t.Parallel()
		stream := &fakeStream{}
		adapter := dom.NewSSE(dom.NewDocument(), stream)

		err := adapter.AddClass(ctx, "nope", "x")
		assert.True(t, errors.Is(err, dom.ErrElementNotFound))
		assert.True(t, errors.Is(adapter.Remove(ctx, "nope"), dom.ErrElementNotFound))
		assert.Empty(t, stream.patches)
	})

	t.Run("stream failures are wrapped", func(t *testing.T) {
		t.Parallel()
		stream := &fakeStream{err: errors.New("broken pipe")}
		adapter := dom.NewSSE(dom.NewDocument(dom.Element{ID: "slot"}), stream)

		err := adapter.Hide(ctx, "slot")
		assert.True(t, errors.Is(err, dom.ErrPatchFailed))
	})

	t.Run("cancelled context stops before mutating", func(t *testing.T) {
		t.Parallel()
		stream := &fakeStream{}
		adapter := dom.NewSSE(dom.NewDocument(dom.Element{ID: "slot"}), stream)

		cctx, cancel := context.WithCancel(ctx)
		cancel()
		assert.ErrorIs(t, adapter.SetText(cctx, "slot", "x"), context.Canceled)
		el, _ := adapter.Document().Get("slot")
		assert.Empty(t, el.Text)
		assert.Empty(t, stream.patches)
	})

	t.Run("datastar generator writes patch events", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/validate", nil)
		req.Header.Set("Accept", "text/event-stream")
		w := httptest.NewRecorder()

		adapter := dom.NewSSE(
			dom.NewDocument(dom.Element{ID: "error_email", Classes: []string{dom.HiddenClass}}),
			datastar.NewSSE(w, req),
		)
		require.NoError(t, adapter.SetText(ctx, "error_email", "Invalid email address"))
		require.NoError(t, adapter.Remove(ctx, "error_email"))

		body := w.Body.String()
		assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, "#error_email")
		assert.Contains(t, body, "Invalid email address")
		assert.Contains(t, body, "remove")
	})
}
