package formkit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/formkit/pkg/dom"
	"github.com/dmitrymomot/formkit/pkg/flash"
)

// DataStarScript is the client bundle loaded by the page.
const DataStarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"

// pageStyle defines the utility classes toggled by slot and flash patches.
const pageStyle = `.hidden{display:none}` +
	`.field-error{color:#ef4444;font-size:.875rem}` +
	`.flash{padding:.75rem 1rem;border-radius:.25rem;opacity:1}` +
	`.flash-success{background:#dcfce7}.flash-info{background:#dbeafe}.flash-error{background:#fee2e2}` +
	`.transition{transition-property:opacity;transition-timing-function:ease-in-out}` +
	`.duration-500{transition-duration:500ms}` +
	`.opacity-0{opacity:0}`

func (h *Handler) renderPage(banner *flash.Message) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		signals, err := h.formSignals()
		if err != nil {
			return err
		}

		title := templ.EscapeString(h.cfg.AppName)
		if _, err := fmt.Fprintf(w,
			`<!doctype html><html lang="en"><head><meta charset="utf-8"><title>%s</title>`+
				`<style>%s</style><script type="module" src="%s"></script></head><body><h1>%s</h1>`,
			title, pageStyle, DataStarScript, title); err != nil {
			return err
		}

		if banner != nil {
			if err := h.renderFlash(ctx, w, *banner); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w,
			`<form id="form" novalidate data-signals="%s" data-on-submit="@post('/validate')">`,
			templ.EscapeString(signals)); err != nil {
			return err
		}
		for _, f := range h.fields {
			if err := h.renderField(ctx, w, f); err != nil {
				return err
			}
		}
		_, err = io.WriteString(w, `<button type="submit">Check</button></form></body></html>`)
		return err
	})
}

// renderFlash wraps the managed container so the datastar attributes survive
// its removal.
func (h *Handler) renderFlash(ctx context.Context, w io.Writer, msg flash.Message) error {
	data, err := json.Marshal(flashSignals{Flash: msg})
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, `<div data-signals="%s" data-on-load="@get('/flash')">`,
		templ.EscapeString(string(data))); err != nil {
		return err
	}
	if err := dom.Render(h.flashElement(msg)).Render(ctx, w); err != nil {
		return err
	}
	_, err = io.WriteString(w, `</div>`)
	return err
}

func (h *Handler) renderField(ctx context.Context, w io.Writer, f FormField) error {
	id := templ.EscapeString(f.ID)
	label := f.Label
	if label == "" {
		label = f.ID
	}
	input := f.Input
	if input == "" {
		input = "text"
	}

	if _, err := fmt.Fprintf(w,
		`<div class="field"><label for="%s">%s</label>`+
			`<input id="%s" name="%s" type="%s" data-bind="fields.%s" data-on-blur="@post('/validate')">`,
		id, templ.EscapeString(label), id, id, templ.EscapeString(input), id); err != nil {
		return err
	}
	if err := dom.Render(slotElement(h.registry.SlotID(f.ID))).Render(ctx, w); err != nil {
		return err
	}
	_, err := io.WriteString(w, `</div>`)
	return err
}

func (h *Handler) formSignals() (string, error) {
	values := make(map[string]string, len(h.fields))
	for _, f := range h.fields {
		values[f.ID] = ""
	}
	data, err := json.Marshal(map[string]any{
		"fields":  values,
		"valid":   false,
		"invalid": []string{},
	})
	if err != nil {
		return "", err
	}
	return string(data), nil
}
