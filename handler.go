package formkit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/formkit/pkg/dom"
	"github.com/dmitrymomot/formkit/pkg/flash"
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/httpserver"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// ErrorSlotClass styles every error slot.
const ErrorSlotClass = "field-error"

// Handler serves the form page, its validation endpoint and the flash stream.
type Handler struct {
	cfg      Config
	fields   []FormField
	rules    map[string]validator.RuleSet
	registry *form.Registry
	flash    *flash.Store
	clock    validator.Clock
	timer    func(time.Duration) <-chan time.Time
	log      *slog.Logger
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithHandlerLogger sets the logger shared by the routes and the validators
// they build.
func WithHandlerLogger(l *slog.Logger) HandlerOption {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// WithHandlerClock sets the clock used for time-dependent rule defaults.
func WithHandlerClock(c validator.Clock) HandlerOption {
	return func(h *Handler) {
		if c != nil {
			h.clock = c
		}
	}
}

// WithFlashTimer replaces the timer source of the flash dismisser.
func WithFlashTimer(after func(time.Duration) <-chan time.Time) HandlerOption {
	return func(h *Handler) {
		if after != nil {
			h.timer = after
		}
	}
}

// NewHandler validates fields and builds the slot registry. Empty slot
// prefix, container id and non-positive flash timings fall back to the
// package defaults.
func NewHandler(cfg Config, fields []FormField, opts ...HandlerOption) (*Handler, error) {
	if err := checkFields(fields); err != nil {
		return nil, err
	}
	store, err := flash.NewStore(cfg.FlashSecret, flash.WithSecure(cfg.Env == "production"))
	if err != nil {
		return nil, err
	}
	if cfg.FlashContainerID == "" {
		cfg.FlashContainerID = flash.DefaultContainerID
	}
	if cfg.ErrorSlotPrefix == "" {
		cfg.ErrorSlotPrefix = form.DefaultSlotPrefix
	}
	if cfg.FlashDelay <= 0 {
		cfg.FlashDelay = flash.DefaultDelay
	}
	if cfg.FlashFade <= 0 {
		cfg.FlashFade = flash.DefaultFadeDuration
	}

	h := &Handler{
		cfg:      cfg,
		fields:   fields,
		rules:    make(map[string]validator.RuleSet, len(fields)),
		registry: form.NewRegistryWithPrefix(cfg.ErrorSlotPrefix),
		flash:    store,
		clock:    validator.SystemClock,
		timer:    time.After,
		log:      logger.Discard(),
	}
	for _, f := range fields {
		h.registry.Register(f.ID, h.registry.SlotID(f.ID))
		h.rules[f.ID] = f.Rules
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// Routes returns the chi router of the handler.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Get("/", h.page)
	r.Post("/validate", h.validate)
	r.Get("/flash", h.dismissFlash)
	r.Get("/healthz", httpserver.HealthCheckHandler(h.log))
	return r
}

// SetFlash queues msg for the next page render.
func (h *Handler) SetFlash(w http.ResponseWriter, msg flash.Message) error {
	return h.flash.Set(w, msg)
}

func (h *Handler) page(w http.ResponseWriter, r *http.Request) {
	msg, ok := h.flash.Pop(w, r)
	var banner *flash.Message
	if ok {
		banner = &msg
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderPage(banner).Render(r.Context(), w); err != nil {
		h.log.ErrorContext(r.Context(), "render page", logger.Error(err))
	}
}

type validateSignals struct {
	Fields map[string]string `json:"fields"`
}

func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !IsDataStar(r) {
		http.Error(w, "datastar request required", http.StatusBadRequest)
		return
	}

	var signals validateSignals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		h.log.WarnContext(ctx, "read signals", logger.Error(err))
		http.Error(w, "invalid signals", http.StatusBadRequest)
		return
	}

	sse := datastar.NewSSE(w, r)
	presenter := form.NewPresenter(
		dom.NewSSE(h.slotDocument(), sse),
		h.registry,
		form.WithPresenterLogger(h.log),
	)
	v := form.NewValidator(presenter, form.WithClock(h.clock), form.WithLogger(h.log))

	failures, err := v.ValidateForm(ctx, signals.Fields, h.rules)
	if err != nil {
		// already logged by the validator
		return
	}

	invalid := failures.Fields()
	if invalid == nil {
		invalid = []string{}
	}
	data, err := json.Marshal(map[string]any{"valid": failures.IsEmpty(), "invalid": invalid})
	if err != nil {
		h.log.ErrorContext(ctx, "marshal signals", logger.Error(err))
		return
	}
	if err := sse.PatchSignals(data); err != nil {
		h.log.ErrorContext(ctx, "patch signals", logger.Error(err))
	}
}

type flashSignals struct {
	Flash flash.Message `json:"flash"`
}

func (h *Handler) dismissFlash(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var signals flashSignals
	if IsDataStar(r) {
		if err := datastar.ReadSignals(r, &signals); err != nil {
			h.log.WarnContext(ctx, "read signals", logger.Error(err))
		}
	}

	// No banner text means the page rendered no container.
	doc := dom.NewDocument()
	if signals.Flash.Text != "" {
		doc.Add(h.flashElement(signals.Flash))
	}
	sse := datastar.NewSSE(w, r)
	d := flash.NewDismisser(
		flash.WithContainerID(h.cfg.FlashContainerID),
		flash.WithDelay(h.cfg.FlashDelay),
		flash.WithFadeDuration(h.cfg.FlashFade),
		flash.WithTimer(h.timer),
		flash.WithLogger(h.log),
	)
	if err := d.Run(ctx, dom.NewSSE(doc, sse)); err != nil && !errors.Is(err, context.Canceled) {
		h.log.ErrorContext(ctx, "dismiss flash", logger.Error(err))
	}
}

// slotDocument models the error slots of a freshly rendered page.
func (h *Handler) slotDocument() *dom.Document {
	doc := dom.NewDocument()
	for _, slot := range h.registry.Slots() {
		doc.Add(slotElement(slot))
	}
	return doc
}

func slotElement(id string) dom.Element {
	return dom.Element{ID: id, Tag: "p", Classes: []string{ErrorSlotClass, dom.HiddenClass}}
}

func (h *Handler) flashElement(msg flash.Message) dom.Element {
	kind := msg.Kind
	if kind == "" {
		kind = flash.KindInfo
	}
	return dom.Element{
		ID:      h.cfg.FlashContainerID,
		Text:    msg.Text,
		Classes: []string{"flash", fmt.Sprintf("flash-%s", kind)},
	}
}
