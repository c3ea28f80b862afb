package form

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/dom"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

// Presenter renders validation messages into error slots.
type Presenter struct {
	dom      dom.Adapter
	registry *Registry
	logger   *slog.Logger
}

// PresenterOption configures a Presenter.
type PresenterOption func(*Presenter)

// WithPresenterLogger sets the logger for missing-slot records.
func WithPresenterLogger(l *slog.Logger) PresenterOption {
	return func(p *Presenter) {
		if l != nil {
			p.logger = l
		}
	}
}

func NewPresenter(adapter dom.Adapter, registry *Registry, opts ...PresenterOption) *Presenter {
	p := &Presenter{dom: adapter, registry: registry, logger: logger.Discard()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Presenter) Registry() *Registry {
	return p.registry
}

// ShowError writes message into the slot of fieldID and makes it visible.
// A missing slot is reported as ErrSlotNotFound.
func (p *Presenter) ShowError(ctx context.Context, fieldID, message string) error {
	slot := p.registry.SlotID(fieldID)
	if !p.dom.Exists(slot) {
		return fmt.Errorf("%w: %s", ErrSlotNotFound, slot)
	}
	if err := p.dom.SetText(ctx, slot, message); err != nil {
		return errors.Join(ErrDisplayFailed, err)
	}
	if err := p.dom.Show(ctx, slot); err != nil {
		return errors.Join(ErrDisplayFailed, err)
	}
	return nil
}

// ClearErrors empties and hides every registered slot. Missing or failing
// slots do not stop the sweep; their errors are joined.
func (p *Presenter) ClearErrors(ctx context.Context) error {
	var errs []error
	for _, slot := range p.registry.Slots() {
		if !p.dom.Exists(slot) {
			p.logger.WarnContext(ctx, "error slot missing", logger.Element(slot))
			errs = append(errs, fmt.Errorf("%w: %s", ErrSlotNotFound, slot))
			continue
		}
		if err := p.dom.SetText(ctx, slot, ""); err != nil {
			errs = append(errs, errors.Join(ErrDisplayFailed, err))
			continue
		}
		if err := p.dom.Hide(ctx, slot); err != nil {
			errs = append(errs, errors.Join(ErrDisplayFailed, err))
		}
	}
	return errors.Join(errs...)
}
