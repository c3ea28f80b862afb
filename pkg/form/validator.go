package form

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Field is a form input identified by id with its raw value.
type Field struct {
	ID    string
	Value string
}

// Validator checks fields and displays the first failure of each.
type Validator struct {
	presenter *Presenter
	clock     validator.Clock
	logger    *slog.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithClock sets the time source for time-dependent defaults.
func WithClock(c validator.Clock) Option {
	return func(v *Validator) {
		if c != nil {
			v.clock = c
		}
	}
}

// WithLogger sets the logger for failure and display records.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

func NewValidator(presenter *Presenter, opts ...Option) *Validator {
	v := &Validator{
		presenter: presenter,
		clock:     validator.SystemClock,
		logger:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *Validator) Presenter() *Presenter {
	return v.presenter
}

// ValidateField reports whether f satisfies rules. On failure the first
// failing message is shown in the field's slot; on success the slot is left
// as it is. The returned error is non-nil only when the message could not be
// displayed, and the verdict is valid either way.
func (v *Validator) ValidateField(ctx context.Context, f Field, rules validator.RuleSet) (bool, error) {
	verr, err := v.check(ctx, f, rules)
	return verr == nil, err
}

// ValidateForm clears all slots, then validates every registered field that
// has a rule set, in registration order. Fields missing from values are
// validated as empty. The first failure of each invalid field is returned;
// an empty result means the form is valid. Display errors are collected and
// do not stop the pass.
func (v *Validator) ValidateForm(ctx context.Context, values map[string]string, rules map[string]validator.RuleSet) (validator.ValidationErrors, error) {
	var errs []error
	if err := v.presenter.ClearErrors(ctx); err != nil {
		errs = append(errs, err)
	}

	var failures validator.ValidationErrors
	for _, id := range v.presenter.Registry().Fields() {
		rs, ok := rules[id]
		if !ok {
			continue
		}
		verr, err := v.check(ctx, Field{ID: id, Value: values[id]}, rs)
		if err != nil {
			errs = append(errs, err)
		}
		if verr != nil {
			failures.Add(*verr)
		}
	}

	if len(errs) > 0 {
		v.logger.ErrorContext(ctx, "failed to display form errors", logger.Errors(errs...))
	}
	if !failures.IsEmpty() {
		v.logger.DebugContext(ctx, "form validation failed", slog.Any("fields", failures.Fields()))
	}
	return failures, errors.Join(errs...)
}

func (v *Validator) check(ctx context.Context, f Field, rules validator.RuleSet) (*validator.ValidationError, error) {
	verr := validator.Check(f.ID, f.Value, rules, v.clock)
	if verr == nil {
		return nil, nil
	}

	v.logger.DebugContext(ctx, "field validation failed",
		logger.Field(f.ID),
		logger.Rule(verr.TranslationKey),
		logger.Params(verr.TranslationValues),
	)

	if err := v.presenter.ShowError(ctx, f.ID, verr.Message); err != nil {
		v.logger.ErrorContext(ctx, "failed to show validation error", logger.Field(f.ID), logger.Error(err))
		return verr, err
	}
	return verr, nil
}
