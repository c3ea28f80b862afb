package flash

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dmitrymomot/formkit/pkg/dom"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

const (
	DefaultContainerID  = "flash-container"
	DefaultDelay        = 4 * time.Second
	DefaultFadeDuration = 500 * time.Millisecond
)

// DefaultFadeClasses start the CSS fade-out transition.
var DefaultFadeClasses = []string{"opacity-0", "transition", "duration-500"}

// Dismisser fades out and removes the flash container.
type Dismisser struct {
	containerID  string
	delay        time.Duration
	fadeDuration time.Duration
	fadeClasses  []string
	after        func(time.Duration) <-chan time.Time
	logger       *slog.Logger
}

// Option configures a Dismisser.
type Option func(*Dismisser)

// WithContainerID sets the id of the banner element. Empty ids are ignored.
func WithContainerID(id string) Option {
	return func(d *Dismisser) {
		if id != "" {
			d.containerID = id
		}
	}
}

// WithDelay sets the time between start and the fade. Negative values are ignored.
func WithDelay(delay time.Duration) Option {
	return func(d *Dismisser) {
		if delay >= 0 {
			d.delay = delay
		}
	}
}

// WithFadeDuration sets the time between the fade and removal. Negative values are ignored.
func WithFadeDuration(fade time.Duration) Option {
	return func(d *Dismisser) {
		if fade >= 0 {
			d.fadeDuration = fade
		}
	}
}

// WithFadeClasses replaces the classes added when the fade starts.
func WithFadeClasses(classes ...string) Option {
	return func(d *Dismisser) {
		if len(classes) > 0 {
			d.fadeClasses = classes
		}
	}
}

// WithTimer replaces time.After, mostly for tests.
func WithTimer(after func(time.Duration) <-chan time.Time) Option {
	return func(d *Dismisser) {
		if after != nil {
			d.after = after
		}
	}
}

// WithLogger sets the logger for dismissal records. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dismisser) {
		if l != nil {
			d.logger = l
		}
	}
}

func NewDismisser(opts ...Option) *Dismisser {
	d := &Dismisser{
		containerID:  DefaultContainerID,
		delay:        DefaultDelay,
		fadeDuration: DefaultFadeDuration,
		fadeClasses:  DefaultFadeClasses,
		after:        time.After,
		logger:       logger.Discard(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Dismisser) ContainerID() string {
	return d.containerID
}

// Run blocks until the container is removed, found absent, or ctx is done.
func (d *Dismisser) Run(ctx context.Context, adapter dom.Adapter) error {
	if err := d.wait(ctx, d.delay); err != nil {
		return err
	}

	if !adapter.Exists(d.containerID) {
		d.logger.DebugContext(ctx, "flash container absent", logger.Element(d.containerID))
		return nil
	}

	if err := adapter.AddClass(ctx, d.containerID, d.fadeClasses...); err != nil {
		return errors.Join(ErrFadeFailed, err)
	}

	if err := d.wait(ctx, d.fadeDuration); err != nil {
		return err
	}

	if err := adapter.Remove(ctx, d.containerID); err != nil {
		return errors.Join(ErrRemoveFailed, err)
	}

	d.logger.DebugContext(ctx, "flash container dismissed",
		logger.Element(d.containerID),
		logger.Duration(d.delay+d.fadeDuration),
	)
	return nil
}

// Start runs the dismisser in a goroutine. The channel receives the result
// of Run and is then closed.
func (d *Dismisser) Start(ctx context.Context, adapter dom.Adapter) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- d.Run(ctx, adapter)
	}()
	return done
}

func (d *Dismisser) wait(ctx context.Context, dur time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-d.after(dur):
		return nil
	}
}
