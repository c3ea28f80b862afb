package dom

import "context"

// HiddenClass marks an element as hidden.
const HiddenClass = "hidden"

// Adapter manipulates page elements by id.
type Adapter interface {
	Exists(id string) bool
	SetText(ctx context.Context, id, text string) error
	Show(ctx context.Context, id string) error
	Hide(ctx context.Context, id string) error
	AddClass(ctx context.Context, id string, classes ...string) error
	Remove(ctx context.Context, id string) error
}
