package dom

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

// Element is a snapshot of one page element.
type Element struct {
	ID      string
	Tag     string
	Text    string
	Classes []string
}

func (e Element) HasClass(class string) bool {
	return slices.Contains(e.Classes, class)
}

func (e Element) Hidden() bool {
	return e.HasClass(HiddenClass)
}

func (e Element) clone() Element {
	e.Classes = slices.Clone(e.Classes)
	return e
}

// Document is an in-memory element table keyed by id. The zero value is an
// empty document ready to use.
type Document struct {
	mu       sync.RWMutex
	elements map[string]*Element
	order    []string
}

// NewDocument returns a document holding elements in the given order.
func NewDocument(elements ...Element) *Document {
	d := &Document{elements: make(map[string]*Element, len(elements))}
	for _, el := range elements {
		d.Add(el)
	}
	return d
}

// Add inserts el, replacing any element with the same id.
func (d *Document) Add(el Element) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.elements == nil {
		d.elements = make(map[string]*Element)
	}
	if _, ok := d.elements[el.ID]; !ok {
		d.order = append(d.order, el.ID)
	}
	c := el.clone()
	d.elements[el.ID] = &c
}

// Get returns a copy of the element with the given id.
func (d *Document) Get(id string) (Element, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	el, ok := d.elements[id]
	if !ok {
		return Element{}, false
	}
	return el.clone(), true
}

// Elements returns copies of all elements in insertion order.
func (d *Document) Elements() []Element {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]Element, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.elements[id].clone())
	}
	return out
}

func (d *Document) Exists(id string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.elements[id]
	return ok
}

func (d *Document) SetText(_ context.Context, id, text string) error {
	_, err := d.update(id, setText(text))
	return err
}

// Show removes the hidden class.
func (d *Document) Show(_ context.Context, id string) error {
	_, err := d.update(id, show)
	return err
}

// Hide adds the hidden class.
func (d *Document) Hide(_ context.Context, id string) error {
	_, err := d.update(id, addClass(HiddenClass))
	return err
}

// AddClass adds classes the element does not carry yet.
func (d *Document) AddClass(_ context.Context, id string, classes ...string) error {
	_, err := d.update(id, addClass(classes...))
	return err
}

func (d *Document) Remove(_ context.Context, id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.elements[id]; !ok {
		return fmt.Errorf("%w: %s", ErrElementNotFound, id)
	}
	delete(d.elements, id)
	d.order = slices.DeleteFunc(d.order, func(v string) bool { return v == id })
	return nil
}

// update applies fn to the element under the write lock and returns a copy
// of the result.
func (d *Document) update(id string, fn func(*Element)) (Element, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	el, ok := d.elements[id]
	if !ok {
		return Element{}, fmt.Errorf("%w: %s", ErrElementNotFound, id)
	}
	fn(el)
	return el.clone(), nil
}

func setText(text string) func(*Element) {
	return func(el *Element) { el.Text = text }
}

func show(el *Element) {
	el.Classes = slices.DeleteFunc(el.Classes, func(c string) bool { return c == HiddenClass })
}

func addClass(classes ...string) func(*Element) {
	return func(el *Element) {
		for _, c := range classes {
			if c != "" && !slices.Contains(el.Classes, c) {
				el.Classes = append(el.Classes, c)
			}
		}
	}
}
