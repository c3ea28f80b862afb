// Package dom models the handful of page elements the form helpers touch and
// the operations they perform on them.
//
// Adapter is the capability consumed by the error presenter and the flash
// dismisser: look an element up by id, set its text, toggle its hidden state,
// add classes and remove it. Two implementations ship with the package.
// Document is an in-memory element table, safe for concurrent use, that tests
// and server-side rendering share. SSE wraps a Document and forwards every
// mutation to the browser as a datastar patch-elements event, so the
// server-side model and the live page stay in step.
//
// Hidden state is expressed with the HiddenClass class, the same convention
// utility-first CSS frameworks use.
package dom
