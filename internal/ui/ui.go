// Package ui defines the terminal dialogs used by the viewer.
//
// Dialogs are modal: each call blocks until the user submits or cancels it. A cancelled dialog is not an error.
// It is reported as a Canceled Selection, which callers handle by going back one menu level.
package ui

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidChoice is returned when a Dialogs implementation reports a choice outside the options it was given.
var ErrInvalidChoice = errors.New("invalid choice")

// Dialogs provides the three dialog primitives: free-text input, single choice and a read-only message.
type Dialogs interface {
	// Input asks the user for a line of text. If masked is set, the typed text is not echoed.
	Input(ctx context.Context, title, prompt string, masked bool) (Selection[string], error)
	// Choose asks the user to pick one of labels. The chosen value is the index of the label.
	Choose(ctx context.Context, title, prompt string, labels []string) (Selection[int], error)
	// Message shows text until the user dismisses it.
	Message(ctx context.Context, title, text string) error
}

// Status shows a transient status message while action runs. The message is cleared when action returns.
type Status interface {
	Run(ctx context.Context, title string, action func(ctx context.Context) error) error
}

// Selection is the outcome of a dialog: either a chosen value or a cancellation.
type Selection[T any] struct {
	value  T
	chosen bool
}

// Chosen returns a Selection holding value.
func Chosen[T any](value T) Selection[T] {
	return Selection[T]{value: value, chosen: true}
}

// Canceled returns a Selection without a value.
func Canceled[T any]() Selection[T] {
	return Selection[T]{}
}

// Value returns the chosen value. ok is false if the dialog was cancelled.
func (s Selection[T]) Value() (value T, ok bool) {
	return s.value, s.chosen
}

// IsCanceled reports whether the dialog was cancelled.
func (s Selection[T]) IsCanceled() bool {
	return !s.chosen
}

// Option is a value offered in a Choose dialog, with the label shown to the user.
type Option[T any] struct {
	Value T
	Label string
}

// Choose presents options in a single-choice dialog and returns the value of the chosen option.
func Choose[T any](ctx context.Context, d Dialogs, title, prompt string, options []Option[T]) (Selection[T], error) {
	labels := make([]string, len(options))
	for i, option := range options {
		labels[i] = option.Label
	}
	sel, err := d.Choose(ctx, title, prompt, labels)
	if err != nil {
		return Canceled[T](), err
	}
	index, ok := sel.Value()
	if !ok {
		return Canceled[T](), nil
	}
	if index < 0 || index >= len(options) {
		return Canceled[T](), fmt.Errorf("%w: %d of %d options", ErrInvalidChoice, index, len(options))
	}
	return Chosen(options[index].Value), nil
}

// SortByLabel sorts options by label, in ascending order. Options with the same label keep their order.
func SortByLabel[T any](options []Option[T]) {
	slices.SortStableFunc(options, func(a, b Option[T]) int {
		return cmp.Compare(a.Label, b.Label)
	})
}
