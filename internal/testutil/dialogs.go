package testutil

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/clambin/plex-library-viewer/internal/ui"
)

var (
	_ ui.Dialogs = (*Dialogs)(nil)
	_ ui.Status  = (*Dialogs)(nil)
)

// ErrScriptDone is returned when a dialog is opened after all answers have been used.
var ErrScriptDone = errors.New("no more answers")

// Answer is the scripted response to one Input or Choose dialog.
type Answer struct {
	err    error
	text   string
	label  string
	index  int
	cancel bool
}

// Type answers an Input dialog with text.
func Type(text string) Answer { return Answer{text: text, index: -1} }

// Pick answers a Choose dialog with the option labeled label.
func Pick(label string) Answer { return Answer{label: label, index: -1} }

// PickIndex answers a Choose dialog with the option at index, whether it exists or not.
func PickIndex(index int) Answer { return Answer{index: index} }

// Cancel cancels the dialog.
func Cancel() Answer { return Answer{cancel: true} }

// Fail makes the dialog return err.
func Fail(err error) Answer { return Answer{err: err} }

// Call records one dialog shown to the user.
type Call struct {
	Kind   string
	Title  string
	Prompt string
	Labels []string
	Masked bool
}

// Dialogs answers dialogs from a script, in order, and records every dialog it is shown.
// Message dialogs are dismissed without using an answer.
type Dialogs struct {
	answers []Answer
	calls   []Call
	lock    sync.Mutex
}

// NewDialogs returns Dialogs that answer with answers.
func NewDialogs(answers ...Answer) *Dialogs {
	return &Dialogs{answers: answers}
}

func (d *Dialogs) Input(_ context.Context, title, prompt string, masked bool) (ui.Selection[string], error) {
	answer, err := d.next(Call{Kind: "input", Title: title, Prompt: prompt, Masked: masked})
	if err != nil || answer.cancel {
		return ui.Canceled[string](), err
	}
	return ui.Chosen(answer.text), nil
}

func (d *Dialogs) Choose(_ context.Context, title, prompt string, labels []string) (ui.Selection[int], error) {
	answer, err := d.next(Call{Kind: "choose", Title: title, Prompt: prompt, Labels: slices.Clone(labels)})
	if err != nil || answer.cancel {
		return ui.Canceled[int](), err
	}
	if answer.index >= 0 {
		return ui.Chosen(answer.index), nil
	}
	index := slices.Index(labels, answer.label)
	if index < 0 {
		return ui.Canceled[int](), fmt.Errorf("option %q not offered: %v", answer.label, labels)
	}
	return ui.Chosen(index), nil
}

func (d *Dialogs) Message(_ context.Context, title, text string) error {
	d.record(Call{Kind: "message", Title: title, Prompt: text})
	return nil
}

// Run records the status title and runs action.
func (d *Dialogs) Run(ctx context.Context, title string, action func(context.Context) error) error {
	d.record(Call{Kind: "status", Title: title})
	return action(ctx)
}

// Calls returns the dialogs shown so far.
func (d *Dialogs) Calls() []Call {
	d.lock.Lock()
	defer d.lock.Unlock()
	return slices.Clone(d.calls)
}

// CallsOf returns the dialogs of one kind ("input", "choose", "message" or "status") shown so far.
func (d *Dialogs) CallsOf(kind string) []Call {
	var calls []Call
	for _, call := range d.Calls() {
		if call.Kind == kind {
			calls = append(calls, call)
		}
	}
	return calls
}

// Remaining returns the number of unused answers.
func (d *Dialogs) Remaining() int {
	d.lock.Lock()
	defer d.lock.Unlock()
	return len(d.answers)
}

func (d *Dialogs) record(call Call) {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.calls = append(d.calls, call)
}

func (d *Dialogs) next(call Call) (Answer, error) {
	d.record(call)
	d.lock.Lock()
	defer d.lock.Unlock()
	if len(d.answers) == 0 {
		return Answer{}, fmt.Errorf("%s %q: %w", call.Kind, call.Title, ErrScriptDone)
	}
	answer := d.answers[0]
	d.answers = d.answers[1:]
	return answer, answer.err
}
