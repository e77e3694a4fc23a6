package ui

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

var _ Dialogs = (*HuhDialogs)(nil)
var _ Status = (*HuhDialogs)(nil)

// HuhDialogs implements Dialogs and Status as huh forms. Esc and Ctrl+C cancel a dialog.
type HuhDialogs struct {
	input      io.Reader
	output     io.Writer
	theme      *huh.Theme
	keyMap     *huh.KeyMap
	accessible bool
}

// HuhOption configures a HuhDialogs.
type HuhOption func(*HuhDialogs)

// WithIO reads keys from r and draws dialogs on w, instead of stdin and stdout.
func WithIO(r io.Reader, w io.Writer) HuhOption {
	return func(d *HuhDialogs) {
		d.input = r
		d.output = w
	}
}

// WithAccessible runs dialogs as plain line-based prompts, without redrawing the screen.
func WithAccessible(accessible bool) HuhOption {
	return func(d *HuhDialogs) {
		d.accessible = accessible
	}
}

// NewHuhDialogs returns dialogs rendered with huh's Charm theme.
func NewHuhDialogs(opts ...HuhOption) *HuhDialogs {
	keyMap := huh.NewDefaultKeyMap()
	keyMap.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "back"))
	d := HuhDialogs{
		theme:  huh.ThemeCharm(),
		keyMap: keyMap,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return &d
}

func (d *HuhDialogs) Input(ctx context.Context, title, prompt string, masked bool) (Selection[string], error) {
	var value string
	input := huh.NewInput().Title(title).Description(prompt).Value(&value)
	if masked {
		input = input.EchoMode(huh.EchoModePassword)
	}
	if err := d.run(ctx, input); err != nil {
		return canceledOr[string](err)
	}
	return Chosen(value), nil
}

func (d *HuhDialogs) Choose(ctx context.Context, title, prompt string, labels []string) (Selection[int], error) {
	options := make([]huh.Option[int], len(labels))
	for i, label := range labels {
		options[i] = huh.NewOption(label, i)
	}
	var index int
	field := huh.NewSelect[int]().Title(title).Description(prompt).Options(options...).Value(&index)
	if err := d.run(ctx, field); err != nil {
		return canceledOr[int](err)
	}
	return Chosen(index), nil
}

func (d *HuhDialogs) Message(ctx context.Context, title, text string) error {
	note := huh.NewNote().Title(title).Description(text).Next(true)
	if err := d.run(ctx, note); err != nil && !errors.Is(err, huh.ErrUserAborted) {
		return err
	}
	return nil
}

// Run shows a spinner with title while action runs.
func (d *HuhDialogs) Run(ctx context.Context, title string, action func(ctx context.Context) error) error {
	if d.accessible {
		return action(ctx)
	}
	var actionErr error
	if err := spinner.New().
		Title(title).
		Action(func() { actionErr = action(ctx) }).
		Run(); err != nil {
		return err
	}
	return actionErr
}

func (d *HuhDialogs) run(ctx context.Context, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(d.theme).
		WithKeyMap(d.keyMap).
		WithAccessible(d.accessible)
	if d.input != nil {
		form = form.WithInput(d.input)
	}
	if d.output != nil {
		form = form.WithOutput(d.output)
	}
	return form.RunWithContext(ctx)
}

func canceledOr[T any](err error) (Selection[T], error) {
	if errors.Is(err, huh.ErrUserAborted) {
		return Canceled[T](), nil
	}
	return Canceled[T](), err
}
