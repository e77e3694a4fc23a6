package ui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDialogs struct {
	Dialogs
	choice Selection[int]
	err    error
}

func (s stubDialogs) Choose(context.Context, string, string, []string) (Selection[int], error) {
	return s.choice, s.err
}

func TestChoose(t *testing.T) {
	options := []Option[string]{{Value: "a", Label: "A"}, {Value: "b", Label: "B"}}
	errFailed := errors.New("failed")

	tests := []struct {
		name    string
		dialogs stubDialogs
		want    string
		wantOK  bool
		wantErr error
	}{
		{"chosen", stubDialogs{choice: Chosen(1)}, "b", true, nil},
		{"canceled", stubDialogs{choice: Canceled[int]()}, "", false, nil},
		{"out of range", stubDialogs{choice: Chosen(2)}, "", false, ErrInvalidChoice},
		{"negative", stubDialogs{choice: Chosen(-1)}, "", false, ErrInvalidChoice},
		{"error", stubDialogs{err: errFailed}, "", false, errFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := Choose(t.Context(), tt.dialogs, "title", "prompt", options)
			assert.ErrorIs(t, err, tt.wantErr)
			value, ok := sel.Value()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, value)
			assert.Equal(t, !tt.wantOK, sel.IsCanceled())
		})
	}
}

func TestSortByLabel(t *testing.T) {
	options := []Option[int]{{1, "Beta"}, {2, "Alpha"}, {3, "Beta"}, {4, "Gamma"}}
	SortByLabel(options)
	assert.Equal(t, []Option[int]{{2, "Alpha"}, {1, "Beta"}, {3, "Beta"}, {4, "Gamma"}}, options)
}

func TestHuhDialogs_Accessible(t *testing.T) {
	var out bytes.Buffer

	d := NewHuhDialogs(WithAccessible(true), WithIO(strings.NewReader("alice\n"), &out))
	text, err := d.Input(t.Context(), "Login", "Username", false)
	require.NoError(t, err)
	value, ok := text.Value()
	assert.True(t, ok)
	assert.Equal(t, "alice", value)

	d = NewHuhDialogs(WithAccessible(true), WithIO(strings.NewReader("2\n"), &out))
	index, err := d.Choose(t.Context(), "Servers", "Pick one", []string{"Alpha", "Beta"})
	require.NoError(t, err)
	i, ok := index.Value()
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	assert.Contains(t, out.String(), "2. Beta")

	out.Reset()
	d = NewHuhDialogs(WithAccessible(true), WithIO(strings.NewReader(""), &out))
	require.NoError(t, d.Message(t.Context(), "Movie", "hello world"))
	assert.Contains(t, out.String(), "hello world")

	var called bool
	err = d.Run(t.Context(), "loading", func(context.Context) error {
		called = true
		return errors.New("boom")
	})
	assert.True(t, called)
	assert.EqualError(t, err, "boom")
}
