package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/clambin/plex-library-viewer/internal/gateway"
	"github.com/spf13/afero"
	"golang.org/x/term"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(afero.NewOsFs(), stdioIsTerminal).ExecuteContext(ctx)
	cancel()
	if err != nil {
		// the user chose to stop: nothing to report
		if !errors.Is(err, gateway.ErrCanceled) {
			_, _ = fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func stdioIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
