package main

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"runtime"

	"github.com/clambin/plex-library-viewer/internal/account"
	"github.com/clambin/plex-library-viewer/internal/config"
	"github.com/clambin/plex-library-viewer/internal/navigator"
	"github.com/clambin/plex-library-viewer/internal/ui"
	"github.com/clambin/plex-library-viewer/plex/plextv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// ErrNoTerminal is returned when stdin or stdout is not a terminal.
var ErrNoTerminal = errors.New("plex-library-viewer needs an interactive terminal")

func newRootCmd(fs afero.Fs, isTerminal func() bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "plex-library-viewer",
		Short:         "Browse the libraries of your Plex Media Servers",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := cmd.Flags()
	flags.String("config", "", "YAML file overriding the built-in texts and options")
	flags.Bool("debug", false, "Log debug messages to stderr")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		path, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(fs, path)
		if err != nil {
			return err
		}
		if !isTerminal() {
			return ErrNoTerminal
		}
		debug, _ := cmd.Flags().GetBool("debug")
		logger := newLogger(cmd.ErrOrStderr(), debug)

		httpClient := &http.Client{Transport: account.LoggingTransport(logger, http.DefaultTransport)}
		authenticator := account.NewAuthenticator(
			plextv.DefaultConfig().WithDevice(device(cfg)),
			account.WithHTTPClient(httpClient),
			account.WithLogger(logger),
		)
		dialogs := ui.NewHuhDialogs()
		return navigator.New(dialogs, dialogs, cfg, navigator.WithLogger(logger)).Run(cmd.Context(), authenticator)
	}
	return cmd
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	if !debug {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// device identifies the viewer in the account's list of authorized devices.
func device(cfg *config.Config) plextv.Device {
	return plextv.Device{
		Product:         cfg.Product,
		Version:         cfg.Version,
		Platform:        runtime.GOOS,
		PlatformVersion: runtime.Version(),
		Device:          runtime.GOARCH,
		DeviceName:      cfg.Name,
		Provides:        "controller",
	}
}
