// Command fetch downloads the packaged FitTracker project from a running download server.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/mxcd/fittracker-download/pkg/fitdrop"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
)

const defaultFilename = "fitness-tracker-complete.tar.gz"

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	app := &cli.Command{
		Name:  "fetch",
		Usage: "Download the FitTracker project archive",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "url", Value: "http://localhost:8080", Usage: "Download server base URL", Sources: cli.EnvVars("FITDROP_URL")},
			&cli.StringFlag{Name: "out", Usage: "Output path (default: name announced by the server)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return fetch(ctx, fitdrop.NewClient(cmd.String("url")), cmd.String("out"))
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, fitdrop.ErrNotFound) {
			log.Error().Msg("the server has no archive to hand out yet")
		} else {
			log.Error().Err(err).Msg("download failed")
		}
		os.Exit(1)
	}
}

// fetch downloads into a temporary file next to the destination and renames it
// once the transfer is complete, so a failed download never leaves a partial archive.
func fetch(ctx context.Context, client *fitdrop.Client, out string) error {
	dir := "."
	if out != "" {
		dir = filepath.Dir(out)
	}

	tmp, err := os.CreateTemp(dir, ".fetch-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	// CreateTemp makes the file owner-only; the saved archive should not be.
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}

	info, err := client.Download(ctx, tmp)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}

	if out == "" {
		out = filepath.Base(info.Filename)
		if out == "." || out == "/" || out == "" {
			out = defaultFilename
		}
	}
	if err := os.Rename(tmp.Name(), out); err != nil {
		return fmt.Errorf("move archive into place: %w", err)
	}

	log.Info().Str("path", out).Str("size", humanize.Bytes(uint64(info.Size))).Msg("archive saved")
	return nil
}
