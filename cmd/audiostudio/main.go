// SPDX-License-Identifier: EPL-2.0

// Command audiostudio renders narration and converts audio files to 16-bit
// PCM WAV.
//
//	audiostudio [-config file] speak    [flags] text...
//	audiostudio [-config file] convert  [flags] input
//	audiostudio [-config file] info     file...
//	audiostudio [-config file] timeline [flags] media...
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ik5/audiostudio/internal/config"
	"github.com/ik5/audiostudio/internal/logger"
)

var errUsage = errors.New("usage")

type command struct {
	name    string
	summary string
	run     func(ctx context.Context, env *env, args []string) error
}

var commands = []command{
	{"speak", "generate narration audio from text", runSpeak},
	{"convert", "convert an audio file to 16-bit PCM WAV", runConvert},
	{"info", "print the layout of audio files", runInfo},
	{"timeline", "lay out media files over a narration track", runTimeline},
}

// env carries what every command needs.
type env struct {
	cfg    *config.Config
	stdout io.Writer
	stderr io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	logger.Sync()

	switch {
	case err == nil:
	case errors.Is(err, errUsage), errors.Is(err, flag.ErrHelp):
		os.Exit(2)
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(os.Stderr, "interrupted")
		os.Exit(130)
	default:
		fmt.Fprintf(os.Stderr, "audiostudio: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("audiostudio", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", os.Getenv("AUDIOSTUDIO_CONFIG"), "path to the YAML config file")
	logLevel := fs.String("log-level", "", "override log.level from the config")
	fs.Usage = func() { usage(fs) }

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	if err := logger.Init(logger.Config{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
		Compress:   cfg.Log.Compress,
		Output:     stderr,
	}); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return errUsage
	}

	name := fs.Arg(0)
	for _, c := range commands {
		if c.name == name {
			return c.run(ctx, &env{cfg: cfg, stdout: stdout, stderr: stderr}, fs.Args()[1:])
		}
	}

	fmt.Fprintf(stderr, "unknown command %q\n\n", name)
	fs.Usage()
	return errUsage
}

func usage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintln(w, "usage: audiostudio [flags] <command> [args]")
	fmt.Fprintln(w, "\ncommands:")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-9s %s\n", c.name, c.summary)
	}
	fmt.Fprintln(w, "\nflags:")
	fs.PrintDefaults()
}
