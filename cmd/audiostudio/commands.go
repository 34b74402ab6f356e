// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/ik5/audiostudio"
	"github.com/ik5/audiostudio/internal/logger"
	"github.com/ik5/audiostudio/speech"
	"github.com/ik5/audiostudio/timeline"
)

func newFlagSet(e *env, name, args string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	fs.Usage = func() {
		fmt.Fprintf(e.stderr, "usage: audiostudio %s [flags] %s\n", name, args)
		fs.PrintDefaults()
	}
	return fs
}

func outputPath(e *env, out, fallback string) string {
	if out != "" {
		return out
	}
	return filepath.Join(e.cfg.Output.Dir, fallback)
}

// writeFile creates path and lets write fill it, removing the file on error.
func writeFile(path string, write func(*os.File) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := write(f); err != nil {
		if cerr := f.Close(); cerr != nil {
			logger.L.Debugw("closing partial output failed", "path", path, "error", cerr)
		}
		if rerr := os.Remove(path); rerr != nil {
			logger.L.Debugw("removing partial output failed", "path", path, "error", rerr)
		}
		return err
	}
	return f.Close()
}

func runSpeak(ctx context.Context, e *env, args []string) error {
	sc := e.cfg.Speech
	fs := newFlagSet(e, "speak", "text...")
	voice := fs.String("voice", sc.Voice, "voice id")
	emotion := fs.String("emotion", sc.Emotion, "emotion id")
	speed := fs.Float64("speed", sc.Speed, "speaking speed, 0.5 to 2")
	pitch := fs.Float64("pitch", sc.Pitch, "pitch shift, -10 to 10")
	rate := fs.Int("rate", sc.SampleRate, "output sample rate in Hz")
	textFile := fs.String("file", "", "read the text from this file")
	out := fs.String("o", "", "output WAV file (default <output.dir>/speech.wav)")
	list := fs.Bool("list", false, "list voices and emotions and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *list {
		return printCatalog(e)
	}

	text := strings.Join(fs.Args(), " ")
	if *textFile != "" {
		data, err := os.ReadFile(*textFile)
		if err != nil {
			return fmt.Errorf("%w", err)
		}
		text = string(data)
	}

	req := speech.Request{
		Text:    text,
		Voice:   *voice,
		Emotion: *emotion,
		Speed:   *speed,
		Pitch:   *pitch,
	}
	if err := req.Validate(); err != nil {
		return err
	}

	gen, err := speech.NewGenerator(speech.WithSampleRate(*rate), speech.WithLogger(logger.L))
	if err != nil {
		return err
	}

	path := outputPath(e, *out, "speech.wav")
	if err := writeFile(path, func(f *os.File) error {
		return gen.WriteWAV(ctx, f, req)
	}); err != nil {
		return err
	}

	logger.L.Infow("speech written", "path", path, "frames", gen.Frames(req),
		"duration", speech.EstimateDuration(req.Text, req.Speed))
	fmt.Fprintln(e.stdout, path)
	return nil
}

func printCatalog(e *env) error {
	tw := tabwriter.NewWriter(e.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VOICE\tNAME\tGENDER\tSTYLE")
	for _, v := range speech.Voices() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", v.ID, v.Name, v.Gender, v.Style)
	}
	fmt.Fprintln(tw, "\nEMOTION\tNAME\t\t")
	for _, em := range speech.Emotions() {
		fmt.Fprintf(tw, "%s\t%s\t\t\n", em.ID, em.Name)
	}
	return tw.Flush()
}

func runConvert(ctx context.Context, e *env, args []string) error {
	fs := newFlagSet(e, "convert", "input")
	rate := fs.Int("rate", e.cfg.Audio.SampleRate, "output sample rate in Hz, 0 keeps the source rate")
	mono := fs.Bool("mono", e.cfg.Audio.Mono, "downmix to a single channel")
	out := fs.String("o", "", "output WAV file (default <output.dir>/<input>.wav)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}

	in := fs.Arg(0)
	reg := newRegistry()
	src, err := openSource(reg, in)
	if err != nil {
		return err
	}
	defer src.Close()

	if err := ctx.Err(); err != nil {
		return err
	}

	base := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in)) + ".wav"
	path := outputPath(e, *out, base)
	if abs(path) == abs(in) {
		return fmt.Errorf("refusing to overwrite input %s", in)
	}

	opts := audiostudio.Options{SampleRate: *rate, Mono: *mono}
	if err := writeFile(path, func(f *os.File) error {
		return audiostudio.RenderTo(f, src, opts)
	}); err != nil {
		return err
	}

	logger.L.Infow("converted", "input", in, "output", path, "rate", *rate, "mono", *mono)
	fmt.Fprintln(e.stdout, path)
	return nil
}

func abs(p string) string {
	a, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	return a
}

func runInfo(ctx context.Context, e *env, args []string) error {
	fs := newFlagSet(e, "info", "file...")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errUsage
	}

	reg := newRegistry()
	tw := tabwriter.NewWriter(e.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tRATE\tCHANNELS\tFRAMES\tDURATION")

	for _, path := range fs.Args() {
		if err := ctx.Err(); err != nil {
			return err
		}

		buf, err := loadBuffer(reg, path)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\n",
			path, buf.SampleRate(), buf.NumChannels(), buf.Frames(), buf.Duration().Round(time.Millisecond))
	}

	return tw.Flush()
}

func runTimeline(ctx context.Context, e *env, args []string) error {
	fs := newFlagSet(e, "timeline", "media...")
	transition := fs.String("transition", string(timeline.Fade), "default transition")
	audioPath := fs.String("audio", "", "narration track; the first media file is stretched over it")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errUsage
	}

	tr, err := timeline.ParseTransition(*transition)
	if err != nil {
		return err
	}

	lib := timeline.NewLibrary()
	tl := timeline.New(lib)
	if err := tl.SetDefaultTransition(tr); err != nil {
		return err
	}

	media := make([]timeline.MediaItem, 0, fs.NArg())
	for _, path := range fs.Args() {
		m, err := lib.AddFile(path)
		if err != nil {
			return err
		}
		media = append(media, m)
	}

	if *audioPath != "" {
		if err := ctx.Err(); err != nil {
			return err
		}

		var d time.Duration
		if buf, err := loadBuffer(newRegistry(), *audioPath); err != nil {
			logger.L.Warnw("audio length unknown, using fallback", "audio", *audioPath, "error", err)
		} else {
			d = buf.Duration()
		}
		if _, err := tl.CoverAudio(media[0].ID, d); err != nil {
			return err
		}
	} else {
		for _, m := range media {
			if _, err := tl.Append(m.ID); err != nil {
				return err
			}
		}
	}

	tw := tabwriter.NewWriter(e.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tMEDIA\tKIND\tSTART\tEND\tTRANSITION")
	for i, it := range tl.Items() {
		m, _ := lib.Get(it.MediaID)
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", i+1, m.Name, m.Kind, it.Start, it.End(), it.Transition)
	}
	fmt.Fprintf(tw, "\ttotal\t\t\t%s\t\n", tl.TotalDuration())
	return tw.Flush()
}
