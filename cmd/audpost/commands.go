// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/ik5/audpost"
	"github.com/ik5/audpost/cancellation"
	"github.com/ik5/audpost/internal/metrics"
	"github.com/ik5/audpost/media"
	"github.com/ik5/audpost/syncer"
	"github.com/ik5/audpost/utils"
	"github.com/sirupsen/logrus"
)

func newFlagSet(a *app, name, args string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.Usage = func() {
		fmt.Fprintf(a.stderr, "usage: audpost %s %s\n", name, args)
		fs.PrintDefaults()
	}

	return fs
}

func runCancel(a *app, args []string) error {
	c := a.cfg.Cancel

	fs := newFlagSet(a, "cancel", "-main FILE -aux FILE -out FILE [flags]")
	mainPath := fs.String("main", "", "Main recording (voice plus noise)")
	auxPath := fs.String("aux", "", "Auxiliary recording (noise only)")
	outPath := fs.String("out", "", "Output WAV file")
	fs.Float64Var(&c.Ratio, "ratio", c.Ratio, "Mix ratio in [0, 2]: 2 keeps only main, 0 only the inverted aux")
	fs.IntVar(&c.ChunkSize, "chunk", c.ChunkSize, "Frames per processing chunk")
	fs.IntVar(&c.InvertWidth, "invert-width", c.InvertWidth, "Word size in bytes used for inversion (1, 2 or 4)")
	fs.IntVar(&c.OutputRate, "rate", c.OutputRate, "Output frame rate, 0 inherits from main")
	fs.IntVar(&c.Channels, "channels", c.Channels, "Output channels, 0 inherits from main")
	fs.IntVar(&c.SampleWidth, "width", c.SampleWidth, "Output sample width in bytes, 0 inherits from main")
	fs.BoolVar(&c.Strict, "strict", c.Strict, "Reject inputs with different frame rates")

	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if err := required(fs, "main", "aux", "out"); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	log := a.log.WithFields(logrus.Fields{
		"command": "cancel",
		"main":    *mainPath,
		"aux":     *auxPath,
		"out":     *outPath,
	})
	log.WithFields(logrus.Fields{
		"ratio":      c.Ratio,
		"chunk_size": c.ChunkSize,
	}).Debug("Cancelling noise")

	opts := append(c.Options(), cancellation.WithLogger(log))
	out, err := audpost.CancelNoise(*mainPath, *auxPath, *outPath, opts...)
	if err != nil {
		return err
	}

	info, err := out.Info()
	if err != nil {
		return err
	}
	a.metrics.AddFrames(metrics.PipelineCancel, info.Frames)

	log.WithFields(logrus.Fields{
		"frames":      info.Frames,
		"sample_rate": info.SampleRate,
		"channels":    info.Channels,
	}).Info("Noise cancelled")

	return nil
}

func runLag(a *app, args []string) error {
	fs := newFlagSet(a, "lag", "-a FILE -b FILE [flags]")
	path1 := fs.String("a", "", "First recording")
	path2 := fs.String("b", "", "Second recording")
	chunk := fs.Int("chunk", a.cfg.Sync.ChunkSize, "Leading frames to correlate, 0 selects the default")
	seconds := fs.Bool("seconds", false, "Print the lag in seconds instead of frames")

	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if err := required(fs, "a", "b"); err != nil {
		return err
	}

	s, err := syncer.New(*chunk)
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	d1, err := media.OpenAudio(*path1)
	if err != nil {
		return err
	}
	d2, err := media.OpenAudio(*path2)
	if err != nil {
		return err
	}

	lag, err := s.FrameLag(d1, d2)
	if err != nil {
		return err
	}
	rate, err := d1.SampleRate()
	if err != nil {
		return err
	}
	lagSeconds := utils.FramesToSeconds(lag, rate)
	a.metrics.SetLag(lag, lagSeconds)

	a.log.WithFields(logrus.Fields{
		"command": "lag",
		"a":       *path1,
		"b":       *path2,
		"frames":  lag,
		"seconds": lagSeconds,
	}).Debug("Lag measured")

	if *seconds {
		fmt.Fprintf(a.stdout, "%.6f\n", lagSeconds)
	} else {
		fmt.Fprintf(a.stdout, "%d\n", lag)
	}

	return nil
}

func runAlign(a *app, args []string) error {
	fs := newFlagSet(a, "align", "-a FILE -b FILE -out FILE [flags]")
	path1 := fs.String("a", "", "First recording")
	path2 := fs.String("b", "", "Second recording")
	outPath := fs.String("out", "", "Output WAV file")
	chunk := fs.Int("chunk", a.cfg.Sync.ChunkSize, "Leading frames to correlate and frames per copy chunk, 0 selects the default")

	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if err := required(fs, "a", "b", "out"); err != nil {
		return err
	}

	out, err := audpost.Align(*path1, *path2, *outPath, *chunk)
	if errors.Is(err, syncer.ErrInvalidChunkSize) {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if err != nil {
		return err
	}

	info, err := out.Info()
	if err != nil {
		return err
	}
	a.metrics.AddFrames(metrics.PipelineAlign, info.Frames)

	a.log.WithFields(logrus.Fields{
		"command": "align",
		"a":       *path1,
		"b":       *path2,
		"out":     *outPath,
		"frames":  info.Frames,
	}).Info("Recordings aligned")

	return nil
}

func runInspect(a *app, args []string) error {
	fs := newFlagSet(a, "inspect", "FILE...")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errUsage
	}

	var errs []error
	for _, path := range fs.Args() {
		info, err := audpost.Inspect(path)
		if err != nil {
			a.log.WithField("file", path).WithError(err).Warn("Cannot inspect file")
			errs = append(errs, err)
			continue
		}

		fmt.Fprintf(a.stdout, "%s: %s, %d Hz, %d ch", path, info.Format, info.SampleRate, info.Channels)
		if info.SampleWidth > 0 {
			fmt.Fprintf(a.stdout, ", %d-bit", info.SampleWidth*8)
		}
		if info.Frames > 0 && info.SampleRate > 0 {
			fmt.Fprintf(a.stdout, ", %d frames (%.3f s)", info.Frames, utils.FramesToSeconds(info.Frames, info.SampleRate))
		}
		fmt.Fprintln(a.stdout)
	}

	return errors.Join(errs...)
}
