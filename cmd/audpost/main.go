// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ik5/audpost/internal/config"
	"github.com/ik5/audpost/internal/metrics"
	"github.com/sirupsen/logrus"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var errUsage = errors.New("usage error")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// app is the state shared by all subcommands of one invocation.
type app struct {
	cfg     *config.Config
	log     *logrus.Logger
	metrics *metrics.Metrics
	stdout  io.Writer
	stderr  io.Writer
}

type command struct {
	name    string
	summary string
	run     func(a *app, args []string) error
}

var commands = []command{
	{name: metrics.PipelineCancel, summary: "remove the noise of an auxiliary recording from a main recording", run: runCancel},
	{name: metrics.PipelineLag, summary: "measure the offset between two recordings", run: runLag},
	{name: metrics.PipelineAlign, summary: "delay the earlier of two recordings to line them up", run: runAlign},
	{name: metrics.PipelineInspect, summary: "print audio file metadata", run: runInspect},
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("audpost", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "Path to configuration file")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn or error")
	metricsFile := fs.String("metrics-file", "", "Write Prometheus metrics to this textfile after the run")
	fs.Usage = func() { usage(fs, stderr) }

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load configuration: %v\n", err)
			return exitError
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			cfg.Logging.Level = *logLevel
		case "metrics-file":
			cfg.Metrics.Textfile = *metricsFile
		}
	})
	if err := cfg.Logging.Validate(); err != nil {
		fmt.Fprintf(stderr, "Invalid logging configuration: %v\n", err)
		return exitUsage
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return exitUsage
	}

	name := fs.Arg(0)
	var cmd *command
	for i := range commands {
		if commands[i].name == name {
			cmd = &commands[i]
			break
		}
	}
	if cmd == nil {
		fmt.Fprintf(stderr, "unknown command %q\n", name)
		fs.Usage()
		return exitUsage
	}

	a := &app{
		cfg:     cfg,
		log:     newLogger(cfg.Logging, stderr),
		metrics: metrics.NewMetrics(),
		stdout:  stdout,
		stderr:  stderr,
	}

	start := time.Now()
	err := cmd.run(a, fs.Args()[1:])
	a.metrics.ObserveRun(cmd.name, start, err)

	if cfg.Metrics.Textfile != "" {
		if werr := a.metrics.WriteTextfile(cfg.Metrics.Textfile); werr != nil {
			a.log.WithError(werr).Error("Failed to export metrics")
		}
	}

	switch {
	case errors.Is(err, errUsage), errors.Is(err, flag.ErrHelp):
		return exitUsage
	case err != nil:
		a.log.WithFields(logrus.Fields{
			"command": cmd.name,
		}).WithError(err).Error("Command failed")
		return exitError
	}

	return exitOK
}

func usage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "usage: audpost [flags] <command> [command flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "commands:")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", c.name, c.summary)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "flags:")
	fs.PrintDefaults()
}

func newLogger(cfg config.LoggingConfig, w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)

	if level, err := logrus.ParseLevel(cfg.Level); err == nil {
		log.SetLevel(level)
	}

	if cfg.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	return log
}

// required reports a usage error naming every empty flag in names.
func required(fs *flag.FlagSet, names ...string) error {
	var missing []string
	for _, name := range names {
		if fs.Lookup(name).Value.String() == "" {
			missing = append(missing, "-"+name)
		}
	}

	if len(missing) > 0 {
		fmt.Fprintf(fs.Output(), "%s: missing required flags %v\n", fs.Name(), missing)
		fs.Usage()
		return errUsage
	}

	return nil
}
