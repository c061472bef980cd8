package main

import (
	"context"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/jcorbin/gorpn/internal/config"
	"github.com/jcorbin/gorpn/internal/logio"
	"github.com/jcorbin/gorpn/internal/panicerr"
)

type stringsFlag []string

func (sf *stringsFlag) String() string     { return strings.Join(*sf, ",") }
func (sf *stringsFlag) Set(s string) error { *sf = append(*sf, s); return nil }

func main() {
	ctx := context.Background()

	var log logio.Logger
	log.SetOutput(os.Stderr)
	defer func() { os.Exit(log.ExitCode()) }()

	var (
		configPath string
		trace      bool
		dump       bool
		depthLimit int
		timeout    time.Duration
		jobs       int
		prelude    stringsFlag
	)
	flag.StringVar(&configPath, "config", "", "load settings from a YAML file")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.BoolVar(&dump, "dump", true, "print the stack after each line, or at the end of each file")
	flag.IntVar(&depthLimit, "depth-limit", 0, "limit nested block evaluation depth")
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit for each input unit")
	flag.IntVar(&jobs, "jobs", 0, "evaluate up to this many files concurrently")
	flag.Var(&prelude, "prelude", "evaluate a file before any input (repeatable)")
	flag.Parse()

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			log.Errorf("%v", err)
			return
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "trace":
			cfg.Trace = trace
		case "dump":
			cfg.Dump = dump
		case "depth-limit":
			cfg.DepthLimit = depthLimit
		case "timeout":
			cfg.Timeout = timeout
		case "jobs":
			cfg.Jobs = jobs
		case "prelude":
			cfg.Prelude = append(cfg.Prelude, prelude...)
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Errorf("%v", err)
		return
	}

	rn := runner{
		dump:    cfg.Dump,
		timeout: cfg.Timeout,
		jobs:    cfg.Jobs,
		report:  errorReporter(&log),
	}
	if cfg.DepthLimit != 0 {
		rn.opts = append(rn.opts, WithDepthLimit(cfg.DepthLimit))
	}
	if cfg.Trace {
		rn.logfn = log.Leveledf("TRACE")
	}
	if err := rn.loadPrelude(cfg.Prelude...); err != nil {
		log.Errorf("prelude: %v", err)
		return
	}

	if args := flag.Args(); len(args) > 0 {
		log.ErrorIf(rn.batch(ctx, args, os.Stdout))
	} else {
		rn.report(rn.interactive(ctx, os.Stdin, os.Stdout))
	}
}

// errorReporter logs any non-nil error, along with the goroutine stack of a
// recovered panic.
func errorReporter(log *logio.Logger) func(err error) {
	return func(err error) {
		if panicerr.IsPanic(err) {
			log.Errorf("%+v", err)
		} else {
			log.ErrorIf(err)
		}
	}
}
