package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffval"
	"github.com/sirupsen/logrus"
	"k8s.io/klog/v2"

	"github.com/xgx-io/xgx-trace/tracelog"
)

type rootConfig struct {
	stdout io.Writer
	stderr io.Writer

	jobs         int
	depth        int
	failEvery    int
	buffer       int
	logLevel     string
	logFormat    string
	discardTrace bool
	strict       bool

	report reporter
}

func (cfg *rootConfig) register(fs *ff.FlagSet) {
	fs.AddFlag(ff.FlagConfig{ShortName: 'n', LongName: "jobs" /*          */, Value: ffval.NewValueDefault(&cfg.jobs, 10) /*                                         */, Usage: "number of jobs to run"})
	fs.AddFlag(ff.FlagConfig{ShortName: 'd', LongName: "depth" /*         */, Value: ffval.NewValueDefault(&cfg.depth, 3) /*                                         */, Usage: "nested calls per job, one propagation hop each"})
	fs.AddFlag(ff.FlagConfig{ShortName: 'f', LongName: "fail-every" /*    */, Value: ffval.NewValueDefault(&cfg.failEvery, 3) /*                                     */, Usage: "fail every Nth job (0 disables failures)"})
	fs.AddFlag(ff.FlagConfig{ShortName: 0x0, LongName: "buffer" /*        */, Value: ffval.NewValueDefault(&cfg.buffer, 0) /*                                        */, Usage: "producer to consumer channel buffer size"})
	fs.AddFlag(ff.FlagConfig{ShortName: 'l', LongName: "log-level" /*     */, Value: ffval.NewEnum(&cfg.logLevel, "info", "debug", "warn", "error") /*               */, Usage: "log level: info, debug, warn, error", Placeholder: "LEVEL"})
	fs.AddFlag(ff.FlagConfig{ShortName: 'o', LongName: "log-format" /*    */, Value: ffval.NewEnum(&cfg.logFormat, "text", "json", "klog") /*                        */, Usage: "log format: text, json, klog", Placeholder: "FORMAT"})
	fs.AddFlag(ff.FlagConfig{ShortName: 0x0, LongName: "discard-trace" /* */, Value: ffval.NewValue(&cfg.discardTrace) /*                                           */, Usage: "drop call sites before logging failures", NoDefault: true})
	fs.AddFlag(ff.FlagConfig{ShortName: 0x0, LongName: "strict" /*        */, Value: ffval.NewValue(&cfg.strict) /*                                                  */, Usage: "exit with an error if any job failed", NoDefault: true})
}

func (cfg *rootConfig) validate() error {
	switch {
	case cfg.jobs < 0:
		return fmt.Errorf("--jobs must not be negative")
	case cfg.depth < 0:
		return fmt.Errorf("--depth must not be negative")
	case cfg.failEvery < 0:
		return fmt.Errorf("--fail-every must not be negative")
	case cfg.buffer < 0:
		return fmt.Errorf("--buffer must not be negative")
	}

	switch cfg.logFormat {
	case "klog":
		if err := setKlogVerbosity(cfg.logLevel); err != nil {
			return err
		}
		klog.LogToStderr(false)
		klog.SetOutput(cfg.stderr)
		cfg.report = klogReporter{quiet: cfg.logLevel == "warn" || cfg.logLevel == "error"}

	default:
		level, err := logrus.ParseLevel(cfg.logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", cfg.logLevel, err)
		}
		log := logrus.New()
		log.SetOutput(cfg.stderr)
		log.SetLevel(level)
		log.AddHook(tracelog.Hook{LevelSet: []logrus.Level{logrus.ErrorLevel, logrus.WarnLevel}})
		if cfg.logFormat == "json" {
			log.SetFormatter(&logrus.JSONFormatter{})
		} else {
			log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
		}
		cfg.report = logrusReporter{log: log}
	}

	return nil
}

// setKlogVerbosity maps --log-level onto klog's -v: debug enables V(1).
// klog has no info threshold, so warn and error are handled by the reporter.
func setKlogVerbosity(level string) error {
	fs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fs)
	v := "0"
	if level == "debug" {
		v = "1"
	}
	if err := fs.Set("v", v); err != nil {
		return fmt.Errorf("set klog verbosity: %w", err)
	}
	return nil
}
