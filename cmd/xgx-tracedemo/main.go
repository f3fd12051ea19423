// xgx-tracedemo runs a small producer/consumer pipeline of traced results and
// logs every failure together with the call sites it was propagated through.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/oklog/run"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

func main() {
	var (
		ctx    = context.Background()
		stdout = os.Stdout
		stderr = os.Stderr
		args   = os.Args[1:]
	)
	err := exec(ctx, stdout, stderr, args)
	switch {
	case err == nil, errors.Is(err, context.Canceled), errors.As(err, &(run.SignalError{})):
		os.Exit(0)
	case err != nil:
		fmt.Fprintf(stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func exec(ctx context.Context, stdout, stderr io.Writer, args []string) (err error) {
	cfg := &rootConfig{
		stdout: stdout,
		stderr: stderr,
	}

	fs := ff.NewFlagSet("xgx-tracedemo")
	cfg.register(fs)

	cmd := &ff.Command{
		Name:      "xgx-tracedemo",
		ShortHelp: "propagate traced errors through a job pipeline and log them",
		LongHelp: "Each job descends --depth nested calls. Every --fail-every-th job fails at " +
			"the bottom, and the error is propagated back up one hop per level before the " +
			"consumer logs it with its trace.",
		Flags: fs,
		Exec:  cfg.Exec,
	}

	// Print help when appropriate.
	showHelp := true
	defer func() {
		errHelp := errors.Is(err, ff.ErrHelp)
		if showHelp || errHelp {
			fmt.Fprintf(stderr, "\n%s\n", ffhelp.Command(cmd))
		}
		if errHelp {
			err = nil
		}
	}()

	if err := cmd.Parse(args, ff.WithEnvVarPrefix("XGX_TRACEDEMO")); err != nil {
		return err
	}

	if err := cfg.validate(); err != nil {
		return err
	}

	// Run errors shouldn't show help by default.
	showHelp = false

	return cmd.Run(ctx)
}
