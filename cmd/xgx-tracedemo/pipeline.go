package main

import (
	"context"
	"fmt"
	"syscall"
	"time"

	"github.com/oklog/run"
	"github.com/oklog/ulid/v2"
	pkgerrors "github.com/pkg/errors"

	xgxtrace "github.com/xgx-io/xgx-trace"
)

var (
	errInjected = pkgerrors.New("injected failure")
	jobEntropy  = ulid.DefaultEntropy()
)

type job struct {
	id    ulid.ULID
	seq   int
	depth int
	fail  bool
}

func newJob(seq, depth, failEvery int) job {
	return job{
		id:    ulid.MustNew(ulid.Timestamp(time.Now()), jobEntropy),
		seq:   seq,
		depth: depth,
		fail:  failEvery > 0 && seq%failEvery == 0,
	}
}

// run executes the job. The result's trace holds one site per level.
func (j job) run() xgxtrace.Result[int, error] {
	return descend(j, j.depth)
}

func descend(j job, n int) xgxtrace.Result[int, error] {
	if n == 0 {
		if j.fail {
			return xgxtrace.Err[int](pkgerrors.Wrapf(errInjected, "job %d", j.seq))
		}
		return xgxtrace.Ok[int, error](0)
	}
	v, err := descend(j, n-1).Try()
	if err != nil {
		return xgxtrace.FromError[int](err)
	}
	return xgxtrace.Ok[int, error](v + 1)
}

// outcome moves a finished job from producer to consumer. The consumer owns
// the result once received.
type outcome struct {
	job job
	res xgxtrace.Result[int, error]
}

// settle is the consumer's propagation step.
func settle(o outcome) xgxtrace.Result[int, error] {
	v, err := o.res.Try()
	if err != nil {
		return xgxtrace.FromError[int](err)
	}
	return xgxtrace.Ok[int, error](v)
}

type tally struct {
	ok, failed int
}

func (t tally) String() string {
	return fmt.Sprintf("jobs=%d ok=%d failed=%d", t.ok+t.failed, t.ok, t.failed)
}

func (cfg *rootConfig) Exec(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments %v", args)
	}

	outcomes := make(chan outcome, cfg.buffer)

	var (
		g     run.Group
		total tally
	)

	{
		ctx, cancel := context.WithCancel(ctx)
		g.Add(func() error {
			if err := cfg.produce(ctx, outcomes); err != nil {
				return err
			}
			<-ctx.Done()
			return nil
		}, func(error) {
			cancel()
		})
	}

	{
		ctx, cancel := context.WithCancel(ctx)
		g.Add(func() error {
			t, err := cfg.consume(ctx, outcomes)
			total = t
			return err
		}, func(error) {
			cancel()
		})
	}

	{
		g.Add(run.SignalHandler(ctx, syscall.SIGINT, syscall.SIGTERM))
	}

	err := g.Run()

	fmt.Fprintln(cfg.stdout, total)

	if err != nil {
		return err
	}
	if cfg.strict && total.failed > 0 {
		return fmt.Errorf("%d of %d jobs failed", total.failed, total.ok+total.failed)
	}
	return nil
}

// produce runs every job and sends its outcome. It closes out when done.
func (cfg *rootConfig) produce(ctx context.Context, out chan<- outcome) error {
	defer close(out)
	for seq := 1; seq <= cfg.jobs; seq++ {
		j := newJob(seq, cfg.depth, cfg.failEvery)
		cfg.report.started(j)
		select {
		case out <- outcome{job: j, res: j.run()}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// consume reports outcomes until in is closed and drained.
func (cfg *rootConfig) consume(ctx context.Context, in <-chan outcome) (tally, error) {
	var t tally
	for {
		select {
		case o, ok := <-in:
			if !ok {
				return t, nil
			}
			r := settle(o)
			if r.IsOk() {
				t.ok++
				cfg.report.done(o.job, r.Value())
				continue
			}
			t.failed++
			var err error
			if cfg.discardTrace {
				_, err = xgxtrace.DiscardCallStack(r)
			} else {
				_, err = r.StopTrace()
			}
			cfg.report.failed(o.job, err)

		case <-ctx.Done():
			return t, ctx.Err()
		}
	}
}
