package main

import (
	"github.com/sirupsen/logrus"
	"k8s.io/klog/v2"

	"github.com/xgx-io/xgx-trace/tracelog"
)

type reporter interface {
	started(j job)
	done(j job, v int)
	failed(j job, err error)
}

type logrusReporter struct {
	log *logrus.Logger
}

func (r logrusReporter) entry(j job) *logrus.Entry {
	return r.log.WithFields(logrus.Fields{"job": j.id.String(), "seq": j.seq})
}

func (r logrusReporter) started(j job) {
	r.entry(j).WithField("depth", j.depth).Debug("job started")
}

func (r logrusReporter) done(j job, v int) {
	r.entry(j).WithField("value", v).Info("job done")
}

// failed logs through WithError so the hook on the logger expands the trace.
func (r logrusReporter) failed(j job, err error) {
	r.entry(j).WithError(err).Error("job failed")
}

// klogReporter logs through klog. Verbosity is set from --log-level; quiet
// drops info records for the warn and error levels.
type klogReporter struct {
	quiet bool
}

func (klogReporter) started(j job) {
	klog.V(1).InfoS("job started", "job", j.id.String(), "seq", j.seq, "depth", j.depth)
}

func (r klogReporter) done(j job, v int) {
	if r.quiet {
		return
	}
	klog.InfoS("job done", "job", j.id.String(), "seq", j.seq, "value", v)
}

func (klogReporter) failed(j job, err error) {
	tracelog.Klog(err, "job failed", "job", j.id.String(), "seq", j.seq)
}
