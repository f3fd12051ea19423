// Package tracelog reports traced errors through structured loggers.
//
// A traced error's Error() string is only its payload, which keeps it
// composable with other Go errors but hides the propagation path from plain
// log lines. The helpers here attach that path as a structured field instead:
//
//	log.WithFields(tracelog.Fields(err)).Error("load failed")
//
// produces
//
//	level=error msg="load failed" error="no such file" trace="[app/main.go:42 app/load.go:17]"
//
// Sites are listed most recent first, matching the %+v rendering.
package tracelog

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"k8s.io/klog/v2"

	xgxtrace "github.com/xgx-io/xgx-trace"
)

// Field names used by Fields, Hook and Klog.
var FieldError = logrus.ErrorKey

const (
	FieldTrace = "trace"
	FieldCause = "cause"
)

// Sites returns the rendered call sites of the first traced error in err's
// chain, most recent first. It returns nil if err carries no trace.
func Sites(err error) []string {
	locs := xgxtrace.LocationsOf(err)
	if len(locs) == 0 {
		return nil
	}
	out := make([]string, 0, len(locs))
	for i := len(locs) - 1; i >= 0; i-- {
		out = append(out, locs[i].String())
	}
	return out
}

// RootCause returns the innermost cause of err. A traced error is first
// opened to its payload, then pkg/errors causes are followed to the end.
func RootCause(err error) error {
	if err == nil {
		return nil
	}
	var t xgxtrace.Traced
	if errors.As(err, &t) {
		if inner := t.Unwrap(); inner != nil {
			err = inner
		}
	}
	return pkgerrors.Cause(err)
}

// Fields returns the structured fields describing err. The cause field is set
// only when it differs from the error message.
func Fields(err error) logrus.Fields {
	if err == nil {
		return logrus.Fields{}
	}
	f := logrus.Fields{FieldError: err.Error()}
	if sites := Sites(err); len(sites) > 0 {
		f[FieldTrace] = sites
	}
	if cause := RootCause(err); cause != nil && cause.Error() != err.Error() {
		f[FieldCause] = cause.Error()
	}
	return f
}

// WithTrace returns an entry derived from l carrying Fields(err).
func WithTrace(l logrus.FieldLogger, err error) *logrus.Entry {
	return l.WithFields(Fields(err))
}

// Hook expands traced errors attached with Entry.WithError, so existing call
// sites pick up the trace without switching to WithTrace.
//
//	logger.AddHook(tracelog.Hook{})
//	logger.WithError(err).Error("sync failed")
type Hook struct {
	// LevelSet limits the hook to the given levels. Empty means all levels.
	LevelSet []logrus.Level
}

// Levels implements logrus.Hook.
func (h Hook) Levels() []logrus.Level {
	if len(h.LevelSet) == 0 {
		return logrus.AllLevels
	}
	return h.LevelSet
}

// Fire implements logrus.Hook.
func (h Hook) Fire(entry *logrus.Entry) error {
	err, ok := entry.Data[FieldError].(error)
	if !ok || err == nil {
		return nil
	}
	for k, v := range Fields(err) {
		if _, exists := entry.Data[k]; exists && k != FieldError {
			continue
		}
		entry.Data[k] = v
	}
	return nil
}

// Klog writes err as a klog structured error record. The record's source
// location is the caller of Klog.
func Klog(err error, msg string, keysAndValues ...any) {
	kv := make([]any, 0, len(keysAndValues)+2)
	kv = append(kv, keysAndValues...)
	if sites := Sites(err); len(sites) > 0 {
		kv = append(kv, FieldTrace, sites)
	}
	klog.ErrorSDepth(1, err, msg, kv...)
}
