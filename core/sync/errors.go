package sync

import (
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/goliatone/core.io-data-manager/core/model"
)

// ConfigurationError reports a usage error: missing identity fields or a
// criteria referencing a field absent from the schema. Always fatal to the
// call that triggered it.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

// ImportError wraps a single record's store failure with the context needed
// to retry or report it. Per-record errors never abort the batch; they are
// collected on the session and read back via Drain.
type ImportError struct {
	// ID uniquely identifies the error,
	// error_<identity>_<timestamp-base36>_<sequence-base36>. The sequence
	// keeps IDs distinct when failures land in the same millisecond.
	ID string

	// Identity is the entity the pass was importing.
	Identity string

	// Strategy is the operation that was attempted for the record.
	Strategy string

	// Criteria is the lookup expression used for the upsert.
	Criteria model.Criteria

	// Record is the offending record, post hydration and casting.
	Record *model.Record

	// Err is the original store failure.
	Err error
}

var errorSeq atomic.Uint64

func newImportError(identity string, op Operation, criteria model.Criteria, rec *model.Record, err error) *ImportError {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	seq := strconv.FormatUint(errorSeq.Add(1), 36)
	return &ImportError{
		ID:       "error_" + identity + "_" + ts + "_" + seq,
		Identity: identity,
		Strategy: op.String(),
		Criteria: criteria,
		Record:   rec,
		Err:      err,
	}
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("import %s failed (%s, criteria %s): %v", e.Identity, e.Strategy, e.Criteria, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// PluginLoadError reports a transform plugin that could not be resolved.
// Recovered by the engine: the batch proceeds untransformed.
type PluginLoadError struct {
	Path string
	Err  error
}

func (e *PluginLoadError) Error() string {
	return fmt.Sprintf("failed to load plugin %q: %v", e.Path, e.Err)
}

func (e *PluginLoadError) Unwrap() error {
	return e.Err
}
