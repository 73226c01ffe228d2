package sync

import (
	"fmt"
	"time"
)

// Operation is the upsert strategy dispatched per record. It is resolved
// once per pass from Options.UpdateMethod, not per record.
type Operation int

const (
	// OpUpdateOrCreate updates the first row matching the criteria or
	// inserts when nothing matches. The default.
	OpUpdateOrCreate Operation = iota

	// OpCreate always inserts. Also the per-record fallback when a pass
	// truncates the collection first.
	OpCreate
)

// String returns the wire name of the operation.
func (o Operation) String() string {
	switch o {
	case OpCreate:
		return "create"
	default:
		return "updateOrCreate"
	}
}

// operationFromName maps the configured update method name to an Operation.
func operationFromName(name string) (Operation, error) {
	switch name {
	case "", "updateOrCreate":
		return OpUpdateOrCreate, nil
	case "create":
		return OpCreate, nil
	default:
		return OpUpdateOrCreate, &ConfigurationError{
			Reason: fmt.Sprintf("unknown update method %q", name),
		}
	}
}

// Options configures a reconciliation pass.
type Options struct {
	// Truncate wipes the collection before importing. When set, every
	// record dispatches as a plain create.
	Truncate bool

	// IdentityFields is the base set of fields used to locate existing
	// rows, e.g. ["id", "uuid"]. Schema-declared unique fields are
	// appended during resolution.
	IdentityFields []string

	// Strict drops record fields not declared in the schema before the
	// upsert is dispatched.
	Strict bool

	// UpdateMethod names the non-truncate upsert operation. Empty means
	// "updateOrCreate".
	UpdateMethod string

	// Transform, when set, is applied to the whole batch before iteration
	// begins.
	Transform Transform

	// TransformPlugin names a transform to resolve through the engine's
	// plugin loader. Ignored when Transform is set. Resolution failures
	// are logged and the batch proceeds untransformed.
	TransformPlugin string

	// Resolver overrides the identity resolution strategy. Nil selects
	// the default resolver.
	Resolver IdentityResolver

	// NumberOfItemsBeforeDelay inserts a pause every N processed records.
	// Zero or negative disables the batch delay.
	NumberOfItemsBeforeDelay int

	// DelayAfterItemBatch is the pause applied at each batch boundary.
	DelayAfterItemBatch time.Duration

	// DelayBetweenItems is the pause applied before every single upsert.
	DelayBetweenItems time.Duration
}
