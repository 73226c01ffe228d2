package sync

// Emitter receives the events published around an import: one
// "record.<format>" event per parsed record and one "records.<format>"
// event with the full batch, both in the post-parse pre-reconciliation
// stage. Emitters are for external subscribers; the engine's control flow
// never depends on them.
type Emitter interface {
	Emit(event string, payload any)
}

// EmitterFunc adapts a function to the Emitter interface.
type EmitterFunc func(event string, payload any)

// Emit calls the function.
func (f EmitterFunc) Emit(event string, payload any) {
	f(event, payload)
}

// NopEmitter discards all events.
type NopEmitter struct{}

// Emit does nothing.
func (NopEmitter) Emit(string, any) {}
