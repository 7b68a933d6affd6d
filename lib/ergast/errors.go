package ergast

import "fmt"

// TransportError reports a request that never produced a usable
// response: a network failure, a timeout, or a non-2xx status after
// the retry budget is spent. The caller decides whether to abort the
// batch or retry at a coarser granularity.
type TransportError struct {
	Endpoint string
	// zero when the failure happened below HTTP
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("ergast: %s returned status %d", e.Endpoint, e.Status)
	}
	return fmt.Sprintf("ergast: request to %s failed: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// SchemaError reports a successful response whose payload does not
// match the envelope shape the extractors expect. Retrying cannot fix
// a structural mismatch, so it never is.
type SchemaError struct {
	// dotted path of the missing or malformed field
	Field string
	Err   error
}

func (e *SchemaError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ergast: bad payload at %q: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("ergast: missing %q in payload", e.Field)
}

func (e *SchemaError) Unwrap() error { return e.Err }
