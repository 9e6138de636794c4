package collector

import "fmt"

// FetchErrorKind distinguishes why a fetch produced no data.
type FetchErrorKind int

const (
	// FetchEmpty means the provider answered but returned no usable bars,
	// even after the fallback query.
	FetchEmpty FetchErrorKind = iota
	// FetchUpstream means the provider call itself failed (network,
	// invalid symbol, rate limit).
	FetchUpstream
)

func (k FetchErrorKind) String() string {
	switch k {
	case FetchEmpty:
		return "empty"
	case FetchUpstream:
		return "upstream"
	}
	return "unknown"
}

// FetchError is returned by Collector.Fetch when no series could be
// produced. Both kinds mean "no data" to the pipeline; the kind exists so
// callers can report the cause and tests can assert on it.
type FetchError struct {
	Kind   FetchErrorKind
	Ticker string
	Err    error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %s: %v", e.Ticker, e.Kind, e.Err)
	}
	return fmt.Sprintf("fetch %s: %s", e.Ticker, e.Kind)
}

func (e *FetchError) Unwrap() error { return e.Err }
