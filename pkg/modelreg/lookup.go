package modelreg

import "context"

// Lister exposes "give me the first n objects" in a source's default ordering.
type Lister interface {
	// Latest returns at most n objects. A non-positive n yields an empty,
	// non-nil slice. The ordering is whatever the source considers its
	// default; sources with no ordering return objects in storage order.
	Latest(ctx context.Context, n int) ([]any, error)
}

// Fetcher exposes single-object retrieval by primary key. The key travels as
// its literal string form; the source owns any conversion to the storage
// type, and a key the storage cannot interpret is returned as an error.
type Fetcher interface {
	Get(ctx context.Context, pk string) (Lookup, error)
}

// Outcome classifies the result of a primary-key lookup.
type Outcome int

const (
	// OutcomeNotFound means no object matched the key.
	OutcomeNotFound Outcome = iota
	// OutcomeFound means exactly one object matched.
	OutcomeFound
	// OutcomeAmbiguous means more than one object matched a key that was
	// supposed to identify a single object.
	OutcomeAmbiguous
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeAmbiguous:
		return "ambiguous"
	default:
		return "not found"
	}
}

// Lookup is the result of a Fetcher.Get call. The zero value is a miss.
type Lookup struct {
	Object  any
	Outcome Outcome
}

// Found wraps a single matched object.
func Found(obj any) Lookup {
	return Lookup{Object: obj, Outcome: OutcomeFound}
}

// NotFound reports that no object matched.
func NotFound() Lookup {
	return Lookup{Outcome: OutcomeNotFound}
}

// Ambiguous reports that more than one object matched.
func Ambiguous() Lookup {
	return Lookup{Outcome: OutcomeAmbiguous}
}
