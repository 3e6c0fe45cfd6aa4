package modelreg_test

import (
	"testing"

	"github.com/goliatone/go-contenttags/pkg/modelreg"
)

func TestLookupConstructors(t *testing.T) {
	found := modelreg.Found("object")
	if found.Outcome != modelreg.OutcomeFound || found.Object != "object" {
		t.Fatalf("Found = %#v", found)
	}

	missing := modelreg.NotFound()
	if missing.Outcome != modelreg.OutcomeNotFound || missing.Object != nil {
		t.Fatalf("NotFound = %#v", missing)
	}

	ambiguous := modelreg.Ambiguous()
	if ambiguous.Outcome != modelreg.OutcomeAmbiguous || ambiguous.Object != nil {
		t.Fatalf("Ambiguous = %#v", ambiguous)
	}

	var zero modelreg.Lookup
	if zero.Outcome != modelreg.OutcomeNotFound {
		t.Fatalf("zero Lookup outcome = %v, want not found", zero.Outcome)
	}
}

func TestOutcomeString(t *testing.T) {
	cases := map[modelreg.Outcome]string{
		modelreg.OutcomeFound:     "found",
		modelreg.OutcomeNotFound:  "not found",
		modelreg.OutcomeAmbiguous: "ambiguous",
	}
	for outcome, want := range cases {
		if got := outcome.String(); got != want {
			t.Errorf("Outcome(%d).String() = %q, want %q", outcome, got, want)
		}
	}
}
