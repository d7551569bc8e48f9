package buildkeep

import "testing"

func TestOutcomeOrdering(t *testing.T) {
	ordered := []Outcome{NotBuilt, Failure, Unstable, Success}

	for i, worse := range ordered {
		for _, better := range ordered[i+1:] {
			if !better.BetterThan(worse) {
				t.Errorf("%v should be better than %v", better, worse)
			}
			if worse.BetterThan(better) {
				t.Errorf("%v should not be better than %v", worse, better)
			}
		}
	}
}

func TestOutcomeBetterOrEqual(t *testing.T) {
	if !Success.BetterOrEqual(Success) {
		t.Error("Success should be better-or-equal to itself")
	}
	if Success.BetterThan(Success) {
		t.Error("BetterThan must be strict")
	}
	if !Unstable.BetterOrEqual(Failure) {
		t.Error("Unstable should be better-or-equal to Failure")
	}
	if Failure.BetterOrEqual(Unstable) {
		t.Error("Failure should not be better-or-equal to Unstable")
	}
}

func TestOutcomeStringRoundTrip(t *testing.T) {
	for _, o := range []Outcome{NotBuilt, Failure, Unstable, Success} {
		parsed, err := ParseOutcome(o.String())
		if err != nil {
			t.Fatalf("ParseOutcome(%q): %v", o.String(), err)
		}
		if parsed != o {
			t.Errorf("round trip %v = %v", o, parsed)
		}
	}

	if _, err := ParseOutcome("BOGUS"); err == nil {
		t.Error("expected error for unknown outcome name")
	}
}

func TestOutcomeUnmarshalText(t *testing.T) {
	var o Outcome
	if err := o.UnmarshalText([]byte("UNSTABLE")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if o != Unstable {
		t.Errorf("o = %v, want Unstable", o)
	}
}
