package digest

import "testing"

func TestDigestDeterministic(t *testing.T) {
	a := Digest("campus-pass-123")
	b := Digest("campus-pass-123")
	if a != b {
		t.Errorf("same input produced different digests: %s vs %s", a, b)
	}
}

func TestDigestKnownValue(t *testing.T) {
	// SHA-256("abc")
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got := Digest("abc"); got != want {
		t.Errorf("Digest(\"abc\") = %s, want %s", got, want)
	}
}

func TestDigestDistinctInputs(t *testing.T) {
	inputs := []string{"", "a", "A", "password", "password ", "পাসওয়ার্ড"}
	seen := make(map[string]string)
	for _, in := range inputs {
		d := Digest(in)
		if len(d) != 64 {
			t.Errorf("Digest(%q) has length %d, want 64", in, len(d))
		}
		if prev, ok := seen[d]; ok {
			t.Errorf("collision between %q and %q", prev, in)
		}
		seen[d] = in
	}
}

func TestMatches(t *testing.T) {
	stored := Digest("secret")
	if !Matches("secret", stored) {
		t.Error("expected matching plaintext to verify")
	}
	if Matches("Secret", stored) {
		t.Error("expected mismatching plaintext to fail")
	}
}
