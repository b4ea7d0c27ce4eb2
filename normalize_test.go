package pangasinan

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Abung", "abung"},
		{"ABUNG", "abung"},
		{"abúng", "abung"},
		{"áéíóú", "aeiou"},
		{"mangán", "mangan"},
		{"caña", "canya"},
		{"Ñ", "ny"},
		{"1234!?", "1234!?"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeKeyTrims(t *testing.T) {
	if got := NormalizeKey("  Abúng  "); got != "abung" {
		t.Errorf("NormalizeKey = %q, want %q", got, "abung")
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, in := range []string{"Abúng", "mañga", "laki"} {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent on %q: %q then %q", in, once, twice)
		}
	}
}
