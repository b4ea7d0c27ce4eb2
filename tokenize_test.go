package pangasinan

import "testing"

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		want  []string
		words []bool
	}{
		{"empty", "", nil, nil},
		{"whitespace only", "   \t\n", nil, nil},
		{"single word", "abung", []string{"abung"}, []bool{true}},
		{"two words", "abung ko", []string{"abung", "ko"}, []bool{true, true}},
		{"punctuation split", "Abung ko!", []string{"Abung", "ko", "!"}, []bool{true, true, false}},
		{"diacritics kept", "mangán ed abúng", []string{"mangán", "ed", "abúng"}, []bool{true, true, true}},
		{"comma attached", "on, andi", []string{"on", ",", "andi"}, []bool{true, false, true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for i, tok := range got {
				if tok.Text != tt.want[i] {
					t.Errorf("token %d = %q, want %q", i, tok.Text, tt.want[i])
				}
				if tok.Word != tt.words[i] {
					t.Errorf("token %d word flag = %v, want %v", i, tok.Word, tt.words[i])
				}
			}
		})
	}
}

func TestTokenizeRestartable(t *testing.T) {
	in := "abung ko ed baley"
	first := Tokenize(in)
	second := Tokenize(in)
	if len(first) != len(second) {
		t.Fatalf("length differs: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("token %d differs: %v vs %v", i, first[i], second[i])
		}
	}
}
