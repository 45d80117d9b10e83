package model

import "testing"

func TestLine_Digits(t *testing.T) {
	tests := []struct {
		line      Line
		present   int
		projected int
		changing  bool
	}{
		{OldYin, 0, 1, true},
		{YoungYang, 1, 1, false},
		{YoungYin, 0, 0, false},
		{OldYang, 1, 0, true},
	}
	for _, tt := range tests {
		if got := tt.line.PresentDigit(); got != tt.present {
			t.Errorf("%v present digit: got %d, want %d", tt.line, got, tt.present)
		}
		if got := tt.line.ProjectedDigit(); got != tt.projected {
			t.Errorf("%v projected digit: got %d, want %d", tt.line, got, tt.projected)
		}
		if got := tt.line.Changing(); got != tt.changing {
			t.Errorf("%v changing: got %v", tt.line, got)
		}
		// young lines project to themselves, old lines always flip
		if tt.changing == (tt.present == tt.projected) {
			t.Errorf("%v: projection must flip exactly the old lines", tt.line)
		}
	}
}

func TestKey_ParseRoundTrip(t *testing.T) {
	for _, s := range []string{"1,1,1,1,1,1", "0,0,0,0,0,0", "1,0,0,0,0,0", "0,0,1,1,0,1"} {
		k, err := ParseKey(s)
		if err != nil {
			t.Fatalf("%s: %v", s, err)
		}
		if k.String() != s {
			t.Errorf("round trip: got %s, want %s", k.String(), s)
		}
	}
	for _, s := range []string{"", "1,1,1", "1,1,1,1,1,2", "1,1,1,1,1,1,1"} {
		if _, err := ParseKey(s); err == nil {
			t.Errorf("%q: expected parse error", s)
		}
	}
}
