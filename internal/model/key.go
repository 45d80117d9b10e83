package model

import (
	"fmt"
	"strings"
)

// Key identifies one of the 64 hexagrams: six binary digits where index 0
// is the bottom ("initial") line and index 5 the top line. The canonical
// text form joins the digits bottom-to-top with commas, e.g. "1,1,1,1,1,1".
type Key [6]int

// ParseKey parses the canonical comma form into a Key.
func ParseKey(s string) (Key, error) {
	var k Key
	parts := strings.Split(s, ",")
	if len(parts) != 6 {
		return k, fmt.Errorf("key %q: want 6 digits, got %d", s, len(parts))
	}
	for i, p := range parts {
		switch strings.TrimSpace(p) {
		case "0":
			k[i] = 0
		case "1":
			k[i] = 1
		default:
			return k, fmt.Errorf("key %q: digit %d is %q, want 0 or 1", s, i, p)
		}
	}
	return k, nil
}

// MustKey parses s and panics on malformed input. It exists for the static
// hexagram table, whose keys are compile-time constants.
func MustKey(s string) Key {
	k, err := ParseKey(s)
	if err != nil {
		panic(err)
	}
	return k
}

func (k Key) String() string {
	var b strings.Builder
	for i, d := range k {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('0' + byte(d))
	}
	return b.String()
}

// MarshalJSON encodes the key in its canonical text form.
func (k Key) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// UnmarshalJSON decodes the canonical text form.
func (k *Key) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseKey(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
