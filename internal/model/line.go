package model

import "fmt"

// Line is a single yao observation in the classical 6..9 notation.
// Old lines (6, 9) are at a turning point and flip in the projected
// hexagram; young lines (7, 8) are stable.
type Line int

const (
	OldYin    Line = 6
	YoungYang Line = 7
	YoungYin  Line = 8
	OldYang   Line = 9
)

// Valid reports whether l is one of the four line values.
func (l Line) Valid() bool { return l >= OldYin && l <= OldYang }

// Yang reports whether the line is solid (7 or 9).
func (l Line) Yang() bool { return l == YoungYang || l == OldYang }

// Changing reports whether the line flips in the projection (6 or 9).
func (l Line) Changing() bool { return l == OldYin || l == OldYang }

// PresentDigit is the line's binary digit before transformation.
func (l Line) PresentDigit() int {
	if l.Yang() {
		return 1
	}
	return 0
}

// ProjectedDigit is the line's binary digit after transformation:
// old yang becomes yin, old yin becomes yang, young lines keep their digit.
func (l Line) ProjectedDigit() int {
	switch l {
	case OldYang:
		return 0
	case OldYin:
		return 1
	default:
		return l.PresentDigit()
	}
}

func (l Line) String() string {
	switch l {
	case OldYin:
		return "老阴 (6)"
	case YoungYang:
		return "阳 (7)"
	case YoungYin:
		return "阴 (8)"
	case OldYang:
		return "老阳 (9)"
	default:
		return fmt.Sprintf("Line(%d)", int(l))
	}
}
