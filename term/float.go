package term

import (
	"strconv"
	"strings"
)

// Float is an IEEE 754 double-precision Suiron number.
type Float float64

func (Float) isTerm() {}

func (f Float) String() string {
	s := strconv.FormatFloat(float64(f), 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
