package term

import "strconv"

// Integer is a signed 64-bit Suiron integer.
type Integer int64

func (Integer) isTerm() {}

func (i Integer) String() string {
	return strconv.FormatInt(int64(i), 10)
}
