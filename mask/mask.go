package mask

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Width is the number of password positions encoded into a Vector.
const Width = 28

// Class is the code assigned to a single character.
type Class uint8

const (
	ClassNone Class = iota
	ClassFrequentLower
	ClassLower
	ClassFrequentUpper
	ClassUpper
	ClassDigit
	ClassFrequentSpecial
	ClassOther
)

func (c Class) String() string {
	switch c {
	case ClassNone:
		return "None"
	case ClassFrequentLower:
		return "FrequentLower"
	case ClassLower:
		return "Lower"
	case ClassFrequentUpper:
		return "FrequentUpper"
	case ClassUpper:
		return "Upper"
	case ClassDigit:
		return "Digit"
	case ClassFrequentSpecial:
		return "FrequentSpecial"
	case ClassOther:
		return "Other"
	default:
		return fmt.Sprintf("Unknown(%d)", c)
	}
}

const (
	frequentLower   = "esaitnrulo"
	frequentUpper   = "ESAITNRULO"
	frequentSpecial = "><-?./!%@&"
)

// ascii holds the precomputed class of every 7-bit character.
var ascii = buildASCIITable()

func buildASCIITable() [utf8.RuneSelf]Class {
	var t [utf8.RuneSelf]Class
	for r := rune(0); r < utf8.RuneSelf; r++ {
		t[r] = classifyGeneric(r)
	}
	for _, r := range frequentLower {
		t[r] = ClassFrequentLower
	}
	for _, r := range frequentUpper {
		t[r] = ClassFrequentUpper
	}
	for _, r := range frequentSpecial {
		t[r] = ClassFrequentSpecial
	}
	return t
}

func classifyGeneric(r rune) Class {
	switch {
	case unicode.IsLower(r):
		return ClassLower
	case unicode.IsUpper(r):
		return ClassUpper
	case unicode.IsDigit(r):
		return ClassDigit
	default:
		return ClassOther
	}
}

// Classify returns the class code of a single character.
// Invalid code points (utf8.RuneError) fall back to ClassOther.
func Classify(r rune) Class {
	if r >= 0 && r < utf8.RuneSelf {
		return ascii[r]
	}
	if r == utf8.RuneError {
		return ClassOther
	}
	return classifyGeneric(r)
}

// Vector is the encoded form of a password.
type Vector [Width]uint8

// Encode maps the first Width code points of password to their class codes.
// Encode never fails: unsupported characters map to ClassOther.
func Encode(password string) Vector {
	var v Vector
	i := 0
	for _, r := range password {
		if i >= Width {
			break
		}
		v[i] = uint8(Classify(r))
		i++
	}
	return v
}

// Len returns the number of non-padding positions.
func (v Vector) Len() int {
	for i := Width - 1; i >= 0; i-- {
		if v[i] != uint8(ClassNone) {
			return i + 1
		}
	}
	return 0
}

// Ints returns the vector as a freshly allocated int slice.
func (v Vector) Ints() []int {
	out := make([]int, Width)
	for i, c := range v {
		out[i] = int(c)
	}
	return out
}

// Float64s returns the vector as a freshly allocated float64 slice,
// suitable for the distance package.
func (v Vector) Float64s() []float64 {
	out := make([]float64, Width)
	for i, c := range v {
		out[i] = float64(c)
	}
	return out
}

// String renders the non-padding prefix as digits, e.g. "3112655".
func (v Vector) String() string {
	n := v.Len()
	b := make([]byte, n)
	for i := 0; i < n; i++ {
		b[i] = '0' + v[i]
	}
	return string(b)
}
