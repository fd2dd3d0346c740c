package mask

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		password string
		expected []uint8
	}{
		{"Mixed", "Isim@07", []uint8{3, 1, 1, 2, 6, 5, 5}},
		{"SingleLower", "k", []uint8{2}},
		{"Specials", ">!?@", []uint8{6, 6, 6, 6}},
		{"Digits", "12345", []uint8{5, 5, 5, 5, 5}},
		{"Uppercase", "HBK", []uint8{4, 4, 4}},
		{"FrequentUpper", "ESAITNRULO", []uint8{3, 3, 3, 3, 3, 3, 3, 3, 3, 3}},
		{"FrequentLower", "esaitnrulo", []uint8{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}},
		{"OtherSpecials", "_ #", []uint8{7, 7, 7}},
		{"Reference", "Isim@_Ariri07", []uint8{3, 1, 1, 2, 6, 7, 3, 1, 1, 1, 1, 5, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Encode(tt.password)
			assert.Equal(t, tt.expected, v[:len(tt.expected)])
			for i := len(tt.expected); i < Width; i++ {
				assert.Zero(t, v[i], "position %d must be padding", i)
			}
		})
	}
}

func TestEncode_Empty(t *testing.T) {
	assert.Equal(t, Vector{}, Encode(""))
	assert.Equal(t, 0, Encode("").Len())
}

func TestEncode_Truncation(t *testing.T) {
	base := strings.Repeat("a", Width)

	v1 := Encode(base)
	v2 := Encode(base + "ZZ99!!")
	assert.Equal(t, v1, v2)
	assert.Equal(t, Width, v2.Len())
}

func TestEncode_CountsCodePoints(t *testing.T) {
	// "é" is two bytes but a single position.
	v := Encode("éA")
	assert.Equal(t, uint8(ClassLower), v[0])
	assert.Equal(t, uint8(ClassFrequentUpper), v[1])
	assert.Equal(t, 2, v.Len())
}

func TestClassify(t *testing.T) {
	tests := []struct {
		r        rune
		expected Class
	}{
		{'e', ClassFrequentLower},
		{'m', ClassLower},
		{'I', ClassFrequentUpper},
		{'H', ClassUpper},
		{'0', ClassDigit},
		{'@', ClassFrequentSpecial},
		{'_', ClassOther},
		{' ', ClassOther},
		{'ß', ClassLower},
		{'Ä', ClassUpper},
		{'٣', ClassDigit},
		{'€', ClassOther},
		{'�', ClassOther},
		{-1, ClassOther},
	}

	for _, tt := range tests {
		t.Run(string(tt.r), func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.r))
		})
	}
}

func TestEncode_InvalidUTF8(t *testing.T) {
	v := Encode("a\xffb")
	assert.Equal(t, []uint8{1, 7, 2}, v[:3])
}

func TestVector_Conversions(t *testing.T) {
	v := Encode("Isim@07")

	ints := v.Ints()
	require.Len(t, ints, Width)
	assert.Equal(t, []int{3, 1, 1, 2, 6, 5, 5}, ints[:7])

	floats := v.Float64s()
	require.Len(t, floats, Width)
	assert.Equal(t, 3.0, floats[0])
	assert.Equal(t, 0.0, floats[Width-1])

	assert.Equal(t, "3112655", v.String())
	assert.Equal(t, "", Vector{}.String())
}

func TestClass_String(t *testing.T) {
	assert.Equal(t, "Digit", ClassDigit.String())
	assert.Equal(t, "Other", ClassOther.String())
	assert.Equal(t, "Unknown(42)", Class(42).String())
}

func BenchmarkEncode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Encode("Isim@_Ariri07")
	}
}
