// Package mask turns a password into a fixed-width character-class vector.
//
// Each of the first Width code points of a password is replaced by a small
// class code. Remaining slots are zero. The codebook is fixed: it must match
// the one used to build the centroid tables, otherwise distances are
// meaningless.
//
//	v := mask.Encode("Isim@07")
//	// v[:7] == [3 1 1 2 6 5 5]
//
// # Codebook
//
//	0  padding (beyond the end of the password)
//	1  frequent lowercase   e s a i t n r u l o
//	2  other lowercase
//	3  frequent uppercase   E S A I T N R U L O
//	4  other uppercase
//	5  digit
//	6  frequent special     > < - ? . / ! % @ &
//	7  anything else
package mask
