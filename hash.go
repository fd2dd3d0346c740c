package maskscore

import (
	"crypto/md5" //nolint:gosec // digest for identification, not security
	"encoding/hex"
)

// HashMD5 returns the lowercase hex MD5 digest of the UTF-8 bytes of input.
func HashMD5(input string) string {
	sum := md5.Sum([]byte(input)) //nolint:gosec
	return hex.EncodeToString(sum[:])
}
