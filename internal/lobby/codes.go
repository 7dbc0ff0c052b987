// internal/lobby/codes.go
package lobby

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateCode returns a random six-character hex lobby code. The code
// space (16.7M values) is wide enough that the create path's existence
// check is not a meaningful collision source; uniqueness is still
// verified by the registry on create.
func GenerateCode() string {
	var b [3]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b[:])
}
