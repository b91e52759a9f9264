package member

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateUniqueCode builds the human-presentable member reference: four
// random digits prefixed to the phone number. Uniqueness is enforced by the
// store, not here.
func GenerateUniqueCode(phone string) string {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		// crypto/rand failing is effectively fatal elsewhere; fall back to a
		// fixed prefix so registration still produces a parseable code.
		return "1000" + phone
	}
	return fmt.Sprintf("%d%s", 1000+n.Int64(), phone)
}
