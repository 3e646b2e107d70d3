// file: internals/helpers/reference_id.go
package helper

import (
	"crypto/rand"
	"fmt"
	"strconv"
	"strings"
	"time"

	"lagos_eoi_backend/internals/constants"
)

const base36Chars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateReferenceID mints a human-shareable reference of the form
// LAGOS-<TIMESTAMP36>-<RAND4>. Uniqueness is probabilistic; the unique
// index on application_reference_id is the authoritative guard.
func GenerateReferenceID() string {
	timestamp := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))
	return fmt.Sprintf("%s-%s-%s", constants.ReferencePrefix, timestamp, randomBase36(4))
}

func randomBase36(n int) string {
	buf := make([]byte, n)
	_, _ = rand.Read(buf)
	out := make([]byte, n)
	for i, b := range buf {
		out[i] = base36Chars[int(b)%len(base36Chars)]
	}
	return string(out)
}
