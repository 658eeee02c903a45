package orders

import (
	"crypto/rand"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// IDGenerator produces a candidate order id. Implementations must not assume
// the id is unused; Create re-draws on collision.
type IDGenerator func() (string, error)

const (
	idPrefix    = "LH"
	idSuffixLen = 5
	base36      = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// LactoID builds the storefront's native order id: "LH", the current unix
// millisecond timestamp in base 36, and 5 random base-36 characters, all
// upper-cased. The suffix comes from crypto/rand, so a collision needs a
// same-millisecond clock and a 1-in-36^5 draw on top.
func LactoID() (string, error) {
	buf := make([]byte, idSuffixLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("orders: generate id: %w", err)
	}
	var b strings.Builder
	b.WriteString(idPrefix)
	b.WriteString(strconv.FormatInt(time.Now().UnixMilli(), 36))
	for _, c := range buf {
		b.WriteByte(base36[int(c)%len(base36)])
	}
	return strings.ToUpper(b.String()), nil
}

// UUIDID is the guaranteed-unique alternative scheme, selected with
// LACTOHUB_ORDER_ID_SCHEME=uuid. The LH prefix is kept so receipts and
// exports look the same either way.
func UUIDID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("orders: generate id: %w", err)
	}
	return idPrefix + strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")), nil
}
