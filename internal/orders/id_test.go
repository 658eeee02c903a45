package orders_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/Aravindhan20041506/Lacto-hub/internal/orders"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lactoIDRe = regexp.MustCompile(`^LH[0-9A-Z]{10,}$`)

func TestLactoIDFormat(t *testing.T) {
	id, err := orders.LactoID()
	require.NoError(t, err)

	assert.True(t, lactoIDRe.MatchString(id), "unexpected id %q", id)
	assert.Equal(t, strings.ToUpper(id), id)
}

func TestLactoIDsDiffer(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id, err := orders.LactoID()
		require.NoError(t, err)
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %q after %d draws", id, i)
		seen[id] = struct{}{}
	}
}

func TestUUIDIDKeepsPrefix(t *testing.T) {
	id, err := orders.UUIDID()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(id, "LH"))
	assert.Len(t, id, 2+32)
	assert.Equal(t, strings.ToUpper(id), id)
}
