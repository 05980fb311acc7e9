package ip

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIPv4Hex(t *testing.T) {
	got := IPv4Hex()
	assert.Len(t, got, 8)
	_, err := hex.DecodeString(got)
	assert.NoError(t, err)
}
