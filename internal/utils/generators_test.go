package utils_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"expo-ticketing/internal/utils"
)

func TestGenerateBookingRef_Format(t *testing.T) {
	ref := utils.GenerateBookingRef("ETX")
	assert.Len(t, ref, 11)
	assert.True(t, strings.HasPrefix(ref, "ETX"))
	for _, r := range ref[3:] {
		assert.Contains(t, "0123456789ABCDEF", string(r))
	}
}

func TestGenerateBookingRef_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		ref := utils.GenerateBookingRef("STL")
		assert.False(t, seen[ref], "ref %s repeated", ref)
		seen[ref] = true
	}
}

func TestGenerateTransactionID(t *testing.T) {
	id := utils.GenerateTransactionID()
	assert.True(t, strings.HasPrefix(id, "txn_"))
	assert.NotEqual(t, id, utils.GenerateTransactionID())
}
