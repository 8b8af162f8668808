package utils

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math/big"
	"time"
)

// GenerateBookingRef returns prefix + 8 uppercase hex characters, e.g.
// "ETX4F21A9C3". The suffix is drawn from crypto/rand so references stay
// unique within a process without coordination.
func GenerateBookingRef(prefix string) string {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		// Timestamp fallback keeps the display format intact.
		return fmt.Sprintf("%s%08d", prefix, time.Now().UnixMilli()%100000000)
	}
	return fmt.Sprintf("%s%08X", prefix, binary.BigEndian.Uint32(b[:]))
}

// GenerateTransactionID returns a payment transaction identifier.
func GenerateTransactionID() string {
	timestamp := time.Now().Unix()
	randomNum, _ := rand.Int(rand.Reader, big.NewInt(999999999))
	return fmt.Sprintf("txn_%d_%09d", timestamp, randomNum.Int64())
}
