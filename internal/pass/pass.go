// Package pass renders confirmation QR passes. The payload is the booking
// summary, AES-encrypted so gate scanners holding the shared secret can
// verify it offline.
package pass

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"io"
	"time"

	"github.com/skip2/go-qrcode"

	"expo-ticketing/internal/models"
)

type Generator struct {
	secret []byte
}

func NewGenerator(secret string) *Generator {
	hashed := sha256.Sum256([]byte(secret)) // normalize to 32 bytes
	return &Generator{secret: hashed[:]}
}

type payload struct {
	Ref          string    `json:"ref"`
	Flow         string    `json:"flow"`
	ExhibitionID string    `json:"exhibitionId"`
	ItemID       string    `json:"itemId"`
	Quantity     int       `json:"quantity,omitempty"`
	VisitDate    time.Time `json:"visitDate,omitempty"`
	Email        string    `json:"email"`
	Total        float64   `json:"total"`
}

// Generate returns a PNG QR code for the booking.
func (g *Generator) Generate(b models.Booking) ([]byte, error) {
	data, err := json.Marshal(payload{
		Ref:          b.Ref,
		Flow:         b.Flow,
		ExhibitionID: b.ExhibitionID,
		ItemID:       b.ItemID,
		Quantity:     b.Quantity,
		VisitDate:    b.VisitDate,
		Email:        b.Email,
		Total:        b.Total,
	})
	if err != nil {
		return nil, err
	}

	encrypted, err := encryptAES(data, g.secret)
	if err != nil {
		return nil, err
	}

	return qrcode.Encode(encrypted, qrcode.Medium, 256)
}

func encryptAES(data []byte, key []byte) (string, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}

	ciphertext := make([]byte, aes.BlockSize+len(data))
	iv := ciphertext[:aes.BlockSize]
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", err
	}

	stream := cipher.NewCFBEncrypter(block, iv)
	stream.XORKeyStream(ciphertext[aes.BlockSize:], data)

	return base64.URLEncoding.EncodeToString(ciphertext), nil
}
