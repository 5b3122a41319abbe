package utils

import (
	"crypto/rand"
	"ecare-automation/internal/pkg/constvars"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
)

const requestIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateRequestID returns an id shaped req_<unix millis>_<9 base36 chars>.
func GenerateRequestID() string {
	return fmt.Sprintf("%s%d_%s", constvars.RequestIDPrefix, time.Now().UnixMilli(), randomString(constvars.RequestIDRandomLength))
}

func GenerateRunID() string {
	return uuid.NewString()
}

func randomString(length int) string {
	max := big.NewInt(int64(len(requestIDAlphabet)))
	out := make([]byte, length)
	for i := range out {
		num, err := rand.Int(rand.Reader, max)
		if err != nil {
			out[i] = requestIDAlphabet[i%len(requestIDAlphabet)]
			continue
		}
		out[i] = requestIDAlphabet[num.Int64()]
	}
	return string(out)
}
