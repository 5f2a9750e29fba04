package utils

import (
	"crypto/rand"
	"io"
	"strings"
)

const requestIDAlphabet = "useandom-26T198340PX75pxJACKVERYMINDBUSHWOLF_GQZbfghjklqvwyzrict"

const requestIDLength = 21

// GenerateRequestID returns a nanoid-style identifier used to correlate bank fetches in logs.
func GenerateRequestID() (string, error) {
	bytes := make([]byte, requestIDLength)

	if _, err := io.ReadFull(rand.Reader, bytes); err != nil {
		return "", err
	}

	var builder strings.Builder
	builder.Grow(requestIDLength)

	for _, b := range bytes {
		builder.WriteByte(requestIDAlphabet[b&63])
	}

	return builder.String(), nil
}
