package checkout

import (
	"crypto/rand"
	"fmt"
)

const (
	orderNumberPrefix = "NT"
	orderNumberLength = 9
	orderAlphabet     = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// NewOrderNumber generates an order number: the NT prefix followed by 9
// random uppercase alphanumerics. Uniqueness-in-practice is all the
// storefront needs; nothing resolves these numbers later.
func NewOrderNumber() (string, error) {
	buf := make([]byte, orderNumberLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate order number: %w", err)
	}

	for i, b := range buf {
		buf[i] = orderAlphabet[int(b)%len(orderAlphabet)]
	}

	return orderNumberPrefix + string(buf), nil
}
