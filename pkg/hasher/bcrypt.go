// Package hasher provides the bcrypt implementation of the password hasher
// port. Each digest embeds its own random salt; cost is adaptive and taken
// from configuration.
package hasher

import "golang.org/x/crypto/bcrypt"

type Bcrypt struct {
	cost int
}

// NewBcrypt returns a bcrypt hasher. Costs outside bcrypt's valid range fall
// back to bcrypt.DefaultCost.
func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

func (b *Bcrypt) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), b.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

func (b *Bcrypt) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
