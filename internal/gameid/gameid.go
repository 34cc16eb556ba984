// Package gameid generates sortable identifiers for games. IDs are UUIDv7
// values encoded as 26 lowercase characters of Crockford's base32, so they
// sort by creation time and are safe in file names and log lines.
package gameid

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// Base32 alphabet used by TypeID (Crockford's base32)
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length of an encoded ID
const Length = 26

// Generator creates game IDs from a configurable source of randomness
type Generator struct {
	rand io.Reader
}

// NewGenerator creates a generator reading random bits from r. A nil r uses
// crypto/rand.
func NewGenerator(r io.Reader) *Generator {
	return &Generator{rand: r}
}

// Generate creates a new game ID
func Generate() string {
	return NewGenerator(nil).Generate()
}

// Generate creates a new game ID using the generator's random source
func (g *Generator) Generate() string {
	var (
		id  uuid.UUID
		err error
	)
	if g.rand != nil {
		id, err = uuid.NewV7FromReader(g.rand)
	} else {
		id, err = uuid.NewV7()
	}
	if err != nil {
		panic("failed to generate game id: " + err.Error())
	}
	return Encode(id)
}

// Encode renders a UUID as 26 base32 characters. The 128 bits are prefixed
// with two zero bits, so the first character is always 0-7.
func Encode(id uuid.UUID) string {
	var sb strings.Builder
	sb.Grow(Length)

	acc, n := uint(0), 2
	for _, b := range id {
		acc = acc<<8 | uint(b)
		n += 8
		for n >= 5 {
			n -= 5
			sb.WriteByte(alphabet[(acc>>n)&0x1f])
		}
		acc &= 1<<n - 1
	}
	return sb.String()
}

// Parse decodes an ID produced by Encode
func Parse(s string) (uuid.UUID, error) {
	var id uuid.UUID
	if err := Validate(s); err != nil {
		return id, err
	}

	acc, n, out := uint(0), -2, 0
	for i := 0; i < len(s); i++ {
		acc = acc<<5 | uint(strings.IndexByte(alphabet, s[i]))
		n += 5
		// the two pad bits of the first character are zero
		if n >= 8 {
			n -= 8
			id[out] = byte(acc >> n)
			out++
			acc &= 1<<n - 1
		}
	}
	return id, nil
}

// Validate checks if a game ID is valid (26 characters, valid base32)
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("game ID must be exactly %d characters, got %d", Length, len(id))
	}

	// a first character above 7 would need more than 128 bits
	if id[0] > '7' {
		return fmt.Errorf("game ID first character must be 0-7, got %c", id[0])
	}

	for i, char := range id {
		if !strings.ContainsRune(alphabet, char) {
			return fmt.Errorf("invalid character %c at position %d", char, i)
		}
	}
	return nil
}
