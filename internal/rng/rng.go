// Package rng picks shuffle seeds
package rng

import (
	"crypto/rand"
	"math/big"
)

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Seed returns a positive seed in [1, max] drawn from g
func Seed(g Generator, max int) int64 {
	return int64(g.Intn(max)) + 1
}

// Crypto draws from crypto/rand. It only picks seeds; decks shuffle with a
// seeded math/rand source so that a seed reproduces the order.
type Crypto struct{}

// Intn returns a random number in [0, n). It panics if n <= 0.
func (c Crypto) Intn(n int) int {
	if n <= 0 {
		panic("rng: invalid argument to Intn")
	}

	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}
