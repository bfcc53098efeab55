// Package generator builds typing word lists.
package generator

import (
	"math/rand"
	"time"
)

const (
	// MinWords is the shortest randomly drawn word list.
	MinWords = 11
	// MaxWords is the longest randomly drawn word list.
	MaxWords = 21
)

// Rand is the randomness a Generator needs. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Generator produces randomized word lists.
type Generator struct {
	rnd Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns a Generator with a reproducible sequence.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// NewWithRand wraps an existing random source.
func NewWithRand(rnd Rand) *Generator {
	return &Generator{rnd: rnd}
}

// Length draws a word count uniformly from [MinWords, MaxWords].
func (g *Generator) Length() int {
	span := MaxWords - MinWords + 1
	n := MinWords + int(g.rnd.Float64()*float64(span))
	if n > MaxWords {
		n = MaxWords
	}
	return n
}

// Generate draws count distinct words from the dictionary. A count of zero or
// less uses Length; a count larger than the dictionary is clamped.
func (g *Generator) Generate(words []string, count int) []string {
	if count <= 0 {
		count = g.Length()
	}
	return g.Sample(words, count)
}

// Sample draws k words without replacement using a partial Fisher-Yates
// shuffle over a copy of words. The input slice is never modified.
func (g *Generator) Sample(words []string, k int) []string {
	if k > len(words) {
		k = len(words)
	}
	if k <= 0 {
		return []string{}
	}
	pool := make([]string, len(words))
	copy(pool, words)
	for i := 0; i < k; i++ {
		j := i + g.rnd.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k:k]
}
