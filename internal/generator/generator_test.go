package generator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRand returns scripted Float64 values and always picks the first
// remaining candidate.
type fixedRand struct {
	floats []float64
	calls  int
}

func (f *fixedRand) Intn(int) int { return 0 }

func (f *fixedRand) Float64() float64 {
	v := f.floats[f.calls%len(f.floats)]
	f.calls++
	return v
}

func testDictionary(n int) []string {
	words := make([]string, n)
	for i := range words {
		words[i] = string(rune('a'+i%26)) + string(rune('a'+i/26))
	}
	return words
}

func TestLengthBounds(t *testing.T) {
	g := NewWithRand(&fixedRand{floats: []float64{0, 0.5, 0.999999}})
	assert.Equal(t, 11, g.Length())
	assert.Equal(t, 16, g.Length())
	assert.Equal(t, 21, g.Length())
}

func TestLengthRangeRandom(t *testing.T) {
	g := NewWithSeed(42)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		n := g.Length()
		require.GreaterOrEqual(t, n, MinWords)
		require.LessOrEqual(t, n, MaxWords)
		seen[n] = true
	}
	assert.Len(t, seen, MaxWords-MinWords+1, "every length should be reachable")
}

func TestSampleDistinctAndFromDictionary(t *testing.T) {
	dict := testDictionary(100)
	inDict := map[string]bool{}
	for _, w := range dict {
		inDict[w] = true
	}
	g := NewWithRand(rand.New(rand.NewSource(7)))
	for i := 0; i < 50; i++ {
		words := g.Generate(dict, 0)
		require.GreaterOrEqual(t, len(words), MinWords)
		require.LessOrEqual(t, len(words), MaxWords)
		seen := map[string]bool{}
		for _, w := range words {
			assert.True(t, inDict[w], "word %q not in dictionary", w)
			assert.False(t, seen[w], "duplicate word %q", w)
			seen[w] = true
		}
	}
}

func TestSampleDoesNotMutateDictionary(t *testing.T) {
	dict := testDictionary(30)
	before := append([]string(nil), dict...)
	NewWithSeed(1).Sample(dict, 20)
	assert.Equal(t, before, dict)
}

func TestSampleClampsToDictionary(t *testing.T) {
	dict := []string{"one", "two", "three"}
	words := NewWithSeed(3).Generate(dict, 10)
	assert.ElementsMatch(t, dict, words)
}

func TestSampleExplicitCount(t *testing.T) {
	words := NewWithRand(&fixedRand{floats: []float64{0}}).Generate(testDictionary(40), 5)
	assert.Len(t, words, 5)
}

func TestSampleReproducibleWithSeed(t *testing.T) {
	dict := testDictionary(60)
	a := NewWithSeed(99).Generate(dict, 0)
	b := NewWithSeed(99).Generate(dict, 0)
	assert.Equal(t, a, b)
}
