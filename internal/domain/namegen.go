package domain

import (
	"math/rand/v2"
	"strings"
)

const (
	nameAlphabet     = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	defaultSuffixLen = 8
	maxNameAttempts  = 64
)

// NameGenerator produces fresh identifiers made of a prefix followed by a
// random alphanumeric suffix.
type NameGenerator interface {
	// Generate returns prefix plus a random suffix. With uniqueness enabled the
	// result never equals a reserved name or an earlier result.
	Generate(prefix string) string
	// Reserve marks names as taken, typically every token of the input.
	Reserve(names ...string)
}

// NameGeneratorOption configures a NameGenerator.
type NameGeneratorOption func(*nameGenerator)

// WithSeed makes the generator deterministic.
func WithSeed(seed uint64) NameGeneratorOption {
	return func(g *nameGenerator) {
		g.rnd = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithSuffixLength sets the number of random characters after the prefix.
func WithSuffixLength(n int) NameGeneratorOption {
	return func(g *nameGenerator) {
		if n > 0 {
			g.length = n
		}
	}
}

// WithUniqueness toggles resampling on collision with reserved or earlier
// names. Disabling it reproduces the historical unchecked behaviour.
func WithUniqueness(unique bool) NameGeneratorOption {
	return func(g *nameGenerator) {
		g.unique = unique
	}
}

type nameGenerator struct {
	rnd    *rand.Rand
	length int
	unique bool
	used   map[string]struct{}
}

// NewNameGenerator creates a NameGenerator. Uniqueness is on by default.
func NewNameGenerator(opts ...NameGeneratorOption) NameGenerator {
	g := &nameGenerator{
		rnd:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		length: defaultSuffixLen,
		unique: true,
		used:   make(map[string]struct{}),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

func (g *nameGenerator) Generate(prefix string) string {
	length := g.length

	for attempt := 1; ; attempt++ {
		name := prefix + g.suffix(length)

		if _, taken := g.used[name]; !taken || !g.unique {
			g.used[name] = struct{}{}
			return name
		}

		// the suffix space is exhausted for this length, widen it
		if attempt%maxNameAttempts == 0 {
			length++
		}
	}
}

func (g *nameGenerator) suffix(length int) string {
	var b strings.Builder

	b.Grow(length)

	for range length {
		b.WriteByte(nameAlphabet[g.rnd.IntN(len(nameAlphabet))])
	}

	return b.String()
}

func (g *nameGenerator) Reserve(names ...string) {
	for _, name := range names {
		g.used[name] = struct{}{}
	}
}
