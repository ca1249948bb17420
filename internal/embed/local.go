package embed

import (
	"context"
	"hash/fnv"
	"math"
	"strings"
	"unicode"
)

// LocalProvider is a deterministic feature-hashing embedder. It hashes word
// unigrams and bigrams into a fixed-width vector and L2-normalizes the
// result. It captures lexical overlap rather than deep semantics, which is
// enough for nearest-statement retrieval over a small curated corpus and
// keeps the pipeline fully usable offline.
type LocalProvider struct {
	dim int
}

// NewLocalProvider creates a local embedder with the given vector width
func NewLocalProvider(dim int) *LocalProvider {
	if dim <= 0 {
		dim = 256
	}
	return &LocalProvider{dim: dim}
}

// Name returns the provider name
func (p *LocalProvider) Name() string {
	return "local"
}

// Embed returns a normalized feature-hash vector for text
func (p *LocalProvider) Embed(_ context.Context, text string) ([]float32, error) {
	vec := make([]float32, p.dim)

	tokens := tokenize(text)
	for i, tok := range tokens {
		vec[bucket(tok, p.dim)]++
		if i+1 < len(tokens) {
			vec[bucket(tok+" "+tokens[i+1], p.dim)]++
		}
	}

	normalize(vec)
	return vec, nil
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

func bucket(token string, dim int) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(token))
	return int(h.Sum32() % uint32(dim))
}

func normalize(vec []float32) {
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	if sum == 0 {
		return
	}
	norm := float32(math.Sqrt(sum))
	for i := range vec {
		vec[i] /= norm
	}
}
