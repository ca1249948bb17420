package index

import (
	"fmt"
	"math"
	"sort"
)

// Index is an immutable nearest-neighbor snapshot over corpus embeddings.
// Vectors are L2-normalized at build time so inner product equals cosine
// similarity. An Index is safe for unlimited concurrent reads; it is never
// mutated after Build returns.
type Index struct {
	vectors [][]float32
	dim     int
}

// Hit is a single search result. ID is the corpus position the vector was
// built from; Similarity is cosine similarity rescaled into [0,1].
type Hit struct {
	ID         int
	Similarity float64
}

// Build constructs an index from raw embedding vectors. The input is copied
// and normalized; the caller's slices are not retained.
func Build(vectors [][]float32) (*Index, error) {
	ix := &Index{}

	for i, v := range vectors {
		if len(v) == 0 {
			return nil, fmt.Errorf("vector %d is empty", i)
		}
		if ix.dim == 0 {
			ix.dim = len(v)
		} else if len(v) != ix.dim {
			return nil, fmt.Errorf("vector %d has dimension %d, want %d", i, len(v), ix.dim)
		}

		c := make([]float32, len(v))
		copy(c, v)
		normalizeVec(c)
		ix.vectors = append(ix.vectors, c)
	}

	return ix, nil
}

// Len returns the number of indexed vectors
func (ix *Index) Len() int {
	return len(ix.vectors)
}

// Dim returns the vector dimension, or 0 for an empty index
func (ix *Index) Dim() int {
	return ix.dim
}

// Search returns the k nearest vectors to query by cosine similarity, best
// first. Results are fewer than k when the index is smaller.
func (ix *Index) Search(query []float32, k int) ([]Hit, error) {
	if len(ix.vectors) == 0 {
		return nil, nil
	}
	if len(query) != ix.dim {
		return nil, fmt.Errorf("query has dimension %d, want %d", len(query), ix.dim)
	}
	if k <= 0 {
		return nil, nil
	}

	q := make([]float32, len(query))
	copy(q, query)
	normalizeVec(q)

	hits := make([]Hit, 0, len(ix.vectors))
	for id, v := range ix.vectors {
		cos := dot(q, v)
		// Rescale [-1,1] cosine into the [0,1] similarity contract
		hits = append(hits, Hit{ID: id, Similarity: (float64(cos) + 1) / 2})
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Similarity != hits[j].Similarity {
			return hits[i].Similarity > hits[j].Similarity
		}
		return hits[i].ID < hits[j].ID
	})

	if len(hits) > k {
		hits = hits[:k]
	}
	return hits, nil
}

func dot(a, b []float32) float32 {
	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func normalizeVec(v []float32) {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	if sum == 0 {
		return
	}
	norm := float32(math.Sqrt(sum))
	for i := range v {
		v[i] /= norm
	}
}
