// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package similarity

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/cinematch/internal/recommend/tfidf"
)

// Kernel selects the pairwise similarity function.
type Kernel string

const (
	// KernelCosine divides the dot product by both norms; zero vectors
	// have similarity 0 with everything.
	KernelCosine Kernel = "cosine"

	// KernelLinear is the raw dot product. On L2-normalized rows it equals
	// cosine except that it needs no division.
	KernelLinear Kernel = "linear"
)

// ParseKernel validates a kernel name.
func ParseKernel(s string) (Kernel, error) {
	switch k := Kernel(s); k {
	case KernelCosine, KernelLinear:
		return k, nil
	case "":
		return KernelCosine, nil
	default:
		return "", fmt.Errorf("unknown similarity kernel %q", s)
	}
}

type posting struct {
	doc    int
	weight float64
}

// Pairwise computes the n×n similarity matrix of vectors. workers <= 0
// uses runtime.NumCPU().
func Pairwise(ctx context.Context, vectors []tfidf.Vector, kernel Kernel, workers int) (*Matrix, error) {
	n := len(vectors)
	m := NewMatrix(n)
	if n == 0 {
		return m, nil
	}

	// postings are appended in document order, so each list is sorted by doc.
	postings := make(map[int][]posting)
	for doc, v := range vectors {
		for k, term := range v.Indices {
			postings[term] = append(postings[term], posting{doc: doc, weight: v.Values[k]})
		}
	}

	norms := make([]float64, n)
	if kernel == KernelCosine {
		for i, v := range vectors {
			norms[i] = v.Norm()
		}
	}

	err := forEachRow(ctx, n, workers, func() func(i int) {
		acc := make([]float64, n)
		touched := make([]int, 0, 64)
		return func(i int) {
			v := vectors[i]
			for k, term := range v.Indices {
				list := postings[term]
				start := sort.Search(len(list), func(p int) bool { return list[p].doc > i })
				w := v.Values[k]
				for _, p := range list[start:] {
					if acc[p.doc] == 0 {
						touched = append(touched, p.doc)
					}
					acc[p.doc] += w * p.weight
				}
			}

			row := m.Row(i)
			row[i] = selfSimilarity(v, kernel, norms[i])
			for _, j := range touched {
				s := acc[j]
				if kernel == KernelCosine {
					s = cosine(s, norms[i], norms[j])
				}
				row[j] = s
				acc[j] = 0
			}
			touched = touched[:0]
		}
	})
	if err != nil {
		return nil, err
	}

	m.mirror()
	return m, nil
}

func selfSimilarity(v tfidf.Vector, kernel Kernel, norm float64) float64 {
	dot := tfidf.Dot(v, v)
	if kernel == KernelCosine {
		return cosine(dot, norm, norm)
	}
	return dot
}

func cosine(dot, na, nb float64) float64 {
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (na * nb)
}

// forEachRow runs fn for every row index in [0, n) on up to workers
// goroutines. newWorker is called once per goroutine to build per-worker
// scratch state. Rows are interleaved across workers because the upper
// triangle makes early rows more expensive.
func forEachRow(ctx context.Context, n, workers int, newWorker func() func(i int)) error {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			fn := newWorker()
			for k, i := 0, w; i < n; k, i = k+1, i+workers {
				if k%64 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				fn(i)
			}
			return nil
		})
	}
	return g.Wait()
}
