// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package tfidf

import (
	"context"
	"math"
	"sort"
)

// Options configures a Vectorizer.
type Options struct {
	// MaxFeatures keeps only the most frequent terms across the corpus,
	// ties broken alphabetically. 0 keeps every term.
	MaxFeatures int

	// StopWords drops the built-in English stop-word list.
	StopWords bool
}

// Vectorizer learns a vocabulary and IDF weights from a corpus.
// A fitted Vectorizer is read-only.
type Vectorizer struct {
	opts       Options
	vocabulary []string
	index      map[string]int
	idf        []float64
}

// New creates an unfitted vectorizer.
func New(opts Options) *Vectorizer {
	return &Vectorizer{opts: opts}
}

// checkEvery is how many documents are processed between context checks.
const checkEvery = 1024

// FitTransform learns the vocabulary and IDF from corpus and returns one
// L2-normalized vector per document, in corpus order.
func (v *Vectorizer) FitTransform(ctx context.Context, corpus []string) ([]Vector, error) {
	counts := make([]map[string]int, len(corpus))
	df := make(map[string]int)
	total := make(map[string]int)

	for i, doc := range corpus {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		c := make(map[string]int)
		for _, tok := range Tokenize(doc, v.opts.StopWords) {
			c[tok]++
		}
		for term, n := range c {
			df[term]++
			total[term] += n
		}
		counts[i] = c
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	terms = limitFeatures(terms, total, v.opts.MaxFeatures)

	n := float64(len(corpus))
	v.vocabulary = terms
	v.index = make(map[string]int, len(terms))
	v.idf = make([]float64, len(terms))
	for i, term := range terms {
		v.index[term] = i
		v.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	vectors := make([]Vector, len(corpus))
	for i, c := range counts {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		vectors[i] = v.weigh(c)
	}
	return vectors, nil
}

func (v *Vectorizer) weigh(counts map[string]int) Vector {
	indices := make([]int, 0, len(counts))
	for term := range counts {
		if idx, ok := v.index[term]; ok {
			indices = append(indices, idx)
		}
	}
	if len(indices) == 0 {
		return Vector{}
	}
	sort.Ints(indices)

	values := make([]float64, len(indices))
	var sumSq float64
	for k, idx := range indices {
		w := float64(counts[v.vocabulary[idx]]) * v.idf[idx]
		values[k] = w
		sumSq += w * w
	}
	norm := math.Sqrt(sumSq)
	for k := range values {
		values[k] /= norm
	}
	return Vector{Indices: indices, Values: values}
}

// limitFeatures keeps the max most frequent terms; sorted is alphabetical
// and stays alphabetical on return.
func limitFeatures(sorted []string, total map[string]int, max int) []string {
	if max <= 0 || len(sorted) <= max {
		return sorted
	}
	ranked := make([]string, len(sorted))
	copy(ranked, sorted)
	sort.SliceStable(ranked, func(i, j int) bool {
		return total[ranked[i]] > total[ranked[j]]
	})
	kept := ranked[:max]
	sort.Strings(kept)
	return kept
}

// Vocabulary returns the fitted terms in index order.
func (v *Vectorizer) Vocabulary() []string {
	out := make([]string, len(v.vocabulary))
	copy(out, v.vocabulary)
	return out
}

// weight returns the learned IDF of term.
func (v *Vectorizer) weight(term string) (float64, bool) {
	idx, ok := v.index[term]
	if !ok {
		return 0, false
	}
	return v.idf[idx], true
}
