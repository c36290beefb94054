// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package similarity

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/tomtom215/cinematch/internal/recommend/tfidf"
)

const eps = 1e-12

func vectorize(t *testing.T, corpus []string) []tfidf.Vector {
	t.Helper()
	vecs, err := tfidf.New(tfidf.Options{}).FitTransform(context.Background(), corpus)
	if err != nil {
		t.Fatal(err)
	}
	return vecs
}

// bruteForce computes cosine similarity pair by pair.
func bruteForce(vecs []tfidf.Vector) [][]float64 {
	out := make([][]float64, len(vecs))
	for i := range vecs {
		out[i] = make([]float64, len(vecs))
		for j := range vecs {
			ni, nj := vecs[i].Norm(), vecs[j].Norm()
			if ni == 0 || nj == 0 {
				continue
			}
			out[i][j] = tfidf.Dot(vecs[i], vecs[j]) / (ni * nj)
		}
	}
	return out
}

func randomCorpus(n int, seed int64) []string {
	words := []string{"space", "robot", "love", "paris", "war", "ship", "dream", "heist", "family", "ghost", "river", "king"}
	r := rand.New(rand.NewSource(seed))
	corpus := make([]string, n)
	for i := range corpus {
		k := r.Intn(6)
		doc := ""
		for w := 0; w < k; w++ {
			doc += words[r.Intn(len(words))] + " "
		}
		corpus[i] = doc
	}
	return corpus
}

func TestPairwise_MatchesBruteForce(t *testing.T) {
	t.Parallel()

	vecs := vectorize(t, randomCorpus(60, 7))
	want := bruteForce(vecs)

	for _, workers := range []int{1, 3, 16} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			t.Parallel()
			m, err := Pairwise(context.Background(), vecs, KernelCosine, workers)
			if err != nil {
				t.Fatal(err)
			}
			for i := range want {
				for j := range want[i] {
					if math.Abs(m.At(i, j)-want[i][j]) > 1e-9 {
						t.Fatalf("M[%d][%d] = %v, want %v", i, j, m.At(i, j), want[i][j])
					}
				}
			}
		})
	}
}

func TestPairwise_SymmetricAndBounded(t *testing.T) {
	t.Parallel()

	vecs := vectorize(t, randomCorpus(80, 11))
	for _, kernel := range []Kernel{KernelCosine, KernelLinear} {
		m, err := Pairwise(context.Background(), vecs, kernel, 4)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < m.Size(); i++ {
			for j := 0; j < m.Size(); j++ {
				if m.At(i, j) != m.At(j, i) {
					t.Fatalf("%s: M[%d][%d]=%v != M[%d][%d]=%v", kernel, i, j, m.At(i, j), j, i, m.At(j, i))
				}
				if m.At(i, j) < 0 || m.At(i, j) > 1+eps {
					t.Fatalf("%s: M[%d][%d]=%v outside [0,1]", kernel, i, j, m.At(i, j))
				}
			}
		}
	}
}

func TestPairwise_ZeroVectors(t *testing.T) {
	t.Parallel()

	vecs := vectorize(t, []string{"space robots", "", "space"})
	m, err := Pairwise(context.Background(), vecs, KernelCosine, 2)
	if err != nil {
		t.Fatal(err)
	}
	for j := 0; j < 3; j++ {
		if m.At(1, j) != 0 {
			t.Errorf("zero row should have zero similarity, M[1][%d] = %v", j, m.At(1, j))
		}
	}
	if math.Abs(m.At(0, 0)-1) > eps {
		t.Errorf("self similarity = %v, want 1", m.At(0, 0))
	}
}

func TestPairwise_Empty(t *testing.T) {
	t.Parallel()

	m, err := Pairwise(context.Background(), nil, KernelCosine, 0)
	if err != nil {
		t.Fatal(err)
	}
	if m.Size() != 0 {
		t.Errorf("Size() = %d, want 0", m.Size())
	}
}

func TestPairwise_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Pairwise(ctx, vectorize(t, randomCorpus(10, 1)), KernelCosine, 2)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestParseKernel(t *testing.T) {
	t.Parallel()

	if k, err := ParseKernel("linear"); err != nil || k != KernelLinear {
		t.Errorf("ParseKernel(linear) = %v, %v", k, err)
	}
	if k, err := ParseKernel(""); err != nil || k != KernelCosine {
		t.Errorf("ParseKernel(\"\") = %v, %v", k, err)
	}
	if _, err := ParseKernel("rbf"); err == nil {
		t.Error("ParseKernel(rbf) should fail")
	}
}

func TestMinMaxScale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []float64
		want []float64
	}{
		{"empty", nil, []float64{}},
		{"range", []float64{5, 7, 9}, []float64{0, 0.5, 1}},
		{"degenerate", []float64{6.1, 6.1, 6.1}, []float64{0, 0, 0}},
		{"single", []float64{3}, []float64{0}},
	}
	for _, tt := range tests {
		got := MinMaxScale(tt.in)
		if len(got) != len(tt.want) {
			t.Fatalf("%s: len = %d, want %d", tt.name, len(got), len(tt.want))
		}
		for i := range got {
			if math.Abs(got[i]-tt.want[i]) > eps {
				t.Errorf("%s: scaled[%d] = %v, want %v", tt.name, i, got[i], tt.want[i])
			}
			if got[i] < 0 || got[i] > 1 {
				t.Errorf("%s: scaled[%d] = %v outside [0,1]", tt.name, i, got[i])
			}
		}
	}
}

func TestBlend(t *testing.T) {
	t.Parallel()

	m := NewMatrix(2)
	m.Set(0, 0, 1)
	m.Set(1, 1, 1)
	m.Set(0, 1, 0.4)
	m.Set(1, 0, 0.4)
	scaled := []float64{0, 0.5}

	if err := Blend(context.Background(), m, scaled, DefaultBlendWeight, 2); err != nil {
		t.Fatal(err)
	}
	want := 0.5*0.4 + 0.5*(1-0.5)
	if math.Abs(m.At(0, 1)-want) > eps || m.At(0, 1) != m.At(1, 0) {
		t.Errorf("blended M[0][1] = %v, M[1][0] = %v, want %v", m.At(0, 1), m.At(1, 0), want)
	}
	if math.Abs(m.At(0, 0)-1) > eps {
		t.Errorf("blended diagonal = %v, want 1", m.At(0, 0))
	}

	if err := Blend(context.Background(), m, []float64{1}, 0.5, 1); err == nil {
		t.Error("expected error for length mismatch")
	}
	if err := Blend(context.Background(), m, scaled, 1.5, 1); err == nil {
		t.Error("expected error for weight outside [0,1]")
	}
}
