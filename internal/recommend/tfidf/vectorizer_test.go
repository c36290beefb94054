// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package tfidf

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"
)

const eps = 1e-12

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		stop bool
		want []string
	}{
		{"lowercases", "Space Adventure", false, []string{"space", "adventure"}},
		{"drops single chars", "a b cd e", false, []string{"cd"}},
		{"splits punctuation", "sci-fi, drama!", false, []string{"sci", "fi", "drama"}},
		{"keeps unicode letters", "Amélie café", false, []string{"amélie", "café"}},
		{"underscores and digits", "wall_e 2001", false, []string{"wall_e", "2001"}},
		{"stop words", "the robot and the boy", true, []string{"robot", "boy"}},
		{"empty", "", false, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Tokenize(tt.text, tt.stop)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestFitTransform_Weights(t *testing.T) {
	t.Parallel()

	corpus := []string{"the cat sat", "the dog sat", ""}
	v := New(Options{})
	vecs, err := v.FitTransform(context.Background(), corpus)
	if err != nil {
		t.Fatal(err)
	}

	if got, want := v.Vocabulary(), []string{"cat", "dog", "sat", "the"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Vocabulary() = %v, want %v", got, want)
	}

	idfCommon := math.Log(4.0/3.0) + 1
	idfRare := math.Log(2.0) + 1
	if got, _ := v.weight("the"); math.Abs(got-idfCommon) > eps {
		t.Errorf("weight(the) = %v, want %v", got, idfCommon)
	}
	if got, _ := v.weight("cat"); math.Abs(got-idfRare) > eps {
		t.Errorf("weight(cat) = %v, want %v", got, idfRare)
	}

	norm := math.Sqrt(idfRare*idfRare + 2*idfCommon*idfCommon)
	want := Vector{Indices: []int{0, 2, 3}, Values: []float64{idfRare / norm, idfCommon / norm, idfCommon / norm}}
	if !reflect.DeepEqual(vecs[0].Indices, want.Indices) {
		t.Fatalf("row 0 indices = %v, want %v", vecs[0].Indices, want.Indices)
	}
	for k := range want.Values {
		if math.Abs(vecs[0].Values[k]-want.Values[k]) > eps {
			t.Errorf("row 0 value %d = %v, want %v", k, vecs[0].Values[k], want.Values[k])
		}
	}

	if !vecs[2].IsZero() {
		t.Errorf("empty document should be the zero vector, got %+v", vecs[2])
	}
	for i := 0; i < 2; i++ {
		if math.Abs(vecs[i].Norm()-1) > eps {
			t.Errorf("row %d norm = %v, want 1", i, vecs[i].Norm())
		}
	}
}

func TestFitTransform_Deterministic(t *testing.T) {
	t.Parallel()

	corpus := []string{"space adventure robots", "romance paris", "space station drama", "robots romance"}
	a, err := New(Options{}).FitTransform(context.Background(), corpus)
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(Options{}).FitTransform(context.Background(), corpus)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("FitTransform must be deterministic for the same corpus")
	}
}

func TestFitTransform_MaxFeatures(t *testing.T) {
	t.Parallel()

	corpus := []string{"space space space robots", "space robots drama", "paris"}
	v := New(Options{MaxFeatures: 2})
	vecs, err := v.FitTransform(context.Background(), corpus)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := v.Vocabulary(), []string{"robots", "space"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Vocabulary() = %v, want %v", got, want)
	}
	if !vecs[2].IsZero() {
		t.Error("document with only pruned terms should be zero")
	}
}

func TestFitTransform_StopWords(t *testing.T) {
	t.Parallel()

	v := New(Options{StopWords: true})
	if _, err := v.FitTransform(context.Background(), []string{"the boy and the robot"}); err != nil {
		t.Fatal(err)
	}
	if _, ok := v.weight("the"); ok {
		t.Error("stop word should not be in vocabulary")
	}
	if !isStopWord("and") || isStopWord("robot") {
		t.Error("isStopWord gave wrong answers")
	}
}

func TestFitTransform_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New(Options{}).FitTransform(ctx, []string{"a b"}); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestDot(t *testing.T) {
	t.Parallel()

	a := Vector{Indices: []int{0, 2, 5}, Values: []float64{1, 2, 3}}
	b := Vector{Indices: []int{2, 3, 5}, Values: []float64{4, 7, 1}}
	if got := Dot(a, b); got != 11 {
		t.Errorf("Dot = %v, want 11", got)
	}
	if got := Dot(a, Vector{}); got != 0 {
		t.Errorf("Dot with zero = %v, want 0", got)
	}
}
