// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package models

// TitleRequest is a path-supplied film title.
type TitleRequest struct {
	Title string `json:"title" validate:"required,nonblank,nocontrol,max=300"`
}

// NameRequest is a path-supplied person name.
type NameRequest struct {
	Name string `json:"name" validate:"required,nonblank,nocontrol,max=200"`
}

// PeriodRequest is a path-supplied month or weekday, by name or number.
type PeriodRequest struct {
	Value string `json:"value" validate:"required,nonblank,nocontrol,max=32"`
}
