// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
	"time"
)

// Difficulty is the climbing classification of a col.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "facile"
	DifficultyMedium Difficulty = "moyen"
	DifficultyHard   Difficulty = "difficile"
	DifficultyHC     Difficulty = "hc"
)

// Valid reports whether d is one of the known classifications.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyHC:
		return true
	}
	return false
}

// Label returns the upper-case label shown next to a col.
func (d Difficulty) Label() string {
	return strings.ToUpper(string(d))
}

// Col is a mountain pass. Cols are reference data loaded by operators;
// cyclists never create or edit them.
type Col struct {
	ID              string      `json:"id" yaml:"id"`
	Name            string      `json:"nom" yaml:"nom" validate:"required"`
	Altitude        int         `json:"altitude" yaml:"altitude" validate:"gt=0"`
	Latitude        float64     `json:"latitude" yaml:"latitude" validate:"latitude"`
	Longitude       float64     `json:"longitude" yaml:"longitude" validate:"longitude"`
	ElevationGain   int         `json:"denivele" yaml:"denivele" validate:"gte=0"`
	DistanceKm      float64     `json:"distance_km" yaml:"distance_km" validate:"gte=0"`
	AvgGrade        *float64    `json:"pente_moyenne,omitempty" yaml:"pente_moyenne,omitempty"`
	MaxGrade        *float64    `json:"pente_max,omitempty" yaml:"pente_max,omitempty"`
	Country         string      `json:"pays" yaml:"pays" validate:"required"`
	Region          *string     `json:"region,omitempty" yaml:"region,omitempty"`
	Description     *string     `json:"description,omitempty" yaml:"description,omitempty"`
	Difficulty      *Difficulty `json:"difficulte,omitempty" yaml:"difficulte,omitempty"`
	StravaSegmentID *int64      `json:"strava_segment_id,omitempty" yaml:"strava_segment_id,omitempty"`
	CreatedAt       time.Time   `json:"created_at" yaml:"-"`
}

// TableName returns the name of the database table backing Col.
func (c Col) TableName() string {
	return "cols"
}

// Coordinates formats latitude and longitude as "lat, lng".
func (c Col) Coordinates() string {
	return fmt.Sprintf("%.5f, %.5f", c.Latitude, c.Longitude)
}

// ColWithStatus is a col annotated for the current viewer.
// Values are produced by enrichment and never mutated afterwards.
type ColWithStatus struct {
	Col
	Climbed bool `json:"climbed"`
	Pinned  bool `json:"pinned"`
}

// ColCatalog is the YAML document accepted by the import command.
type ColCatalog struct {
	Cols []Col `yaml:"cols" validate:"dive"`
}
