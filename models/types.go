// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "encoding/json"

// Weekdays is the application-defined set of day keys for Diet and
// Exercises. A missing day key means "no items for that day", not an error.
var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Request types

type LoginRequest struct {
	Password string `json:"password"`
}

// Response types

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}

type SaveResponse struct {
	Message string `json:"message"`
}

// Domain types

// Profile holds the current body stats shown on the profile card.
// Values are free-form strings, exactly as the user typed them.
type Profile struct {
	Height string `json:"height"`
	Weight string `json:"weight"`
	Fat    string `json:"fat"`
	Muscle string `json:"muscle"`
}

type BodyStats struct {
	Weight string `json:"weight"`
	Fat    string `json:"fat"`
	Muscle string `json:"muscle"`
}

type MeasureStats struct {
	Biceps   string `json:"biceps"`
	Shoulder string `json:"shoulder"`
	Chest    string `json:"chest"`
	Abdomen  string `json:"abdomen"`
}

// ProgressWeek is one row of the general progress table. Weeks are
// conventionally numbered 1..16 but nothing depends on that.
type ProgressWeek struct {
	Week    int       `json:"week"`
	Actual  BodyStats `json:"actual"`
	Targets BodyStats `json:"targets"`
}

type MeasurementWeek struct {
	Week    int          `json:"week"`
	Actual  MeasureStats `json:"actual"`
	Targets MeasureStats `json:"targets"`
}

type MealItem struct {
	Meal        string `json:"meal"`
	Ingredients string `json:"ingredients"`
	Recipe      string `json:"recipe"`
	Notes       string `json:"notes"`
}

// ExerciseItem describes one exercise slot in a day plan. The canonical
// field name for set counts is "sets".
type ExerciseItem struct {
	Name        string `json:"name"`
	Sets        string `json:"sets"`
	Reps        string `json:"reps"`
	Weight      string `json:"weight"`
	Description string `json:"description"`
	Errors      string `json:"errors"`
	Notes       string `json:"notes"`
}

type HabitCard struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// FitnessDocument is the entire persisted state. It is the sole unit of
// persistence and the sole unit of transfer: every read returns it whole
// and every save replaces it whole.
type FitnessDocument struct {
	Profile            Profile                   `json:"profile"`
	Progress           []ProgressWeek            `json:"progress"`
	MuscleMeasurements []MeasurementWeek         `json:"muscleMeasurements"`
	Diet               map[string][]MealItem     `json:"diet"`
	Exercises          map[string][]ExerciseItem `json:"exercises"`
	Habits             []HabitCard               `json:"habits"`
}

// Clone returns a deep copy of the document via a JSON round trip.
// The document is plain data, so this is always lossless.
func (d *FitnessDocument) Clone() *FitnessDocument {
	data, err := json.Marshal(d)
	if err != nil {
		// Marshaling plain structs and maps of strings cannot fail.
		panic(err)
	}
	var out FitnessDocument
	if err := json.Unmarshal(data, &out); err != nil {
		panic(err)
	}
	return &out
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
