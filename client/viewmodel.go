// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"sort"
	"strings"

	"github.com/danielhkuo/fit-journal/models"
)

// ProfileView is the profile card as displayed: static profile fields
// overlaid with the most recent recorded progress.
type ProfileView struct {
	Height string
	Weight string
	Fat    string
	Muscle string
}

// BuildProfileView merges the profile with the latest recorded actual
// values from the progress table. Each metric backfills independently
// from the newest week where that metric was recorded; a value of "" or
// "0" means not recorded. Fat is rendered with a percent sign.
func BuildProfileView(doc *models.FitnessDocument) ProfileView {
	view := ProfileView{
		Height: doc.Profile.Height,
		Weight: doc.Profile.Weight,
		Fat:    doc.Profile.Fat,
		Muscle: doc.Profile.Muscle,
	}

	var haveWeight, haveFat, haveMuscle bool
	for i := len(doc.Progress) - 1; i >= 0; i-- {
		actual := doc.Progress[i].Actual
		if !haveWeight && recorded(actual.Weight) {
			view.Weight = actual.Weight
			haveWeight = true
		}
		if !haveFat && recorded(actual.Fat) {
			view.Fat = actual.Fat
			haveFat = true
		}
		if !haveMuscle && recorded(actual.Muscle) {
			view.Muscle = actual.Muscle
			haveMuscle = true
		}
		if haveWeight && haveFat && haveMuscle {
			break
		}
	}

	if view.Fat != "" && !strings.HasSuffix(view.Fat, "%") {
		view.Fat += "%"
	}
	return view
}

func recorded(value string) bool {
	return value != "" && value != "0"
}

// DietDays returns the diet day keys in display order: the seven
// weekdays first, then any stray keys sorted alphabetically.
func DietDays(doc *models.FitnessDocument) []string {
	keys := make([]string, 0, len(doc.Diet))
	for key := range doc.Diet {
		keys = append(keys, key)
	}
	return orderedDays(keys)
}

// ExerciseDays returns the exercise day keys in display order.
func ExerciseDays(doc *models.FitnessDocument) []string {
	keys := make([]string, 0, len(doc.Exercises))
	for key := range doc.Exercises {
		keys = append(keys, key)
	}
	return orderedDays(keys)
}

func orderedDays(keys []string) []string {
	present := make(map[string]bool, len(keys))
	for _, key := range keys {
		present[key] = true
	}

	days := make([]string, 0, len(keys))
	for _, day := range models.Weekdays {
		if present[day] {
			days = append(days, day)
			delete(present, day)
		}
	}

	var stray []string
	for key := range present {
		stray = append(stray, key)
	}
	sort.Strings(stray)
	return append(days, stray...)
}

// BuildDietDay returns the meals for one day, or nil if the day does
// not exist.
func BuildDietDay(doc *models.FitnessDocument, day string) []models.MealItem {
	return doc.Diet[day]
}

// BuildExerciseDay returns the exercises for one day, or nil if the day
// does not exist.
func BuildExerciseDay(doc *models.FitnessDocument, day string) []models.ExerciseItem {
	return doc.Exercises[day]
}

// ProgressCell pairs an actual value with its target for one metric.
type ProgressCell struct {
	Metric string
	Actual string
	Target string
}

// ProgressRow is one rendered week of a progress or measurement table.
type ProgressRow struct {
	Week  int
	Cells []ProgressCell
}

// BuildProgressTable renders the body progress weeks row by row, in
// stored order, with the metrics in a fixed column order.
func BuildProgressTable(doc *models.FitnessDocument) []ProgressRow {
	rows := make([]ProgressRow, 0, len(doc.Progress))
	for _, week := range doc.Progress {
		rows = append(rows, ProgressRow{
			Week: week.Week,
			Cells: []ProgressCell{
				{Metric: "weight", Actual: week.Actual.Weight, Target: week.Targets.Weight},
				{Metric: "fat", Actual: week.Actual.Fat, Target: week.Targets.Fat},
				{Metric: "muscle", Actual: week.Actual.Muscle, Target: week.Targets.Muscle},
			},
		})
	}
	return rows
}

// BuildMeasurementTable renders the muscle measurement weeks.
func BuildMeasurementTable(doc *models.FitnessDocument) []ProgressRow {
	rows := make([]ProgressRow, 0, len(doc.MuscleMeasurements))
	for _, week := range doc.MuscleMeasurements {
		rows = append(rows, ProgressRow{
			Week: week.Week,
			Cells: []ProgressCell{
				{Metric: "biceps", Actual: week.Actual.Biceps, Target: week.Targets.Biceps},
				{Metric: "shoulder", Actual: week.Actual.Shoulder, Target: week.Targets.Shoulder},
				{Metric: "chest", Actual: week.Actual.Chest, Target: week.Targets.Chest},
				{Metric: "abdomen", Actual: week.Actual.Abdomen, Target: week.Targets.Abdomen},
			},
		})
	}
	return rows
}

// BuildHabitsView returns the habit cards in stored order.
func BuildHabitsView(doc *models.FitnessDocument) []models.HabitCard {
	return doc.Habits
}
