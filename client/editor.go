// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"fmt"

	"github.com/danielhkuo/fit-journal/models"
)

// Document groups addressable by a FieldRef. The names match the JSON
// keys of the document so a ref can be derived from the wire format.
const (
	GroupProfile      = "profile"
	GroupDiet         = "diet"
	GroupExercises    = "exercises"
	GroupProgress     = "progress"
	GroupMeasurements = "muscleMeasurements"
)

// Subgroups inside a progress or measurement week.
const (
	SubgroupActual  = "actual"
	SubgroupTargets = "targets"
)

// FieldRef addresses one editable string field inside the document.
// Which parts are meaningful depends on Group:
//
//	profile                      Key
//	diet, exercises              Day, Index, Key
//	progress, muscleMeasurements Index, Subgroup, Key
type FieldRef struct {
	Group    string
	Day      string
	Index    int
	Subgroup string
	Key      string
}

func (f FieldRef) String() string {
	switch f.Group {
	case GroupProfile:
		return fmt.Sprintf("profile.%s", f.Key)
	case GroupDiet, GroupExercises:
		return fmt.Sprintf("%s.%s[%d].%s", f.Group, f.Day, f.Index, f.Key)
	default:
		return fmt.Sprintf("%s[%d].%s.%s", f.Group, f.Index, f.Subgroup, f.Key)
	}
}

// Editor applies field-level mutations to an in-memory document.
type Editor struct {
	doc *models.FitnessDocument
}

// NewEditor wraps a document for editing. The document is mutated in
// place.
func NewEditor(doc *models.FitnessDocument) *Editor {
	return &Editor{doc: doc}
}

// Document returns the document being edited.
func (e *Editor) Document() *models.FitnessDocument {
	return e.doc
}

// SetField writes value into the field addressed by ref. Unknown
// groups or keys and out-of-range indexes are errors; the document is
// untouched on error.
func (e *Editor) SetField(ref FieldRef, value string) error {
	switch ref.Group {
	case GroupProfile:
		return e.setProfileField(ref, value)
	case GroupDiet:
		return e.setMealField(ref, value)
	case GroupExercises:
		return e.setExerciseField(ref, value)
	case GroupProgress:
		return e.setProgressField(ref, value)
	case GroupMeasurements:
		return e.setMeasurementField(ref, value)
	default:
		return fmt.Errorf("editor: unknown group %q", ref.Group)
	}
}

func (e *Editor) setProfileField(ref FieldRef, value string) error {
	switch ref.Key {
	case "height":
		e.doc.Profile.Height = value
	case "weight":
		e.doc.Profile.Weight = value
	case "fat":
		e.doc.Profile.Fat = value
	case "muscle":
		e.doc.Profile.Muscle = value
	default:
		return fmt.Errorf("editor: unknown profile key %q", ref.Key)
	}
	return nil
}

func (e *Editor) setMealField(ref FieldRef, value string) error {
	items, ok := e.doc.Diet[ref.Day]
	if !ok {
		return fmt.Errorf("editor: no diet day %q", ref.Day)
	}
	if ref.Index < 0 || ref.Index >= len(items) {
		return fmt.Errorf("editor: meal index %d out of range for %s", ref.Index, ref.Day)
	}
	item := &items[ref.Index]
	switch ref.Key {
	case "meal":
		item.Meal = value
	case "ingredients":
		item.Ingredients = value
	case "recipe":
		item.Recipe = value
	case "notes":
		item.Notes = value
	default:
		return fmt.Errorf("editor: unknown meal key %q", ref.Key)
	}
	return nil
}

func (e *Editor) setExerciseField(ref FieldRef, value string) error {
	items, ok := e.doc.Exercises[ref.Day]
	if !ok {
		return fmt.Errorf("editor: no exercise day %q", ref.Day)
	}
	if ref.Index < 0 || ref.Index >= len(items) {
		return fmt.Errorf("editor: exercise index %d out of range for %s", ref.Index, ref.Day)
	}
	item := &items[ref.Index]
	switch ref.Key {
	case "name":
		item.Name = value
	case "sets":
		item.Sets = value
	case "reps":
		item.Reps = value
	case "weight":
		item.Weight = value
	case "description":
		item.Description = value
	case "errors":
		item.Errors = value
	case "notes":
		item.Notes = value
	default:
		return fmt.Errorf("editor: unknown exercise key %q", ref.Key)
	}
	return nil
}

func (e *Editor) setProgressField(ref FieldRef, value string) error {
	if ref.Index < 0 || ref.Index >= len(e.doc.Progress) {
		return fmt.Errorf("editor: progress index %d out of range", ref.Index)
	}
	stats, err := progressStats(&e.doc.Progress[ref.Index], ref.Subgroup)
	if err != nil {
		return err
	}
	switch ref.Key {
	case "weight":
		stats.Weight = value
	case "fat":
		stats.Fat = value
	case "muscle":
		stats.Muscle = value
	default:
		return fmt.Errorf("editor: unknown progress key %q", ref.Key)
	}
	return nil
}

func (e *Editor) setMeasurementField(ref FieldRef, value string) error {
	if ref.Index < 0 || ref.Index >= len(e.doc.MuscleMeasurements) {
		return fmt.Errorf("editor: measurement index %d out of range", ref.Index)
	}
	stats, err := measureStats(&e.doc.MuscleMeasurements[ref.Index], ref.Subgroup)
	if err != nil {
		return err
	}
	switch ref.Key {
	case "biceps":
		stats.Biceps = value
	case "shoulder":
		stats.Shoulder = value
	case "chest":
		stats.Chest = value
	case "abdomen":
		stats.Abdomen = value
	default:
		return fmt.Errorf("editor: unknown measurement key %q", ref.Key)
	}
	return nil
}

func progressStats(week *models.ProgressWeek, subgroup string) (*models.BodyStats, error) {
	switch subgroup {
	case SubgroupActual:
		return &week.Actual, nil
	case SubgroupTargets:
		return &week.Targets, nil
	default:
		return nil, fmt.Errorf("editor: unknown subgroup %q", subgroup)
	}
}

func measureStats(week *models.MeasurementWeek, subgroup string) (*models.MeasureStats, error) {
	switch subgroup {
	case SubgroupActual:
		return &week.Actual, nil
	case SubgroupTargets:
		return &week.Targets, nil
	default:
		return nil, fmt.Errorf("editor: unknown subgroup %q", subgroup)
	}
}

// AddMealItem appends a placeholder meal to the given day, creating the
// day if needed.
func (e *Editor) AddMealItem(day string) {
	if e.doc.Diet == nil {
		e.doc.Diet = make(map[string][]models.MealItem)
	}
	e.doc.Diet[day] = append(e.doc.Diet[day], models.MealItem{
		Meal:        "New meal",
		Ingredients: "-",
		Recipe:      "-",
	})
}

// AddExerciseItem appends a placeholder exercise to the given day,
// creating the day if needed.
func (e *Editor) AddExerciseItem(day string) {
	if e.doc.Exercises == nil {
		e.doc.Exercises = make(map[string][]models.ExerciseItem)
	}
	e.doc.Exercises[day] = append(e.doc.Exercises[day], models.ExerciseItem{
		Name:   "New exercise",
		Sets:   "3",
		Reps:   "10",
		Weight: "-",
	})
}

// DeleteMealItem removes the meal at index from the given day. Items
// after it shift down; refs held by callers go stale.
func (e *Editor) DeleteMealItem(day string, index int) error {
	items, ok := e.doc.Diet[day]
	if !ok {
		return fmt.Errorf("editor: no diet day %q", day)
	}
	if index < 0 || index >= len(items) {
		return fmt.Errorf("editor: meal index %d out of range for %s", index, day)
	}
	e.doc.Diet[day] = append(items[:index], items[index+1:]...)
	return nil
}

// DeleteExerciseItem removes the exercise at index from the given day.
func (e *Editor) DeleteExerciseItem(day string, index int) error {
	items, ok := e.doc.Exercises[day]
	if !ok {
		return fmt.Errorf("editor: no exercise day %q", day)
	}
	if index < 0 || index >= len(items) {
		return fmt.Errorf("editor: exercise index %d out of range for %s", index, day)
	}
	e.doc.Exercises[day] = append(items[:index], items[index+1:]...)
	return nil
}

// SaveFunc persists the whole document. Controller calls it after
// every successful mutation.
type SaveFunc func(doc *models.FitnessDocument) error

// Controller couples an Editor to a save function with optimistic
// semantics: the local document is mutated first, then the whole
// document is pushed. A failed push does not undo the local mutation;
// the next successful save carries it along.
type Controller struct {
	editor *Editor
	save   SaveFunc
}

// NewController creates a controller editing doc and persisting through
// save.
func NewController(doc *models.FitnessDocument, save SaveFunc) *Controller {
	return &Controller{editor: NewEditor(doc), save: save}
}

// Document returns the controller's working document.
func (c *Controller) Document() *models.FitnessDocument {
	return c.editor.Document()
}

// EditField sets one field and saves the document.
func (c *Controller) EditField(ref FieldRef, value string) error {
	if err := c.editor.SetField(ref, value); err != nil {
		return err
	}
	return c.save(c.editor.Document())
}

// AddMeal appends a placeholder meal and saves.
func (c *Controller) AddMeal(day string) error {
	c.editor.AddMealItem(day)
	return c.save(c.editor.Document())
}

// AddExercise appends a placeholder exercise and saves.
func (c *Controller) AddExercise(day string) error {
	c.editor.AddExerciseItem(day)
	return c.save(c.editor.Document())
}

// DeleteMeal removes a meal by index and saves.
func (c *Controller) DeleteMeal(day string, index int) error {
	if err := c.editor.DeleteMealItem(day, index); err != nil {
		return err
	}
	return c.save(c.editor.Document())
}

// DeleteExercise removes an exercise by index and saves.
func (c *Controller) DeleteExercise(day string, index int) error {
	if err := c.editor.DeleteExerciseItem(day, index); err != nil {
		return err
	}
	return c.save(c.editor.Document())
}
