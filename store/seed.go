// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import "github.com/danielhkuo/fit-journal/models"

// seedWeeks is the number of pre-created rows in the progress and
// measurement tables.
const seedWeeks = 16

// DefaultDocument builds the document persisted on first run: profile
// defaults, 16 zeroed progress and measurement weeks, a meal plan and an
// exercise plan for every weekday, and six fixed habit cards.
func DefaultDocument() *models.FitnessDocument {
	doc := &models.FitnessDocument{
		Profile: models.Profile{
			Height: "175",
			Weight: "70",
			Fat:    "15",
			Muscle: "40",
		},
		Diet:      make(map[string][]models.MealItem),
		Exercises: make(map[string][]models.ExerciseItem),
		Habits: []models.HabitCard{
			{Title: "💧 Hydration", Text: "Drink at least 2-3 liters of water a day."},
			{Title: "😴 Rest", Text: "Sleep between 7 and 9 hours every night."},
			{Title: "🥦 Micronutrients", Text: "Eat a wide variety of vegetables and fruit."},
			{Title: "❤️ Regular Cardio", Text: "Fit in 2-3 cardio sessions a week."},
			{Title: "✅ Form Over Weight", Text: "Always prioritize correct form in your lifts."},
			{Title: "🍲 Meal Planning", Text: "Set aside time to prepare your meals."},
		},
	}

	for i := 1; i <= seedWeeks; i++ {
		doc.Progress = append(doc.Progress, models.ProgressWeek{
			Week:    i,
			Actual:  models.BodyStats{Weight: "0", Fat: "0", Muscle: "0"},
			Targets: models.BodyStats{Weight: "0", Fat: "0", Muscle: "0"},
		})
		doc.MuscleMeasurements = append(doc.MuscleMeasurements, models.MeasurementWeek{
			Week:    i,
			Actual:  models.MeasureStats{Biceps: "0", Shoulder: "0", Chest: "0", Abdomen: "0"},
			Targets: models.MeasureStats{Biceps: "0", Shoulder: "0", Chest: "0", Abdomen: "0"},
		})
	}

	// Same five meals every day; the user edits them per day afterwards.
	mealPlan := []models.MealItem{
		{Meal: "🍳 Breakfast", Ingredients: "Oats, milk, berries", Recipe: "Mix everything."},
		{Meal: "🍎 Mid-Morning", Ingredients: "Greek yogurt, walnuts", Recipe: "Mix."},
		{Meal: "🍗 Lunch", Ingredients: "Chicken, quinoa, broccoli", Recipe: "Grill or boil everything."},
		{Meal: "🥜 Snack", Ingredients: "Fruit, rice cakes", Recipe: "-"},
		{Meal: "🐟 Dinner", Ingredients: "Salmon, asparagus", Recipe: "Bake in the oven."},
	}
	for _, day := range models.Weekdays {
		doc.Diet[day] = append([]models.MealItem(nil), mealPlan...)
	}

	doc.Exercises["Monday"] = []models.ExerciseItem{
		{Name: "Bench Press 🏋️", Sets: "4", Reps: "8", Weight: "60kg",
			Description: "Press the bar up from the chest on a flat bench.",
			Errors:      "Arching the lower back, bouncing the bar off the chest."},
	}
	doc.Exercises["Tuesday"] = []models.ExerciseItem{
		{Name: "Pull-Ups 💪", Sets: "4", Reps: "To failure", Weight: "Bodyweight",
			Description: "Pull the body up to a bar.",
			Errors:      "Not pulling all the way up, using momentum (kipping)."},
	}
	doc.Exercises["Wednesday"] = []models.ExerciseItem{
		{Name: "Barbell Squats 🦵", Sets: "4", Reps: "8", Weight: "70kg",
			Description: "Bend knees and hips with the bar on your back.",
			Errors:      "Shallow depth, leaning the torso forward, knees caving in."},
	}
	doc.Exercises["Thursday"] = []models.ExerciseItem{
		{Name: "Overhead Press 🏋️", Sets: "4", Reps: "8", Weight: "35kg",
			Description: "Press the bar overhead while standing.",
			Errors:      "Arching the back, driving with the legs."},
	}
	doc.Exercises["Friday"] = []models.ExerciseItem{
		{Name: "Deadlift 🔥", Sets: "5", Reps: "5", Weight: "90kg",
			Description: "Lift the bar from the floor.",
			Errors:      "Rounding the back, starting with the hips too high."},
	}
	doc.Exercises["Saturday"] = []models.ExerciseItem{
		{Name: "🚶 Active Rest", Sets: "1", Reps: "30-60 min", Weight: "N/A",
			Description: "Light walk, hike, or easy cycling.",
			Errors:      "Pushing too hard, not enjoying the rest."},
	}
	doc.Exercises["Sunday"] = []models.ExerciseItem{
		{Name: "🧘 Full Rest", Sets: "N/A", Reps: "N/A", Weight: "N/A",
			Description: "Complete recovery day. Listen to your body.",
			Errors:      "Feeling guilty for not training."},
	}

	return doc
}
