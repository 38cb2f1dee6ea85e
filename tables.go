package main

// activityMultiplier pairs a canonical activity level with its TDEE multiplier.
type activityMultiplier struct {
	Level      string
	Multiplier float64
}

// macroRatios is the share of daily calories allocated to each macronutrient.
type macroRatios struct {
	Carbs   float64
	Protein float64
	Fat     float64
}

// caloriesPerGram is the energy density of each macronutrient in kcal/g.
type caloriesPerGram struct {
	Carbs   float64
	Protein float64
	Fat     float64
}

// bmiThresholds are the upper bounds (exclusive) of the first three BMI bands.
// Anything at or above Overweight is Obese.
type bmiThresholds struct {
	Underweight float64
	Normal      float64
	Overweight  float64
}

// wellnessTables groups every constant the metrics, recommendation and report
// code depends on. Built once by defaultTables and passed by pointer; nothing
// writes to it after construction.
type wellnessTables struct {
	ActivityMultipliers []activityMultiplier
	Macros              macroRatios
	CaloriesPerGram     caloriesPerGram
	BMI                 bmiThresholds
	// MinRestfulSleepHours is the sleep duration below which the sleep
	// section advises getting more rest.
	MinRestfulSleepHours int
}

// defaultTables returns the fixed tables for the Mifflin-St Jeor assessment.
// The activity level strings double as the accepted validator inputs.
func defaultTables() *wellnessTables {
	return &wellnessTables{
		ActivityMultipliers: []activityMultiplier{
			{Level: activitySedentary, Multiplier: 1.2},
			{Level: activityLightlyActive, Multiplier: 1.375},
			{Level: activityModeratelyActive, Multiplier: 1.55},
			{Level: activityVeryActive, Multiplier: 1.725},
		},
		Macros:               macroRatios{Carbs: 0.50, Protein: 0.20, Fat: 0.30},
		CaloriesPerGram:      caloriesPerGram{Carbs: 4.0, Protein: 4.0, Fat: 9.0},
		BMI:                  bmiThresholds{Underweight: 18.5, Normal: 24.9, Overweight: 29.9},
		MinRestfulSleepHours: 7,
	}
}

// multiplierFor returns the multiplier for an exact (already canonical)
// activity level match.
func (t *wellnessTables) multiplierFor(level string) (float64, bool) {
	for _, a := range t.ActivityMultipliers {
		if a.Level == level {
			return a.Multiplier, true
		}
	}
	return 0, false
}
