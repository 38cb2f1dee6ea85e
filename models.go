package main

/* ─── Canonical enum values ──────────────────────────────────────────── */

const (
	genderMale   = "male"
	genderFemale = "female"

	activitySedentary        = "sedentary"
	activityLightlyActive    = "lightly active"
	activityModeratelyActive = "moderately active"
	activityVeryActive       = "very active"

	lifestyleSmoking = "smoking"
	lifestyleAlcohol = "alcohol"
	lifestyleNone    = "none"

	dietVegetarian = "vegetarian"
	dietVegan      = "vegan"
	dietNone       = "none"
)

// BMI category labels, in ascending band order.
const (
	categoryUnderweight = "Underweight"
	categoryNormal      = "Normal weight"
	categoryOverweight  = "Overweight"
	categoryObese       = "Obese"
)

/* ─── Domain structs ─────────────────────────────────────────────────── */

// userProfile is the one entity of a session. Raw fields are filled in order
// by the prompt loop; the validate tags mirror the prompt bounds so the whole
// profile can be re-checked before metrics are derived.
type userProfile struct {
	Age           int     `validate:"min=1,max=120"`
	Gender        string  `validate:"gender"`
	HeightM       float64 `validate:"min=0.5,max=2.5"`
	WeightKG      float64 `validate:"min=20,max=300"`
	ActivityLevel string  `validate:"activity_level"`
	SleepHours    int     `validate:"min=0,max=24"`
	Lifestyle     string  `validate:"lifestyle"`
	DietaryPref   string  `validate:"dietary_pref"`

	// Computed fields, nil until populateMetrics runs.
	BMI           *float64 `validate:"-"`
	BMR           *float64 `validate:"-"`
	DailyCalories *float64 `validate:"-"`
}

// macroTargets is the daily gram target for each macronutrient.
type macroTargets struct {
	CarbsG   float64
	ProteinG float64
	FatG     float64
}

// adviceBlock is one selected piece of canned advice. Key identifies which
// rule fired; Lines are the user-facing bullets.
type adviceBlock struct {
	Key   string
	Lines []string
}

// recommendations holds the four independent advice sections. Lifestyle is
// nil when no lifestyle advice applies.
type recommendations struct {
	Exercise  adviceBlock
	Sleep     adviceBlock
	Diet      adviceBlock
	Lifestyle *adviceBlock
}
