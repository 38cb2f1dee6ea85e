package main

import "math"

// computeBMI returns weight (kg) over height (m) squared. No rounding; the
// report formats to two decimals.
func computeBMI(weightKG, heightM float64) float64 {
	return weightKG / math.Pow(heightM, 2)
}

// computeBMR estimates basal metabolic rate with the Mifflin-St Jeor variant
// used throughout this tool. Height is converted to centimeters for this
// formula only. Any gender other than male takes the female branch; callers
// pass validated input.
func computeBMR(gender string, age int, heightM, weightKG float64) float64 {
	heightCM := heightM * 100
	if gender == genderMale {
		return 88.362 + 13.397*weightKG + 4.799*heightCM - 5.677*float64(age)
	}
	return 447.593 + 9.247*weightKG + 3.098*heightCM - 4.330*float64(age)
}

// bmiCategory classifies bmi into half-open bands: each threshold belongs to
// the band above it.
func bmiCategory(bmi float64, th bmiThresholds) string {
	switch {
	case bmi < th.Underweight:
		return categoryUnderweight
	case bmi < th.Normal:
		return categoryNormal
	case bmi < th.Overweight:
		return categoryOverweight
	default:
		return categoryObese
	}
}

// computeMacros splits dailyCalories by the fixed ratios and converts each
// share to grams.
func computeMacros(dailyCalories float64, t *wellnessTables) macroTargets {
	return macroTargets{
		CarbsG:   dailyCalories * t.Macros.Carbs / t.CaloriesPerGram.Carbs,
		ProteinG: dailyCalories * t.Macros.Protein / t.CaloriesPerGram.Protein,
		FatG:     dailyCalories * t.Macros.Fat / t.CaloriesPerGram.Fat,
	}
}

// populateMetrics fills the computed fields on p from its raw fields.
// Returns false when the activity level has no multiplier; DailyCalories is
// left nil in that case and the caller must treat the profile as broken.
func populateMetrics(p *userProfile, t *wellnessTables) bool {
	bmi := computeBMI(p.WeightKG, p.HeightM)
	bmr := computeBMR(p.Gender, p.Age, p.HeightM, p.WeightKG)
	p.BMI = &bmi
	p.BMR = &bmr

	// TDEE: multiply BMR by activity level multiplier
	mult, found := t.multiplierFor(p.ActivityLevel)
	if !found {
		return false
	}
	daily := bmr * mult
	p.DailyCalories = &daily
	return true
}
