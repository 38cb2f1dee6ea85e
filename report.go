package main

import (
	"fmt"
	"io"
)

// renderReport prints the assessment for a profile whose metrics have been
// populated, followed by the selected recommendations.
func renderReport(w io.Writer, p *userProfile, t *wellnessTables, recs recommendations) {
	fmt.Fprint(w, "\n=== Wellness Assessment Results ===\n\n")
	fmt.Fprintf(w, "BMI: %.2f - Category: %s\n", *p.BMI, bmiCategory(*p.BMI, t.BMI))

	fmt.Fprintf(w, "\nBMR: %.2f calories/day\n", *p.BMR)
	fmt.Fprintf(w, "Daily Caloric Needs: %.2f calories\n", *p.DailyCalories)

	m := computeMacros(*p.DailyCalories, t)
	fmt.Fprint(w, "\nRecommended Macronutrient Distribution:\n")
	fmt.Fprintf(w, "  - Carbohydrates: %.2f grams\n", m.CarbsG)
	fmt.Fprintf(w, "  - Protein: %.2f grams\n", m.ProteinG)
	fmt.Fprintf(w, "  - Fats: %.2f grams\n", m.FatG)

	fmt.Fprint(w, "\n=== Personalized Recommendations ===\n")
	renderSection(w, "Exercise Recommendations", recs.Exercise)
	renderSection(w, "Sleep Recommendations", recs.Sleep)
	renderSection(w, "Nutritional Recommendations", recs.Diet)
	if recs.Lifestyle != nil {
		renderSection(w, "Lifestyle Recommendations", *recs.Lifestyle)
	}
}

func renderSection(w io.Writer, title string, b adviceBlock) {
	fmt.Fprintf(w, "\n%s:\n", title)
	for _, line := range b.Lines {
		fmt.Fprintf(w, "- %s\n", line)
	}
}
