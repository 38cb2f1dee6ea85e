package main

/* ─── Advice blocks ──────────────────────────────────────────────────── */

// Block keys. Which key is selected is the contract; the wording of Lines
// can change freely.
const (
	adviceLowImpact       = "low-impact"
	adviceBalancedRoutine = "balanced-routine"
	adviceIncreaseSleep   = "increase-sleep"
	adviceMaintainSleep   = "maintain-sleep"
	adviceDietVegetarian  = "vegetarian"
	adviceDietVegan       = "vegan"
	adviceDietGeneral     = "general"
	adviceSmoking         = "smoking"
	adviceAlcohol         = "alcohol"
)

var adviceLines = map[string][]string{
	adviceLowImpact: {
		"Start with low-impact activities like walking or swimming",
		"Aim for 150 minutes of moderate activity per week",
		"Include strength training 2-3 times per week",
	},
	adviceBalancedRoutine: {
		"Maintain a balanced exercise routine",
		"Mix cardio with strength training",
		"Consider adding flexibility exercises",
	},
	adviceIncreaseSleep: {
		"Aim to increase sleep to 7-8 hours per night",
		"Establish a regular sleep schedule",
		"Create a relaxing bedtime routine",
	},
	adviceMaintainSleep: {
		"Maintain your good sleep habits",
		"Consider sleep quality improvements",
	},
	adviceDietVegetarian: {
		"Focus on complete protein sources (eggs, dairy, legumes)",
		"Monitor B12 and iron intake",
	},
	adviceDietVegan: {
		"Ensure adequate B12 supplementation",
		"Combine protein sources for complete amino acids",
		"Monitor iron, calcium, and vitamin D intake",
	},
	adviceDietGeneral: {
		"Choose lean protein sources",
		"Include a variety of colorful vegetables",
		"Limit processed foods",
	},
	adviceSmoking: {
		"Consider smoking cessation programs",
		"Consult healthcare provider about cessation aids",
	},
	adviceAlcohol: {
		"Limit alcohol consumption",
		"Consider alcohol-free days",
		"Stay hydrated",
	},
}

func block(key string) adviceBlock {
	return adviceBlock{Key: key, Lines: adviceLines[key]}
}

/* ─── Rule evaluation ────────────────────────────────────────────────── */

// buildRecommendations selects one block per section from a profile whose
// metrics are already populated. Sections are independent of each other.
func buildRecommendations(p *userProfile, t *wellnessTables) recommendations {
	return recommendations{
		Exercise:  exerciseAdvice(*p.BMI, t),
		Sleep:     sleepAdvice(p.SleepHours, t),
		Diet:      dietAdvice(p.DietaryPref),
		Lifestyle: lifestyleAdvice(p.Lifestyle),
	}
}

// exerciseAdvice switches to weight-management advice from the Overweight
// band upwards.
func exerciseAdvice(bmi float64, t *wellnessTables) adviceBlock {
	if bmi >= t.BMI.Normal {
		return block(adviceLowImpact)
	}
	return block(adviceBalancedRoutine)
}

func sleepAdvice(hours int, t *wellnessTables) adviceBlock {
	if hours < t.MinRestfulSleepHours {
		return block(adviceIncreaseSleep)
	}
	return block(adviceMaintainSleep)
}

// dietAdvice falls back to general advice for "none" and anything unknown.
func dietAdvice(pref string) adviceBlock {
	switch pref {
	case dietVegetarian:
		return block(adviceDietVegetarian)
	case dietVegan:
		return block(adviceDietVegan)
	default:
		return block(adviceDietGeneral)
	}
}

// lifestyleAdvice returns nil for "none" and for any value it has no advice for.
func lifestyleAdvice(lifestyle string) *adviceBlock {
	var b adviceBlock
	switch lifestyle {
	case lifestyleSmoking:
		b = block(adviceSmoking)
	case lifestyleAlcohol:
		b = block(adviceAlcohol)
	default:
		return nil
	}
	return &b
}
