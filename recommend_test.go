package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sectionKeys flattens the selected block keys in report order. A missing
// lifestyle section is "".
func sectionKeys(r recommendations) []string {
	lifestyle := ""
	if r.Lifestyle != nil {
		lifestyle = r.Lifestyle.Key
	}
	return []string{r.Exercise.Key, r.Sleep.Key, r.Diet.Key, lifestyle}
}

/* ─── Per-section rules ──────────────────────────────────────────────── */

// TestExerciseAdvice_Threshold verifies weight-management advice starts at
// the Overweight band boundary.
func TestExerciseAdvice_Threshold(t *testing.T) {
	tables := defaultTables()
	assert.Equal(t, adviceBalancedRoutine, exerciseAdvice(17, tables).Key)
	assert.Equal(t, adviceBalancedRoutine, exerciseAdvice(24.89, tables).Key)
	assert.Equal(t, adviceLowImpact, exerciseAdvice(24.9, tables).Key)
	assert.Equal(t, adviceLowImpact, exerciseAdvice(35, tables).Key)
}

// TestSleepAdvice_Threshold verifies fewer than 7 hours triggers the
// increase-sleep block.
func TestSleepAdvice_Threshold(t *testing.T) {
	tables := defaultTables()
	assert.Equal(t, adviceIncreaseSleep, sleepAdvice(0, tables).Key)
	assert.Equal(t, adviceIncreaseSleep, sleepAdvice(6, tables).Key)
	assert.Equal(t, adviceMaintainSleep, sleepAdvice(7, tables).Key)
	assert.Equal(t, adviceMaintainSleep, sleepAdvice(24, tables).Key)
}

// TestDietAdvice_Exhaustive verifies the diet section always yields exactly
// one block and that the three preferences select distinct blocks.
func TestDietAdvice_Exhaustive(t *testing.T) {
	cases := map[string]string{
		dietVegetarian: adviceDietVegetarian,
		dietVegan:      adviceDietVegan,
		dietNone:       adviceDietGeneral,
		"keto":         adviceDietGeneral,
		"":             adviceDietGeneral,
	}
	for pref, want := range cases {
		b := dietAdvice(pref)
		assert.Equal(t, want, b.Key, "pref=%q", pref)
		assert.NotEmpty(t, b.Lines, "pref=%q", pref)
	}

	seen := map[string]bool{}
	for _, pref := range []string{dietVegetarian, dietVegan, dietNone} {
		seen[dietAdvice(pref).Key] = true
	}
	assert.Len(t, seen, 3)
}

// TestLifestyleAdvice verifies lifestyle advice is only emitted for smoking
// and alcohol.
func TestLifestyleAdvice(t *testing.T) {
	smoking := lifestyleAdvice(lifestyleSmoking)
	require.NotNil(t, smoking)
	assert.Equal(t, adviceSmoking, smoking.Key)

	alcohol := lifestyleAdvice(lifestyleAlcohol)
	require.NotNil(t, alcohol)
	assert.Equal(t, adviceAlcohol, alcohol.Key)

	assert.Nil(t, lifestyleAdvice(lifestyleNone))
	assert.Nil(t, lifestyleAdvice("vaping"))
}

/* ─── Full profile ───────────────────────────────────────────────────── */

// TestBuildRecommendations_Profiles checks the selected blocks for whole
// profiles, including the hand-worked reference profile.
func TestBuildRecommendations_Profiles(t *testing.T) {
	cases := []struct {
		name    string
		profile *userProfile
		want    []string
	}{
		{
			name: "reference profile",
			profile: &userProfile{
				Age: 25, Gender: genderMale, HeightM: 1.80, WeightKG: 75,
				ActivityLevel: activityModeratelyActive, SleepHours: 6,
				Lifestyle: lifestyleNone, DietaryPref: dietNone,
			},
			want: []string{adviceBalancedRoutine, adviceIncreaseSleep, adviceDietGeneral, ""},
		},
		{
			name: "obese vegan smoker",
			profile: &userProfile{
				Age: 50, Gender: genderFemale, HeightM: 1.60, WeightKG: 95,
				ActivityLevel: activitySedentary, SleepHours: 8,
				Lifestyle: lifestyleSmoking, DietaryPref: dietVegan,
			},
			want: []string{adviceLowImpact, adviceMaintainSleep, adviceDietVegan, adviceSmoking},
		},
		{
			name: "underweight vegetarian drinker",
			profile: &userProfile{
				Age: 19, Gender: genderMale, HeightM: 1.85, WeightKG: 55,
				ActivityLevel: activityVeryActive, SleepHours: 7,
				Lifestyle: lifestyleAlcohol, DietaryPref: dietVegetarian,
			},
			want: []string{adviceBalancedRoutine, adviceMaintainSleep, adviceDietVegetarian, adviceAlcohol},
		},
	}

	tables := defaultTables()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.True(t, populateMetrics(tc.profile, tables))
			got := sectionKeys(buildRecommendations(tc.profile, tables))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("recommendation keys mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
