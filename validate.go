package main

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// normalizeChoice returns the canonical form of a free-text enum answer.
func normalizeChoice(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// isOneOf reports whether s, compared case-insensitively, is one of allowed.
func isOneOf(s string, allowed ...string) bool {
	lower := strings.ToLower(s)
	for _, a := range allowed {
		if lower == a {
			return true
		}
	}
	return false
}

func isValidGender(s string) bool {
	return isOneOf(s, genderMale, genderFemale)
}

func isValidActivityLevel(s string) bool {
	return isOneOf(s, activitySedentary, activityLightlyActive, activityModeratelyActive, activityVeryActive)
}

func isValidLifestyle(s string) bool {
	return isOneOf(s, lifestyleSmoking, lifestyleAlcohol, lifestyleNone)
}

func isValidDietaryPref(s string) bool {
	return isOneOf(s, dietVegetarian, dietVegan, dietNone)
}

// isInRange is an inclusive bounds check.
func isInRange[T int | float64](value, lo, hi T) bool {
	return value >= lo && value <= hi
}

/* ─── Whole-profile validation ───────────────────────────────────────── */

// newProfileValidator builds a validator with one custom tag per enum field.
// The tags accept only the canonical lowercase spelling, so a profile that
// skipped normalizeChoice is rejected here.
func newProfileValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	enumTags := map[string]func(string) bool{
		"gender":         isValidGender,
		"activity_level": isValidActivityLevel,
		"lifestyle":      isValidLifestyle,
		"dietary_pref":   isValidDietaryPref,
	}
	for tag, pred := range enumTags {
		pred := pred // per-iteration copy; go directive predates Go 1.22 loopvar semantics
		// RegisterValidation only fails for empty tags or a nil func.
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return s == normalizeChoice(s) && pred(s)
		})
	}
	return v
}

// validateProfile checks every raw field of p against its domain. It must
// pass before any derived field is computed.
func validateProfile(v *validator.Validate, p *userProfile) error {
	if err := v.Struct(p); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("invalid profile: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("invalid profile: %w", err)
	}
	return nil
}
