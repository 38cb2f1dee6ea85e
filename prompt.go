package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
)

// profileField is one prompt in the interview. accept validates the raw
// answer and, when it is acceptable, stores the canonical value on p.
type profileField struct {
	Name   string
	Prompt string
	Retry  string
	accept func(p *userProfile, raw string) bool
}

const retryChoice = "Invalid input. Please try again."

func retryRange[T int | float64](lo, hi T) string {
	return fmt.Sprintf("Invalid input. Please enter a value between %v and %v", lo, hi)
}

// intField accepts a whole number within [lo, hi]. Non-numeric answers are
// rejected the same way as out-of-range ones.
func intField(lo, hi int, set func(p *userProfile, v int)) func(*userProfile, string) bool {
	return func(p *userProfile, raw string) bool {
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || !isInRange(v, lo, hi) {
			return false
		}
		set(p, v)
		return true
	}
}

func floatField(lo, hi float64, set func(p *userProfile, v float64)) func(*userProfile, string) bool {
	return func(p *userProfile, raw string) bool {
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || !isInRange(v, lo, hi) {
			return false
		}
		set(p, v)
		return true
	}
}

// choiceField accepts answers the predicate allows and stores them lowercased.
func choiceField(valid func(string) bool, set func(p *userProfile, v string)) func(*userProfile, string) bool {
	return func(p *userProfile, raw string) bool {
		raw = strings.TrimSpace(raw)
		if !valid(raw) {
			return false
		}
		set(p, normalizeChoice(raw))
		return true
	}
}

// profileFields lists the interview in the order the profile is filled.
func profileFields() []profileField {
	return []profileField{
		{
			Name: "age", Prompt: "Enter your age: ", Retry: retryRange(1, 120),
			accept: intField(1, 120, func(p *userProfile, v int) { p.Age = v }),
		},
		{
			Name: "gender", Prompt: "Enter your gender (male/female): ", Retry: retryChoice,
			accept: choiceField(isValidGender, func(p *userProfile, v string) { p.Gender = v }),
		},
		{
			Name: "height", Prompt: "Enter your height (in meters): ", Retry: retryRange(0.5, 2.5),
			accept: floatField(0.5, 2.5, func(p *userProfile, v float64) { p.HeightM = v }),
		},
		{
			Name: "weight", Prompt: "Enter your weight (in kg): ", Retry: retryRange(20.0, 300.0),
			accept: floatField(20.0, 300.0, func(p *userProfile, v float64) { p.WeightKG = v }),
		},
		{
			Name:   "activity_level",
			Prompt: "Enter your activity level (sedentary, lightly active, moderately active, very active): ",
			Retry:  retryChoice,
			accept: choiceField(isValidActivityLevel, func(p *userProfile, v string) { p.ActivityLevel = v }),
		},
		{
			Name: "sleep_hours", Prompt: "Enter your hours of sleep per night: ", Retry: retryRange(0, 24),
			accept: intField(0, 24, func(p *userProfile, v int) { p.SleepHours = v }),
		},
		{
			Name: "lifestyle", Prompt: "Enter your lifestyle habits (smoking, alcohol, none): ", Retry: retryChoice,
			accept: choiceField(isValidLifestyle, func(p *userProfile, v string) { p.Lifestyle = v }),
		},
		{
			Name: "dietary_pref", Prompt: "Enter your dietary preferences (vegetarian, vegan, none): ", Retry: retryChoice,
			accept: choiceField(isValidDietaryPref, func(p *userProfile, v string) { p.DietaryPref = v }),
		},
	}
}

/* ─── Prompt loop ────────────────────────────────────────────────────── */

// readLine reads one answer without its line terminator. A final line with
// no trailing newline is still returned; io.EOF is only reported once no
// input is left.
func readLine(in *bufio.Reader) (string, error) {
	line, err := in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// askField prompts until f accepts an answer. There is no retry limit; the
// loop only ends early when input runs out.
func askField(in *bufio.Reader, out io.Writer, p *userProfile, f profileField) error {
	for attempt := 1; ; attempt++ {
		fmt.Fprint(out, f.Prompt)
		raw, err := readLine(in)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("reading %s: %w", f.Name, io.ErrUnexpectedEOF)
			}
			return fmt.Errorf("reading %s: %w", f.Name, err)
		}
		if f.accept(p, raw) {
			if attempt > 1 {
				log.Printf("[prompt] %s accepted after %d attempts", f.Name, attempt)
			}
			return nil
		}
		fmt.Fprintln(out, f.Retry)
	}
}

// collectProfile runs the interview and returns a profile with every raw
// field set. Derived fields are left nil.
func collectProfile(in *bufio.Reader, out io.Writer) (*userProfile, error) {
	p := &userProfile{}
	for _, f := range profileFields() {
		if err := askField(in, out, p, f); err != nil {
			return nil, err
		}
	}
	return p, nil
}
