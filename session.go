package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/go-playground/validator/v10"
)

// errUnknownActivityLevel means a profile reached the metrics stage with an
// activity level the multiplier table does not know. The validator makes
// this unreachable, so hitting it is a bug and ends the run.
var errUnknownActivityLevel = errors.New("activity level has no multiplier")

// session bundles the read-only dependencies of one run.
type session struct {
	tables    *wellnessTables
	validate  *validator.Validate
	sessionID string
}

func newSession(sessionID string) *session {
	return &session{
		tables:    defaultTables(),
		validate:  newProfileValidator(),
		sessionID: sessionID,
	}
}

// run performs the whole interview: prompt, validate, compute, display.
func (s *session) run(in io.Reader, out io.Writer) error {
	fmt.Fprint(out, "Welcome to the Wellness Bot!\n============================\n\n")

	p, err := collectProfile(bufio.NewReader(in), out)
	if err != nil {
		return err
	}
	log.Printf("[session %s] profile collected", s.sessionID)

	if err := validateProfile(s.validate, p); err != nil {
		return err
	}
	if !populateMetrics(p, s.tables) {
		return fmt.Errorf("computing metrics for %q: %w", p.ActivityLevel, errUnknownActivityLevel)
	}
	log.Printf("[session %s] bmi=%.2f bmr=%.2f daily_calories=%.2f", s.sessionID, *p.BMI, *p.BMR, *p.DailyCalories)

	recs := buildRecommendations(p, s.tables)
	renderReport(out, p, s.tables, recs)

	fmt.Fprint(out, "\nThank you for using Wellness Bot! Stay healthy!\n")
	return nil
}
