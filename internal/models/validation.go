package models

import (
	"errors"
	"fmt"
	"github.com/gookit/validate"
	"time"
)

// Validate checks the request before it is sent. Scores that were not
// provided are not validated.
func (r *UpdateScoreRequest) Validate(roster Roster) error {
	data := map[string]any{
		"date":       r.Date,
		"playerName": r.PlayerName,
	}
	optional := map[string]*int{
		"wordle":      r.Scores.Wordle,
		"connections": r.Scores.Connections,
		"strands":     r.Scores.Strands,
	}
	for k, v := range optional {
		if v != nil {
			data[k] = *v
		}
	}

	v := validate.Map(data)
	v.StopOnError = false
	v.StringRule("date", "required")
	v.AddRule("date", "regex", `^\d{4}-\d{2}-\d{2}$`)
	v.StringRule("playerName", "required")
	v.AddRule("playerName", "in", []string(roster))
	for k, val := range optional {
		if val != nil {
			v.AddRule(k, "min", 0)
		}
	}
	if !v.Validate() {
		return errors.New(v.Errors.String())
	}

	if _, err := time.Parse(DateLayout, r.Date); err != nil {
		return fmt.Errorf("date %q is not a calendar day", r.Date)
	}
	return nil
}
