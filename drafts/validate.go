package drafts

import (
	"encoding/json"
	"fmt"
	"strings"

	"shattak/models"
	"shattak/utils"
)

// Validate reports the reasons submission must be blocked, in check order.
// The create flow stops at the first failure; the edit flow accumulates every
// failure, including the freeform JSON text blocks. Validation never mutates
// the draft.
func (s *Snapshot) Validate(accumulate bool) []string {
	var errs []string
	add := func(msg string) bool {
		errs = append(errs, msg)
		return !accumulate
	}

	if strings.TrimSpace(s.Title) == "" {
		if add("Title is required") {
			return errs
		}
	}
	if s.DurationMinutes > 59 || s.DurationMinutes < 0 {
		if add("Duration minutes must be between 0 and 59") {
			return errs
		}
	}
	if s.Rating < 0 || s.Rating > 5 {
		if add("Rating must be between 0 and 5") {
			return errs
		}
	}
	if len(s.Categories) == 0 {
		if add("Category is required") {
			return errs
		}
	}

	for i, sd := range s.Schedule {
		if strings.TrimSpace(sd.Label) == "" {
			if add(fmt.Sprintf("Schedule %d: session label is required", i+1)) {
				return errs
			}
		}
		if sd.Start == 0 && strings.TrimSpace(sd.Time) == "" {
			if add(fmt.Sprintf("Schedule %d: pick a date & time", i+1)) {
				return errs
			}
		}
		if sd.Minutes() <= 0 {
			if add(fmt.Sprintf("Schedule %d: duration must be greater than 0", i+1)) {
				return errs
			}
		}
	}

	if !accumulate {
		return errs
	}

	if len(s.Instructors) > 5 {
		errs = append(errs, "instructors allows at most 5 entries")
	}

	errs = append(errs, validateSectionsJSON("prerequisites", s.PrerequisitesJSON)...)
	errs = append(errs, validateSectionsJSON("liveSessions", s.LiveSessionsJSON)...)
	errs = append(errs, validateSectionsJSON("postSessionMaterials", s.PostSessionMaterialsJSON)...)
	errs = append(errs, validateRequirementsJSON(s.RequirementsJSON)...)
	errs = append(errs, validateOutcomesJSON(s.OutcomesJSON)...)
	errs = append(errs, validateProjectsJSON(s.ProjectsJSON)...)
	errs = append(errs, validateReviewsJSON(s.ReviewsJSON)...)
	errs = append(errs, validateFAQsJSON(s.FAQsJSON)...)

	return errs
}

// decodeEditor parses one JSON text block. The parser's own message is
// surfaced verbatim so the editor shows what actually went wrong.
func decodeEditor(field, text string, out interface{}) (bool, []string) {
	if strings.TrimSpace(text) == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return false, []string{fmt.Sprintf("%s must be valid JSON: %s", field, err.Error())}
	}
	return true, nil
}

func validateSectionsJSON(field, text string) []string {
	var sections []models.Section
	ok, errs := decodeEditor(field, text, &sections)
	if !ok {
		return errs
	}
	for i, sec := range sections {
		if strings.TrimSpace(sec.SectionName) == "" {
			errs = append(errs, fmt.Sprintf("%s[%d]: sectionName is required", field, i))
		}
	}
	return errs
}

func validateRequirementsJSON(text string) []string {
	var raw []interface{}
	ok, errs := decodeEditor("requirements", text, &raw)
	if !ok {
		return errs
	}
	for _, item := range raw {
		if _, isString := item.(string); !isString {
			errs = append(errs, "requirements must be an array of strings")
			break
		}
	}
	if len(raw) > 6 {
		errs = append(errs, "requirements allows at most 6 entries")
	}
	return errs
}

func validateOutcomesJSON(text string) []string {
	var outcomes []models.Outcome
	ok, errs := decodeEditor("outcomes", text, &outcomes)
	if !ok {
		return errs
	}
	if len(outcomes) > 4 {
		errs = append(errs, "outcomes allows at most 4 entries")
	}
	for i, o := range outcomes {
		if strings.TrimSpace(o.Text) == "" {
			errs = append(errs, fmt.Sprintf("outcomes[%d]: text is required", i))
		}
	}
	return errs
}

func validateProjectsJSON(text string) []string {
	var projects []models.Project
	ok, errs := decodeEditor("projects", text, &projects)
	if !ok {
		return errs
	}
	for i, p := range projects {
		if strings.TrimSpace(p.Title) == "" {
			errs = append(errs, fmt.Sprintf("projects[%d]: title is required", i))
		}
	}
	return errs
}

func validateReviewsJSON(text string) []string {
	var reviews []models.Review
	ok, errs := decodeEditor("reviews", text, &reviews)
	if !ok {
		return errs
	}
	for i, r := range reviews {
		if strings.TrimSpace(r.Name) == "" {
			errs = append(errs, fmt.Sprintf("reviews[%d]: name is required", i))
		}
	}
	return errs
}

func validateFAQsJSON(text string) []string {
	var faqs []models.FAQ
	ok, errs := decodeEditor("faqs", text, &faqs)
	if !ok {
		return errs
	}
	for i, f := range faqs {
		if strings.TrimSpace(f.Question) == "" {
			errs = append(errs, fmt.Sprintf("faqs[%d]: question is required", i))
		}
	}
	return errs
}

// ValidateCourse runs the same battery against an already-shaped record, for
// the endpoints that accept a full payload directly.
func ValidateCourse(c *models.Course, accumulate bool) []string {
	var errs []string
	add := func(msg string) bool {
		errs = append(errs, msg)
		return !accumulate
	}

	if strings.TrimSpace(c.Title) == "" {
		if add("Title is required") {
			return errs
		}
	}
	if c.DurationMinutes > 59 || c.DurationMinutes < 0 {
		if add("Duration minutes must be between 0 and 59") {
			return errs
		}
	}
	if c.Rating < 0 || c.Rating > 5 {
		if add("Rating must be between 0 and 5") {
			return errs
		}
	}
	if len(c.Categories) == 0 {
		if add("Category is required") {
			return errs
		}
	}

	for i, sess := range c.Schedule {
		if strings.TrimSpace(sess.Label) == "" {
			if add(fmt.Sprintf("Schedule %d: session label is required", i+1)) {
				return errs
			}
		}
		if strings.TrimSpace(sess.Time) == "" {
			if add(fmt.Sprintf("Schedule %d: pick a date & time", i+1)) {
				return errs
			}
		}
		if utils.ParseDuration(sess.Duration) <= 0 {
			if add(fmt.Sprintf("Schedule %d: duration must be greater than 0", i+1)) {
				return errs
			}
		}
	}

	if !accumulate {
		return errs
	}

	if len(c.Requirements) > 6 {
		errs = append(errs, "requirements allows at most 6 entries")
	}
	if len(c.Outcomes) > 4 {
		errs = append(errs, "outcomes allows at most 4 entries")
	}
	if len(c.Instructors) > 5 {
		errs = append(errs, "instructors allows at most 5 entries")
	}

	return errs
}
