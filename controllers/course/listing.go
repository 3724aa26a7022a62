package controllers

import (
	"math"
	"sort"
	"strings"

	"shattak/models"
)

// NormalizeCourses fills the defaults list rows rely on: a record with no
// status is a Draft, and categories are already canonical from the column
// decoder.
func NormalizeCourses(list []models.Course) []models.Course {
	for i := range list {
		if list[i].Status == "" {
			list[i].Status = models.StatusDraft
		}
	}
	return list
}

// SortForAdmin orders the admin list: published before drafts, then by title.
func SortForAdmin(list []models.Course) {
	sort.SliceStable(list, func(i, j int) bool {
		ip := strings.EqualFold(list[i].Status, models.StatusPublished)
		jp := strings.EqualFold(list[j].Status, models.StatusPublished)
		if ip != jp {
			return ip
		}
		return strings.ToLower(list[i].Title) < strings.ToLower(list[j].Title)
	})
}

// searchHaystack is the text the free-text filter matches against.
func searchHaystack(c *models.Course) string {
	parts := []string{
		c.Title,
		c.Subtitle,
		strings.Join(c.Categories, " "),
		c.Status,
		c.Level,
		c.Mode,
		c.About,
	}
	fields := parts[:0]
	for _, p := range parts {
		if p != "" {
			fields = append(fields, p)
		}
	}
	return strings.ToLower(strings.Join(fields, " "))
}

// MatchesFilters applies the three list predicates: primary category, status
// and free-text. "All" (or empty) disables the first two; an empty search
// term matches everything.
func MatchesFilters(c *models.Course, category, status, term string) bool {
	if category != "" && category != "All" && c.Categories.Primary() != category {
		return false
	}
	if status != "" && status != "All" && c.Status != status {
		return false
	}
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(searchHaystack(c), term)
}

// FilterCourses keeps the rows passing all three predicates, preserving order.
func FilterCourses(list []models.Course, category, status, term string) []models.Course {
	out := make([]models.Course, 0, len(list))
	for i := range list {
		if MatchesFilters(&list[i], category, status, term) {
			out = append(out, list[i])
		}
	}
	return out
}

// uniqOptions builds the sorted distinct option list for a filter dropdown,
// with "All" first.
func uniqOptions(values []string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return append([]string{"All"}, out...)
}

// Discount reports whether a discount applies and its rounded percentage.
// It applies only when the original price exceeds the sale price and the sale
// price is positive.
func Discount(price, originalPrice float64) (bool, int) {
	if !(originalPrice > price && price > 0) {
		return false, 0
	}
	return true, int(math.Round(100 * (originalPrice - price) / originalPrice))
}
