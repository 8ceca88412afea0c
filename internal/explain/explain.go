// Package explain generates the human-readable reasoning attached to each
// career recommendation. Output is deterministic and template-based; missing
// or malformed optional data drops the affected clause instead of failing.
package explain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/career-advisor/internal/types"
)

// Growth-rate qualifier thresholds, in annual percent.
const (
	growthExcellent = 10.0
	growthGood      = 5.0
)

// degreeRank maps degree keywords to ordinal levels for the coarse
// education comparison.
var degreeRank = map[string]int{
	"associate": 1,
	"bachelor":  2,
	"master":    3,
	"phd":       4,
	"doctorate": 4,
}

// Generate composes the reasoning string for one recommendation. The score
// sentence is always present; every other clause is emitted only when its
// underlying data exists and parses. The worst case is the score sentence
// alone.
func Generate(career types.CareerDocument, profile types.UserProfile, score float64) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "This career matches your profile with a %.2f similarity score.", score)

	if clause := skillOverlapClause(career, profile); clause != "" {
		sb.WriteString(" " + clause)
	}
	if clause := educationClause(career, profile); clause != "" {
		sb.WriteString(" " + clause)
	}
	if clause := salaryPreferenceClause(career, profile); clause != "" {
		sb.WriteString(" " + clause)
	}
	if clause := growthRateClause(career); clause != "" {
		sb.WriteString(" " + clause)
	}
	if career.AvgSalary != nil {
		fmt.Fprintf(&sb, " The average salary for this career is %s.", formatCurrency(*career.AvgSalary))
	}

	return sb.String()
}

// skillOverlapClause lists the case-insensitive intersection of profile and
// career skill names, following profile order so output is deterministic.
func skillOverlapClause(career types.CareerDocument, profile types.UserProfile) string {
	if len(profile.Skills) == 0 || len(career.Skills) == 0 {
		return ""
	}

	careerSkills := make(map[string]struct{}, len(career.Skills))
	for _, skill := range career.Skills {
		name := strings.ToLower(strings.TrimSpace(skill.Name))
		if name != "" {
			careerSkills[name] = struct{}{}
		}
	}

	var matched []string
	seen := make(map[string]struct{})
	for _, skill := range profile.Skills {
		name := strings.ToLower(strings.TrimSpace(skill.Name))
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		if _, ok := careerSkills[name]; ok {
			matched = append(matched, name)
		}
	}
	if len(matched) == 0 {
		return ""
	}

	listed := matched
	extra := 0
	if len(matched) > 3 {
		listed = matched[:3]
		extra = len(matched) - 3
	}
	clause := fmt.Sprintf("You have %d relevant skills for this role: %s", len(matched), strings.Join(listed, ", "))
	if extra > 0 {
		clause += fmt.Sprintf(" and %d more", extra)
	}
	return clause + "."
}

// educationClause compares the profile education level with the career
// requirement: substring containment first, then a coarse ordinal comparison
// of detected degree levels.
func educationClause(career types.CareerDocument, profile types.UserProfile) string {
	if profile.EducationLevel == "" || career.EducationRequired == "" {
		return ""
	}

	userLevel := strings.ToLower(profile.EducationLevel)
	required := strings.ToLower(career.EducationRequired)
	if strings.Contains(required, userLevel) {
		return fmt.Sprintf("Your education level (%s) matches the requirements.", profile.EducationLevel)
	}

	userRank, userOK := detectDegreeRank(userLevel)
	requiredRank, requiredOK := detectDegreeRank(required)
	switch {
	case !userOK || !requiredOK:
		return ""
	case userRank >= requiredRank:
		return fmt.Sprintf("Your education level (%s) meets the typical requirement (%s).", profile.EducationLevel, career.EducationRequired)
	default:
		return fmt.Sprintf("This role typically requires %s, so you may need further education.", career.EducationRequired)
	}
}

// salaryPreferenceClause states salary fit when the profile carries a
// parseable "min-max" range and the career salary falls inside it. A range
// that fails to parse silently drops the clause.
func salaryPreferenceClause(career types.CareerDocument, profile types.UserProfile) string {
	if profile.Preferences == nil || profile.Preferences.SalaryRange == "" || career.AvgSalary == nil {
		return ""
	}

	minSalary, maxSalary, ok := parseSalaryRange(profile.Preferences.SalaryRange)
	if !ok {
		return ""
	}
	if *career.AvgSalary < minSalary || *career.AvgSalary > maxSalary {
		return ""
	}
	return fmt.Sprintf("The average salary (%s) is within your preferred range.", formatCurrency(*career.AvgSalary))
}

func growthRateClause(career types.CareerDocument) string {
	if career.GrowthRate == nil {
		return ""
	}
	rate := *career.GrowthRate
	qualifier, article := "steady", "a"
	switch {
	case rate > growthExcellent:
		qualifier, article = "excellent", "an"
	case rate > growthGood:
		qualifier = "good"
	}
	return fmt.Sprintf("This career has %s %s annual growth rate of %.1f%%.", article, qualifier, rate)
}

// parseSalaryRange parses a "min-max" numeric range like "60000-90000".
func parseSalaryRange(s string) (minSalary, maxSalary float64, ok bool) {
	parts := strings.SplitN(strings.TrimSpace(s), "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	minSalary, errMin := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	maxSalary, errMax := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errMin != nil || errMax != nil || minSalary > maxSalary {
		return 0, 0, false
	}
	return minSalary, maxSalary, true
}

// detectDegreeRank scans lowercased free text for a known degree keyword and
// returns the highest rank found.
func detectDegreeRank(text string) (int, bool) {
	best := 0
	for keyword, rank := range degreeRank {
		if strings.Contains(text, keyword) && rank > best {
			best = rank
		}
	}
	return best, best > 0
}

// formatCurrency renders a dollar amount with thousands separators,
// e.g. 75000.5 -> "$75,000.50".
func formatCurrency(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := strconv.FormatFloat(amount, 'f', 2, 64)
	intPart := s[:len(s)-3]
	fracPart := s[len(s)-3:]

	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	sb.WriteByte('$')
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(digit)
	}
	sb.WriteString(fracPart)
	return sb.String()
}
