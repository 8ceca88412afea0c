// Package document assembles the single normalized text blob that represents
// a career or a user profile in the vector space.
package document

import (
	"strings"

	"github.com/jonathan/career-advisor/internal/textproc"
	"github.com/jonathan/career-advisor/internal/types"
)

// Builder concatenates record fields in a fixed order and normalizes the
// result. Field order matters only for reproducibility; TF-IDF itself is
// order-insensitive.
type Builder struct {
	normalizer *textproc.Normalizer
}

// NewBuilder returns a Builder that normalizes with the given normalizer.
func NewBuilder(n *textproc.Normalizer) *Builder {
	return &Builder{normalizer: n}
}

// CareerDocument builds the text representation of a career: title,
// description, skill name/description pairs, education requirement, and work
// environment. Missing fields contribute nothing; a sparse career still
// yields a valid document.
func (b *Builder) CareerDocument(c types.CareerDocument) string {
	var sb strings.Builder
	appendPart(&sb, c.Title)
	appendPart(&sb, c.Description)
	for _, skill := range c.Skills {
		appendPart(&sb, skill.Name)
		appendPart(&sb, skill.Description)
	}
	appendPart(&sb, c.EducationRequired)
	appendPart(&sb, c.WorkEnvironment)
	return b.normalizer.Normalize(sb.String())
}

// UserDocument builds the text representation of a user profile: skills,
// interests, strengths, personality traits, education level, and synthesized
// preference fragments ("salary {range}", "location {pref}") when preferences
// are present.
func (b *Builder) UserDocument(p types.UserProfile) string {
	var sb strings.Builder
	for _, skill := range p.Skills {
		appendPart(&sb, skill.Name)
		appendPart(&sb, skill.Description)
	}
	appendPart(&sb, p.Interests)
	appendPart(&sb, p.Strengths)
	appendPart(&sb, p.PersonalityTraits)
	appendPart(&sb, p.EducationLevel)
	if p.Preferences != nil {
		if p.Preferences.SalaryRange != "" {
			appendPart(&sb, "salary "+p.Preferences.SalaryRange)
		}
		if p.Preferences.Location != "" {
			appendPart(&sb, "location "+p.Preferences.Location)
		}
	}
	return b.normalizer.Normalize(sb.String())
}

func appendPart(sb *strings.Builder, part string) {
	if part == "" {
		return
	}
	if sb.Len() > 0 {
		sb.WriteByte(' ')
	}
	sb.WriteString(part)
}
