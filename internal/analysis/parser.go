package analysis

import "strings"

// Section keys produced by ParseSections. Every key is always present in the
// returned map, defaulting to the empty string.
const (
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
	SectionOther          = "other"
)

// sectionHeaders maps section keys to the header keywords that activate them.
// The slice order is the match order: the first section whose keywords match
// a line wins.
var sectionHeaders = []struct {
	key      string
	keywords []string
}{
	{SectionExperience, []string{"experience", "work experience", "employment", "work history", "professional experience"}},
	{SectionEducation, []string{"education", "academic background", "qualifications", "education & certifications"}},
	{SectionSkills, []string{"skills", "technical skills", "competencies", "technologies", "core competencies"}},
	{SectionProjects, []string{"projects", "personal projects", "academic projects", "key projects"}},
	{SectionCertifications, []string{"certifications", "courses", "licenses"}},
}

const (
	headerMaxLen    = 50
	headerMaxTokens = 4
)

// ParseSections splits raw resume text into labeled sections using header
// keyword heuristics. Header lines are consumed; every other line lands in
// exactly one section, with unclassified lines accumulating under "other".
func ParseSections(text string) map[string]string {
	sections := map[string]string{
		SectionExperience:     "",
		SectionEducation:      "",
		SectionSkills:         "",
		SectionProjects:       "",
		SectionCertifications: "",
		SectionOther:          "",
	}

	current := SectionOther
	for _, line := range strings.Split(text, "\n") {
		normalized := strings.ToLower(strings.TrimSpace(line))

		if key, ok := matchHeader(normalized); ok {
			current = key
			continue
		}

		sections[current] += line + "\n"
	}

	return sections
}

// matchHeader reports whether a normalized line is a section header and which
// section it activates. A line qualifies if it exactly equals a keyword, or
// contains one while being short enough that it cannot be a body sentence.
// The length and token caps are load-bearing: downstream scoring assumes this
// exact segmentation, so lines like "I have experience in..." must not match.
func matchHeader(normalized string) (string, bool) {
	if len(normalized) >= headerMaxLen {
		return "", false
	}
	for _, entry := range sectionHeaders {
		for _, keyword := range entry.keywords {
			if normalized == keyword {
				return entry.key, true
			}
		}
		if len(strings.Fields(normalized)) < headerMaxTokens {
			for _, keyword := range entry.keywords {
				if strings.Contains(normalized, keyword) {
					return entry.key, true
				}
			}
		}
	}
	return "", false
}
