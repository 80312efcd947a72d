package document

import (
	"regexp"
	"strings"
)

// Section names the supported résumé templates use. SKILLS and
// TECHNICAL SKILLS are synonyms, as are EXPERIENCE and WORK EXPERIENCE.
const (
	SkillsSection          = "SKILLS"
	TechnicalSkillsSection = "TECHNICAL SKILLS"
	ExperienceSection      = "EXPERIENCE"
	WorkExperienceSection  = "WORK EXPERIENCE"
	ProfileSection         = "PROFILE"
	EducationSection       = "EDUCATION"
)

var (
	emailRe    = regexp.MustCompile(`[\w.+-]+@[\w-]+\.[\w.-]+`)
	phoneRe    = regexp.MustCompile(`[+\d][\d\s()-]{8,}`)
	linkedinRe = regexp.MustCompile(`linkedin\.com/\S+`)
)

// PersonalInfo holds the contact details extracted from a résumé header.
type PersonalInfo struct {
	Name     string
	Email    string
	Phone    string
	LinkedIn string
}

// Resume is a read-only view over a parsed résumé. All accessors return
// empty results when the backing section is absent; a missing section
// is not an error for read paths.
type Resume struct {
	sections *Sections
}

// NewResume builds the logical résumé view of an arena.
func NewResume(blocks []Block) *Resume {
	return &Resume{sections: Parse(blocks)}
}

// Sections exposes the underlying section view.
func (r *Resume) Sections() *Sections {
	return r.sections
}

// PersonalInfo extracts name and contact details from the HEADER
// section: the first line is taken as the name, the second is scanned
// for email, phone and LinkedIn handles.
func (r *Resume) PersonalInfo() PersonalInfo {
	var info PersonalInfo

	header := r.sections.Get(HeaderSection)
	if len(header) > 0 {
		info.Name = header[0]
	}
	if len(header) > 1 {
		contact := header[1]
		info.Email = emailRe.FindString(contact)
		info.Phone = strings.TrimSpace(phoneRe.FindString(contact))
		info.LinkedIn = linkedinRe.FindString(contact)
	}

	return info
}

// ProfileSummary joins the PROFILE section into one string.
func (r *Resume) ProfileSummary() string {
	return strings.Join(r.sections.Get(ProfileSection), " ")
}

// Education returns the EDUCATION entries.
func (r *Resume) Education() []string {
	return r.sections.Get(EducationSection)
}

// Experience returns EXPERIENCE entries, falling back to
// WORK EXPERIENCE.
func (r *Resume) Experience() []string {
	return r.sections.first(ExperienceSection, WorkExperienceSection)
}

// Skills returns SKILLS entries, falling back to TECHNICAL SKILLS.
func (r *Resume) Skills() []string {
	return r.sections.first(SkillsSection, TechnicalSkillsSection)
}

// SkillsSectionName returns the heading under which the résumé keeps
// its skills, preferring an existing one so a structural replacement
// lands in the section the template already has. Defaults to SKILLS
// for templates without one (the creation path appends it).
func SkillsSectionName(blocks []Block) string {
	sections := Parse(blocks)
	for _, name := range []string{SkillsSection, TechnicalSkillsSection} {
		if sections.Has(name) {
			return name
		}
	}
	return SkillsSection
}

// AllText flattens the non-empty block texts into one newline-joined
// string, the form the prose-generation collaborator consumes.
func AllText(blocks []Block) string {
	var lines []string
	for _, b := range blocks {
		if text := strings.TrimSpace(b.Text); text != "" {
			lines = append(lines, text)
		}
	}
	return strings.Join(lines, "\n")
}
