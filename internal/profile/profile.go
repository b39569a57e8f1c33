// Package profile defines the structured resume representation shared by the
// parsing, scoring, suggestion and rewrite packages.
package profile

// ResumeProfile is the canonical structured resume. It is assembled once from
// raw text and never mutated in place; optimization produces a new copy.
type ResumeProfile struct {
	RawText      string           `json:"raw_text"`
	PersonalInfo PersonalInfo     `json:"personal_info"`
	Skills       []string         `json:"skills"`
	Experience   []JobEntry       `json:"experience"`
	Education    []EducationEntry `json:"education"`
	Projects     []ProjectEntry   `json:"projects"`
	Summary      string           `json:"summary"`

	// RegionalFormat is a metadata tag set by the rewrite engine. It does
	// not transform any text field.
	RegionalFormat *RegionalFormat `json:"regional_format,omitempty"`
}

// PersonalInfo carries contact identity. Absent fields stay empty.
type PersonalInfo struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// JobEntry is one work-history entry in document order. Company is rarely
// populated; the extraction heuristic does not recover it.
type JobEntry struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Dates       []string `json:"dates"`
	Description []string `json:"description"`
}

// EducationEntry is one education entry in document order.
type EducationEntry struct {
	Degree      string   `json:"degree"`
	Institution string   `json:"institution"`
	Dates       []string `json:"dates"`
	Details     []string `json:"details"`
}

// ProjectEntry is one project entry in document order.
type ProjectEntry struct {
	Name        string   `json:"name"`
	Description []string `json:"description"`
}

// RegionalFormat tags an optimized profile with regional conventions.
type RegionalFormat struct {
	Spelling   string `json:"spelling"`
	DateFormat string `json:"date_format"`
}

// Clone returns a deep copy so the rewrite engine can produce an independent
// profile without touching the original.
func (p ResumeProfile) Clone() ResumeProfile {
	out := p
	out.Skills = append([]string(nil), p.Skills...)
	out.Experience = make([]JobEntry, len(p.Experience))
	for i, job := range p.Experience {
		out.Experience[i] = JobEntry{
			Title:       job.Title,
			Company:     job.Company,
			Dates:       append([]string(nil), job.Dates...),
			Description: append([]string(nil), job.Description...),
		}
	}
	out.Education = make([]EducationEntry, len(p.Education))
	for i, edu := range p.Education {
		out.Education[i] = EducationEntry{
			Degree:      edu.Degree,
			Institution: edu.Institution,
			Dates:       append([]string(nil), edu.Dates...),
			Details:     append([]string(nil), edu.Details...),
		}
	}
	out.Projects = make([]ProjectEntry, len(p.Projects))
	for i, proj := range p.Projects {
		out.Projects[i] = ProjectEntry{
			Name:        proj.Name,
			Description: append([]string(nil), proj.Description...),
		}
	}
	if p.RegionalFormat != nil {
		rf := *p.RegionalFormat
		out.RegionalFormat = &rf
	}
	return out
}
