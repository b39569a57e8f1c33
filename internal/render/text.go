package render

import (
	"strings"

	"resume-optimizer/internal/profile"
)

// RenderText produces a plain-text rendition of the profile with the same
// section order as the DOCX output.
func RenderText(p *profile.ResumeProfile) string {
	var out strings.Builder

	if p.PersonalInfo.Name != "" {
		out.WriteString(p.PersonalInfo.Name + "\n")
	}
	contact := make([]string, 0, 2)
	if p.PersonalInfo.Email != "" {
		contact = append(contact, p.PersonalInfo.Email)
	}
	if p.PersonalInfo.Phone != "" {
		contact = append(contact, p.PersonalInfo.Phone)
	}
	if len(contact) > 0 {
		out.WriteString(strings.Join(contact, " | ") + "\n")
	}

	if strings.TrimSpace(p.Summary) != "" {
		out.WriteString("\nPROFESSIONAL SUMMARY\n")
		out.WriteString(p.Summary + "\n")
	}

	if len(p.Skills) > 0 {
		out.WriteString("\nSKILLS\n")
		out.WriteString(strings.Join(p.Skills, ", ") + "\n")
	}

	if len(p.Experience) > 0 {
		out.WriteString("\nEXPERIENCE\n")
		for _, job := range p.Experience {
			title := job.Title
			if job.Company != "" {
				title += " - " + job.Company
			}
			out.WriteString(title + "\n")
			if len(job.Dates) > 0 {
				out.WriteString(strings.Join(job.Dates, " | ") + "\n")
			}
			for _, bullet := range job.Description {
				out.WriteString("- " + bullet + "\n")
			}
		}
	}

	if len(p.Education) > 0 {
		out.WriteString("\nEDUCATION\n")
		for _, edu := range p.Education {
			line := edu.Degree
			if edu.Institution != "" {
				line += " - " + edu.Institution
			}
			out.WriteString(line + "\n")
			if len(edu.Dates) > 0 {
				out.WriteString(strings.Join(edu.Dates, " | ") + "\n")
			}
			for _, detail := range edu.Details {
				out.WriteString("- " + detail + "\n")
			}
		}
	}

	return strings.TrimRight(out.String(), "\n") + "\n"
}
