// Package resume renders the ATS-friendly resume PDF: single column,
// standard fonts, no graphics, so parsers extract every field.
package resume

import (
	"bytes"
	"strings"

	"go-portfolio-backend/internal/domain"

	"github.com/go-pdf/fpdf"
)

const (
	pageMargin    = 20.0
	lineHeight    = 5.0
	sectionGap    = 4.0
	bottomLimit   = 277.0 // A4 height minus bottom margin
	namePlacehold = "Nome do Candidato"
)

// Platforms worth printing on a resume. Everything else (Twitch,
// Discord, ...) stays off the document.
var resumePlatforms = []string{"LinkedIn", "GitHub", "Portfolio", "Site Pessoal"}

// document carries the output cursor: every write goes through it, and
// it opens a new page whenever the next block would not fit.
type document struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
	y   float64
}

func newDocument() *document {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, pageMargin)
	pdf.AddPage()
	return &document{
		pdf: pdf,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
		y:   pageMargin,
	}
}

// ensureSpace opens a new page when fewer than needed millimeters
// remain, and resets the cursor to the top margin.
func (d *document) ensureSpace(needed float64) {
	if d.y+needed <= bottomLimit {
		return
	}
	d.pdf.AddPage()
	d.y = pageMargin
}

// writeLine writes one single line at the cursor and advances it.
func (d *document) writeLine(text string, style string, size float64) {
	d.ensureSpace(lineHeight)
	d.pdf.SetFont("Helvetica", style, size)
	d.pdf.SetXY(pageMargin, d.y)
	d.pdf.CellFormat(0, lineHeight, d.tr(text), "", 0, "L", false, 0, "")
	d.y += lineHeight
}

// writeParagraph wraps long text across lines and pages.
func (d *document) writeParagraph(text string, style string, size float64) {
	d.pdf.SetFont("Helvetica", style, size)
	width := 210.0 - 2*pageMargin
	lines := d.pdf.SplitText(d.tr(text), width)
	for _, line := range lines {
		d.ensureSpace(lineHeight)
		d.pdf.SetXY(pageMargin, d.y)
		d.pdf.CellFormat(width, lineHeight, line, "", 0, "L", false, 0, "")
		d.y += lineHeight
	}
}

func (d *document) sectionTitle(title string) {
	d.ensureSpace(lineHeight + sectionGap)
	d.y += sectionGap
	d.writeLine(strings.ToUpper(title), "B", 12)
}

func (d *document) gap(mm float64) {
	d.y += mm
}

// BuildATS renders the full resume. Every section tolerates an empty
// collection: it is simply skipped.
func BuildATS(snap domain.ResumeSnapshot) ([]byte, error) {
	d := newDocument()

	writeHeader(d, snap)
	writeSummary(d, snap.Profile)
	writeExperiences(d, snap.Experiences)
	writeSkills(d, snap.Skills)
	writeEducations(d, snap.Educations)
	writeCertifications(d, snap.Certifications)
	writeLanguages(d, snap.Languages)

	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeHeader(d *document, snap domain.ResumeSnapshot) {
	name := namePlacehold
	if snap.Profile != nil && snap.Profile.FullName != "" {
		name = snap.Profile.FullName
	}
	d.writeLine(name, "B", 16)

	if contact := ContactLine(snap.Profile); contact != "" {
		d.writeLine(contact, "", 10)
	}
	if social := SocialLine(snap.SocialLinks); social != "" {
		d.writeLine(social, "", 10)
	}
}

func writeSummary(d *document, profile *domain.Profile) {
	if profile == nil || profile.ProfessionalSummary == "" {
		return
	}
	d.sectionTitle("Resumo Profissional")
	d.writeParagraph(profile.ProfessionalSummary, "", 10)
}

func writeExperiences(d *document, experiences []domain.Experience) {
	if len(experiences) == 0 {
		return
	}
	d.sectionTitle("Experiência Profissional")
	for _, e := range experiences {
		d.ensureSpace(3 * lineHeight)
		d.writeLine(e.Position, "B", 11)
		d.writeLine(e.Company+" | "+e.EmploymentType, "", 10)
		d.writeLine(e.Period(), "I", 9)
		if e.Description != "" {
			d.writeParagraph(e.Description, "", 10)
		}
		if techs := TechnologiesLine(e.Skills); techs != "" {
			d.writeLine(techs, "I", 9)
		}
		d.gap(2)
	}
}

func writeSkills(d *document, skills []domain.Skill) {
	if len(skills) == 0 {
		return
	}
	d.sectionTitle("Habilidades Técnicas")
	for _, group := range GroupSkills(skills) {
		d.writeParagraph(group.Category+": "+strings.Join(group.Names, ", "), "", 10)
	}
}

func writeEducations(d *document, educations []domain.Education) {
	if len(educations) == 0 {
		return
	}
	d.sectionTitle("Formação Acadêmica")
	for _, e := range educations {
		d.ensureSpace(3 * lineHeight)
		d.writeLine(e.Degree+" em "+e.FieldOfStudy, "B", 11)
		d.writeLine(e.Institution, "", 10)
		d.writeLine(e.PeriodLabel(), "I", 9)
		if e.Description != nil && *e.Description != "" {
			d.writeParagraph(*e.Description, "", 9)
		}
		d.gap(2)
	}
}

func writeCertifications(d *document, certifications []domain.Certification) {
	if len(certifications) == 0 {
		return
	}
	d.sectionTitle("Certificações")
	for _, c := range certifications {
		d.ensureSpace(2 * lineHeight)
		d.writeLine(c.Name+" - "+c.IssuingOrganization, "B", 10)
		d.writeLine(CertificationDates(c), "I", 9)
		d.gap(1)
	}
}

func writeLanguages(d *document, languages []domain.Language) {
	if len(languages) == 0 {
		return
	}
	d.sectionTitle("Idiomas")
	d.writeParagraph(LanguagesLine(languages), "", 10)
}

// ContactLine joins the non-empty contact fields with " | ".
func ContactLine(profile *domain.Profile) string {
	if profile == nil {
		return ""
	}
	var parts []string
	for _, p := range []string{profile.Email, profile.Phone, profile.Location} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " | ")
}

// SocialLine joins the allowed platforms as "platform: url" entries
// with " | ", in the allow-list's order.
func SocialLine(links []domain.SocialLink) string {
	var parts []string
	for _, platform := range resumePlatforms {
		for _, l := range links {
			if l.Platform == platform && l.URL != "" {
				parts = append(parts, l.Platform+": "+l.URL)
			}
		}
	}
	return strings.Join(parts, " | ")
}

// SkillGroup is one printed skill category.
type SkillGroup struct {
	Category string
	Names    []string
}

// GroupSkills buckets skills by category, keeping first-seen category
// order. Skills without a recognized category land in "Outras".
func GroupSkills(skills []domain.Skill) []SkillGroup {
	var order []string
	byCategory := make(map[string][]string)
	for _, s := range skills {
		category := s.Category
		if !domain.SkillCategory(category).Valid() {
			category = "Outras"
		}
		if _, seen := byCategory[category]; !seen {
			order = append(order, category)
		}
		byCategory[category] = append(byCategory[category], s.Name)
	}

	groups := make([]SkillGroup, 0, len(order))
	for _, category := range order {
		groups = append(groups, SkillGroup{Category: category, Names: byCategory[category]})
	}
	return groups
}

// TechnologiesLine renders the resolved skills of one experience.
func TechnologiesLine(skills []domain.Skill) string {
	if len(skills) == 0 {
		return ""
	}
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}
	return "Tecnologias: " + strings.Join(names, ", ")
}

// CertificationDates renders issue and expiration, dd/mm/yyyy. A
// certification without an expiration date says so explicitly.
func CertificationDates(c domain.Certification) string {
	out := "Emitida em: " + c.IssueDate.Format("02/01/2006")
	if c.ExpirationDate != nil {
		return out + " | Válida até: " + c.ExpirationDate.Format("02/01/2006")
	}
	return out + " | Sem expiração"
}

// LanguagesLine renders "name - proficiency" pairs joined with " | ".
func LanguagesLine(languages []domain.Language) string {
	parts := make([]string, 0, len(languages))
	for _, l := range languages {
		parts = append(parts, l.Name+" - "+l.Proficiency)
	}
	return strings.Join(parts, " | ")
}
