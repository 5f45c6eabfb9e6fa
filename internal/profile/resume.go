package profile

import (
	"regexp"
	"strconv"
	"strings"
)

// skillKeywords maps resume keywords to the primary skill they indicate.
// First match in scan order wins.
var skillKeywords = []struct {
	keyword string
	skill   string
}{
	{"machine learning", "machine learning"},
	{"data scien", "data science"},
	{"kubernetes", "infrastructure engineering"},
	{"devops", "infrastructure engineering"},
	{"terraform", "infrastructure engineering"},
	{"react", "frontend development"},
	{"frontend", "frontend development"},
	{"ui/ux", "product design"},
	{"figma", "product design"},
	{"product management", "product management"},
	{"golang", "backend development"},
	{"python", "backend development"},
	{"java", "backend development"},
	{"sql", "data engineering"},
}

var (
	yearsPattern       = regexp.MustCompile(`(?i)(\d{1,2})\+?\s*years?\s+(?:of\s+)?experience`)
	leadershipPattern  = regexp.MustCompile(`(?i)\b(led|managed|mentored|supervised|directed)\b`)
	certPattern        = regexp.MustCompile(`(?i)\b(certified\s+[A-Za-z0-9 -]+?|AWS\s+[A-Za-z ]*certif\w*|PMP|CISSP|CKA)\b`)
	achievementPattern = regexp.MustCompile(`(?i)^.*\b(increased|reduced|improved|saved|grew|delivered|launched)\b.*\d+.*$`)
)

// ParseResume extracts a candidate profile from plain resume text. Extraction
// is heuristic; any field the text does not reveal keeps its default.
func ParseResume(text string) Profile {
	p := Default()
	lower := strings.ToLower(text)

	if m := yearsPattern.FindStringSubmatch(text); m != nil {
		if years, err := strconv.Atoi(m[1]); err == nil && years > 0 && years < 60 {
			p.YearsExperience = years
		}
	}

	for _, entry := range skillKeywords {
		if strings.Contains(lower, entry.keyword) {
			p.PrimarySkill = entry.skill
			break
		}
	}

	p.LeadershipExperience = leadershipPattern.MatchString(text)

	if certs := certPattern.FindAllString(text, 3); len(certs) > 0 {
		p.Certifications = certs
	}

	switch {
	case strings.Contains(lower, "phd") || strings.Contains(lower, "doctorate"):
		p.EducationLevel = "PhD"
	case strings.Contains(lower, "master"):
		p.EducationLevel = "Masters"
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "-*• \t"))
		if achievementPattern.MatchString(line) {
			p.KeyAchievement = line
			break
		}
	}

	return p
}
