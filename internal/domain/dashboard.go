package domain

import "context"

// Threshold colors shared by the completion gauge and the ATS score.
const (
	ColorGreen  = "#4CAF50"
	ColorOrange = "#FF9800"
	ColorRed    = "#F44336"
)

// TierColor maps a 0-100 value onto the three-tier classification:
// >=80 green, >=60 orange, otherwise red.
func TierColor(value int) string {
	switch {
	case value >= 80:
		return ColorGreen
	case value >= 60:
		return ColorOrange
	default:
		return ColorRed
	}
}

type Dashboard struct {
	ProfileSummary ProfileSummary `json:"profileSummary"`
	Statistics     Statistics     `json:"statistics"`
	QuickActions   []QuickAction  `json:"quickActions"`
	RecentActivity RecentActivity `json:"recentActivity"`
	AtsScore       AtsScore       `json:"atsScore"`
}

type ProfileSummary struct {
	FullName            string `json:"fullName"`
	ProfessionalTitle   string `json:"professionalTitle"`
	Location            string `json:"location"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	ProfessionalSummary string `json:"professionalSummary"`
	ProfileCompletion   int    `json:"profileCompletion"`
	CompletionColor     string `json:"completionColor"`
}

type Statistics struct {
	TotalExperiences    int `json:"totalExperiences"`
	TotalSkills         int `json:"totalSkills"`
	TotalEducations     int `json:"totalEducations"`
	TotalCertifications int `json:"totalCertifications"`
	TotalLanguages      int `json:"totalLanguages"`
	CurrentExperiences  int `json:"currentExperiences"`
	SkillsByCategory    int `json:"skillsByCategory"`
}

type QuickAction struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
	Icon        string `json:"icon"`
	Priority    int    `json:"priority"`
}

type RecentActivity struct {
	Activities []Activity `json:"activities"`
}

type Activity struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Date        string `json:"date"`
	EntityID    string `json:"entityId"`
}

type AtsScore struct {
	Score       int      `json:"score"`
	Level       string   `json:"level"`
	Color       string   `json:"color"`
	Suggestions []string `json:"suggestions"`
}

type DashboardUsecase interface {
	GetDashboard(ctx context.Context) (*Dashboard, error)
	GetProfileCompletion(ctx context.Context) (int, error)
	GetAtsScore(ctx context.Context) (*AtsScore, error)
}
