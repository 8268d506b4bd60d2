package entity

import "strings"

// CategoryDetail is the descriptive text shown in the detail modal for a category.
type CategoryDetail struct {
	Title string `json:"title" yaml:"title" toml:"title"`
	Info  string `json:"info" yaml:"info" toml:"info"`
}

// GamificationLevel describes one tier of the gamification ladder.
type GamificationLevel struct {
	Name        string
	Description string
	Color       string
}

// DefaultCategoryDetails retorna a tabela padrão de descrições por categoria.
func DefaultCategoryDetails() map[string]CategoryDetail {
	return map[string]CategoryDetail{
		"Email": {
			Title: "Email",
			Info:  "Carbon emissions from sending, receiving, and storing emails. Lowering attachment size, deleting old emails, and unsubscribing from lists can reduce this.",
		},
		"Online Storage": {
			Title: "Online Storage",
			Info:  "Emissions generated from storing and syncing files on cloud services like Google Drive or Dropbox. Deleting unused files can help lower your impact.",
		},
		"Video Streaming": {
			Title: "Video Streaming",
			Info:  "Streaming video is resource intensive due to server operations and data transfer. Lowering streaming quality and time spent can help reduce this emission.",
		},
	}
}

// GamificationLevels lists the tiers in ascending order of achievement.
var GamificationLevels = []GamificationLevel{
	{
		Name:        "Beginner",
		Description: "You are just starting. Your digital carbon footprint is high, but every small step counts!",
		Color:       "#FF6F61",
	},
	{
		Name:        "Intermediate",
		Description: "Good progress! You are reducing your digital emissions, keep up the momentum.",
		Color:       "#FFA726",
	},
	{
		Name:        "Advanced",
		Description: "Great job! Your actions are significantly helping reduce environmental impact.",
		Color:       "#66BB6A",
	},
	{
		Name:        "Expert",
		Description: "Outstanding! You have optimized your digital habits for minimal carbon footprint.",
		Color:       "#42A5F5",
	},
}

// LevelByName busca um nível pelo nome, sem diferenciar maiúsculas.
func LevelByName(name string) (GamificationLevel, bool) {
	for _, level := range GamificationLevels {
		if strings.EqualFold(level.Name, name) {
			return level, true
		}
	}
	return GamificationLevel{}, false
}

// Tips are the static suggestions shown on the tips view.
var Tips = []string{
	"Email Smart: Bundle your messages to reduce emissions.",
	"Tab Cleanup: Close unused tabs to save energy.",
	"Quality Down: Use 720p streaming to lower carbon footprint.",
	"Cloud Cleanup: Delete old files from your cloud storage.",
	"Search Carefully: Think before clicking to reduce data use.",
	"Turn Off Notifications: Reduce device energy use.",
	"Clear Cache Regularly: Maintain device performance.",
	"Use Power Saving Modes: Put devices to sleep when idle.",
	"Optimize WiFi: Strong connections reduce energy waste.",
	"Download Music: Listen offline to save data.",
	"Delete Duplicate Photos: Reduce cloud storage load.",
	"Be Concise: Shorter messages save resources.",
	"Update Manually: Avoid automatic updates to save energy.",
	"Take Gaming Breaks: Limit gaming time to reduce power draw.",
	"Use Ad Blockers: Block ads to reduce data load.",
}

// AboutSection is a titled block of the about view.
type AboutSection struct {
	Title string
	Body  string
}

// About is the content of the about view.
var About = []AboutSection{
	{
		Title: "What CarbonScope Does",
		Body: "CarbonScope is your personal digital eco-pilot, designed to reveal the invisible environmental impact of your online world. " +
			"We connect to the services you use every day and translate emails, browsing and cloud storage into an estimate of the carbon they emit.",
	},
	{
		Title: "Importance Of CarbonScope",
		Body: "While we focus on physical carbon emissions like those from cars and factories, the digital world's footprint is a hidden giant. " +
			"The servers, data centers and networks behind every click consume energy, and seeing that cost is the first step to reducing it.",
	},
}
