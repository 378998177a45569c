package activity

import "github.com/sujalpowar2903-sys/studenthub123/core"

// Mock data until a review service exists to provide real records.

var seedProfile = Profile{
	Name:      "John Doe",
	Initials:  "JD",
	Program:   "Computer Science",
	StudentID: "CS2024001",
}

var seedStats = []Tile{
	{Key: "gpa", Label: "Current GPA", Value: "3.85", Icon: "trending-up"},
	{Key: "credits", Label: "Credits Earned", Value: "142", Icon: "book-open"},
	{Key: "attendance", Label: "Attendance", Value: "94%", Icon: "target"},
	{Key: "achievements", Label: "Achievements", Value: "12", Icon: "award"},
}

var seedActivities = []Activity{
	{
		ID:          1,
		Title:       "React Development Workshop",
		Category:    "Workshop",
		Date:        "2024-01-15",
		Status:      StatusApproved,
		Description: "Completed advanced React development workshop covering hooks and state management",
	},
	{
		ID:          2,
		Title:       "Community Volunteering Program",
		Category:    "Volunteering",
		Date:        "2024-01-10",
		Status:      StatusPending,
		Description: "Participated in local community service initiative for environmental cleanup",
	},
	{
		ID:          3,
		Title:       "Summer Internship at TechCorp",
		Category:    "Internship",
		Date:        "2024-01-05",
		Status:      StatusApproved,
		Description: "3-month internship program focusing on software development and project management",
	},
}

var seedActions = []Action{
	{Key: "add_achievement", Label: "Add Achievement", Path: core.RouteAddAchievement},
	{Key: "generate_portfolio", Label: "Generate Portfolio", Path: core.RoutePortfolio},
	{Key: "edit_profile", Label: "Edit Profile", Path: core.RouteProfile},
}

var logoutAction = Action{Key: "logout", Label: "Logout", Path: core.RouteLogin}
