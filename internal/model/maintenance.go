package model

// DateLayout renders scheduled dates as "April 15, 2025".
const DateLayout = "January 2, 2006"

// MaxIssueSubjectLength bounds the task title taken from a request.
const MaxIssueSubjectLength = 200

// Maintenance item types.
const (
	MaintenanceTypeRegular    = "Regular"
	MaintenanceTypeInspection = "Inspection"
	MaintenanceTypeRepair     = "Repair"
	MaintenanceTypeEmergency  = "Emergency"
)

// Maintenance item statuses. All lower case.
const (
	MaintenanceStatusScheduled    = "scheduled"
	MaintenanceStatusPendingParts = "pending parts"
	MaintenanceStatusCompleted    = "completed"
	MaintenanceStatusResolved     = "resolved"
)

// MaintenanceItem is one entry on the upcoming maintenance board.
type MaintenanceItem struct {
	Type   string `json:"type"`
	Task   string `json:"task"`
	Date   string `json:"date"`
	Status string `json:"status"`
}

// MaintenanceRequest is the JSON body of POST /api/maintenance.
// Only IssueSubject is required; the rest are informational.
type MaintenanceRequest struct {
	IssueSubject     string `json:"issueSubject"`
	IssueType        string `json:"issueType,omitempty"`
	IssueLocation    string `json:"issueLocation,omitempty"`
	IssueDescription string `json:"issueDescription,omitempty"`
}

// SeedMaintenance returns the demonstration items a fresh store starts with.
func SeedMaintenance() []MaintenanceItem {
	return []MaintenanceItem{
		{
			Type:   MaintenanceTypeRegular,
			Task:   "Building Exterior Cleaning",
			Date:   "April 15, 2025",
			Status: MaintenanceStatusScheduled,
		},
		{
			Type:   MaintenanceTypeInspection,
			Task:   "Fire Safety Equipment Check",
			Date:   "April 22, 2025",
			Status: MaintenanceStatusScheduled,
		},
		{
			Type:   MaintenanceTypeRepair,
			Task:   "Lobby Lighting Replacement",
			Date:   "April 28, 2025",
			Status: MaintenanceStatusPendingParts,
		},
	}
}
