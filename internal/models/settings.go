package models

// Settings represents application-wide settings
type Settings struct {
	// Timezone is the IANA timezone name used to determine "today"
	// (e.g. "America/New_York", or "Local" for the system timezone).
	Timezone string `json:"timezone"`
}
