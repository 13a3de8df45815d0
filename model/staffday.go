package model

const (
	StaffNone  string = "none"
	StaffHarry string = "harry"
	StaffBoth  string = "both"
)

// StaffDay records which guides are on duty for a calendar date.
// A record with "both" or "harry" staffs guided tours for that day.
type StaffDay struct {
	Date           string `json:"date"`
	StaffAvailable string `json:"staff_available"`
}
