// Package entity defines the domain entities for the stats feature.
package entity

// Overview holds the college-wide entity counts shown on the dashboard.
type Overview struct {
	Courses  int64 `json:"courses"`
	Subjects int64 `json:"subjects"`
	Teachers int64 `json:"teachers"`
	Students int64 `json:"students"`
	Admins   int64 `json:"admins"`
}

// AttendanceSummary is one student's attendance tally.
type AttendanceSummary struct {
	// Attended counts the days the student was marked present.
	Attended int64 `json:"attended"`
	// Recorded counts every attendance record for the student.
	Recorded int64 `json:"recorded"`
}
