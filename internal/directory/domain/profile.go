package domain

import "time"

// StudentProfile is the directory entry for a student. When the profile
// belongs to a registered user its ID equals the user id; sample rows
// seeded without credentials carry their own ids.
type StudentProfile struct {
	ID             string
	Name           string
	Email          string
	GraduationYear int
	Department     string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AlumniProfile is the directory entry for an alumnus. Company, Position
// and Achievements are self-editable by the owning alumnus; Notable is
// administrative and never self-editable.
type AlumniProfile struct {
	ID             string
	Name           string
	Email          string
	GraduationYear int
	Department     string
	Company        string
	Position       string
	Achievements   []string // ordered, edited by index
	Notable        bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
