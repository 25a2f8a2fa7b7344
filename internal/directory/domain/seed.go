package domain

import "time"

// SeedData describes the demo dataset written on first boot. Users are
// created with a profile derived from their role; Students, Alumni and
// Events are standalone sample rows with no credential behind them.
type SeedData struct {
	Users    []SeedUser
	Students []StudentProfile
	Alumni   []AlumniProfile
	Events   []Event
}

// SeedUser is a demo credential plus the profile attributes for its role.
// Password is plaintext here and hashed at seed time.
type SeedUser struct {
	Name     string
	Email    string
	Password string
	Role     Role

	GraduationYear int
	Department     string
	Company        string
	Position       string
	Achievements   []string
	Notable        bool
}

// DefaultSeedData returns the stock demo dataset: one credential per role
// (password "password") and a handful of sample directory rows.
func DefaultSeedData() SeedData {
	return SeedData{
		Users: []SeedUser{
			{
				Name:     "Department Admin",
				Email:    "admin@university.edu",
				Password: "password",
				Role:     RoleDepartment,
			},
			{
				Name:           "Student User",
				Email:          "student@university.edu",
				Password:       "password",
				Role:           RoleStudent,
				GraduationYear: 2026,
				Department:     "Computer Science",
			},
			{
				Name:           "Alumni User",
				Email:          "alumni@university.edu",
				Password:       "password",
				Role:           RoleAlumni,
				GraduationYear: 2020,
				Department:     "Computer Science",
				Company:        "Google",
				Position:       "Software Engineer",
				Achievements:   []string{"Published research paper", "Led major project"},
				Notable:        true,
			},
		},
		Students: []StudentProfile{
			{
				Name:           "Emily Johnson",
				Email:          "emily.johnson@university.edu",
				GraduationYear: 2024,
				Department:     "Engineering",
			},
			{
				Name:           "Michael Brown",
				Email:          "michael.brown@university.edu",
				GraduationYear: 2026,
				Department:     "Business",
			},
		},
		Alumni: []AlumniProfile{
			{
				Name:           "David Martinez",
				Email:          "david.martinez@outlook.com",
				GraduationYear: 2018,
				Department:     "Engineering",
				Company:        "Tesla",
				Position:       "Product Manager",
			},
			{
				Name:           "Jennifer Lee",
				Email:          "jennifer.lee@yahoo.com",
				GraduationYear: 2015,
				Department:     "Business",
				Company:        "Amazon",
				Position:       "Marketing Director",
				Achievements:   []string{"MBA from Harvard", "Founded startup"},
				Notable:        true,
			},
		},
		Events: []Event{
			{
				Title:       "Annual Alumni Reunion",
				Description: "Join us for the annual alumni reunion and networking event.",
				Date:        time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
				Location:    "University Main Campus",
			},
			{
				Title:       "Career Workshop",
				Description: "Workshop on career opportunities in tech industry.",
				Date:        time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC),
				Location:    "Virtual Event",
			},
		},
	}
}
