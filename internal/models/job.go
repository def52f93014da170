package models

// Job - объявление о вакансии. Списочные поля хранятся как строки
// с разделителями (';' и ',') и разбиваются только при чтении.
type Job struct {
	BaseModel
	Company        string
	Role           string
	Country        string
	City           string
	LinkedinURL    string
	AlternativeURL string

	EmploymentType string
	Onsite         string
	SkillLevel     string

	MinimumYearsOfExperience int

	JobDescription          string `gorm:"type:text"`
	KeyResponsibilities     string `gorm:"type:text"` // ';'-separated
	PreferredSkills         string `gorm:"type:text"` // ';'-separated
	Languages               string // ','-separated
	TechnologiesMentioned   string `gorm:"type:text"` // ','-separated
	EducationalRequirements string `gorm:"type:text"`
}

const SkillLevelEntry = "Entry-Level"
