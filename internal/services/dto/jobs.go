package dto

import (
	"strings"

	"jobboard_backend/internal/models"
)

// JobLocation / JobEmployment / JobListing повторяют внешний формат выдачи:
// краткая карточка для списков, полная - для деталей и сохраненных вакансий.

type JobLocation struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

type JobEmployment struct {
	Type          string `json:"type"`
	Mode          string `json:"mode"`
	Level         string `json:"level"`
	MinExperience int    `json:"minExperience,omitempty"`
}

type JobListing struct {
	ID         string        `json:"id"`
	Company    string        `json:"company"`
	Role       string        `json:"role"`
	Location   JobLocation   `json:"location"`
	Employment JobEmployment `json:"employment"`
}

type JobURLs struct {
	Linkedin    string `json:"linkedin"`
	Alternative string `json:"alternative"`
}

type JobDescription struct {
	Summary          string   `json:"summary"`
	Responsibilities []string `json:"responsibilities"`
	Requirements     string   `json:"requirements"`
}

type JobSkills struct {
	Required     []string `json:"required"`
	Languages    []string `json:"languages"`
	Technologies []string `json:"technologies"`
}

type JobDetails struct {
	ID          string         `json:"id"`
	Company     string         `json:"company"`
	Role        string         `json:"role"`
	Location    JobLocation    `json:"location"`
	URLs        JobURLs        `json:"urls"`
	Employment  JobEmployment  `json:"employment"`
	Description JobDescription `json:"description"`
	Skills      JobSkills      `json:"skills"`
}

func NewJobListing(job *models.Job) JobListing {
	return JobListing{
		ID:      job.ID,
		Company: job.Company,
		Role:    job.Role,
		Location: JobLocation{
			City:    job.City,
			Country: job.Country,
		},
		Employment: JobEmployment{
			Type:  job.EmploymentType,
			Mode:  job.Onsite,
			Level: job.SkillLevel,
		},
	}
}

func NewJobDetails(job *models.Job) JobDetails {
	return JobDetails{
		ID:      job.ID,
		Company: job.Company,
		Role:    job.Role,
		Location: JobLocation{
			City:    job.City,
			Country: job.Country,
		},
		URLs: JobURLs{
			Linkedin:    job.LinkedinURL,
			Alternative: job.AlternativeURL,
		},
		Employment: JobEmployment{
			Type:          job.EmploymentType,
			Mode:          job.Onsite,
			Level:         job.SkillLevel,
			MinExperience: job.MinimumYearsOfExperience,
		},
		Description: JobDescription{
			Summary:          job.JobDescription,
			Responsibilities: splitList(job.KeyResponsibilities, ";"),
			Requirements:     job.EducationalRequirements,
		},
		Skills: JobSkills{
			Required:     splitList(job.PreferredSkills, ";"),
			Languages:    splitList(job.Languages, ","),
			Technologies: splitList(job.TechnologiesMentioned, ","),
		},
	}
}

// splitList разбивает строку с разделителями в список, отбрасывая пустые
// элементы. Пустая строка дает пустой список, а не [""].
func splitList(s, sep string) []string {
	items := []string{}
	for _, part := range strings.Split(s, sep) {
		part = strings.TrimSpace(part)
		if part != "" {
			items = append(items, part)
		}
	}
	return items
}
