package dto

import (
	"testing"

	"jobboard_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestNewJobDetails_SplitsDelimitedFields(t *testing.T) {
	t.Parallel()

	job := &models.Job{
		KeyResponsibilities:   "Design APIs; Review code ;Mentor juniors",
		PreferredSkills:       "Go;Postgres",
		Languages:             "English, German",
		TechnologiesMentioned: "Docker,Kubernetes",
	}

	details := NewJobDetails(job)

	assert.Equal(t, []string{"Design APIs", "Review code", "Mentor juniors"}, details.Description.Responsibilities)
	assert.Equal(t, []string{"Go", "Postgres"}, details.Skills.Required)
	assert.Equal(t, []string{"English", "German"}, details.Skills.Languages)
	assert.Equal(t, []string{"Docker", "Kubernetes"}, details.Skills.Technologies)
}

func TestNewJobDetails_EmptyFields(t *testing.T) {
	t.Parallel()

	// Пустая строка дает пустой список, а не [""]
	details := NewJobDetails(&models.Job{})

	assert.Empty(t, details.Description.Responsibilities)
	assert.Empty(t, details.Skills.Required)
	assert.Empty(t, details.Skills.Languages)
	assert.Empty(t, details.Skills.Technologies)
}

func TestNewJobListing_Shape(t *testing.T) {
	t.Parallel()

	job := &models.Job{
		Company:        "Acme",
		Role:           "Engineer",
		City:           "Berlin",
		Country:        "Germany",
		EmploymentType: "Full-time",
		Onsite:         "Hybrid",
		SkillLevel:     "Senior",
	}
	job.ID = "id-1"

	listing := NewJobListing(job)

	assert.Equal(t, "id-1", listing.ID)
	assert.Equal(t, "Berlin", listing.Location.City)
	assert.Equal(t, "Germany", listing.Location.Country)
	assert.Equal(t, "Full-time", listing.Employment.Type)
	assert.Equal(t, "Hybrid", listing.Employment.Mode)
	assert.Equal(t, "Senior", listing.Employment.Level)
}
