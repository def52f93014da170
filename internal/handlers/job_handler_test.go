package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"jobboard_backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedJobs(ts *testServer) (berlinID, remoteID string) {
	berlinID = ts.putJob(&models.Job{
		Company:                  "Acme",
		Role:                     "Backend Engineer",
		Country:                  "Germany",
		City:                     "Berlin",
		LinkedinURL:              "https://linkedin.example/1",
		EmploymentType:           "Full-time",
		Onsite:                   "Hybrid",
		SkillLevel:               "Senior",
		MinimumYearsOfExperience: 5,
		JobDescription:           "Build the backend.",
		KeyResponsibilities:      "Design APIs; Review code; Mentor juniors",
		PreferredSkills:          "Go; Postgres",
		Languages:                "English, German",
		TechnologiesMentioned:    "Docker, Kubernetes",
		EducationalRequirements:  "BSc or equivalent",
	})
	remoteID = ts.putJob(&models.Job{
		Company:    "Globex",
		Role:       "Junior Developer",
		Country:    "Spain",
		City:       "Madrid",
		SkillLevel: models.SkillLevelEntry,
	})
	return berlinID, remoteID
}

type listingsResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
	Jobs    []struct {
		ID       string `json:"id"`
		Company  string `json:"company"`
		Role     string `json:"role"`
		Location struct {
			City    string `json:"city"`
			Country string `json:"country"`
		} `json:"location"`
	} `json:"jobs"`
}

// TestJobs_List - все вакансии в кратком формате
func TestJobs_List(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	seedJobs(ts)

	res, body := ts.sendRequest(t, "GET", "/jobs", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var resp listingsResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Jobs, 2)
	assert.Equal(t, "Acme", resp.Jobs[0].Company)
	// Краткая карточка не содержит описания
	assert.NotContains(t, body, "Build the backend.")
}

// TestJobs_EntryLevel - фильтр по уровню
func TestJobs_EntryLevel(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	_, entryID := seedJobs(ts)

	res, body := ts.sendRequest(t, "GET", "/jobs/entry-level", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var resp listingsResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Jobs, 1)
	assert.Equal(t, entryID, resp.Jobs[0].ID)
}

// TestJobs_ByCity - регистронезависимый поиск по городу
func TestJobs_ByCity(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	berlinID, _ := seedJobs(ts)

	res, body := ts.sendRequest(t, "GET", "/jobs/city/berlin", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var resp listingsResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Jobs, 1)
	assert.Equal(t, berlinID, resp.Jobs[0].ID)
}

// TestJobs_Details - полная карточка со списками, разобранными из строк
func TestJobs_Details(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	berlinID, _ := seedJobs(ts)

	res, body := ts.sendRequest(t, "GET", "/jobs/"+berlinID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var resp struct {
		Success bool `json:"success"`
		Job     struct {
			ID   string `json:"id"`
			URLs struct {
				Linkedin string `json:"linkedin"`
			} `json:"urls"`
			Employment struct {
				MinExperience int `json:"minExperience"`
			} `json:"employment"`
			Description struct {
				Responsibilities []string `json:"responsibilities"`
			} `json:"description"`
			Skills struct {
				Required     []string `json:"required"`
				Languages    []string `json:"languages"`
				Technologies []string `json:"technologies"`
			} `json:"skills"`
		} `json:"job"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	assert.Equal(t, berlinID, resp.Job.ID)
	assert.Equal(t, "https://linkedin.example/1", resp.Job.URLs.Linkedin)
	assert.Equal(t, 5, resp.Job.Employment.MinExperience)
	assert.Equal(t, []string{"Design APIs", "Review code", "Mentor juniors"}, resp.Job.Description.Responsibilities)
	assert.Equal(t, []string{"Go", "Postgres"}, resp.Job.Skills.Required)
	assert.Equal(t, []string{"English", "German"}, resp.Job.Skills.Languages)
	assert.Equal(t, []string{"Docker", "Kubernetes"}, resp.Job.Skills.Technologies)
}

// TestJobs_DetailsNotFound
func TestJobs_DetailsNotFound(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	seedJobs(ts)

	res, body := ts.sendRequest(t, "GET", "/jobs/"+uuid.NewString(), "", nil)

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, body, "Job not found")
}
