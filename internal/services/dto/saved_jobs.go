package dto

type SaveJobResponse struct {
	Success   bool     `json:"success"`
	Message   string   `json:"message"`
	SavedJobs []string `json:"savedJobs"`
}

type SavedJobsResponse struct {
	Success bool         `json:"success"`
	Jobs    []JobDetails `json:"jobs"`
}

type RemoveJobResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
