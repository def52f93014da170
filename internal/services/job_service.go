package services

import (
	"context"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type JobService interface {
	ListAll(ctx context.Context) ([]dto.JobListing, error)
	ListEntryLevel(ctx context.Context) ([]dto.JobListing, error)
	ListByCity(ctx context.Context, city string) ([]dto.JobListing, error)
	GetByID(ctx context.Context, id string) (*dto.JobDetails, error)
}

type JobServiceImpl struct {
	jobRepo repositories.JobRepository
}

func NewJobService(jobRepo repositories.JobRepository) JobService {
	return &JobServiceImpl{jobRepo: jobRepo}
}

func (s *JobServiceImpl) ListAll(ctx context.Context) ([]dto.JobListing, error) {
	ctx, cancel := withStoreTimeout(ctx)
	defer cancel()

	jobs, err := s.jobRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toListings(jobs), nil
}

func (s *JobServiceImpl) ListEntryLevel(ctx context.Context) ([]dto.JobListing, error) {
	ctx, cancel := withStoreTimeout(ctx)
	defer cancel()

	jobs, err := s.jobRepo.FindEntryLevel(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toListings(jobs), nil
}

func (s *JobServiceImpl) ListByCity(ctx context.Context, city string) ([]dto.JobListing, error) {
	ctx, cancel := withStoreTimeout(ctx)
	defer cancel()

	jobs, err := s.jobRepo.FindByCity(ctx, city)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toListings(jobs), nil
}

func (s *JobServiceImpl) GetByID(ctx context.Context, id string) (*dto.JobDetails, error) {
	ctx, cancel := withStoreTimeout(ctx)
	defer cancel()

	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	details := dto.NewJobDetails(job)
	return &details, nil
}

func toListings(jobs []models.Job) []dto.JobListing {
	listings := []dto.JobListing{}
	for i := range jobs {
		listings = append(listings, dto.NewJobListing(&jobs[i]))
	}
	return listings
}
