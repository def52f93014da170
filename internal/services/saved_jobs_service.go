package services

import (
	"context"

	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"github.com/google/uuid"
)

type SavedJobsService interface {
	Save(ctx context.Context, userID, jobID string) (*dto.SaveJobResponse, error)
	List(ctx context.Context, userID string) (*dto.SavedJobsResponse, error)
	Remove(ctx context.Context, userID, jobID string) (*dto.RemoveJobResponse, error)
}

type SavedJobsServiceImpl struct {
	userRepo  repositories.UserRepository
	jobRepo   repositories.JobRepository
	savedRepo repositories.SavedJobRepository
}

func NewSavedJobsService(
	userRepo repositories.UserRepository,
	jobRepo repositories.JobRepository,
	savedRepo repositories.SavedJobRepository,
) SavedJobsService {
	return &SavedJobsServiceImpl{
		userRepo:  userRepo,
		jobRepo:   jobRepo,
		savedRepo: savedRepo,
	}
}

// Save - добавление вакансии в закладки. Идемпотентна: повторное
// сохранение возвращает успех с неизменным списком.
func (s *SavedJobsServiceImpl) Save(ctx context.Context, userID, jobID string) (*dto.SaveJobResponse, error) {
	ctx, cancel := withStoreTimeout(ctx)
	defer cancel()

	if !validID(userID) || !validID(jobID) {
		return nil, apperrors.ErrInvalidIDFormat
	}

	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserOrJobMissing
		}
		return nil, apperrors.InternalError(err)
	}

	exists, err := s.jobRepo.Exists(ctx, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !exists {
		return nil, apperrors.ErrUserOrJobMissing
	}

	added, err := s.savedRepo.Add(ctx, userID, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	savedJobs, err := s.savedRepo.ListJobIDs(ctx, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	message := "Job saved successfully"
	if !added {
		message = "Job already saved"
	}

	return &dto.SaveJobResponse{
		Success:   true,
		Message:   message,
		SavedJobs: savedJobs,
	}, nil
}

// List - выдача сохраненных вакансий в порядке добавления.
// Закладки на удаленные вакансии молча выпадают из результата.
func (s *SavedJobsServiceImpl) List(ctx context.Context, userID string) (*dto.SavedJobsResponse, error) {
	ctx, cancel := withStoreTimeout(ctx)
	defer cancel()

	if !validID(userID) {
		return nil, apperrors.ErrInvalidIDFormat
	}

	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrSavedUserMissing
		}
		return nil, apperrors.InternalError(err)
	}

	jobs, err := s.savedRepo.ListJobs(ctx, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	details := []dto.JobDetails{}
	for i := range jobs {
		details = append(details, dto.NewJobDetails(&jobs[i]))
	}

	return &dto.SavedJobsResponse{
		Success: true,
		Jobs:    details,
	}, nil
}

// Remove - удаление вакансии из закладок.
// Отсутствие закладки - это ошибка, в отличие от идемпотентного Save.
func (s *SavedJobsServiceImpl) Remove(ctx context.Context, userID, jobID string) (*dto.RemoveJobResponse, error) {
	ctx, cancel := withStoreTimeout(ctx)
	defer cancel()

	if !validID(userID) || !validID(jobID) {
		return nil, apperrors.ErrInvalidIDFormat
	}

	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrSavedUserMissing
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.savedRepo.Remove(ctx, userID, jobID); err != nil {
		if apperrors.Is(err, repositories.ErrSavedJobNotFound) {
			return nil, apperrors.ErrJobNotSaved
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.RemoveJobResponse{
		Success: true,
		Message: "Job removed from saved jobs",
	}, nil
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
