package repositories

import (
	"context"
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrSavedJobNotFound = errors.New("job not found in saved jobs")

type SavedJobRepository interface {
	// Add добавляет закладку атомарно; возвращает false, если она уже была.
	Add(ctx context.Context, userID, jobID string) (bool, error)
	Remove(ctx context.Context, userID, jobID string) error
	ListJobIDs(ctx context.Context, userID string) ([]string, error)
	ListJobs(ctx context.Context, userID string) ([]models.Job, error)
}

type SavedJobRepositoryImpl struct {
	db *gorm.DB
}

func NewSavedJobRepository(db *gorm.DB) SavedJobRepository {
	return &SavedJobRepositoryImpl{db: db}
}

// Add выполняет INSERT ... ON CONFLICT DO NOTHING по составному ключу.
// Конкурентные сохранения одной и той же пары не теряют и не дублируют
// записи: исход решает хранилище, а не read-modify-write в приложении.
func (r *SavedJobRepositoryImpl) Add(ctx context.Context, userID, jobID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.SavedJob{UserID: userID, JobID: jobID})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *SavedJobRepositoryImpl) Remove(ctx context.Context, userID, jobID string) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Delete(&models.SavedJob{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrSavedJobNotFound
	}
	return nil
}

func (r *SavedJobRepositoryImpl) ListJobIDs(ctx context.Context, userID string) ([]string, error) {
	ids := []string{}
	err := r.db.WithContext(ctx).
		Model(&models.SavedJob{}).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Pluck("job_id", &ids).Error
	return ids, err
}

// ListJobs раскрывает закладки в полные записи вакансий в порядке добавления.
// INNER JOIN молча отбрасывает закладки на уже удаленные вакансии.
func (r *SavedJobRepositoryImpl) ListJobs(ctx context.Context, userID string) ([]models.Job, error) {
	jobs := []models.Job{}
	err := r.db.WithContext(ctx).
		Model(&models.Job{}).
		Joins("JOIN saved_jobs ON saved_jobs.job_id = jobs.id").
		Where("saved_jobs.user_id = ?", userID).
		Order("saved_jobs.created_at ASC").
		Find(&jobs).Error
	return jobs, err
}
