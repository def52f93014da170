package repositories

import (
	"context"
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	FindByID(ctx context.Context, id string) (*models.Job, error)
	FindAll(ctx context.Context) ([]models.Job, error)
	FindEntryLevel(ctx context.Context) ([]models.Job, error)
	FindByCity(ctx context.Context, city string) ([]models.Job, error)
	Exists(ctx context.Context, id string) (bool, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindAll(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.WithContext(ctx).Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) FindEntryLevel(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.WithContext(ctx).
		Where("skill_level = ?", models.SkillLevelEntry).
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) FindByCity(ctx context.Context, city string) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.WithContext(ctx).
		Where("city ILIKE ?", "%"+city+"%").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Job{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}
