package repositories

import (
	"context"
	"strings"
	"sync"

	"jobboard_backend/internal/models"

	"github.com/google/uuid"
)

/*
In-memory реализации репозиториев. Используются в unit-тестах сервисов и
хэндлеров вместо Postgres; контракты (сигнальные ошибки, идемпотентность
Add, порядок выдачи, отбрасывание висячих ссылок) повторяют gorm-реализации.
*/

type FakeUserRepository struct {
	mu    sync.Mutex
	users map[string]*models.User // id -> user
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{users: make(map[string]*models.User)}
}

func (r *FakeUserRepository) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == user.Username {
			return ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *FakeUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *FakeUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Username == username {
			clone := *user
			return &clone, nil
		}
	}
	return nil, ErrUserNotFound
}

type FakeJobRepository struct {
	mu   sync.Mutex
	jobs map[string]*models.Job
	ids  []string // порядок вставки
}

func NewFakeJobRepository() *FakeJobRepository {
	return &FakeJobRepository{jobs: make(map[string]*models.Job)}
}

// Put добавляет вакансию напрямую (test fixture).
func (r *FakeJobRepository) Put(job *models.Job) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if _, ok := r.jobs[job.ID]; !ok {
		r.ids = append(r.ids, job.ID)
	}
	clone := *job
	r.jobs[job.ID] = &clone
}

// Delete удаляет вакансию напрямую (моделирует внешнее удаление).
func (r *FakeJobRepository) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.jobs, id)
}

func (r *FakeJobRepository) FindByID(ctx context.Context, id string) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[id]
	if !ok {
		return nil, ErrJobNotFound
	}
	clone := *job
	return &clone, nil
}

func (r *FakeJobRepository) FindAll(ctx context.Context) ([]models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	jobs := []models.Job{}
	for _, id := range r.ids {
		if job, ok := r.jobs[id]; ok {
			jobs = append(jobs, *job)
		}
	}
	return jobs, nil
}

func (r *FakeJobRepository) FindEntryLevel(ctx context.Context) ([]models.Job, error) {
	all, _ := r.FindAll(ctx)
	jobs := []models.Job{}
	for _, job := range all {
		if job.SkillLevel == models.SkillLevelEntry {
			jobs = append(jobs, job)
		}
	}
	return jobs, nil
}

func (r *FakeJobRepository) FindByCity(ctx context.Context, city string) ([]models.Job, error) {
	all, _ := r.FindAll(ctx)
	jobs := []models.Job{}
	for _, job := range all {
		if containsFold(job.City, city) {
			jobs = append(jobs, job)
		}
	}
	return jobs, nil
}

func (r *FakeJobRepository) Exists(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.jobs[id]
	return ok, nil
}

type savedPair struct {
	userID string
	jobID  string
}

type FakeSavedJobRepository struct {
	mu   sync.Mutex
	rows []savedPair
	jobs *FakeJobRepository
}

func NewFakeSavedJobRepository(jobs *FakeJobRepository) *FakeSavedJobRepository {
	return &FakeSavedJobRepository{jobs: jobs}
}

func (r *FakeSavedJobRepository) Add(ctx context.Context, userID, jobID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range r.rows {
		if row.userID == userID && row.jobID == jobID {
			return false, nil
		}
	}
	r.rows = append(r.rows, savedPair{userID: userID, jobID: jobID})
	return true, nil
}

func (r *FakeSavedJobRepository) Remove(ctx context.Context, userID, jobID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, row := range r.rows {
		if row.userID == userID && row.jobID == jobID {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return ErrSavedJobNotFound
}

func (r *FakeSavedJobRepository) ListJobIDs(ctx context.Context, userID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := []string{}
	for _, row := range r.rows {
		if row.userID == userID {
			ids = append(ids, row.jobID)
		}
	}
	return ids, nil
}

func (r *FakeSavedJobRepository) ListJobs(ctx context.Context, userID string) ([]models.Job, error) {
	ids, _ := r.ListJobIDs(ctx, userID)

	jobs := []models.Job{}
	for _, id := range ids {
		job, err := r.jobs.FindByID(ctx, id)
		if err != nil {
			// Висячая ссылка: вакансия удалена, закладка молча пропускается
			continue
		}
		jobs = append(jobs, *job)
	}
	return jobs, nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
