package models

import "time"

// SavedJob - закладка пользователя на вакансию.
// Составной первичный ключ исключает дубликаты на уровне хранилища,
// CreatedAt сохраняет порядок добавления для выдачи списка.
type SavedJob struct {
	UserID    string    `gorm:"type:uuid;primaryKey"`
	JobID     string    `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"default:now()"`
}
