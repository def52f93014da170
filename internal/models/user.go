package models

type User struct {
	BaseModel
	// Уникальность username гарантирует индекс в хранилище:
	// дубликат регистрации падает на INSERT, а не на предварительной проверке
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null" json:"-"`

	// Relations
	SavedJobs []SavedJob `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
