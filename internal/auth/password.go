package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword создает bcrypt хеш пароля.
// Перед хешированием к паролю добавляется статический pepper,
// соль генерируется bcrypt'ом на каждый вызов.
func HashPassword(password, pepper string, cost int) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password+pepper), cost)
	return string(bytes), err
}

// CheckPasswordHash проверяет пароль против хеша.
// Сравнение выполняется bcrypt'ом за константное время.
func CheckPasswordHash(password, pepper, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password+pepper))
	return err == nil
}
