package apperrors

import "net/http"

/*
Предопределенные доменные ошибки аутентификации и сохраненных вакансий.
HTTP-коды повторяют контракт внешнего API: ошибки входа отдаются как 400,
отсутствие пользователя/вакансии на защищенных маршрутах - как 404.
*/

// ErrUsernameTaken - имя пользователя уже занято
var ErrUsernameTaken = New(
	CodeAlreadyExists,
	"auth",
	"Username already exists",
	http.StatusBadRequest,
)

// ErrUserNotFound - пользователь с таким именем не найден (вход)
var ErrUserNotFound = New(
	CodeNotFound,
	"auth",
	"User not found",
	http.StatusBadRequest,
)

// ErrInvalidPassword - пароль не совпал с хешем
var ErrInvalidPassword = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid password",
	http.StatusBadRequest,
)

// ErrInvalidIDFormat - идентификатор не является валидным UUID
var ErrInvalidIDFormat = New(
	CodeValidationFailed,
	"validation",
	"Invalid ID format",
	http.StatusBadRequest,
)

// ErrUserOrJobMissing - пользователь или вакансия не существуют
var ErrUserOrJobMissing = New(
	CodeNotFound,
	"saved_jobs",
	"User or job not found",
	http.StatusNotFound,
)

// ErrSavedUserMissing - пользователь из токена не существует
var ErrSavedUserMissing = New(
	CodeNotFound,
	"saved_jobs",
	"User not found",
	http.StatusNotFound,
)

// ErrJobNotSaved - вакансии нет в списке сохраненных
var ErrJobNotSaved = New(
	CodeNotFound,
	"saved_jobs",
	"Job not found in saved jobs",
	http.StatusNotFound,
)

// ErrJobNotFound - вакансия не найдена
var ErrJobNotFound = New(
	CodeNotFound,
	"jobs",
	"Job not found",
	http.StatusNotFound,
)
