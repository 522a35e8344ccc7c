package web

import "github.com/vaibhavipujari/myportfolio/internal/domain"

// Deps — capability-объекты сервиса: всё инжектится снаружи,
// никаких ambient-синглтонов, в тестах подменяется in-memory фейками.
type Deps struct {
	Users   domain.UsersRepo
	Hasher  domain.PasswordHasher
	Tokens  domain.TokenManager
	Store   domain.ContentStore
	Storage domain.BlobStorage
}
