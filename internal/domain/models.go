package domain

import (
	"time"

	"github.com/google/uuid"
)

// Базовые идентификаторы
type UserID = uuid.UUID

// Пользователь identity-провайдера (учётка админа)
type User struct {
	ID        UserID    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	PassHash  []byte    `json:"-"` // никогда не отдаём наружу
	CreatedAt time.Time `json:"created_at"`
}

// Профиль владельца. Синглтон: ровно одно значение под фиксированным ключом,
// при обновлении перезаписывается целиком (никаких частичных патчей на уровне стора).
type Profile struct {
	Name        string      `json:"name"`
	Role        string      `json:"role"`
	Bio         string      `json:"bio"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	Location    string      `json:"location"`
	SocialLinks SocialLinks `json:"socialLinks"`
	Stats       Stats       `json:"stats"`
}

type SocialLinks struct {
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
	Twitter  string `json:"twitter"`
}

type Stats struct {
	Experience string `json:"experience"`
	Projects   string `json:"projects"`
	Clients    string `json:"clients"`
	Awards     string `json:"awards"`
}

// Проект портфолио. Весь список живёт одним значением под одним ключом;
// id выдаёт сервис при создании (монотонный счётчик стора).
type Project struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
	Link        string   `json:"link"`
	GitHub      string   `json:"github"`
	Details     string   `json:"details"`
}

// Навык. Диапазон level 0..100 подразумевается, но не форсируется —
// ответственность клиента.
type Skill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}
