package domain

import "regexp"

// Мини-валидация для signup; остальной контент сервис принимает как есть
// (форму payload'а определяет владелец).
var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// Пароль: минимум 6 символов, без требований к составу.
func ValidPassword(s string) bool {
	return len(s) >= 6
}
