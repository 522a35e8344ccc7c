package project

import (
	"context"
	"encoding/json"
	"log"

	"github.com/vaibhavipujari/myportfolio/internal/domain"
)

type Handler struct {
	Log   *log.Logger
	Store domain.ContentStore
}

type mutateResponse struct {
	Success bool           `json:"success"`
	Project domain.Project `json:"project"`
}

// Список целиком живёт под одним ключом. Мутации делаются парой get+set:
// одиночные Get/Set у стора атомарны, read-modify-write — нет, так что два
// конкурентных редактора могут потерять чужую запись. На одного
// админа-оператора это осознанно допустимо.

func (h *Handler) load(ctx context.Context) ([]domain.Project, error) {
	b, err := h.Store.Get(ctx, domain.KeyProjects)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return []domain.Project{}, nil
	}
	var list []domain.Project
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (h *Handler) save(ctx context.Context, list []domain.Project) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return h.Store.Set(ctx, domain.KeyProjects, b)
}

// nextID выдаёт уникальный id из монотонного счётчика стора.
// Данные могли быть импортированы со старыми timestamp-id, поэтому
// дополнительно проверяем занятость по текущему списку.
func (h *Handler) nextID(ctx context.Context, list []domain.Project) (int64, error) {
	for {
		id, err := h.Store.Incr(ctx, domain.KeyProjectSeq)
		if err != nil {
			return 0, err
		}
		if indexByID(list, id) == -1 {
			return id, nil
		}
	}
}

func indexByID(list []domain.Project, id int64) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}
