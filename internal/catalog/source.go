package catalog

import (
	"context"
	"errors"

	"github.com/campushub/reservation-platform/internal/model"
)

var ErrNotFound = errors.New("resource not found")

// Filter — нетемпоральные критерии отбора ресурсов. Нулевые значения
// означают "без ограничения".
type Filter struct {
	Category    model.ResourceCategory
	Building    string // код корпуса
	MinCapacity int
}

// ResourceSource — источник каталога ресурсов. Две реализации: персистентная
// (GormSource) и статическая (StaticSource); выбор между ними делает
// FallbackSource, а не вызывающий код. Семантика фильтра у обеих обязана
// совпадать, чтобы вызывающий не видел, кто именно ответил.
type ResourceSource interface {
	// ListResources возвращает доступные ресурсы, прошедшие фильтр.
	ListResources(ctx context.Context, f Filter) ([]model.Resource, error)
	// GetByName ищет ресурс по паре (категория, имя).
	GetByName(ctx context.Context, category model.ResourceCategory, name string) (*model.Resource, error)
}

// matches применяет семантику фильтра к одному ресурсу. Используется
// статическим источником; персистентный выражает те же условия в SQL.
func matches(r *model.Resource, f Filter, buildingCode string) bool {
	if !r.IsAvailable {
		return false
	}
	if f.Category != "" && r.Category != f.Category {
		return false
	}
	if f.Building != "" && buildingCode != f.Building {
		return false
	}
	if f.MinCapacity > 0 && r.CapacityUnits < f.MinCapacity {
		return false
	}
	return true
}
