package catalog

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/campushub/reservation-platform/internal/model"
)

// DefaultPrimaryTimeout ограничивает ожидание ответа первичного источника,
// чтобы деградация в статический каталог не блокировала чтение.
const DefaultPrimaryTimeout = 2 * time.Second

// FallbackSource оборачивает первичный источник резервным. Переключение на
// резервный происходит, если первичный вернул ошибку, не уложился в таймаут
// или отдал ноль строк по заданному фильтру. Политика выбора источника
// целиком живёт здесь, а не размазана по вызывающему коду.
//
// Деградированный режим затрагивает только чтение: путь записи заново
// проверяет конфликты в персистентном хранилище и при его недоступности
// падает жёстко.
type FallbackSource struct {
	primary  ResourceSource
	fallback ResourceSource
	timeout  time.Duration
}

func NewFallbackSource(primary, fallback ResourceSource, timeout time.Duration) *FallbackSource {
	if timeout <= 0 {
		timeout = DefaultPrimaryTimeout
	}
	return &FallbackSource{primary: primary, fallback: fallback, timeout: timeout}
}

func (s *FallbackSource) ListResources(ctx context.Context, f Filter) ([]model.Resource, error) {
	pctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resources, err := s.primary.ListResources(pctx, f)
	if err != nil {
		log.Printf("catalog: primary source failed, serving static fallback: %v", err)
		return s.fallback.ListResources(ctx, f)
	}
	if len(resources) == 0 {
		return s.fallback.ListResources(ctx, f)
	}
	return resources, nil
}

func (s *FallbackSource) GetByName(ctx context.Context, category model.ResourceCategory, name string) (*model.Resource, error) {
	pctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	r, err := s.primary.GetByName(pctx, category, name)
	if err == nil {
		return r, nil
	}
	if !errors.Is(err, ErrNotFound) {
		log.Printf("catalog: primary source failed, serving static fallback: %v", err)
	}
	return s.fallback.GetByName(ctx, category, name)
}
