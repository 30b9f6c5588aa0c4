// Package aggregate содержит обогащение списков данными из вторичных запросов.
//
// Каждый экран платформы строится одинаково: загружается основная коллекция,
// затем для каждого элемента делается один-два вторичных запроса за
// отображаемыми полями (имя комнаты, количество предметов и т.д.).
// Вместо копии этой логики на каждом экране здесь один общий помощник.
package aggregate

import (
	"context"
	"log/slog"
	"sync"
)

// EnrichFunc дописывает в элемент данные вторичных запросов.
// Ошибка означает, что элемент остаётся с значениями по умолчанию.
type EnrichFunc[T any] func(ctx context.Context, item *T) error

// Enrich обогащает каждый элемент items вызовом fn.
//
// Все вторичные запросы стартуют одновременно, без лимита и батчей,
// результат возвращается только после завершения всех. Ошибка fn для
// одного элемента логируется и не трогает остальные: длина и порядок
// результата всегда совпадают с items. Отмена ctx прерывает все
// запросы в полёте.
func Enrich[T any](ctx context.Context, items []T, fn EnrichFunc[T]) []T {
	enriched := make([]T, len(items))
	copy(enriched, items)

	var wg sync.WaitGroup

	for i := range enriched {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			if err := fn(ctx, &enriched[i]); err != nil {
				slog.Warn("enrichment failed, keeping item defaults", "index", i, "err", err)
			}
		}(i)
	}

	wg.Wait()

	return enriched
}
