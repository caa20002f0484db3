package worker

import (
	"context"
)

// Worker - фоновый потребитель стрима
type Worker interface {
	// Start блокируется до Stop или отмены контекста
	Start(ctx context.Context) error

	// Stop сигнализирует о завершении; повторный вызов ничего не делает
	Stop() error

	// Name возвращает имя воркера для логов и метрик
	Name() string
}
