package geo

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/encoding/json"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/geoid-microservice/internal/domain"
	"github.com/geoid-microservice/internal/domain/repository"
	"github.com/geoid-microservice/internal/metrics"
	"github.com/geoid-microservice/internal/usecase"
	"github.com/geoid-microservice/internal/usecase/dto"
	"github.com/geoid-microservice/internal/worker"
)

const (
	workerName       = "geo-resolve"
	defaultBatchSize = 20                     // максимум сообщений за раз
	emptyQueueSleep  = 100 * time.Millisecond // пауза если очередь пуста
	errorSleep       = time.Second            // пауза при ошибке чтения или публикации
	publishBackoff   = 50 * time.Millisecond
)

// Config - параметры воркера
type Config struct {
	ConsumerGroup string
	BatchSize     int
	MaxRetries    int
	RetryPause    time.Duration // пауза перед повтором; 0 - errorSleep
}

// Counters - счётчики обработанных сообщений
type Counters struct {
	Processed int64 `json:"processed"`
	Malformed int64 `json:"malformed"`
	Published int64 `json:"published"`
	Failed    int64 `json:"failed"`
}

// ResolveWorker разрешает выборы из stream:geo:resolve и публикует результаты в stream:geo:resolved
type ResolveWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	geoUC        *usecase.GeoUseCase
	consumerName string
	batchSize    int
	maxRetries   int
	retryPause   time.Duration

	// retryPending - в PEL остались неопубликованные сообщения этого consumer'а.
	// Используется только из горутины Start.
	retryPending bool

	processed atomic.Int64
	malformed atomic.Int64
	published atomic.Int64
	failed    atomic.Int64
}

// NewResolveWorker создает новый ResolveWorker
func NewResolveWorker(
	streamRepo repository.StreamRepository,
	geoUC *usecase.GeoUseCase,
	cfg Config,
	logger *zap.Logger,
) *ResolveWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 1
	}
	retryPause := cfg.RetryPause
	if retryPause <= 0 {
		retryPause = errorSleep
	}

	return &ResolveWorker{
		BaseWorker:   worker.NewBaseWorker(workerName, cfg.ConsumerGroup, logger),
		streamRepo:   streamRepo,
		geoUC:        geoUC,
		consumerName: consumerName,
		batchSize:    batchSize,
		maxRetries:   maxRetries,
		retryPause:   retryPause,
	}
}

// Start запускает воркер; возвращается после Stop или отмены контекста
func (w *ResolveWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting ResolveWorker (batch mode)",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("max_batch_size", w.batchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamGeoResolve, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				w.pause(ctx, w.retryPause)
				continue
			}

			if processed == 0 {
				w.pause(ctx, emptyQueueSleep)
			}
		}
	}
}

// Counters возвращает снимок счётчиков
func (w *ResolveWorker) Counters() Counters {
	return Counters{
		Processed: w.processed.Load(),
		Malformed: w.malformed.Load(),
		Published: w.published.Load(),
		Failed:    w.failed.Load(),
	}
}

// pause ждёт d, прерываясь на остановку воркера
func (w *ResolveWorker) pause(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-w.StopChan():
	case <-ctx.Done():
	}
}

// nextBatch сначала перечитывает собственные pending сообщения, если прошлая
// публикация не удалась, и только потом берёт новые
func (w *ResolveWorker) nextBatch(ctx context.Context) ([]domain.StreamMessage, error) {
	if w.retryPending {
		messages, err := w.streamRepo.ConsumePending(
			ctx,
			domain.StreamGeoResolve,
			w.ConsumerGroup(),
			w.consumerName,
			w.batchSize,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to read pending messages: %w", err)
		}
		if len(messages) > 0 {
			w.Logger().Info("Retrying pending messages", zap.Int("message_count", len(messages)))
			return messages, nil
		}
		w.retryPending = false
	}

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamGeoResolve,
		w.ConsumerGroup(),
		w.consumerName,
		w.batchSize,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to consume batch: %w", err)
	}
	return messages, nil
}

// processBatch читает и обрабатывает batch сообщений.
// Возвращает количество прочитанных сообщений.
// Сообщения, результат которых не удалось опубликовать, не подтверждаются
// и остаются в PEL до следующей попытки.
func (w *ResolveWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.nextBatch(ctx)
	if err != nil {
		return 0, err
	}

	if len(messages) == 0 {
		return 0, nil
	}

	logger.Debug("Processing batch", zap.Int("message_count", len(messages)))

	messageIDs := make([]string, 0, len(messages))
	unpublished := 0

	for _, msg := range messages {
		event, err := parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			w.malformed.Inc()
			metrics.StreamMessages.WithLabelValues(workerName, "malformed").Inc()
			// ACK битое сообщение чтобы не застревало
			if err := w.streamRepo.AckMessage(ctx, domain.StreamGeoResolve, w.ConsumerGroup(), msg.ID); err != nil {
				logger.Warn("Failed to ack malformed message", zap.String("message_id", msg.ID), zap.Error(err))
			}
			continue
		}

		result := w.resolve(ctx, event)

		if err := w.publish(ctx, result); err != nil {
			logger.Error("Failed to publish resolved event, leaving message pending",
				zap.String("message_id", msg.ID),
				zap.String("request_id", event.RequestID.String()),
				zap.Error(err))
			w.failed.Inc()
			metrics.StreamMessages.WithLabelValues(workerName, "failed").Inc()
			unpublished++
			continue
		}

		w.published.Inc()
		metrics.StreamMessages.WithLabelValues(workerName, "published").Inc()
		w.processed.Inc()
		messageIDs = append(messageIDs, msg.ID)
	}

	if len(messageIDs) > 0 {
		if err := w.streamRepo.AckMessages(ctx, domain.StreamGeoResolve, w.ConsumerGroup(), messageIDs); err != nil {
			logger.Error("Failed to ack messages", zap.Error(err))
			// Не критично - сообщения останутся в pending
		}
	}

	logger.Debug("Batch processed",
		zap.Int("received", len(messages)),
		zap.Int("resolved", len(messageIDs)))

	if unpublished > 0 {
		w.retryPending = true
		return len(messages), fmt.Errorf("%d results not published, messages left pending", unpublished)
	}

	return len(messages), nil
}

// resolve разрешает событие; ошибки уровня уходят в поле Error результата
func (w *ResolveWorker) resolve(ctx context.Context, event *domain.ResolveEvent) *domain.ResolvedEvent {
	result := &domain.ResolvedEvent{
		RequestID: event.RequestID,
		Level:     event.Level,
	}

	resp, err := w.geoUC.Resolve(ctx, dto.ResolveRequest{
		Level:   event.Level,
		Filters: event.Filters,
	})
	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.ID = resp.ID
	result.Found = resp.Found
	result.Name = resp.Name
	return result
}

// publish публикует результат, повторяя попытку до maxRetries раз
func (w *ResolveWorker) publish(ctx context.Context, result *domain.ResolvedEvent) error {
	var err error
	for attempt := 1; attempt <= w.maxRetries; attempt++ {
		if err = w.streamRepo.PublishToStream(ctx, domain.StreamGeoResolved, result); err == nil {
			return nil
		}
		if attempt < w.maxRetries {
			w.Logger().Warn("Publish failed, retrying",
				zap.Int("attempt", attempt),
				zap.Error(err))
			w.pause(ctx, time.Duration(attempt)*publishBackoff)
		}
	}
	return fmt.Errorf("publish after %d attempts: %w", w.maxRetries, err)
}

// parseMessage разбирает JSON из поля data
func parseMessage(msg domain.StreamMessage) (*domain.ResolveEvent, error) {
	if msg.Data == "" {
		return nil, fmt.Errorf("message has no data field")
	}

	var event domain.ResolveEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("unmarshal resolve event: %w", err)
	}

	if event.RequestID == uuid.Nil {
		return nil, fmt.Errorf("missing request_id")
	}

	return &event, nil
}
