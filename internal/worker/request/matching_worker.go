package request

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/donor-matching-service/internal/domain"
	"github.com/donor-matching-service/internal/domain/repository"
	"github.com/donor-matching-service/internal/pkg/metrics"
	"github.com/donor-matching-service/internal/usecase/dto"
	"github.com/donor-matching-service/internal/worker"
)

// WorkerName - имя воркера в логах и метриках
const WorkerName = "blood-request-matching"

const (
	errorPause = time.Second
	retryPause = 100 * time.Millisecond
)

// RequestMatcher ranks donors and blood banks for one blood request.
type RequestMatcher interface {
	MatchRequest(ctx context.Context, criteria domain.SearchCriteria) ([]domain.RankedResult, error)
}

// Config - параметры чтения стрима
type Config struct {
	ConsumerGroup   string
	ConsumerName    string
	BatchSize       int
	EmptyQueueSleep time.Duration
	MaxRetries      int
	ClaimIdle       time.Duration
}

// MatchingWorker читает stream:blood:request и публикует подбор в stream:blood:matches
type MatchingWorker struct {
	*worker.BaseWorker
	streamRepo      repository.StreamRepository
	matcher         RequestMatcher
	metrics         *metrics.Collector
	batchSize       int
	emptyQueueSleep time.Duration
	maxRetries      int
	claimIdle       time.Duration
}

// NewMatchingWorker создает новый MatchingWorker. collector может быть nil.
func NewMatchingWorker(
	streamRepo repository.StreamRepository,
	matcher RequestMatcher,
	collector *metrics.Collector,
	cfg Config,
	logger *zap.Logger,
) *MatchingWorker {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 20
	}

	return &MatchingWorker{
		BaseWorker:      worker.NewBaseWorker(WorkerName, domain.StreamBloodRequest, cfg.ConsumerGroup, cfg.ConsumerName, logger),
		streamRepo:      streamRepo,
		matcher:         matcher,
		metrics:         collector,
		batchSize:       cfg.BatchSize,
		emptyQueueSleep: cfg.EmptyQueueSleep,
		maxRetries:      cfg.MaxRetries,
		claimIdle:       cfg.ClaimIdle,
	}
}

// Start запускает воркер
func (w *MatchingWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting MatchingWorker (batch mode)",
		zap.String("stream", w.Stream()),
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.ConsumerName()),
		zap.Int("batch_size", w.batchSize),
		zap.Duration("claim_idle", w.claimIdle))

	if err := w.streamRepo.CreateConsumerGroup(ctx, w.Stream(), w.ConsumerGroup()); err != nil {
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
				w.Pause(ctx, errorPause)
				continue
			}

			if processed == 0 {
				w.Pause(ctx, w.emptyQueueSleep)
			}
		}
	}
}

// processBatch читает и обрабатывает пакет сообщений, возвращает число прочитанных
func (w *MatchingWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	// 1. Читаем пакет без блокировки
	messages, err := w.streamRepo.ConsumeBatch(ctx, w.Stream(), w.ConsumerGroup(), w.ConsumerName(), w.batchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}
	// 1a. Новых нет - забираем зависшие в pending (например, после сбоя публикации)
	if len(messages) == 0 && w.claimIdle > 0 {
		messages, err = w.streamRepo.ClaimStale(ctx, w.Stream(), w.ConsumerGroup(), w.ConsumerName(), w.claimIdle, w.batchSize)
		if err != nil {
			return 0, fmt.Errorf("failed to claim stale messages: %w", err)
		}
	}
	if len(messages) == 0 {
		return 0, nil
	}

	logger.Debug("Processing batch", zap.Int("message_count", len(messages)))

	handled := make([]string, 0, len(messages))
	for _, msg := range messages {
		// 2. Парсим событие; битое сообщение подтверждаем сразу, чтобы не застревало
		event, err := parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			_ = w.streamRepo.AckMessage(ctx, w.Stream(), w.ConsumerGroup(), msg.ID)
			w.metrics.ObserveWorkerMessage(WorkerName, metrics.OutcomeInvalid)
			continue
		}

		// 3. Подбираем кандидатов и публикуем результат
		result := w.match(ctx, event)
		if err := w.streamRepo.PublishToStream(ctx, domain.StreamBloodMatches, result); err != nil {
			// без ACK: сообщение останется в pending
			logger.Error("Failed to publish matches",
				zap.String("request_id", event.RequestID.String()),
				zap.Error(err))
			w.metrics.ObserveWorkerMessage(WorkerName, metrics.OutcomeError)
			continue
		}

		if result.Error != "" {
			w.metrics.ObserveWorkerMessage(WorkerName, metrics.OutcomeError)
		} else {
			w.metrics.ObserveWorkerMessage(WorkerName, metrics.OutcomeOK)
		}
		handled = append(handled, msg.ID)
	}

	// 4. ACK опубликованных
	if len(handled) > 0 {
		if err := w.streamRepo.AckMessages(ctx, w.Stream(), w.ConsumerGroup(), handled); err != nil {
			logger.Error("Failed to ack messages", zap.Error(err))
		}
	}

	logger.Info("Batch processed",
		zap.Int("read", len(messages)),
		zap.Int("published", len(handled)))

	return len(messages), nil
}

// match runs the search for one request. Failures are reported inside the event.
func (w *MatchingWorker) match(ctx context.Context, event *domain.BloodRequestEvent) *domain.BloodMatchesEvent {
	result := &domain.BloodMatchesEvent{
		RequestID: event.RequestID,
		Matches:   []domain.MatchedCandidate{},
	}

	if !event.HasCoordinates() {
		result.Error = "missing requester coordinates"
		return result
	}

	ranked, err := w.matchWithRetry(ctx, event.Criteria())
	if err != nil {
		w.Logger().Warn("Blood request matching failed",
			zap.String("request_id", event.RequestID.String()),
			zap.Error(err))
		result.Error = err.Error()
		return result
	}

	group, _ := domain.ParseBloodGroup(event.BloodGroup)
	for _, r := range ranked {
		result.Matches = append(result.Matches, dto.ToMatchedCandidate(r, group))
	}
	return result
}

// matchWithRetry повторяет только сбои источника кандидатов
func (w *MatchingWorker) matchWithRetry(ctx context.Context, criteria domain.SearchCriteria) ([]domain.RankedResult, error) {
	for attempt := 0; ; attempt++ {
		ranked, err := w.matcher.MatchRequest(ctx, criteria)
		if err == nil || !errors.Is(err, domain.ErrDataSource) || attempt >= w.maxRetries {
			return ranked, err
		}
		if !w.Pause(ctx, retryPause*time.Duration(attempt+1)) {
			return nil, err
		}
	}
}

// parseMessage парсит сообщение из стрима в BloodRequestEvent
func parseMessage(msg domain.StreamMessage) (*domain.BloodRequestEvent, error) {
	if msg.Data == "" {
		return nil, fmt.Errorf("missing or invalid 'data' field")
	}

	var event domain.BloodRequestEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if event.RequestID == uuid.Nil {
		return nil, fmt.Errorf("missing request_id")
	}
	if !event.HasBloodGroup() {
		return nil, fmt.Errorf("missing blood_group")
	}

	return &event, nil
}
