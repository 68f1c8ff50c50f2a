package redis_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/donor-matching-service/internal/domain"
	redisRepo "github.com/donor-matching-service/internal/repository/redis"
)

const (
	testRequestStream = "test:stream:blood:request"
	testMatchesStream = "test:stream:blood:matches"
)

// getTestRedisClient creates a Redis client for testing
func getTestRedisClient(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     "localhost:6379",
		Password: "",
		DB:       1, // Use DB 1 for tests
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available for integration tests: %v", err)
	}

	client.Del(ctx, testRequestStream, testMatchesStream)
	t.Cleanup(func() {
		client.Del(context.Background(), testRequestStream, testMatchesStream)
		_ = client.Close()
	})

	return client
}

func TestStreamRepository_CreateConsumerGroup(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.CreateConsumerGroup(ctx, testRequestStream, "test-group"))

	// повторное создание не ошибка
	require.NoError(t, repo.CreateConsumerGroup(ctx, testRequestStream, "test-group"))

	groups, err := client.XInfoGroups(ctx, testRequestStream).Result()
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "test-group", groups[0].Name)
}

func TestStreamRepository_PublishConsumeAck(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.CreateConsumerGroup(ctx, testRequestStream, "test-group"))

	t.Run("empty stream returns no messages", func(t *testing.T) {
		msgs, err := repo.ConsumeBatch(ctx, testRequestStream, "test-group", "consumer-1", 10)
		require.NoError(t, err)
		assert.Empty(t, msgs)
	})

	lat, lon := 12.9716, 77.5946
	events := []domain.BloodRequestEvent{
		{RequestID: uuid.New(), RequesterID: "u1", BloodGroup: "O+", Latitude: &lat, Longitude: &lon},
		{RequestID: uuid.New(), RequesterID: "u2", BloodGroup: "B-", Latitude: &lat, Longitude: &lon},
		{RequestID: uuid.New(), RequesterID: "u3", BloodGroup: "AB+", Latitude: &lat, Longitude: &lon},
	}
	for _, e := range events {
		require.NoError(t, repo.PublishToStream(ctx, testRequestStream, e))
	}
	require.NoError(t, client.XAdd(ctx, &redis.XAddArgs{
		Stream: testRequestStream,
		Values: map[string]interface{}{"other": "x"},
	}).Err())

	t.Run("batch respects max count", func(t *testing.T) {
		msgs, err := repo.ConsumeBatch(ctx, testRequestStream, "test-group", "consumer-1", 2)
		require.NoError(t, err)
		require.Len(t, msgs, 2)

		var got domain.BloodRequestEvent
		require.NoError(t, json.Unmarshal([]byte(msgs[0].Data), &got))
		assert.Equal(t, events[0].RequestID, got.RequestID)

		require.NoError(t, repo.AckMessages(ctx, testRequestStream, "test-group", []string{msgs[0].ID, msgs[1].ID}))
	})

	t.Run("message without data field has empty payload", func(t *testing.T) {
		msgs, err := repo.ConsumeBatch(ctx, testRequestStream, "test-group", "consumer-1", 10)
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.NotEmpty(t, msgs[0].Data)
		assert.Empty(t, msgs[1].Data)

		for _, m := range msgs {
			require.NoError(t, repo.AckMessage(ctx, testRequestStream, "test-group", m.ID))
		}

		pending, err := client.XPending(ctx, testRequestStream, "test-group").Result()
		require.NoError(t, err)
		assert.Zero(t, pending.Count)
	})

	t.Run("ack of nothing is a no-op", func(t *testing.T) {
		assert.NoError(t, repo.AckMessages(ctx, testRequestStream, "test-group", nil))
	})
}

func TestStreamRepository_ClaimStale(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.CreateConsumerGroup(ctx, testRequestStream, "claim-group"))
	require.NoError(t, repo.PublishToStream(ctx, testRequestStream, domain.BloodRequestEvent{
		RequestID:  uuid.New(),
		BloodGroup: "A+",
	}))

	// первый consumer читает и "падает" без ACK
	msgs, err := repo.ConsumeBatch(ctx, testRequestStream, "claim-group", "crashed", 10)
	require.NoError(t, err)
	require.Len(t, msgs, 1)

	t.Run("fresh pending message is not claimed", func(t *testing.T) {
		claimed, err := repo.ClaimStale(ctx, testRequestStream, "claim-group", "rescuer", time.Hour, 10)
		require.NoError(t, err)
		assert.Empty(t, claimed)
	})

	t.Run("idle pending message moves to the new consumer", func(t *testing.T) {
		time.Sleep(20 * time.Millisecond)

		claimed, err := repo.ClaimStale(ctx, testRequestStream, "claim-group", "rescuer", 10*time.Millisecond, 10)
		require.NoError(t, err)
		require.Len(t, claimed, 1)
		assert.Equal(t, msgs[0].ID, claimed[0].ID)
		assert.Equal(t, msgs[0].Data, claimed[0].Data)

		require.NoError(t, repo.AckMessage(ctx, testRequestStream, "claim-group", claimed[0].ID))
	})
}
