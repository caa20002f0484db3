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

	"github.com/geoid-microservice/internal/domain"
	redisRepo "github.com/geoid-microservice/internal/repository/redis"
)

const (
	testResolveStream  = "test:stream:geo:resolve"
	testResolvedStream = "test:stream:geo:resolved"
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

	// Clean up any existing test streams
	client.Del(ctx, testResolveStream, testResolvedStream)

	return client
}

// TestStreamRepository_CreateConsumerGroup tests consumer group creation
func TestStreamRepository_CreateConsumerGroup(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()
	groupName := "test-group"

	defer client.Del(ctx, testResolveStream)

	err := repo.CreateConsumerGroup(ctx, testResolveStream, groupName)
	require.NoError(t, err)

	groups, err := client.XInfoGroups(ctx, testResolveStream).Result()
	require.NoError(t, err)
	assert.Len(t, groups, 1)
	assert.Equal(t, groupName, groups[0].Name)

	// Creating again should not error (BUSYGROUP handled)
	err = repo.CreateConsumerGroup(ctx, testResolveStream, groupName)
	assert.NoError(t, err)
}

// TestStreamRepository_PublishToStream tests message publishing
func TestStreamRepository_PublishToStream(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()

	defer client.Del(ctx, testResolvedStream)

	requestID := uuid.New()
	event := &domain.ResolvedEvent{
		RequestID: requestID,
		ID:        10021,
		Level:     domain.LevelCommune,
		Found:     true,
		Name:      "Lyon",
	}

	require.NoError(t, repo.PublishToStream(ctx, testResolvedStream, event))

	messages, err := client.XRead(ctx, &redis.XReadArgs{
		Streams: []string{testResolvedStream, "0"},
		Count:   1,
	}).Result()
	require.NoError(t, err)
	require.Len(t, messages, 1)
	require.Len(t, messages[0].Messages, 1)

	dataStr, ok := messages[0].Messages[0].Values["data"].(string)
	require.True(t, ok)

	var received domain.ResolvedEvent
	require.NoError(t, json.Unmarshal([]byte(dataStr), &received))
	assert.Equal(t, requestID, received.RequestID)
	assert.Equal(t, 10021, received.ID)
	assert.Equal(t, "Lyon", received.Name)
	assert.True(t, received.Found)
}

// TestStreamRepository_ConsumeBatch tests batch consumption and ack
func TestStreamRepository_ConsumeBatch(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()
	groupName := "test-batch-group"
	consumerName := "test-consumer"

	defer client.Del(ctx, testResolveStream)

	require.NoError(t, repo.CreateConsumerGroup(ctx, testResolveStream, groupName))

	// Пустая очередь - пустой срез
	empty, err := repo.ConsumeBatch(ctx, testResolveStream, groupName, consumerName, 10)
	require.NoError(t, err)
	assert.Empty(t, empty)

	for _, name := range []string{"Lyon", "Nantes", "Nice"} {
		event := &domain.ResolveEvent{
			RequestID: uuid.New(),
			Level:     domain.LevelCommune,
			Filters:   domain.Filters{Commune: name},
		}
		require.NoError(t, repo.PublishToStream(ctx, testResolveStream, event))
	}

	batch, err := repo.ConsumeBatch(ctx, testResolveStream, groupName, consumerName, 2)
	require.NoError(t, err)
	require.Len(t, batch, 2)
	assert.Equal(t, testResolveStream, batch[0].Stream)

	var first domain.ResolveEvent
	require.NoError(t, json.Unmarshal([]byte(batch[0].Data), &first))
	assert.Equal(t, "Lyon", first.Filters.Commune)

	pending, err := client.XPending(ctx, testResolveStream, groupName).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(2), pending.Count)

	require.NoError(t, repo.AckMessages(ctx, testResolveStream, groupName, []string{batch[0].ID, batch[1].ID}))

	pending, err = client.XPending(ctx, testResolveStream, groupName).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(0), pending.Count)

	rest, err := repo.ConsumeBatch(ctx, testResolveStream, groupName, consumerName, 10)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	require.NoError(t, repo.AckMessage(ctx, testResolveStream, groupName, rest[0].ID))
}

// TestStreamRepository_ConsumeBatch_MissingDataField tests messages without payload
func TestStreamRepository_ConsumeBatch_MissingDataField(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()
	groupName := "test-missing-data-group"

	defer client.Del(ctx, testResolveStream)

	require.NoError(t, repo.CreateConsumerGroup(ctx, testResolveStream, groupName))
	require.NoError(t, client.XAdd(ctx, &redis.XAddArgs{
		Stream: testResolveStream,
		Values: map[string]interface{}{"payload": "x"},
	}).Err())

	batch, err := repo.ConsumeBatch(ctx, testResolveStream, groupName, "test-consumer", 10)
	require.NoError(t, err)
	require.Len(t, batch, 1)
	assert.Empty(t, batch[0].Data)
	assert.NotEmpty(t, batch[0].ID)
}

// TestStreamRepository_AckMessages_Empty does nothing for an empty list
func TestStreamRepository_AckMessages_Empty(t *testing.T) {
	repo := redisRepo.NewStreamRepository(redis.NewClient(&redis.Options{Addr: "localhost:0"}), zap.NewNop())
	assert.NoError(t, repo.AckMessages(context.Background(), testResolveStream, "group", nil))
}

// TestStreamRepository_ConsumePending tests re-reading unacknowledged messages
func TestStreamRepository_ConsumePending(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()
	groupName := "test-pending-group"
	consumerName := "test-consumer"

	defer client.Del(ctx, testResolveStream)

	require.NoError(t, repo.CreateConsumerGroup(ctx, testResolveStream, groupName))

	pending, err := repo.ConsumePending(ctx, testResolveStream, groupName, consumerName, 10)
	require.NoError(t, err)
	assert.Empty(t, pending)

	require.NoError(t, repo.PublishToStream(ctx, testResolveStream, &domain.ResolveEvent{
		RequestID: uuid.New(),
		Level:     domain.LevelRegion,
		Filters:   domain.Filters{Region: "Bretagne"},
	}))

	batch, err := repo.ConsumeBatch(ctx, testResolveStream, groupName, consumerName, 10)
	require.NoError(t, err)
	require.Len(t, batch, 1)

	// Без ACK сообщение возвращается повторно
	pending, err = repo.ConsumePending(ctx, testResolveStream, groupName, consumerName, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, batch[0].ID, pending[0].ID)
	assert.Equal(t, batch[0].Data, pending[0].Data)

	// Другой consumer чужой PEL не видит
	other, err := repo.ConsumePending(ctx, testResolveStream, groupName, "other-consumer", 10)
	require.NoError(t, err)
	assert.Empty(t, other)

	require.NoError(t, repo.AckMessages(ctx, testResolveStream, groupName, []string{batch[0].ID}))

	pending, err = repo.ConsumePending(ctx, testResolveStream, groupName, consumerName, 10)
	require.NoError(t, err)
	assert.Empty(t, pending)
}
