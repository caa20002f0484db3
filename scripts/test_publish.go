//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type ResolveEvent struct {
	RequestID uuid.UUID         `json:"request_id"`
	Level     string            `json:"level"`
	Filters   map[string]string `json:"filters"`
}

type ResolvedEvent struct {
	RequestID uuid.UUID `json:"request_id"`
	ID        int       `json:"id"`
	Level     string    `json:"level"`
	Found     bool      `json:"found"`
	Name      string    `json:"name,omitempty"`
	Error     string    `json:"error,omitempty"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	level := flag.String("level", "commune", "Level (pays, region, departement, intercommunalite, commune)")
	name := flag.String("name", "Lyon", "Selected name for the level")
	wait := flag.Duration("wait", 5*time.Second, "How long to wait for the resolved event")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	event := ResolveEvent{
		RequestID: uuid.New(),
		Level:     *level,
		Filters:   map[string]string{*level: *name},
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	// Последний id в стриме результатов до публикации
	lastID := "$"
	if entries, err := client.XRevRangeN(ctx, "stream:geo:resolved", "+", "-", 1).Result(); err == nil && len(entries) > 0 {
		lastID = entries[0].ID
	}

	// Публикация в стрим
	msgID, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:geo:resolve",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}
	fmt.Printf("Published %s (request_id=%s)\n", msgID, event.RequestID)

	// Ожидание результата
	deadline := time.Now().Add(*wait)
	for time.Now().Before(deadline) {
		streams, err := client.XRead(ctx, &redis.XReadArgs{
			Streams: []string{"stream:geo:resolved", lastID},
			Block:   time.Until(deadline),
		}).Result()
		if err != nil {
			break
		}
		for _, s := range streams {
			for _, msg := range s.Messages {
				lastID = msg.ID
				raw, _ := msg.Values["data"].(string)
				var resolved ResolvedEvent
				if err := json.Unmarshal([]byte(raw), &resolved); err != nil {
					continue
				}
				if resolved.RequestID == event.RequestID {
					fmt.Printf("Resolved: id=%d found=%t name=%q error=%q\n",
						resolved.ID, resolved.Found, resolved.Name, resolved.Error)
					return
				}
			}
		}
	}

	log.Fatalf("No resolved event within %v", *wait)
}
