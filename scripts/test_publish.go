//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/trip-aggregator/internal/domain"
)

// Публикует TripComputeEvent и ждёт ответ воркера в stream:trip:done.
//
//	go run scripts/test_publish.go -origin "Divisoria, Cagayan de Oro" -destination "Gingoog City" -vehicle bus
func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	origin := flag.String("origin", "Divisoria, Cagayan de Oro", "origin address")
	destination := flag.String("destination", "Gingoog City, Misamis Oriental", "destination address")
	vehicle := flag.String("vehicle", "jeepney", "vehicle type")
	wait := flag.Duration("wait", 30*time.Second, "how long to wait for the result")
	flag.Parse()

	client := redis.NewClient(&redis.Options{Addr: *redisAddr})
	defer client.Close()

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	event := domain.TripComputeEvent{
		RequestID:          uuid.New(),
		OriginAddress:      *origin,
		DestinationAddress: *destination,
		VehicleType:        *vehicle,
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	// последний id до публикации, чтобы читать только новые ответы
	lastID := "$"
	if last, err := client.XRevRangeN(ctx, domain.StreamTripDone, "+", "-", 1).Result(); err == nil && len(last) > 0 {
		lastID = last[0].ID
	}

	msgID, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: domain.StreamTripCompute,
		Values: map[string]interface{}{"data": string(data)},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published\n")
	fmt.Printf("   Stream: %s\n", domain.StreamTripCompute)
	fmt.Printf("   Message ID: %s\n", msgID)
	fmt.Printf("   Request ID: %s\n", event.RequestID)
	fmt.Printf("   Trip: %s -> %s (%s)\n", event.OriginAddress, event.DestinationAddress, event.VehicleType)
	fmt.Printf("\nWaiting for response in %s...\n", domain.StreamTripDone)

	deadline := time.Now().Add(*wait)
	for time.Now().Before(deadline) {
		streams, err := client.XRead(ctx, &redis.XReadArgs{
			Streams: []string{domain.StreamTripDone, lastID},
			Count:   10,
			Block:   time.Second,
		}).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			log.Fatalf("Failed to read results: %v", err)
		}

		for _, s := range streams {
			for _, msg := range s.Messages {
				lastID = msg.ID

				raw, ok := msg.Values["data"].(string)
				if !ok {
					continue
				}
				var done domain.TripDoneEvent
				if err := json.Unmarshal([]byte(raw), &done); err != nil || done.RequestID != event.RequestID {
					continue
				}

				pretty, _ := json.MarshalIndent(done, "", "  ")
				fmt.Printf("\nResponse received:\n%s\n", pretty)
				return
			}
		}
	}

	fmt.Println("Timeout waiting for response")
}
