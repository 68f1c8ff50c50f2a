package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/donor-matching-service/internal/domain"
	"github.com/donor-matching-service/internal/repository/cache"
	redisRepo "github.com/donor-matching-service/internal/repository/redis"
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish a blood request and wait for the worker's matches",
	Long: `Publish a BloodRequestEvent to stream:blood:request and poll
stream:blood:matches for the event with the same request_id.

Examples:
  matchctl publish --lat 12.9716 --lon 77.5946 --group O+ --radius 5
  matchctl publish --group A- --no-coordinates --wait 10s`,
	RunE: runPublish,
}

func init() {
	addPublishFlags(publishCmd.Flags())
	rootCmd.AddCommand(publishCmd)
}

func addPublishFlags(f *pflag.FlagSet) {
	f.Float64("lat", 12.9716, "requester latitude")
	f.Float64("lon", 77.5946, "requester longitude")
	f.Bool("no-coordinates", false, "omit coordinates to exercise the error path")
	f.String("group", "O+", "blood group")
	f.Float64("radius", 0, "radius in km (0 = worker default)")
	f.String("location", "", "location text filter")
	f.Duration("wait", 30*time.Second, "how long to wait for the matches event (0 = do not wait)")
}

func runPublish(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	f := cmd.Flags()

	event := requestFromFlags(cmd)
	if !event.HasBloodGroup() {
		return errors.New("--group must not be empty")
	}
	wait, _ := f.GetDuration("wait")

	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		return err
	}
	defer redisClient.Close() //nolint:errcheck

	// позиция стрима ответов до публикации, чтобы не читать старые события
	lastID, err := lastStreamID(ctx, redisClient.Client(), domain.StreamBloodMatches)
	if err != nil {
		return err
	}

	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	if err := streamRepo.PublishToStream(ctx, domain.StreamBloodRequest, event); err != nil {
		return err
	}
	log.Info("Blood request published",
		zap.String("request_id", event.RequestID.String()),
		zap.String("stream", domain.StreamBloodRequest),
		zap.String("redis", cfg.GetRedisAddr()))

	if wait <= 0 {
		return nil
	}

	result, err := waitForMatches(ctx, redisClient.Client(), event.RequestID, lastID, wait)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func requestFromFlags(cmd *cobra.Command) *domain.BloodRequestEvent {
	f := cmd.Flags()

	group, _ := f.GetString("group")
	event := &domain.BloodRequestEvent{
		RequestID:   uuid.New(),
		RequesterID: "matchctl",
		BloodGroup:  group,
	}

	if noCoords, _ := f.GetBool("no-coordinates"); !noCoords {
		lat, _ := f.GetFloat64("lat")
		lon, _ := f.GetFloat64("lon")
		event.Latitude = &lat
		event.Longitude = &lon
	}
	if f.Changed("radius") {
		radius, _ := f.GetFloat64("radius")
		event.RadiusKm = &radius
	}
	if location, _ := f.GetString("location"); location != "" {
		event.Location = &location
	}

	return event
}

func lastStreamID(ctx context.Context, client *redis.Client, stream string) (string, error) {
	msgs, err := client.XRevRangeN(ctx, stream, "+", "-", 1).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("read %s: %w", stream, err)
	}
	if len(msgs) == 0 {
		return "0", nil
	}
	return msgs[0].ID, nil
}

// waitForMatches опрашивает stream:blood:matches, пока не придёт событие с нужным request_id
func waitForMatches(ctx context.Context, client *redis.Client, requestID uuid.UUID, lastID string, wait time.Duration) (*domain.BloodMatchesEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, wait)
	defer cancel()

	for {
		streams, err := client.XRead(ctx, &redis.XReadArgs{
			Streams: []string{domain.StreamBloodMatches, lastID},
			Count:   50,
			Block:   time.Second,
		}).Result()
		if ctx.Err() != nil {
			return nil, fmt.Errorf("no matches for request %s within %v", requestID, wait)
		}
		if err != nil && !errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("read %s: %w", domain.StreamBloodMatches, err)
		}

		for _, s := range streams {
			for _, msg := range s.Messages {
				lastID = msg.ID

				data, ok := msg.Values["data"].(string)
				if !ok {
					continue
				}
				var event domain.BloodMatchesEvent
				if err := json.Unmarshal([]byte(data), &event); err != nil {
					continue
				}
				if event.RequestID == requestID {
					return &event, nil
				}
			}
		}
	}
}
