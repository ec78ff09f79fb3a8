package service

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"medical-referrals/internal/report"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// updateBestTimeScript writes a soldier's best CAT time only when the new
// reading beats the stored one. Runs atomically inside Redis, so concurrent
// drill submissions for the same soldier cannot regress the leaderboard.
//
// Logic:
// 1. ZSCORE the member
// 2. If absent or the new score is lower, ZADD and return 1
// 3. Otherwise leave the stored score and return 0
var updateBestTimeScript = redis.NewScript(`
	local current = redis.call('ZSCORE', KEYS[1], ARGV[1])
	if current == false or tonumber(ARGV[2]) < tonumber(current) then
		redis.call('ZADD', KEYS[1], ARGV[2], ARGV[1])
		return 1
	end
	return 0
`)

const (
	// RedisBestTimeKey is the sorted set of per-soldier best CAT times,
	// score = seconds, member = soldier ID.
	RedisBestTimeKey = "training:best_cat_times"

	// Batch size for startup sync. The pipeline is created and executed
	// inside the batch loop so memory stays bounded.
	leaderboardSyncBatchSize = 500

	// Interval for cleaning up stale per-soldier mutexes
	leaderboardMutexCleanupInterval = 10 * time.Minute

	// How long a mutex must be unused before cleanup
	leaderboardMutexStaleThreshold = 10 * time.Minute
)

// LeaderboardService mirrors per-soldier best tourniquet times from
// PostgreSQL into a Redis sorted set so the best-times report reads without
// scanning drill history.
//
// Lock ordering: acquire the soldier mutex first, then touch DB/Redis.
type LeaderboardService struct {
	db          *gorm.DB
	redisClient *redis.Client
	log         *logrus.Logger

	// Per-soldier mutex for concurrent safety
	soldierMu sync.Map // map[int64]*mutexWithTimestamp

	// Graceful shutdown
	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

// mutexWithTimestamp tracks mutex usage for cleanup
type mutexWithTimestamp struct {
	mu       sync.Mutex
	lastUsed atomic.Int64 // Unix timestamp
}

// bestTimeRow is one row of the startup sync query
type bestTimeRow struct {
	SoldierID   int64
	BestSeconds int
}

// LeaderboardEntry is one soldier on the best-times board
type LeaderboardEntry struct {
	SoldierID int64 `json:"soldier_id"`
	Seconds   int   `json:"seconds"`
}

// NewLeaderboardService creates the service and starts the background mutex
// cleanup goroutine. Call Stop during graceful shutdown.
func NewLeaderboardService(db *gorm.DB, redisClient *redis.Client, log *logrus.Logger) *LeaderboardService {
	svc := &LeaderboardService{
		db:          db,
		redisClient: redisClient,
		log:         log,
		stopChan:    make(chan struct{}),
	}

	svc.wg.Add(1)
	go svc.cleanupMutexMapLoop()

	return svc
}

// Stop gracefully shuts down the service. Safe to call multiple times.
func (s *LeaderboardService) Stop() {
	if s.stopped.CompareAndSwap(false, true) {
		close(s.stopChan)
		s.wg.Wait()
		s.log.Info("LeaderboardService stopped")
	}
}

// SyncOnStartup rebuilds the leaderboard from drill history. Only readings
// that are plain non-negative integers participate; free-text values in the
// cat_time column are skipped by the regex filter.
//
// Should be called before accepting traffic.
func (s *LeaderboardService) SyncOnStartup(ctx context.Context) error {
	s.log.Info("Starting leaderboard re-sync from database...")
	startTime := time.Now()

	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		s.log.Warnf("Redis is not available, skipping sync: %+v", err)
		return fmt.Errorf("redis ping failed: %w", err)
	}

	if err := s.redisClient.Del(ctx, RedisBestTimeKey).Err(); err != nil {
		return fmt.Errorf("clear leaderboard key: %w", err)
	}

	offset := 0
	totalSynced := 0

	for {
		var rows []bestTimeRow

		err := s.db.WithContext(ctx).
			Table("tourniquet_trainings").
			Select("soldier_id, MIN(cat_time::int) as best_seconds").
			Where("cat_time ~ '^[0-9]+$'").
			Group("soldier_id").
			Order("soldier_id").
			Limit(leaderboardSyncBatchSize).
			Offset(offset).
			Scan(&rows).Error

		if err != nil {
			s.log.Errorf("Failed to query best times at offset %d: %+v", offset, err)
			return fmt.Errorf("query best times at offset %d: %w", offset, err)
		}

		if len(rows) == 0 {
			if offset == 0 {
				s.log.Info("No drill history found for leaderboard sync")
			}
			break
		}

		// New pipeline per batch so memory does not accumulate
		pipe := s.redisClient.TxPipeline()
		for _, row := range rows {
			pipe.ZAdd(ctx, RedisBestTimeKey, redis.Z{
				Score:  float64(row.BestSeconds),
				Member: strconv.FormatInt(row.SoldierID, 10),
			})
		}

		if _, err := pipe.Exec(ctx); err != nil {
			s.log.Errorf("Failed to execute pipeline for batch at offset %d: %+v", offset, err)
			return fmt.Errorf("pipeline exec at offset %d: %w", offset, err)
		}

		totalSynced += len(rows)

		if len(rows) < leaderboardSyncBatchSize {
			break
		}
		offset += leaderboardSyncBatchSize

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}

	elapsed := time.Since(startTime)
	s.log.Infof("Leaderboard re-sync completed: %d soldiers synced in %v", totalSynced, elapsed)

	return nil
}

// RecordDrillResult feeds one drill reading into the leaderboard. Invalid
// readings are ignored. The Lua script keeps only the fastest time per
// soldier, so callers can submit every drill unconditionally.
func (s *LeaderboardService) RecordDrillResult(ctx context.Context, soldierID int64, catTime string) error {
	reading := report.ParseCATTime(catTime)
	if !reading.Valid() {
		s.log.Debugf("Skipping leaderboard update for soldier %d: unparseable reading %q", soldierID, catTime)
		return nil
	}

	member := strconv.FormatInt(soldierID, 10)
	updated, err := updateBestTimeScript.Run(ctx, s.redisClient, []string{RedisBestTimeKey}, member, reading.Seconds).Int()
	if err != nil {
		s.log.Warnf("Failed leaderboard update for soldier %d: %+v", soldierID, err)
		return fmt.Errorf("leaderboard update for soldier %d: %w", soldierID, err)
	}

	if updated == 1 {
		s.log.Debugf("New best time for soldier %d: %ds", soldierID, reading.Seconds)
	}
	return nil
}

// ResyncSoldier recomputes one soldier's best time from the database. Called
// after a drill is updated or deleted, since the stored best may have been
// the changed record.
func (s *LeaderboardService) ResyncSoldier(ctx context.Context, soldierID int64) error {
	mt := s.getSoldierMutex(soldierID)
	mt.mu.Lock()
	defer mt.mu.Unlock()

	var rows []bestTimeRow
	err := s.db.WithContext(ctx).
		Table("tourniquet_trainings").
		Select("soldier_id, MIN(cat_time::int) as best_seconds").
		Where("soldier_id = ? AND cat_time ~ '^[0-9]+$'", soldierID).
		Group("soldier_id").
		Scan(&rows).Error
	if err != nil {
		s.log.Warnf("Failed to query best time for soldier %d: %+v", soldierID, err)
		return fmt.Errorf("query best time for soldier %d: %w", soldierID, err)
	}

	member := strconv.FormatInt(soldierID, 10)
	if len(rows) == 0 {
		// No valid readings left
		if err := s.redisClient.ZRem(ctx, RedisBestTimeKey, member).Err(); err != nil {
			return fmt.Errorf("remove soldier %d from leaderboard: %w", soldierID, err)
		}
		return nil
	}

	err = s.redisClient.ZAdd(ctx, RedisBestTimeKey, redis.Z{
		Score:  float64(rows[0].BestSeconds),
		Member: member,
	}).Err()
	if err != nil {
		s.log.Warnf("Failed to resync soldier %d: %+v", soldierID, err)
		return fmt.Errorf("resync soldier %d: %w", soldierID, err)
	}

	s.log.Debugf("Resynced soldier %d: best=%ds", soldierID, rows[0].BestSeconds)
	return nil
}

// RemoveSoldier drops a soldier from the leaderboard. Called after roster
// deletion, and cleans up the soldier's mutex immediately.
func (s *LeaderboardService) RemoveSoldier(ctx context.Context, soldierID int64) error {
	mt := s.getSoldierMutex(soldierID)
	mt.mu.Lock()
	defer func() {
		mt.mu.Unlock()
		s.soldierMu.Delete(soldierID)
	}()

	member := strconv.FormatInt(soldierID, 10)
	if err := s.redisClient.ZRem(ctx, RedisBestTimeKey, member).Err(); err != nil {
		s.log.Warnf("Failed to remove soldier %d from leaderboard: %+v", soldierID, err)
		return fmt.Errorf("remove soldier %d from leaderboard: %w", soldierID, err)
	}

	return nil
}

// TopTimes returns the fastest soldiers on the board, best first
func (s *LeaderboardService) TopTimes(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	results, err := s.redisClient.ZRangeWithScores(ctx, RedisBestTimeKey, 0, int64(limit-1)).Result()
	if err != nil {
		s.log.Warnf("Failed to read leaderboard: %+v", err)
		return nil, fmt.Errorf("read leaderboard: %w", err)
	}

	entries := make([]LeaderboardEntry, 0, len(results))
	for _, z := range results {
		member, ok := z.Member.(string)
		if !ok {
			continue
		}
		soldierID, err := strconv.ParseInt(member, 10, 64)
		if err != nil {
			continue
		}
		entries = append(entries, LeaderboardEntry{
			SoldierID: soldierID,
			Seconds:   int(z.Score),
		})
	}

	return entries, nil
}

// getSoldierMutex returns the mutex for a specific soldier ID
func (s *LeaderboardService) getSoldierMutex(soldierID int64) *mutexWithTimestamp {
	mt, _ := s.soldierMu.LoadOrStore(soldierID, &mutexWithTimestamp{})
	result := mt.(*mutexWithTimestamp)
	result.lastUsed.Store(time.Now().Unix())
	return result
}

// cleanupMutexMapLoop runs in background to clean stale mutexes
func (s *LeaderboardService) cleanupMutexMapLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(leaderboardMutexCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			s.log.Debug("Mutex cleanup goroutine stopping")
			return
		case <-ticker.C:
			s.cleanupStaleMutexes()
		}
	}
}

// cleanupStaleMutexes removes unused mutexes. The lastUsed check happens
// inside the lock so a concurrent user cannot be cleaned away.
func (s *LeaderboardService) cleanupStaleMutexes() {
	cutoffTime := time.Now().Add(-leaderboardMutexStaleThreshold).Unix()
	var cleaned int

	s.soldierMu.Range(func(key, value any) bool {
		soldierID, ok := key.(int64)
		if !ok {
			return true
		}

		mt, ok := value.(*mutexWithTimestamp)
		if !ok {
			return true
		}

		if mt.mu.TryLock() {
			if mt.lastUsed.Load() < cutoffTime {
				s.soldierMu.Delete(soldierID)
				cleaned++
			}
			mt.mu.Unlock()
		}
		return true
	})

	if cleaned > 0 {
		s.log.Debugf("Cleaned up %d stale mutexes", cleaned)
	}
}
