package store

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"

	"tradegate/internal/domain"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"
)

// Namespaced keys for the persisted engine state. Everything the engine must
// survive a restart with lives under these.
const (
	keyLevel       = "tradegate:level"
	keyHistory     = "tradegate:history"
	keyLimits      = "tradegate:limits"
	keyPaused      = "tradegate:paused"
	keyPersonality = "tradegate:personality"
	keyTrades      = "tradegate:trades"
)

const (
	// historyRetention drops execution records older than this on every load.
	historyRetention = 24 * time.Hour
	// maxTradeRecords bounds the persisted outcome stream; consumers only
	// ever look at a recent suffix.
	maxTradeRecords = 200
)

// RedisClient is the narrow slice of the redis API the store needs.
type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// Store persists engine state under namespaced keys. Reads never fail the
// caller: missing or corrupt values fall back to safe defaults with a logged
// warning, so a bad snapshot cannot take the engine down with it.
type Store struct {
	tracer   trace.Tracer
	redis    RedisClient
	now      func() time.Time
	defaults domain.TradingLimits
}

func New(tracer trace.Tracer, redisClient RedisClient) *Store {
	return &Store{tracer: tracer, redis: redisClient, now: time.Now, defaults: domain.DefaultLimits()}
}

// SetDefaultLimits replaces the fallback caps returned when no limits
// snapshot is persisted, typically with operator-configured values. Call it
// during wiring, before the store sees traffic.
func (s *Store) SetDefaultLimits(limits domain.TradingLimits) {
	s.defaults = limits
}

// TrustLevel returns the persisted level, or confirm when it is missing or
// unrecognized.
func (s *Store) TrustLevel(ctx context.Context) domain.TrustLevel {
	_, span := s.tracer.Start(ctx, "store.trust-level")
	defer span.End()

	raw, err := s.redis.Get(ctx, keyLevel).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("store: read trust level: %v", err)
		}
		return domain.TrustLevelConfirm
	}
	level, ok := domain.ParseTrustLevel(raw)
	if !ok {
		log.Printf("store: unknown trust level %q, falling back to confirm", raw)
		return domain.TrustLevelConfirm
	}
	return level
}

func (s *Store) SetTrustLevel(ctx context.Context, level domain.TrustLevel) error {
	_, span := s.tracer.Start(ctx, "store.set-trust-level")
	defer span.End()
	return s.redis.Set(ctx, keyLevel, string(level), 0).Err()
}

func (s *Store) Paused(ctx context.Context) bool {
	_, span := s.tracer.Start(ctx, "store.paused")
	defer span.End()

	raw, err := s.redis.Get(ctx, keyPaused).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("store: read paused flag: %v", err)
		}
		return false
	}
	paused, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("store: corrupt paused flag %q, treating as false", raw)
		return false
	}
	return paused
}

func (s *Store) SetPaused(ctx context.Context, paused bool) error {
	_, span := s.tracer.Start(ctx, "store.set-paused")
	defer span.End()
	return s.redis.Set(ctx, keyPaused, strconv.FormatBool(paused), 0).Err()
}

// Limits returns the persisted caps decoded over the defaults, so fields
// missing from older snapshots keep their default values.
func (s *Store) Limits(ctx context.Context) domain.TradingLimits {
	_, span := s.tracer.Start(ctx, "store.limits")
	defer span.End()

	limits := s.defaults
	raw, err := s.redis.Get(ctx, keyLimits).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("store: read limits: %v", err)
		}
		return limits
	}
	if err := json.Unmarshal(raw, &limits); err != nil {
		log.Printf("store: corrupt limits snapshot, using defaults: %v", err)
		return s.defaults
	}
	if !limits.AllowedHours.IsValid() {
		limits.AllowedHours = s.defaults.AllowedHours
	}
	return limits
}

func (s *Store) SetLimits(ctx context.Context, limits domain.TradingLimits) error {
	_, span := s.tracer.Start(ctx, "store.set-limits")
	defer span.End()

	data, err := json.Marshal(limits)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, keyLimits, data, 0).Err()
}

// Profile returns the persisted personality, traits clamped into range.
// Missing or corrupt snapshots read as the all-midpoint default.
func (s *Store) Profile(ctx context.Context) domain.PersonalityProfile {
	_, span := s.tracer.Start(ctx, "store.profile")
	defer span.End()

	profile := domain.DefaultProfile()
	raw, err := s.redis.Get(ctx, keyPersonality).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("store: read personality: %v", err)
		}
		return profile
	}
	if err := json.Unmarshal(raw, &profile); err != nil {
		log.Printf("store: corrupt personality snapshot, using defaults: %v", err)
		return domain.DefaultProfile()
	}
	return profile.Clamp()
}

func (s *Store) SetProfile(ctx context.Context, profile domain.PersonalityProfile) error {
	_, span := s.tracer.Start(ctx, "store.set-profile")
	defer span.End()

	data, err := json.Marshal(profile.Clamp())
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, keyPersonality, data, 0).Err()
}

// History returns the persisted execution window with anything older than
// the retention cutoff pruned away.
func (s *Store) History(ctx context.Context) []domain.ExecutionRecord {
	_, span := s.tracer.Start(ctx, "store.history")
	defer span.End()

	raw, err := s.redis.Get(ctx, keyHistory).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("store: read execution history: %v", err)
		}
		return nil
	}
	var records []domain.ExecutionRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		log.Printf("store: corrupt execution history, dropping: %v", err)
		return nil
	}
	return pruneHistory(records, s.now())
}

func (s *Store) SetHistory(ctx context.Context, records []domain.ExecutionRecord) error {
	_, span := s.tracer.Start(ctx, "store.set-history")
	defer span.End()

	data, err := json.Marshal(pruneHistory(records, s.now()))
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, keyHistory, data, 0).Err()
}

func pruneHistory(records []domain.ExecutionRecord, now time.Time) []domain.ExecutionRecord {
	cutoff := now.Add(-historyRetention)
	var kept []domain.ExecutionRecord
	for _, r := range records {
		if r.Timestamp.After(cutoff) {
			kept = append(kept, r)
		}
	}
	return kept
}

// Trades returns the persisted outcome stream, oldest first.
func (s *Store) Trades(ctx context.Context) []domain.TradeRecord {
	_, span := s.tracer.Start(ctx, "store.trades")
	defer span.End()

	raw, err := s.redis.Get(ctx, keyTrades).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("store: read trade outcomes: %v", err)
		}
		return nil
	}
	var trades []domain.TradeRecord
	if err := json.Unmarshal(raw, &trades); err != nil {
		log.Printf("store: corrupt trade outcomes, dropping: %v", err)
		return nil
	}
	return trades
}

func (s *Store) SetTrades(ctx context.Context, trades []domain.TradeRecord) error {
	_, span := s.tracer.Start(ctx, "store.set-trades")
	defer span.End()

	if len(trades) > maxTradeRecords {
		trades = trades[len(trades)-maxTradeRecords:]
	}
	data, err := json.Marshal(trades)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, keyTrades, data, 0).Err()
}

// AppendTrade adds one realized outcome to the stream, trimming the oldest
// entries past the retention bound.
func (s *Store) AppendTrade(ctx context.Context, record domain.TradeRecord) error {
	ctx, span := s.tracer.Start(ctx, "store.append-trade")
	defer span.End()

	trades := append(s.Trades(ctx), record)
	return s.SetTrades(ctx, trades)
}
