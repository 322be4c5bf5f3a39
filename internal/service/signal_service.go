package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"tradegate/internal/domain"
	"tradegate/internal/persona"
	"tradegate/internal/personalize"

	"go.opentelemetry.io/otel/trace"
)

// emotionTTL is how long a detected emotional read stays fresh before the
// next caller recomputes it. The background poller refreshes on the same
// cadence, so reads between polls are effectively free.
const emotionTTL = 30 * time.Second

// ProfileSource is the persisted personalization state the service reads.
type ProfileSource interface {
	Profile(ctx context.Context) domain.PersonalityProfile
	SetProfile(ctx context.Context, profile domain.PersonalityProfile) error
	Trades(ctx context.Context) []domain.TradeRecord
}

// Auditor appends events to the compliance trail.
type Auditor interface {
	Append(ctx context.Context, eventType domain.AuditEventType, payload any) error
}

// SignalService turns raw engine scores into personalized signals: it owns
// the archetype classification, the emotional read, and the parameter
// tailoring that sits between them.
type SignalService struct {
	tracer trace.Tracer
	store  ProfileSource
	audit  Auditor
	now    func() time.Time

	mu       sync.Mutex
	lastRead domain.EmotionalRead
	readAt   time.Time
}

func NewSignalService(tracer trace.Tracer, store ProfileSource, audit Auditor) *SignalService {
	return &SignalService{
		tracer: tracer,
		store:  store,
		audit:  audit,
		now:    time.Now,
	}
}

// Personalize reshapes a scored signal around the stored personality profile
// and the trader's current emotional state.
func (s *SignalService) Personalize(ctx context.Context, score domain.ScoreResult) (domain.PersonalizedSignal, error) {
	ctx, span := s.tracer.Start(ctx, "signal-service.personalize")
	defer span.End()

	if score.Symbol == "" {
		return domain.PersonalizedSignal{}, fmt.Errorf("symbol is required")
	}
	if score.Direction != domain.DirectionLong && score.Direction != domain.DirectionShort && score.Direction != domain.DirectionHold {
		return domain.PersonalizedSignal{}, fmt.Errorf("unknown direction %q", score.Direction)
	}
	if score.Score < 0 {
		score.Score = 0
	}
	if score.Score > 100 {
		score.Score = 100
	}

	profile := s.store.Profile(ctx)
	match := persona.Classify(profile)
	read := s.Current(ctx)
	return personalize.Build(score, match, read, profile), nil
}

// Archetype classifies the stored profile.
func (s *SignalService) Archetype(ctx context.Context) domain.ArchetypeMatch {
	ctx, span := s.tracer.Start(ctx, "signal-service.archetype")
	defer span.End()

	return persona.Classify(s.store.Profile(ctx))
}

// Profile returns the stored personality profile.
func (s *SignalService) Profile(ctx context.Context) domain.PersonalityProfile {
	return s.store.Profile(ctx)
}

// UpdateProfile clamps, persists, and re-classifies the profile.
func (s *SignalService) UpdateProfile(ctx context.Context, profile domain.PersonalityProfile) (domain.PersonalityProfile, domain.ArchetypeMatch, error) {
	ctx, span := s.tracer.Start(ctx, "signal-service.update-profile")
	defer span.End()

	profile = profile.Clamp()
	if err := s.store.SetProfile(ctx, profile); err != nil {
		return profile, domain.ArchetypeMatch{}, fmt.Errorf("persist profile: %w", err)
	}
	match := persona.Classify(profile)
	if err := s.audit.Append(ctx, domain.AuditProfileUpdated, map[string]any{
		"profile":   profile,
		"archetype": match.Archetype,
	}); err != nil {
		log.Printf("signal-service: audit profile update: %v", err)
	}
	return profile, match, nil
}

// Current returns the freshest emotional read, recomputing when the cached
// one has aged out.
func (s *SignalService) Current(ctx context.Context) domain.EmotionalRead {
	s.mu.Lock()
	read, at := s.lastRead, s.readAt
	s.mu.Unlock()

	if !at.IsZero() && s.now().Sub(at) < emotionTTL {
		return read
	}
	read, _ = s.RefreshEmotion(ctx)
	return read
}

// RefreshEmotion recomputes the emotional state from the outcome stream and
// reports whether the state changed since the previous read.
func (s *SignalService) RefreshEmotion(ctx context.Context) (domain.EmotionalRead, bool) {
	ctx, span := s.tracer.Start(ctx, "signal-service.refresh-emotion")
	defer span.End()

	read := persona.DetectEmotionalState(s.store.Trades(ctx), s.now())

	s.mu.Lock()
	changed := read.State != s.lastRead.State
	s.lastRead = read
	s.readAt = s.now()
	s.mu.Unlock()
	return read, changed
}
