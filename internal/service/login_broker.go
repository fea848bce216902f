package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"blaze-custody/internal/core/domain"
	"blaze-custody/internal/core/ports"
	"blaze-custody/pkg/apperror"
	"blaze-custody/pkg/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	defaultSessionTTL   = 5 * time.Minute
	defaultPollInterval = time.Second
	defaultRetention    = 2 * time.Minute

	// Payloads older than this are rejected by the scanning device.
	maxPayloadAge = 5 * time.Minute
	// Tolerated clock skew for payloads stamped in the future.
	maxPayloadSkew = time.Minute

	challengeScope = "qr-login"
)

// LoginBrokerConfig tunes session lifetime and polling.
type LoginBrokerConfig struct {
	TTL           time.Duration
	PollInterval  time.Duration
	SweepInterval time.Duration
	Retention     time.Duration
	OriginURL     string
}

// LoginBroker owns the QR login sessions. Every status change is a
// compare-and-set under one mutex, so approve-after-expiry and double
// approval are rejected instead of racing.
type LoginBroker struct {
	mu       sync.Mutex
	sessions map[string]*domain.LoginSession

	cfg   LoginBrokerConfig
	guard ports.NonceStore
	audit ports.AuditService
	rand  io.Reader
	now   func() time.Time
	log   zerolog.Logger
}

var _ ports.LoginBroker = (*LoginBroker)(nil)

// NewLoginBroker creates a broker. guard and audit may be nil.
func NewLoginBroker(cfg LoginBrokerConfig, guard ports.NonceStore, audit ports.AuditService, log zerolog.Logger) *LoginBroker {
	if cfg.TTL <= 0 {
		cfg.TTL = defaultSessionTTL
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = 30 * time.Second
	}
	if cfg.Retention <= 0 {
		cfg.Retention = defaultRetention
	}
	return &LoginBroker{
		sessions: make(map[string]*domain.LoginSession),
		cfg:      cfg,
		guard:    guard,
		audit:    audit,
		rand:     rand.Reader,
		now:      time.Now,
		log:      logger.Component(log, "qr-broker"),
	}
}

// CreateSession starts a pending session and builds its QR payload.
func (b *LoginBroker) CreateSession(ctx context.Context, device domain.DeviceInfo) (*ports.CreatedSession, error) {
	raw := make([]byte, challengeLen)
	if _, err := io.ReadFull(b.rand, raw); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generating challenge: %w", err))
	}

	now := b.now()
	s := &domain.LoginSession{
		ID:         uuid.NewString(),
		Challenge:  hex.EncodeToString(raw),
		Status:     domain.LoginStatusPending,
		DeviceInfo: device,
		CreatedAt:  now,
		ExpiresAt:  now.Add(b.cfg.TTL),
	}

	payload := b.payloadFor(s)
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("encoding payload: %w", err))
	}

	b.mu.Lock()
	b.sessions[s.ID] = s
	b.mu.Unlock()

	b.log.Info().
		Str("session_id", s.ID).
		Time("expires_at", s.ExpiresAt).
		Msg("login session created")

	return &ports.CreatedSession{
		Session:   *s,
		Payload:   payload,
		QRPayload: string(encoded),
	}, nil
}

// CheckStatus returns a snapshot of the session. Pending sessions past their
// expiry are marked expired, and terminal sessions past the retention window
// are evicted and reported as missing.
func (b *LoginBroker) CheckStatus(sessionID string) (*domain.LoginSession, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	s, ok := b.lookupLocked(sessionID, b.now())
	if !ok {
		return nil, false
	}
	snapshot := *s
	return &snapshot, true
}

// Approve marks a pending, unexpired session approved by identity.
func (b *LoginBroker) Approve(sessionID, identity string) bool {
	_, err := b.transition(sessionID, domain.LoginStatusApproved, identity)
	return err == nil
}

// Reject marks a pending, unexpired session rejected.
func (b *LoginBroker) Reject(sessionID string) bool {
	_, err := b.transition(sessionID, domain.LoginStatusRejected, "")
	return err == nil
}

// ApproveFromPayload approves the session named in a scanned payload. The
// challenge must match and can be consumed once.
func (b *LoginBroker) ApproveFromPayload(ctx context.Context, payload *domain.LoginPayload, identity string) (*domain.LoginSession, error) {
	if err := ValidateLoginPayload(payload, b.now()); err != nil {
		return nil, err
	}
	if identity == "" {
		return nil, apperror.Validation("identity is required")
	}

	b.mu.Lock()
	s, ok := b.lookupLocked(payload.SessionID, b.now())
	var match bool
	if ok {
		match = subtle.ConstantTimeCompare([]byte(s.Challenge), []byte(payload.Challenge)) == 1
	}
	b.mu.Unlock()

	if !ok {
		return nil, apperror.ErrSessionNotFound()
	}
	if !match {
		b.log.Warn().Str("session_id", payload.SessionID).Msg("login challenge mismatch")
		return nil, apperror.ErrChallengeMismatch()
	}

	if b.guard != nil {
		fresh, err := b.guard.CheckAndSet(ctx, challengeScope, payload.Challenge, b.cfg.TTL+maxPayloadSkew)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("consuming challenge: %w", err))
		}
		if !fresh {
			b.log.Warn().Str("session_id", payload.SessionID).Msg("login challenge replayed")
			return nil, apperror.ErrSessionNotPending()
		}
	}

	return b.transition(payload.SessionID, domain.LoginStatusApproved, identity)
}

// WaitForApproval polls the session until it reaches a terminal state.
// It returns nil, nil on timeout or when the session is missing, and the
// context error when ctx is cancelled first.
func (b *LoginBroker) WaitForApproval(ctx context.Context, sessionID string, timeout time.Duration) (*domain.LoginSession, error) {
	if timeout <= 0 {
		timeout = b.cfg.TTL
	}
	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(b.cfg.PollInterval)
	defer ticker.Stop()

	for {
		s, ok := b.CheckStatus(sessionID)
		if !ok {
			return nil, nil
		}
		if s.Status.IsTerminal() {
			return s, nil
		}

		select {
		case <-waitCtx.Done():
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			b.log.Debug().Str("session_id", sessionID).Msg("wait for approval timed out")
			return nil, nil
		case <-ticker.C:
		}
	}
}

// Redeem hands an approved session to the initiator that holds its
// challenge and removes it. A session can be redeemed once.
func (b *LoginBroker) Redeem(sessionID, challenge string) (*domain.LoginSession, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	s, ok := b.lookupLocked(sessionID, b.now())
	if !ok {
		return nil, apperror.ErrSessionNotFound()
	}
	if subtle.ConstantTimeCompare([]byte(s.Challenge), []byte(challenge)) != 1 {
		return nil, apperror.ErrChallengeMismatch()
	}
	if s.Status != domain.LoginStatusApproved {
		return nil, statusError(s.Status)
	}

	delete(b.sessions, sessionID)
	snapshot := *s
	return &snapshot, nil
}

// Release drops a session, e.g. when the QR dialog is closed.
func (b *LoginBroker) Release(sessionID string) {
	b.mu.Lock()
	_, ok := b.sessions[sessionID]
	delete(b.sessions, sessionID)
	b.mu.Unlock()

	if ok {
		b.log.Debug().Str("session_id", sessionID).Msg("login session released")
	}
}

// QRPayload re-encodes the payload of a pending session for rendering.
func (b *LoginBroker) QRPayload(sessionID string) (string, error) {
	b.mu.Lock()
	s, ok := b.lookupLocked(sessionID, b.now())
	var payload domain.LoginPayload
	var status domain.LoginStatus
	if ok {
		payload = b.payloadFor(s)
		status = s.Status
	}
	b.mu.Unlock()

	if !ok {
		return "", apperror.ErrSessionNotFound()
	}
	if status != domain.LoginStatusPending {
		return "", statusError(status)
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return "", apperror.InternalError(err)
	}
	return string(encoded), nil
}

// Sweep expires overdue pending sessions and evicts terminal sessions past
// the retention window.
func (b *LoginBroker) Sweep() (expired, evicted int) {
	now := b.now()

	b.mu.Lock()
	defer b.mu.Unlock()

	for id, s := range b.sessions {
		if s.Status == domain.LoginStatusPending && s.IsExpiredAt(now) {
			b.resolveLocked(s, domain.LoginStatusExpired, "", now)
			expired++
			continue
		}
		if b.evictableLocked(s, now) {
			delete(b.sessions, id)
			evicted++
		}
	}
	return expired, evicted
}

// Run sweeps on the configured interval until ctx is done.
func (b *LoginBroker) Run(ctx context.Context) error {
	ticker := time.NewTicker(b.cfg.SweepInterval)
	defer ticker.Stop()

	b.log.Info().Dur("interval", b.cfg.SweepInterval).Msg("session sweeper started")
	for {
		select {
		case <-ctx.Done():
			b.log.Info().Msg("session sweeper stopped")
			return nil
		case <-ticker.C:
			if expired, evicted := b.Sweep(); expired+evicted > 0 {
				b.log.Debug().Int("expired", expired).Int("evicted", evicted).Msg("sessions swept")
			}
		}
	}
}

// Len returns the number of tracked sessions.
func (b *LoginBroker) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.sessions)
}

func (b *LoginBroker) transition(sessionID string, to domain.LoginStatus, identity string) (*domain.LoginSession, error) {
	now := b.now()

	b.mu.Lock()
	s, ok := b.lookupLocked(sessionID, now)
	if !ok {
		b.mu.Unlock()
		return nil, apperror.ErrSessionNotFound()
	}
	if !domain.CanTransition(s.Status, to) {
		status := s.Status
		b.mu.Unlock()
		b.log.Warn().
			Str("session_id", sessionID).
			Str("status", string(status)).
			Str("target", string(to)).
			Msg("login session transition refused")
		return nil, statusError(status)
	}
	b.resolveLocked(s, to, identity, now)
	snapshot := *s
	b.mu.Unlock()

	b.log.Info().Str("session_id", sessionID).Str("status", string(to)).Msg("login session resolved")
	b.record(to, sessionID)
	return &snapshot, nil
}

// lookupLocked applies lazy expiry and eviction. Callers hold b.mu.
func (b *LoginBroker) lookupLocked(sessionID string, now time.Time) (*domain.LoginSession, bool) {
	s, ok := b.sessions[sessionID]
	if !ok {
		return nil, false
	}
	if s.Status == domain.LoginStatusPending && s.IsExpiredAt(now) {
		b.resolveLocked(s, domain.LoginStatusExpired, "", now)
	}
	if b.evictableLocked(s, now) {
		delete(b.sessions, sessionID)
		return nil, false
	}
	return s, true
}

func (b *LoginBroker) resolveLocked(s *domain.LoginSession, to domain.LoginStatus, identity string, now time.Time) {
	s.Status = to
	if identity != "" {
		s.Identity = identity
	}
	resolved := now
	s.ResolvedAt = &resolved
}

func (b *LoginBroker) evictableLocked(s *domain.LoginSession, now time.Time) bool {
	return s.Status.IsTerminal() && s.ResolvedAt != nil && now.Sub(*s.ResolvedAt) > b.cfg.Retention
}

func (b *LoginBroker) payloadFor(s *domain.LoginSession) domain.LoginPayload {
	return domain.LoginPayload{
		Type:      domain.LoginPayloadType,
		SessionID: s.ID,
		Challenge: s.Challenge,
		Timestamp: s.CreatedAt.UnixMilli(),
		URL:       b.cfg.OriginURL,
	}
}

func (b *LoginBroker) record(status domain.LoginStatus, sessionID string) {
	if b.audit == nil {
		return
	}
	var action domain.AuditAction
	switch status {
	case domain.LoginStatusApproved:
		action = domain.AuditActionQRApproved
	case domain.LoginStatusRejected:
		action = domain.AuditActionQRRejected
	default:
		return
	}
	b.audit.Log(context.Background(), domain.NewAuditLog(action, "login_session", sessionID))
}

func statusError(status domain.LoginStatus) error {
	switch status {
	case domain.LoginStatusPending:
		return apperror.ErrSessionPending()
	case domain.LoginStatusExpired:
		return apperror.ErrSessionExpired()
	case domain.LoginStatusRejected:
		return apperror.ErrSessionRejected()
	default:
		return apperror.ErrSessionNotPending()
	}
}

// ParseLoginPayload decodes and validates a scanned QR payload.
func ParseLoginPayload(raw []byte, now time.Time) (*domain.LoginPayload, error) {
	var p domain.LoginPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, apperror.ErrInvalidPayload("not valid JSON")
	}
	if err := ValidateLoginPayload(&p, now); err != nil {
		return nil, err
	}
	return &p, nil
}

// ValidateLoginPayload rejects payloads of the wrong type, with missing
// fields, or stamped more than five minutes before now.
func ValidateLoginPayload(p *domain.LoginPayload, now time.Time) error {
	switch {
	case p == nil:
		return apperror.ErrInvalidPayload("empty payload")
	case p.Type != domain.LoginPayloadType:
		return apperror.ErrInvalidPayload("unexpected type")
	case p.SessionID == "":
		return apperror.ErrInvalidPayload("missing sessionId")
	case p.Challenge == "":
		return apperror.ErrInvalidPayload("missing challenge")
	case p.Timestamp == 0:
		return apperror.ErrInvalidPayload("missing timestamp")
	case p.URL == "":
		return apperror.ErrInvalidPayload("missing url")
	}

	if raw, err := hex.DecodeString(p.Challenge); err != nil || len(raw) != challengeLen {
		return apperror.ErrInvalidPayload("malformed challenge")
	}

	issued := time.UnixMilli(p.Timestamp)
	if now.Sub(issued) > maxPayloadAge {
		return apperror.ErrSessionExpired()
	}
	if issued.Sub(now) > maxPayloadSkew {
		return apperror.ErrInvalidPayload("timestamp in the future")
	}
	return nil
}
