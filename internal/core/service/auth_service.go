package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/clearview/jobtracker/internal/core/domain"
	"github.com/clearview/jobtracker/internal/core/ports"
)

// AuthService implements registration, login and the identity query.
type AuthService struct {
	repo     ports.AccountRepository
	hasher   ports.PasswordHasher
	codec    ports.TokenCodec
	throttle ports.LoginThrottle
	audit    ports.AuditRecorder
	log      zerolog.Logger

	// dummyDigest is verified against when the username is unknown so both
	// login failure paths cost one hash comparison.
	dummyDigest string
}

func NewAuthService(
	repo ports.AccountRepository,
	hasher ports.PasswordHasher,
	codec ports.TokenCodec,
	throttle ports.LoginThrottle,
	audit ports.AuditRecorder,
	log zerolog.Logger,
) (*AuthService, error) {
	dummy, err := hasher.Hash("jobtracker-dummy-password")
	if err != nil {
		return nil, fmt.Errorf("auth service: %w", err)
	}
	if throttle == nil {
		throttle = unlimitedThrottle{}
	}
	if audit == nil {
		audit = discardAudit{}
	}
	return &AuthService{
		repo:        repo,
		hasher:      hasher,
		codec:       codec,
		throttle:    throttle,
		audit:       audit,
		log:         log,
		dummyDigest: dummy,
	}, nil
}

// Register creates an account. A taken username yields
// domain.ErrUsernameTaken and leaves the store untouched.
func (s *AuthService) Register(ctx context.Context, username, password, remoteIP string) (*domain.Account, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.Account{
		Username:     username,
		PasswordHash: hash,
		Roles:        []string{domain.RoleUser},
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			return nil, domain.ErrUsernameTaken
		}
		return nil, fmt.Errorf("register: %w", err)
	}

	s.log.Info().Int64("account_id", created.ID).Str("username", created.Username).Msg("account registered")
	s.audit.Record(domain.AuthEvent{
		Kind:      domain.AuthEventRegistered,
		Username:  created.Username,
		AccountID: created.ID,
		RemoteIP:  remoteIP,
		At:        time.Now().UTC(),
	})
	return created, nil
}

// Authenticate verifies a username/password pair. Unknown usernames and wrong
// passwords both yield domain.ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*domain.Account, error) {
	account, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			s.hasher.Verify(password, s.dummyDigest)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	if !s.hasher.Verify(password, account.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	return account, nil
}

// Login throttles, authenticates and issues a bearer token.
func (s *AuthService) Login(ctx context.Context, username, password, remoteIP string) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	allowed, err := s.throttle.Allow(ctx, username)
	if err != nil {
		s.log.Warn().Err(err).Msg("login throttle unavailable, allowing attempt")
	} else if !allowed {
		s.record(domain.AuthEventLoginThrottled, username, 0, remoteIP, "")
		return nil, domain.ErrTooManyAttempts
	}

	account, err := s.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			s.record(domain.AuthEventLoginFailed, username, 0, remoteIP, "invalid_credentials")
		}
		return nil, err
	}

	token, expiresAt, err := s.codec.Issue(account.Username)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	s.record(domain.AuthEventLoginSucceeded, account.Username, account.ID, remoteIP, "")
	return &ports.LoginResult{Token: token, ExpiresAt: expiresAt, Account: account}, nil
}

// Me returns the public identity of the principal bound to ctx.
func (s *AuthService) Me(ctx context.Context) (*ports.Identity, error) {
	account, err := domain.RequirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	return &ports.Identity{ID: account.ID, Username: account.Username}, nil
}

func (s *AuthService) record(kind domain.AuthEventKind, username string, accountID int64, remoteIP, reason string) {
	s.audit.Record(domain.AuthEvent{
		Kind:      kind,
		Username:  username,
		AccountID: accountID,
		RemoteIP:  remoteIP,
		Reason:    reason,
		At:        time.Now().UTC(),
	})
}

type unlimitedThrottle struct{}

func (unlimitedThrottle) Allow(context.Context, string) (bool, error) { return true, nil }

type discardAudit struct{}

func (discardAudit) Record(domain.AuthEvent) {}
