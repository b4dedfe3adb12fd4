// Package auth signs users up and in and issues the session tokens that
// protect the /api routes.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Enryuk3/kash-app/pkg/config"
	"github.com/Enryuk3/kash-app/pkg/domain"
	"github.com/Enryuk3/kash-app/pkg/domain/user"
	"github.com/Enryuk3/kash-app/pkg/dto"
	"github.com/Enryuk3/kash-app/pkg/repository"
	"github.com/Enryuk3/kash-app/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// dummyHash is compared against when the email is unknown so both sign-in
// failure paths cost one bcrypt comparison.
const dummyHash = "$2a$10$7zFqzDbD3RrlkMTczbXG9OWZ0FLOXjIxXzSZ.QZxkVXjXcx7QZQiC"

// Claim names carried by a session token.
const (
	ClaimSubject   = "sub"
	ClaimSessionID = "sid"
	ClaimName      = "name"
	ClaimEmail     = "email"
	ClaimExpiry    = "exp"
	ClaimIssuedAt  = "iat"
)

// Service registers users and issues and verifies session tokens.
type Service struct {
	uow    repository.UnitOfWork
	cfg    *config.Jwt
	logger *slog.Logger
	now    func() time.Time
}

// New returns an auth service signing tokens with cfg.
func New(
	uow repository.UnitOfWork,
	cfg *config.Jwt,
	logger *slog.Logger,
) *Service {
	return &Service{uow: uow, cfg: cfg, logger: logger, now: time.Now}
}

// SignUp registers a new user. The email must not be taken.
func (s *Service) SignUp(
	ctx context.Context,
	name, email, password string,
) (*dto.UserRead, error) {
	log := s.logger.With("context", "SignUp")
	u, err := user.NewUser(name, email, password)
	if err != nil {
		return nil, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return fmt.Errorf("failed to get user repository: %w", err)
		}
		existing, err := repo.GetByEmail(ctx, u.Email)
		switch {
		case err == nil && existing != nil:
			return user.ErrEmailTaken
		case err != nil && !errors.Is(err, domain.ErrNotFound):
			return err
		}
		err = repo.Create(ctx, &dto.UserCreate{
			ID:           u.ID,
			Name:         u.Name,
			Email:        u.Email,
			PasswordHash: u.PasswordHash,
			CreatedAt:    u.CreatedAt,
			UpdatedAt:    u.UpdatedAt,
		})
		if errors.Is(err, domain.ErrAlreadyExists) {
			return user.ErrEmailTaken
		}
		return err
	})
	if err != nil {
		log.Warn("Sign-up failed", "error", err)
		return nil, err
	}
	log.Info("User signed up", "user_id", u.ID)
	return &dto.UserRead{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}, nil
}

// SignIn checks the credentials and returns the user. Unknown emails and
// wrong passwords both yield ErrInvalidCredentials.
func (s *Service) SignIn(
	ctx context.Context,
	email, password string,
) (*dto.UserRead, error) {
	log := s.logger.With("context", "SignIn")
	repo, err := s.uow.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository: %w", err)
	}
	u, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			log.Error("User lookup failed", "error", err)
			return nil, err
		}
		_ = utils.CheckPasswordHash(password, dummyHash)
		return nil, user.ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, u.PasswordHash) {
		log.Warn("Sign-in rejected", "user_id", u.ID)
		return nil, user.ErrInvalidCredentials
	}
	log.Info("User signed in", "user_id", u.ID)
	return u, nil
}

// IssueSession signs a new session token for u.
func (s *Service) IssueSession(u *dto.UserRead) (*dto.Session, error) {
	now := s.now()
	session := &dto.Session{
		ID:        uuid.New(),
		UserID:    u.ID,
		ExpiresAt: now.Add(s.cfg.Expiry).UTC().Truncate(time.Second),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		ClaimSubject:   u.ID.String(),
		ClaimSessionID: session.ID.String(),
		ClaimName:      u.Name,
		ClaimEmail:     u.Email,
		ClaimIssuedAt:  now.Unix(),
		ClaimExpiry:    session.ExpiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		s.logger.Error("Signing session token failed", "user_id", u.ID, "error", err)
		return nil, err
	}
	session.Token = signed
	return session, nil
}

// ParseToken verifies the signature and expiry of a session token.
func (s *Service) ParseToken(raw string) (*jwt.Token, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		return []byte(s.cfg.Secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	return token, nil
}

// ResolveUser maps a verified token to its user. The user must still exist.
func (s *Service) ResolveUser(
	ctx context.Context,
	token *jwt.Token,
) (*dto.SessionUser, error) {
	session, err := sessionFromToken(token)
	if err != nil {
		return nil, err
	}
	repo, err := s.uow.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository: %w", err)
	}
	u, err := repo.Get(ctx, session.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}
	return &dto.SessionUser{ID: u.ID, Name: u.Name, Email: u.Email}, nil
}

// Session returns the view of the session held in raw. An invalid or empty
// token gives an empty view and no error.
func (s *Service) Session(ctx context.Context, raw string) (*dto.SessionView, error) {
	if raw == "" {
		return &dto.SessionView{}, nil
	}
	token, err := s.ParseToken(raw)
	if err != nil {
		return &dto.SessionView{}, nil
	}
	u, err := s.ResolveUser(ctx, token)
	if errors.Is(err, domain.ErrUnauthorized) {
		return &dto.SessionView{}, nil
	}
	if err != nil {
		return nil, err
	}
	session, _ := sessionFromToken(token)
	return &dto.SessionView{Session: session, User: u}, nil
}

func sessionFromToken(token *jwt.Token) (*dto.Session, error) {
	if token == nil {
		return nil, domain.ErrUnauthorized
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	sub, _ := claims[ClaimSubject].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	session := &dto.Session{UserID: userID}
	if sid, ok := claims[ClaimSessionID].(string); ok {
		session.ID, _ = uuid.Parse(sid)
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		session.ExpiresAt = exp.UTC()
	}
	return session, nil
}
