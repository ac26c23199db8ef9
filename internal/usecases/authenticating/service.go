package authenticating

import (
	"context"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mgeorge47/canteen-console-api/infrastructure/integrator/pos/posclient"
	"github.com/mgeorge47/canteen-console-api/internal/config"
	"github.com/mgeorge47/canteen-console-api/internal/session"
)

// Authenticator manages console sessions. A session wraps the encoded POS
// credential; the credential itself never leaves the server side.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context, token string) error
	Resolve(ctx context.Context, token string) (*session.Session, error)
}

type Service struct {
	cfg      *config.Config
	client   posclient.Client
	sessions session.Store
}

func NewService(cfg *config.Config, client posclient.Client, sessions session.Store) Authenticator {
	return &Service{
		cfg:      cfg,
		client:   client,
		sessions: sessions,
	}
}

// Login verifies the username/password pair against the POS secure hello
// endpoint, caches the encoded credential in a new session, and returns a
// signed console token referencing it.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	credential := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))

	if err := s.client.CheckCredential(ctx, credential); err != nil {
		if reqErr, ok := posclient.AsRequestError(err); ok && reqErr.Unauthorized() {
			return "", ErrInvalidCredentials
		}
		return "", errors.Wrap(err, "verifying credentials against POS")
	}

	id, err := gonanoid.New()
	if err != nil {
		return "", errors.Wrap(err, "generating session ID")
	}

	now := time.Now()
	sess := session.Session{
		ID:         id,
		Username:   username,
		Credential: credential,
		CreatedAt:  now,
	}

	if err := s.sessions.Put(ctx, sess); err != nil {
		return "", errors.Wrap(err, "caching session")
	}

	claims := jwt.RegisteredClaims{
		ID:        id,
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Session.TTL)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Session.Secret))
	if err != nil {
		return "", errors.Wrap(err, "signing session token")
	}

	logrus.WithField("username", username).Info("auth: session created")

	return token, nil
}

// Logout removes the session behind the token. An already-missing session is
// not an error.
func (s *Service) Logout(ctx context.Context, token string) error {
	claims, err := s.parseToken(token)
	if err != nil {
		return err
	}

	if err := s.sessions.Delete(ctx, claims.ID); err != nil {
		return errors.Wrap(err, "deleting session")
	}

	logrus.WithField("username", claims.Subject).Info("auth: session removed")

	return nil
}

// Resolve validates the console token and returns the cached session, or
// ErrSessionNotFound if it is gone (expired, logged out, or restarted away).
func (s *Service) Resolve(ctx context.Context, token string) (*session.Session, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return nil, err
	}

	sess, err := s.sessions.Get(ctx, claims.ID)
	if errors.Is(err, session.ErrNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "fetching session")
	}

	return sess, nil
}

func (s *Service) parseToken(token string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.Session.Secret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
