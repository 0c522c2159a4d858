package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/pradiptara/devconnect/internal/domain/entity"
	repo "github.com/pradiptara/devconnect/internal/domain/repository"
	"github.com/pradiptara/devconnect/pkg/gravatar"
	"github.com/pradiptara/devconnect/pkg/helpers"
	"github.com/pradiptara/devconnect/pkg/mailer"
)

// ErrUserExists signals that the email is already registered. It is
// caller-correctable and distinct from validation and dependency errors.
var ErrUserExists = errors.New("user already exists")

// PasswordHasher is the one-way, salted credential hasher.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) bool
}

// TokenIssuer signs a claims payload carrying the account id.
type TokenIssuer interface {
	GenerateToken(userID string) (string, time.Time, error)
}

// Service implements the registration workflow: uniqueness check, avatar
// derivation, password hashing, persistence, and token issuance.
// Redis, Pub, and ES are optional; when nil the corresponding best-effort
// side effect is skipped.
type Service struct {
	Repo         repo.UserRepository
	Hasher       PasswordHasher
	Issuer       TokenIssuer
	Avatar       gravatar.Options
	Redis        *redis.Client
	Pub          *helpers.RabbitPublisher
	ES           *elasticsearch.Client
	ESUsersIndex string
	Logger       *logrus.Logger
	MailEnabled  bool
}

func NewService(r repo.UserRepository, hasher PasswordHasher, issuer TokenIssuer, avatar gravatar.Options, rdb *redis.Client, pub *helpers.RabbitPublisher, es *elasticsearch.Client, esUsersIndex string, logger *logrus.Logger, mailEnabled bool) *Service {
	return &Service{
		Repo:         r,
		Hasher:       hasher,
		Issuer:       issuer,
		Avatar:       avatar,
		Redis:        rdb,
		Pub:          pub,
		ES:           es,
		ESUsersIndex: esUsersIndex,
		Logger:       logger,
		MailEnabled:  mailEnabled,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register creates a new account and returns the persisted user together
// with a signed session token. Steps run in strict order; no side effect
// happens before the duplicate pre-check passes. The pre-check is not
// atomic with respect to concurrent registrations for the same email; the
// store's unique constraint is the authoritative tie-breaker, and its
// violation also maps to ErrUserExists.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*entity.User, string, error) {
	existing, err := s.Repo.GetByEmail(ctx, in.Email)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrUserExists
	}

	// Pure URL construction, no call to the image service.
	avatarURL := gravatar.URL(in.Email, s.Avatar)

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return nil, "", err
	}

	u := &entity.User{
		Name:      in.Name,
		Email:     in.Email,
		Password:  hash,
		AvatarURL: avatarURL,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, "", ErrUserExists
		}
		return nil, "", err
	}

	token, exp, err := s.Issuer.GenerateToken(u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("sign token failed")
		}
		return nil, "", err
	}

	s.recordSession(ctx, u, exp)
	s.indexUser(ctx, u)
	s.enqueueWelcome(ctx, u)

	return u, token, nil
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

func sessionKey(userID string) string {
	return "user:session:" + userID
}

// recordSession caches the fresh account in Redis so the signup token can
// be used immediately. Failures are logged and swallowed.
func (s *Service) recordSession(ctx context.Context, u *entity.User, exp time.Time) {
	if s.Redis == nil {
		return
	}
	key := sessionKey(u.ID)
	pipe := s.Redis.Pipeline()
	pipe.HSet(ctx, key, map[string]any{
		"user_id":    u.ID,
		"email":      u.Email,
		"name":       u.Name,
		"avatar_url": u.AvatarURL,
		"created_at": nowRFC3339(),
	})
	pipe.ExpireAt(ctx, key, exp)
	if _, err := pipe.Exec(ctx); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("key", key).Warn("redis pipeline failed")
	}
}

// indexUser indexes the public profile to Elasticsearch, best effort.
func (s *Service) indexUser(ctx context.Context, u *entity.User) {
	if s.ES == nil || s.ESUsersIndex == "" {
		return
	}
	doc := map[string]any{
		"id":         u.ID,
		"email":      u.Email,
		"name":       u.Name,
		"avatar_url": u.AvatarURL,
		"created_at": u.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESUsersIndex, DocumentID: u.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("user_id", u.ID).Warn("es index response error")
	}
}

// enqueueWelcome puts a welcome email on the queue for the worker.
func (s *Service) enqueueWelcome(ctx context.Context, u *entity.User) {
	if s.Pub == nil || !s.MailEnabled {
		return
	}
	job := mailer.WelcomeJob(u.Email, u.Name)
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("welcome email publish failed")
	}
}
