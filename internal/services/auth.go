package services

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/jeongjingoo/tech/internal/models"
	"github.com/jeongjingoo/tech/internal/repository"
)

var (
	ErrMissingCredentials = errors.New("id and password are required")
	ErrUnknownID          = errors.New("id does not exist")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// Claims is the payload of an access token. Subject carries the login id.
type Claims struct {
	Name string `json:"name"`
	Team string `json:"team"`
	jwt.RegisteredClaims
}

func (c Claims) Profile() models.Profile {
	return models.Profile{ID: c.Subject, Name: c.Name, Team: c.Team}
}

type AuthService struct {
	repo   repository.TechnicianRepository
	key    []byte
	ttl    time.Duration
	log    logrus.FieldLogger
	now    func() time.Time
	issuer string
}

func NewAuthService(repo repository.TechnicianRepository, secret string, ttl time.Duration, log logrus.FieldLogger) *AuthService {
	return &AuthService{
		repo:   repo,
		key:    []byte(secret),
		ttl:    ttl,
		log:    log,
		now:    time.Now,
		issuer: "techcenter",
	}
}

// Login checks the credentials and issues an access token. Legacy plaintext
// passwords are upgraded to a hash on success.
func (s *AuthService) Login(ctx context.Context, id, password string) (models.Profile, string, error) {
	id = strings.TrimSpace(id)
	if id == "" || password == "" {
		return models.Profile{}, "", ErrMissingCredentials
	}

	tech, err := s.repo.FindByLoginID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return models.Profile{}, "", ErrUnknownID
	}
	if err != nil {
		return models.Profile{}, "", err
	}

	ok, legacy := VerifyPassword(tech.Password, password)
	if !ok {
		return models.Profile{}, "", ErrInvalidCredentials
	}
	if legacy {
		s.upgrade(ctx, tech, password)
	}

	profile := tech.Profile()
	token, err := s.Issue(profile)
	if err != nil {
		return models.Profile{}, "", err
	}
	return profile, token, nil
}

func (s *AuthService) upgrade(ctx context.Context, tech *models.Technician, password string) {
	hash, err := HashPassword(password)
	if err == nil {
		err = s.repo.SetPassword(ctx, tech.ID, hash)
	}
	if err != nil {
		// login still succeeds, the next one retries
		s.log.WithError(err).WithField("technician", tech.LoginID).Warn("password upgrade failed")
		return
	}
	s.log.WithField("technician", tech.LoginID).Info("upgraded plaintext password")
}

// Issue signs an HS256 token for p.
func (s *AuthService) Issue(p models.Profile) (string, error) {
	now := s.now()
	claims := Claims{
		Name: p.Name,
		Team: p.Team,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.ID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}
	return signed, nil
}

// Parse validates a token string and returns its claims.
func (s *AuthService) Parse(token string) (*Claims, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(
		token,
		&claims,
		func(t *jwt.Token) (any, error) { return s.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}
