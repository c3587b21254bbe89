package auth

import (
	"errors"
	"time"

	"servicehub/database/repository"
	"servicehub/models"
	"servicehub/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Account roles carried in the JWT role claim.
const (
	RoleUser     = "user"
	RoleProvider = "provider"
	RoleAdmin    = "admin"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrMissingFields      = errors.New("name, email and password are required")
)

// Session is the result of a successful signup or signin.
type Session struct {
	Subject string `json:"subject"`
	Role    string `json:"role"`
	Token   string `json:"token"`
}

// Account stores, reduced to the lookups and inserts signup needs.
type UserAccounts interface {
	GetByEmail(email string) (*models.User, error)
	Create(user *models.User) error
}

type ProviderAccounts interface {
	GetByEmail(email string) (*models.Provider, error)
	Create(provider *models.Provider) error
}

type AdminAccounts interface {
	GetByEmail(email string) (*models.Admin, error)
	Create(admin *models.Admin) error
}

// DefaultAuthService issues sessions for the three account types. Tokens are
// JWTs; a SHA-256 hash of the active token is cached in Redis per subject so
// middleware can reject revoked sessions.
type DefaultAuthService struct {
	Users     UserAccounts
	Providers ProviderAccounts
	Admins    AdminAccounts
	Cache     *redis.Client
	TokenTTL  time.Duration
}

func (s *DefaultAuthService) tokenTTL() time.Duration {
	if s.TokenTTL > 0 {
		return s.TokenTTL
	}
	return 72 * time.Hour
}

func (s *DefaultAuthService) issueSession(subject, email, role string) (*Session, error) {
	token, err := utils.GenerateToken(subject, email, role, s.tokenTTL())
	if err != nil {
		return nil, err
	}
	if s.Cache != nil {
		if err := utils.CacheAuthToken(s.Cache, subject, utils.HashToken(token), s.tokenTTL()); err != nil {
			return nil, err
		}
	}
	return &Session{Subject: subject, Role: role, Token: token}, nil
}

func hashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func checkPassword(hash, plain string) error {
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// RegisterUser creates a customer account and returns a live session.
func (s *DefaultAuthService) RegisterUser(u *models.User) (*Session, error) {
	if u.Name == "" || u.Email == "" || u.Password == "" {
		return nil, ErrMissingFields
	}
	if _, err := s.Users.GetByEmail(u.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := hashPassword(u.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	u.ID = uuid.New().String()
	u.Password = ""
	u.PasswordHash = hash
	u.Orders = []models.UserOrder{}
	u.CreatedAt = now
	u.UpdatedAt = now
	if err := s.Users.Create(u); err != nil {
		return nil, err
	}
	return s.issueSession(u.ID, u.Email, RoleUser)
}

// LoginUser verifies a customer's credentials and returns a live session.
func (s *DefaultAuthService) LoginUser(email, password string) (*models.User, *Session, error) {
	u, err := s.Users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}
	if err := checkPassword(u.PasswordHash, password); err != nil {
		return nil, nil, err
	}
	sess, err := s.issueSession(u.ID, u.Email, RoleUser)
	if err != nil {
		return nil, nil, err
	}
	return u, sess, nil
}

// RegisterProvider creates a provider account and returns a live session.
func (s *DefaultAuthService) RegisterProvider(p *models.Provider) (*Session, error) {
	if p.Name == "" || p.Email == "" || p.Password == "" {
		return nil, ErrMissingFields
	}
	if _, err := s.Providers.GetByEmail(p.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := hashPassword(p.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	p.ID = uuid.New().String()
	p.Password = ""
	p.PasswordHash = hash
	p.Orders = []models.ProviderOrder{}
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := s.Providers.Create(p); err != nil {
		return nil, err
	}
	return s.issueSession(p.ID, p.Email, RoleProvider)
}

// LoginProvider verifies a provider's credentials and returns a live session.
func (s *DefaultAuthService) LoginProvider(email, password string) (*models.Provider, *Session, error) {
	p, err := s.Providers.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}
	if err := checkPassword(p.PasswordHash, password); err != nil {
		return nil, nil, err
	}
	sess, err := s.issueSession(p.ID, p.Email, RoleProvider)
	if err != nil {
		return nil, nil, err
	}
	return p, sess, nil
}

// RegisterAdmin creates an admin account and returns a live session.
func (s *DefaultAuthService) RegisterAdmin(a *models.Admin) (*Session, error) {
	if a.Name == "" || a.Email == "" || a.Password == "" {
		return nil, ErrMissingFields
	}
	if _, err := s.Admins.GetByEmail(a.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := hashPassword(a.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	a.ID = uuid.New().String()
	a.Password = ""
	a.PasswordHash = hash
	a.Orders = []models.AdminOrder{}
	a.CreatedAt = now
	a.UpdatedAt = now
	if err := s.Admins.Create(a); err != nil {
		return nil, err
	}
	return s.issueSession(a.ID, a.Email, RoleAdmin)
}

// LoginAdmin verifies an admin's credentials and returns a live session.
func (s *DefaultAuthService) LoginAdmin(email, password string) (*models.Admin, *Session, error) {
	a, err := s.Admins.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}
	if err := checkPassword(a.PasswordHash, password); err != nil {
		return nil, nil, err
	}
	sess, err := s.issueSession(a.ID, a.Email, RoleAdmin)
	if err != nil {
		return nil, nil, err
	}
	return a, sess, nil
}

// Logout revokes the cached session for a subject.
func (s *DefaultAuthService) Logout(subject string) error {
	if s.Cache == nil {
		return nil
	}
	return utils.RevokeAuthToken(s.Cache, subject)
}
