package auth

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"service-food-delivery/internal/apperr"
	"service-food-delivery/internal/domain"
	"service-food-delivery/internal/logx"
)

const minPasswordLen = 6

// SignupInput is a customer registration request.
type SignupInput struct {
	Name     string
	Email    string
	Password string
	Location domain.Coordinate
	Zone     domain.ZoneType
}

// Session is an authenticated customer with its bearer token.
type Session struct {
	Customer *domain.Customer
	Token    string
}

// Service registers and authenticates customers.
type Service struct {
	repo             customerRepository
	tokens           *TokenManager
	operationTimeout time.Duration
	logger           logx.Logger
	hashCost         int
}

// NewService creates an auth Service.
func NewService(r customerRepository, tokens *TokenManager, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		repo:             r,
		tokens:           tokens,
		operationTimeout: timeout,
		logger:           logger,
		hashCost:         bcrypt.DefaultCost,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateSignup(in *SignupInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return apperr.Invalidf("please provide all required fields")
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return apperr.Invalidf("please provide a valid email")
	}
	if len(in.Password) < minPasswordLen {
		return apperr.Invalidf("password must be at least %d characters", minPasswordLen)
	}
	if !in.Zone.Valid() {
		return apperr.Invalidf("invalid zone '%s', must be Urban, Suburban, or Remote", in.Zone)
	}
	if !in.Location.Valid() {
		return apperr.Invalidf("please provide valid location (lat and lng)")
	}
	return nil
}

// Signup registers a first-time customer and returns a session.
func (s *Service) Signup(ctx context.Context, in SignupInput) (*Session, error) {
	if err := validateSignup(&in); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.hashCost)
	if err != nil {
		return nil, err
	}

	c := &domain.Customer{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Location:     in.Location,
		Zone:         in.Zone,
		IsFirstOrder: true,
		IsActive:     true,
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info("customer registered",
		logx.String("event", "customer_registered"),
		logx.String("customer_id", c.CustomerID),
	)
	return s.session(c)
}

// Login checks the credentials and returns a session.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, apperr.Invalidf("please provide email and password")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	c, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if c == nil || bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) != nil {
		return nil, apperr.Unauthorizedf("incorrect email or password")
	}
	if !c.IsActive {
		return nil, apperr.Unauthorizedf("account is inactive")
	}
	return s.session(c)
}

func (s *Service) session(c *domain.Customer) (*Session, error) {
	token, err := s.tokens.Issue(c.ID)
	if err != nil {
		return nil, err
	}
	return &Session{Customer: c, Token: token}, nil
}

// Authenticate resolves a bearer token to an active customer.
func (s *Service) Authenticate(ctx context.Context, token string) (*domain.Customer, error) {
	id, err := s.tokens.Parse(token)
	if err != nil {
		return nil, apperr.Unauthorizedf("invalid or expired token")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.Unauthorizedf("the customer belonging to this token no longer exists")
	}
	if !c.IsActive {
		return nil, apperr.Unauthorizedf("account is inactive")
	}
	return c, nil
}

// Me returns the customer by id.
func (s *Service) Me(ctx context.Context, id int64) (*domain.Customer, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.NotFoundf("customer not found")
	}
	return c, nil
}
