package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/storefront/ecommerce-services/internal/core/domain"
	"github.com/storefront/ecommerce-services/internal/core/ports"
	"github.com/storefront/ecommerce-services/internal/core/validation"
)

const (
	defaultTokenTTL         = time.Hour
	defaultTransactionLimit = 20
	maxTransactionLimit     = 100
)

// CustomerService implements account management, authentication and the
// wallet operations.
type CustomerService struct {
	repo      ports.CustomerRepository
	ledger    ports.LedgerRepository
	publisher LedgerPublisher
	idem      IdempotencyStore
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

// CustomerServiceDeps groups the collaborators of CustomerService.
type CustomerServiceDeps struct {
	Repo      ports.CustomerRepository
	Ledger    ports.LedgerRepository
	Publisher LedgerPublisher
	Idem      IdempotencyStore
	JWTSecret string
	TokenTTL  time.Duration
}

func NewCustomerService(deps CustomerServiceDeps, logger zerolog.Logger) *CustomerService {
	ttl := deps.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &CustomerService{
		repo:      deps.Repo,
		ledger:    deps.Ledger,
		publisher: deps.Publisher,
		idem:      deps.Idem,
		jwtSecret: deps.JWTSecret,
		tokenTTL:  ttl,
		logger:    logger,
	}
}

// Register creates an account with an empty wallet and the customer role.
func (s *CustomerService) Register(ctx context.Context, in ports.RegisterCustomerInput) (uint, error) {
	if err := validation.Struct(in); err != nil {
		return 0, err
	}

	_, err := s.repo.FindByUsername(ctx, in.Username)
	switch {
	case err == nil:
		return 0, &domain.DuplicateUsernameError{Username: in.Username}
	case !errors.Is(err, domain.ErrCustomerNotFound):
		return 0, fmt.Errorf("register customer: %w", err)
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return 0, err
	}

	c := &domain.Customer{
		FullName:      in.FullName,
		Username:      in.Username,
		PasswordHash:  hash,
		Age:           in.Age,
		Address:       in.Address,
		Gender:        in.Gender,
		MaritalStatus: in.MaritalStatus,
		WalletBalance: decimal.Zero,
		Role:          domain.RoleCustomer,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		// Lost a race against a concurrent registration of the same name.
		if errors.Is(err, domain.ErrDuplicateUsername) {
			return 0, &domain.DuplicateUsernameError{Username: in.Username}
		}
		return 0, fmt.Errorf("register customer: %w", err)
	}

	s.logger.Info().Uint("customer_id", c.ID).Str("username", c.Username).Msg("customer registered")
	return c.ID, nil
}

// Update applies the present fields of in to the account.
func (s *CustomerService) Update(ctx context.Context, username string, in ports.UpdateCustomerInput) error {
	c, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if err := validation.Struct(in); err != nil {
		return err
	}

	patch := domain.CustomerPatch{
		FullName:      in.FullName,
		Age:           in.Age,
		Address:       in.Address,
		Gender:        in.Gender,
		MaritalStatus: in.MaritalStatus,
	}
	if in.Password != nil {
		hash, err := hashPassword(*in.Password)
		if err != nil {
			return err
		}
		patch.PasswordHash = &hash
	}
	patch.Apply(c)

	if err := s.repo.Update(ctx, c); err != nil {
		return err
	}
	s.logger.Info().Str("username", username).Msg("customer updated")
	return nil
}

func (s *CustomerService) Delete(ctx context.Context, username string) error {
	if err := s.repo.Delete(ctx, username); err != nil {
		return err
	}
	s.logger.Info().Str("username", username).Msg("customer deleted")
	return nil
}

func (s *CustomerService) Get(ctx context.Context, username string) (*domain.Customer, error) {
	return s.repo.FindByUsername(ctx, username)
}

func (s *CustomerService) GetByID(ctx context.Context, id uint) (*domain.Customer, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.repo.List(ctx)
}

// Login checks the credentials and returns a signed HS256 token whose subject
// is the customer id. Unknown usernames and wrong passwords are
// indistinguishable to the caller.
func (s *CustomerService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	c, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	return s.generateToken(c)
}

func (s *CustomerService) generateToken(c *domain.Customer) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(c.ID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
