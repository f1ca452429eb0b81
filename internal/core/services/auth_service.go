package services

import (
	"context"
	"errors"
	"log"

	"hoteldesk/internal/adapters/persistence/repositories"
	"hoteldesk/internal/config"
	"hoteldesk/internal/core/domain"
	"hoteldesk/internal/pkg/jwt"
	"hoteldesk/internal/pkg/normalize"
	"hoteldesk/internal/pkg/password"

	"github.com/google/uuid"
)

// AuthService handles registration, login, and session validation
type AuthService struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// RegisterInput represents registration input. At least one of
// Email/Phone must be present.
type RegisterInput struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// LoginInput represents login input. Identifier is an email or phone.
type LoginInput struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// AuthResponse represents a successful login
type AuthResponse struct {
	User        *domain.PublicUser `json:"user"`
	AccessToken string             `json:"accessToken"`
}

// Register registers a new user. No session is issued; the caller must
// log in separately.
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*domain.PublicUser, error) {
	email := normalize.Email(input.Email)
	phone := normalize.Phone(input.Phone)

	// 1. Validate input
	if email == "" && phone == "" {
		return nil, domain.ErrIdentifierRequired
	}
	if input.Password == "" {
		return nil, domain.ErrPasswordRequired
	}
	if !password.ValidatePassword(input.Password) {
		return nil, domain.ErrPasswordTooShort
	}

	// 2. Check for an existing user on either identifier
	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailTaken
	}

	exists, err = s.userRepo.ExistsByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrPhoneTaken
	}

	// 3. Hash password
	hashedPassword, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	// 4. Create user
	user := &domain.User{
		ID:       uuid.New().String(),
		Email:    email,
		Phone:    phone,
		Password: hashedPassword,
		Role:     domain.RoleReceptionist,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("✅ User registered: %s", identifierOf(user))
	return user.ToPublic(), nil
}

// Login authenticates a user by email or phone. Failures are always the
// generic ErrInvalidCredentials so callers cannot tell an unknown
// identifier from a wrong password.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	if input.Identifier == "" || input.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	// 1. Find user by normalized email or phone
	user, err := s.lookupUser(ctx, input.Identifier)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	// 2. Verify password
	if !password.Verify(input.Password, user.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	// 3. Issue session token
	accessToken, err := jwt.GenerateAccessToken(
		user.ID,
		user.Email,
		user.Phone,
		string(user.Role),
		s.cfg.JWT.Secret,
		s.cfg.JWT.TokenMinutes,
	)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ User logged in: %s", identifierOf(user))

	return &AuthResponse{
		User:        user.ToPublic(),
		AccessToken: accessToken,
	}, nil
}

// ValidateAccessToken validates a session token
func (s *AuthService) ValidateAccessToken(accessToken string) (*jwt.Claims, error) {
	return jwt.ValidateAccessToken(accessToken, s.cfg.JWT.Secret)
}

// lookupUser tries the identifier under both normalizations. An email
// address never survives the digit-strip, so the two lookups cannot
// collide.
func (s *AuthService) lookupUser(ctx context.Context, identifier string) (*domain.User, error) {
	user, err := s.userRepo.GetByIdentifier(ctx, normalize.Email(identifier))
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	return s.userRepo.GetByIdentifier(ctx, normalize.Phone(identifier))
}

func identifierOf(user *domain.User) string {
	if user.Email != "" {
		return user.Email
	}
	return user.Phone
}
