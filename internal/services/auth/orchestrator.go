package auth

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/forgebound/forge-api/internal/entities"
	"github.com/forgebound/forge-api/internal/errors"
	"github.com/forgebound/forge-api/internal/pkg/clock"
	"github.com/forgebound/forge-api/internal/pkg/idgen"
	"github.com/forgebound/forge-api/internal/repositories/user"
)

const minPasswordLength = 8

var (
	usernameRegex = regexp.MustCompile(`^[A-Za-z0-9_]{3,20}$`)
	emailRegex    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// Config holds the dependencies for the auth service
type Config struct {
	UserRepo user.Repository
	Tokens   *TokenManager
	IDGen    idgen.Generator
	Clock    clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.UserRepo == nil {
		vb.RequiredField("UserRepo")
	}
	if c.Tokens == nil {
		vb.RequiredField("Tokens")
	}
	if c.IDGen == nil {
		vb.RequiredField("IDGen")
	}

	return vb.Build()
}

type orchestrator struct {
	userRepo user.Repository
	tokens   *TokenManager
	idGen    idgen.Generator
	clock    clock.Clock
}

// NewOrchestrator creates the auth service with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &orchestrator{
		userRepo: cfg.UserRepo,
		tokens:   cfg.Tokens,
		idGen:    cfg.IDGen,
		clock:    c,
	}, nil
}

func (o *orchestrator) Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)

	vb := errors.NewValidationBuilder()
	if !usernameRegex.MatchString(username) {
		vb.InvalidField("username", "must be 3-20 letters, digits, or underscores")
	}
	if !emailRegex.MatchString(email) {
		vb.InvalidField("email", "must be a valid email address")
	}
	if len(input.Password) < minPasswordLength {
		vb.Fieldf("password", "must be at least %d characters", minPasswordLength)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to hash password")
	}

	now := o.clock.Now().UnixMilli()
	u := &entities.User{
		ID:           o.idGen.Generate(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := o.userRepo.Create(ctx, user.CreateInput{User: u})
	if err != nil {
		return nil, err
	}

	token, err := o.tokens.Issue(created.User.ID)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "registered user",
		"user_id", created.User.ID,
		"username", created.User.Username)

	return &RegisterOutput{User: created.User, Token: token}, nil
}

func (o *orchestrator) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	out, err := o.userRepo.GetByLogin(ctx, user.GetByLoginInput{
		UsernameOrEmail: input.UsernameOrEmail,
	})
	if err != nil {
		if errors.IsNotFound(err) || errors.IsInvalidArgument(err) {
			// Unknown account and wrong password are indistinguishable.
			return nil, errors.Unauthenticated("invalid credentials")
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(out.User.PasswordHash), []byte(input.Password)) != nil {
		return nil, errors.Unauthenticated("invalid credentials")
	}

	token, err := o.tokens.Issue(out.User.ID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{User: out.User, Token: token}, nil
}

func (o *orchestrator) Authenticate(ctx context.Context, input *AuthenticateInput) (*AuthenticateOutput, error) {
	if input == nil || input.Token == "" {
		return nil, errors.Unauthenticated("missing bearer token")
	}

	userID, err := o.tokens.Verify(input.Token)
	if err != nil {
		return nil, err
	}

	out, err := o.userRepo.GetByID(ctx, user.GetByIDInput{ID: userID})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.Unauthenticated("invalid token")
		}
		return nil, err
	}

	return &AuthenticateOutput{User: out.User}, nil
}

func (o *orchestrator) Refresh(ctx context.Context, input *RefreshInput) (*RefreshOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.InvalidArgument("user ID is required")
	}

	token, err := o.tokens.Issue(input.UserID)
	if err != nil {
		return nil, err
	}
	return &RefreshOutput{Token: token}, nil
}
