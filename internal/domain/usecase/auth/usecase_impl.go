package auth

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"golf-api/internal/domain/distance"
	"golf-api/internal/domain/entity"
	"golf-api/internal/domain/gateway/db"
	"golf-api/internal/domain/model"
	"golf-api/pkg/log"
	"golf-api/pkg/msg"
	"golf-api/pkg/util/numberutils"
)

const tokenType = "Bearer"

// values of the typ claim
const (
	accessTokenType  = "access"
	refreshTokenType = "refresh"
)

// Config holds the token and password settings
type Config struct {
	Secret     []byte
	Issuer     string
	TokenTTL   time.Duration
	RefreshTTL time.Duration
	BcryptCost int
	// AdminUsernames are granted the admin flag when they register
	AdminUsernames []string
}

type claims struct {
	Admin bool   `json:"adm"`
	Type  string `json:"typ"`
	jwt.RegisteredClaims
}

type authUseCase struct {
	gateway db.UserGateway
	config  Config
	clock   clockwork.Clock
}

func NewAuthUseCase(gateway db.UserGateway, config Config, clock clockwork.Clock) UseCase {
	if config.BcryptCost == 0 {
		config.BcryptCost = bcrypt.DefaultCost
	}
	if config.TokenTTL == 0 {
		config.TokenTTL = 24 * time.Hour
	}
	if config.RefreshTTL == 0 {
		config.RefreshTTL = 7 * 24 * time.Hour
	}
	return &authUseCase{
		gateway: gateway,
		config:  config,
		clock:   clock,
	}
}

func (uc *authUseCase) Register(ctx context.Context, dto model.RegisterRequestDTO) (*entity.User, error) {
	username := strings.TrimSpace(dto.Username)
	if username == "" {
		return nil, &distance.ValidationError{Field: "username"}
	}
	if dto.Password == "" {
		return nil, &distance.ValidationError{Field: "password"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), uc.config.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := uc.gateway.Create(ctx, entity.User{
		Username:     username,
		Email:        strings.TrimSpace(dto.Email),
		PasswordHash: string(hash),
		IsAdmin:      slices.Contains(uc.config.AdminUsernames, username),
	})
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	log.Info(msg.GetMessage("auth.registered", user.Username), zap.String("user_id", user.ID))
	return user, nil
}

func (uc *authUseCase) Login(ctx context.Context, dto model.LoginRequestDTO) (*model.TokenDTO, error) {
	user, err := uc.gateway.FindByUsername(ctx, strings.TrimSpace(dto.Username))
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(dto.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := uc.issueAccessToken(user)
	if err != nil {
		return nil, err
	}

	refreshExpiresAt := uc.clock.Now().Add(uc.config.RefreshTTL)
	refresh, err := uc.sign(user, refreshTokenType, refreshExpiresAt)
	if err != nil {
		return nil, err
	}
	refreshExpiresAt = refreshExpiresAt.UTC()
	token.RefreshToken = refresh
	token.RefreshExpiresAt = &refreshExpiresAt
	return token, nil
}

// Refresh reloads the user so a removed account or a changed admin flag takes effect
func (uc *authUseCase) Refresh(ctx context.Context, dto model.RefreshRequestDTO) (*model.TokenDTO, error) {
	refresh := strings.TrimSpace(dto.RefreshToken)
	if refresh == "" {
		return nil, &distance.ValidationError{Field: "refresh_token"}
	}

	tokenClaims, err := uc.parse(refresh, refreshTokenType)
	if err != nil {
		return nil, err
	}

	user, err := uc.gateway.FindByID(ctx, tokenClaims.Subject)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	return uc.issueAccessToken(user)
}

func (uc *authUseCase) ParseToken(token string) (*model.Principal, error) {
	tokenClaims, err := uc.parse(token, accessTokenType)
	if err != nil {
		return nil, err
	}
	return &model.Principal{UserID: tokenClaims.Subject, IsAdmin: tokenClaims.Admin}, nil
}

func (uc *authUseCase) issueAccessToken(user *entity.User) (*model.TokenDTO, error) {
	expiresAt := uc.clock.Now().Add(uc.config.TokenTTL)
	signed, err := uc.sign(user, accessTokenType, expiresAt)
	if err != nil {
		return nil, err
	}
	return &model.TokenDTO{
		AccessToken: signed,
		TokenType:   tokenType,
		ExpiresAt:   expiresAt.UTC(),
	}, nil
}

func (uc *authUseCase) sign(user *entity.User, typ string, expiresAt time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Admin: user.IsAdmin,
		Type:  typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID,
			Issuer:    uc.config.Issuer,
			IssuedAt:  jwt.NewNumericDate(uc.clock.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := token.SignedString(uc.config.Secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", typ, err)
	}
	return signed, nil
}

// parse validates signature, issuer and expiry, and requires the typ claim to be typ
func (uc *authUseCase) parse(token string, typ string) (*claims, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(uc.clock.Now),
		jwt.WithExpirationRequired(),
	}
	if uc.config.Issuer != "" {
		options = append(options, jwt.WithIssuer(uc.config.Issuer))
	}

	parsed, err := jwt.ParseWithClaims(token, &claims{}, func(*jwt.Token) (any, error) {
		return uc.config.Secret, nil
	}, options...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	tokenClaims, ok := parsed.Claims.(*claims)
	if !ok || tokenClaims.Subject == "" {
		return nil, ErrInvalidToken
	}
	if tokenClaims.Type != typ {
		return nil, fmt.Errorf("%w: expected a %s token", ErrInvalidToken, typ)
	}
	return tokenClaims, nil
}

func (uc *authUseCase) ListUsers(ctx context.Context, page int, size int) (*model.Page[entity.User], error) {
	page = numberutils.MaxInt(page, 0)
	if size <= 0 {
		size = 10
	}
	size = numberutils.ClampInt(size, 1, model.MaxPageSize)

	users, err := uc.gateway.FindAll(ctx, page, size)
	if err != nil {
		return nil, err
	}
	total, err := uc.gateway.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	return model.NewPage(users, page, size, total), nil
}
