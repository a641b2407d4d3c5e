package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"noteshare-be/internal/business"
	"noteshare-be/internal/dto"
	"noteshare-be/internal/entity"
	"noteshare-be/internal/pkg/mailer"
	"noteshare-be/internal/pkg/serverutils"
	"noteshare-be/internal/repository/specification"
	"noteshare-be/internal/repository/unitofwork"
	"noteshare-be/pkg/events"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*business.Result[*dto.RegisterResponse], error)
	Activate(ctx context.Context, guid uuid.UUID) (*business.Result[*dto.ActivateResponse], error)
	Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*business.Result[*dto.LoginResponse], error)
	Refresh(ctx context.Context, refreshToken string) (*business.Result[*dto.RefreshResponse], error)
	Logout(ctx context.Context, refreshToken string) error
}

type authService struct {
	uowFactory       unitofwork.RepositoryFactory
	emailService     mailer.IEmailService
	publisherService IPublisherService
	baseURL          string
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	publisherService IPublisherService,
	baseURL string,
) IAuthService {
	return &authService{
		uowFactory:       uowFactory,
		emailService:     emailService,
		publisherService: publisherService,
		baseURL:          baseURL,
	}
}

// dummyHash is compared against when the username does not exist, so a
// login attempt costs the same whether or not the account is real.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy-password-for-timing"), bcrypt.DefaultCost)

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*business.Result[*dto.RegisterResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	result := &business.Result[*dto.RegisterResponse]{}

	// Both uniqueness checks run so the client sees every violation at once.
	existingUsername, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, err
	}
	if existingUsername != nil {
		result.AddError(business.ErrUsernameTaken, fmt.Sprintf("Username '%s' is already taken", req.Username))
	}

	existingEmail, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existingEmail != nil {
		result.AddError(business.ErrEmailTaken, fmt.Sprintf("Email '%s' is already registered", req.Email))
	}

	if result.HasErrors() {
		return result, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Id:             uuid.New(),
		Username:       req.Username,
		Email:          req.Email,
		PasswordHash:   string(hash),
		Name:           req.Name,
		Surname:        req.Surname,
		IsActive:       false,
		IsAdmin:        false,
		ActivationGuid: uuid.New(),
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
		// A new account's first modifier is the account itself.
		ModifiedUsername: req.Username,
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	activationURL := fmt.Sprintf("%s/api/auth/v1/activate/%s", s.baseURL, user.ActivationGuid)
	go func() {
		if emailErr := s.emailService.SendActivationLink(user.Email, activationURL); emailErr != nil {
			fmt.Printf("Error sending activation email: %v\n", emailErr)
		}
	}()

	if s.publisherService != nil {
		event := events.New(events.UserRegistered, map[string]interface{}{
			"user_id":  user.Id,
			"username": user.Username,
		})
		if err := s.publisherService.PublishEvent(ctx, event); err != nil {
			fmt.Printf("[WARN] Failed to publish %s event: %v\n", events.UserRegistered, err)
		}
	}

	result.Value = &dto.RegisterResponse{Id: user.Id, Username: user.Username, Email: user.Email}
	return result, nil
}

func (s *authService) Activate(ctx context.Context, guid uuid.UUID) (*business.Result[*dto.ActivateResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByActivationGuid{Guid: guid})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return business.Fail[*dto.ActivateResponse](business.ErrInvalidActivationGuid, "Activation link is not valid"), nil
	}

	// Re-visiting the link after activation succeeds with the same outcome.
	if !user.IsActive {
		if err := uow.UserRepository().Activate(ctx, user.Id); err != nil {
			return nil, err
		}

		if s.publisherService != nil {
			event := events.New(events.UserActivated, map[string]interface{}{
				"user_id": user.Id,
			})
			if err := s.publisherService.PublishEvent(ctx, event); err != nil {
				fmt.Printf("[WARN] Failed to publish %s event: %v\n", events.UserActivated, err)
			}
		}
	}

	return business.OK(&dto.ActivateResponse{
		Id:       user.Id,
		Username: user.Username,
		IsActive: true,
	}), nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*business.Result[*dto.LoginResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, err
	}

	// Unknown username and wrong password produce the same rule error.
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(req.Password))
		return business.Fail[*dto.LoginResponse](business.ErrInvalidCredentials, "Username or password is incorrect"), nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return business.Fail[*dto.LoginResponse](business.ErrInvalidCredentials, "Username or password is incorrect"), nil
	}

	// Only after proving the password do we reveal the activation state.
	if !user.IsActive {
		return business.Fail[*dto.LoginResponse](business.ErrUserIsNotActive, "Account is not activated. Please check your email"), nil
	}

	signedToken, expiresAt, err := signAccessToken(user)
	if err != nil {
		return nil, err
	}

	var rawRefreshToken string

	if req.RememberMe {
		rawRefreshToken = uuid.New().String()
		tokenHash := hashRefreshToken(rawRefreshToken)

		refreshTokenEntity := &entity.UserRefreshToken{
			Id:        uuid.New(),
			UserId:    user.Id,
			TokenHash: tokenHash,
			ExpiresAt: time.Now().Add(time.Hour * 24 * 30),
			Revoked:   false,
			IpAddress: ipAddress,
			UserAgent: userAgent,
			CreatedAt: time.Now(),
		}

		if err := uow.UserRepository().CreateRefreshToken(ctx, refreshTokenEntity); err != nil {
			return nil, fmt.Errorf("failed to create session: %v", err)
		}
	}

	return business.OK(&dto.LoginResponse{
		AccessToken:  signedToken,
		RefreshToken: rawRefreshToken,
		User: dto.UserDTO{
			Id:       user.Id,
			Username: user.Username,
			Email:    user.Email,
			Name:     user.Name,
			Surname:  user.Surname,
			IsAdmin:  user.IsAdmin,
		},
		ExpiresAt: expiresAt,
	}), nil
}

// signAccessToken issues the HS256 access token with the same secret the
// middleware verifies against.
func signAccessToken(user *entity.User) (string, time.Time, error) {
	expiresAt := time.Now().Add(time.Hour * 24)

	claims := jwt.MapClaims{
		"user_id":  user.Id.String(),
		"is_admin": user.IsAdmin,
		"exp":      expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(serverutils.JWTSecret())
	if err != nil {
		return "", time.Time{}, err
	}
	return signedToken, expiresAt, nil
}

func hashRefreshToken(raw string) string {
	hasher := sha256.New()
	hasher.Write([]byte(raw))
	return hex.EncodeToString(hasher.Sum(nil))
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*business.Result[*dto.RefreshResponse], error) {
	if refreshToken == "" {
		return business.Fail[*dto.RefreshResponse](business.ErrInvalidCredentials, "Invalid or expired refresh token"), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	token, err := uow.UserRepository().FindRefreshToken(ctx, specification.ByTokenHash{Hash: hashRefreshToken(refreshToken)})
	if err != nil {
		return nil, err
	}
	if token == nil || token.Revoked || time.Now().After(token.ExpiresAt) {
		return business.Fail[*dto.RefreshResponse](business.ErrInvalidCredentials, "Invalid or expired refresh token"), nil
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: token.UserId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return business.Fail[*dto.RefreshResponse](business.ErrInvalidCredentials, "Invalid or expired refresh token"), nil
	}
	if !user.IsActive {
		return business.Fail[*dto.RefreshResponse](business.ErrUserIsNotActive, "Account is not activated. Please check your email"), nil
	}

	signedToken, expiresAt, err := signAccessToken(user)
	if err != nil {
		return nil, err
	}

	return business.OK(&dto.RefreshResponse{
		AccessToken: signedToken,
		ExpiresAt:   expiresAt,
	}), nil
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	return uow.UserRepository().RevokeRefreshToken(ctx, hashRefreshToken(refreshToken))
}
