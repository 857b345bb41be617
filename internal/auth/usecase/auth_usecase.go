package usecase

import (
	"errors"
	"strings"
	"time"

	authdomain "task-manager-api/internal/auth/domain"
	authdto "task-manager-api/internal/auth/dto"
	"task-manager-api/internal/auth/repository"
	"task-manager-api/pkg/config"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("unable to login")
	ErrInvalidToken       = errors.New("invalid token")
	ErrWeakPassword       = errors.New("password must be at least 7 characters and must not contain \"password\"")
	ErrNotFound           = errors.New("not found")
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	config   *config.Config
	validate *validator.Validate
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		config:   cfg,
		validate: validator.New(),
	}
}

func (u *authUsecase) Signup(req *authdto.SignupRequest) (*authdto.AuthResponse, error) {
	if !validPassword(req.Password) {
		return nil, ErrWeakPassword
	}

	email := normalizeEmail(req.Email)

	existing, err := u.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Name:     req.Name,
		Email:    email,
		Password: hashedPassword,
		Age:      req.Age,
	}

	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}

	return u.issueToken(user)
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.AuthResponse, error) {
	user, err := u.userRepo.FindByEmail(normalizeEmail(req.Email))
	if err != nil {
		return nil, err
	}

	// Same error for an unknown email and a wrong password, so the response
	// never reveals which one it was.
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	return u.issueToken(user)
}

func (u *authUsecase) Logout(token string) error {
	return u.userRepo.DeleteAuthToken(token)
}

func (u *authUsecase) LogoutAll(userID string) error {
	return u.userRepo.DeleteAuthTokensByUser(userID)
}

func (u *authUsecase) ValidateToken(tokenString string) (*authdomain.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(u.config.JWTSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	// A well-signed token is still rejected once it has been revoked.
	stored, err := u.userRepo.FindAuthToken(tokenString)
	if err != nil {
		return nil, err
	}
	if stored == nil || stored.UserID != userID {
		return nil, ErrInvalidToken
	}

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidToken
	}

	return user, nil
}

func (u *authUsecase) UpdateProfile(user *authdomain.User, req *authdto.UpdateProfileRequest) (*authdomain.User, error) {
	if err := u.validate.Struct(req); err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, errors.New("name is required")
		}
		user.Name = strings.TrimSpace(*req.Name)
	}

	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		if email != user.Email {
			existing, err := u.userRepo.FindByEmail(email)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, ErrEmailTaken
			}
		}
		user.Email = email
	}

	if req.Password != nil {
		if !validPassword(*req.Password) {
			return nil, ErrWeakPassword
		}
		hashedPassword, err := repository.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashedPassword
	}

	if req.Age != nil {
		user.Age = *req.Age
	}

	if err := u.userRepo.Update(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (u *authUsecase) DeleteProfile(user *authdomain.User) error {
	return u.userRepo.DeleteWithTasks(user)
}

func (u *authUsecase) SetAvatar(user *authdomain.User, data []byte) error {
	user.Avatar = data
	return u.userRepo.Update(user)
}

func (u *authUsecase) ClearAvatar(user *authdomain.User) error {
	user.Avatar = nil
	return u.userRepo.Update(user)
}

func (u *authUsecase) GetAvatar(userID string) ([]byte, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil || len(user.Avatar) == 0 {
		return nil, ErrNotFound
	}
	return user.Avatar, nil
}

func (u *authUsecase) issueToken(user *authdomain.User) (*authdto.AuthResponse, error) {
	expiresAt := time.Now().Add(u.config.JWTExpiry)

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"exp":     expiresAt.Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(u.config.JWTSecret))
	if err != nil {
		return nil, err
	}

	authToken := &authdomain.AuthToken{
		Token:     signed,
		UserID:    user.ID,
		ExpiresAt: expiresAt,
	}
	if err := u.userRepo.SaveAuthToken(authToken); err != nil {
		return nil, err
	}

	return &authdto.AuthResponse{
		User:  user,
		Token: signed,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validPassword(password string) bool {
	return len(password) >= 7 && !strings.Contains(strings.ToLower(password), "password")
}
