package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/sales-api/internal/application/dto"
	"github.com/jhoicas/sales-api/internal/application/validation"
	"github.com/jhoicas/sales-api/internal/domain"
	"github.com/jhoicas/sales-api/internal/domain/entity"
	"github.com/jhoicas/sales-api/internal/domain/repository"
	"github.com/jhoicas/sales-api/pkg/jwt"
)

// PasswordHasher hashea y verifica contraseñas. Verify con hash vacío debe
// tardar lo mismo que una comparación real y devolver false.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) (bool, error)
}

// TokenService emite y verifica tokens de sesión.
type TokenService interface {
	Issue(userID, email string) (string, error)
	Verify(token string) (*jwt.Identity, error)
	TTL() time.Duration
}

// AuthUseCase casos de uso de autenticación: registro, login y resolución del usuario actual.
type AuthUseCase struct {
	users    repository.UserRepository
	hasher   PasswordHasher
	tokens   TokenService
	validate *validation.Validator
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, hasher PasswordHasher, tokens TokenService, v *validation.Validator) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: tokens, validate: v, now: time.Now}
}

// Register crea un usuario activo con la contraseña hasheada.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	in.Email = normalizeEmail(in.Email)
	in.Name = strings.TrimSpace(in.Name)
	if err := uc.validate.Struct(in); err != nil {
		return nil, err
	}
	existing, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Authenticate verifica email y password. Email inexistente y password
// incorrecto producen el mismo ErrInvalidCredentials.
func (uc *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := uc.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	hash := ""
	if user != nil {
		hash = user.PasswordHash
	}
	ok, err := uc.hasher.Verify(password, hash)
	if err != nil {
		return nil, err
	}
	if user == nil || !ok {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.Active {
		return nil, domain.ErrUserInactive
	}
	return user, nil
}

// Login autentica y emite el token de sesión.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	in.Email = normalizeEmail(in.Email)
	if err := uc.validate.Struct(in); err != nil {
		return nil, err
	}
	user, err := uc.Authenticate(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	token, err := uc.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(uc.tokens.TTL().Seconds()),
		User:      *ToUserResponse(user),
	}, nil
}

// ResolveCurrentUser verifica el token y carga el usuario que identifica.
// Token vacío o inválido: ErrUnauthenticated (envolviendo la causa del token).
// Usuario borrado después de emitir el token: ErrUserNotFound.
func (uc *AuthUseCase) ResolveCurrentUser(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}
	id, err := uc.tokens.Verify(token)
	if err != nil {
		return nil, errors.Join(domain.ErrUnauthenticated, err)
	}
	user, err := uc.users.GetByID(ctx, id.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if !user.Active {
		return nil, domain.ErrUnauthenticated
	}
	return user, nil
}

// ToUserResponse convierte la entidad al DTO público (sin hash).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
