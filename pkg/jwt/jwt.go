package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Errores de verificación. Son estables para que el resolver de autenticación
// pueda distinguirlos sin depender de golang-jwt.
var (
	ErrMalformed        = errors.New("jwt: token mal formado")
	ErrExpired          = errors.New("jwt: token expirado")
	ErrInvalidSignature = errors.New("jwt: firma inválida")
)

// Claims incluye los claims estándar JWT más el email del usuario.
// Subject lleva el ID del usuario, que es la clave de identidad estable.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// Identity es lo que el token afirma sobre su portador.
type Identity struct {
	UserID    string
	Email     string
	ExpiresAt time.Time
}

// Service emite y verifica tokens HS256 con un secreto del servidor.
// Es inmutable después de construido; Verify no tiene efectos laterales.
type Service struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// Option ajusta el Service (se usa en tests para fijar el reloj).
type Option func(*Service)

// WithClock reemplaza time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService construye el servicio. El secreto no puede ser vacío y el TTL debe ser positivo.
func NewService(secret, issuer string, ttl time.Duration, opts ...Option) (*Service, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("jwt: ttl inválido: %s", ttl)
	}
	s := &Service{secret: []byte(secret), issuer: issuer, ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// TTL devuelve la vigencia de los tokens emitidos.
func (s *Service) TTL() time.Duration { return s.ttl }

// Issue genera un token firmado para el usuario con expiración now + TTL.
func (s *Service) Issue(userID, email string) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("jwt: user id vacío")
	}
	now := s.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Email: email,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify valida firma y expiración y devuelve la identidad embebida.
// Un token es inválido desde el instante de expiración inclusive.
func (s *Service) Verify(tokenString string) (*Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, classify(err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrMalformed
	}
	return &Identity{
		UserID:    claims.Subject,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// classify traduce los errores de golang-jwt a la taxonomía del paquete.
// El orden importa: un token expirado con firma válida reporta ErrExpired.
func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %v", ErrExpired, err)
	default:
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
}
