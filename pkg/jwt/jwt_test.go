package jwt_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/sales-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "sales-api-test"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testEmail  = "ana@example.com"
)

// clock reloj manipulable para los tests de expiración.
type clock struct{ t time.Time }

func (c *clock) Now() time.Time { return c.t }

func newService(t *testing.T, c *clock) *pkgjwt.Service {
	t.Helper()
	svc, err := pkgjwt.NewService(testSecret, testIssuer, time.Hour, pkgjwt.WithClock(c.Now))
	require.NoError(t, err)
	return svc
}

func TestIssueVerify_DevuelveLaMismaIdentidad(t *testing.T) {
	c := &clock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc := newService(t, c)

	tok, err := svc.Issue(testUserID, testEmail)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	id, err := svc.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, id.UserID)
	assert.Equal(t, testEmail, id.Email)
	assert.True(t, id.ExpiresAt.Equal(c.t.Add(time.Hour)))
}

func TestVerify_JustoAntesDeExpirar_EsValido(t *testing.T) {
	c := &clock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc := newService(t, c)
	tok, err := svc.Issue(testUserID, testEmail)
	require.NoError(t, err)

	c.t = c.t.Add(time.Hour - time.Second)
	_, err = svc.Verify(tok)
	assert.NoError(t, err)
}

func TestVerify_EnElInstanteDeExpiracion_Expira(t *testing.T) {
	c := &clock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc := newService(t, c)
	tok, err := svc.Issue(testUserID, testEmail)
	require.NoError(t, err)

	for _, d := range []time.Duration{time.Hour, time.Hour + time.Second, 48 * time.Hour} {
		c.t = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC).Add(d)
		_, err = svc.Verify(tok)
		assert.ErrorIs(t, err, pkgjwt.ErrExpired, "después de %s el token debe estar expirado", d)
	}
}

func TestVerify_SecretIncorrecto_FirmaInvalida(t *testing.T) {
	c := &clock{t: time.Now()}
	tok, err := newService(t, c).Issue(testUserID, testEmail)
	require.NoError(t, err)

	other, err := pkgjwt.NewService("otro-secret-completamente-distinto", testIssuer, time.Hour)
	require.NoError(t, err)

	_, err = other.Verify(tok)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalidSignature)
}

func TestVerify_TokenManipulado_FirmaInvalida(t *testing.T) {
	c := &clock{t: time.Now()}
	svc := newService(t, c)
	tok, err := svc.Issue(testUserID, testEmail)
	require.NoError(t, err)

	// Cambia el primer carácter de la firma.
	dot := strings.LastIndex(tok, ".")
	repl := byte('A')
	if tok[dot+1] == 'A' {
		repl = 'B'
	}
	tampered := tok[:dot+1] + string(repl) + tok[dot+2:]

	_, err = svc.Verify(tampered)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalidSignature)
}

func TestVerify_TokenMalformado(t *testing.T) {
	svc := newService(t, &clock{t: time.Now()})

	for _, raw := range []string{"", "abc", "token.invalido.aqui"} {
		_, err := svc.Verify(raw)
		assert.ErrorIs(t, err, pkgjwt.ErrMalformed, "entrada %q", raw)
	}
}

func TestNewService_Validaciones(t *testing.T) {
	_, err := pkgjwt.NewService("", testIssuer, time.Hour)
	assert.Error(t, err, "secret vacío debe fallar")

	_, err = pkgjwt.NewService(testSecret, testIssuer, 0)
	assert.Error(t, err, "ttl cero debe fallar")
}

func TestIssue_SinUserID(t *testing.T) {
	svc := newService(t, &clock{t: time.Now()})
	_, err := svc.Issue("", testEmail)
	assert.Error(t, err)
}
