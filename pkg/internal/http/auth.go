package http

import (
	"os"
	"strings"

	"chronicle/pkg/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/rs/zerolog/log"
)

// IReader verifies tokens minted by the external identity provider. When
// it is absent every request is served anonymously.
var IReader *TokenReader

type TokenReader struct {
	key jwk.Key
}

func NewTokenReader(path string) (*TokenReader, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	key, err := jwk.ParseKey(raw, jwk.WithPEM(true))
	if err != nil {
		return nil, err
	}

	return &TokenReader{key: key}, nil
}

func (v *TokenReader) ReadToken(raw string) (jwt.Token, error) {
	return jwt.Parse(
		[]byte(raw),
		jwt.WithKey(jwa.RS256, v.key),
		jwt.WithValidate(true),
	)
}

// Auth resolves the acting viewer out of the bearer token, if there is
// one worth trusting. A missing or bad token is not an error, the
// request just stays anonymous.
func Auth(c *fiber.Ctx) error {
	if IReader == nil {
		return c.Next()
	}

	raw := strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
	if len(raw) == 0 {
		return c.Next()
	}

	tk, err := IReader.ReadToken(raw)
	if err != nil {
		return c.Next()
	}

	claims := tk.PrivateClaims()
	nick, _ := claims["nick"].(string)
	email, _ := claims["email"].(string)

	account, err := services.LoadViewerAccount(tk.Subject(), nick, email)
	if err != nil {
		log.Warn().Err(err).Str("name", tk.Subject()).Msg("An error occurred when loading viewer account...")
		return c.Next()
	}

	c.Locals("user", account)
	return c.Next()
}
