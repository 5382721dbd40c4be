package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/keyauth"
	"github.com/horus-listing/internal/pkg/errors"
	"github.com/horus-listing/internal/pkg/utils"
)

// AdminKeyHeader - заголовок с ключом админки
const AdminKeyHeader = "X-API-Key"

// AdminAuth - проверка статического ключа ADMIN_API_KEY.
// Пустой ключ в конфиге закрывает админку полностью.
func AdminAuth(apiKey string) fiber.Handler {
	expected := []byte(apiKey)

	return keyauth.New(keyauth.Config{
		KeyLookup: "header:" + AdminKeyHeader,
		Validator: func(c *fiber.Ctx, key string) (bool, error) {
			if len(expected) == 0 {
				return false, keyauth.ErrMissingOrMalformedAPIKey
			}
			if subtle.ConstantTimeCompare([]byte(key), expected) == 1 {
				return true, nil
			}
			return false, keyauth.ErrMissingOrMalformedAPIKey
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return utils.SendError(c, errors.ErrUnauthorized)
		},
	})
}
