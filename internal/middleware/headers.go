package middleware

import (
	"github.com/gofiber/fiber/v3"
)

// NoCache marks every response as uncacheable. Browsers must always come back
// to the server so the front end's own timestamp cache is the only cache.
func NoCache() fiber.Handler {
	return func(c fiber.Ctx) error {
		c.Set(fiber.HeaderCacheControl, "no-store, no-cache, must-revalidate, proxy-revalidate")
		c.Set(fiber.HeaderPragma, "no-cache")
		c.Set(fiber.HeaderExpires, "0")
		return c.Next()
	}
}
