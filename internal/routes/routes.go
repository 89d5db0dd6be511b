package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/riskspace/emopop/internal/handlers"
)

func Setup(
	app *fiber.App,
	emotionHandler *handlers.EmotionHandler,
	needHandler *handlers.NeedHandler,
	userHandler *handlers.UserHandler,
	healthHandler *handlers.HealthHandler,
) {
	// General rate limiter: 60 req/min per IP
	app.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "This is the Emo Pop API."})
	})
	app.Get("/health", healthHandler.Check)

	// Reference data
	app.Get("/load-emotions", emotionHandler.LoadAll)
	app.Get("/load-needs", needHandler.LoadAll)

	// Daily logs
	app.Get("/emotions/:userId", emotionHandler.GetSummary)
	app.Post("/emotions/:userId", emotionHandler.Log)
	app.Get("/needs/:userId", needHandler.GetSummary)
	app.Post("/needs/:userId", needHandler.Log)

	// Users
	app.Post("/users", userHandler.Create)
	app.Get("/check-existing-data/:userId", userHandler.CheckExistingData)
}
