package utils

import (
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/gofiber/fiber/v2"
)

// SetupAddressRoutes proxy sang Vietmap cho admin UI tra cứu địa chỉ giao
// hàng trước khi gán tài xế. Proxy để giấu API key khỏi front-end.
func SetupAddressRoutes(app *fiber.App) {
	// Gợi ý địa chỉ khi nhập
	app.Get("/api/v1/address/autocomplete", func(c *fiber.Ctx) error {
		query := c.Query("text")
		if query == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "text parameter required"})
		}

		apiKey := os.Getenv("VIETMAP_API_KEY")
		if apiKey == "" {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "VIETMAP_API_KEY not set"})
		}

		// v3 cho display sạch và có ref_id
		vietmapURL := "https://maps.vietmap.vn/api/autocomplete/v3?apikey=" + apiKey + "&text=" + url.QueryEscape(query)

		resp, err := http.Get(vietmapURL)
		if err != nil {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "cannot reach Vietmap autocomplete"})
		}
		defer resp.Body.Close()

		bodyBytes, _ := io.ReadAll(resp.Body)

		c.Status(resp.StatusCode)
		c.Set("Content-Type", "application/json")
		return c.Send(bodyBytes)
	})

	// Toạ độ chính xác từ ref_id — để ước lượng khu vực giao cho tài xế
	app.Get("/api/v1/address/place", func(c *fiber.Ctx) error {
		refID := c.Query("refid")
		if refID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "refid parameter required"})
		}

		apiKey := os.Getenv("VIETMAP_API_KEY")

		placeURL := "https://maps.vietmap.vn/api/place/v3?apikey=" + apiKey + "&refid=" + url.QueryEscape(refID)

		resp, err := http.Get(placeURL)
		if err != nil {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "cannot reach Vietmap place"})
		}
		defer resp.Body.Close()

		bodyBytes, _ := io.ReadAll(resp.Body)

		c.Status(resp.StatusCode)
		c.Set("Content-Type", "application/json")
		return c.Send(bodyBytes)
	})
}
