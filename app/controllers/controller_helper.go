package controllers

import (
	"errors"
	"net"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"
	"gorm.io/gorm"

	"github.com/ManuelReschke/StudioSite/internal/pkg/env"
	"github.com/ManuelReschke/StudioSite/internal/pkg/viewmodel"
)

const layoutMain = "layouts/main"

// layout collects the data every page template gets.
func layout(c *fiber.Ctx, page, title string) viewmodel.Layout {
	token, _ := c.Locals("csrf").(string)
	return viewmodel.Layout{
		Page:            page,
		Title:           title,
		Msg:             flash.Get(c),
		CSRFToken:       token,
		IsDev:           env.IsDev(),
		HCaptchaSiteKey: env.GetEnv("HCAPTCHA_SITEKEY", ""),
		Year:            time.Now().Year(),
	}
}

// render renders a page inside the main layout.
func render(c *fiber.Ctx, page, title string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["Layout"] = layout(c, page, title)
	return c.Render(page, data, layoutMain)
}

func flashError(c *fiber.Ctx, message, to string) error {
	return flash.WithError(c, fiber.Map{"type": "error", "message": message}).Redirect(to)
}

func flashSuccess(c *fiber.Ctx, message, to string) error {
	return flash.WithSuccess(c, fiber.Map{"type": "success", "message": message}).Redirect(to)
}

// jsonError writes the API error body.
func jsonError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error":   code,
		"message": message,
	})
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// GetClientIP returns the visitor's IPv4 and IPv6 address, either of which
// may be empty. Proxy headers win over the socket address: Cloudflare first,
// then X-Forwarded-For, then X-Real-IP as the other address family.
func GetClientIP(c *fiber.Ctx) (string, string) {
	var candidates []string
	if cf := strings.TrimSpace(c.Get("CF-Connecting-IP")); cf != "" {
		candidates = append(candidates, cf)
	}
	for _, ip := range strings.Split(c.Get("X-Forwarded-For"), ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			candidates = append(candidates, ip)
		}
	}
	if len(candidates) == 0 {
		candidates = append(candidates, c.IP())
	}
	if real := strings.TrimSpace(c.Get("X-Real-IP")); real != "" {
		candidates = append(candidates, real)
	}

	ipv4, ipv6 := "", ""
	for _, raw := range candidates {
		ip := net.ParseIP(raw)
		if ip == nil {
			continue
		}
		// ::ffff:1.2.3.4 counts as IPv4
		if v4 := ip.To4(); v4 != nil {
			if ipv4 == "" {
				ipv4 = v4.String()
			}
		} else if ipv6 == "" {
			ipv6 = ip.String()
		}
		if ipv4 != "" && ipv6 != "" {
			break
		}
	}
	return ipv4, ipv6
}
