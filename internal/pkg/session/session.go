package session

import (
	"encoding/json"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage/redis"

	"github.com/ManuelReschke/StudioSite/internal/pkg/cache"
	"github.com/ManuelReschke/StudioSite/internal/pkg/catalog"
	"github.com/ManuelReschke/StudioSite/internal/pkg/env"
	"github.com/ManuelReschke/StudioSite/internal/pkg/pricing"
)

const calculatorKey = "calculator_state"

var sessionStore *session.Store

func NewSessionStore() *session.Store {
	// Reuse the address of the cache client
	cacheClient := cache.GetClient()
	host := "localhost"
	port := 6379
	password := env.GetEnv("CACHE_PASSWORD", "")
	if cacheClient != nil {
		addr := cacheClient.Options().Addr
		if h, p, err := net.SplitHostPort(addr); err == nil {
			host = h
			if v, err := strconv.Atoi(p); err == nil {
				port = v
			}
		}
		if p := cacheClient.Options().Password; p != "" {
			password = p
		}
	}

	// Sessions live in database 1, the cache uses 0
	storage := redis.New(redis.Config{
		Host:     host,
		Port:     port,
		Password: password,
		Database: 1,
		Reset:    false,
	})

	sessionStore = session.New(session.Config{
		Storage:        storage,
		CookieHTTPOnly: true,
		CookieSecure:   !env.IsDev(),
		Expiration:     24 * time.Hour,
		KeyLookup:      "cookie:session_id",
	})

	return sessionStore
}

// NewMemorySessionStore installs an in-process store.
func NewMemorySessionStore() *session.Store {
	sessionStore = session.New(session.Config{
		CookieHTTPOnly: true,
		Expiration:     time.Hour,
		KeyLookup:      "cookie:session_id",
	})
	return sessionStore
}

func GetSessionStore() *session.Store {
	return sessionStore
}

// SetSessionValue stores a key-value pair in the user's individual session
func SetSessionValue(c *fiber.Ctx, key string, value string) error {
	if sessionStore == nil {
		return fmt.Errorf("session store not initialized")
	}

	sess, err := sessionStore.Get(c)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	sess.Set(key, value)
	return sess.Save()
}

// GetSessionValue retrieves a value by key from the user's individual session
func GetSessionValue(c *fiber.Ctx, key string) string {
	if sessionStore == nil {
		return ""
	}

	sess, err := sessionStore.Get(c)
	if err != nil {
		return ""
	}

	if strValue, ok := sess.Get(key).(string); ok {
		return strValue
	}
	return ""
}

// LoadCalculator returns the visitor's calculator state. Visitors without
// a stored state, or with one that no longer matches the catalog, start
// over with the defaults of fallbackType.
func LoadCalculator(c *fiber.Ctx, cat *catalog.Catalog, fallbackType string) (pricing.State, error) {
	if raw := GetSessionValue(c, calculatorKey); raw != "" {
		var state pricing.State
		if err := json.Unmarshal([]byte(raw), &state); err == nil {
			if _, ok := cat.BusinessType(state.BusinessType); ok {
				return state.Normalize(), nil
			}
		}
	}
	return pricing.NewState(cat, fallbackType)
}

func SaveCalculator(c *fiber.Ctx, state pricing.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode calculator state: %w", err)
	}
	return SetSessionValue(c, calculatorKey, string(data))
}

func ResetCalculator(c *fiber.Ctx) error {
	if sessionStore == nil {
		return fmt.Errorf("session store not initialized")
	}
	sess, err := sessionStore.Get(c)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}
	sess.Delete(calculatorKey)
	return sess.Save()
}
