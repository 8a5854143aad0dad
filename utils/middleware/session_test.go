package middleware

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newSessionApp() *fiber.App {
	app := fiber.New()
	app.Use(SessionID())
	app.Get("/whoami", func(c *fiber.Ctx) error {
		return c.SendString(GetSessionID(c))
	})
	return app
}

func TestSessionIDFromHeader(t *testing.T) {
	app := newSessionApp()

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set(SessionIDHeader, "client-session-token")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if string(body) != "client-session-token" {
		t.Errorf("session id = %q, want the header value", body)
	}
}

func TestSessionIDDerivedWithoutHeader(t *testing.T) {
	app := newSessionApp()

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("User-Agent", "test-agent")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if len(body) != 64 {
		t.Errorf("derived session id length = %d, want 64 hex chars", len(body))
	}

	// Same client, same day, same id
	req2 := httptest.NewRequest("GET", "/whoami", nil)
	req2.Header.Set("User-Agent", "test-agent")
	resp2, err := app.Test(req2)
	if err != nil {
		t.Fatalf("second request failed: %v", err)
	}
	defer resp2.Body.Close()

	body2, _ := io.ReadAll(resp2.Body)
	if string(body) != string(body2) {
		t.Errorf("derived ids differ for the same client: %q vs %q", body, body2)
	}
}
