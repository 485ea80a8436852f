package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

func newTestMiddleware(values map[string]any) *Middleware {
	config := viper.New()
	for k, v := range values {
		config.Set(k, v)
	}
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewMiddleware(&MiddlewareConfig{Log: log, Config: config})
}

func corsApp(m *Middleware) *fiber.App {
	app := fiber.New()
	app.Use(m.CorsMiddleware())
	app.Get("/progress", func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestCorsMiddleware(t *testing.T) {
	tests := []struct {
		name            string
		m               *Middleware
		origin          string
		wantOrigin      string
		wantCredentials string
	}{
		{
			name:       "defaults allow any origin",
			m:          NewMiddleware(nil),
			origin:     "http://localhost:5173",
			wantOrigin: "*",
		},
		{
			name: "listed origin is echoed",
			m: newTestMiddleware(map[string]any{
				"api.cors.origins":           []string{"https://quest.example.com", "https://admin.example.com/"},
				"api.cors.allow_credentials": true,
			}),
			origin:          "https://admin.example.com",
			wantOrigin:      "https://admin.example.com",
			wantCredentials: "true",
		},
		{
			name: "comma separated origins",
			m: newTestMiddleware(map[string]any{
				"api.cors.origins": "https://quest.example.com, https://admin.example.com",
			}),
			origin:     "https://quest.example.com",
			wantOrigin: "https://quest.example.com",
		},
		{
			name: "unlisted origin gets no header",
			m: newTestMiddleware(map[string]any{
				"api.cors.origins": []string{"https://quest.example.com"},
			}),
			origin:     "https://other.example.com",
			wantOrigin: "",
		},
		{
			name: "credentials dropped for wildcard",
			m: newTestMiddleware(map[string]any{
				"api.cors.origins":           "*",
				"api.cors.allow_credentials": true,
			}),
			origin:     "https://quest.example.com",
			wantOrigin: "*",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/progress", nil)
			req.Header.Set(fiber.HeaderOrigin, tt.origin)

			resp, err := corsApp(tt.m).Test(req, -1)
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			defer resp.Body.Close()

			if got := resp.Header.Get(fiber.HeaderAccessControlAllowOrigin); got != tt.wantOrigin {
				t.Errorf("Access-Control-Allow-Origin = %q; want %q", got, tt.wantOrigin)
			}
			if got := resp.Header.Get(fiber.HeaderAccessControlAllowCredentials); got != tt.wantCredentials {
				t.Errorf("Access-Control-Allow-Credentials = %q; want %q", got, tt.wantCredentials)
			}
		})
	}
}

func TestCorsMiddleware_Preflight(t *testing.T) {
	m := newTestMiddleware(map[string]any{"api.cors.max_age": 120})

	req := httptest.NewRequest(http.MethodOptions, "/progress", nil)
	req.Header.Set(fiber.HeaderOrigin, "http://localhost:5173")
	req.Header.Set(fiber.HeaderAccessControlRequestMethod, http.MethodPost)

	resp, err := corsApp(m).Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusNoContent {
		t.Errorf("preflight status = %d; want 204", resp.StatusCode)
	}
	methods := resp.Header.Get(fiber.HeaderAccessControlAllowMethods)
	if !strings.Contains(methods, fiber.MethodPost) || strings.Contains(methods, fiber.MethodDelete) {
		t.Errorf("Access-Control-Allow-Methods = %q; want GET and POST only", methods)
	}
	if got := resp.Header.Get(fiber.HeaderAccessControlMaxAge); got != "120" {
		t.Errorf("Access-Control-Max-Age = %q; want 120", got)
	}
}

func TestSubmissionLimit(t *testing.T) {
	m := newTestMiddleware(map[string]any{"api.max_submission_bytes": 16})
	app := fiber.New()
	app.Post("/submissions", m.SubmissionLimit(), func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusOK)
	})

	tests := []struct {
		body string
		want int
	}{
		{`{"prompt":"hi"}`, fiber.StatusOK},
		{`{"prompt":"far too long for the limit"}`, fiber.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodPost, "/submissions", strings.NewReader(tt.body))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req, -1)
		if err != nil {
			t.Fatalf("app.Test() error = %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != tt.want {
			t.Errorf("POST %d bytes status = %d; want %d", len(tt.body), resp.StatusCode, tt.want)
		}
	}
}
