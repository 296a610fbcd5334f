package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/portfolio/internal/service"
)

func TestSubmitContactValidatesInput(t *testing.T) {
	api, _ := newTestAPI(t, Options{})
	r := newTestEngine(api)
	r.POST("/contact", api.SubmitContact)
	r.GET("/messages", api.ListMessages)
	r.DELETE("/messages/:id", api.DeleteMessage)

	rr := doJSON(t, r, http.MethodPost, "/contact", map[string]string{
		"name":    "Sara",
		"email":   "not-an-email",
		"message": "Hello",
	}, nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad email, got %d", rr.Code)
	}

	rr = doJSON(t, r, http.MethodPost, "/contact", map[string]string{
		"name":    "Sara <b>K</b>",
		"email":   "sara@example.com",
		"subject": "Work",
		"message": "Hello & welcome",
	}, nil)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	api.Drain()

	rr = doJSON(t, r, http.MethodGet, "/messages", nil, nil)
	messages := decodeBody(t, rr)["messages"].([]interface{})
	if len(messages) != 1 {
		t.Fatalf("expected one message, got %d", len(messages))
	}
	message := messages[0].(map[string]interface{})
	if message["name"] != "Sara K" || message["message"] != "Hello & welcome" {
		t.Fatalf("unexpected sanitized message %v", message)
	}
	if message["isRead"] != false {
		t.Fatalf("new message should be unread")
	}

	id := message["id"].(string)
	if rr := doJSON(t, r, http.MethodDelete, "/messages/"+id, nil, nil); rr.Code != http.StatusPreconditionRequired {
		t.Fatalf("expected 428, got %d", rr.Code)
	}
	if rr := doJSON(t, r, http.MethodDelete, "/messages/"+id+"?confirm=true", nil, nil); rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestGetPageBundlesHomeContent(t *testing.T) {
	api, _ := newTestAPI(t, Options{})
	r := newTestEngine(api)
	r.GET("/pages/:page", api.GetPage)

	if _, err := api.services.Create(service.ServiceInput{Title: strPtr("Web")}); err != nil {
		t.Fatalf("create service: %v", err)
	}
	if _, err := api.projects.Create(service.ProjectInput{Title: strPtr("Hidden"), Visible: boolPtr(false)}); err != nil {
		t.Fatalf("create project: %v", err)
	}

	rr := doJSON(t, r, http.MethodGet, "/pages/home?lang=en", nil, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	body := decodeBody(t, rr)

	loc := body["locale"].(map[string]interface{})
	if loc["language"] != "en" || loc["dir"] != "ltr" {
		t.Fatalf("unexpected locale %v", loc)
	}
	if len(body["services"].([]interface{})) != 1 {
		t.Fatalf("expected one visible service")
	}
	if len(body["projects"].([]interface{})) != 0 {
		t.Fatalf("hidden projects must not be public")
	}
	if len(body["sections"].([]interface{})) == 0 {
		t.Fatalf("expected visible section names")
	}
	if rr.Header().Get("Content-Language") != "en" {
		t.Fatalf("expected Content-Language en, got %q", rr.Header().Get("Content-Language"))
	}
	seo := body["seo"].(map[string]interface{})
	if !strings.Contains(seo["title"].(string), "Portfolio") {
		t.Fatalf("expected default seo title, got %v", seo["title"])
	}

	rr = doJSON(t, r, http.MethodGet, "/pages/resume", nil, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 for resume page, got %d", rr.Code)
	}
	body = decodeBody(t, rr)
	if body["locale"].(map[string]interface{})["dir"] != "rtl" {
		t.Fatalf("expected arabic rtl by default")
	}
	if _, ok := body["resume"]; !ok {
		t.Fatalf("expected resume block")
	}

	if rr := doJSON(t, r, http.MethodGet, "/pages/blog", nil, nil); rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown page, got %d", rr.Code)
	}
}

func TestKeepAliveReportsDatabase(t *testing.T) {
	api, gdb := newTestAPI(t, Options{})
	r := newTestEngine(api)
	r.GET("/keep-alive", api.KeepAlive)

	rr := doJSON(t, r, http.MethodGet, "/keep-alive", nil, nil)
	if rr.Code != http.StatusOK || decodeBody(t, rr)["status"] != "ok" {
		t.Fatalf("expected ok keep-alive, got %d %s", rr.Code, rr.Body.String())
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.Close()

	rr = doJSON(t, r, http.MethodGet, "/keep-alive", nil, nil)
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 after close, got %d", rr.Code)
	}
}

func TestHealthzHidesDatabaseError(t *testing.T) {
	api, gdb := newTestAPI(t, Options{})
	r := newTestEngine(api)
	r.GET("/healthz", api.Healthz)

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.Close()

	rr := doJSON(t, r, http.MethodGet, "/healthz", nil, nil)
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rr.Code)
	}
	body := decodeBody(t, rr)
	if len(body) != 1 || body["status"] != "unavailable" {
		t.Fatalf("expected only the status field, got %v", body)
	}
}
