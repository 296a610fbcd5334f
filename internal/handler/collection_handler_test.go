package handler

import (
	"net/http"
	"testing"

	"github.com/portfolio/internal/db"
	"github.com/portfolio/internal/service"
)

func TestCreateProjectParsesTechnologies(t *testing.T) {
	api, gdb := newTestAPI(t, Options{})
	r := newTestEngine(api)
	r.POST("/projects", api.CreateProject)

	if err := gdb.Create(&db.Project{Title: "Existing", Listed: db.Listed{SortOrder: 0, IsVisible: true}}).Error; err != nil {
		t.Fatalf("seed project: %v", err)
	}

	rr := doJSON(t, r, http.MethodPost, "/projects", map[string]interface{}{
		"title":        "Shop",
		"technologies": "Go, SQL",
	}, nil)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	body := decodeBody(t, rr)
	project := body["project"].(map[string]interface{})
	technologies := project["technologies"].([]interface{})
	if len(technologies) != 2 || technologies[0] != "Go" || technologies[1] != "SQL" {
		t.Fatalf("unexpected technologies: %v", technologies)
	}
	if project["sortOrder"].(float64) != 1 {
		t.Fatalf("expected sortOrder 1, got %v", project["sortOrder"])
	}
	if project["isVisible"] != true {
		t.Fatalf("expected visible project, got %v", project["isVisible"])
	}

	notice := noticeOf(t, body)
	if notice["type"] != "success" || notice["dismissAfterMs"].(float64) != 3000 {
		t.Fatalf("unexpected notice: %v", notice)
	}
	if notice["text"] != "تمت إضافة المشروع" {
		t.Fatalf("expected arabic default notice, got %v", notice["text"])
	}
}

func TestNoticeFollowsRequestLanguage(t *testing.T) {
	api, _ := newTestAPI(t, Options{})
	r := newTestEngine(api)
	r.POST("/services", api.CreateService)

	rr := doJSON(t, r, http.MethodPost, "/services?lang=en", map[string]interface{}{"title": "Web"}, nil)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	if text := noticeOf(t, decodeBody(t, rr))["text"]; text != "Service added" {
		t.Fatalf("expected english notice, got %v", text)
	}

	rr = doJSON(t, r, http.MethodPost, "/services", map[string]interface{}{"title": ""}, map[string]string{"Accept-Language": "en-US,en;q=0.9"})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	notice := noticeOf(t, decodeBody(t, rr))
	if notice["type"] != "error" || notice["text"] != "Please check the required fields" {
		t.Fatalf("unexpected error notice: %v", notice)
	}
}

func TestDeleteServiceRequiresConfirmation(t *testing.T) {
	api, _ := newTestAPI(t, Options{})
	r := newTestEngine(api)
	r.DELETE("/services/:id", api.DeleteService)

	item, err := api.services.Create(service.ServiceInput{Title: strPtr("Web")})
	if err != nil {
		t.Fatalf("create service: %v", err)
	}

	rr := doJSON(t, r, http.MethodDelete, "/services/"+item.ID, nil, nil)
	if rr.Code != http.StatusPreconditionRequired {
		t.Fatalf("expected 428, got %d", rr.Code)
	}
	if _, err := api.services.Get(item.ID); err != nil {
		t.Fatalf("unconfirmed delete must keep the row: %v", err)
	}

	rr = doJSON(t, r, http.MethodDelete, "/services/"+item.ID, nil, map[string]string{confirmHeader: "true"})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, r, http.MethodDelete, "/services/"+item.ID+"?confirm=true", nil, nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for deleted row, got %d", rr.Code)
	}
}

func TestMoveAndToggleService(t *testing.T) {
	api, _ := newTestAPI(t, Options{})
	r := newTestEngine(api)
	r.POST("/services/move", api.MoveService)
	r.POST("/services/:id/visibility", api.ToggleServiceVisibility)
	r.GET("/public/services", api.ListServices)

	var ids []string
	for _, title := range []string{"A", "B"} {
		item, err := api.services.Create(service.ServiceInput{Title: strPtr(title)})
		if err != nil {
			t.Fatalf("create service: %v", err)
		}
		ids = append(ids, item.ID)
	}

	rr := doJSON(t, r, http.MethodPost, "/services/move", map[string]interface{}{"index": 1, "direction": "up"}, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	items := decodeBody(t, rr)["services"].([]interface{})
	if items[0].(map[string]interface{})["title"] != "B" {
		t.Fatalf("expected B first after move, got %v", items)
	}

	rr = doJSON(t, r, http.MethodPost, "/services/move", map[string]interface{}{"index": 0, "direction": "up"}, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("boundary move should succeed, got %d", rr.Code)
	}

	rr = doJSON(t, r, http.MethodPost, "/services/move", map[string]interface{}{"index": 0, "direction": "sideways"}, nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad direction, got %d", rr.Code)
	}
	rr = doJSON(t, r, http.MethodPost, "/services/move", map[string]interface{}{"direction": "up"}, nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without index, got %d", rr.Code)
	}

	rr = doJSON(t, r, http.MethodPost, "/services/"+ids[0]+"/visibility", nil, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	rr = doJSON(t, r, http.MethodGet, "/public/services", nil, nil)
	public := decodeBody(t, rr)["services"].([]interface{})
	if len(public) != 1 || public[0].(map[string]interface{})["title"] != "B" {
		t.Fatalf("expected only B to be public, got %v", public)
	}
}

func TestListAdminSocialLinksIncludesStyle(t *testing.T) {
	api, _ := newTestAPI(t, Options{})
	r := newTestEngine(api)
	r.GET("/social-links", api.ListAdminSocialLinks)

	if _, err := api.socialLinks.Create(service.SocialLinkInput{Platform: strPtr("github"), URL: strPtr("https://github.com/me")}); err != nil {
		t.Fatalf("create link: %v", err)
	}
	if _, err := api.socialLinks.Create(service.SocialLinkInput{Platform: strPtr("mastodon"), URL: strPtr("https://example.social/@me"), Visible: boolPtr(false)}); err != nil {
		t.Fatalf("create link: %v", err)
	}

	rr := doJSON(t, r, http.MethodGet, "/social-links", nil, nil)
	links := decodeBody(t, rr)["socialLinks"].([]interface{})
	if len(links) != 2 {
		t.Fatalf("expected both links for admin, got %d", len(links))
	}
	github := links[0].(map[string]interface{})
	if github["label"] != "GitHub" {
		t.Fatalf("expected GitHub label, got %v", github["label"])
	}
	custom := links[1].(map[string]interface{})
	if custom["label"] != "Link" || custom["color"] != "#6366F1" {
		t.Fatalf("expected generic style for unknown platform, got %v", custom)
	}
}

func strPtr(value string) *string { return &value }

func boolPtr(value bool) *bool { return &value }
