package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/breakroom-app/breakroom/internal/config"
	"github.com/breakroom-app/breakroom/internal/domain"
	"github.com/breakroom-app/breakroom/internal/infrastructure/repository"
	"github.com/breakroom-app/breakroom/internal/usecase"
)

func newTestServer(t *testing.T, cfg config.Config, companies []domain.Company, posts []domain.Post) (*echo.Echo, *repository.MemoryStore) {
	t.Helper()

	store := repository.NewMemoryStore(companies, posts)
	companyUC := usecase.NewCompanyUsecase(store.Companies())
	postUC := usecase.NewPostUsecase(store.Posts(), store.Companies(), store.State(), nil)
	reportUC := usecase.NewReportUsecase(store.Reports(), nil)
	adminUC := usecase.NewAdminUsecase(store.Posts(), store.State(), nil)

	h := NewHandler(cfg, companyUC, postUC, reportUC, adminUC, usecase.NewInsightUsecase(), nil)

	e := echo.New()
	h.RegisterRoutes(e)
	return e, store
}

func doJSON(e *echo.Echo, method, path string, payload any, headers map[string]string) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	res := httptest.NewRecorder()
	e.ServeHTTP(res, req)
	return res
}

func TestHandleHealth(t *testing.T) {
	e, _ := newTestServer(t, config.Config{}, nil, nil)

	res := doJSON(e, http.MethodGet, "/health", nil, nil)
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.Code)
	}
	var body struct {
		OK        bool `json:"ok"`
		Milestone int  `json:"milestone"`
	}
	if err := json.Unmarshal(res.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if !body.OK || body.Milestone == 0 {
		t.Fatalf("unexpected health body: %s", res.Body.String())
	}
}

func TestHandleUnknownRouteIs404Code(t *testing.T) {
	e, _ := newTestServer(t, config.Config{}, nil, nil)

	res := doJSON(e, http.MethodGet, "/nope", nil, nil)
	if res.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", res.Code)
	}
	if !strings.Contains(res.Body.String(), `"not_found"`) {
		t.Fatalf("expected not_found code, got %s", res.Body.String())
	}
}

func TestHandleSearchCompanies(t *testing.T) {
	e, _ := newTestServer(t, config.Config{}, []domain.Company{
		{ID: "acme", Name: "Acme Corp"},
		{ID: "globex", Name: "Globex"},
	}, nil)

	res := doJSON(e, http.MethodGet, "/companies?q=acm", nil, nil)
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.Code)
	}
	var body struct {
		Companies []domain.Company `json:"companies"`
	}
	if err := json.Unmarshal(res.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Companies) != 1 || body.Companies[0].ID != "acme" {
		t.Fatalf("unexpected search result: %+v", body.Companies)
	}
}

func TestHandleCreateCompany(t *testing.T) {
	e, _ := newTestServer(t, config.Config{}, []domain.Company{
		{ID: "acme", Name: "Acme"},
	}, nil)

	res := doJSON(e, http.MethodPost, "/companies", map[string]string{"name": "Stark Industries"}, nil)
	if res.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", res.Code, res.Body.String())
	}
	if !strings.Contains(res.Body.String(), `"stark-industries"`) {
		t.Fatalf("expected slug id in body, got %s", res.Body.String())
	}

	res = doJSON(e, http.MethodPost, "/companies", map[string]string{"name": "Acme"}, nil)
	if res.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", res.Code)
	}
	if !strings.Contains(res.Body.String(), `"company_exists"`) {
		t.Fatalf("expected company_exists code, got %s", res.Body.String())
	}

	res = doJSON(e, http.MethodPost, "/companies", map[string]string{"name": "   "}, nil)
	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", res.Code)
	}
}

func TestHandleListPosts(t *testing.T) {
	e, _ := newTestServer(t, config.Config{}, []domain.Company{
		{ID: "acme", Name: "Acme"},
	}, []domain.Post{
		{ID: "p1", CompanyID: "acme", Category: "red_flags", Status: domain.StatusVisible, CreatedDate: "2025-01-01"},
		{ID: "p2", CompanyID: "acme", Category: "red_flags", Status: domain.StatusHeld, CreatedDate: "2025-01-02"},
	})

	res := doJSON(e, http.MethodGet, "/companies/acme/posts", nil, nil)
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.Code)
	}
	var body struct {
		Posts []domain.PublicPost `json:"posts"`
	}
	if err := json.Unmarshal(res.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Posts) != 1 || body.Posts[0].ID != "p1" {
		t.Fatalf("expected only the visible post, got %+v", body.Posts)
	}

	res = doJSON(e, http.MethodGet, "/companies/nowhere/posts", nil, nil)
	if res.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", res.Code)
	}
	if !strings.Contains(res.Body.String(), `"company_not_found"`) {
		t.Fatalf("expected company_not_found code, got %s", res.Body.String())
	}
}

func TestHandleSubmitPost(t *testing.T) {
	companies := []domain.Company{{ID: "acme", Name: "Acme"}}

	t.Run("allow", func(t *testing.T) {
		e, _ := newTestServer(t, config.Config{}, companies, nil)
		res := doJSON(e, http.MethodPost, "/companies/acme/posts", map[string]string{
			"category":  "red_flags",
			"body":      "Middle management churns every quarter.",
			"authorKey": "dev1",
		}, nil)
		if res.Code != http.StatusCreated {
			t.Fatalf("expected 201 got %d: %s", res.Code, res.Body.String())
		}
		if !strings.Contains(res.Body.String(), `"decision":"allow"`) {
			t.Fatalf("expected allow decision, got %s", res.Body.String())
		}
	})

	t.Run("hold", func(t *testing.T) {
		e, _ := newTestServer(t, config.Config{}, companies, nil)
		res := doJSON(e, http.MethodPost, "/companies/acme/posts", map[string]string{
			"category":  "red_flags",
			"body":      "The recruiter said contact me for details.",
			"authorKey": "dev1",
		}, nil)
		if res.Code != http.StatusAccepted {
			t.Fatalf("expected 202 got %d: %s", res.Code, res.Body.String())
		}
		if !strings.Contains(res.Body.String(), `"decision":"hold"`) {
			t.Fatalf("expected hold decision, got %s", res.Body.String())
		}
	})

	t.Run("block", func(t *testing.T) {
		e, _ := newTestServer(t, config.Config{}, companies, nil)
		res := doJSON(e, http.MethodPost, "/companies/acme/posts", map[string]string{
			"category":  "red_flags",
			"body":      "Reach me at someone@example.com for the real story.",
			"authorKey": "dev1",
		}, nil)
		if res.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422 got %d: %s", res.Code, res.Body.String())
		}
		if !strings.Contains(res.Body.String(), `"moderation_blocked"`) {
			t.Fatalf("expected moderation_blocked code, got %s", res.Body.String())
		}
	})

	t.Run("banned", func(t *testing.T) {
		e, store := newTestServer(t, config.Config{}, companies, nil)
		if err := store.State().Ban(context.Background(), "dev1", "hate"); err != nil {
			t.Fatal(err)
		}
		res := doJSON(e, http.MethodPost, "/companies/acme/posts", map[string]string{
			"category":  "red_flags",
			"body":      "Anything at all.",
			"authorKey": "dev1",
		}, nil)
		if res.Code != http.StatusForbidden {
			t.Fatalf("expected 403 got %d", res.Code)
		}
		if !strings.Contains(res.Body.String(), `"banned"`) {
			t.Fatalf("expected banned code, got %s", res.Body.String())
		}
	})

	t.Run("locked", func(t *testing.T) {
		e, store := newTestServer(t, config.Config{}, companies, nil)
		key := domain.LockKey{CompanyID: "acme", Category: "red_flags"}
		if err := store.State().Lock(context.Background(), key, "spam"); err != nil {
			t.Fatal(err)
		}
		res := doJSON(e, http.MethodPost, "/companies/acme/posts", map[string]string{
			"category":  "red_flags",
			"body":      "Anything at all.",
			"authorKey": "dev2",
		}, nil)
		if res.Code != http.StatusForbidden {
			t.Fatalf("expected 403 got %d", res.Code)
		}
		if !strings.Contains(res.Body.String(), `"locked"`) {
			t.Fatalf("expected locked code, got %s", res.Body.String())
		}
	})

	t.Run("validation", func(t *testing.T) {
		e, _ := newTestServer(t, config.Config{}, companies, nil)
		res := doJSON(e, http.MethodPost, "/companies/acme/posts", map[string]string{
			"category":  "red_flags",
			"body":      "",
			"authorKey": "dev1",
		}, nil)
		if res.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 got %d", res.Code)
		}
	})
}

func TestHandleGetPost(t *testing.T) {
	e, _ := newTestServer(t, config.Config{}, nil, []domain.Post{
		{ID: "p1", CompanyID: "acme", Status: domain.StatusVisible, AuthorKey: "secret"},
		{ID: "p2", CompanyID: "acme", Status: domain.StatusRemoved},
	})

	res := doJSON(e, http.MethodGet, "/posts/p1", nil, nil)
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.Code)
	}
	if strings.Contains(res.Body.String(), "secret") {
		t.Fatalf("author key leaked: %s", res.Body.String())
	}

	res = doJSON(e, http.MethodGet, "/posts/p2", nil, nil)
	if res.Code != http.StatusNotFound {
		t.Fatalf("removed post should read as missing, got %d", res.Code)
	}
	if !strings.Contains(res.Body.String(), `"post_not_found"`) {
		t.Fatalf("expected post_not_found code, got %s", res.Body.String())
	}
}

func TestHandleReportPost(t *testing.T) {
	e, _ := newTestServer(t, config.Config{}, nil, nil)

	res := doJSON(e, http.MethodPost, "/posts/p_missing/report", map[string]string{
		"reason": "doxxing_or_identity",
	}, nil)
	if res.Code != http.StatusCreated {
		t.Fatalf("report must succeed even for a dangling post id, got %d", res.Code)
	}

	res = doJSON(e, http.MethodPost, "/posts/p_missing/report", map[string]string{
		"reason": "because",
	}, nil)
	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown reason, got %d", res.Code)
	}
}

func TestHandleInsights(t *testing.T) {
	e, _ := newTestServer(t, config.Config{}, nil, nil)

	res := doJSON(e, http.MethodPost, "/api/v1/insights", map[string]string{
		"country":         "us",
		"industry":        "technology",
		"experienceLevel": "junior",
		"skillsText":      "python, sql",
	}, nil)
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.Code)
	}
	if !strings.Contains(res.Body.String(), "summary_plain_language") {
		t.Fatalf("unexpected insights body: %s", res.Body.String())
	}
}

func TestAdminTokenGate(t *testing.T) {
	cfg := config.Config{}
	cfg.Admin.Token = "s3cret"
	e, _ := newTestServer(t, cfg, nil, []domain.Post{
		{ID: "p1", Status: domain.StatusHeld},
	})

	res := doJSON(e, http.MethodGet, "/api/v1/admin/posts/held", nil, nil)
	if res.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", res.Code)
	}

	res = doJSON(e, http.MethodGet, "/api/v1/admin/posts/held", nil, map[string]string{
		"X-Admin-Token": "s3cret",
	})
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d: %s", res.Code, res.Body.String())
	}
	if !strings.Contains(res.Body.String(), `"p1"`) {
		t.Fatalf("expected held post in queue, got %s", res.Body.String())
	}
}

func TestAdminModerationFlow(t *testing.T) {
	e, store := newTestServer(t, config.Config{}, []domain.Company{
		{ID: "acme", Name: "Acme"},
	}, []domain.Post{
		{ID: "p1", CompanyID: "acme", Category: "red_flags", Status: domain.StatusHeld, AuthorKey: "k1"},
		{ID: "p2", CompanyID: "acme", Category: "red_flags", Status: domain.StatusVisible, AuthorKey: "k2"},
	})

	res := doJSON(e, http.MethodPost, "/api/v1/admin/posts/p1/approve", map[string]string{"reason": "ok"}, nil)
	if res.Code != http.StatusOK {
		t.Fatalf("approve: expected 200 got %d", res.Code)
	}
	p1, _ := store.Posts().Get(context.Background(), "p1")
	if p1.Status != domain.StatusVisible {
		t.Fatalf("approve did not surface the post: %s", p1.Status)
	}

	res = doJSON(e, http.MethodPost, "/api/v1/admin/posts/p2/remove", map[string]string{"reason": "spam"}, nil)
	if res.Code != http.StatusOK {
		t.Fatalf("remove: expected 200 got %d", res.Code)
	}
	p2, _ := store.Posts().Get(context.Background(), "p2")
	if p2.Status != domain.StatusRemoved {
		t.Fatalf("remove did not take: %s", p2.Status)
	}

	res = doJSON(e, http.MethodPost, "/api/v1/admin/locks", map[string]string{
		"companyId": "acme", "category": "red_flags", "reason": "spam",
	}, nil)
	if res.Code != http.StatusOK {
		t.Fatalf("lock: expected 200 got %d", res.Code)
	}
	res = doJSON(e, http.MethodPost, "/api/v1/admin/locks", map[string]string{
		"companyId": "acme", "category": "nonsense", "reason": "spam",
	}, nil)
	if res.Code != http.StatusBadRequest {
		t.Fatalf("lock with unknown category: expected 400 got %d", res.Code)
	}

	res = doJSON(e, http.MethodPost, "/api/v1/admin/posts/p1/ban", map[string]string{"reason": "hate"}, nil)
	if res.Code != http.StatusOK {
		t.Fatalf("ban: expected 200 got %d", res.Code)
	}
	banned, _ := store.State().IsBanned(context.Background(), "k1")
	if !banned {
		t.Fatal("ban did not register the author key")
	}

	res = doJSON(e, http.MethodPost, "/posts/p1/report", map[string]string{"reason": "other"}, nil)
	if res.Code != http.StatusCreated {
		t.Fatalf("report: expected 201 got %d", res.Code)
	}
	var created struct {
		Report domain.Report `json:"report"`
	}
	if err := json.Unmarshal(res.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}
	res = doJSON(e, http.MethodPost, "/api/v1/admin/reports/"+created.Report.ID+"/resolve", nil, nil)
	if res.Code != http.StatusOK {
		t.Fatalf("resolve: expected 200 got %d", res.Code)
	}
	got, _ := store.Reports().Get(context.Background(), created.Report.ID)
	if got.Status != domain.ReportResolved {
		t.Fatalf("resolve did not take: %s", got.Status)
	}
}
