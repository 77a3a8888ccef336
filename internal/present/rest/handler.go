package rest

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/breakroom-app/breakroom/internal/config"
	"github.com/breakroom-app/breakroom/internal/domain"
	"github.com/breakroom-app/breakroom/internal/present/rest/middleware"
	"github.com/breakroom-app/breakroom/internal/present/rest/presenter"
	"github.com/breakroom-app/breakroom/internal/service"
	"github.com/breakroom-app/breakroom/internal/usecase"
)

const milestone = 1

type Handler struct {
	config  config.Config
	company *usecase.CompanyUsecase
	post    *usecase.PostUsecase
	report  *usecase.ReportUsecase
	admin   *usecase.AdminUsecase
	insight *usecase.InsightUsecase
	signal  *service.SignalService
}

func NewHandler(
	config config.Config,
	company *usecase.CompanyUsecase,
	post *usecase.PostUsecase,
	report *usecase.ReportUsecase,
	admin *usecase.AdminUsecase,
	insight *usecase.InsightUsecase,
	signal *service.SignalService,
) *Handler {
	return &Handler{
		config:  config,
		company: company,
		post:    post,
		report:  report,
		admin:   admin,
		insight: insight,
		signal:  signal,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.HTTPErrorHandler = errorHandler

	e.GET("/health", h.handleHealth)
	e.GET("/companies", h.handleSearchCompanies)
	e.POST("/companies", h.handleCreateCompany)
	e.GET("/companies/:companyId/posts", h.handleListPosts)
	e.POST("/companies/:companyId/posts", h.handleSubmitPost)
	e.GET("/posts/:postId", h.handleGetPost)
	e.POST("/posts/:postId/report", h.handleReportPost)
	e.POST("/api/v1/insights", h.handleInsights)
	e.GET("/realtime", h.handleRealtime)

	adminMW := middleware.NewAdminMiddleware(h.config)
	admin := e.Group("/api/v1/admin", adminMW.RequireToken)
	admin.GET("/posts/held", h.handleListHeld)
	admin.GET("/reports", h.handleListReports)
	admin.POST("/posts/:postId/approve", h.handleApprovePost)
	admin.POST("/posts/:postId/remove", h.handleRemovePost)
	admin.POST("/posts/:postId/ban", h.handleBanAuthor)
	admin.POST("/locks", h.handleLockCategory)
	admin.POST("/reports/:reportId/resolve", h.handleResolveReport)
}

// errorHandler keeps the wire format stable for routes echo rejects
// itself: unknown paths and bad methods answer with the same code-style
// body as everything else.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if !ok {
		_ = presenter.InternalError(c, err)
		return
	}
	switch he.Code {
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		_ = presenter.NotFound(c, "not_found")
	default:
		_ = c.JSON(he.Code, echo.Map{"error": http.StatusText(he.Code)})
	}
}

func (h *Handler) handleHealth(c echo.Context) error {
	return presenter.OK(c, echo.Map{"ok": true, "milestone": milestone})
}

func (h *Handler) handleSearchCompanies(c echo.Context) error {
	ctx := c.Request().Context()

	companies, err := h.company.Search(ctx, c.QueryParam("q"))
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, echo.Map{"companies": companies})
}

func (h *Handler) handleCreateCompany(c echo.Context) error {
	ctx := c.Request().Context()

	var input usecase.CreateCompanyInput
	if err := c.Bind(&input); err != nil {
		return presenter.BadRequest(c, "validation_error")
	}

	company, err := h.company.Create(ctx, input)
	switch {
	case errors.Is(err, domain.ErrEmptyName):
		return presenter.BadRequest(c, "validation_error")
	case errors.Is(err, domain.ErrCompanyExists):
		return presenter.Conflict(c, "company_exists")
	case err != nil:
		return presenter.InternalError(c, err)
	}
	return presenter.Created(c, echo.Map{"company": company})
}

func (h *Handler) handleListPosts(c echo.Context) error {
	ctx := c.Request().Context()

	posts, err := h.post.ListVisible(ctx,
		c.Param("companyId"),
		c.QueryParam("category"),
		domain.ParseSortMode(c.QueryParam("sort")),
	)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return presenter.NotFound(c, "company_not_found")
	case err != nil:
		return presenter.InternalError(c, err)
	}
	if posts == nil {
		posts = []domain.PublicPost{}
	}
	return presenter.OK(c, echo.Map{"posts": posts})
}

func (h *Handler) handleSubmitPost(c echo.Context) error {
	ctx := c.Request().Context()

	var input usecase.SubmitInput
	if err := c.Bind(&input); err != nil {
		return presenter.BadRequest(c, "validation_error")
	}
	input.CompanyID = c.Param("companyId")

	post, result, err := h.post.Submit(ctx, input)
	var blocked domain.ModerationBlockedError
	switch {
	case errors.Is(err, domain.ErrCompanyNotFound):
		return presenter.NotFound(c, "company_not_found")
	case errors.Is(err, domain.ErrEmptyBody), errors.Is(err, domain.ErrInvalidCategory):
		return presenter.BadRequest(c, "validation_error")
	case errors.Is(err, domain.ErrBanned):
		return presenter.Forbidden(c, "banned")
	case errors.Is(err, domain.ErrLocked):
		return presenter.Forbidden(c, "locked")
	case errors.As(err, &blocked):
		return presenter.Unprocessable(c, "moderation_blocked", blocked.Reasons)
	case err != nil:
		return presenter.InternalError(c, err)
	}

	if post.Status == domain.StatusHeld {
		return presenter.Accepted(c, echo.Map{
			"post":     post.Public(),
			"decision": "hold",
			"reasons":  result.Reasons,
		})
	}
	return presenter.Created(c, echo.Map{
		"post":     post.Public(),
		"decision": "allow",
	})
}

func (h *Handler) handleGetPost(c echo.Context) error {
	ctx := c.Request().Context()

	post, err := h.post.GetPublic(ctx, c.Param("postId"))
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return presenter.NotFound(c, "post_not_found")
	case err != nil:
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, echo.Map{"post": post})
}

func (h *Handler) handleReportPost(c echo.Context) error {
	ctx := c.Request().Context()

	var input struct {
		Reason string `json:"reason"`
	}
	if err := c.Bind(&input); err != nil {
		return presenter.BadRequest(c, "validation_error")
	}

	report, err := h.report.Submit(ctx, c.Param("postId"), input.Reason)
	switch {
	case errors.Is(err, domain.ErrInvalidReason):
		return presenter.BadRequest(c, "validation_error")
	case err != nil:
		return presenter.InternalError(c, err)
	}
	return presenter.Created(c, echo.Map{"report": report})
}

func (h *Handler) handleInsights(c echo.Context) error {
	ctx := c.Request().Context()

	var profile usecase.ProfileInput
	if err := c.Bind(&profile); err != nil {
		return presenter.BadRequest(c, "validation_error")
	}
	return presenter.OK(c, h.insight.Generate(ctx, profile))
}

func (h *Handler) handleListHeld(c echo.Context) error {
	ctx := c.Request().Context()

	posts, err := h.admin.ListHeld(ctx)
	if err != nil {
		return presenter.InternalError(c, err)
	}
	if posts == nil {
		posts = []domain.Post{}
	}
	return presenter.OK(c, echo.Map{"posts": posts})
}

func (h *Handler) handleListReports(c echo.Context) error {
	ctx := c.Request().Context()

	reports, err := h.report.List(ctx, domain.ReportStatus(c.QueryParam("status")))
	if err != nil {
		return presenter.InternalError(c, err)
	}
	if reports == nil {
		reports = []domain.Report{}
	}
	return presenter.OK(c, echo.Map{"reports": reports})
}

type adminActionRequest struct {
	Reason string `json:"reason"`
}

func (h *Handler) handleApprovePost(c echo.Context) error {
	ctx := c.Request().Context()

	var req adminActionRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, "validation_error")
	}
	if err := h.admin.Approve(ctx, c.Param("postId"), req.Reason); err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleRemovePost(c echo.Context) error {
	ctx := c.Request().Context()

	var req adminActionRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, "validation_error")
	}
	if err := h.admin.Remove(ctx, c.Param("postId"), req.Reason); err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleBanAuthor(c echo.Context) error {
	ctx := c.Request().Context()

	var req adminActionRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, "validation_error")
	}
	err := h.admin.Ban(ctx, c.Param("postId"), req.Reason)
	switch {
	case errors.Is(err, domain.ErrEmptyAuthorKey):
		return presenter.BadRequest(c, "validation_error")
	case err != nil:
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleLockCategory(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		CompanyID string `json:"companyId"`
		Category  string `json:"category"`
		Reason    string `json:"reason"`
	}
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, "validation_error")
	}
	err := h.admin.Lock(ctx, req.CompanyID, req.Category, req.Reason)
	switch {
	case errors.Is(err, domain.ErrInvalidCategory):
		return presenter.BadRequest(c, "validation_error")
	case err != nil:
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleResolveReport(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.report.Resolve(ctx, c.Param("reportId")); err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}
