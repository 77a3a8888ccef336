package presenter

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Error bodies carry a stable machine-readable code plus optional
// detail fields; clients switch on the code, never on prose.
type errorResponse struct {
	Error   string   `json:"error"`
	Reasons []string `json:"reasons,omitempty"`
}

// OK wraps a successful response.
func OK(c echo.Context, payload any) error {
	return c.JSON(http.StatusOK, payload)
}

func Created(c echo.Context, payload any) error {
	return c.JSON(http.StatusCreated, payload)
}

// Accepted reports a submission that was taken but parked for review.
func Accepted(c echo.Context, payload any) error {
	return c.JSON(http.StatusAccepted, payload)
}

func BadRequest(c echo.Context, code string) error {
	return c.JSON(http.StatusBadRequest, errorResponse{Error: code})
}

func Forbidden(c echo.Context, code string) error {
	return c.JSON(http.StatusForbidden, errorResponse{Error: code})
}

func NotFound(c echo.Context, code string) error {
	return c.JSON(http.StatusNotFound, errorResponse{Error: code})
}

func Conflict(c echo.Context, code string) error {
	return c.JSON(http.StatusConflict, errorResponse{Error: code})
}

func Unauthorized(c echo.Context, code string) error {
	return c.JSON(http.StatusUnauthorized, errorResponse{Error: code})
}

// Unprocessable reports a moderation block with the matched reasons.
func Unprocessable(c echo.Context, code string, reasons []string) error {
	return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: code, Reasons: reasons})
}

func InternalError(c echo.Context, err error) error {
	fmt.Println("Internal error:", err)
	return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal_error"})
}
