package camp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medcamp/medcamp/pkg/apperror"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/camps", h.CreateCamp)
	g.GET("/camps", h.ListCamps)
}

func (h *Handler) CreateCamp(c echo.Context) error {
	var camp Camp
	if err := c.Bind(&camp); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateCamp(c.Request().Context(), &camp); err != nil {
		return apperror.AsHTTP(err, "error creating camp")
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":   "Camp created successfully",
		"camp_id":   camp.CampID,
		"camp_name": camp.CampName,
		"camp_date": camp.CampDate,
		"location":  camp.Location,
		"camp_code": camp.CampCode,
	})
}

func (h *Handler) ListCamps(c echo.Context) error {
	camps, err := h.svc.ListCamps(c.Request().Context())
	if err != nil {
		return apperror.AsHTTP(err, "error fetching camp list")
	}
	if camps == nil {
		camps = []*Camp{}
	}
	return c.JSON(http.StatusOK, camps)
}
