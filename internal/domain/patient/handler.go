package patient

import (
	"net/http"
	"strconv"

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
	g.POST("/patients", h.CreatePatient)
	g.GET("/patients", h.ListPatients)
	g.GET("/patients/camp/:camp_id", h.ListPatientsByCamp)
	g.GET("/patients/:id", h.GetPatient)
	g.DELETE("/patients/:id", h.DeletePatient)
}

func (h *Handler) CreatePatient(c echo.Context) error {
	var p Patient
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreatePatient(c.Request().Context(), &p); err != nil {
		return apperror.AsHTTP(err, "error adding patient")
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":    "Patient added successfully",
		"patient_id": p.PatientID,
	})
}

func (h *Handler) GetPatient(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	p, err := h.svc.GetPatient(c.Request().Context(), id)
	if err != nil {
		return apperror.AsHTTP(err, "error fetching patient")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) ListPatients(c echo.Context) error {
	patients, err := h.svc.ListPatients(c.Request().Context())
	if err != nil {
		return apperror.AsHTTP(err, "error fetching patients")
	}
	if patients == nil {
		patients = []*Patient{}
	}
	return c.JSON(http.StatusOK, patients)
}

func (h *Handler) ListPatientsByCamp(c echo.Context) error {
	campID, err := parseID(c.Param("camp_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid camp id")
	}
	patients, err := h.svc.ListPatientsByCamp(c.Request().Context(), campID)
	if err != nil {
		return apperror.AsHTTP(err, "error fetching camp patients")
	}
	if patients == nil {
		patients = []*Patient{}
	}
	return c.JSON(http.StatusOK, patients)
}

func (h *Handler) DeletePatient(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	if err := h.svc.DeletePatient(c.Request().Context(), id); err != nil {
		return apperror.AsHTTP(err, "error deleting patient")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Patient deleted successfully",
	})
}

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
