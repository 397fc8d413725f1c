package reference

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/caredir/caredir/internal/locale"
)

// Handler serves the read-only reference data consumed by intake clients.
type Handler struct {
	catalog *Catalog
}

func NewHandler(catalog *Catalog) *Handler {
	return &Handler{catalog: catalog}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/reference/provider-types", h.ListProviderTypes)
	api.GET("/reference/countries", h.ListCountries)
}

// ListProviderTypes returns the catalog, optionally filtered by the locale
// query parameter (a country code, e.g. "gb" or "us").
func (h *Handler) ListProviderTypes(c echo.Context) error {
	country := c.QueryParam("locale")
	if country == "" {
		return c.JSON(http.StatusOK, h.catalog.Categories())
	}
	code := locale.FromCountry(country).ReferenceCode()
	return c.JSON(http.StatusOK, h.catalog.FilteredCategories(code))
}

func (h *Handler) ListCountries(c echo.Context) error {
	return c.JSON(http.StatusOK, locale.CountryGroups)
}
