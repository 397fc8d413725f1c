package onboarding

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/caredir/caredir/internal/platform/auth"
)

type Handler struct {
	svc      *Service
	registry *Registry
	logger   zerolog.Logger
}

func NewHandler(svc *Service, registry *Registry, logger zerolog.Logger) *Handler {
	return &Handler{svc: svc, registry: registry, logger: logger}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/wizard/sessions")

	g.POST("", h.CreateSession)
	g.GET("/:id", h.GetSession)

	g.PUT("/:id/organisation", h.UpdateOrganisation)
	g.POST("/:id/organisation/validate-field", h.ValidateOrganisationField)
	g.POST("/:id/organisation/submit", h.SubmitOrganisation)
	g.POST("/:id/back", h.Back)

	g.POST("/:id/locations", h.AddLocation)
	g.PUT("/:id/locations/:index", h.UpdateLocation)
	g.DELETE("/:id/locations/:index", h.RemoveLocation)
	g.POST("/:id/locations/:index/copy-organisation", h.CopyOrganisation)
	g.POST("/:id/locations/:index/selection", h.ToggleSelection)
	g.GET("/:id/locations/:index/care-services", h.CareServices)

	g.POST("/:id/contacts", h.AddKeyContact)
	g.POST("/:id/complete", h.Complete)
}

func (h *Handler) CreateSession(c echo.Context) error {
	sess := h.svc.NewSession()
	h.registry.Put(sess)
	return c.JSON(http.StatusCreated, sess)
}

func (h *Handler) GetSession(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sess)
}

type organisationRequest struct {
	Organisation OrganisationDraft `json:"organisation"`
	Contact      ContactDraft      `json:"contact"`
}

func (h *Handler) UpdateOrganisation(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}
	var req organisationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	h.svc.UpdateOrganisation(sess, req.Organisation, req.Contact)
	return c.JSON(http.StatusOK, sess)
}

type fieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// ValidateOrganisationField checks a single field the way the live form does
// on blur, without mutating the session.
func (h *Handler) ValidateOrganisationField(c echo.Context) error {
	if _, err := h.session(c); err != nil {
		return err
	}
	var req fieldRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	msg := ValidateStep1Field(req.Field, req.Value)
	return c.JSON(http.StatusOK, map[string]string{"field": req.Field, "message": msg})
}

func (h *Handler) SubmitOrganisation(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}
	if err := h.svc.SubmitOrganisation(c.Request().Context(), sess, actorID(c)); err != nil {
		return h.wizardError(c, err)
	}
	return c.JSON(http.StatusOK, sess)
}

func (h *Handler) Back(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}
	h.svc.Back(sess)
	return c.JSON(http.StatusOK, sess)
}

func (h *Handler) AddLocation(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}
	i := h.svc.AddLocation(sess)
	return c.JSON(http.StatusCreated, map[string]interface{}{"index": i, "session": sess})
}

func (h *Handler) UpdateLocation(c echo.Context) error {
	sess, i, err := h.sessionLocation(c)
	if err != nil {
		return err
	}
	var d LocationDraft
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.UpdateLocation(sess, i, d); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, sess)
}

func (h *Handler) RemoveLocation(c echo.Context) error {
	sess, i, err := h.sessionLocation(c)
	if err != nil {
		return err
	}
	if err := h.svc.RemoveLocation(sess, i); err != nil {
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	return c.JSON(http.StatusOK, sess)
}

func (h *Handler) CopyOrganisation(c echo.Context) error {
	sess, i, err := h.sessionLocation(c)
	if err != nil {
		return err
	}
	if err := h.svc.CopyOrganisationIntoLocation(sess, i); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, sess)
}

type selectionRequest struct {
	Kind    string `json:"kind"` // category, subcategory or care_service
	ID      string `json:"id"`
	Checked bool   `json:"checked"`
}

func (h *Handler) ToggleSelection(c echo.Context) error {
	sess, i, err := h.sessionLocation(c)
	if err != nil {
		return err
	}
	var req selectionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	switch req.Kind {
	case "category":
		err = h.svc.ToggleCategory(sess, i, req.ID)
	case "subcategory":
		err = h.svc.ToggleSubcategory(sess, i, req.ID, req.Checked)
	case "care_service":
		err = h.svc.ToggleCareService(sess, i, req.ID, req.Checked)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "unknown selection kind")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, sess)
}

func (h *Handler) CareServices(c echo.Context) error {
	sess, i, err := h.sessionLocation(c)
	if err != nil {
		return err
	}
	services, err := h.svc.AvailableCareServices(sess, i)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"care_services": services})
}

func (h *Handler) AddKeyContact(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}
	var contact ContactDraft
	if err := c.Bind(&contact); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	person, err := h.svc.AddKeyContact(c.Request().Context(), sess, contact)
	if err != nil {
		return h.wizardError(c, err)
	}
	return c.JSON(http.StatusCreated, person)
}

func (h *Handler) Complete(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}
	if err := h.svc.Complete(c.Request().Context(), sess, actorID(c)); err != nil {
		return h.wizardError(c, err)
	}
	return c.JSON(http.StatusOK, sess)
}

func (h *Handler) session(c echo.Context) (*Session, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid session id")
	}
	sess, ok := h.registry.Get(id)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusNotFound, "session not found")
	}
	return sess, nil
}

func (h *Handler) sessionLocation(c echo.Context) (*Session, int, error) {
	sess, err := h.session(c)
	if err != nil {
		return nil, 0, err
	}
	var i int
	if err := echo.PathParamsBinder(c).Int("index", &i).BindError(); err != nil {
		return nil, 0, echo.NewHTTPError(http.StatusBadRequest, "invalid location index")
	}
	return sess, i, nil
}

// wizardError maps orchestrator failures onto HTTP. Validation problems come
// back with field detail; persistence failures come back generic, with the
// underlying cause logged server-side only.
func (h *Handler) wizardError(c echo.Context, err error) error {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{"errors": ve.Fields})
	}
	var lve *LocationValidationError
	if errors.As(err, &lve) {
		return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
			"locations":     lve.PerLocation,
			"first_invalid": lve.FirstInvalid,
		})
	}
	var pe *PersistError
	if errors.As(err, &pe) {
		h.logger.Error().Err(pe.Err).Msg("wizard persistence failure")
		return c.JSON(http.StatusBadGateway, map[string]string{"message": pe.Message})
	}
	return echo.NewHTTPError(http.StatusConflict, err.Error())
}

func actorID(c echo.Context) uuid.UUID {
	id, err := uuid.Parse(auth.UserIDFromContext(c.Request().Context()))
	if err != nil {
		return uuid.Nil
	}
	return id
}
