package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/xw1nchester/countries-backend/internal/apperror"
	"github.com/xw1nchester/countries-backend/internal/country"
	"github.com/xw1nchester/countries-backend/internal/handlers"
	"go.uber.org/zap"
)

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockcountryservice
type Service interface {
	GetAll(ctx context.Context) ([]country.Country, error)
	Get(ctx context.Context, code string) (*country.Country, error)
	Add(ctx context.Context, input country.Input) (*country.Country, error)
	Edit(ctx context.Context, code string, input country.Input) (*country.Country, error)
	Delete(ctx context.Context, code string) error
}

type handler struct {
	service Service
	logger  *zap.Logger
}

func New(service Service, logger *zap.Logger) handlers.Handler {
	return &handler{
		service: service,
		logger:  logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Route("/country", func(countryRouter chi.Router) {
		countryRouter.Get("/", apperror.Middleware(h.getAllHandler))
		countryRouter.Post("/", apperror.Middleware(h.addHandler))
		countryRouter.Get("/{code}", apperror.Middleware(h.getHandler))
		countryRouter.Patch("/{code}", apperror.Middleware(h.editHandler))
		countryRouter.Delete("/{code}", apperror.Middleware(h.deleteHandler))
	})
}

// @Tags		country
// @Success	200	{array}		country.Preview
// @Failure	500	{object}	apperror.AppError
// @Router		/country [get]
func (h *handler) getAllHandler(w http.ResponseWriter, r *http.Request) error {
	countries, err := h.service.GetAll(r.Context())
	if err != nil {
		return err
	}

	render.JSON(w, r, NewPreviews(r, countries))

	return nil
}

// @Tags		country
// @Param		code		path		string	true	"alpha2, alpha3 or numeric code"
// @Success	200			{object}	country.Country
// @Failure	400,404,500	{object}	apperror.AppError
// @Router		/country/{code} [get]
func (h *handler) getHandler(w http.ResponseWriter, r *http.Request) error {
	c, err := h.service.Get(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		return err
	}

	render.JSON(w, r, c)

	return nil
}

// @Tags		country
// @Param		request		body		CountryRequest	true	"request body"
// @Success	200			{object}	country.Preview
// @Failure	400,409,500	{object}	apperror.AppError
// @Router		/country [post]
func (h *handler) addHandler(w http.ResponseWriter, r *http.Request) error {
	var dto CountryRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Debug(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	c, err := h.service.Add(r.Context(), dto.ToDomain())
	if err != nil {
		return err
	}

	render.JSON(w, r, NewPreview(r, *c))

	return nil
}

// @Tags		country
// @Param		code			path		string			true	"alpha2, alpha3 or numeric code"
// @Param		request			body		CountryRequest	true	"fields to change"
// @Success	200				{object}	country.Preview
// @Failure	400,404,409,500	{object}	apperror.AppError
// @Router		/country/{code} [patch]
func (h *handler) editHandler(w http.ResponseWriter, r *http.Request) error {
	var dto CountryRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Debug(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	c, err := h.service.Edit(r.Context(), chi.URLParam(r, "code"), dto.ToDomain())
	if err != nil {
		return err
	}

	render.JSON(w, r, NewPreview(r, *c))

	return nil
}

// @Tags		country
// @Param		code		path	string	true	"alpha2, alpha3 or numeric code"
// @Success	204
// @Failure	400,404,500	{object}	apperror.AppError
// @Router		/country/{code} [delete]
func (h *handler) deleteHandler(w http.ResponseWriter, r *http.Request) error {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "code")); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)

	return nil
}
