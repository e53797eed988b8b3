package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"campaignfinance/internal/domain"
	"campaignfinance/internal/infra"
)

// App holds the dependencies shared by every handler.
type App struct {
	Config        *infra.Config
	Logger        zerolog.Logger
	Committees    domain.CommitteeRepository
	Contributors  domain.ContributorRepository
	Contributions domain.ContributionRepository
	Expenditures  domain.ExpenditureRepository
}

type errorBody struct {
	Error string `json:"error"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, message string) {
	a.json(w, code, errorBody{Error: message})
}

// fail is the catch-all every handler funnels errors into.
func (a *App) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "not found")
		return
	case errors.Is(err, domain.ErrInvalidInput):
		a.error(w, http.StatusBadRequest, err.Error())
		return
	}

	log := zerolog.Ctx(r.Context())
	if log.GetLevel() == zerolog.Disabled {
		log = &a.Logger
	}
	log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")

	message := "unable to process request"
	if a.Config != nil && a.Config.IsDevelopment() {
		message += ": " + err.Error()
	}
	a.error(w, http.StatusInternalServerError, message)
}

// NotFound answers unknown routes.
func (a *App) NotFound(w http.ResponseWriter, _ *http.Request) {
	a.error(w, http.StatusNotFound, "not found")
}

// MethodNotAllowed answers known routes hit with the wrong method.
func (a *App) MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	a.error(w, http.StatusMethodNotAllowed, "method not allowed")
}
