package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"campaignfinance/internal/domain"
	"campaignfinance/internal/normalize"
)

const (
	minYear = 1900
	maxYear = 2200
)

// inputError is a client mistake reported verbatim with status 400.
type inputError string

func (e inputError) Error() string { return string(e) }

func (e inputError) Is(target error) bool { return target == domain.ErrInvalidInput }

// pathParam returns a decoded URL parameter. chi matches against RawPath
// when the request carried escapes like %2F, leaving those params encoded.
func pathParam(r *http.Request, key string) (string, error) {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v, nil
	}
	decoded, err := normalize.PathValue(v)
	if err != nil {
		return "", inputError("invalid " + key + " encoding")
	}
	return decoded, nil
}

func nameParam(r *http.Request) (string, error) {
	raw, err := pathParam(r, "name")
	if err != nil {
		return "", err
	}
	name, err := normalize.SearchName(raw)
	switch {
	case errors.Is(err, normalize.ErrEmpty):
		return "", inputError("empty name")
	case errors.Is(err, normalize.ErrTooLong):
		return "", inputError("name too long")
	case err != nil:
		return "", inputError("invalid name")
	}
	return name, nil
}

func sboeIDParam(r *http.Request) (string, error) {
	raw, err := pathParam(r, "ncsbeID")
	if err != nil {
		return "", err
	}
	id, err := normalize.SBOEID(raw)
	switch {
	case errors.Is(err, normalize.ErrEmpty):
		return "", inputError("empty ncsbeID")
	case err != nil:
		return "", inputError("invalid ncsbeID")
	}
	return id, nil
}

func contributorIDParam(r *http.Request) (string, error) {
	id, err := uuid.Parse(chi.URLParam(r, "contributorID"))
	if err != nil {
		return "", inputError("invalid contributorId")
	}
	return id.String(), nil
}

func yearParam(r *http.Request) (int, error) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year < minYear || year > maxYear {
		return 0, inputError("invalid year")
	}
	return year, nil
}

// pageRequest reads limit and offset, clamping limit to the configured maximum.
func (a *App) pageRequest(r *http.Request) (domain.PageRequest, error) {
	page := domain.PageRequest{Limit: a.Config.DefaultPageSize}
	q := r.URL.Query()
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit <= 0 {
			return page, inputError("invalid limit")
		}
		page.Limit = min(limit, a.Config.MaxPageSize)
	}
	if v := q.Get("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		// offsets bind to an int4 parameter
		if err != nil || offset < 0 || offset > math.MaxInt32 {
			return page, inputError("invalid offset")
		}
		page.Offset = offset
	}
	return page, nil
}

func (a *App) nameQuery(name string) domain.NameQuery {
	return domain.NameQuery{Name: name, Threshold: a.Config.TrigramThreshold}
}
