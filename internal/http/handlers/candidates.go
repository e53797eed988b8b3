package handlers

import "net/http"

// CandidatesForYear lists candidates whose committees received money in {year}.
func (a *App) CandidatesForYear(w http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	page, err := a.pageRequest(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	res, err := a.Committees.CandidatesForYear(r.Context(), year, page)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, res)
}
