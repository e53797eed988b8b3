package handlers

import "net/http"

// SearchContributors fuzzy-matches contributor names.
func (a *App) SearchContributors(w http.ResponseWriter, r *http.Request) {
	name, err := nameParam(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	page, err := a.pageRequest(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	res, err := a.Contributors.Search(r.Context(), a.nameQuery(name), page)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, res)
}

// SearchCandidates fuzzy-matches committee and candidate names.
func (a *App) SearchCandidates(w http.ResponseWriter, r *http.Request) {
	name, err := nameParam(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	page, err := a.pageRequest(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	res, err := a.Committees.Search(r.Context(), a.nameQuery(name), page)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, res)
}
