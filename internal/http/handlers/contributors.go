package handlers

import "net/http"

func (a *App) Contributor(w http.ResponseWriter, r *http.Request) {
	id, err := contributorIDParam(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	contributor, err := a.Contributors.GetByID(r.Context(), id)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, contributor)
}

// ContributorContributions lists one contributor's gifts with per-committee totals.
func (a *App) ContributorContributions(w http.ResponseWriter, r *http.Request) {
	id, err := contributorIDParam(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	page, err := a.pageRequest(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	res, err := a.Contributions.ListByContributor(r.Context(), id, page)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, res)
}
