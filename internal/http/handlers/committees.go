package handlers

import "net/http"

// CommitteeContributions lists contributions received by a committee.
// Served under both /api/candidate/{ncsbeID} and /api/committees/{ncsbeID}/contributions.
func (a *App) CommitteeContributions(w http.ResponseWriter, r *http.Request) {
	id, err := sboeIDParam(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	page, err := a.pageRequest(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	res, err := a.Contributions.ListByCommittee(r.Context(), id, page)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, res)
}

func (a *App) Committee(w http.ResponseWriter, r *http.Request) {
	id, err := sboeIDParam(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	committee, err := a.Committees.GetBySBOEID(r.Context(), id)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, committee)
}

func (a *App) CommitteeExpenditures(w http.ResponseWriter, r *http.Request) {
	id, err := sboeIDParam(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	page, err := a.pageRequest(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	res, err := a.Expenditures.ListByCommittee(r.Context(), id, page)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, res)
}
