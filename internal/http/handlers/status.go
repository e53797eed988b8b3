package handlers

import "net/http"

func (a *App) Status(w http.ResponseWriter, _ *http.Request) {
	a.json(w, http.StatusOK, map[string]string{"status": "online"})
}
