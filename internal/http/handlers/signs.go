package handlers

import (
	"net/http"

	signsvc "roadservice/internal/services/sign"
)

// ListSigns lists signs, narrowed to one road when the roadId query
// parameter is present.
func ListSigns(svc *signsvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := parseListRequest(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		roadID, err := queryID(r, "roadId")
		if err != nil {
			writeError(w, r, err)
			return
		}
		page, err := svc.ListSigns(r.Context(), signsvc.ListRequest{ListRequest: req, RoadID: roadID})
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, page)
	}
}

func GetSign(svc *signsvc.Service) http.HandlerFunc    { return getResource(svc.Service) }
func CreateSign(svc *signsvc.Service) http.HandlerFunc { return createResource(svc.Service) }
func UpdateSign(svc *signsvc.Service) http.HandlerFunc { return updateResource(svc.Service) }
func DeleteSign(svc *signsvc.Service) http.HandlerFunc { return deleteResource(svc.Service) }
