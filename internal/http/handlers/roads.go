package handlers

import (
	"net/http"

	roadsvc "roadservice/internal/services/road"
)

// ListRoads lists roads, narrowed to one intersection when the
// intersectionId query parameter is present.
func ListRoads(svc *roadsvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := parseListRequest(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		intersectionID, err := queryID(r, "intersectionId")
		if err != nil {
			writeError(w, r, err)
			return
		}
		page, err := svc.ListRoads(r.Context(), roadsvc.ListRequest{ListRequest: req, IntersectionID: intersectionID})
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, page)
	}
}

func GetRoad(svc *roadsvc.Service) http.HandlerFunc    { return getResource(svc.Service) }
func CreateRoad(svc *roadsvc.Service) http.HandlerFunc { return createResource(svc.Service) }
func UpdateRoad(svc *roadsvc.Service) http.HandlerFunc { return updateResource(svc.Service) }
func DeleteRoad(svc *roadsvc.Service) http.HandlerFunc { return deleteResource(svc.Service) }
