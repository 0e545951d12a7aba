package handlers

import (
	"net/http"

	intersectionsvc "roadservice/internal/services/intersection"
)

func ListIntersections(svc *intersectionsvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := parseListRequest(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		page, err := svc.List(r.Context(), req)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, page)
	}
}

func GetIntersection(svc *intersectionsvc.Service) http.HandlerFunc {
	return getResource(svc.Service)
}

func CreateIntersection(svc *intersectionsvc.Service) http.HandlerFunc {
	return createResource(svc.Service)
}

func UpdateIntersection(svc *intersectionsvc.Service) http.HandlerFunc {
	return updateResource(svc.Service)
}

func DeleteIntersection(svc *intersectionsvc.Service) http.HandlerFunc {
	return deleteResource(svc.Service)
}
