package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"skilledu/services"

	"github.com/gorilla/mux"
)

type HistoryHandler struct {
	service *services.HistoryService
}

func NewHistoryHandler(service *services.HistoryService) *HistoryHandler {
	return &HistoryHandler{service: service}
}

func (h *HistoryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/ai-responses", h.GetResponses).Methods("GET")
	router.HandleFunc("/ai-responses/{id:[0-9]+}", h.DeleteResponse).Methods("DELETE")
	router.HandleFunc("/ai-responses", h.DeleteAllResponses).Methods("DELETE")
}

func (h *HistoryHandler) GetResponses(w http.ResponseWriter, r *http.Request) {
	userID := resolveUserID(r)
	if userID == 0 {
		h.writeErrorResponse(w, http.StatusUnauthorized, "User identity required")
		return
	}

	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))
	search := query.Get("search")

	result, err := h.service.GetUserResponses(userID, page, limit, search)
	if err != nil {
		h.writeErrorResponse(w, http.StatusInternalServerError, "Failed to retrieve responses")
		return
	}

	h.writeJSONResponse(w, http.StatusOK, result)
}

func (h *HistoryHandler) DeleteResponse(w http.ResponseWriter, r *http.Request) {
	userID := resolveUserID(r)
	if userID == 0 {
		h.writeErrorResponse(w, http.StatusUnauthorized, "User identity required")
		return
	}

	vars := mux.Vars(r)
	responseID, err := strconv.Atoi(vars["id"])
	if err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid response ID")
		return
	}

	if err := h.service.DeleteResponse(userID, responseID); err != nil {
		if strings.Contains(err.Error(), "not found") {
			h.writeErrorResponse(w, http.StatusNotFound, err.Error())
		} else {
			h.writeErrorResponse(w, http.StatusInternalServerError, "Failed to delete response")
		}
		return
	}

	h.writeJSONResponse(w, http.StatusOK, map[string]string{"message": "Response deleted"})
}

func (h *HistoryHandler) DeleteAllResponses(w http.ResponseWriter, r *http.Request) {
	userID := resolveUserID(r)
	if userID == 0 {
		h.writeErrorResponse(w, http.StatusUnauthorized, "User identity required")
		return
	}

	if err := h.service.DeleteAllResponses(userID); err != nil {
		h.writeErrorResponse(w, http.StatusInternalServerError, "Failed to delete responses")
		return
	}

	h.writeJSONResponse(w, http.StatusOK, map[string]string{"message": "All responses deleted"})
}

func (h *HistoryHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func (h *HistoryHandler) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
