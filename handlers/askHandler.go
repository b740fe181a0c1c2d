package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"skilledu/models"
	"skilledu/services/boss"

	"github.com/gorilla/mux"
)

type AskHandler struct {
	service *boss.Service
}

func NewAskHandler(service *boss.Service) *AskHandler {
	return &AskHandler{service: service}
}

func (h *AskHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/ask-ai", h.AskAI).Methods("POST")
}

func (h *AskHandler) AskAI(w http.ResponseWriter, r *http.Request) {
	log.Printf("[INFO] Received ask-ai request")

	var req models.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[ERROR] Failed to decode ask-ai request JSON: %v", err)
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	// Identity resolution is the auth layer's job; a missing or malformed
	// header just means an anonymous request.
	userID := resolveUserID(r)

	response := h.service.HandleQuestion(r.Context(), &req, userID)

	log.Printf("[INFO] Completed ask-ai request (success=%t)", response.Success)
	h.writeJSONResponse(w, http.StatusOK, response)
}

func resolveUserID(r *http.Request) int {
	userID, err := strconv.Atoi(r.Header.Get("X-User-ID"))
	if err != nil || userID < 0 {
		return 0
	}
	return userID
}

func (h *AskHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func (h *AskHandler) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
