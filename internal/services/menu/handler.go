package menu

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Devanandan1369/online-food-delivery/internal/logger"
	"github.com/Devanandan1369/online-food-delivery/internal/storage"
)

// Handler handles HTTP requests for the menu service.
type Handler struct {
	service *Service
	logger  *logger.Logger
}

// NewHandler creates a new menu handler.
func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  log,
	}
}

// ListMenus handles GET /menus requests.
func (h *Handler) ListMenus(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	if r.Method != http.MethodGet {
		h.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	restaurants, err := h.service.ListRestaurants()
	if err != nil {
		h.logger.Error("catalog_unavailable", "Failed to load catalog", requestID, err, nil)
		h.writeErrorResponse(w, http.StatusServiceUnavailable, "Menu data not available")
		return
	}

	h.writeJSON(w, http.StatusOK, restaurants)
}

// GetMenu handles GET /menu/{restaurant_id} requests.
func (h *Handler) GetMenu(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	if r.Method != http.MethodGet {
		h.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	idStr := strings.TrimPrefix(r.URL.Path, "/menu/")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		h.writeErrorResponse(w, http.StatusNotFound, "Restaurant not found")
		return
	}

	restaurant, err := h.service.GetRestaurant(id)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			h.writeErrorResponse(w, http.StatusNotFound, "Restaurant not found")
		case errors.Is(err, storage.ErrNotAvailable):
			h.logger.Error("catalog_unavailable", "Failed to load catalog", requestID, err, nil)
			h.writeErrorResponse(w, http.StatusServiceUnavailable, "Menu data not available")
		default:
			h.logger.Error("lookup_failed", "Restaurant lookup failed", requestID, err, map[string]interface{}{
				"restaurant_id": id,
			})
			h.writeErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	h.writeJSON(w, http.StatusOK, restaurant)
}

// SetupRoutes sets up the HTTP routes.
func (h *Handler) SetupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/menus", h.withLogging(h.ListMenus))
	mux.HandleFunc("/menu/", h.withLogging(h.GetMenu))

	return mux
}

func (h *Handler) writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("response_encoding_failed", "Failed to encode response", "", err, nil)
	}
}

func (h *Handler) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	h.writeJSON(w, statusCode, map[string]string{"error": message})
}

// withLogging adds request logging middleware.
func (h *Handler) withLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := logger.GenerateRequestID()

		h.logger.Debug("request_started",
			fmt.Sprintf("%s %s", r.Method, r.URL.Path),
			requestID,
			map[string]interface{}{
				"method":      r.Method,
				"path":        r.URL.Path,
				"remote_addr": r.RemoteAddr,
			})

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		h.logger.Debug("request_completed",
			fmt.Sprintf("%s %s - %d", r.Method, r.URL.Path, rw.statusCode),
			requestID,
			map[string]interface{}{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status_code": rw.statusCode,
				"duration_ms": time.Since(start).Milliseconds(),
			})
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
