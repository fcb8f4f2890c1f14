// Copyright 2026 The Rentbase Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package http exposes the rental store over a JSON REST API.
package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/rentbase/rentbase/internal/audit"
	"github.com/rentbase/rentbase/internal/auth"
	"github.com/rentbase/rentbase/internal/observability/metrics"
	"github.com/rentbase/rentbase/internal/rental"
)

// Handler holds HTTP handlers and dependencies
type Handler struct {
	store       rental.Store
	authService *auth.Service
	auditLogger audit.Logger
	httpMetrics *metrics.HTTPMetrics
}

// NewHandler creates a new HTTP handler
func NewHandler(store rental.Store, authService *auth.Service, auditLogger audit.Logger, httpMetrics *metrics.HTTPMetrics) *Handler {
	return &Handler{
		store:       store,
		authService: authService,
		auditLogger: auditLogger,
		httpMetrics: httpMetrics,
	}
}

// NewRouter creates a new HTTP router
func NewRouter(h *Handler, rateLimiter *RateLimiter) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(RateLimitMiddleware(rateLimiter))
	r.Use(func(handler http.Handler) http.Handler {
		return otelhttp.NewHandler(handler, "http_request",
			otelhttp.WithSpanNameFormatter(func(operation string, r *http.Request) string {
				return r.Method + " " + r.URL.Path
			}),
		)
	})
	r.Use(h.LoggingMiddleware())
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// Health check
	r.Get("/health", h.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		// Public endpoints
		r.Post("/auth/register", h.Register)
		r.Post("/auth/login", h.Login)

		// Everything else requires a valid access token
		r.Group(func(r chi.Router) {
			r.Use(h.AuthMiddleware)

			r.Get("/auth/me", h.Me)

			r.Route("/users", func(r chi.Router) {
				r.Use(h.RequireRole(rental.RoleAdmin))
				r.Get("/", h.ListUsers)
				r.Get("/{id}", h.GetUser)
				r.Get("/{id}/applications", h.ApplicationsForUser)
				r.Put("/{id}", h.UpdateUser)
				r.Delete("/{id}", h.DeleteUser)
			})

			r.Route("/properties", func(r chi.Router) {
				r.Get("/", h.ListProperties)
				r.Get("/{id}", h.GetProperty)
				r.Get("/{id}/leases", h.LeasesForProperty)
				r.Get("/{id}/maintenance-requests", h.MaintenanceForProperty)

				r.Group(func(r chi.Router) {
					r.Use(h.RequireRole(rental.RoleAdmin, rental.RolePropertyOwner))
					r.Post("/", h.CreateProperty)
					r.Put("/{id}", h.UpdateProperty)
					r.Delete("/{id}", h.DeleteProperty)
					r.Get("/{id}/applications", h.ApplicationsForProperty)
				})
			})

			r.Route("/tenants", func(r chi.Router) {
				r.Post("/", h.CreateTenant)
				r.Get("/{id}", h.GetTenant)
				r.Put("/{id}", h.UpdateTenant)
				r.Get("/{id}/leases", h.LeasesForTenant)
				r.Get("/{id}/maintenance-requests", h.MaintenanceForTenant)

				r.Group(func(r chi.Router) {
					r.Use(h.RequireRole(rental.RoleAdmin, rental.RolePropertyOwner))
					r.Get("/", h.ListTenants)
					r.Get("/with-users", h.TenantsWithUsers)
					r.Delete("/{id}", h.DeleteTenant)
				})
			})

			r.With(h.RequireRole(rental.RoleAdmin, rental.RolePropertyOwner)).
				Get("/owners/{id}/tenants", h.TenantsForOwner)

			r.Route("/leases", func(r chi.Router) {
				r.Get("/", h.ListLeases)
				r.Get("/{id}", h.GetLease)

				r.Group(func(r chi.Router) {
					r.Use(h.RequireRole(rental.RoleAdmin, rental.RolePropertyOwner))
					r.Post("/", h.CreateLease)
					r.Put("/{id}", h.UpdateLease)
					r.Delete("/{id}", h.DeleteLease)
					r.Post("/{id}/end", h.EndLease)
				})
			})

			r.Route("/maintenance-requests", func(r chi.Router) {
				r.Post("/", h.CreateMaintenanceRequest)
				r.Get("/", h.ListMaintenanceRequests)
				r.Get("/{id}", h.GetMaintenanceRequest)
				r.Put("/{id}", h.UpdateMaintenanceRequest)
				r.Put("/{id}/status", h.SetMaintenanceStatus)

				r.With(h.RequireRole(rental.RoleAdmin, rental.RolePropertyOwner)).
					Delete("/{id}", h.DeleteMaintenanceRequest)
			})

			r.Route("/applications", func(r chi.Router) {
				r.Post("/", h.CreateApplication)
				r.Get("/{id}", h.GetApplication)
				r.Get("/mine", h.MyApplications)
				r.Post("/{id}/withdraw", h.WithdrawApplication)

				r.Group(func(r chi.Router) {
					r.Use(h.RequireRole(rental.RoleAdmin, rental.RolePropertyOwner))
					r.Get("/", h.ListApplications)
					r.Put("/{id}/review", h.ReviewApplication)
					r.Delete("/{id}", h.DeleteApplication)
				})
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.With(h.RequireRole(rental.RoleAdmin)).Get("/admin", h.AdminDashboard)
				r.With(h.RequireRole(rental.RoleAdmin, rental.RolePropertyOwner)).Get("/owner", h.OwnerDashboard)
				r.Get("/tenant", h.TenantDashboard)
			})
		})
	})

	return r
}

// HealthCheck returns the health status
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "rentbase",
	})
}

// Helper functions

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}

// respondStoreError maps store errors onto HTTP statuses; everything that is
// not "row missing" is a backend failure.
func respondStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, rental.ErrNotFound):
		respondError(w, http.StatusNotFound, "not found")
	case errors.Is(err, rental.ErrDuplicateUser):
		respondError(w, http.StatusConflict, "username or email already exists")
	default:
		respondError(w, http.StatusInternalServerError, "storage error")
	}
}

func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// idParam parses the {id} route parameter. The second return is false when
// the parameter is not a positive integer; the caller responds 400.
func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// getIPAddress resolves the client IP for rate limiting and audit records.
// X-Forwarded-For carries one hop per proxy; the first element is the
// client. Both headers are client-spoofable unless a trusted proxy fronts
// the server and strips them.
func getIPAddress(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}
