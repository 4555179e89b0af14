package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/newindiatimbers8/new-india-timber-sub003/internal/platform/httpx"
	"github.com/newindiatimbers8/new-india-timber-sub003/internal/platform/observability"
	"github.com/newindiatimbers8/new-india-timber-sub003/internal/repositories"
	"github.com/newindiatimbers8/new-india-timber-sub003/internal/services"
)

const maxRequestBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, payload any) {
	httpx.WriteJSON(w, status, payload)
}

// writeServiceError maps service and repository errors onto the JSON error envelope.
func writeServiceError(ctx context.Context, w http.ResponseWriter, err error, resource string) {
	if err == nil {
		return
	}
	resource = strings.TrimSpace(resource)
	if resource == "" {
		resource = "resource"
	}

	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		httpx.WriteError(ctx, w, httpx.NewError("validation_failed", validationErr.Error(), http.StatusUnprocessableEntity).
			WithDetails(map[string]any{
				"issues": validationErr.Report.Issues,
				"score":  validationErr.Report.Score,
			}))
		return
	case errors.Is(err, services.ErrContentNotFound), errors.Is(err, services.ErrInvalidMenuType):
		httpx.WriteError(ctx, w, httpx.NewError(resource+"_not_found", resource+" not found", http.StatusNotFound))
		return
	case errors.Is(err, services.ErrMenuNameConflict):
		httpx.WriteError(ctx, w, httpx.NewError("menu_name_conflict", err.Error(), http.StatusConflict))
		return
	case errors.Is(err, services.ErrSitemapPublisherMissing):
		httpx.WriteError(ctx, w, httpx.NewError("sitemap_publisher_unavailable", "sitemap publishing is not configured", http.StatusServiceUnavailable))
		return
	case errors.Is(err, context.DeadlineExceeded):
		httpx.WriteError(ctx, w, httpx.NewError("deadline_exceeded", "request timed out", http.StatusGatewayTimeout))
		return
	}

	var repoErr repositories.RepositoryError
	if errors.As(err, &repoErr) {
		switch {
		case repoErr.IsNotFound():
			httpx.WriteError(ctx, w, httpx.NewError(resource+"_not_found", resource+" not found", http.StatusNotFound))
			return
		case repoErr.IsConflict():
			httpx.WriteError(ctx, w, httpx.NewError(resource+"_conflict", err.Error(), http.StatusConflict))
			return
		case repoErr.IsUnavailable():
			httpx.WriteError(ctx, w, httpx.NewError(resource+"_unavailable", fmt.Sprintf("%s repository unavailable", resource), http.StatusServiceUnavailable))
			return
		}
	}

	observability.FromContext(ctx).Error("request failed", zap.String("resource", resource), zap.Error(err))
	httpx.WriteError(ctx, w, httpx.NewError("internal_error", "internal server error", http.StatusInternalServerError))
}

// decodeJSONBody decodes a single JSON document, rejecting unknown fields and trailing data.
func decodeJSONBody(r *http.Request, dst any) error {
	if r.Body == nil {
		return errors.New("request body is required")
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is required")
		}
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	if dec.More() {
		return errors.New("request body must contain a single JSON document")
	}
	return nil
}

func writeBadRequest(ctx context.Context, w http.ResponseWriter, code string, err error) {
	httpx.WriteError(ctx, w, httpx.NewError(code, err.Error(), http.StatusBadRequest))
}
