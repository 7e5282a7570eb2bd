package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alcotheque/cellar/internal/logger"
	"github.com/alcotheque/cellar/internal/model"
)

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type quantityDetails struct {
	Stage     string `json:"stage"`
	Requested int64  `json:"requested"`
	Available int64  `json:"available"`
}

// writeError translates domain errors into HTTP statuses. Insufficient
// quantity carries structured amounts so the client can render a
// precise message.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	var insufficient *model.InsufficientQuantityError
	var invalidTransition *model.InvalidTransitionError

	switch {
	case errors.As(err, &insufficient):
		writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Error: errorBody{
			Code:    "insufficient_quantity",
			Message: insufficient.Error(),
			Details: quantityDetails{
				Stage:     string(insufficient.Stage),
				Requested: insufficient.Requested,
				Available: insufficient.Available,
			},
		}})
	case errors.As(err, &invalidTransition), errors.Is(err, model.ErrInvalidTransition):
		writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Error: errorBody{
			Code:    "invalid_transition",
			Message: err.Error(),
		}})
	case errors.Is(err, model.ErrInvalidArgument):
		writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Error: errorBody{
			Code:    "invalid_argument",
			Message: err.Error(),
		}})
	case errors.Is(err, model.ErrBottleNotFound):
		writeJSON(ctx, w, http.StatusNotFound, errorResponse{Error: errorBody{
			Code:    "bottle_not_found",
			Message: "bottle not found",
		}})
	case errors.Is(err, model.ErrLocationNotFound):
		writeJSON(ctx, w, http.StatusNotFound, errorResponse{Error: errorBody{
			Code:    "location_not_found",
			Message: "location not found",
		}})
	case errors.Is(err, model.ErrSerialization):
		writeJSON(ctx, w, http.StatusUnprocessableEntity, errorResponse{Error: errorBody{
			Code:    "serialization",
			Message: "payload could not be serialized",
		}})
	case errors.Is(err, model.ErrPersistenceUnavailable):
		writeJSON(ctx, w, http.StatusServiceUnavailable, errorResponse{Error: errorBody{
			Code:    "persistence_unavailable",
			Message: "storage is temporarily unavailable",
		}})
	default:
		logger.Error(ctx, "unhandled transport error", logger.ErrorF(err))
		writeJSON(ctx, w, http.StatusInternalServerError, errorResponse{Error: errorBody{
			Code:    "internal",
			Message: "internal error",
		}})
	}
}

func writeBadRequest(ctx context.Context, w http.ResponseWriter, msg string) {
	writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Error: errorBody{
		Code:    "invalid_argument",
		Message: msg,
	}})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error(ctx, "encode response", logger.ErrorF(err))
	}
}
