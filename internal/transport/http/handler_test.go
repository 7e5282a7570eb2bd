package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/alcotheque/cellar/internal/model"
	bottlesvc "github.com/alcotheque/cellar/internal/service/bottle"
	"github.com/alcotheque/cellar/internal/transport/http/mocks"
)

type deps struct {
	bottles   *mocks.MockBottleService
	locations *mocks.MockLocationService
}

func newDeps(t *testing.T) deps {
	return deps{
		bottles:   mocks.NewMockBottleService(t),
		locations: mocks.NewMockLocationService(t),
	}
}

func serve(d deps, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewRouter(NewHandler(d.bottles, d.locations)).ServeHTTP(rec, req)
	return rec
}

func sampleBottle(id string) *model.Bottle {
	now := time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC)
	status := model.StageInStock
	return &model.Bottle{
		ID:              id,
		OwnerID:         "owner-1",
		Name:            "Ardbeg 10",
		Type:            model.SpiritWhisky,
		Origin:          model.OriginPurchase,
		AcquisitionDate: now,
		Quantities:      model.Quantities{InStock: 3},
		Status:          status,
		History: []model.StatusHistoryEntry{{
			ID:        gofakeit.UUID(),
			Timestamp: now,
			NewStatus: status,
			Quantity:  3,
		}},
		CreatedAt: &now,
		UpdatedAt: &now,
	}
}

func TestOwnerHeaderRequired(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bottles", nil)
	rec := serve(newDeps(t), req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "X-Owner-ID")
}

func TestListBottlesParsesFilter(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	d.bottles.
		On("ListBottles", mock.Anything, "owner-1", model.BottleFilter{
			Statuses:      []model.Status{model.StageOpened, model.StageConsumed},
			Types:         []model.SpiritType{model.SpiritWhisky},
			FavoritesOnly: true,
			NameQuery:     "ardbeg",
		}).
		Return([]*model.Bottle{sampleBottle("b-1")}, nil).
		Once()

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/bottles?status=opened,consumed&type=whisky&favorites=true&q=ardbeg", nil)
	req.Header.Set("X-Owner-ID", "owner-1")

	rec := serve(d, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var out []bottleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "b-1", out[0].ID)
	assert.Equal(t, "in_stock", out[0].Status)
	assert.EqualValues(t, 3, out[0].Quantities.InStock)
}

func TestCreateBottle(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	d.bottles.
		On("Create", mock.Anything, mock.MatchedBy(func(in bottlesvc.NewBottle) bool {
			return in.OwnerID == "owner-1" &&
				in.Name == "Ardbeg 10" &&
				in.Type == model.SpiritWhisky &&
				in.Quantity == 3 &&
				in.Rating != nil && *in.Rating == 4 &&
				in.Origin == model.OriginPurchase
		})).
		Return(sampleBottle("b-new"), nil).
		Once()

	body := `{"name":"Ardbeg 10","type":"whisky","quantity":3,"rating":4}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bottles", strings.NewReader(body))
	req.Header.Set("X-Owner-ID", "owner-1")

	rec := serve(d, req)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateBottleWithSuggestion(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	d.bottles.
		On("Create", mock.Anything, mock.MatchedBy(func(in bottlesvc.NewBottle) bool {
			// Pre-fill covers the empty fields, the explicit quantity stays.
			return in.Name == "Talisker 10" &&
				in.Type == model.SpiritWhisky &&
				in.Year != nil && *in.Year == 2015 &&
				in.Quantity == 2
		})).
		Return(sampleBottle("b-new"), nil).
		Once()

	body := `{"quantity":2,"suggestion":{"name":" Talisker 10 ","type":"whisky","year":2015}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bottles", strings.NewReader(body))
	req.Header.Set("X-Owner-ID", "owner-1")

	rec := serve(d, req)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateBottleRejectsBadSuggestion(t *testing.T) {
	t.Parallel()

	body := `{"suggestion":{"name":"Mystery","type":"moonshine"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bottles", strings.NewReader(body))
	req.Header.Set("X-Owner-ID", "owner-1")

	rec := serve(newDeps(t), req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_argument")
}

func TestCreateBottleMalformedBody(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bottles", strings.NewReader("{"))
	req.Header.Set("X-Owner-ID", "owner-1")

	rec := serve(newDeps(t), req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTransitionErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name: "insufficient quantity carries amounts",
			err: &model.InsufficientQuantityError{
				Stage:     model.StageInStock,
				Requested: 5,
				Available: 2,
			},
			wantCode: http.StatusBadRequest,
			wantBody: `"requested":5`,
		},
		{
			name: "invalid transition",
			err: &model.InvalidTransitionError{
				To:     model.StageOpened,
				Reason: "no source stage",
			},
			wantCode: http.StatusBadRequest,
			wantBody: "invalid_transition",
		},
		{
			name:     "not found",
			err:      model.ErrBottleNotFound,
			wantCode: http.StatusNotFound,
			wantBody: "bottle_not_found",
		},
		{
			name:     "storage down",
			err:      model.ErrPersistenceUnavailable,
			wantCode: http.StatusServiceUnavailable,
			wantBody: "persistence_unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newDeps(t)
			d.bottles.
				On("Transition", mock.Anything, "b-1", mock.Anything).
				Return((*model.Bottle)(nil), tt.err).
				Once()

			body := `{"to":"opened","quantity":5}`
			req := httptest.NewRequest(http.MethodPost,
				"/api/v1/bottles/b-1/transitions", strings.NewReader(body))
			req.Header.Set("X-Owner-ID", "owner-1")

			rec := serve(d, req)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestTransitionPassesOptionalSource(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	d.bottles.
		On("Transition", mock.Anything, "b-1",
			mock.MatchedBy(func(in bottlesvc.TransitionInput) bool {
				return in.To == model.StageConsumed &&
					in.From != nil && *in.From == model.StageOpened &&
					in.Quantity == 1
			})).
		Return(sampleBottle("b-1"), nil).
		Once()

	body := `{"to":"consumed","from":"opened","quantity":1}`
	req := httptest.NewRequest(http.MethodPost,
		"/api/v1/bottles/b-1/transitions", strings.NewReader(body))
	req.Header.Set("X-Owner-ID", "owner-1")

	rec := serve(d, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestToggleFavorite(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	d.bottles.On("ToggleFavorite", mock.Anything, "b-1").Return(true, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bottles/b-1/favorite", nil)
	req.Header.Set("X-Owner-ID", "owner-1")

	rec := serve(d, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"favorite":true}`, rec.Body.String())
}

func TestDeleteBottle(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	d.bottles.On("Delete", mock.Anything, "b-1").Return(nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/bottles/b-1", nil)
	req.Header.Set("X-Owner-ID", "owner-1")

	rec := serve(d, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestStats(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	d.bottles.
		On("ListBottles", mock.Anything, "owner-1", model.BottleFilter{}).
		Return([]*model.Bottle{sampleBottle("b-1")}, nil).
		Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
	req.Header.Set("X-Owner-ID", "owner-1")

	rec := serve(d, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var out statsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 1, out.Bottles)
	assert.EqualValues(t, 3, out.UnitsByStage["in_stock"])
	assert.EqualValues(t, 3, out.TotalUnits)
}

func TestExport(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	d.bottles.
		On("ListBottles", mock.Anything, "owner-1", model.BottleFilter{}).
		Return([]*model.Bottle{sampleBottle("b-1")}, nil).
		Once()
	d.locations.
		On("List", mock.Anything, "owner-1").
		Return([]*model.Location{{ID: "loc-1", Name: "Cellar"}}, nil).
		Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/export", nil)
	req.Header.Set("X-Owner-ID", "owner-1")

	rec := serve(d, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".xlsx")
	assert.NotZero(t, rec.Body.Len())
}

func TestLocations(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	created := &model.Location{
		ID:        gofakeit.UUID(),
		OwnerID:   "owner-1",
		Name:      "Cellar",
		CreatedAt: lo.ToPtr(time.Now().UTC()),
	}
	d.locations.On("Create", mock.Anything, "owner-1", "Cellar").Return(created, nil).Once()
	d.locations.On("Delete", mock.Anything, created.ID).Return(nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/locations",
		strings.NewReader(`{"name":"Cellar"}`))
	req.Header.Set("X-Owner-ID", "owner-1")
	rec := serve(d, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/locations/"+created.ID, nil)
	req.Header.Set("X-Owner-ID", "owner-1")
	rec = serve(d, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHealthSkipsOwnerHeader(t *testing.T) {
	t.Parallel()

	rec := serve(newDeps(t), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
