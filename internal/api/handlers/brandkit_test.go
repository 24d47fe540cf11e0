package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/brandkitai/brandkit/internal/api/middleware"
	"github.com/brandkitai/brandkit/internal/auth"
	"github.com/brandkitai/brandkit/internal/pkg/logger"
	"github.com/brandkitai/brandkit/internal/pkg/validator"
	"github.com/brandkitai/brandkit/internal/services"
	"github.com/brandkitai/brandkit/internal/testutil"
)

func newBrandKitHandler(t *testing.T) (*BrandKitHandler, *testutil.FakeGenerator, auth.Identity) {
	t.Helper()

	users := testutil.NewMockUserRepository()
	kits := testutil.NewMockBrandKitRepository(users)
	gen := &testutil.FakeGenerator{}
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	val := validator.New()

	userSvc := services.NewUserService(users, log)
	kitSvc := services.NewBrandKitService(kits, users, gen, log, 0)

	identity := auth.Identity{Subject: "idp_owner", Email: "owner@example.com", Name: "Owner"}
	if _, err := userSvc.SyncIdentity(context.Background(), identity); err != nil {
		t.Fatalf("SyncIdentity() error = %v", err)
	}

	return NewBrandKitHandler(kitSvc, log, val), gen, identity
}

func authedRequest(method, target string, body []byte, identity auth.Identity) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	return req.WithContext(context.WithValue(req.Context(), middleware.IdentityKey, identity))
}

func withKitID(req *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestBrandKitHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{
			name:           "valid request",
			body:           `{"businessName":"Paw Palace","industry":"dog grooming","vibe":["playful"]}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing vibe",
			body:           `{"businessName":"Paw Palace"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "business name too short",
			body:           `{"businessName":"P","vibe":["playful"]}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed json",
			body:           `{"businessName":`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _, identity := newBrandKitHandler(t)

			req := authedRequest(http.MethodPost, "/api/v1/brand-kits", []byte(tt.body), identity)
			rr := httptest.NewRecorder()

			handler.Create(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d; body: %s", rr.Code, tt.expectedStatus, rr.Body.String())
			}
		})
	}
}

func TestBrandKitHandler_Create_QuotaExceeded(t *testing.T) {
	handler, _, identity := newBrandKitHandler(t)
	body := []byte(`{"businessName":"Paw Palace","vibe":["playful"]}`)

	rr := httptest.NewRecorder()
	handler.Create(rr, authedRequest(http.MethodPost, "/api/v1/brand-kits", body, identity))
	if rr.Code != http.StatusCreated {
		t.Fatalf("first create status = %d; body: %s", rr.Code, rr.Body.String())
	}

	rr = httptest.NewRecorder()
	handler.Create(rr, authedRequest(http.MethodPost, "/api/v1/brand-kits", body, identity))
	if rr.Code != http.StatusPaymentRequired {
		t.Errorf("second create status = %d, want %d", rr.Code, http.StatusPaymentRequired)
	}

	var resp struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Success || resp.Error.Code != "QUOTA_EXCEEDED" {
		t.Errorf("unexpected error envelope: %+v", resp)
	}
}

func TestBrandKitHandler_Get(t *testing.T) {
	handler, _, identity := newBrandKitHandler(t)

	rr := httptest.NewRecorder()
	handler.Create(rr, authedRequest(http.MethodPost, "/api/v1/brand-kits",
		[]byte(`{"businessName":"Paw Palace","vibe":["playful"]}`), identity))
	if rr.Code != http.StatusCreated {
		t.Fatalf("create status = %d", rr.Code)
	}

	tests := []struct {
		name           string
		kitID          string
		identity       auth.Identity
		expectedStatus int
	}{
		{
			name:           "owner reads kit",
			kitID:          "1",
			identity:       identity,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing kit",
			kitID:          "999",
			identity:       identity,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid id",
			kitID:          "abc",
			identity:       identity,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unsynced caller",
			kitID:          "1",
			identity:       auth.Identity{Subject: "idp_stranger"},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := authedRequest(http.MethodGet, "/api/v1/brand-kits/"+tt.kitID, nil, tt.identity)
			req = withKitID(req, tt.kitID)
			rr := httptest.NewRecorder()

			handler.Get(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d; body: %s", rr.Code, tt.expectedStatus, rr.Body.String())
			}
		})
	}
}

func TestBrandKitHandler_Generate(t *testing.T) {
	handler, gen, identity := newBrandKitHandler(t)

	rr := httptest.NewRecorder()
	handler.Create(rr, authedRequest(http.MethodPost, "/api/v1/brand-kits",
		[]byte(`{"businessName":"Paw Palace","vibe":["playful"]}`), identity))
	if rr.Code != http.StatusCreated {
		t.Fatalf("create status = %d", rr.Code)
	}

	gen.Chunks = []string{"Pawsome ", "grooming, ", "delivered."}

	req := authedRequest(http.MethodPost, "/api/v1/brand-kits/1/generate",
		[]byte(`{"field":"tagline"}`), identity)
	req = withKitID(req, "1")
	rr = httptest.NewRecorder()

	handler.Generate(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d; body: %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Field string `json:"field"`
			Text  string `json:"text"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.Text != "Pawsome grooming, delivered." {
		t.Errorf("text = %q", resp.Data.Text)
	}

	// Unknown field rejected by validation
	req = authedRequest(http.MethodPost, "/api/v1/brand-kits/1/generate",
		[]byte(`{"field":"logoConcept"}`), identity)
	req = withKitID(req, "1")
	rr = httptest.NewRecorder()

	handler.Generate(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("unknown field status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}
