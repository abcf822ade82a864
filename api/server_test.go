package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"wireless-quote/catalog"
	"wireless-quote/core/engine"
	"wireless-quote/core/types"
)

func newTestServer() *Server {
	return NewServer(engine.New(catalog.Default(), nil), "test", nil)
}

func postJSON(t *testing.T, srv *Server, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	return env
}

func testQuote() types.QuoteConfig {
	cfg := types.NewQuoteConfig()
	cfg.Plan = "essentials"
	cfg.Lines = 2
	cfg.TaxRate = 8.0
	return cfg
}

func TestHealth(t *testing.T) {
	srv := newTestServer()
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var env struct {
		Data HealthResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatal(err)
	}
	if env.Data.Status != "ok" || env.Data.Version != "test" {
		t.Errorf("health = %+v", env.Data)
	}
}

func TestCalculate(t *testing.T) {
	srv := newTestServer()
	rec := postJSON(t, srv, "/calculate", testQuote())

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var env struct {
		Data types.CalculatedTotals `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatal(err)
	}
	if env.Data.BasePlanPrice.IsZero() {
		t.Error("expected a non-zero base plan price for a two-line essentials quote")
	}
}

func TestCalculateRejectsMalformedJSON(t *testing.T) {
	srv := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/calculate", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Error == nil || env.Error.Code != "INVALID_JSON" {
		t.Errorf("error = %+v", env.Error)
	}
}

func TestApplyUnknownPromotion(t *testing.T) {
	srv := newTestServer()
	rec := postJSON(t, srv, "/promotions/apply", ApplyRequest{
		Config:      testQuote(),
		PromotionID: "no_such_promo",
	})

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Error == nil || env.Error.Code != "NOT_FOUND" {
		t.Errorf("error = %+v", env.Error)
	}
}

func TestApply(t *testing.T) {
	srv := newTestServer()
	rec := postJSON(t, srv, "/promotions/apply", ApplyRequest{
		Config:      testQuote(),
		PromotionID: "military_plan",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var env struct {
		Data types.QuoteConfig `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatal(err)
	}
	if env.Data.CustomerType != types.CustomerMilitary {
		t.Errorf("customer type = %s, want MILITARY", env.Data.CustomerType)
	}
}

func TestQuoteVersionRoundTrip(t *testing.T) {
	srv := newTestServer()

	rec := postJSON(t, srv, "/quote-versions", testQuote())
	if rec.Code != http.StatusCreated {
		t.Fatalf("snapshot status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var created struct {
		Data engine.QuoteVersion `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}
	if created.Data.ID == "" {
		t.Fatal("snapshot has no id")
	}

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/quote-versions/"+created.Data.ID, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	var fetched struct {
		Data engine.QuoteVersion `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &fetched); err != nil {
		t.Fatal(err)
	}
	if fetched.Data.ID != created.Data.ID || fetched.Data.Config.Plan != "essentials" {
		t.Errorf("fetched = %+v", fetched.Data)
	}

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/quote-versions", nil))
	var listed struct {
		Data []engine.QuoteVersion `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatal(err)
	}
	if len(listed.Data) != 1 {
		t.Errorf("listed %d versions, want 1", len(listed.Data))
	}
}

func TestGetUnknownVersion(t *testing.T) {
	srv := newTestServer()
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/quote-versions/missing", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
