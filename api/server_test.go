package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"port-proforma/core/exchange"
	"port-proforma/core/rates"
	"port-proforma/core/tariff"
)

func testServer() *Server {
	handler := NewHandler(rates.Default(), exchange.Rates{USDToEUR: 1.1801, USDToTRY: 34.50})
	return NewServer("test", handler)
}

func postProforma(t *testing.T, s *Server, req EstimateRequest) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(req)
	if err != nil {
		t.Fatal(err)
	}
	w := httptest.NewRecorder()
	s.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/proforma", bytes.NewReader(body)))
	return w
}

func TestProformaEndpoint(t *testing.T) {
	s := testServer()

	w := postProforma(t, s, EstimateRequest{Vessel: validInput()})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", w.Code, w.Body.String())
	}

	var resp EstimateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.RequestID == "" {
		t.Error("no request id")
	}
	if len(resp.Proforma.Lines) == 0 {
		t.Fatal("empty proforma")
	}
	if resp.Proforma.TotalUSD <= 0 {
		t.Errorf("TotalUSD = %v", resp.Proforma.TotalUSD)
	}
	if resp.WasteExcessEUR != nil {
		t.Error("waste excess present without waste volumes")
	}
}

func TestProformaEndpointUsesDefaultRatesWhenAbsent(t *testing.T) {
	s := testServer()

	// No rates in the request: defaults apply, so no warning and nonzero
	// converted columns
	w := postProforma(t, s, EstimateRequest{Vessel: validInput()})
	var resp EstimateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Proforma.Warnings) != 0 {
		t.Errorf("warnings with default rates: %v", resp.Proforma.Warnings)
	}
	if resp.Proforma.TotalEUR <= 0 {
		t.Errorf("TotalEUR = %v, want conversions through the defaults", resp.Proforma.TotalEUR)
	}
}

func TestProformaEndpointWasteExcess(t *testing.T) {
	s := testServer()

	w := postProforma(t, s, EstimateRequest{
		Vessel: validInput(),
		Waste:  &tariff.WasteVolumes{Marpol1Bilge: 5},
	})
	var resp EstimateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.WasteExcessEUR == nil {
		t.Fatal("no waste excess in response")
	}
	// GRT 5197 falls in the 10000 bracket: 4 m3 bilge included, 1 excess at 3.5
	if *resp.WasteExcessEUR != 3.50 {
		t.Errorf("waste excess = %v, want 3.50", *resp.WasteExcessEUR)
	}
}

func TestProformaEndpointRejectsUnknownPort(t *testing.T) {
	s := testServer()

	in := validInput()
	in.Port = "ROTTERDAM"
	w := postProforma(t, s, EstimateRequest{Vessel: in})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Code != "VALIDATION_ERROR" {
		t.Errorf("code = %q, want VALIDATION_ERROR", resp.Code)
	}
}

func TestProformaEndpointRejectsBadJSON(t *testing.T) {
	s := testServer()

	w := httptest.NewRecorder()
	s.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/proforma", bytes.NewReader([]byte("{not json"))))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Code != "INVALID_JSON" {
		t.Errorf("code = %q, want INVALID_JSON", resp.Code)
	}
}

func TestMetaEndpoints(t *testing.T) {
	s := testServer()

	for _, tc := range []struct {
		path string
		key  string
		want string
	}{
		{"/health", "status", "ok"},
		{"/version", "version", "test"},
		{"/ratecard", "version", rates.Default().Version},
	} {
		w := httptest.NewRecorder()
		s.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("GET %s status = %d", tc.path, w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatal(err)
		}
		if body[tc.key] != tc.want {
			t.Errorf("GET %s %s = %q, want %q", tc.path, tc.key, body[tc.key], tc.want)
		}
	}
}
