package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stellara-labs/eventstream/internal/config"
	"github.com/stellara-labs/eventstream/internal/host"
)

const testConfig = `
version: "1"
gateway:
  default_contract: token
contracts:
  token: CTOKEN
  staking: CSTAKING
`

func newTestHandler(t *testing.T) (http.Handler, *host.Ledger) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "eventgw.yaml")
	if err := os.WriteFile(path, []byte(testConfig), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	loader, err := config.NewLoader(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	ledger := host.NewLedgerWithClock(func() uint64 { return 42 })
	return New(ledger, loader), ledger
}

func doJSON(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	var resp map[string]interface{}
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("response not JSON: %v (%s)", err, w.Body.String())
		}
	}
	return w, resp
}

func TestEmitTransfer(t *testing.T) {
	h, ledger := newTestHandler(t)

	w, resp := doJSON(t, h, http.MethodPost, "/v1/emit/transfer",
		`{"from":"GA","to":"GB","amount":100,"token":"CT"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	if got := resp["events_published"].(float64); got != 2 {
		t.Errorf("events_published = %v, want 2 (standardized + legacy)", got)
	}
	if resp["contract"] != "CTOKEN" {
		t.Errorf("contract = %v, want default identity CTOKEN", resp["contract"])
	}
	if resp["request_id"] == "" {
		t.Error("missing request_id")
	}
	if ledger.Len() != 2 {
		t.Errorf("ledger holds %d records, want 2", ledger.Len())
	}
}

func TestEmitTrade_SingleRecord(t *testing.T) {
	h, ledger := newTestHandler(t)

	w, resp := doJSON(t, h, http.MethodPost, "/v1/emit/trade?contract=trading",
		`{"trader":"GT","pair":"XLM/USDC","amount":1,"price":2,"is_buy":true,"fee_amount":3,"fee_token":"CT"}`)
	// trading is not in the config table.
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown contract: status %d, want 400", w.Code)
	}

	w, resp = doJSON(t, h, http.MethodPost, "/v1/emit/trade?contract=staking",
		`{"trader":"GT","pair":"XLM/USDC","amount":1,"price":2,"is_buy":true,"fee_amount":3,"fee_token":"CT"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	if got := resp["events_published"].(float64); got != 1 {
		t.Errorf("events_published = %v, want 1 (no legacy event for trades)", got)
	}
	if ledger.Len() != 1 {
		t.Errorf("ledger holds %d records, want 1", ledger.Len())
	}
}

func TestEmitUnknownAction(t *testing.T) {
	h, _ := newTestHandler(t)
	w, _ := doJSON(t, h, http.MethodPost, "/v1/emit/reorg", `{}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("status %d, want 404", w.Code)
	}
}

func TestEmitMissingField(t *testing.T) {
	h, ledger := newTestHandler(t)
	w, _ := doJSON(t, h, http.MethodPost, "/v1/emit/transfer", `{"from":"GA","amount":1}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status %d, want 400", w.Code)
	}
	if ledger.Len() != 0 {
		t.Errorf("rejected request must publish nothing, ledger holds %d", ledger.Len())
	}
}

func TestListEvents_TopicFilter(t *testing.T) {
	h, _ := newTestHandler(t)

	doJSON(t, h, http.MethodPost, "/v1/emit/transfer", `{"from":"GA","to":"GB","amount":1,"token":"CT"}`)
	doJSON(t, h, http.MethodPost, "/v1/emit/burn", `{"from":"GA","amount":1,"token":"CT"}`)

	w, resp := doJSON(t, h, http.MethodGet, "/v1/events", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	if got := resp["count"].(float64); got != 4 {
		t.Errorf("count = %v, want 4", got)
	}

	// transfer matches both its standardized and legacy records.
	_, resp = doJSON(t, h, http.MethodGet, "/v1/events?topic=transfer", "")
	if got := resp["count"].(float64); got != 2 {
		t.Errorf("filtered count = %v, want 2", got)
	}

	_, resp = doJSON(t, h, http.MethodGet, "/v1/events?since=3", "")
	if got := resp["count"].(float64); got != 1 {
		t.Errorf("since=3 count = %v, want 1", got)
	}

	_, resp = doJSON(t, h, http.MethodGet, "/v1/events?limit=1", "")
	if got := resp["count"].(float64); got != 1 {
		t.Errorf("limit=1 count = %v, want 1", got)
	}
}

func TestSchemaEndpoint(t *testing.T) {
	h, _ := newTestHandler(t)

	_, resp := doJSON(t, h, http.MethodGet, "/v1/schema", "")
	if got := resp["version"].(float64); got != 1 {
		t.Errorf("version = %v, want 1", got)
	}

	_, resp = doJSON(t, h, http.MethodGet, "/v1/schema?version=1", "")
	if resp["compatible"] != true {
		t.Errorf("version 1 should be compatible, got %v", resp["compatible"])
	}

	_, resp = doJSON(t, h, http.MethodGet, "/v1/schema?version=2", "")
	if resp["compatible"] != false {
		t.Errorf("version 2 should not be compatible, got %v", resp["compatible"])
	}

	w, _ := doJSON(t, h, http.MethodGet, "/v1/schema?version=abc", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid version: status %d, want 400", w.Code)
	}
}

func TestListContracts(t *testing.T) {
	h, _ := newTestHandler(t)
	w, resp := doJSON(t, h, http.MethodGet, "/v1/contracts", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	if resp["default"] != "token" {
		t.Errorf("default = %v, want token", resp["default"])
	}
	contracts := resp["contracts"].(map[string]interface{})
	if len(contracts) != 2 {
		t.Errorf("contracts = %v, want 2 entries", contracts)
	}
}

func TestHealthz(t *testing.T) {
	h, _ := newTestHandler(t)
	w, _ := doJSON(t, h, http.MethodGet, "/healthz", "")
	if w.Code != http.StatusOK {
		t.Errorf("status %d, want 200", w.Code)
	}
}
