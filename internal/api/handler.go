package api

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stellara-labs/eventstream/internal/config"
	"github.com/stellara-labs/eventstream/internal/emitter"
	"github.com/stellara-labs/eventstream/internal/event"
	"github.com/stellara-labs/eventstream/internal/host"
	"github.com/stellara-labs/eventstream/internal/metrics"
	"github.com/stellara-labs/eventstream/internal/topic"
)

// Handler holds all HTTP handler dependencies.
type Handler struct {
	ledger *host.Ledger
	loader *config.Loader
	mux    *http.ServeMux
}

// New creates an HTTP handler and registers all routes.
func New(ledger *host.Ledger, loader *config.Loader) http.Handler {
	h := &Handler{ledger: ledger, loader: loader, mux: http.NewServeMux()}

	h.mux.HandleFunc("POST /v1/emit/{action}", h.emit)
	h.mux.HandleFunc("GET /v1/events", h.listEvents)
	h.mux.HandleFunc("GET /v1/schema", h.schema)
	h.mux.HandleFunc("GET /v1/contracts", h.listContracts)
	h.mux.HandleFunc("POST /v1/config/reload", h.reloadConfig)
	h.mux.HandleFunc("GET /healthz", h.healthz)
	h.mux.Handle("GET /metrics", promhttp.Handler())

	return loggingMiddleware(h.mux)
}

// POST /v1/emit/{action} — synchronous emission on behalf of a domain
// service. ?contract= selects the emitting identity from the config table;
// the gateway, never the caller, supplies the contract address.
func (h *Handler) emit(w http.ResponseWriter, r *http.Request) {
	action := r.PathValue("action")
	cfg := h.loader.Config()

	name := r.URL.Query().Get("contract")
	if name == "" {
		name = cfg.Gateway.DefaultContract
	}
	addr, ok := cfg.Contracts[name]
	if !ok {
		metrics.EmitRejected.WithLabelValues("unknown_contract").Inc()
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown contract %q", name))
		return
	}

	em := emitter.New(h.ledger.Bind(event.Address(addr)))
	before := uint64(h.ledger.Len())

	start := time.Now()
	if err := dispatch(em, action, r); err != nil {
		if err == errUnknownAction {
			metrics.EmitRejected.WithLabelValues("unknown_action").Inc()
			writeError(w, http.StatusNotFound, fmt.Sprintf("unknown action %q", action))
			return
		}
		metrics.EmitRejected.WithLabelValues("bad_request").Inc()
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	metrics.EmitDuration.Observe(float64(time.Since(start).Microseconds()) / 1000.0)

	appended := h.ledger.Since(before)
	seqs := make([]uint64, 0, len(appended))
	for _, rec := range appended {
		seqs = append(seqs, rec.Seq)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"request_id":       uuid.New().String(),
		"contract":         addr,
		"events_published": len(appended),
		"seqs":             seqs,
	})
}

// GET /v1/events — query the in-memory ledger. ?topic= filters by action
// tag (matching both standardized and legacy keys), ?since= skips past a
// sequence number, ?limit= caps the page (bounded by config).
func (h *Handler) listEvents(w http.ResponseWriter, r *http.Request) {
	cfg := h.loader.Config()
	q := r.URL.Query()

	var since uint64
	if s := q.Get("since"); s != "" {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid since %q", s))
			return
		}
		since = v
	}
	limit := cfg.Gateway.MaxQueryLimit
	if s := q.Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v <= 0 {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid limit %q", s))
			return
		}
		if v < limit {
			limit = v
		}
	}

	records := h.ledger.Since(since)
	if tag := q.Get("topic"); tag != "" {
		filtered := records[:0:0]
		for _, rec := range records {
			if matchesTopic(rec, tag) {
				filtered = append(filtered, rec)
			}
		}
		records = filtered
	}
	if len(records) > limit {
		records = records[:limit]
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"total":  h.ledger.Len(),
		"count":  len(records),
		"events": records,
	})
}

// matchesTopic reports whether a record carries the given action tag.
// Standardized keys are (namespace, tag, …); legacy keys start with the tag.
func matchesTopic(rec host.Record, tag string) bool {
	if len(rec.Topics) == 0 {
		return false
	}
	if rec.Topics[0] == tag {
		return true
	}
	return rec.Topics[0] == topic.Namespace && len(rec.Topics) > 1 && rec.Topics[1] == tag
}

// GET /v1/schema — current schema version; ?version= additionally runs the
// compatibility predicate for a consumer-supplied version.
func (h *Handler) schema(w http.ResponseWriter, r *http.Request) {
	resp := map[string]interface{}{"version": event.CurrentVersion}
	if s := r.URL.Query().Get("version"); s != "" {
		v, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid version %q", s))
			return
		}
		resp["queried"] = uint32(v)
		resp["compatible"] = event.IsCompatible(uint32(v))
	}
	writeJSON(w, http.StatusOK, resp)
}

// GET /v1/contracts — list the configured emitting identities.
func (h *Handler) listContracts(w http.ResponseWriter, r *http.Request) {
	cfg := h.loader.Config()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"default":   cfg.Gateway.DefaultContract,
		"contracts": cfg.Contracts,
	})
}

// POST /v1/config/reload — re-read the identity table from disk.
func (h *Handler) reloadConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.loader.Reload()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := config.Validate(cfg); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"reloaded":  true,
		"contracts": len(cfg.Contracts),
	})
}

// GET /healthz — always 200 (liveness probe).
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// requireAddrs returns an error naming the first empty address field.
func requireAddrs(fields map[string]string) error {
	var missing []string
	for name, v := range fields {
		if v == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		// Map iteration order is random; sort for stable messages.
		sort.Strings(missing)
		return fmt.Errorf("missing required address field(s): %s", strings.Join(missing, ", "))
	}
	return nil
}
