// Package http exposes a Session over a small chi-routed REST surface:
// GET /state, GET /events, GET /healthz, and POST /commands. Handlers stay
// thin; every mutation goes through Session.Apply.
package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"guildhall/adapter/session"
	"guildhall/core/codec"
	"guildhall/core/command"
	"guildhall/core/types"
)

// Config wires a Session into the router, along with the per-group rate
// limits applied to the command endpoint. OnEvents, when set, observes the
// events each accepted command produced after they have been applied; the
// daemon uses it to feed the persistence journal.
type Config struct {
	Session     *session.Session
	RateLimiter *RateLimiter
	CommandRate RateLimit
	OnEvents    func([]types.EventRecord)
}

// NewRouter builds the chi router for Config.
func NewRouter(cfg Config) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", handleHealthz)
	r.Get("/state", handleState(cfg.Session))
	r.Get("/events", handleEvents(cfg.Session))

	r.Group(func(gr chi.Router) {
		if cfg.RateLimiter != nil {
			gr.Use(cfg.RateLimiter.Middleware("commands", cfg.CommandRate))
		}
		gr.Post("/commands", handleCommand(cfg))
	})

	return r
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleState(s *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := codec.EncodeState(s.State())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}
}

func handleEvents(s *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		since := uint64(0)
		if raw := r.URL.Query().Get("since"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				http.Error(w, "invalid since", http.StatusBadRequest)
				return
			}
			since = parsed
		}
		body, err := codec.EncodeEvents(s.EventsSince(since))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}
}

// commandRequest is the wire shape POST /commands accepts: a string kind
// name plus whichever fields that kind reads from command.Command.
type commandRequest struct {
	Kind           string `json:"kind"`
	CmdID          uint64 `json:"cmd_id"`
	InboxID        int64  `json:"inbox_id"`
	Fee            int64  `json:"fee"`
	HasFee         bool   `json:"has_fee"`
	Salvage        int    `json:"salvage"`
	HasSalvage     bool   `json:"has_salvage"`
	ActiveID       int64  `json:"active_id"`
	Amount         int64  `json:"amount"`
	ProofPolicy    int    `json:"proof_policy"`
	Title          string `json:"title"`
	Rank           int    `json:"rank"`
	BaseDifficulty int    `json:"base_difficulty"`
	ContractID     int64  `json:"contract_id"`
}

func handleCommand(cfg Config) http.HandlerFunc {
	s := cfg.Session
	return func(w http.ResponseWriter, r *http.Request) {
		var req commandRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "malformed command body", http.StatusBadRequest)
			return
		}
		kind, ok := command.ParseKind(req.Kind)
		if !ok {
			http.Error(w, "unknown command kind: "+req.Kind, http.StatusBadRequest)
			return
		}
		cmd := command.Command{
			Kind:           kind,
			CmdID:          req.CmdID,
			InboxID:        intoContractDraftID(req.InboxID),
			Fee:            req.Fee,
			HasFee:         req.HasFee,
			Salvage:        intoSalvagePolicy(req.Salvage),
			HasSalvage:     req.HasSalvage,
			ActiveID:       intoActiveContractID(req.ActiveID),
			Amount:         req.Amount,
			ProofPolicy:    intoProofPolicy(req.ProofPolicy),
			Title:          req.Title,
			Rank:           intoRank(req.Rank),
			BaseDifficulty: req.BaseDifficulty,
			ContractID:     req.ContractID,
		}

		requestID, events := s.Apply(cmd)
		if cfg.OnEvents != nil {
			cfg.OnEvents(events)
		}
		eventBody, err := jsonMarshalEvents(events)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(struct {
			RequestID string          `json:"request_id"`
			Events    json.RawMessage `json:"events"`
		}{RequestID: requestID, Events: eventBody})
	}
}
