package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"hanziclash/internal/game"
	"hanziclash/internal/service"
)

const (
	wsWriteTimeout = 10 * time.Second

	// wsPingInterval keeps idle duel sockets alive through proxies.
	wsPingInterval = 30 * time.Second
	wsPongTimeout  = wsPingInterval + wsWriteTimeout
)

// VersusHandler exposes the duel API. Answers go over plain POSTs; the
// websocket stream only pushes state so the client sees the opponent
// move and the clock expire without polling.
type VersusHandler struct {
	versus   *service.VersusService
	upgrader websocket.Upgrader
}

// NewVersusHandler creates a new versus handler.
func NewVersusHandler(versus *service.VersusService) *VersusHandler {
	return &VersusHandler{
		versus: versus,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

type startVersusRequest struct {
	Mode string `json:"mode"`
	// Opponent is "computer" (the default) or "human" for a second kid
	// on the same screen.
	Opponent string `json:"opponent"`
}

type versusAnswerRequest struct {
	Round  uint64 `json:"round"`
	WordID int    `json:"word_id"`
	// Side is "p1" (the default) or "p2"; "p2" is only playable in a
	// two-player duel.
	Side string `json:"side"`
}

// VersusAnswerView reports how a duel answer landed.
type VersusAnswerView struct {
	Correct  bool       `json:"correct"`
	Scored   bool       `json:"scored"`
	Advanced bool       `json:"advanced"`
	Versus   VersusView `json:"versus"`
}

// Start opens a duel against the computer or a second local player.
func (h *VersusHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startVersusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var mode game.VersusMode
	switch req.Mode {
	case "timed":
		mode = game.ModeTimed
	case "race":
		mode = game.ModeRace
	default:
		respondError(w, http.StatusBadRequest, "mode must be timed or race", "", nil)
		return
	}

	var vsComputer bool
	switch req.Opponent {
	case "", "computer":
		vsComputer = true
	case "human":
		vsComputer = false
	default:
		respondError(w, http.StatusBadRequest, "opponent must be computer or human", "", nil)
		return
	}

	snap, err := h.versus.StartVersus(PlayerIDFromContext(r.Context()), mode, vsComputer)
	if err != nil {
		respondServiceError(w, err, "failed to start versus")
		return
	}
	respondJSON(w, http.StatusCreated, versusView(snap))
}

// Answer submits a side's pick for the round they were shown.
func (h *VersusHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req versusAnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var side game.Side
	switch req.Side {
	case "", "p1":
		side = game.SideOne
	case "p2":
		side = game.SideTwo
	default:
		respondError(w, http.StatusBadRequest, "side must be p1 or p2", "", nil)
		return
	}

	res, snap, err := h.versus.SubmitAnswer(r.PathValue("session"), PlayerIDFromContext(r.Context()), side, req.Round, req.WordID)
	if err != nil {
		respondServiceError(w, err, "failed to submit versus answer")
		return
	}
	respondJSON(w, http.StatusOK, VersusAnswerView{
		Correct:  res.Correct,
		Scored:   res.Scored,
		Advanced: res.Advanced,
		Versus:   versusView(snap),
	})
}

// Pause freezes the duel.
func (h *VersusHandler) Pause(w http.ResponseWriter, r *http.Request) {
	snap, err := h.versus.Pause(r.PathValue("session"), PlayerIDFromContext(r.Context()))
	if err != nil {
		respondServiceError(w, err, "failed to pause versus")
		return
	}
	respondJSON(w, http.StatusOK, versusView(snap))
}

// Resume continues a paused duel.
func (h *VersusHandler) Resume(w http.ResponseWriter, r *http.Request) {
	snap, err := h.versus.Resume(r.PathValue("session"), PlayerIDFromContext(r.Context()))
	if err != nil {
		respondServiceError(w, err, "failed to resume versus")
		return
	}
	respondJSON(w, http.StatusOK, versusView(snap))
}

// Cancel abandons a duel without recording a result.
func (h *VersusHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if err := h.versus.Cancel(r.PathValue("session"), PlayerIDFromContext(r.Context())); err != nil {
		respondServiceError(w, err, "failed to cancel versus")
		return
	}
	respondJSON(w, http.StatusOK, nil)
}

// Stream upgrades to a websocket and pushes duel snapshots until the
// duel ends or the client goes away.
func (h *VersusHandler) Stream(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("session")
	playerID := PlayerIDFromContext(r.Context())

	updates, cancel, err := h.versus.Subscribe(sessionID, playerID)
	if err != nil {
		respondServiceError(w, err, "failed to subscribe to versus")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		cancel()
		log.Warn().Err(err).Str("session", sessionID).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()
	defer cancel()

	// Reader goroutine: the client sends nothing meaningful, but reading
	// is what notices a closed connection and feeds pong handling.
	done := make(chan struct{})
	go func() {
		defer close(done)
		conn.SetReadLimit(512)
		conn.SetReadDeadline(time.Now().Add(wsPongTimeout))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(wsPongTimeout))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(wsPingInterval)
	defer ping.Stop()

	for {
		select {
		case snap, ok := <-updates:
			if !ok {
				conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
				conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "duel finished"))
				return
			}
			conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := conn.WriteJSON(versusView(snap)); err != nil {
				return
			}
		case <-ping.C:
			conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
