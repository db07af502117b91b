package main

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	leaderboardsvc "github.com/rescuegrid/highscore/src/app/leaderboard"
	"github.com/rescuegrid/highscore/src/domain/leaderboard"
	"github.com/rescuegrid/highscore/src/domain/shared"
)

const (
	maxSubmissionBytes = 1 << 20
	timestampLayout    = "2006-01-02T15:04:05.000000Z07:00"
)

// SaveScoreRequest uses pointers so absent keys stay distinguishable from zero.
type SaveScoreRequest struct {
	Score      *float64 `json:"score"`
	Time       *float64 `json:"time"`
	Difficulty *string  `json:"difficulty"`
	PlayerName *string  `json:"player_name"`
}

// decodeSaveScore reads exactly one JSON value; anything after it is rejected.
func decodeSaveScore(body io.Reader) (SaveScoreRequest, error) {
	var req SaveScoreRequest
	dec := json.NewDecoder(body)
	if err := dec.Decode(&req); err != nil {
		return SaveScoreRequest{}, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return SaveScoreRequest{}, errors.New("unexpected data after JSON body")
	}
	return req, nil
}

type SaveScoreResponse struct {
	Success bool `json:"success"`
}

func (s *Server) handleSaveScore(w http.ResponseWriter, r *http.Request) {
	req, err := decodeSaveScore(http.MaxBytesReader(w, r.Body, maxSubmissionBytes))
	if err != nil {
		s.cfg.Logger.Debug("rejected score payload", zap.Error(err))
		s.writeError(w, http.StatusBadRequest, shared.ErrInvalidPayload)
		return
	}
	_, err = s.cfg.LeaderboardService.Submit(r.Context(), leaderboardsvc.SubmitCommand{
		Score:      req.Score,
		Time:       req.Time,
		Difficulty: req.Difficulty,
		PlayerName: req.PlayerName,
	})
	if errors.Is(err, shared.ErrMissingData) {
		s.writeError(w, http.StatusBadRequest, shared.ErrMissingData)
		return
	}
	if err != nil {
		s.cfg.Logger.Error("save score failed", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, SaveScoreResponse{Success: true})
}

type ScoreResponse struct {
	Score      float64 `json:"score"`
	Time       float64 `json:"time"`
	Difficulty string  `json:"difficulty"`
	Timestamp  string  `json:"timestamp"`
	PlayerName string  `json:"player_name"`
}

func newScoreResponse(rec leaderboard.ScoreRecord) ScoreResponse {
	return ScoreResponse{
		Score:      rec.Score,
		Time:       rec.Time,
		Difficulty: string(rec.Difficulty),
		Timestamp:  rec.Timestamp.Format(timestampLayout),
		PlayerName: rec.PlayerName,
	}
}

func (s *Server) handleGetScores(w http.ResponseWriter, r *http.Request) {
	difficulty := shared.AllDifficulties
	if params := r.URL.Query(); params.Has("difficulty") {
		difficulty = shared.Difficulty(params.Get("difficulty"))
	}
	records, err := s.cfg.LeaderboardService.Scores(r.Context(), leaderboardsvc.ScoresQuery{
		Difficulty: difficulty,
	})
	if err != nil {
		s.cfg.Logger.Error("get scores failed", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	out := make([]ScoreResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, newScoreResponse(rec))
	}
	s.writeJSON(w, http.StatusOK, out)
}

type HealthResponse struct {
	Status  string `json:"status"`
	Records int    `json:"records"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.draining.Load() {
		s.writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "draining"})
		return
	}
	n, err := s.cfg.LeaderboardService.Count(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Records: n})
}
