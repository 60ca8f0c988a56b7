package service

import (
	"database/sql"
	"errors"
	"sync"
	"testing"

	"hanziclash/internal/content"
	"hanziclash/internal/database"
	"hanziclash/internal/game"
	"hanziclash/internal/models"
	"hanziclash/internal/repository"
)

// recordingDB satisfies database.DBTX for repositories that only insert.
// It captures ExecReturningID calls so tests can check what was stored.
type recordingDB struct {
	mu      sync.Mutex
	inserts [][]interface{}
}

func (d *recordingDB) Exec(query string, args ...interface{}) (sql.Result, error) {
	return nil, errors.New("recordingDB: Exec not supported")
}

func (d *recordingDB) Query(query string, args ...interface{}) (*sql.Rows, error) {
	return nil, errors.New("recordingDB: Query not supported")
}

func (d *recordingDB) QueryRow(query string, args ...interface{}) *sql.Row {
	return nil
}

func (d *recordingDB) ExecReturningID(query string, args ...interface{}) (int64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.inserts = append(d.inserts, args)
	return int64(len(d.inserts)), nil
}

func (d *recordingDB) Begin() (*database.Tx, error) {
	return nil, errors.New("recordingDB: Begin not supported")
}

func (d *recordingDB) GetDialect() database.Dialect {
	return database.NewSQLiteDialect()
}

func newTestVersusService(db *recordingDB) *VersusService {
	pool := content.NewPool()
	return NewVersusService(pool, repository.NewPlayerRepository(db), repository.NewVersusRepository(db))
}

func TestVersusTwoPlayerDuelSharesTheBoard(t *testing.T) {
	s := newTestVersusService(&recordingDB{})

	snap, err := s.start(&models.Player{ID: 7, MaxUnlockedLevel: 5}, game.ModeTimed, false)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	defer s.Cancel(snap.SessionID, 7)

	if snap.Opponent != "human" {
		t.Fatalf("opponent = %q, want human", snap.Opponent)
	}

	s.mu.Lock()
	sess := s.sessions[snap.SessionID]
	s.mu.Unlock()
	if sess.opponent != nil || sess.aiTimer != nil {
		t.Fatal("computer attached to a two-player duel")
	}

	// Side two answers over the same API and scores.
	res, next, err := s.SubmitAnswer(snap.SessionID, 7, game.SideTwo, snap.Round, snap.Question.ID)
	if err != nil {
		t.Fatalf("side two answer: %v", err)
	}
	if !res.Scored {
		t.Fatalf("side two answer: %+v, want scored", res)
	}

	// Side one takes the following round.
	res, next, err = s.SubmitAnswer(next.SessionID, 7, game.SideOne, next.Round, next.Question.ID)
	if err != nil {
		t.Fatalf("side one answer: %v", err)
	}
	if !res.Scored {
		t.Fatalf("side one answer: %+v, want scored", res)
	}
	if next.ScoreOne != 1 || next.ScoreTwo != 1 {
		t.Errorf("scores = %d/%d, want 1/1", next.ScoreOne, next.ScoreTwo)
	}
}

func TestVersusComputerOwnsSideTwo(t *testing.T) {
	s := newTestVersusService(&recordingDB{})

	snap, err := s.start(&models.Player{ID: 3, MaxUnlockedLevel: 2}, game.ModeRace, true)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	defer s.Cancel(snap.SessionID, 3)

	if snap.Opponent != "computer" {
		t.Fatalf("opponent = %q, want computer", snap.Opponent)
	}

	_, _, err = s.SubmitAnswer(snap.SessionID, 3, game.SideTwo, snap.Round, snap.Question.ID)
	if !errors.Is(err, ErrSideTaken) {
		t.Errorf("side two answer against the computer: err=%v, want ErrSideTaken", err)
	}
	if snap, err := s.Pause(snap.SessionID, 3); err != nil || snap.ScoreTwo != 0 {
		t.Errorf("after rejected answer: score_two=%d err=%v, want 0/nil", snap.ScoreTwo, err)
	}
}

func TestVersusTwoPlayerRaceRecordsWinner(t *testing.T) {
	db := &recordingDB{}
	s := newTestVersusService(db)

	cur, err := s.start(&models.Player{ID: 9, MaxUnlockedLevel: 10}, game.ModeRace, false)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	for i := 0; i < game.RaceTarget; i++ {
		res, next, err := s.SubmitAnswer(cur.SessionID, 9, game.SideOne, cur.Round, cur.Question.ID)
		if err != nil {
			t.Fatalf("answer %d: %v", i+1, err)
		}
		if !res.Scored {
			t.Fatalf("answer %d: %+v, want scored", i+1, res)
		}
		cur = next
	}

	if cur.Phase != game.VersusFinished || cur.Winner != game.WinnerSideOne {
		t.Fatalf("phase=%v winner=%v, want finished with side one winning", cur.Phase, cur.Winner)
	}

	// Exactly one result row, race mode, side one the winner.
	db.mu.Lock()
	inserts := db.inserts
	db.mu.Unlock()
	if len(inserts) != 1 {
		t.Fatalf("recorded %d results, want 1", len(inserts))
	}
	if mode := inserts[0][1]; mode != "race" {
		t.Errorf("recorded mode = %v, want race", mode)
	}
	if winner := inserts[0][6]; winner != "p1" {
		t.Errorf("recorded winner = %v, want p1", winner)
	}

	// The finished session is gone.
	if _, _, err := s.SubmitAnswer(cur.SessionID, 9, game.SideOne, cur.Round, cur.Question.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("answer after finish: err=%v, want ErrSessionNotFound", err)
	}
}
