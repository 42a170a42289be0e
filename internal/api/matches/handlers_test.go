package matches

// NOTE: Tests cannot use t.Parallel() due to shared package state.

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	appdb "github.com/alphington/skittles/internal/db"
	dbgen "github.com/alphington/skittles/internal/db/generated"
	"github.com/alphington/skittles/internal/engine"
	"github.com/alphington/skittles/internal/testutil"
)

type fixtures struct {
	homeTeamID   int64
	awayTeamID   int64
	homePlayerID int64
	awayPlayerID int64
}

func seedRoster(t *testing.T, database *appdb.DB) fixtures {
	t.Helper()
	ctx := context.Background()

	insert := func(query string, args ...any) int64 {
		t.Helper()
		res, err := database.ExecContext(ctx, query, args...)
		if err != nil {
			t.Fatalf("seed %q: %v", query, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			t.Fatalf("seed id: %v", err)
		}
		return id
	}

	f := fixtures{}
	f.homeTeamID = insert("INSERT INTO teams (name) VALUES (?)", "Anglers")
	f.awayTeamID = insert("INSERT INTO teams (name) VALUES (?)", "Brewers")
	f.homePlayerID = insert(
		"INSERT INTO players (team_id, first_name, last_name, gender) VALUES (?, ?, ?, ?)",
		f.homeTeamID, "Jo", "Webber", "ladies")
	f.awayPlayerID = insert(
		"INSERT INTO players (team_id, first_name, last_name, gender) VALUES (?, ?, ?, ?)",
		f.awayTeamID, "Sam", "Drew", "men")
	return f
}

func matchBody(f fixtures, homeLegs, awayLegs []int) string {
	legsJSON := func(legs []int) string {
		parts := make([]string, 0, len(legs))
		for i, pins := range legs {
			parts = append(parts, fmt.Sprintf(`{"leg": %d, "pins": %d}`, i+1, pins))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return fmt.Sprintf(`{
		"homeTeamId": %d,
		"awayTeamId": %d,
		"playedAt": "2023-03-10T19:30:00Z",
		"players": [
			{"playerId": %d, "position": 1, "scores": %s},
			{"playerId": %d, "position": 1, "scores": %s}
		]
	}`, f.homeTeamID, f.awayTeamID, f.homePlayerID, legsJSON(homeLegs), f.awayPlayerID, legsJSON(awayLegs))
}

func postMatch(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/matches", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	HandleMatchCreate(rec, req)
	return rec
}

func TestHandleMatchCreateAndList(t *testing.T) {
	database := testutil.NewTestDB(t)
	InitHandlers(database)
	f := seedRoster(t, database)

	rec := postMatch(t, matchBody(f, []int{20, 18, 22, 19, 21, 17}, []int{15, 19, 22, 20, 18, 19}))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status = %d, body %s", rec.Code, rec.Body.String())
	}
	var created dbgen.Match
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created match: %v", err)
	}
	if created.HomeTeamID != f.homeTeamID || created.AwayTeamID != f.awayTeamID {
		t.Fatalf("created match teams = %d vs %d, want %d vs %d",
			created.HomeTeamID, created.AwayTeamID, f.homeTeamID, f.awayTeamID)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/matches", nil)
	listRec := httptest.NewRecorder()
	HandleMatchesList(listRec, req)
	if listRec.Code != http.StatusOK {
		t.Fatalf("list: status = %d, body %s", listRec.Code, listRec.Body.String())
	}

	var payload struct {
		Matches []struct {
			ID         int64               `json:"id"`
			HomeTeam   string              `json:"homeTeam"`
			AwayTeam   string              `json:"awayTeam"`
			Result     *engine.MatchResult `json:"result"`
			Incomplete bool                `json:"incomplete"`
		} `json:"matches"`
	}
	if err := json.Unmarshal(listRec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(payload.Matches) != 1 {
		t.Fatalf("matches = %d, want 1", len(payload.Matches))
	}

	view := payload.Matches[0]
	if view.ID != created.ID || view.Incomplete {
		t.Fatalf("view = %+v, want complete match %d", view, created.ID)
	}
	if view.Result == nil {
		t.Fatal("scored match has no result")
	}
	if view.Result.HomeTeamPoints != 8 || view.Result.AwayTeamPoints != 2 {
		t.Errorf("points = %d/%d, want 8/2", view.Result.HomeTeamPoints, view.Result.AwayTeamPoints)
	}
	if view.Result.HomeTeamPins != 117 || view.Result.AwayTeamPins != 113 {
		t.Errorf("pins = %d/%d, want 117/113", view.Result.HomeTeamPins, view.Result.AwayTeamPins)
	}
}

func TestHandleMatchesListFlagsIncompleteMatch(t *testing.T) {
	database := testutil.NewTestDB(t)
	InitHandlers(database)
	f := seedRoster(t, database)

	// Three legs entered, three to come.
	rec := postMatch(t, matchBody(f, []int{8, 7, 9}, []int{6, 6, 6}))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status = %d, body %s", rec.Code, rec.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/matches", nil)
	listRec := httptest.NewRecorder()
	HandleMatchesList(listRec, req)
	if listRec.Code != http.StatusOK {
		t.Fatalf("list: status = %d, body %s", listRec.Code, listRec.Body.String())
	}

	var payload struct {
		Matches []struct {
			Result     *engine.MatchResult `json:"result"`
			Incomplete bool                `json:"incomplete"`
		} `json:"matches"`
	}
	if err := json.Unmarshal(listRec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(payload.Matches) != 1 {
		t.Fatalf("matches = %d, want 1", len(payload.Matches))
	}
	if !payload.Matches[0].Incomplete || payload.Matches[0].Result != nil {
		t.Errorf("view = %+v, want incomplete with no result", payload.Matches[0])
	}
}

func TestHandleMatchCreateValidation(t *testing.T) {
	database := testutil.NewTestDB(t)
	InitHandlers(database)
	f := seedRoster(t, database)

	sameTeams := strings.Replace(
		matchBody(f, []int{8, 7, 9, 6, 8, 7}, []int{6, 6, 6, 6, 6, 6}),
		fmt.Sprintf(`"awayTeamId": %d`, f.awayTeamID),
		fmt.Sprintf(`"awayTeamId": %d`, f.homeTeamID), 1)

	cases := map[string]string{
		"same team twice": sameTeams,
		"missing playedAt": fmt.Sprintf(`{
			"homeTeamId": %d, "awayTeamId": %d, "players": []
		}`, f.homeTeamID, f.awayTeamID),
		"bad position": fmt.Sprintf(`{
			"homeTeamId": %d, "awayTeamId": %d, "playedAt": "2023-03-10T19:30:00Z",
			"players": [{"playerId": %d, "position": 9, "scores": []}]
		}`, f.homeTeamID, f.awayTeamID, f.homePlayerID),
		"bad leg": fmt.Sprintf(`{
			"homeTeamId": %d, "awayTeamId": %d, "playedAt": "2023-03-10T19:30:00Z",
			"players": [{"playerId": %d, "position": 1, "scores": [{"leg": 7, "pins": 5}]}]
		}`, f.homeTeamID, f.awayTeamID, f.homePlayerID),
		"duplicate leg": fmt.Sprintf(`{
			"homeTeamId": %d, "awayTeamId": %d, "playedAt": "2023-03-10T19:30:00Z",
			"players": [{"playerId": %d, "position": 1, "scores": [{"leg": 1, "pins": 5}, {"leg": 1, "pins": 6}]}]
		}`, f.homeTeamID, f.awayTeamID, f.homePlayerID),
		"negative pins": fmt.Sprintf(`{
			"homeTeamId": %d, "awayTeamId": %d, "playedAt": "2023-03-10T19:30:00Z",
			"players": [{"playerId": %d, "position": 1, "scores": [{"leg": 1, "pins": -1}]}]
		}`, f.homeTeamID, f.awayTeamID, f.homePlayerID),
		"duplicate player": fmt.Sprintf(`{
			"homeTeamId": %d, "awayTeamId": %d, "playedAt": "2023-03-10T19:30:00Z",
			"players": [
				{"playerId": %d, "position": 1, "scores": []},
				{"playerId": %d, "position": 2, "scores": []}
			]
		}`, f.homeTeamID, f.awayTeamID, f.homePlayerID, f.homePlayerID),
	}

	for name, body := range cases {
		rec := postMatch(t, body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400 (body %s)", name, rec.Code, rec.Body.String())
		}
	}
}

func TestHandleMatchCreateRejectsOutsidePlayer(t *testing.T) {
	database := testutil.NewTestDB(t)
	InitHandlers(database)
	f := seedRoster(t, database)

	ctx := context.Background()
	res, err := database.ExecContext(ctx, "INSERT INTO teams (name) VALUES (?)", "Crown")
	if err != nil {
		t.Fatalf("seed team: %v", err)
	}
	crownID, _ := res.LastInsertId()
	res, err = database.ExecContext(ctx,
		"INSERT INTO players (team_id, first_name, last_name, gender) VALUES (?, ?, ?, ?)",
		crownID, "Al", "Binns", "men")
	if err != nil {
		t.Fatalf("seed player: %v", err)
	}
	outsiderID, _ := res.LastInsertId()

	body := fmt.Sprintf(`{
		"homeTeamId": %d, "awayTeamId": %d, "playedAt": "2023-03-10T19:30:00Z",
		"players": [{"playerId": %d, "position": 1, "scores": []}]
	}`, f.homeTeamID, f.awayTeamID, outsiderID)

	rec := postMatch(t, body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (body %s)", rec.Code, rec.Body.String())
	}

	// Unknown players are reported the same way.
	body = fmt.Sprintf(`{
		"homeTeamId": %d, "awayTeamId": %d, "playedAt": "2023-03-10T19:30:00Z",
		"players": [{"playerId": 999, "position": 1, "scores": []}]
	}`, f.homeTeamID, f.awayTeamID)
	rec = postMatch(t, body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown player: status = %d, want 400 (body %s)", rec.Code, rec.Body.String())
	}

	// Neither attempt may leave a partial match behind.
	var count int
	if err := database.QueryRowContext(ctx, "SELECT COUNT(*) FROM matches").Scan(&count); err != nil {
		t.Fatalf("count matches: %v", err)
	}
	if count != 0 {
		t.Errorf("matches persisted = %d, want 0 after rollback", count)
	}
}
