package teams

// NOTE: Tests cannot use t.Parallel() due to shared package state.

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	dbgen "github.com/alphington/skittles/internal/db/generated"
	"github.com/alphington/skittles/internal/testutil"
)

func postJSON(t *testing.T, handler http.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func createTeam(t *testing.T, name string) dbgen.Team {
	t.Helper()
	rec := postJSON(t, HandleTeamCreate, "/api/v1/teams", `{"name": "`+name+`"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create team %s: status = %d, body %s", name, rec.Code, rec.Body.String())
	}
	var team dbgen.Team
	if err := json.Unmarshal(rec.Body.Bytes(), &team); err != nil {
		t.Fatalf("decode created team: %v", err)
	}
	return team
}

func TestHandleTeamCreate(t *testing.T) {
	InitHandlers(testutil.NewTestDB(t))

	team := createTeam(t, "Anglers")
	if team.ID == 0 || team.Name != "Anglers" {
		t.Fatalf("created team = %+v", team)
	}

	// Leading and trailing whitespace is not part of the name.
	trimmed := createTeam(t, "  Brewers ")
	if trimmed.Name != "Brewers" {
		t.Errorf("name = %q, want trimmed %q", trimmed.Name, "Brewers")
	}
}

func TestHandleTeamCreateDuplicateName(t *testing.T) {
	InitHandlers(testutil.NewTestDB(t))

	createTeam(t, "Anglers")
	rec := postJSON(t, HandleTeamCreate, "/api/v1/teams", `{"name": "Anglers"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate name: status = %d, want 409", rec.Code)
	}
}

func TestHandleTeamCreateRejectsBadBody(t *testing.T) {
	InitHandlers(testutil.NewTestDB(t))

	for name, body := range map[string]string{
		"empty name":    `{"name": "   "}`,
		"missing name":  `{}`,
		"unknown field": `{"name": "Anglers", "captain": "Jo"}`,
		"not json":      `name=Anglers`,
	} {
		rec := postJSON(t, HandleTeamCreate, "/api/v1/teams", body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", name, rec.Code)
		}
	}
}

func TestHandleTeamsList(t *testing.T) {
	InitHandlers(testutil.NewTestDB(t))

	createTeam(t, "Crown")
	createTeam(t, "Anglers")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/teams", nil)
	rec := httptest.NewRecorder()
	HandleTeamsList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var payload struct {
		Teams []dbgen.ListTeamsWithCountsRow `json:"teams"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(payload.Teams) != 2 {
		t.Fatalf("teams = %d, want 2", len(payload.Teams))
	}
	if payload.Teams[0].Name != "Anglers" || payload.Teams[1].Name != "Crown" {
		t.Errorf("teams not ordered by name: %q, %q", payload.Teams[0].Name, payload.Teams[1].Name)
	}
}

func TestHandleTeamDetail(t *testing.T) {
	InitHandlers(testutil.NewTestDB(t))

	team := createTeam(t, "Anglers")
	target := "/api/v1/teams/" + strconv.FormatInt(team.ID, 10)

	// PathValue comes from the mux in production; set it directly here.
	req := httptest.NewRequest(http.MethodPost, target+"/players",
		strings.NewReader(`{"firstName": "Jo", "lastName": "Webber", "gender": "ladies"}`))
	req.SetPathValue(teamIDPathKey, strconv.FormatInt(team.ID, 10))
	rec := httptest.NewRecorder()
	HandlePlayerCreate(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create player: status = %d, body %s", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, target, nil)
	req.SetPathValue(teamIDPathKey, strconv.FormatInt(team.ID, 10))
	rec = httptest.NewRecorder()
	HandleTeamDetail(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("detail: status = %d, body %s", rec.Code, rec.Body.String())
	}
	var payload struct {
		Team    dbgen.Team     `json:"team"`
		Players []dbgen.Player `json:"players"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Team.ID != team.ID {
		t.Errorf("team id = %d, want %d", payload.Team.ID, team.ID)
	}
	if len(payload.Players) != 1 || payload.Players[0].FirstName != "Jo" {
		t.Errorf("players = %+v, want single Jo Webber", payload.Players)
	}
}

func TestHandleTeamDetailNotFound(t *testing.T) {
	InitHandlers(testutil.NewTestDB(t))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/teams/99", nil)
	req.SetPathValue(teamIDPathKey, "99")
	rec := httptest.NewRecorder()
	HandleTeamDetail(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/teams/abc", nil)
	req.SetPathValue(teamIDPathKey, "abc")
	rec = httptest.NewRecorder()
	HandleTeamDetail(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad id: status = %d, want 400", rec.Code)
	}
}

func TestHandlePlayerCreateValidation(t *testing.T) {
	InitHandlers(testutil.NewTestDB(t))

	team := createTeam(t, "Anglers")
	id := strconv.FormatInt(team.ID, 10)

	for name, body := range map[string]string{
		"missing last name": `{"firstName": "Jo", "lastName": "", "gender": "ladies"}`,
		"bad gender":        `{"firstName": "Jo", "lastName": "Webber", "gender": "mixed"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/teams/"+id+"/players", strings.NewReader(body))
		req.SetPathValue(teamIDPathKey, id)
		rec := httptest.NewRecorder()
		HandlePlayerCreate(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", name, rec.Code)
		}
	}

	// Unknown team.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/teams/99/players",
		strings.NewReader(`{"firstName": "Jo", "lastName": "Webber", "gender": "ladies"}`))
	req.SetPathValue(teamIDPathKey, "99")
	rec := httptest.NewRecorder()
	HandlePlayerCreate(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown team: status = %d, want 404", rec.Code)
	}
}
