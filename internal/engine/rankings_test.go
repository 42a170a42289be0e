package engine

import (
	"testing"
)

func playerScores(playerID int64, player string, gender Gender, matchID int64, pins ...int) []PlayerScore {
	scores := make([]PlayerScore, 0, len(pins))
	for i, p := range pins {
		scores = append(scores, PlayerScore{
			MatchID:  matchID,
			PlayerID: playerID,
			Player:   player,
			Gender:   gender,
			Team:     "Anglers",
			Opponent: "Brewers",
			Leg:      i + 1,
			Pins:     p,
		})
	}
	return scores
}

func TestAveragesSingleMatch(t *testing.T) {
	scores := playerScores(1, "Jo Webber", GenderLadies, 1, 5, 9, 12, 7)

	rows := Averages(scores, "", 0)
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].Played != 1 {
		t.Errorf("played = %d, want 1 (distinct matches, not legs)", rows[0].Played)
	}
	if rows[0].Average != 33 {
		t.Errorf("average = %v, want 33", rows[0].Average)
	}
	if got := rows[0].DisplayAverage(); got != "33.00" {
		t.Errorf("display average = %q, want %q", got, "33.00")
	}
}

func TestAveragesDistinctMatches(t *testing.T) {
	var scores []PlayerScore
	scores = append(scores, playerScores(1, "Jo Webber", GenderLadies, 1, 10, 10, 10, 10, 10, 10)...)
	scores = append(scores, playerScores(1, "Jo Webber", GenderLadies, 2, 5, 5, 5, 5, 5, 5)...)

	rows := Averages(scores, "", 0)
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].Played != 2 {
		t.Errorf("played = %d, want 2", rows[0].Played)
	}
	if rows[0].Average != 45 {
		t.Errorf("average = %v, want 45", rows[0].Average)
	}
}

func TestAveragesGenderFilter(t *testing.T) {
	var scores []PlayerScore
	scores = append(scores, playerScores(1, "Jo Webber", GenderLadies, 1, 8, 8, 8, 8, 8, 8)...)
	scores = append(scores, playerScores(2, "Sam Drew", GenderMen, 1, 9, 9, 9, 9, 9, 9)...)

	ladies := Averages(scores, GenderLadies, 0)
	if len(ladies) != 1 || ladies[0].PlayerID != 1 {
		t.Fatalf("ladies rows = %+v, want only player 1", ladies)
	}

	all := Averages(scores, "", 0)
	if len(all) != 2 {
		t.Fatalf("unfiltered rows = %d, want 2", len(all))
	}
}

func TestAveragesSortAndTruncate(t *testing.T) {
	var scores []PlayerScore
	// Three players: averages 60, 54, 54; the tied pair splits on played.
	scores = append(scores, playerScores(1, "A", GenderMen, 1, 10, 10, 10, 10, 10, 10)...)
	scores = append(scores, playerScores(2, "B", GenderMen, 1, 9, 9, 9, 9, 9, 9)...)
	scores = append(scores, playerScores(3, "C", GenderMen, 1, 9, 9, 9, 9, 9, 9)...)
	scores = append(scores, playerScores(3, "C", GenderMen, 2, 9, 9, 9, 9, 9, 9)...)

	rows := Averages(scores, "", 0)
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if rows[0].PlayerID != 1 {
		t.Errorf("first = player %d, want 1 (highest average)", rows[0].PlayerID)
	}
	if rows[1].PlayerID != 3 {
		t.Errorf("second = player %d, want 3 (tied average, more played)", rows[1].PlayerID)
	}

	// The cutoff applies after the full sort, so the leader survives a
	// limit smaller than the field.
	top := Averages(scores, "", 1)
	if len(top) != 1 || top[0].PlayerID != 1 {
		t.Fatalf("top 1 = %+v, want player 1", top)
	}
}

func TestAveragesOmitsPlayersWithNoScores(t *testing.T) {
	if rows := Averages(nil, "", 0); len(rows) != 0 {
		t.Fatalf("rows = %+v, want empty", rows)
	}
}

func TestNinesLeagueCounts(t *testing.T) {
	scores := playerScores(1, "Jo Webber", GenderLadies, 1, 9, 9, 10, 5, 9, 12)

	rows := NinesLeague(scores, 0)
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	row := rows[0]
	if row.Nines != 3 || row.Spares != 2 || row.Total != 5 {
		t.Errorf("nines/spares/total = %d/%d/%d, want 3/2/5", row.Nines, row.Spares, row.Total)
	}
	if row.Played != 1 {
		t.Errorf("played = %d, want 1", row.Played)
	}
}

func TestNinesLeagueOrderIndependent(t *testing.T) {
	forward := playerScores(1, "Jo Webber", GenderLadies, 1, 9, 9, 10, 5, 9, 12)
	reversed := playerScores(1, "Jo Webber", GenderLadies, 1, 12, 9, 5, 10, 9, 9)

	a := NinesLeague(forward, 0)
	b := NinesLeague(reversed, 0)
	if len(a) != 1 || len(b) != 1 {
		t.Fatalf("rows = %d/%d, want 1/1", len(a), len(b))
	}
	if a[0] != b[0] {
		t.Errorf("leg order changed the tally: %+v vs %+v", a[0], b[0])
	}
}

func TestNinesLeagueSort(t *testing.T) {
	var scores []PlayerScore
	// A: total 3 (2 nines, 1 spare) over 1 match.
	scores = append(scores, playerScores(1, "A", GenderMen, 1, 9, 9, 10, 0, 0, 0)...)
	// B: total 3 (1 nine, 2 spares) over 1 match — more spares ranks above A.
	scores = append(scores, playerScores(2, "B", GenderMen, 1, 9, 10, 11, 0, 0, 0)...)
	// C: same counts as B but over two matches — fewer played ranks first.
	scores = append(scores, playerScores(3, "C", GenderMen, 1, 9, 10, 11, 0, 0, 0)...)
	scores = append(scores, playerScores(3, "C", GenderMen, 2, 0, 0, 0, 0, 0, 0)...)

	rows := NinesLeague(scores, 0)
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	want := []int64{2, 3, 1}
	for i, id := range want {
		if rows[i].PlayerID != id {
			t.Errorf("row %d = player %d, want %d", i, rows[i].PlayerID, id)
		}
	}
}

func TestNinesLeagueOmitsZeroTotals(t *testing.T) {
	scores := playerScores(1, "A", GenderMen, 1, 8, 8, 8, 8, 8, 8)
	if rows := NinesLeague(scores, 0); len(rows) != 0 {
		t.Fatalf("rows = %+v, want empty (no nine-or-better legs)", rows)
	}
}
