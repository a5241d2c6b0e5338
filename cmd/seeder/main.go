// Seeder loads a small fixture league into Postgres for local development.
// It is not part of the service: the production store is populated by the
// external stats sync.
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"
)

type teamFixture struct {
	ID          string
	Games       int
	PPG, OppPPG float64
	HomePPG     float64
	AwayPPG     float64
	FGA, FGM    float64
	ThreePA     float64
	ThreePM     float64
	FTA, FTM    float64
	OREB, DREB  float64
	AST, TOV    float64
	Pace        float64
	OffRtg      float64
	DefRtg      float64
	RankOff     int
	RankDef     int
	RankPace    int
	RankFGA     int
	Rank3PA     int
	RankForced  int
	B2BGames    int
	B2BPPGDelta float64
	B2BOppDelta float64
}

var fixtures = []teamFixture{
	{"BOS", 42, 119.2, 108.9, 122.1, 116.5, 89.1, 44.8, 42.5, 15.9, 22.4, 17.6, 10.1, 33.5, 26.8, 12.1, 98.7, 120.8, 110.3, 2, 4, 14, 4, 1, 11, 6, -2.8, 1.9},
	{"MEM", 40, 114.8, 112.3, 118.9, 110.2, 91.3, 43.2, 38.0, 13.1, 23.9, 18.2, 12.4, 31.9, 27.3, 13.6, 103.4, 113.1, 110.7, 9, 12, 2, 2, 6, 5, 7, -4.1, 2.6},
	{"OKC", 41, 118.3, 106.1, 119.0, 117.4, 86.9, 42.7, 39.4, 14.2, 22.0, 16.8, 9.8, 32.7, 25.1, 11.2, 100.9, 118.9, 106.8, 3, 1, 8, 8, 4, 1, 5, -1.9, 0.7},
	{"DET", 39, 109.6, 113.8, 112.2, 107.5, 85.2, 40.1, 33.9, 11.8, 24.5, 18.9, 11.6, 30.4, 24.9, 14.8, 97.1, 108.4, 112.9, 22, 19, 21, 18, 20, 16, 8, -5.6, 3.3},
	{"SAS", 40, 111.9, 115.6, 113.4, 110.1, 88.4, 41.5, 37.1, 12.9, 21.2, 16.1, 10.9, 31.1, 26.5, 13.9, 101.8, 110.2, 114.1, 17, 24, 5, 10, 9, 22, 6, -3.4, 4.0},
	{"MIA", 41, 110.4, 109.2, 114.9, 106.3, 84.6, 39.8, 35.6, 12.5, 20.8, 15.7, 9.4, 31.8, 25.8, 12.8, 96.2, 111.5, 110.0, 19, 8, 26, 24, 15, 7, 7, -2.2, 1.1},
}

func main() {
	dsn := flag.String("dsn", os.Getenv("POSTGRES_URL"), "Postgres connection string")
	season := flag.String("season", "2025-26", "Season to seed")
	flag.Parse()

	if *dsn == "" {
		log.Fatal("POSTGRES_URL or -dsn is required")
	}

	db, err := sql.Open("postgres", *dsn)
	if err != nil {
		log.Fatalf("open: %v", err)
	}
	defer db.Close()

	for _, f := range fixtures {
		if err := seedTeam(db, *season, f); err != nil {
			log.Fatalf("seeding %s: %v", f.ID, err)
		}
		fmt.Printf("seeded %s %s\n", f.ID, *season)
	}
}

func seedTeam(db *sql.DB, season string, f teamFixture) error {
	homeGames := f.Games / 2
	awayGames := f.Games - homeGames

	_, err := db.Exec(`
		INSERT INTO team_season_stats (
			team_id, season, games_played, ppg, opp_ppg,
			home_games, home_ppg, home_opp_ppg,
			away_games, away_ppg, away_opp_ppg,
			fga, fgm, three_pa, three_pm, fta, ftm,
			oreb, dreb, assists, turnovers,
			pace, off_rating, def_rating,
			rank_offense, rank_defense, rank_pace,
			rank_fga_volume, rank_three_pa_volume, rank_forced_tov
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
			$12, $13, $14, $15, $16, $17, $18, $19, $20, $21,
			$22, $23, $24, $25, $26, $27, $28, $29, $30
		)
		ON CONFLICT (team_id, season) DO NOTHING
	`,
		f.ID, season, f.Games, f.PPG, f.OppPPG,
		homeGames, f.HomePPG, f.OppPPG-1.0,
		awayGames, f.AwayPPG, f.OppPPG+1.0,
		f.FGA, f.FGM, f.ThreePA, f.ThreePM, f.FTA, f.FTM,
		f.OREB, f.DREB, f.AST, f.TOV,
		f.Pace, f.OffRtg, f.DefRtg,
		f.RankOff, f.RankDef, f.RankPace,
		f.RankFGA, f.Rank3PA, f.RankForced,
	)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT INTO team_b2b_profiles (team_id, season, b2b_games, b2b_ppg_delta, b2b_opp_ppg_delta)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (team_id, season) DO NOTHING
	`, f.ID, season, f.B2BGames, f.B2BPPGDelta, f.B2BOppDelta)
	return err
}
