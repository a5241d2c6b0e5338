package resolver

// Tuning holds every threshold and weight the pipeline uses. It is immutable
// after construction and passed into the Resolver, so tests can run alternate
// tunings and production values live in exactly one place. Several of the
// volume cutoffs were tuned empirically against historical seasons; treat
// them as data, not as laws.
type Tuning struct {
	// Possessions
	FTAPossessionWeight float64 // free throws per possession-ending trip
	GamePaceDivisor     float64 // combined possessions -> 48-minute pace
	LeagueAveragePace   float64 // fallback when box-score inputs are missing

	// Tier classification
	MinGamesForTiers int
	RecentWindow     int
	PaceTierZ        float64 // stdevs from mean for slow/fast
	VarianceTierZ    float64 // stdevs from mean for low/high CV
	HomeAwayEdge     float64 // PPG-vs-season threshold for strong splits
	MatchupHighSpread float64
	MatchupLowSpread  float64
	MatchupMinGames   int

	// Tier weights
	PaceWeightSlow   float64
	PaceWeightMedium float64
	PaceWeightFast   float64

	MatchupWeightLow    float64
	MatchupWeightMedium float64
	MatchupWeightHigh   float64

	HomeAwayWeightNeutral float64
	HomeAwayWeightStrong  float64

	// Variance blend: season share / recent share per variance tier
	BlendSeasonLowVar  float64
	BlendRecentLowVar  float64
	BlendSeasonMedVar  float64
	BlendRecentMedVar  float64
	BlendSeasonHighVar float64
	BlendRecentHighVar float64

	// Baseline rating-trend correction
	RatingTrendScale float64
	RatingTrendClamp float64

	// Stage 1: pace
	PaceFloor     float64 // 0.92
	PaceInfluence float64 // 0.08

	// Stage 2: turnovers
	PointsPerExtraTurnover float64 // efficiency loss only; volume is in the formula
	TurnoverForcingTopRank int     // opponent forcing rank at or under this scales up
	TurnoverForcingBoost   float64
	TurnoverStageClamp     float64
	TurnoverPaceTotalBonus float64 // total-level bump when both teams run hot TOV

	// Stage 3: defense
	DefenseDynamicScale float64
	DefenseDynamicClamp float64
	DefenseEliteMaxRank int     // ranks 1..this interpolate EliteLow..EliteHigh
	DefenseEliteLow     float64 // rank 1
	DefenseEliteHigh    float64 // last elite rank
	DefenseBadMinRank   int     // ranks this..30 interpolate BadLow..BadHigh
	DefenseBadLow       float64 // first bad rank
	DefenseBadHigh      float64 // rank 30
	DefenseTierMin      float64
	DefenseTierMax      float64

	// Stage 4: matchup scenarios
	MatchupFastPairBonus   float64
	MatchupSlowPairPenalty float64
	MatchupEliteDefRank    int
	MatchupSensitivePenalty float64
	MatchupStageClamp      float64

	// Stage 5: volume. Conservative on purpose: turnovers and free-throw
	// rate already enter the possession formula, so only extremes count.
	VolumeHighThreshold  float64
	VolumeHighBonus      float64
	VolumeUpperThreshold float64
	VolumeUpperBonus     float64
	VolumeLowThreshold   float64
	VolumeLowPenalty     float64
	VolumeLowerThreshold float64
	VolumeLowerPenalty   float64

	FTAHighThreshold float64
	FTAHighBonus     float64
	FTAMidThreshold  float64
	FTAMidBonus      float64

	OREBHighThreshold float64
	OREBHighBonus     float64
	OREBMidThreshold  float64
	OREBMidBonus      float64

	VolumeIdentityRank  int
	VolumeIdentityBonus float64

	// Stage 6: shootout detection
	ShootoutVolumeZ   float64
	ShootoutBaseBonus float64
	ShootoutVolumeGain float64
	ShootoutEffGain   float64
	ShootoutMaxBonus  float64

	// Stage 7: situational home/road matrix, rows = home class, cols = away
	// class, both ordered Strong/Normal/Weak. Applied to the total.
	HomeRoadMatrix [3][3]float64

	// Stage 8: back-to-backs
	B2BMinGames     int
	B2BOffenseScale float64
	B2BDefenseScale float64
	B2BClamp        float64

	// Recommendation
	EdgeThreshold float64
}

// DefaultTuning returns the production tuning.
func DefaultTuning() Tuning {
	return Tuning{
		FTAPossessionWeight: 0.44,
		GamePaceDivisor:     10,
		LeagueAveragePace:   99.2,

		MinGamesForTiers:  5,
		RecentWindow:      10,
		PaceTierZ:         0.75,
		VarianceTierZ:     0.5,
		HomeAwayEdge:      4.0,
		MatchupHighSpread: 6.0,
		MatchupLowSpread:  3.0,
		MatchupMinGames:   3,

		PaceWeightSlow:   0.8,
		PaceWeightMedium: 1.0,
		PaceWeightFast:   1.2,

		MatchupWeightLow:    0.8,
		MatchupWeightMedium: 1.0,
		MatchupWeightHigh:   1.2,

		HomeAwayWeightNeutral: 0.5,
		HomeAwayWeightStrong:  1.0,

		BlendSeasonLowVar:  0.70,
		BlendRecentLowVar:  0.30,
		BlendSeasonMedVar:  0.55,
		BlendRecentMedVar:  0.45,
		BlendSeasonHighVar: 0.40,
		BlendRecentHighVar: 0.60,

		RatingTrendScale: 0.15,
		RatingTrendClamp: 2.0,

		PaceFloor:     0.92,
		PaceInfluence: 0.08,

		PointsPerExtraTurnover: 0.6,
		TurnoverForcingTopRank: 8,
		TurnoverForcingBoost:   1.25,
		TurnoverStageClamp:     3.0,
		TurnoverPaceTotalBonus: 1.5,

		DefenseDynamicScale: 0.35,
		DefenseDynamicClamp: 4.0,
		DefenseEliteMaxRank: 10,
		DefenseEliteLow:     -6.0,
		DefenseEliteHigh:    -4.0,
		DefenseBadMinRank:   20,
		DefenseBadLow:       3.0,
		DefenseBadHigh:      5.0,
		DefenseTierMin:      -6.0,
		DefenseTierMax:      5.0,

		MatchupFastPairBonus:    2.0,
		MatchupSlowPairPenalty:  -2.0,
		MatchupEliteDefRank:     5,
		MatchupSensitivePenalty: -1.5,
		MatchupStageClamp:       3.0,

		VolumeHighThreshold:  100,
		VolumeHighBonus:      4,
		VolumeUpperThreshold: 95,
		VolumeUpperBonus:     2,
		VolumeLowThreshold:   75,
		VolumeLowPenalty:     -4,
		VolumeLowerThreshold: 80,
		VolumeLowerPenalty:   -2,

		FTAHighThreshold: 40,
		FTAHighBonus:     3,
		FTAMidThreshold:  30,
		FTAMidBonus:      1,

		OREBHighThreshold: 16,
		OREBHighBonus:     2,
		OREBMidThreshold:  12,
		OREBMidBonus:      1,

		VolumeIdentityRank:  5,
		VolumeIdentityBonus: 2,

		ShootoutVolumeZ:    0.5,
		ShootoutBaseBonus:  1.5,
		ShootoutVolumeGain: 1.0,
		ShootoutEffGain:    25.0,
		ShootoutMaxBonus:   5.0,

		// Rows: home Strong/Normal/Weak. Cols: away Strong/Normal/Weak.
		// Zero unless one side is Strong and the other Weak, or exactly one
		// side is non-Normal; most games land on 0.
		HomeRoadMatrix: [3][3]float64{
			{0, 2, 4},
			{2, 0, -2},
			{-4, -2, 0},
		},

		B2BMinGames:     3,
		B2BOffenseScale: 0.5,
		B2BDefenseScale: 0.5,
		B2BClamp:        3.0,

		EdgeThreshold: 4.0,
	}
}
