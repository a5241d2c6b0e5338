package resolver

import "github.com/courtside/totals-api/internal/models"

// assessQuality is the data-quality guard: it grades how much real data
// backs one team's inputs so fallback paths are observable in the result
// instead of inferred from log output.
//
//   - fallback: no season profile, or the possession formula had to
//     substitute the league-average pace
//   - partial: season profile present but the recent log or the precomputed
//     tier profile is missing (neutral defaults substituted)
//   - complete: everything the pipeline wants was there
func assessQuality(in TeamInput, possessionOK bool) models.DataQuality {
	if in.Stats == nil || !possessionOK {
		return models.QualityFallback
	}
	if len(in.Recent) == 0 || in.Tiers == nil {
		return models.QualityPartial
	}
	return models.QualityComplete
}
