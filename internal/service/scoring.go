package service

import (
	"fmt"
	"math"
	"sort"

	"crestora-backend/internal/database/models"
	apperrors "crestora-backend/internal/errors"
)

// roundTo2 rounds to two decimal places for API responses
func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

// NormalizeScore maps a raw criterion total onto a 0-100 scale against
// the round's maximum achievable points. The result is clamped at 100
// so stale criteria definitions can never push a team above the scale.
// A round with no achievable points normalizes everything to zero.
func NormalizeScore(rawTotal, maxTotal float64) float64 {
	if maxTotal <= 0 {
		return 0
	}
	normalized := rawTotal / maxTotal * 100
	if normalized > 100 {
		return 100
	}
	return roundTo2(normalized)
}

// ValidateCriteria checks a criteria definition for a round: at least
// one criterion, non-empty unique names, strictly positive max points.
func ValidateCriteria(criteria []models.Criterion) error {
	if len(criteria) == 0 {
		return apperrors.NewValidationError("criteria", "at least one criterion is required")
	}
	seen := make(map[string]bool, len(criteria))
	for _, c := range criteria {
		if c.Name == "" {
			return apperrors.NewValidationError("criteria", "criterion name cannot be empty")
		}
		if seen[c.Name] {
			return apperrors.NewValidationError("criteria", fmt.Sprintf("duplicate criterion name %q", c.Name))
		}
		seen[c.Name] = true
		if c.MaxPoints <= 0 {
			return apperrors.NewValidationError("criteria", fmt.Sprintf("criterion %q must have positive max points", c.Name))
		}
	}
	return nil
}

// ValidateScores checks submitted per-criterion scores against a round's
// criteria definition. Unknown criterion names and out-of-range values
// are rejected; missing criteria are allowed and treated as zero.
func ValidateScores(criteria models.CriteriaList, scores models.ScoreMap) error {
	maxByName := make(map[string]float64, len(criteria))
	for _, c := range criteria {
		maxByName[c.Name] = c.MaxPoints
	}
	for name, value := range scores {
		maxPoints, ok := maxByName[name]
		if !ok {
			return apperrors.NewValidationError("scores", fmt.Sprintf("unknown criterion %q", name))
		}
		if value < 0 {
			return apperrors.NewValidationError("scores", fmt.Sprintf("score for %q cannot be negative", name))
		}
		if value > maxPoints {
			return apperrors.NewValidationError("scores", fmt.Sprintf("score for %q exceeds max of %g", name, maxPoints))
		}
	}
	return nil
}

// RoundStats summarizes a round's normalized scores at freeze time.
// Only teams marked present contribute; a round where nobody showed up
// has a participation count of zero and no average.
type RoundStats struct {
	MaxScore          *float64
	MinScore          *float64
	AvgScore          *float64
	ParticipatedCount int
}

// ComputeRoundStats derives freeze statistics from a round's score rows
func ComputeRoundStats(scores []models.TeamScore) RoundStats {
	var stats RoundStats
	var sum float64
	for _, s := range scores {
		if !s.IsPresent {
			continue
		}
		v := s.NormalizedScore
		if stats.ParticipatedCount == 0 {
			stats.MaxScore = &v
			stats.MinScore = &v
		} else {
			if v > *stats.MaxScore {
				stats.MaxScore = &v
			}
			if v < *stats.MinScore {
				stats.MinScore = &v
			}
		}
		sum += v
		stats.ParticipatedCount++
	}
	if stats.ParticipatedCount > 0 {
		avg := roundTo2(sum / float64(stats.ParticipatedCount))
		stats.AvgScore = &avg
	}
	return stats
}

// TopTeams returns the n best present teams of a round by normalized
// score, ties broken by ascending team ID so the ordering is stable.
func TopTeams(scores []models.TeamScore, n int) []models.TeamScore {
	present := make([]models.TeamScore, 0, len(scores))
	for _, s := range scores {
		if s.IsPresent {
			present = append(present, s)
		}
	}
	sort.Slice(present, func(i, j int) bool {
		if present[i].NormalizedScore != present[j].NormalizedScore {
			return present[i].NormalizedScore > present[j].NormalizedScore
		}
		return present[i].TeamID < present[j].TeamID
	})
	if len(present) > n {
		present = present[:n]
	}
	return present
}
