package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"

	apperrors "crestora-backend/internal/errors"
	"crestora-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// Export sort orders for round score sheets
const (
	ExportSortByTeamID = "team_id"
	ExportSortByScore  = "normalized_score"
)

// ExportFile is a generated download: bytes plus the headers the
// handler needs to serve it
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService renders round score sheets and leaderboard standings as
// CSV and XLSX downloads
type ExportService struct {
	rounds      repository.RoundRepositoryInterface
	scores      repository.TeamScoreRepositoryInterface
	teams       repository.TeamRepositoryInterface
	leaderboard LeaderboardServiceInterface
}

// NewExportService creates a new export service
func NewExportService(
	rounds repository.RoundRepositoryInterface,
	scores repository.TeamScoreRepositoryInterface,
	teams repository.TeamRepositoryInterface,
	leaderboard LeaderboardServiceInterface,
) *ExportService {
	return &ExportService{
		rounds:      rounds,
		scores:      scores,
		teams:       teams,
		leaderboard: leaderboard,
	}
}

// ExportRound renders one round's score sheet as CSV with a column per
// criterion. sortBy selects team ID order or best score first.
func (s *ExportService) ExportRound(roundID uuid.UUID, sortBy string) (*ExportFile, error) {
	if sortBy == "" {
		sortBy = ExportSortByTeamID
	}
	if sortBy != ExportSortByTeamID && sortBy != ExportSortByScore {
		return nil, apperrors.NewValidationError("sort_by", "sort_by must be team_id or normalized_score")
	}

	round, err := s.rounds.GetByID(roundID)
	if err != nil {
		return nil, apperrors.ErrRoundNotFound
	}
	rows, err := s.scores.GetByRound(roundID)
	if err != nil {
		return nil, fmt.Errorf("failed to load scores: %w", err)
	}
	if sortBy == ExportSortByScore {
		sort.Slice(rows, func(i, j int) bool {
			if rows[i].NormalizedScore != rows[j].NormalizedScore {
				return rows[i].NormalizedScore > rows[j].NormalizedScore
			}
			return rows[i].TeamID < rows[j].TeamID
		})
	}

	names := make(map[string]string)
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.TeamID)
	}
	teams, err := s.teams.GetByTeamIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load team names: %w", err)
	}
	for _, team := range teams {
		names[team.TeamID] = team.TeamName
	}

	header := []string{"Team ID", "Team Name"}
	for _, criterion := range round.Criteria {
		header = append(header, fmt.Sprintf("%s (max %g)", criterion.Name, criterion.MaxPoints))
	}
	header = append(header, "Raw Total", "Normalized Score", "Present")

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rows {
		record := []string{row.TeamID, names[row.TeamID]}
		for _, criterion := range round.Criteria {
			record = append(record, formatScore(row.CriteriaScores[criterion.Name]))
		}
		record = append(record,
			formatScore(row.RawTotalScore),
			formatScore(row.NormalizedScore),
			strconv.FormatBool(row.IsPresent),
		)
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return &ExportFile{
		Filename:    fmt.Sprintf("round-%d-scores.csv", round.RoundNumber),
		ContentType: "text/csv",
		Data:        buf.Bytes(),
	}, nil
}

// ExportLeaderboardCSV renders the current standings as CSV
func (s *ExportService) ExportLeaderboardCSV() (*ExportFile, error) {
	standings, err := s.leaderboard.Compute()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(leaderboardHeader()); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	for _, entry := range standings.Teams {
		if err := writer.Write(leaderboardRecord(entry)); err != nil {
			return nil, fmt.Errorf("failed to write row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return &ExportFile{
		Filename:    "leaderboard.csv",
		ContentType: "text/csv",
		Data:        buf.Bytes(),
	}, nil
}

// ExportLeaderboardXLSX renders the current standings as a styled
// spreadsheet with one standings sheet and one sheet listing the
// contributing rounds and their weights
func (s *ExportService) ExportLeaderboardXLSX() (*ExportFile, error) {
	standings, err := s.leaderboard.Compute()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Leaderboard"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}

	for col, title := range leaderboardHeader() {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, title)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}
	for i, entry := range standings.Teams {
		rowNum := i + 2
		values := []interface{}{
			entry.Rank, entry.TeamID, entry.TeamName, entry.LeaderName,
			string(entry.Status), entry.CurrentRound, entry.RoundsCompleted,
			entry.WeightedAverage, entry.FinalScore,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowNum)
			f.SetCellValue(sheet, cell, value)
		}
	}
	f.SetColWidth(sheet, "B", "D", 22)

	const roundsSheet = "Rounds"
	if _, err := f.NewSheet(roundsSheet); err != nil {
		return nil, fmt.Errorf("failed to create rounds sheet: %w", err)
	}
	roundsHeader := []string{"Round", "Name", "State", "Weight %"}
	for col, title := range roundsHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(roundsSheet, cell, title)
		f.SetCellStyle(roundsSheet, cell, cell, headerStyle)
	}
	for i, round := range standings.ContributingRounds {
		rowNum := i + 2
		values := []interface{}{round.RoundNumber, round.Name, string(round.State), round.WeightPercentage}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowNum)
			f.SetCellValue(roundsSheet, cell, value)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	return &ExportFile{
		Filename:    "leaderboard.xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        buf.Bytes(),
	}, nil
}

func leaderboardHeader() []string {
	return []string{
		"Rank", "Team ID", "Team Name", "Leader", "Status",
		"Current Round", "Rounds Completed", "Weighted Average", "Final Score",
	}
}

func leaderboardRecord(entry LeaderboardEntry) []string {
	return []string{
		strconv.Itoa(entry.Rank),
		entry.TeamID,
		entry.TeamName,
		entry.LeaderName,
		string(entry.Status),
		strconv.Itoa(entry.CurrentRound),
		strconv.Itoa(entry.RoundsCompleted),
		formatScore(entry.WeightedAverage),
		formatScore(entry.FinalScore),
	}
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
