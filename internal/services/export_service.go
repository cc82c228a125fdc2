package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tnmai/schoolhub-api/internal/repository"
	"github.com/xuri/excelize/v2"
)

// ExportService generates spreadsheet downloads
type ExportService struct {
	loginHistorySvc *LoginHistoryService
	scoreSvc        *ScoreService
	classRepo       repository.ClassRepository
	subjectRepo     repository.SubjectRepository
}

// NewExportService creates a new export service
func NewExportService(loginHistorySvc *LoginHistoryService, scoreSvc *ScoreService, classRepo repository.ClassRepository, subjectRepo repository.SubjectRepository) *ExportService {
	return &ExportService{
		loginHistorySvc: loginHistorySvc,
		scoreSvc:        scoreSvc,
		classRepo:       classRepo,
		subjectRepo:     subjectRepo,
	}
}

// ExportLoginHistoryXLSX exports login history rows matching the query
func (s *ExportService) ExportLoginHistoryXLSX(ctx context.Context, query *repository.ListQuery) ([]byte, string, error) {
	// Export everything the filter matches, not one page
	query.PerPage = 0
	records, _, err := s.loginHistorySvc.List(ctx, query)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Login History"
	_ = f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	headers := []string{"ID", "User", "IP", "Device", "Platform", "Browser", "Login At", "Logout At", "Status"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	_ = f.SetCellStyle(sheet, "A1", "I1", headerStyle)

	for row, r := range records {
		values := []interface{}{
			r.ID,
			r.User.Email,
			derefOr(r.IPAddress, ""),
			derefOr(r.Device, ""),
			derefOr(r.Platform, ""),
			derefOr(r.Browser, ""),
			r.LoginAt.Format("2006-01-02 15:04:05"),
			"",
			r.Status,
		}
		if r.LogoutAt != nil {
			values[7] = r.LogoutAt.Format("2006-01-02 15:04:05")
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("login_history_%s.xlsx", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

// ExportClassScoreSheetXLSX exports the score sheet of one class for one
// subject and term
func (s *ExportService) ExportClassScoreSheetXLSX(ctx context.Context, classID, subjectID uint, term int) ([]byte, string, error) {
	class, err := s.classRepo.FindByID(ctx, classID)
	if err != nil {
		return nil, "", ErrNotFound
	}
	subject, err := s.subjectRepo.FindByID(ctx, subjectID)
	if err != nil {
		return nil, "", ErrNotFound
	}

	scores, err := s.scoreSvc.FindByClassAndSubject(ctx, classID, subjectID, term)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Scores"
	_ = f.SetSheetName("Sheet1", sheet)

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	_ = f.SetCellValue(sheet, "A1", fmt.Sprintf("%s - %s - Term %d", class.Name, subject.Name, term))
	_ = f.SetCellStyle(sheet, "A1", "A1", titleStyle)

	headers := []string{"Code", "Student", "Oral", "Quiz", "Test", "Final", "Average"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		_ = f.SetCellValue(sheet, cell, h)
	}
	_ = f.SetCellStyle(sheet, "A3", "G3", headerStyle)

	for row, score := range scores {
		var code, name string
		if score.Student != nil {
			code = score.Student.Code
			name = score.Student.FullName
		}
		values := []interface{}{
			code,
			name,
			floatOr(score.OralScore),
			floatOr(score.QuizScore),
			floatOr(score.TestScore),
			floatOr(score.FinalScore),
			floatOr(score.Average),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+4)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("scores_%s_%s_term%d.xlsx", class.Name, subject.Code, term)
	return buf.Bytes(), filename, nil
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

func floatOr(f *float64) interface{} {
	if f == nil {
		return ""
	}
	return *f
}
