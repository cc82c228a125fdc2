package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/tnmai/schoolhub-api/internal/repository"
)

// ReportService generates printable documents
type ReportService struct {
	studentRepo repository.StudentRepository
	scoreRepo   repository.ScoreRepository
}

// NewReportService creates a new report service
func NewReportService(studentRepo repository.StudentRepository, scoreRepo repository.ScoreRepository) *ReportService {
	return &ReportService{
		studentRepo: studentRepo,
		scoreRepo:   scoreRepo,
	}
}

// GenerateReportCardPDF renders one student's scores for a term as a PDF
func (s *ReportService) GenerateReportCardPDF(ctx context.Context, studentID uint, term int) (*bytes.Buffer, error) {
	student, err := s.studentRepo.FindByID(ctx, studentID)
	if err != nil {
		return nil, ErrNotFound
	}

	scores, err := s.scoreRepo.FindByStudent(ctx, studentID, term)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Report Card")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(40, 8, "Student:")
	pdf.Cell(80, 8, tr(student.FullName))
	pdf.Ln(6)
	pdf.Cell(40, 8, "Code:")
	pdf.Cell(80, 8, student.Code)
	pdf.Ln(6)
	if student.Class != nil {
		pdf.Cell(40, 8, "Class:")
		pdf.Cell(80, 8, tr(student.Class.Name))
		pdf.Ln(6)
	}
	pdf.Cell(40, 8, "Term:")
	pdf.Cell(80, 8, fmt.Sprintf("%d", term))
	pdf.Ln(12)

	// Score table
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(60, 8, "Subject", "1", 0, "L", false, 0, "")
	pdf.CellFormat(22, 8, "Oral", "1", 0, "C", false, 0, "")
	pdf.CellFormat(22, 8, "Quiz", "1", 0, "C", false, 0, "")
	pdf.CellFormat(22, 8, "Test", "1", 0, "C", false, 0, "")
	pdf.CellFormat(22, 8, "Final", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 8, "Average", "1", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	var sum float64
	var graded int
	for _, score := range scores {
		subjectName := ""
		if score.Subject != nil {
			subjectName = score.Subject.Name
		}
		pdf.CellFormat(60, 8, tr(subjectName), "1", 0, "L", false, 0, "")
		pdf.CellFormat(22, 8, formatScore(score.OralScore), "1", 0, "C", false, 0, "")
		pdf.CellFormat(22, 8, formatScore(score.QuizScore), "1", 0, "C", false, 0, "")
		pdf.CellFormat(22, 8, formatScore(score.TestScore), "1", 0, "C", false, 0, "")
		pdf.CellFormat(22, 8, formatScore(score.FinalScore), "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 8, formatScore(score.Average), "1", 1, "C", false, 0, "")

		if score.Average != nil {
			sum += *score.Average
			graded++
		}
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 11)
	if graded > 0 {
		pdf.Cell(60, 8, "Term average:")
		pdf.Cell(40, 8, fmt.Sprintf("%.2f", sum/float64(graded)))
		pdf.Ln(10)
	}

	pdf.SetFont("Arial", "I", 9)
	pdf.Cell(60, 8, "Generated "+time.Now().Format("02/01/2006"))

	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func formatScore(f *float64) string {
	if f == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *f)
}

// TermAverage computes the mean of a student's subject averages for a term
func (s *ReportService) TermAverage(ctx context.Context, studentID uint, term int) (*float64, error) {
	scores, err := s.scoreRepo.FindByStudent(ctx, studentID, term)
	if err != nil {
		return nil, err
	}
	var sum float64
	var graded int
	for _, score := range scores {
		if score.Average != nil {
			sum += *score.Average
			graded++
		}
	}
	if graded == 0 {
		return nil, nil
	}
	avg := sum / float64(graded)
	return &avg, nil
}
