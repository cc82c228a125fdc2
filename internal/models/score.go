package models

import (
	"time"
)

// Term constants
const (
	TermFirst  = 1
	TermSecond = 2
)

// Score holds a student's component scores for one subject in one term.
// Average is derived, never bound from input.
type Score struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	StudentID  uint      `gorm:"not null;uniqueIndex:idx_scores_student_subject_term,priority:1" json:"student_id"`
	SubjectID  uint      `gorm:"not null;uniqueIndex:idx_scores_student_subject_term,priority:2" json:"subject_id"`
	Term       int       `gorm:"not null;uniqueIndex:idx_scores_student_subject_term,priority:3" json:"term"`
	OralScore  *float64  `json:"oral_score"`
	QuizScore  *float64  `json:"quiz_score"`
	TestScore  *float64  `json:"test_score"`
	FinalScore *float64  `json:"final_score"`
	Average    *float64  `json:"average"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Associations
	Student *Student `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Subject *Subject `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`
}

// TableName specifies the table name for Score
func (Score) TableName() string {
	return "scores"
}

// Score component weights: oral and quiz count once, the term test twice,
// the final exam three times.
const (
	weightOral  = 1.0
	weightQuiz  = 1.0
	weightTest  = 2.0
	weightFinal = 3.0
)

// ComputeAverage recalculates the weighted average over the components that
// are present. Nil when no component has been entered yet.
func (s *Score) ComputeAverage() {
	var sum, weight float64
	if s.OralScore != nil {
		sum += *s.OralScore * weightOral
		weight += weightOral
	}
	if s.QuizScore != nil {
		sum += *s.QuizScore * weightQuiz
		weight += weightQuiz
	}
	if s.TestScore != nil {
		sum += *s.TestScore * weightTest
		weight += weightTest
	}
	if s.FinalScore != nil {
		sum += *s.FinalScore * weightFinal
		weight += weightFinal
	}
	if weight == 0 {
		s.Average = nil
		return
	}
	avg := sum / weight
	// Round to 2 decimals, matching report card presentation
	avg = float64(int(avg*100+0.5)) / 100
	s.Average = &avg
}

// ScoreSnapshot is the audited field set for a score
type ScoreSnapshot struct {
	StudentID  uint     `json:"student_id"`
	SubjectID  uint     `json:"subject_id"`
	Term       int      `json:"term"`
	OralScore  *float64 `json:"oral_score"`
	QuizScore  *float64 `json:"quiz_score"`
	TestScore  *float64 `json:"test_score"`
	FinalScore *float64 `json:"final_score"`
	Average    *float64 `json:"average"`
}

// Snapshot captures the auditable fields of the score
func (s *Score) Snapshot() ScoreSnapshot {
	return ScoreSnapshot{
		StudentID:  s.StudentID,
		SubjectID:  s.SubjectID,
		Term:       s.Term,
		OralScore:  s.OralScore,
		QuizScore:  s.QuizScore,
		TestScore:  s.TestScore,
		FinalScore: s.FinalScore,
		Average:    s.Average,
	}
}
