package statemachine

import (
	"context"
	"fmt"

	"github.com/looplab/fsm"
	"github.com/tnmai/schoolhub-api/internal/models"
)

// Enrollment events
const (
	EventSuspend   = "suspend"
	EventReinstate = "reinstate"
	EventGraduate  = "graduate"
	EventWithdraw  = "withdraw"
)

// StudentFSM wraps a student with their enrollment state machine
type StudentFSM struct {
	student *models.Student
	fsm     *fsm.FSM
}

// NewStudentFSM creates a new enrollment state machine
func NewStudentFSM(student *models.Student) *StudentFSM {
	sfsm := &StudentFSM{
		student: student,
	}

	sfsm.fsm = fsm.NewFSM(
		student.Status,
		fsm.Events{
			// enrolled → suspended
			{Name: EventSuspend, Src: []string{models.StudentStatusEnrolled}, Dst: models.StudentStatusSuspended},

			// suspended → enrolled
			{Name: EventReinstate, Src: []string{models.StudentStatusSuspended}, Dst: models.StudentStatusEnrolled},

			// enrolled → graduated (terminal)
			{Name: EventGraduate, Src: []string{models.StudentStatusEnrolled}, Dst: models.StudentStatusGraduated},

			// enrolled/suspended → withdrawn (terminal)
			{Name: EventWithdraw, Src: []string{models.StudentStatusEnrolled, models.StudentStatusSuspended}, Dst: models.StudentStatusWithdrawn},
		},
		fsm.Callbacks{},
	)

	return sfsm
}

// Fire applies a named enrollment event and syncs the student's status
func (s *StudentFSM) Fire(ctx context.Context, event string) error {
	if err := s.fsm.Event(ctx, event); err != nil {
		return fmt.Errorf("cannot %s student in status %s: %w", event, s.student.Status, err)
	}
	s.student.Status = s.fsm.Current()
	return nil
}

// Suspend transitions the student to suspended
func (s *StudentFSM) Suspend(ctx context.Context) error {
	if !s.student.MaySuspend() {
		return fmt.Errorf("student cannot be suspended in current status: %s", s.student.Status)
	}
	return s.Fire(ctx, EventSuspend)
}

// Reinstate returns a suspended student to enrolled
func (s *StudentFSM) Reinstate(ctx context.Context) error {
	if !s.student.MayReinstate() {
		return fmt.Errorf("student cannot be reinstated in current status: %s", s.student.Status)
	}
	return s.Fire(ctx, EventReinstate)
}

// Graduate transitions the student to graduated
func (s *StudentFSM) Graduate(ctx context.Context) error {
	if !s.student.MayGraduate() {
		return fmt.Errorf("student cannot graduate in current status: %s", s.student.Status)
	}
	return s.Fire(ctx, EventGraduate)
}

// Withdraw transitions the student to withdrawn
func (s *StudentFSM) Withdraw(ctx context.Context) error {
	if !s.student.MayWithdraw() {
		return fmt.Errorf("student cannot be withdrawn in current status: %s", s.student.Status)
	}
	return s.Fire(ctx, EventWithdraw)
}

// Current returns the machine's current status
func (s *StudentFSM) Current() string {
	return s.fsm.Current()
}
