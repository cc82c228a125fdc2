package statemachine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tnmai/schoolhub-api/internal/models"
)

func TestStudentFSM_SuspendAndReinstate(t *testing.T) {
	student := &models.Student{Status: models.StudentStatusEnrolled}
	machine := NewStudentFSM(student)

	assert.NoError(t, machine.Suspend(context.Background()))
	assert.Equal(t, models.StudentStatusSuspended, student.Status)

	assert.NoError(t, machine.Reinstate(context.Background()))
	assert.Equal(t, models.StudentStatusEnrolled, student.Status)
}

func TestStudentFSM_GraduateIsTerminal(t *testing.T) {
	student := &models.Student{Status: models.StudentStatusEnrolled}
	machine := NewStudentFSM(student)

	assert.NoError(t, machine.Graduate(context.Background()))
	assert.Equal(t, models.StudentStatusGraduated, student.Status)

	// No event leaves graduated
	assert.Error(t, machine.Suspend(context.Background()))
	assert.Error(t, machine.Withdraw(context.Background()))
	assert.Equal(t, models.StudentStatusGraduated, student.Status)
}

func TestStudentFSM_WithdrawFromSuspended(t *testing.T) {
	student := &models.Student{Status: models.StudentStatusSuspended}
	machine := NewStudentFSM(student)

	assert.NoError(t, machine.Withdraw(context.Background()))
	assert.Equal(t, models.StudentStatusWithdrawn, student.Status)
}

func TestStudentFSM_CannotGraduateWhileSuspended(t *testing.T) {
	student := &models.Student{Status: models.StudentStatusSuspended}
	machine := NewStudentFSM(student)

	assert.Error(t, machine.Graduate(context.Background()))
	assert.Equal(t, models.StudentStatusSuspended, student.Status)
}

func TestStudentFSM_FireUnknownEvent(t *testing.T) {
	student := &models.Student{Status: models.StudentStatusEnrolled}
	machine := NewStudentFSM(student)

	assert.Error(t, machine.Fire(context.Background(), "expel"))
	assert.Equal(t, models.StudentStatusEnrolled, machine.Current())
}
