package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func f(v float64) *float64 { return &v }

func TestScore_ComputeAverage_AllComponents(t *testing.T) {
	score := &Score{
		OralScore:  f(8),
		QuizScore:  f(7),
		TestScore:  f(6),
		FinalScore: f(9),
	}
	score.ComputeAverage()

	// (8*1 + 7*1 + 6*2 + 9*3) / 7 = 54/7 = 7.714...
	assert.NotNil(t, score.Average)
	assert.Equal(t, 7.71, *score.Average)
}

func TestScore_ComputeAverage_PartialComponents(t *testing.T) {
	score := &Score{
		TestScore:  f(6),
		FinalScore: f(9),
	}
	score.ComputeAverage()

	// (6*2 + 9*3) / 5 = 39/5 = 7.8
	assert.NotNil(t, score.Average)
	assert.Equal(t, 7.8, *score.Average)
}

func TestScore_ComputeAverage_NoComponents(t *testing.T) {
	score := &Score{Average: f(5)}
	score.ComputeAverage()
	assert.Nil(t, score.Average)
}

func TestScore_ComputeAverage_SingleComponent(t *testing.T) {
	score := &Score{OralScore: f(10)}
	score.ComputeAverage()
	assert.Equal(t, 10.0, *score.Average)
}
