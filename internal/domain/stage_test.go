package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stageStates(stages []StageProgress) []StageState {
	states := make([]StageState, 0, len(stages))
	for _, stage := range stages {
		states = append(states, stage.State)
	}
	return states
}

func TestTrackStages(t *testing.T) {
	done := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ad   *Ad
		want []StageState
	}{
		{
			name: "Anúncio recém criado - primeira etapa em andamento",
			ad:   &Ad{Status: AdStatusPending},
			want: []StageState{
				StageStateInProgress, StageStatePending, StageStatePending,
				StageStatePending, StageStatePending, StageStatePending,
			},
		},
		{
			name: "Conteúdo e campanha concluídos",
			ad: &Ad{
				Status:                      AdStatusPending,
				ContentCreationCompletedAt:  &done,
				CampaignCreationCompletedAt: &done,
			},
			want: []StageState{
				StageStateCompleted, StageStateCompleted, StageStateInProgress,
				StageStatePending, StageStatePending, StageStatePending,
			},
		},
		{
			name: "Erro reportado pela automação",
			ad: &Ad{
				Status:                     AdStatusPending,
				ContentCreationCompletedAt: &done,
				ErrorMessage:               strPtr("adset creation failed"),
			},
			want: []StageState{
				StageStateCompleted, StageStateError, StageStateError,
				StageStateError, StageStateError, StageStateError,
			},
		},
		{
			name: "Cancelado mantém etapas concluídas",
			ad: &Ad{
				Status:                     AdStatusCancelled,
				ContentCreationCompletedAt: &done,
				ErrorMessage:               strPtr("ignored"),
			},
			want: []StageState{
				StageStateCompleted, StageStateCancelled, StageStateCancelled,
				StageStateCancelled, StageStateCancelled, StageStateCancelled,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stages := TrackStages(tt.ad)
			require.Len(t, stages, len(PipelineStages))
			assert.Equal(t, tt.want, stageStates(stages))
		})
	}
}

func TestParseStage(t *testing.T) {
	stage, ok := ParseStage("adcreative_creation")
	assert.True(t, ok)
	assert.Equal(t, StageAdCreativeCreation, stage)
	assert.Equal(t, "adcreative_creation_completed_at", stage.Column())
	assert.Equal(t, "Ad Creative Creation", stage.Label())

	_, ok = ParseStage("image_generation")
	assert.False(t, ok)
}
