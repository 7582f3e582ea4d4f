package domain

import "time"

type Stage string

const (
	StageContentCreation    Stage = "content_creation"
	StageCampaignCreation   Stage = "campaign_creation"
	StageAdsetCreation      Stage = "adset_creation"
	StageAdCreativeCreation Stage = "adcreative_creation"
	StageApproval           Stage = "approval"
	StageAdPosting          Stage = "ad_posting"
)

type StageState string

const (
	StageStatePending    StageState = "pending"
	StageStateInProgress StageState = "in_progress"
	StageStateCompleted  StageState = "completed"
	StageStateError      StageState = "error"
	StageStateCancelled  StageState = "cancelled"
)

// PipelineStages é a ordem fixa das etapas executadas pela automação
var PipelineStages = []Stage{
	StageContentCreation,
	StageCampaignCreation,
	StageAdsetCreation,
	StageAdCreativeCreation,
	StageApproval,
	StageAdPosting,
}

var stageLabels = map[Stage]string{
	StageContentCreation:    "Content Creation",
	StageCampaignCreation:   "Campaign Creation",
	StageAdsetCreation:      "Ad Set Creation",
	StageAdCreativeCreation: "Ad Creative Creation",
	StageApproval:           "Approval",
	StageAdPosting:          "Ad Posting",
}

// ParseStage reconhece o step informado pelo callback. Steps livres que não
// correspondem a uma etapa conhecida retornam false.
func ParseStage(step string) (Stage, bool) {
	stage := Stage(step)
	_, ok := stageLabels[stage]
	return stage, ok
}

func (s Stage) Label() string {
	return stageLabels[s]
}

// CompletedAt retorna o timestamp de conclusão da etapa no anúncio
func (s Stage) CompletedAt(ad *Ad) *time.Time {
	switch s {
	case StageContentCreation:
		return ad.ContentCreationCompletedAt
	case StageCampaignCreation:
		return ad.CampaignCreationCompletedAt
	case StageAdsetCreation:
		return ad.AdsetCreationCompletedAt
	case StageAdCreativeCreation:
		return ad.AdCreativeCreationCompletedAt
	case StageApproval:
		return ad.ApprovalCompletedAt
	case StageAdPosting:
		return ad.AdPostingCompletedAt
	}
	return nil
}

// Column é a coluna de timestamp da etapa na tabela de anúncios
func (s Stage) Column() string {
	return string(s) + "_completed_at"
}

type StageProgress struct {
	Key         Stage      `json:"key"`
	Label       string     `json:"label"`
	State       StageState `json:"state"`
	CompletedAt *time.Time `json:"completed_at"`
}

// TrackStages deriva o estado de cada etapa do pipeline para a tela de acompanhamento
func TrackStages(ad *Ad) []StageProgress {
	stages := make([]StageProgress, 0, len(PipelineStages))

	previousCompleted := true
	for _, stage := range PipelineStages {
		completedAt := stage.CompletedAt(ad)

		var state StageState
		switch {
		case completedAt != nil:
			state = StageStateCompleted
		case ad.Status == AdStatusCancelled:
			state = StageStateCancelled
		case isSet(ad.ErrorMessage):
			state = StageStateError
		case previousCompleted:
			state = StageStateInProgress
		default:
			state = StageStatePending
		}

		stages = append(stages, StageProgress{
			Key:         stage,
			Label:       stage.Label(),
			State:       state,
			CompletedAt: completedAt,
		})

		previousCompleted = completedAt != nil
	}

	return stages
}
