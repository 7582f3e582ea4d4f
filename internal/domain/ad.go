package domain

import (
	"fmt"
	"time"
)

type AdStatus string

const (
	AdStatusPending   AdStatus = "pending"
	AdStatusReady     AdStatus = "ready"
	AdStatusApproved  AdStatus = "approved"
	AdStatusPosted    AdStatus = "posted"
	AdStatusCancelled AdStatus = "cancelled"
)

// statusRank é a única tabela de ordenação de status. Cancelled e valores
// desconhecidos ficam fora do ranking (rank 0).
var statusRank = map[AdStatus]int{
	AdStatusPending:  1,
	AdStatusReady:    2,
	AdStatusApproved: 3,
	AdStatusPosted:   4,
}

// AllAdStatuses retorna os status válidos na ordem de avanço do pipeline
func AllAdStatuses() []AdStatus {
	return []AdStatus{
		AdStatusPending,
		AdStatusReady,
		AdStatusApproved,
		AdStatusPosted,
		AdStatusCancelled,
	}
}

func (s AdStatus) Rank() int {
	return statusRank[s]
}

func (s AdStatus) IsValid() bool {
	switch s {
	case AdStatusPending, AdStatusReady, AdStatusApproved, AdStatusPosted, AdStatusCancelled:
		return true
	}
	return false
}

// IsTerminal indica os status finais por convenção
func (s AdStatus) IsTerminal() bool {
	return s == AdStatusPosted || s == AdStatusCancelled
}

// CanTransitionTo define a guarda de ordenação aplicada aos callbacks.
// Um anúncio nunca volta para um status de rank menor, cancelled é final
// e um anúncio publicado não pode ser cancelado.
func (s AdStatus) CanTransitionTo(next AdStatus) bool {
	if !next.IsValid() {
		return false
	}

	if s == AdStatusCancelled {
		return next == AdStatusCancelled
	}

	if next == AdStatusCancelled {
		return s != AdStatusPosted
	}

	return next.Rank() >= s.Rank()
}

// AllowedPriorStatuses lista os status a partir dos quais é possível chegar em next
func AllowedPriorStatuses(next AdStatus) []AdStatus {
	prior := make([]AdStatus, 0, len(statusRank)+1)
	for _, status := range AllAdStatuses() {
		if status.CanTransitionTo(next) {
			prior = append(prior, status)
		}
	}
	return prior
}

func ParseAdStatus(value string) (AdStatus, error) {
	status := AdStatus(value)
	if !status.IsValid() {
		return "", fmt.Errorf("status de anúncio inválido: %q", value)
	}
	return status, nil
}

// Ad é o registro de um anúncio criado pelo pipeline de automação.
// Adset e Campaign são apenas projeções calculadas a partir destes registros.
type Ad struct {
	ID                    string   `json:"id"`
	AdAccountID           string   `json:"ad_account_id"`
	Filename              *string  `json:"filename"`
	ImageURL              *string  `json:"image_url"`
	Hook                  *string  `json:"hook"`
	CallToActionType      *string  `json:"call_to_action_type"`
	Message               *string  `json:"message"`
	FullMessage           *string  `json:"full_message"`
	CTAText               *string  `json:"cta_text"`
	CampaignID            *string  `json:"campaign_id"`
	CampaignName          *string  `json:"campaign_name"`
	CampaignObjective     *string  `json:"campaign_objective"`
	AdsetID               *string  `json:"adset_id"`
	AdsetName             *string  `json:"adset_name"`
	AdsetOptimizationGoal *string  `json:"adset_optimization_goal"`
	ImageHash             *string  `json:"image_hash"`
	AdCreativeID          *string  `json:"ad_creative_id"`
	AdName                *string  `json:"ad_name"`
	PlatformAdID          *string  `json:"ad_id"`
	FacebookImageURL      *string  `json:"facebook_image_url"`
	AdImageURL            *string  `json:"ad_image_url"`
	Status                AdStatus `json:"status"`
	N8NWorkflowID         *string  `json:"n8n_workflow_id"`
	ErrorMessage          *string  `json:"error_message"`

	ContentCreationCompletedAt    *time.Time `json:"content_creation_completed_at"`
	CampaignCreationCompletedAt   *time.Time `json:"campaign_creation_completed_at"`
	AdsetCreationCompletedAt      *time.Time `json:"adset_creation_completed_at"`
	AdCreativeCreationCompletedAt *time.Time `json:"adcreative_creation_completed_at"`
	ApprovalCompletedAt           *time.Time `json:"approval_completed_at"`
	AdPostingCompletedAt          *time.Time `json:"ad_posting_completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const untitledAdName = "Untitled Ad"

// DisplayName retorna o nome do anúncio ou o nome padrão
func (a *Ad) DisplayName() string {
	if isSet(a.AdName) {
		return *a.AdName
	}
	return untitledAdName
}

func (a *Ad) Progress() int {
	return EstimateProgress(a)
}

// AdListItem é a representação resumida usada nas listagens
type AdListItem struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Status       AdStatus  `json:"status"`
	Progress     int       `json:"progress"`
	CampaignName *string   `json:"campaign_name"`
	AdsetName    *string   `json:"adset_name"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewAdListItem(ad *Ad) *AdListItem {
	return &AdListItem{
		ID:           ad.ID,
		Name:         ad.DisplayName(),
		Status:       ad.Status,
		Progress:     ad.Progress(),
		CampaignName: ad.CampaignName,
		AdsetName:    ad.AdsetName,
		CreatedAt:    ad.CreatedAt,
	}
}

// AdDetail é o anúncio completo com os valores derivados para a tela de acompanhamento
type AdDetail struct {
	*Ad
	Progress int             `json:"progress"`
	Stages   []StageProgress `json:"stages"`
}

func NewAdDetail(ad *Ad) *AdDetail {
	return &AdDetail{
		Ad:       ad,
		Progress: ad.Progress(),
		Stages:   TrackStages(ad),
	}
}

// AdFilter filtra a listagem de anúncios de uma conta
type AdFilter struct {
	AccountID  string
	Status     *AdStatus
	CampaignID *string
	AdsetID    *string
	// RequireCampaign e RequireAdset restringem a anúncios já agrupados
	RequireCampaign bool
	RequireAdset    bool
	Limit           uint64
}

func isSet(value *string) bool {
	return value != nil && *value != ""
}
