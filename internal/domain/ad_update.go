package domain

import "time"

// AdStatusCallback é o corpo enviado pela automação (n8n) a cada etapa concluída.
// A automação envia os identificadores da plataforma com o sufixo "_ID";
// as variantes em minúsculas também são aceitas.
type AdStatusCallback struct {
	AdID   string `json:"ad_id" validate:"required"`
	Status string `json:"status" validate:"required,oneof=pending ready approved posted cancelled"`
	Step   string `json:"step" validate:"required"`

	CampaignID       *string `json:"campaign_ID"`
	AdsetID          *string `json:"adset_ID"`
	AdCreativeID     *string `json:"ad_creative_ID"`
	PlatformAdID     *string `json:"ad_ID"`
	FacebookImageURL *string `json:"facebook_image_url"`
	AdImageURL       *string `json:"ad_image_url"`
	N8NWorkflowID    *string `json:"n8n_workflow_id"`
	ErrorMessage     *string `json:"error_message"`

	CampaignIDLower   *string `json:"campaign_id"`
	AdsetIDLower      *string `json:"adset_id"`
	AdCreativeIDLower *string `json:"ad_creative_id"`
}

// AdUpdate é a atualização esparsa de um anúncio. Campos nil não são
// alterados; o timestamp da etapa é gravado uma única vez.
type AdUpdate struct {
	ID        string
	AccountID *string
	Status    AdStatus
	// AllowedPrior restringe a atualização aos anúncios que estão em um destes status.
	// Vazio desabilita a guarda.
	AllowedPrior []AdStatus
	Stage        *Stage
	At           time.Time

	CampaignID       *string
	AdsetID          *string
	AdCreativeID     *string
	PlatformAdID     *string
	FacebookImageURL *string
	AdImageURL       *string
	N8NWorkflowID    *string
	ErrorMessage     *string
}

// NewAdUpdate converte o callback em uma atualização esparsa. Campos ausentes
// ou vazios são ignorados.
func NewAdUpdate(callback *AdStatusCallback, at time.Time) *AdUpdate {
	update := &AdUpdate{
		ID:               callback.AdID,
		Status:           AdStatus(callback.Status),
		At:               at,
		CampaignID:       firstSet(callback.CampaignID, callback.CampaignIDLower),
		AdsetID:          firstSet(callback.AdsetID, callback.AdsetIDLower),
		AdCreativeID:     firstSet(callback.AdCreativeID, callback.AdCreativeIDLower),
		PlatformAdID:     firstSet(callback.PlatformAdID),
		FacebookImageURL: firstSet(callback.FacebookImageURL),
		AdImageURL:       firstSet(callback.AdImageURL),
		N8NWorkflowID:    firstSet(callback.N8NWorkflowID),
		ErrorMessage:     firstSet(callback.ErrorMessage),
	}

	if stage, ok := ParseStage(callback.Step); ok {
		update.Stage = &stage
	}

	return update
}

func firstSet(values ...*string) *string {
	for _, value := range values {
		if isSet(value) {
			return value
		}
	}
	return nil
}
