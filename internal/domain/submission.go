package domain

const (
	CreationNew      = "new"
	CreationExisting = "existing"
	CreationReuse    = "reuse"
)

// CampaignSubmission é o pedido de criação de campanha / conjunto / criativo
// encaminhado para a automação. As chaves seguem o contrato do webhook.
type CampaignSubmission struct {
	CampaignCreation       string   `json:"campaign_creation" validate:"required,oneof=new existing"`
	NewAdCampaignName      *string  `json:"new_ad_campaign_name" validate:"required_if=CampaignCreation new"`
	AdCampaignObjective    *string  `json:"ad_campaign_objective"`
	AdSetName              *string  `json:"ad_set_name" validate:"required_if=AdSetCreation new"`
	TargetAudience         *string  `json:"target_audience"`
	TargetCountries        *string  `json:"target_country_or_countries"`
	BudgetPreference       *string  `json:"budget_preference"`
	CampaignBudget         *float64 `json:"campaign_budget" validate:"omitempty,gte=0"`
	AdPostingPlatform      string   `json:"ad_posting_platform" validate:"required"`
	AdDescription          string   `json:"ad_description" validate:"required"`
	AdHeadline             string   `json:"ad_headline" validate:"required"`
	CampaignDuration       *string  `json:"campaign_duration"`
	WebsiteURL             *string  `json:"website_url" validate:"omitempty,url"`
	AdditionalNotes        *string  `json:"additional_notes"`
	Email                  *string  `json:"email" validate:"omitempty,email"`
	AdvertReadyMediaID     *string  `json:"Advert_ready_media_id"`
	ClientBusinessWebsite  *string  `json:"Client_business_website_page"`
	AdSetCreation          string   `json:"ad_set_creation" validate:"required,oneof=new existing"`
	ExistingAdCampaignName *string  `json:"existing_ad_campaign_name"`
	AdCampaignID           *string  `json:"ad_campaign_id" validate:"required_if=CampaignCreation existing"`
	ExistingAdSetName      *string  `json:"existing_ad_set_name"`
	AdSetID                *string  `json:"ad_set_id" validate:"required_if=AdSetCreation existing"`
	AdCreativeCreation     string   `json:"ad_creative_creation" validate:"required,oneof=new reuse"`
	ExistingAdCreativeName *string  `json:"existing_ad_creative_name"`
	AdCreativeID           *string  `json:"ad_creative_id" validate:"required_if=AdCreativeCreation reuse"`
	SubmittedMediaFile     *string  `json:"submitteded_media_file"`
}

// CampaignName retorna o nome da campanha nova ou reutilizada
func (s *CampaignSubmission) CampaignName() *string {
	if s.CampaignCreation == CreationExisting {
		return firstSet(s.ExistingAdCampaignName)
	}
	return firstSet(s.NewAdCampaignName)
}

func (s *CampaignSubmission) AdsetName() *string {
	if s.AdSetCreation == CreationExisting {
		return firstSet(s.ExistingAdSetName)
	}
	return firstSet(s.AdSetName)
}

// WorkflowRequest é o corpo enviado ao webhook da automação
type WorkflowRequest struct {
	*CampaignSubmission
	AdID        string `json:"ad_id"`
	AdAccountID string `json:"ad_account_id"`
	CallbackURL string `json:"callback_url"`
}

// SubmissionResult é a resposta do envio do pedido de campanha
type SubmissionResult struct {
	Ad       *Ad `json:"ad"`
	Workflow any `json:"workflow"`
}
