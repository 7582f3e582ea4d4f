package domain

// Percentuais exibidos para cada etapa concluída do pipeline. Criação de
// conteúdo e de campanha contam juntas como metade do progresso.
const (
	progressNone       = 0
	progressContent    = 17
	progressCampaign   = 50
	progressAdset      = 67
	progressAdCreative = 83
	progressComplete   = 100
)

// EstimateProgress calcula o percentual de conclusão de um anúncio a partir
// dos campos já preenchidos. A primeira regra que casar vence.
func EstimateProgress(ad *Ad) int {
	if ad == nil {
		return progressNone
	}

	switch {
	case ad.Status == AdStatusPosted, ad.Status == AdStatusApproved:
		return progressComplete
	case isSet(ad.PlatformAdID):
		return progressComplete
	}

	if ad.Status != AdStatusPending && ad.Status != AdStatusReady {
		return progressNone
	}

	switch {
	case isSet(ad.AdCreativeID):
		return progressAdCreative
	case isSet(ad.AdsetID):
		return progressAdset
	case isSet(ad.CampaignID):
		return progressCampaign
	case isSet(ad.ImageURL):
		return progressContent
	default:
		return progressNone
	}
}
