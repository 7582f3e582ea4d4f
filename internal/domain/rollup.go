package domain

import "time"

const (
	defaultOptimizationGoal  = "REACH"
	defaultCampaignObjective = "unknown"
)

// AdsetSummary é a projeção de um conjunto de anúncios. Não é persistida,
// é recalculada a cada leitura a partir dos anúncios do grupo.
type AdsetSummary struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	OptimizationGoal string    `json:"optimization_goal"`
	CampaignID       *string   `json:"campaign_id"`
	CampaignName     *string   `json:"campaign_name"`
	Status           AdStatus  `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	AdCount          int       `json:"ad_count"`
}

type CampaignSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Objective string    `json:"objective"`
	Status    AdStatus  `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	AdCount   int       `json:"ad_count"`
}

// AdRef é um anúncio membro dentro das telas de detalhe
type AdRef struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    AdStatus  `json:"status"`
	Progress  int       `json:"progress"`
	CreatedAt time.Time `json:"created_at"`
}

type AdsetDetail struct {
	*AdsetSummary
	Ads []*AdRef `json:"ads"`
}

type CampaignDetail struct {
	*CampaignSummary
	Adsets []*AdsetDetail `json:"adsets"`
	Ads    []*AdRef       `json:"ads"`
}

func newAdRef(ad *Ad) *AdRef {
	return &AdRef{
		ID:        ad.ID,
		Name:      ad.DisplayName(),
		Status:    ad.Status,
		Progress:  ad.Progress(),
		CreatedAt: ad.CreatedAt,
	}
}

// promoteStatus só substitui o status agregado por um de rank estritamente maior
func promoteStatus(current, candidate AdStatus) AdStatus {
	if candidate.Rank() > current.Rank() {
		return candidate
	}
	return current
}

// AggregateStatus retorna o status mais avançado do grupo. Um grupo só
// fica cancelado quando todos os membros estão cancelados.
func AggregateStatus(ads []*Ad) AdStatus {
	if len(ads) == 0 {
		return ""
	}

	status := ads[0].Status
	for _, ad := range ads[1:] {
		status = promoteStatus(status, ad.Status)
	}
	return status
}

// RollupAdsets agrupa os anúncios por conjunto. Nome, meta de otimização,
// campanha e data de criação vêm do primeiro anúncio visto do grupo; o status
// vem do membro mais avançado. A saída mantém a ordem do primeiro aparecimento.
func RollupAdsets(ads []*Ad) []*AdsetSummary {
	summaries := make([]*AdsetSummary, 0)
	byID := make(map[string]*AdsetSummary)

	for _, ad := range ads {
		if ad == nil || !isSet(ad.AdsetID) || !isSet(ad.AdsetName) {
			continue
		}

		summary, exists := byID[*ad.AdsetID]
		if !exists {
			summary = &AdsetSummary{
				ID:               *ad.AdsetID,
				Name:             *ad.AdsetName,
				OptimizationGoal: valueOrDefault(ad.AdsetOptimizationGoal, defaultOptimizationGoal),
				CampaignID:       ad.CampaignID,
				CampaignName:     ad.CampaignName,
				Status:           ad.Status,
				CreatedAt:        ad.CreatedAt,
				AdCount:          1,
			}
			byID[summary.ID] = summary
			summaries = append(summaries, summary)
			continue
		}

		summary.AdCount++
		summary.Status = promoteStatus(summary.Status, ad.Status)
	}

	return summaries
}

// RollupCampaigns agrupa os anúncios por campanha com as mesmas regras de RollupAdsets
func RollupCampaigns(ads []*Ad) []*CampaignSummary {
	summaries := make([]*CampaignSummary, 0)
	byID := make(map[string]*CampaignSummary)

	for _, ad := range ads {
		if ad == nil || !isSet(ad.CampaignID) || !isSet(ad.CampaignName) {
			continue
		}

		summary, exists := byID[*ad.CampaignID]
		if !exists {
			summary = &CampaignSummary{
				ID:        *ad.CampaignID,
				Name:      *ad.CampaignName,
				Objective: valueOrDefault(ad.CampaignObjective, defaultCampaignObjective),
				Status:    ad.Status,
				CreatedAt: ad.CreatedAt,
				AdCount:   1,
			}
			byID[summary.ID] = summary
			summaries = append(summaries, summary)
			continue
		}

		summary.AdCount++
		summary.Status = promoteStatus(summary.Status, ad.Status)
	}

	return summaries
}

// summarizeAdset resume um conjunto a partir de todos os seus membros. Ao
// contrário da listagem, membros sem nome também contam.
func summarizeAdset(adsetID string, members []*Ad) *AdsetSummary {
	seed := members[0]
	return &AdsetSummary{
		ID:               adsetID,
		Name:             firstName(members, func(ad *Ad) *string { return ad.AdsetName }),
		OptimizationGoal: valueOrDefault(seed.AdsetOptimizationGoal, defaultOptimizationGoal),
		CampaignID:       seed.CampaignID,
		CampaignName:     seed.CampaignName,
		Status:           AggregateStatus(members),
		CreatedAt:        seed.CreatedAt,
		AdCount:          len(members),
	}
}

// firstName retorna o primeiro nome preenchido entre os membros
func firstName(members []*Ad, name func(*Ad) *string) string {
	for _, ad := range members {
		if value := name(ad); isSet(value) {
			return *value
		}
	}
	return ""
}

// BuildAdsetDetail monta o detalhe de um conjunto a partir dos seus anúncios,
// já ordenados pela consulta. Retorna nil quando nenhum anúncio pertence ao conjunto.
func BuildAdsetDetail(adsetID string, ads []*Ad) *AdsetDetail {
	members := make([]*Ad, 0, len(ads))
	for _, ad := range ads {
		if ad != nil && ad.AdsetID != nil && *ad.AdsetID == adsetID {
			members = append(members, ad)
		}
	}

	if len(members) == 0 {
		return nil
	}

	detail := &AdsetDetail{
		AdsetSummary: summarizeAdset(adsetID, members),
		Ads:          make([]*AdRef, 0, len(members)),
	}
	for _, ad := range members {
		detail.Ads = append(detail.Ads, newAdRef(ad))
	}

	return detail
}

// BuildCampaignDetail monta o detalhe de uma campanha com os conjuntos aninhados,
// cada um com seus anúncios. Contagem e status consideram todos os membros.
func BuildCampaignDetail(campaignID string, ads []*Ad) *CampaignDetail {
	members := make([]*Ad, 0, len(ads))
	for _, ad := range ads {
		if ad != nil && ad.CampaignID != nil && *ad.CampaignID == campaignID {
			members = append(members, ad)
		}
	}

	if len(members) == 0 {
		return nil
	}

	seed := members[0]
	detail := &CampaignDetail{
		CampaignSummary: &CampaignSummary{
			ID:        campaignID,
			Name:      firstName(members, func(ad *Ad) *string { return ad.CampaignName }),
			Objective: valueOrDefault(seed.CampaignObjective, defaultCampaignObjective),
			Status:    AggregateStatus(members),
			CreatedAt: seed.CreatedAt,
			AdCount:   len(members),
		},
		Adsets: make([]*AdsetDetail, 0),
		Ads:    make([]*AdRef, 0, len(members)),
	}

	adsetOrder := make([]string, 0)
	adsetMembers := make(map[string][]*Ad)
	refs := make(map[*Ad]*AdRef, len(members))

	for _, ad := range members {
		ref := newAdRef(ad)
		refs[ad] = ref
		detail.Ads = append(detail.Ads, ref)

		if isSet(ad.AdsetID) {
			if _, seen := adsetMembers[*ad.AdsetID]; !seen {
				adsetOrder = append(adsetOrder, *ad.AdsetID)
			}
			adsetMembers[*ad.AdsetID] = append(adsetMembers[*ad.AdsetID], ad)
		}
	}

	for _, adsetID := range adsetOrder {
		group := adsetMembers[adsetID]
		nested := &AdsetDetail{AdsetSummary: summarizeAdset(adsetID, group), Ads: make([]*AdRef, 0, len(group))}
		for _, ad := range group {
			nested.Ads = append(nested.Ads, refs[ad])
		}
		detail.Adsets = append(detail.Adsets, nested)
	}

	return detail
}

func valueOrDefault(value *string, fallback string) string {
	if isSet(value) {
		return *value
	}
	return fallback
}
