package domain

// StatusCounts alimenta os cards de resumo do painel
type StatusCounts struct {
	All       int `json:"all"`
	Pending   int `json:"pending"`
	Ready     int `json:"ready"`
	Approved  int `json:"approved"`
	Posted    int `json:"posted"`
	Cancelled int `json:"cancelled"`
}

// CountByStatus conta os anúncios por status. Um status fora do conjunto
// conhecido entra apenas no total.
func CountByStatus(ads []*Ad) StatusCounts {
	statuses := make([]AdStatus, 0, len(ads))
	for _, ad := range ads {
		if ad != nil {
			statuses = append(statuses, ad.Status)
		}
	}

	counts := countStatuses(statuses)
	counts.All = len(ads)
	return counts
}

// CountAdsetsByStatus conta os conjuntos pelo status agregado de cada um
func CountAdsetsByStatus(adsets []*AdsetSummary) StatusCounts {
	statuses := make([]AdStatus, 0, len(adsets))
	for _, adset := range adsets {
		if adset != nil {
			statuses = append(statuses, adset.Status)
		}
	}
	return countStatuses(statuses)
}

// CountCampaignsByStatus conta as campanhas pelo status agregado de cada uma
func CountCampaignsByStatus(campaigns []*CampaignSummary) StatusCounts {
	statuses := make([]AdStatus, 0, len(campaigns))
	for _, campaign := range campaigns {
		if campaign != nil {
			statuses = append(statuses, campaign.Status)
		}
	}
	return countStatuses(statuses)
}

func countStatuses(statuses []AdStatus) StatusCounts {
	counts := StatusCounts{All: len(statuses)}

	for _, status := range statuses {
		switch status {
		case AdStatusPending:
			counts.Pending++
		case AdStatusReady:
			counts.Ready++
		case AdStatusApproved:
			counts.Approved++
		case AdStatusPosted:
			counts.Posted++
		case AdStatusCancelled:
			counts.Cancelled++
		}
	}

	return counts
}

// ByStatus devolve os contadores nomeados indexados pelo status
func (c StatusCounts) ByStatus() map[AdStatus]int {
	return map[AdStatus]int{
		AdStatusPending:   c.Pending,
		AdStatusReady:     c.Ready,
		AdStatusApproved:  c.Approved,
		AdStatusPosted:    c.Posted,
		AdStatusCancelled: c.Cancelled,
	}
}
