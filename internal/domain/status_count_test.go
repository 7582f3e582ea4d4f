package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func adsWithStatuses(statuses ...AdStatus) []*Ad {
	ads := make([]*Ad, 0, len(statuses))
	for _, status := range statuses {
		ads = append(ads, &Ad{Status: status})
	}
	return ads
}

func TestCountByStatus(t *testing.T) {
	tests := []struct {
		name string
		ads  []*Ad
		want StatusCounts
	}{
		{
			name: "Contagem por status",
			ads:  adsWithStatuses(AdStatusPending, AdStatusPending, AdStatusReady, AdStatusPosted, AdStatusCancelled),
			want: StatusCounts{All: 5, Pending: 2, Ready: 1, Approved: 0, Posted: 1, Cancelled: 1},
		},
		{
			name: "Status desconhecido entra apenas no total",
			ads:  adsWithStatuses(AdStatusApproved, AdStatus("archived")),
			want: StatusCounts{All: 2, Approved: 1},
		},
		{
			name: "Lista vazia",
			ads:  nil,
			want: StatusCounts{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountByStatus(tt.ads))
		})
	}
}

func TestCountByStatus_BucketsSumToTotalForValidStatuses(t *testing.T) {
	ads := adsWithStatuses(
		AdStatusPending, AdStatusReady, AdStatusApproved, AdStatusPosted,
		AdStatusCancelled, AdStatusReady, AdStatusPosted,
	)

	counts := CountByStatus(ads)

	sum := 0
	for _, count := range counts.ByStatus() {
		sum += count
	}
	assert.Equal(t, len(ads), counts.All)
	assert.Equal(t, counts.All, sum)
}

func TestCountAdsetsByStatus(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	ads := []*Ad{
		newGroupedAd("1", "C1", "Camp 1", "A", "Set A", AdStatusPending, base),
		newGroupedAd("2", "C1", "Camp 1", "A", "Set A", AdStatusPosted, base),
		newGroupedAd("3", "C1", "Camp 1", "B", "Set B", AdStatusReady, base),
		newGroupedAd("4", "C2", "Camp 2", "D", "Set D", AdStatusCancelled, base),
		newGroupedAd("5", "C2", "Camp 2", "", "", AdStatusApproved, base),
	}

	t.Run("Conjuntos contam pelo status agregado", func(t *testing.T) {
		counts := CountAdsetsByStatus(RollupAdsets(ads))
		assert.Equal(t, StatusCounts{All: 3, Ready: 1, Posted: 1, Cancelled: 1}, counts)
	})

	t.Run("Campanhas contam pelo status agregado", func(t *testing.T) {
		counts := CountCampaignsByStatus(RollupCampaigns(ads))
		assert.Equal(t, StatusCounts{All: 2, Approved: 1, Posted: 1}, counts)
	})

	t.Run("Listas vazias", func(t *testing.T) {
		assert.Equal(t, StatusCounts{}, CountAdsetsByStatus(nil))
		assert.Equal(t, StatusCounts{}, CountCampaignsByStatus(nil))
	})
}
