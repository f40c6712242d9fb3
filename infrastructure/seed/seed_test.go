package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/campaign-leads-api/internal/domain"
)

func TestLoad_Embedded(t *testing.T) {
	dataset, err := Load("")
	require.NoError(t, err)

	assert.Len(t, dataset.Campaigns, 3)
	assert.Len(t, dataset.Leads, 3)
	assert.Len(t, dataset.Reports, 1)
	assert.Len(t, dataset.Uploads, 3)
	assert.Len(t, dataset.History, 7)

	first := dataset.Campaigns[0]
	assert.Equal(t, domain.PlatformLemlist, first.Platform)
	assert.Equal(t, 5000, first.Metrics.Sent)
	assert.Equal(t, 23, first.Metrics.Conversions)
	assert.Equal(t, 2024, first.DateCreated.Year())
	assert.Equal(t, 0, dataset.Campaigns[1].Metrics.Sent)

	marie := dataset.Leads[0]
	require.NotNil(t, marie.FirstName)
	assert.Equal(t, "Marie Dupont", marie.FullName())
	assert.Len(t, marie.Interactions, 4)
	require.NotNil(t, marie.Interactions[3].Details)
	assert.Equal(t, "Intéressée par une démo", *marie.Interactions[3].Details)

	assert.Nil(t, dataset.Uploads[2].CampaignID)
	assert.Equal(t, domain.UploadStatusProcessing, dataset.Uploads[2].Status)
}

func TestLoad_HistoryDetails(t *testing.T) {
	dataset, err := Load("")
	require.NoError(t, err)

	upload, ok := dataset.History[0].Details.(domain.UploadDetails)
	require.True(t, ok)
	assert.Equal(t, "2.3 MB", upload.FileSize)
	assert.Equal(t, 1425, upload.RecordsProcessed)

	report, ok := dataset.History[2].Details.(domain.ReportDetails)
	require.True(t, ok)
	assert.Equal(t, 12, report.Pages)

	campaign, ok := dataset.History[4].Details.(domain.CampaignDetails)
	require.True(t, ok)
	assert.Equal(t, 2500, campaign.TargetAudience)

	assert.Equal(t, domain.HistoryStatusError, dataset.History[6].Status)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	content := `
campaigns:
  - id: c1
    name: Brevo Newsletter
    platform: brevo
    status: paused
    date_created: 2025-01-01
    last_updated: 2025-01-02
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	dataset, err := Load(path)
	require.NoError(t, err)
	require.Len(t, dataset.Campaigns, 1)
	assert.Equal(t, domain.CampaignStatusPaused, dataset.Campaigns[0].Status)
	assert.Empty(t, dataset.Leads)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "plataforma inválida",
			content: "campaigns:\n  - {id: a, platform: tiktok, status: active}\n",
		},
		{
			name:    "id de lead repetido",
			content: "leads:\n  - {id: a, score: hot, status: new}\n  - {id: a, score: cold, status: new}\n",
		},
		{
			name:    "tipo de histórico desconhecido",
			content: "history:\n  - {id: a, type: export, title: x}\n",
		},
		{
			name:    "yaml malformado",
			content: "campaigns: [",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
