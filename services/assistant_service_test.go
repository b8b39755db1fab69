package services

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"crm-assistant/contract"
	"crm-assistant/intent"
	"crm-assistant/kb"
	"crm-assistant/leads"
	"crm-assistant/mocks"
	"crm-assistant/observability"
	"crm-assistant/response"
	"crm-assistant/vector"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type staticFeatures struct {
	features leads.Features
	known    bool
}

func (s staticFeatures) FeaturesFor(_ context.Context, _ string) (leads.Features, bool) {
	return s.features, s.known
}

func newTestService(t *testing.T, sessions *mocks.MockISessionRepository, transcripts *mocks.MockITranscriptIndex, features LeadFeatureSource) *AssistantService {
	t.Helper()
	log := slog.Default()
	overrides, err := intent.DefaultOverrides()
	require.NoError(t, err)

	return NewAssistantService(
		log,
		intent.NewClassifier(log, overrides),
		response.NewGenerator(response.DefaultTemplates(), log),
		kb.NewRetriever(kb.DefaultArticles(), vector.DefaultDim, log),
		overrides,
		sessions,
		transcripts,
		observability.NewStatsManager(log),
		features,
		10,
	)
}

func TestAssistantService_HandleMessage_DeleteContact(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessions := mocks.NewMockISessionRepository(ctrl)
	transcripts := mocks.NewMockITranscriptIndex(ctrl)
	// One user turn plus one assistant turn.
	sessions.EXPECT().Append(gomock.Any()).Return(nil).Times(2)
	transcripts.EXPECT().Index(gomock.Any()).Return(nil).Times(2)

	service := newTestService(t, sessions, transcripts, nil)

	resp, err := service.HandleMessage(context.Background(), contract.ChatRequest{
		Content:       "I want to delete a contact",
		SessionID:     "s-1",
		UserID:        "u-1",
		Authenticated: true,
	})
	req.NoError(err)
	req.Equal("delete_contact", resp.Intent)
	req.NotEmpty(resp.Content)
	req.NotEmpty(resp.ID)
	req.Equal(3, resp.Cluster)
	req.Equal([]string{"open_contacts"}, resp.Actions)
	req.Greater(resp.Confidence, 0)
	req.Nil(resp.LeadScore)
}

func TestAssistantService_HandleMessage_InvalidRequest(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestService(t,
		mocks.NewMockISessionRepository(ctrl),
		mocks.NewMockITranscriptIndex(ctrl),
		nil,
	)

	_, err := service.HandleMessage(context.Background(), contract.ChatRequest{
		Content: "hello",
		// SessionID and UserID missing
	})
	req.Error(err)

	var boundary contract.Error
	req.ErrorAs(err, &boundary)
	req.Equal("invalid_request", boundary.Code)
}

func TestAssistantService_HandleMessage_StorageFailureStillReplies(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessions := mocks.NewMockISessionRepository(ctrl)
	transcripts := mocks.NewMockITranscriptIndex(ctrl)
	sessions.EXPECT().Append(gomock.Any()).Return(fmt.Errorf("disk full")).Times(2)
	// Indexing skipped when the append already failed.

	service := newTestService(t, sessions, transcripts, nil)

	resp, err := service.HandleMessage(context.Background(), contract.ChatRequest{
		Content:   "show me my tasks",
		SessionID: "s-1",
		UserID:    "u-1",
	})
	req.NoError(err)
	req.NotEmpty(resp.Content)
}

func TestAssistantService_HandleMessage_LeadScoreForAuthenticated(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessions := mocks.NewMockISessionRepository(ctrl)
	transcripts := mocks.NewMockITranscriptIndex(ctrl)
	sessions.EXPECT().Append(gomock.Any()).Return(nil).AnyTimes()
	transcripts.EXPECT().Index(gomock.Any()).Return(nil).AnyTimes()

	features := staticFeatures{
		features: leads.Features{Engagement: 80, CompanySize: 4, BudgetFit: 75, Authority: 70, NeedUrgency: 80, Timeline: 70},
		known:    true,
	}
	service := newTestService(t, sessions, transcripts, features)

	authenticated, err := service.HandleMessage(context.Background(), contract.ChatRequest{
		Content:       "create a new deal",
		SessionID:     "s-1",
		UserID:        "u-1",
		Authenticated: true,
	})
	req.NoError(err)
	req.NotNil(authenticated.LeadScore)
	req.Greater(*authenticated.LeadScore, 0.0)

	anonymous, err := service.HandleMessage(context.Background(), contract.ChatRequest{
		Content:   "create a new deal",
		SessionID: "s-1",
		UserID:    "u-1",
	})
	req.NoError(err)
	req.Nil(anonymous.LeadScore)
}

func TestAssistantService_HandleMessage_ErrorOverride(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessions := mocks.NewMockISessionRepository(ctrl)
	transcripts := mocks.NewMockITranscriptIndex(ctrl)
	sessions.EXPECT().Append(gomock.Any()).Return(nil).AnyTimes()
	transcripts.EXPECT().Index(gomock.Any()).Return(nil).AnyTimes()

	service := newTestService(t, sessions, transcripts, nil)

	resp, err := service.HandleMessage(context.Background(), contract.ChatRequest{
		Content:   "the sync is not working",
		SessionID: "s-1",
		UserID:    "u-1",
	})
	req.NoError(err)
	req.Equal(intent.IntentError, resp.Intent)
	req.Equal(95, resp.Confidence)
	req.Equal([]string{"open_support"}, resp.Actions)
	// Troubleshooting article should surface alongside the apology.
	req.NotEmpty(resp.Articles)
}

func TestAssistantService_SearchTranscripts(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessions := mocks.NewMockISessionRepository(ctrl)
	transcripts := mocks.NewMockITranscriptIndex(ctrl)
	transcripts.EXPECT().
		Search(gomock.Any(), "s-1", "pipeline", 10).
		Return(nil, nil).
		Times(1)

	service := newTestService(t, sessions, transcripts, nil)
	_, err := service.SearchTranscripts(context.Background(), "s-1", "pipeline")
	req.NoError(err)
}
