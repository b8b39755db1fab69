package services

import (
	"context"
	"log/slog"
	"math"
	"time"

	"crm-assistant/cluster"
	"crm-assistant/contract"
	"crm-assistant/domain"
	"crm-assistant/intent"
	"crm-assistant/kb"
	"crm-assistant/leads"
	"crm-assistant/observability"
	"crm-assistant/repositories"
	"crm-assistant/response"

	"github.com/abadojack/whatlanggo"
	"github.com/google/uuid"
)

// LeadFeatureSource resolves the scoring features for an authenticated
// user. The second return is false when the CRM has no profile yet.
type LeadFeatureSource interface {
	FeaturesFor(ctx context.Context, userID string) (leads.Features, bool)
}

// AssistantService runs the full turn pipeline: classify, generate,
// retrieve articles, bucket, score, persist. Storage failures never
// block the reply; the user still gets an answer.
type AssistantService struct {
	log         *slog.Logger
	classifier  *intent.Classifier
	generator   *response.Generator
	retriever   *kb.Retriever
	bucket      cluster.CategoryBucket
	overrides   []intent.OverrideRule
	sessions    repositories.ISessionRepository
	transcripts repositories.ITranscriptIndex
	stats       *observability.StatsManager
	leadModel   leads.Model
	features    LeadFeatureSource
	searchTop   int
}

func NewAssistantService(
	log *slog.Logger,
	classifier *intent.Classifier,
	generator *response.Generator,
	retriever *kb.Retriever,
	overrides []intent.OverrideRule,
	sessions repositories.ISessionRepository,
	transcripts repositories.ITranscriptIndex,
	stats *observability.StatsManager,
	features LeadFeatureSource,
	searchTop int,
) *AssistantService {
	classifier.TrainOnce(intent.DefaultCorpus())
	return &AssistantService{
		log:         log,
		classifier:  classifier,
		generator:   generator,
		retriever:   retriever,
		bucket:      cluster.NewCategoryBucket(),
		overrides:   overrides,
		sessions:    sessions,
		transcripts: transcripts,
		stats:       stats,
		leadModel:   leads.NewModel(),
		features:    features,
		searchTop:   searchTop,
	}
}

func (s *AssistantService) HandleMessage(ctx context.Context, request contract.ChatRequest) (contract.ChatResponse, error) {
	if err := request.Validate(); err != nil {
		return contract.ChatResponse{}, err
	}

	now := time.Now().UTC()
	info := whatlanggo.Detect(request.Content)
	langCode := info.Lang.Iso6391()

	prediction := s.classifier.Predict(request.Content)
	reply := s.generator.Generate(prediction, request.Content)
	articles := s.retriever.Search(request.Content)
	bucketID := s.bucket.Lookup(prediction.Intent)

	s.stats.IncrMessagesProcessed()
	s.stats.IncrKBQueries()
	s.stats.AddExchange(request.SessionID, prediction.Intent)
	if prediction.Intent == intent.IntentFallback {
		s.stats.IncrFallbacks()
	}
	for _, rule := range s.overrides {
		if rule.Intent == prediction.Intent && rule.Matches(request.Content) {
			s.stats.IncrOverridesFired()
			break
		}
	}

	resp := contract.ChatResponse{
		ID:         uuid.New().String(),
		Content:    reply,
		Intent:     prediction.Intent,
		Confidence: int(math.Round(prediction.Confidence * 100)),
		Entities:   prediction.Entities,
		Actions:    actionsForIntent(prediction.Intent),
		Articles:   toArticleRefs(articles),
		Cluster:    bucketID,
		Language:   langCode,
		Timestamp:  now,
	}

	if request.Authenticated && s.features != nil {
		if features, ok := s.features.FeaturesFor(ctx, request.UserID); ok {
			score := s.leadModel.Score(features)
			resp.LeadScore = &score
		}
	}

	s.persist(request, resp, langCode, now)
	return resp, nil
}

// persist appends both turn messages to the transcript store and the
// full-text index. Failures are logged and counted, never surfaced.
func (s *AssistantService) persist(request contract.ChatRequest, resp contract.ChatResponse, langCode string, now time.Time) {
	userMessage := domain.ChatMessage{
		ID:        uuid.New(),
		SessionID: request.SessionID,
		UserID:    request.UserID,
		Role:      domain.RoleUser,
		Content:   request.Content,
		Language:  langCode,
		CreatedAt: now,
	}
	assistantMessage := domain.ChatMessage{
		ID:        uuid.MustParse(resp.ID),
		SessionID: request.SessionID,
		UserID:    request.UserID,
		Role:      domain.RoleAssistant,
		Content:   resp.Content,
		CreatedAt: now.Add(time.Millisecond),
	}

	for _, message := range []domain.ChatMessage{userMessage, assistantMessage} {
		if err := s.sessions.Append(message); err != nil {
			s.log.Warn("Transcript append failed", "session", message.SessionID, "error", err)
			s.stats.IncrErrorCount()
			continue
		}
		if err := s.transcripts.Index(message); err != nil {
			s.log.Warn("Transcript indexing failed", "session", message.SessionID, "error", err)
			s.stats.IncrErrorCount()
		}
	}
}

// Transcript returns the stored conversation for a session in order.
func (s *AssistantService) Transcript(sessionID string) ([]domain.ChatMessage, error) {
	return s.sessions.Transcript(sessionID)
}

// SearchTranscripts runs a full-text query over past conversations.
func (s *AssistantService) SearchTranscripts(ctx context.Context, sessionID, query string) ([]repositories.TranscriptHit, error) {
	top := s.searchTop
	if top <= 0 {
		top = 10
	}
	return s.transcripts.Search(ctx, sessionID, query, top)
}

func toArticleRefs(refs []kb.Ref) []contract.ArticleRef {
	out := make([]contract.ArticleRef, 0, len(refs))
	for _, ref := range refs {
		out = append(out, contract.ArticleRef{ID: ref.ID, Title: ref.Title})
	}
	return out
}

// actionsForIntent maps an intent onto the UI quick actions shown with
// the reply.
func actionsForIntent(name string) []string {
	switch name {
	case "create_contact", "update_contact", "delete_contact", "search_contact":
		return []string{"open_contacts"}
	case "create_deal", "update_deal", "delete_deal":
		return []string{"open_pipeline"}
	case "create_task", "update_task", "delete_task":
		return []string{"open_tasks"}
	case "generate_report":
		return []string{"open_reports"}
	case "send_email":
		return []string{"open_composer"}
	case "schedule_meeting":
		return []string{"open_calendar"}
	case intent.IntentError:
		return []string{"open_support"}
	case "help":
		return []string{"open_docs"}
	default:
		return nil
	}
}
