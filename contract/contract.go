//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks

// Package contract defines the boundary types consumed by the web layer
// and the interfaces shared by the background runtime.
package contract

import (
	"context"
	"reflect"
	"time"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker runs until its context is canceled. Workers do not protect
// themselves; the supervisor does.
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker
// for logging and supervision, avoiding manual naming in the interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// ChatRequest is one inbound message from the web layer.
type ChatRequest struct {
	Content       string `json:"content" validate:"required,max=2000"`
	SessionID     string `json:"session_id" validate:"required"`
	UserID        string `json:"user_id" validate:"required"`
	Authenticated bool   `json:"is_authenticated"`
}

// ArticleRef points at a knowledge-base article surfaced with a reply.
type ArticleRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ChatResponse is the outward payload for one processed message.
// Confidence is an integer percentage. Actions are derived from the
// intent by the route layer, never by the core. Cluster is the static
// category bucket, not a live K-Means result.
type ChatResponse struct {
	ID         string            `json:"id"`
	Content    string            `json:"content"`
	Intent     string            `json:"intent"`
	Confidence int               `json:"confidence"`
	Entities   map[string]string `json:"entities"`
	Actions    []string          `json:"actions"`
	Articles   []ArticleRef      `json:"kb_articles"`
	LeadScore  *float64          `json:"lead_score,omitempty"`
	Cluster    int               `json:"cluster"`
	Language   string            `json:"language,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
}
