package recommend

import (
	"context"
	"fmt"
	"strings"

	chromem "github.com/philippgille/chromem-go"

	"github.com/pathlight/pathlight/internal/embeddings"
	"github.com/pathlight/pathlight/internal/planner"
)

const (
	catalogCollection = "topic-catalog"
	defaultLimit      = 5
)

// Topic is one recommended next learning goal.
type Topic struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Difficulty  string  `json:"difficulty"`
	Similarity  float32 `json:"similarity,omitempty"`
}

// GoalLister supplies the goals of a learner's existing paths. Implemented by
// the planner store.
type GoalLister interface {
	List(ctx context.Context, userID string) ([]planner.PathSummary, error)
}

// Engine recommends follow-up topics by matching a learner's past goals
// against a topic catalog in a vector index.
type Engine struct {
	collection *chromem.Collection
	paths      GoalLister
	catalog    []Topic
}

// NewEngine builds a recommendation engine over the given catalog. A nil
// catalog falls back to the built-in starter topics.
func NewEngine(embedder embeddings.Embedder, paths GoalLister, catalog []Topic) (*Engine, error) {
	if catalog == nil {
		catalog = starterCatalog
	}

	db := chromem.NewDB()
	col, err := db.GetOrCreateCollection(catalogCollection, nil, embeddings.ToChromemFunc(embedder))
	if err != nil {
		return nil, fmt.Errorf("create catalog collection: %w", err)
	}

	docs := make([]chromem.Document, len(catalog))
	for i, topic := range catalog {
		docs[i] = chromem.Document{
			ID:      fmt.Sprintf("topic-%d", i),
			Content: topic.Title + ": " + topic.Description,
			Metadata: map[string]string{
				"title":       topic.Title,
				"description": topic.Description,
				"difficulty":  topic.Difficulty,
			},
		}
	}
	if err := col.AddDocuments(context.Background(), docs, 1); err != nil {
		return nil, fmt.Errorf("index catalog: %w", err)
	}

	return &Engine{collection: col, paths: paths, catalog: catalog}, nil
}

// Recommend returns up to limit topics for the learner, ranked by similarity
// to the goals they have already studied. Topics whose title matches an
// existing goal are filtered out. A learner with no paths gets the head of
// the catalog.
func (e *Engine) Recommend(ctx context.Context, userID string, limit int) ([]Topic, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	summaries, err := e.paths.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list paths: %w", err)
	}
	if len(summaries) == 0 {
		return e.head(limit), nil
	}

	goals := make([]string, len(summaries))
	seen := make(map[string]bool, len(summaries))
	for i, s := range summaries {
		goals[i] = s.Goal
		seen[normalizeGoal(s.Goal)] = true
	}
	query := strings.Join(goals, ". ")

	// Ask for extra results so filtering out already-studied goals still
	// leaves enough.
	n := limit + len(summaries)
	if count := e.collection.Count(); n > count {
		n = count
	}
	if n == 0 {
		return []Topic{}, nil
	}

	results, err := e.collection.Query(ctx, query, n, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("query catalog: %w", err)
	}

	topics := make([]Topic, 0, limit)
	for _, r := range results {
		if seen[normalizeGoal(r.Metadata["title"])] {
			continue
		}
		topics = append(topics, Topic{
			Title:       r.Metadata["title"],
			Description: r.Metadata["description"],
			Difficulty:  r.Metadata["difficulty"],
			Similarity:  r.Similarity,
		})
		if len(topics) == limit {
			break
		}
	}
	return topics, nil
}

func (e *Engine) head(limit int) []Topic {
	if limit > len(e.catalog) {
		limit = len(e.catalog)
	}
	out := make([]Topic, limit)
	copy(out, e.catalog[:limit])
	return out
}

func normalizeGoal(goal string) string {
	return strings.ToLower(strings.TrimSpace(goal))
}

// starterCatalog seeds recommendations before any learner data exists.
var starterCatalog = []Topic{
	{Title: "Learn Python programming", Description: "Syntax, data structures and scripting fundamentals", Difficulty: "beginner"},
	{Title: "Learn Go programming", Description: "Concurrency, interfaces and building services", Difficulty: "beginner"},
	{Title: "Web development with JavaScript", Description: "HTML, CSS, DOM and modern frontend tooling", Difficulty: "beginner"},
	{Title: "Data analysis fundamentals", Description: "Working with tabular data, statistics and visualization", Difficulty: "intermediate"},
	{Title: "Machine learning basics", Description: "Supervised learning, model evaluation and feature engineering", Difficulty: "intermediate"},
	{Title: "SQL and relational databases", Description: "Queries, schema design and indexing", Difficulty: "beginner"},
	{Title: "Cloud infrastructure essentials", Description: "Compute, storage, networking and deployment pipelines", Difficulty: "intermediate"},
	{Title: "Distributed systems design", Description: "Consistency, replication and fault tolerance", Difficulty: "advanced"},
	{Title: "Public speaking and presentations", Description: "Structuring talks and delivering them with confidence", Difficulty: "beginner"},
	{Title: "Technical writing", Description: "Clear documentation, proposals and design documents", Difficulty: "intermediate"},
}
