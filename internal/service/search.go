package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/threadmind-dev/threadmind/internal/ai"
	"github.com/threadmind-dev/threadmind/internal/domain"
	"github.com/threadmind-dev/threadmind/internal/logger"
)

const (
	maxSearchResults = 20
	// embedding inputs are truncated to keep request size bounded
	maxEmbedChars = 2000
)

type SearchResult struct {
	Id             domain.ThreadId `json:"id"`
	Title          string          `json:"title"`
	Content        string          `json:"content"`
	Tags           []domain.Tag    `json:"tags"`
	Author         domain.UserRef  `json:"author"`
	RelevanceScore float64         `json:"relevanceScore"`
	CreatedAt      time.Time       `json:"createdAt"`
}

type GraphNode struct {
	Id    string `json:"id"`
	Label string `json:"label"`
	Group string `json:"group"`
	Size  int    `json:"size"`
}

type GraphLink struct {
	Source   string  `json:"source"`
	Target   string  `json:"target"`
	Strength float64 `json:"strength"`
}

type Graph struct {
	Nodes []GraphNode `json:"nodes"`
	Links []GraphLink `json:"links"`
}

type SearchService interface {
	Semantic(ctx context.Context, query string) ([]SearchResult, error)
	KnowledgeGraph() *Graph
}

type Search struct {
	storage SearchStorage
	ai      Embedder
}

type SearchStorage interface {
	AllThreads() []*domain.Thread
}

// Embedder may be nil; search then falls back to keyword overlap scoring.
type Embedder interface {
	SemanticSearch(ctx context.Context, query string, docs []ai.Document) ([]ai.Match, error)
}

func NewSearch(storage SearchStorage, embedder Embedder) *Search {
	return &Search{storage, embedder}
}

// Semantic ranks all threads against the query by embedding similarity.
// Provider failures degrade to keyword scoring rather than an error.
func (s *Search) Semantic(ctx context.Context, query string) ([]SearchResult, error) {
	threads := s.storage.AllThreads()
	if len(threads) == 0 {
		return nil, nil
	}

	byId := make(map[domain.ThreadId]*domain.Thread, len(threads))
	docs := make([]ai.Document, len(threads))
	for i, t := range threads {
		byId[t.Id] = t
		docs[i] = ai.Document{Id: t.Id, Text: embeddingText(t)}
	}

	var matches []ai.Match
	if s.ai != nil {
		var err error
		matches, err = s.ai.SemanticSearch(ctx, query, docs)
		if err != nil {
			logger.Log.Warn("semantic search degraded to keyword scoring", "error", err)
			matches = nil
		}
	}
	if matches == nil {
		matches = keywordScore(query, docs)
	}

	results := make([]SearchResult, 0, len(matches))
	for _, m := range matches {
		if m.Score <= 0 {
			continue
		}
		t := byId[m.Id]
		results = append(results, SearchResult{
			Id:             t.Id,
			Title:          t.Title,
			Content:        t.Content,
			Tags:           t.Tags,
			Author:         t.Author,
			RelevanceScore: m.Score,
			CreatedAt:      t.CreatedAt,
		})
		if len(results) == maxSearchResults {
			break
		}
	}
	return results, nil
}

// KnowledgeGraph derives the thread/tag graph: thread-tag edges plus
// thread-thread edges weighted by shared-tag count.
func (s *Search) KnowledgeGraph() *Graph {
	threads := s.storage.AllThreads()

	g := &Graph{Nodes: []GraphNode{}, Links: []GraphLink{}}
	tagCounts := make(map[domain.Tag]int)

	for _, t := range threads {
		g.Nodes = append(g.Nodes, GraphNode{
			Id:    t.Id,
			Label: t.Title,
			Group: "thread",
			Size:  10 + t.Likes,
		})
		for _, tag := range t.Tags {
			tagCounts[tag]++
			g.Links = append(g.Links, GraphLink{Source: t.Id, Target: tagNodeId(tag), Strength: 1})
		}
	}

	tags := make([]domain.Tag, 0, len(tagCounts))
	for tag := range tagCounts {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	for _, tag := range tags {
		g.Nodes = append(g.Nodes, GraphNode{
			Id:    tagNodeId(tag),
			Label: tag,
			Group: "tag",
			Size:  6 + 2*tagCounts[tag],
		})
	}

	for i := 0; i < len(threads); i++ {
		for j := i + 1; j < len(threads); j++ {
			if shared := sharedTags(threads[i], threads[j]); shared > 0 {
				g.Links = append(g.Links, GraphLink{
					Source:   threads[i].Id,
					Target:   threads[j].Id,
					Strength: 0.5 * float64(shared),
				})
			}
		}
	}
	return g
}

func tagNodeId(tag domain.Tag) string {
	return fmt.Sprintf("tag:%s", tag)
}

func sharedTags(a, b *domain.Thread) int {
	set := make(map[domain.Tag]struct{}, len(a.Tags))
	for _, tag := range a.Tags {
		set[tag] = struct{}{}
	}
	shared := 0
	for _, tag := range b.Tags {
		if _, ok := set[tag]; ok {
			shared++
		}
	}
	return shared
}

func embeddingText(t *domain.Thread) string {
	text := t.Title + "\n" + strings.Join(t.Tags, " ") + "\n" + t.Content
	if len(text) > maxEmbedChars {
		text = text[:maxEmbedChars]
	}
	return text
}

// keywordScore is the degraded ranking path: fraction of query words present
// in the document, best first.
func keywordScore(query string, docs []ai.Document) []ai.Match {
	queryWords := strings.Fields(strings.ToLower(query))
	matches := make([]ai.Match, len(docs))
	for i, d := range docs {
		docWords := make(map[string]struct{})
		for _, w := range strings.Fields(strings.ToLower(d.Text)) {
			docWords[w] = struct{}{}
		}
		hits := 0
		for _, w := range queryWords {
			if _, ok := docWords[w]; ok {
				hits++
			}
		}
		score := 0.0
		if len(queryWords) > 0 {
			score = float64(hits) / float64(len(queryWords))
		}
		matches[i] = ai.Match{Id: d.Id, Score: score}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })
	return matches
}
