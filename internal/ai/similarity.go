package ai

import (
	"context"
	"math"
	"sort"
)

type Document struct {
	Id   string
	Text string
}

type Match struct {
	Id    string
	Score float64
}

// SemanticSearch embeds the query together with the documents and ranks the
// documents by cosine similarity, best first.
func (c *Client) SemanticSearch(ctx context.Context, query string, docs []Document) ([]Match, error) {
	if len(docs) == 0 {
		return nil, nil
	}

	texts := make([]string, 0, len(docs)+1)
	texts = append(texts, query)
	for _, d := range docs {
		texts = append(texts, d.Text)
	}

	vectors, err := c.Embed(ctx, texts)
	if err != nil {
		return nil, err
	}

	queryVec := vectors[0]
	matches := make([]Match, len(docs))
	for i, d := range docs {
		matches[i] = Match{Id: d.Id, Score: CosineSimilarity(queryVec, vectors[i+1])}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })
	return matches, nil
}

// CosineSimilarity returns the cosine of the angle between two vectors,
// 0 when either has zero magnitude or the dimensions differ.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
