package addqueries

import (
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"
)

// FeatureQueries is the only Textract feature the manifest requests.
const FeatureQueries = string(types.FeatureTypeQueries)

// QueriesConfig converts the preset for a direct AnalyzeDocument call.
func (q QuerySet) QueriesConfig() *types.QueriesConfig {
	queries := make([]types.Query, 0, len(q.queries))
	for _, query := range q.queries {
		queries = append(queries, types.Query{
			Text:  aws.String(query.Text),
			Alias: aws.String(query.Alias),
		})
	}
	return &types.QueriesConfig{Queries: queries}
}

// S3Location is a bucket/key pair.
type S3Location struct {
	Bucket string
	Key    string
}

// ParseS3Path accepts both "s3://bucket/key" and "bucket/key".
func ParseS3Path(path string) (S3Location, error) {
	trimmed := strings.TrimPrefix(path, "s3://")
	bucket, key, ok := strings.Cut(trimmed, "/")
	if !ok || bucket == "" || key == "" {
		return S3Location{}, fmt.Errorf("%w: %q", ErrInvalidS3Path, path)
	}
	return S3Location{Bucket: bucket, Key: key}, nil
}

// Answers maps each query alias to its answer text. Queries without an
// answer are omitted; multiple answers are joined with a space.
func Answers(blocks []types.Block) map[string]string {
	results := make(map[string]string)
	for _, b := range blocks {
		if b.BlockType == types.BlockTypeQueryResult && b.Id != nil {
			results[*b.Id] = aws.ToString(b.Text)
		}
	}

	answers := make(map[string]string)
	for _, b := range blocks {
		if b.BlockType != types.BlockTypeQuery || b.Query == nil {
			continue
		}
		alias := aws.ToString(b.Query.Alias)
		if alias == "" {
			alias = aws.ToString(b.Query.Text)
		}
		var parts []string
		for _, rel := range b.Relationships {
			if rel.Type != types.RelationshipTypeAnswer {
				continue
			}
			for _, id := range rel.Ids {
				if text, ok := results[id]; ok {
					parts = append(parts, text)
				}
			}
		}
		if len(parts) > 0 {
			answers[alias] = strings.Join(parts, " ")
		}
	}
	return answers
}
