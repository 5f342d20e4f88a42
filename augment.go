package addqueries

import (
	"bytes"
	"context"

	"github.com/aws/aws-lambda-go/lambdacontext"
)

// Transform builds the Textract manifest for event using the queries of preset.
// The result shares no memory with event or preset.
func Transform(event InputEvent, preset QuerySet) (*OutputManifest, error) {
	if event.Manifest == nil || event.Manifest.S3Path == nil {
		return nil, &MissingFieldError{Field: "manifest.s3Path"}
	}
	if event.Mime == nil {
		return nil, &MissingFieldError{Field: "mime"}
	}

	out := &OutputManifest{
		Manifest: Manifest{
			S3Path:           *event.Manifest.S3Path,
			TextractFeatures: []string{FeatureQueries},
			QueriesConfig:    preset.Queries(),
		},
		Mime: *event.Mime,
	}
	// Forwarded only when present, never defaulted
	out.Manifest.Classification = bytes.Clone(event.Classification)
	out.Manifest.NumberOfPages = bytes.Clone(event.NumberOfPages)
	out.Manifest.FileSize = bytes.Clone(event.FileSize)
	out.Manifest.NumberOfQueries = bytes.Clone(event.NumberOfQueries)

	return out, nil
}

// Augmenter is the AddQueries step bound to one preset.
type Augmenter struct {
	Preset QuerySet
}

func NewAugmenter(preset QuerySet) *Augmenter {
	return &Augmenter{Preset: preset}
}

// Handle is the Lambda handler. Errors are returned untouched so the
// state machine decides on retries.
func (a *Augmenter) Handle(ctx context.Context, event InputEvent) (*OutputManifest, error) {
	log := Logger.With("preset", a.Preset.Name())
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		log = log.With("requestId", lc.AwsRequestID)
	}

	out, err := Transform(event, a.Preset)
	if err != nil {
		log.Error("Manifest rejected", "error", err)
		return nil, err
	}
	log.Info("Manifest augmented",
		"s3Path", out.Manifest.S3Path,
		"mime", out.Mime,
		"queries", len(out.Manifest.QueriesConfig))
	return out, nil
}
