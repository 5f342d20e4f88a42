package addqueries

import "encoding/json"

// InputEvent is the state handed over by the classification step.
// Optional fields stay raw so that presence survives decoding and the
// values are forwarded without coercion.
type InputEvent struct {
	Manifest        *InputManifest  `json:"manifest"`
	Mime            *string         `json:"mime"`
	Classification  json.RawMessage `json:"classification,omitempty"`
	NumberOfPages   json.RawMessage `json:"numberOfPages,omitempty"`
	FileSize        json.RawMessage `json:"fileSize,omitempty"`
	NumberOfQueries json.RawMessage `json:"numberOfQueries,omitempty"`
}

type InputManifest struct {
	S3Path *string `json:"s3Path"`
}

// QueryDefinition is one question for Textract and the alias its answer is reported under.
type QueryDefinition struct {
	Text  string `json:"text" yaml:"text"`
	Alias string `json:"alias" yaml:"alias"`
}

type OutputManifest struct {
	Manifest Manifest `json:"manifest"`
	Mime     string   `json:"mime"`
}

type Manifest struct {
	S3Path           string            `json:"s3_path"`
	TextractFeatures []string          `json:"textract_features"`
	QueriesConfig    []QueryDefinition `json:"queries_config"`
	Classification   json.RawMessage   `json:"classification,omitempty"`
	NumberOfPages    json.RawMessage   `json:"numberOfPages,omitempty"`
	FileSize         json.RawMessage   `json:"fileSize,omitempty"`
	NumberOfQueries  json.RawMessage   `json:"numberOfQueries,omitempty"`
}
