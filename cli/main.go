package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"slices"

	aq "github.com/juked-social/textract-mail-scanning"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/textract"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"
	"golang.org/x/exp/maps"
)

func main() {
	// Parse command line arguments
	mode := flag.String("mode", "local", "local, invoke or analyze")
	eventPath := flag.String("event", "", "Path to the input event JSON")
	preset := flag.String("preset", aq.PresetShippingLabel, "Query preset for local and analyze")
	presetFile := flag.String("preset-file", "", "YAML file with additional presets")
	functionName := flag.String("function", "addQueriesFunction", "Name of the deployed function")
	verbose := flag.Bool("verbose", false, "Show the full manifest in analyze mode")
	flag.Parse()

	if *eventPath == "" {
		log.Fatalf("event parameter is required")
	}
	payload, err := os.ReadFile(*eventPath)
	if err != nil {
		log.Fatalf("unable to read event, %v", err)
	}

	switch *mode {
	case "local":
		out := transform(payload, *preset, *presetFile)
		printJSON(out)
	case "invoke":
		invoke(payload, *functionName)
	case "analyze":
		out := transform(payload, *preset, *presetFile)
		if *verbose {
			printJSON(out)
		}
		analyze(out, *preset, *presetFile)
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}

func transform(payload []byte, preset, presetFile string) *aq.OutputManifest {
	set := lookup(preset, presetFile)
	var event aq.InputEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		log.Fatalf("failed to unmarshal event, %v", err)
	}
	out, err := aq.Transform(event, set)
	if err != nil {
		log.Fatalf("transform failed, %v", err)
	}
	return out
}

func lookup(preset, presetFile string) aq.QuerySet {
	cfg := aq.Config{Preset: preset, PresetFile: presetFile}
	registry, err := cfg.Registry()
	if err != nil {
		log.Fatalf("unable to load presets, %v", err)
	}
	set, err := registry.Lookup(preset)
	if err != nil {
		log.Fatalf("%v (known: %v)", err, registry.Names())
	}
	return set
}

func invoke(payload []byte, functionName string) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}
	client := lambda.NewFromConfig(cfg)

	result, err := client.Invoke(context.TODO(), &lambda.InvokeInput{
		FunctionName: aws.String(functionName),
		Payload:      payload,
	})
	if err != nil {
		log.Fatalf("failed to invoke lambda function, %v", err)
	}
	if result.FunctionError != nil {
		log.Fatalf("lambda function returned an error: %s: %s", aws.ToString(result.FunctionError), result.Payload)
	}

	var out aq.OutputManifest
	if err := json.Unmarshal(result.Payload, &out); err != nil {
		log.Fatalf("failed to unmarshal response payload, %v", err)
	}
	printJSON(&out)
}

func analyze(out *aq.OutputManifest, preset, presetFile string) {
	loc, err := aq.ParseS3Path(out.Manifest.S3Path)
	if err != nil {
		log.Fatalf("%v", err)
	}
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}
	client := textract.NewFromConfig(cfg)

	// Synchronous analysis only handles images and single page documents
	result, err := client.AnalyzeDocument(context.TODO(), &textract.AnalyzeDocumentInput{
		Document: &types.Document{
			S3Object: &types.S3Object{
				Bucket: aws.String(loc.Bucket),
				Name:   aws.String(loc.Key),
			},
		},
		FeatureTypes:  []types.FeatureType{types.FeatureTypeQueries},
		QueriesConfig: lookup(preset, presetFile).QueriesConfig(),
	})
	if err != nil {
		log.Fatalf("failed to analyze document, %v", err)
	}

	answers := aq.Answers(result.Blocks)
	aliases := maps.Keys(answers)
	slices.Sort(aliases)
	for _, alias := range aliases {
		fmt.Printf("%v: %v\n", alias, answers[alias])
	}
}

func printJSON(v any) {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("failed to marshal output, %v", err)
	}
	fmt.Println(string(encoded))
}
