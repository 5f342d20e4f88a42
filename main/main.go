package main

import (
	"os"

	aq "github.com/juked-social/textract-mail-scanning"

	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	cfg := aq.LoadConfig()
	aq.Logger = aq.NewLogger(cfg.LogLevel)

	augmenter, err := cfg.Augmenter()
	if err != nil {
		aq.Logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	aq.Logger.Info("Starting add-queries", "preset", augmenter.Preset.Name())
	lambda.Start(augmenter.Handle)
}
