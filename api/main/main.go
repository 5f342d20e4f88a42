package main

import (
	"os"

	aq "github.com/juked-social/textract-mail-scanning"
	"github.com/juked-social/textract-mail-scanning/api"

	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := aq.LoadConfig()
	aq.Logger = aq.NewLogger(cfg.LogLevel)

	registry, err := cfg.Registry()
	if err != nil {
		aq.Logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	if _, err := registry.Lookup(cfg.Preset); err != nil {
		aq.Logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	gin.SetMode(gin.ReleaseMode)
	router := api.NewRouter(registry, cfg.Preset)

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		ginLambda := ginadapter.New(router)
		lambda.Start(ginLambda.ProxyWithContext)
		return
	}

	aq.Logger.Info("Listening", "addr", cfg.HTTPAddr)
	if err := router.Run(cfg.HTTPAddr); err != nil {
		aq.Logger.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}
