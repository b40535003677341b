package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/jacentio/arbor/internal/app"
)

var a = app.MustNew(context.Background())

func main() {
	lambda.Start(a.Handler.DeleteAll)
}
