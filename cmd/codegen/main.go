package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v3"
	"github.com/zsombi/libcomp/cmd/codegen/templates"
)

const (
	genericParamCountKey = "count"
	outputKey            = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the arity adapters for libcomp signals",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  genericParamCountKey,
				Usage: "Highest argument arity to generate",
				Value: 8,
			},
			&cli.StringFlag{
				Name:  outputKey,
				Usage: "Output file",
				Value: "comp/args.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for comp arity adapters started")
	defer func() {
		log.Printf("Codegen finished in %v", time.Since(start))
	}()

	count := cmd.Uint(genericParamCountKey)
	out := cmd.String(outputKey)
	log.Printf("Generating adapters up to arity %d into %s", count, out)

	contents := templates.ArgsGen(int(count))
	return os.WriteFile(out, []byte(contents), 0644)
}
