package main

import (
	"context"
	"flag"
	"fmt"
	"mime"
	"os"
	"strings"

	"github.com/voxcast/voxcast/pkg/client"

	"github.com/google/uuid"
)

func main() {
	urlFlag := flag.String("url", "http://localhost:8080", "server url")
	tokenFlag := flag.String("token", "", "server token")

	modelFlag := flag.String("model", "", "synthesizer id")
	voiceFlag := flag.String("voice", "", "voice id")
	formatFlag := flag.String("format", "", "audio format")
	languageFlag := flag.String("language", "", "language code")

	sourcesFlag := flag.String("sources", "", "comma-separated source ids")

	textFlag := flag.String("text", "", "synthesize the given text instead of generating a briefing")
	outputFlag := flag.String("output", "", "output file (default: generated name)")

	flag.Parse()

	ctx := context.Background()

	options := []client.RequestOption{}

	if *tokenFlag != "" {
		options = append(options, client.WithToken(*tokenFlag))
	}

	c := client.New(*urlFlag, options...)

	var content []byte
	var contentType string

	if *textFlag != "" {
		result, err := c.Syntheses.New(ctx, client.SynthesizeRequest{
			Input: *textFlag,

			Model: *modelFlag,
			Voice: *voiceFlag,

			Format:   *formatFlag,
			Language: *languageFlag,
		})

		if err != nil {
			fatal(err)
		}

		content = result.Content
		contentType = result.ContentType
	} else {
		topics := flag.Args()

		if len(topics) == 0 {
			fatal(fmt.Errorf("usage: %s [flags] topic [topic...]", os.Args[0]))
		}

		var sources []string

		if *sourcesFlag != "" {
			sources = strings.Split(*sourcesFlag, ",")
		}

		result, err := c.Briefings.New(ctx, client.BriefingRequest{
			Topics:  topics,
			Sources: sources,

			Model: *modelFlag,
			Voice: *voiceFlag,

			Format:   *formatFlag,
			Language: *languageFlag,
		})

		if err != nil {
			fatal(err)
		}

		content = result.Content
		contentType = result.ContentType
	}

	output := *outputFlag

	if output == "" {
		ext := ".mp3"

		if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
			ext = exts[0]
		}

		output = "briefing-" + uuid.NewString() + ext
	}

	if err := os.WriteFile(output, content, 0o644); err != nil {
		fatal(err)
	}

	fmt.Println(output)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
