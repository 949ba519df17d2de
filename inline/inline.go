// Package inline lists what a scraper finds without downloading anything.
package inline

import (
	"context"
	"fmt"
	"os"

	"github.com/radiodl-cli/radiodl/log"
	"github.com/radiodl-cli/radiodl/source"
)

func Run(options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	ctx := options.Context
	if ctx == nil {
		ctx = context.Background()
	}

	src := options.Source

	episodes, err := src.Episodes(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", src.Name(), err)
	}

	if filter, ok := options.Filter.Get(); ok {
		if episodes, err = filter(episodes); err != nil {
			return err
		}
	}

	output := &Output{Program: src.Name(), URL: src.URL()}
	for _, ep := range episodes {
		output.Episodes = append(output.Episodes, resolve(ctx, src, ep, options.Resolve))
	}

	if options.Json {
		return writeJson(options.Out, output)
	}

	for _, ep := range output.Episodes {
		link := ep.AudioURL
		switch {
		case ep.ResolvedURL != "":
			link = ep.ResolvedURL
		case link == "":
			link = ep.ListenURL
		}

		fmt.Fprintf(options.Out, "%s\t%s\n", ep.Title, link)
	}

	return nil
}

func resolve(ctx context.Context, src source.Source, ep *source.Episode, enabled bool) *Episode {
	out := &Episode{Episode: ep}
	if !enabled {
		return out
	}

	audio, err := src.AudioURL(ctx, ep)
	if err != nil {
		log.Warnf("inline: %s: %v", ep.Title, err)
		out.Error = err.Error()
		return out
	}

	out.ResolvedURL = audio
	return out
}
