package inline

import (
	"encoding/json"
	"io"

	"github.com/radiodl-cli/radiodl/source"
)

type Episode struct {
	*source.Episode
	// ResolvedURL is filled when resolution was requested.
	ResolvedURL string `json:"resolved_url,omitempty"`
	Error       string `json:"error,omitempty"`
}

type Output struct {
	Program  string     `json:"program"`
	URL      string     `json:"url"`
	Episodes []*Episode `json:"episodes"`
}

func writeJson(out io.Writer, output *Output) error {
	if output.Episodes == nil {
		output.Episodes = []*Episode{}
	}

	encoder := json.NewEncoder(out)
	encoder.SetEscapeHTML(false)
	return encoder.Encode(output)
}
