package pipeline

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ppiankov/gleaner/internal/model"
)

// Renderer writes extraction results in one of the supported formats:
// json, yaml, or plain key/value lines.
type Renderer struct {
	format string
}

// NewRenderer creates a renderer for the given format.
func NewRenderer(format string) (*Renderer, error) {
	switch format {
	case "json", "yaml", "plain":
		return &Renderer{format: format}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want json, yaml, or plain)", format)
	}
}

// Render writes one result.
func (r *Renderer) Render(w io.Writer, res *model.Result) error {
	switch r.format {
	case "json":
		return r.renderJSON(w, res)
	case "yaml":
		return r.renderYAML(w, res)
	default:
		return r.renderPlain(w, res)
	}
}

// RenderAll writes a result sequence: a JSON array, a YAML document
// stream, or plain blocks separated by blank lines.
func (r *Renderer) RenderAll(w io.Writer, results []*model.Result) error {
	if r.format == "json" {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal results: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
	for i, res := range results {
		if i > 0 && r.format == "plain" {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := r.Render(w, res); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderJSON(w io.Writer, res *model.Result) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// renderYAML builds the document by hand so the attribute order the
// engine produced survives; yaml.Marshal on a map would sort keys.
func (r *Renderer) renderYAML(w io.Writer, res *model.Result) error {
	attrs := &yaml.Node{Kind: yaml.MappingNode}
	for _, p := range res.Attributes {
		attrs.Content = append(attrs.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: p.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Value: p.Value},
		)
	}
	doc := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: "title"},
			{Kind: yaml.ScalarNode, Value: res.Title},
			{Kind: yaml.ScalarNode, Value: "attributes"},
			attrs,
		},
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	_, err = fmt.Fprintf(w, "---\n%s", data)
	return err
}

func (r *Renderer) renderPlain(w io.Writer, res *model.Result) error {
	if _, err := fmt.Fprintln(w, res.Title); err != nil {
		return err
	}
	for _, p := range res.Attributes {
		if _, err := fmt.Fprintf(w, "  %s: %s\n", p.Key, p.Value); err != nil {
			return err
		}
	}
	return nil
}
