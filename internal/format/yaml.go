package format

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"shenfen/internal/identity/models"
	dErrors "shenfen/pkg/domain-errors"
)

// yamlFormatter renders a sequence of identity_N mappings. Nodes are
// built by hand because a plain map would lose the field order.
type yamlFormatter struct{}

func (yamlFormatter) Name() string      { return "yaml" }
func (yamlFormatter) Extension() string { return "yaml" }

func (yamlFormatter) Format(recs []*models.IdentityRecord, fields []string) ([]byte, error) {
	if len(recs) == 0 {
		return nil, nil
	}

	root := &yaml.Node{Kind: yaml.SequenceNode}
	for i, rec := range recs {
		body := &yaml.Node{Kind: yaml.MappingNode}
		for _, field := range fields {
			body.Content = append(body.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: field},
				valueNode(field, rec.FieldValue(field)))
		}
		item := &yaml.Node{Kind: yaml.MappingNode}
		item.Content = append(item.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: fmt.Sprintf("identity_%d", i+1)},
			body)
		root.Content = append(root.Content, item)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "encode yaml")
	}
	if err := enc.Close(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "close yaml encoder")
	}
	return buf.Bytes(), nil
}

func valueNode(field, value string) *yaml.Node {
	switch {
	case field == "weight_kg":
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: value}
	case numericFields[field]:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: value}
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Style: yaml.DoubleQuotedStyle, Value: value}
	}
}
