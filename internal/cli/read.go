package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/rupertdev/houston/internal/control"
	"github.com/rupertdev/houston/internal/files/filesystem"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var readCmd = &cobra.Command{
	Use:   "read <control_file>",
	Short: "Print the fields of a control file",
	Long: `Read parses a control file and prints its fields in canonical order.

Formats:
  text  canonical control file text (default)
  yaml  a YAML mapping; folded fields become sequences
  json  a JSON object; folded fields become arrays

Examples:
  houston read debian/control
  houston read debian/control --format json | jq '.["Build-Depends"]'`,
	Args: RequireControlFile,
	RunE: runRead,
}

type readFlagValues struct {
	format string
}

var readFlags readFlagValues

func init() {
	rootCmd.AddCommand(readCmd)

	readCmd.Flags().StringVarP(&readFlags.format, "format", "f", "text",
		"Output format: text|yaml|json")
	_ = readCmd.RegisterFlagCompletionFunc("format", completeFormats)
}

func runRead(cmd *cobra.Command, args []string) error {
	if !slices.Contains(outputFormats, readFlags.format) {
		return fmt.Errorf("invalid argument %q for --format: expected one of %s",
			readFlags.format, strings.Join(outputFormats, ", "))
	}

	_, fields, err := openControl(filesystem.NewOSFileSystem(), args[0])
	if err != nil {
		return err
	}

	return writeFields(cmd.OutOrStdout(), fields, readFlags.format)
}

func writeFields(out io.Writer, fields *control.Fields, format string) error {
	var data []byte
	var err error

	switch format {
	case "yaml":
		data, err = yaml.Marshal(fieldsNode(fields))
	case "json":
		data, err = json.MarshalIndent(fields, "", "  ")
		data = append(data, '\n')
	default:
		data = control.Format(fields)
	}
	if err != nil {
		return fmt.Errorf("failed to encode fields as %s: %w", format, err)
	}

	_, err = out.Write(data)
	return err
}

// fieldsNode builds a YAML mapping that keeps the canonical field order.
func fieldsNode(fields *control.Fields) *yaml.Node {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, field := range control.SortedFields(fields) {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: field.Key}

		var value *yaml.Node
		if field.Value.IsList() {
			value = &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
			for _, item := range field.Value.Items() {
				value.Content = append(value.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: item})
			}
			if len(value.Content) == 0 {
				value.Style = yaml.FlowStyle
			}
		} else {
			value = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: field.Value.String()}
			if strings.Contains(value.Value, "\n") {
				value.Style = yaml.LiteralStyle
			}
		}
		doc.Content = append(doc.Content, key, value)
	}
	return doc
}
