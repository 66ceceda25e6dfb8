package flags

import (
	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

type generalOptions struct {
	Experimental bool   `long:"experimental" description:"Enable experimental features"`
	File         string `long:"file"`
}

type decodeCommand struct {
	Encoder string `yaml:"encoder" long:"encoder"`
}

func (d *decodeCommand) Execute(args []string) error {
	return nil
}

func Test_EmptyParse(t *testing.T) {
	file := "testdata/empty.yml"

	parser := flags.NewNamedParser("yaml-test", flags.HelpFlag|flags.PrintErrors)
	yamlParser := NewYamlParser(parser)
	err := yamlParser.ParseFile(file)

	require.NoErrorf(t, err, "Parsing not successful: %v", file)
}

func Test_CommandParse(t *testing.T) {
	file := "testdata/general.yml"

	parser := flags.NewNamedParser("yaml-test", flags.HelpFlag|flags.PrintErrors)
	yamlParser := NewYamlParser(parser)

	data := &generalOptions{}
	_, err := parser.AddCommand("general", "General", "General options", data)
	require.NoErrorf(t, err, "Could not add general group")

	err = yamlParser.ParseFile(file)
	require.NoErrorf(t, err, "Parsing not successful: %v", file)

	require.Equal(t, true, data.Experimental, "Invalid reading of boolean value")
	require.Equal(t, "something.txt", data.File, "Invalid reading of string value")
}

func Test_GroupAndCommandParse(t *testing.T) {
	file := "testdata/codec.yml"

	parser := flags.NewNamedParser("yaml-test", flags.HelpFlag|flags.PrintErrors)
	yamlParser := NewYamlParser(parser)

	general := &generalOptions{}
	_, err := parser.AddGroup("General", "General options", general)
	require.NoError(t, err)

	decode := &decodeCommand{}
	_, err = parser.AddCommand("decode", "Decode", "Decode input", decode)
	require.NoError(t, err)

	err = yamlParser.ParseFile(file)
	require.NoErrorf(t, err, "Parsing not successful: %v", file)

	require.Equal(t, "S", decode.Encoder)
	require.Equal(t, "other.txt", general.File)
}

func Test_ParseReader(t *testing.T) {
	parser := flags.NewNamedParser("yaml-test", flags.HelpFlag|flags.PrintErrors)
	yamlParser := NewYamlParser(parser)

	decode := &decodeCommand{}
	_, err := parser.AddCommand("decode", "Decode", "Decode input", decode)
	require.NoError(t, err)

	err = yamlParser.Parse(strings.NewReader("decode:\n  encoder: base64\n"))
	require.NoError(t, err)
	require.Equal(t, "base64", decode.Encoder)
}

func Test_InvalidNoCommand(t *testing.T) {
	file := "testdata/invalid_no_command.yml"

	parser := flags.NewNamedParser("yaml-test", flags.HelpFlag|flags.PrintErrors)
	yamlParser := NewYamlParser(parser)

	_, err := parser.AddCommand("general", "General", "General options", &generalOptions{})
	require.NoErrorf(t, err, "Could not add general group")

	err = yamlParser.ParseFile(file)
	require.Errorf(t, err, "Parsing not successful, expected error but did not get one: %v", file)

	var flagsErr *flags.Error
	require.ErrorAs(t, err, &flagsErr)
	require.Equal(t, flags.ErrUnknownGroup, flagsErr.Type)
}

func Test_MissingFile(t *testing.T) {
	parser := flags.NewNamedParser("yaml-test", flags.HelpFlag|flags.PrintErrors)
	err := NewYamlParser(parser).ParseFile("testdata/does-not-exist.yml")
	require.Error(t, err)
}
