package main

import (
	"fmt"
	"github.com/bokysan/base64ace/internal/args"
	"github.com/bokysan/base64ace/internal/commands/decode"
	"github.com/bokysan/base64ace/internal/commands/demo"
	"github.com/bokysan/base64ace/internal/commands/encode"
	"github.com/bokysan/base64ace/internal/commands/version"
	b64Flags "github.com/bokysan/base64ace/internal/flags"
	"github.com/bokysan/base64ace/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"os"
	"path"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// Base64Ace is the main executable
type Base64Ace struct {
	parser *flags.Parser

	encode *encode.Command
	decode *decode.Command
	demo   *demo.Command
}

// NewBase64Ace will create a new instance of Base64Ace and initialize the parser
func NewBase64Ace() *Base64Ace {
	executablePath := path.Base(os.Args[0])

	// Errors are not printed by the parser; MustErrorNilOrExit reports them (and prints the help text).
	b := &Base64Ace{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag),
		encode: encode.NewCommand(),
		decode: decode.NewCommand(),
		demo:   demo.NewCommand(),
	}

	b.setupGeneral()
	b.addCommand("version", "Print the version", "Print the application version and exit", version.NewCommand())
	b.addCommand("encode", "Encode to Base64", "Encode the arguments, or the whole input if there are none, to Base64 text", b.encode)
	b.addCommand("decode", "Decode from Base64", "Decode the Base64 arguments, or the whole input if there are none, back to bytes", b.decode)
	b.addCommand("demo", "Run the demonstration", "Encode a piece of text, decode it back and print both", b.demo)

	return b
}

// setupGeneral will configure general options
func (b *Base64Ace) setupGeneral() {
	if _, err := b.parser.AddGroup("General", "General options", &args.General); err != nil {
		util.MustErrorNilOrExit(errors.WithStack(err))
	}
}

func (b *Base64Ace) addCommand(name, short, long string, cmd interface{}) {
	_, err := b.parser.AddCommand(name, short, long, cmd)
	util.MustErrorNilOrExit(err)
}

// loadConfiguration is called by the parser when `--config` is given
func (b *Base64Ace) loadConfiguration(file string) error {
	if _, err := os.Stat(file); os.IsNotExist(err) {
		return &flags.Error{
			Type:    ErrConfigFileDoesNotExist,
			Message: fmt.Sprintf("Configuration file %s does not exist.", file),
		}
	}

	args.General.ConfigurationFilePath = file
	return b64Flags.NewYamlParser(b.parser).ParseFile(file)
}

// main parses the command line (and the configuration file) and runs the selected command
func main() {
	b := NewBase64Ace()
	args.General.ConfigurationFile = b.loadConfiguration

	_, err := b.parser.Parse()
	util.MustErrorNilOrExit(err)
}
