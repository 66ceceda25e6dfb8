package demo

import (
	"fmt"
	"github.com/bokysan/base64ace/internal/args"
	"github.com/bokysan/base64ace/internal/logging"
	"github.com/bokysan/base64ace/internal/util/enc"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// DefaultText is encoded when the demo is given no arguments
const DefaultText = "The quick brown fox jumps over the lazy dog"

// Command encodes a piece of text and decodes it back, printing both results.
type Command struct {
	args.Codec `yaml:",inline"`

	stdout io.Writer
}

func NewCommand() *Command {
	return &Command{
		stdout: os.Stdout,
	}
}

func (c *Command) Execute(args []string) error {
	if err := logging.SetupLogging(); err != nil {
		return err
	}
	return c.Run(args)
}

//goland:noinspection GoUnhandledErrorResult
func (c *Command) Run(args []string) error {
	encoder, err := enc.ByName(c.Encoder)
	if err != nil {
		return err
	}

	text := DefaultText
	if len(args) > 0 {
		text = strings.Join(args, " ")
	}

	encoded := encoder.Encode([]byte(text))
	fmt.Fprintf(c.stdout, "Encoded: %s\n", encoded)

	decoded, err := encoder.Decode(encoded)
	if err != nil {
		var symbolErr enc.InvalidSymbolError
		if errors.As(err, &symbolErr) {
			log.WithField("byte", symbolErr.Symbol).Errorf("Could not decode %q", encoded)
		}
		return errors.Wrapf(err, "Could not decode %q", encoded)
	}

	if utf8.Valid(decoded) {
		fmt.Fprintf(c.stdout, "Decoded: %s\n", decoded)
	} else {
		fmt.Fprintf(c.stdout, "Decoded: %q\n", decoded)
	}
	return nil
}
