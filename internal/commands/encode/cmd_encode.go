package encode

import (
	"fmt"
	"github.com/bokysan/base64ace/internal/args"
	"github.com/bokysan/base64ace/internal/logging"
	"github.com/bokysan/base64ace/internal/util"
	"github.com/bokysan/base64ace/internal/util/enc"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
)

// Command encodes its arguments, or the whole input when there are none.
type Command struct {
	args.Codec `yaml:",inline"`

	Input     string `json:"input"      yaml:"input"      short:"i" long:"input"      env:"INPUT"  description:"File to encode when no arguments are given, '-' for standard input" default:"-"`
	Output    string `json:"output"     yaml:"output"     short:"o" long:"output"     env:"OUTPUT" description:"File to write the encoded text to, '-' for standard output" default:"-"`
	NoNewline bool   `json:"no-newline" yaml:"no-newline" short:"n" long:"no-newline"              description:"Do not print the trailing newline"`

	stdin  io.Reader
	stdout io.Writer
}

func NewCommand() *Command {
	return &Command{
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}
}

func (c *Command) Execute(args []string) error {
	if err := logging.SetupLogging(); err != nil {
		return err
	}
	return c.Run(args)
}

// Run encodes every argument onto its own line. Without arguments the input file (or standard input)
// is read into memory and encoded as a whole.
func (c *Command) Run(args []string) (err error) {
	encoder, err := enc.ByName(c.Encoder)
	if err != nil {
		return err
	}

	out, closer, err := util.OpenOutput(c.Output, c.stdout)
	if err != nil {
		return err
	}
	defer func() {
		if e := closer(); e != nil && err == nil {
			err = e
		}
	}()

	var texts []string
	if len(args) == 0 {
		data, err := util.ReadInput(c.Input, c.stdin)
		if err != nil {
			return err
		}
		log.Debugf("Encoding %d bytes with %v", len(data), encoder.Name())
		texts = append(texts, encoder.Encode(data))
	} else {
		for _, a := range args {
			log.Debugf("Encoding %d bytes with %v", len(a), encoder.Name())
			texts = append(texts, encoder.Encode([]byte(a)))
		}
	}

	for i, text := range texts {
		if i == len(texts)-1 && c.NoNewline {
			_, err = fmt.Fprint(out, text)
		} else {
			_, err = fmt.Fprintln(out, text)
		}
		if err != nil {
			return errors.Wrapf(err, "Could not write encoded text")
		}
	}

	return nil
}
