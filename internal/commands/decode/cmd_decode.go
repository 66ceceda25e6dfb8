package decode

import (
	"github.com/bokysan/base64ace/internal/args"
	"github.com/bokysan/base64ace/internal/logging"
	"github.com/bokysan/base64ace/internal/util"
	"github.com/bokysan/base64ace/internal/util/enc"
	"github.com/davecgh/go-spew/spew"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"strings"
)

// Command decodes its arguments, or the whole input when there are none.
type Command struct {
	args.Codec `yaml:",inline"`

	Input  string `json:"input"  yaml:"input"  short:"i" long:"input"  env:"INPUT"  description:"File to decode when no arguments are given, '-' for standard input" default:"-"`
	Output string `json:"output" yaml:"output" short:"o" long:"output" env:"OUTPUT" description:"File to write the decoded bytes to, '-' for standard output" default:"-"`

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

// Run decodes every argument and writes the resulting bytes one after another. An argument which fails to
// decode does not stop the others; all failures are reported together at the end.
func (c *Command) Run(args []string) (err error) {
	encoder, err := enc.ByName(c.Encoder)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		data, err := util.ReadInput(c.Input, c.stdin)
		if err != nil {
			return err
		}
		args = []string{strings.TrimSpace(string(data))}
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

	var errs *multierror.Error
	for i, text := range args {
		decoded, e := encoder.Decode(text)
		if e != nil {
			log.Debugf("Could not decode argument %d: %v", i+1, e)
			errs = multierror.Append(errs, errors.Wrapf(e, "argument %d", i+1))
			continue
		}

		if log.IsLevelEnabled(log.TraceLevel) {
			log.Tracef("Decoded %d characters with %v:\n%s", len(text), encoder.Name(), spew.Sdump(decoded))
		}

		if _, e := out.Write(decoded); e != nil {
			return errors.Wrapf(e, "Could not write decoded bytes")
		}
	}

	return errs.ErrorOrNil()
}
