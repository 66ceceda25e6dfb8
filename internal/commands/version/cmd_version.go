package version

import (
	"fmt"
	"github.com/bokysan/base64ace/internal/version"
	"github.com/k0kubun/go-ansi"
	"io"
)

const (
	Bold           = "\x1b[1m"
	Reset          = "\x1b[0m"
	LightGray      = "\x1b[37m"
	DarkGray       = "\x1b[90m"
	White          = "\x1b[97m"
	BackgroundBlue = "\x1b[44m"
)

// Command prints the build information of the application
type Command struct {
	out io.Writer
}

func NewCommand() *Command {
	return &Command{
		out: ansi.NewAnsiStdout(),
	}
}

func (i *Command) String() string {
	return "Version details"
}

//goland:noinspection GoUnhandledErrorResult
func (i *Command) Execute(args []string) error {
	PrintVersion(i.out)
	fmt.Fprintf(i.out, DarkGray+" %-11s "+White+"%+v"+Reset+"\n", "Author", "Bojan Cekrlic <github.com/bokysan>")
	for _, d := range version.Details() {
		fmt.Fprintf(i.out, DarkGray+" %-11s "+White+"%+v"+Reset+"\n", d.Label, d.Value)
	}
	return nil
}

//goland:noinspection GoUnhandledErrorResult
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, Bold+BackgroundBlue+
		LightGray+" BASE64ACE - Base64 encoder / decoder "+White+"%s"+LightGray+" "+Reset+"\n"+
		DarkGray+" Built on    "+White+"%+v\n"+
		DarkGray+" Git version "+White+"%+v"+Reset+"\n",
		version.AppVersion(), version.BuildDate, version.GitCommit)
}
