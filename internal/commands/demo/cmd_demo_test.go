package demo

import (
	"bytes"
	"github.com/stretchr/testify/require"
	"testing"
)

func newTestCommand() (*Command, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cmd := &Command{stdout: out}
	cmd.Encoder = "base64"
	return cmd, out
}

func Test_DemoDefault(t *testing.T) {
	cmd, out := newTestCommand()
	require.NoError(t, cmd.Run(nil))
	require.Equal(t,
		"Encoded: VGhlIHF1aWNrIGJyb3duIGZveCBqdW1wcyBvdmVyIHRoZSBsYXp5IGRvZw==\n"+
			"Decoded: "+DefaultText+"\n",
		out.String())
}

func Test_DemoArguments(t *testing.T) {
	cmd, out := newTestCommand()
	require.NoError(t, cmd.Run([]string{"Happy", "Hacktoberfest!"}))
	require.Equal(t, "Encoded: SGFwcHkgSGFja3RvYmVyZmVzdCE=\nDecoded: Happy Hacktoberfest!\n", out.String())
}

func Test_DemoBinary(t *testing.T) {
	cmd, out := newTestCommand()
	require.NoError(t, cmd.Run([]string{"\xff\x00"}))
	require.Equal(t, "Encoded: /wA=\nDecoded: \"\\xff\\x00\"\n", out.String())
}
