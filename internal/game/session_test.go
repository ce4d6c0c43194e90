package game

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	lines []string
	quit  string
}

func (r *recorder) dispatch(g *Game, line string) bool {
	r.lines = append(r.lines, line)
	if line == r.quit {
		g.Stop()
		return true
	}
	g.Send("ok " + line)
	return false
}

func TestRunStopsOnQuit(t *testing.T) {
	var out bytes.Buffer
	g := NewGame(WithOutput(&out))
	rec := &recorder{quit: "quit"}

	err := Run(g, strings.NewReader("look\nquit\nlook\n"), rec.dispatch)

	require.NoError(t, err)
	assert.Equal(t, []string{"look", "quit"}, rec.lines)
	assert.False(t, g.Running())
	assert.Equal(t, welcomeMessage+"\n> ok look\n> "+farewellMessage+"\n", out.String())
}

func TestRunSkipsBlankLines(t *testing.T) {
	var out bytes.Buffer
	g := NewGame(WithOutput(&out))
	rec := &recorder{quit: "quit"}

	err := Run(g, strings.NewReader("   \n\t\nquit\n"), rec.dispatch)

	require.NoError(t, err)
	assert.Equal(t, []string{"quit"}, rec.lines)
	assert.Equal(t, welcomeMessage+"\n> > > "+farewellMessage+"\n", out.String())
}

func TestRunTreatsEndOfInputAsQuit(t *testing.T) {
	var out bytes.Buffer
	g := NewGame(WithOutput(&out))
	rec := &recorder{quit: "quit"}

	err := Run(g, strings.NewReader("look"), rec.dispatch)

	require.NoError(t, err)
	assert.Equal(t, []string{"look"}, rec.lines)
	assert.False(t, g.Running())
	assert.True(t, strings.HasSuffix(out.String(), "ok look\n"+farewellMessage+"\n"), out.String())
}

func TestRunEmptyInput(t *testing.T) {
	var out bytes.Buffer
	g := NewGame(WithOutput(&out))

	err := Run(g, strings.NewReader(""), (&recorder{}).dispatch)

	require.NoError(t, err)
	assert.Equal(t, welcomeMessage+"\n> "+farewellMessage+"\n", out.String())
}

func TestRunReportsReadErrors(t *testing.T) {
	boom := errors.New("boom")
	g := NewGame()

	err := Run(g, iotest.ErrReader(boom), (&recorder{}).dispatch)

	assert.ErrorIs(t, err, boom)
	assert.False(t, g.Running())
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestRunReportsWriteErrors(t *testing.T) {
	broken := errors.New("broken pipe")
	g := NewGame(WithOutput(failingWriter{err: broken}))
	rec := &recorder{quit: "quit"}

	err := Run(g, strings.NewReader("look\nquit\n"), rec.dispatch)

	assert.ErrorIs(t, err, broken)
	assert.Empty(t, rec.lines)
}
