package console

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rileyhilliard/raspimon/internal/config"
	"github.com/rileyhilliard/raspimon/internal/errors"
	exectesting "github.com/rileyhilliard/raspimon/internal/exec/testing"
	"github.com/rileyhilliard/raspimon/internal/logger"
	"github.com/rileyhilliard/raspimon/internal/query"
	"github.com/rileyhilliard/raspimon/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	ui.DisableColors()
	os.Exit(m.Run())
}

// fakeQuery returns fixed output and counts its runs.
type fakeQuery struct {
	kind  query.Kind
	out   string
	err   error
	calls int
}

func (f *fakeQuery) Kind() query.Kind { return f.kind }

func (f *fakeQuery) Run(ctx context.Context) (string, error) {
	f.calls++
	return f.out, f.err
}

func fakeSet() (map[query.Kind]*fakeQuery, []query.Query) {
	byKind := make(map[query.Kind]*fakeQuery)
	queries := make([]query.Query, 0, len(query.Kinds))
	for _, k := range query.Kinds {
		f := &fakeQuery{kind: k, out: fmt.Sprintf("<%s report>\n", k)}
		byKind[k] = f
		queries = append(queries, f)
	}
	return byKind, queries
}

func totalCalls(byKind map[query.Kind]*fakeQuery) int {
	n := 0
	for _, f := range byKind {
		n += f.calls
	}
	return n
}

func run(t *testing.T, input string, queries []query.Query, opts ...ConsoleOption) string {
	t.Helper()
	var out bytes.Buffer
	c := New(strings.NewReader(input), &out, DefaultOptions(queries), opts...)
	require.NoError(t, c.Run(context.Background()))
	return out.String()
}

func TestRun_EachLetterDispatchesExactlyOneQuery(t *testing.T) {
	keys := map[string]query.Kind{
		"a": query.KindTemperature,
		"b": query.KindCPU,
		"c": query.KindDisk,
		"d": query.KindNetwork,
		"e": query.KindSessions,
		"f": query.KindGPIO,
		"g": query.KindConfig,
	}

	for key, kind := range keys {
		t.Run(key, func(t *testing.T) {
			byKind, queries := fakeSet()

			out := run(t, key+"\nq\n", queries)

			assert.Equal(t, 1, byKind[kind].calls)
			assert.Equal(t, 1, totalCalls(byKind))
			assert.Contains(t, out, fmt.Sprintf("<%s report>", kind))
			assert.Equal(t, 2, strings.Count(out, ExitHint), "menu shown again after the report")
		})
	}
}

func TestRun_ExitInvokesNothing(t *testing.T) {
	for _, input := range []string{"q\n", "Q\n", "quit\n", "EXIT\n", "  q  \n"} {
		t.Run(strings.TrimSpace(input), func(t *testing.T) {
			byKind, queries := fakeSet()

			out := run(t, input, queries)

			assert.Zero(t, totalCalls(byKind))
			assert.Equal(t, 1, strings.Count(out, ExitHint))
		})
	}
}

func TestRun_EOFExits(t *testing.T) {
	byKind, queries := fakeSet()

	run(t, "", queries)
	assert.Zero(t, totalCalls(byKind))

	run(t, "b", queries)
	assert.Equal(t, 1, byKind[query.KindCPU].calls, "final line without newline still counts")
}

func TestRun_CaseInsensitive(t *testing.T) {
	byKind, queries := fakeSet()

	run(t, "C\nq\n", queries)

	assert.Equal(t, 1, byKind[query.KindDisk].calls)
}

func TestRun_UnrecognizedSelection(t *testing.T) {
	for _, input := range []string{"z", "", "ab", "7", "help me"} {
		t.Run(input, func(t *testing.T) {
			byKind, queries := fakeSet()

			out := run(t, input+"\nq\n", queries)

			assert.Zero(t, totalCalls(byKind))
			assert.Contains(t, out, fmt.Sprintf("unrecognized selection %q", input))
			assert.Contains(t, out, "Choose one of: a, b, c, d, e, f, g, h, q")
			assert.Equal(t, 2, strings.Count(out, ExitHint))
		})
	}
}

func TestRun_ScenarioTemperatureThenExit(t *testing.T) {
	runner := exectesting.NewFakeRunner().OnOutput(config.DefaultTemperatureCommand, "temp=47.2'C\n")
	queries := query.NewSet(config.DefaultConfig(), query.Deps{Runner: runner})

	out := run(t, "a\nq\n", queries)

	assert.Equal(t, 1, strings.Count(out, "temp=47.2'C"))
	assert.Equal(t, []string{config.DefaultTemperatureCommand}, runner.CaptureCalls)
}

func TestRun_ScenarioBadInputThenCPU(t *testing.T) {
	topOut := "top - 10:00:01 up 3 days,  1 user,  load average: 0.08, 0.03, 0.01\n"
	runner := exectesting.NewFakeRunner().OnOutput(config.DefaultCPUCommand, topOut)
	queries := query.NewSet(config.DefaultConfig(), query.Deps{Runner: runner})

	out := run(t, "z\nb\nq\n", queries)

	assert.Equal(t, 1, strings.Count(out, "unrecognized selection"))
	assert.Equal(t, 1, strings.Count(out, topOut))
	assert.Less(t, strings.Index(out, "unrecognized selection"), strings.Index(out, topOut))
	assert.Equal(t, []string{config.DefaultCPUCommand}, runner.CaptureCalls)
}

func TestRun_ToolFailureKeepsLooping(t *testing.T) {
	// No commands configured: every tool looks missing
	runner := exectesting.NewFakeRunner().OnOutput(config.DefaultDiskCommand, "/dev/root 29G\n")
	queries := query.NewSet(config.DefaultConfig(), query.Deps{Runner: runner})

	out := run(t, "b\nf\nc\nq\n", queries)

	assert.Contains(t, out, "CPU load unavailable")
	assert.Contains(t, out, "GPIO status unavailable")
	assert.Contains(t, out, "/dev/root 29G")
	assert.Equal(t, 4, strings.Count(out, ExitHint))
}

func TestRun_OutputIsVerbatim(t *testing.T) {
	byKind, queries := fakeSet()
	raw := "  col1\tcol2  \n\n\x1b[1mbold\x1b[0m\n"
	byKind[query.KindNetwork].out = raw

	out := run(t, "d\nq\n", queries)

	assert.Contains(t, out, raw)
}

func TestRun_AppendsMissingNewline(t *testing.T) {
	byKind, queries := fakeSet()
	byKind[query.KindSessions].out = "no trailing newline"

	out := run(t, "e\nq\n", queries)

	assert.Contains(t, out, "no trailing newline\n")
}

// stampWriter records when each write containing marker arrives.
type stampWriter struct {
	start  time.Time
	marker string
	hits   []time.Duration
	buf    bytes.Buffer
}

func (w *stampWriter) Write(p []byte) (int, error) {
	if strings.Contains(string(p), w.marker) {
		w.hits = append(w.hits, time.Since(w.start))
	}
	return w.buf.Write(p)
}

func TestRun_TemperatureWatchStreamsReadings(t *testing.T) {
	runner := exectesting.NewFakeRunner().OnOutput("vcgencmd measure_temp", "temp=47.2'C\n")
	interval := 100 * time.Millisecond
	temp := &query.TemperatureQuery{Command: "vcgencmd measure_temp", Samples: 3, Interval: interval, Runner: runner}
	_, queries := fakeSet()
	queries[0] = temp

	w := &stampWriter{start: time.Now(), marker: "temp="}
	c := New(strings.NewReader("a\nq\n"), w, DefaultOptions(queries))
	require.NoError(t, c.Run(context.Background()))

	require.Len(t, w.hits, 3, "each reading is written on its own")
	assert.Less(t, w.hits[0], interval, "first reading shows before the watch ends")
	assert.Equal(t, 3, strings.Count(w.buf.String(), "temp=47.2'C\n"))
}

// streamQuery writes its chunks through Stream and fails with err.
type streamQuery struct {
	chunks []string
	err    error
}

func (s *streamQuery) Kind() query.Kind { return query.KindTemperature }

func (s *streamQuery) Run(ctx context.Context) (string, error) {
	return strings.Join(s.chunks, ""), s.err
}

func (s *streamQuery) Stream(ctx context.Context, w io.Writer) error {
	for _, c := range s.chunks {
		if _, err := io.WriteString(w, c); err != nil {
			return err
		}
	}
	return s.err
}

func TestRun_StreamingQueryEndsWithNewline(t *testing.T) {
	_, queries := fakeSet()
	queries[0] = &streamQuery{chunks: []string{"temp=", "47.2'C"}, err: context.Canceled}

	out := run(t, "a\nq\n", queries)

	assert.Contains(t, out, "temp=47.2'C\n")
	assert.Contains(t, out, "context canceled")
}

func TestRun_ConfigMenuKeepsTypedAheadSelections(t *testing.T) {
	runner := exectesting.NewFakeRunner().On(config.DefaultConfigCommand, exectesting.Response{ReadStdin: true})
	stdin := strings.NewReader("g\nz\nq\n")
	queries := query.NewSet(config.DefaultConfig(), query.Deps{
		Runner: runner,
		Stdin:  stdin,
		Stdout: io.Discard,
		Stderr: io.Discard,
	})

	var out bytes.Buffer
	c := New(stdin, &out, DefaultOptions(queries))
	require.NoError(t, c.Run(context.Background()))

	require.Len(t, runner.AttachCalls, 1)
	assert.Empty(t, runner.AttachCalls[0].Stdin, "the console already buffered the piped lines")
	assert.Contains(t, out.String(), `unrecognized selection "z"`)
}

func TestRun_PartialOutputAndError(t *testing.T) {
	byKind, queries := fakeSet()
	byKind[query.KindTemperature].out = "temp=47.2'C\n"
	byKind[query.KindTemperature].err = context.Canceled

	out := run(t, "a\nq\n", queries)

	assert.Contains(t, out, "temp=47.2'C\n")
	assert.Contains(t, out, "context canceled")
}

func TestRun_Help(t *testing.T) {
	byKind, queries := fakeSet()

	out := run(t, "h\nHELP\nq\n", queries, WithHelp("# Help\n\nsome help"))

	assert.Zero(t, totalCalls(byKind))
	assert.Equal(t, 2, strings.Count(out, "some help"))
}

func TestRun_HelpRenderFailureFallsBack(t *testing.T) {
	_, queries := fakeSet()
	failing := func(string) (string, error) { return "", fmt.Errorf("boom") }

	out := run(t, "h\nq\n", queries, WithHelp("raw help"), WithRenderer(failing))

	assert.Contains(t, out, "raw help\n")
}

func TestRun_HelpDocumentsEveryKey(t *testing.T) {
	for _, key := range []string{"| a |", "| b |", "| c |", "| d |", "| e |", "| f |", "| g |", "| q |"} {
		assert.Contains(t, HelpMarkdown, key)
	}
}

func TestRun_HeaderPrintedOnce(t *testing.T) {
	_, queries := fakeSet()

	out := run(t, "z\nq\n", queries, WithHeader(ui.HeaderInfo{Version: "v1.2.3", Tagline: "pi diagnostics"}))

	assert.Equal(t, 1, strings.Count(out, "pi diagnostics"))
	assert.True(t, strings.HasPrefix(out, "raspimon v1.2.3"))
}

func TestRun_MenuLists(t *testing.T) {
	_, queries := fakeSet()

	out := run(t, "q\n", queries)

	for _, label := range []string{"a) Temperature", "b) CPU load", "c) Disk info", "d) Network info",
		"e) Devices connected via SSH", "f) GPIO status", "g) Raspberry Pi config menu", "h) Help"} {
		assert.Contains(t, out, label)
	}
}

func TestRun_DebugLogging(t *testing.T) {
	_, queries := fakeSet()
	log := logger.NewBufferLogger()

	run(t, "a\nz\nq\n", queries, WithLogger(log))

	assert.True(t, log.Contains("dispatching temperature"))
	assert.True(t, log.Contains(`unrecognized selection "z"`))
	assert.True(t, log.Contains("exit requested"))
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestRun_ReadError(t *testing.T) {
	_, queries := fakeSet()
	c := New(errReader{}, io.Discard, DefaultOptions(queries))

	err := c.Run(context.Background())

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrExec))
	assert.ErrorIs(t, err, io.ErrClosedPipe)
}

func TestRun_CancelledContext(t *testing.T) {
	byKind, queries := fakeSet()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New(strings.NewReader("a\n"), io.Discard, DefaultOptions(queries))

	assert.ErrorIs(t, c.Run(ctx), context.Canceled)
	assert.Zero(t, totalCalls(byKind))
}

func TestDefaultOptions(t *testing.T) {
	_, queries := fakeSet()
	queries = append(queries, &fakeQuery{kind: query.Kind("battery")})

	opts := DefaultOptions(queries)

	require.Len(t, opts, 7)
	keys := make([]string, len(opts))
	for i, o := range opts {
		keys[i] = o.Key
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g"}, keys)
	assert.Equal(t, "(needs sudo)", opts[6].Note)
}
