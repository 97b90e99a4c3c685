// Interactive catalog menu. The menu parses raw answers, fills in configured
// defaults, and prints the manager's outcome lines verbatim.
package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/mesh-intelligence/librarian/internal/library"
	"github.com/mesh-intelligence/librarian/pkg/types"
)

const tracerName = "librarian/cli"

const (
	msgInvalidNumber = "Invalid number."
	msgInvalidChoice = "Invalid choice. Try again."
	msgGoodbye       = "Goodbye!"
	msgInputTooLong  = "Input line too long."
)

// maxInputLine caps one answer. Longer lines are skipped and reported.
const maxInputLine = 1 << 20

var (
	// errInputClosed ends the session when input runs out mid-prompt.
	errInputClosed = errors.New("input closed")
	// errLineTooLong abandons the current prompt; the session goes on.
	errLineTooLong = errors.New("input line too long")
)

const menuText = `
=== Library Menu ===
1) Add PrintedBook
2) Add EBook
3) List all books
4) Search (title/author/category)
5) Borrow by ID
6) Return by ID
7) Delete by ID
8) Stats
9) Set copies by ID
10) Show by ID
0) Exit`

func newMenuCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Open the interactive catalog menu (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, flags)
		},
	}
}

func runMenu(cmd *cobra.Command, flags *rootFlags) error {
	cfg, _, err := loadConfig(flags)
	if err != nil {
		return userError("load config: %w", err)
	}
	logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return userError("%w", err)
	}

	mgr := library.NewManager(library.WithLogger(logger))
	lines := &lineSplitter{max: maxInputLine}
	in := bufio.NewScanner(cmd.InOrStdin())
	in.Buffer(make([]byte, 0, 4096), lines.max)
	in.Split(lines.split)
	m := &menu{
		in:     in,
		lines:  lines,
		out:    cmd.OutOrStdout(),
		cfg:    cfg,
		mgr:    mgr,
		tracer: otel.Tracer(tracerName),
		logger: logger,
	}
	logger.Info("session started", "session", mgr.SessionID().String())
	return m.run(cmd.Context())
}

// menu drives one Manager from line-oriented input.
type menu struct {
	in     *bufio.Scanner
	lines  *lineSplitter
	out    io.Writer
	cfg    types.Config
	mgr    *library.Manager
	tracer trace.Tracer
	logger *slog.Logger
}

// action is one menu entry. It returns errInputClosed when input ends.
type action struct {
	name string
	fn   func(ctx context.Context, span trace.Span) error
}

func (m *menu) actions() map[string]action {
	return map[string]action{
		"1":  {"add_printed", m.addPrinted},
		"2":  {"add_ebook", m.addEBook},
		"3":  {"list", m.list},
		"4":  {"search", m.search},
		"5":  {"borrow", m.byID("Book ID to borrow: ", m.mgr.Borrow)},
		"6":  {"return", m.byID("Book ID to return: ", m.mgr.ReturnItem)},
		"7":  {"delete", m.byID("Book ID to delete: ", m.mgr.Delete)},
		"8":  {"stats", m.stats},
		"9":  {"set_copies", m.setCopies},
		"10": {"show", m.byID("Book ID to show: ", m.mgr.Show)},
	}
}

// run loops until the user exits or input ends.
func (m *menu) run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	actions := m.actions()
	for {
		fmt.Fprintln(m.out, menuText)
		choice, err := m.ask("Choose: ")
		switch {
		case errors.Is(err, errInputClosed):
			fmt.Fprintln(m.out)
			fmt.Fprintln(m.out, msgGoodbye)
			return m.in.Err()
		case errors.Is(err, errLineTooLong):
			fmt.Fprintln(m.out, msgInputTooLong)
			continue
		}

		switch choice {
		case "0", "q", "quit", "exit":
			fmt.Fprintln(m.out, msgGoodbye)
			return nil
		}

		a, ok := actions[choice]
		if !ok {
			fmt.Fprintln(m.out, msgInvalidChoice)
			continue
		}
		err = m.do(ctx, a)
		switch {
		case errors.Is(err, errInputClosed):
			fmt.Fprintln(m.out)
			fmt.Fprintln(m.out, msgGoodbye)
			return m.in.Err()
		case errors.Is(err, errLineTooLong):
			fmt.Fprintln(m.out, msgInputTooLong)
		}
	}
}

// do runs a inside a span named after it.
func (m *menu) do(ctx context.Context, a action) error {
	ctx, span := m.tracer.Start(ctx, "menu."+a.name)
	defer span.End()

	err := a.fn(ctx, span)
	span.SetAttributes(attribute.Int("catalog.size", m.mgr.Len()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (m *menu) addPrinted(ctx context.Context, span trace.Span) error {
	title, err := m.ask("Title: ")
	if err != nil {
		return err
	}
	author, err := m.ask("Author: ")
	if err != nil {
		return err
	}
	pages, ok, err := m.askInt("Pages: ", m.cfg.DefaultPages)
	if err != nil || !ok {
		return err
	}
	weight, ok, err := m.askInt("Weight (grams): ", m.cfg.DefaultWeightGrams)
	if err != nil || !ok {
		return err
	}
	copies, ok, err := m.askInt("Copies: ", m.cfg.DefaultCopies)
	if err != nil || !ok {
		return err
	}

	m.add(span, types.NewPrintedBook(title, author, pages, weight, copies))
	return nil
}

func (m *menu) addEBook(ctx context.Context, span trace.Span) error {
	title, err := m.ask("Title: ")
	if err != nil {
		return err
	}
	author, err := m.ask("Author: ")
	if err != nil {
		return err
	}
	format, err := m.ask("Format (PDF/EPUB/MOBI): ")
	if err != nil {
		return err
	}
	if format == "" {
		format = m.cfg.DefaultFormat
	}
	size, ok, err := m.askFloat("Size (MB): ", m.cfg.DefaultSizeMB)
	if err != nil || !ok {
		return err
	}
	copies, ok, err := m.askInt("Copies: ", m.cfg.DefaultCopies)
	if err != nil || !ok {
		return err
	}

	m.add(span, types.NewEBook(title, author, format, size, copies))
	return nil
}

func (m *menu) add(span trace.Span, item types.Item) {
	id := m.mgr.Add(item)
	span.SetAttributes(attribute.Int("catalog.id", id))
	fmt.Fprintf(m.out, "Added %s with ID %d\n", item.Kind(), id)
}

func (m *menu) list(ctx context.Context, span trace.Span) error {
	m.printLines(m.mgr.ListAll())
	return nil
}

func (m *menu) search(ctx context.Context, span trace.Span) error {
	keyword, err := m.askRaw("Keyword: ")
	if err != nil {
		return err
	}
	m.printLines(m.mgr.Search(keyword))
	return nil
}

func (m *menu) stats(ctx context.Context, span trace.Span) error {
	m.printLines(m.mgr.Stats().Lines())
	return nil
}

// byID builds an action that reads an id and prints the single outcome of op.
func (m *menu) byID(label string, op func(id int) string) func(context.Context, trace.Span) error {
	return func(ctx context.Context, span trace.Span) error {
		id, ok, err := m.askID(label)
		if err != nil || !ok {
			return err
		}
		span.SetAttributes(attribute.Int("catalog.id", id))
		outcome := op(id)
		span.SetAttributes(attribute.String("outcome", outcome))
		fmt.Fprintln(m.out, outcome)
		return nil
	}
}

func (m *menu) setCopies(ctx context.Context, span trace.Span) error {
	id, ok, err := m.askID("Book ID to update: ")
	if err != nil || !ok {
		return err
	}
	span.SetAttributes(attribute.Int("catalog.id", id))
	raw, err := m.ask("Copies: ")
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Fprintln(m.out, msgInvalidNumber)
		return nil
	}

	outcome, err := m.mgr.SetCopies(id, n)
	if err != nil {
		m.logger.Warn("set copies rejected", "id", id, "copies", n, "err", err)
		span.SetAttributes(attribute.String("outcome", "rejected"))
		fmt.Fprintln(m.out, "Error:", err)
		return nil
	}
	span.SetAttributes(attribute.String("outcome", outcome))
	fmt.Fprintln(m.out, outcome)
	return nil
}

func (m *menu) printLines(lines []string) {
	fmt.Fprintln(m.out, strings.Join(lines, "\n"))
}

// askRaw prints label and returns the next input line unmodified.
func (m *menu) askRaw(label string) (string, error) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", errInputClosed
	}
	if m.lines.takeDropped() {
		return "", errLineTooLong
	}
	return m.in.Text(), nil
}

// ask returns the next input line with surrounding whitespace removed.
func (m *menu) ask(label string) (string, error) {
	s, err := m.askRaw(label)
	return strings.TrimSpace(s), err
}

// askInt reads an integer, using def for a blank answer. It reports false
// after printing a message when the answer is not a number.
func (m *menu) askInt(label string, def int) (int, bool, error) {
	raw, err := m.ask(label)
	if err != nil {
		return 0, false, err
	}
	if raw == "" {
		return def, true, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Fprintln(m.out, msgInvalidNumber)
		return 0, false, nil
	}
	return n, true, nil
}

func (m *menu) askFloat(label string, def float64) (float64, bool, error) {
	raw, err := m.ask(label)
	if err != nil {
		return 0, false, err
	}
	if raw == "" {
		return def, true, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		fmt.Fprintln(m.out, msgInvalidNumber)
		return 0, false, nil
	}
	return f, true, nil
}

// askID reads an item id. Ids have no default.
func (m *menu) askID(label string) (int, bool, error) {
	raw, err := m.ask(label)
	if err != nil {
		return 0, false, err
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Fprintln(m.out, msgInvalidNumber)
		return 0, false, nil
	}
	return id, true, nil
}

// lineSplitter splits input like bufio.ScanLines, except that a line longer
// than max is discarded and surfaces as an empty token with dropped set.
// A plain Scanner would stop for good with bufio.ErrTooLong instead.
type lineSplitter struct {
	max      int
	skipping bool
	dropped  bool
}

func (l *lineSplitter) split(data []byte, atEOF bool) (int, []byte, error) {
	i := bytes.IndexByte(data, '\n')
	switch {
	case l.skipping && i >= 0:
		l.skipping, l.dropped = false, true
		return i + 1, []byte{}, nil
	case l.skipping && atEOF:
		l.skipping, l.dropped = false, true
		return len(data), []byte{}, nil
	case i < 0 && !atEOF && len(data) >= l.max:
		l.skipping = true
		return len(data), nil, nil
	case l.skipping:
		return len(data), nil, nil
	}
	return bufio.ScanLines(data, atEOF)
}

// takeDropped reports whether the last token stood for a discarded line.
func (l *lineSplitter) takeDropped() bool {
	d := l.dropped
	l.dropped = false
	return d
}
