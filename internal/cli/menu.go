package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"sentilex/internal/domain"
	"sentilex/internal/port"
	"sentilex/internal/usecase"
)

const menuText = `Main Menu:
1 - Display Positive Words
2 - Display Negative Words
3 - Generate Sentiment Analysis
4 - Print Summary
0 - Exit
>> `

// Menu is the interactive loop shown after the batch pass.
type Menu struct {
	in      *bufio.Scanner
	out     io.Writer
	screen  port.Screen
	sink    port.Sink
	session *session
	matches *usecase.MatchSet
	summary domain.Summary
	pause   bool
}

// newMenu reads choices from in, which may already have been used by
// confirm.
func newMenu(in *bufio.Scanner, out io.Writer, screen port.Screen, sink port.Sink, s *session, matches *usecase.MatchSet, summary domain.Summary, pause bool) *Menu {
	return &Menu{
		in:      in,
		out:     out,
		screen:  screen,
		sink:    sink,
		session: s,
		matches: matches,
		summary: summary,
		pause:   pause,
	}
}

// Run shows the menu until the user picks 0 or input ends.
func (m *Menu) Run() error {
	for {
		fmt.Fprint(m.out, menuText)
		input, ok := m.readToken()
		if !ok {
			return m.in.Err()
		}

		choice, err := parseChoice(input)
		if err != nil {
			fmt.Fprintln(m.out, "Invalid input. Please enter a valid number.")
			continue
		}

		switch choice {
		case 1:
			err = m.showWords(domain.Positive)
		case 2:
			err = m.showWords(domain.Negative)
		case 3:
			err = m.reviewLoop()
		case 4:
			if err = m.sink.Summary(m.summary); err == nil {
				fmt.Fprintln(m.out)
			}
		case 0:
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice. Try again.")
		}
		if err != nil {
			return err
		}
	}
}

func (m *Menu) showWords(p domain.Polarity) error {
	if err := m.sink.Words(m.session.batch.Listing(m.matches, p)); err != nil {
		return err
	}
	if m.pause {
		fmt.Fprint(m.out, "Press Enter to Continue...")
		m.in.Scan()
		m.screen.Clear()
	}
	return nil
}

func (m *Menu) reviewLoop() error {
	m.screen.Clear()
	for {
		fmt.Fprint(m.out, "Enter review number to analyze (Q to exit): ")
		input, ok := m.readToken()
		if !ok {
			return m.in.Err()
		}
		if strings.EqualFold(input, "q") {
			m.screen.Clear()
			return nil
		}

		ordinal, err := parseChoice(input)
		if err != nil {
			fmt.Fprintln(m.out, "Invalid input. Please enter a valid number or Q to exit.")
			continue
		}

		report, err := m.session.reports.AnalyzeReview(ordinal)
		if errors.Is(err, domain.ErrInvalidSelection) {
			fmt.Fprintf(m.out, "Invalid review number. Please enter a number between 1 and %d.\n", m.session.corpus.Len())
			continue
		}
		if err != nil {
			return err
		}
		if err := m.sink.Review(report); err != nil {
			return err
		}
		fmt.Fprintln(m.out)
	}
}

// readToken returns the next non-empty trimmed line.
func (m *Menu) readToken() (string, bool) {
	for m.in.Scan() {
		if s := strings.TrimSpace(m.in.Text()); s != "" {
			return s, true
		}
	}
	return "", false
}

func parseChoice(input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidSelection, input)
	}
	return n, nil
}

// confirm asks a yes/no question. Only "1", "y" and "yes" count as yes.
func confirm(in *bufio.Scanner, out io.Writer, question string) (bool, error) {
	fmt.Fprintf(out, "%s Yes - 1, No - 0\n>> ", question)
	if !in.Scan() {
		return false, in.Err()
	}
	switch strings.ToLower(strings.TrimSpace(in.Text())) {
	case "1", "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
