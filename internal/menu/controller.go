// Package menu drives the interactive numbered menu. Each choice prompts for
// its inputs, runs the matching triage or report operation and prints the
// outcome before the menu is shown again.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/blackwell-systems/triage/internal/output"
	"github.com/blackwell-systems/triage/internal/report"
	"github.com/blackwell-systems/triage/internal/session"
	"github.com/blackwell-systems/triage/internal/triage"
)

const title = "===== DIGITAL FORENSICS & DATA RECOVERY TOOL ====="

// Command is a menu choice.
type Command int

const (
	CmdScan Command = iota + 1
	CmdMetadata
	CmdHash
	CmdRecover
	CmdSearch
	CmdReport
	CmdClearLog
	CmdExit
)

var labels = map[Command]string{
	CmdScan:     "Scan Directory (list files)",
	CmdMetadata: "View File Metadata",
	CmdHash:     "Generate File Hash (MD5 / SHA-256)",
	CmdRecover:  "Recover Files (copy from a folder)",
	CmdSearch:   "Search Keyword Inside Files",
	CmdReport:   "Generate Forensic Report from Log",
	CmdClearLog: "Clear Current Session Log",
	CmdExit:     "Exit",
}

// String returns the menu label.
func (c Command) String() string {
	if label, ok := labels[c]; ok {
		return label
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// ParseCommand converts a typed choice into a Command.
func ParseCommand(input string) (Command, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, false
	}
	cmd := Command(n)
	if _, ok := labels[cmd]; !ok {
		return 0, false
	}
	return cmd, true
}

// Reader is the input source for the menu.
type Reader interface {
	ReadString(delim byte) (string, error)
}

// Controller owns one interactive session.
type Controller struct {
	in      Reader
	out     io.Writer
	svc     *triage.Service
	reports *report.Manager
	log     *session.Log

	handlers map[Command]func()

	bold *color.Color
	cyan *color.Color
	red  *color.Color
}

// New creates a Controller reading choices from in and writing to out.
func New(in io.Reader, out io.Writer, svc *triage.Service, reports *report.Manager, log *session.Log) *Controller {
	return NewWithReader(bufio.NewReader(in), out, svc, reports, log)
}

// NewWithReader allows injection of a Reader for testing.
func NewWithReader(in Reader, out io.Writer, svc *triage.Service, reports *report.Manager, log *session.Log) *Controller {
	c := &Controller{
		in:      in,
		out:     out,
		svc:     svc,
		reports: reports,
		log:     log,
		bold:    color.New(color.Bold),
		cyan:    color.New(color.FgCyan),
		red:     color.New(color.FgRed),
	}
	c.handlers = map[Command]func(){
		CmdScan:     c.scan,
		CmdMetadata: c.metadata,
		CmdHash:     c.hash,
		CmdRecover:  c.recoverFiles,
		CmdSearch:   c.search,
		CmdReport:   c.generateReport,
		CmdClearLog: c.clearLog,
	}
	return c
}

// Run shows the menu until the user exits or input ends.
func (c *Controller) Run() error {
	for {
		c.printMenu()

		line, ok := c.readLine()
		if !ok {
			fmt.Fprintln(c.out)
			c.exit()
			return nil
		}

		cmd, ok := ParseCommand(line)
		if !ok {
			c.fail("Invalid choice. Try again.")
			continue
		}
		if cmd == CmdExit {
			c.exit()
			return nil
		}
		c.handlers[cmd]()
	}
}

func (c *Controller) printMenu() {
	fmt.Fprintln(c.out)
	c.bold.Fprintln(c.out, title)
	for cmd := CmdScan; cmd <= CmdExit; cmd++ {
		fmt.Fprintf(c.out, "%d. %s\n", int(cmd), cmd)
	}
	c.cyan.Fprint(c.out, "Enter choice: ")
}

// readLine returns the next input line without its terminator. ok is false
// once input is exhausted.
func (c *Controller) readLine() (line string, ok bool) {
	s, err := c.in.ReadString('\n')
	if err != nil && s == "" {
		return "", false
	}
	return strings.TrimRight(s, "\r\n"), true
}

// prompt prints label and reads a trimmed answer. End of input reads as an
// empty answer.
func (c *Controller) prompt(label string) string {
	fmt.Fprint(c.out, label)
	line, _ := c.readLine()
	return strings.TrimSpace(line)
}

func (c *Controller) fail(msg string) {
	c.red.Fprintln(c.out, msg)
}

func (c *Controller) exit() {
	fmt.Fprintln(c.out, "Exiting... Goodbye!")
}

func (c *Controller) scan() {
	path := c.prompt("Enter directory path to scan: ")

	listing, err := c.svc.List(path)
	switch {
	case errors.Is(err, triage.ErrInvalidPath):
		c.fail("Invalid directory path!")
	case err != nil:
		if listing != nil {
			fmt.Fprint(c.out, output.RenderListing(listing))
		}
		c.fail("No files found or access denied.")
	default:
		fmt.Fprint(c.out, output.RenderListing(listing))
	}
}

func (c *Controller) metadata() {
	path := c.prompt("Enter file path: ")

	md, err := c.svc.Inspect(path)
	if err != nil {
		c.fail("File does not exist!")
		return
	}
	fmt.Fprint(c.out, output.RenderMetadata(md))
}

func (c *Controller) hash() {
	path := c.prompt("Enter file path: ")
	if err := triage.RequireRegularFile(path); err != nil {
		c.fail("Invalid file path!")
		return
	}

	fmt.Fprintln(c.out, "Choose algorithm: 1) MD5  2) SHA-256")
	alg, ok := triage.ParseAlgorithm(c.prompt("Enter choice: "))
	if !ok {
		fmt.Fprintln(c.out, "Invalid choice. Defaulting to SHA-256.")
	}

	res, err := c.svc.Hash(path, alg)
	switch {
	case errors.Is(err, triage.ErrInvalidPath):
		c.fail("Invalid file path!")
	case err != nil:
		c.fail("Failed to compute hash.")
	default:
		fmt.Fprintf(c.out, "%s hash: %s\n", res.Algorithm, res.Digest)
	}
}

func (c *Controller) recoverFiles() {
	src := c.prompt("Enter source folder (simulate deleted files folder): ")
	if _, err := triage.RequireDir(src); err != nil {
		c.fail("Invalid source folder!")
		return
	}

	dst := c.prompt(fmt.Sprintf("Enter destination folder (or press Enter for '%s'): ", c.svc.RecoveredDir()))

	res, err := c.svc.Recover(src, dst)
	switch {
	case errors.Is(err, triage.ErrInvalidPath):
		c.fail("Invalid source folder!")
	case errors.Is(err, triage.ErrAccessDenied):
		c.fail("No files to recover or access denied.")
	case err != nil:
		c.fail(fmt.Sprintf("Recovery failed: %v", err))
	default:
		fmt.Fprint(c.out, output.RenderRecovery(res))
	}
}

func (c *Controller) search() {
	root := c.prompt("Enter root directory to search: ")
	if _, err := triage.RequireDir(root); err != nil {
		c.fail("Invalid directory!")
		return
	}

	keyword := c.prompt("Enter keyword (case-insensitive): ")
	if keyword == "" {
		c.fail("Keyword cannot be empty!")
		return
	}

	ext := c.prompt("Limit by extension (e.g., txt) or press Enter for all: ")

	res, err := c.svc.Search(root, keyword, ext)
	switch {
	case errors.Is(err, triage.ErrInvalidPath):
		c.fail("Invalid directory!")
	case errors.Is(err, triage.ErrEmptyKeyword):
		c.fail("Keyword cannot be empty!")
	case err != nil:
		c.fail(fmt.Sprintf("Search failed: %v", err))
	default:
		fmt.Fprint(c.out, output.RenderHits(res.Hits))
	}
}

func (c *Controller) generateReport() {
	rep, err := c.reports.Generate(c.log.ID(), c.log.Entries())
	switch {
	case errors.Is(err, report.ErrEmptyLog):
		fmt.Fprintln(c.out, "No log entries in this session. Perform some actions first.")
	case err != nil:
		c.fail(fmt.Sprintf("Error generating report: %v", err))
	default:
		fmt.Fprintf(c.out, "Report saved at: %s\n", rep.Path)
	}
}

func (c *Controller) clearLog() {
	c.log.Clear()
	fmt.Fprintln(c.out, "Session log cleared.")
}
