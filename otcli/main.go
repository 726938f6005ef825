package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/sfntnames"
	"github.com/pterm/pterm"
)

// tracer traces with key 'tyse.fonts'
func tracer() tracing.Trace {
	return tracing.Select("tyse.fonts")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":     "go",
		"trace.tyse.fonts":    "Info",
		"trace.sfntnames":     "Error",
		"trace.font.opentype": "Error",
		"trace.font.query":    "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "", "Font file to load (TTF, OTF or TTC)")
	index := flag.Int("index", 0, "Index of font within a collection")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError)          // will set the correct level later
	pterm.Info.Println("Welcome to the SFNT names CLI") // colored welcome message
	//
	// set up REPL
	repl, err := readline.New("name > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl}
	//
	// load font to use
	if err := intp.loadFont(*fontname, *index); err != nil { // font name provided by flag
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	faces []*sfntnames.Face
	face  *sfntnames.Face
	repl  *readline.Instance
}

func (intp *Intp) String() string {
	if intp == nil || intp.face == nil {
		return "()"
	}
	family, subfamily := intp.face.FamilyName()
	return fmt.Sprintf("( font #%d of %d: %s %s )", intp.face.Index, len(intp.faces),
		family, subfamily)
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := intp.parseCommand(line)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		err, quit := intp.execute(cmd)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

type Op struct {
	code int
	arg  string
}

type Command struct {
	count int
	op    [32]Op
}

const NOOP = -1
const (
	// op-code QUIT will not have arguments
	QUIT int = iota
	// op-codes below may have arguments
	HELP
	COUNT
	NAME
	LIST
	DECODE
	LANG
	INFO
	TABLES
	FACE
)

var opMap = map[string]int{
	"quit":   QUIT,
	"help":   HELP,
	"count":  COUNT,
	"name":   NAME,
	"list":   LIST,
	"decode": DECODE,
	"lang":   LANG,
	"info":   INFO,
	"tables": TABLES,
	"face":   FACE,
}

var opNames = []string{
	"quit",
	"help",
	"count",
	"name",
	"list",
	"decode",
	"lang",
	"info",
	"tables",
	"face",
}

var command = Command{}

func resetCommand() {
	command.count = 0
	for i := range command.op {
		command.op[i].code = NOOP
		command.op[i].arg = ""
	}
}

func (intp *Intp) parseCommand(line string) (*Command, error) {
	resetCommand()
	steps := strings.Fields(line)
	if len(steps) > len(command.op) {
		return nil, fmt.Errorf("too many commands in one line: %d", len(steps))
	}
	command.count = len(steps)
	for i, step := range steps {
		c := strings.Split(step, ":") // e.g.  "name:5" or "lang:0x8000" or "info:de" or "help:lang"
		code, ok := opMap[strings.ToLower(c[0])]
		if !ok {
			code = HELP
		}
		command.op[i].code = code
		command.op[i].arg = ""
		if command.op[i].code == QUIT {
			return &command, nil
		}
		tracer().Debugf("parsed command: %v", c)
		command.op[i].arg = getOptArg(c, 1)
		if command.op[i].arg == "" {
			tracer().Debugf("%s", opNames[command.op[i].code])
		} else {
			tracer().Debugf("%s: looking for '%s'", opNames[command.op[i].code], command.op[i].arg)
		}
	}
	return &command, nil
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:   quitOp,
	HELP:   helpOp,
	COUNT:  countOp,
	NAME:   nameOp,
	LIST:   listOp,
	DECODE: decodeOp,
	LANG:   langOp,
	INFO:   infoOp,
	TABLES: tablesOp,
	FACE:   faceOp,
}

func (intp *Intp) execute(cmd *Command) (err error, stop bool) {
	tracer().Debugf("cmd = %v", cmd.op[:cmd.count])
	for _, c := range cmd.op {
		if c.code == NOOP {
			break
		}
		f, ok := commandFn[c.code]
		if !ok {
			pterm.Error.Printf("unknown command code: %d\n", c.code)
			return nil, false
		}
		err, stop = f(intp, &c)
		if err != nil {
			pterm.Error.Println(err)
			return
		}
		if stop {
			return
		}
	}
	return
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	pterm.Println("Goodbye!")
	return nil, true
}

// --- Font Loading -----------------------------------------------------

// loadFont loads a font file and selects font number index from it.
func (intp *Intp) loadFont(fontname string, index int) (err error) {
	if fontname == "" {
		return errors.New("no font file given, use flag -font")
	}
	if intp.faces, err = sfntnames.LoadCollection(fontname); err != nil {
		tracer().Errorf("cannot load font %s: %s", fontname, err)
		return err
	}
	tracer().Infof("loaded %d font(s) from %s", len(intp.faces), fontname)
	return intp.selectFace(index)
}

func (intp *Intp) selectFace(index int) error {
	if index < 0 || index >= len(intp.faces) {
		return fmt.Errorf("font index %d out of range, file has %d fonts", index, len(intp.faces))
	}
	intp.face = intp.faces[index]
	for _, w := range intp.face.Font.Warnings() {
		tracer().Infof("font warning: %s", w)
	}
	for _, e := range intp.face.Font.Errors() {
		tracer().Errorf("font error: %s", e)
	}
	pterm.Printf("font tables: %v\n", intp.face.Font.TableTags())
	return nil
}

// ----------------------------------------------------------------------

var ERR_NO_FONT = errors.New("no font loaded")

func (intp *Intp) checkFace() error {
	if intp.face == nil {
		return ERR_NO_FONT
	}
	return nil
}

func getOptArg(s []string, inx int) string {
	if len(s) > inx {
		return s[inx]
	}
	return ""
}

func (op *Op) noArg() bool {
	return op.arg == ""
}

func (op *Op) hasArg() (string, bool) {
	if op.arg == "" {
		return "", false
	}
	return op.arg, true
}

// intArg parses the argument of an op as a number. Hex numbers need a prefix
// of "0x".
func (op *Op) intArg() (int, error) {
	n, err := strconv.ParseInt(op.arg, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("argument of %s not numeric: %v", opNames[op.code], op.arg)
	}
	return int(n), nil
}
