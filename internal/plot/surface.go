package plot

import "github.com/vovakirdan/graphdraw/internal/core"

// Font describes the face used for axis labels.
type Font struct {
	Family string
	Size   float64
}

// LabelFont is the fixed font for the "X" and "Y" labels.
var LabelFont = Font{Family: "Arial", Size: 10}

// Surface is a 2D drawing target. Shells implement it for terminals,
// windows and images.
type Surface interface {
	// Line draws a straight segment with the given stroke width.
	Line(from, to ScreenPoint, c core.Color, width float64)

	// Text draws s with its top-left corner at the given point.
	Text(s string, at ScreenPoint, f Font, c core.Color)
}

// CommandKind distinguishes recorded draw commands.
type CommandKind int

const (
	CommandLine CommandKind = iota
	CommandText
)

func (k CommandKind) String() string {
	switch k {
	case CommandLine:
		return "line"
	case CommandText:
		return "text"
	default:
		return "unknown"
	}
}

// Command is a single recorded draw call. Line commands use From, To and
// Width; text commands use From as the anchor, Text and Font.
type Command struct {
	Kind  CommandKind
	From  ScreenPoint
	To    ScreenPoint
	Color core.Color
	Width float64
	Text  string
	Font  Font
}

// Recorder is a Surface that keeps every call as a Command.
type Recorder struct {
	Commands []Command
}

// Line implements Surface.
func (r *Recorder) Line(from, to ScreenPoint, c core.Color, width float64) {
	r.Commands = append(r.Commands, Command{Kind: CommandLine, From: from, To: to, Color: c, Width: width})
}

// Text implements Surface.
func (r *Recorder) Text(s string, at ScreenPoint, f Font, c core.Color) {
	r.Commands = append(r.Commands, Command{Kind: CommandText, From: at, Color: c, Text: s, Font: f})
}

// Replay issues the recorded commands against dst in order.
func (r *Recorder) Replay(dst Surface) {
	for _, cmd := range r.Commands {
		switch cmd.Kind {
		case CommandLine:
			dst.Line(cmd.From, cmd.To, cmd.Color, cmd.Width)
		case CommandText:
			dst.Text(cmd.Text, cmd.From, cmd.Font, cmd.Color)
		}
	}
}
