package printer

// Alignment matches the device codes used by the hardware bridge:
// 0=left, 1=center, 2=right.
type Alignment int

const (
	AlignLeft   Alignment = 0
	AlignCenter Alignment = 1
	AlignRight  Alignment = 2
)

// TextSize is the character cell multiplier.
type TextSize int

const (
	SizeNormal TextSize = 1
	SizeDouble TextSize = 2
)

// Style carries the emphasis flags a thermal head supports.
type Style struct {
	Bold      bool
	Underline bool
}

type OpKind int

const (
	OpText OpKind = iota
	OpFeed
	OpCut
	OpBarcode
	OpQR
)

func (k OpKind) String() string {
	switch k {
	case OpText:
		return "printText"
	case OpFeed:
		return "feed"
	case OpCut:
		return "cut"
	case OpBarcode:
		return "printBarcode"
	case OpQR:
		return "printQR"
	default:
		return "unknown"
	}
}

// Instruction is one declarative step of a receipt. The renderer produces an
// ordered sequence of these and a single executor dispatches them, so the
// hardware and mock paths consume the same stream instead of each formatting
// its own text.
type Instruction struct {
	Op    OpKind
	Align Alignment
	Size  TextSize
	Style Style

	// Text is the line content for OpText, terminated with a newline.
	Text string

	// Lines is the feed count for OpFeed.
	Lines int

	// FullCut selects a full instead of partial cut for OpCut.
	FullCut bool

	// Payload is the barcode or QR data.
	Payload string
}

func textLine(align Alignment, size TextSize, style Style, text string) Instruction {
	return Instruction{Op: OpText, Align: align, Size: size, Style: style, Text: text + "\n"}
}

func feed(lines int) Instruction {
	return Instruction{Op: OpFeed, Lines: lines}
}

func cut(full bool) Instruction {
	return Instruction{Op: OpCut, FullCut: full}
}

func qr(payload string) Instruction {
	return Instruction{Op: OpQR, Align: AlignCenter, Payload: payload}
}
