package docstring

import (
	"reflect"
	"testing"
)

func TestSplit_ProseHeaderCode(t *testing.T) {
	t.Parallel()

	got := Split("Loads data.\n\nExample:\n    x = load()\n    x.run()")
	want := []Segment{
		{Kind: KindText, Content: "Loads data."},
		{Kind: KindText, Content: "Example:"},
		{Kind: KindCode, Content: "x = load()\nx.run()"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestSplit_InteractiveWithOutput(t *testing.T) {
	t.Parallel()

	got := Split(">>> f(1)\n2\n\nDone.")
	want := []Segment{
		{Kind: KindCode, Content: ">>> f(1)\n2"},
		{Kind: KindText, Content: "Done."},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestSplit_Empty(t *testing.T) {
	t.Parallel()

	if got := Split(""); got != nil {
		t.Errorf("expected no segments for empty input, got %+v", got)
	}
	if got := Split("  \n\t\n"); got != nil {
		t.Errorf("expected no segments for blank input, got %+v", got)
	}
}

func TestSplit_ProseParagraphsMerge(t *testing.T) {
	t.Parallel()

	got := Split("Line one\nline two.\n\nSecond paragraph.")
	want := []Segment{
		{Kind: KindText, Content: "Line one line two."},
		{Kind: KindText, Content: "Second paragraph."},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestSplit_HeaderCaseInsensitive(t *testing.T) {
	t.Parallel()

	for _, header := range []string{"Usage:", "EXAMPLES:", "synopsis:", "Example:"} {
		got := Split(header + "\n    run()")
		if len(got) != 2 {
			t.Fatalf("%s: expected 2 segments, got %+v", header, got)
		}
		if got[0].Kind != KindText || got[0].Content != header {
			t.Errorf("%s: header segment = %+v", header, got[0])
		}
		if got[1].Kind != KindCode || got[1].Content != "run()" {
			t.Errorf("%s: code segment = %+v", header, got[1])
		}
	}
}

func TestSplit_HeaderMustBeAlone(t *testing.T) {
	t.Parallel()

	// "Example: foo" is not a recognized header, so the indented line that
	// follows is plain prose.
	got := Split("Example: foo\n    run()")
	want := []Segment{
		{Kind: KindText, Content: "Example: foo run()"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestSplit_BlankInsideCodeBlock(t *testing.T) {
	t.Parallel()

	// The blank line is followed by more indented code, so it folds into
	// the block instead of closing it.
	got := Split("Usage:\n    a = 1\n\n    b = 2\n\nAfter.")
	want := []Segment{
		{Kind: KindText, Content: "Usage:"},
		{Kind: KindCode, Content: "a = 1\n\nb = 2"},
		{Kind: KindText, Content: "After."},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestSplit_BlankBeforeInteractiveKeepsCode(t *testing.T) {
	t.Parallel()

	got := Split(">>> a\n\n>>> b")
	want := []Segment{
		{Kind: KindCode, Content: ">>> a\n\n>>> b"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestSplit_IndentStrip(t *testing.T) {
	t.Parallel()

	// Exactly one 4-column step is stripped; deeper indentation keeps its
	// relative structure. A bare prompt at column 0 is untouched, and the
	// blank line folds because an interactive line follows it.
	got := Split("Example:\n    if x:\n        y()\n\n>>> z")
	want := []Segment{
		{Kind: KindText, Content: "Example:"},
		{Kind: KindCode, Content: "if x:\n    y()\n\n>>> z"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestSplit_IndentedWithoutSectionIsProse(t *testing.T) {
	t.Parallel()

	// Indentation alone does not start a code block; it needs a section
	// header or an already-open code segment.
	got := Split("    deeply indented prose")
	want := []Segment{
		{Kind: KindText, Content: "deeply indented prose"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestSplit_ProseEndsCodeSection(t *testing.T) {
	t.Parallel()

	// A blank line closes the code block and an unindented line resets the
	// section, so later indented lines are prose again.
	got := Split("Example:\n    a()\n\nplain text\n    still plain")
	want := []Segment{
		{Kind: KindText, Content: "Example:"},
		{Kind: KindCode, Content: "a()"},
		{Kind: KindText, Content: "plain text still plain"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestSplit_NoAdjacentCodeSegments(t *testing.T) {
	t.Parallel()

	// Code merges greedily across blank lines and continuation lines, so
	// prose or a section header separates any two code segments in these
	// shapes. Text segments may sit side by side (separate paragraphs, a
	// header after prose), which TestSplit_ParagraphsStaySeparate pins down.
	inputs := []string{
		"Loads data.\n\nExample:\n    x = load()\n    x.run()",
		">>> f(1)\n2\n\nDone.",
		"a\n\nb\n\nc",
		"Usage:\n    x\n\n    y\n\nz\n\nExamples:\n    q",
		"    indented\nprose\n>>> code\nmore output",
		"\n\n>>> x\n\nEnd.",
		">>> a\n\nprose\n>>> b",
	}
	for _, input := range inputs {
		segs := Split(input)
		for i := 1; i < len(segs); i++ {
			if segs[i].Kind == KindCode && segs[i-1].Kind == KindCode {
				t.Errorf("consecutive code segments for input %q: %+v", input, segs)
			}
		}
	}
}

func TestSplit_ParagraphsStaySeparate(t *testing.T) {
	t.Parallel()

	// Blank lines end a paragraph rather than joining across it, and a
	// section header is always its own text segment, so adjacent text
	// segments are expected output.
	got := Split("a\n\nb\n\nExamples:\n    q")
	want := []Segment{
		{Kind: KindText, Content: "a"},
		{Kind: KindText, Content: "b"},
		{Kind: KindText, Content: "Examples:"},
		{Kind: KindCode, Content: "q"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
