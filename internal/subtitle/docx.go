package subtitle

import (
	"fmt"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	docxFont      = "Times New Roman"
	docxFontSize  = 12
	docxTitleSize = 16
	docxColor     = "000000"
)

// WriteDocx writes a Word transcript: a bold title, then one paragraph per
// caption with its time range in bold.
func WriteDocx(title string, caps []Caption, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("new document: %w", err)
	}

	addRun(doc.AddParagraph(""), title, true, docxTitleSize)
	doc.AddParagraph("")

	for _, c := range caps {
		p := doc.AddParagraph("")
		addRun(p, fmt.Sprintf("[%s - %s] ", FormatTimestamp(c.Start), FormatTimestamp(c.End)), true, docxFontSize)
		addRun(p, c.Text, false, docxFontSize)
	}

	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save docx: %w", err)
	}
	return nil
}

func addRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(docxFont).Size(size).Color(docxColor)
	if bold {
		run.Bold(true)
	}
}
