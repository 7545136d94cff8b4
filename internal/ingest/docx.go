package ingest

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// readDOCX extracts paragraph and table text from word/document.xml in
// document order. Table rows are emitted as cell text joined with " | ".
func readDOCX(path string) (string, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("%w: open docx: %w", ErrRead, err)
	}
	defer reader.Close()

	for _, file := range reader.File {
		if file.Name != "word/document.xml" {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return "", fmt.Errorf("%w: open document.xml: %w", ErrRead, err)
		}
		defer rc.Close()

		text, err := parseDocumentXML(rc)
		if err != nil {
			return "", fmt.Errorf("%w: parse document.xml: %w", ErrRead, err)
		}
		return text, nil
	}

	return "", fmt.Errorf("%w: docx missing word/document.xml", ErrRead)
}

// parseDocumentXML walks the WordprocessingML token stream. Paragraphs and
// tables interleave inside the body, so a streaming walk is the only way to
// keep document order. Paragraphs inside table cells accumulate into the cell
// rather than emitting their own lines.
func parseDocumentXML(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	var (
		out        strings.Builder
		paragraph  strings.Builder
		cell       strings.Builder
		cells      []string
		tableDepth int
		inText     bool
		inCell     bool
	)

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tableDepth++
			case "tc":
				if tableDepth > 0 {
					inCell = true
					cell.Reset()
				}
			case "t":
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "tbl":
				tableDepth--
			case "tr":
				if tableDepth > 0 {
					out.WriteString(strings.Join(cells, " | "))
					out.WriteString("\n")
					cells = nil
				}
			case "tc":
				if inCell {
					cells = append(cells, strings.TrimSpace(cell.String()))
					inCell = false
				}
			case "p":
				if tableDepth == 0 {
					out.WriteString(paragraph.String())
					out.WriteString("\n")
					paragraph.Reset()
				}
			case "t":
				inText = false
			}
		case xml.CharData:
			if !inText {
				continue
			}
			if inCell {
				cell.Write(t)
			} else {
				paragraph.Write(t)
			}
		}
	}

	return strings.TrimSpace(out.String()), nil
}
