// Package bulkfile reads the line oriented bulk work-log format:
//
//	task_summary,duration_text,date_text
//
// One record per line. Lines with a field count other than three are
// reported and skipped; the rest of the file is still returned.
package bulkfile

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// FieldCount is the number of comma separated fields in a record.
const FieldCount = 3

// Record is one well formed line.
type Record struct {
	Line     int // 1-based line number in the input
	Summary  string
	Duration string
	Date     string
}

// LineError describes a malformed line.
type LineError struct {
	Line int
	Text string
}

func (e LineError) Error() string {
	return fmt.Sprintf("Invalid line format: %s", e.Text)
}

// Result holds the outcome of reading a bulk file.
type Result struct {
	Records []Record
	Errors  []LineError
}

// Read parses r. Lines of any length are accepted. Only read failures of r
// itself return an error.
func Read(r io.Reader) (Result, error) {
	var res Result

	br := bufio.NewReader(r)
	lineNo := 0
	for {
		raw, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return res, fmt.Errorf("read bulk file: %w", err)
		}
		if raw == "" && err == io.EOF {
			break
		}
		lineNo++
		res.add(lineNo, strings.TrimSpace(raw))
		if err == io.EOF {
			break
		}
	}

	return res, nil
}

func (res *Result) add(lineNo int, line string) {
	if line == "" {
		return
	}

	fields := strings.Split(line, ",")
	if len(fields) != FieldCount {
		res.Errors = append(res.Errors, LineError{Line: lineNo, Text: line})
		return
	}

	res.Records = append(res.Records, Record{
		Line:     lineNo,
		Summary:  fields[0],
		Duration: fields[1],
		Date:     fields[2],
	})
}
