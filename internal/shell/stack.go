package shell

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// ScriptFunction is the sentinel function name for top-level script code.
const ScriptFunction = "<script>"

// Frame is one canonical stack location: the function whose invocation
// created the stack level, and the file/line that invocation sits at.
type Frame struct {
	File     string
	Line     int
	Function string
}

// CallStack is an ordered frame sequence, innermost first (index 0 is the
// immediate caller of the tracepoint). It may be empty and is never
// mutated after normalization.
type CallStack []Frame

// MalformedFrameError reports a single native record that could not be
// decoded. The record is dropped and normalization continues; a partial
// stack display beats total failure.
type MalformedFrameError struct {
	Dialect Dialect
	Record  string
	Reason  string
}

func (e *MalformedFrameError) Error() string {
	return fmt.Sprintf("malformed %s stack record %q: %s", e.Dialect, e.Record, e.Reason)
}

// Leading plumbing records in each dialect's native trace. The generated
// wrappers fix these offsets: bash's capture loop starts above the
// tracepoint function so nothing leads, zsh's trace leads with the capture
// helper and the tracepoint function, fish's leads with the tracepoint
// function's own entry.
const (
	bashSkipRecords = 0
	zshSkipRecords  = 2
	fishSkipRecords = 1
)

// ParseStack normalizes a dialect-native raw stack trace into a CallStack.
// Records that fail to decode are returned as MalformedFrameError values
// for diagnostics; the call itself never fails. Empty input yields an
// empty stack (a tracepoint with no captured caller).
func ParseStack(d Dialect, raw string) (CallStack, []error) {
	if strings.TrimSpace(raw) == "" {
		return CallStack{}, nil
	}
	switch d {
	case Bash:
		return parseColonStack(d, raw, bashSkipRecords)
	case Zsh:
		return parseColonStack(d, raw, zshSkipRecords)
	case Fish:
		return parseFishStack(raw, fishSkipRecords)
	default:
		return CallStack{}, []error{&MalformedFrameError{Dialect: d, Record: raw, Reason: "unsupported dialect"}}
	}
}

// parseColonStack decodes newline-delimited "path:line:function" records
// (bash and zsh). The first skip records are debugger plumbing and are
// excluded before decoding.
func parseColonStack(d Dialect, raw string, skip int) (CallStack, []error) {
	var records []string
	for _, rec := range strings.Split(raw, "\n") {
		if trimmed := strings.TrimSpace(rec); trimmed != "" {
			records = append(records, trimmed)
		}
	}

	stack := CallStack{}
	var dropped []error
	if len(records) <= skip {
		return stack, dropped
	}
	for _, rec := range records[skip:] {
		frame, err := parseColonRecord(d, rec)
		if err != nil {
			dropped = append(dropped, err)
			continue
		}
		stack = append(stack, frame)
	}
	return stack, dropped
}

// parseColonRecord decodes one "path:line:function" record. Fields split
// from the right so file paths containing colons survive.
func parseColonRecord(d Dialect, record string) (Frame, error) {
	fnSep := strings.LastIndexByte(record, ':')
	if fnSep < 0 {
		return Frame{}, &MalformedFrameError{Dialect: d, Record: record, Reason: "missing function field"}
	}
	lineSep := strings.LastIndexByte(record[:fnSep], ':')
	if lineSep < 0 {
		return Frame{}, &MalformedFrameError{Dialect: d, Record: record, Reason: "missing line field"}
	}

	path := record[:lineSep]
	lineText := record[lineSep+1 : fnSep]
	function := record[fnSep+1:]
	if path == "" || function == "" {
		return Frame{}, &MalformedFrameError{Dialect: d, Record: record, Reason: "empty path or function field"}
	}
	line, err := strconv.Atoi(lineText)
	if err != nil || line <= 0 {
		return Frame{}, &MalformedFrameError{Dialect: d, Record: record, Reason: fmt.Sprintf("bad line number %q", lineText)}
	}

	return Frame{
		File:     absolutize(path),
		Line:     line,
		Function: canonicalFunction(d, function),
	}, nil
}

// parseFishStack decodes the flattened `status stack-trace` output: entry
// pairs ("in function 'NAME'" then "called on line N of file PATH")
// joined with semicolons by the wrapper. Each pair is one record; the
// first skip records are debugger plumbing.
func parseFishStack(raw string, skip int) (CallStack, []error) {
	var entries []string
	for _, entry := range strings.Split(raw, ";") {
		if trimmed := strings.TrimSpace(entry); trimmed != "" {
			entries = append(entries, trimmed)
		}
	}

	stack := CallStack{}
	var dropped []error
	for i := 0; i+1 < len(entries); i += 2 {
		if i/2 < skip {
			continue
		}
		record := entries[i] + "; " + entries[i+1]
		function, err := parseFishContext(entries[i])
		if err != nil {
			dropped = append(dropped, &MalformedFrameError{Dialect: Fish, Record: record, Reason: err.Error()})
			continue
		}
		path, line, err := parseFishCallSite(entries[i+1])
		if err != nil {
			dropped = append(dropped, &MalformedFrameError{Dialect: Fish, Record: record, Reason: err.Error()})
			continue
		}
		stack = append(stack, Frame{File: absolutize(path), Line: line, Function: function})
	}
	if len(entries)%2 == 1 && len(entries)/2 >= skip {
		dropped = append(dropped, &MalformedFrameError{
			Dialect: Fish,
			Record:  entries[len(entries)-1],
			Reason:  "missing call-site entry",
		})
	}
	return stack, dropped
}

// parseFishContext extracts the function name from a context entry. The
// name sits between the first pair of single quotes; suffixes such as
// "with arguments '…'" follow the closing quote. Sourced-file entries are
// top-level code.
func parseFishContext(entry string) (string, error) {
	if strings.HasPrefix(entry, "from sourcing file") {
		return ScriptFunction, nil
	}
	if strings.HasPrefix(entry, "in function") {
		parts := strings.SplitN(entry, "'", 3)
		if len(parts) < 3 || parts[1] == "" {
			return "", fmt.Errorf("unquoted function name")
		}
		return parts[1], nil
	}
	return "", fmt.Errorf("unrecognized context entry")
}

// parseFishCallSite extracts path and line from a "called on line N of
// file PATH" entry. The path keeps any interior spaces.
func parseFishCallSite(entry string) (string, int, error) {
	fields := strings.Fields(entry)
	if len(fields) < 7 || fields[0] != "called" || fields[2] != "line" || fields[5] != "file" {
		return "", 0, fmt.Errorf("unrecognized call-site entry")
	}
	line, err := strconv.Atoi(fields[3])
	if err != nil || line <= 0 {
		return "", 0, fmt.Errorf("bad line number %q", fields[3])
	}
	return strings.Join(fields[6:], " "), line, nil
}

// canonicalFunction maps dialect-native top-level markers onto the
// ScriptFunction sentinel: bash reports "main" for script toplevel and
// "source" for sourced files, zsh reports the sourced file's own path.
func canonicalFunction(d Dialect, fn string) string {
	switch d {
	case Bash:
		if fn == "main" || fn == "source" {
			return ScriptFunction
		}
	case Zsh:
		if fn == "source" || strings.ContainsRune(fn, '/') {
			return ScriptFunction
		}
	}
	return fn
}

// absolutize resolves a path best-effort; on failure the raw path is kept
// rather than aborting normalization.
func absolutize(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
