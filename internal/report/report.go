// Package report prints the errors contained in an ESLint JSON report.
package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/farcloser/primordium/fault"
)

var (
	errMissingField = errors.New("missing field")
	errNotAnArray   = errors.New("not an array")
	errNotAnObject  = errors.New("not an object")
	errNotANumber   = errors.New("not a number")
)

// Summarize prints the report summary to out.
// Any failure, from decoding to traversal, ends the pass with a single diagnostic line.
func Summarize(out io.Writer, data []byte) {
	if err := Print(out, data); err != nil {
		fmt.Fprintf(out, "Error parsing JSON: %v\n", err)
	}
}

// Print writes, for every file with errors, a "File:" line followed by one line per error message.
// Lines written before a failure are not rolled back.
func Print(out io.Writer, data []byte) error {
	entries, err := decodeArray(data)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}

	for idx, raw := range entries {
		if err := printFileResult(out, raw); err != nil {
			return fmt.Errorf("entry %d: %w", idx, err)
		}
	}

	return nil
}

func decodeArray(raw []byte) ([]json.RawMessage, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %w", fault.ErrInvalidJSON, err)
	}

	if items == nil {
		return nil, errNotAnArray
	}

	return items, nil
}

func printFileResult(out io.Writer, raw json.RawMessage) error {
	result, err := decodeObject(raw)
	if err != nil {
		return err
	}

	errorCount, ok := result.field(keyErrorCount)
	if !ok || bytes.Equal(errorCount, jsonNull) {
		return nil
	}

	count, ok := number(errorCount)
	if !ok {
		return fmt.Errorf("%q: %w", keyErrorCount, errNotANumber)
	}

	if count <= 0 {
		return nil
	}

	filePath, err := result.required(keyFilePath)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(out, "File: %s\n", text(filePath)); err != nil {
		return err
	}

	rawMessages, err := result.required(keyMessages)
	if err != nil {
		return err
	}

	messages, err := decodeArray(rawMessages)
	if err != nil {
		return fmt.Errorf("%q: %w", keyMessages, err)
	}

	for idx, rawMessage := range messages {
		if err := printMessage(out, rawMessage); err != nil {
			return fmt.Errorf("message %d: %w", idx, err)
		}
	}

	return nil
}

func printMessage(out io.Writer, raw json.RawMessage) error {
	msg, err := decodeObject(raw)
	if err != nil {
		return err
	}

	severity, ok := msg.field(keySeverity)
	if !ok {
		return fmt.Errorf("%w: %q", errMissingField, keySeverity)
	}

	if level, ok := number(severity); !ok || level != SeverityError {
		return nil
	}

	line, err := msg.required(keyLine)
	if err != nil {
		return err
	}

	ruleID, ok := msg.field(keyRuleID)
	if !ok {
		return fmt.Errorf("%w: %q", errMissingField, keyRuleID)
	}

	message, err := msg.required(keyMessage)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "  Line %s: %s - %s\n", text(line), text(ruleID), text(message))

	return err
}
