package commands

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/nipvalidator/pkg/logger"
	"github.com/dmitrymomot/nipvalidator/pkg/nip"
)

// CheckResult is one line of `check --format json` output.
type CheckResult struct {
	Input   string `json:"input"`
	Valid   bool   `json:"valid"`
	Code    string `json:"code,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
	Pattern string `json:"pattern,omitempty"`
}

// RunCheck validates values, or every non-empty line of io.Reader when values
// is empty, and writes one result per value. It returns ErrInvalidValues when
// any value was rejected.
func RunCheck(ctx context.Context, v *nip.Validator, values []string, format string, io IOTuple, log *slog.Logger) error {
	if format != "text" && format != "json" {
		return fmt.Errorf("%w: format %q, expected text or json", ErrInvalidFlag, format)
	}

	var (
		checked int
		invalid int
		enc     = json.NewEncoder(io.Writer)
	)
	check := func(value string) error {
		checked++
		res := CheckResult{Input: value, Valid: true}
		if violation := v.ValidateString(value); violation != nil {
			invalid++
			res = CheckResult{
				Input:   value,
				Code:    violation.Code().String(),
				Error:   violation.Kind.String(),
				Message: violation.Message(),
				Pattern: violation.Pattern,
			}
		}

		if format == "json" {
			return enc.Encode(res)
		}
		if res.Valid {
			_, err := fmt.Fprintf(io.Writer, "%s\tOK\n", value)
			return err
		}
		_, err := fmt.Fprintf(io.Writer, "%s\t%s\t%s\n", value, res.Error, res.Message)
		return err
	}

	if len(values) > 0 {
		for _, value := range values {
			if err := check(value); err != nil {
				return err
			}
		}
	} else {
		sc := bufio.NewScanner(io.Reader)
		for sc.Scan() {
			if err := ctx.Err(); err != nil {
				return err
			}
			line := strings.TrimRight(sc.Text(), "\r")
			if strings.TrimSpace(line) == "" {
				continue
			}
			if err := check(line); err != nil {
				return err
			}
		}
		if err := sc.Err(); err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
	}

	log.DebugContext(ctx, "check finished",
		logger.Component("check"),
		logger.Count("checked", checked),
		logger.Count("invalid", invalid),
	)

	if invalid > 0 {
		return fmt.Errorf("%w: %d of %d", ErrInvalidValues, invalid, checked)
	}
	return nil
}
