package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"braindash/internal/common"
	"braindash/internal/server/models"
)

// Categorizer is the opaque external categorization call: free text in, raw
// model output out, or failure. The Gemini client implements it; tests mock it.
type Categorizer interface {
	Categorize(ctx context.Context, brainDump string) (string, error)
}

// DumpService turns free-form brain dumps into validated task lists. It
// persists nothing; persistence is a separate client-initiated call.
type DumpService struct {
	categorizer Categorizer
	debug       bool
}

// NewDumpService constructs a DumpService. With debug set, unusable model
// output is echoed in the error detail.
func NewDumpService(c Categorizer, debug bool) *DumpService {
	return &DumpService{categorizer: c, debug: debug}
}

// Parse forwards text to the categorizer and filters its output down to the
// elements that carry all required fields with valid labels. Malformed
// elements are dropped silently; a result where everything was dropped is
// still a success, just empty.
func (s *DumpService) Parse(ctx context.Context, text string) ([]models.ParsedTask, error) {
	if strings.TrimSpace(text) == "" {
		return nil, common.ErrorBadRequest
	}

	raw, err := s.categorizer.Categorize(ctx, text)
	if err != nil {
		// Upstream failure detail stays out of the error unless debug is
		// set; the error text ends up in client-visible 502 bodies.
		if s.debug {
			return nil, fmt.Errorf("%w: %v", common.ErrorBadGateway, err)
		}
		return nil, common.ErrorBadGateway
	}

	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &elements); err != nil || elements == nil {
		return nil, s.badOutput(raw)
	}

	filtered := make([]models.ParsedTask, 0, len(elements))
	for _, el := range elements {
		var task models.ParsedTask
		if err := json.Unmarshal(el, &task); err != nil {
			continue
		}
		if !task.Valid() {
			continue
		}
		filtered = append(filtered, task)
	}

	return filtered, nil
}

func (s *DumpService) badOutput(raw string) error {
	if s.debug {
		return fmt.Errorf("%w: unparsable model output: %s", common.ErrorBadGateway, raw)
	}
	return common.ErrorBadGateway
}
