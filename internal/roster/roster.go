// Package roster turns operator supplied participant lists into a validated pool.
package roster

import (
	"bufio"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"

	"github.com/osse101/PrizeDraw_Go/internal/domain"
)

var (
	validate  = validator.New()
	separator = regexp.MustCompile(`[,\t]+`)
)

// Parse reads one participant per non-blank line in "name,id" order.
// Fields may be separated by commas, tabs or full-width commas; runs of
// separators count as one. Extra fields after the id are ignored.
func Parse(text string) ([]domain.Participant, error) {
	var participants []domain.Participant
	seen := make(map[string]int)

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(Normalize(scanner.Text()))
		if line == "" {
			continue
		}

		fields := splitFields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: "+ErrContextFields, domain.ErrInvalidRosterLine, lineNo)
		}

		p := domain.Participant{Name: fields[0], ID: fields[1]}
		if p.Name == "" || p.ID == "" {
			return nil, fmt.Errorf("%w: "+ErrContextEmpty, domain.ErrInvalidRosterLine, lineNo)
		}
		if err := validate.Struct(p); err != nil {
			return nil, fmt.Errorf("%w: "+ErrContextLine, domain.ErrInvalidRosterLine, lineNo, line)
		}
		if first, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("%w: "+ErrContextDuplicate, domain.ErrDuplicateParticipantID, p.ID, lineNo, first)
		}
		seen[p.ID] = lineNo
		participants = append(participants, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRosterLine, err)
	}

	if len(participants) == 0 {
		return nil, domain.ErrRosterEmpty
	}
	return participants, nil
}

// Validate applies the same checks as Parse to a structured list and returns
// a normalised copy.
func Validate(participants []domain.Participant) ([]domain.Participant, error) {
	if len(participants) == 0 {
		return nil, domain.ErrRosterEmpty
	}

	out := make([]domain.Participant, 0, len(participants))
	seen := make(map[string]int, len(participants))
	var errs []error

	for i, p := range participants {
		p.ID = strings.TrimSpace(Normalize(p.ID))
		p.Name = strings.TrimSpace(Normalize(p.Name))

		if err := validate.Struct(p); err != nil {
			errs = append(errs, fmt.Errorf("%w: "+ErrContextEntry, domain.ErrInvalidRosterLine, i+1))
			continue
		}
		if first, dup := seen[p.ID]; dup {
			errs = append(errs, fmt.Errorf("%w: "+ErrContextDuplicate, domain.ErrDuplicateParticipantID, p.ID, i+1, first))
			continue
		}
		seen[p.ID] = i + 1
		out = append(out, p)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return out, nil
}

// Normalize folds full-width ASCII variants to their narrow forms and applies
// NFC so visually identical names and ids compare equal. Katakana stays wide.
func Normalize(s string) string {
	return norm.NFC.String(width.Fold.String(s))
}

func splitFields(line string) []string {
	fields := separator.Split(line, -1)
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return fields
}
