// Package snapshot converts draw sessions to and from their persisted JSON
// form and defines the storage boundary.
package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/PrizeDraw_Go/internal/domain"
	"github.com/osse101/PrizeDraw_Go/internal/logger"
)

var validate = validator.New()

// Encode serialises a snapshot. Nil collections are written as empty arrays.
func Encode(snap *domain.Snapshot) ([]byte, error) {
	if snap == nil {
		snap = domain.EmptySnapshot()
	}
	out := *snap
	if out.Participants == nil {
		out.Participants = []domain.Participant{}
	}
	if out.PrizeTiers == nil {
		out.PrizeTiers = []domain.PrizeTier{}
	}
	if out.WinnerLedger == nil {
		out.WinnerLedger = []domain.WinnerRecord{}
	}
	if out.DrawMode == "" {
		out.DrawMode = domain.DrawModeSequential
	}
	return json.Marshal(out)
}

// rawSnapshot accepts the current keys and the legacy web application keys
type rawSnapshot struct {
	Participants json.RawMessage `json:"participants"`
	Employees    json.RawMessage `json:"employees"`
	PrizeTiers   json.RawMessage `json:"prizeTiers"`
	Prizes       json.RawMessage `json:"prizes"`
	WinnerLedger json.RawMessage `json:"winnerLedger"`
	Winners      json.RawMessage `json:"winners"`
	TierIndex    json.RawMessage `json:"tierIndex"`
	CurrentLevel json.RawMessage `json:"currentLevel"`
	DrawMode     json.RawMessage `json:"drawMode"`
	SavedAt      json.RawMessage `json:"savedAt"`
}

type rawParticipant struct {
	ID   flexString `json:"id"`
	Name flexString `json:"name"`
}

type rawTier struct {
	Level flexInt    `json:"level"`
	Name  flexString `json:"name"`
	Quota *flexInt   `json:"quota"`
	Count *flexInt   `json:"count"`
}

type rawWinner struct {
	ParticipantID   flexString `json:"participantId"`
	EmployeeID      flexString `json:"employeeId"`
	ParticipantName flexString `json:"participantName"`
	EmployeeName    flexString `json:"employeeName"`
	TierLevel       *flexInt   `json:"tierLevel"`
	PrizeLevel      *flexInt   `json:"prizeLevel"`
	TierName        flexString `json:"tierName"`
	PrizeName       flexString `json:"prizeName"`
	Timestamp       time.Time  `json:"timestamp"`
}

// Decode restores a snapshot defensively. Unreadable roster, tier, index and
// mode fields fall back to empty defaults with a warning. An unreadable winner
// ledger is never dropped silently: the readable parts are returned together
// with an error wrapping domain.ErrLedgerUnreadable.
func Decode(ctx context.Context, data []byte) (*domain.Snapshot, error) {
	log := logger.FromContext(ctx)
	snap := domain.EmptySnapshot()

	if len(bytes.TrimSpace(data)) == 0 {
		return snap, nil
	}

	var raw rawSnapshot
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Error(LogMsgLedgerUnreadable, "error", err)
		return snap, fmt.Errorf("%w: %w: "+ErrContextDocument, domain.ErrSnapshotUnreadable, domain.ErrLedgerUnreadable, err)
	}

	snap.Participants = decodeParticipants(ctx, firstPresent(raw.Participants, raw.Employees))
	snap.PrizeTiers = decodeTiers(ctx, firstPresent(raw.PrizeTiers, raw.Prizes))
	snap.TierIndex = decodeTierIndex(ctx, firstPresent(raw.TierIndex, raw.CurrentLevel))
	snap.DrawMode = decodeDrawMode(ctx, raw.DrawMode)

	if present(raw.SavedAt) {
		if err := json.Unmarshal(raw.SavedAt, &snap.SavedAt); err != nil {
			log.Warn(LogMsgFieldDefaulted, "field", "savedAt", "error", err)
		}
	}

	ledger, err := decodeLedger(firstPresent(raw.WinnerLedger, raw.Winners))
	if err != nil {
		log.Error(LogMsgLedgerUnreadable, "error", err)
		return snap, err
	}
	snap.WinnerLedger = ledger
	return snap, nil
}

func decodeParticipants(ctx context.Context, data json.RawMessage) []domain.Participant {
	log := logger.FromContext(ctx)
	out := []domain.Participant{}
	if !present(data) {
		return out
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		log.Warn(LogMsgFieldDefaulted, "field", "participants", "error", err)
		return out
	}

	seen := make(map[string]struct{}, len(elems))
	for i, elem := range elems {
		var rp rawParticipant
		if err := json.Unmarshal(elem, &rp); err != nil {
			log.Warn(LogMsgElementSkipped, "field", "participants", "index", i, "error", err)
			continue
		}
		p := domain.Participant{ID: strings.TrimSpace(string(rp.ID)), Name: strings.TrimSpace(string(rp.Name))}
		if err := validate.Struct(p); err != nil {
			log.Warn(LogMsgElementSkipped, "field", "participants", "index", i, "error", err)
			continue
		}
		if _, dup := seen[p.ID]; dup {
			log.Warn(LogMsgElementSkipped, "field", "participants", "index", i, "error", domain.ErrDuplicateParticipantID)
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out
}

func decodeTiers(ctx context.Context, data json.RawMessage) []domain.PrizeTier {
	log := logger.FromContext(ctx)
	out := []domain.PrizeTier{}
	if !present(data) {
		return out
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		log.Warn(LogMsgFieldDefaulted, "field", "prizeTiers", "error", err)
		return out
	}

	seen := make(map[int]struct{}, len(elems))
	for i, elem := range elems {
		var rt rawTier
		if err := json.Unmarshal(elem, &rt); err != nil {
			log.Warn(LogMsgElementSkipped, "field", "prizeTiers", "index", i, "error", err)
			continue
		}
		t := domain.PrizeTier{Level: int(rt.Level), Name: strings.TrimSpace(string(rt.Name))}
		switch {
		case rt.Quota != nil:
			t.Quota = int(*rt.Quota)
		case rt.Count != nil:
			t.Quota = int(*rt.Count)
		}
		if err := validate.Struct(t); err != nil {
			log.Warn(LogMsgElementSkipped, "field", "prizeTiers", "index", i, "error", err)
			continue
		}
		if _, dup := seen[t.Level]; dup {
			log.Warn(LogMsgElementSkipped, "field", "prizeTiers", "index", i, "error", domain.ErrDuplicateTierLevel)
			continue
		}
		seen[t.Level] = struct{}{}
		out = append(out, t)
	}
	return domain.SortTiersDescending(out)
}

func decodeTierIndex(ctx context.Context, data json.RawMessage) int {
	if !present(data) {
		return 0
	}
	var idx flexInt
	if err := json.Unmarshal(data, &idx); err != nil || idx < 0 {
		logger.FromContext(ctx).Warn(LogMsgFieldDefaulted, "field", "tierIndex", "value", string(data))
		return 0
	}
	return int(idx)
}

func decodeDrawMode(ctx context.Context, data json.RawMessage) domain.DrawMode {
	if !present(data) {
		return domain.DrawModeSequential
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		logger.FromContext(ctx).Warn(LogMsgFieldDefaulted, "field", "drawMode", "error", err)
		return domain.DrawModeSequential
	}
	mode, err := domain.ParseDrawMode(s)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgFieldDefaulted, "field", "drawMode", "error", err)
		return domain.DrawModeSequential
	}
	return mode
}

// decodeLedger fails on any unreadable record so that winners are never lost.
// Consistency checks (duplicates, quota overflow) are left to the ledger.
func decodeLedger(data json.RawMessage) ([]domain.WinnerRecord, error) {
	out := []domain.WinnerRecord{}
	if !present(data) {
		return out, nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return out, fmt.Errorf("%w: "+ErrContextField, domain.ErrLedgerUnreadable, "winnerLedger", err)
	}

	for i, elem := range elems {
		var rw rawWinner
		if err := json.Unmarshal(elem, &rw); err != nil {
			return out, fmt.Errorf("%w: "+ErrContextRecord, domain.ErrLedgerUnreadable, i, err)
		}

		rec := domain.WinnerRecord{
			ParticipantID:   strings.TrimSpace(string(orString(rw.ParticipantID, rw.EmployeeID))),
			ParticipantName: string(orString(rw.ParticipantName, rw.EmployeeName)),
			TierName:        string(orString(rw.TierName, rw.PrizeName)),
			Timestamp:       rw.Timestamp.UTC(),
		}
		switch {
		case rw.TierLevel != nil:
			rec.TierLevel = int(*rw.TierLevel)
		case rw.PrizeLevel != nil:
			rec.TierLevel = int(*rw.PrizeLevel)
		default:
			return out, fmt.Errorf("%w: "+ErrContextRecord, domain.ErrLedgerUnreadable, i, "missing tier level")
		}
		if rec.ParticipantID == "" {
			return out, fmt.Errorf("%w: "+ErrContextRecord, domain.ErrLedgerUnreadable, i, "missing participant id")
		}
		out = append(out, rec)
	}
	return out, nil
}

func present(data json.RawMessage) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

func firstPresent(candidates ...json.RawMessage) json.RawMessage {
	for _, c := range candidates {
		if present(c) {
			return c
		}
	}
	return nil
}

func orString(a, b flexString) flexString {
	if strings.TrimSpace(string(a)) != "" {
		return a
	}
	return b
}

// flexString accepts a JSON string or number, since hand-edited rosters often
// carry numeric employee ids.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*f = flexString(n.String())
	return nil
}

// flexInt accepts a JSON integer or a numeric string
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexInt(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("expected integer, got %s", data)
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("expected integer, got %q", s)
	}
	*f = flexInt(n)
	return nil
}
