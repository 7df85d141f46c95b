package phh

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const sectionPrefix = "hand_"

// Encode writes the hand history to the provided writer in PHH TOML format.
func Encode(w io.Writer, hand *HandHistory) error {
	if hand == nil {
		return fmt.Errorf("phh: hand history is nil")
	}

	enc := toml.NewEncoder(w)
	// Use tabs for arrays to match human expectations
	enc.Indent = "\t"
	return enc.Encode(hand)
}

// EncodeToBytes encodes and returns the result as bytes.
func EncodeToBytes(hand *HandHistory) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, hand); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeSession writes hands as consecutive [hand_N] tables, numbered from 1.
func EncodeSession(w io.Writer, hands []*HandHistory) error {
	for i, hand := range hands {
		if hand == nil {
			return fmt.Errorf("phh: hand %d is nil", i+1)
		}
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		enc := toml.NewEncoder(w)
		enc.Indent = "\t"
		section := map[string]*HandHistory{sectionPrefix + strconv.Itoa(i+1): hand}
		if err := enc.Encode(section); err != nil {
			return fmt.Errorf("phh: encode hand %d: %w", i+1, err)
		}
	}
	return nil
}

// DecodeSession reads a session written by EncodeSession, returning hands in
// section order. Timestamps are rebuilt from the date and time fields.
func DecodeSession(r io.Reader) ([]*HandHistory, error) {
	var raw map[string]HandHistory
	if _, err := toml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("phh: decode session: %w", err)
	}

	type numbered struct {
		n    int
		hand *HandHistory
	}
	var sections []numbered
	for key, hand := range raw {
		n, err := strconv.Atoi(strings.TrimPrefix(key, sectionPrefix))
		if !strings.HasPrefix(key, sectionPrefix) || err != nil || n < 1 {
			return nil, fmt.Errorf("phh: unexpected section %q", key)
		}
		hand.Timestamp = timestampOf(&hand)
		sections = append(sections, numbered{n, &hand})
	}
	slices.SortFunc(sections, func(a, b numbered) int { return a.n - b.n })

	hands := make([]*HandHistory, len(sections))
	for i, s := range sections {
		hands[i] = s.hand
	}
	return hands, nil
}

func timestampOf(h *HandHistory) time.Time {
	if h.Year == 0 {
		return time.Time{}
	}
	loc := time.UTC
	if h.TimeZone != "" {
		if l, err := time.LoadLocation(h.TimeZone); err == nil {
			loc = l
		}
	}
	var hh, mm, ss int
	if h.Time != "" {
		if t, err := time.Parse("15:04:05", h.Time); err == nil {
			hh, mm, ss = t.Clock()
		}
	}
	return time.Date(h.Year, time.Month(h.Month), h.Day, hh, mm, ss, 0, loc)
}

// FormatAction returns the PHH action for a player facing or making a bet:
// a check/call when amount is zero, otherwise a bet of amount.
func FormatAction(seat int, amount int) string {
	player := fmt.Sprintf("p%d", seat+1)
	if amount <= 0 {
		return player + " cc"
	}
	return fmt.Sprintf("%s cbr %d", player, amount)
}
