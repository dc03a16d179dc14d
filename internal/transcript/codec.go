package transcript

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/NP-Dat/monster-battle/internal/game"
)

// Encoder writes Records as one JSON object per line
type Encoder struct {
	w   io.Writer
	now func() time.Time
}

// NewEncoder creates an encoder writing to w
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w, now: time.Now}
}

// Send encodes a Record and writes it
func (e *Encoder) Send(recordType RecordType, payload interface{}) error {
	rec := Record{
		Type:    recordType,
		Time:    e.now(),
		Payload: payload,
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	// Add newline as record delimiter
	data = append(data, '\n')

	if _, err := e.w.Write(data); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

// BattleStart records the opening state of b
func (e *Encoder) BattleStart(b *game.Battle) error {
	return e.Send(RecordBattleStart, &BattleStartPayload{
		BattleID: b.ID,
		Player:   NewMonsterInfo(b.Player),
		Enemy:    NewMonsterInfo(b.Enemy),
	})
}

// Turn records the entries produced by side's turn and the state after it
func (e *Encoder) Turn(b *game.Battle, side game.Side, entries []game.LogEntry) error {
	return e.Send(RecordTurn, &TurnPayload{
		BattleID: b.ID,
		Turn:     b.Turn,
		Side:     side,
		Entries:  entries,
		Player:   NewMonsterInfo(b.Player),
		Enemy:    NewMonsterInfo(b.Enemy),
	})
}

// BattleOver records the winner of b
func (e *Encoder) BattleOver(b *game.Battle) error {
	return e.Send(RecordBattleOver, &BattleOverPayload{
		BattleID: b.ID,
		Winner:   b.Winner,
		Turns:    b.Turn,
	})
}

// Decoder reads Records written by an Encoder
type Decoder struct {
	reader *bufio.Reader
}

// NewDecoder creates a decoder reading from r
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{reader: bufio.NewReader(r)}
}

// Receive reads the next Record. It returns io.EOF when the input is done.
func (d *Decoder) Receive() (*Record, error) {
	data, err := d.reader.ReadBytes('\n')
	if err != nil {
		if err == io.EOF && len(data) == 0 {
			return nil, io.EOF
		}
		if err != io.EOF {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}
	return &rec, nil
}

// ParsePayload decodes the raw payload of rec into target
func ParsePayload(rec *Record, target interface{}) error {
	data, err := json.Marshal(rec.Payload)
	if err != nil {
		return fmt.Errorf("failed to re-encode payload: %w", err)
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to decode payload: %w", err)
	}
	return nil
}
