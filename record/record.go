package record

import (
	"bytes"
	"encoding/binary"

	"github.com/fxamacker/cbor/v2"
	"github.com/zeebo/xxh3"

	"github.com/strafesim/strafesim/internal"
	"github.com/strafesim/strafesim/serror"
	"github.com/strafesim/strafesim/sim"
)

// Record is a finished run: final time, splits and the statistics the
// simulation accumulated while the run was live.
type Record struct {
	MapName   string      `cbor:"map"`
	ElapsedMs int64       `cbor:"elapsed_ms"`
	Splits    []sim.Split `cbor:"splits"`

	MaxSpeed    float32 `cbor:"max_speed"`
	AvgSpeed    float32 `cbor:"avg_speed"`
	MedianSpeed float32 `cbor:"median_speed"`
	SpeedStdDev float32 `cbor:"speed_stddev"`
	Distance    float32 `cbor:"distance"`
	Jumps       int     `cbor:"jumps"`

	// UnixMs is the wall-clock completion time, supplied by the host.
	UnixMs int64 `cbor:"unix_ms"`
}

// FromRun snapshots a finished simulation into a Record. The simulation must
// be in the finished phase.
func FromRun(s *sim.Simulation, mapName string, unixMs int64) (Record, error) {
	if s.Run.Phase != sim.RunFinished {
		return Record{}, serror.New("record: run is %s, not finished", s.Run.Phase)
	}
	splits := make([]sim.Split, len(s.Run.Splits))
	copy(splits, s.Run.Splits)
	return Record{
		MapName:     mapName,
		ElapsedMs:   s.ElapsedMs(),
		Splits:      splits,
		MaxSpeed:    s.Run.Stats.MaxSpeed,
		AvgSpeed:    s.Run.Stats.AvgSpeed,
		MedianSpeed: s.Run.Stats.MedianSpeed,
		SpeedStdDev: s.Run.Stats.SpeedStdDev,
		Distance:    s.Run.Stats.Distance,
		Jumps:       s.Run.Stats.Jumps,
		UnixMs:      unixMs,
	}, nil
}

const digestSize = 8

// Marshal encodes the record as CBOR with a trailing xxh3 digest so a
// truncated or hand-edited file is rejected on load.
func Marshal(r Record) ([]byte, error) {
	payload, err := cbor.Marshal(r)
	if err != nil {
		return nil, err
	}

	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer internal.BufferPool.Put(buf)
	buf.Write(payload)

	var digest [digestSize]byte
	binary.LittleEndian.PutUint64(digest[:], xxh3.Hash(payload))
	buf.Write(digest[:])

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

// Unmarshal decodes and verifies a record produced by Marshal.
func Unmarshal(data []byte) (Record, error) {
	if len(data) <= digestSize {
		return Record{}, serror.New("record: %d bytes is too short", len(data))
	}
	payload, tail := data[:len(data)-digestSize], data[len(data)-digestSize:]

	want := binary.LittleEndian.Uint64(tail)
	if got := xxh3.Hash(payload); got != want {
		return Record{}, serror.New("record: digest mismatch (got %x, want %x)", got, want)
	}

	var r Record
	if err := cbor.Unmarshal(payload, &r); err != nil {
		return Record{}, err
	}
	return r, nil
}
