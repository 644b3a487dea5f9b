package record

import (
	"testing"

	"github.com/strafesim/strafesim/sim"
)

func sampleRecord() Record {
	return Record{
		MapName:   "reference-arena",
		ElapsedMs: 42375,
		Splits: []sim.Split{
			{Index: 0, ElapsedMs: 12031},
			{Index: 1, ElapsedMs: 29500},
		},
		MaxSpeed: 31.5,
		AvgSpeed: 18.2,
		Distance: 812.4,
		Jumps:    23,
		UnixMs:   1756000000000,
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	in := sampleRecord()
	data, err := Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	out, err := Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}
	if out.MapName != in.MapName || out.ElapsedMs != in.ElapsedMs || out.Jumps != in.Jumps {
		t.Fatalf("round trip mismatch: %+v != %+v", out, in)
	}
	if len(out.Splits) != 2 || out.Splits[1].ElapsedMs != 29500 {
		t.Fatalf("splits did not survive: %+v", out.Splits)
	}
}

func TestUnmarshalRejectsCorruption(t *testing.T) {
	data, err := Marshal(sampleRecord())
	if err != nil {
		t.Fatal(err)
	}
	data[2] ^= 0xff
	if _, err := Unmarshal(data); err == nil {
		t.Fatal("corrupted payload unmarshalled cleanly")
	}
}

func TestUnmarshalRejectsTruncation(t *testing.T) {
	if _, err := Unmarshal([]byte{0x01, 0x02}); err == nil {
		t.Fatal("short payload unmarshalled cleanly")
	}
}

func TestFromRunRequiresFinishedRun(t *testing.T) {
	s := sim.New(sim.Options{})
	if _, err := FromRun(s, "x", 0); err == nil {
		t.Fatal("unfinished run produced a record")
	}
}
