package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"fb2nep/internal/dataset"
)

func sample() dataset.Dataset {
	return dataset.Dataset{Records: []dataset.Record{
		{ID: 1, Age: 57, Sex: "male", BMI: 21.5, SmokingStatus: "former", PhysicalActivity: "inactive", NutrientIntake: 24.1, SocialClass: "ABC1"},
		{ID: 2, Age: 73, Sex: "male", BMI: 27, SmokingStatus: "never", PhysicalActivity: "active", NutrientIntake: 18.2, SocialClass: "C2DE", RiskFactor1: 1, RiskFactor2: 1, Disease: 1},
	}}
}

var sampleCSV = Header + "\n" +
	"1,57,male,21.5,former,inactive,24.1,ABC1,0,0,0\n" +
	"2,73,male,27.0,never,active,18.2,C2DE,1,1,1\n"

func TestWriteCSV(t *testing.T) {
	var b bytes.Buffer
	if err := WriteCSV(&b, sample()); err != nil {
		t.Fatalf("write: %v", err)
	}
	if b.String() != sampleCSV {
		t.Fatalf("csv:\nwant %q\ngot  %q", sampleCSV, b.String())
	}
}

func TestStreamCSVMatchesWriteCSV(t *testing.T) {
	in := make(chan dataset.Record, 4)
	for _, r := range sample().Records {
		in <- r
	}
	close(in)
	var b bytes.Buffer
	n, err := StreamCSV(&b, in)
	if err != nil || n != 2 {
		t.Fatalf("stream: n=%d err=%v", n, err)
	}
	if b.String() != sampleCSV {
		t.Fatalf("stream csv:\nwant %q\ngot  %q", sampleCSV, b.String())
	}
}

func TestEmptyDatasetHeaderOnly(t *testing.T) {
	var b bytes.Buffer
	if err := WriteCSV(&b, dataset.Dataset{}); err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(b.String(), "\n"); got != 1 {
		t.Fatalf("want header line only, got %d lines", got)
	}
}

type failWriter struct{ after int }

func (f *failWriter) Write(p []byte) (int, error) {
	if f.after <= 0 {
		return 0, errors.New("disk full")
	}
	f.after--
	return len(p), nil
}

func TestStreamCSVDrainsOnError(t *testing.T) {
	in := make(chan dataset.Record)
	done := make(chan error, 1)
	go func() {
		_, err := StreamCSV(&failWriter{after: 1}, in)
		done <- err
	}()
	for _, r := range sample().Records {
		in <- r // must not block after the failure
	}
	close(in)
	if err := <-done; err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("want disk full error, got %v", err)
	}
}
