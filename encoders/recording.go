package encoders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/htm-community/shapes"
	"github.com/skelterjohn/go.matrix"
)

//One recorded sensor event
type Event struct {
	Key    int
	TimeMs float64
}

/*
 Recording is a DVS capture as saved to disk:

	<resolution>
	<simulation time in ms>
	<key>,<time ms>
	...

The sensor is always square.
*/
type Recording struct {
	Resolution int
	SimTime    int
	Events     []Event
}

func ReadRecording(r io.Reader) (*Recording, error) {
	return readRecording(r, false)
}

//Reads the resolution and simulation time only, leaving Events empty
func ReadRecordingHeader(r io.Reader) (*Recording, error) {
	return readRecording(r, true)
}

func readRecording(r io.Reader, headerOnly bool) (*Recording, error) {
	scanner := bufio.NewScanner(r)
	rec := new(Recording)
	header := 0
	line := 0

	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		switch header {
		case 0:
			res, err := strconv.Atoi(text)
			if err != nil || res <= 0 {
				return nil, fmt.Errorf("%w: line %v: resolution %q", ErrMalformedRecording, line, text)
			}
			rec.Resolution = res
			header++
		case 1:
			simTime, err := strconv.Atoi(text)
			if err != nil || simTime < 0 {
				return nil, fmt.Errorf("%w: line %v: simulation time %q", ErrMalformedRecording, line, text)
			}
			rec.SimTime = simTime
			header++
			if headerOnly {
				return rec, nil
			}
		default:
			ev, err := parseEvent(text)
			if err != nil {
				return nil, fmt.Errorf("%w: line %v: %v", ErrMalformedRecording, line, err)
			}
			rec.Events = append(rec.Events, ev)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading recording: %w", err)
	}
	if header < 2 {
		return nil, fmt.Errorf("%w: missing header", ErrMalformedRecording)
	}

	return rec, nil
}

func LoadRecording(path string) (*Recording, error) {
	return loadRecording(path, ReadRecording)
}

func LoadRecordingHeader(path string) (*Recording, error) {
	return loadRecording(path, ReadRecordingHeader)
}

func loadRecording(path string, read func(io.Reader) (*Recording, error)) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening recording: %w", err)
	}
	defer f.Close()

	rec, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	return rec, nil
}

func parseEvent(text string) (Event, error) {
	parts := strings.Split(text, ",")
	if len(parts) != 2 {
		return Event{}, fmt.Errorf("expected <key>,<time> got %q", text)
	}
	key, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || key < 0 {
		return Event{}, fmt.Errorf("invalid key %q", parts[0])
	}
	t, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Event{}, fmt.Errorf("invalid time %q", parts[1])
	}
	return Event{key, t}, nil
}

func (rec *Recording) Encoder() (*DVSEncoder, error) {
	return NewDVSEncoder(rec.Resolution)
}

//Spike times per neuron for each polarity. Neurons are indexed by
//shapes.NeuronId(row, col, res)
func (rec *Recording) PopulateSpikes() (pos, neg [][]float64, err error) {
	e, err := rec.Encoder()
	if err != nil {
		return nil, nil, err
	}

	n := rec.Resolution * rec.Resolution
	pos = make([][]float64, n)
	neg = make([][]float64, n)

	for _, ev := range rec.Events {
		row, col, polarity := e.Decode(ev.Key)
		id := shapes.NeuronId(row, col, rec.Resolution)
		if id == shapes.Absent {
			return nil, nil, fmt.Errorf("%w: key %v decodes off-grid (%v,%v)", ErrMalformedRecording, ev.Key, row, col)
		}
		if polarity == Positive {
			pos[id] = append(pos[id], ev.TimeMs)
		} else {
			neg[id] = append(neg[id], ev.TimeMs)
		}
	}

	return pos, neg, nil
}

//Spike times per neuron for one channel. Merged times are sorted
func (rec *Recording) Spikes(ch Channel) ([][]float64, error) {
	pos, neg, err := rec.PopulateSpikes()
	if err != nil {
		return nil, err
	}

	switch ch {
	case Up:
		return pos, nil
	case Down:
		return neg, nil
	case Merged:
		result := make([][]float64, len(pos))
		for idx := range pos {
			if len(pos[idx])+len(neg[idx]) == 0 {
				continue
			}
			result[idx] = append(append(make([]float64, 0, len(pos[idx])+len(neg[idx])), pos[idx]...), neg[idx]...)
			sort.Float64s(result[idx])
		}
		return result, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownChannel, ch)
}

//One res x res frame per simulated millisecond, indexed [row][col].
//Positive events are 1, negative -1. Events at or after the
//simulation time are dropped
func (rec *Recording) DebugFrames() ([]*matrix.DenseMatrix, error) {
	e, err := rec.Encoder()
	if err != nil {
		return nil, err
	}

	res := rec.Resolution
	frames := make([]*matrix.DenseMatrix, rec.SimTime)
	for t := range frames {
		frames[t] = matrix.MakeDenseMatrix(make([]float64, res*res), res, res)
	}

	for _, ev := range rec.Events {
		t := int(ev.TimeMs)
		if t < 0 || t >= rec.SimTime {
			continue
		}
		row, col, polarity := e.Decode(ev.Key)
		if !shapes.CheckBounds(row, col, res) {
			continue
		}
		if polarity == Positive {
			frames[t].Set(row, col, 1)
		} else {
			frames[t].Set(row, col, -1)
		}
	}

	return frames, nil
}
