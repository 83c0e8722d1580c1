package encoders

import (
	"errors"
	"fmt"
	"strings"
)

var (
	//Sensor resolution not a positive power of two, or above 1<<15
	ErrInvalidResolution = errors.New("encoders: resolution must be a power of two between 1 and 32768")
	//Recording not following the header/event layout
	ErrMalformedRecording = errors.New("encoders: malformed recording")
	//Channel name outside UP, DOWN and MERGED
	ErrUnknownChannel = errors.New("encoders: unknown channel")
)

//Event bit as recorded by the sensor
type Polarity uint8

const (
	//Brightness decrease
	Negative Polarity = 0
	//Brightness increase
	Positive Polarity = 1
)

func (p Polarity) String() string {
	if p == Positive {
		return "+"
	}
	return "-"
}

//Which events feed a spike source
type Channel uint8

const (
	//Positive events only
	Up Channel = 0
	//Negative events only
	Down Channel = 1
	//Both
	Merged Channel = 2
)

var channelNames = []string{"UP", "DOWN", "MERGED"}

func (c Channel) String() string {
	if int(c) < len(channelNames) {
		return channelNames[c]
	}
	return fmt.Sprintf("Channel(%d)", uint8(c))
}

func ParseChannel(name string) (Channel, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for idx, val := range channelNames {
		if val == name {
			return Channel(idx), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownChannel, name)
}
