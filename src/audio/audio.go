package audio

import (
	"context"
	"fmt"
	"io"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/oto"
)

const (
	sampleRate      = 48000
	channelNum      = 2
	bitDepthInBytes = 2
	samplesPerCycle = 1024
	fftSize         = 2048 // multiple of samplesPerCycle
	maxPoly         = 16
)
const bytesPerSample = bitDepthInBytes * channelNum
const bufferSizeInBytes = samplesPerCycle * bytesPerSample // should be >= 4096
const secPerSample = 1.0 / sampleRate

// SampleRate is the rate every voice runs at.
const SampleRate = sampleRate

// ----- Utility ----- //

func now() float64 {
	return float64(time.Now().UnixNano()) / 1000 / 1000 / 1000
}

// midiNoteToIndex converts a MIDI note number into a pitch table index.
// The table starts at B7 (MIDI 107) and descends.
func midiNoteToIndex(note int) int {
	return 107 - note
}

// ----- MIDI Event ----- //

type midiEvent struct {
	offset float64
	event  interface{}
}

type noteOn struct {
	note int
}
type noteOff struct {
	note int
}
type allNotesOff struct{}

// ----- Audio ----- //

// Audio plays the engine through the default output device.
type Audio struct {
	ctx        context.Context
	otoContext *oto.Context
	CommandCh  chan []string
	engine     *engine
	fft        *FFT
	fftResult  []float64 // length: fftSize
}

var _ io.Reader = (*Audio)(nil)

// NewAudio opens the output device. presetDir may be empty.
func NewAudio(presetDir string) (*Audio, error) {
	otoContext, err := oto.NewContext(sampleRate, channelNum, bitDepthInBytes, bufferSizeInBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio device: %w", err)
	}
	commandCh := make(chan []string, 256)
	audio := &Audio{
		ctx:        context.Background(),
		otoContext: otoContext,
		CommandCh:  commandCh,
		engine:     newEngine(presetDir),
		fft:        NewFFT(fftSize),
		fftResult:  make([]float64, fftSize),
	}
	go processCommands(audio.engine, commandCh)
	return audio, nil
}

func processCommands(e *engine, commandCh <-chan []string) {
	for command := range commandCh {
		if err := e.update(command); err != nil {
			log.Printf("[WARN] command %v failed: %v\n", command, err)
		}
	}
	log.Println("processCommands() ended.")
}

// Read renders the next block as 16 bit stereo PCM.
func (a *Audio) Read(buf []byte) (int, error) {
	select {
	case <-a.ctx.Done():
		log.Println("Read() interrupted.")
		return 0, io.EOF
	default:
		return a.engine.read(buf), nil
	}
}

// Start blocks until ctx is cancelled.
func (a *Audio) Start(ctx context.Context) error {
	p := a.otoContext.NewPlayer()
	defer func() {
		if err := p.Close(); err != nil {
			log.Printf("error: %v", err)
		}
	}()
	a.ctx = ctx

	// block until cancel() called
	if _, err := io.CopyBuffer(p, a, make([]byte, bufferSizeInBytes)); err != nil {
		return err
	}
	log.Println("Start() ended.")
	return nil
}

// Close ...
func (a *Audio) Close() error {
	log.Println("Closing Audio...")
	close(a.CommandCh)
	return a.otoContext.Close()
}

// Update applies a command synchronously.
func (a *Audio) Update(command []string) error {
	return a.engine.update(command)
}

// ApplyJSON replaces the current patch.
func (a *Audio) ApplyJSON(data []byte) error {
	a.engine.Lock()
	defer a.engine.Unlock()
	return a.engine.params.applyJSON(data)
}

// ToJSON ...
func (a *Audio) ToJSON() []byte {
	a.engine.Lock()
	defer a.engine.Unlock()
	return a.engine.params.toJSON()
}

// GetFFT returns the magnitude spectrum of the latest output.
// The returned slice is reused by the next call.
func (a *Audio) GetFFT() []float64 {
	a.engine.snapshot(a.fftResult)
	Han(a.fftResult)
	a.fft.CalcAbs(a.fftResult)
	for i, value := range a.fftResult {
		a.fftResult[i] = value * 2 / fftSize
	}
	return a.fftResult[:fftSize/2]
}

// AddMidiEvent accepts a raw MIDI message.
func (a *Audio) AddMidiEvent(data []byte) {
	if len(data) < 3 {
		return
	}
	a.engine.Lock()
	defer a.engine.Unlock()
	status := data[0] >> 4
	switch {
	case status == 8 || status == 9 && data[2] == 0:
		log.Printf("got note-off: %v\n", data)
		a.engine.addMidiEvent(&noteOff{note: int(data[1])})
	case status == 9:
		log.Printf("got note-on: %v\n", data)
		a.engine.addMidiEvent(&noteOn{note: int(data[1])})
	case status == 0xB && data[1] == 123:
		a.engine.addMidiEvent(&allNotesOff{})
	}
}

func writeBuffer(out []float64, buf []byte, ch int) {
	for i, value := range out {
		switch bitDepthInBytes {
		case 1:
			const max = 127
			b := int(clip(value) * max)
			buf[bytesPerSample*i+ch] = byte(b + 128)
		case 2:
			const max = 32767
			b := int16(clip(value) * max)
			buf[bytesPerSample*i+2*ch] = byte(b)
			buf[bytesPerSample*i+2*ch+1] = byte(b >> 8)
		}
	}
}

func clip(value float64) float64 {
	return math.Max(-1, math.Min(1, value))
}
