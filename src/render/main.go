package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jinjor/morph-synth/src/audio"
	"golang.org/x/sync/errgroup"
)

const bitDepth = 16

var (
	presetDir  = flag.String("presets", "presets", "directory of preset files")
	notesFlag  = flag.String("notes", "60,64,67,72", "comma separated MIDI notes played in order")
	noteLength = flag.Float64("length", 0.5, "seconds each note is held")
	tail       = flag.Float64("tail", 1.0, "seconds rendered after the last note")
)

// render writes one WAV file per preset into the directory given as the first argument.
// Presets default to every entry of _list.json.
func main() {
	flag.Parse()
	log.SetFlags(log.Lshortfile)
	dir := flag.Arg(0)
	if dir == "" {
		log.Fatalln("output dir is not passed")
	}
	notes, err := parseNotes(*notesFlag)
	if err != nil {
		log.Fatalf("error: %v\n", err)
	}
	presets := flag.Args()[1:]
	if len(presets) == 0 {
		if presets, err = audio.PresetNames(*presetDir); err != nil {
			log.Fatalf("error: %v\n", err)
		}
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("error: %v\n", err)
	}

	g, _ := errgroup.WithContext(context.Background())
	for _, preset := range presets {
		preset := preset
		g.Go(func() error {
			out, err := audio.Render(*presetDir, preset, notes, *noteLength, *tail)
			if err != nil {
				return fmt.Errorf("%s: %w", preset, err)
			}
			log.Printf("rendered %s\n", preset)
			path := filepath.Join(dir, preset+".wav")
			if err := save(path, out); err != nil {
				return fmt.Errorf("%s: %w", preset, err)
			}
			log.Printf("saved %s\n", path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("error: %v\n", err)
	}
	log.Println("Successfully rendered presets.")
}

func parseNotes(s string) ([]int, error) {
	items := strings.Split(s, ",")
	notes := make([]int, 0, len(items))
	for _, item := range items {
		note, err := strconv.Atoi(strings.TrimSpace(item))
		if err != nil {
			return nil, err
		}
		if note < 0 || note > 127 {
			return nil, fmt.Errorf("note %d is out of MIDI range", note)
		}
		notes = append(notes, note)
	}
	return notes, nil
}

func save(path string, samples []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := wav.NewEncoder(f, audio.SampleRate, bitDepth, 1, 1)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: audio.SampleRate},
		Data:           toPCM(samples),
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return f.Close()
}

func toPCM(samples []float64) []int {
	const max = 32767
	data := make([]int, len(samples))
	for i, v := range samples {
		data[i] = int(math.Max(-1, math.Min(1, v)) * max)
	}
	return data
}
