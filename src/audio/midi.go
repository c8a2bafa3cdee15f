package audio

import (
	"context"
	"fmt"
	"log"

	"gitlab.com/gomidi/midi"
	"gitlab.com/gomidi/rtmididrv"
)

// ListenMIDI forwards messages from the first MIDI IN port to onMessage until ctx is done.
// It returns nil right away when no port is available.
func ListenMIDI(ctx context.Context, onMessage func(data []byte)) error {
	drv, err := rtmididrv.New()
	if err != nil {
		return fmt.Errorf("failed to initialize MIDI driver: %w", err)
	}
	defer func() {
		if err := drv.Close(); err != nil {
			log.Printf("failed to close MIDI driver: %v\n", err)
		}
	}()
	in, err := firstIn(drv)
	if err != nil {
		return err
	}
	if in == nil {
		log.Println("[WARN] MIDI IN not found")
		return nil
	}
	if err := in.Open(); err != nil {
		return fmt.Errorf("failed to open MIDI IN: %w", err)
	}
	log.Println("opened " + in.String())
	defer func() {
		if err := in.Close(); err != nil {
			log.Printf("failed to close MIDI IN: %v\n", err)
		}
	}()
	if err := in.SetListener(func(data []byte, deltaMicroseconds int64) {
		onMessage(data)
	}); err != nil {
		return fmt.Errorf("failed to set listener: %w", err)
	}
	log.Println("start listening MIDI IN...")
	<-ctx.Done()
	log.Println("stop listening MIDI IN...")
	if err := in.StopListening(); err != nil {
		log.Printf("failed to stop listening: %v\n", err)
	}
	return nil
}

func firstIn(drv midi.Driver) (midi.In, error) {
	ins, err := drv.Ins()
	if err != nil {
		return nil, fmt.Errorf("failed to get MIDI IN: %w", err)
	}
	log.Printf("MIDI IN: %v\n", ins)
	if len(ins) == 0 {
		return nil, nil
	}
	return ins[0], nil
}
