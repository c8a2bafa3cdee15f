package main

import (
	"bufio"
	"context"
	"flag"
	"io"
	"log"
	"net"
	"net/url"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/jinjor/morph-synth/src/audio"
	"golang.org/x/sync/errgroup"
)

var (
	sockFileName = flag.String("sock", "/tmp/morph-synth.sock", "path of the IPC socket")
	presetDir    = flag.String("presets", "presets", "directory of preset files")
	presetName   = flag.String("preset", "", "preset loaded on start")
	useMIDI      = flag.Bool("midi", true, "listen to the first MIDI IN port")
)

func main() {
	flag.Parse()
	log.SetFlags(log.Lshortfile)
	log.Printf("NumCPU: %v\n", runtime.NumCPU())

	ctx := context.Background()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	player, err := audio.NewAudio(*presetDir)
	if err != nil {
		log.Fatalf("error: %v\n", err)
	}
	defer player.Close()
	if *presetName != "" {
		if err := player.Update([]string{"preset", *presetName}); err != nil {
			log.Fatalf("error: %v\n", err)
		}
	}

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)
	defer func() {
		signal.Stop(signalCh)
		cancel()
	}()
	go func() {
		sig := <-signalCh
		log.Printf("Caught signal %s: shutting down...\n", sig)
		cancel()
	}()
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return player.Start(ctx)
	})
	if *useMIDI {
		g.Go(func() error {
			return audio.ListenMIDI(ctx, player.AddMidiEvent)
		})
	}
	g.Go(func() error {
		return withIPCConnection(ctx, *sockFileName, func(conn net.Conn) error {
			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return receiveCommands(ctx, conn, player.CommandCh)
			})
			g.Go(func() error {
				return sendReports(ctx, conn, player)
			})
			return g.Wait()
		})
	})
	if err := g.Wait(); err != nil && err != context.Canceled {
		log.Fatalf("error: %v\n", err)
	}
	log.Println("main() ended.")
}

func withIPCConnection(ctx context.Context, sockFileName string, f func(net.Conn) error) error {
	os.Remove(sockFileName)
	listener, err := new(net.ListenConfig).Listen(ctx, "unix", sockFileName)
	if err != nil {
		return err
	}
	defer func() {
		log.Println("Closing IPC...")
		listener.Close()
		os.Remove(sockFileName)
	}()
	go closeOnDone(ctx, listener)
	log.Printf("start listening on %s...\n", sockFileName)
	conn, err := listener.Accept()
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	go closeOnDone(ctx, conn)
	defer func() {
		err := conn.Close()
		if err != nil && ctx.Err() == nil {
			log.Printf("error while closing connection: %v", err)
		}
	}()
	return f(conn)
}

// closeOnDone unblocks pending Accept and Read calls on shutdown.
func closeOnDone(ctx context.Context, c io.Closer) {
	<-ctx.Done()
	c.Close()
}

func receiveCommands(ctx context.Context, conn net.Conn, commandCh chan<- []string) error {
	reader := bufio.NewReader(conn)
	var line []byte
loop:
	for {
		select {
		case <-ctx.Done():
			log.Println("Connection interrupted")
			break loop
		default:
		}
		next, isPrefix, err := reader.ReadLine()
		if err == io.EOF || ctx.Err() != nil {
			break loop
		}
		if err != nil {
			return err
		}
		line = append(line, next...)
		if isPrefix {
			continue
		}
		command, err := parseCommand(string(line))
		if err != nil {
			log.Printf("[WARN] invalid command %q: %v\n", string(line), err)
		} else {
			commandCh <- command
			log.Printf("received: %s\n", string(line))
		}
		line = []byte{}
	}
	log.Println("receiveCommands() ended.")
	return nil
}

func parseCommand(line string) ([]string, error) {
	lineStr := strings.Split(line, " ")
	for i, item := range lineStr {
		escaped, err := url.QueryUnescape(item)
		if err != nil {
			return nil, err
		}
		lineStr[i] = escaped
	}
	return lineStr, nil
}

func sendReports(ctx context.Context, conn net.Conn, audio *audio.Audio) error {
	t := time.NewTicker(time.Second / 60)
	defer t.Stop()
	var sb strings.Builder
loop:
	for {
		select {
		case <-ctx.Done():
			log.Println("sendReports() interrupted")
			break loop
		case <-t.C:
			sb.Reset()
			sb.WriteString("fft")
			for _, value := range audio.GetFFT() {
				sb.WriteString(" ")
				sb.WriteString(strconv.FormatFloat(value, 'f', 6, 64))
			}
			sb.WriteString("\n")
			if _, err := conn.Write([]byte(sb.String())); err != nil {
				if ctx.Err() != nil {
					break loop
				}
				return err
			}
		}
	}
	log.Println("sendReports() ended.")
	return nil
}
