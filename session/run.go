package session

import (
	"sync"

	"go.uber.org/zap"
)

// Run emits a frame for the initial state and one after every event, until events is closed.
// frames is closed when Run returns. An error stops the loop, events left are drained so the
// sender never blocks.
func (s *Session) Run(events <-chan Event, frames chan<- Frame) (err error) {
	defer close(frames)
	var eventCount, selectedCount uint64
	defer func() {
		s.logger.Info("session done",
			zap.Uint64("events", eventCount),
			zap.Uint64("frames", s.tick),
			zap.Uint64("frames with selection", selectedCount),
			zap.Error(err))
	}()

	emit := func() error {
		frame, err := s.Tick()
		if err != nil {
			return err
		}
		if frame.Selected != NoSelection {
			selectedCount++
		}
		frames <- frame
		return nil
	}

	if err = emit(); err != nil {
		drain(events)
		return err
	}
	for {
		event, hasMore := <-events
		if !hasMore {
			break
		}
		eventCount++
		if err = s.Apply(event); err != nil {
			drain(events)
			return err
		}
		if err = emit(); err != nil {
			drain(events)
			return err
		}
	}
	return nil
}

func drain(events <-chan Event) {
	for range events { //nolint:revive
	}
}

// Replay feeds events through Run and collects all frames.
func (s *Session) Replay(events []Event) ([]Frame, error) {
	eventsIn := make(chan Event)
	framesOut := make(chan Frame)

	go func() {
		defer close(eventsIn)
		for _, e := range events {
			eventsIn <- e
		}
	}()

	var runErr error
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		runErr = s.Run(eventsIn, framesOut)
	}()

	collected := make([]Frame, 0, len(events)+1)
	for frame := range framesOut {
		collected = append(collected, frame)
	}
	wg.Wait()
	return collected, runErr
}
