package speech

import (
	"context"
	"fmt"
	"log"
	"sync"
)

// Narrator serializes narration requests into a single ordered queue with
// one playback worker, so overlapping narrations never play simultaneously.
// Failed playback falls back to printing the text.
type Narrator struct {
	speaker Speaker
	queue   chan string
	done    chan struct{}
	once    sync.Once
}

// NewNarrator starts the playback worker with the given speaker.
func NewNarrator(speaker Speaker) *Narrator {
	n := &Narrator{
		speaker: speaker,
		queue:   make(chan string, 64),
		done:    make(chan struct{}),
	}
	go n.playbackLoop()
	return n
}

func (n *Narrator) playbackLoop() {
	defer close(n.done)
	for text := range n.queue {
		if err := n.speaker.Speak(context.Background(), text); err != nil {
			log.Printf("Warning: narration failed: %v", err)
			fmt.Println(text)
		}
	}
}

// Say enqueues text for playback in submission order.
func (n *Narrator) Say(text string) {
	n.queue <- text
}

// Close drains whatever is queued and stops the worker. Safe to call more
// than once.
func (n *Narrator) Close() {
	n.once.Do(func() {
		close(n.queue)
	})
	<-n.done
}
