package SSE

import (
	"fmt"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// ScheduleBroadcaster manages SSE connections and pushes a refresh event to
// every connected front-desk client after a schedule mutation.
type ScheduleBroadcaster struct {
	clients map[chan string]bool
	mu      sync.Mutex
}

func NewScheduleBroadcaster() *ScheduleBroadcaster {
	return &ScheduleBroadcaster{
		clients: make(map[chan string]bool),
	}
}

// Register adds a new client to the broadcaster.
func (b *ScheduleBroadcaster) Register(client chan string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.clients[client] = true
}

// Unregister removes a client from the broadcaster. It is the only place
// that closes the channel, and only while the client is still registered,
// so a client already dropped by Broadcast is not closed twice.
func (b *ScheduleBroadcaster) Unregister(client chan string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.clients[client]; ok {
		delete(b.clients, client)
		close(client)
	}
}

// Broadcast sends a message to all registered clients.
func (b *ScheduleBroadcaster) Broadcast(message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for client := range b.clients {
		select {
		case client <- message:
		case <-time.After(1 * time.Second):
			// If the client is not responding, drop it. The handler's
			// deferred Unregister closes the channel.
			delete(b.clients, client)
		}
	}
}

var Broadcaster = NewScheduleBroadcaster()

// NotifyScheduleChanged is called by the workflow handlers after every
// booking, status transition or deletion.
func NotifyScheduleChanged(date string) {
	Broadcaster.Broadcast("schedule_updated " + date)
}

func RequestSSE(c *gin.Context) {
	// Set headers for SSE

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("Access-Control-Allow-Origin", "*")

	// Create a new channel for this client
	clientChan := make(chan string)

	// Register the client channel
	Broadcaster.Register(clientChan)
	defer Broadcaster.Unregister(clientChan)
	fmt.Fprintf(c.Writer, "data: %s\n\n", "connected")
	c.Writer.Flush()
	// Listen to the client channel and send messages to the client
	for {
		select {
		case message := <-clientChan:
			// Send the message to the client
			fmt.Fprintf(c.Writer, "data: %s\n\n", message)
			c.Writer.Flush()
		case <-c.Writer.CloseNotify():
			// Client disconnected
			return
		}
	}
}
