package sse

import (
	"context"
	"sync"

	"crud_api/internal/model"
)

// RoomAll receives every log regardless of level.
const RoomAll = "all"

type Client struct {
	Room string
	Ch   chan model.Log
}

// Hub fans created log records out to stream clients grouped by level.
type Hub struct {
	register   chan *Client
	unregister chan *Client
	broadcast  chan model.Log
	rooms      map[string]map[*Client]struct{}
	mu         sync.RWMutex
	done       chan struct{}
	stopOnce   sync.Once
}

func NewHub() *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan model.Log, 64),
		rooms:      make(map[string]map[*Client]struct{}),
		done:       make(chan struct{}),
	}
}

// Register and Unregister return immediately once Run has stopped.
func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
	}
}

func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Broadcast queues entry for delivery. It never blocks the caller: when the
// queue is full the entry is dropped.
func (h *Hub) Broadcast(entry model.Log) {
	select {
	case h.broadcast <- entry:
	default:
	}
}

func (h *Hub) Run(ctx context.Context) {
	defer h.stopOnce.Do(func() { close(h.done) })
	for {
		select {
		case <-ctx.Done():
			return
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		case entry := <-h.broadcast:
			h.broadcastToRoom(entry.Level, entry)
			h.broadcastToRoom(RoomAll, entry)
		}
	}
}

// Clients reports how many clients are subscribed to room.
func (h *Hub) Clients(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rooms[client.Room] == nil {
		h.rooms[client.Room] = make(map[*Client]struct{})
	}
	h.rooms[client.Room][client] = struct{}{}
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room := h.rooms[client.Room]
	if room == nil {
		return
	}
	delete(room, client)
	if len(room) == 0 {
		delete(h.rooms, client.Room)
	}
}

func (h *Hub) broadcastToRoom(name string, entry model.Log) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.rooms[name] {
		select {
		case client.Ch <- entry:
		default:
			// Drop if the client is too slow.
		}
	}
}
