package realtime

import (
	"encoding/json"
	"sync"

	"github.com/threadmind-dev/threadmind/internal/domain"
	"github.com/threadmind-dev/threadmind/internal/logger"
)

// Inbound event types.
const (
	EventJoinThread   = "join_thread"
	EventLeaveThread  = "leave_thread"
	EventUpdateThread = "update_thread"
)

// Outbound event types.
const (
	EventThreadUpdated      = "thread_updated"
	EventCollaboratorJoined = "collaborator_joined"
	EventCollaboratorLeft   = "collaborator_left"
)

// Event is the wire format in both directions. Unused fields are omitted.
type Event struct {
	Type     string          `json:"type"`
	ThreadId domain.ThreadId `json:"threadId,omitempty"`
	Content  string          `json:"content,omitempty"`
	User     *domain.UserRef `json:"user,omitempty"`
}

// ThreadUpdater is the slice of the thread service the hub drives. Realtime
// edits go through the same mutation path as the REST handlers.
type ThreadUpdater interface {
	UpdateContent(id domain.ThreadId, content string, editor domain.UserRef) bool
	AddContributor(id domain.ThreadId, user domain.UserRef) bool
}

type broadcastMsg struct {
	threadId domain.ThreadId
	data     []byte
	exclude  *Client
}

// Hub tracks connected clients and their per-thread rooms and fans
// thread events out to room members.
type Hub struct {
	threads ThreadUpdater

	clients map[*Client]bool
	rooms   map[domain.ThreadId]map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan broadcastMsg

	mu sync.RWMutex
}

func NewHub(threads ThreadUpdater) *Hub {
	return &Hub{
		threads:    threads,
		clients:    make(map[*Client]bool),
		rooms:      make(map[domain.ThreadId]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan broadcastMsg, 256),
	}
}

// Run is the hub's event loop. It must be called in a goroutine before
// the first connection is served.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.dropClient(client)

		case msg := <-h.broadcast:
			h.mu.RLock()
			var stale []*Client
			for client := range h.rooms[msg.threadId] {
				if client == msg.exclude {
					continue
				}
				select {
				case client.send <- msg.data:
				default:
					// send buffer full, connection is stuck
					stale = append(stale, client)
				}
			}
			h.mu.RUnlock()
			for _, client := range stale {
				h.dropClient(client)
			}
		}
	}
}

// dropClient removes the client from every room and closes its send channel.
// A client leaving rooms notifies the remaining members.
func (h *Hub) dropClient(client *Client) {
	h.mu.Lock()
	if _, ok := h.clients[client]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.clients, client)
	var left []domain.ThreadId
	for id := range client.rooms {
		if room, ok := h.rooms[id]; ok {
			delete(room, client)
			if len(room) == 0 {
				delete(h.rooms, id)
			}
		}
		left = append(left, id)
	}
	close(client.send)
	h.mu.Unlock()

	for _, id := range left {
		h.broadcastEvent(id, Event{Type: EventCollaboratorLeft, ThreadId: id, User: &client.user}, nil)
	}
}

func (h *Hub) joinThread(client *Client, id domain.ThreadId) {
	h.mu.Lock()
	client.rooms[id] = true
	if h.rooms[id] == nil {
		h.rooms[id] = make(map[*Client]bool)
	}
	h.rooms[id][client] = true
	h.mu.Unlock()

	h.threads.AddContributor(id, client.user)
	h.broadcastEvent(id, Event{Type: EventCollaboratorJoined, ThreadId: id, User: &client.user}, client)
}

func (h *Hub) leaveThread(client *Client, id domain.ThreadId) {
	h.mu.Lock()
	delete(client.rooms, id)
	if room, ok := h.rooms[id]; ok {
		delete(room, client)
		if len(room) == 0 {
			delete(h.rooms, id)
		}
	}
	h.mu.Unlock()

	h.broadcastEvent(id, Event{Type: EventCollaboratorLeft, ThreadId: id, User: &client.user}, client)
}

// updateThread applies a realtime content edit and echoes it to the other
// room members. Edits to unknown threads are dropped.
func (h *Hub) updateThread(client *Client, id domain.ThreadId, content string) {
	if !h.threads.UpdateContent(id, content, client.user) {
		logger.Log.Debug("realtime edit for unknown thread dropped", "thread", id)
		return
	}
	h.broadcastEvent(id, Event{Type: EventThreadUpdated, ThreadId: id, Content: content, User: &client.user}, client)
}

func (h *Hub) broadcastEvent(id domain.ThreadId, ev Event, exclude *Client) {
	data, err := json.Marshal(ev)
	if err != nil {
		logger.Log.Error("failed to marshal realtime event", "error", err)
		return
	}
	// Non-blocking: dropClient runs on the hub loop itself, so a full
	// broadcast buffer must never stall it.
	select {
	case h.broadcast <- broadcastMsg{threadId: id, data: data, exclude: exclude}:
	default:
		logger.Log.Warn("realtime broadcast buffer full, event dropped", "thread", id, "type", ev.Type)
	}
}
