package ws

import (
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/Ashish12122003/Menumate-backend/entity"
	"github.com/Ashish12122003/Menumate-backend/services"
	"github.com/Ashish12122003/Menumate-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// NotifyHub is the pub/sub center for real-time notifications. Delivery is
// best-effort only: no persistence, no acknowledgment, no retry.
type NotifyHub struct {
	clients    map[string]map[*websocket.Conn]bool // room -> set of clients
	broadcast  chan outbound
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
	shops      *services.ShopService
}

type subscription struct {
	Conn *websocket.Conn
	Room string
}

type outbound struct {
	Room    string
	Payload Event
}

// Event is the frame every subscriber receives.
type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Room names are namespaced so shop and user ids cannot collide.
func ShopRoom(shopID uint) string { return fmt.Sprintf("shop:%d", shopID) }
func UserRoom(userID uint) string { return fmt.Sprintf("user:%d", userID) }

func NewNotifyHub(shops *services.ShopService) *NotifyHub {
	return &NotifyHub{
		clients:    make(map[string]map[*websocket.Conn]bool),
		broadcast:  make(chan outbound),
		register:   make(chan subscription),
		unregister: make(chan subscription),
		shops:      shops,
	}
}

// Run loops over register/unregister/broadcast until the process exits.
func (h *NotifyHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.Room] == nil {
				h.clients[sub.Room] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.Room][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.Room][sub.Conn]; ok {
				delete(h.clients[sub.Room], sub.Conn)
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[msg.Room] {
				if err := conn.WriteJSON(msg.Payload); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[msg.Room], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish delivers the event to everyone currently in the room.
func (h *NotifyHub) Publish(room, event string, data any) {
	h.broadcast <- outbound{Room: room, Payload: Event{Event: event, Data: data}}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// client -> server frames
type clientMessage struct {
	Action      string `json:"action"`
	ShopID      uint   `json:"shopId,omitempty"`
	TableNumber string `json:"tableNumber,omitempty"`
}

// identity comes from the JWT the ws auth middleware verified, never from
// a client frame. Both fields are zero for table guests.
type clientIdentity struct {
	UserID uint
	Vendor *entity.Vendor
}

// WS route: /ws/notifications
//
// Vendors join their shop room to hear waiter calls and order events;
// customers join their own room for status pushes. Guests at a table only
// send call_waiter_request, no join needed.
func (h *NotifyHub) HandleWebSocket(c *gin.Context) {
	who := clientIdentity{
		UserID: utils.CurrentUserID(c),
		Vendor: utils.CurrentVendor(c),
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	go h.listen(conn, who)
}

func (h *NotifyHub) listen(conn *websocket.Conn, who clientIdentity) {
	var joined []string
	defer func() {
		for _, room := range joined {
			h.unregister <- subscription{Conn: conn, Room: room}
		}
		conn.Close()
	}()

	for {
		var msg clientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			break
		}

		switch msg.Action {
		case "joinShopRoom":
			if who.Vendor == nil || msg.ShopID == 0 {
				continue
			}
			if _, err := h.shops.AuthorizeShop(msg.ShopID, who.Vendor); err != nil {
				log.Printf("vendor %d refused room shop:%d: %v", who.Vendor.ID, msg.ShopID, err)
				continue
			}
			room := ShopRoom(msg.ShopID)
			h.register <- subscription{Conn: conn, Room: room}
			joined = append(joined, room)
			log.Printf("client joined room %s", room)

		case "joinUserRoom":
			// the token decides which room, not the frame
			if who.UserID == 0 {
				continue
			}
			room := UserRoom(who.UserID)
			h.register <- subscription{Conn: conn, Room: room}
			joined = append(joined, room)
			log.Printf("client joined room %s", room)

		case "call_waiter_request":
			if msg.ShopID == 0 || msg.TableNumber == "" {
				log.Printf("waiter call with missing shop or table: %+v", msg)
				continue
			}
			h.Publish(ShopRoom(msg.ShopID), "waiter_call_alert", gin.H{
				"tableNumber": msg.TableNumber,
				"time":        time.Now(),
			})
		}
	}
}
