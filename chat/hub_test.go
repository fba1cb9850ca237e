package chat_test

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/venuehub/backend/chat"
	"github.com/venuehub/backend/middlewares"
	"github.com/venuehub/backend/models"
	"github.com/venuehub/backend/services"
	"github.com/venuehub/backend/utils"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.ChatRoom{},
		&models.ChatMessage{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string, restaurantID uint) *models.User {
	user := &models.User{
		FirstName:    "Test",
		LastName:     "User",
		Email:        email,
		Password:     "irrelevant",
		Role:         models.RoleEmployee,
		Status:       models.StatusActive,
		RestaurantID: &restaurantID,
	}
	assert.NoError(t, db.Create(user).Error)
	return user
}

func seedRoom(t *testing.T, db *gorm.DB, name string, members ...*models.User) *models.ChatRoom {
	restaurant := &models.Restaurant{
		Name:      name,
		VenueCode: strings.ToUpper(name[:3]) + "123",
		Email:     name + "@example.com",
		Status:    models.StatusActive,
	}
	assert.NoError(t, db.Create(restaurant).Error)

	room := &models.ChatRoom{
		RestaurantID:   restaurant.ID,
		RestaurantName: name,
	}
	assert.NoError(t, db.Create(room).Error)
	for _, m := range members {
		assert.NoError(t, db.Model(room).Association("Members").Append(m))
	}
	return room
}

func dialSocket(t *testing.T, serverURL string, user *models.User) *websocket.Conn {
	token, err := utils.GenerateToken(user.ID, user.Email, user.Role, *user.RestaurantID)
	assert.NoError(t, err)

	wsURL := "ws" + strings.TrimPrefix(serverURL, "http") + "/ws/chat?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("ws dial failed: %v", err)
	}
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) chat.ServerEvent {
	var ev chat.ServerEvent
	assert.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	assert.NoError(t, conn.ReadJSON(&ev))
	return ev
}

func joinRoom(t *testing.T, conn *websocket.Conn, roomID uint) {
	assert.NoError(t, conn.WriteJSON(chat.ClientEvent{Event: "joinRoom", Room: roomID}))
	ev := readEvent(t, conn)
	assert.Equal(t, chat.EventJoined, ev.Event)
}

func TestRoomBroadcastIsScopedToRoom(t *testing.T) {
	db := setupTestDB(t)

	userA := seedUser(t, db, "a@example.com", 1)
	userB := seedUser(t, db, "b@example.com", 1)
	userC := seedUser(t, db, "c@example.com", 2)
	room1 := seedRoom(t, db, "alpha", userA, userB)
	room2 := seedRoom(t, db, "bravo", userC)

	chatSvc := services.NewChatService(db)
	hub := chat.NewHub(chatSvc)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws/chat", middlewares.WebSocketAuth(), hub.HandleWebSocket)
	srv := httptest.NewServer(r)
	defer srv.Close()

	connA := dialSocket(t, srv.URL, userA)
	defer connA.Close()
	connB := dialSocket(t, srv.URL, userB)
	defer connB.Close()
	connC := dialSocket(t, srv.URL, userC)
	defer connC.Close()

	joinRoom(t, connA, room1.ID)
	joinRoom(t, connB, room1.ID)
	joinRoom(t, connC, room2.ID)

	assert.NoError(t, connA.WriteJSON(chat.ClientEvent{Event: "message", Room: room1.ID, Msg: "hi"}))

	// Every subscriber of room1 gets the broadcast, sender included.
	for _, conn := range []*websocket.Conn{connA, connB} {
		ev := readEvent(t, conn)
		assert.Equal(t, chat.EventBroadcast, ev.Event)
		assert.Equal(t, "hi", ev.Data)
	}

	// Room2 hears nothing.
	assert.NoError(t, connC.SetReadDeadline(time.Now().Add(300*time.Millisecond)))
	_, _, err := connC.ReadMessage()
	assert.Error(t, err)

	// The message landed in the room's log.
	var msg models.ChatMessage
	assert.NoError(t, db.First(&msg).Error)
	assert.Equal(t, room1.ID, msg.RoomID)
	assert.Equal(t, userA.ID, msg.SenderID)
	assert.Equal(t, "hi", msg.Body)
}

func TestJoinRequiresPersistedMembership(t *testing.T) {
	db := setupTestDB(t)

	member := seedUser(t, db, "member@example.com", 1)
	outsider := seedUser(t, db, "outsider@example.com", 2)
	room := seedRoom(t, db, "alpha", member)
	seedRoom(t, db, "bravo", outsider)

	chatSvc := services.NewChatService(db)
	hub := chat.NewHub(chatSvc)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws/chat", middlewares.WebSocketAuth(), hub.HandleWebSocket)
	srv := httptest.NewServer(r)
	defer srv.Close()

	conn := dialSocket(t, srv.URL, outsider)
	defer conn.Close()

	// Knowing the room id is not enough.
	assert.NoError(t, conn.WriteJSON(chat.ClientEvent{Event: "joinRoom", Room: room.ID}))
	ev := readEvent(t, conn)
	assert.Equal(t, chat.EventError, ev.Event)

	// Messaging without a join is rejected too.
	assert.NoError(t, conn.WriteJSON(chat.ClientEvent{Event: "message", Room: room.ID, Msg: "let me in"}))
	ev = readEvent(t, conn)
	assert.Equal(t, chat.EventError, ev.Event)

	var count int64
	db.Model(&models.ChatMessage{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestWebSocketRequiresToken(t *testing.T) {
	db := setupTestDB(t)
	chatSvc := services.NewChatService(db)
	hub := chat.NewHub(chatSvc)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws/chat", middlewares.WebSocketAuth(), hub.HandleWebSocket)
	srv := httptest.NewServer(r)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/chat"
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	assert.Error(t, err)
	if resp != nil {
		assert.Equal(t, 401, resp.StatusCode)
	}
}
